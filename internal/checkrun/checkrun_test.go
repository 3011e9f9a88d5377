package checkrun

import (
	"testing"
	"time"
)

func TestTimingsSetAndDuration(t *testing.T) {
	var tm Timings
	tm.Set(StageExtract, 5*time.Millisecond)
	tm.Set(StageTokenize, 7*time.Millisecond)
	tm.Set(StageTokenize, 9*time.Millisecond)

	if got := tm.Duration(StageExtract); got != 5*time.Millisecond {
		t.Errorf("Duration(extract) = %v, want 5ms", got)
	}
	if got := tm.Duration(StageTokenize); got != 9*time.Millisecond {
		t.Errorf("Duration(tokenize) = %v, want 9ms (last write wins)", got)
	}
	if got := tm.Duration(StageGrammar); got != 0 {
		t.Errorf("Duration(grammar) = %v, want 0 for unset stage", got)
	}
}

func TestTimingsTotal(t *testing.T) {
	var tm Timings
	if got := tm.Total(); got != 0 {
		t.Errorf("zero-value Total() = %v, want 0", got)
	}

	tm.Set(StageExtract, 2*time.Millisecond)
	tm.Set(StageTokenize, 3*time.Millisecond)
	tm.Set(StageGrammar, 4*time.Millisecond)
	if got := tm.Total(); got != 9*time.Millisecond {
		t.Errorf("Total() = %v, want 9ms", got)
	}
}

func TestTimingsNilReceiver(t *testing.T) {
	var tm *Timings
	tm.Set(StageExtract, time.Millisecond) // must not panic
}

func TestChannelSinkForwards(t *testing.T) {
	ch := make(chan Event, 2)
	sink := ChannelSink{Ch: ch}

	first := Event{File: "a.txt", Stage: StageExtract, Status: StatusWorking}
	second := Event{File: "a.txt", Stage: StageGrammar, Status: StatusDone, Elapsed: time.Millisecond}
	sink.OnEvent(first)
	sink.OnEvent(second)

	if got := <-ch; got != first {
		t.Errorf("first event = %+v, want %+v", got, first)
	}
	if got := <-ch; got != second {
		t.Errorf("second event = %+v, want %+v", got, second)
	}
}

func TestChannelSinkNilChannel(t *testing.T) {
	var sink ChannelSink
	sink.OnEvent(Event{File: "b.txt", Status: StatusError}) // must not block or panic
}
