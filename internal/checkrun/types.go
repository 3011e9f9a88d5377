// Package checkrun carries progress events from a batch check to
// whoever renders them. The driver emits, the CLI or TUI consumes;
// neither knows about the other.
package checkrun

import "time"

// Stage describes a phase of one file's analysis.
type Stage string

const (
	// StageExtract is comment/content extraction and masking.
	StageExtract Stage = "extract"
	// StageTokenize is morphological analysis and sentence splitting.
	StageTokenize Stage = "tokenize"
	// StageGrammar is rule evaluation.
	StageGrammar Stage = "grammar"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file finished cleanly.
	StatusDone Status = "done"
	// StatusError indicates the file could not be analyzed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the whole run when File
// is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds per-stage durations for one file.
type Timings struct {
	stages map[Stage]time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] = dur
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	return t.stages[stage]
}

// Total returns the sum across all recorded stages.
func (t Timings) Total() time.Duration {
	var total time.Duration
	for _, dur := range t.stages {
		total += dur
	}
	return total
}
