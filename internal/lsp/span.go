package lsp

import "mozuku/internal/source"

func wirePosition(p source.Position) position {
	return position{Line: int(p.Line), Character: int(p.Character)}
}

func sourcePosition(p position) source.Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Character < 0 {
		p.Character = 0
	}
	return source.Position{Line: uint32(p.Line), Character: uint32(p.Character)}
}

func rangeForSpan(t *source.Text, span source.Span) lspRange {
	if t == nil {
		return lspRange{}
	}
	return lspRange{
		Start: wirePosition(t.PositionForByte(span.Start)),
		End:   wirePosition(t.PositionForByte(span.End)),
	}
}
