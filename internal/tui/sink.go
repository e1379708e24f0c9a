package tui

// Sink receives the outcome of an editing session. Save is called at most
// once, and Close is always called after it.
//
//go:generate mockgen -source=sink.go -destination=mock_sink_test.go -package=tui
type Sink interface {
	Save(value string)
	Close()
}

// SinkFuncs adapts plain functions to Sink. Nil functions are skipped.
type SinkFuncs struct {
	OnSave  func(value string)
	OnClose func()
}

func (s SinkFuncs) Save(value string) {
	if s.OnSave != nil {
		s.OnSave(value)
	}
}

func (s SinkFuncs) Close() {
	if s.OnClose != nil {
		s.OnClose()
	}
}

var _ Sink = SinkFuncs{}
