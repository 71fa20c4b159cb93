package driver

// Status is the lifecycle of one file inside TokenizeDir.
type Status uint8

const (
	// StatusQueued marks a file waiting for a worker.
	StatusQueued Status = iota
	// StatusLexing marks a file being scanned.
	StatusLexing
	// StatusDone marks a successfully lexed file.
	StatusDone
	// StatusError marks a file that failed to load or lex.
	StatusError
)

// Event is one progress update, consumed by the TUI.
type Event struct {
	Path   string
	Status Status
}

// ProgressSink receives progress events. Implementations must be safe
// for concurrent Send calls.
type ProgressSink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct{ Ch chan<- Event }

func (s ChannelSink) Send(ev Event) {
	s.Ch <- ev
}

// nopSink drops events when no sink was configured.
type nopSink struct{}

func (nopSink) Send(Event) {}
