// Package message provides the application-wide message queue.
//
// Components that discover problems the user should see, but that must
// not abort the operation in progress (for example a document written
// by a newer application version), queue a message instead of returning
// an error. The UI layer drains the queue and presents the messages.
//
// Example usage:
//
//	q := message.NewQueue()
//	q.Queue(message.Warning, "file is newer than this application")
//	for _, m := range q.Drain() {
//	    fmt.Println(m.Severity, m.Text)
//	}
package message

import "sync"

// Severity indicates how a queued message should be presented.
type Severity int

const (
	// Info is a purely informational message.
	Info Severity = iota

	// Warning indicates a recoverable problem; the operation continued.
	Warning

	// Error indicates an operation was abandoned.
	Error
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Message is a single queued message.
type Message struct {
	Severity Severity
	Text     string
}

// Sink accepts messages for later presentation.
//
// Implementations must be safe for concurrent use.
type Sink interface {
	// Queue adds a message to the sink.
	Queue(severity Severity, text string)
}

// Queue is a buffered Sink that retains messages until drained.
type Queue struct {
	mu       sync.Mutex
	messages []Message
}

// NewQueue creates an empty message queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Queue implements Sink.Queue.
func (q *Queue) Queue(severity Severity, text string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = append(q.messages, Message{Severity: severity, Text: text})
}

// Drain returns all queued messages and empties the queue.
func (q *Queue) Drain() []Message {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.messages
	q.messages = nil
	return out
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

// discard is a Sink that drops everything.
type discard struct{}

func (discard) Queue(Severity, string) {}

// Discard returns a Sink that drops all messages.
//
// Useful for testing or when no UI is attached.
func Discard() Sink {
	return discard{}
}
