package testutil

import "sync"

// Notification is one captured notify call.
type Notification struct {
	Title string
	Body  string
}

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	mu     sync.Mutex
	events []Notification
}

func (n *RecordingNotifier) Notify(title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, Notification{Title: title, Body: body})
}

// Events returns a copy of everything notified so far.
func (n *RecordingNotifier) Events() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.events))
	copy(out, n.events)
	return out
}

// Reset clears captured notifications.
func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}
