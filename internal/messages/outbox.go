package messages

import (
	"fmt"
	"strings"
	"sync"
)

const (
	MsgSent      = "Message successfully sent."
	MsgStored    = "Message successfully stored."
	MsgDiscarded = "Message deleted."
	MsgCancelled = "Message action cancelled."
	MsgNoneSent  = "No messages sent yet."
)

// Disposition is what the user decided to do with a composed message.
type Disposition int

const (
	DispositionSend Disposition = iota + 1
	DispositionDiscard
	DispositionStore
)

// ParseDisposition accepts the menu number or the action word.
func ParseDisposition(s string) (Disposition, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "send", "s":
		return DispositionSend, true
	case "2", "discard", "disregard", "d":
		return DispositionDiscard, true
	case "3", "store", "st":
		return DispositionStore, true
	}
	return 0, false
}

// Outbox holds the messages sent and stored during a session.
type Outbox struct {
	mu        sync.Mutex
	sent      []*Message
	stored    []*Message
	totalSent int
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

// Send appends m to the sent list and bumps the sent counter.
func (o *Outbox) Send(m *Message) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, m)
	o.totalSent++
	return MsgSent
}

// Store keeps m for sending later.
func (o *Outbox) Store(m *Message) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stored = append(o.stored, m)
	return MsgStored
}

// Discard drops m. The outbox is not touched.
func (o *Outbox) Discard(*Message) string {
	return MsgDiscarded
}

// Apply routes m according to d.
func (o *Outbox) Apply(d Disposition, m *Message) string {
	switch d {
	case DispositionSend:
		return o.Send(m)
	case DispositionStore:
		return o.Store(m)
	case DispositionDiscard:
		return o.Discard(m)
	default:
		return MsgCancelled
	}
}

func (o *Outbox) TotalSent() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.totalSent
}

// Sent returns a copy of the sent list.
func (o *Outbox) Sent() []*Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*Message(nil), o.sent...)
}

// Stored returns a copy of the stored list.
func (o *Outbox) Stored() []*Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]*Message(nil), o.stored...)
}

// Restore replaces both lists, typically with what was loaded from disk.
// The sent counter is reset to len(sent).
func (o *Outbox) Restore(sent, stored []*Message) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append([]*Message(nil), sent...)
	o.stored = append([]*Message(nil), stored...)
	o.totalSent = len(o.sent)
}

// PrintMessages renders every sent message as a numbered block.
func (o *Outbox) PrintMessages() string {
	sent := o.Sent()
	if len(sent) == 0 {
		return MsgNoneSent
	}

	var sb strings.Builder
	for i, m := range sent {
		fmt.Fprintf(&sb, "Message %d\n%s\n\n", i+1, m)
	}
	return strings.TrimSpace(sb.String())
}
