package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutbox_Disposition(t *testing.T) {
	o := NewOutbox()
	a := New("+27718693002", "first", 1)
	b := New("+27718693002", "second", 2)
	c := New("+27718693002", "third", 3)

	assert.Equal(t, MsgSent, o.Send(a))
	assert.Equal(t, MsgStored, o.Store(b))
	assert.Equal(t, MsgDiscarded, o.Discard(c))

	assert.Equal(t, 1, o.TotalSent())
	assert.Equal(t, []*Message{a}, o.Sent())
	assert.Equal(t, []*Message{b}, o.Stored())
}

func TestOutbox_Apply(t *testing.T) {
	o := NewOutbox()
	m := New("+27718693002", "x", 0)

	assert.Equal(t, MsgSent, o.Apply(DispositionSend, m))
	assert.Equal(t, MsgStored, o.Apply(DispositionStore, m))
	assert.Equal(t, MsgDiscarded, o.Apply(DispositionDiscard, m))
	assert.Equal(t, MsgCancelled, o.Apply(Disposition(0), m))
	assert.Equal(t, 1, o.TotalSent())
}

func TestParseDisposition(t *testing.T) {
	tests := []struct {
		in   string
		want Disposition
		ok   bool
	}{
		{"1", DispositionSend, true},
		{" Send ", DispositionSend, true},
		{"2", DispositionDiscard, true},
		{"disregard", DispositionDiscard, true},
		{"3", DispositionStore, true},
		{"STORE", DispositionStore, true},
		{"", 0, false},
		{"4", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDisposition(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestOutbox_SentIsACopy(t *testing.T) {
	o := NewOutbox()
	o.Send(New("+27718693002", "x", 0))

	got := o.Sent()
	got[0] = nil
	require.NotNil(t, o.Sent()[0])
}

func TestOutbox_PrintMessages(t *testing.T) {
	o := NewOutbox()
	assert.Equal(t, MsgNoneSent, o.PrintMessages())

	o.Send(Restore("1234567890", "12:0:HIYOU", "+27718693002", "Hi you", 0))
	o.Store(Restore("5555555555", "55:1:STORED", "+27718693002", "stored", 1))
	o.Send(Restore("0987654321", "09:2:BYE", "+27718693003", "Bye", 2))

	want := "Message 1\n" +
		"ID: 1234567890\nHash: 12:0:HIYOU\nTo: +27718693002\nContent: Hi you\n\n" +
		"Message 2\n" +
		"ID: 0987654321\nHash: 09:2:BYE\nTo: +27718693003\nContent: Bye"
	assert.Equal(t, want, o.PrintMessages())
}

func TestOutbox_Restore(t *testing.T) {
	o := NewOutbox()
	o.Send(New("+27718693002", "old", 0))

	sent := []*Message{New("+27718693002", "a", 0), New("+27718693002", "b", 1)}
	stored := []*Message{New("+27718693002", "c", 2)}
	o.Restore(sent, stored)

	assert.Equal(t, 2, o.TotalSent())
	assert.Equal(t, sent, o.Sent())
	assert.Equal(t, stored, o.Stored())

	o.Restore(nil, nil)
	assert.Equal(t, 0, o.TotalSent())
	assert.Empty(t, o.Sent())
}
