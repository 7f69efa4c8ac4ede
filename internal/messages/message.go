package messages

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/quickchat/internal/common"
	"github.com/dmitrijs2005/quickchat/internal/validation"
)

const (
	IDLength         = 10
	MaxContentLength = 250
	maxTagLength     = 20
)

const (
	MsgRecipientOK      = "Cell phone number successfully captured."
	MsgRecipientInvalid = "Cell phone number is incorrectly formatted or does not contain an international code. Please correct the number and try again."

	MsgContentEmpty   = "Message content is empty."
	MsgContentReady   = "Message ready to send."
	contentTooLongFmt = "Message exceeds %d characters by %d, please reduce size."
)

var generateID = func() string {
	return common.RandomDigits(IDLength)
}

type Message struct {
	id        string
	hash      string
	recipient string
	content   string
	number    int
}

// New creates a message and derives its id and hash.
func New(recipient, content string, number int) *Message {
	m := &Message{
		id:        generateID(),
		recipient: recipient,
		content:   content,
		number:    number,
	}
	m.hash = ComputeHash(m.id, m.number, m.content)
	return m
}

// Restore rebuilds a message from persisted fields. Nothing is re-derived.
func Restore(id, hash, recipient, content string, number int) *Message {
	return &Message{id: id, hash: hash, recipient: recipient, content: content, number: number}
}

func (m *Message) ID() string        { return m.id }
func (m *Message) Hash() string      { return m.hash }
func (m *Message) Recipient() string { return m.recipient }
func (m *Message) Content() string   { return m.content }
func (m *Message) Number() int       { return m.number }

// ValidateID reports whether the id is exactly IDLength characters long.
func (m *Message) ValidateID() bool {
	return utf8.RuneCountInString(m.id) == IDLength
}

// CheckRecipientCell returns 1 when the recipient is a valid +27 cell number
// and 0 otherwise.
func (m *Message) CheckRecipientCell() int {
	if validation.Phone(m.recipient) {
		return 1
	}
	return 0
}

func (m *Message) RecipientStatus() string {
	if m.CheckRecipientCell() == 1 {
		return MsgRecipientOK
	}
	return MsgRecipientInvalid
}

// ValidateLength describes whether the content fits in a single message.
func (m *Message) ValidateLength() string {
	return ValidateLength(m.content)
}

func ValidateLength(content string) string {
	n := utf8.RuneCountInString(content)
	switch {
	case content == "":
		return MsgContentEmpty
	case n <= MaxContentLength:
		return MsgContentReady
	default:
		return fmt.Sprintf(contentTooLongFmt, MaxContentLength, n-MaxContentLength)
	}
}

// ComputeHash derives "<first two id chars>:<number>:<TAG>". TAG is the
// upper-cased first word followed by the upper-cased last word, capped at
// maxTagLength runes, or EMPTY for blank content.
func ComputeHash(id string, number int, content string) string {
	if utf8.RuneCountInString(id) < 2 {
		return fmt.Sprintf("00:%d:ERROR", number)
	}
	prefix := string([]rune(id)[:2])

	words := strings.Fields(content)
	if len(words) == 0 {
		return fmt.Sprintf("%s:%d:EMPTY", prefix, number)
	}

	tag := strings.ToUpper(words[0])
	if len(words) > 1 {
		tag += strings.ToUpper(words[len(words)-1])
	}
	if r := []rune(tag); len(r) > maxTagLength {
		tag = string(r[:maxTagLength])
	}
	return fmt.Sprintf("%s:%d:%s", prefix, number, tag)
}

func (m *Message) String() string {
	return fmt.Sprintf("ID: %s\nHash: %s\nTo: %s\nContent: %s", m.id, m.hash, m.recipient, m.content)
}
