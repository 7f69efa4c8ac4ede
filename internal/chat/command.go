// Package chat is the command core of QuickChat. A front end builds a
// Command, hands it to Core.Execute and prints the returned Result. The core
// never reads input or writes to a terminal.
package chat

import (
	"github.com/dmitrijs2005/quickchat/internal/messages"
	"github.com/dmitrijs2005/quickchat/internal/records"
)

type Kind string

const (
	KindRegister  Kind = "register"
	KindLogin     Kind = "login"
	KindLogout    Kind = "logout"
	KindCompose   Kind = "compose"
	KindSent      Kind = "sent"
	KindTotal     Kind = "total"
	KindPopulate  Kind = "populate"
	KindSenders   Kind = "senders"
	KindLongest   Kind = "longest"
	KindFind      Kind = "find"
	KindRecipient Kind = "recipient"
	KindDelete    Kind = "delete"
	KindReport    Kind = "report"
	KindImport    Kind = "import"
	KindStats     Kind = "stats"
)

// requiresLogin lists the kinds that are rejected without a session.
var requiresLogin = map[Kind]bool{
	KindLogout:    true,
	KindCompose:   true,
	KindSent:      true,
	KindTotal:     true,
	KindPopulate:  true,
	KindSenders:   true,
	KindLongest:   true,
	KindFind:      true,
	KindRecipient: true,
	KindDelete:    true,
	KindReport:    true,
	KindImport:    true,
	KindStats:     true,
}

// Command carries the arguments of one request. Only the fields used by Kind
// are read.
type Command struct {
	Kind Kind

	// register, login
	Username  string
	Password  string
	Phone     string
	FirstName string
	LastName  string

	// compose
	Recipient   string
	Content     string
	Disposition messages.Disposition

	// find (ID), delete (Hash), recipient (Recipient), import (Path)
	ID   string
	Hash string
	Path string
}

// Result is what Execute returns. Text is always set and ready to print.
type Result struct {
	OK   bool
	Text string

	// Err is set for failures of a collaborator (storage, files). Validation
	// and lookup misses are not errors.
	Err error

	// Message is the composed message for compose.
	Message *messages.Message

	// Records holds matches for find, recipient, longest and delete.
	Records []records.Record
}

func okResult(text string) Result {
	return Result{OK: true, Text: text}
}

func failResult(text string) Result {
	return Result{Text: text}
}

func errResult(text string, err error) Result {
	return Result{Text: text, Err: err}
}
