// Package records manages the message records used by the search, delete
// and report commands.
//
// A Store keeps a single insertion-ordered slice. Status lists and the hash
// and id indexes are computed from it on every call, so they always agree.
package records

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/quickchat/internal/common"
)

// DefaultSender is recorded as the sender of every record.
const DefaultSender = "System"

type Status string

const (
	StatusSent        Status = "Sent"
	StatusStored      Status = "Stored"
	StatusDisregarded Status = "Disregarded"
)

// ParseStatus matches a flag case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, st := range []Status{StatusSent, StatusStored, StatusDisregarded} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrorInvalidStatus, s)
}

type Record struct {
	Hash      string `json:"messageHash" validate:"required"`
	ID        string `json:"messageID" validate:"required"`
	Recipient string `json:"recipient"`
	Content   string `json:"message"`
	Flag      Status `json:"flag" validate:"required,oneof=Sent Stored Disregarded"`
	Sender    string `json:"sender,omitempty"`
}

// Summary is the sender, recipient and content of a sent record.
type Summary struct {
	Sender    string
	Recipient string
	Content   string
}

// Stats are the collection sizes shown by the stats command.
type Stats struct {
	Total       int
	Sent        int
	Stored      int
	Disregarded int
	Hashes      int
	IDs         int
}

func (s Stats) String() string {
	return fmt.Sprintf("All messages: %d\nSent: %d\nStored: %d\nDisregarded: %d\nHashes: %d\nIDs: %d",
		s.Total, s.Sent, s.Stored, s.Disregarded, s.Hashes, s.IDs)
}

// Seed returns the fixed demonstration records.
func Seed() []Record {
	return []Record{
		{Hash: "H1", ID: "M1", Recipient: "+27834557896", Content: "Did you get the cake?", Flag: StatusSent, Sender: DefaultSender},
		{Hash: "H2", ID: "M2", Recipient: "+27838884567", Content: "Where are you? You are late! I have asked you to be on time.", Flag: StatusStored, Sender: DefaultSender},
		{Hash: "H3", ID: "M3", Recipient: "+27834484567", Content: "Yohoooo, I am at your gate.", Flag: StatusDisregarded, Sender: DefaultSender},
		{Hash: "H4", ID: "M4", Recipient: "0838884567", Content: "It is dinner time!", Flag: StatusSent, Sender: DefaultSender},
		{Hash: "H5", ID: "M5", Recipient: "+27838884567", Content: "Ok, I am leaving without you.", Flag: StatusStored, Sender: DefaultSender},
	}
}
