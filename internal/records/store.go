package records

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/quickchat/internal/common"
)

const previewLength = 40

// Store is the canonical, insertion-ordered record collection.
type Store struct {
	mu       sync.RWMutex
	records  []Record
	validate *validator.Validate
}

func NewStore() *Store {
	return &Store{validate: validator.New()}
}

// Add appends r. Hash and id must be unique within the store.
func (s *Store) Add(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(r)
}

func (s *Store) add(r Record) error {
	flag, err := ParseStatus(string(r.Flag))
	if err != nil {
		return err
	}
	r.Flag = flag
	if r.Sender == "" {
		r.Sender = DefaultSender
	}
	if err := s.validate.Struct(r); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	for _, existing := range s.records {
		if existing.Hash == r.Hash {
			return fmt.Errorf("%w: hash %q", common.ErrorAlreadyExists, r.Hash)
		}
		if existing.ID == r.ID {
			return fmt.Errorf("%w: id %q", common.ErrorAlreadyExists, r.ID)
		}
	}
	s.records = append(s.records, r)
	return nil
}

// Populate replaces the contents with the seed records.
func (s *Store) Populate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
	for _, r := range Seed() {
		// seed data is known to be valid and unique
		_ = s.add(r)
	}
}

// ImportResult counts what Import did. Errors holds one entry per skipped record.
type ImportResult struct {
	Added   int
	Skipped int
	Errors  []error
}

// Import adds each record in order, skipping the ones Add rejects.
func (s *Store) Import(list []Record) ImportResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res ImportResult
	for i, r := range list {
		if err := s.add(r); err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		res.Added++
	}
	return res
}

// All returns a copy of every record in insertion order.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.records...)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ByStatus filters the collection by flag.
func (s *Store) ByStatus(st Status) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byStatus(st)
}

func (s *Store) byStatus(st Status) []Record {
	var out []Record
	for _, r := range s.records {
		if r.Flag == st {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) Hashes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Hash)
	}
	return out
}

func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.ID)
	}
	return out
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{Total: len(s.records), Hashes: len(s.records), IDs: len(s.records)}
	for _, r := range s.records {
		switch r.Flag {
		case StatusSent:
			st.Sent++
		case StatusStored:
			st.Stored++
		case StatusDisregarded:
			st.Disregarded++
		}
	}
	return st
}

// SentSummaries lists sender, recipient and content of every sent record.
func (s *Store) SentSummaries() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Summary
	for _, r := range s.byStatus(StatusSent) {
		out = append(out, Summary{Sender: r.Sender, Recipient: r.Recipient, Content: r.Content})
	}
	return out
}

// LongestSent returns the sent record with the longest content. The first one
// wins a tie. ok is false when nothing was sent.
func (s *Store) LongestSent() (rec Record, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	best := -1
	for _, r := range s.byStatus(StatusSent) {
		if n := utf8.RuneCountInString(r.Content); n > best {
			best, rec, ok = n, r, true
		}
	}
	return rec, ok
}

// FindByID returns the first record with the given id.
func (s *Store) FindByID(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("%w: id %q", common.ErrorNotFound, id)
}

// FindAllByRecipient matches the recipient string exactly. Numbers are not
// normalized, so 0838884567 and +27838884567 are different recipients.
func (s *Store) FindAllByRecipient(recipient string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Record
	for _, r := range s.records {
		if r.Recipient == recipient {
			out = append(out, r)
		}
	}
	return out
}

// DeleteByHash removes the first record with the given hash and returns it.
func (s *Store) DeleteByHash(hash string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.Hash == hash {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("%w: hash %q", common.ErrorNotFound, hash)
}

// SentReport renders the sent records as a fixed-width table followed by
// the total.
func (s *Store) SentReport() string {
	sent := s.ByStatus(StatusSent)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-10s %-12s %-18s %-45s\n", "Hash", "Message ID", "Recipient", "Message")
	sb.WriteString(strings.Repeat("-", 90))
	sb.WriteByte('\n')
	for _, r := range sent {
		fmt.Fprintf(&sb, "%-10s %-12s %-18s %-45s\n", r.Hash, r.ID, r.Recipient, Preview(r.Content, previewLength))
	}
	fmt.Fprintf(&sb, "Total sent messages: %d", len(sent))
	return sb.String()
}

// Preview cuts s to n runes and appends "..." when it was longer.
func Preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
