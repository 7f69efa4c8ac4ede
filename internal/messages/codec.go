package messages

import (
	"encoding/json"
	"fmt"
)

// record is the on-disk shape of a Message.
type record struct {
	ID        string `json:"id"`
	Hash      string `json:"hash"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	Number    int    `json:"number"`
}

// Marshal encodes list as an indented JSON array. A nil list encodes as [].
func Marshal(list []*Message) ([]byte, error) {
	out := make([]record, 0, len(list))
	for _, m := range list {
		out = append(out, record{
			ID:        m.id,
			Hash:      m.hash,
			Recipient: m.recipient,
			Content:   m.content,
			Number:    m.number,
		})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal messages: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a blob written by Marshal. Stored ids and hashes are kept
// as they are and never recomputed. A JSON null decodes to an empty list.
func Unmarshal(b []byte) ([]*Message, error) {
	var in []record
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}
	list := make([]*Message, 0, len(in))
	for _, r := range in {
		list = append(list, Restore(r.ID, r.Hash, r.Recipient, r.Content, r.Number))
	}
	return list, nil
}

