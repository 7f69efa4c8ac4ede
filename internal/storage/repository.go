package storage

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/quickchat/internal/logging"
	"github.com/dmitrijs2005/quickchat/internal/messages"
)

// Box names one of the persisted message lists.
type Box string

const (
	BoxSent   Box = "sent"
	BoxStored Box = "stored"
)

// Boxes lists every box in load order.
var Boxes = []Box{BoxSent, BoxStored}

func (b Box) Valid() bool {
	return b == BoxSent || b == BoxStored
}

// Repository loads and saves message boxes.
type Repository interface {
	// Load returns the messages of box in saved order. A box that was never
	// saved yields either an empty list or an error wrapping
	// common.ErrorNotFound.
	Load(ctx context.Context, box Box) ([]*messages.Message, error)

	// Save replaces the content of box with list.
	Save(ctx context.Context, box Box, list []*messages.Message) error

	Close() error
}

// LoadOrEmpty loads box and swallows every error into a warning.
func LoadOrEmpty(ctx context.Context, repo Repository, box Box, logger logging.Logger) []*messages.Message {
	list, err := repo.Load(ctx, box)
	if err != nil {
		logger.Warn(ctx, "failed to load messages, starting empty", "box", string(box), "err", err)
		return []*messages.Message{}
	}
	if list == nil {
		list = []*messages.Message{}
	}
	return list
}

// SaveOutbox writes both boxes of o. It keeps going after a failure and
// returns the first error.
func SaveOutbox(ctx context.Context, repo Repository, o *messages.Outbox) error {
	var first error
	lists := map[Box][]*messages.Message{BoxSent: o.Sent(), BoxStored: o.Stored()}
	for _, box := range Boxes {
		if err := repo.Save(ctx, box, lists[box]); err != nil && first == nil {
			first = fmt.Errorf("save %s box: %w", box, err)
		}
	}
	return first
}

// LoadOutbox restores both boxes of o from repo.
func LoadOutbox(ctx context.Context, repo Repository, o *messages.Outbox, logger logging.Logger) {
	o.Restore(
		LoadOrEmpty(ctx, repo, BoxSent, logger),
		LoadOrEmpty(ctx, repo, BoxStored, logger),
	)
}
