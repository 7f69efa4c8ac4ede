package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/quickchat/internal/common"
	"github.com/dmitrijs2005/quickchat/internal/filex"
	"github.com/dmitrijs2005/quickchat/internal/messages"
)

var fileNames = map[Box]string{
	BoxSent:   "sent_messages.json",
	BoxStored: "stored_messages.json",
}

// JSONRepository keeps each box in its own JSON file under dir.
type JSONRepository struct {
	dir string
}

// NewJSONRepository creates dir if needed.
func NewJSONRepository(dir string) (*JSONRepository, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}
	return &JSONRepository{dir: abs}, nil
}

// Path returns the file backing box.
func (r *JSONRepository) Path(box Box) string {
	return filepath.Join(r.dir, fileNames[box])
}

func (r *JSONRepository) Load(ctx context.Context, box Box) ([]*messages.Message, error) {
	if !box.Valid() {
		return nil, fmt.Errorf("unknown box %q", box)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(r.Path(box))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", common.ErrorNotFound, r.Path(box))
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.Path(box), err)
	}
	return messages.Unmarshal(b)
}

func (r *JSONRepository) Save(ctx context.Context, box Box, list []*messages.Message) error {
	if !box.Valid() {
		return fmt.Errorf("unknown box %q", box)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := messages.Marshal(list)
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(r.Path(box), b, 0o600)
}

func (r *JSONRepository) Close() error { return nil }
