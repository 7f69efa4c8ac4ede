package cli

import (
	"context"

	"github.com/dmitrijs2005/quickchat/internal/chat"
)

// argOrPrompt returns arg, or asks for the value when the command line had none.
func (a *App) argOrPrompt(arg, prompt string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) Populate(ctx context.Context) error {
	return a.run(ctx, chat.Command{Kind: chat.KindPopulate}).Err
}

func (a *App) Senders(ctx context.Context) error {
	return a.run(ctx, chat.Command{Kind: chat.KindSenders}).Err
}

func (a *App) Longest(ctx context.Context) error {
	return a.run(ctx, chat.Command{Kind: chat.KindLongest}).Err
}

func (a *App) Find(ctx context.Context, id string) error {
	id, err := a.argOrPrompt(id, "Enter message ID to search")
	if err != nil {
		return err
	}
	return a.run(ctx, chat.Command{Kind: chat.KindFind, ID: id}).Err
}

func (a *App) Recipient(ctx context.Context, recipient string) error {
	recipient, err := a.argOrPrompt(recipient, "Enter recipient to search")
	if err != nil {
		return err
	}
	return a.run(ctx, chat.Command{Kind: chat.KindRecipient, Recipient: recipient}).Err
}

func (a *App) Delete(ctx context.Context, hash string) error {
	hash, err := a.argOrPrompt(hash, "Enter message hash to delete")
	if err != nil {
		return err
	}
	return a.run(ctx, chat.Command{Kind: chat.KindDelete, Hash: hash}).Err
}

func (a *App) Report(ctx context.Context) error {
	return a.run(ctx, chat.Command{Kind: chat.KindReport}).Err
}

// Import loads records from path, or from the configured records file when
// path is empty.
func (a *App) Import(ctx context.Context, path string) error {
	return a.run(ctx, chat.Command{Kind: chat.KindImport, Path: path}).Err
}

func (a *App) Stats(ctx context.Context) error {
	return a.run(ctx, chat.Command{Kind: chat.KindStats}).Err
}
