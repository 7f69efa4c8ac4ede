package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/quickchat/internal/chat"
	"github.com/dmitrijs2005/quickchat/internal/messages"
	"github.com/dmitrijs2005/quickchat/internal/validation"
)

const dispositionPrompt = "Choose action:\n1. Send Message\n2. Disregard Message\n3. Store Message"

// Compose walks the user through one message: recipient, content, then what
// to do with it. Invalid input is reported and nothing is built.
func (a *App) Compose(ctx context.Context) error {
	recipient, err := getSimpleText(a.reader, "Enter recipient cell number (+27...)", a.out)
	if err != nil {
		return err
	}
	if !validation.Phone(recipient) {
		printlnFn(messages.MsgRecipientInvalid)
		return nil
	}
	printlnFn(messages.MsgRecipientOK)

	content, err := getMultiline(a.reader, "Enter message (max 250 characters)", a.out)
	if err != nil {
		return err
	}
	if status := messages.ValidateLength(content); status != messages.MsgContentReady {
		printlnFn(status)
		return nil
	}
	printlnFn(messages.MsgContentReady)

	choice, err := getSimpleText(a.reader, dispositionPrompt, a.out)
	if err != nil {
		return err
	}
	d, _ := messages.ParseDisposition(choice)
	if d == messages.DispositionDiscard {
		confirm, err := getSimpleText(a.reader, "Press y to delete the message", a.out)
		if err != nil {
			return err
		}
		if !strings.EqualFold(confirm, "y") && !strings.EqualFold(confirm, "yes") {
			d = 0
		}
	}

	res := a.run(ctx, chat.Command{
		Kind:        chat.KindCompose,
		Recipient:   recipient,
		Content:     content,
		Disposition: d,
	})
	if res.OK && res.Message != nil && d != messages.DispositionDiscard {
		printlnFn(res.Message.String())
	}
	return res.Err
}

// ShowSent prints every message sent this session.
func (a *App) ShowSent(ctx context.Context) error {
	return a.run(ctx, chat.Command{Kind: chat.KindSent}).Err
}

func (a *App) Total(ctx context.Context) error {
	return a.run(ctx, chat.Command{Kind: chat.KindTotal}).Err
}
