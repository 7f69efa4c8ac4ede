package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/quickchat/internal/chat"
	"github.com/dmitrijs2005/quickchat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// readSecret reads a password without echo on a terminal and as a plain line
// otherwise. The caller wipes the returned slice.
func (a *App) readSecret() ([]byte, error) {
	if isTerminal(int(os.Stdin.Fd())) {
		return getPassword(a.out)
	}
	s, err := getSimpleText(a.reader, "Enter password", a.out)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Register prompts for the account fields and prints the registration
// outcome. Only I/O errors are returned.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username (contains _ and at most 5 characters)", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	phone, err := getSimpleText(a.reader, "Enter cell phone number (+27...)", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		return err
	}

	res := a.run(ctx, chat.Command{
		Kind:      chat.KindRegister,
		Username:  userName,
		Password:  string(password),
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
	})
	return res.Err
}

// Login prompts for username and password. On success the core remembers
// the session and the prompt shows the username.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.run(ctx, chat.Command{Kind: chat.KindLogin, Username: userName, Password: string(password)})
	return res.Err
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	return a.run(ctx, chat.Command{Kind: chat.KindLogout}).Err
}
