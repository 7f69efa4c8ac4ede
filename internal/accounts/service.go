package accounts

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/quickchat/internal/validation"
)

// Service registers the single user and checks logins against it.
// Calls are serialized by a mutex so a host may share it across goroutines.
type Service struct {
	mu    sync.Mutex
	store Store
}

// NewService constructs a Service over the given Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register validates username, password and phone in that order and returns
// the message for the first failing field. When all pass, the five fields
// replace any previously stored credential.
//
// A non-nil error is only returned when the Store fails; validation failures
// are reported through RegisterResult.
func (s *Service) Register(ctx context.Context, username, password, phone, firstName, lastName string) (RegisterResult, error) {
	switch {
	case !validation.Username(username):
		return RegisterResult{Message: MsgUsernameInvalid}, nil
	case !validation.PasswordComplexity(password):
		return RegisterResult{Message: MsgPasswordInvalid}, nil
	case !validation.Phone(phone):
		return RegisterResult{Message: MsgPhoneInvalid}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.Save(ctx, Credential{
		Username:  username,
		Password:  password,
		Phone:     phone,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return RegisterResult{}, fmt.Errorf("save credential: %w", err)
	}
	return RegisterResult{OK: true, Message: MsgRegistered}, nil
}

// Login compares username and password with the stored credential. It never
// reveals which of the two fields was wrong.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, err := s.store.Get(ctx)
	if err != nil {
		return LoginResult{}, fmt.Errorf("load credential: %w", err)
	}
	if cred == nil {
		return LoginResult{Status: LoginNotRegistered, Message: MsgNotRegistered}, nil
	}
	if username != cred.Username || password != cred.Password {
		return LoginResult{Status: LoginMismatch, Message: MsgLoginFailed}, nil
	}
	return LoginResult{
		Status:  LoginSucceeded,
		Message: fmt.Sprintf(welcomeMessageFormat, cred.FirstName, cred.LastName),
	}, nil
}

// Profile returns a copy of the stored credential, or nil if none.
func (s *Service) Profile(ctx context.Context) (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Get(ctx)
}

// Registered reports whether a credential is stored.
func (s *Service) Registered(ctx context.Context) (bool, error) {
	c, err := s.Profile(ctx)
	if err != nil {
		return false, err
	}
	return c != nil, nil
}
