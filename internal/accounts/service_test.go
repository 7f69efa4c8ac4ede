package accounts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	getErr  error
	saveErr error
}

func (f *failingStore) Get(context.Context) (*Credential, error) { return nil, f.getErr }
func (f *failingStore) Save(context.Context, Credential) error   { return f.saveErr }
func (f *failingStore) Clear(context.Context) error              { return nil }

func TestRegister_FirstFailingFieldWins(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		phone    string
		want     string
	}{
		{"all invalid reports username", "kyle!!!!!!!", "password", "08966553", MsgUsernameInvalid},
		{"password and phone invalid reports password", "kyl_1", "password", "08966553", MsgPasswordInvalid},
		{"only phone invalid", "kyl_1", "Ch&&sec@ke99!", "08966553", MsgPhoneInvalid},
		{"valid", "kyl_1", "Ch&&sec@ke99!", "+27838968976", MsgRegistered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(NewMemoryStore())
			res, err := svc.Register(context.Background(), tt.username, tt.password, tt.phone, "Kyle", "Smith")
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Message)
			assert.Equal(t, tt.want == MsgRegistered, res.OK)
		})
	}
}

func TestRegister_FailureDoesNotStore(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	_, err := svc.Register(ctx, "toolong_name", "Ch&&sec@ke99!", "+27838968976", "A", "B")
	require.NoError(t, err)

	ok, err := svc.Registered(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_BeforeRegister_IsDistinctFromMismatch(t *testing.T) {
	svc := NewService(NewMemoryStore())

	res, err := svc.Login(context.Background(), "kyl_1", "Ch&&sec@ke99!")
	require.NoError(t, err)
	assert.Equal(t, LoginNotRegistered, res.Status)
	assert.Equal(t, MsgNotRegistered, res.Message)
	assert.NotEqual(t, MsgLoginFailed, res.Message)
	assert.False(t, res.OK())
}

func TestRegisterThenLogin_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	reg, err := svc.Register(ctx, "kyl_1", "Ch&&sec@ke99!", "+27 83 896 8976", "Kyle", "Smith")
	require.NoError(t, err)
	require.True(t, reg.OK)

	res, err := svc.Login(ctx, "kyl_1", "Ch&&sec@ke99!")
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "Welcome Kyle,Smith it is great to see you again.", res.Message)
	assert.Contains(t, res.Message, "Kyle")
	assert.Contains(t, res.Message, "Smith")
}

func TestLogin_MismatchIsGeneric(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())
	_, err := svc.Register(ctx, "kyl_1", "Ch&&sec@ke99!", "+27838968976", "Kyle", "Smith")
	require.NoError(t, err)

	for _, c := range [][2]string{
		{"kyl_2", "Ch&&sec@ke99!"},
		{"kyl_1", "wrong"},
		{"", ""},
		{"KYL_1", "Ch&&sec@ke99!"},
	} {
		res, err := svc.Login(ctx, c[0], c[1])
		require.NoError(t, err)
		assert.Equal(t, LoginMismatch, res.Status)
		assert.Equal(t, MsgLoginFailed, res.Message)
	}
}

func TestRegister_OverwritesPreviousUser(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	_, err := svc.Register(ctx, "old_1", "Ch&&sec@ke99!", "+27838968976", "Old", "User")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "new_1", "N3w&Passw0rd", "+27712345678", "New", "User")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "old_1", "Ch&&sec@ke99!")
	require.NoError(t, err)
	assert.Equal(t, LoginMismatch, res.Status)

	res, err = svc.Login(ctx, "new_1", "N3w&Passw0rd")
	require.NoError(t, err)
	assert.Equal(t, "Welcome New,User it is great to see you again.", res.Message)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+27712345678", p.Phone)
}

func TestService_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	svc := NewService(&failingStore{saveErr: boom})
	_, err := svc.Register(ctx, "kyl_1", "Ch&&sec@ke99!", "+27838968976", "K", "S")
	require.ErrorIs(t, err, boom)

	svc = NewService(&failingStore{getErr: boom})
	_, err = svc.Login(ctx, "kyl_1", "x")
	require.ErrorIs(t, err, boom)

	_, err = svc.Registered(ctx)
	require.ErrorIs(t, err, boom)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	require.NoError(t, m.Save(ctx, Credential{Username: "ab_cd"}))

	c, err := m.Get(ctx)
	require.NoError(t, err)
	c.Username = "mutated"

	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ab_cd", again.Username)

	require.NoError(t, m.Clear(ctx))
	gone, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestLoginStatus_String(t *testing.T) {
	assert.Equal(t, "succeeded", LoginSucceeded.String())
	assert.Equal(t, "not_registered", LoginNotRegistered.String())
	assert.Equal(t, "mismatch", LoginMismatch.String())
}
