package session

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/storage"
)

func newTestService(store storage.Store) *Service {
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
}

func TestLogin_ValidCredentialWithRemember(t *testing.T) {
	store := storage.NewMemStore()
	svc := newTestService(store)

	err := svc.Login("intern@demo.com", "intern123", true)
	require.NoError(t, err)
	assert.True(t, svc.Authenticated())
	assert.Equal(t, "intern@demo.com", svc.Email())

	auth, err := store.Get(storage.KeyAuth)
	require.NoError(t, err)
	assert.Equal(t, "true", string(auth))

	remember, err := store.Get(storage.KeyRemember)
	require.NoError(t, err)
	assert.Equal(t, "true", string(remember))

	// Simulated restart restores the session
	restarted := newTestService(store)
	restarted.Restore()
	assert.True(t, restarted.Authenticated())
	assert.Equal(t, "intern@demo.com", restarted.Email())
}

func TestLogin_WithoutRememberDoesNotSurviveRestart(t *testing.T) {
	store := storage.NewMemStore()
	svc := newTestService(store)

	require.NoError(t, svc.Login("intern@demo.com", "intern123", false))
	assert.True(t, svc.Authenticated())
	assert.False(t, store.Has(storage.KeyRemember))

	restarted := newTestService(store)
	restarted.Restore()
	assert.False(t, restarted.Authenticated())
}

func TestLogin_ClearsStaleRememberFlag(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Set(storage.KeyRemember, []byte("true")))

	svc := newTestService(store)
	require.NoError(t, svc.Login("intern@demo.com", "intern123", false))

	assert.False(t, store.Has(storage.KeyRemember))
}

func TestLogin_InvalidCredential(t *testing.T) {
	store := storage.NewMemStore()
	svc := newTestService(store)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong email", "wrong@x.com", "intern123"},
		{"wrong password", "intern@demo.com", "whatever"},
		{"both wrong", "wrong@x.com", "whatever"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(tt.email, tt.password, false)
			// Uniform error regardless of which part was wrong
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
			assert.False(t, svc.Authenticated())
			assert.False(t, store.Has(storage.KeyAuth))
			assert.False(t, store.Has(storage.KeyRemember))
		})
	}
}

func TestLogin_FailureLeavesExistingFlagsUntouched(t *testing.T) {
	store := storage.NewMemStore()
	require.NoError(t, store.Set(storage.KeyAuth, []byte("true")))
	require.NoError(t, store.Set(storage.KeyRemember, []byte("true")))

	svc := newTestService(store)
	err := svc.Login("wrong@x.com", "whatever", false)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	auth, err := store.Get(storage.KeyAuth)
	require.NoError(t, err)
	assert.Equal(t, "true", string(auth))
	remember, err := store.Get(storage.KeyRemember)
	require.NoError(t, err)
	assert.Equal(t, "true", string(remember))
}

func TestLogout_RemovesBothFlags(t *testing.T) {
	store := storage.NewMemStore()
	svc := newTestService(store)
	require.NoError(t, svc.Login("intern@demo.com", "intern123", true))

	svc.Logout()

	assert.False(t, svc.Authenticated())
	assert.Empty(t, svc.Email())
	assert.False(t, store.Has(storage.KeyAuth))
	assert.False(t, store.Has(storage.KeyRemember))
}

func TestRestore_RequiresBothFlags(t *testing.T) {
	tests := []struct {
		name     string
		auth     string
		remember string
		want     bool
	}{
		{"both true", "true", "true", true},
		{"auth only", "true", "", false},
		{"remember only", "", "true", false},
		{"neither", "", "", false},
		{"auth not true", "false", "true", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemStore()
			if tt.auth != "" {
				require.NoError(t, store.Set(storage.KeyAuth, []byte(tt.auth)))
			}
			if tt.remember != "" {
				require.NoError(t, store.Set(storage.KeyRemember, []byte(tt.remember)))
			}

			svc := newTestService(store)
			svc.Restore()
			assert.Equal(t, tt.want, svc.Authenticated())
		})
	}
}
