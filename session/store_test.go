package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finpanel/go-finance-client/session"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_SetGetDelete(t *testing.T) {
	s := session.NewInMemoryStore()

	_, ok := s.Get(session.KeyToken)
	require.False(t, ok)

	require.NoError(t, s.Set(session.KeyToken, "t1"))
	v, ok := s.Get(session.KeyToken)
	require.True(t, ok)
	require.Equal(t, "t1", v)

	// Overwrites are last-write-wins.
	require.NoError(t, s.Set(session.KeyToken, "t2"))
	v, _ = s.Get(session.KeyToken)
	require.Equal(t, "t2", v)

	require.NoError(t, s.Delete(session.KeyToken))
	_, ok = s.Get(session.KeyToken)
	require.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, s.Delete(session.KeyToken))
}

func TestInMemoryStore_KeyRequired(t *testing.T) {
	s := session.NewInMemoryStore()
	require.Error(t, s.Set("", "x"))
	require.Error(t, s.Delete(""))
}

func TestInMemoryStore_Keys(t *testing.T) {
	s := session.NewInMemoryStore()
	require.NoError(t, s.Set(session.KeyUserName, "Joao Silva"))
	require.NoError(t, s.Set(session.KeyClientID, "c1"))
	require.Equal(t, []string{session.KeyClientID, session.KeyUserName}, s.Keys())
}

func TestInMemoryStore_SubscribeNotify(t *testing.T) {
	s := session.NewInMemoryStore()

	var first, second int
	cancelFirst := s.Subscribe(func() { first++ })
	s.Subscribe(func() { second++ })

	s.NotifyProfileUpdated()
	require.Equal(t, 1, first)
	require.Equal(t, 1, second)

	cancelFirst()
	s.NotifyProfileUpdated()
	require.Equal(t, 1, first)
	require.Equal(t, 2, second)
}

func TestInMemoryStore_SubscriberReadsCurrentState(t *testing.T) {
	s := session.NewInMemoryStore()

	var seen string
	s.Subscribe(func() {
		seen, _ = s.Get(session.KeyUserName)
	})

	require.NoError(t, s.Set(session.KeyUserName, "Maria Souza"))
	s.NotifyProfileUpdated()
	require.Equal(t, "Maria Souza", seen)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	s, err := session.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(session.KeyToken, "t1"))
	require.NoError(t, s.Set(session.KeyUserEmail, "joao.silva@example.com"))
	require.NoError(t, s.Delete(session.KeyToken))

	// A new store over the same file sees the persisted state.
	reopened, err := session.NewFileStore(path)
	require.NoError(t, err)
	_, ok := reopened.Get(session.KeyToken)
	require.False(t, ok)
	email, ok := reopened.Get(session.KeyUserEmail)
	require.True(t, ok)
	require.Equal(t, "joao.silva@example.com", email)
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s, err := session.NewFileStore(path)
	require.NoError(t, err)
	require.Empty(t, s.Keys())
}

func TestNewFileStore_PathRequired(t *testing.T) {
	_, err := session.NewFileStore("")
	require.Error(t, err)
}
