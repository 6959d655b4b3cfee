package prefs

import (
	"context"
	"path/filepath"
	"testing"

	"study_tracker_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	v, err := s.Get(ctx, "pinnedSubjects")
	require.NoError(t, err)
	assert.Equal(t, "", v, "missing keys read as empty")

	require.NoError(t, s.Set(ctx, "pinnedSubjects", `["a","b"]`))
	v, err = s.Get(ctx, "pinnedSubjects")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)

	require.NoError(t, s.Set(ctx, "pinnedSubjects", `[]`))
	v, _ = s.Get(ctx, "pinnedSubjects")
	assert.Equal(t, `[]`, v)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestBoltStore(t *testing.T) {
	s, err := OpenBolt(filepath.Join(t.TempDir(), "nested", "prefs.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestBoltStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	s, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestNew(t *testing.T) {
	s, err := New(&config.PrefsConfig{Type: "memory"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = New(&config.PrefsConfig{Type: "redis"}, nil)
	assert.Error(t, err)

	_, err = New(&config.PrefsConfig{Type: "etcd"}, nil)
	assert.Error(t, err)
}
