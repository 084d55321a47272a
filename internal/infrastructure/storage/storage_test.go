package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
)

// providers ikkala ombor bir xil shartnomaga bo'ysunishi kerak
func providers(t *testing.T) map[string]repository.StorageProvider {
	t.Helper()
	sqlite, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "nested", "ecoswap.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]repository.StorageProvider{
		"memory": NewMemoryStorage(),
		"sqlite": sqlite,
	}
}

func TestLocalStorageContract(t *testing.T) {
	ctx := context.Background()

	for name, provider := range providers(t) {
		t.Run(name, func(t *testing.T) {
			alice := provider.Namespace("1")
			bob := provider.Namespace("2")

			_, ok, err := alice.Get(ctx, CartKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, alice.Set(ctx, CartKey, []byte(`[1]`)))
			require.NoError(t, alice.Set(ctx, CartKey, []byte(`[2]`)))

			got, ok, err := alice.Get(ctx, CartKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[2]`, string(got))

			// Namespace lar bir-biridan ajratilgan
			_, ok, err = bob.Get(ctx, CartKey)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, alice.Delete(ctx, CartKey))
			_, ok, err = alice.Get(ctx, CartKey)
			require.NoError(t, err)
			assert.False(t, ok)

			assert.NoError(t, alice.Delete(ctx, "missing"))
		})
	}
}

func TestMemoryStorageCopiesValues(t *testing.T) {
	ctx := context.Background()
	ns := NewMemoryStorage().Namespace("x")

	value := []byte("abc")
	require.NoError(t, ns.Set(ctx, "k", value))
	value[0] = 'z'

	got, _, err := ns.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'q'
	again, _, err := ns.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestSQLiteStorageSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ecoswap.db")

	first, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Namespace("99").Set(ctx, UserKey, []byte(`{"email":"a@b.c"}`)))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer second.Close()

	got, ok, err := second.Namespace("99").Get(ctx, UserKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"email":"a@b.c"}`, string(got))
}

func TestNewSQLiteStorageEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}
