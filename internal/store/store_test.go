package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenDir(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_MissingKeyIsNilNil(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Get("nothere")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PutGetOverwrite(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(KeyLedger, []byte(`{"2026-01-01":{"0":true}}`)))
	got, err := s.Get(KeyLedger)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2026-01-01":{"0":true}}`, string(got))

	require.NoError(t, s.Put(KeyLedger, []byte(`{}`)))
	got, err = s.Get(KeyLedger)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(got))
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(KeyActivities, []byte(`[]`)))
	require.NoError(t, s.Delete(KeyActivities))

	got, err := s.Get(KeyActivities)
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting a missing key is fine
	require.NoError(t, s.Delete(KeyActivities))
}

func TestStore_KeysAreIndependent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(KeyActivities, []byte(`[1]`)))
	require.NoError(t, s.Put(KeyLedger, []byte(`[2]`)))
	require.NoError(t, s.Delete(KeyLedger))

	got, err := s.Get(KeyActivities)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}
