package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	saved []string
	err   error
}

func (m *memStore) SaveDisplayName(name string) error {
	m.saved = append(m.saved, name)
	return m.err
}

func TestNameFlowPromptsWhenBlank(t *testing.T) {
	f := NewNameFlow(&memStore{}, "   ")
	assert.True(t, f.NeedsPrompt())
	assert.Equal(t, "Sin nombre", f.Label())
}

func TestNameFlowConfirmTrimsAndPersists(t *testing.T) {
	store := &memStore{}
	f := NewNameFlow(store, "")

	require.NoError(t, f.Confirm("  Ana  "))
	assert.Equal(t, "Ana", f.Name())
	assert.Equal(t, "Ana", f.Label())
	assert.False(t, f.NeedsPrompt())
	assert.Equal(t, []string{"Ana"}, store.saved)
}

func TestNameFlowSkipWritesCurrentValue(t *testing.T) {
	store := &memStore{}
	f := NewNameFlow(store, "Luis")

	require.NoError(t, f.Skip())
	assert.Equal(t, "Luis", f.Name())
	assert.Equal(t, []string{"Luis"}, store.saved)
}

func TestNameFlowReturnsStoreErrors(t *testing.T) {
	f := NewNameFlow(&memStore{err: errors.New("disk full")}, "")
	err := f.Confirm("Ana")
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, "Ana", f.Name())
}

func TestNameFlowWithoutStore(t *testing.T) {
	f := NewNameFlow(nil, "")
	assert.NoError(t, f.Confirm("Ana"))
}
