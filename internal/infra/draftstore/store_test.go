package draftstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
)

func TestStore_TakeIsSingleUse(t *testing.T) {
	s := NewStore()
	s.Set("client-1", &domain.LeadDraft{Name: "Maria", Phone: "11912345678"})

	draft := s.Take("client-1")
	require.NotNil(t, draft)
	assert.Equal(t, "Maria", draft.Name)

	// Повторное чтение возвращает nil
	assert.Nil(t, s.Take("client-1"))
}

func TestStore_SetOverwrites(t *testing.T) {
	s := NewStore()
	s.Set("client-1", &domain.LeadDraft{Name: "Maria"})
	s.Set("client-1", &domain.LeadDraft{Name: "João"})

	draft := s.Take("client-1")
	require.NotNil(t, draft)
	assert.Equal(t, "João", draft.Name)
}

func TestStore_IsolatedPerClient(t *testing.T) {
	s := NewStore()
	s.Set("client-1", &domain.LeadDraft{Name: "Maria"})

	assert.Nil(t, s.Take("client-2"))
	assert.NotNil(t, s.Take("client-1"))
}

func TestStore_NilDraftIgnored(t *testing.T) {
	s := NewStore()
	s.Set("client-1", nil)
	assert.Nil(t, s.Take("client-1"))
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()
	s.Set("client-1", &domain.LeadDraft{Name: "Maria"})
	s.Clear("client-1")
	assert.Nil(t, s.Take("client-1"))
}
