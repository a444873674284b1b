package create_lead

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/integrations/unoservice"
	dirService "github.com/velalaser/VLL-SchedulingService/internal/service/directory"
)

type stubDirectory struct {
	units map[int64]*domain.Unit
}

func (d *stubDirectory) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	if u, ok := d.units[id]; ok {
		return u, nil
	}
	return nil, dirService.ErrUnitNotFound
}

type stubUno struct {
	result      *unoservice.CreateLeadResult
	err         error
	lastPayload *unoservice.CreateLeadRequest
}

func (u *stubUno) CreateLead(ctx context.Context, payload *unoservice.CreateLeadRequest) (*unoservice.CreateLeadResult, error) {
	u.lastPayload = payload
	return u.result, u.err
}

type stubDraftStore struct {
	lastClientID string
	lastDraft    *domain.LeadDraft
}

func (s *stubDraftStore) Set(clientID string, draft *domain.LeadDraft) {
	s.lastClientID = clientID
	s.lastDraft = draft
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		ClientID: "client-1",
		Name:     "Maria Silva",
		Phone:    "(11) 91234-5678",
		UnitID:   1,
	}
}

func newDeps() (*stubDirectory, *stubUno, *stubDraftStore) {
	dir := &stubDirectory{units: map[int64]*domain.Unit{
		1: {ID: 1, ExternalID: "moema", Name: "Unidade Moema", Bookable: true},
		3: {ID: 3, Name: "Unidade Sem UNO", Bookable: false},
	}}
	uno := &stubUno{result: &unoservice.CreateLeadResult{ID: "lead-123"}}
	return dir, uno, &stubDraftStore{}
}

func TestExecute_Success(t *testing.T) {
	dir, uno, drafts := newDeps()
	uc := NewUseCase(dir, uno, drafts, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "lead-123", resp.LeadID)

	// Лид ушёл с кодом страны и только цифрами
	require.NotNil(t, uno.lastPayload)
	assert.Equal(t, "moema", uno.lastPayload.FranchiseID)
	assert.Equal(t, "5511912345678", uno.lastPayload.CellPhone)

	// Черновик сохранён для мастера записи
	assert.Equal(t, "client-1", drafts.lastClientID)
	require.NotNil(t, drafts.lastDraft)
	assert.Equal(t, "Maria Silva", drafts.lastDraft.Name)
	assert.Equal(t, "11912345678", drafts.lastDraft.Phone)
	require.NotNil(t, drafts.lastDraft.ExternalID)
	assert.Equal(t, "moema", *drafts.lastDraft.ExternalID)
}

func TestExecute_InvalidInput(t *testing.T) {
	dir, uno, drafts := newDeps()
	uc := NewUseCase(dir, uno, drafts, noopLogger{})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "missing client id", mutate: func(r *Request) { r.ClientID = "" }},
		{name: "bad unit id", mutate: func(r *Request) { r.UnitID = 0 }},
		{name: "short name", mutate: func(r *Request) { r.Name = "Jo" }},
		{name: "bad phone", mutate: func(r *Request) { r.Phone = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	// Внешняя система не вызывалась
	assert.Nil(t, uno.lastPayload)
}

func TestExecute_UnitNotFound(t *testing.T) {
	dir, uno, drafts := newDeps()
	uc := NewUseCase(dir, uno, drafts, noopLogger{})

	req := validRequest()
	req.UnitID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnitNotFound)
}

func TestExecute_UnitNotBookable(t *testing.T) {
	dir, uno, drafts := newDeps()
	uc := NewUseCase(dir, uno, drafts, noopLogger{})

	req := validRequest()
	req.UnitID = 3

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnitNotBookable)
}

func TestExecute_UnoFailureDoesNotStoreDraft(t *testing.T) {
	dir, uno, drafts := newDeps()
	uno.result = nil
	uno.err = errors.New("timeout")
	uc := NewUseCase(dir, uno, drafts, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, drafts.lastDraft)
}
