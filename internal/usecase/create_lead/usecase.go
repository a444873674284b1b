package create_lead

import (
	"context"
	"errors"
	"fmt"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/integrations/unoservice"
	dirService "github.com/velalaser/VLL-SchedulingService/internal/service/directory"
	"github.com/velalaser/VLL-SchedulingService/pkg/ptr"
)

// UseCase use case создания лида из формы быстрого контакта.
// После успешной отправки лида во внешнюю систему сохраняет черновик,
// чтобы мастер записи продолжил с заполненными именем и телефоном.
type UseCase struct {
	directory  Directory
	unoClient  UnoClient
	draftStore DraftStore
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(dir Directory, unoClient UnoClient, draftStore DraftStore, logger Logger) *UseCase {
	return &UseCase{
		directory:  dir,
		unoClient:  unoClient,
		draftStore: draftStore,
		logger:     logger,
	}
}

// Execute выполняет use case создания лида
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateLead: client=%s, unit=%d", req.ClientID, req.UnitID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateLead: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим юнит и проверяем подключение к внешней системе
	unit, err := uc.directory.GetByID(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, dirService.ErrUnitNotFound) {
			uc.logger.Warn("CreateLead: unit id=%d not found", req.UnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("CreateLead: failed to get unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	if !unit.Bookable {
		uc.logger.Warn("CreateLead: unit id=%d has no external booking id", req.UnitID)
		return nil, ErrUnitNotBookable
	}

	// 3. Отправляем лид во внешнюю систему
	phoneDigits := domain.PhoneDigits(req.Phone)
	result, err := uc.unoClient.CreateLead(ctx, &unoservice.CreateLeadRequest{
		FranchiseID: unit.ExternalID,
		Name:        req.Name,
		CellPhone:   domain.PhoneCountryCode + phoneDigits,
	})
	if err != nil {
		uc.logger.Error("CreateLead: uno client failed for unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to create lead: %v", ErrInternal, err)
	}

	// 4. Сохраняем черновик для продолжения в мастере записи
	uc.draftStore.Set(req.ClientID, &domain.LeadDraft{
		Name:       req.Name,
		Phone:      phoneDigits,
		UnitID:     ptr.Ptr(unit.ID),
		ExternalID: ptr.Ptr(unit.ExternalID),
	})

	uc.logger.Info("CreateLead: lead id=%s created for unit id=%d, draft stored", result.ID, req.UnitID)

	return &Response{LeadID: result.ID}, nil
}
