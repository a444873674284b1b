// Package wizard implements the three-step booking state machine:
// unit selection, schedule selection with live availability, contact
// entry and submission. Every mutation happens under the per-session
// lock of the registry; external HTTP calls run with the lock released
// and their results are applied only if the session state is still
// relevant (sequence-number check).
package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/velalaser/VLL-SchedulingService/internal/domain"
	"github.com/velalaser/VLL-SchedulingService/internal/infra/sessions"
	"github.com/velalaser/VLL-SchedulingService/internal/integrations/unoservice"
	"github.com/velalaser/VLL-SchedulingService/pkg/ptr"
	"github.com/velalaser/VLL-SchedulingService/pkg/types"
)

// Сообщения, показываемые пользователю в блоке уведомлений сессии
const (
	noticeNoTimes     = "Nenhum horário disponível. Por favor, selecione outra data."
	noticeTimesFailed = "Erro ao carregar horários. Tente novamente."
	noticeSubmitError = "Erro ao agendar. Tente novamente."
)

// Service реализует операции мастера записи
type Service struct {
	sessions   SessionRegistry
	directory  Directory
	unoClient  UnoClient
	draftStore DraftStore
	timeNow    TimeProvider
	logger     Logger
}

// NewService создает новый экземпляр сервиса мастера записи
func NewService(
	sessions SessionRegistry,
	directory Directory,
	unoClient UnoClient,
	draftStore DraftStore,
	timeNow TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		sessions:   sessions,
		directory:  directory,
		unoClient:  unoClient,
		draftStore: draftStore,
		timeNow:    timeNow,
		logger:     logger,
	}
}

// withSession выполняет fn под блокировкой сессии, переводя ошибку
// реестра в сентинел сервиса
func (s *Service) withSession(id string, fn func(sn *domain.WizardSession) error) error {
	err := s.sessions.WithSession(id, fn)
	if errors.Is(err, sessions.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return err
}

// CreateSession создает новую сессию мастера.
// Если у клиента есть черновик (имя/телефон/юнит с лид-формы),
// он потребляется: контакты предзаполняются, а предвыбранный юнит
// сразу переводит сессию на шаг выбора расписания.
func (s *Service) CreateSession(ctx context.Context, clientID string, preselectExternalID string) (*domain.WizardSession, error) {
	session := s.sessions.Create()
	now := s.timeNow.Now()

	// 1. Потребляем черновик клиента (одноразовое чтение)
	var draft *domain.LeadDraft
	if clientID != "" {
		draft = s.draftStore.Take(clientID)
	}

	if draft != nil {
		session.Name = draft.Name
		session.Phone = draft.Phone
	}

	// 2. Определяем предвыбранный юнит: явный externalId из запроса
	// имеет приоритет над юнитом из черновика
	unit := s.resolvePreselected(ctx, preselectExternalID, draft)

	err := s.withSession(session.ID, func(sn *domain.WizardSession) error {
		sn.Name = session.Name
		sn.Phone = session.Phone
		sn.ViewedMonth = monthStart(now)

		// 3. Bookable юнит пропускает шаг выбора юнита
		if unit != nil && unit.Bookable {
			sn.UnitID = ptr.Ptr(unit.ID)
			sn.UnitExternalID = unit.ExternalID
			sn.Step = domain.StepPickSchedule
		}

		*session = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateSession: session %s created at step %s", session.ID, session.Step)
	return session, nil
}

// resolvePreselected возвращает юнит для предвыбора или nil.
// Ошибки каталога здесь не фатальны: сессия просто начнётся с шага 1.
func (s *Service) resolvePreselected(ctx context.Context, externalID string, draft *domain.LeadDraft) *domain.Unit {
	if externalID != "" {
		unit, err := s.directory.GetByExternalID(ctx, externalID)
		if err != nil {
			s.logger.Warn("CreateSession: preselected unit %q not found: %v", externalID, err)
			return nil
		}
		return unit
	}

	if draft == nil {
		return nil
	}
	if draft.ExternalID != nil && *draft.ExternalID != "" {
		unit, err := s.directory.GetByExternalID(ctx, *draft.ExternalID)
		if err == nil {
			return unit
		}
		s.logger.Warn("CreateSession: draft unit %q not found: %v", *draft.ExternalID, err)
	}
	if draft.UnitID != nil {
		unit, err := s.directory.GetByID(ctx, *draft.UnitID)
		if err == nil {
			return unit
		}
		s.logger.Warn("CreateSession: draft unit id=%d not found: %v", *draft.UnitID, err)
	}
	return nil
}

// GetSession возвращает копию текущего состояния сессии
func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.WizardSession, error) {
	var snapshot domain.WizardSession

	err := s.withSession(sessionID, func(sn *domain.WizardSession) error {
		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Calendar строит календарную сетку для текущего состояния сессии
func (s *Service) Calendar(ctx context.Context, sessionID string) (*domain.CalendarGrid, error) {
	var grid domain.CalendarGrid

	err := s.withSession(sessionID, func(sn *domain.WizardSession) error {
		viewed := sn.ViewedMonth
		if viewed.IsZero() {
			viewed = monthStart(s.timeNow.Now())
		}
		grid = buildCalendar(viewed, sn.SelectedDate, s.timeNow.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &grid, nil
}

// SelectUnit выбирает юнит сессии. Смена юнита сбрасывает дату,
// время и загруженные часы: расписание привязано к юниту.
func (s *Service) SelectUnit(ctx context.Context, sessionID string, unitID int64) (*domain.WizardSession, error) {
	// 1. Проверяем юнит в каталоге до захвата сессии
	unit, err := s.directory.GetByID(ctx, unitID)
	if err != nil {
		s.logger.Warn("SelectUnit: unit id=%d not found: %v", unitID, err)
		return nil, ErrUnitNotFound
	}
	if !unit.Bookable {
		return nil, ErrUnitNotBookable
	}

	var snapshot domain.WizardSession
	err = s.withSession(sessionID, func(sn *domain.WizardSession) error {
		if sn.IsTerminal() {
			return ErrSessionTerminal
		}
		if sn.Submitting {
			return ErrSubmitInFlight
		}
		sn.Notice = nil

		// 2. Повторный выбор того же юнита ничего не меняет
		changed := sn.UnitID == nil || *sn.UnitID != unit.ID
		if changed {
			sn.UnitID = ptr.Ptr(unit.ID)
			sn.UnitExternalID = unit.ExternalID
			sn.ClearSchedule()
			sn.LoadingTimes = false
			// обесцениваем возможный запрос доступности в полёте
			sn.AvailSeq++

			// если пользователь уже был дальше шага расписания,
			// возвращаем его: выбранное время больше не валидно
			if sn.Step > domain.StepPickSchedule {
				sn.Step = domain.StepPickSchedule
			}
		}

		// 3. С шага выбора юнита переходим к расписанию
		if sn.Step == domain.StepPickUnit {
			sn.Step = domain.StepPickSchedule
			sn.ViewedMonth = monthStart(s.timeNow.Now())
		}

		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// NavigateMonth листает отображаемый месяц календаря на +/-1.
// Выход за горизонт (текущий месяц .. месяц конца горизонта)
// молча игнорируется.
func (s *Service) NavigateMonth(ctx context.Context, sessionID string, delta int) (*domain.WizardSession, error) {
	if delta != -1 && delta != 1 {
		return nil, ErrInvalidDate
	}

	var snapshot domain.WizardSession
	err := s.withSession(sessionID, func(sn *domain.WizardSession) error {
		if sn.IsTerminal() {
			return ErrSessionTerminal
		}
		if sn.Step != domain.StepPickSchedule {
			return ErrWrongStep
		}

		today := s.timeNow.Now()
		viewed := sn.ViewedMonth
		if viewed.IsZero() {
			viewed = monthStart(today)
		}

		if delta < 0 && canNavigatePrev(viewed, today) {
			sn.ViewedMonth = monthStart(viewed).AddDate(0, -1, 0)
		}
		if delta > 0 && canNavigateNext(viewed, today) {
			sn.ViewedMonth = monthStart(viewed).AddDate(0, 1, 0)
		}

		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// SelectDay выбирает дату и запускает загрузку доступных часов.
// Прошедшие даты и даты за горизонтом молча игнорируются.
// Часы запрашиваются у внешней системы без удержания блокировки
// сессии; результат применяется только если за время запроса
// юнит/дата не поменялись (совпадение номера AvailSeq).
func (s *Service) SelectDay(ctx context.Context, sessionID string, dateISO string) (*domain.WizardSession, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateISO, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var (
		snapshot   domain.WizardSession
		seq        uint64
		externalID string
		fetch      bool
	)

	// 1. Фиксируем выбор даты под блокировкой
	err = s.withSession(sessionID, func(sn *domain.WizardSession) error {
		if sn.IsTerminal() {
			return ErrSessionTerminal
		}
		if sn.Step != domain.StepPickSchedule {
			return ErrWrongStep
		}
		if !sn.HasUnit() {
			return ErrWrongStep
		}
		sn.Notice = nil

		cell := cellFor(date, s.timeNow.Now())
		if !cell.Selectable() {
			// невыбираемая ячейка: состояние не меняется
			snapshot = *sn
			return nil
		}

		d := dateOnly(date)
		sn.SelectedDate = &d
		sn.ViewedMonth = monthStart(d)
		sn.ClearTimes()
		sn.LoadingTimes = true
		sn.AvailSeq++

		seq = sn.AvailSeq
		externalID = sn.UnitExternalID
		fetch = true

		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !fetch {
		return &snapshot, nil
	}

	// 2. Запрашиваем часы без блокировки сессии
	dateBR := dateOnly(date).Format(domain.BRDateFormat)
	avail, fetchErr := s.unoClient.GetAvailableHours(ctx, externalID, dateBR)

	// 3. Применяем результат, если выбор всё ещё актуален
	err = s.withSession(sessionID, func(sn *domain.WizardSession) error {
		if sn.AvailSeq != seq {
			// юнит или дата сменились за время запроса - ответ устарел
			snapshot = *sn
			return nil
		}
		sn.LoadingTimes = false

		switch {
		case fetchErr != nil:
			s.logger.Error("SelectDay: failed to load hours for unit %q on %s: %v", externalID, dateBR, fetchErr)
			sn.Notice = &domain.Notice{Kind: domain.NoticeError, Message: noticeTimesFailed}
		case avail == nil || !avail.HasSlots():
			sn.Notice = &domain.Notice{Kind: domain.NoticeWarning, Message: noticeNoTimes}
		default:
			sn.Times = avail.Slots
			sn.ServiceID = avail.ServiceID
			sn.TimeEnabled = true
		}

		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// SelectTime выбирает время из загруженного списка.
// Вместе со временем фиксируется комната выбранного слота.
func (s *Service) SelectTime(ctx context.Context, sessionID string, hour string) (*domain.WizardSession, error) {
	parsedHour, parseErr := types.NewTimeStringFromString(hour)
	if parseErr != nil {
		return nil, ErrTimeNotAvailable
	}

	var snapshot domain.WizardSession
	err := s.withSession(sessionID, func(sn *domain.WizardSession) error {
		if sn.IsTerminal() {
			return ErrSessionTerminal
		}
		if sn.Step != domain.StepPickSchedule {
			return ErrWrongStep
		}
		if !sn.TimeEnabled {
			return ErrTimeNotAvailable
		}
		sn.Notice = nil

		slot := sn.FindSlot(parsedHour)
		if slot == nil {
			return ErrTimeNotAvailable
		}

		sn.SelectedTime = slot.Hour
		sn.RoomID = ptr.Ptr(slot.RoomID)

		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ContinueToCustomer переводит сессию с шага расписания на шаг
// контактных данных. Переход охраняется полнотой расписания.
func (s *Service) ContinueToCustomer(ctx context.Context, sessionID string) (*domain.WizardSession, error) {
	var snapshot domain.WizardSession

	err := s.withSession(sessionID, func(sn *domain.WizardSession) error {
		if sn.IsTerminal() {
			return ErrSessionTerminal
		}
		if sn.Step != domain.StepPickSchedule {
			return ErrWrongStep
		}
		sn.Notice = nil

		if vErr := validateSchedule(sn); vErr != nil {
			return vErr
		}

		sn.Step = domain.StepEnterContact
		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// BackStep возвращает сессию на предыдущий шаг мастера.
// Сделанные выборы при этом сохраняются.
func (s *Service) BackStep(ctx context.Context, sessionID string) (*domain.WizardSession, error) {
	var snapshot domain.WizardSession

	err := s.withSession(sessionID, func(sn *domain.WizardSession) error {
		if sn.IsTerminal() {
			return ErrSessionTerminal
		}
		if sn.Submitting {
			return ErrSubmitInFlight
		}
		sn.Notice = nil

		switch sn.Step {
		case domain.StepEnterContact:
			sn.Step = domain.StepPickSchedule
		case domain.StepPickSchedule:
			sn.Step = domain.StepPickUnit
		default:
			return ErrWrongStep
		}

		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Submit отправляет запись во внешнюю систему бронирования.
// Флаг Submitting выставляется под блокировкой, живёт на время HTTP
// вызова и снимается при любом исходе; пока он выставлен, повторная
// отправка и изменения сессии отклоняются. Успех переводит сессию в
// терминальный шаг; отказ и ошибка оставляют её на шаге контактов с
// уведомлением.
func (s *Service) Submit(ctx context.Context, sessionID string, name, phone string) (*domain.WizardSession, error) {
	var (
		snapshot domain.WizardSession
		payload  unoservice.CreateScheduleRequest
		external string
	)

	// 1. Валидируем и помечаем отправку под блокировкой
	err := s.withSession(sessionID, func(sn *domain.WizardSession) error {
		if sn.IsTerminal() {
			return ErrSessionTerminal
		}
		if sn.Step != domain.StepEnterContact {
			return ErrWrongStep
		}
		if sn.Submitting {
			return ErrSubmitInFlight
		}
		sn.Notice = nil

		if vErr := validateContact(name, phone); vErr != nil {
			return vErr
		}
		// расписание могло быть сброшено сменой юнита - перепроверяем
		if vErr := validateSchedule(sn); vErr != nil {
			return vErr
		}
		if sn.RoomID == nil || sn.ServiceID == nil {
			return ErrTimeNotAvailable
		}

		sn.Name = name
		sn.Phone = phone
		sn.Submitting = true

		external = sn.UnitExternalID
		payload = unoservice.CreateScheduleRequest{
			Name:           name,
			CellPhone:      domain.PhoneCountryCode + domain.PhoneDigits(phone),
			Date:           dateOnly(*sn.SelectedDate).Format(domain.BRDateFormat),
			Hour:           sn.SelectedTime.String(),
			DealActivityID: *sn.ServiceID,
			RoomID:         *sn.RoomID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 2. Вызываем внешнюю систему без блокировки сессии
	result, callErr := s.unoClient.CreateSchedule(ctx, external, &payload)

	// 3. Применяем исход
	err = s.withSession(sessionID, func(sn *domain.WizardSession) error {
		sn.Submitting = false

		switch {
		case callErr != nil:
			s.logger.Error("Submit: schedule creation failed for unit %q: %v", external, callErr)
			sn.Notice = &domain.Notice{Kind: domain.NoticeError, Message: noticeSubmitError}
		case !result.OK:
			message := result.Message
			if message == "" {
				message = noticeSubmitError
			}
			s.logger.Warn("Submit: schedule rejected for unit %q: %s", external, message)
			sn.Notice = &domain.Notice{Kind: domain.NoticeError, Message: message}
		default:
			sn.Step = domain.StepSubmitted
			sn.BookingID = result.ID
			s.logger.Info("Submit: schedule created for unit %q, session %s", external, sn.ID)
		}

		snapshot = *sn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
