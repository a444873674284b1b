package domain

// WizardStep is one of the ordered, validation-gated stages of the
// booking wizard.
type WizardStep int

const (
	StepPickUnit     WizardStep = 1
	StepPickSchedule WizardStep = 2
	StepEnterContact WizardStep = 3
	// StepSubmitted - терминальное состояние, новая запись требует новой сессии
	StepSubmitted WizardStep = 4
)

// String returns a readable step name for logs
func (s WizardStep) String() string {
	switch s {
	case StepPickUnit:
		return "pick_unit"
	case StepPickSchedule:
		return "pick_schedule"
	case StepEnterContact:
		return "enter_contact"
	case StepSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// LeadDraft carries partially entered contact info across pages.
// At most one draft exists per client; reading it clears it.
type LeadDraft struct {
	Name       string
	Phone      string
	UnitID     *int64  // внутренний ID юнита (опционально)
	ExternalID *string // externalId юнита во внешней системе (опционально)
}
