package create_lead

import (
	createLead "github.com/velalaser/VLL-SchedulingService/internal/usecase/create_lead"
)

// CreateLeadRequest HTTP request model
type CreateLeadRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	UnitID int64  `json:"unitId"`
}

// CreateLeadResponse HTTP response model
type CreateLeadResponse struct {
	LeadID string `json:"leadId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateLeadRequest) ToUseCaseRequest(clientID string) *createLead.Request {
	return &createLead.Request{
		ClientID: clientID,
		Name:     r.Name,
		Phone:    r.Phone,
		UnitID:   r.UnitID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createLead.Response) *CreateLeadResponse {
	return &CreateLeadResponse{LeadID: resp.LeadID}
}
