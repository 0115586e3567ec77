package types

import "time"

type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "ACTIVE"
	ContractStatusPending   ContractStatus = "PENDING"
	ContractStatusExpired   ContractStatus = "EXPIRED"
	ContractStatusCancelled ContractStatus = "CANCELLED"
)

type Contract struct {
	ID        string         `json:"id"`
	StudentID string         `json:"studentId"`
	PlanID    string         `json:"planId"`
	StartDate time.Time      `json:"startDate"`
	EndDate   *time.Time     `json:"endDate,omitempty"`
	Status    ContractStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// CreateContractRequest carries the caller-supplied half of a Contract; the API
// assigns id, endDate and timestamps.
type CreateContractRequest struct {
	StudentID string          `json:"studentId" validate:"required"`
	PlanID    string          `json:"planId" validate:"required"`
	StartDate string          `json:"startDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Status    *ContractStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE PENDING EXPIRED CANCELLED"`
}

func (r *CreateContractRequest) Validate() error {
	return validateStruct(r)
}

func (r *CreateContractRequest) ParsedStartDate() (time.Time, error) {
	return time.Parse(rfc3339Layout, r.StartDate)
}

func (s ContractStatus) Valid() bool {
	switch s {
	case ContractStatusActive, ContractStatusPending, ContractStatusExpired, ContractStatusCancelled:
		return true
	default:
		return false
	}
}
