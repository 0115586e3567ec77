package types

import (
	"errors"
	"time"
)

type PlanStatus string

const (
	PlanStatusActive   PlanStatus = "ACTIVE"
	PlanStatusInactive PlanStatus = "INACTIVE"
)

// Plan is the API's canonical representation of a membership plan.
// Duration is the billing period length in days.
type Plan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Duration    int        `json:"duration"`
	Price       float64    `json:"price"`
	Description *string    `json:"description"`
	Status      PlanStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type CreatePlanRequest struct {
	Name        string      `json:"name" validate:"required,max=120"`
	Duration    int         `json:"duration" validate:"gt=0"`
	Price       float64     `json:"price" validate:"gte=0"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      *PlanStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *CreatePlanRequest) Validate() error {
	return validateStruct(r)
}

type UpdatePlanRequest struct {
	Name        *string     `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Duration    *int        `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Price       *float64    `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      *PlanStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *UpdatePlanRequest) Validate() error {
	if r.Name == nil && r.Duration == nil && r.Price == nil && r.Description == nil && r.Status == nil {
		return errors.New("at least one of name, duration, price, description or status is required")
	}
	return validateStruct(r)
}

func (s PlanStatus) Valid() bool {
	return s == PlanStatusActive || s == PlanStatusInactive
}
