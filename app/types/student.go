package types

import (
	"errors"
	"time"
)

type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "ACTIVE"
	StudentStatusInactive StudentStatus = "INACTIVE"
)

type Student struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone"`
	BirthDate *string       `json:"birthDate"`
	Status    StudentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type CreateStudentRequest struct {
	Name      string  `json:"name" validate:"required,max=160"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	BirthDate *string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateStudentRequest) Validate() error {
	return validateStruct(r)
}

type UpdateStudentRequest struct {
	Name   *string        `json:"name,omitempty" validate:"omitempty,min=1,max=160"`
	Email  *string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone  *string        `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Status *StudentStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *UpdateStudentRequest) Validate() error {
	if r.Name == nil && r.Email == nil && r.Phone == nil && r.Status == nil {
		return errors.New("at least one of name, email, phone or status is required")
	}
	return validateStruct(r)
}
