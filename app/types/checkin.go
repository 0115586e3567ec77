package types

import "time"

type CheckinStatus string

const (
	CheckinStatusPending    CheckinStatus = "PENDING"
	CheckinStatusAuthorized CheckinStatus = "AUTHORIZED"
	CheckinStatusRejected   CheckinStatus = "REJECTED"
)

type Checkin struct {
	ID           string        `json:"id"`
	StudentID    string        `json:"studentId"`
	Status       CheckinStatus `json:"status"`
	AuthorizedAt *time.Time    `json:"authorizedAt,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type CreateCheckinRequest struct {
	StudentID string `json:"studentId" validate:"required"`
}

func (r *CreateCheckinRequest) Validate() error {
	return validateStruct(r)
}
