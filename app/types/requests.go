package types

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

// IDRequest is a request addressed by a single path identifier.
type IDRequest struct {
	ID string
}

func NewIDRequestFromContext(ctx echo.Context) (*IDRequest, error) {
	return &IDRequest{ID: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *IDRequest) Validate() error {
	if r.ID == "" {
		return errors.New("id is required")
	}
	return nil
}

func NewCreateContractRequestFromContext(ctx echo.Context) (*CreateContractRequest, error) {
	var body CreateContractRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.StudentID = strings.TrimSpace(body.StudentID)
	body.PlanID = strings.TrimSpace(body.PlanID)
	body.StartDate = strings.TrimSpace(body.StartDate)
	return &body, nil
}

func NewCreatePlanRequestFromContext(ctx echo.Context) (*CreatePlanRequest, error) {
	var body CreatePlanRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Description != nil {
		description := strings.TrimSpace(*body.Description)
		body.Description = &description
	}
	return &body, nil
}
