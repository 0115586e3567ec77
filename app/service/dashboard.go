package service

import (
	"context"
	"fmt"

	"github.com/vibast-solutions/gym-console/app/view"
)

const (
	CardActiveStudents  = "Active Students"
	CardActiveContracts = "Active Contracts"
	CardPendingCheckins = "Authorize Check-ins"
)

type studentCounter interface {
	GetActiveCount(ctx context.Context) (int64, error)
}

type contractCounter interface {
	GetActiveCount(ctx context.Context) (int64, error)
}

type checkinCounter interface {
	GetPendingCount(ctx context.Context) (int64, error)
}

type DashboardService struct {
	students  studentCounter
	contracts contractCounter
	checkins  checkinCounter
}

func NewDashboardService(students studentCounter, contracts contractCounter, checkins checkinCounter) *DashboardService {
	return &DashboardService{
		students:  students,
		contracts: contracts,
		checkins:  checkins,
	}
}

// Build fetches each counter in turn and stops at the first failure.
func (s *DashboardService) Build(ctx context.Context) (*view.Dashboard, error) {
	activeStudents, err := s.students.GetActiveCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active students: %w", err)
	}
	activeContracts, err := s.contracts.GetActiveCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active contracts: %w", err)
	}
	pendingCheckins, err := s.checkins.GetPendingCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending check-ins: %w", err)
	}

	return &view.Dashboard{
		Cards: []view.MetricCard{
			{Title: CardActiveStudents, Value: activeStudents, Description: "Students enrolled and active"},
			{Title: CardActiveContracts, Value: activeContracts, Description: "Contracts currently in force"},
			{Title: CardPendingCheckins, Value: pendingCheckins, Description: "Check-ins waiting for the front desk", Notify: true},
		},
		Categories: Categories(),
	}, nil
}

func Categories() []view.CategoryCard {
	return []view.CategoryCard{
		{Title: "Students", Description: "Register and look up students", Command: "gymctl students list"},
		{Title: "Contracts", Description: "Sign students to plans and review their contracts", Command: "gymctl contracts list --student <id>"},
		{Title: "Plans", Description: "Manage membership plans and prices", Command: "gymctl plans list"},
		{Title: "Check-ins", Description: "Authorize or reject pending check-ins", Command: "gymctl checkins pending"},
	}
}
