package service

import (
	"context"
	"fmt"

	"github.com/vibast-solutions/gym-console/app/client"
	"github.com/vibast-solutions/gym-console/app/types"
)

type studentReader interface {
	GetByID(ctx context.Context, id string) (*types.Student, error)
}

type activeContractReader interface {
	GetActiveByStudent(ctx context.Context, studentID string) (*types.Contract, error)
}

type checkinReader interface {
	GetByStudent(ctx context.Context, studentID string) ([]types.Checkin, error)
}

// StudentOverview is the student detail page: the record, its active
// contract (nil when none) and its check-in history.
type StudentOverview struct {
	Student        *types.Student  `json:"student"`
	ActiveContract *types.Contract `json:"activeContract"`
	Checkins       []types.Checkin `json:"checkins"`
}

type StudentService struct {
	students  studentReader
	contracts activeContractReader
	checkins  checkinReader
}

func NewStudentService(students studentReader, contracts activeContractReader, checkins checkinReader) *StudentService {
	return &StudentService{
		students:  students,
		contracts: contracts,
		checkins:  checkins,
	}
}

func (s *StudentService) Overview(ctx context.Context, studentID string) (*StudentOverview, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	activeContract, err := s.contracts.GetActiveByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load active contract: %w", err)
	}

	checkins, err := s.checkins.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load check-ins: %w", err)
	}

	return &StudentOverview{
		Student:        student,
		ActiveContract: activeContract,
		Checkins:       checkins,
	}, nil
}
