package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/vibast-solutions/gym-console/app/client"
	"github.com/vibast-solutions/gym-console/app/types"
)

type mockCounter struct {
	count int64
	err   error
	calls int
}

func (m *mockCounter) GetActiveCount(context.Context) (int64, error) {
	m.calls++
	return m.count, m.err
}

func (m *mockCounter) GetPendingCount(context.Context) (int64, error) {
	m.calls++
	return m.count, m.err
}

type mockStudentReader struct {
	getByIDFn func(ctx context.Context, id string) (*types.Student, error)
}

func (m *mockStudentReader) GetByID(ctx context.Context, id string) (*types.Student, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return &types.Student{ID: id}, nil
}

type mockContractReader struct {
	getActiveFn func(ctx context.Context, studentID string) (*types.Contract, error)
}

func (m *mockContractReader) GetActiveByStudent(ctx context.Context, studentID string) (*types.Contract, error) {
	if m.getActiveFn != nil {
		return m.getActiveFn(ctx, studentID)
	}
	return nil, nil
}

type mockCheckinReader struct {
	getByStudentFn func(ctx context.Context, studentID string) ([]types.Checkin, error)
}

func (m *mockCheckinReader) GetByStudent(ctx context.Context, studentID string) ([]types.Checkin, error) {
	if m.getByStudentFn != nil {
		return m.getByStudentFn(ctx, studentID)
	}
	return []types.Checkin{}, nil
}

func TestDashboardBuild(t *testing.T) {
	svc := NewDashboardService(&mockCounter{count: 120}, &mockCounter{count: 98}, &mockCounter{count: 4})

	dashboard, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(dashboard.Cards) != 3 {
		t.Fatalf("expected three cards, got %d", len(dashboard.Cards))
	}
	if dashboard.Cards[0].Value != 120 || dashboard.Cards[1].Value != 98 {
		t.Fatalf("unexpected card values: %+v", dashboard.Cards)
	}
	pending := dashboard.Cards[2]
	if pending.Title != CardPendingCheckins || !pending.ShowNotification() {
		t.Fatalf("expected pending check-ins notification, got %+v", pending)
	}
	if dashboard.Cards[0].ShowNotification() || dashboard.Cards[1].ShowNotification() {
		t.Fatal("expected no notification on plain counters")
	}
	if len(dashboard.Categories) == 0 {
		t.Fatal("expected category cards")
	}
}

func TestDashboardBuildNoPendingHidesNotification(t *testing.T) {
	svc := NewDashboardService(&mockCounter{}, &mockCounter{}, &mockCounter{count: 0})
	dashboard, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dashboard.Cards[2].ShowNotification() {
		t.Fatal("expected hidden notification with zero pending check-ins")
	}
}

func TestDashboardBuildStopsAtFirstFailure(t *testing.T) {
	apiErr := &client.APIError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}
	contracts := &mockCounter{err: apiErr}
	checkins := &mockCounter{}
	svc := NewDashboardService(&mockCounter{count: 1}, contracts, checkins)

	_, err := svc.Build(context.Background())
	if !errors.Is(err, apiErr) {
		t.Fatalf("expected wrapped api error, got %v", err)
	}
	if client.StatusCode(err) != http.StatusUnauthorized {
		t.Fatalf("expected status to survive wrapping, got %d", client.StatusCode(err))
	}
	if checkins.calls != 0 {
		t.Fatalf("expected no call after failure, got %d", checkins.calls)
	}
}

func TestStudentOverview(t *testing.T) {
	svc := NewStudentService(
		&mockStudentReader{},
		&mockContractReader{getActiveFn: func(_ context.Context, studentID string) (*types.Contract, error) {
			return &types.Contract{ID: "c1", StudentID: studentID, Status: types.ContractStatusActive}, nil
		}},
		&mockCheckinReader{getByStudentFn: func(_ context.Context, studentID string) ([]types.Checkin, error) {
			return []types.Checkin{{ID: "k1", StudentID: studentID}}, nil
		}},
	)

	overview, err := svc.Overview(context.Background(), "s1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if overview.Student.ID != "s1" || overview.ActiveContract.ID != "c1" || len(overview.Checkins) != 1 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}

func TestStudentOverviewWithoutActiveContract(t *testing.T) {
	svc := NewStudentService(&mockStudentReader{}, &mockContractReader{}, &mockCheckinReader{})

	overview, err := svc.Overview(context.Background(), "s1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if overview.ActiveContract != nil {
		t.Fatalf("expected absent active contract, got %+v", overview.ActiveContract)
	}
}

func TestStudentOverviewNotFound(t *testing.T) {
	svc := NewStudentService(
		&mockStudentReader{getByIDFn: func(context.Context, string) (*types.Student, error) {
			return nil, &client.APIError{StatusCode: http.StatusNotFound}
		}},
		&mockContractReader{},
		&mockCheckinReader{},
	)

	_, err := svc.Overview(context.Background(), "s404")
	if !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}
