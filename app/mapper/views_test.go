package mapper

import (
	"testing"
	"time"

	"github.com/vibast-solutions/gym-console/app/types"
)

func TestContractsToTable(t *testing.T) {
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	table := ContractsToTable([]types.Contract{
		{ID: "c1", StudentID: "s1", PlanID: "p1", Status: types.ContractStatusActive, StartDate: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), EndDate: &end},
		{ID: "c2", StudentID: "s1", PlanID: "p1", Status: types.ContractStatusPending},
	})
	if len(table.Rows) != 2 {
		t.Fatalf("expected two rows, got %d", len(table.Rows))
	}
	if table.Rows[0][4] != "2026-02-01" || table.Rows[0][5] != "2026-03-01" {
		t.Fatalf("unexpected dates: %v", table.Rows[0])
	}
	if table.Rows[1][4] != "" || table.Rows[1][5] != "" {
		t.Fatalf("expected blank dates, got %v", table.Rows[1])
	}
}

func TestPlansToTable(t *testing.T) {
	description := "Unlimited access"
	table := PlansToTable([]types.Plan{{ID: "p1", Name: "Monthly", Duration: 30, Price: 99.9, Status: types.PlanStatusActive, Description: &description}})
	row := table.Rows[0]
	if row[2] != "30d" || row[3] != "99.90" || row[5] != "Unlimited access" {
		t.Fatalf("unexpected row: %v", row)
	}
}

func TestContractActionsDisablesCheckinForInactive(t *testing.T) {
	menu := ContractActions(&types.Contract{ID: "c1", StudentID: "s1", PlanID: "p1", Status: types.ContractStatusExpired})
	last := menu.Items[len(menu.Items)-1]
	if !last.Disabled {
		t.Fatalf("expected check-in action disabled, got %+v", last)
	}
	if len(ContractActions(nil).Items) != 0 {
		t.Fatal("expected empty menu for nil contract")
	}
}

func TestCheckinActions(t *testing.T) {
	menu := CheckinActions(&types.Checkin{ID: "k1", StudentID: "s1", Status: types.CheckinStatusPending})
	if len(menu.Enabled()) != 3 {
		t.Fatalf("expected every action enabled for pending check-in, got %+v", menu.Items)
	}
	menu = CheckinActions(&types.Checkin{ID: "k1", StudentID: "s1", Status: types.CheckinStatusAuthorized})
	if len(menu.Enabled()) != 1 {
		t.Fatalf("expected only the contract action for authorized check-in, got %+v", menu.Items)
	}
}
