package mapper

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vibast-solutions/gym-console/app/types"
	"github.com/vibast-solutions/gym-console/app/view"
)

const dateLayout = "2006-01-02"

func ContractsToTable(items []types.Contract) view.Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			item.StudentID,
			item.PlanID,
			string(item.Status),
			formatDate(item.StartDate),
			formatOptionalDate(item.EndDate),
		})
	}
	return view.Table{
		Headers: []string{"ID", "STUDENT", "PLAN", "STATUS", "START", "END"},
		Rows:    rows,
		Empty:   "No contracts found.",
	}
}

func PlansToTable(items []types.Plan) view.Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			item.Name,
			strconv.Itoa(item.Duration) + "d",
			strconv.FormatFloat(item.Price, 'f', 2, 64),
			string(item.Status),
			derefString(item.Description),
		})
	}
	return view.Table{
		Headers: []string{"ID", "NAME", "DURATION", "PRICE", "STATUS", "DESCRIPTION"},
		Rows:    rows,
		Empty:   "No plans found.",
	}
}

func StudentsToTable(items []types.Student) view.Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			item.Name,
			item.Email,
			derefString(item.Phone),
			string(item.Status),
		})
	}
	return view.Table{
		Headers: []string{"ID", "NAME", "EMAIL", "PHONE", "STATUS"},
		Rows:    rows,
		Empty:   "No students found.",
	}
}

func CheckinsToTable(items []types.Checkin) view.Table {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			item.StudentID,
			string(item.Status),
			item.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return view.Table{
		Headers: []string{"ID", "STUDENT", "STATUS", "CREATED"},
		Rows:    rows,
		Empty:   "No check-ins found.",
	}
}

// ContractActions lists what the console offers for one contract.
func ContractActions(item *types.Contract) view.ActionMenu {
	if item == nil {
		return view.ActionMenu{}
	}
	return view.ActionMenu{
		Title: fmt.Sprintf("Contract %s (%s)", item.ID, item.Status),
		Items: []view.ActionItem{
			{Label: "View student", Command: "gymctl students get " + item.StudentID},
			{Label: "View plan", Command: "gymctl plans get " + item.PlanID},
			{Label: "Student contracts", Command: "gymctl contracts list --student " + item.StudentID},
			{Label: "Register check-in", Command: "gymctl checkins create --student " + item.StudentID, Disabled: item.Status != types.ContractStatusActive},
		},
	}
}

func CheckinActions(item *types.Checkin) view.ActionMenu {
	if item == nil {
		return view.ActionMenu{}
	}
	pending := item.Status == types.CheckinStatusPending
	return view.ActionMenu{
		Title: fmt.Sprintf("Check-in %s (%s)", item.ID, item.Status),
		Items: []view.ActionItem{
			{Label: "Authorize", Command: "gymctl checkins authorize " + item.ID, Disabled: !pending},
			{Label: "Reject", Command: "gymctl checkins reject " + item.ID, Danger: true, Disabled: !pending},
			{Label: "Active contract", Command: "gymctl contracts active --student " + item.StudentID},
		},
	}
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(dateLayout)
}

func formatOptionalDate(v *time.Time) string {
	if v == nil {
		return ""
	}
	return formatDate(*v)
}
