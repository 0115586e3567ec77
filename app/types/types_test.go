package types

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestCreatePlanValidate(t *testing.T) {
	req := &CreatePlanRequest{Duration: 30, Price: 99.9}
	err := req.Validate()
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Fatalf("expected name validation error, got %v", err)
	}

	req = &CreatePlanRequest{Name: "Monthly", Price: 99.9}
	if err := req.Validate(); err == nil || !strings.Contains(err.Error(), "duration") {
		t.Fatalf("expected duration validation error, got %v", err)
	}

	status := PlanStatus("PAUSED")
	req = &CreatePlanRequest{Name: "Monthly", Duration: 30, Price: 99.9, Status: &status}
	if err := req.Validate(); err == nil || !strings.Contains(err.Error(), "status must be one of") {
		t.Fatalf("expected status validation error, got %v", err)
	}

	active := PlanStatusActive
	req = &CreatePlanRequest{Name: "Monthly", Duration: 30, Price: 0, Status: &active}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestUpdatePlanValidate(t *testing.T) {
	if err := (&UpdatePlanRequest{}).Validate(); err == nil {
		t.Fatal("expected missing fields validation error")
	}

	negative := -1.0
	if err := (&UpdatePlanRequest{Price: &negative}).Validate(); err == nil {
		t.Fatal("expected negative price validation error")
	}

	duration := 90
	if err := (&UpdatePlanRequest{Duration: &duration}).Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestCreateContractValidate(t *testing.T) {
	req := &CreateContractRequest{PlanID: "p1", StartDate: "2026-01-01T10:00:00Z"}
	if err := req.Validate(); err == nil || !strings.Contains(err.Error(), "studentId is required") {
		t.Fatalf("expected studentId validation error, got %v", err)
	}

	req = &CreateContractRequest{StudentID: "s1", PlanID: "p1", StartDate: "01/01/2026"}
	if err := req.Validate(); err == nil || !strings.Contains(err.Error(), "startDate must be RFC3339") {
		t.Fatalf("expected startDate validation error, got %v", err)
	}

	req = &CreateContractRequest{StudentID: "s1", PlanID: "p1", StartDate: "2026-01-01T10:00:00Z"}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
	parsed, err := req.ParsedStartDate()
	if err != nil || parsed.Year() != 2026 {
		t.Fatalf("unexpected parsed start date: %v %v", parsed, err)
	}
}

func TestCreateStudentValidate(t *testing.T) {
	req := &CreateStudentRequest{Name: "Ana", Email: "not-an-email"}
	if err := req.Validate(); err == nil || !strings.Contains(err.Error(), "email must be a valid email") {
		t.Fatalf("expected email validation error, got %v", err)
	}

	birth := "1990-02-30"
	req = &CreateStudentRequest{Name: "Ana", Email: "ana@example.com", BirthDate: &birth}
	if err := req.Validate(); err == nil {
		t.Fatal("expected birthDate validation error")
	}

	birth = "1990-02-20"
	req = &CreateStudentRequest{Name: "Ana", Email: "ana@example.com", BirthDate: &birth}
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestUpdateStudentValidate(t *testing.T) {
	if err := (&UpdateStudentRequest{}).Validate(); err == nil {
		t.Fatal("expected missing fields validation error")
	}
	status := StudentStatusInactive
	if err := (&UpdateStudentRequest{Status: &status}).Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestCreateCheckinValidate(t *testing.T) {
	if err := (&CreateCheckinRequest{}).Validate(); err == nil {
		t.Fatal("expected studentId validation error")
	}
}

func TestStatusValid(t *testing.T) {
	if !ContractStatusActive.Valid() || ContractStatus("active").Valid() {
		t.Fatal("unexpected contract status validity")
	}
	if !PlanStatusInactive.Valid() || PlanStatus("").Valid() {
		t.Fatal("unexpected plan status validity")
	}
}

func TestNewCreateContractRequestFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("POST", "/contracts", bytes.NewBufferString(`{"studentId":" s1 ","planId":"p1","startDate":" 2026-03-01T00:00:00Z "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	parsed, err := NewCreateContractRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.StudentID != "s1" || parsed.StartDate != "2026-03-01T00:00:00Z" {
		t.Fatalf("unexpected parsed request: %+v", parsed)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestIDRequestValidate(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest("GET", "/students/%20/contracts", nil), httptest.NewRecorder())
	ctx.SetParamNames("id")
	ctx.SetParamValues(" ")

	parsed, _ := NewIDRequestFromContext(ctx)
	if err := parsed.Validate(); err == nil {
		t.Fatal("expected id validation error")
	}
}
