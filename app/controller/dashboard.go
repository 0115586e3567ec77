package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/gym-console/app/auth"
	"github.com/vibast-solutions/gym-console/app/client"
	"github.com/vibast-solutions/gym-console/app/factory"
	"github.com/vibast-solutions/gym-console/app/service"
	"github.com/vibast-solutions/gym-console/app/types"
	"github.com/vibast-solutions/gym-console/app/view"
)

type dashboardBuilder interface {
	Build(ctx context.Context) (*view.Dashboard, error)
}

type studentOverviewer interface {
	Overview(ctx context.Context, studentID string) (*service.StudentOverview, error)
}

type contractClient interface {
	Create(ctx context.Context, req *types.CreateContractRequest) (*types.Contract, error)
	GetByStudent(ctx context.Context, studentID string) ([]types.Contract, error)
	GetActiveByStudent(ctx context.Context, studentID string) (*types.Contract, error)
	GetActiveCount(ctx context.Context) (int64, error)
}

type planClient interface {
	Create(ctx context.Context, req *types.CreatePlanRequest) (*types.Plan, error)
	List(ctx context.Context) ([]types.Plan, error)
}

type checkinClient interface {
	ListPending(ctx context.Context) ([]types.Checkin, error)
	Authorize(ctx context.Context, id string) (*types.Checkin, error)
}

type DashboardController struct {
	dashboard dashboardBuilder
	students  studentOverviewer
	contracts contractClient
	plans     planClient
	checkins  checkinClient
	logger    logrus.FieldLogger
}

func NewDashboardController(
	dashboard dashboardBuilder,
	students studentOverviewer,
	contracts contractClient,
	plans planClient,
	checkins checkinClient,
) *DashboardController {
	return &DashboardController{
		dashboard: dashboard,
		students:  students,
		contracts: contracts,
		plans:     plans,
		checkins:  checkins,
		logger:    factory.NewModuleLogger("dashboard-controller"),
	}
}

type activeContractResponse struct {
	Contract *types.Contract `json:"contract"`
}

func (c *DashboardController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *DashboardController) Session(ctx echo.Context) error {
	session := auth.SessionFromContext(ctx.Request().Context())
	if session == nil {
		return c.writeError(ctx, http.StatusUnauthorized, "no session")
	}
	return ctx.JSON(http.StatusOK, session)
}

func (c *DashboardController) Dashboard(ctx echo.Context) error {
	dashboard, err := c.dashboard.Build(ctx.Request().Context())
	if err != nil {
		return c.writeAPIError(ctx, err, "Build dashboard failed")
	}
	return ctx.JSON(http.StatusOK, dashboard)
}

func (c *DashboardController) StudentOverview(ctx echo.Context) error {
	req, _ := types.NewIDRequestFromContext(ctx)
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	overview, err := c.students.Overview(ctx.Request().Context(), req.ID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return c.writeError(ctx, http.StatusNotFound, "student not found")
		}
		return c.writeAPIError(ctx, err, "Student overview failed")
	}
	return ctx.JSON(http.StatusOK, overview)
}

func (c *DashboardController) StudentContracts(ctx echo.Context) error {
	req, _ := types.NewIDRequestFromContext(ctx)
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	items, err := c.contracts.GetByStudent(ctx.Request().Context(), req.ID)
	if err != nil {
		return c.writeAPIError(ctx, err, "List student contracts failed")
	}
	return ctx.JSON(http.StatusOK, items)
}

// StudentActiveContract answers 200 with a null contract when the student has
// none; absence is not an error.
func (c *DashboardController) StudentActiveContract(ctx echo.Context) error {
	req, _ := types.NewIDRequestFromContext(ctx)
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.contracts.GetActiveByStudent(ctx.Request().Context(), req.ID)
	if err != nil {
		return c.writeAPIError(ctx, err, "Get active contract failed")
	}
	return ctx.JSON(http.StatusOK, &activeContractResponse{Contract: item})
}

func (c *DashboardController) CreateContract(ctx echo.Context) error {
	req, err := types.NewCreateContractRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.contracts.Create(ctx.Request().Context(), req)
	if err != nil {
		return c.writeAPIError(ctx, err, "Create contract failed")
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (c *DashboardController) ActiveContractCount(ctx echo.Context) error {
	count, err := c.contracts.GetActiveCount(ctx.Request().Context())
	if err != nil {
		return c.writeAPIError(ctx, err, "Count active contracts failed")
	}
	return ctx.JSON(http.StatusOK, &types.CountResponse{Count: count})
}

func (c *DashboardController) ListPlans(ctx echo.Context) error {
	items, err := c.plans.List(ctx.Request().Context())
	if err != nil {
		return c.writeAPIError(ctx, err, "List plans failed")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (c *DashboardController) CreatePlan(ctx echo.Context) error {
	req, err := types.NewCreatePlanRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.plans.Create(ctx.Request().Context(), req)
	if err != nil {
		return c.writeAPIError(ctx, err, "Create plan failed")
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (c *DashboardController) PendingCheckins(ctx echo.Context) error {
	items, err := c.checkins.ListPending(ctx.Request().Context())
	if err != nil {
		return c.writeAPIError(ctx, err, "List pending check-ins failed")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (c *DashboardController) AuthorizeCheckin(ctx echo.Context) error {
	req, _ := types.NewIDRequestFromContext(ctx)
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	item, err := c.checkins.Authorize(ctx.Request().Context(), req.ID)
	if err != nil {
		return c.writeAPIError(ctx, err, "Authorize check-in failed")
	}
	return ctx.JSON(http.StatusOK, item)
}

// writeAPIError passes gym API client errors (4xx) through and hides
// everything else behind a 502.
func (c *DashboardController) writeAPIError(ctx echo.Context, err error, logMessage string) error {
	if errors.Is(err, client.ErrInvalidRequest) {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return c.writeError(ctx, apiErr.StatusCode, apiErr.Message)
	}

	factory.LoggerWithContext(c.logger, ctx).WithError(err).Error(logMessage)
	return c.writeError(ctx, http.StatusBadGateway, "gym api unavailable")
}

func (c *DashboardController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{StatusCode: statusCode, Error: http.StatusText(statusCode), Message: message})
}
