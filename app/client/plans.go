package client

import (
	"context"
	"fmt"

	"github.com/vibast-solutions/gym-console/app/types"
)

type PlanClient struct {
	api requester
}

func NewPlanClient(api requester) *PlanClient {
	return &PlanClient{api: api}
}

func (c *PlanClient) Create(ctx context.Context, req *types.CreatePlanRequest) (*types.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	plan, err := Post[types.Plan](ctx, c.api, "/plans", req)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *PlanClient) List(ctx context.Context) ([]types.Plan, error) {
	plans, err := Get[[]types.Plan](ctx, c.api, "/plans")
	if err != nil {
		return nil, err
	}
	if plans == nil {
		plans = make([]types.Plan, 0)
	}
	return plans, nil
}

// ListActive filters List locally; the API has no status filter for plans.
func (c *PlanClient) ListActive(ctx context.Context) ([]types.Plan, error) {
	plans, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]types.Plan, 0, len(plans))
	for _, plan := range plans {
		if plan.Status == types.PlanStatusActive {
			active = append(active, plan)
		}
	}
	return active, nil
}

func (c *PlanClient) GetByID(ctx context.Context, id string) (*types.Plan, error) {
	segment, err := pathSegment("plan id", id)
	if err != nil {
		return nil, err
	}

	plan, err := Get[types.Plan](ctx, c.api, "/plans/"+segment)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *PlanClient) Update(ctx context.Context, id string, req *types.UpdatePlanRequest) (*types.Plan, error) {
	segment, err := pathSegment("plan id", id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	plan, err := Put[types.Plan](ctx, c.api, "/plans/"+segment, req)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (c *PlanClient) Delete(ctx context.Context, id string) error {
	segment, err := pathSegment("plan id", id)
	if err != nil {
		return err
	}
	return Delete(ctx, c.api, "/plans/"+segment)
}
