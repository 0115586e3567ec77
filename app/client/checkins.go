package client

import (
	"context"
	"fmt"

	"github.com/vibast-solutions/gym-console/app/types"
)

type CheckinClient struct {
	api requester
}

func NewCheckinClient(api requester) *CheckinClient {
	return &CheckinClient{api: api}
}

func (c *CheckinClient) Create(ctx context.Context, req *types.CreateCheckinRequest) (*types.Checkin, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	checkin, err := Post[types.Checkin](ctx, c.api, "/checkins", req)
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (c *CheckinClient) GetByStudent(ctx context.Context, studentID string) ([]types.Checkin, error) {
	segment, err := pathSegment("student id", studentID)
	if err != nil {
		return nil, err
	}
	return c.list(ctx, "/checkins/student/"+segment)
}

func (c *CheckinClient) ListPending(ctx context.Context) ([]types.Checkin, error) {
	return c.list(ctx, "/checkins/pending")
}

func (c *CheckinClient) GetPendingCount(ctx context.Context) (int64, error) {
	resp, err := Get[types.CountResponse](ctx, c.api, "/checkins/pending/count")
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *CheckinClient) Authorize(ctx context.Context, id string) (*types.Checkin, error) {
	return c.transition(ctx, id, "authorize")
}

func (c *CheckinClient) Reject(ctx context.Context, id string) (*types.Checkin, error) {
	return c.transition(ctx, id, "reject")
}

func (c *CheckinClient) transition(ctx context.Context, id, action string) (*types.Checkin, error) {
	segment, err := pathSegment("check-in id", id)
	if err != nil {
		return nil, err
	}

	checkin, err := Patch[types.Checkin](ctx, c.api, "/checkins/"+segment+"/"+action, nil)
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (c *CheckinClient) list(ctx context.Context, path string) ([]types.Checkin, error) {
	checkins, err := Get[[]types.Checkin](ctx, c.api, path)
	if err != nil {
		return nil, err
	}
	if checkins == nil {
		checkins = make([]types.Checkin, 0)
	}
	return checkins, nil
}
