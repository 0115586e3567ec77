package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vibast-solutions/gym-console/app/types"
)

type StudentClient struct {
	api requester
}

func NewStudentClient(api requester) *StudentClient {
	return &StudentClient{api: api}
}

func (c *StudentClient) Create(ctx context.Context, req *types.CreateStudentRequest) (*types.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	student, err := Post[types.Student](ctx, c.api, "/students", req)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// List returns every student, narrowed by the API's name/email search when
// search is not blank.
func (c *StudentClient) List(ctx context.Context, search string) ([]types.Student, error) {
	path := "/students"
	if search = strings.TrimSpace(search); search != "" {
		path += "?" + url.Values{"search": []string{search}}.Encode()
	}

	students, err := Get[[]types.Student](ctx, c.api, path)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = make([]types.Student, 0)
	}
	return students, nil
}

func (c *StudentClient) GetByID(ctx context.Context, id string) (*types.Student, error) {
	segment, err := pathSegment("student id", id)
	if err != nil {
		return nil, err
	}

	student, err := Get[types.Student](ctx, c.api, "/students/"+segment)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (c *StudentClient) Update(ctx context.Context, id string, req *types.UpdateStudentRequest) (*types.Student, error) {
	segment, err := pathSegment("student id", id)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	student, err := Put[types.Student](ctx, c.api, "/students/"+segment, req)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (c *StudentClient) GetActiveCount(ctx context.Context) (int64, error) {
	resp, err := Get[types.CountResponse](ctx, c.api, "/students/active/count")
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}
