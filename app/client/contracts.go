package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/vibast-solutions/gym-console/app/types"
)

type ContractClient struct {
	api requester
}

func NewContractClient(api requester) *ContractClient {
	return &ContractClient{api: api}
}

func (c *ContractClient) Create(ctx context.Context, req *types.CreateContractRequest) (*types.Contract, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	contract, err := Post[types.Contract](ctx, c.api, "/contracts", req)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (c *ContractClient) GetByID(ctx context.Context, id string) (*types.Contract, error) {
	segment, err := pathSegment("contract id", id)
	if err != nil {
		return nil, err
	}

	contract, err := Get[types.Contract](ctx, c.api, "/contracts/"+segment)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// GetByStudent never returns a nil slice on success.
func (c *ContractClient) GetByStudent(ctx context.Context, studentID string) ([]types.Contract, error) {
	segment, err := pathSegment("student id", studentID)
	if err != nil {
		return nil, err
	}

	contracts, err := Get[[]types.Contract](ctx, c.api, "/contracts/student/"+segment)
	if err != nil {
		return nil, err
	}
	if contracts == nil {
		contracts = make([]types.Contract, 0)
	}
	return contracts, nil
}

func (c *ContractClient) GetActiveCount(ctx context.Context) (int64, error) {
	resp, err := Get[types.CountResponse](ctx, c.api, "/contracts/active/count")
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// GetActiveByStudent returns nil without an error when the student has no
// active contract.
func (c *ContractClient) GetActiveByStudent(ctx context.Context, studentID string) (*types.Contract, error) {
	contracts, err := c.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return FindActive(contracts), nil
}

// FindActive returns the first ACTIVE contract in the given order.
func FindActive(contracts []types.Contract) *types.Contract {
	for i := range contracts {
		if contracts[i].Status == types.ContractStatusActive {
			found := contracts[i]
			return &found
		}
	}
	return nil
}

func pathSegment(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidRequest, name)
	}
	return url.PathEscape(value), nil
}
