package provider

import (
	"context"
	"errors"

	"github.com/vietdv277/vpcgap/pkg/types"
)

// Common errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrNotConfigured    = errors.New("provider not configured")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
)

// VPCReader supplies the address-space inputs of a plan. Implementations are read-only.
type VPCReader interface {
	// GetVPC returns a VPC by ID, or ErrNotFound
	GetVPC(ctx context.Context, vpcID string) (*types.VPC, error)

	// ListVPCs returns every VPC in the region
	ListVPCs(ctx context.Context) ([]types.VPC, error)

	// ListSubnets returns all subnets of a VPC
	ListSubnets(ctx context.Context, vpcID string) ([]types.Subnet, error)

	// ListAvailabilityZones returns the available zones of the region
	ListAvailabilityZones(ctx context.Context) ([]types.AvailabilityZone, error)
}

// IdentityReader reports who the loaded credentials belong to.
type IdentityReader interface {
	CallerIdentity(ctx context.Context) (*types.Identity, error)
}
