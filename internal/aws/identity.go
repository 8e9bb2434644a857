package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"

	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

// CallerIdentity returns the current AWS caller identity
func (c *Client) CallerIdentity(ctx context.Context) (*pkgtypes.Identity, error) {
	output, err := c.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, classify(err)
	}

	return &pkgtypes.Identity{
		Account: deref(output.Account),
		Arn:     deref(output.Arn),
		UserID:  deref(output.UserId),
	}, nil
}
