package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/vietdv277/vpcgap/internal/logging"
)

// EC2API is the subset of the EC2 client used to read VPC address space
type EC2API interface {
	DescribeVpcs(ctx context.Context, params *ec2.DescribeVpcsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcsOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DescribeAvailabilityZones(ctx context.Context, params *ec2.DescribeAvailabilityZonesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeAvailabilityZonesOutput, error)
}

// STSAPI is the subset of the STS client used for identity checks
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// Options is the explicit configuration of a Client
type Options struct {
	Profile string
	Region  string

	// EC2 and STS replace the SDK clients when set
	EC2 EC2API
	STS STSAPI
}

// Client wraps AWS SDK clients
type Client struct {
	ec2    EC2API
	sts    STSAPI
	region string
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Options)

// WithProfile sets the AWS profile for the client
func WithProfile(profile string) ClientOption {
	return func(o *Options) {
		o.Profile = profile
	}
}

// WithRegion sets the AWS region for the client
func WithRegion(region string) ClientOption {
	return func(o *Options) {
		o.Region = region
	}
}

// WithEC2API makes the client use api instead of an SDK EC2 client
func WithEC2API(api EC2API) ClientOption {
	return func(o *Options) {
		o.EC2 = api
	}
}

// WithSTSAPI makes the client use api instead of an SDK STS client
func WithSTSAPI(api STSAPI) ClientOption {
	return func(o *Options) {
		o.STS = api
	}
}

// NewClient creates a new AWS Client with the given options
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return New(ctx, o)
}

// New creates a Client from an explicit Options value. The shared AWS config is
// only loaded when a real SDK client is needed.
func New(ctx context.Context, o Options) (*Client, error) {
	c := &Client{
		ec2:    o.EC2,
		sts:    o.STS,
		region: o.Region,
	}

	if c.ec2 != nil && c.sts != nil {
		return c, nil
	}

	// Build config options
	var configOpts []func(*config.LoadOptions) error

	if o.Profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(o.Profile))
	}

	if o.Region != "" {
		configOpts = append(configOpts, config.WithRegion(o.Region))
	}

	// Load AWS config
	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", classify(err))
	}

	logging.Debug("loaded AWS config", "profile", o.Profile, "region", cfg.Region)

	if c.ec2 == nil {
		c.ec2 = ec2.NewFromConfig(cfg)
	}
	if c.sts == nil {
		c.sts = sts.NewFromConfig(cfg)
	}
	c.region = cfg.Region

	return c, nil
}

// Region returns the region the client talks to
func (c *Client) Region() string {
	return c.region
}
