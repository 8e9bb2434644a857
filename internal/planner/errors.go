package planner

import "fmt"

// InvalidPrefixError reports a target prefix length that cannot be carved
// out of the VPC.
type InvalidPrefixError struct {
	Prefix  int
	VPCBits int
	Reason  string
}

func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("invalid prefix /%d: %s", e.Prefix, e.Reason)
}

func validatePrefix(prefix, vpcBits int) error {
	if prefix < 0 || prefix > 32 {
		return &InvalidPrefixError{Prefix: prefix, VPCBits: vpcBits, Reason: "prefix length must be between 0 and 32"}
	}
	if prefix < vpcBits {
		return &InvalidPrefixError{
			Prefix:  prefix,
			VPCBits: vpcBits,
			Reason:  fmt.Sprintf("a /%d subnet is larger than its /%d VPC", prefix, vpcBits),
		}
	}
	return nil
}
