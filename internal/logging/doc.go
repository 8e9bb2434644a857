// Package logging provides logging utilities for vpcgap.
//
// Debug logging goes through slog and is written to stderr so it never mixes
// with rendered plans on stdout:
//
//	logging.Debug("described subnets", "vpc", vpcID, "count", n)
//
// User-facing messages carry a status indicator:
//
//	logging.UserInfo("No subnets found in %s", vpcID)
//	logging.UserWarning("Could not list availability zones: %v", err)
//
// UserInfo and UserSuccess write to stdout, UserWarning and UserError to stderr.
package logging
