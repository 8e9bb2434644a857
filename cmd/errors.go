package cmd

import (
	"errors"

	"github.com/vietdv277/vpcgap/internal/planner"
	"github.com/vietdv277/vpcgap/internal/ui"
	"github.com/vietdv277/vpcgap/pkg/cidr"
	"github.com/vietdv277/vpcgap/pkg/provider"
)

// Exit codes for vpcgap
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitInvalidCIDR   = 2
	ExitInvalidPrefix = 3
	ExitNotFound      = 4
	ExitAuthError     = 5
	ExitCancelled     = 130
)

// ExitCode maps an error returned by Execute to a process exit code
func ExitCode(err error) int {
	var parseErr *cidr.ParseError
	var prefixErr *planner.InvalidPrefixError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &parseErr):
		return ExitInvalidCIDR
	case errors.As(err, &prefixErr):
		return ExitInvalidPrefix
	case errors.Is(err, provider.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, provider.ErrAuthFailed),
		errors.Is(err, provider.ErrPermissionDenied),
		errors.Is(err, provider.ErrNotConfigured):
		return ExitAuthError
	case errors.Is(err, ui.ErrPickerCancelled):
		return ExitCancelled
	default:
		return ExitGeneralError
	}
}
