package aws

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/smithy-go"

	"github.com/vietdv277/vpcgap/pkg/provider"
)

// classify maps SDK and API errors onto the provider sentinels, keeping the
// original error in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var profileErr config.SharedConfigProfileNotExistError
	if errors.As(err, &profileErr) {
		return fmt.Errorf("%w: %w", provider.ErrNotConfigured, err)
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	code := apiErr.ErrorCode()
	switch {
	case strings.HasSuffix(code, ".NotFound"):
		return fmt.Errorf("%w: %w", provider.ErrNotFound, err)
	case code == "UnauthorizedOperation", strings.HasPrefix(code, "AccessDenied"):
		return fmt.Errorf("%w: %w", provider.ErrPermissionDenied, err)
	case code == "AuthFailure", code == "ExpiredToken", code == "InvalidClientTokenId",
		code == "RequestExpired", code == "UnrecognizedClientException":
		return fmt.Errorf("%w: %w", provider.ErrAuthFailed, err)
	}

	return err
}
