package aibedrock

import (
	"strings"

	"github.com/coldcopy/coldcopy/pkg/errx"
)

var (
	errorRegistry = errx.NewRegistry("BEDROCK")

	ErrAPIRequest = errorRegistry.Register(
		"API_REQUEST_FAILED",
		errx.TypeExternal,
		"Failed to make request to AWS Bedrock",
	)

	ErrAPIResponse = errorRegistry.Register(
		"API_RESPONSE_INVALID",
		errx.TypeExternal,
		"Invalid response from AWS Bedrock",
	)

	ErrAPIUnauthorized = errorRegistry.Register(
		"API_UNAUTHORIZED",
		errx.TypeAuthorization,
		"Invalid or missing AWS credentials",
	)

	ErrAPIThrottled = errorRegistry.Register(
		"API_THROTTLED",
		errx.TypeExternal,
		"AWS Bedrock request throttled",
	)

	ErrModelNotFound = errorRegistry.Register(
		"MODEL_NOT_FOUND",
		errx.TypeValidation,
		"Requested model not found or not accessible",
	)

	ErrEmptyMessages = errorRegistry.Register(
		"EMPTY_MESSAGES",
		errx.TypeValidation,
		"Messages array cannot be empty",
	)

	ErrUnsupportedRole = errorRegistry.Register(
		"UNSUPPORTED_ROLE",
		errx.TypeValidation,
		"Unsupported message role",
	)
)

// ParseBedrockError maps an AWS SDK error to an errx.Error
func ParseBedrockError(err error) *errx.Error {
	if err == nil {
		return nil
	}

	var customErr *errx.Error
	if errx.As(err, &customErr) {
		return customErr
	}

	errLower := strings.ToLower(err.Error())

	var baseErr *errx.ErrorCode
	switch {
	case strings.Contains(errLower, "accessdenied") || strings.Contains(errLower, "unrecognizedclient") ||
		strings.Contains(errLower, "credentials"):
		baseErr = ErrAPIUnauthorized
	case strings.Contains(errLower, "throttl") || strings.Contains(errLower, "too many requests"):
		baseErr = ErrAPIThrottled
	case strings.Contains(errLower, "resourcenotfound") || strings.Contains(errLower, "model"):
		baseErr = ErrModelNotFound
	default:
		baseErr = ErrAPIRequest
	}

	return errorRegistry.NewWithCause(baseErr, err)
}
