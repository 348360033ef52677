package aiazure

import (
	"strings"

	"github.com/coldcopy/coldcopy/pkg/errx"
)

var (
	errorRegistry = errx.NewRegistry("AZURE_OPENAI")

	ErrAPIRequest = errorRegistry.Register(
		"API_REQUEST_FAILED",
		errx.TypeExternal,
		"Failed to make request to Azure OpenAI",
	)

	ErrAPIResponse = errorRegistry.Register(
		"API_RESPONSE_INVALID",
		errx.TypeExternal,
		"Invalid response from Azure OpenAI",
	)

	ErrAPIUnauthorized = errorRegistry.Register(
		"API_UNAUTHORIZED",
		errx.TypeAuthorization,
		"Invalid or missing Azure OpenAI credentials",
	)

	ErrAPIRateLimit = errorRegistry.Register(
		"API_RATE_LIMIT",
		errx.TypeExternal,
		"Azure OpenAI rate limit exceeded",
	)

	ErrDeploymentNotFound = errorRegistry.Register(
		"DEPLOYMENT_NOT_FOUND",
		errx.TypeValidation,
		"Azure OpenAI deployment not found",
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

	ErrMissingEndpoint = errorRegistry.Register(
		"MISSING_ENDPOINT",
		errx.TypeValidation,
		"Azure OpenAI endpoint not configured",
	)
)

// ParseAzureError maps an Azure OpenAI SDK error to an errx.Error
func ParseAzureError(err error) *errx.Error {
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
	case strings.Contains(errLower, "unauthorized") || strings.Contains(errLower, "401") ||
		strings.Contains(errLower, "invalid api key"):
		baseErr = ErrAPIUnauthorized
	case strings.Contains(errLower, "rate limit") || strings.Contains(errLower, "429"):
		baseErr = ErrAPIRateLimit
	case strings.Contains(errLower, "deployment") || strings.Contains(errLower, "not found"):
		baseErr = ErrDeploymentNotFound
	default:
		baseErr = ErrAPIRequest
	}

	return errorRegistry.NewWithCause(baseErr, err)
}
