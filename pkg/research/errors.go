package research

import "github.com/coldcopy/coldcopy/pkg/errx"

var (
	errorRegistry = errx.NewRegistry("RESEARCH")

	ErrMissingWebsite = errorRegistry.Register(
		"MISSING_WEBSITE",
		errx.TypeValidation,
		"Research requires a website URL",
	)

	ErrFetchFailed = errorRegistry.Register(
		"FETCH_FAILED",
		errx.TypeExternal,
		"Failed to fetch target website",
	)

	ErrBadStatus = errorRegistry.Register(
		"BAD_STATUS",
		errx.TypeExternal,
		"Target website returned a non-success status",
	)

	ErrParseFailed = errorRegistry.Register(
		"PARSE_FAILED",
		errx.TypeExternal,
		"Failed to parse target website HTML",
	)
)
