package outreach

import "github.com/coldcopy/coldcopy/pkg/errx"

var (
	errorRegistry = errx.NewRegistry("OUTREACH")

	ErrInvalidArgument = errorRegistry.Register(
		"INVALID_ARGUMENT",
		errx.TypeValidation,
		"Missing or malformed generation request field",
	)

	ErrUnsupportedFramework = errorRegistry.Register(
		"UNSUPPORTED_FRAMEWORK",
		errx.TypeValidation,
		"Framework is not one of the supported values",
	)

	ErrGenerationFailed = errorRegistry.Register(
		"GENERATION_FAILED",
		errx.TypeExternal,
		"Text generation provider call failed",
	)

	ErrBadReply = errorRegistry.Register(
		"BAD_REPLY",
		errx.TypeExternal,
		"Generation provider returned an unparseable reply",
	)
)
