package notifxses

import "github.com/coldcopy/coldcopy/pkg/errx"

var sesErrors = errx.NewRegistry("NOTIFX_SES")

var (
	ErrSendFailed   = sesErrors.Register("SEND_FAILED", errx.TypeExternal, "SES send email failed")
	ErrBulkFailed   = sesErrors.Register("BULK_FAILED", errx.TypeExternal, "SES bulk send failed")
	ErrBuildMessage = sesErrors.Register("BUILD_MESSAGE", errx.TypeInternal, "Failed to build SES message")
)
