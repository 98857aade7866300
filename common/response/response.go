package response

import (
	"context"
	"net/http"

	"school-activities/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// ErrorBody is the failure wire shape. Every failed request answers with
// {"detail": "..."} and a meaningful HTTP status; successes are returned by
// the handlers as plain payloads without an envelope.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// SetupGlobalErrorHandler installs the error handler used by httpx.ErrorCtx.
// Must run before server.Start so that every error written by a handler goes
// through the BizError mapping.
func SetupGlobalErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		return errorResult(ctx, err)
	})
}

// errorResult maps an error to its HTTP status and response body.
func errorResult(ctx context.Context, err error) (int, any) {
	bizErr := errorx.FromError(err)
	if bizErr.Code == errorx.CodeInternalError && !errorx.Is(err, errorx.CodeInternalError) {
		// Not a business error: request parsing failures (missing email
		// parameter, malformed form data) land here. Client fault, client
		// message.
		logx.WithContext(ctx).Errorf("request failed: %v", err)
		return http.StatusBadRequest, ErrorBody{Detail: err.Error()}
	}
	return getHttpStatus(bizErr.Code), ErrorBody{Detail: bizErr.Message}
}

// getHttpStatus maps a business error code to an HTTP status code.
func getHttpStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeNotFound, errorx.CodeActivityNotFound:
		return http.StatusNotFound
	case errorx.CodeInvalidParams, errorx.CodeAlreadySignedUp, errorx.CodeNotRegistered:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
