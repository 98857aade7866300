package middleware

import (
	"net/http"

	"school-activities/common/ctxdata"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request with a unique id so log lines from
// one request can be correlated. Upstream-provided ids are kept.
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates the request id middleware.
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Handle injects the request id into the context and the response headers.
func (m *RequestIDMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := ctxdata.WithRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
