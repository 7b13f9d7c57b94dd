package logging

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestLogger attaches a logger tagged with the request ID and, when
// projectID is set and traceparent is valid, Cloud Trace fields. The same
// scope carries the correlation ID returned by CorrelationID.
func RequestLogger(projectID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimiddleware.GetReqID(r.Context())
			trace := traceFields(r.Header.Get(traceparentHeader), projectID)

			s := scope{logger: Logger(), correlationID: reqID}
			if len(trace) > 0 {
				s.correlationID = trace[0].String
			}
			fields := trace
			if reqID != "" {
				fields = append(fields, zap.String("requestId", reqID))
			}
			if len(fields) > 0 {
				s.logger = s.logger.With(fields...)
			}
			next.ServeHTTP(w, r.WithContext(withScope(r.Context(), s)))
		})
	}
}

// AccessLogger logs one "request completed" entry per request. Server errors
// are logged at error level and client errors at warn.
func AccessLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			LoggerFromContext(r.Context()).Log(accessLevel(status), "request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remoteIp", r.RemoteAddr),
				zap.String("userAgent", r.UserAgent()),
			)
		})
	}
}

func accessLevel(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
