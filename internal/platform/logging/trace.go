package logging

import (
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// version-traceid-parentid-flags, e.g. 00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

const (
	zeroTraceID = "00000000000000000000000000000000"
	flagSampled = 0x01
	traceKey    = "logging.googleapis.com/trace"
	spanKey     = "logging.googleapis.com/spanId"
	sampledKey  = "logging.googleapis.com/trace_sampled"
)

// traceFields returns the Cloud Logging trace, span and sampled fields, the
// trace resource first. It returns nil without a project or a valid header.
func traceFields(header, projectID string) []zap.Field {
	if projectID == "" {
		return nil
	}
	m := traceparentRe.FindStringSubmatch(header)
	if m == nil || m[2] == zeroTraceID {
		return nil
	}
	flags, err := strconv.ParseUint(m[4], 16, 8)
	if err != nil {
		return nil
	}
	return []zap.Field{
		zap.String(traceKey, fmt.Sprintf("projects/%s/traces/%s", projectID, m[2])),
		zap.String(spanKey, m[3]),
		zap.Bool(sampledKey, flags&flagSampled != 0),
	}
}
