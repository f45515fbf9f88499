//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// gcpTraceAttrs adds nothing outside GCP; trace_id and span_id are enough.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
