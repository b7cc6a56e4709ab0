// Package service contains the application use cases. Handlers translate the
// errors surfaced here into HTTP statuses; nothing in this package knows about
// Gin or wire formats.
package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/SERMEX0/sermex-backend/internal/service"

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name)
}

// normalizeCorreo applies the process-wide email case policy: lowercase and
// trimmed, on both store and lookup.
func normalizeCorreo(correo string) string {
	return strings.ToLower(strings.TrimSpace(correo))
}
