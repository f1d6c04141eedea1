// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctxlog passes a slog.Logger through context.Context so the
// frame passes can emit diagnostics without threading a logger
// argument everywhere.
package ctxlog

import (
	"context"
	"log/slog"
)

type key struct{}

// With returns a context carrying logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// From returns the logger carried by ctx, or slog.Default if none is
// set. Diagnostics from the encoding passes are advisory, so a
// missing logger is never an error.
func From(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(key{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
