// Package errutil reads the codes the passchange packages attach to oops
// errors and logs failures with that code and context as slog attributes.
package errutil

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/samber/oops"
)

// Code returns the oops code carried by err, or "" when there is none.
func Code(err error) string {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return ""
	}
	code := oopsErr.Code()
	if code == nil {
		return ""
	}
	return fmt.Sprint(code)
}

// HasCode reports whether err carries code, for example
// submit.CodeTransport or config.CodeInvalid.
func HasCode(err error, code string) bool {
	return code != "" && Code(err) == code
}

// LogError logs err at error level under msg. The code is emitted as "code"
// and the oops context as a "context" group with sorted keys.
func LogError(logger *slog.Logger, msg string, err error) {
	if err == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}

	attrs := []slog.Attr{slog.String("error", err.Error())}
	if code := Code(err); code != "" {
		attrs = append(attrs, slog.Any("code", code))
	}
	if oopsErr, ok := oops.AsOops(err); ok {
		if ctx := oopsErr.Context(); len(ctx) > 0 {
			fields := make([]any, 0, len(ctx))
			for _, key := range slices.Sorted(maps.Keys(ctx)) {
				fields = append(fields, slog.Any(key, ctx[key]))
			}
			attrs = append(attrs, slog.Group("context", fields...))
		}
	}
	logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}
