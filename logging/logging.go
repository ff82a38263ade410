// Package logging carries slog attributes through contexts so that every
// record emitted on behalf of a subsystem is tagged with its origin.
package logging

import (
	"context"
	"fmt"
	"log/slog"
)

type ctxKey string

const (
	slogFields ctxKey = "slog_fields"

	// PackageName is the attribute key used to tag records with their
	// originating package.
	PackageName = "package"
)

// ContextHandler decorates an slog.Handler with any attributes stored in the
// record's context via AppendCtx.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		for _, attr := range attrs {
			r.AddAttrs(attr)
		}
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("could not handle log record %+v: %w", r, err)
	}

	return nil
}

// AppendCtx returns a context whose log records will carry attr in addition
// to anything the parent context already carries.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	if v, ok := parent.Value(slogFields).([]slog.Attr); ok {
		v = append(v, attr)

		return context.WithValue(parent, slogFields, v)
	}

	return context.WithValue(parent, slogFields, []slog.Attr{attr})
}

// PackageCtx returns a background context tagged with the given package name.
func PackageCtx(packageName string) context.Context {
	return AppendCtx(context.Background(), slog.String(PackageName, packageName))
}
