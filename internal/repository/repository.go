// Package repository implements the domain repository interfaces on gorm.
//
// Every method runs a single statement. Engine failures come back as one of
// the domain error kinds: a per-entity *domain.NotFoundError, a
// *domain.ConflictError, or a *domain.StorageError for anything else.
package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/domain"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/database"
)

var tracer = otel.Tracer("clinic/repository")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient), trace.WithAttributes(attrs...))
}

// translate maps a gorm error onto the domain error kinds. notFound is used
// for missing rows and foreign key violations, conflict for unique
// violations. Either may be nil, in which case the error is a storage error.
func translate(op string, err error, notFound *domain.NotFoundError, conflict *domain.ConflictError) error {
	if err == nil {
		return nil
	}

	switch {
	case notFound != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case conflict != nil && database.IsUniqueViolation(err):
		return conflict
	case notFound != nil && database.IsForeignKeyViolation(err):
		return notFound
	}

	return &domain.StorageError{Op: op, Err: err}
}

// finish records err on span and ends it.
func finish(span trace.Span, err error) {
	if err != nil {
		var se *domain.StorageError
		if errors.As(err, &se) {
			span.SetStatus(codes.Error, se.Error())
		}
		span.RecordError(err)
	}
	span.End()
}
