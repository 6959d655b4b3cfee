package repository

import (
	"context"
	"study_tracker_backend/pkg/monitoring"
	"study_tracker_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// instrumented 为集合操作记录 span，写操作同时计入 prometheus
type instrumented[T any] struct {
	name string
	next Collection[T]
}

func instrument[T any](name string, next Collection[T]) Collection[T] {
	return &instrumented[T]{name: name, next: next}
}

// Instrument 包装全部集合
func Instrument(c Collections) Collections {
	return Collections{
		Subjects:       instrument(SubjectsCollection, c.Subjects),
		StudySessions:  instrument(StudySessionsCollection, c.StudySessions),
		LogbookEntries: instrument(LogbookEntriesCollection, c.LogbookEntries),
	}
}

func (i *instrumented[T]) span(ctx context.Context, op string) (context.Context, func(error)) {
	ctx, span := tracing.Tracer.Start(ctx, i.name+"."+op)
	span.SetAttributes(attribute.String("collection", i.name))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

func (i *instrumented[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, end := i.span(ctx, "get_all")
	items, err := i.next.GetAll(ctx)
	end(err)
	return items, err
}

func (i *instrumented[T]) Create(ctx context.Context, record *T) error {
	ctx, end := i.span(ctx, "create")
	err := i.next.Create(ctx, record)
	end(err)
	monitoring.ObserveWrite(i.name, "create", err)
	return err
}

func (i *instrumented[T]) Update(ctx context.Context, record *T) error {
	ctx, end := i.span(ctx, "update")
	err := i.next.Update(ctx, record)
	end(err)
	monitoring.ObserveWrite(i.name, "update", err)
	return err
}

func (i *instrumented[T]) Delete(ctx context.Context, id string) error {
	ctx, end := i.span(ctx, "delete")
	err := i.next.Delete(ctx, id)
	end(err)
	monitoring.ObserveWrite(i.name, "delete", err)
	return err
}
