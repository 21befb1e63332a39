// Package observability decorates the tables service with tracing, logging,
// and metrics.
package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"kitchenpos/internal/domains/tables/domain"
	"kitchenpos/internal/domains/tables/ports"
)

const tracerName = "kitchenpos/internal/domains/tables/adapters/observability/service"

// Service wraps a tables application port with instrumentation.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: defaultLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Create registers a table.
func (s *Service) Create(ctx context.Context, numberOfGuests int, empty bool) (*domain.OrderTable, error) {
	ctx, span := s.startSpan(ctx, "Service.Create",
		attribute.Int("table.guests", numberOfGuests),
		attribute.Bool("table.empty", empty),
	)
	defer span.End()

	result, err := s.inner.Create(ctx, numberOfGuests, empty)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create table")
	}
	s.logInfo(ctx, "table created", slog.Int64("table.id", result.ID), slog.Int("guests", result.NumberOfGuests))
	return result, nil
}

// List returns every table.
func (s *Service) List(ctx context.Context) ([]domain.OrderTable, error) {
	ctx, span := s.startSpan(ctx, "Service.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list tables")
	}
	span.SetAttributes(attribute.Int("table.result.count", len(result)))
	return result, nil
}

// ChangeEmpty flips the occupancy flag with instrumentation.
func (s *Service) ChangeEmpty(ctx context.Context, tableID int64, empty bool) (*domain.OrderTable, error) {
	ctx, span := s.startSpan(ctx, "Service.ChangeEmpty",
		attribute.Int64("table.id", tableID),
		attribute.Bool("table.empty.target", empty),
	)
	defer span.End()

	s.logInfo(ctx, "changing table empty flag", slog.Int64("table.id", tableID), slog.Bool("empty", empty))
	result, err := s.inner.ChangeEmpty(ctx, tableID, empty)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to change table empty flag", slog.Int64("table.id", tableID))
	}
	s.metrics.recordTransition(ctx, "empty")
	s.logInfo(ctx, "table empty flag changed", slog.Int64("table.id", result.ID), slog.Bool("empty", result.Empty))
	return result, nil
}

// ChangeNumberOfGuests updates the seated guest count with instrumentation.
func (s *Service) ChangeNumberOfGuests(ctx context.Context, tableID int64, numberOfGuests int) (*domain.OrderTable, error) {
	ctx, span := s.startSpan(ctx, "Service.ChangeNumberOfGuests",
		attribute.Int64("table.id", tableID),
		attribute.Int("table.guests.target", numberOfGuests),
	)
	defer span.End()

	s.logInfo(ctx, "changing table guest count", slog.Int64("table.id", tableID), slog.Int("guests", numberOfGuests))
	result, err := s.inner.ChangeNumberOfGuests(ctx, tableID, numberOfGuests)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to change table guest count", slog.Int64("table.id", tableID))
	}
	s.metrics.recordTransition(ctx, "guests")
	s.logInfo(ctx, "table guest count changed", slog.Int64("table.id", result.ID), slog.Int("guests", result.NumberOfGuests))
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	transitions metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	transitions, _ := m.Int64Counter("tables.service.transitions", metric.WithDescription("Number of table state transitions applied"))
	return serviceMetrics{transitions: transitions}
}

func (m serviceMetrics) recordTransition(ctx context.Context, kind string) {
	if m.transitions == nil {
		return
	}
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("transition", kind)))
}

var _ ports.Service = (*Service)(nil)
