// Package observability decorates the menus service with tracing, logging,
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

	"kitchenpos/internal/domains/menus/application/types"
	"kitchenpos/internal/domains/menus/domain"
	"kitchenpos/internal/domains/menus/ports"
)

const tracerName = "kitchenpos/internal/domains/menus/adapters/observability/service"

// Service wraps a menus application port with instrumentation.
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

// CreateMenu composes a menu with instrumentation.
func (s *Service) CreateMenu(ctx context.Context, input types.CreateMenuInput) (*types.MenuView, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateMenu",
		attribute.String("menu.name", input.Name),
		attribute.Int("menu.lines", len(input.Lines)),
	)
	defer span.End()

	s.logInfo(ctx, "creating menu", slog.String("menu.name", input.Name), slog.Int("lines", len(input.Lines)))
	result, err := s.inner.CreateMenu(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create menu", slog.String("menu.name", input.Name))
	}
	if result != nil && result.Menu != nil {
		s.metrics.recordMenuCreated(ctx)
		s.logInfo(ctx, "menu created",
			slog.Int64("menu.id", result.Menu.ID),
			slog.String("menu.price", result.Menu.Price.String()),
		)
	}
	return result, nil
}

// ListMenus returns all menus with their product views.
func (s *Service) ListMenus(ctx context.Context) ([]types.MenuView, error) {
	ctx, span := s.startSpan(ctx, "Service.ListMenus")
	defer span.End()

	result, err := s.inner.ListMenus(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list menus")
	}
	span.SetAttributes(attribute.Int("menu.result.count", len(result)))
	return result, nil
}

// CreateProduct adds a catalog product.
func (s *Service) CreateProduct(ctx context.Context, input types.CreateProductInput) (*domain.Product, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateProduct", attribute.String("product.name", input.Name))
	defer span.End()

	s.logInfo(ctx, "creating product", slog.String("product.name", input.Name))
	result, err := s.inner.CreateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.String("product.name", input.Name))
	}
	if result != nil {
		s.metrics.recordProductCreated(ctx)
		s.logInfo(ctx, "product created", slog.Int64("product.id", result.ID), slog.String("product.price", result.Price.String()))
	}
	return result, nil
}

// ListProducts returns the catalog.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, span := s.startSpan(ctx, "Service.ListProducts")
	defer span.End()

	result, err := s.inner.ListProducts(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("product.result.count", len(result)))
	return result, nil
}

// CreateMenuGroup adds a menu group.
func (s *Service) CreateMenuGroup(ctx context.Context, input types.CreateMenuGroupInput) (*domain.MenuGroup, error) {
	ctx, span := s.startSpan(ctx, "Service.CreateMenuGroup", attribute.String("menu_group.name", input.Name))
	defer span.End()

	result, err := s.inner.CreateMenuGroup(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create menu group", slog.String("menu_group.name", input.Name))
	}
	if result != nil {
		s.logInfo(ctx, "menu group created", slog.Int64("menu_group.id", result.ID))
	}
	return result, nil
}

// ListMenuGroups returns every menu group.
func (s *Service) ListMenuGroups(ctx context.Context) ([]domain.MenuGroup, error) {
	ctx, span := s.startSpan(ctx, "Service.ListMenuGroups")
	defer span.End()

	result, err := s.inner.ListMenuGroups(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list menu groups")
	}
	span.SetAttributes(attribute.Int("menu_group.result.count", len(result)))
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
	menusCreated    metric.Int64Counter
	productsCreated metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	menusCreated, _ := m.Int64Counter("menus.service.created", metric.WithDescription("Number of menus created"))
	productsCreated, _ := m.Int64Counter("menus.service.products_created", metric.WithDescription("Number of catalog products created"))
	return serviceMetrics{menusCreated: menusCreated, productsCreated: productsCreated}
}

func (m serviceMetrics) recordMenuCreated(ctx context.Context) {
	addCounter(ctx, m.menusCreated, 1)
}

func (m serviceMetrics) recordProductCreated(ctx context.Context) {
	addCounter(ctx, m.productsCreated, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
