package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/phrazzld/destiny-matrix/internal/domain"
	"github.com/phrazzld/destiny-matrix/internal/domain/numerology"
	"github.com/phrazzld/destiny-matrix/internal/platform/logger"
	"github.com/phrazzld/destiny-matrix/internal/platform/metrics"
	"github.com/phrazzld/destiny-matrix/internal/redact"
)

const tracerName = "github.com/phrazzld/destiny-matrix/internal/service"

// Operation names used in errors, metrics and spans.
const (
	OperationCalculate = "calculate"
	OperationInterpret = "interpret"
	OperationBatch     = "batch"
)

// Default batch limits applied when Config leaves them unset.
const (
	DefaultBatchMaxSize     = 50
	DefaultBatchConcurrency = 4
)

// Config holds the batch limits of a MatrixService.
type Config struct {
	BatchMaxSize     int
	BatchConcurrency int
}

// MatrixService provides the matrix use cases.
type MatrixService interface {
	// Calculate parses birthDate, derives its matrix and interprets it.
	//
	// Returns:
	//   - (*Reading, nil): the complete reading
	//   - (nil, error wrapping domain.ErrInvalidDate): the input is not a valid date
	//   - (nil, error wrapping ctx.Err()): the context was already done
	Calculate(ctx context.Context, birthDate string) (*Reading, error)

	// Interpret re-reads a matrix supplied by the caller as position key to
	// value pairs. All eleven positions must be present.
	//
	// Returns an error wrapping domain.ErrUnknownPosition, domain.ErrDigitOutOfRange
	// or domain.ErrIncompleteMatrix for malformed input.
	Interpret(ctx context.Context, values map[string]int) (*Reading, error)

	// CalculateBatch runs Calculate for every input with bounded concurrency.
	// Per-item failures are reported in the matching BatchItem and do not fail
	// the batch. Items are returned in input order.
	//
	// Returns ErrEmptyBatch or ErrBatchTooLarge for out-of-range batch sizes,
	// and the context error when ctx is cancelled before the batch finishes.
	CalculateBatch(ctx context.Context, birthDates []string) ([]BatchItem, error)

	// Positions returns the static catalog of the eleven positions.
	Positions() []numerology.PositionInfo
}

// matrixServiceImpl implements the MatrixService interface
type matrixServiceImpl struct {
	interpreter numerology.Service
	cfg         Config
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
}

// NewMatrixService creates a new MatrixService.
// It returns an error if the interpreter is nil. A nil logger falls back to
// slog.Default, a nil tracer to the global OpenTelemetry provider, and nil
// metrics disable instrumentation.
func NewMatrixService(
	interpreter numerology.Service,
	cfg Config,
	log *slog.Logger,
	m *metrics.Metrics,
	tracer trace.Tracer,
) (MatrixService, error) {
	if interpreter == nil {
		return nil, domain.NewValidationError("interpreter", "cannot be nil", domain.ErrValidation)
	}
	if cfg.BatchMaxSize <= 0 {
		cfg.BatchMaxSize = DefaultBatchMaxSize
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = DefaultBatchConcurrency
	}
	if log == nil {
		log = slog.Default()
	}
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &matrixServiceImpl{
		interpreter: interpreter,
		cfg:         cfg,
		logger:      log.With(slog.String("component", "matrix_service")),
		metrics:     m,
		tracer:      tracer,
	}, nil
}

// Calculate implements MatrixService.Calculate
func (s *matrixServiceImpl) Calculate(ctx context.Context, birthDate string) (*Reading, error) {
	ctx, span := s.tracer.Start(ctx, "MatrixService.Calculate")
	defer span.End()

	reading, err := s.calculate(ctx, OperationCalculate, birthDate)
	endSpan(span, reading, err)
	return reading, err
}

// calculate is the shared body of Calculate and CalculateBatch.
func (s *matrixServiceImpl) calculate(ctx context.Context, op, input string) (*Reading, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		s.metrics.IncrementOutcome(op, metrics.OutcomeError)
		return nil, NewMatrixServiceError(op, "context done", err)
	}

	start := time.Now()
	matrix, birthDate, err := domain.DeriveFromString(input)
	if err != nil {
		log.Info("rejected birth date",
			slog.String("input", redact.String(input)),
			slog.String("error", redact.Error(err)))
		s.metrics.IncrementOutcome(op, metrics.OutcomeInvalid)
		return nil, NewMatrixServiceError(op, "invalid birth date", err)
	}

	reading, err := s.read(&birthDate, matrix)
	if err != nil {
		log.Error("failed to interpret derived matrix",
			slog.String("error", redact.Error(err)))
		s.metrics.IncrementOutcome(op, metrics.OutcomeError)
		return nil, NewMatrixServiceError(op, "failed to interpret matrix", err)
	}

	s.record(op, reading, time.Since(start))
	log.Debug("matrix calculated",
		slog.Int("center", reading.Matrix.Values()[domain.CenterNumber].Int()),
		slog.Int("insights", len(reading.Interpretation.Insights)))

	return reading, nil
}

// Interpret implements MatrixService.Interpret
func (s *matrixServiceImpl) Interpret(ctx context.Context, values map[string]int) (*Reading, error) {
	ctx, span := s.tracer.Start(ctx, "MatrixService.Interpret")
	defer span.End()

	reading, err := s.interpret(ctx, values)
	endSpan(span, reading, err)
	return reading, err
}

func (s *matrixServiceImpl) interpret(ctx context.Context, values map[string]int) (*Reading, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := ctx.Err(); err != nil {
		s.metrics.IncrementOutcome(OperationInterpret, metrics.OutcomeError)
		return nil, NewMatrixServiceError(OperationInterpret, "context done", err)
	}

	start := time.Now()
	keyed := make(map[domain.PositionKey]int, len(values))
	for raw, v := range values {
		key, err := domain.ParsePositionKey(raw)
		if err != nil {
			s.metrics.IncrementOutcome(OperationInterpret, metrics.OutcomeInvalid)
			return nil, NewMatrixServiceError(OperationInterpret, "invalid matrix", err)
		}
		keyed[key] = v
	}

	matrix, err := domain.NewMatrix(keyed)
	if err != nil {
		log.Info("rejected matrix", slog.String("error", err.Error()))
		s.metrics.IncrementOutcome(OperationInterpret, metrics.OutcomeInvalid)
		return nil, NewMatrixServiceError(OperationInterpret, "invalid matrix", err)
	}

	reading, err := s.read(nil, matrix)
	if err != nil {
		s.metrics.IncrementOutcome(OperationInterpret, metrics.OutcomeError)
		return nil, NewMatrixServiceError(OperationInterpret, "failed to interpret matrix", err)
	}

	s.record(OperationInterpret, reading, time.Since(start))
	return reading, nil
}

// CalculateBatch implements MatrixService.CalculateBatch
func (s *matrixServiceImpl) CalculateBatch(ctx context.Context, birthDates []string) ([]BatchItem, error) {
	ctx, span := s.tracer.Start(ctx, "MatrixService.CalculateBatch",
		trace.WithAttributes(attribute.Int("batch.size", len(birthDates))))
	defer span.End()

	log := logger.FromContextOrDefault(ctx, s.logger)

	switch {
	case len(birthDates) == 0:
		span.SetStatus(codes.Error, ErrEmptyBatch.Error())
		return nil, NewMatrixServiceError(OperationBatch, "no birth dates supplied", ErrEmptyBatch)
	case len(birthDates) > s.cfg.BatchMaxSize:
		span.SetStatus(codes.Error, ErrBatchTooLarge.Error())
		return nil, NewMatrixServiceError(OperationBatch,
			fmt.Sprintf("got %d birth dates, limit is %d", len(birthDates), s.cfg.BatchMaxSize),
			ErrBatchTooLarge)
	}
	s.metrics.ObserveBatchSize(len(birthDates))

	items := make([]BatchItem, len(birthDates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)

	for i, input := range birthDates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reading, err := s.calculate(gctx, OperationBatch, input)
			items[i] = BatchItem{Index: i, Input: input, Reading: reading, Err: err}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch aborted")
		log.Warn("batch aborted", slog.Int("size", len(birthDates)), slog.String("error", err.Error()))
		return nil, NewMatrixServiceError(OperationBatch, "batch aborted", err)
	}

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("batch.failed", failed))
	log.Debug("batch calculated", slog.Int("size", len(items)), slog.Int("failed", failed))

	return items, nil
}

// Positions implements MatrixService.Positions
func (s *matrixServiceImpl) Positions() []numerology.PositionInfo {
	return s.interpreter.Catalog()
}

func (s *matrixServiceImpl) read(birthDate *domain.BirthDate, matrix domain.Matrix) (*Reading, error) {
	interpretation, err := s.interpreter.Compose(matrix)
	if err != nil {
		return nil, err
	}

	return &Reading{
		BirthDate:      birthDate,
		Matrix:         matrix,
		Grid:           BuildGrid(matrix),
		Interpretation: interpretation,
	}, nil
}

func (s *matrixServiceImpl) record(op string, reading *Reading, d time.Duration) {
	s.metrics.IncrementOutcome(op, metrics.OutcomeSuccess)
	s.metrics.ObserveCalculation(op, d)
	for _, insight := range reading.Interpretation.Insights {
		s.metrics.AddInsight(string(insight.Kind))
	}
}

// endSpan annotates span with the result of a single-matrix operation.
func endSpan(span trace.Span, reading *Reading, err error) {
	if err != nil {
		span.RecordError(errors.New(redact.Error(err)))
		span.SetStatus(codes.Error, "matrix operation failed")
		return
	}
	span.SetAttributes(attribute.Int("matrix.insights", len(reading.Interpretation.Insights)))
}
