package mapper

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"multibundle-mapper/internal/bundle"
	"multibundle-mapper/internal/writer"
)

// State is a stage of the Mapper lifecycle.
type State int

const (
	// StateOpen means no record has been accepted yet.
	StateOpen State = iota
	// StateAccepting means at least one record has been accepted.
	StateAccepting
	// StateFinalizing means the writer is running.
	StateFinalizing
	// StateClosed means finalization has completed or was abandoned.
	StateClosed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateAccepting:
		return "accepting"
	case StateFinalizing:
		return "finalizing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Mapper collects bundle records and writes their locations and include
// lists into a single output file once the record stream ends.
//
// Accept is meant to be called from a single goroutine. State and Snapshot
// may be called concurrently.
type Mapper struct {
	format  Format
	output  string
	prefix  string
	markers bundle.Markers
	writer  writer.Writer
	onDone  func(error)
	logger  *zap.Logger

	mu    sync.Mutex
	acc   *bundle.Accumulator
	state State
}

// New creates a Mapper writing format to outputPath.
// It fails with a *ConfigurationError when the format is not supported,
// the output path is empty, or a JSON marker is not a valid document path.
func New(format Format, outputPath string, opts ...Option) (*Mapper, error) {
	if !format.IsValid() {
		return nil, &ConfigurationError{Field: "format", Reason: fmt.Sprintf("unsupported output format %s", format)}
	}

	if strings.TrimSpace(outputPath) == "" {
		return nil, &ConfigurationError{Field: "output", Reason: "output file path is required"}
	}

	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	markers := o.markers.Or(format.DefaultMarkers())

	var w writer.Writer

	switch format {
	case FormatJSON:
		if err := validateDocPaths(markers); err != nil {
			return nil, err
		}

		w = &writer.JSONWriter{}
	case FormatJS:
		tw := writer.NewScript()
		tw.Strict = o.strict

		if o.configFunc != "" {
			tw.ConfigFunc = o.configFunc
		}

		w = tw
	case FormatHTML:
		tw := writer.NewMarkup()
		tw.Strict = o.strict

		if o.configFunc != "" {
			tw.ConfigFunc = o.configFunc
		}

		w = tw
	}

	return &Mapper{
		format:  format,
		output:  outputPath,
		prefix:  o.prefix,
		markers: markers,
		writer:  w,
		onDone:  o.onDone,
		logger:  o.logger.With(zap.Stringer("format", format), zap.String("output", outputPath)),
		acc:     bundle.NewAccumulator(),
	}, nil
}

// JSON creates a Mapper writing a JSON file.
func JSON(outputPath string, opts ...Option) (*Mapper, error) {
	return New(FormatJSON, outputPath, opts...)
}

// JS creates a Mapper writing a JS file.
func JS(outputPath string, opts ...Option) (*Mapper, error) {
	return New(FormatJS, outputPath, opts...)
}

// HTML creates a Mapper writing an HTML file.
func HTML(outputPath string, opts ...Option) (*Mapper, error) {
	return New(FormatHTML, outputPath, opts...)
}

func validateDocPaths(m bundle.Markers) error {
	if _, err := bundle.ParseDocPath(m.Mapping); err != nil {
		return &ConfigurationError{Field: "mapping marker", Reason: err.Error()}
	}

	if _, err := bundle.ParseDocPath(m.Bundles); err != nil {
		return &ConfigurationError{Field: "bundles marker", Reason: err.Error()}
	}

	return nil
}

// Format returns the output format.
func (m *Mapper) Format() Format {
	return m.format
}

// Output returns the output file path.
func (m *Mapper) Output() string {
	return m.output
}

// Markers returns the effective markers.
func (m *Mapper) Markers() bundle.Markers {
	return m.markers
}

// State returns the current lifecycle state.
func (m *Mapper) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Snapshot returns a copy of the records accumulated so far.
func (m *Mapper) Snapshot() *bundle.Accumulator {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.acc.Clone()
}

// Accept adds a record to the accumulator. A record whose name was seen
// before replaces the earlier one. No I/O happens here.
func (m *Mapper) Accept(rec bundle.Record) error {
	if rec.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidRecord)
	}

	if rec.OutFile == "" {
		return fmt.Errorf("%w: bundle %q has no output file", ErrInvalidRecord, rec.Name)
	}

	loc := location(m.prefix, rec.OutFile)

	m.mu.Lock()
	if m.state >= StateFinalizing {
		m.mu.Unlock()
		return ErrClosed
	}

	m.state = StateAccepting
	m.acc.Add(rec.Name, loc, rec.Include)
	m.mu.Unlock()

	m.logger.Debug("bundle accepted",
		zap.String("bundle", rec.Name),
		zap.String("location", loc),
		zap.Int("modules", len(rec.Include)))

	return nil
}

// Finalize writes the accumulated data into the output file. It may be
// called once; later calls return ErrAlreadyFinalized. Accept fails with
// ErrClosed from the moment Finalize starts.
func (m *Mapper) Finalize(ctx context.Context) error {
	m.mu.Lock()
	if m.state >= StateFinalizing {
		m.mu.Unlock()
		return ErrAlreadyFinalized
	}

	m.state = StateFinalizing
	m.mu.Unlock()

	defer m.setState(StateClosed)

	report, err := m.writer.Write(ctx, m.output, m.acc, m.markers)
	if report != nil {
		for _, w := range report.Diagnostics.Warnings {
			m.logger.Warn(w.Message, zap.String("code", w.Code), zap.String("marker", w.Field))
		}
	}

	if err != nil {
		return fmt.Errorf("writing %s output: %w", m.format, err)
	}

	m.logger.Info("bundle map written",
		zap.Int("bundles", m.acc.Len()),
		zap.Bool("created", report.Created),
		zap.Int("bytes", report.Bytes))

	return nil
}

// Consume accepts records from the channel until it is closed, then
// finalizes. The result is passed to the completion handler registered with
// WithOnDone and also returned. Without a handler a non-nil result panics.
//
// If ctx is canceled before the channel is closed, nothing is written and the
// context error is reported.
func (m *Mapper) Consume(ctx context.Context, records <-chan bundle.Record) error {
	err := m.drain(ctx, records)
	if err == nil {
		err = m.Finalize(ctx)
	} else {
		m.setState(StateClosed)
	}

	m.done(err)

	return err
}

func (m *Mapper) drain(ctx context.Context, records <-chan bundle.Record) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case rec, ok := <-records:
			if !ok {
				return nil
			}

			if err := m.Accept(rec); err != nil {
				return err
			}
		}
	}
}

func (m *Mapper) done(err error) {
	if m.onDone != nil {
		m.onDone(err)
		return
	}

	if err != nil {
		panic(fmt.Errorf("multibundle mapper %s: %w", m.output, err))
	}
}

func (m *Mapper) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}
