package report

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/gopatterns"
	"github.com/hupe1980/gopatterns/blobstore"
	"github.com/hupe1980/gopatterns/codec"
	"github.com/hupe1980/gopatterns/internal/compress"
	"github.com/hupe1980/gopatterns/kmeans"
)

type options struct {
	codec       codec.Codec
	compression compress.Type
	logger      *gopatterns.Logger
	metrics     gopatterns.MetricsCollector
	now         func() time.Time
}

// Option configures a Writer.
type Option func(*options)

// WithCodec sets the payload codec. Defaults to codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithCompression sets the payload compression. Defaults to compress.None.
func WithCompression(t compress.Type) Option {
	return func(o *options) {
		o.compression = t
	}
}

// WithLogger sets the logger.
func WithLogger(l *gopatterns.Logger) Option {
	return func(o *options) {
		o.logger = l.OrNoop()
	}
}

// WithMetricsCollector sets the metrics collector.
func WithMetricsCollector(m gopatterns.MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithClock overrides the time source used for Snapshot.CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Writer stores and loads reports in a blobstore.Store.
type Writer struct {
	store blobstore.Store
	opts  options
}

// NewWriter creates a Writer on top of store.
func NewWriter(store blobstore.Store, optFns ...Option) *Writer {
	opts := options{
		codec:   codec.Default,
		logger:  gopatterns.NoopLogger(),
		metrics: gopatterns.NoopMetricsCollector{},
		now:     time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Writer{store: store, opts: opts}
}

// Write captures r as a Snapshot and stores it under name.
// It returns the number of bytes written.
func (w *Writer) Write(ctx context.Context, name string, r *kmeans.Result) (int, error) {
	if r == nil {
		return 0, ErrNilResult
	}
	return w.WriteSnapshot(ctx, FromResult(name, r, w.opts.now()))
}

// WriteSnapshot stores an already captured Snapshot under s.Name.
func (w *Writer) WriteSnapshot(ctx context.Context, s Snapshot) (size int, err error) {
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		w.opts.metrics.RecordExport(size, elapsed, err)
		w.opts.logger.LogExport(ctx, s.Name, size, elapsed, err)
	}()

	data, err := Encode(s, w.opts.codec, w.opts.compression)
	if err != nil {
		return 0, err
	}
	if err := w.store.Put(ctx, s.Name, data); err != nil {
		return 0, fmt.Errorf("report: put %q: %w", s.Name, err)
	}
	return len(data), nil
}

// Read loads the report stored under name.
// The codec and compression are taken from the blob header.
func (w *Writer) Read(ctx context.Context, name string) (*Snapshot, error) {
	data, err := w.store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("report: get %q: %w", name, err)
	}
	s, _, err := Decode(data)
	return s, err
}

// List returns the names of stored reports starting with prefix.
func (w *Writer) List(ctx context.Context, prefix string) ([]string, error) {
	return w.store.List(ctx, prefix)
}
