package feed

import (
	"golang.org/x/time/rate"

	"github.com/hupe1980/gopatterns"
)

type options struct {
	logger  *gopatterns.Logger
	metrics gopatterns.MetricsCollector
	limiter *rate.Limiter
}

func defaultOptions() options {
	return options{
		logger:  gopatterns.NoopLogger(),
		metrics: gopatterns.NoopMetricsCollector{},
	}
}

// Option configures a User.
type Option func(*options)

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *gopatterns.Logger) Option {
	return func(o *options) {
		o.logger = l.OrNoop()
	}
}

// WithMetricsCollector configures a metrics collector. Pass nil to disable it.
func WithMetricsCollector(mc gopatterns.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = gopatterns.NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithNotifyLimit throttles deliveries to subscribers to r per second with
// the given burst. Notify blocks until a delivery is allowed or ctx is done.
// A zero or negative r disables throttling.
func WithNotifyLimit(r rate.Limit, burst int) Option {
	return func(o *options) {
		if r <= 0 {
			o.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(r, burst)
	}
}
