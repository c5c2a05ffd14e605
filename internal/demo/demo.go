// Package demo runs the pattern scenarios behind the patterns command.
package demo

import (
	"io"
	"time"

	"github.com/hupe1980/gopatterns"
)

// Env carries the ambient dependencies of a scenario.
type Env struct {
	Out     io.Writer
	Logger  *gopatterns.Logger
	Metrics gopatterns.MetricsCollector
	Now     func() time.Time
}

func (e Env) withDefaults() Env {
	if e.Out == nil {
		e.Out = io.Discard
	}
	e.Logger = e.Logger.OrNoop()
	if e.Metrics == nil {
		e.Metrics = gopatterns.NoopMetricsCollector{}
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	return e
}
