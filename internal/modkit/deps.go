// Package modkit provides module wiring and core deps
package modkit

import (
	"eventboard/internal/platform/config"
	"eventboard/internal/platform/logger"
	"eventboard/internal/platform/metrics"
)

// Deps holds the core dependencies passed to every module. Metrics may be nil
type Deps struct {
	Log     *logger.Logger
	Cfg     config.Conf
	Metrics *metrics.Metrics
}

// Logger returns Log, or a component logger when Log is unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
