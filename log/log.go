// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2022-present Datadog, Inc.

// Package log is the logging facade used throughout this module. By default it
// forwards to [github.com/DataDog/datadog-agent/pkg/util/log], but embedders
// may redirect it to their own logger using [SetBackend].
package log

import (
	"sync"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
)

// Backend is the set of functions the package-level loggers forward to.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var (
	backendMu sync.RWMutex
	backend   = defaultBackend()
)

// defaultBackend returns a [Backend] forwarding to the datadog-agent logger.
func defaultBackend() Backend {
	return Backend{
		Trace: ddlog.Tracef,
		Debug: ddlog.Debugf,
		Info:  ddlog.Infof,
		Warn: func(format string, args ...any) {
			_ = ddlog.Warnf(format, args...)
		},
		Errorf:    ddlog.Errorf,
		Criticalf: ddlog.Criticalf,
	}
}

// SetBackend replaces the logging backend. Any nil function in b falls back to
// the default datadog-agent logger for that level.
func SetBackend(b Backend) {
	def := defaultBackend()
	if b.Trace == nil {
		b.Trace = def.Trace
	}
	if b.Debug == nil {
		b.Debug = def.Debug
	}
	if b.Info == nil {
		b.Info = def.Info
	}
	if b.Warn == nil {
		b.Warn = def.Warn
	}
	if b.Errorf == nil {
		b.Errorf = def.Errorf
	}
	if b.Criticalf == nil {
		b.Criticalf = def.Criticalf
	}

	backendMu.Lock()
	defer backendMu.Unlock()
	backend = b
}

func current() Backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return backend
}

// Trace logs a message at trace level.
func Trace(format string, args ...any) {
	current().Trace(format, args...)
}

// Debug logs a message at debug level.
func Debug(format string, args ...any) {
	current().Debug(format, args...)
}

// Info logs a message at info level.
func Info(format string, args ...any) {
	current().Info(format, args...)
}

// Warn logs a message at warning level.
func Warn(format string, args ...any) {
	current().Warn(format, args...)
}

// Errorf logs a message at error level, and returns an error carrying the
// formatted message.
func Errorf(format string, args ...any) error {
	return current().Errorf(format, args...)
}

// Criticalf logs a message at critical level, and returns an error carrying the
// formatted message.
func Criticalf(format string, args ...any) error {
	return current().Criticalf(format, args...)
}
