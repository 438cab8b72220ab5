// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package log is the logging facility used by the sequence containers. It
// forwards to [github.com/DataDog/datadog-agent/pkg/util/log] unless another
// [Backend] is installed with [SetBackend], which allows embedding programs to
// route the (rare) resize and configuration messages into their own logger.
package log

import (
	"sync"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
)

// Backend is the set of leveled logging functions used by this module. Any
// field left nil when passed to [SetBackend] falls back to the default
// implementation.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var (
	defaultBackend = Backend{
		Trace:     ddlog.Tracef,
		Debug:     ddlog.Debugf,
		Info:      ddlog.Infof,
		Warn:      func(format string, args ...any) { _ = ddlog.Warnf(format, args...) },
		Errorf:    ddlog.Errorf,
		Criticalf: ddlog.Criticalf,
	}

	mu      sync.RWMutex
	backend = defaultBackend
)

// SetBackend replaces the logging backend. Nil functions in newBackend are
// replaced by their default counterpart.
func SetBackend(newBackend Backend) {
	if newBackend.Trace == nil {
		newBackend.Trace = defaultBackend.Trace
	}
	if newBackend.Debug == nil {
		newBackend.Debug = defaultBackend.Debug
	}
	if newBackend.Info == nil {
		newBackend.Info = defaultBackend.Info
	}
	if newBackend.Warn == nil {
		newBackend.Warn = defaultBackend.Warn
	}
	if newBackend.Errorf == nil {
		newBackend.Errorf = defaultBackend.Errorf
	}
	if newBackend.Criticalf == nil {
		newBackend.Criticalf = defaultBackend.Criticalf
	}

	mu.Lock()
	backend = newBackend
	mu.Unlock()
}

// ResetBackend restores the default backend.
func ResetBackend() {
	SetBackend(Backend{})
}

func current() Backend {
	mu.RLock()
	defer mu.RUnlock()
	return backend
}

// Trace logs a message with format using the TRACE log level.
func Trace(format string, args ...any) {
	current().Trace(format, args...)
}

// Debug logs a message with format using the DEBUG log level.
func Debug(format string, args ...any) {
	current().Debug(format, args...)
}

// Info logs a message with format using the INFO log level.
func Info(format string, args ...any) {
	current().Info(format, args...)
}

// Warn logs a message with format using the WARN log level.
func Warn(format string, args ...any) {
	current().Warn(format, args...)
}

// Errorf logs a message with format using the ERROR log level and returns an
// error containing the formatted log message.
func Errorf(format string, args ...any) error {
	return current().Errorf(format, args...)
}

// Criticalf logs a message with format using the CRITICAL log level and
// returns an error containing the formatted log message.
func Criticalf(format string, args ...any) error {
	return current().Criticalf(format, args...)
}
