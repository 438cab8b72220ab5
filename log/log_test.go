// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package log_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/DataDog/sequence-go/log"
	"github.com/stretchr/testify/require"
)

type levelName string

const (
	TRACE    levelName = "Trace"
	DEBUG    levelName = "Debug"
	INFO     levelName = "Info"
	WARN     levelName = "Warn"
	ERROR    levelName = "Errorf"
	CRITICAL levelName = "Criticalf"
)

type recorder map[levelName]*struct {
	called  bool
	message string
}

func newRecorder() recorder {
	return recorder{
		TRACE:    {},
		DEBUG:    {},
		INFO:     {},
		WARN:     {},
		ERROR:    {},
		CRITICAL: {},
	}
}

func (r recorder) reset() {
	for _, status := range r {
		status.called = false
		status.message = ""
	}
}

func (r recorder) logger(level levelName) func(string, ...any) {
	return func(format string, args ...any) {
		r[level].called = true
		r[level].message = fmt.Sprintf(format, args...)
	}
}

func (r recorder) errLogger(level levelName) func(string, ...any) error {
	return func(format string, args ...any) error {
		err := fmt.Errorf(format, args...)
		r[level].called = true
		r[level].message = err.Error()
		return err
	}
}

// requireOnly checks that only the named level was hit, with the expected
// message.
func (r recorder) requireOnly(t *testing.T, name levelName, expectedMessage string) {
	t.Helper()
	for level, status := range r {
		if level == name {
			require.True(t, status.called)
			require.Equal(t, expectedMessage, status.message)
			continue
		}
		require.False(t, status.called, "unexpected call to %s", level)
	}
}

func TestBackend(t *testing.T) {
	rec := newRecorder()
	log.SetBackend(log.Backend{
		Trace:     rec.logger(TRACE),
		Debug:     rec.logger(DEBUG),
		Info:      rec.logger(INFO),
		Warn:      rec.logger(WARN),
		Errorf:    rec.errLogger(ERROR),
		Criticalf: rec.errLogger(CRITICAL),
	})
	defer log.ResetBackend()

	for name, logger := range map[levelName]func(string, ...any){
		TRACE: log.Trace,
		DEBUG: log.Debug,
		INFO:  log.Info,
		WARN:  log.Warn,
	} {
		t.Run(string(name), func(t *testing.T) {
			defer rec.reset()

			randomInt := rand.Int()
			logger("sequence: %s %d", name, randomInt)

			rec.requireOnly(t, name, fmt.Sprintf("sequence: %s %d", name, randomInt))
		})
	}

	for name, logger := range map[levelName]func(string, ...any) error{
		ERROR:    log.Errorf,
		CRITICAL: log.Criticalf,
	} {
		t.Run(string(name), func(t *testing.T) {
			defer rec.reset()

			cause := errors.New("cause")
			randomInt := rand.Int()

			err := logger("sequence: %s %d: %w", name, randomInt, cause)

			expectedMessage := fmt.Sprintf("sequence: %s %d: %v", name, randomInt, cause)
			require.Equal(t, expectedMessage, err.Error())
			require.Equal(t, cause, errors.Unwrap(err))
			rec.requireOnly(t, name, expectedMessage)
		})
	}
}

func TestPartialBackend(t *testing.T) {
	rec := newRecorder()
	log.SetBackend(log.Backend{Debug: rec.logger(DEBUG)})
	defer log.ResetBackend()

	// Levels without an override go to the default backend and must not panic.
	require.NotPanics(t, func() {
		log.Trace("sequence: trace %d", 1)
		log.Info("sequence: info %d", 2)
		log.Warn("sequence: warn %d", 3)
	})
	rec.requireOnly(t, "", "")

	log.Debug("sequence: grew from %d to %d slots", 50, 75)
	rec.requireOnly(t, DEBUG, "sequence: grew from 50 to 75 slots")

	err := log.Errorf("sequence: bad value %q", "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad value")
}
