// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Command seqctl builds a sequence container of a chosen kind and applies
// operations to it, for experimenting with the containers' behavior.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/DataDog/sequence-go/log"
	"github.com/DataDog/sequence-go/sequence/kind"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "seqctl",
		Short: "Exercise the sequence containers.",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			installLogger(cmd.ErrOrStderr(), verbose)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			log.ResetBackend()
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log container resize events")
	rootCmd.AddCommand(newKindsCmd(), newRunCmd())
	return rootCmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available container kinds.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range kind.Kinds() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), k); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// installLogger routes the containers' logs to a zap console logger writing
// to w.
func installLogger(w io.Writer, verbose bool) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	logger := zap.New(core).Sugar()

	log.SetBackend(log.Backend{
		Trace: logger.Debugf,
		Debug: logger.Debugf,
		Info:  logger.Infof,
		Warn:  logger.Warnf,
		Errorf: func(format string, args ...any) error {
			logger.Errorf(format, args...)
			return fmt.Errorf(format, args...)
		},
		Criticalf: func(format string, args ...any) error {
			logger.Errorf(format, args...)
			return fmt.Errorf(format, args...)
		},
	})
}
