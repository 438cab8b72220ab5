// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/DataDog/sequence-go/config"
	"github.com/DataDog/sequence-go/log"
	"github.com/DataDog/sequence-go/sequence/kind"
	"github.com/DataDog/sequence-go/stats"
)

const envPrefix = "SEQCTL"

type runFlags struct {
	config    string
	script    string
	keepGoing bool
	stats     bool
}

func newRunCmd() *cobra.Command {
	rf := new(runFlags)
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "run [--kind kind] [--capacity n] [--script file] [op...]",
		Short: "Apply operations to a new container.",
		Long: `Apply operations to a new container and print the result of each of them.

Operations are push_back:x, push_front:x, insert:x@p, replace:x@p, remove:p,
pop_back, pop_front, item_at:p, peek_back, peek_front, contains:x, length,
clear and print. Script operations run before command line ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, rf, args)
		},
		DisableFlagsInUseLine: true,
	}

	fs := cmd.Flags()
	fs.String("kind", kind.CBL.String(), "container kind, see the kinds command")
	fs.Int("capacity", config.NewSequenceConfig().DefaultCapacity, "initial capacity of array-based containers")
	fs.StringVarP(&rf.config, "config", "c", "", "config file providing kind and capacity")
	fs.StringVarP(&rf.script, "script", "s", "", "YAML script of operations")
	fs.BoolVar(&rf.keepGoing, "keep-going", false, "continue after a failed operation")
	fs.BoolVar(&rf.stats, "stats", false, "print allocation statistics once done")

	_ = v.BindPFlag("kind", fs.Lookup("kind"))
	_ = v.BindPFlag("capacity", fs.Lookup("capacity"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, rf *runFlags, args []string) error {
	if rf.config != "" {
		v.SetConfigFile(rf.config)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	kindName, capacity := v.GetString("kind"), v.GetInt("capacity")
	var ops []operation
	if rf.script != "" {
		s, err := loadScript(rf.script)
		if err != nil {
			return err
		}
		// Explicit flags take precedence over the script.
		if s.Kind != "" && !cmd.Flags().Changed("kind") {
			kindName = s.Kind
		}
		if s.Capacity != 0 && !cmd.Flags().Changed("capacity") {
			capacity = s.Capacity
		}
		ops = append(ops, s.Ops...)
	}
	for _, arg := range args {
		o, err := parseOperation(arg)
		if err != nil {
			return err
		}
		ops = append(ops, o)
	}

	k, err := kind.Parse(kindName)
	if err != nil {
		return err
	}
	seq, err := kind.NewWithCapacity[string](k, capacity)
	if err != nil {
		return err
	}
	log.Debug("seqctl: running %d operations on %s", len(ops), k)

	before := stats.Read()
	out := cmd.OutOrStdout()
	var failures []error
	for _, o := range ops {
		if err := apply(seq, o, out); err != nil {
			if !rf.keepGoing {
				return err
			}
			_, _ = fmt.Fprintf(out, "%s\n", err)
			failures = append(failures, err)
		}
	}
	if err := seq.Print(out); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	if rf.stats {
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(stats.Read().Sub(before)); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d operations failed: %w", len(failures), errors.Join(failures...))
	}
	return nil
}
