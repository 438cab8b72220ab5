// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// script is a YAML file describing the container to build and the
// operations to apply to it.
type script struct {
	Kind     string      `yaml:"kind"`
	Capacity int         `yaml:"capacity"`
	Ops      []operation `yaml:"ops"`
}

func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return parseScript(data)
}

func parseScript(data []byte) (*script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	s := new(script)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	for i, o := range s.Ops {
		if err := o.validate(); err != nil {
			return nil, fmt.Errorf("script operation #%d: %w", i+1, err)
		}
	}
	return s, nil
}
