// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2024-present Datadog, Inc.

// Package config resolves the tunables of the sequence containers from the
// environment.
package config

import (
	"os"
	"strconv"

	"github.com/DataDog/sequence-go/log"
)

// Configuration environment variables
const (
	EnvDefaultCapacity = "DD_SEQUENCE_DEFAULT_CAPACITY"
	EnvPoolCeiling     = "DD_SEQUENCE_POOL_CEILING"
	EnvChainSlack      = "DD_SEQUENCE_CHAIN_SLACK"
)

// Configuration constants and default values
const (
	DefaultCapacity    = 50
	DefaultPoolCeiling = 50
	DefaultChainSlack  = 1
)

// SequenceConfig holds the storage policy knobs shared by the containers.
type SequenceConfig struct {
	// DefaultCapacity is the initial backing capacity of the array-based
	// containers when none is given explicitly.
	DefaultCapacity int
	// PoolCeiling is the number of free nodes a pooled list retains before
	// releasing the excess.
	PoolCeiling int
	// ChainSlack is the number of empty trailing blocks a chained list keeps
	// around before releasing the rest.
	ChainSlack int
}

// NewSequenceConfig creates and returns a new configuration by reading the
// env. Invalid values are logged and replaced by their default.
func NewSequenceConfig() SequenceConfig {
	return SequenceConfig{
		DefaultCapacity: readIntEnv(EnvDefaultCapacity, DefaultCapacity, 1),
		PoolCeiling:     readIntEnv(EnvPoolCeiling, DefaultPoolCeiling, 0),
		ChainSlack:      readIntEnv(EnvChainSlack, DefaultChainSlack, 0),
	}
}

func readIntEnv(name string, defaultValue int, minValue int) int {
	val, present := os.LookupEnv(name)
	if !present || val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		log.Debug("sequence: could not parse %s. Defaulting to %d", name, defaultValue)
		return defaultValue
	}
	if parsed < minValue {
		_ = log.Errorf("sequence: %s value must be at least %d, got %d. Defaulting to %d", name, minValue, parsed, defaultValue)
		return defaultValue
	}
	return parsed
}
