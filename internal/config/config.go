// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package config

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/DataDog/dllist-go/log"
)

// Configuration environment variables
const (
	EnvLogLevel  = "DLLIST_LOG_LEVEL"
	EnvGreeting  = "DLLIST_GREETING"
	EnvDemoCount = "DLLIST_DEMO_COUNT"
)

// Configuration constants and default values
const (
	DefaultLogLevel  = "info"
	DefaultGreeting  = "Hello"
	DefaultDemoCount = 4
	MaxDemoCount     = 1_024
)

// logLevels are the levels understood by the datadog-agent logger.
var logLevels = []string{"trace", "debug", "info", "warn", "error", "critical", "off"}

// Config holds the configuration of the dllist command.
type Config struct {
	// LogLevel is the minimum level of messages emitted by the logger.
	LogLevel string
	// Greeting is used by the hello command when none is given on the command
	// line.
	Greeting string
	// DemoCount is the number of values pushed by each list demonstration.
	DemoCount int
}

// New creates and returns a new configuration by reading the env
func New() Config {
	return Config{
		LogLevel:  LogLevelFromEnv(),
		Greeting:  GreetingFromEnv(),
		DemoCount: DemoCountFromEnv(),
	}
}

// LogLevelFromEnv reads the log level from the env, falling back to
// [DefaultLogLevel] when it is missing or not a known level.
func LogLevelFromEnv() string {
	level := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel)))
	if level == "" {
		return DefaultLogLevel
	}
	if slices.Contains(logLevels, level) {
		return level
	}
	log.Debug("config: unknown %s value %q. Defaulting to %s", EnvLogLevel, level, DefaultLogLevel)
	return DefaultLogLevel
}

// GreetingFromEnv reads the default greeting from the env.
func GreetingFromEnv() string {
	greeting, present := os.LookupEnv(EnvGreeting)
	if !present || greeting == "" {
		return DefaultGreeting
	}
	return greeting
}

// DemoCountFromEnv reads the demonstration size from the env. Values outside
// of [1, MaxDemoCount] are rejected.
func DemoCountFromEnv() int {
	value, present := os.LookupEnv(EnvDemoCount)
	if !present {
		return DefaultDemoCount
	}
	count, err := strconv.Atoi(value)
	if err != nil {
		log.Debug("config: could not parse %s. Defaulting to %d", EnvDemoCount, DefaultDemoCount)
		return DefaultDemoCount
	}
	if count < 1 || count > MaxDemoCount {
		log.Debug("config: %s value must be between 1 and %d. Defaulting to %d", EnvDemoCount, MaxDemoCount, DefaultDemoCount)
		return DefaultDemoCount
	}
	return count
}
