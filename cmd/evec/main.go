// SPDX-License-Identifier: MIT

// Package main provides evec, a small command-line calculator over the
// vector package: norms, unit vectors, dot products and element-wise
// arithmetic on vectors given inline or loaded from a YAML file.
package main

import (
	"os"
	"strings"
)

var (
	version = "0.1.0"
	commit  = "dev" // Set via ldflags: -X main.commit=$(git rev-parse --short HEAD)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// getEnvStr reads a string flag default such as EVEC_FILE or EVEC_FORMAT.
// An unset or empty variable yields defaultVal.
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvBool reads a boolean flag default such as EVEC_VERBOSE.
// Unrecognised values fall back to defaultVal.
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultVal
}
