// Copyright 2026 The Ease Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the ease tool.
//
// Configuration is loaded from a single file specified by:
//   - EASE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// When neither is given, built-in defaults apply. There is no
// automatic discovery beyond that. Environment variables never
// override file values; the only expansion performed is ${VAR} and
// ${VAR:-default} in repository paths for portability.
//
// The config file may contain environment-specific sections
// (development, staging, production) that override base values when
// the environment matches. CI setups typically pin the repositories
// per environment this way.
package config
