// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

// Package config provides configuration loading, merging, and validation
// facilities for the NeoVault binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (NEOVAULT_*)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetConfig].
package config
