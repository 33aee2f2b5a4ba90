// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates joycribe configuration.
//
// Values are collected from three sources. For every field the first source
// that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG or -c/-config)
//
// Unset fields then receive their defaults. [GetClientConfig] and
// [GetServerConfig] return the role-specific views used by cmd/client and
// cmd/server.
package config
