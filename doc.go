// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logkit configures named loggers with file and console sinks on top
// of the hclog runtime. It centralizes sink setup behind a registry and makes
// handles available through context helpers.
package logkit
