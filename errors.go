// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import "errors"

var (
	// ErrConfiguration reports an invalid logger configuration rejected
	// before any sink is attached.
	ErrConfiguration = errors.New("logger configuration not valid")
)
