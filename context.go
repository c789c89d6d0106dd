// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"context"
)

// WithContext returns a new context with the provided handle.
func WithContext(ctx context.Context, handle *Handle) context.Context {
	return context.WithValue(ctx, contextKey, handle)
}

// FromContext retrieves the handle from the context. If no handle is found,
// the Disabled handle is returned.
func FromContext(ctx context.Context) *Handle {
	if ctx != nil {
		if handle, ok := ctx.Value(contextKey).(*Handle); ok {
			return handle
		}
	}

	return Disabled
}

// Unexported new type so that our context key never collides with another.
type contextKeyType struct{}

// contextKey is the key used for the context to store the handle.
var contextKey = contextKeyType{}
