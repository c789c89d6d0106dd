// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleInContext(t *testing.T) {
	t.Parallel()

	t.Run("from nil context return disabled handle", func(t *testing.T) {
		t.Parallel()

		var ctx context.Context
		assert.Same(t, Disabled, FromContext(ctx))
	})

	t.Run("from empty context return disabled handle", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, Disabled, FromContext(context.Background()))
	})

	t.Run("context with a handle return that handle", func(t *testing.T) {
		t.Parallel()

		handle := consoleHandle(t, "ctx", new(bytes.Buffer), INFO)
		ctx := WithContext(context.Background(), handle)

		assert.Same(t, handle, FromContext(ctx))
	})
}
