// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package greet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHello(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "newline",
			input:    "Ada\n",
			expected: "Who are you?\nHello, Ada\n",
		},
		{
			name:     "crlf",
			input:    "Ada\r\n",
			expected: "Who are you?\nHello, Ada\n",
		},
		{
			name:     "eof",
			input:    "Ada",
			expected: "Who are you?\nHello, Ada\n",
		},
		{
			name:     "first-line-only",
			input:    "Ada\nGrace\n",
			expected: "Who are you?\nHello, Ada\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Hello(strings.NewReader(tc.input), &out, "Hello"))
			require.Equal(t, tc.expected, out.String())
		})
	}

	t.Run("no-name", func(t *testing.T) {
		var out bytes.Buffer
		require.EqualError(t, Hello(strings.NewReader(""), &out, "Hello"), "no name given")
		require.Equal(t, "Who are you?\n", out.String())
	})
}
