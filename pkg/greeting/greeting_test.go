// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		defaultMessage string
		want           string
	}{
		{"empty uses default", "", "Welcome!", "Welcome!"},
		{"spaces use default", "   ", "Hi!", "Hi!"},
		{"tabs and newlines use default", "\t\n", "Hi!", "Hi!"},
		{"simple name", "Bob", "Hi!", "Hello, Bob!"},
		{"trims surrounding space", "  Alice  ", "Hi!", "Hello, Alice!"},
		{"keeps inner space", "Mary Ann", "Hi!", "Hello, Mary Ann!"},
		{"unicode name", "Zoë", "Hi!", "Hello, Zoë!"},
		{"empty default is opaque", "", "", ""},
		{"default not trimmed", "", "  spaced  ", "  spaced  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.input, tt.defaultMessage))
		})
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	for _, name := range []string{"", " ", "Alice", "  Bob  "} {
		first := Generate(name, "Hello, World!")
		for range 3 {
			assert.Equal(t, first, Generate(name, "Hello, World!"))
		}
	}
}

func TestGreetingKind(t *testing.T) {
	assert.Equal(t, kindDefault, greetingKind(""))
	assert.Equal(t, kindDefault, greetingKind("  "))
	assert.Equal(t, kindNamed, greetingKind("Alice"))
}
