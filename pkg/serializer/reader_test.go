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

package serializer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{"json lowercase", "config.json", FormatJSON},
		{"json uppercase", "CONFIG.JSON", FormatJSON},
		{"yaml extension", "config.yaml", FormatYAML},
		{"yml extension", "config.yml", FormatYAML},
		{"table extension", "output.table", FormatTable},
		{"txt extension", "output.txt", FormatTable},
		{"unknown extension defaults to json", "file.unknown", FormatJSON},
		{"no extension defaults to json", "config", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNewReader_RejectsUnreadableFormats(t *testing.T) {
	for _, f := range []Format{FormatTable, "xml"} {
		if _, err := NewReader(f, strings.NewReader("")); err == nil {
			t.Errorf("NewReader(%q) expected error", f)
		}
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		opts    []ReaderOption
		want    testConfig
		wantErr bool
	}{
		{
			name:   "json",
			format: FormatJSON,
			input:  `{"name":"a","value":1}`,
			want:   testConfig{Name: "a", Value: 1},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input:  "name: a\nvalue: 1\n",
			want:   testConfig{Name: "a", Value: 1},
		},
		{
			name:   "yaml unknown field tolerated by default",
			format: FormatYAML,
			input:  "name: a\nextra: x\n",
			want:   testConfig{Name: "a"},
		},
		{
			name:    "yaml unknown field rejected when strict",
			format:  FormatYAML,
			input:   "name: a\nextra: x\n",
			opts:    []ReaderOption{WithStrict()},
			wantErr: true,
		},
		{
			name:    "json unknown field rejected when strict",
			format:  FormatJSON,
			input:   `{"name":"a","extra":"x"}`,
			opts:    []ReaderOption{WithStrict()},
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			format:  FormatYAML,
			input:   "name: [unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input), tt.opts...)
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}

			var got testConfig
			err = r.Deserialize(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Deserialize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReader_EmptyInputIsEOF(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader(""))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var got testConfig
	if err := r.Deserialize(&got); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReader_NilSafety(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error from nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader: %v", err)
	}

	empty := &Reader{format: FormatJSON}
	if err := empty.Deserialize(&testConfig{}); err == nil {
		t.Error("expected error for nil input")
	}
}

func TestNewFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("name: file\nvalue: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := NewFileReaderAuto(path)
	if err != nil {
		t.Fatalf("NewFileReaderAuto failed: %v", err)
	}

	var got testConfig
	if err := r.Deserialize(&got); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Name != "file" || got.Value != 3 {
		t.Errorf("got %+v", got)
	}

	if err := r.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close should be a no-op: %v", err)
	}

	if _, err := NewFileReader(FormatYAML, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"name":"json","value":9}`), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile[testConfig](path, WithStrict())
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if got.Name != "json" || got.Value != 9 {
		t.Errorf("got %+v", got)
	}

	if _, err := FromFile[testConfig](filepath.Join(dir, "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
