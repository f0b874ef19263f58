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

import "strings"

// DefaultMessage is returned for blank names when no message is configured.
const DefaultMessage = "Hello, World!"

// Generate returns the greeting for name. A blank name (empty or whitespace
// only) yields defaultMessage unchanged; otherwise the trimmed name is
// greeted as "Hello, <name>!".
func Generate(name, defaultMessage string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return defaultMessage
	}
	return "Hello, " + trimmed + "!"
}

// isNamed reports whether name produces a personalized greeting.
func isNamed(name string) bool {
	return strings.TrimSpace(name) != ""
}
