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

// Package header provides the envelope stamped on documents the hellod CLI
// writes, such as the output of `hellod info` and `hellod config`.
//
// A Header carries a Kind, an APIVersion and free-form string metadata:
//
//	kind: ServerInfo
//	apiVersion: hello.sbxservice.io/v1
//	metadata:
//	  timestamp: "2025-01-02T03:04:05Z"
//	  version: v1.2.0
//
// Embed Header (with `yaml:",inline"`) in the document type so the fields
// appear at the top level in both JSON and YAML.
package header
