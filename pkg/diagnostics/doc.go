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

// Package diagnostics collects host and runtime facts about the serving process.
//
// A ServerInfo snapshot is taken on every call and never cached:
//
//	c := diagnostics.NewCollector()
//	info := c.CollectServerInfo(ctx)
//	fmt.Println(info.Hostname, info.OSName, info.FreeMemoryMB)
//
// Fields:
//
//   - Hostname: os.Hostname, "unknown" when unavailable or empty
//   - RuntimeVersion: runtime.Version
//   - OSName: runtime.GOOS, title-cased ("Linux", "Darwin")
//   - OSVersion: kernel release from gopsutil, "unknown" on failure
//   - FreeMemoryMB, TotalMemoryMB: heap free and heap reserved from the OS,
//     truncated to whole megabytes
//
// Every data source can be replaced through functional options, which is how
// tests exercise the fallback paths.
package diagnostics
