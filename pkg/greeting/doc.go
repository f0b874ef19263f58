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

// Package greeting builds the hello response: a greeting for an optional
// name, enriched with the caller's request headers and a diagnostics
// snapshot of the serving host.
//
// # Endpoint
//
//	GET /api/hello?name=Alice
//
// Response (200, application/json):
//
//	{
//	  "message": "Hello, Alice!",
//	  "timestamp": "2025-06-01T12:30:00.123456789+02:00",
//	  "userAgent": "curl/8.5.0",
//	  "requestHeaders": {
//	    "Accept": "*/*",
//	    "Host": "localhost:8080",
//	    "User-Agent": "curl/8.5.0"
//	  },
//	  "serverInfo": {
//	    "hostname": "web-1",
//	    "runtimeVersion": "go1.25.0",
//	    "osName": "Linux",
//	    "osVersion": "6.8.0-45-generic",
//	    "freeMemoryMb": 3,
//	    "totalMemoryMb": 7
//	  }
//	}
//
// A blank or missing name returns the configured default message verbatim.
// Methods other than GET receive a 405 error with an Allow header.
//
// # Usage
//
//	b := greeting.NewBuilder(greeting.WithDefaultMessage(cfg.DefaultMessage))
//	handlers := map[string]http.HandlerFunc{"/api/hello": b.HandleHello}
//
// BuildResponse can be driven without HTTP through a HeaderMap:
//
//	resp := b.BuildResponse(ctx, "Bob", greeting.HeaderMap{"User-Agent": "cli"})
//
// # Metrics
//
//   - hello_greetings_total{kind="default"|"named"}
package greeting
