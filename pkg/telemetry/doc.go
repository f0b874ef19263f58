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

// Package telemetry wires OpenTelemetry tracing into hellod.
//
// Tracing is off unless OTEL_EXPORTER_OTLP_ENDPOINT is set, in which case
// spans are exported over OTLP/HTTP. OTEL_TRACES_SAMPLER_ARG sets the
// sampling ratio (default 1.0) and OTEL_SERVICE_NAME overrides the service
// name. Probe and metrics endpoints are never traced.
package telemetry
