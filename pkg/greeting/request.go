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
	"net/http"
	"sort"
)

// RequestContext exposes the headers of an incoming request without tying
// the response builder to a transport.
type RequestContext interface {
	// Header returns the value of the named header and whether it was present.
	Header(name string) (string, bool)
	// HeaderNames lists every header present on the request.
	HeaderNames() []string
}

// HeaderMap is a RequestContext over a fixed set of headers. Names are
// matched exactly.
type HeaderMap map[string]string

// Header implements RequestContext.
func (h HeaderMap) Header(name string) (string, bool) {
	v, ok := h[name]
	return v, ok
}

// HeaderNames implements RequestContext. Names are sorted.
func (h HeaderMap) HeaderNames() []string {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromRequest adapts an http.Request. Header names are reported in canonical
// form, the Host header is recovered from r.Host, and a header sent more than
// once reports its last value.
func FromRequest(r *http.Request) RequestContext {
	headers := make(HeaderMap, len(r.Header)+1)
	for name, values := range r.Header {
		v := ""
		if len(values) > 0 {
			v = values[len(values)-1]
		}
		headers[http.CanonicalHeaderKey(name)] = v
	}

	// net/http moves Host out of the header map
	if r.Host != "" {
		headers["Host"] = r.Host
	}

	return canonicalHeaders{headers}
}

type canonicalHeaders struct {
	HeaderMap
}

func (c canonicalHeaders) Header(name string) (string, bool) {
	return c.HeaderMap.Header(http.CanonicalHeaderKey(name))
}
