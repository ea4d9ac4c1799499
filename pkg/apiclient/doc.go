/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package apiclient provides a thin HTTP client for REST API tests.
//
// # Generic Verbs
//
// Get, Post, Put, Patch and Delete prefix the base URL, attach default
// headers and return a Response carrying the status code, headers, raw
// body and JSON helpers.  A non-2xx status is not an error at this level,
// tests assert on it directly.  Transport failures are returned wrapped but
// otherwise untouched, so errors.Is and errors.As keep working against the
// net/http and context errors underneath.
//
// There is no retry or backoff.
//
// # Typed Resources
//
// The posts helpers sit on top of the generic verbs, decode into Go types and
// return a *StatusError when the API answers with an unexpected code.
//
// # Tracing
//
// Every request is wrapped in an OpenTelemetry client span and carries a W3C
// traceparent header.  The trace ID is logged on failure and exposed on the
// Response, so a failing test can be matched against server side logs.
package apiclient
