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

// Package fixtures supplies per-spec resources to the Ginkgo suites.
//
// # Lifecycle
//
// Settings are loaded once per process.  Everything else is built inside a
// spec node and registers its own teardown with DeferCleanup, so browser
// sessions, pages and API clients are released when the test ends, passed
// or failed.  Nothing is shared between specs, which keeps `ginkgo -p` safe
// with one browser per spec per worker process.
//
// # Failure Artifacts
//
// A page opened through Page captures a full page screenshot into
// RESULTS_DIR/screenshots when its spec fails, and attaches the path to
// the Ginkgo report.
//
// # Labels
//
// Suites label specs with the constants in this package: smoke, ui, api and
// slow.  Select with `ginkgo --label-filter=smoke` for example.
package fixtures
