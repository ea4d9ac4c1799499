/*
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

// Package logging configures the process-wide logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/unikorn-cloud/webtest/pkg/constants"
)

// TimeFormat matches the timestamp layout of test reports.
const TimeFormat = "2006-01-02 15:04:05"

// Setup points the global logger at out with the given level.  A nil writer
// means stderr.  An unknown level is rejected and the logger is left alone.
func Setup(level string, out io.Writer) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", level, err)
	}

	// An empty string parses as NoLevel, which would log everything.
	if parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	if out == nil {
		out = os.Stderr
	}

	zerolog.SetGlobalLevel(parsed)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: TimeFormat, NoColor: true}).
		With().
		Timestamp().
		Str("logger", constants.LoggerName).
		Logger()

	return nil
}
