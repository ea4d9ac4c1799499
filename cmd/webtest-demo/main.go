/*
Copyright 2025 the Unikorn Authors.
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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/webtest/pkg/config"
	"github.com/unikorn-cloud/webtest/pkg/constants"
	"github.com/unikorn-cloud/webtest/pkg/logging"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var skipUI, skipAPI bool

	settings.AddFlags(pflag.CommandLine)
	pflag.BoolVar(&skipUI, "skip-ui", false, "Skip the browser walk.")
	pflag.BoolVar(&skipAPI, "skip-api", false, "Skip the API walk.")

	pflag.Parse()

	// Flags may have changed anything.
	if err := settings.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := logging.Setup(settings.LogLevel, os.Stderr); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	log.Info().Str("application", constants.Application).Str("version", constants.Version).Str("revision", constants.Revision).Msg("demo starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !skipUI {
		if err := runUI(ctx, settings); err != nil {
			log.Error().Err(err).Msg("UI walk failed")
			stop()
			os.Exit(1)
		}
	}

	if !skipAPI {
		if err := runAPI(ctx, settings); err != nil {
			log.Error().Err(err).Msg("API walk failed")
			stop()
			os.Exit(1)
		}
	}

	log.Info().Msg("demo completed")
}
