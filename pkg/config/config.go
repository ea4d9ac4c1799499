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

// Package config loads the process-wide test settings from the environment.
//
// Settings are read once at session start, optionally seeded from a .env
// file, and are treated as read-only afterwards.  Real environment variables
// always win over values in the .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

var (
	ErrUnsupportedBrowser    = errors.New("unsupported browser")
	ErrUnsupportedEngine     = errors.New("unsupported engine")
	ErrEngineBrowserMismatch = errors.New("engine does not support browser")
	ErrInvalidURL            = errors.New("invalid url")
	ErrInvalidValue          = errors.New("invalid value")
)

// BrowserKind selects the browser family to launch.
type BrowserKind string

const (
	Chromium BrowserKind = "chromium"
	Firefox  BrowserKind = "firefox"
	WebKit   BrowserKind = "webkit"
)

// Engine selects the automation library that drives the browser.
type Engine string

const (
	EnginePlaywright Engine = "playwright"
	EngineRod        Engine = "rod"
)

//nolint:gochecknoglobals
var (
	browserKinds = []BrowserKind{Chromium, Firefox, WebKit}
	engines      = []Engine{EnginePlaywright, EngineRod}
)

// Settings is the typed view of the environment.
type Settings struct {
	BaseUIURL         string        `envconfig:"BASE_UI_URL" default:"https://httpbin.org"`
	APIBaseURL        string        `envconfig:"API_BASE_URL" default:"https://jsonplaceholder.typicode.com"`
	Browser           BrowserKind   `envconfig:"BROWSER" default:"chromium"`
	Headless          bool          `envconfig:"HEADLESS" default:"true"`
	Timeout           time.Duration `envconfig:"TIMEOUT" default:"30s"`
	NavigationTimeout time.Duration `envconfig:"NAVIGATION_TIMEOUT" default:"30s"`
	APITimeout        time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	Engine            Engine        `envconfig:"ENGINE" default:"playwright"`
	SlowMo            time.Duration `envconfig:"SLOW_MO" default:"0s"`
	ViewportWidth     int           `envconfig:"VIEWPORT_WIDTH" default:"1280"`
	ViewportHeight    int           `envconfig:"VIEWPORT_HEIGHT" default:"720"`
	RecordVideo       bool          `envconfig:"RECORD_VIDEO" default:"false"`
	ResultsDir        string        `envconfig:"RESULTS_DIR" default:"test-results"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`
	LogRequests       bool          `envconfig:"LOG_REQUESTS" default:"false"`
	LogResponses      bool          `envconfig:"LOG_RESPONSES" default:"false"`

	// BrowserURL is a DevTools endpoint of an already running browser, only
	// the rod engine honours it.
	BrowserURL string `envconfig:"BROWSER_URL"`
}

// Load reads settings from the environment and any .env file found, then
// validates them.
func Load() (*Settings, error) {
	loadEnvFile()

	settings := &Settings{}

	if err := envconfig.Process("", settings); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// AddFlags registers command line overrides for the settings.  Flag defaults
// are the values already loaded so an unset flag changes nothing.
func (s *Settings) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&s.BaseUIURL, "ui-url", s.BaseUIURL, "Base URL of the UI under test.")
	f.StringVar(&s.APIBaseURL, "api-url", s.APIBaseURL, "Base URL of the REST API under test.")
	f.StringVar((*string)(&s.Browser), "browser", string(s.Browser), "Browser to launch, one of chromium, firefox or webkit.")
	f.BoolVar(&s.Headless, "headless", s.Headless, "Run the browser without a visible window.")
	f.DurationVar(&s.Timeout, "timeout", s.Timeout, "Default timeout for browser actions.")
	f.StringVar((*string)(&s.Engine), "engine", string(s.Engine), "Automation engine, one of playwright or rod.")
	f.StringVar(&s.ResultsDir, "results-dir", s.ResultsDir, "Directory for screenshots, videos and traces.")
	f.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Log level.")
}

// Validate checks the settings are usable.
func (s *Settings) Validate() error {
	if !slices.Contains(browserKinds, s.Browser) {
		return fmt.Errorf("%w: %q", ErrUnsupportedBrowser, s.Browser)
	}

	if !slices.Contains(engines, s.Engine) {
		return fmt.Errorf("%w: %q", ErrUnsupportedEngine, s.Engine)
	}

	// Rod speaks the DevTools protocol only.
	if s.Engine == EngineRod && s.Browser != Chromium {
		return fmt.Errorf("%w: %s cannot drive %s", ErrEngineBrowserMismatch, s.Engine, s.Browser)
	}

	for name, value := range map[string]string{
		"BASE_UI_URL":  s.BaseUIURL,
		"API_BASE_URL": s.APIBaseURL,
	} {
		if err := validateURL(name, value); err != nil {
			return err
		}
	}

	for name, value := range map[string]time.Duration{
		"TIMEOUT":            s.Timeout,
		"NAVIGATION_TIMEOUT": s.NavigationTimeout,
		"API_TIMEOUT":        s.APITimeout,
	} {
		if value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalidValue, name, value)
		}
	}

	if s.SlowMo < 0 {
		return fmt.Errorf("%w: SLOW_MO must not be negative", ErrInvalidValue)
	}

	if s.ViewportWidth <= 0 || s.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidValue, s.ViewportWidth, s.ViewportHeight)
	}

	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidURL, name)
	}

	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidURL, name, err)
	}

	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: %s must be absolute, got %q", ErrInvalidURL, name, value)
	}

	return nil
}

// envPaths are searched in order, the first hit is loaded.
//
//nolint:gochecknoglobals
var envPaths = []string{
	".env",
	"../../../.env", // From test/*/suites directories.
}

func loadEnvFile() {
	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// Not found, this is OK in CI where variables are set directly.
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
