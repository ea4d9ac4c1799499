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

//go:generate mockgen -source=browser.go -destination=mock/browser.go -package=mock

// Package browser hides the automation library behind a small page API so
// page objects and suites work with either engine.
package browser

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unikorn-cloud/webtest/pkg/config"
)

var (
	ErrUnsupportedLoadState = errors.New("unsupported load state")
)

// LoadState is a page lifecycle milestone to wait for.
type LoadState string

const (
	LoadStateLoad             LoadState = "load"
	LoadStateDOMContentLoaded LoadState = "domcontentloaded"
	LoadStateNetworkIdle      LoadState = "networkidle"
)

// Page is a single browser tab.  Selector based calls act on the first
// matching element and rely on the engine to wait for it.
type Page interface {
	// Goto navigates to an absolute URL.
	Goto(url string) error
	WaitForLoadState(state LoadState) error
	// WaitForSelector waits until the element is visible, a zero timeout
	// uses the session default.
	WaitForSelector(selector string, timeout time.Duration) error
	Click(selector string) error
	// ClickText clicks the first element matching selector that contains text.
	ClickText(selector, text string) error
	// Fill replaces the value of an input.
	Fill(selector, value string) error
	// Type sends text one character at a time with delay between characters.
	Type(selector, text string, delay time.Duration) error
	TextContent(selector string) (string, error)
	// Attribute returns the attribute value, or an empty string when unset.
	Attribute(selector, name string) (string, error)
	// AttributeAll returns the attribute of every matching element, skipping
	// elements where it is unset or empty.
	AttributeAll(selector, name string) ([]string, error)
	Count(selector string) (int, error)
	IsVisible(selector string) (bool, error)
	IsEnabled(selector string) (bool, error)
	// SelectOption selects the option with the given value in a select element.
	SelectOption(selector, value string) error
	Screenshot(path string, fullPage bool) error
	URL() string
	Title() (string, error)
	// Content returns the serialized DOM.
	Content() (string, error)
	Reload() error
	GoBack() error
	GoForward() error
	Close() error
}

// Session is an isolated browser context owned by a single test.
type Session interface {
	NewPage() (Page, error)
	// Close tears down the context, the browser and the driver.  Every
	// step is attempted regardless of earlier failures.
	Close() error
}

// Launch starts a session with the engine and browser named in settings.
func Launch(ctx context.Context, settings *config.Settings) (Session, error) {
	log.Info().Str("engine", string(settings.Engine)).Str("browser", string(settings.Browser)).Bool("headless", settings.Headless).Msg("launching browser")

	switch settings.Engine {
	case config.EnginePlaywright:
		return launchPlaywright(settings)
	case config.EngineRod:
		return launchRod(ctx, settings)
	}

	return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedEngine, settings.Engine)
}

// nonEmpty drops empty values in place.
func nonEmpty(values []string) []string {
	return slices.DeleteFunc(values, func(v string) bool {
		return v == ""
	})
}
