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

// Package pages holds page objects.  A page object wraps a browser page it
// does not own, and each method is a single user visible action.  Waiting is
// left to the engine.
package pages

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unikorn-cloud/webtest/pkg/browser"
)

// Base carries the operations common to every page.
type Base struct {
	page    browser.Page
	baseURL string
}

// NewBase wraps page, relative navigation is resolved against baseURL.
func NewBase(page browser.Page, baseURL string) *Base {
	return &Base{
		page:    page,
		baseURL: baseURL,
	}
}

// Page returns the underlying browser page.
func (b *Base) Page() browser.Page {
	return b.page
}

// BaseURL returns the URL relative navigation is resolved against.
func (b *Base) BaseURL() string {
	return b.baseURL
}

// Navigate loads baseURL with path appended.
func (b *Base) Navigate(path string) error {
	url := b.baseURL + path

	log.Info().Str("url", url).Msg("navigating")

	if err := b.page.Goto(url); err != nil {
		return fmt.Errorf("navigating to %s: %w", url, err)
	}

	return nil
}

func (b *Base) WaitForLoadState(state browser.LoadState) error {
	log.Debug().Str("state", string(state)).Msg("waiting for load state")

	if err := b.page.WaitForLoadState(state); err != nil {
		return fmt.Errorf("waiting for %s: %w", state, err)
	}

	return nil
}

// WaitForSelector waits for the element to become visible, a zero timeout
// uses the session default.
func (b *Base) WaitForSelector(selector string, timeout time.Duration) error {
	log.Debug().Str("selector", selector).Dur("timeout", timeout).Msg("waiting for selector")

	if err := b.page.WaitForSelector(selector, timeout); err != nil {
		return fmt.Errorf("waiting for %s: %w", selector, err)
	}

	return nil
}

func (b *Base) Click(selector string) error {
	log.Debug().Str("selector", selector).Msg("clicking")

	if err := b.page.Click(selector); err != nil {
		return fmt.Errorf("clicking %s: %w", selector, err)
	}

	return nil
}

// Fill replaces the content of an input.
func (b *Base) Fill(selector, text string) error {
	log.Debug().Str("selector", selector).Str("text", text).Msg("filling")

	if err := b.page.Fill(selector, text); err != nil {
		return fmt.Errorf("filling %s: %w", selector, err)
	}

	return nil
}

// TypeText types one character at a time.
func (b *Base) TypeText(selector, text string, delay time.Duration) error {
	log.Debug().Str("selector", selector).Dur("delay", delay).Msg("typing")

	if err := b.page.Type(selector, text, delay); err != nil {
		return fmt.Errorf("typing into %s: %w", selector, err)
	}

	return nil
}

func (b *Base) Text(selector string) (string, error) {
	log.Debug().Str("selector", selector).Msg("getting text")

	text, err := b.page.TextContent(selector)
	if err != nil {
		return "", fmt.Errorf("getting text of %s: %w", selector, err)
	}

	return text, nil
}

func (b *Base) Attribute(selector, name string) (string, error) {
	log.Debug().Str("selector", selector).Str("attribute", name).Msg("getting attribute")

	value, err := b.page.Attribute(selector, name)
	if err != nil {
		return "", fmt.Errorf("getting %s of %s: %w", name, selector, err)
	}

	return value, nil
}

// IsVisible reports visibility, failures read as not visible.
func (b *Base) IsVisible(selector string) bool {
	visible, err := b.page.IsVisible(selector)
	if err != nil {
		log.Warn().Err(err).Str("selector", selector).Msg("checking visibility")

		return false
	}

	return visible
}

// IsEnabled reports whether the element is enabled, failures read as disabled.
func (b *Base) IsEnabled(selector string) bool {
	enabled, err := b.page.IsEnabled(selector)
	if err != nil {
		log.Warn().Err(err).Str("selector", selector).Msg("checking enabled")

		return false
	}

	return enabled
}

func (b *Base) SelectOption(selector, value string) error {
	log.Debug().Str("selector", selector).Str("value", value).Msg("selecting option")

	if err := b.page.SelectOption(selector, value); err != nil {
		return fmt.Errorf("selecting %q in %s: %w", value, selector, err)
	}

	return nil
}

// Screenshot writes a full page PNG to path.
func (b *Base) Screenshot(path string) error {
	log.Info().Str("path", path).Msg("taking screenshot")

	if err := b.page.Screenshot(path, true); err != nil {
		return fmt.Errorf("taking screenshot %s: %w", path, err)
	}

	return nil
}

func (b *Base) URL() string {
	return b.page.URL()
}

func (b *Base) Title() (string, error) {
	title, err := b.page.Title()
	if err != nil {
		return "", fmt.Errorf("getting title: %w", err)
	}

	return title, nil
}

func (b *Base) Reload() error {
	log.Info().Msg("reloading page")

	if err := b.page.Reload(); err != nil {
		return fmt.Errorf("reloading: %w", err)
	}

	return nil
}

func (b *Base) GoBack() error {
	log.Info().Msg("going back")

	if err := b.page.GoBack(); err != nil {
		return fmt.Errorf("going back: %w", err)
	}

	return nil
}

func (b *Base) GoForward() error {
	log.Info().Msg("going forward")

	if err := b.page.GoForward(); err != nil {
		return fmt.Errorf("going forward: %w", err)
	}

	return nil
}

func (b *Base) Close() error {
	log.Info().Msg("closing page")

	if err := b.page.Close(); err != nil {
		return fmt.Errorf("closing page: %w", err)
	}

	return nil
}
