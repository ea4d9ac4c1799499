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

package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/unikorn-cloud/webtest/pkg/artifacts"
	"github.com/unikorn-cloud/webtest/pkg/config"
)

// milliseconds converts to the float milliseconds playwright expects.
func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func playwrightLoadState(state LoadState) (*playwright.LoadState, error) {
	switch state {
	case LoadStateLoad:
		return playwright.LoadStateLoad, nil
	case LoadStateDOMContentLoaded:
		return playwright.LoadStateDomcontentloaded, nil
	case LoadStateNetworkIdle:
		return playwright.LoadStateNetworkidle, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLoadState, state)
}

type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
}

func launchPlaywright(settings *config.Settings) (Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("starting playwright driver: %w", err)
	}

	browserType := pw.Chromium

	switch settings.Browser {
	case config.Chromium:
	case config.Firefox:
		browserType = pw.Firefox
	case config.WebKit:
		browserType = pw.WebKit
	default:
		return nil, errors.Join(fmt.Errorf("%w: %q", config.ErrUnsupportedBrowser, settings.Browser), pw.Stop())
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(settings.Headless),
		SlowMo:   playwright.Float(milliseconds(settings.SlowMo)),
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("launching %s: %w", settings.Browser, err), pw.Stop())
	}

	options := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  settings.ViewportWidth,
			Height: settings.ViewportHeight,
		},
	}

	if settings.RecordVideo {
		dir, err := artifacts.NewDirs(settings.ResultsDir).Videos()
		if err != nil {
			return nil, errors.Join(err, browser.Close(), pw.Stop())
		}

		options.RecordVideo = &playwright.RecordVideo{
			Dir: dir,
		}
	}

	context, err := browser.NewContext(options)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("creating browser context: %w", err), browser.Close(), pw.Stop())
	}

	context.SetDefaultTimeout(milliseconds(settings.Timeout))
	context.SetDefaultNavigationTimeout(milliseconds(settings.NavigationTimeout))

	return &playwrightSession{
		pw:      pw,
		browser: browser,
		context: context,
	}, nil
}

func (s *playwrightSession) NewPage() (Page, error) {
	page, err := s.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	return &playwrightPage{page: page}, nil
}

func (s *playwrightSession) Close() error {
	return errors.Join(s.context.Close(), s.browser.Close(), s.pw.Stop())
}

type playwrightPage struct {
	page playwright.Page
}

func (p *playwrightPage) first(selector string) playwright.Locator {
	return p.page.Locator(selector).First()
}

func (p *playwrightPage) Goto(url string) error {
	if _, err := p.page.Goto(url); err != nil {
		return err
	}

	return nil
}

func (p *playwrightPage) WaitForLoadState(state LoadState) error {
	s, err := playwrightLoadState(state)
	if err != nil {
		return err
	}

	return p.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: s,
	})
}

func (p *playwrightPage) WaitForSelector(selector string, timeout time.Duration) error {
	options := playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	}

	if timeout > 0 {
		options.Timeout = playwright.Float(milliseconds(timeout))
	}

	return p.first(selector).WaitFor(options)
}

func (p *playwrightPage) Click(selector string) error {
	return p.first(selector).Click()
}

func (p *playwrightPage) ClickText(selector, text string) error {
	return p.page.Locator(selector, playwright.PageLocatorOptions{HasText: text}).First().Click()
}

func (p *playwrightPage) Fill(selector, value string) error {
	return p.first(selector).Fill(value)
}

func (p *playwrightPage) Type(selector, text string, delay time.Duration) error {
	return p.first(selector).PressSequentially(text, playwright.LocatorPressSequentiallyOptions{
		Delay: playwright.Float(milliseconds(delay)),
	})
}

func (p *playwrightPage) TextContent(selector string) (string, error) {
	return p.first(selector).TextContent()
}

func (p *playwrightPage) Attribute(selector, name string) (string, error) {
	return p.first(selector).GetAttribute(name)
}

func (p *playwrightPage) AttributeAll(selector, name string) ([]string, error) {
	locators, err := p.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(locators))

	for _, locator := range locators {
		value, err := locator.GetAttribute(name)
		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return nonEmpty(values), nil
}

func (p *playwrightPage) Count(selector string) (int, error) {
	return p.page.Locator(selector).Count()
}

func (p *playwrightPage) IsVisible(selector string) (bool, error) {
	return p.first(selector).IsVisible()
}

func (p *playwrightPage) IsEnabled(selector string) (bool, error) {
	return p.first(selector).IsEnabled()
}

func (p *playwrightPage) SelectOption(selector, value string) error {
	if _, err := p.first(selector).SelectOption(playwright.SelectOptionValues{Values: &[]string{value}}); err != nil {
		return err
	}

	return nil
}

func (p *playwrightPage) Screenshot(path string, fullPage bool) error {
	if _, err := p.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(fullPage),
	}); err != nil {
		return err
	}

	return nil
}

func (p *playwrightPage) URL() string {
	return p.page.URL()
}

func (p *playwrightPage) Title() (string, error) {
	return p.page.Title()
}

func (p *playwrightPage) Content() (string, error) {
	return p.page.Content()
}

func (p *playwrightPage) Reload() error {
	if _, err := p.page.Reload(); err != nil {
		return err
	}

	return nil
}

func (p *playwrightPage) GoBack() error {
	if _, err := p.page.GoBack(); err != nil {
		return err
	}

	return nil
}

func (p *playwrightPage) GoForward() error {
	if _, err := p.page.GoForward(); err != nil {
		return err
	}

	return nil
}

func (p *playwrightPage) Close() error {
	return p.page.Close()
}
