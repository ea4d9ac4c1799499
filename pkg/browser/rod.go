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
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/cdp"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog/log"

	"github.com/unikorn-cloud/webtest/pkg/config"
)

// requestIdle is how long the network must stay quiet to count as idle.
const requestIdle = 500 * time.Millisecond

// rodWait is a single rod wait step.
type rodWait int

const (
	rodWaitLoad rodWait = iota
	rodWaitRequestIdle
)

// rodLoadWaits returns the steps that reach state, run in order.  Rod has no
// post-hoc DOMContentLoaded wait, the load event implies it.
func rodLoadWaits(state LoadState) ([]rodWait, error) {
	switch state {
	case LoadStateLoad, LoadStateDOMContentLoaded:
		return []rodWait{rodWaitLoad}, nil
	case LoadStateNetworkIdle:
		return []rodWait{rodWaitLoad, rodWaitRequestIdle}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLoadState, state)
}

type rodSession struct {
	// launcher is nil when connected to a remote browser.
	launcher *launcher.Launcher
	// ws is the CDP connection, owned by the session in both modes.
	ws      *cdp.WebSocket
	cancel  context.CancelFunc
	browser *rod.Browser
	// incognito is the isolated context pages are opened in.
	incognito *rod.Browser

	width   int
	height  int
	timeout time.Duration
}

func launchRod(ctx context.Context, settings *config.Settings) (Session, error) {
	ctx, cancel := context.WithCancel(ctx)

	session := &rodSession{
		cancel:  cancel,
		width:   settings.ViewportWidth,
		height:  settings.ViewportHeight,
		timeout: settings.Timeout,
	}

	controlURL := settings.BrowserURL

	if controlURL == "" {
		session.launcher = launcher.New().Context(ctx).Headless(settings.Headless)

		u, err := session.launcher.Launch()
		if err != nil {
			session.release()

			return nil, fmt.Errorf("launching chromium: %w", err)
		}

		controlURL = u
	}

	log.Debug().Str("controlURL", controlURL).Msg("connecting to browser")

	ws := &cdp.WebSocket{}

	if err := ws.Connect(ctx, controlURL, nil); err != nil {
		session.release()

		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	session.ws = ws

	browser := rod.New().Client(cdp.New().Start(ws)).Context(ctx).SlowMotion(settings.SlowMo)

	if err := browser.Connect(); err != nil {
		session.release()

		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	session.browser = browser

	incognito, err := browser.Incognito()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("creating browser context: %w", err), session.closeBrowser())
	}

	session.incognito = incognito

	return session, nil
}

func (s *rodSession) NewPage() (Page, error) {
	page, err := s.incognito.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.width,
		Height:            s.height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, errors.Join(fmt.Errorf("setting viewport: %w", err), page.Close())
	}

	return &rodPage{
		page:    page,
		timeout: s.timeout,
	}, nil
}

func (s *rodSession) Close() error {
	return errors.Join(s.incognito.Close(), s.closeBrowser())
}

// closeBrowser closes browsers this session launched, then drops the
// connection.  A remote browser is left running.
func (s *rodSession) closeBrowser() error {
	var err error

	if s.launcher != nil {
		err = s.browser.Close()
	}

	s.release()

	return err
}

// release drops the connection, stops rod's goroutines and kills a
// launched browser.
func (s *rodSession) release() {
	if s.ws != nil {
		// The socket is already gone when the browser closed it.
		_ = s.ws.Close()
	}

	s.cancel()

	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher.Cleanup()
	}
}

type rodPage struct {
	page    *rod.Page
	timeout time.Duration
}

// bounded returns the page limited by timeout, or the default when zero.
// The caller must call CancelTimeout on the result.
func (p *rodPage) bounded(timeout time.Duration) *rod.Page {
	if timeout <= 0 {
		timeout = p.timeout
	}

	return p.page.Timeout(timeout)
}

func (p *rodPage) element(selector string, fn func(*rod.Element) error) error {
	page := p.bounded(0)
	defer page.CancelTimeout()

	el, err := page.Element(selector)
	if err != nil {
		return fmt.Errorf("finding %s: %w", selector, err)
	}

	return fn(el)
}

func (p *rodPage) Goto(url string) error {
	page := p.bounded(0)
	defer page.CancelTimeout()

	if err := page.Navigate(url); err != nil {
		return err
	}

	return page.WaitLoad()
}

func (p *rodPage) WaitForLoadState(state LoadState) error {
	waits, err := rodLoadWaits(state)
	if err != nil {
		return err
	}

	page := p.bounded(0)
	defer page.CancelTimeout()

	for _, wait := range waits {
		switch wait {
		case rodWaitLoad:
			if err := page.WaitLoad(); err != nil {
				return err
			}
		case rodWaitRequestIdle:
			// The returned wait gives up silently when the page times out.
			page.WaitRequestIdle(requestIdle, nil, nil, nil)()

			if err := page.GetContext().Err(); err != nil {
				return fmt.Errorf("waiting for network idle: %w", err)
			}
		}
	}

	return nil
}

func (p *rodPage) WaitForSelector(selector string, timeout time.Duration) error {
	page := p.bounded(timeout)
	defer page.CancelTimeout()

	el, err := page.Element(selector)
	if err != nil {
		return fmt.Errorf("finding %s: %w", selector, err)
	}

	return el.WaitVisible()
}

func (p *rodPage) Click(selector string) error {
	return p.element(selector, func(el *rod.Element) error {
		return el.Click(proto.InputMouseButtonLeft, 1)
	})
}

func (p *rodPage) ClickText(selector, text string) error {
	page := p.bounded(0)
	defer page.CancelTimeout()

	el, err := page.ElementR(selector, regexp.QuoteMeta(text))
	if err != nil {
		return fmt.Errorf("finding %s containing %q: %w", selector, text, err)
	}

	return el.Click(proto.InputMouseButtonLeft, 1)
}

func (p *rodPage) Fill(selector, value string) error {
	return p.element(selector, func(el *rod.Element) error {
		if err := el.SelectAllText(); err != nil {
			return err
		}

		return el.Input(value)
	})
}

func (p *rodPage) Type(selector, text string, delay time.Duration) error {
	return p.element(selector, func(el *rod.Element) error {
		for _, r := range text {
			if err := el.Input(string(r)); err != nil {
				return err
			}

			time.Sleep(delay)
		}

		return nil
	})
}

func (p *rodPage) TextContent(selector string) (string, error) {
	var text string

	err := p.element(selector, func(el *rod.Element) error {
		t, err := el.Text()
		text = t

		return err
	})

	return text, err
}

func (p *rodPage) Attribute(selector, name string) (string, error) {
	var value string

	err := p.element(selector, func(el *rod.Element) error {
		v, err := el.Attribute(name)
		if v != nil {
			value = *v
		}

		return err
	})

	return value, err
}

func (p *rodPage) AttributeAll(selector, name string) ([]string, error) {
	elements, err := p.page.Elements(selector)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(elements))

	for _, el := range elements {
		v, err := el.Attribute(name)
		if err != nil {
			return nil, err
		}

		if v != nil {
			values = append(values, *v)
		}
	}

	return nonEmpty(values), nil
}

func (p *rodPage) Count(selector string) (int, error) {
	elements, err := p.page.Elements(selector)
	if err != nil {
		return 0, err
	}

	return len(elements), nil
}

// IsVisible does not wait, a missing element is not visible.
func (p *rodPage) IsVisible(selector string) (bool, error) {
	has, el, err := p.page.Has(selector)
	if err != nil || !has {
		return false, err
	}

	return el.Visible()
}

func (p *rodPage) IsEnabled(selector string) (bool, error) {
	var enabled bool

	err := p.element(selector, func(el *rod.Element) error {
		disabled, err := el.Property("disabled")
		if err != nil {
			return err
		}

		enabled = !disabled.Bool()

		return nil
	})

	return enabled, err
}

func (p *rodPage) SelectOption(selector, value string) error {
	return p.element(selector, func(el *rod.Element) error {
		return el.Select([]string{fmt.Sprintf("[value=%q]", value)}, true, rod.SelectorTypeCSSSector)
	})
}

func (p *rodPage) Screenshot(path string, fullPage bool) error {
	data, err := p.page.Screenshot(fullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}

func (p *rodPage) URL() string {
	info, err := p.page.Info()
	if err != nil {
		return ""
	}

	return info.URL
}

func (p *rodPage) Title() (string, error) {
	info, err := p.page.Info()
	if err != nil {
		return "", err
	}

	return info.Title, nil
}

func (p *rodPage) Content() (string, error) {
	return p.page.HTML()
}

func (p *rodPage) Reload() error {
	page := p.bounded(0)
	defer page.CancelTimeout()

	if err := page.Reload(); err != nil {
		return err
	}

	return page.WaitLoad()
}

func (p *rodPage) GoBack() error {
	page := p.bounded(0)
	defer page.CancelTimeout()

	if err := page.NavigateBack(); err != nil {
		return err
	}

	return page.WaitLoad()
}

func (p *rodPage) GoForward() error {
	page := p.bounded(0)
	defer page.CancelTimeout()

	if err := page.NavigateForward(); err != nil {
		return err
	}

	return page.WaitLoad()
}

func (p *rodPage) Close() error {
	return p.page.Close()
}
