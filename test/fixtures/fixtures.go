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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package fixtures

import (
	"context"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/webtest/pkg/apiclient"
	"github.com/unikorn-cloud/webtest/pkg/artifacts"
	"github.com/unikorn-cloud/webtest/pkg/browser"
	"github.com/unikorn-cloud/webtest/pkg/config"
	"github.com/unikorn-cloud/webtest/pkg/logging"
	"github.com/unikorn-cloud/webtest/pkg/pages"
)

// Launcher starts a browser session.
type Launcher func(ctx context.Context, s *config.Settings) (browser.Session, error)

//nolint:gochecknoglobals
var (
	settingsOnce sync.Once
	settings     *config.Settings
	settingsErr  error

	launch Launcher = browser.Launch
)

// Settings loads the settings once per process.  A configuration error fails
// the calling spec.
func Settings() *config.Settings {
	settingsOnce.Do(func() {
		settings, settingsErr = config.Load()
	})

	Expect(settingsErr).NotTo(HaveOccurred(), "Settings should load from the environment")

	return settings
}

// Logger routes the global logger into the Ginkgo writer so log lines are
// attached to the test that produced them.
func Logger(s *config.Settings) {
	Expect(logging.Setup(s.LogLevel, GinkgoWriter)).To(Succeed(), "Logger should accept the configured level")
}

// BrowserSession launches an isolated browser session that is torn down
// after the test whatever its outcome.
func BrowserSession(ctx context.Context, s *config.Settings) browser.Session {
	session, err := launch(ctx, s)
	Expect(err).NotTo(HaveOccurred(), "Browser should launch")

	DeferCleanup(func() {
		GinkgoWriter.Printf("Closing %s browser session\n", s.Browser)

		if err := session.Close(); err != nil {
			GinkgoWriter.Printf("Warning: failed to close browser session: %v\n", err)
		}
	})

	return session
}

// Page opens a page in session.  When the test fails a screenshot is saved
// below the results directory before the page is closed.
func Page(session browser.Session, s *config.Settings) browser.Page {
	page, err := session.NewPage()
	Expect(err).NotTo(HaveOccurred(), "Page should open")

	DeferCleanup(func() {
		closePage(page, s, CurrentSpecReport().Failed())
	})

	return page
}

// closePage screenshots a failed test's page, then closes it either way.
func closePage(page browser.Page, s *config.Settings, failed bool) {
	if failed {
		captureFailure(page, s)
	}

	if err := page.Close(); err != nil {
		GinkgoWriter.Printf("Warning: failed to close page: %v\n", err)
	}
}

func captureFailure(page browser.Page, s *config.Settings) {
	path, err := artifacts.NewDirs(s.ResultsDir).ScreenshotPath(specSlug())
	if err != nil {
		GinkgoWriter.Printf("Warning: cannot create screenshot directory: %v\n", err)
		return
	}

	if err := page.Screenshot(path, true); err != nil {
		GinkgoWriter.Printf("Warning: failed to capture failure screenshot: %v\n", err)
		return
	}

	AddReportEntry("failure screenshot", path)
}

// specSlug turns the leaf node text into a filename prefix.
func specSlug() string {
	fields := strings.FieldsFunc(strings.ToLower(CurrentSpecReport().LeafNodeText), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})

	return strings.Join(fields, "_")
}

// UIPage launches a session and opens a page in one step.
func UIPage(ctx context.Context, s *config.Settings) browser.Page {
	return Page(BrowserSession(ctx, s), s)
}

// HTMLPage returns the httpbin document page object.
func HTMLPage(ctx context.Context, s *config.Settings) *pages.HTMLPage {
	return pages.NewHTMLPage(UIPage(ctx, s), s.BaseUIURL)
}

// ExamplePage returns the example.com page object.
func ExamplePage(ctx context.Context, s *config.Settings) *pages.ExamplePage {
	return pages.NewExamplePage(UIPage(ctx, s), pages.ExampleURL)
}

// APIClient returns a client for the API under test, closed after the test.
func APIClient(s *config.Settings) *apiclient.Client {
	client := apiclient.NewFromSettings(s)

	DeferCleanup(client.Close)

	return client
}
