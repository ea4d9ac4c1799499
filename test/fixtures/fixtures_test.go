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
package fixtures_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/unikorn-cloud/webtest/pkg/browser"
	"github.com/unikorn-cloud/webtest/pkg/browser/mock"
	"github.com/unikorn-cloud/webtest/pkg/config"
	"github.com/unikorn-cloud/webtest/test/fixtures"
)

var errEngine = errors.New("target closed")

func launcherFor(session browser.Session) fixtures.Launcher {
	return func(context.Context, *config.Settings) (browser.Session, error) {
		return session, nil
	}
}

var _ = Describe("Browser Teardown", Ordered, func() {
	var (
		pageClosed    bool
		sessionClosed bool
	)

	It("should defer closing the page and then the session", func() {
		ctrl := gomock.NewController(GinkgoT())

		page := mock.NewMockPage(ctrl)
		session := mock.NewMockSession(ctrl)

		session.EXPECT().NewPage().Return(page, nil)

		gomock.InOrder(
			page.EXPECT().Close().DoAndReturn(func() error {
				pageClosed = true
				return nil
			}),
			session.EXPECT().Close().DoAndReturn(func() error {
				sessionClosed = true
				return nil
			}),
		)

		DeferCleanup(fixtures.SetLauncher(launcherFor(session)))

		settings := &config.Settings{Browser: config.Chromium, ResultsDir: GinkgoT().TempDir()}

		Expect(fixtures.UIPage(context.Background(), settings)).To(BeIdenticalTo(page))
		Expect(pageClosed).To(BeFalse(), "Page should stay open until the test ends")
		Expect(sessionClosed).To(BeFalse(), "Session should stay open until the test ends")
	})

	It("should have closed both once the previous test ended", func() {
		Expect(pageClosed).To(BeTrue())
		Expect(sessionClosed).To(BeTrue())
	})
})

var _ = Describe("Session Close Errors", Ordered, func() {
	var closed bool

	It("should tolerate a session that fails to close", func() {
		ctrl := gomock.NewController(GinkgoT())

		session := mock.NewMockSession(ctrl)
		session.EXPECT().Close().DoAndReturn(func() error {
			closed = true
			return errEngine
		})

		DeferCleanup(fixtures.SetLauncher(launcherFor(session)))

		Expect(fixtures.BrowserSession(context.Background(), &config.Settings{Browser: config.Chromium})).To(BeIdenticalTo(session))
	})

	It("should still have attempted the close", func() {
		Expect(closed).To(BeTrue())
	})
})

var _ = Describe("Page Teardown", func() {
	var (
		page     *mock.MockPage
		settings *config.Settings
	)

	BeforeEach(func() {
		page = mock.NewMockPage(gomock.NewController(GinkgoT()))
		settings = &config.Settings{ResultsDir: GinkgoT().TempDir()}
	})

	It("should only close the page of a passing test", func() {
		page.EXPECT().Close().Return(nil)

		fixtures.ClosePage(page, settings, false)
	})

	It("should screenshot a failed test before closing", func() {
		var path string

		gomock.InOrder(
			page.EXPECT().Screenshot(gomock.Any(), true).DoAndReturn(func(p string, _ bool) error {
				path = p
				return nil
			}),
			page.EXPECT().Close().Return(nil),
		)

		fixtures.ClosePage(page, settings, true)

		Expect(filepath.Dir(path)).To(Equal(filepath.Join(settings.ResultsDir, "screenshots")))
		Expect(filepath.Base(path)).To(HavePrefix("should_screenshot_a_failed_test_before_closing_"))
		Expect(filepath.Ext(path)).To(Equal(".png"))
		Expect(CurrentSpecReport().ReportEntries).To(ContainElement(HaveField("Name", "failure screenshot")))
	})

	It("should close the page when the screenshot fails", func() {
		gomock.InOrder(
			page.EXPECT().Screenshot(gomock.Any(), true).Return(errEngine),
			page.EXPECT().Close().Return(nil),
		)

		fixtures.ClosePage(page, settings, true)
	})

	It("should close the page when the results directory is unusable", func() {
		root := filepath.Join(GinkgoT().TempDir(), "results")
		Expect(os.WriteFile(root, nil, 0o600)).To(Succeed())

		settings.ResultsDir = root

		page.EXPECT().Close().Return(nil)

		fixtures.ClosePage(page, settings, true)
	})

	It("should tolerate a page that fails to close", func() {
		page.EXPECT().Close().Return(errEngine)

		fixtures.ClosePage(page, settings, false)
	})
})

var _ = Describe("Screenshot Names", func() {
	It("should slug Mixed-Case text, punctuation & all", func() {
		Expect(fixtures.SpecSlug()).To(Equal("should_slug_mixed_case_text_punctuation_all"))
	})

	It("should keep digits like 404", func() {
		slug := fixtures.SpecSlug()

		Expect(slug).To(Equal("should_keep_digits_like_404"))
		Expect(strings.ContainsAny(slug, " -&,")).To(BeFalse())
	})
})
