//go:build integration

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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package suites

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/webtest/pkg/artifacts"
	"github.com/unikorn-cloud/webtest/pkg/browser"
	"github.com/unikorn-cloud/webtest/pkg/pages"
	"github.com/unikorn-cloud/webtest/test/fixtures"
)

var _ = Describe("HTML Page", Label(fixtures.LabelUI), func() {
	var page *pages.HTMLPage

	BeforeEach(func() {
		page = fixtures.HTMLPage(ctx, settings)
	})

	Context("When opening the sample document", func() {
		It("should land on the httpbin host", Label(fixtures.LabelSmoke), func() {
			Expect(page.Open()).To(Succeed(), "Navigation should succeed")
			Expect(page.URL()).To(ContainSubstring("httpbin.org"))
		})

		It("should show the novel heading", Label(fixtures.LabelSmoke), func() {
			Expect(page.Open()).To(Succeed())
			Expect(page.WaitForSelector(pages.HTMLHeading, 0)).To(Succeed(), "Heading should become visible")

			heading, err := page.Heading()
			Expect(err).NotTo(HaveOccurred())
			Expect(heading).To(And(ContainSubstring("Moby"), ContainSubstring("Dick")))
			GinkgoWriter.Printf("Found heading: %s\n", heading)
		})

		It("should have paragraph content", Label(fixtures.LabelSmoke), func() {
			Expect(page.Open()).To(Succeed())
			Expect(page.WaitForSelector(pages.HTMLParagraph, 0)).To(Succeed())

			paragraph, err := page.Paragraph()
			Expect(err).NotTo(HaveOccurred())
			Expect(paragraph).NotTo(BeEmpty(), "First paragraph should have text")

			paragraphs, err := page.Paragraphs()
			Expect(err).NotTo(HaveOccurred())
			Expect(paragraphs).NotTo(BeEmpty(), "Rendered document should contain paragraphs")
		})

		It("should report every link", func() {
			Expect(page.Open()).To(Succeed())

			links, err := page.Links()
			Expect(err).NotTo(HaveOccurred())

			for _, link := range links {
				Expect(link).NotTo(BeEmpty())
			}

			GinkgoWriter.Printf("Found %d link(s)\n", len(links))
		})
	})

	Context("When capturing artifacts", func() {
		It("should save a screenshot", func() {
			Expect(page.Open()).To(Succeed())
			Expect(page.WaitForLoadState(browser.LoadStateNetworkIdle)).To(Succeed())

			path, err := artifacts.NewDirs(settings.ResultsDir).ScreenshotPath("example_page")
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Screenshot(path)).To(Succeed())

			info, err := os.Stat(path)
			Expect(err).NotTo(HaveOccurred(), "Screenshot file should exist")
			Expect(info.Size()).To(BeNumerically(">", 0))
			GinkgoWriter.Printf("Screenshot saved: %s\n", path)
		})
	})

	Context("When measuring load time", func() {
		It("should reach network idle within ten seconds", Label(fixtures.LabelSlow), func() {
			start := time.Now()

			Expect(page.Open()).To(Succeed())
			Expect(page.WaitForLoadState(browser.LoadStateNetworkIdle)).To(Succeed())

			elapsed := time.Since(start)
			Expect(elapsed).To(BeNumerically("<", 10*time.Second), "Page took %s to load", elapsed)
			GinkgoWriter.Printf("Page loaded in %s\n", elapsed)
		})
	})

	Context("When moving through history", func() {
		It("should return to the document after reloading and navigating away", func() {
			Expect(page.Open()).To(Succeed())
			Expect(page.Reload()).To(Succeed())
			Expect(page.Navigate("/")).To(Succeed())
			Expect(page.GoBack()).To(Succeed())
			Expect(page.URL()).To(HaveSuffix(pages.HTMLPath))
			Expect(page.GoForward()).To(Succeed())
			Expect(page.URL()).NotTo(HaveSuffix(pages.HTMLPath))
		})
	})
})
