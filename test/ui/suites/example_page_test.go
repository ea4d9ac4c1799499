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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/webtest/pkg/pages"
	"github.com/unikorn-cloud/webtest/test/fixtures"
)

var _ = Describe("Example Domain", Label(fixtures.LabelUI), func() {
	var page *pages.ExamplePage

	BeforeEach(func() {
		page = fixtures.ExamplePage(ctx, settings)
		Expect(page.Open()).To(Succeed(), "Navigation should succeed")
	})

	It("should have an example title", Label(fixtures.LabelSmoke), func() {
		title, err := page.Title()
		Expect(err).NotTo(HaveOccurred())
		Expect(title).To(ContainSubstring("Example"))
	})

	It("should show the domain heading", Label(fixtures.LabelSmoke), func() {
		heading, err := page.Heading()
		Expect(err).NotTo(HaveOccurred())
		Expect(heading).To(ContainSubstring("Example Domain"))
		Expect(page.IsVisible("h1")).To(BeTrue())
	})

	It("should contain at least one paragraph", func() {
		count, err := page.ParagraphCount()
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeNumerically(">", 0))
		GinkgoWriter.Printf("Found %d paragraph(s) on page\n", count)
	})

	It("should link to more information", func() {
		link, err := page.MoreInformationLink()
		Expect(err).NotTo(HaveOccurred())
		Expect(link).To(HavePrefix("http"))
	})
})
