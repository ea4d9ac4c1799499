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

package pages

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/unikorn-cloud/webtest/pkg/browser"
)

// Locators on the httpbin HTML page.
const (
	HTMLHeading   = "h1"
	HTMLParagraph = "p"
	HTMLLink      = "a"
)

// HTMLPath is the path of the sample document below the UI base URL.
const HTMLPath = "/html"

// HTMLPage is the httpbin sample HTML document.
type HTMLPage struct {
	*Base
}

// NewHTMLPage wraps page, baseURL is the httpbin root.
func NewHTMLPage(page browser.Page, baseURL string) *HTMLPage {
	return &HTMLPage{
		Base: NewBase(page, strings.TrimRight(baseURL, "/")),
	}
}

// Open navigates to the document.
func (p *HTMLPage) Open() error {
	return p.Navigate(HTMLPath)
}

func (p *HTMLPage) Heading() (string, error) {
	return p.Text(HTMLHeading)
}

// Paragraph returns the text of the first paragraph.
func (p *HTMLPage) Paragraph() (string, error) {
	return p.Text(HTMLParagraph)
}

// Paragraphs returns the trimmed text of every non-empty paragraph, read in
// one pass over the rendered DOM.
func (p *HTMLPage) Paragraphs() ([]string, error) {
	log.Debug().Msg("getting all paragraphs")

	content, err := p.page.Content()
	if err != nil {
		return nil, fmt.Errorf("getting page content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing page content: %w", err)
	}

	var paragraphs []string

	doc.Find(HTMLParagraph).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return paragraphs, nil
}

// Links returns the href of every anchor.
func (p *HTMLPage) Links() ([]string, error) {
	log.Debug().Msg("getting all links")

	links, err := p.page.AttributeAll(HTMLLink, "href")
	if err != nil {
		return nil, fmt.Errorf("getting links: %w", err)
	}

	return links, nil
}

// ClickLink clicks the first anchor containing text.
func (p *HTMLPage) ClickLink(text string) error {
	log.Debug().Str("text", text).Msg("clicking link")

	if err := p.page.ClickText(HTMLLink, text); err != nil {
		return fmt.Errorf("clicking link %q: %w", text, err)
	}

	return nil
}
