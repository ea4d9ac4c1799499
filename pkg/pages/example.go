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

	"github.com/unikorn-cloud/webtest/pkg/browser"
)

// ExampleURL is the IANA example domain.
const ExampleURL = "https://example.com"

const (
	exampleHeading   = "h1"
	exampleParagraph = "p"
	exampleLink      = "a"
)

// ExamplePage is the example.com landing page.
type ExamplePage struct {
	*Base
}

func NewExamplePage(page browser.Page, baseURL string) *ExamplePage {
	return &ExamplePage{
		Base: NewBase(page, baseURL),
	}
}

func (p *ExamplePage) Open() error {
	return p.Navigate("")
}

func (p *ExamplePage) Heading() (string, error) {
	return p.Text(exampleHeading)
}

// Paragraph returns the first paragraph.
func (p *ExamplePage) Paragraph() (string, error) {
	return p.Text(exampleParagraph)
}

func (p *ExamplePage) ParagraphCount() (int, error) {
	count, err := p.page.Count(exampleParagraph)
	if err != nil {
		return 0, fmt.Errorf("counting paragraphs: %w", err)
	}

	return count, nil
}

// MoreInformationLink returns the href of the only link on the page.
func (p *ExamplePage) MoreInformationLink() (string, error) {
	return p.Attribute(exampleLink, "href")
}
