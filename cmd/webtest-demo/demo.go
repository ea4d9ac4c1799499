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

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/unikorn-cloud/webtest/pkg/apiclient"
	"github.com/unikorn-cloud/webtest/pkg/artifacts"
	"github.com/unikorn-cloud/webtest/pkg/browser"
	"github.com/unikorn-cloud/webtest/pkg/config"
	"github.com/unikorn-cloud/webtest/pkg/pages"
)

const previewLength = 50

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewLength {
		return s
	}

	return string(runes[:previewLength]) + "..."
}

// runUI walks example.com and saves a screenshot.
func runUI(ctx context.Context, settings *config.Settings) (err error) {
	log.Info().Msg("starting UI walk")

	session, err := browser.Launch(ctx, settings)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, session.Close())
	}()

	page, err := session.NewPage()
	if err != nil {
		return err
	}

	example := pages.NewExamplePage(page, pages.ExampleURL)

	if err := example.Open(); err != nil {
		return err
	}

	if err := example.WaitForLoadState(browser.LoadStateNetworkIdle); err != nil {
		return err
	}

	title, err := example.Title()
	if err != nil {
		return err
	}

	log.Info().Str("title", title).Msg("page title")

	heading, err := example.Heading()
	if err != nil {
		return err
	}

	log.Info().Str("heading", heading).Msg("page heading")

	paragraph, err := example.Paragraph()
	if err != nil {
		return err
	}

	log.Info().Str("preview", preview(paragraph)).Msg("page content")

	path, err := artifacts.NewDirs(settings.ResultsDir).ScreenshotPath("demo_ui")
	if err != nil {
		return err
	}

	if err := example.Screenshot(path); err != nil {
		return err
	}

	log.Info().Str("path", path).Msg("UI walk completed")

	return nil
}

// runAPI reads one post and creates another.
func runAPI(ctx context.Context, settings *config.Settings) error {
	log.Info().Str("baseURL", settings.APIBaseURL).Msg("starting API walk")

	client := apiclient.NewFromSettings(settings)
	defer client.Close()

	post, err := client.GetPost(ctx, 1)
	if err != nil {
		return err
	}

	log.Info().Int("id", post.ID).Str("title", preview(post.Title)).Msg("retrieved post")

	created, err := client.CreatePost(ctx, apiclient.Post{
		UserID: 1,
		Title:  "Demo Post",
		Body:   "This is a demo post created by webtest",
	})
	if err != nil {
		return fmt.Errorf("creating demo post: %w", err)
	}

	log.Info().Int("id", created.ID).Str("title", created.Title).Msg("API walk completed")

	return nil
}
