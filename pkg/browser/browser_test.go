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

package browser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/webtest/pkg/browser"
	"github.com/unikorn-cloud/webtest/pkg/browser/mock"
	"github.com/unikorn-cloud/webtest/pkg/config"
)

var (
	_ browser.Page    = (*mock.MockPage)(nil)
	_ browser.Session = (*mock.MockSession)(nil)
)

// TestLaunchRejectsUnknownEngine ensures nothing is started for an engine
// that was never validated.
func TestLaunchRejectsUnknownEngine(t *testing.T) {
	t.Parallel()

	settings := &config.Settings{
		Engine:  config.Engine("selenium"),
		Browser: config.Chromium,
	}

	session, err := browser.Launch(t.Context(), settings)
	require.ErrorIs(t, err, config.ErrUnsupportedEngine)
	require.Nil(t, session)
}
