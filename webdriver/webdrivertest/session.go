// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdrivertest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Kornyshev/aqa-selenium-advanced/webdriver"
)

// RunSession runs fn against a fresh site and browser session configured
// from the command-line flags. Both are released when the test ends,
// whether it passed or not; a failing test leaves a screenshot in the
// report directory.
func RunSession(t *testing.T, fn func(t *testing.T, app webdriver.AppServer, s *webdriver.Session)) {
	t.Helper()

	cfg, err := webdriver.ConfigFromFlags()
	require.NoError(t, err)

	app, err := webdriver.NewWebserver(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := app.Close(); err != nil {
			t.Errorf("closing app server: %v", err)
		}
	})

	s, err := webdriver.NewSession(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if t.Failed() && cfg.ReportDir != "" {
			if err := saveScreenshot(s, cfg.ReportDir, t.Name()); err != nil {
				t.Logf("saving screenshot: %v", err)
			}
		}
		if err := s.Close(); err != nil {
			t.Errorf("closing session: %v", err)
		}
	})

	fn(t, app, s)
}

func saveScreenshot(s *webdriver.Session, dir, name string) error {
	png, err := s.Driver.Screenshot()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", filepath.Base(name), s.ID))
	if err := os.WriteFile(path, png, 0644); err != nil {
		return err
	}
	s.Log.Action("Screenshot", "saved %s", path)
	return nil
}
