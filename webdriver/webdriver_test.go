//go:build small

// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

func TestChromeCapabilities(t *testing.T) {
	cfg := shared.DefaultConfig()
	cfg.Headless = true
	cfg.BrowserArgs = []string{"--lang=en"}

	caps, err := ChromeCapabilities(cfg)
	require.NoError(t, err)
	assert.Equal(t, "chrome", caps["browserName"])
	chromeCaps, ok := caps[chrome.CapabilitiesKey].(chrome.Capabilities)
	require.True(t, ok)
	assert.Equal(t, []string{
		"--window-size=1920,1080",
		"--disable-infobars",
		"--disable-extensions",
		"--disable-gpu",
		"--no-sandbox",
		"--disable-dev-shm-usage",
		"--headless=new",
		"--lang=en",
	}, chromeCaps.Args)
}

func TestFirefoxCapabilities(t *testing.T) {
	cfg := shared.DefaultConfig()
	cfg.Browser = "firefox"
	cfg.FirefoxPath = "/opt/firefox/firefox"

	caps, err := Capabilities(cfg)
	require.NoError(t, err)
	assert.Equal(t, "firefox", caps["browserName"])
	ffCaps, ok := caps[firefox.CapabilitiesKey].(firefox.Capabilities)
	require.True(t, ok)
	assert.Equal(t, "/opt/firefox/firefox", ffCaps.Binary)
	assert.Equal(t, []string{"-width", "1920", "-height", "1080"}, ffCaps.Args)
}

func TestCapabilities_unknownBrowser(t *testing.T) {
	cfg := shared.DefaultConfig()
	cfg.Browser = "lynx"
	_, err := Capabilities(cfg)
	assert.Error(t, err)
}

func TestRemoteURL(t *testing.T) {
	cfg := shared.DefaultConfig()
	assert.Equal(t, "http://localhost:4444", remoteURL(cfg, 4444))

	cfg.SeleniumPath = "/opt/selenium.jar"
	assert.Equal(t, "http://localhost:4444/wd/hub", remoteURL(cfg, 4444))

	cfg.SeleniumURL = "http://grid:4444/wd/hub"
	assert.Equal(t, "http://grid:4444/wd/hub", remoteURL(cfg, 1))
}

func TestStartService_requiresEndpoint(t *testing.T) {
	cfg := shared.DefaultConfig()
	_, err := startService(cfg, 4444)
	assert.Error(t, err)

	cfg.SeleniumURL = "http://grid:4444/wd/hub"
	service, err := startService(cfg, 4444)
	assert.NoError(t, err)
	assert.Nil(t, service)
}

func TestNewWebserver_remote(t *testing.T) {
	cfg := shared.DefaultConfig()
	cfg.BaseURL = "https://demoqa.com/"
	app, err := NewWebserver(cfg)
	require.NoError(t, err)
	defer app.Close()
	assert.Equal(t, "https://demoqa.com/buttons", app.GetWebappURL("/buttons"))
}

func TestNewWebserver_localFixture(t *testing.T) {
	cfg := shared.DefaultConfig()
	cfg.LocalFixture = true
	app, err := NewWebserver(cfg)
	require.NoError(t, err)
	assert.Contains(t, app.GetWebappURL("/buttons"), "http://localhost:")
	assert.NoError(t, app.Close())
}

func TestConfigFromFlags_defaults(t *testing.T) {
	cfg, err := ConfigFromFlags()
	require.NoError(t, err)
	assert.Equal(t, "chrome", cfg.Browser)
	assert.Equal(t, shared.DemoSiteURL, cfg.BaseURL)
}

func TestConfigFromFlags_configFileKeepsFrameBufferDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("browser: firefox\n"), 0644))
	*configPath = path
	defer func() { *configPath = "" }()

	cfg, err := ConfigFromFlags()
	require.NoError(t, err)
	assert.Equal(t, "firefox", cfg.Browser)
	assert.Equal(t, runtime.GOOS != "darwin", cfg.FrameBuffer)
}

func TestSessionWaitOptions(t *testing.T) {
	cfg := shared.DefaultConfig()
	s := &Session{Config: cfg}
	opts := s.WaitOptions()
	assert.Equal(t, cfg.Timeouts.Wait, opts.Timeout)
	assert.Equal(t, cfg.Timeouts.PollInterval, opts.Interval)
	assert.NotEmpty(t, opts.Tolerate)
	assert.Equal(t, cfg.Timeouts.ReadinessInterval, s.ReadinessOptions().Interval)
}

func TestSessionClose_idempotent(t *testing.T) {
	s := &Session{}
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
