// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver

import (
	"flag"
	"path/filepath"
	"strings"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/firefox"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

var (
	geckoDriverPath = flag.String("geckodriver_path", "", "Path to the geckodriver binary")
	firefoxPath     = flag.String("firefox_path", "", "Path to the firefox binary")
)

// FirefoxCapabilities returns the selenium capabilities of a Firefox
// session configured by cfg.
func FirefoxCapabilities(cfg shared.Config) (selenium.Capabilities, error) {
	seleniumCapabilities := selenium.Capabilities{
		"browserName": "firefox",
	}

	firefoxCapabilities := firefox.Capabilities{}
	if cfg.FirefoxPath != "" {
		firefoxAbsPath, err := filepath.Abs(cfg.FirefoxPath)
		if err != nil {
			return nil, err
		}
		firefoxCapabilities.Binary = firefoxAbsPath
	}
	if w, h, ok := strings.Cut(strings.ReplaceAll(cfg.WindowSize, "x", ","), ","); ok {
		firefoxCapabilities.Args = append(firefoxCapabilities.Args, "-width", w, "-height", h)
	}
	if cfg.Headless {
		firefoxCapabilities.Args = append(firefoxCapabilities.Args, "-headless")
	}
	firefoxCapabilities.Args = append(firefoxCapabilities.Args, cfg.BrowserArgs...)
	seleniumCapabilities.AddFirefox(firefoxCapabilities)
	return seleniumCapabilities, nil
}

// firefoxServiceOptions returns the service options that make a selenium
// standalone server drive Firefox.
func firefoxServiceOptions(cfg shared.Config) []selenium.ServiceOption {
	if cfg.GeckoDriverPath == "" {
		return nil
	}
	// Specify the path to GeckoDriver in order to use Firefox.
	return []selenium.ServiceOption{selenium.GeckoDriver(cfg.GeckoDriverPath)}
}
