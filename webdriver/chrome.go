// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver

import (
	"flag"
	"path/filepath"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

var (
	chromeDriverPath = flag.String("chromedriver_path", "", "Path to the chromedriver binary")
	chromePath       = flag.String("chrome_path", "", "Path to the chrome binary")
)

// DefaultChromeArgs are passed to every Chrome session.
var DefaultChromeArgs = []string{
	"--disable-infobars",
	"--disable-extensions",
	"--disable-gpu",
	"--no-sandbox",
	"--disable-dev-shm-usage",
}

// ChromeCapabilities returns the selenium capabilities of a Chrome session
// configured by cfg.
func ChromeCapabilities(cfg shared.Config) (selenium.Capabilities, error) {
	seleniumCapabilities := selenium.Capabilities{
		"browserName": "chrome",
	}

	chromeCapabilities := chrome.Capabilities{}
	if cfg.ChromePath != "" {
		chromeAbsPath, err := filepath.Abs(cfg.ChromePath)
		if err != nil {
			return nil, err
		}
		chromeCapabilities.Path = chromeAbsPath
	}
	if arg := windowSizeArg(cfg.WindowSize); arg != "" {
		chromeCapabilities.Args = append(chromeCapabilities.Args, arg)
	}
	chromeCapabilities.Args = append(chromeCapabilities.Args, DefaultChromeArgs...)
	if cfg.Headless {
		chromeCapabilities.Args = append(chromeCapabilities.Args, "--headless=new")
	}
	chromeCapabilities.Args = append(chromeCapabilities.Args, cfg.BrowserArgs...)
	seleniumCapabilities.AddChrome(chromeCapabilities)
	return seleniumCapabilities, nil
}

// chromeServiceOptions returns the service options that make a selenium
// standalone server drive Chrome.
func chromeServiceOptions(cfg shared.Config) []selenium.ServiceOption {
	if cfg.ChromeDriverPath == "" {
		return nil
	}
	// Specify the path to ChromeDriver in order to use Chrome.
	return []selenium.ServiceOption{selenium.ChromeDriver(cfg.ChromeDriverPath)}
}
