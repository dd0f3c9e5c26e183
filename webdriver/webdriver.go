// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver

import (
	"flag"
	"fmt"
	"strings"

	"github.com/tebeka/selenium"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

var (
	configPath       = flag.String("config", "", "Path to a YAML suite config; flags override its values")
	browser          = flag.String("browser", "chrome", "Which browser to run the tests with")
	startFrameBuffer = flag.Bool("frame_buffer", shared.DefaultConfig().FrameBuffer, "Whether to use a frame buffer")
	headless         = flag.Bool("headless", false, "Run the browser headless")
	seleniumPath     = flag.String("selenium_path", "", "Path to the selenium standalone binary.")
	seleniumHost     = flag.String("selenium_host", "localhost", "Host to run selenium on")
	seleniumPort     = flag.Int("selenium_port", 8888, "Port to run selenium on; 0 picks an unused port")
	seleniumURL      = flag.String("selenium_url", "", "URL of an already running WebDriver endpoint")
	seleniumDebug    = flag.Bool("selenium_debug", false, "Log the WebDriver wire traffic")
	baseURL          = flag.String("base_url", shared.DemoSiteURL, "Base URL of the site under test")
	localFixture     = flag.Bool("local_fixture", false, "Serve the demo pages locally instead of using --base_url")
	reportDir        = flag.String("report_dir", "", "Directory receiving report attachments")
)

// ConfigFromFlags returns the --config file (or the defaults) overlaid with
// every flag set on the command line.
func ConfigFromFlags() (shared.Config, error) {
	cfg := shared.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = shared.LoadConfig(*configPath); err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "browser":
			cfg.Browser = *browser
		case "frame_buffer":
			cfg.FrameBuffer = *startFrameBuffer
		case "headless":
			cfg.Headless = *headless
		case "selenium_path":
			cfg.SeleniumPath = *seleniumPath
		case "selenium_host":
			cfg.SeleniumHost = *seleniumHost
		case "selenium_port":
			cfg.SeleniumPort = *seleniumPort
		case "selenium_url":
			cfg.SeleniumURL = *seleniumURL
		case "selenium_debug":
			cfg.Debug = *seleniumDebug
		case "chrome_path":
			cfg.ChromePath = *chromePath
		case "chromedriver_path":
			cfg.ChromeDriverPath = *chromeDriverPath
		case "firefox_path":
			cfg.FirefoxPath = *firefoxPath
		case "geckodriver_path":
			cfg.GeckoDriverPath = *geckoDriverPath
		case "base_url":
			cfg.BaseURL = *baseURL
		case "local_fixture":
			cfg.LocalFixture = *localFixture
		case "report_dir":
			cfg.ReportDir = *reportDir
		}
	})
	return cfg, cfg.Validate()
}

// Capabilities returns the selenium capabilities for cfg.Browser.
func Capabilities(cfg shared.Config) (selenium.Capabilities, error) {
	switch cfg.Browser {
	case "chrome":
		return ChromeCapabilities(cfg)
	case "firefox":
		return FirefoxCapabilities(cfg)
	}
	return nil, fmt.Errorf("invalid browser %q", cfg.Browser)
}

// remoteURL returns the WebDriver endpoint for cfg. A bare driver service
// (no selenium jar) serves at the root rather than under /wd/hub.
func remoteURL(cfg shared.Config, port int) string {
	if cfg.SeleniumURL != "" {
		return cfg.SeleniumURL
	}
	path := "/wd/hub"
	if cfg.SeleniumPath == "" {
		path = ""
	}
	return fmt.Sprintf("http://%s:%d%s", cfg.SeleniumHost, port, path)
}

// windowSizeArg returns the --window-size argument for a "W,H" size.
func windowSizeArg(size string) string {
	if size == "" {
		return ""
	}
	return "--window-size=" + strings.ReplaceAll(size, "x", ",")
}
