// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package shared

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	mapset "github.com/deckarep/golang-set"
	"gopkg.in/yaml.v3"
)

// DemoSiteURL is the public site the page objects were written against.
const DemoSiteURL = "https://demoqa.com"

// Config holds everything needed to bring up a browser session and run the
// page scenarios against it.
type Config struct {
	// Browser is one of SupportedBrowsers.
	Browser string `yaml:"browser"`

	// SeleniumPath is the selenium standalone binary. When empty, no
	// service is started and SeleniumURL (or the host/port pair) must point
	// at an already running WebDriver endpoint.
	SeleniumPath string `yaml:"selenium_path"`
	SeleniumHost string `yaml:"selenium_host"`
	// SeleniumPort of 0 picks an unused port.
	SeleniumPort int    `yaml:"selenium_port"`
	SeleniumURL  string `yaml:"selenium_url"`

	ChromePath       string `yaml:"chrome_path"`
	ChromeDriverPath string `yaml:"chromedriver_path"`
	FirefoxPath      string `yaml:"firefox_path"`
	GeckoDriverPath  string `yaml:"geckodriver_path"`

	FrameBuffer bool     `yaml:"frame_buffer"`
	Headless    bool     `yaml:"headless"`
	WindowSize  string   `yaml:"window_size"`
	BrowserArgs []string `yaml:"browser_args"`
	Debug       bool     `yaml:"debug"`

	// BaseURL of the site under test. Ignored when LocalFixture is set.
	BaseURL      string `yaml:"base_url"`
	LocalFixture bool   `yaml:"local_fixture"`

	Timeouts Timeouts `yaml:"timeouts"`

	// ReportDir receives report attachments. Empty disables the report.
	ReportDir string `yaml:"report_dir"`
}

// Timeouts are the wait defaults handed to page objects.
type Timeouts struct {
	Wait              time.Duration `yaml:"wait"`
	PollInterval      time.Duration `yaml:"poll_interval"`
	ReadinessInterval time.Duration `yaml:"readiness_interval"`
}

// SupportedBrowsers lists the accepted values of Config.Browser.
var SupportedBrowsers = mapset.NewSetWith("chrome", "firefox")

// DefaultConfig returns the configuration used when no file or flag
// overrides a value.
func DefaultConfig() Config {
	return Config{
		Browser:      "chrome",
		SeleniumHost: "localhost",
		SeleniumPort: 8888,
		FrameBuffer:  runtime.GOOS != "darwin",
		WindowSize:   "1920,1080",
		BaseURL:      DemoSiteURL,
		Timeouts: Timeouts{
			Wait:              30 * time.Second,
			PollInterval:      500 * time.Millisecond,
			ReadinessInterval: time.Second,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	if !SupportedBrowsers.Contains(c.Browser) {
		errs = append(errs, fmt.Errorf("unsupported browser %q", c.Browser))
	}
	if c.SeleniumPort < 0 {
		errs = append(errs, fmt.Errorf("invalid selenium port %d", c.SeleniumPort))
	}
	if c.Timeouts.Wait <= 0 {
		errs = append(errs, errors.New("wait timeout must be positive"))
	}
	if c.Timeouts.PollInterval <= 0 || c.Timeouts.ReadinessInterval <= 0 {
		errs = append(errs, errors.New("poll intervals must be positive"))
	}
	if c.BaseURL == "" && !c.LocalFixture {
		errs = append(errs, errors.New("base_url is required unless local_fixture is set"))
	}
	return NewMultiError(errs, "validating config")
}
