// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/phayes/freeport"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"

	"github.com/Kornyshev/aqa-selenium-advanced/report"
	"github.com/Kornyshev/aqa-selenium-advanced/shared"
	"github.com/Kornyshev/aqa-selenium-advanced/wait"
)

// Session owns one browser for the duration of one test. It is not safe
// for concurrent use. Close must be called on every exit path.
type Session struct {
	ID     string
	Config shared.Config
	Driver Driver
	Log    *wait.ObservationLog
	Logger shared.Logger

	service  *selenium.Service
	attacher report.Attacher
	closed   bool
}

// NewSession starts a WebDriver service when cfg names one, connects a
// remote driver and decorates it with a LoggingListener. Nothing is left
// running when it returns an error.
func NewSession(cfg shared.Config) (s *Session, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s = &Session{ID: uuid.NewString(), Config: cfg}

	base := logrus.New()
	if cfg.ReportDir != "" {
		a, err := report.NewDirAttacher(cfg.ReportDir)
		if err != nil {
			return nil, err
		}
		s.attacher = a
		// Problems are attached as they happen so they survive a crash; the
		// full observation log is attached on Close.
		base.AddHook(report.NewHook(a, logrus.WarnLevel, logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel))
	}
	s.Logger = shared.NewLogrusLogger(base, logrus.Fields{"session": s.ID, "browser": cfg.Browser})
	s.Log = wait.NewObservationLog(s.Logger)

	caps, err := Capabilities(cfg)
	if err != nil {
		return nil, err
	}

	port := cfg.SeleniumPort
	if cfg.SeleniumURL == "" && port == 0 {
		if port, err = freeport.GetFreePort(); err != nil {
			return nil, fmt.Errorf("picking selenium port: %w", err)
		}
	}
	if s.service, err = startService(cfg, port); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && s.service != nil {
			s.service.Stop()
		}
	}()

	selenium.SetDebug(cfg.Debug)
	url := remoteURL(cfg, port)
	s.Logger.Infof("Connecting to WebDriver at %s", url)
	wd, err := selenium.NewRemote(caps, url)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", url, err)
	}
	s.Driver = Decorate(Wrap(wd), NewLoggingListener(s.Log, s.Logger))
	return s, nil
}

// startService starts the process serving the WebDriver endpoint: the
// selenium standalone server when configured, otherwise a bare
// chromedriver or geckodriver. It returns nil when cfg points at an
// endpoint that is already running.
func startService(cfg shared.Config, port int) (*selenium.Service, error) {
	if cfg.SeleniumURL != "" {
		return nil, nil
	}

	var options []selenium.ServiceOption
	// Start an X frame buffer for the browser to run in.
	if cfg.FrameBuffer {
		options = append(options, selenium.StartFrameBuffer())
	}
	// Output debug information to STDERR.
	options = append(options, selenium.Output(os.Stderr))

	switch {
	case cfg.SeleniumPath != "":
		if cfg.Browser == "firefox" {
			options = append(options, firefoxServiceOptions(cfg)...)
		} else {
			options = append(options, chromeServiceOptions(cfg)...)
		}
		return selenium.NewSeleniumService(cfg.SeleniumPath, port, options...)
	case cfg.Browser == "chrome" && cfg.ChromeDriverPath != "":
		return selenium.NewChromeDriverService(cfg.ChromeDriverPath, port, options...)
	case cfg.Browser == "firefox" && cfg.GeckoDriverPath != "":
		return selenium.NewGeckoDriverService(cfg.GeckoDriverPath, port, options...)
	}
	return nil, fmt.Errorf("no WebDriver endpoint: set selenium_url, selenium_path or the %s driver path", cfg.Browser)
}

// Dispatcher returns a Dispatcher on the session's driver using the
// configured element-wait defaults.
func (s *Session) Dispatcher() *Dispatcher {
	return NewDispatcher(s.Driver, s.WaitOptions())
}

// WaitOptions returns the configured element-wait options, recording into
// the session's observation log.
func (s *Session) WaitOptions() wait.Options {
	opts := wait.DefaultOptions()
	opts.Timeout = s.Config.Timeouts.Wait
	opts.Interval = s.Config.Timeouts.PollInterval
	opts.Log = s.Log
	opts.Logger = s.Logger
	return opts
}

// ReadinessOptions returns WaitOptions polling at the readiness interval.
func (s *Session) ReadinessOptions() wait.Options {
	opts := s.WaitOptions()
	opts.Interval = s.Config.Timeouts.ReadinessInterval
	return opts
}

// Close quits the browser, stops the service and attaches the observation
// log to the report. It is safe to call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.Driver != nil {
		errs = append(errs, s.Driver.Quit())
	}
	if s.service != nil {
		errs = append(errs, s.service.Stop())
	}
	if s.attacher != nil {
		errs = append(errs, s.Log.AttachTo(s.attacher))
	}
	return shared.NewMultiError(errs, "closing session "+s.ID)
}
