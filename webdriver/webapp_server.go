// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Kornyshev/aqa-selenium-advanced/fixture"
	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

// AppServer is an abstraction for navigating an instance of the site under
// test.
type AppServer interface {
	// Hook for closing the process that runs the webserver.
	io.Closer

	// GetWebappURL returns the URL for the given path on the running site.
	GetWebappURL(path string) string
}

type remoteAppServer struct {
	baseURL string
}

func (i *remoteAppServer) GetWebappURL(path string) string {
	return i.baseURL + path
}

func (i *remoteAppServer) Close() error {
	return nil // Nothing needed here :)
}

// NewWebserver returns the site configured by cfg: a local fixture server
// when cfg.LocalFixture is set, otherwise cfg.BaseURL.
func NewWebserver(cfg shared.Config) (AppServer, error) {
	if !cfg.LocalFixture {
		return &remoteAppServer{baseURL: strings.TrimSuffix(cfg.BaseURL, "/")}, nil
	}
	s, err := fixture.Start(0, logrus.StandardLogger().WriterLevel(logrus.DebugLevel))
	if err != nil {
		return nil, err
	}
	return s, nil
}
