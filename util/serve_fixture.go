// Copyright 2017 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"flag"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Kornyshev/aqa-selenium-advanced/fixture"
)

var (
	port    = flag.Int("port", 8080, "port to serve the fixture site on; 0 picks a free one")
	verbose = flag.Bool("verbose", false, "log every request")
)

// serve_fixture.go serves the local copies of the demo pages until
// interrupted, for developing page objects against a stable site.
//
// Usage (from util/):
// go run serve_fixture.go -port=8080
func main() {
	flag.Parse()
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var logOut io.Writer
	if *verbose {
		logOut = os.Stderr
	}
	s, err := fixture.Start(*port, logOut)
	if err != nil {
		logrus.Fatalf("Failed to start fixture server: %s", err.Error())
	}

	logrus.Infof("Fixture site running at %s", s.URL())
	paths := make([]string, 0, len(fixture.Pages))
	for path := range fixture.Pages {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		logrus.Infof("Serving %s", s.GetWebappURL(path))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	logrus.Infof("Received %s, shutting down", <-sig)
	if err := s.Close(); err != nil {
		logrus.Errorf("Failed to shut down cleanly: %s", err.Error())
	}
}
