// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package fixture serves local copies of the demo pages the page objects
// drive, so browser tests can run without network access.
package fixture

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/phayes/freeport"
	"github.com/sirupsen/logrus"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
)

//go:embed static/*.html
var pages embed.FS

// Pages maps each served path to its page file.
var Pages = map[string]string{
	"/buttons":      "static/buttons.html",
	"/progress-bar": "static/progress-bar.html",
	"/droppable":    "static/droppable.html",
}

// NewRouter returns a router serving every page in Pages.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.StrictSlash(true)
	r.Use(loggerMiddleware(shared.NewLogrusLogger(logrus.StandardLogger(), logrus.Fields{"component": "fixture"})))
	for path, file := range Pages {
		r.HandleFunc(path, pageHandler(file)).Methods(http.MethodGet).Name(path)
	}
	return r
}

func loggerMiddleware(logger shared.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(shared.WithLogger(r.Context(), logger)))
		})
	}
}

func pageHandler(file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := shared.GetLogger(r.Context())
		body, err := pages.ReadFile(file)
		if err != nil {
			logger.Errorf("Failed to read %s: %s", file, err.Error())
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		logger.Debugf("Serving %s for %s", file, r.URL.Path)
		w.Write(body)
	}
}

// Server is a running fixture site.
type Server struct {
	srv  *http.Server
	url  string
	errc chan error
}

// Start serves the fixture site on localhost:port, picking an unused port
// when port is 0. Requests are logged to logOut in combined log format when
// it is non-nil.
func Start(port int, logOut io.Writer) (*Server, error) {
	if port == 0 {
		var err error
		if port, err = freeport.GetFreePort(); err != nil {
			return nil, fmt.Errorf("picking fixture port: %w", err)
		}
	}
	ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return nil, err
	}

	var h http.Handler = NewRouter()
	if logOut != nil {
		h = handlers.CombinedLoggingHandler(logOut, h)
	}
	s := &Server{
		srv:  &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second},
		url:  fmt.Sprintf("http://localhost:%d", port),
		errc: make(chan error, 1),
	}
	go func() {
		s.errc <- s.srv.Serve(ln)
	}()
	return s, nil
}

// URL returns the base URL of the site.
func (s *Server) URL() string {
	return s.url
}

// GetWebappURL returns the URL for the given path on the site.
func (s *Server) GetWebappURL(path string) string {
	return s.url + path
}

// Close shuts the server down, waiting up to 15 seconds for open requests.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := <-s.errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
