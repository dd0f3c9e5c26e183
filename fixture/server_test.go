//go:build small

// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package fixture

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_servesPages(t *testing.T) {
	for path, want := range map[string][]string{
		"/buttons":      {`id="doubleClickBtn"`, `id="rightClickBtn"`, `>Click Me<`, "doubleClickMessage", "rightClickMessage", "dynamicClickMessage"},
		"/progress-bar": {`id="progressBar"`, `aria-valuenow="0"`, `id="startStopButton"`},
		"/droppable":    {`id="draggable"`, `class="drop-box"`, "Dropped!"},
	} {
		t.Run(path, func(t *testing.T) {
			resp := httptest.NewRecorder()
			NewRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, resp.Code)
			assert.Contains(t, resp.Header().Get("Content-Type"), "text/html")
			for _, s := range want {
				assert.Contains(t, resp.Body.String(), s)
			}
		})
	}
}

func TestRouter_unknownPath(t *testing.T) {
	resp := httptest.NewRecorder()
	NewRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestStart(t *testing.T) {
	var logs bytes.Buffer
	s, err := Start(0, &logs)
	require.NoError(t, err)

	assert.Equal(t, s.URL()+"/buttons", s.GetWebappURL("/buttons"))
	resp, err := http.Get(s.GetWebappURL("/buttons"))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "doubleClickBtn")

	require.NoError(t, s.Close())
	assert.Contains(t, logs.String(), "GET /buttons")
}
