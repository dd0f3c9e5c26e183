//go:build tools

// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	// Import all the tools we use in order to track the deps in go.mod as recommended by
	// https://github.com/golang/go/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module
	// https://github.com/go-modules-by-example/index/blob/master/010_tools/README.md
	_ "go.uber.org/mock/mockgen"
	_ "golang.org/x/lint/golint"
)
