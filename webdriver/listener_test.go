//go:build small

// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kornyshev/aqa-selenium-advanced/wait"
	"github.com/Kornyshev/aqa-selenium-advanced/webdriver"
	"github.com/Kornyshev/aqa-selenium-advanced/webdriver/webdrivertest"
)

// recordingListener only implements the events it records.
type recordingListener struct {
	webdriver.NopListener
	events []string
}

func (l *recordingListener) BeforeGet(url string) {
	l.events = append(l.events, "before get "+url)
}

func (l *recordingListener) AfterGet(url string, err error) {
	l.events = append(l.events, fmt.Sprintf("after get %s %v", url, err))
}

func (l *recordingListener) BeforeClick(loc webdriver.Locator) {
	l.events = append(l.events, "before click "+loc.String())
}

func (l *recordingListener) AfterGetAttribute(loc webdriver.Locator, name, value string, err error) {
	l.events = append(l.events, fmt.Sprintf("attribute %s of %s = %s", name, loc, value))
}

func (l *recordingListener) BeforePerform(action string, targets ...webdriver.Locator) {
	l.events = append(l.events, fmt.Sprintf("perform %s %v", action, targets))
}

func (l *recordingListener) AfterQuit(err error) {
	l.events = append(l.events, fmt.Sprintf("quit %v", err))
}

func TestDecorate_forwardsAndNotifies(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	inner := webdrivertest.NewMockDriver(mockCtrl)
	e := webdrivertest.NewMockElement(mockCtrl)
	loc := webdriver.CSS("#x")

	inner.EXPECT().Get("http://site/buttons").Return(nil)
	inner.EXPECT().FindElement(loc).Return(e, nil)
	e.EXPECT().Click().Return(nil)
	e.EXPECT().GetAttribute("aria-valuenow").Return("7", nil)
	inner.EXPECT().DoubleClick(gomock.Any()).Return(nil)
	inner.EXPECT().CurrentURL().Return("http://site/buttons", nil)
	inner.EXPECT().Quit().Return(nil)

	l := &recordingListener{}
	d := webdriver.Decorate(inner, l)

	require.NoError(t, d.Get("http://site/buttons"))
	found, err := d.FindElement(loc)
	require.NoError(t, err)
	require.NoError(t, found.Click())
	v, err := found.GetAttribute("aria-valuenow")
	require.NoError(t, err)
	assert.Equal(t, "7", v)
	require.NoError(t, d.DoubleClick(found))
	url, err := d.CurrentURL()
	require.NoError(t, err)
	assert.Equal(t, "http://site/buttons", url)
	require.NoError(t, d.Quit())

	assert.Equal(t, []string{
		"before get http://site/buttons",
		"after get http://site/buttons <nil>",
		"before click css selector=#x",
		"attribute aria-valuenow of css selector=#x = 7",
		"perform double-click [css selector=#x]",
		"quit <nil>",
	}, l.events)
}

func TestDecorate_findErrorPassesThrough(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	inner := webdrivertest.NewMockDriver(mockCtrl)
	boom := errors.New("boom")
	inner.EXPECT().FindElement(gomock.Any()).Return(nil, boom)

	d := webdriver.Decorate(inner, webdriver.NopListener{})
	e, err := d.FindElement(webdriver.ID("x"))
	assert.Nil(t, e)
	assert.Equal(t, boom, err)
}

func TestLoggingListener_recordsActions(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	inner := webdrivertest.NewMockDriver(mockCtrl)
	a := webdrivertest.NewMockElement(mockCtrl)
	b := webdrivertest.NewMockElement(mockCtrl)
	inner.EXPECT().Get(gomock.Any()).Return(nil)
	inner.EXPECT().FindElement(webdriver.CSS("div#draggable")).Return(a, nil)
	inner.EXPECT().FindElement(webdriver.CSS("div.drop-box")).Return(b, nil)
	inner.EXPECT().DragAndDrop(gomock.Any(), gomock.Any()).Return(errors.New("move target out of bounds"))
	inner.EXPECT().Quit().Return(nil)

	log := wait.NewObservationLog(nil)
	d := webdriver.Decorate(inner, webdriver.NewLoggingListener(log, nil))

	require.NoError(t, d.Get("http://site/droppable"))
	src, err := d.FindElement(webdriver.CSS("div#draggable"))
	require.NoError(t, err)
	dst, err := d.FindElement(webdriver.CSS("div.drop-box"))
	require.NoError(t, err)
	assert.Error(t, d.DragAndDrop(src, dst))
	require.NoError(t, d.Quit())

	var titles, bodies []string
	for _, r := range log.Records() {
		assert.Equal(t, wait.KindAction, r.Kind)
		titles = append(titles, r.Title)
		bodies = append(bodies, r.Body)
	}
	assert.Equal(t, []string{"Navigate", "Perform", "Perform", "Quit"}, titles)
	assert.Equal(t, "drag-and-drop on [css selector=div#draggable css selector=div.drop-box]", bodies[1])
	assert.Equal(t, "drag-and-drop failed: move target out of bounds", bodies[2])
}
