//go:build small

// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pages_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
	"go.uber.org/mock/gomock"

	"github.com/Kornyshev/aqa-selenium-advanced/pages"
	"github.com/Kornyshev/aqa-selenium-advanced/wait"
	"github.com/Kornyshev/aqa-selenium-advanced/webdriver"
	"github.com/Kornyshev/aqa-selenium-advanced/webdriver/webdrivertest"
)

const site = "http://site"

func fastOptions(log *wait.ObservationLog) wait.Options {
	opts := wait.DefaultOptions()
	opts.Timeout = 200 * time.Millisecond
	opts.Interval = time.Millisecond
	opts.Log = log
	return opts
}

func visible(ctrl *gomock.Controller) *webdrivertest.MockElement {
	e := webdrivertest.NewMockElement(ctrl)
	e.EXPECT().IsDisplayed().Return(true, nil).AnyTimes()
	e.EXPECT().IsEnabled().Return(true, nil).AnyTimes()
	return e
}

func textElement(ctrl *gomock.Controller, text string) *webdrivertest.MockElement {
	e := visible(ctrl)
	e.EXPECT().Text().Return(text, nil).AnyTimes()
	return e
}

func TestOpen(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	driver := webdrivertest.NewMockDriver(mockCtrl)
	gomock.InOrder(
		driver.EXPECT().Get(site+"/buttons").Return(nil),
		driver.EXPECT().CurrentURL().Return(site+"/buttons", nil),
		driver.EXPECT().Get(site+"/progress-bar").Return(nil),
		driver.EXPECT().CurrentURL().Return(site+"/progress-bar/", nil),
		driver.EXPECT().Get(site+"/droppable").Return(errors.New("net::ERR_NAME_NOT_RESOLVED")),
	)

	log := wait.NewObservationLog(nil)
	d := webdriver.NewDispatcher(driver, fastOptions(log))
	assert.NoError(t, pages.NewButtonsPage(d, site, fastOptions(log)).Open())
	assert.NoError(t, pages.NewProgressBarPage(d, site).Open())
	assert.Error(t, pages.NewDroppablePage(d, site).Open())
	records := log.Records()
	require.Len(t, records, 5)
	assert.Equal(t, "opening http://site/buttons", records[0].Body)
	assert.Equal(t, "landed on http://site/progress-bar/", records[3].Body)
	assert.Equal(t, "opening http://site/droppable", records[4].Body)
}

func TestButtonsPage_clicksAndMessages(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	driver := webdrivertest.NewMockDriver(mockCtrl)
	double, right, left := visible(mockCtrl), visible(mockCtrl), visible(mockCtrl)
	driver.EXPECT().FindElement(webdriver.CSS("button#doubleClickBtn")).Return(double, nil)
	driver.EXPECT().FindElement(webdriver.CSS("button#rightClickBtn")).Return(right, nil)
	driver.EXPECT().FindElement(webdriver.XPath("//button[text()= 'Click Me']")).Return(left, nil)
	driver.EXPECT().DoubleClick(double).Return(nil)
	driver.EXPECT().ContextClick(right).Return(nil)
	left.EXPECT().Click().Return(nil)
	driver.EXPECT().FindElement(webdriver.CSS("p#doubleClickMessage")).
		Return(textElement(mockCtrl, pages.DoubleClickMessage), nil)

	d := webdriver.NewDispatcher(driver, fastOptions(nil))
	p := pages.NewButtonsPage(d, site, fastOptions(nil))
	require.NoError(t, p.DoubleClickButton())
	require.NoError(t, p.RightClickButton())
	require.NoError(t, p.LeftClickButton())
	msg, err := p.DoubleClickMessage()
	require.NoError(t, err)
	assert.Equal(t, pages.DoubleClickMessage, msg)
}

func TestButtonsPage_waitForAllMessages(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	driver := webdrivertest.NewMockDriver(mockCtrl)
	missing := &selenium.Error{Err: "no such element"}
	doubleLoc := webdriver.CSS("p#doubleClickMessage")
	rightLoc := webdriver.CSS("p#rightClickMessage")
	leftLoc := webdriver.CSS("p#dynamicClickMessage")

	// The dynamic click message only appears on the second pass.
	driver.EXPECT().FindElement(doubleLoc).Return(textElement(mockCtrl, pages.DoubleClickMessage), nil).Times(2)
	driver.EXPECT().FindElement(rightLoc).Return(textElement(mockCtrl, pages.RightClickMessage), nil).Times(2)
	gomock.InOrder(
		driver.EXPECT().FindElement(leftLoc).Return(nil, missing),
		driver.EXPECT().FindElement(leftLoc).Return(textElement(mockCtrl, pages.DynamicClickMessage), nil),
	)

	log := wait.NewObservationLog(nil)
	d := webdriver.NewDispatcher(driver, fastOptions(log))
	p := pages.NewButtonsPage(d, site, fastOptions(nil))
	require.NoError(t, p.WaitForAllMessages(
		pages.DoubleClickMessage, pages.RightClickMessage, pages.DynamicClickMessage))

	var results []wait.PollResult
	for _, r := range log.Records() {
		if r.Kind == wait.KindEvaluation {
			results = append(results, r.Result)
		}
	}
	assert.Equal(t, []wait.PollResult{wait.Unreadable, wait.Met}, results)
}

func TestButtonsPage_waitForAllMessagesTimesOut(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	driver := webdrivertest.NewMockDriver(mockCtrl)
	driver.EXPECT().FindElement(gomock.Any()).Return(textElement(mockCtrl, pages.RightClickMessage), nil).AnyTimes()

	d := webdriver.NewDispatcher(driver, fastOptions(nil))
	p := pages.NewButtonsPage(d, site, fastOptions(nil))
	err := p.WaitForAllMessages(pages.DoubleClickMessage, pages.RightClickMessage)
	require.Error(t, err)
	var terr *wait.TimeoutError
	require.True(t, errors.As(err, &terr))
	assert.Contains(t, terr.Last.Detail, pages.DoubleClickMessage)
}

func TestProgressBarPage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	driver := webdrivertest.NewMockDriver(mockCtrl)
	bar := visible(mockCtrl)
	button := visible(mockCtrl)
	barLoc := webdriver.CSS("div#progressBar div")
	buttonLoc := webdriver.CSS("button#startStopButton")
	driver.EXPECT().FindElement(barLoc).Return(bar, nil).AnyTimes()
	driver.EXPECT().FindElement(buttonLoc).Return(button, nil).AnyTimes()

	button.EXPECT().Click().Return(nil).Times(2)
	button.EXPECT().Text().Return("Start", nil)
	gomock.InOrder(
		bar.EXPECT().GetAttribute(pages.ValueAttribute).Return("12", nil),
		bar.EXPECT().GetAttribute(pages.ValueAttribute).Return("49", nil),
		bar.EXPECT().GetAttribute(pages.ValueAttribute).Return("51", nil),
		bar.EXPECT().GetAttribute(pages.ValueAttribute).Return("52", nil),
	)

	p := pages.NewProgressBarPage(webdriver.NewDispatcher(driver, fastOptions(nil)), site)
	require.NoError(t, p.ClickStartStopButton())
	require.NoError(t, p.WaitForProgressBarToReach(50))
	require.NoError(t, p.ClickStartStopButton())
	label, err := p.StartStopButtonText()
	require.NoError(t, err)
	assert.Equal(t, "Start", label)
	value, err := p.ProgressBarValue()
	require.NoError(t, err)
	assert.Equal(t, "52", value)
}

func TestDroppablePage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	driver := webdrivertest.NewMockDriver(mockCtrl)
	src := visible(mockCtrl)
	dst := textElement(mockCtrl, "Dropped!")
	driver.EXPECT().FindElement(webdriver.CSS("div#draggable")).Return(src, nil)
	driver.EXPECT().FindElement(webdriver.CSS("div.drop-box")).Return(dst, nil).Times(2)
	driver.EXPECT().DragAndDrop(src, dst).Return(nil)

	p := pages.NewDroppablePage(webdriver.NewDispatcher(driver, fastOptions(nil)), site)
	require.NoError(t, p.DragAndDrop())
	text, err := p.DroppableText()
	require.NoError(t, err)
	assert.Equal(t, "Dropped!", text)
}
