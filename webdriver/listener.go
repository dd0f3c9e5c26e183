// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver

import (
	"github.com/tebeka/selenium"

	"github.com/Kornyshev/aqa-selenium-advanced/shared"
	"github.com/Kornyshev/aqa-selenium-advanced/wait"
)

// Listener observes driver operations. There is one Before/After pair per
// intercepted operation; embed NopListener to implement only some of them.
type Listener interface {
	BeforeGet(url string)
	AfterGet(url string, err error)
	BeforeFindElement(l Locator)
	AfterFindElement(l Locator, err error)
	BeforeClick(l Locator)
	AfterClick(l Locator, err error)
	BeforeGetText(l Locator)
	AfterGetText(l Locator, text string, err error)
	BeforeGetAttribute(l Locator, name string)
	AfterGetAttribute(l Locator, name, value string, err error)
	BeforePerform(action string, targets ...Locator)
	AfterPerform(action string, err error)
	BeforeQuit()
	AfterQuit(err error)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) BeforeGet(string)                                 {}
func (NopListener) AfterGet(string, error)                           {}
func (NopListener) BeforeFindElement(Locator)                        {}
func (NopListener) AfterFindElement(Locator, error)                  {}
func (NopListener) BeforeClick(Locator)                              {}
func (NopListener) AfterClick(Locator, error)                        {}
func (NopListener) BeforeGetText(Locator)                            {}
func (NopListener) AfterGetText(Locator, string, error)              {}
func (NopListener) BeforeGetAttribute(Locator, string)               {}
func (NopListener) AfterGetAttribute(Locator, string, string, error) {}
func (NopListener) BeforePerform(string, ...Locator)                 {}
func (NopListener) AfterPerform(string, error)                       {}
func (NopListener) BeforeQuit()                                      {}
func (NopListener) AfterQuit(error)                                  {}

// LoggingListener writes navigation, clicks, compound actions and quit to
// the observation log, and element reads to the logger at debug level.
type LoggingListener struct {
	Log    *wait.ObservationLog
	Logger shared.Logger
}

// NewLoggingListener returns a LoggingListener. Either argument may be nil.
func NewLoggingListener(log *wait.ObservationLog, logger shared.Logger) *LoggingListener {
	if logger == nil {
		logger = shared.NewNilLogger()
	}
	return &LoggingListener{Log: log, Logger: logger}
}

func (l *LoggingListener) BeforeGet(url string) {
	l.Log.Action("Navigate", "navigating to %s", url)
}

func (l *LoggingListener) AfterGet(url string, err error) {
	if err != nil {
		l.Log.Action("Navigate", "navigating to %s failed: %v", url, err)
	}
}

func (l *LoggingListener) BeforeFindElement(loc Locator) {
	l.Logger.Debugf("Finding element %s", loc)
}

func (l *LoggingListener) AfterFindElement(loc Locator, err error) {
	if err != nil {
		l.Logger.Debugf("Element %s not found: %v", loc, err)
	}
}

func (l *LoggingListener) BeforeClick(loc Locator) {
	l.Log.Action("Click", "clicking %s", loc)
}

func (l *LoggingListener) AfterClick(loc Locator, err error) {
	if err != nil {
		l.Log.Action("Click", "clicking %s failed: %v", loc, err)
	}
}

func (l *LoggingListener) BeforeGetText(loc Locator) {}

func (l *LoggingListener) AfterGetText(loc Locator, text string, err error) {
	l.Logger.Debugf("Text of %s: %q (err: %v)", loc, text, err)
}

func (l *LoggingListener) BeforeGetAttribute(loc Locator, name string) {}

func (l *LoggingListener) AfterGetAttribute(loc Locator, name, value string, err error) {
	l.Logger.Debugf("Attribute %s of %s: %q (err: %v)", name, loc, value, err)
}

func (l *LoggingListener) BeforePerform(action string, targets ...Locator) {
	l.Log.Action("Perform", "%s on %v", action, targets)
}

func (l *LoggingListener) AfterPerform(action string, err error) {
	if err != nil {
		l.Log.Action("Perform", "%s failed: %v", action, err)
	}
}

func (l *LoggingListener) BeforeQuit() {
	l.Log.Action("Quit", "quitting the browser")
}

func (l *LoggingListener) AfterQuit(err error) {
	if err != nil {
		l.Log.Action("Quit", "quitting the browser failed: %v", err)
	}
}

// Decorate returns a Driver that reports every operation on d, and on the
// elements it finds, to listener.
func Decorate(d Driver, listener Listener) Driver {
	return &listeningDriver{inner: d, l: listener}
}

type listeningDriver struct {
	inner Driver
	l     Listener
}

func (d *listeningDriver) Get(url string) error {
	d.l.BeforeGet(url)
	err := d.inner.Get(url)
	d.l.AfterGet(url, err)
	return err
}

func (d *listeningDriver) CurrentURL() (string, error) {
	return d.inner.CurrentURL()
}

func (d *listeningDriver) FindElement(loc Locator) (Element, error) {
	d.l.BeforeFindElement(loc)
	e, err := d.inner.FindElement(loc)
	d.l.AfterFindElement(loc, err)
	if err != nil {
		return nil, err
	}
	return &listeningElement{inner: e, loc: loc, l: d.l}, nil
}

func (d *listeningDriver) DoubleClick(e Element) error {
	d.l.BeforePerform("double-click", locatorOf(e))
	err := d.inner.DoubleClick(e)
	d.l.AfterPerform("double-click", err)
	return err
}

func (d *listeningDriver) ContextClick(e Element) error {
	d.l.BeforePerform("context-click", locatorOf(e))
	err := d.inner.ContextClick(e)
	d.l.AfterPerform("context-click", err)
	return err
}

func (d *listeningDriver) DragAndDrop(source, target Element) error {
	d.l.BeforePerform("drag-and-drop", locatorOf(source), locatorOf(target))
	err := d.inner.DragAndDrop(source, target)
	d.l.AfterPerform("drag-and-drop", err)
	return err
}

func (d *listeningDriver) Screenshot() ([]byte, error) {
	return d.inner.Screenshot()
}

func (d *listeningDriver) Quit() error {
	d.l.BeforeQuit()
	err := d.inner.Quit()
	d.l.AfterQuit(err)
	return err
}

func locatorOf(e Element) Locator {
	if le, ok := e.(*listeningElement); ok {
		return le.loc
	}
	return Locator{}
}

type listeningElement struct {
	inner Element
	loc   Locator
	l     Listener
}

func (e *listeningElement) Click() error {
	e.l.BeforeClick(e.loc)
	err := e.inner.Click()
	e.l.AfterClick(e.loc, err)
	return err
}

func (e *listeningElement) Text() (string, error) {
	e.l.BeforeGetText(e.loc)
	text, err := e.inner.Text()
	e.l.AfterGetText(e.loc, text, err)
	return text, err
}

func (e *listeningElement) GetAttribute(name string) (string, error) {
	e.l.BeforeGetAttribute(e.loc, name)
	v, err := e.inner.GetAttribute(name)
	e.l.AfterGetAttribute(e.loc, name, v, err)
	return v, err
}

func (e *listeningElement) IsDisplayed() (bool, error) {
	return e.inner.IsDisplayed()
}

func (e *listeningElement) IsEnabled() (bool, error) {
	return e.inner.IsEnabled()
}

func (e *listeningElement) MoveTo(xOffset, yOffset int) error {
	return e.inner.MoveTo(xOffset, yOffset)
}

func (e *listeningElement) Size() (*selenium.Size, error) {
	return e.inner.Size()
}
