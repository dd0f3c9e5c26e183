// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

//go:generate mockgen -destination webdrivertest/driver_mock.go -package webdrivertest github.com/Kornyshev/aqa-selenium-advanced/webdriver Driver,Element

package webdriver

import (
	"errors"
	"fmt"

	"github.com/tebeka/selenium"
)

// ErrNoAttribute is returned by Element.GetAttribute when the attribute is
// not set on the element.
var ErrNoAttribute = errors.New("attribute not set")

// Locator identifies an element on the page.
type Locator struct {
	By    string
	Value string
}

func (l Locator) String() string {
	return fmt.Sprintf("%s=%s", l.By, l.Value)
}

// CSS returns a CSS selector locator.
func CSS(selector string) Locator {
	return Locator{By: selenium.ByCSSSelector, Value: selector}
}

// XPath returns an XPath locator.
func XPath(expr string) Locator {
	return Locator{By: selenium.ByXPATH, Value: expr}
}

// ID returns an element id locator.
func ID(id string) Locator {
	return Locator{By: selenium.ByID, Value: id}
}

// Element is the subset of selenium.WebElement the page objects use.
type Element interface {
	Click() error
	Text() (string, error)
	GetAttribute(name string) (string, error)
	IsDisplayed() (bool, error)
	IsEnabled() (bool, error)
	MoveTo(xOffset, yOffset int) error
	Size() (*selenium.Size, error)
}

// Driver is the browser-automation surface the page objects use. Every
// method is a single call into the browser; none of them retry.
type Driver interface {
	Get(url string) error
	CurrentURL() (string, error)
	FindElement(l Locator) (Element, error)
	DoubleClick(e Element) error
	ContextClick(e Element) error
	DragAndDrop(source, target Element) error
	Screenshot() ([]byte, error)
	Quit() error
}

type seleniumDriver struct {
	wd selenium.WebDriver
}

// Wrap adapts a selenium.WebDriver to Driver.
func Wrap(wd selenium.WebDriver) Driver {
	return &seleniumDriver{wd: wd}
}

func (d *seleniumDriver) Get(url string) error {
	return d.wd.Get(url)
}

func (d *seleniumDriver) CurrentURL() (string, error) {
	return d.wd.CurrentURL()
}

func (d *seleniumDriver) FindElement(l Locator) (Element, error) {
	e, err := d.wd.FindElement(l.By, l.Value)
	if err != nil {
		return nil, err
	}
	return seleniumElement{e}, nil
}

// moveToCenter moves the mouse to the middle of e.
func moveToCenter(e Element) error {
	size, err := e.Size()
	if err != nil {
		return err
	}
	return e.MoveTo(size.Width/2, size.Height/2)
}

func (d *seleniumDriver) DoubleClick(e Element) error {
	if err := moveToCenter(e); err != nil {
		return err
	}
	return d.wd.DoubleClick()
}

func (d *seleniumDriver) ContextClick(e Element) error {
	if err := moveToCenter(e); err != nil {
		return err
	}
	return d.wd.Click(selenium.RightButton)
}

func (d *seleniumDriver) DragAndDrop(source, target Element) error {
	if err := moveToCenter(source); err != nil {
		return err
	}
	if err := d.wd.ButtonDown(); err != nil {
		return err
	}
	if err := moveToCenter(target); err != nil {
		return err
	}
	return d.wd.ButtonUp()
}

func (d *seleniumDriver) Screenshot() ([]byte, error) {
	return d.wd.Screenshot()
}

func (d *seleniumDriver) Quit() error {
	return d.wd.Quit()
}

// nilValue is the error tebeka/selenium reports for a null string result.
const nilValue = "nil return value"

type seleniumElement struct {
	selenium.WebElement
}

func (e seleniumElement) GetAttribute(name string) (string, error) {
	v, err := e.WebElement.GetAttribute(name)
	if err != nil && err.Error() == nilValue {
		return "", fmt.Errorf("%s: %w", name, ErrNoAttribute)
	}
	return v, err
}
