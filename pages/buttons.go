// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pages

import (
	"github.com/Kornyshev/aqa-selenium-advanced/wait"
	"github.com/Kornyshev/aqa-selenium-advanced/webdriver"
)

// ButtonsPath is the path of the buttons page.
const ButtonsPath = "/buttons"

// Messages shown after each kind of click.
const (
	DoubleClickMessage  = "You have done a double click"
	RightClickMessage   = "You have done a right click"
	DynamicClickMessage = "You have done a dynamic click"
)

var (
	doubleClickButton    = webdriver.CSS("button#doubleClickBtn")
	rightClickButton     = webdriver.CSS("button#rightClickBtn")
	leftClickButton      = webdriver.XPath("//button[text()= 'Click Me']")
	doubleClickTextLabel = webdriver.CSS("p#doubleClickMessage")
	rightClickTextLabel  = webdriver.CSS("p#rightClickMessage")
	leftClickTextLabel   = webdriver.CSS("p#dynamicClickMessage")
)

// ButtonsPage has three buttons, each revealing a message when clicked the
// right way.
type ButtonsPage struct {
	BasePage
	readiness wait.Options
}

// NewButtonsPage returns the buttons page of the site at baseURL. readiness
// configures WaitForAllMessages.
func NewButtonsPage(d *webdriver.Dispatcher, baseURL string, readiness wait.Options) *ButtonsPage {
	return &ButtonsPage{BasePage: newBasePage(d, baseURL, ButtonsPath), readiness: readiness}
}

// DoubleClickButton double-clicks the double-click button.
func (p *ButtonsPage) DoubleClickButton() error {
	p.step("Double-click", "double-clicking the double-click button")
	return p.DoubleClick(doubleClickButton)
}

// RightClickButton right-clicks the right-click button.
func (p *ButtonsPage) RightClickButton() error {
	p.step("Right-click", "right-clicking the right-click button")
	return p.ContextClick(rightClickButton)
}

// LeftClickButton clicks the click-me button.
func (p *ButtonsPage) LeftClickButton() error {
	p.step("Left-click", "clicking the click-me button")
	return p.Click(leftClickButton)
}

// DoubleClickMessage returns the message shown after a double click.
func (p *ButtonsPage) DoubleClickMessage() (string, error) {
	return p.message("double-click", doubleClickTextLabel)
}

// RightClickMessage returns the message shown after a right click.
func (p *ButtonsPage) RightClickMessage() (string, error) {
	return p.message("right-click", rightClickTextLabel)
}

// LeftClickMessage returns the message shown after a left click.
func (p *ButtonsPage) LeftClickMessage() (string, error) {
	return p.message("dynamic click", leftClickTextLabel)
}

func (p *ButtonsPage) message(kind string, l webdriver.Locator) (string, error) {
	text, err := p.Text(l)
	if err != nil {
		return "", err
	}
	p.step("Message", "%s message: %q", kind, text)
	return text, nil
}

// WaitForAllMessages waits until every expected message is shown at once.
func (p *ButtonsPage) WaitForAllMessages(expected ...string) error {
	p.step("Messages", "waiting for messages %q", expected)
	pool := p.TextsOf(doubleClickTextLabel, rightClickTextLabel, leftClickTextLabel)
	return p.WaitWith(wait.AllPresent("messages", pool, expected...), p.readiness)
}
