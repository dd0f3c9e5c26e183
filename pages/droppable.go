// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pages

import "github.com/Kornyshev/aqa-selenium-advanced/webdriver"

// DroppablePath is the path of the droppable page.
const DroppablePath = "/droppable"

var (
	elementForDragAndDrop = webdriver.CSS("div#draggable")
	droppableContainer    = webdriver.CSS("div.drop-box")
)

// DroppablePage has a draggable box and a drop target.
type DroppablePage struct {
	BasePage
}

// NewDroppablePage returns the droppable page of the site at baseURL.
func NewDroppablePage(d *webdriver.Dispatcher, baseURL string) *DroppablePage {
	return &DroppablePage{BasePage: newBasePage(d, baseURL, DroppablePath)}
}

// DragAndDrop drags the box onto the drop target.
func (p *DroppablePage) DragAndDrop() error {
	p.step("Drag&Drop", "dragging the box onto the drop target")
	return p.Dispatcher.DragAndDrop(elementForDragAndDrop, droppableContainer)
}

// DroppableText returns the text of the drop target.
func (p *DroppablePage) DroppableText() (string, error) {
	return p.Text(droppableContainer)
}
