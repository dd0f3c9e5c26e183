// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package webdriver

import (
	"errors"
	"fmt"

	"github.com/Kornyshev/aqa-selenium-advanced/wait"
)

// Dispatcher performs single interactions on located elements. Each
// interaction first waits for its element to become visible or clickable,
// then makes exactly one driver call whose error is returned unmodified.
type Dispatcher struct {
	driver Driver
	waiter *wait.Waiter
}

// NewDispatcher returns a Dispatcher whose precondition waits use opts.
func NewDispatcher(d Driver, opts wait.Options) *Dispatcher {
	return &Dispatcher{driver: d, waiter: wait.NewWaiter(opts)}
}

// Driver returns the underlying driver.
func (d *Dispatcher) Driver() Driver {
	return d.driver
}

// Options returns the wait options used for preconditions.
func (d *Dispatcher) Options() wait.Options {
	return d.waiter.Options()
}

// Navigate loads url.
func (d *Dispatcher) Navigate(url string) error {
	return d.driver.Get(url)
}

// WaitFor polls p with the dispatcher's options and returns nil once it is
// Met.
func (d *Dispatcher) WaitFor(p wait.Predicate) error {
	_, err := d.waiter.WaitFor(p)
	return err
}

// WaitWith polls p with opts instead of the dispatcher's options.
func (d *Dispatcher) WaitWith(p wait.Predicate, opts wait.Options) error {
	if opts.Log == nil {
		opts.Log = d.waiter.Options().Log
	}
	if opts.Logger == nil {
		opts.Logger = d.waiter.Options().Logger
	}
	_, err := wait.NewWaiter(opts).WaitFor(p)
	return err
}

// Await waits until the element at l is interactable in the given mode and
// returns it.
func (d *Dispatcher) Await(l Locator, mode wait.InteractableMode) (Element, error) {
	p := wait.Interactable(l.String(), func() (Element, error) {
		return d.driver.FindElement(l)
	}, mode)
	if err := d.WaitFor(p); err != nil {
		return nil, err
	}
	return p.Element(), nil
}

// Click waits for l to be clickable and clicks it.
func (d *Dispatcher) Click(l Locator) error {
	e, err := d.Await(l, wait.Clickable)
	if err != nil {
		return err
	}
	return e.Click()
}

// DoubleClick waits for l to be clickable and double-clicks it.
func (d *Dispatcher) DoubleClick(l Locator) error {
	e, err := d.Await(l, wait.Clickable)
	if err != nil {
		return err
	}
	return d.driver.DoubleClick(e)
}

// ContextClick waits for l to be clickable and right-clicks it.
func (d *Dispatcher) ContextClick(l Locator) error {
	e, err := d.Await(l, wait.Clickable)
	if err != nil {
		return err
	}
	return d.driver.ContextClick(e)
}

// DragAndDrop waits for both elements to be visible and drags source onto
// target.
func (d *Dispatcher) DragAndDrop(source, target Locator) error {
	src, err := d.Await(source, wait.Visible)
	if err != nil {
		return err
	}
	dst, err := d.Await(target, wait.Visible)
	if err != nil {
		return err
	}
	return d.driver.DragAndDrop(src, dst)
}

// Text waits for l to be visible and returns its text.
func (d *Dispatcher) Text(l Locator) (string, error) {
	e, err := d.Await(l, wait.Visible)
	if err != nil {
		return "", err
	}
	return e.Text()
}

// Attribute waits for l to be visible and returns the named attribute.
func (d *Dispatcher) Attribute(l Locator, name string) (string, error) {
	e, err := d.Await(l, wait.Visible)
	if err != nil {
		return "", err
	}
	return e.GetAttribute(name)
}

// AttributeOf returns an Observable reading the named attribute of l. The
// element is looked up on every read; an unset attribute reads as absent.
func (d *Dispatcher) AttributeOf(l Locator, name string) wait.Observable {
	return func() (string, bool, error) {
		e, err := d.driver.FindElement(l)
		if err != nil {
			return "", false, err
		}
		v, err := e.GetAttribute(name)
		if errors.Is(err, ErrNoAttribute) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		return v, true, nil
	}
}

// TextsOf returns a Pool reading the texts of every locator in one pass.
func (d *Dispatcher) TextsOf(ls ...Locator) wait.Pool {
	return func() ([]string, error) {
		texts := make([]string, 0, len(ls))
		for _, l := range ls {
			e, err := d.driver.FindElement(l)
			if err != nil {
				return nil, err
			}
			text, err := e.Text()
			if err != nil {
				return nil, fmt.Errorf("reading text of %s: %w", l, err)
			}
			texts = append(texts, text)
		}
		return texts, nil
	}
}
