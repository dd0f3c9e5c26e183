// Copyright 2019 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IndexFile is the name of the JSON-lines index DirAttacher appends to.
const IndexFile = "attachments.jsonl"

// Attacher accepts a titled piece of content for a test report.
type Attacher interface {
	Attach(title, body string) error
}

// Attachment is one attached piece of content.
type Attachment struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	File  string    `json:"file,omitempty"`
	Time  time.Time `json:"time"`
	Body  string    `json:"-"`
}

// DirAttacher writes every attachment to its own file in a directory and
// indexes it in IndexFile.
type DirAttacher struct {
	dir string
	mu  sync.Mutex
}

// NewDirAttacher creates dir if needed and returns an Attacher writing to it.
func NewDirAttacher(dir string) (*DirAttacher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating report dir: %w", err)
	}
	return &DirAttacher{dir: dir}, nil
}

// Attach implements Attacher.
func (a *DirAttacher) Attach(title, body string) error {
	att := Attachment{
		ID:    uuid.NewString(),
		Title: title,
		Time:  time.Now().UTC(),
	}
	att.File = att.ID + "-attachment.txt"

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := os.WriteFile(filepath.Join(a.dir, att.File), []byte(body), 0644); err != nil {
		return err
	}
	line, err := json.Marshal(att)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(a.dir, IndexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadIndex returns the attachments indexed in dir, in the order they were
// written, with their bodies loaded.
func ReadIndex(dir string) ([]Attachment, error) {
	f, err := os.Open(filepath.Join(dir, IndexFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var atts []Attachment
	dec := json.NewDecoder(f)
	for dec.More() {
		var att Attachment
		if err := dec.Decode(&att); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", IndexFile, err)
		}
		body, err := os.ReadFile(filepath.Join(dir, att.File))
		if err != nil {
			return nil, err
		}
		att.Body = string(body)
		atts = append(atts, att)
	}
	return atts, nil
}

// MemoryAttacher keeps attachments in memory.
type MemoryAttacher struct {
	mu          sync.Mutex
	attachments []Attachment
}

// Attach implements Attacher.
func (a *MemoryAttacher) Attach(title, body string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.attachments = append(a.attachments, Attachment{
		ID:    uuid.NewString(),
		Title: title,
		Time:  time.Now().UTC(),
		Body:  body,
	})
	return nil
}

// Attachments returns a copy of everything attached so far.
func (a *MemoryAttacher) Attachments() []Attachment {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Attachment(nil), a.attachments...)
}
