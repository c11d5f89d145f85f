// Package viewer implements the presentation and mutation model behind the
// VTF viewer: document lifecycle, decode pipeline, metadata projection, and
// the settings surface. It is toolkit-agnostic; the GUI front end renders
// its state and forwards user input, and user prompts go through the
// Prompter interface.
package viewer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/vtfview/internal/logger"
	"github.com/Faultbox/vtfview/pkg/vtf"
)

// BaseTitle is the window title with no document loaded.
const BaseTitle = "VTFView"

// CloseChoice is the user's answer to the unsaved-changes prompt.
type CloseChoice int

const (
	ChoiceSave CloseChoice = iota
	ChoiceDiscard
	ChoiceCancel
)

// Prompter supplies the user interactions the controller needs. The GUI
// front end implements it with native dialogs; tests implement it with
// canned answers.
type Prompter interface {
	// SaveFileName asks for a destination path, constrained to the VTF
	// extension. The second result is false when the user cancelled.
	SaveFileName() (string, bool)

	// ConfirmUnsaved asks what to do with unsaved changes on close.
	ConfirmUnsaved() CloseChoice

	// WarnSaveFailed reports a failed save with the codec's error text.
	WarnSaveFailed(reason string)
}

// Controller owns the current document: the loaded VTF, its originating
// path, the dirty bit, and the presentation title. All presentation
// components subscribe to its single document-changed broadcast.
type Controller struct {
	prompter Prompter

	file  *vtf.File
	path  string
	dirty bool
	title string

	subscribers []func(*vtf.File)
}

// NewController creates a controller with no document loaded.
func NewController(prompter Prompter) *Controller {
	return &Controller{prompter: prompter, title: BaseTitle}
}

// Subscribe registers a callback invoked on every document change. The
// argument is the new document, or nil on unload. Callbacks run in
// subscription order, after the new document is installed.
func (c *Controller) Subscribe(fn func(*vtf.File)) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Controller) publish() {
	for _, fn := range c.subscribers {
		fn(c.file)
	}
}

// File returns the current document, nil when none is loaded.
func (c *Controller) File() *vtf.File { return c.file }

// Path returns the document's originating path, empty for buffer-loaded
// documents.
func (c *Controller) Path() string { return c.path }

// Dirty reports whether the document holds unsaved edits.
func (c *Controller) Dirty() bool { return c.dirty }

// Title returns the presentation title, including the dirty marker.
func (c *Controller) Title() string { return c.title }

// LoadPath reads a VTF from disk and installs it as the current document.
// Returns false when the file is unreadable or the codec rejects it, leaving
// the prior document intact.
func (c *Controller) LoadPath(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Sugar.Warnw("could not read file", "path", path, "error", err)
		return false
	}
	if !c.LoadBytes(data) {
		return false
	}
	c.path = path
	c.title = fmt.Sprintf("%s - [%s]", BaseTitle, filepath.Base(path))
	return true
}

// LoadBytes parses a VTF from a memory buffer and installs it as the current
// document. On failure the prior document is left intact.
func (c *Controller) LoadBytes(data []byte) bool {
	f, err := vtf.Load(data)
	if err != nil {
		logger.Sugar.Warnw("codec rejected file", "error", err)
		return false
	}

	c.file = f
	c.path = ""
	c.dirty = false
	c.title = BaseTitle
	c.publish()
	return true
}

// Unload releases the current document.
func (c *Controller) Unload() {
	if c.file == nil {
		return
	}
	c.file = nil
	c.publish()
	c.path = ""
	c.dirty = false
	c.title = BaseTitle
}

// MarkModified sets the dirty bit and appends the title marker. Idempotent.
func (c *Controller) MarkModified() {
	c.dirty = true
	if !strings.HasSuffix(c.title, "*") {
		c.title += "*"
	}
}

// Save persists the document. A clean document is a no-op. A dirty document
// without a path prompts for a destination first; cancelling the prompt
// aborts with the dirty bit intact, as does a codec failure (which is also
// surfaced through the prompter). Returns true when the document is clean
// afterwards.
func (c *Controller) Save() bool {
	if !c.dirty {
		return true
	}

	if c.path == "" {
		name, ok := c.prompter.SaveFileName()
		if !ok {
			return false
		}
		c.path = name
	}

	if err := c.file.Save(c.path); err != nil {
		logger.Sugar.Errorw("save failed", "path", c.path, "error", err)
		c.prompter.WarnSaveFailed(err.Error())
		return false
	}

	c.dirty = false
	c.title = strings.TrimSuffix(c.title, "*")
	return true
}

// RequestClose mediates closing with unsaved changes. Returns true when the
// close should proceed. A dirty document asks the user: Cancel aborts,
// Discard proceeds without saving, Save proceeds only if the save actually
// cleaned the document.
func (c *Controller) RequestClose() bool {
	if !c.dirty {
		return true
	}

	switch c.prompter.ConfirmUnsaved() {
	case ChoiceDiscard:
		return true
	case ChoiceSave:
		return c.Save()
	default:
		return false
	}
}
