// Native dialogs for the VTF viewer.
package main

import (
	"path/filepath"

	"github.com/sqweek/dialog"

	"github.com/Faultbox/vtfview/internal/logger"
	"github.com/Faultbox/vtfview/internal/viewer"
)

// nativePrompter answers the controller's prompts with native dialogs. Save
// and close prompts are invoked from menu handlers on the main thread, where
// a blocking dialog is fine.
type nativePrompter struct{}

func (nativePrompter) SaveFileName() (string, bool) {
	filename, err := dialog.File().
		Filter("Valve Texture File", "vtf").
		Title("Save VTF").
		Save()
	if err != nil {
		if err != dialog.ErrCancelled {
			logger.Sugar.Errorw("save dialog failed", "error", err)
		}
		return "", false
	}
	if filepath.Ext(filename) == "" {
		filename += ".vtf"
	}
	return filename, true
}

// ConfirmUnsaved maps the three-way save/discard/cancel decision onto two
// yes/no message boxes, the only shape the native dialog offers everywhere.
func (nativePrompter) ConfirmUnsaved() viewer.CloseChoice {
	if dialog.Message("The file has unsaved changes. Save before closing?").
		Title("Unsaved Changes").YesNo() {
		return viewer.ChoiceSave
	}
	if dialog.Message("Discard unsaved changes?").
		Title("Unsaved Changes").YesNo() {
		return viewer.ChoiceDiscard
	}
	return viewer.ChoiceCancel
}

func (nativePrompter) WarnSaveFailed(reason string) {
	dialog.Message("Could not save file: %s", reason).
		Title("Save Failed").Error()
}

// openFileDialog shows a native file dialog to pick a VTF file. It runs on a
// goroutine so the UI keeps rendering; the result is handed to the main
// thread through pendingPath because SDL window operations must happen there.
func (app *App) openFileDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Valve Texture File", "vtf").
			Filter("All Files", "*").
			Title("Open VTF").
			Load()

		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Sugar.Errorw("open dialog failed", "error", err)
			}
			return
		}

		app.queuePendingPath(filename)
	}()
}

// queuePendingPath hands a dialog result to the render loop. Only the most
// recent selection is kept if the user somehow races two dialogs.
func (app *App) queuePendingPath(path string) {
	select {
	case app.pendingPath <- path:
	default:
		select {
		case <-app.pendingPath:
		default:
		}
		app.pendingPath <- path
	}
}

// takePendingPath drains the queued dialog result, if any. Called on the
// main thread at the top of each frame.
func (app *App) takePendingPath() (string, bool) {
	select {
	case path := <-app.pendingPath:
		return path, true
	default:
		return "", false
	}
}
