// VTF Viewer - a graphical viewer and flag editor for Valve Texture Format files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/vtfview/internal/config"
	"github.com/Faultbox/vtfview/internal/logger"
	"github.com/Faultbox/vtfview/internal/viewer"
)

func main() {
	runtime.LockOSThread()

	filePath := flag.String("file", "", "Path to VTF file to open")
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.Default()
	}

	logger.Init(logger.Options{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.LogFile,
		Console: true,
	})
	defer logger.Sync()

	app := NewApp(cfg)

	if *filePath != "" {
		if !app.ctrl.LoadPath(*filePath) {
			fmt.Fprintf(os.Stderr, "Error opening VTF: %s\n", *filePath)
		}
	}

	app.Run()
}

// App holds the application state: the viewer model plus the per-frame GUI
// state that has no home in the model.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config

	ctrl      *viewer.Controller
	canvas    *viewer.Canvas
	settings  *viewer.Settings
	metadata  viewer.Metadata
	resources viewer.ResourceList

	// Uploaded GPU copy of the canvas raster. texRaster identifies which
	// decode the texture holds so unchanged paints skip the upload.
	texture   *backend.Texture
	texRaster *viewer.Raster

	lastTitle string

	// File dialog results cross from the dialog goroutine to the main
	// thread here; SDL window operations must happen on the main thread.
	pendingPath chan string

	// Screenshot state
	screenshotDir       string
	lastScreenshotMsg   string
	showScreenshotMsg   bool
	screenshotMsgTime   time.Time
	screenshotRequested bool
}

// NewApp creates the application and its window.
func NewApp(cfg *config.Config) *App {
	app := &App{
		cfg:         cfg,
		pendingPath: make(chan string, 1),
	}

	app.ctrl = viewer.NewController(nativePrompter{})
	app.canvas = viewer.NewCanvas()
	app.settings = viewer.NewSettings(app.canvas, app.ctrl.MarkModified)

	app.ctrl.Subscribe(app.canvas.SetVTF)
	app.ctrl.Subscribe(app.settings.SetVTF)
	app.ctrl.Subscribe(app.metadata.Update)
	app.ctrl.Subscribe(app.resources.Update)

	app.screenshotDir = cfg.Screenshot.Dir
	if app.screenshotDir == "" {
		app.screenshotDir = filepath.Join(os.TempDir(), "vtfview")
	}
	if err := os.MkdirAll(app.screenshotDir, 0755); err != nil {
		logger.Sugar.Warnw("could not create screenshot dir",
			"dir", app.screenshotDir, "error", err)
	}

	var err error
	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		panic(fmt.Sprintf("failed to create backend: %v", err))
	}

	app.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	app.backend.CreateWindow(viewer.BaseTitle, cfg.Window.Width, cfg.Window.Height)
	app.lastTitle = viewer.BaseTitle

	// Window close goes through the unsaved-changes flow.
	app.backend.SetCloseCallback(func() {
		if !app.ctrl.RequestClose() {
			app.backend.SetShouldClose(false)
		}
	})

	if err := gl.Init(); err != nil {
		logger.Sugar.Warnw("OpenGL init failed, screenshots disabled", "error", err)
	}

	return app
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// render is called each frame to draw the UI.
func (app *App) render() {
	// Deferred screenshot capture: grab the previous frame's rendered
	// content at frame start.
	if app.screenshotRequested {
		app.screenshotRequested = false
		app.captureScreenshot()
	}

	// Process pending file dialog result on the main thread.
	if path, ok := app.takePendingPath(); ok {
		app.ctrl.LoadPath(path)
	}

	if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyF12)) {
		app.screenshotRequested = true
	}

	// Ctrl+O / Ctrl+S shortcuts
	ctrlO := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyO)
	if imgui.IsKeyChordPressed(ctrlO) {
		app.openFileDialog()
	}
	ctrlS := imgui.KeyChord(imgui.ModCtrl) | imgui.KeyChord(imgui.KeyS)
	if imgui.IsKeyChordPressed(ctrlS) && app.ctrl.File() != nil {
		app.ctrl.Save()
	}

	// Keep the OS window title in sync with the document title.
	if title := app.ctrl.Title(); title != app.lastTitle {
		app.backend.SetWindowTitle(title)
		app.lastTitle = title
	}

	// Main menu bar
	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Open VTF...") {
				app.openFileDialog()
			}
			if imgui.MenuItemBoolV("Save", "Ctrl+S", false, app.ctrl.File() != nil) {
				app.ctrl.Save()
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				if app.ctrl.RequestClose() {
					os.Exit(0)
				}
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}

	// Get viewport work area (excludes menu bar)
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	leftPanelWidth := float32(280)
	rightPanelWidth := float32(340)
	statusBarHeight := float32(30)
	contentHeight := workSize.Y - statusBarHeight

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - viewer settings
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(leftPanelWidth, contentHeight))
	if imgui.BeginV("Viewer Settings", nil, flags) {
		app.renderSettingsPanel()
	}
	imgui.End()

	// Center panel - image
	centerWidth := workSize.X - leftPanelWidth - rightPanelWidth
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+leftPanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(centerWidth, contentHeight))
	if imgui.BeginV("Image", nil, flags) {
		app.renderImagePanel()
	}
	imgui.End()

	// Right panel - info and resources tabs
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+leftPanelWidth+centerWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(rightPanelWidth, contentHeight))
	if imgui.BeginV("Details", nil, flags) {
		if imgui.BeginTabBar("detailTabs") {
			if imgui.BeginTabItem("Info") {
				app.renderInfoPanel()
				imgui.EndTabItem()
			}
			if imgui.BeginTabItem("Resources") {
				app.renderResourcesPanel()
				imgui.EndTabItem()
			}
			imgui.EndTabBar()
		}
	}
	imgui.End()

	// Status bar at bottom
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar()
	}
	imgui.End()

	// Screenshot notification overlay, shown for 2 seconds after capture
	if app.showScreenshotMsg && time.Since(app.screenshotMsgTime) < 2*time.Second {
		notifyFlags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
			imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar
		imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+workSize.X/2-150, workPos.Y+40))
		imgui.SetNextWindowSize(imgui.NewVec2(300, 0))
		if imgui.BeginV("##ScreenshotNotify", nil, notifyFlags) {
			imgui.Text(app.lastScreenshotMsg)
		}
		imgui.End()
	} else {
		app.showScreenshotMsg = false
	}
}

// renderSettingsPanel draws the selection controls, start frame, and the
// texture flag checkboxes.
func (app *App) renderSettingsPanel() {
	if app.ctrl.File() == nil {
		imgui.TextDisabled("No file loaded")
		return
	}
	s := app.settings

	imgui.Text("Selection")

	frame := int32(s.Frame())
	if imgui.SliderInt("Frame", &frame, int32(s.FrameRange.Min), int32(s.FrameRange.Max)) {
		s.SetFrame(int(frame))
	}
	face := int32(s.Face())
	if imgui.SliderInt("Face", &face, int32(s.FaceRange.Min), int32(s.FaceRange.Max)) {
		s.SetFace(int(face))
	}
	mip := int32(s.Mip())
	if imgui.SliderInt("Mipmap", &mip, int32(s.MipRange.Min), int32(s.MipRange.Max)) {
		s.SetMip(int(mip))
	}

	imgui.Separator()
	imgui.Text("Animation")

	start := int32(s.StartFrame())
	if imgui.SliderInt("Start Frame", &start, int32(s.StartFrameRange.Min), int32(s.StartFrameRange.Max)) {
		s.SetStartFrame(int(start))
	}

	imgui.Separator()
	imgui.Text("Flags")

	if imgui.BeginChildStrV("FlagList", imgui.NewVec2(0, 0), imgui.ChildFlagsBorders, 0) {
		for i, desc := range viewer.FlagTable {
			on := s.FlagState(i)
			if imgui.Checkbox(desc.Label, &on) {
				s.SetFlag(i, on)
			}
		}
	}
	imgui.EndChild()
}

// renderInfoPanel draws the file and image info tables.
func (app *App) renderInfoPanel() {
	if app.ctrl.File() == nil {
		imgui.TextDisabled("No file loaded")
		return
	}

	imgui.Text("File")
	if imgui.BeginTable("fileInfo", 2) {
		for _, field := range app.metadata.FileFields() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(field.Label)
			imgui.TableNextColumn()
			imgui.Text(field.Value)
		}
		imgui.EndTable()
	}

	imgui.Separator()
	imgui.Text("Image")
	if imgui.BeginTable("imageInfo", 2) {
		for _, field := range app.metadata.ImageFields() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(field.Label)
			imgui.TableNextColumn()
			imgui.Text(field.Value)
		}
		imgui.EndTable()
	}
}

// renderResourcesPanel draws the resource dictionary listing.
func (app *App) renderResourcesPanel() {
	if app.ctrl.File() == nil {
		imgui.TextDisabled("No file loaded")
		return
	}

	rows := app.resources.Rows()
	if len(rows) == 0 {
		imgui.TextDisabled("No resources (pre-7.3 file)")
		return
	}

	if imgui.BeginTable("resources", 3) {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text("Resource")
		imgui.TableNextColumn()
		imgui.Text("Type")
		imgui.TableNextColumn()
		imgui.Text("Size")

		for _, row := range rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row.Name)
			imgui.TableNextColumn()
			imgui.Text(row.TypeLabel())
			imgui.TableNextColumn()
			imgui.Text(row.SizeLabel())
		}
		imgui.EndTable()
	}
}

// renderStatusBar draws the bottom status line.
func (app *App) renderStatusBar() {
	f := app.ctrl.File()
	if f == nil {
		imgui.TextDisabled("Open a VTF file to begin")
		return
	}

	path := app.ctrl.Path()
	if path == "" {
		path = "(memory buffer)"
	}
	imgui.Text(fmt.Sprintf("%s | %s | %dx%d | %d frames",
		path, f.Format(), f.Width(), f.Height(), f.FrameCount()))
}
