// Framebuffer capture (F12).
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/vtfview/internal/logger"
)

// captureScreenshot captures the current frame to a PNG file.
func (app *App) captureScreenshot() {
	// DisplaySize is logical pixels; the framebuffer scale handles HiDPI.
	io := imgui.CurrentIO()
	displaySize := io.DisplaySize()
	fbScale := io.DisplayFramebufferScale()
	width := int(displaySize.X * fbScale.X)
	height := int(displaySize.Y * fbScale.Y)

	if width <= 0 || height <= 0 {
		app.notifyScreenshot("Screenshot failed: invalid viewport")
		return
	}

	// Read the front buffer: capture happens at frame start, so that is the
	// last fully rendered frame.
	gl.ReadBuffer(gl.FRONT)
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.ReadBuffer(gl.BACK)

	// Flip vertically, OpenGL has its origin at the bottom left.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * width * 4
		dst := y * width * 4
		copy(img.Pix[dst:dst+width*4], pixels[src:src+width*4])
	}

	filename := fmt.Sprintf("screenshot-%s.png", time.Now().Format("20060102-150405"))
	savePath := filepath.Join(app.screenshotDir, filename)

	file, err := os.Create(savePath)
	if err != nil {
		app.notifyScreenshot(fmt.Sprintf("Screenshot failed: %v", err))
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		app.notifyScreenshot(fmt.Sprintf("Screenshot failed: %v", err))
		return
	}

	app.notifyScreenshot("Saved: " + filename)
	logger.Sugar.Infow("screenshot saved", "path", savePath)
}

func (app *App) notifyScreenshot(msg string) {
	app.lastScreenshotMsg = msg
	app.showScreenshotMsg = true
	app.screenshotMsgTime = time.Now()
}
