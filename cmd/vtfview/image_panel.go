// Image panel rendering: raster upload, zoom, and pan.
package main

import (
	"fmt"
	"image"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/vtfview/internal/viewer"
)

// uploadRaster pushes the canvas raster to a GPU texture. The canvas caches
// decodes, so a pointer-identical raster means the texture is current.
func (app *App) uploadRaster(r *viewer.Raster) {
	if r == app.texRaster {
		return
	}

	rgba := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	switch r.Format {
	case viewer.RasterRGBA:
		copy(rgba.Pix, r.Pix)
	case viewer.RasterRGB:
		for i := 0; i < r.Width*r.Height; i++ {
			rgba.Pix[i*4+0] = r.Pix[i*3+0]
			rgba.Pix[i*4+1] = r.Pix[i*3+1]
			rgba.Pix[i*4+2] = r.Pix[i*3+2]
			rgba.Pix[i*4+3] = 255
		}
	}

	app.texture = backend.NewTextureFromRgba(rgba)
	app.texRaster = r
}

// renderImagePanel draws the decoded texture with zoom controls and drag
// panning.
func (app *App) renderImagePanel() {
	if app.ctrl.File() == nil {
		imgui.TextDisabled("No file loaded")
		return
	}

	raster := app.canvas.Paint()
	if raster == nil {
		imgui.TextDisabled("Nothing decoded yet")
		return
	}
	app.uploadRaster(raster)

	zoom := app.canvas.Zoom()
	step := app.cfg.Viewer.ZoomStep

	imgui.Text(fmt.Sprintf("%d x %d", raster.Width, raster.Height))
	imgui.SameLine()
	imgui.Text("Zoom:")
	imgui.SameLine()
	if imgui.Button("-##zoom") && zoom > app.cfg.Viewer.MinZoom {
		app.canvas.SetZoom(zoom - step)
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%.0f%%", zoom*100))
	imgui.SameLine()
	if imgui.Button("+##zoom") && zoom < app.cfg.Viewer.MaxZoom {
		app.canvas.SetZoom(zoom + step)
	}
	imgui.SameLine()
	if imgui.Button("Reset##zoom") {
		app.canvas.SetZoom(1.0)
		px, py := app.canvas.Pan()
		app.canvas.AddPan(-px, -py)
	}

	imgui.Separator()

	avail := imgui.ContentRegionAvail()
	app.canvas.Resize(int(avail.X), int(avail.Y))

	zoom = app.canvas.Zoom()
	w := float32(raster.Width) * zoom
	h := float32(raster.Height) * zoom

	// Center the image in the available space, offset by the pan.
	panX, panY := app.canvas.Pan()
	startX := imgui.CursorPosX()
	startY := imgui.CursorPosY()
	imgui.SetCursorPosX(startX + (avail.X-w)/2 + float32(panX))
	imgui.SetCursorPosY(startY + (avail.Y-h)/2 + float32(panY))

	imgui.ImageWithBgV(
		app.texture.ID,
		imgui.NewVec2(w, h),
		imgui.NewVec2(0, 0),
		imgui.NewVec2(1, 1),
		imgui.NewVec4(0.2, 0.2, 0.2, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)

	// Drag to pan.
	if imgui.IsItemHovered() && imgui.IsMouseDragging(imgui.MouseButtonLeft) {
		delta := imgui.CurrentIO().MouseDelta()
		app.canvas.AddPan(int(delta.X), int(delta.Y))
	}
}
