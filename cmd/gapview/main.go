// Command gapview shows a rendered scenario in a window and re-renders it
// on demand.
package main

import (
	"context"
	"fmt"
	"image"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"gapdeco/internal/config"
	"gapdeco/pkg/scenario"
	"gapdeco/pkg/visualtest"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("gapview")
	w.Resize(fyne.NewSize(1024, 768))

	canvasImg := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	canvasImg.FillMode = canvas.ImageFillOriginal

	status := widget.NewLabel("Enter a scenario path and press Enter")

	pathEntry := widget.NewEntry()
	pathEntry.SetPlaceHolder("scenarios/grid.toml")

	load := func(path string) {
		img, summary, err := renderScenario(cfg, path)
		if err != nil {
			status.SetText("Error: " + err.Error())
			return
		}
		canvasImg.Image = img
		canvasImg.Refresh()
		status.SetText(summary)
		w.SetTitle(fmt.Sprintf("gapview - %s", path))
	}
	pathEntry.OnSubmitted = load
	reload := widget.NewButton("Reload", func() { load(pathEntry.Text) })

	topBar := container.NewBorder(nil, nil, nil, reload, pathEntry)
	content := container.NewBorder(topBar, status, nil, nil, container.NewScroll(canvasImg))
	w.SetContent(content)

	if len(os.Args) > 1 {
		pathEntry.SetText(os.Args[1])
		load(os.Args[1])
	}

	// Keep focus on the path entry to prevent Tab freeze with no other focusable widgets
	w.Canvas().Focus(pathEntry)

	w.ShowAndRun()
}

// renderScenario loads, lays out and rasterises the scenario at path.
func renderScenario(cfg *config.Config, path string) (image.Image, string, error) {
	s, err := scenario.Load(path)
	if err != nil {
		return nil, "", err
	}
	s.SetDefaultItemTolerance(cfg.Masonry.ItemTolerance)
	res, err := scenario.Run(context.Background(), s, scenario.RunOptions{
		AvailableWidth:  cfg.Canvas.Width,
		AvailableHeight: cfg.Canvas.Height,
	})
	if err != nil {
		return nil, "", err
	}
	img, err := visualtest.RenderFragment(res.Fragment, cfg.Canvas.Margin, cfg.RenderOptions())
	if err != nil {
		return nil, "", err
	}
	frag := res.Fragment
	summary := fmt.Sprintf("%s: %s container, %d items, %gx%g", s.Name, frag.Type, len(frag.Items), frag.Size.Inline, frag.Size.Block)
	return img, summary, nil
}
