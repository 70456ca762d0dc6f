package ui

import (
	"context"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/codec"
	lpnet "LocalPaint/internal/net"
	"LocalPaint/internal/render"
)

// RunViewer opens a read-only window that follows the mirror at url until
// the window is closed.
func RunViewer(url string, w, h int, background string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("LocalPaint - " + url)

	list := render.NewDisplayList(nil)
	board := NewBoardWidget(nil, list, w, h, background)
	list.OnChange = board.Refresh
	status := widget.NewLabel("Connecting to " + url)

	ctx, cancel := context.WithCancel(context.Background())
	myWindow.SetOnClosed(cancel)

	go func() {
		err := lpnet.Watch(ctx, url, func(doc []byte) {
			fyne.Do(func() { show(list, status, doc) })
		})
		if err != nil {
			log.Printf("[MIRROR] %v", err)
			fyne.Do(func() { status.SetText("Disconnected: " + err.Error()) })
			return
		}
		fyne.Do(func() { status.SetText("Host closed the mirror") })
	}()

	myWindow.SetContent(container.NewBorder(nil, status, nil, nil, container.NewCenter(board)))
	myWindow.Resize(fyne.NewSize(float32(w)+40, float32(h)+80))
	myWindow.ShowAndRun()
}

// show replaces the view with a received document. Bad documents leave
// the last good one on screen.
func show(list *render.DisplayList, status *widget.Label, doc []byte) {
	strokes, err := codec.Decode(doc, list)
	if err != nil {
		log.Printf("[MIRROR] Ignoring document: %v", err)
		return
	}
	list.Clear()
	for _, s := range strokes {
		s.Paint()
	}
	status.SetText(fmtStrokes(len(strokes)))
}

func fmtStrokes(n int) string {
	if n == 1 {
		return "1 stroke"
	}
	return strconv.Itoa(n) + " strokes"
}
