package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/common"
	"golang.org/x/image/font/basicfont"
)

const hudEventLines = 6

var hudTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// HUD shows the actor's movement state, recent movement events and the
// pause menu.
type HUD struct {
	ui     *ebitenui.UI
	root   *widget.Container
	status *widget.Text
	events *widget.Text
	pause  *widget.Container

	recent []string
}

func NewHUD(onResume, onQuit func()) *HUD {
	face := ebtext.Face(ebtext.NewGoXFace(basicfont.Face7x13))
	h := &HUD{}

	h.status = widget.NewText(widget.TextOpts.Text("", &face, hudTextColor))
	h.events = widget.NewText(widget.TextOpts.Text("", &face, hudTextColor))

	info := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionStart,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	info.AddChild(h.status)
	info.AddChild(h.events)

	h.pause = newPausePanel(&face, onResume, onQuit)
	h.pause.GetWidget().Visibility = widget.Visibility_Hide

	h.root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	h.root.AddChild(info)
	h.root.AddChild(h.pause)
	h.ui = &ebitenui.UI{Container: h.root}
	return h
}

func newPausePanel(face *ebtext.Face, onResume, onQuit func()) *widget.Container {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: hudTextColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	button := func(label string, fn func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.ScreenWidth/3, common.ScreenHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Paused", face, hudTextColor),
		widget.TextOpts.WidgetOpts(center),
	))
	panel.AddChild(button("Resume", onResume))
	panel.AddChild(button("Quit", onQuit))
	return panel
}

// SetPaused shows or hides the pause panel.
func (h *HUD) SetPaused(paused bool) {
	if paused {
		h.pause.GetWidget().Visibility = widget.Visibility_Show
	} else {
		h.pause.GetWidget().Visibility = widget.Visibility_Hide
	}
	h.root.RequestRelayout()
}

// SetStatus replaces the status block.
func (h *HUD) SetStatus(lines ...string) {
	h.status.Label = strings.Join(lines, "\n")
}

// Record appends a line to the recent event list.
func (h *HUD) Record(format string, args ...any) {
	h.recent = append(h.recent, fmt.Sprintf(format, args...))
	if len(h.recent) > hudEventLines {
		h.recent = h.recent[len(h.recent)-hudEventLines:]
	}
	h.events.Label = strings.Join(h.recent, "\n")
}

func (h *HUD) UI() *ebitenui.UI { return h.ui }
