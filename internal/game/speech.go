package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// bubbleFace is the font used for speech bubbles and panels.
var bubbleFace font.Face = basicfont.Face7x13

// bubbleStyle holds the look of one kind of speech bubble.
type bubbleStyle struct {
	fill   color.RGBA
	stroke color.RGBA
	ink    color.RGBA
	height float32
	lift   float32 // gap between body top and bubble bottom
	padX   float32
}

var (
	runnerBubbleStyle = bubbleStyle{
		fill:   color.RGBA{R: 15, G: 23, B: 42, A: 217},
		stroke: color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff},
		ink:    color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff},
		height: 20,
		lift:   10,
		padX:   6,
	}
	playerBubbleStyle = bubbleStyle{
		fill:   color.RGBA{R: 169, G: 14, B: 14, A: 230},
		stroke: color.RGBA{R: 169, G: 14, B: 14, A: 230},
		ink:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		height: 22,
		lift:   14,
		padX:   8,
	}
)

// bubbleFadeAt is the remaining ttl below which a bubble starts fading out.
const bubbleFadeAt = 0.3

// drawSpeechBubble renders body's bubble, if any, centred above it.
func (g *Game) drawSpeechBubble(screen *ebiten.Image, body BodyView, st bubbleStyle) {
	b := body.Bubble
	if b == nil || b.TTL <= 0 {
		return
	}
	alpha := float32(1)
	if b.TTL < bubbleFadeAt {
		alpha = float32(b.TTL / bubbleFadeAt)
	}

	textW := float32(font.MeasureString(bubbleFace, b.Text).Ceil())
	w := textW + st.padX*2
	sx, sy := g.arenaToScreen(body.Pos)
	top := sy - float32(body.Radius*g.scale) - st.height - st.lift
	left := sx - w/2

	vector.FillRect(screen, left, top, w, st.height, fade(st.fill, alpha), false)
	vector.StrokeRect(screen, left, top, w, st.height, 1.5, fade(st.stroke, alpha), false)
	// Connector toward the body.
	vector.StrokeLine(screen, sx, top+st.height, sx, top+st.height+st.lift/2, 1.5, fade(st.stroke, alpha), false)

	ascent := bubbleFace.Metrics().Ascent.Ceil()
	baseline := int(top) + (int(st.height)+ascent)/2 - 1
	text.Draw(screen, b.Text, bubbleFace, int(left+st.padX), baseline, fade(st.ink, alpha))
}

// fade returns c with its alpha scaled by alpha.
func fade(c color.RGBA, alpha float32) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * alpha)}
}

// Panel layout at 1x (drawn into hudBuf, then scaled).
const (
	panelLineH = 14
	panelPadX  = 6
	panelPadY  = 5
)

var (
	panelFill   = color.RGBA{R: 6, G: 10, B: 14, A: 215}
	panelStroke = color.RGBA{R: 70, G: 110, B: 140, A: 190}
)

// panelSize returns the unscaled pixel size of a text panel.
func panelSize(lines []string) (int, int) {
	maxW := 0
	for _, l := range lines {
		if w := font.MeasureString(bubbleFace, l).Ceil(); w > maxW {
			maxW = w
		}
	}
	return maxW + panelPadX*2, len(lines)*panelLineH + panelPadY*2
}

// drawPanel draws a boxed block of text lines with its top-left at (x, y).
func drawPanel(dst *ebiten.Image, x, y int, lines []string) {
	w, h := panelSize(lines)
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), panelFill, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, panelStroke, false)
	ascent := bubbleFace.Metrics().Ascent.Ceil()
	for i, line := range lines {
		text.Draw(dst, line, bubbleFace, x+panelPadX, y+panelPadY+i*panelLineH+ascent, color.White)
	}
}
