package game

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"pong/internal/pong"
)

func TestRasterizeTextSize(t *testing.T) {
	img := RasterizeText("You win!")
	assert.Equal(t, image.Pt(8*7, 13), img.Bounds().Size())

	lit := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			lit++
		}
	}
	assert.Positive(t, lit)
}

func TestRasterizeTextBlankIsTransparent(t *testing.T) {
	img := RasterizeText("   ")
	assert.Equal(t, 21, img.Bounds().Dx())
	for _, p := range img.Pix {
		assert.Zero(t, p)
	}
}

func TestTextRectCentresLine(t *testing.T) {
	line := pong.TextLine{Text: "PONG", Y: 216, Scale: 12}
	r := textRect(line, image.Pt(28, 13))

	assert.Equal(t, image.Rect(792, 216, 1128, 372), r)
	assert.Equal(t, pong.ScreenWidth-r.Max.X, r.Min.X)
}

func TestTextRectClampsScale(t *testing.T) {
	r := textRect(pong.TextLine{Y: 10}, image.Pt(70, 13))
	assert.Equal(t, image.Rect(925, 10, 995, 23), r)
}

func TestOverlayLinesFitField(t *testing.T) {
	s := pong.NewSession(pong.DefaultSettings(), nil)
	for _, line := range pong.Overlay(s) {
		r := textRect(line, RasterizeText(line.Text).Bounds().Size())
		assert.True(t, r.In(image.Rect(0, 0, pong.ScreenWidth, pong.ScreenHeight)), line.Text)
	}
}
