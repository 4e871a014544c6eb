package ui

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gomedium"

	"github.com/hailam/minichess/internal/obslog"
)

const defaultFontSize = 14.0

var (
	faceSource     *text.GoTextFaceSource
	faceSourceOnce sync.Once
)

// loadFaceSource parses the embedded Go Medium font once.
func loadFaceSource() *text.GoTextFaceSource {
	faceSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(gomedium.TTF))
		if err != nil {
			obslog.L().Error("load font", zap.Error(err))
			return
		}
		faceSource = src
	})
	return faceSource
}

// GetFaceWithSize returns a font face of the given pixel size, or nil if the
// font failed to load.
func GetFaceWithSize(size float64) *text.GoTextFace {
	src := loadFaceSource()
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// MeasureText returns the width and height of s.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
