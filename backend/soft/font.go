// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggres/render"
)

// CaptionSize is the point size of cell captions.
const CaptionSize = 12

// Font is a rasterizing face built from a typeface.
type Font struct {
	backend *Backend
	family  string
	face    font.Face
}

func newFont(tf render.Typeface) (*Font, error) {
	if tf == nil {
		return nil, fmt.Errorf("soft: nil typeface")
	}
	sf, err := opentype.Parse(tf.Data())
	if err != nil {
		return nil, fmt.Errorf("soft: parse font %q: %w", tf.Family(), err)
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    CaptionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("soft: font face %q: %w", tf.Family(), err)
	}
	return &Font{family: tf.Family(), face: face}, nil
}

func (f *Font) Family() string { return f.family }

// Face returns the rasterizing face. It is nil after Destroy.
func (f *Font) Face() font.Face { return f.face }

// Destroy closes the face. Captions fall back to the built-in bitmap face.
func (f *Font) Destroy() {
	if f.face != nil {
		_ = f.face.Close()
		f.face = nil
	}
	if f.backend != nil && f.backend.font == f {
		f.backend.font = nil
	}
}

// captionFace returns the active font face or the built-in 7x13 face.
func (b *Backend) captionFace() font.Face {
	if b.font != nil && b.font.face != nil {
		return b.font.face
	}
	return basicfont.Face7x13
}

// drawCaption writes text in the top-left corner of rect.
func (b *Backend) drawCaption(dst *image.RGBA, rect image.Rectangle, text string) {
	if text == "" {
		return
	}
	face := b.captionFace()
	d := &font.Drawer{
		Dst:  dst.SubImage(rect).(*image.RGBA),
		Src:  image.NewUniform(color.RGBA{40, 40, 40, 255}),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(rect.Min.X + 4),
			Y: fixed.I(rect.Min.Y+2) + face.Metrics().Ascent,
		},
	}
	if d.MeasureString(text).Ceil() > rect.Dx()-8 {
		b.log.Debug("soft: caption clipped", "text", text, "width", rect.Dx())
	}
	d.DrawString(text)
}

var _ render.Font = (*Font)(nil)
