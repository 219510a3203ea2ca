// Package typeface resolves and parses the session font.
//
// A Typeface is parsed twice: golang.org/x/image/font/sfnt provides naming
// and rasterization data, and go-text/typesetting provides glyph coverage
// and metrics. Both parsers must accept the data for it to be usable.
package typeface

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptyFontData is returned when font data is empty.
var ErrEmptyFontData = errors.New("typeface: empty font data")

// DefaultFamily is the family name reported by Default.
const DefaultFamily = "Go"

// Typeface is a parsed TrueType or OpenType font.
// Typeface is immutable and safe for concurrent use.
type Typeface struct {
	family string
	data   []byte
	sfnt   *opentype.Font
	face   *font.Face
}

// Parse parses TTF/OTF data. The data slice is copied.
func Parse(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	sf, err := opentype.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font: %w", err)
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to parse font tables: %w", err)
	}

	t := &Typeface{
		data: buf,
		sfnt: sf,
		face: font.NewFace(goTextFace.Font),
	}
	if name, err := sf.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		t.family = name
	}
	return t, nil
}

// Load reads and parses a font file.
func Load(path string) (*Typeface, error) {
	// #nosec G304 -- font path comes from the caller's configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeface: failed to read font file: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded Go Regular typeface. It is the platform
// independent replacement for a system font lookup.
func Default() (*Typeface, error) {
	t, err := Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	if t.family == "" {
		t.family = DefaultFamily
	}
	return t, nil
}

// Family returns the font family name, or "" if the font has none.
func (t *Typeface) Family() string { return t.family }

// Data returns the raw font bytes. Callers must not modify them.
func (t *Typeface) Data() []byte { return t.data }

// SFNT returns the x/image parsed font used for rasterization.
func (t *Typeface) SFNT() *opentype.Font { return t.sfnt }

// NumGlyphs returns the number of glyphs in the font.
func (t *Typeface) NumGlyphs() int { return t.sfnt.NumGlyphs() }

// UnitsPerEm returns the design units per em square.
func (t *Typeface) UnitsPerEm() int { return int(t.face.Upem()) }

// HasGlyph reports whether the font maps r to a glyph.
func (t *Typeface) HasGlyph(r rune) bool {
	_, ok := t.face.NominalGlyph(r)
	return ok
}

// Covers reports whether every rune of s has a glyph. s is compared in NFC
// form, so a decomposed "e\u0301" is covered by a font with a glyph for "é".
func (t *Typeface) Covers(s string) bool {
	for _, r := range norm.NFC.String(s) {
		if !t.HasGlyph(r) {
			return false
		}
	}
	return true
}
