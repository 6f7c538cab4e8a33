package render

import (
	"image"
	"image/color"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ytget/muse/internal/model"
)

// LineHeight is the line spacing relative to the text size
const LineHeight = 1.625

var wordsAndSpaces = regexp.MustCompile(`\S+|\s+`)

type segment struct {
	text  string
	face  font.Face
	width fixed.Int26_6
	space bool
}

type textLine struct {
	segs   []segment
	width  fixed.Int26_6
	px     float64 // largest text size on the line
	ascent fixed.Int26_6
	height fixed.Int26_6
}

func (l *textLine) add(seg segment, px float64) {
	l.segs = append(l.segs, seg)
	l.width += seg.width
	if px > l.px {
		l.px = px
		m := seg.face.Metrics()
		l.ascent = m.Ascent
		l.height = m.Ascent + m.Descent
	}
}

func (l *textLine) trimTrailingSpace() {
	for len(l.segs) > 0 && l.segs[len(l.segs)-1].space {
		l.width -= l.segs[len(l.segs)-1].width
		l.segs = l.segs[:len(l.segs)-1]
	}
}

// advance is the vertical room the line takes, in pixels
func (l *textLine) advance(basePx float64) float64 {
	px := l.px
	if px == 0 {
		px = basePx
	}
	return px * LineHeight
}

// typesetter wraps paragraphs into lines no wider than maxWidth
type typesetter struct {
	faces    *faceCache
	family   model.FontFamily
	basePx   float64
	maxWidth fixed.Int26_6
}

func (ts *typesetter) wrap(paragraphs []Paragraph) ([]textLine, error) {
	var lines []textLine

	for _, p := range paragraphs {
		var cur textLine
		emitted := false

		flush := func() {
			cur.trimTrailingSpace()
			lines = append(lines, cur)
			cur = textLine{}
			emitted = true
		}

		for _, run := range p.Runs {
			if run.Break {
				flush()
				continue
			}

			px := ts.basePx * run.Scale
			if run.Scale == 0 {
				px = ts.basePx
			}
			face, err := ts.faces.face(ts.family, run.Bold, run.Italic, px)
			if err != nil {
				return nil, err
			}

			for _, tok := range wordsAndSpaces.FindAllString(run.Text, -1) {
				if strings.TrimSpace(tok) == "" {
					if len(cur.segs) == 0 {
						continue
					}
					cur.add(segment{text: " ", face: face, width: font.MeasureString(face, " "), space: true}, px)
					continue
				}

				w := font.MeasureString(face, tok)
				if len(cur.segs) > 0 && cur.width+w > ts.maxWidth {
					flush()
				}
				if w <= ts.maxWidth {
					cur.add(segment{text: tok, face: face, width: w}, px)
					continue
				}

				// a single word wider than the line is broken between characters
				for _, piece := range ts.split(face, tok, ts.maxWidth-cur.width) {
					pw := font.MeasureString(face, piece)
					if len(cur.segs) > 0 && cur.width+pw > ts.maxWidth {
						flush()
					}
					cur.add(segment{text: piece, face: face, width: pw}, px)
				}
			}
		}

		if len(cur.segs) > 0 || !emitted {
			flush()
		}
	}

	return lines, nil
}

// split breaks word into pieces; the first fits in first, the rest in maxWidth
func (ts *typesetter) split(face font.Face, word string, first fixed.Int26_6) []string {
	var pieces []string
	limit := first
	if limit <= 0 {
		limit = ts.maxWidth
	}

	start := 0
	var width fixed.Int26_6
	for i, r := range word {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			adv, _ = face.GlyphAdvance('?')
		}
		if width+adv > limit && i > start {
			pieces = append(pieces, word[start:i])
			start = i
			width = 0
			limit = ts.maxWidth
		}
		width += adv
	}
	if start < len(word) {
		pieces = append(pieces, word[start:])
	}
	return pieces
}

// blockHeight returns the total height of lines in pixels
func blockHeight(lines []textLine, basePx float64) float64 {
	total := 0.0
	for i := range lines {
		total += lines[i].advance(basePx)
	}
	return total
}

// drawLines draws lines centred horizontally in area, starting at top
func drawLines(dst *image.RGBA, lines []textLine, area image.Rectangle, top, basePx float64, ink color.Color) {
	src := image.NewUniform(ink)
	y := top
	for i := range lines {
		l := &lines[i]
		adv := l.advance(basePx)
		if len(l.segs) > 0 {
			pad := (fixed.I(int(adv)) - l.height) / 2
			baseline := fixed.I(int(y)) + pad + l.ascent
			x := fixed.I(area.Min.X) + (fixed.I(area.Dx())-l.width)/2

			d := &font.Drawer{Dst: dst, Src: src}
			for _, seg := range l.segs {
				d.Face = seg.face
				d.Dot = fixed.Point26_6{X: x, Y: baseline}
				d.DrawString(seg.text)
				x += seg.width
			}
		}
		y += adv
	}
}

// trackedWidth measures s drawn with extra spacing between characters
func trackedWidth(face font.Face, s string, tracking fixed.Int26_6) fixed.Int26_6 {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	return font.MeasureString(face, s) + tracking*fixed.Int26_6(n-1)
}

// drawTracked draws s starting at dot with extra spacing between characters
func drawTracked(dst *image.RGBA, face font.Face, ink color.Color, s string, dot fixed.Point26_6, tracking fixed.Int26_6) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(ink), Face: face, Dot: dot}
	for _, r := range s {
		d.DrawString(string(r))
		d.Dot.X += tracking
	}
}
