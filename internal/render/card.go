package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ytget/muse/internal/fontfit"
	"github.com/ytget/muse/internal/model"
)

// ErrInvalidScale is returned for a non-positive pixel ratio
var ErrInvalidScale = errors.New("scale must be positive")

// Card geometry in logical pixels (scale 1)
const (
	CardWidth       = 672
	SheetMargin     = 16
	HeaderHeight    = 40
	FooterHeight    = 72
	QuoteSize       = CardWidth - 2*SheetMargin
	CardHeight      = 2*SheetMargin + HeaderHeight + QuoteSize + FooterHeight
	QuotePadding    = 24
	TextWidthRatio  = 0.8
	TickLength      = 24
	TickInset       = 36
	HeaderTextPx    = 9
	ImprintTextPx   = 9
	SignatureTextPx = 8
)

// Fixed card chrome text
const (
	Placeholder = "Escribe tus pensamientos..."
	ArchiveName = "Archive of the Self"
	Signature   = "durrani.hw"
)

// Sheet palette
var (
	FallbackBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	SheetColor         = color.NRGBA{R: 0xff, G: 0xf7, B: 0xed, A: 0xff}
	SheetBorder        = color.NRGBA{R: 0xe3, G: 0xd2, B: 0xbf, A: 0xff}
	PanelColor         = color.NRGBA{R: 0xff, G: 0xfd, B: 0xf8, A: 0xff}
	PanelBorder        = color.NRGBA{R: 0xec, G: 0xd7, B: 0xc4, A: 0xb3}
	HeaderInk          = color.NRGBA{R: 0xa3, G: 0x77, B: 0x54, A: 0xff}
	HeaderDot          = color.NRGBA{R: 0xd8, G: 0x8a, B: 0x4a, A: 0xff}
	FooterColor        = color.NRGBA{R: 0xff, G: 0xf8, B: 0xef, A: 0xcc}
	FooterRule         = color.NRGBA{R: 0xe8, G: 0xd3, B: 0xc0, A: 0xcc}
	OrnamentInk        = color.NRGBA{R: 0xb3, G: 0x77, B: 0x4c, A: 0xb3}
	ImprintInk         = color.NRGBA{R: 0x74, G: 0x41, B: 0x2a, A: 0xff}
	SignatureInk       = color.NRGBA{R: 0x9b, G: 0x67, B: 0x45, A: 0xff}
)

// CardRenderer produces card images
type CardRenderer interface {
	Render(ctx context.Context, content string, preset model.Preset, scale float64) (image.Image, error)
}

// Renderer draws cards with a FontSet
type Renderer struct {
	fonts *FontSet
	upper cases.Caser
}

// NewRenderer creates a renderer using fonts
func NewRenderer(fonts *FontSet) *Renderer {
	return &Renderer{
		fonts: fonts,
		upper: cases.Upper(language.Und),
	}
}

// Size returns the pixel size of a card rendered at scale
func Size(scale float64) image.Point {
	return image.Pt(px(CardWidth, scale), px(CardHeight, scale))
}

// Render waits for fonts and draws content styled by preset at the given pixel
// ratio. Cancellation is only honoured while waiting for fonts.
func (r *Renderer) Render(ctx context.Context, content string, preset model.Preset, scale float64) (image.Image, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ErrInvalidScale
	}
	if err := r.fonts.Ready(ctx); err != nil {
		return nil, fmt.Errorf("fonts not ready: %w", err)
	}

	size := Size(scale)
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	fill(img, img.Bounds(), FallbackBackground)

	faces := newFaceCache(r.fonts)
	defer faces.close()

	c := &canvas{img: img, scale: scale}
	c.drawSheet()
	if err := r.drawHeader(c, faces, preset); err != nil {
		return nil, err
	}
	quote := c.rect(SheetMargin, SheetMargin+HeaderHeight, SheetMargin+QuoteSize, SheetMargin+HeaderHeight+QuoteSize)
	c.drawQuoteFrame(quote, preset)
	if err := r.drawText(c, faces, quote, content, preset); err != nil {
		return nil, err
	}
	if err := r.drawFooter(c, faces); err != nil {
		return nil, err
	}

	return img, nil
}

func (r *Renderer) drawHeader(c *canvas, faces *faceCache, preset model.Preset) error {
	face, err := faces.face(model.FontSerif, false, false, HeaderTextPx*c.scale)
	if err != nil {
		return err
	}
	tracking := fixed.Int26_6(0.28 * HeaderTextPx * c.scale * 64)
	baseline := fixed.I(px(SheetMargin+HeaderHeight/2+HeaderTextPx/2-1, c.scale))

	// dot and name on the left
	dotX := SheetMargin + 24.0
	c.fillRect(dotX, SheetMargin+HeaderHeight/2-3, dotX+6, SheetMargin+HeaderHeight/2+3, HeaderDot)
	left := r.upper.String(ArchiveName)
	drawTracked(c.img, face, HeaderInk, left, fixed.Point26_6{X: fixed.I(px(dotX+14, c.scale)), Y: baseline}, tracking)

	// folio id on the right, slightly faded
	right := r.upper.String("Folio – " + preset.ID)
	w := trackedWidth(face, right, tracking)
	x := fixed.I(px(CardWidth-SheetMargin-24, c.scale)) - w
	faded := HeaderInk
	faded.A = 0xb3
	drawTracked(c.img, face, faded, right, fixed.Point26_6{X: x, Y: baseline}, tracking)
	return nil
}

func (r *Renderer) drawText(c *canvas, faces *faceCache, quote image.Rectangle, content string, preset model.Preset) error {
	basePx := fontfit.TierFor(content).PixelSize() * c.scale

	markup := content
	if fontfit.PlainLength(content) == 0 {
		markup = Placeholder
	}

	ts := &typesetter{
		faces:    faces,
		family:   preset.Font,
		basePx:   basePx,
		maxWidth: fixed.I(int(float64(quote.Dx()) * TextWidthRatio)),
	}
	lines, err := ts.wrap(ParseMarkup(markup))
	if err != nil {
		return err
	}

	inner := quote.Inset(px(QuotePadding, c.scale))
	top := float64(inner.Min.Y) + (float64(inner.Dy())-blockHeight(lines, basePx))/2
	if top < float64(inner.Min.Y) {
		top = float64(inner.Min.Y)
	}

	// text is clipped to the quote area like an overflowing box
	clip := c.img.SubImage(inner).(*image.RGBA)
	drawLines(clip, lines, inner, top, basePx, preset.TextColor())
	return nil
}

func (r *Renderer) drawFooter(c *canvas, faces *faceCache) error {
	top := float64(SheetMargin + HeaderHeight + QuoteSize)
	bottom := top + FooterHeight
	c.fillRect(SheetMargin, top, CardWidth-SheetMargin, bottom, FooterColor)
	c.fillRect(SheetMargin, top, CardWidth-SheetMargin, top+1, FooterRule)

	// ornament: rule, diamond, rule
	mid := CardWidth / 2.0
	oy := top + 16
	c.fillRect(mid-44, oy, mid-12, oy+1, OrnamentInk)
	c.fillRect(mid+12, oy, mid+44, oy+1, OrnamentInk)
	c.drawDiamond(mid, oy, 5, OrnamentInk)

	imprint, err := faces.face(model.FontSerif, false, false, ImprintTextPx*c.scale)
	if err != nil {
		return err
	}
	c.centredTracked(imprint, ImprintInk, r.upper.String(ArchiveName), top+38, 0.32*ImprintTextPx)

	sig, err := faces.face(model.FontSerif, false, true, SignatureTextPx*c.scale)
	if err != nil {
		return err
	}
	c.centredTracked(sig, SignatureInk, Signature, top+56, 0.26*SignatureTextPx)
	return nil
}

// canvas converts logical coordinates to pixels
type canvas struct {
	img   *image.RGBA
	scale float64
}

func px(v, scale float64) int {
	return int(math.Round(v * scale))
}

func (c *canvas) rect(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(px(x0, c.scale), px(y0, c.scale), px(x1, c.scale), px(y1, c.scale))
}

func (c *canvas) fillRect(x0, y0, x1, y1 float64, col color.Color) {
	fill(c.img, c.rect(x0, y0, x1, y1), col)
}

// strokeRect draws an outline of thickness t inside r
func (c *canvas) strokeRect(r image.Rectangle, t float64, col color.Color) {
	w := px(t, c.scale)
	if w < 1 {
		w = 1
	}
	fill(c.img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), col)
	fill(c.img, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), col)
	fill(c.img, image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), col)
	fill(c.img, image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), col)
}

func (c *canvas) drawSheet() {
	sheet := c.img.Bounds()
	fill(c.img, sheet, SheetColor)
	c.strokeRect(sheet, 1, SheetBorder)

	panel := c.rect(SheetMargin-4, SheetMargin-4, CardWidth-SheetMargin+4, CardHeight-SheetMargin+4)
	fill(c.img, panel, PanelColor)
	c.strokeRect(panel, 1, PanelBorder)

	// notebook margin line
	c.fillRect(SheetMargin+16, SheetMargin, SheetMargin+17, CardHeight-SheetMargin, color.NRGBA{R: 0xe5, G: 0xc1, B: 0xa2, A: 0x80})
}

func (c *canvas) drawQuoteFrame(quote image.Rectangle, preset model.Preset) {
	fill(c.img, quote, preset.BackgroundColor())

	accent := preset.AccentColor()
	frame := accent
	frame.A = 0x40
	c.strokeRect(quote.Inset(px(QuotePadding, c.scale)), 1, frame)

	tick := accent
	tick.A = 0x66
	x0 := float64(quote.Min.X)/c.scale + TickInset
	y0 := float64(quote.Min.Y)/c.scale + TickInset
	x1 := float64(quote.Max.X)/c.scale - TickInset
	y1 := float64(quote.Max.Y)/c.scale - TickInset

	c.fillRect(x0, y0, x0+TickLength, y0+1.5, tick)
	c.fillRect(x0, y0+1.5, x0+1.5, y0+TickLength, tick)
	c.fillRect(x1-TickLength, y1-1.5, x1, y1, tick)
	c.fillRect(x1-1.5, y1-TickLength, x1, y1-1.5, tick)
}

// drawDiamond outlines a square rotated by 45 degrees centred on (cx, cy)
func (c *canvas) drawDiamond(cx, cy, radius float64, col color.Color) {
	r := radius * c.scale
	x0, y0 := cx*c.scale, cy*c.scale
	t := math.Max(1, c.scale)
	for y := -r; y <= r; y++ {
		half := r - math.Abs(y)
		for _, x := range []float64{-half, half - t + 1} {
			rect := image.Rect(int(x0+x), int(y0+y), int(x0+x+t), int(y0+y+1))
			fill(c.img, rect, col)
		}
	}
}

func (c *canvas) centredTracked(face font.Face, ink color.Color, s string, baselineY, tracking float64) {
	tr := fixed.Int26_6(tracking * c.scale * 64)
	w := trackedWidth(face, s, tr)
	x := (fixed.I(c.img.Bounds().Dx()) - w) / 2
	drawTracked(c.img, face, ink, s, fixed.Point26_6{X: x, Y: fixed.I(px(baselineY, c.scale))}, tr)
}

func fill(dst draw.Image, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Over)
}
