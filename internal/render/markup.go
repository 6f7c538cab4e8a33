package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Size scales for the editor's size classes
const (
	ScaleSmall = 0.75
	ScaleLarge = 1.5
	ScaleHuge  = 2.5
)

// Run is a piece of text with a uniform style. A Run with Break set is a forced
// line break and carries no text.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Scale  float64
	Break  bool
}

// Paragraph is a block of runs
type Paragraph struct {
	Runs []Run
}

// Empty reports whether the paragraph has no visible text
func (p Paragraph) Empty() bool {
	for _, r := range p.Runs {
		if strings.TrimSpace(r.Text) != "" {
			return false
		}
	}
	return true
}

type runStyle struct {
	tag    string
	bold   bool
	italic bool
	scale  float64
}

var blockTags = map[string]bool{
	"p": true, "div": true, "h1": true, "h2": true, "h3": true,
	"blockquote": true, "li": true, "pre": true,
}

// ParseMarkup splits editor markup into styled paragraphs. Raw newlines in text
// are treated as line breaks so plain text typed without tags keeps its lines.
func ParseMarkup(markup string) []Paragraph {
	z := html.NewTokenizer(strings.NewReader(markup))

	var (
		paragraphs []Paragraph
		cur        Paragraph
		open       bool
		stack      = []runStyle{{scale: 1}}
	)

	flush := func(force bool) {
		if open || force || len(cur.Runs) > 0 {
			paragraphs = append(paragraphs, cur)
		}
		cur = Paragraph{}
		open = false
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := z.Token()
		top := stack[len(stack)-1]

		switch tt {
		case html.TextToken:
			if !open && len(cur.Runs) == 0 && strings.TrimSpace(tok.Data) == "" {
				continue
			}
			lines := strings.Split(tok.Data, "\n")
			for i, text := range lines {
				if i > 0 {
					cur.Runs = append(cur.Runs, Run{Break: true})
				}
				if text == "" {
					continue
				}
				cur.Runs = append(cur.Runs, Run{
					Text:   text,
					Bold:   top.bold,
					Italic: top.italic,
					Scale:  top.scale,
				})
			}

		case html.SelfClosingTagToken:
			if tok.Data == "br" {
				cur.Runs = append(cur.Runs, Run{Break: true})
			}

		case html.StartTagToken:
			if tok.Data == "br" {
				cur.Runs = append(cur.Runs, Run{Break: true})
				continue
			}
			if blockTags[tok.Data] {
				if len(cur.Runs) > 0 {
					flush(false)
				}
				open = true
			}
			next := top
			next.tag = tok.Data
			switch tok.Data {
			case "strong", "b", "h1", "h2", "h3":
				next.bold = true
			case "em", "i":
				next.italic = true
			}
			if s := sizeScale(tok); s > 0 {
				next.scale = s
			}
			stack = append(stack, next)

		case html.EndTagToken:
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].tag == tok.Data {
					stack = stack[:i]
					break
				}
			}
			if blockTags[tok.Data] {
				flush(true)
			}
		}
	}
	if len(cur.Runs) > 0 {
		flush(false)
	}

	return trimBreaks(paragraphs)
}

// trimBreaks drops a lone trailing break in each paragraph; an editor line that
// holds only <br> is kept as an empty paragraph.
func trimBreaks(paragraphs []Paragraph) []Paragraph {
	for i, p := range paragraphs {
		if n := len(p.Runs); n > 0 && p.Runs[n-1].Break {
			paragraphs[i].Runs = p.Runs[:n-1]
		}
	}
	return paragraphs
}

func sizeScale(tok html.Token) float64 {
	for _, attr := range tok.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			switch class {
			case "ql-size-small":
				return ScaleSmall
			case "ql-size-large":
				return ScaleLarge
			case "ql-size-huge":
				return ScaleHuge
			}
		}
	}
	return 0
}
