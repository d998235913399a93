package result_card

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	watermarkLeft  = "Made with MZ Meme Cheat Key"
	watermarkRight = "🔥 no cap fr fr"
)

// Card renders a shareable result card. The markup is what the browser
// snapshots for "Copy as Image" and "Download PNG".
func Card(doc Document) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="result-card" id="result-card"><div class="result-body">`)
		for _, block := range doc.Blocks {
			writeBlock(&b, block)
		}
		b.WriteString(`</div><div class="watermark"><span class="watermark-left">`)
		b.WriteString(templ.EscapeString(watermarkLeft))
		b.WriteString(`</span><span class="watermark-right gradient-text">`)
		b.WriteString(templ.EscapeString(watermarkRight))
		b.WriteString(`</span></div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeBlock(b *strings.Builder, block Block) {
	switch block.Kind {
	case KindHeading:
		b.WriteString(`<h3 class="card-heading">`)
		b.WriteString(templ.EscapeString(block.Text))
		b.WriteString(`</h3>`)
	case KindListItem:
		b.WriteString(`<p class="card-list-item">`)
		b.WriteString(templ.EscapeString(block.Text))
		b.WriteString(`</p>`)
	case KindParagraph:
		b.WriteString(`<p class="card-paragraph">`)
		b.WriteString(templ.EscapeString(block.Text))
		b.WriteString(`</p>`)
	default:
		b.WriteString(`<div class="card-spacer"></div>`)
	}
}
