package view

import (
	"strings"

	"github.com/Iron-Ham/planner/internal/render"
	"github.com/Iron-Ham/planner/internal/tui/styles"
)

// RenderDocument styles rendered blocks for the terminal, wrapping text at
// width columns (0 = no wrapping).
func RenderDocument(blocks []render.Block, width int) string {
	st := styles.Active()
	lines := make([]string, 0, len(blocks))

	for _, b := range blocks {
		switch b.Kind {
		case render.KindSeparator:
			lines = append(lines, "")
		case render.KindHeading:
			style := st.Heading3
			switch b.Level {
			case 1:
				style = st.Heading1
			case 2:
				style = st.Heading2
			}
			lines = append(lines, wrap(style, width).Render(b.Text()))
		case render.KindBullet:
			lines = append(lines, wrap(st.Bullet, width).Render("• "+spans(b.Spans)))
		default:
			lines = append(lines, wrap(st.Paragraph, width).Render(spans(b.Spans)))
		}
	}
	return strings.Join(lines, "\n")
}

// spans renders inline spans, emphasizing strong ones.
func spans(ss []render.Span) string {
	st := styles.Active()
	var b strings.Builder
	for _, s := range ss {
		if s.Strong {
			b.WriteString(st.Strong.Render(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
