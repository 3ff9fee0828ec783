package htmldoc

import (
	"fmt"
	"strconv"
	"strings"
)

// renderBlocks renders a block sequence to Markdown, separating blocks
// with blank lines.
func renderBlocks(blocks []Block) string {
	var parts []string
	for _, b := range blocks {
		if s := renderBlock(b); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func renderBlock(block Block) string {
	switch n := block.(type) {
	case *Root:
		return renderBlocks(n.Children)
	case *Heading:
		return strings.Repeat("#", n.Level) + " " + renderInlines(n.Content)
	case *Paragraph:
		return renderInlines(n)
	case *CodeBlock:
		return "```" + n.Lang + "\n" + strings.TrimSuffix(n.Code, "\n") + "\n```"
	case *List:
		return renderList(n)
	case *ListItem:
		return renderBlocks(n.Children)
	case *Blockquote:
		return prefixLines(renderBlocks(n.Children), "> ")
	case *Table:
		return renderTable(n)
	default: // *Break, *Unknown
		return ""
	}
}

func renderList(list *List) string {
	var lines []string
	num := 1
	for _, child := range list.Children {
		item, ok := child.(*ListItem)
		if !ok {
			if s := renderBlock(child); s != "" {
				lines = append(lines, s)
			}
			continue
		}

		marker := "- "
		if list.Ordered {
			marker = strconv.Itoa(num) + ". "
			num++
		}

		body := renderBlocks(item.Children)
		indent := strings.Repeat(" ", len(marker))
		for i, line := range strings.Split(body, "\n") {
			if i == 0 {
				lines = append(lines, marker+line)
			} else {
				lines = append(lines, indent+line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func renderTable(table *Table) string {
	if len(table.Rows) == 0 {
		return ""
	}

	var lines []string
	for i, row := range table.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, renderInlines(cell.Content))
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")

		// The first row doubles as the header.
		if i == 0 {
			seps := make([]string, len(row.Cells))
			for j := range seps {
				seps[j] = "---"
			}
			lines = append(lines, "| "+strings.Join(seps, " | ")+" |")
		}
	}
	return strings.Join(lines, "\n")
}

func renderInlines(p *Paragraph) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for _, child := range p.Children {
		switch n := child.(type) {
		case *Text:
			sb.WriteString(renderText(n))
		case *Image:
			sb.WriteString(renderImage(n))
		}
	}
	return sb.String()
}

// renderText applies the node's whole-span marks as Markdown delimiters.
// Marks covering only part of the span come from nested tags already
// represented by the span's own full-width mark and are not re-rendered.
func renderText(t *Text) string {
	out := t.Text
	if out == "" {
		return ""
	}

	var link *Mark
	for i := range t.Marks {
		m := t.Marks[i]
		if !m.Covers(len(t.Text)) {
			continue
		}
		switch m.Kind {
		case MarkCode:
			out = "`" + out + "`"
		case MarkStrikethrough:
			out = "~~" + out + "~~"
		case MarkBold:
			out = "**" + out + "**"
		case MarkItalic:
			out = "*" + out + "*"
		case MarkLink:
			link = &t.Marks[i]
		}
	}

	// Links wrap outermost.
	if link != nil {
		if link.Title != "" {
			out = fmt.Sprintf("[%s](%s %q)", out, link.URL, link.Title)
		} else {
			out = fmt.Sprintf("[%s](%s)", out, link.URL)
		}
	}
	return out
}

func renderImage(img *Image) string {
	if img.Title != "" {
		return fmt.Sprintf("![%s](%s %q)", img.Alt, img.URL, img.Title)
	}
	return fmt.Sprintf("![%s](%s)", img.Alt, img.URL)
}

func prefixLines(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = strings.TrimRight(prefix, " ")
		} else {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
