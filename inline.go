package htmldoc

// buildInline recursively walks an element subtree accumulating plain text
// and whole-span style marks, mutating paragraph as a side effect. It also
// returns the accumulated text and marks so the immediate caller can
// splice them at the correct byte offsets of its own frame.
func (b *builder) buildInline(id NodeID, paragraph *Paragraph, depth int) (string, []Mark, error) {
	if depth > b.maxDepth {
		return "", nil, Errorf(EUNPROCESSABLE, "document nesting exceeds %d levels", b.maxDepth)
	}

	n := b.tree.Node(id)

	if n.Kind == KindText {
		paragraph.PushText(n.Text)
		return n.Text, nil, nil
	}

	if n.Kind == KindElement {
		switch n.Tag {
		case "em", "i":
			return b.inlineStyled(id, paragraph, depth, Mark{Kind: MarkItalic})
		case "strong", "b":
			return b.inlineStyled(id, paragraph, depth, Mark{Kind: MarkBold})
		case "del", "s":
			return b.inlineStyled(id, paragraph, depth, Mark{Kind: MarkStrikethrough})
		case "code":
			return b.inlineStyled(id, paragraph, depth, Mark{Kind: MarkCode})
		case "a":
			href, _ := n.Attr("href")
			title, _ := n.Attr("title")
			return b.inlineStyled(id, paragraph, depth, Mark{Kind: MarkLink, URL: href, Title: title})

		case "img":
			src, ok := n.Attr("src")
			if !ok {
				b.debugf("image node missing src attribute")
				return "", nil, nil
			}
			alt, _ := n.Attr("alt")
			title, _ := n.Attr("title")
			width, height := widthHeight(n)
			paragraph.PushImage(Image{
				URL:      src,
				Alt:      alt,
				Title:    title,
				Width:    width,
				Height:   height,
				IsInline: isEmojiClass(n),
			})
			return "", nil, nil
		}
	}

	// Unknown tags and the document root are transparent for inline
	// purposes: splice the children's text and marks without adding a
	// mark of this frame's own.
	text, marks, err := b.inlineChildren(id, depth)
	if err != nil {
		return "", nil, err
	}
	if text != "" {
		paragraph.Push(&Text{Text: text, Marks: marks})
	}
	return text, marks, nil
}

// inlineStyled accumulates the node's children into one concatenated span
// and wraps the entire span with the given mark. Marks are span-granular,
// not per-child.
func (b *builder) inlineStyled(id NodeID, paragraph *Paragraph, depth int, mark Mark) (string, []Mark, error) {
	text, marks, err := b.inlineChildren(id, depth)
	if err != nil {
		return "", nil, err
	}

	mark.Start = 0
	mark.End = len(text)
	marks = append(marks, mark)
	if text != "" {
		paragraph.Push(&Text{Text: text, Marks: marks})
	}
	return text, marks, nil
}

// inlineChildren concatenates the inline content of the node's children,
// shifting each child's mark ranges by the accumulated length so ranges
// always index into the concatenated string of this call frame. The
// children run against a discarded local accumulator; only the combined
// span reaches the real paragraph, pushed by the caller.
func (b *builder) inlineChildren(id NodeID, depth int) (string, []Mark, error) {
	n := b.tree.Node(id)

	var childParagraph Paragraph
	var text string
	var marks []Mark
	for _, child := range n.Children {
		childText, childMarks, err := b.buildInline(child, &childParagraph, depth+1)
		if err != nil {
			return "", nil, err
		}
		offset := len(text)
		text += childText
		for _, m := range childMarks {
			m.Start += offset
			m.End += offset
			marks = append(marks, m)
		}
	}

	return text, marks, nil
}
