package htmldoc

// Paragraph is an ordered sequence of inline nodes. During parsing it
// doubles as the mutable accumulator threaded through the recursive walk;
// Take drains it at block boundaries. An empty paragraph is never emitted
// as a block.
type Paragraph struct {
	Children []Inline
}

// PushText appends plain, unmarked text. Consecutive unmarked runs are
// coalesced into one Text node.
func (p *Paragraph) PushText(s string) {
	if s == "" {
		return
	}
	if n := len(p.Children); n > 0 {
		if t, ok := p.Children[n-1].(*Text); ok && len(t.Marks) == 0 {
			t.Text += s
			return
		}
	}
	p.Children = append(p.Children, &Text{Text: s})
}

// Push appends an inline node as-is.
func (p *Paragraph) Push(n Inline) {
	p.Children = append(p.Children, n)
}

// PushImage appends an image node.
func (p *Paragraph) PushImage(img Image) {
	p.Children = append(p.Children, &img)
}

// Take drains the paragraph, returning its current content and resetting
// the receiver to empty.
func (p *Paragraph) Take() *Paragraph {
	out := &Paragraph{Children: p.Children}
	p.Children = nil
	return out
}

// Merge appends another paragraph's children.
func (p *Paragraph) Merge(other *Paragraph) {
	p.Children = append(p.Children, other.Children...)
}

// IsEmpty reports whether the paragraph holds no inline nodes.
func (p *Paragraph) IsEmpty() bool {
	return len(p.Children) == 0
}

// TextLen returns the total byte length of the paragraph's text runs.
// Images contribute nothing.
func (p *Paragraph) TextLen() int {
	n := 0
	for _, c := range p.Children {
		if t, ok := c.(*Text); ok {
			n += len(t.Text)
		}
	}
	return n
}

// IsImage reports whether the paragraph consists entirely of images.
func (p *Paragraph) IsImage() bool {
	if len(p.Children) == 0 {
		return false
	}
	for _, c := range p.Children {
		if _, ok := c.(*Image); !ok {
			return false
		}
	}
	return true
}

// Text returns the concatenated plain text of the paragraph. Inline
// images contribute their alt text (emoji shortcodes).
func (p *Paragraph) Text() string {
	var out string
	for _, c := range p.Children {
		switch n := c.(type) {
		case *Text:
			out += n.Text
		case *Image:
			out += n.Alt
		}
	}
	return out
}
