package htmldoc

import "strings"

// extractPreCode extracts code text and optional language from a <pre>
// element. It handles the patterns commonly produced by Discourse and
// other Markdown processors:
//
//   - <pre><code class="language-rust">code</code></pre>
//   - <pre><code class="lang-rust">code</code></pre>
//   - <pre><code>code</code></pre> (no language)
//   - <pre>code</pre> (no <code> wrapper)
func (b *builder) extractPreCode(id NodeID) (code, lang string, ok bool) {
	n := b.tree.Node(id)

	// Look for a <code> child element first.
	for _, child := range n.Children {
		c := b.tree.Node(child)
		if c.Kind != KindElement || c.Tag != "code" {
			continue
		}
		if text := b.collectText(child); text != "" {
			return text, codeLanguage(c), true
		}
	}

	// No <code> child (or it was empty): collect text directly from
	// the <pre> element, with no language.
	if text := b.collectText(id); text != "" {
		return text, "", true
	}
	return "", "", false
}

// codeLanguage derives a language identifier from a code element's class
// attribute, recognizing "language-*" and "lang-*" tokens. First match
// wins.
func codeLanguage(n *TreeNode) string {
	class, ok := n.Attr("class")
	if !ok {
		return ""
	}
	for _, cls := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(cls, "language-"); ok {
			return lang
		}
		if lang, ok := strings.CutPrefix(cls, "lang-"); ok {
			return lang
		}
	}
	return ""
}

// collectText concatenates all descendant text nodes in document order.
func (b *builder) collectText(id NodeID) string {
	var sb strings.Builder
	b.collectTextInto(id, &sb)
	return sb.String()
}

func (b *builder) collectTextInto(id NodeID, sb *strings.Builder) {
	n := b.tree.Node(id)
	if n.Kind == KindText {
		sb.WriteString(n.Text)
		return
	}
	for _, child := range n.Children {
		b.collectTextInto(child, sb)
	}
}
