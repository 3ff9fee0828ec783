package htmldoc

import (
	"strconv"
	"strings"
)

// styleMap parses the node's inline style attribute into a declaration
// map. Keys are lower-cased and trimmed, values trimmed; declarations
// without a colon are skipped.
func styleMap(n *TreeNode) map[string]string {
	styles := map[string]string{}
	css, ok := n.Attr("style")
	if !ok {
		return styles
	}

	for _, decl := range strings.Split(css, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		styles[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}

	return styles
}

// ParseLength parses a CSS-like dimension value. A trailing percent sign
// yields a relative fraction (value/100); otherwise an optional trailing
// "px" is stripped and the value is read as absolute pixels. Unparseable
// text yields ok=false, never an error.
func ParseLength(value string) (Length, bool) {
	if strings.HasSuffix(value, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return Length{}, false
		}
		return Rel(v / 100), true
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64)
	if err != nil {
		return Length{}, false
	}
	return Px(v), true
}

// widthHeight resolves the node's width and height. Explicit attributes
// win; style declarations are consulted only for the dimension whose
// attribute is absent.
func widthHeight(n *TreeNode) (width, height *Length) {
	if value, ok := n.Attr("width"); ok {
		if l, ok := ParseLength(value); ok {
			width = &l
		}
	}
	if value, ok := n.Attr("height"); ok {
		if l, ok := ParseLength(value); ok {
			height = &l
		}
	}

	if width == nil || height == nil {
		styles := styleMap(n)
		if width == nil {
			if value, ok := styles["width"]; ok {
				if l, ok := ParseLength(value); ok {
					width = &l
				}
			}
		}
		if height == nil {
			if value, ok := styles["height"]; ok {
				if l, ok := ParseLength(value); ok {
					height = &l
				}
			}
		}
	}

	return width, height
}

// isEmojiClass reports whether the node's class attribute contains an
// emoji marker token. Discourse marks emoji images with class="emoji" or
// class="emoji-only".
func isEmojiClass(n *TreeNode) bool {
	class, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, cls := range strings.Fields(class) {
		if cls == "emoji" || cls == "emoji-only" {
			return true
		}
	}
	return false
}
