package htmldoc

import (
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in a parsed document.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// ExtractSections walks the document's blocks and returns all headings
// (H1-H6) in document order. It generates URL-safe anchors and handles
// duplicates with numeric suffixes.
func ExtractSections(doc *Document) []Section {
	if doc == nil {
		return nil
	}

	var headings []*Heading
	for _, b := range doc.Blocks {
		collectHeadings(b, &headings)
	}
	if len(headings) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(headings))
	anchorCounts := make(map[string]int)

	for _, h := range headings {
		title := strings.TrimSpace(h.Content.Text())
		baseAnchor := generateAnchor(title)

		// Handle duplicates
		anchor := baseAnchor
		if count, exists := anchorCounts[baseAnchor]; exists {
			anchor = baseAnchor + "-" + strconv.Itoa(count)
			anchorCounts[baseAnchor]++
		} else {
			anchorCounts[baseAnchor] = 1
		}

		sections = append(sections, Section{
			Level:  h.Level,
			Title:  title,
			Anchor: anchor,
		})
	}

	return sections
}

// collectHeadings gathers headings depth-first across container blocks.
// Code blocks cannot contain headings, so nothing is skipped explicitly.
func collectHeadings(block Block, out *[]*Heading) {
	switch n := block.(type) {
	case *Heading:
		*out = append(*out, n)
	case *Root:
		for _, c := range n.Children {
			collectHeadings(c, out)
		}
	case *List:
		for _, c := range n.Children {
			collectHeadings(c, out)
		}
	case *ListItem:
		for _, c := range n.Children {
			collectHeadings(c, out)
		}
	case *Blockquote:
		for _, c := range n.Children {
			collectHeadings(c, out)
		}
	}
}

// generateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func generateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := sb.String()
	// Trim trailing hyphen
	return strings.TrimSuffix(result, "-")
}
