package htmldoc

// ExtractResult holds the content fragment extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor isolates the main content fragment of a full HTML page
// (a forum post body, an article) so the parser works on the fragment
// rather than the surrounding chrome.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The content HTML has boilerplate removed but preserves structure.
	Extract(html string) (*ExtractResult, error)
}
