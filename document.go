package htmldoc

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Document is the result of one parse: the original source text verbatim
// alongside the resulting top-level blocks. Immutable once returned.
type Document struct {
	Source string
	Blocks []Block
}

// Markdown renders the document model to Markdown.
func (d *Document) Markdown() string {
	return renderBlocks(d.Blocks)
}

// Fingerprint computes a stable hex fingerprint of content, used for
// change detection by the conversion cache.
func Fingerprint(content string) string {
	h := xxhash.Sum64String(content)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h)
	return hex.EncodeToString(b[:])
}
