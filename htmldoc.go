// Package htmldoc converts HTML fragments into a structured, semantic
// document model (a tree of block-level and inline nodes) suitable for
// layout-independent rendering and round-tripping to Markdown. It targets
// the irregular markup commonly emitted by forum and CMS software rather
// than strictly valid documents.
//
// This package contains the domain types and the pure parsing logic
// following Ben Johnson's Standard Package Layout. Implementations of the
// consumed capabilities live in subdirectories named after their primary
// dependency (e.g., html/, minify/, goquery/, sqlite/).
package htmldoc
