package main

import (
	"context"
	"io"

	"github.com/fwojciec/htmldoc"
	"github.com/fwojciec/htmldoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Parser     *htmldoc.Parser
	Converters map[string]htmldoc.Converter
	Extractors map[string]htmldoc.Extractor
	DB         *sqlite.DB
	Cache      htmldoc.CacheService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Convert  ConvertCmd  `cmd:"" help:"Convert HTML files to Markdown"`
	Inspect  InspectCmd  `cmd:"" help:"Print the parsed block tree of an HTML file"`
	Sections SectionsCmd `cmd:"" help:"Print the heading outline of an HTML file"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Paths       []string `arg:"" optional:"" help:"HTML files to convert (reads stdin when omitted)"`
	Engine      string   `default:"native" enum:"native,commonmark" help:"Conversion engine"`
	Extract     string   `default:"none" enum:"none,goquery,trafilatura,readability" help:"Content extraction pre-pass"`
	Write       bool     `short:"w" help:"Write Markdown next to each input instead of stdout"`
	Cache       bool     `help:"Skip unchanged files using the conversion cache"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file limit"`
	Theme       string   `help:"Highlight theme tag recorded on code blocks"`
	Verbose     bool     `short:"v" help:"Log conversion steps to stderr"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Path string `arg:"" optional:"" help:"HTML file to inspect (reads stdin when omitted)"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Path string `arg:"" optional:"" help:"HTML file to outline (reads stdin when omitted)"`
}
