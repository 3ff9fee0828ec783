package main

import (
	"fmt"

	"github.com/fwojciec/htmldoc"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	src, err := readInput(c.Path)
	if err != nil {
		return err
	}

	doc, err := deps.Parser.Parse(src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmldoc.ErrorMessage(err))
		return err
	}

	sections := htmldoc.ExtractSections(doc)
	if len(sections) == 0 {
		fmt.Fprintln(deps.Stdout, "No headings found.")
		return nil
	}

	for _, s := range sections {
		fmt.Fprintf(deps.Stdout, "%d  %s  #%s\n", s.Level, s.Title, s.Anchor)
	}
	return nil
}
