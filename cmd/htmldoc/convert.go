package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/htmldoc"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	converter := deps.Converters[c.Engine]
	if converter == nil {
		return htmldoc.Errorf(htmldoc.EINVALID, "unknown engine %q", c.Engine)
	}

	var extractor htmldoc.Extractor
	if c.Extract != "none" {
		extractor = deps.Extractors[c.Extract]
		if extractor == nil {
			return htmldoc.Errorf(htmldoc.EINVALID, "unknown extractor %q", c.Extract)
		}
	}

	// No paths: filter stdin to stdout.
	if len(c.Paths) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		markdown, err := convertOne(string(src), extractor, converter)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}

	results := make([]string, len(c.Paths))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, path := range c.Paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			fingerprint := htmldoc.Fingerprint(string(src))

			// An up-to-date cache entry short-circuits the conversion.
			if c.Cache {
				entry, err := deps.Cache.FindEntryByPath(ctx, path)
				if err == nil && entry.Fingerprint == fingerprint {
					results[i] = entry.Markdown
					return nil
				}
				if err != nil && htmldoc.ErrorCode(err) != htmldoc.ENOTFOUND {
					return err
				}
			}

			markdown, err := convertOne(string(src), extractor, converter)
			if err != nil {
				return fmt.Errorf("converting %s: %w", path, err)
			}
			results[i] = markdown

			if c.Cache {
				entry := &htmldoc.CacheEntry{
					Path:        path,
					Fingerprint: fingerprint,
					Markdown:    markdown,
				}
				if err := deps.Cache.SaveEntry(ctx, entry); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range c.Paths {
		if c.Write {
			if err := os.WriteFile(markdownPath(path), []byte(results[i]+"\n"), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", markdownPath(path), err)
			}
			continue
		}
		if len(c.Paths) > 1 {
			fmt.Fprintf(deps.Stdout, "## File: %s\n\n", path)
		}
		fmt.Fprintln(deps.Stdout, results[i])
	}

	return nil
}

func convertOne(src string, extractor htmldoc.Extractor, converter htmldoc.Converter) (string, error) {
	if extractor != nil {
		result, err := extractor.Extract(src)
		if err != nil {
			return "", err
		}
		src = result.ContentHTML
	}
	return converter.Convert(src)
}

// markdownPath maps an input path to its sibling Markdown output path.
func markdownPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".md"
}
