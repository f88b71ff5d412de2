package main

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Release is one version section of the changelog.
type Release struct {
	Version string
	Date    string
	Notes   string
}

// Released reports whether the section is a published version rather
// than the Unreleased accumulator.
func (r *Release) Released() bool {
	return !strings.EqualFold(r.Version, "unreleased")
}

// History is a parsed Keep a Changelog file.
type History struct {
	Releases []Release
	Links    map[string]string
}

// Release finds a version section, tolerating a leading "v".
func (h *History) Release(version string) *Release {
	version = strings.TrimPrefix(version, "v")

	for i := range h.Releases {
		if strings.TrimPrefix(h.Releases[i].Version, "v") == version {
			return &h.Releases[i]
		}
	}
	return nil
}

// Latest returns the newest published release, skipping Unreleased.
func (h *History) Latest() *Release {
	for i := range h.Releases {
		if h.Releases[i].Released() {
			return &h.Releases[i]
		}
	}
	return nil
}

type section struct {
	version string
	date    string
	start   int // byte offset of the heading line
	end     int // byte offset past the heading line
}

// Parse parses a Keep a Changelog formatted markdown document. Each
// level-2 heading opens a release section; its notes run to the next
// level-2 heading or end of input.
func Parse(source []byte) (*History, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	history := &History{Links: make(map[string]string)}
	for _, ref := range ctx.References() {
		history.Links[string(ref.Label())] = string(ref.Destination())
	}

	var sections []section
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		version, date := splitVersionHeading(headingText(heading, source))
		sec := section{version: version, date: date}
		if lines := heading.Lines(); lines.Len() > 0 {
			sec.start = lines.At(0).Start
			sec.end = lines.At(lines.Len() - 1).Stop
		}
		sections = append(sections, sec)
		return ast.WalkContinue, nil
	})

	for i, sec := range sections {
		notesEnd := len(source)
		if i+1 < len(sections) {
			notesEnd = sections[i+1].start
		}

		notes := ""
		if sec.end < notesEnd {
			notes = strings.TrimSpace(string(source[sec.end:notesEnd]))
		}

		history.Releases = append(history.Releases, Release{
			Version: sec.version,
			Date:    sec.date,
			Notes:   notes,
		})
	}

	return history, nil
}

// headingText flattens the heading's text, looking through link nodes
// so "[1.0.0] - 2024-01-15" keeps its bracket contents.
func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
		case *ast.Link:
			for linkChild := n.FirstChild(); linkChild != nil; linkChild = linkChild.NextSibling() {
				if textNode, ok := linkChild.(*ast.Text); ok {
					buf.Write(textNode.Segment.Value(source))
				}
			}
		}
	}
	return buf.String()
}

func splitVersionHeading(heading string) (version, date string) {
	heading = strings.TrimSpace(heading)

	if after, ok := strings.CutPrefix(heading, "["); ok {
		if before, rest, found := strings.Cut(after, "]"); found {
			version = before
			rest = strings.TrimSpace(rest)
			if dated, ok := strings.CutPrefix(rest, "- "); ok {
				date = strings.TrimSpace(dated)
			}
			return version, date
		}
		heading = after
	}

	if before, after, found := strings.Cut(heading, " - "); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return heading, ""
}
