// Package markdown extracts structural elements from Markdown text using
// line-based scanning. It is deliberately not a CommonMark parser: the
// checkers must report malformed constructs (a heading with no space after
// the hashes, a closing fence with trailing characters) that a real parser
// would silently normalize away.
package markdown

import (
	"regexp"
	"strings"
)

var (
	// headingPattern matches an ATX heading: 1-6 hashes, at least one
	// whitespace character, then the heading text.
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)

	// malformedHeadingPattern matches hashes immediately followed by a
	// non-space, non-hash character, e.g. "##Overview".
	malformedHeadingPattern = regexp.MustCompile(`^#{1,6}[^#\s]`)

	// unorderedListPattern matches "-", "*" or "+" at the start of a line
	// after optional indentation, capturing the gap before the content.
	unorderedListPattern = regexp.MustCompile(`^([ \t]*)([-*+])([ \t]?)(.*)$`)

	// orderedListPattern matches "N." markers the same way.
	orderedListPattern = regexp.MustCompile(`^([ \t]*)(\d+\.)([ \t]?)(.*)$`)

	// thematicBreakPattern matches horizontal rules, which must not be
	// mistaken for list items. RE2 has no backreferences, so each marker
	// character gets its own alternative.
	thematicBreakPattern = regexp.MustCompile(`^[ \t]*(-[ \t]*){3,}$|^[ \t]*(\*[ \t]*){3,}$|^[ \t]*(_[ \t]*){3,}$`)

	// linkPattern matches inline Markdown links.
	linkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
)

// Heading is one ATX heading occurrence, in file order.
type Heading struct {
	Level int
	Text  string
	Line  int
}

// CodeBlock is one fenced block. EndLine is 0 when the block is never
// closed before end of file.
type CodeBlock struct {
	StartLine       int
	LanguageTag     string
	EndLine         int
	TrailingOnFence bool // closing fence carried extra characters
}

// ListItem is one list-marker line outside any code fence.
type ListItem struct {
	Line             int
	Indent           int
	Marker           string
	Content          string
	SpaceAfterMarker bool
}

// MalformedHeading is a line of hashes with no whitespace before the text.
type MalformedHeading struct {
	Line int
	Text string
}

// Link is one inline Markdown link outside any code fence.
type Link struct {
	Line   int
	Text   string
	Target string
}

// Structure holds everything the checkers need from one file.
type Structure struct {
	Headings          []Heading
	MalformedHeadings []MalformedHeading
	CodeBlocks        []CodeBlock
	ListItems         []ListItem
	Links             []Link
}

// Extract scans content line by line and collects headings, fenced code
// blocks, list items and links. Fenced block interiors are opaque: no
// heading, list or link is recognized inside them.
func Extract(content string) *Structure {
	s := &Structure{}

	lines := strings.Split(content, "\n")
	insideFence := false
	openBlock := -1 // index into s.CodeBlocks while insideFence

	for i, line := range lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "```") {
			if insideFence {
				s.CodeBlocks[openBlock].EndLine = lineNum
				s.CodeBlocks[openBlock].TrailingOnFence = trimmed != "```"
				insideFence = false
				openBlock = -1
			} else {
				tag := strings.TrimSpace(strings.TrimPrefix(strings.TrimLeft(line, " \t"), "```"))
				s.CodeBlocks = append(s.CodeBlocks, CodeBlock{
					StartLine:   lineNum,
					LanguageTag: tag,
				})
				insideFence = true
				openBlock = len(s.CodeBlocks) - 1
			}
			continue
		}

		if insideFence {
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			s.Headings = append(s.Headings, Heading{
				Level: len(m[1]),
				Text:  strings.TrimSpace(m[2]),
				Line:  lineNum,
			})
		} else if malformedHeadingPattern.MatchString(line) {
			s.MalformedHeadings = append(s.MalformedHeadings, MalformedHeading{
				Line: lineNum,
				Text: trimmed,
			})
		} else if item, ok := matchListItem(line, lineNum); ok {
			s.ListItems = append(s.ListItems, item)
		}

		for _, m := range linkPattern.FindAllStringSubmatch(line, -1) {
			s.Links = append(s.Links, Link{
				Line:   lineNum,
				Text:   m[1],
				Target: m[2],
			})
		}
	}

	return s
}

// matchListItem recognizes ordered and unordered list-marker lines.
// Thematic breaks ("---") and emphasis at line start ("**bold**") share a
// first character with unordered markers and are skipped.
func matchListItem(line string, lineNum int) (ListItem, bool) {
	if thematicBreakPattern.MatchString(line) {
		return ListItem{}, false
	}

	if m := unorderedListPattern.FindStringSubmatch(line); m != nil {
		// "**bold**" and "--dashes" are not list items.
		if strings.HasPrefix(m[4], m[2]) {
			return ListItem{}, false
		}
		// A bare marker with nothing after it is not a list item.
		if m[3] == "" && m[4] == "" {
			return ListItem{}, false
		}
		return ListItem{
			Line:             lineNum,
			Indent:           len(m[1]),
			Marker:           m[2],
			Content:          m[4],
			SpaceAfterMarker: m[3] != "",
		}, true
	}

	if m := orderedListPattern.FindStringSubmatch(line); m != nil {
		if m[3] == "" && m[4] == "" {
			return ListItem{}, false
		}
		return ListItem{
			Line:             lineNum,
			Indent:           len(m[1]),
			Marker:           m[2],
			Content:          m[4],
			SpaceAfterMarker: m[3] != "",
		}, true
	}

	return ListItem{}, false
}
