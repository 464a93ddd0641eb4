// formatter.go reshapes one section's raw text into display markup for
// the results page. Classification is strictly per line, which keeps
// the routine predictable on messy model output; the only cross-line
// step is wrapping bullet runs in a list element afterwards.
package sections

import (
	"regexp"
	"strings"
)

// subheadRe matches lines the model numbered itself, e.g. "2) Pipeline".
var subheadRe = regexp.MustCompile(`^\d+\)`)

// Format converts section text into HTML fragments, one element per
// input line:
//   - blank lines are dropped
//   - "•" / "-" bullets become <li> with one prefix glyph stripped
//   - "<digit>)" lines become <h4> subheadings
//   - lines already starting with "<" pass through untouched, which
//     makes Format idempotent on its own output
//   - everything else becomes a <p>
//
// Runs of consecutive list items are then wrapped in <ul> so the
// fragment is valid HTML. Emphasis asterisks are stripped first; the
// model is told to write plain text but tends to sprinkle markdown
// bold anyway.
func Format(section string) string {
	clean := strings.ReplaceAll(section, "*", "")

	var out []string
	for _, line := range strings.Split(clean, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			// drop
		case strings.HasPrefix(line, "<"):
			out = append(out, line)
		case strings.HasPrefix(line, "•"), strings.HasPrefix(line, "-"):
			out = append(out, "<li>"+bulletText(line)+"</li>")
		case subheadRe.MatchString(line):
			out = append(out, "<h4>"+line+"</h4>")
		default:
			out = append(out, "<p>"+line+"</p>")
		}
	}

	return strings.Join(wrapLists(out), "\n")
}

// bulletText strips exactly one bullet glyph and one following space.
// A line like "-- nested" keeps its inner dash, and a bullet whose
// content itself starts with "-" is not over-trimmed.
func bulletText(line string) string {
	item := strings.TrimPrefix(line, "•")
	if item == line {
		item = strings.TrimPrefix(line, "-")
	}
	return strings.TrimPrefix(item, " ")
}

// wrapLists encloses runs of consecutive <li> elements in <ul> tags.
// Input that already carries <ul>/</ul> lines passes through unchanged,
// preserving Format's idempotence.
func wrapLists(lines []string) []string {
	var out []string
	inList := false
	for _, line := range lines {
		isItem := strings.HasPrefix(line, "<li>")
		switch {
		case line == "<ul>":
			inList = true
		case line == "</ul>":
			inList = false
		case isItem && !inList:
			out = append(out, "<ul>")
			inList = true
		case !isItem && inList:
			out = append(out, "</ul>")
			inList = false
		}
		out = append(out, line)
	}
	if inList {
		out = append(out, "</ul>")
	}
	return out
}
