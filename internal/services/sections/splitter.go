// Package sections turns a raw model reply into the fixed set of named
// sections the app renders. The model is asked to use numbered headings
// like "3) Dataset"; Split locates those markers and slices the text
// between them.
//
// This is a best-effort heuristic, not a real parser: it assumes
// headings appear verbatim and at most once. It is also the riskiest
// routine in the app, so the failure modes are explicit: a missing
// heading degrades that one section to a sentinel, and headings that
// appear out of order are rejected as a malformed response instead of
// silently misattributing text.
package sections

import (
	"errors"
	"fmt"
	"strings"
)

// Names lists the canonical section headings in template order.
// The ordering is load-bearing: index i is the heading number in the
// prompt and the marker number the splitter searches for. The prompt
// template body is generated from this same slice, so the two can
// never disagree.
var Names = []string{
	"TL;DR",
	"Analogy",
	"Worked Example",
	"Dataset",
	"Modality",
	"Problem Statement",
	"Methodology",
	"Key Findings",
	"Research Gap",
	"Future Directions",
	"What Should You Read Yourself?",
}

// NotFound is the placeholder stored when a heading marker is absent
// from the model reply.
const NotFound = "⚠ Section not found in model output"

// ErrMalformed is returned when found headings are not in strictly
// increasing positions: the reply repeated or reordered headings and
// slice boundaries would be wrong. Callers treat this as a recoverable
// "try again" condition.
var ErrMalformed = errors.New("model response headings are out of order")

// Split slices raw model text into the canonical section map.
func Split(raw string) (map[string]string, error) {
	return splitNamed(raw, Names)
}

// splitNamed is the generic form; kept separate so tests can exercise
// small section lists.
func splitNamed(raw string, names []string) (map[string]string, error) {
	// Locate every marker independently; a missing heading must not
	// shift the slices of its neighbors.
	positions := make([]int, len(names))
	for i, name := range names {
		positions[i] = strings.Index(raw, Marker(i, name))
	}

	// Found markers must appear in the same order as the template.
	last := -1
	for _, pos := range positions {
		if pos == -1 {
			continue
		}
		if pos <= last {
			return nil, ErrMalformed
		}
		last = pos
	}

	out := make(map[string]string, len(names))
	for i, name := range names {
		start := positions[i]
		if start == -1 {
			out[name] = NotFound
			continue
		}
		start += len(Marker(i, name))

		// Content runs to the next marker that was actually found,
		// or to the end of the text.
		end := len(raw)
		for j := i + 1; j < len(names); j++ {
			if positions[j] != -1 {
				end = positions[j]
				break
			}
		}

		out[name] = strings.TrimSpace(raw[start:end])
	}

	return out, nil
}

// Marker returns the literal heading substring searched for in model
// output, e.g. `3) Dataset`.
func Marker(i int, name string) string {
	return fmt.Sprintf("%d) %s", i, name)
}
