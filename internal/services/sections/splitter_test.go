// splitter_test.go covers the marker-based section splitter, the
// single riskiest routine in the app.
package sections

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// wellFormed builds a reply containing every canonical marker in order,
// each followed by "Content i.".
func wellFormed() string {
	var sb strings.Builder
	for i, name := range Names {
		fmt.Fprintf(&sb, "%s\nContent %d.\n", Marker(i, name), i)
	}
	return sb.String()
}

func TestSplitWellFormed(t *testing.T) {
	secs, err := Split(wellFormed())
	if err != nil {
		t.Fatalf("Split returned error on well-formed input: %v", err)
	}

	if len(secs) != len(Names) {
		t.Fatalf("got %d sections, want %d", len(secs), len(Names))
	}

	for i, name := range Names {
		want := fmt.Sprintf("Content %d.", i)
		if secs[name] != want {
			t.Errorf("sections[%q] = %q, want %q", name, secs[name], want)
		}
	}
}

func TestSplitTrimsWhitespace(t *testing.T) {
	raw := "0) TL;DR\n\n   Short.   \n\n1) Analogy\nLike X.\n"
	secs, err := Split(raw)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	if secs["TL;DR"] != "Short." {
		t.Errorf("sections[TL;DR] = %q, want %q", secs["TL;DR"], "Short.")
	}
	if secs["Analogy"] != "Like X." {
		t.Errorf("sections[Analogy] = %q, want %q", secs["Analogy"], "Like X.")
	}
}

// TestSplitMissingMarker verifies a missing heading degrades only its
// own section; neighbors keep their exact content.
func TestSplitMissingMarker(t *testing.T) {
	var sb strings.Builder
	for i, name := range Names {
		if name == "Dataset" {
			continue
		}
		fmt.Fprintf(&sb, "%s\nContent %d.\n", Marker(i, name), i)
	}

	secs, err := Split(sb.String())
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	if secs["Dataset"] != NotFound {
		t.Errorf("sections[Dataset] = %q, want the not-found sentinel", secs["Dataset"])
	}

	for i, name := range Names {
		if name == "Dataset" {
			continue
		}
		want := fmt.Sprintf("Content %d.", i)
		if secs[name] != want {
			t.Errorf("sections[%q] = %q, want %q (missing marker must not shift neighbors)",
				name, secs[name], want)
		}
	}
}

func TestSplitAllMarkersMissing(t *testing.T) {
	secs, err := Split("The model rambled and used no headings at all.")
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	for _, name := range Names {
		if secs[name] != NotFound {
			t.Errorf("sections[%q] = %q, want the not-found sentinel", name, secs[name])
		}
	}
}

// TestSplitOutOfOrder verifies reordered headings are rejected instead
// of silently misattributing text.
func TestSplitOutOfOrder(t *testing.T) {
	raw := "0) TL;DR\nA.\n2) Worked Example\nB.\n1) Analogy\nC.\n"
	_, err := Split(raw)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("Split = %v, want ErrMalformed", err)
	}
}

func TestSplitLastSectionRunsToEnd(t *testing.T) {
	raw := wellFormed() + "Trailing remarks after the final heading."
	secs, err := Split(raw)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}

	last := Names[len(Names)-1]
	want := fmt.Sprintf("Content %d.\nTrailing remarks after the final heading.", len(Names)-1)
	if secs[last] != want {
		t.Errorf("sections[%q] = %q, want %q", last, secs[last], want)
	}
}

// TestSplitEndToEnd is the canonical scenario: the exact reply shape the
// prompt asks for.
func TestSplitEndToEnd(t *testing.T) {
	raw := "0) TL;DR\nShort.\n1) Analogy\nLike X.\n"
	for i := 2; i < len(Names); i++ {
		raw += fmt.Sprintf("%s\nBody %d.\n", Marker(i, Names[i]), i)
	}

	secs, err := Split(raw)
	if err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if secs["TL;DR"] != "Short." {
		t.Errorf("sections[TL;DR] = %q, want %q", secs["TL;DR"], "Short.")
	}
	if secs["Analogy"] != "Like X." {
		t.Errorf("sections[Analogy] = %q, want %q", secs["Analogy"], "Like X.")
	}
}
