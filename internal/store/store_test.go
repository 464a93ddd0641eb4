package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/sahidmustakim/hci-agent/internal/models"
)

func newAnalysis(title string) *models.Analysis {
	return &models.Analysis{
		Title:     title,
		Sections:  map[string]string{"TL;DR": "Short."},
		CreatedAt: time.Now(),
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	s := New(10, time.Minute)

	a := newAnalysis("A Paper")
	token := s.Put(a)

	if token == "" {
		t.Fatal("Put returned an empty token")
	}
	if a.Token != token {
		t.Errorf("analysis.Token = %q, want %q", a.Token, token)
	}

	got, ok := s.Get(token)
	if !ok {
		t.Fatal("Get missed a freshly stored analysis")
	}
	if got.Title != "A Paper" {
		t.Errorf("got.Title = %q, want %q", got.Title, "A Paper")
	}
}

func TestGetUnknownToken(t *testing.T) {
	s := New(10, time.Minute)
	if _, ok := s.Get("no-such-token"); ok {
		t.Error("Get returned ok for an unknown token")
	}
}

func TestGetExpiredToken(t *testing.T) {
	s := New(10, time.Millisecond)
	token := s.Put(newAnalysis("Old Paper"))

	time.Sleep(5 * time.Millisecond)

	if _, ok := s.Get(token); ok {
		t.Error("Get returned ok for an expired token")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	s := New(3, time.Minute)

	first := s.Put(newAnalysis("paper-0"))
	var tokens []string
	for i := 1; i < 4; i++ {
		// Distinct savedAt ordering matters for oldest-first eviction.
		time.Sleep(time.Millisecond)
		tokens = append(tokens, s.Put(newAnalysis(fmt.Sprintf("paper-%d", i))))
	}

	if _, ok := s.Get(first); ok {
		t.Error("oldest entry survived eviction past capacity")
	}
	for _, token := range tokens {
		if _, ok := s.Get(token); !ok {
			t.Errorf("recent entry %s was evicted", token)
		}
	}
	if got := s.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
