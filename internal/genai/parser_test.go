package genai

import (
	"reflect"
	"testing"
)

func TestParseTaskLinesCleanInput(t *testing.T) {
	raw := "Install the Go toolchain and run hello world\n" +
		"Write a function with tests\n" +
		"Build a small CLI\n" +
		"Read about goroutines and channels\n" +
		"Ship a tiny HTTP service"

	got := ParseTaskLines(raw)

	want := []string{
		"Install the Go toolchain and run hello world",
		"Write a function with tests",
		"Build a small CLI",
		"Read about goroutines and channels",
		"Ship a tiny HTTP service",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected clean input to pass through unchanged, got %v", got)
	}
}

func TestParseTaskLinesDropsNumberedLines(t *testing.T) {
	raw := "1. Learn X\nLearn Y\n2) Learn Z\nLearn W\nLearn V\nLearn extra"

	got := ParseTaskLines(raw)

	want := []string{"Learn Y", "Learn W", "Learn V", "Learn extra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected numbered lines dropped in order, got %v", got)
	}
}

func TestParseTaskLinesCapsAtFive(t *testing.T) {
	raw := "a one\nb two\nc three\nd four\ne five\nf six\ng seven"

	got := ParseTaskLines(raw)

	if len(got) != 5 {
		t.Fatalf("expected 5 titles, got %d", len(got))
	}
	if got[0] != "a one" || got[4] != "e five" {
		t.Errorf("expected first five lines in order, got %v", got)
	}
}

func TestParseTaskLinesTrimsAndSkipsBlanks(t *testing.T) {
	raw := "\n  Learn the basics  \n\n\t\nPractice daily\n"

	got := ParseTaskLines(raw)

	want := []string{"Learn the basics", "Practice daily"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected trimmed non-blank lines, got %v", got)
	}
}

func TestParseTaskLinesEmptyResponse(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n\t\n"} {
		if got := ParseTaskLines(raw); len(got) != 0 {
			t.Errorf("expected no titles for %q, got %v", raw, got)
		}
	}
}
