package cli

import (
	"testing"

	"github.com/untwistapp/untwist/internal/models"
)

func TestShortID(t *testing.T) {
	if got := ShortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("ShortID() = %q, want 01234567", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID(short) = %q, want abc", got)
	}
}

func TestFormatEmotions(t *testing.T) {
	if got := FormatEmotions(nil); got != "-" {
		t.Errorf("FormatEmotions(nil) = %q, want -", got)
	}
	emotions := []models.Emotion{{Name: "anxious", Intensity: 70}, {Name: "sad", Intensity: 20}}
	want := "anxious (70), sad (20)"
	if got := FormatEmotions(emotions); got != want {
		t.Errorf("FormatEmotions() = %q, want %q", got, want)
	}
}

func TestFormatDistortions(t *testing.T) {
	if got := FormatDistortions(nil); got != "-" {
		t.Errorf("FormatDistortions(nil) = %q, want -", got)
	}
	want := "All-or-nothing thinking, Overgeneralization"
	if got := FormatDistortions([]int{1, 2}); got != want {
		t.Errorf("FormatDistortions() = %q, want %q", got, want)
	}
	// Unknown IDs render as numbers instead of being dropped
	if got := FormatDistortions([]int{42}); got != "#42" {
		t.Errorf("FormatDistortions(unknown) = %q, want #42", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("a long string that overflows", 10); got != "a long ..." {
		t.Errorf("Truncate() = %q, want %q", got, "a long ...")
	}
	if got := Truncate("line\nbreak", 20); got != "line break" {
		t.Errorf("Truncate(newline) = %q, want %q", got, "line break")
	}
}
