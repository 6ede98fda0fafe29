package cli

import "testing"

func TestCatalogFromArgs_LongFlagEquals(t *testing.T) {
	args := []string{"swatch", "show", "--catalog=warm", "ember"}
	if got := catalogFromArgs(args); got != "warm" {
		t.Errorf("Expected 'warm', got %q", got)
	}
}

func TestCatalogFromArgs_ShortFlagEquals(t *testing.T) {
	args := []string{"swatch", "show", "-c=cool", "ember"}
	if got := catalogFromArgs(args); got != "cool" {
		t.Errorf("Expected 'cool', got %q", got)
	}
}

func TestCatalogFromArgs_LongFlagSpace(t *testing.T) {
	args := []string{"swatch", "show", "--catalog", "warm", "ember"}
	if got := catalogFromArgs(args); got != "warm" {
		t.Errorf("Expected 'warm', got %q", got)
	}
}

func TestCatalogFromArgs_ShortFlagSpace(t *testing.T) {
	args := []string{"swatch", "show", "-c", "cool", "ember"}
	if got := catalogFromArgs(args); got != "cool" {
		t.Errorf("Expected 'cool', got %q", got)
	}
}

func TestCatalogFromArgs_NoFlag(t *testing.T) {
	args := []string{"swatch", "show", "ember"}
	if got := catalogFromArgs(args); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestCatalogFromArgs_EmptyArgs(t *testing.T) {
	if got := catalogFromArgs(nil); got != "" {
		t.Errorf("Expected empty string for nil args, got %q", got)
	}
	if got := catalogFromArgs([]string{}); got != "" {
		t.Errorf("Expected empty string for empty args, got %q", got)
	}
}

func TestCatalogFromArgs_EmptyEqualsValue(t *testing.T) {
	// --catalog= with no value should fall through (not return "")
	args := []string{"swatch", "show", "--catalog=", "ember"}
	if got := catalogFromArgs(args); got != "" {
		t.Errorf("Expected empty string for --catalog= (no value), got %q", got)
	}

	args = []string{"swatch", "show", "-c=", "ember"}
	if got := catalogFromArgs(args); got != "" {
		t.Errorf("Expected empty string for -c= (no value), got %q", got)
	}
}

func TestCatalogFromArgs_FlagAtEnd(t *testing.T) {
	// --catalog at end with no following value
	args := []string{"swatch", "show", "--catalog"}
	if got := catalogFromArgs(args); got != "" {
		t.Errorf("Expected empty string for --catalog at end, got %q", got)
	}

	args = []string{"swatch", "show", "-c"}
	if got := catalogFromArgs(args); got != "" {
		t.Errorf("Expected empty string for -c at end, got %q", got)
	}
}

func TestCatalogFromArgs_FlagAfterPositional(t *testing.T) {
	// Catalog flag after positional arg (still found)
	args := []string{"swatch", "show", "ember", "-c", "warm"}
	if got := catalogFromArgs(args); got != "warm" {
		t.Errorf("Expected 'warm', got %q", got)
	}
}

func TestCatalogFromArgs_FirstFlagWins(t *testing.T) {
	// Multiple catalog flags - first one wins
	args := []string{"swatch", "show", "-c", "first", "-c", "second"}
	if got := catalogFromArgs(args); got != "first" {
		t.Errorf("Expected 'first' (first flag wins), got %q", got)
	}
}
