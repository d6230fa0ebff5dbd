package textnorm

import (
	"regexp"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Triple XXX Family Restaurant": "triple-xxx-family-restaurant",
		"Bruno's Swiss Inn":            "bruno-s-swiss-inn",
		"  --Mad   Mushroom!!  ":       "mad-mushroom",
		"Café Crème":                   "caf-cr-me",
		"":                             "",
		"!!!":                          "",
		"ABC123":                       "abc123",
	}

	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Errorf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSlug_Charset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)

	inputs := []string{
		"Harry's Chocolate Shop",
		"Puccini's Smiling Teeth",
		"\t\nKorea   Garden\t",
		"日本料理 Sushi Bar",
		"--leading and trailing--",
		"UPPER lower 42 _ under_score",
	}

	for _, in := range inputs {
		got := Slug(in)
		if !valid.MatchString(got) {
			t.Errorf("Slug(%q) = %q contains invalid characters", in, got)
		}
		if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
			t.Errorf("Slug(%q) = %q has leading or trailing hyphen", in, got)
		}
	}
}

func TestCanonicalName_Stable(t *testing.T) {
	name := "Barney Burger (Double)"

	first := CanonicalName(name)
	second := CanonicalName(name)
	if first != second {
		t.Fatalf("canonical name not deterministic: %q vs %q", first, second)
	}

	if again := CanonicalName(first); again != first {
		t.Fatalf("canonical name not idempotent: %q -> %q", first, again)
	}

	if first != "barney-burger-double" {
		t.Fatalf("unexpected canonical name %q", first)
	}
}
