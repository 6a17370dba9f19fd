package types

import "testing"

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Latest AI Technologies and Use-cases", "latest-ai-technologies-and-use-cases"},
		{"  Extra   Spaces  ", "extra-spaces"},
		{"already-lower", "already-lower"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slug(tc.in); got != tc.want {
			t.Errorf("Slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateIDIsStable(t *testing.T) {
	a := GenerateID("https://example.com/article")
	b := GenerateID("https://example.com/article")
	if a != b {
		t.Fatalf("same URL must produce the same ID: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Fatalf("expected 16-char ID, got %d", len(a))
	}
	if a == GenerateID("https://example.com/other") {
		t.Fatal("different URLs should not collide")
	}
}
