package catalog

import "testing"

func TestLookupPlatform(t *testing.T) {
	tests := []struct {
		value        string
		wantOK       bool
		wantMaxChars int
	}{
		{"twitter", true, 280},
		{"TWITTER", true, 280}, // case-insensitive
		{"linkedin", true, 3000},
		{"reddit", true, 40000},
		{"instagram", false, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			p, ok := LookupPlatform(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("LookupPlatform(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && p.MaxChars != tt.wantMaxChars {
				t.Errorf("MaxChars = %d, want %d", p.MaxChars, tt.wantMaxChars)
			}
		})
	}
}

func TestLookupTone(t *testing.T) {
	tone, ok := LookupTone("Professional")
	if !ok {
		t.Fatal("LookupTone(Professional) not found")
	}
	if tone.Value != ToneProfessional {
		t.Errorf("Value = %q, want %q", tone.Value, ToneProfessional)
	}
	if tone.Directive == "" {
		t.Error("Directive is empty")
	}

	if _, ok := LookupTone("sarcastic"); ok {
		t.Error("LookupTone(sarcastic) should not be found")
	}
}

func TestCatalogCompleteness(t *testing.T) {
	if got := len(Platforms()); got != 3 {
		t.Errorf("len(Platforms()) = %d, want 3", got)
	}
	if got := len(Tones()); got != 6 {
		t.Errorf("len(Tones()) = %d, want 6", got)
	}

	for _, p := range Platforms() {
		if p.Label == "" || p.MaxChars <= 0 || p.FallbackPrefixLen <= 0 {
			t.Errorf("platform %q has incomplete metadata: %+v", p.Value, p)
		}
	}
	for _, tone := range Tones() {
		if tone.Label == "" || tone.Directive == "" {
			t.Errorf("tone %q has incomplete metadata: %+v", tone.Value, tone)
		}
	}
}

func TestPlatformsReturnsCopy(t *testing.T) {
	first := Platforms()
	first[0].MaxChars = 1

	if Platforms()[0].MaxChars == 1 {
		t.Error("mutating Platforms() result leaked into the catalog")
	}
}

func TestIsValidHelpers(t *testing.T) {
	if !IsValidPlatform("reddit") {
		t.Error("IsValidPlatform(reddit) = false")
	}
	if IsValidPlatform("myspace") {
		t.Error("IsValidPlatform(myspace) = true")
	}
	if !IsValidTone("funny") {
		t.Error("IsValidTone(funny) = false")
	}
	if IsValidTone("angry") {
		t.Error("IsValidTone(angry) = true")
	}
}
