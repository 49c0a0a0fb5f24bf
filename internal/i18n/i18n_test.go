package i18n

import "testing"

func TestLookupAndToggle(t *testing.T) {
	tr := New("it")
	if got := tr.T("nav.back"); got != "Indietro" {
		t.Fatalf("T(nav.back) = %q", got)
	}
	tr.Toggle()
	if tr.Locale() != English {
		t.Fatalf("locale = %v after toggle", tr.Locale())
	}
	if got := tr.T("nav.back"); got != "Back" {
		t.Fatalf("T(nav.back) = %q", got)
	}
	tr.Toggle()
	if tr.Locale() != Italian {
		t.Fatal("toggle must flip back")
	}
}

func TestUnknownLocaleDefaultsToItalian(t *testing.T) {
	if New("de").Locale() != Italian {
		t.Fatal("unknown locale must default to it")
	}
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	tr := New("en")
	if got := tr.T("no.such.key"); got != "no.such.key" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestPlaceholderSubstitution(t *testing.T) {
	tr := New("en")
	got := tr.Tf("media.need", "n", "4")
	if got != "You need at least 4 images with a template prefix" {
		t.Fatalf("Tf = %q", got)
	}
	got = tr.Tf("output.ready", "n", "6", "brand", "Studio")
	if got != "6 posts ready for Studio" {
		t.Fatalf("Tf = %q", got)
	}
}

func TestDayNames(t *testing.T) {
	tr := New("it")
	if tr.Day("sun") != "Domenica" {
		t.Fatalf("Day(sun) = %q", tr.Day("sun"))
	}
	if tr.Day("xxx") != "xxx" {
		t.Fatal("unknown code must pass through")
	}
}
