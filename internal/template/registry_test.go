package template

import "testing"

func TestParseKindKnownIdentifiers(t *testing.T) {
	for _, k := range Kinds() {
		if got := ParseKind(string(k)); got != k {
			t.Fatalf("ParseKind(%q) = %q", k, got)
		}
	}
}

func TestParseKindFallsBackToModern(t *testing.T) {
	for _, s := range []string{"", "ancient-scroll", "MODERN", "classic "} {
		if got := ParseKind(s); got != KindModern {
			t.Fatalf("ParseKind(%q) = %q, want modern", s, got)
		}
	}
}

func TestLayoutTags(t *testing.T) {
	for _, k := range Kinds() {
		want := LayoutLinear
		if k == KindCreative {
			want = LayoutSidebar
		}
		if got := k.Layout(); got != want {
			t.Fatalf("%s layout = %q, want %q", k, got, want)
		}
	}
	// unknown kinds behave like modern
	if got := Kind("ancient-scroll").Layout(); got != LayoutLinear {
		t.Fatalf("unknown kind layout = %q", got)
	}
}

func TestStylesForEveryKind(t *testing.T) {
	seen := map[string]Kind{}
	for _, k := range Kinds() {
		s := StylesFor(k)
		if s.Base == "" || s.Override == "" {
			t.Fatalf("%s has empty style sheet", k)
		}
		if prev, dup := seen[s.Override]; dup {
			t.Fatalf("%s and %s share an override sheet", prev, k)
		}
		seen[s.Override] = k
	}
}

func TestStylesForUnknownKindIsModern(t *testing.T) {
	got := StylesFor(Kind("ancient-scroll"))
	want := StylesFor(KindModern)
	if got != want {
		t.Fatal("unknown kind must resolve to modern styles")
	}
}

func TestExactlyFourKinds(t *testing.T) {
	if len(Kinds()) != 4 {
		t.Fatalf("expected 4 template kinds, got %d", len(Kinds()))
	}
}
