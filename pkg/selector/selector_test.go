package selector

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	expressions, err := Parse("env=prod,tier in (web,db),!canary,region!=eu,arch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Expressions{
		NewEqual("env", "prod"),
		NewIn("tier", "db", "web"),
		NewDoesNotExist("canary"),
		NewNotEqual("region", "eu"),
		NewExists("arch"),
	}
	if len(expressions) != len(want) {
		t.Fatalf("got %d expressions, want %d", len(expressions), len(want))
	}
	for i := range want {
		if !expressions[i].Equal(want[i]) {
			t.Errorf("expression %d: got '%s', want '%s'", i, expressions[i], want[i])
		}
	}
}

func TestParseEmpty(t *testing.T) {
	expressions, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expressions) != 0 {
		t.Errorf("got %d expressions, want 0", len(expressions))
	}
}

func TestParseFirstErrorIsTerminal(t *testing.T) {
	expressions, err := Parse("a=b,c in (1),d=e")
	if err == nil {
		t.Fatal("expected error")
	}
	if expressions != nil {
		t.Errorf("expected no expressions, got %v", expressions)
	}

	var pe *ParseError
	if !AsParseError(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Fragment != "c in (1)" {
		t.Errorf("error fragment %q, want %q", pe.Fragment, "c in (1)")
	}
	if (pe.Span != Span{4, 12}) {
		t.Errorf("error span %v, want %v", pe.Span, Span{4, 12})
	}
	if !errors.Is(err, ErrSelectorSyntax) {
		t.Error("error does not unwrap to ErrSelectorSyntax")
	}
}

func TestParseRoundTrip(t *testing.T) {
	selectors := []string{
		"a==b,foo.bar.baz/b-y_.6=c_8.-z,c!=d,a in (c,a,b),a notin (x),c,!a",
		"key in ()",
		"a in (b-c,d_e)",
	}
	for _, s := range selectors {
		first, err := Parse(s)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s, err)
		}
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("%q: rendering %q does not re-parse: %v", s, first.String(), err)
		}
		if len(first) != len(second) {
			t.Fatalf("%q: round trip changed expression count: %d != %d", s, len(first), len(second))
		}
		for i := range first {
			if !first[i].Equal(second[i]) {
				t.Errorf("%q: round trip changed expression %d: '%s' != '%s'", s, i, first[i], second[i])
			}
		}
	}
}

func TestParseFragmentCount(t *testing.T) {
	testcases := []struct {
		selector string
		count    int
	}{
		{"a", 1},
		{"a,b", 2},
		{"a=1, b in (x,y) ,!c", 3},
		{"a\tb\nc\fd", 4},
	}
	for _, tc := range testcases {
		expressions, err := Parse(tc.selector)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.selector, err)
		}
		if len(expressions) != tc.count {
			t.Errorf("%q: got %d expressions, want %d", tc.selector, len(expressions), tc.count)
		}
	}
}

func TestMustParse(t *testing.T) {
	expressions := MustParse("a=b")
	if len(expressions) != 1 {
		t.Fatalf("got %d expressions, want 1", len(expressions))
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid selector")
		}
	}()
	MustParse("a in (1)")
}
