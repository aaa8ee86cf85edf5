package filter

import "testing"

func TestApplied(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"all", false},
		{"available", true},
		{"0", true},
	}

	for _, c := range cases {
		if got := Applied(c.value); got != c.want {
			t.Errorf("Applied(%q) = %v, want %v", c.value, got, c.want)
		}
	}
}

func TestFoldContains(t *testing.T) {
	if !FoldContains("São Paulo", "PAULO") {
		t.Error("expected case-insensitive match")
	}
	if !FoldContains("São Paulo", "sÃo") {
		t.Error("expected case-insensitive match with diacritics preserved")
	}
	// Case folding only: "sao" without the tilde does not match "São".
	if FoldContains("São Paulo", "sao") {
		t.Error("diacritic folding is not expected")
	}
}

func TestBound(t *testing.T) {
	if n, ok := Bound("400000"); !ok || n != 400000 {
		t.Errorf("Bound(400000) = %d, %v", n, ok)
	}
	if n, ok := Bound(" 250 "); !ok || n != 250 {
		t.Errorf("Bound with spaces = %d, %v", n, ok)
	}
	if _, ok := Bound("abc"); ok {
		t.Error("unparseable bound should not apply")
	}
	if _, ok := Bound(""); ok {
		t.Error("empty bound should not apply")
	}
}

func TestDate(t *testing.T) {
	if d, ok := Date("2025-04-07"); !ok || d != "2025-04-07" {
		t.Errorf("Date ISO = %q, %v", d, ok)
	}
	if d, ok := Date("07/04/2025"); !ok || d != "2025-04-07" {
		t.Errorf("Date BR = %q, %v", d, ok)
	}
	if _, ok := Date("7 de Abril, 2025"); ok {
		t.Error("display strings should not apply as date criteria")
	}
}
