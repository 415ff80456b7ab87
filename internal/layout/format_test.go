package layout

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{math.Copysign(0, -1), "0,00"},
		{255, "255,00"},
		{1234.56, "1.234,56"},
		{1234567.891, "1.234.567,89"},
		{0.5, "0,50"},
		{math.NaN(), "0,00"},
		{math.Inf(-1), "0,00"},
		{-0.001, "0,00"},
		{-0.004, "0,00"},
		{-0.01, "-0,01"},
		{-1234.5, "-1.234,50"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := FormatCurrency(255); got != "R$ 255,00" {
		t.Fatalf("expected R$ 255,00, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"2024-03-05": "05/03/2024",
		"":           "",
		"05/03/2024": "05/03/2024",
		"amanhã":     "amanhã",
		"2024-13-40": "2024-13-40",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			if got := FormatDate(in); got != want {
				t.Fatalf("FormatDate(%q) = %q, want %q", in, got, want)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	t.Run("defaults to form", func(t *testing.T) {
		v, err := ParseVariant("")
		if err != nil || v != VariantForm {
			t.Fatalf("expected form, got %q err=%v", v, err)
		}
	})
	t.Run("table is case insensitive", func(t *testing.T) {
		v, err := ParseVariant(" TABLE ")
		if err != nil || v != VariantTable {
			t.Fatalf("expected table, got %q err=%v", v, err)
		}
	})
	t.Run("unknown falls back with error", func(t *testing.T) {
		v, err := ParseVariant("grid")
		if err == nil || v != VariantForm {
			t.Fatalf("expected error and form fallback, got %q err=%v", v, err)
		}
	})
}

func TestWrap(t *testing.T) {
	lines := wrap("entregar na sede\nligar antes", 10)
	want := []string{"entregar", "na sede", "ligar", "antes"}
	if len(lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}

	t.Run("long word is split", func(t *testing.T) {
		lines := wrap("abcdefghijkl", 5)
		if len(lines) != 3 || lines[0] != "abcde" || lines[2] != "kl" {
			t.Fatalf("unexpected split %v", lines)
		}
	})
}
