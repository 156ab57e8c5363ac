package fftkernel

import (
	"strings"
	"testing"
)

func TestIsValidSize(t *testing.T) {
	tests := []struct {
		n    int
		kind Kind
		want bool
	}{
		{31, Real, false},
		{32, Real, true},
		{64, Real, true},
		{100, Real, true},
		{96, Complex, true},
		{16, Complex, true},
		{15, Complex, false},
		{16, Real, false},
		{45, Real, false},
		{45, Complex, true},
		{98, Real, false},
		{0, Real, false},
		{-64, Complex, false},
		{MaxSize, Real, true},
		{MaxSize * 2, Complex, false},
		{64, Kind(7), false},
	}

	for _, tt := range tests {
		if got := IsValidSize(tt.n, tt.kind); got != tt.want {
			t.Fatalf("IsValidSize(%d, %s) = %v, want %v", tt.n, tt.kind, got, tt.want)
		}
	}
}

func TestNearestValidSize(t *testing.T) {
	tests := []struct {
		n       int
		kind    Kind
		roundUp bool
		want    int
	}{
		{100, Real, true, 100},
		{100, Real, false, 100},
		{101, Real, true, 108},
		{101, Real, false, 100},
		{97, Complex, true, 100},
		{97, Complex, false, 96},
		{1, Real, true, 32},
		{1, Complex, true, 16},
		{31, Real, false, 0},
		{MaxSize + 1, Complex, true, 0},
		{MaxSize + 1, Complex, false, MaxSize},
	}

	for _, tt := range tests {
		if got := NearestValidSize(tt.n, tt.kind, tt.roundUp); got != tt.want {
			t.Fatalf("NearestValidSize(%d, %s, %v) = %d, want %d", tt.n, tt.kind, tt.roundUp, got, tt.want)
		}
	}
}

func TestNearestValidSizeIsValid(t *testing.T) {
	for n := 1; n < 2000; n += 7 {
		for _, kind := range []Kind{Real, Complex} {
			up := NearestValidSize(n, kind, true)
			if !IsValidSize(up, kind) || up < n {
				t.Fatalf("NearestValidSize(%d, %s, up) = %d", n, kind, up)
			}
			if down := NearestValidSize(n, kind, false); down != 0 && (!IsValidSize(down, kind) || down > n) {
				t.Fatalf("NearestValidSize(%d, %s, down) = %d", n, kind, down)
			}
		}
	}
}

func TestFactorize(t *testing.T) {
	factors, rest := Factorize(360)
	if rest != 1 {
		t.Fatalf("rest = %d, want 1", rest)
	}
	want := []int{2, 2, 2, 3, 3, 5}
	if len(factors) != len(want) {
		t.Fatalf("factors = %v, want %v", factors, want)
	}
	for i := range want {
		if factors[i] != want[i] {
			t.Fatalf("factors = %v, want %v", factors, want)
		}
	}

	if _, rest := Factorize(2 * 49); rest != 49 {
		t.Fatalf("rest = %d, want 49", rest)
	}
	if !IsSmooth(1) || IsSmooth(14) || IsSmooth(0) {
		t.Fatal("IsSmooth mismatch")
	}
}

func TestConstraintMessages(t *testing.T) {
	tests := []struct {
		n    int
		kind Kind
		want string
	}{
		{16, Real, "minimum of 32"},
		{0, Complex, "must be positive"},
		{90, Real, ""},
		{45, Real, "must be even"},
		{7 * 32, Real, "prime factor 7"},
		{11 * 13 * 16, Complex, "prime factor 11"},
		{MaxSize * 2, Real, "exceeds the maximum"},
		{64, Kind(-1), "unknown transform kind"},
	}

	for _, tt := range tests {
		got := Constraint(tt.n, tt.kind)
		if tt.want == "" {
			if got != "" {
				t.Fatalf("Constraint(%d, %s) = %q, want valid", tt.n, tt.kind, got)
			}
			continue
		}
		if !strings.Contains(got, tt.want) {
			t.Fatalf("Constraint(%d, %s) = %q, want substring %q", tt.n, tt.kind, got, tt.want)
		}
	}
}

func TestKind(t *testing.T) {
	if Real.SpectrumLen(64) != 33 || Complex.SpectrumLen(64) != 64 || Real.SpectrumLen(0) != 0 {
		t.Fatal("SpectrumLen mismatch")
	}
	if Real.FloatLen(64) != 64 || Complex.FloatLen(64) != 128 {
		t.Fatal("FloatLen mismatch")
	}
	if Real.MinimumSize() != 32 || Complex.MinimumSize() != 16 {
		t.Fatal("MinimumSize mismatch")
	}

	for _, s := range []string{"real", " Real ", "r"} {
		if k, err := ParseKind(s); err != nil || k != Real {
			t.Fatalf("ParseKind(%q) = %v, %v", s, k, err)
		}
	}
	if k, err := ParseKind("COMPLEX"); err != nil || k != Complex {
		t.Fatalf("ParseKind(COMPLEX) = %v, %v", k, err)
	}
	if _, err := ParseKind("hartley"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if Kind(9).String() != "kind(9)" {
		t.Fatalf("String = %q", Kind(9).String())
	}
}
