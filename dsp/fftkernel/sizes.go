package fftkernel

import "fmt"

// MaxSize is the largest transform size the size oracles consider.
const MaxSize = 1 << 27

var radices = [...]int{2, 3, 5}

// IsSmooth reports whether n > 0 factors completely into 2, 3 and 5.
func IsSmooth(n int) bool {
	if n <= 0 {
		return false
	}
	for _, p := range radices {
		for n%p == 0 {
			n /= p
		}
	}
	return n == 1
}

// Factorize returns the radix-2/3/5 factors of n in ascending order and the
// remaining cofactor (1 when n is smooth).
func Factorize(n int) (factors []int, rest int) {
	if n <= 0 {
		return nil, n
	}
	for _, p := range radices {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	return factors, n
}

// Constraint returns a description of the first size rule n violates for
// kind, or "" when n is a valid size.
func Constraint(n int, kind Kind) string {
	switch {
	case !kind.Valid():
		return fmt.Sprintf("unknown transform kind %d", int(kind))
	case n <= 0:
		return fmt.Sprintf("size %d must be positive", n)
	case n < kind.MinimumSize():
		return fmt.Sprintf("size %d is below the %s minimum of %d", n, kind, kind.MinimumSize())
	case n > MaxSize:
		return fmt.Sprintf("size %d exceeds the maximum of %d", n, MaxSize)
	case kind == Real && n%2 != 0:
		return fmt.Sprintf("real size %d must be even", n)
	}
	if _, rest := Factorize(n); rest != 1 {
		return fmt.Sprintf("size %d has prime factor %d outside {2, 3, 5}", n, smallestPrime(rest))
	}
	return ""
}

// IsValidSize reports whether n satisfies every size rule for kind: at least
// kind.MinimumSize(), only factors 2, 3 and 5, and even for Real.
func IsValidSize(n int, kind Kind) bool {
	return Constraint(n, kind) == ""
}

// NearestValidSize returns the closest valid size >= n when roundUp is set,
// or <= n otherwise. It returns 0 when no valid size exists in that direction.
func NearestValidSize(n int, kind Kind, roundUp bool) int {
	if !kind.Valid() {
		return 0
	}
	minSize := kind.MinimumSize()

	if roundUp {
		if n < minSize {
			n = minSize
		}
		for c := n; c <= MaxSize; c++ {
			if IsValidSize(c, kind) {
				return c
			}
		}
		return 0
	}

	if n > MaxSize {
		n = MaxSize
	}
	for c := n; c >= minSize; c-- {
		if IsValidSize(c, kind) {
			return c
		}
	}
	return 0
}

func smallestPrime(n int) int {
	for p := 7; p*p <= n; p += 2 {
		if n%p == 0 {
			return p
		}
	}
	return n
}

// sizeRules implements the size oracles of Kernel with the shared rules.
type sizeRules struct{}

func (sizeRules) IsValidSize(n int, kind Kind) bool { return IsValidSize(n, kind) }

func (sizeRules) NearestValidSize(n int, kind Kind, roundUp bool) int {
	return NearestValidSize(n, kind, roundUp)
}
