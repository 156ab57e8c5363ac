package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates DFT bin k of a size-n frame without a full transform.
//
// The filter is stateful: Power and Magnitude report the bin value for all
// samples processed since the last Reset. After exactly n samples the result
// equals |X[k]|^2 of an n-point DFT of the same samples.
type Goertzel struct {
	bin, size int
	coeff     float64
	s0, s1    float64
}

// NewGoertzel returns a detector for bin k of an n-point DFT.
// k must lie in [0, n/2].
func NewGoertzel(k, n int) (*Goertzel, error) {
	if n <= 0 {
		return nil, fmt.Errorf("goertzel: size must be > 0: %d", n)
	}
	if k < 0 || k > n/2 {
		return nil, fmt.Errorf("goertzel: bin %d not in [0, %d]", k, n/2)
	}
	return &Goertzel{
		bin:   k,
		size:  n,
		coeff: 2 * math.Cos(2*math.Pi*float64(k)/float64(n)),
	}, nil
}

// Bin returns the analysed bin index.
func (g *Goertzel) Bin() int { return g.bin }

// Size returns the frame size the bin refers to.
func (g *Goertzel) Size() int { return g.size }

// Reset clears the filter state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
}

// ProcessBlock feeds samples into the filter.
func (g *Goertzel) ProcessBlock(input []float32) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := float64(x) + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

// Power returns |X[k]|^2 for the processed samples.
func (g *Goertzel) Power() float64 {
	p := g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
	if p < 0 {
		return 0
	}
	return p
}

// Magnitude returns |X[k]| for the processed samples.
func (g *Goertzel) Magnitude() float64 {
	return math.Sqrt(g.Power())
}

// BinPower returns |X[k]|^2 of the len(frame)-point DFT of frame.
func BinPower(frame []float32, k int) (float64, error) {
	g, err := NewGoertzel(k, len(frame))
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(frame)
	return g.Power(), nil
}
