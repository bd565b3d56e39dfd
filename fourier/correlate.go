package fourier

// ConvolveReal computes the linear convolution of two real sequences using
// a single complex FFT: pack a and b into the real and imaginary parts of
// one complex sequence x, forward-transform, square in the frequency
// domain, apply the y[-k]-conj(y[k]) trick to separate the cross term,
// inverse-transform, and take Im(.)/(4n) at index -i mod n for output
// entry i. The result has length
// len(a)+len(b)-1.
func ConvolveReal(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}

	outLen := len(a) + len(b) - 1
	n := NextPow2(outLen)

	x := make([]complex128, n)
	for i, v := range a {
		x[i] = complex(v, 0)
	}
	for i, v := range b {
		x[i] += complex(0, v)
	}

	FFT(x, false)
	for i := range x {
		x[i] = x[i] * x[i]
	}

	out := make([]complex128, n)
	for k := range out {
		j := (-k) & (n - 1)
		out[k] = x[j] - cmplxConj(x[k])
	}
	FFT(out, true)

	// The unnormalized inverse transform of out leaves the convolution
	// index-reversed modulo n, so entry i is read from index -i mod n.
	res := make([]float64, outLen)
	scale := float64(4 * n)
	for i := 0; i < outLen; i++ {
		res[i] = imag(out[(-i)&(n-1)]) / scale
	}

	return res, nil
}

func cmplxConj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

// CorrelateValid computes the "valid mode" cross-correlation of a with b:
// convolution of a with reverse(b), restricted to the len(a)-len(b)+1
// indices where b fully overlaps a. Requires both sequences non-empty and
// len(a) >= len(b).
func CorrelateValid(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptySequence
	}
	if len(a) < len(b) {
		return nil, ErrTooShort
	}

	reversed := make([]float64, len(b))
	for i, v := range b {
		reversed[len(b)-1-i] = v
	}

	full, err := ConvolveReal(a, reversed)
	if err != nil {
		return nil, err
	}

	start := len(b) - 1
	end := len(a) // exclusive upper bound; the valid range's last index is len(a)-1

	return full[start:end], nil
}
