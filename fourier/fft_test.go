package fourier_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/gabmei/spatio-temporal-data-driven-sfc/fourier"
)

func bruteDFT(a []complex128) []complex128 {
	n := len(a)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			theta := -2 * math.Pi * float64(k*j) / float64(n)
			sum += a[j] * cmplx.Exp(complex(0, theta))
		}
		out[k] = sum
	}

	return out
}

func TestFFT_MatchesBruteForceDFT(t *testing.T) {
	in := []complex128{1, 2, 3, 4, 5, 6, 7, 8}
	want := bruteDFT(in)

	got := append([]complex128(nil), in...)
	fourier.FFT(got, false)

	for i := range want {
		if cmplx.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("FFT[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFFT_ForwardThenInverseScalesByN(t *testing.T) {
	in := []complex128{1, -2, 3.5, 0, -1, 2, 0.5, 4}
	n := len(in)

	work := append([]complex128(nil), in...)
	fourier.FFT(work, false)
	fourier.FFT(work, true)

	for i := range in {
		want := in[i] * complex(float64(n), 0)
		if cmplx.Abs(work[i]-want) > 1e-6 {
			t.Fatalf("round-trip[%d] = %v, want %v", i, work[i], want)
		}
	}
}

func bruteConvolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}

	return out
}

func TestConvolveReal_MatchesBruteForce(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{0.5, -1, 2}

	got, err := fourier.ConvolveReal(a, b)
	if err != nil {
		t.Fatalf("ConvolveReal: %v", err)
	}
	want := bruteConvolve(a, b)

	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("ConvolveReal[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func bruteCorrelateValid(a, b []float64) []float64 {
	n, m := len(a), len(b)
	out := make([]float64, n-m+1)
	for shift := 0; shift <= n-m; shift++ {
		var sum float64
		for k := 0; k < m; k++ {
			sum += a[shift+k] * b[k]
		}
		out[shift] = sum
	}

	return out
}

func TestCorrelateValid_MatchesBruteForce(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{1, 0, -1}

	got, err := fourier.CorrelateValid(a, b)
	if err != nil {
		t.Fatalf("CorrelateValid: %v", err)
	}
	want := bruteCorrelateValid(a, b)

	if len(got) != len(want) {
		t.Fatalf("len(got)=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("CorrelateValid[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCorrelateValid_RejectsShortA(t *testing.T) {
	if _, err := fourier.CorrelateValid([]float64{1, 2}, []float64{1, 2, 3}); err != fourier.ErrTooShort {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
}

func TestCorrelateValid_RejectsEmpty(t *testing.T) {
	if _, err := fourier.CorrelateValid(nil, []float64{1}); err != fourier.ErrEmptySequence {
		t.Fatalf("err = %v, want ErrEmptySequence", err)
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024}
	for n, want := range cases {
		if got := fourier.NextPow2(n); got != want {
			t.Errorf("NextPow2(%d) = %d, want %d", n, got, want)
		}
	}
}
