package openqmc

import (
	"math"
	"runtime"
	"sync"
	"testing"
)

// referenceIntegrand pairs a 2-D test function over [0,1)^2 with its known
// analytic integral, so a Monte Carlo estimate of it can be checked against
// ground truth rather than against another estimate.
type referenceIntegrand struct {
	name     string
	f        func(x, y float64) float64
	integral float64
}

// gaussian1D is the exact value of integral_0^1 exp(-a*(t-0.5)^2) dt.
func gaussian1D(a float64) float64 {
	return math.Sqrt(math.Pi/a) * math.Erf(0.5*math.Sqrt(a))
}

var quarterGaussian1D = 0.5 * math.Sqrt(math.Pi) * math.Erf(1)
var fullGaussian1D = gaussian1D(16)

var referenceIntegrands = []referenceIntegrand{
	{
		name: "quarter-disk",
		f: func(x, y float64) float64 {
			if x*x+y*y < 1 {
				return 1
			}
			return 0
		},
		integral: math.Pi / 4,
	},
	{
		name: "full-disk",
		f: func(x, y float64) float64 {
			cx, cy := x-0.5, y-0.5
			if cx*cx+cy*cy < 0.25 {
				return 1
			}
			return 0
		},
		integral: math.Pi / 4,
	},
	{
		name: "quarter-gaussian",
		f: func(x, y float64) float64 {
			return math.Exp(-(x*x + y*y))
		},
		integral: quarterGaussian1D * quarterGaussian1D,
	},
	{
		name: "full-gaussian",
		f: func(x, y float64) float64 {
			cx, cy := x-0.5, y-0.5
			return math.Exp(-16 * (cx*cx + cy*cy))
		},
		integral: fullGaussian1D * fullGaussian1D,
	},
	{
		name:     "bilinear",
		f:        func(x, y float64) float64 { return x * y },
		integral: 0.25,
	},
	{
		name:     "linear-x",
		f:        func(x, y float64) float64 { return x },
		integral: 0.5,
	},
	{
		name:     "linear-y",
		f:        func(x, y float64) float64 { return y },
		integral: 0.5,
	},
	{
		name: "oriented-heaviside",
		f: func(x, y float64) float64 {
			if x > y {
				return 1
			}
			return 0
		},
		integral: 0.5,
	},
}

// drawer2D is a test-only seam over a concrete sampler's first two draw
// dimensions; sampler types themselves deliberately share no interface
// (the façade pays no vtable cost on the draw path), so this exists only
// to let the validity harness below iterate over all six variants.
type drawer2D func(x, y, frame, index int32) (float64, float64, error)

type samplerUnderTest struct {
	name      string
	cacheSize int
	initCache func([]byte) error
	drawer    func(cache []byte) drawer2D
}

var samplersUnderTest = []samplerUnderTest{
	{
		name: "Sobol", cacheSize: SobolCacheSize,
		drawer: func(cache []byte) drawer2D {
			return func(x, y, frame, index int32) (float64, float64, error) {
				s, err := NewSobol(x, y, frame, index, cache)
				if err != nil {
					return 0, 0, err
				}
				out := s.DrawSampleFloat(2)
				return float64(out[0]), float64(out[1]), nil
			}
		},
	},
	{
		name: "SobolBn", cacheSize: SobolBnCacheSize, initCache: InitialiseSobolBnCache,
		drawer: func(cache []byte) drawer2D {
			return func(x, y, frame, index int32) (float64, float64, error) {
				s, err := NewSobolBn(x, y, frame, index, cache)
				if err != nil {
					return 0, 0, err
				}
				out := s.DrawSampleFloat(2)
				return float64(out[0]), float64(out[1]), nil
			}
		},
	},
	{
		name: "Lattice", cacheSize: LatticeCacheSize,
		drawer: func(cache []byte) drawer2D {
			return func(x, y, frame, index int32) (float64, float64, error) {
				s, err := NewLattice(x, y, frame, index, cache)
				if err != nil {
					return 0, 0, err
				}
				out := s.DrawSampleFloat(2)
				return float64(out[0]), float64(out[1]), nil
			}
		},
	},
	{
		name: "LatticeBn", cacheSize: LatticeBnCacheSize, initCache: InitialiseLatticeBnCache,
		drawer: func(cache []byte) drawer2D {
			return func(x, y, frame, index int32) (float64, float64, error) {
				s, err := NewLatticeBn(x, y, frame, index, cache)
				if err != nil {
					return 0, 0, err
				}
				out := s.DrawSampleFloat(2)
				return float64(out[0]), float64(out[1]), nil
			}
		},
	},
	{
		name: "Pmj", cacheSize: PmjCacheSize, initCache: InitialisePmjCache,
		drawer: func(cache []byte) drawer2D {
			return func(x, y, frame, index int32) (float64, float64, error) {
				s, err := NewPmj(x, y, frame, index, cache)
				if err != nil {
					return 0, 0, err
				}
				out := s.DrawSampleFloat(2)
				return float64(out[0]), float64(out[1]), nil
			}
		},
	},
	{
		name: "PmjBn", cacheSize: PmjBnCacheSize, initCache: InitialisePmjBnCache,
		drawer: func(cache []byte) drawer2D {
			return func(x, y, frame, index int32) (float64, float64, error) {
				s, err := NewPmjBn(x, y, frame, index, cache)
				if err != nil {
					return 0, 0, err
				}
				out := s.DrawSampleFloat(2)
				return float64(out[0]), float64(out[1]), nil
			}
		},
	},
}

const (
	validityPixels         = 8
	validitySamples        = 2048
	validityGridPerAxis    = 8
	numReferenceIntegrands = 8
)

// validityResult is what the worker pool below accumulates per sampler: the
// running sums needed for a z-test per integrand, and the dyadic bin
// counts needed for a chi-square stratification test.
type validityResult struct {
	sum   [numReferenceIntegrands]float64
	sumSq [numReferenceIntegrands]float64
	bins  [validityGridPerAxis * validityGridPerAxis]int
	n     int
}

func (r *validityResult) merge(o *validityResult) {
	for i := range r.sum {
		r.sum[i] += o.sum[i]
		r.sumSq[i] += o.sumSq[i]
	}
	for i := range r.bins {
		r.bins[i] += o.bins[i]
	}
	r.n += o.n
}

// runValiditySampling draws validityPixels*validitySamples points from draw
// (a fresh sampler is constructed for every single draw, per this
// package's "no iterator-style reuse" convention) and accumulates the
// statistics TestStatisticalValidity checks, splitting the work across a worker
// pool in the same fixed-worker-pool pattern used elsewhere for
// concurrent Monte Carlo estimation.
func runValiditySampling(t *testing.T, draw drawer2D) *validityResult {
	t.Helper()
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > validityPixels {
		workers = validityPixels
	}

	resultsCh := make(chan *validityResult, workers)
	var wg sync.WaitGroup
	per, rem := validityPixels/workers, validityPixels%workers
	pixelStart := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		if count == 0 {
			continue
		}
		start := pixelStart
		pixelStart += count
		wg.Add(1)
		go func(start, count int) {
			defer wg.Done()
			local := &validityResult{}
			for p := start; p < start+count; p++ {
				px := int32(7 + 11*p)
				py := int32(3 + 17*p)
				for idx := int32(0); idx < validitySamples; idx++ {
					x, y, err := draw(px, py, 0, idx)
					if err != nil {
						t.Errorf("draw: %v", err)
						return
					}
					for i, ig := range referenceIntegrands {
						v := ig.f(x, y)
						local.sum[i] += v
						local.sumSq[i] += v * v
					}
					cx := int(x * validityGridPerAxis)
					cy := int(y * validityGridPerAxis)
					if cx >= validityGridPerAxis {
						cx = validityGridPerAxis - 1
					}
					if cy >= validityGridPerAxis {
						cy = validityGridPerAxis - 1
					}
					local.bins[cy*validityGridPerAxis+cx]++
					local.n++
				}
			}
			resultsCh <- local
		}(start, count)
	}
	wg.Wait()
	close(resultsCh)

	total := &validityResult{}
	for r := range resultsCh {
		total.merge(r)
	}
	return total
}

// bonferroniZ returns the two-sided z critical value for significance
// alpha after a Bonferroni correction across numTests simultaneous tests.
func bonferroniZ(alpha float64, numTests int) float64 {
	perTest := alpha / float64(numTests)
	return math.Sqrt2 * math.Erfinv(1-perTest)
}

// chiSquareZ converts a chi-square statistic with df degrees of freedom to
// an approximate standard normal deviate via the Wilson-Hilferty
// transformation, avoiding the need for an inverse chi-square CDF (not
// available in, and not a concern this package's corpus has any library
// for).
func chiSquareZ(stat float64, df int) float64 {
	k := float64(df)
	return (math.Cbrt(stat/k) - (1 - 2/(9*k))) / math.Sqrt(2/(9*k))
}

// TestStatisticalValidity implements the §8 "statistical validity"
// property: for every sampler and every reference integrand, a Monte
// Carlo estimate must not diverge from the known analytic integral by
// more than a Bonferroni-corrected z-test threshold, and the 2-D draws
// must stratify across a dyadic grid closely enough not to fail a
// Bonferroni-corrected chi-square goodness-of-fit test.
func TestStatisticalValidity(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical validity sampling is expensive; skipped in -short mode")
	}

	const numCells = validityGridPerAxis * validityGridPerAxis
	numTests := len(samplersUnderTest) + len(samplersUnderTest)*len(referenceIntegrands)
	zCrit := bonferroniZ(0.05, numTests)

	for _, sampler := range samplersUnderTest {
		sampler := sampler
		t.Run(sampler.name, func(t *testing.T) {
			var cache []byte
			if sampler.cacheSize > 0 {
				cache = make([]byte, sampler.cacheSize)
				if sampler.initCache != nil {
					if err := sampler.initCache(cache); err != nil {
						t.Fatalf("initCache: %v", err)
					}
				}
			}
			draw := sampler.drawer(cache)
			result := runValiditySampling(t, draw)
			n := float64(result.n)

			expected := n / numCells
			chi2 := 0.0
			for _, c := range result.bins {
				d := float64(c) - expected
				chi2 += d * d / expected
			}
			// Goodness of fit is an upper-tail test: only a chi-square
			// larger than chance allows (under-stratification) rejects, so
			// the critical value is the one-sided one at the same
			// Bonferroni-corrected level.
			z := chiSquareZ(chi2, numCells-1)
			chiCrit := bonferroniZ(2*0.05, numTests)
			if z > chiCrit {
				t.Errorf("%s: dyadic stratification chi-square rejected the null hypothesis: chi2=%.2f (z=%.2f, zCrit=%.2f)", sampler.name, chi2, z, chiCrit)
			}

			for i, ig := range referenceIntegrands {
				mean := result.sum[i] / n
				variance := result.sumSq[i]/n - mean*mean
				if variance < 0 {
					variance = 0
				}
				se := math.Sqrt(variance / n)
				if se == 0 {
					continue
				}
				zStat := (mean - ig.integral) / se
				if math.Abs(zStat) > zCrit {
					t.Errorf("%s/%s: mean estimate %.6f vs analytic %.6f rejected at z=%.2f (zCrit=%.2f)", sampler.name, ig.name, mean, ig.integral, zStat, zCrit)
				}
			}
		})
	}
}
