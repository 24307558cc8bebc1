package openqmc

import "fmt"

// Each concrete sampler reports its cache size as a named constant so
// callers can allocate the right buffer without constructing a value
// first.
const (
	SobolCacheSize     = 0
	SobolBnCacheSize   = 2 * tableSize * 4
	LatticeCacheSize   = 0
	LatticeBnCacheSize = 2 * tableSize * 4
	PmjCacheSize       = tableSize * 4 * 4
	PmjBnCacheSize     = PmjCacheSize + SobolBnCacheSize
)

func decodeBlueNoiseCache(buf []byte) (*blueNoiseTables, error) {
	if len(buf) != SobolBnCacheSize {
		return nil, fmt.Errorf("openqmc: blue-noise cache must be %d bytes, got %d", SobolBnCacheSize, len(buf))
	}
	return bytesToBlueNoiseTables(buf), nil
}

func initialiseBlueNoiseCache(buf []byte) error {
	if len(buf) != SobolBnCacheSize {
		return fmt.Errorf("openqmc: blue-noise cache must be %d bytes, got %d", SobolBnCacheSize, len(buf))
	}
	assertAligned4(buf)
	*bytesToBlueNoiseTables(buf) = *buildBlueNoiseTables()
	return nil
}

// drawBlueNoise implements the §4.9 index/seed re-keying shared by every
// blue-noise variant: the per-pixel sampleId is scrambled by XOR with
// rank, and key becomes the seed handed to the underlying base sequence.
func drawBlueNoise(s State, tables *blueNoiseTables) (index, seed uint32) {
	key, rank := blueNoiseLookup(tables, s.pixelID, s.patternID)
	return uint32(s.sampleID) ^ rank, key
}

func toFloatSample(raw [maxDimension]uint32) [maxDimension]float32 {
	var out [maxDimension]float32
	for i, v := range raw {
		out[i] = uintToFloat(v)
	}
	return out
}

func toRangeSample(raw [maxDimension]uint32, r uint32) [maxDimension]uint32 {
	assertf(r > 0, "DrawSampleRange: range must be > 0")
	var out [maxDimension]uint32
	for i, v := range raw {
		out[i] = uintToRange(v, r)
	}
	return out
}

// Sobol draws from the Owen-scrambled Sobol' sequence with no blue-noise
// layer; it has an empty cache.
type Sobol struct{ state State }

// NewSobol constructs a root Sobol sampler; cache must be empty (len 0).
func NewSobol(x, y, frame, index int32, cache []byte) (Sobol, error) {
	if len(cache) != SobolCacheSize {
		return Sobol{}, fmt.Errorf("openqmc: Sobol cache must be empty, got %d bytes", len(cache))
	}
	return Sobol{state: NewState(x, y, frame, index).PixelDecorrelate()}, nil
}

func (s Sobol) NewDomain(key int32) Sobol { return Sobol{state: s.state.NewDomain(uint32(key))} }
func (s Sobol) NewDomainSplit(key, size, index int32) Sobol {
	return Sobol{state: s.state.NewDomainSplit(uint32(key), size, index)}
}
func (s Sobol) NewDomainDistrib(key, index int32) Sobol {
	return Sobol{state: s.state.NewDomainDistrib(uint32(key), index)}
}
func (s Sobol) NewDomainChain(key, index int32) Sobol {
	return Sobol{state: s.state.NewDomainChain(uint32(key), index)}
}

// DrawSample draws the n-dimensional sample (1<=n<=4); callers take
// out[:n]. The full width is always computed, matching every other
// base-sequence draw in this package, so there is no per-call allocation.
func (s Sobol) DrawSample(n int) [maxDimension]uint32 {
	assertf(n >= 1 && n <= maxDimension, "DrawSample: n must be in [1,%d], got %d", maxDimension, n)
	return SobolDraw(uint32(s.state.sampleID), PCGOutput(s.state.patternID))
}

func (s Sobol) DrawSampleFloat(n int) [maxDimension]float32 { return toFloatSample(s.DrawSample(n)) }
func (s Sobol) DrawSampleRange(n int, r uint32) [maxDimension]uint32 {
	return toRangeSample(s.DrawSample(n), r)
}
func (s Sobol) DrawRnd(n int) [maxDimension]uint32 { return s.state.drawRndState(n) }

// SobolBn layers the §4.9 blue-noise table over Sobol: the per-pixel
// sample index is scrambled by XOR with a looked-up rank, and the looked-up
// key becomes the per-draw seed.
type SobolBn struct {
	state State
	cache *blueNoiseTables
}

// NewSobolBn constructs a root SobolBn sampler over a cache previously
// filled by InitialiseSobolBnCache.
func NewSobolBn(x, y, frame, index int32, cache []byte) (SobolBn, error) {
	c, err := decodeBlueNoiseCache(cache)
	if err != nil {
		return SobolBn{}, err
	}
	return SobolBn{state: NewState(x, y, frame, index), cache: c}, nil
}

// InitialiseSobolBnCache writes the key/rank tables SobolBn needs into buf,
// which must be exactly SobolBnCacheSize bytes and 4-byte aligned.
func InitialiseSobolBnCache(buf []byte) error {
	return initialiseBlueNoiseCache(buf)
}

func (s SobolBn) NewDomain(key int32) SobolBn {
	return SobolBn{state: s.state.NewDomain(uint32(key)), cache: s.cache}
}
func (s SobolBn) NewDomainSplit(key, size, index int32) SobolBn {
	return SobolBn{state: s.state.NewDomainSplit(uint32(key), size, index), cache: s.cache}
}
func (s SobolBn) NewDomainDistrib(key, index int32) SobolBn {
	return SobolBn{state: s.state.NewDomainDistrib(uint32(key), index), cache: s.cache}
}
func (s SobolBn) NewDomainChain(key, index int32) SobolBn {
	return SobolBn{state: s.state.NewDomainChain(uint32(key), index), cache: s.cache}
}

func (s SobolBn) DrawSample(n int) [maxDimension]uint32 {
	assertf(n >= 1 && n <= maxDimension, "DrawSample: n must be in [1,%d], got %d", maxDimension, n)
	index, seed := drawBlueNoise(s.state, s.cache)
	return SobolDraw(index, seed)
}

func (s SobolBn) DrawSampleFloat(n int) [maxDimension]float32 { return toFloatSample(s.DrawSample(n)) }
func (s SobolBn) DrawSampleRange(n int, r uint32) [maxDimension]uint32 {
	return toRangeSample(s.DrawSample(n), r)
}

// DrawRnd re-routes through a pixel-correlated sub-domain, per §4.9, so
// pseudo-random draws stay pixel-decorrelated regardless of the blue-noise
// re-keying applied to DrawSample.
func (s SobolBn) DrawRnd(n int) [maxDimension]uint32 {
	return s.state.NewDomain(uint32(s.state.pixelID)).drawRndState(n)
}

// Lattice draws from the rank-1 lattice sequence. Unlike Sobol and Pmj, it
// does not pixel-decorrelate on construction — the generator vector is
// already correlated across pixels by design, and callers who want
// inter-pixel decorrelation apply NewDomain(pixelId) externally first.
type Lattice struct{ state State }

func NewLattice(x, y, frame, index int32, cache []byte) (Lattice, error) {
	if len(cache) != LatticeCacheSize {
		return Lattice{}, fmt.Errorf("openqmc: Lattice cache must be empty, got %d bytes", len(cache))
	}
	return Lattice{state: NewState(x, y, frame, index)}, nil
}

func (s Lattice) NewDomain(key int32) Lattice { return Lattice{state: s.state.NewDomain(uint32(key))} }
func (s Lattice) NewDomainSplit(key, size, index int32) Lattice {
	return Lattice{state: s.state.NewDomainSplit(uint32(key), size, index)}
}
func (s Lattice) NewDomainDistrib(key, index int32) Lattice {
	return Lattice{state: s.state.NewDomainDistrib(uint32(key), index)}
}
func (s Lattice) NewDomainChain(key, index int32) Lattice {
	return Lattice{state: s.state.NewDomainChain(uint32(key), index)}
}

func (s Lattice) DrawSample(n int) [maxDimension]uint32 {
	assertf(n >= 1 && n <= maxDimension, "DrawSample: n must be in [1,%d], got %d", maxDimension, n)
	return LatticeDraw(uint32(s.state.sampleID), s.state.patternID)
}

func (s Lattice) DrawSampleFloat(n int) [maxDimension]float32 { return toFloatSample(s.DrawSample(n)) }
func (s Lattice) DrawSampleRange(n int, r uint32) [maxDimension]uint32 {
	return toRangeSample(s.DrawSample(n), r)
}
func (s Lattice) DrawRnd(n int) [maxDimension]uint32 { return s.state.drawRndState(n) }

// LatticeBn layers the blue-noise table over Lattice, exactly as SobolBn
// does over Sobol.
type LatticeBn struct {
	state State
	cache *blueNoiseTables
}

func NewLatticeBn(x, y, frame, index int32, cache []byte) (LatticeBn, error) {
	c, err := decodeBlueNoiseCache(cache)
	if err != nil {
		return LatticeBn{}, err
	}
	return LatticeBn{state: NewState(x, y, frame, index), cache: c}, nil
}

// InitialiseLatticeBnCache writes the key/rank tables LatticeBn needs into
// buf, which must be exactly LatticeBnCacheSize bytes and 4-byte aligned.
func InitialiseLatticeBnCache(buf []byte) error {
	return initialiseBlueNoiseCache(buf)
}

func (s LatticeBn) NewDomain(key int32) LatticeBn {
	return LatticeBn{state: s.state.NewDomain(uint32(key)), cache: s.cache}
}
func (s LatticeBn) NewDomainSplit(key, size, index int32) LatticeBn {
	return LatticeBn{state: s.state.NewDomainSplit(uint32(key), size, index), cache: s.cache}
}
func (s LatticeBn) NewDomainDistrib(key, index int32) LatticeBn {
	return LatticeBn{state: s.state.NewDomainDistrib(uint32(key), index), cache: s.cache}
}
func (s LatticeBn) NewDomainChain(key, index int32) LatticeBn {
	return LatticeBn{state: s.state.NewDomainChain(uint32(key), index), cache: s.cache}
}

func (s LatticeBn) DrawSample(n int) [maxDimension]uint32 {
	assertf(n >= 1 && n <= maxDimension, "DrawSample: n must be in [1,%d], got %d", maxDimension, n)
	index, seed := drawBlueNoise(s.state, s.cache)
	return LatticeDraw(index, seed)
}

func (s LatticeBn) DrawSampleFloat(n int) [maxDimension]float32 {
	return toFloatSample(s.DrawSample(n))
}
func (s LatticeBn) DrawSampleRange(n int, r uint32) [maxDimension]uint32 {
	return toRangeSample(s.DrawSample(n), r)
}
func (s LatticeBn) DrawRnd(n int) [maxDimension]uint32 {
	return s.state.NewDomain(uint32(s.state.pixelID)).drawRndState(n)
}

// Pmj draws from the stochastic progressive-jittered (0,2) table, applying
// pixelDecorrelate on construction like Sobol.
type Pmj struct {
	state State
	table *[tableSize][maxDimension]uint32
}

func NewPmj(x, y, frame, index int32, cache []byte) (Pmj, error) {
	if len(cache) != PmjCacheSize {
		return Pmj{}, fmt.Errorf("openqmc: Pmj cache must be %d bytes, got %d", PmjCacheSize, len(cache))
	}
	return Pmj{state: NewState(x, y, frame, index).PixelDecorrelate(), table: bytesToPmjTable(cache)}, nil
}

// InitialisePmjCache writes the stochastic (0,2) table Pmj needs into buf,
// which must be exactly PmjCacheSize bytes and 4-byte aligned.
func InitialisePmjCache(buf []byte) error {
	if len(buf) != PmjCacheSize {
		return fmt.Errorf("openqmc: Pmj cache must be %d bytes, got %d", PmjCacheSize, len(buf))
	}
	assertAligned4(buf)
	*bytesToPmjTable(buf) = *buildPMJTable()
	return nil
}

func (s Pmj) NewDomain(key int32) Pmj {
	return Pmj{state: s.state.NewDomain(uint32(key)), table: s.table}
}
func (s Pmj) NewDomainSplit(key, size, index int32) Pmj {
	return Pmj{state: s.state.NewDomainSplit(uint32(key), size, index), table: s.table}
}
func (s Pmj) NewDomainDistrib(key, index int32) Pmj {
	return Pmj{state: s.state.NewDomainDistrib(uint32(key), index), table: s.table}
}
func (s Pmj) NewDomainChain(key, index int32) Pmj {
	return Pmj{state: s.state.NewDomainChain(uint32(key), index), table: s.table}
}

func (s Pmj) DrawSample(n int) [maxDimension]uint32 {
	assertf(n >= 1 && n <= maxDimension, "DrawSample: n must be in [1,%d], got %d", maxDimension, n)
	return pmjDraw(s.table, uint32(s.state.sampleID), PCGOutput(s.state.patternID))
}

func (s Pmj) DrawSampleFloat(n int) [maxDimension]float32 { return toFloatSample(s.DrawSample(n)) }
func (s Pmj) DrawSampleRange(n int, r uint32) [maxDimension]uint32 {
	return toRangeSample(s.DrawSample(n), r)
}
func (s Pmj) DrawRnd(n int) [maxDimension]uint32 { return s.state.drawRndState(n) }

// PmjBn layers the blue-noise table over Pmj.
type PmjBn struct {
	state State
	table *[tableSize][maxDimension]uint32
	cache *blueNoiseTables
}

func NewPmjBn(x, y, frame, index int32, cache []byte) (PmjBn, error) {
	if len(cache) != PmjBnCacheSize {
		return PmjBn{}, fmt.Errorf("openqmc: PmjBn cache must be %d bytes, got %d", PmjBnCacheSize, len(cache))
	}
	table := bytesToPmjTable(cache[:PmjCacheSize])
	bn, err := decodeBlueNoiseCache(cache[PmjCacheSize:])
	if err != nil {
		return PmjBn{}, err
	}
	return PmjBn{state: NewState(x, y, frame, index), table: table, cache: bn}, nil
}

// InitialisePmjBnCache writes the PMJ table followed by the key/rank
// tables into buf, which must be exactly PmjBnCacheSize bytes.
func InitialisePmjBnCache(buf []byte) error {
	if len(buf) != PmjBnCacheSize {
		return fmt.Errorf("openqmc: PmjBn cache must be %d bytes, got %d", PmjBnCacheSize, len(buf))
	}
	if err := InitialisePmjCache(buf[:PmjCacheSize]); err != nil {
		return err
	}
	return initialiseBlueNoiseCache(buf[PmjCacheSize:])
}

func (s PmjBn) NewDomain(key int32) PmjBn {
	return PmjBn{state: s.state.NewDomain(uint32(key)), table: s.table, cache: s.cache}
}
func (s PmjBn) NewDomainSplit(key, size, index int32) PmjBn {
	return PmjBn{state: s.state.NewDomainSplit(uint32(key), size, index), table: s.table, cache: s.cache}
}
func (s PmjBn) NewDomainDistrib(key, index int32) PmjBn {
	return PmjBn{state: s.state.NewDomainDistrib(uint32(key), index), table: s.table, cache: s.cache}
}
func (s PmjBn) NewDomainChain(key, index int32) PmjBn {
	return PmjBn{state: s.state.NewDomainChain(uint32(key), index), table: s.table, cache: s.cache}
}

func (s PmjBn) DrawSample(n int) [maxDimension]uint32 {
	assertf(n >= 1 && n <= maxDimension, "DrawSample: n must be in [1,%d], got %d", maxDimension, n)
	index, seed := drawBlueNoise(s.state, s.cache)
	return pmjDraw(s.table, index, seed)
}

func (s PmjBn) DrawSampleFloat(n int) [maxDimension]float32 { return toFloatSample(s.DrawSample(n)) }
func (s PmjBn) DrawSampleRange(n int, r uint32) [maxDimension]uint32 {
	return toRangeSample(s.DrawSample(n), r)
}
func (s PmjBn) DrawRnd(n int) [maxDimension]uint32 {
	return s.state.NewDomain(uint32(s.state.pixelID)).drawRndState(n)
}
