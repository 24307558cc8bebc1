package openqmc

// State is the sampler's 64-bit state: a domain identifier, a sample index
// within that domain, and the encoded pixel the sampler was constructed
// for. It is 8 bytes, trivially copyable, and every method below returns a
// new value rather than mutating the receiver.
type State struct {
	patternID uint32
	sampleID  uint16
	pixelID   uint16
}

// NewState builds the root state for a draw at pixel (x,y,frame), sample
// index.
//
// index must be >= 0 (checked only in debug builds); it is split into a
// 16-bit key used to seed the domain's pattern and a 16-bit id used as the
// initial sample index.
func NewState(x, y, frame int32, index int32) State {
	assertf(index >= 0, "NewState: index must be >= 0, got %d", index)
	u := uint32(index)
	indexKey := uint16(u >> 16)
	indexID := uint16(u & 0xFFFF)
	return State{
		patternID: PCGInitSeed(uint32(indexKey)),
		sampleID:  indexID,
		pixelID:   EncodeBits16(x, y, frame),
	}
}

// PixelDecorrelate returns a child domain keyed by the sampler's own pixel
// id, mixing pixel identity into the pattern without touching sampleID.
func (s State) PixelDecorrelate() State {
	return s.NewDomain(uint32(s.pixelID))
}

// NewDomain returns a pure domain child: patternID is re-keyed, sampleID
// and pixelID are unchanged. Used for padding / orthogonal dimension
// groups.
func (s State) NewDomain(key uint32) State {
	return State{
		patternID: PCGStateTransition(s.patternID + key),
		sampleID:  s.sampleID,
		pixelID:   s.pixelID,
	}
}

// NewDomainSplit implements a fixed-multiplier split: size child samples
// are drawn per parent sample, indexed by index in [0,size). The composite
// index sampleID*size+index remains a contiguous prefix of the parent's
// index space, which is what preserves global correlation across the
// split.
//
// size must be > 0 and index must be >= 0 (checked only in debug builds).
func (s State) NewDomainSplit(key uint32, size, index int32) State {
	assertf(size > 0, "NewDomainSplit: size must be > 0, got %d", size)
	assertf(index >= 0, "NewDomainSplit: index must be >= 0, got %d", index)
	combined := uint32(s.sampleID)*uint32(size) + uint32(index)
	indexKey := combined >> 16
	indexID := uint16(combined & 0xFFFF)
	ret := s.NewDomain(key).NewDomain(indexKey)
	ret.sampleID = indexID
	return ret
}

// NewDomainDistrib implements an adaptive split with a variable branching
// factor: an extra NewDomain(sampleID) step decorrelates the local pattern
// from its siblings, trading global correlation for freedom in the
// multiplier.
//
// index must be >= 0 (checked only in debug builds).
func (s State) NewDomainDistrib(key uint32, index int32) State {
	assertf(index >= 0, "NewDomainDistrib: index must be >= 0, got %d", index)
	u := uint32(index)
	indexKey := u >> 16
	indexID := uint16(u & 0xFFFF)
	ret := s.NewDomain(key).NewDomain(indexKey).NewDomain(uint32(s.sampleID))
	ret.sampleID = indexID
	return ret
}

// NewDomainChain is sugar for NewDomain(key).NewDomain(index): a
// globally-distributed adaptive variant exposed by the sampler façade.
//
// index must be >= 0 (checked only in debug builds).
func (s State) NewDomainChain(key uint32, index int32) State {
	assertf(index >= 0, "NewDomainChain: index must be >= 0, got %d", index)
	return s.NewDomain(key).NewDomain(uint32(index))
}

// drawRndState draws up to 4 pseudo-random uint32s from a local stateful
// PCG stream seeded at patternID+sampleID. The receiver is not mutated;
// the stream lives in a local copy.
func (s State) drawRndState(n int) [maxDimension]uint32 {
	assertf(n >= 1 && n <= maxDimension, "drawRnd: n must be in [1,%d], got %d", maxDimension, n)
	stream := s.patternID + uint32(s.sampleID)
	var out [maxDimension]uint32
	for i := 0; i < n; i++ {
		out[i] = PCGNext(&stream)
	}
	return out
}
