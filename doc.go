// Package openqmc generates deterministic, low-discrepancy multi-dimensional
// sample points for Monte Carlo estimators, principally light-transport
// rendering. Given a pixel coordinate, a time index and a sample index it
// returns values in [0,1) (or their unscaled uint32 / ranged-integer form)
// drawn from one of three base sequences — a stochastic progressive
// multi-jittered (0,2) sequence, an Owen-scrambled Sobol' sequence, and a
// rank-1 lattice — optionally decorrelated across pixels by a table-driven
// blue-noise layer.
//
// Every operation is a pure function of its inputs. Sampler values are
// small and trivially copyable: at most 16 bytes (the 8-byte state plus one
// cache pointer), except PmjBn, which carries two cache pointers and is 24
// bytes on 64-bit targets. They are safe to share read-only cache data
// across goroutines without synchronisation.
package openqmc
