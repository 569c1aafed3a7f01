// Package correlation measures what a generator actually produced.
//
// Spike trains are binned into binary occupancy vectors (one bool per bin:
// did at least one event land there?) and compared pairwise with the sample
// Pearson correlation coefficient. Results come back in row-major upper
// triangle order: (0,1), (0,2), ..., (0,n-1), (1,2), ..., (n-2,n-1), which is
// the same order the generator expects its target coefficients in.
//
// A constant occupancy vector has zero variance and no defined correlation.
// Pearson reports that case as NaN together with ErrDegenerateCorrelation;
// it is never silently mapped to zero.
//
// This package is for verification only and is not on the generation path.
package correlation
