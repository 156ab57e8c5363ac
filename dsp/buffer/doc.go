// Package buffer provides an aligned float32 sample buffer and a pool for
// allocation-free transform processing.
//
// A Buffer owns storage aligned to the byte boundary the transform kernels
// require. Bulk access copies in and out; Samples exposes the raw aligned view
// for transform code and is invalidated by any call that reallocates.
package buffer
