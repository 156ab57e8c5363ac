// Package transform provides Engine, a reusable real and complex DFT engine
// for fixed-size audio frames.
//
// An Engine is configured once for a size and kind with Setup, which
// validates the size against the kernel's mixed-radix rules and builds the
// plan, scratch and staging memory. Transforms after that never allocate on
// the Into and Buffer paths.
//
// Real spectra are exchanged as N/2+1 complex64 bins. Bin 0 (DC) and bin N/2
// (Nyquist) always carry a zero imaginary part. Forward transforms are
// unscaled and every inverse is scaled by 1/N exactly once, so
// InverseReal(ForwardReal(x)) reproduces x.
//
//	e, err := transform.NewEngine(1024, fftkernel.Real)
//	if err != nil {
//	    return err
//	}
//	defer e.Close()
//	spec, err := e.ForwardReal(frame)
//	mag := transform.Magnitude(spec)
//
// An Engine is not safe for concurrent use. Use one engine per processing
// context and never call Setup while a transform runs on another goroutine.
package transform
