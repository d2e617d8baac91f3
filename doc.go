// Package cycles renders numerological cycle charts from layered documents.
//
// # Overview
//
// A chart is derived from a birth date and an age (see package chart). Its
// significant quantities become layer codes, and every document layer named
// after a code is alpha-composited, in paint order, over the document's
// flattened canvas. The result is encoded as PNG.
//
// # Quick Start
//
//	in := chart.BirthInputs{Day: 14, Month: 6, Year: 1946, Age: 79}
//	png, err := cycles.GenerateFile(in, "cycles.psd")
//	if err != nil {
//	    return err
//	}
//
// Repeated renders from one document should share a Renderer, which keeps
// decoded documents in a small cache:
//
//	r := cycles.NewRenderer(cycles.WithWorkers(0))
//	png, err := r.RenderFile(in, "cycles.psd")
//
// # Errors
//
// Read and decode failures wrap document.ErrRead and document.ErrDecode.
// Negative inputs wrap chart.ErrNegativeInput. Layers whose buffer does not
// match the canvas are skipped and logged at warn level; they never fail a
// render.
//
// # Logging
//
// cycles is silent by default. Call SetLogger to receive diagnostics.
package cycles
