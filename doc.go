// Package pict is an in-memory pixel playground: owned image buffers plus
// zero-copy views that can be split into many simultaneously-live,
// independently mutable sub-regions of the same storage.
//
// 🚀 What is pict?
//
//	A small, composable pixel-buffer library that brings together:
//		• Typed buffers: generic over compact pixel formats (Luma8 … RGBA16)
//		• Views: read-only windows that overlap freely, at zero cost
//		• Mutable views: runtime-checked exclusive windows, splittable into
//		  arbitrary disjoint rectangles safe to hand to separate goroutines
//		• Lazy iteration: row-major pixel walks with or without coordinates
//		• Codecs: PNG and QOI encode/decode at the view boundary
//		• Drawing: lines, circles and fills directly on mutable views
//
// ✨ Why choose pict?
//
//   - No hidden copies – views alias the original storage, always
//   - Rock-solid guarantees – disjointness is checked once, at split time,
//     never per pixel access
//   - Honest failures – every boundary operation returns a sentinel error,
//     nothing is clamped or partially granted
//   - Extensible – wider bit-depth formats and further codecs slot in
//     without touching the core
//
// Under the hood, everything is organized under focused subpackages:
//
//	pixel/    — pixel format catalog + checked byte reinterpretation
//	buffer/   — Buffer, View, ViewMut, splitting & iteration
//	codec/    — decoder/encoder boundary contract
//	png/      — PNG codec (8-bit gray, gray+alpha, RGB, RGBA)
//	qoi/      — QOI codec (RGB8, RGBA8)
//	draw/     — drawing primitives over mutable views
//	stdimage/ — adapters to and from the standard library image types
//
// Quick ASCII example:
//
//	    ┌────┬────┐
//	    │ L  │ R  │   SplitXAtMut(2) on a 4×4 buffer: two live mutable
//	    │ L  │ R  │   halves, filled red and green from two goroutines.
//	    └────┴────┘
//
// Dive into the package docs for full examples, the error taxonomy, and the
// exclusivity model behind ViewMutMultiple.
//
//	go get github.com/katalvlaran/pict
package pict
