// Package errors provides structured error types for the wasm-ir
// library.
//
// Errors carry a Phase saying where a violation was detected and a
// Kind saying which contract was broken. Exactly three kinds exist,
// matching the library's failure taxonomy: capacity (an element too
// large for one arena chunk), unmapped (a value outside a closed
// mapping), and invalid_type (a broken type contract).
//
// The IR core is fail-fast: violations panic with *Error instead of
// returning it, since each one is a construction bug in the embedding
// tool rather than a recoverable input condition. Code that wants a
// typed failure can run the Check functions in package ir before
// building, or recover the panic and classify it:
//
//	defer func() {
//		if r := recover(); r != nil {
//			if errors.Match(r, errors.PhasePrint, errors.KindUnmapped) {
//				// operator the text dialect cannot express
//			}
//		}
//	}()
//
// Error implements Unwrap and Is, so the standard errors package
// matches on phase and kind:
//
//	errors.Is(err, &Error{Phase: PhaseBuild, Kind: KindInvalidType})
package errors
