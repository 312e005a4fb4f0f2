// Package errors provides structured error types for the hessian module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: value path, Go/wire type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOverflow).
//		Path("args[0]", "name").
//		GoType("string").
//		WireType("string").
//		Detail("length 70000 exceeds 65535").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedType(path, "chan int")
//	err := errors.StringEncoding(path, 3, 0xe9)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
