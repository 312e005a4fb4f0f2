// Package kind defines the wire value categories the encoder dispatches on.
//
// Each Kind names one encoding rule and carries the argument tag used when
// call overload naming is enabled. Value is the abstract root of the type
// hierarchy; it is declared as an ancestor but never registered.
//
// This package is internal to the encoder.
package kind
