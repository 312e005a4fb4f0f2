// Command hessian encodes JSON-described values and RPC calls in the
// Hessian 1.0.2 wire format and prints the result as a hex dump.
//
//	hessian encode --json '{"a": 1}'
//	hessian call --method add --overload --json '[1, 2]'
//	hessian tui
package main

func main() {
	Execute()
}
