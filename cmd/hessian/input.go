package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wippyai/hessian/jsonvalue"
)

// readValue parses the inline JSON if given, else the file, else stdin.
func readValue(stdin io.Reader, inline, file string) (any, error) {
	switch {
	case inline != "":
		return jsonvalue.Parse([]byte(inline))
	case file != "" && file != "-":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return jsonvalue.Decode(f)
	default:
		return jsonvalue.Decode(stdin)
	}
}

// parseHeader splits "name=<json>".
func parseHeader(s string) (string, any, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("header %q: want name=<json>", s)
	}
	v, err := jsonvalue.Parse([]byte(raw))
	if err != nil {
		return "", nil, fmt.Errorf("header %s: %w", name, err)
	}
	return name, v, nil
}
