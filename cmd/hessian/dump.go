package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	byteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	asciiStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	tagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

const defaultRowBytes = 16

// writeResult prints the tag and a hex dump, or only the bytes when raw.
func writeResult(out io.Writer, tag string, data []byte, raw bool) error {
	if raw {
		_, err := out.Write(data)
		return err
	}

	styled, width := terminal(out)
	header := fmt.Sprintf("%s (%d bytes)", tag, len(data))
	if styled {
		header = tagStyle.Render(tag) + fmt.Sprintf(" %d bytes", len(data))
	}
	_, err := fmt.Fprintf(out, "%s\n%s", header, dump(data, rowBytes(width), styled))
	return err
}

// terminal reports whether out is a TTY and its width.
func terminal(out io.Writer) (bool, int) {
	f, ok := out.(*os.File)
	if !ok {
		return false, 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return false, 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return true, 0
	}
	return true, width
}

// rowBytes fits as many multiples of 8 bytes as the width allows. Each
// byte takes three hex columns and one ASCII column, plus a fixed margin.
func rowBytes(width int) int {
	if width <= 0 {
		return defaultRowBytes
	}
	n := (width - 12) / 4 / 8 * 8
	switch {
	case n < 8:
		return 8
	case n > 32:
		return 32
	}
	return n
}

// dump renders data as offset, hex and ASCII columns.
func dump(data []byte, perRow int, styled bool) string {
	var b strings.Builder
	for off := 0; off < len(data); off += perRow {
		row := data[off:min(off+perRow, len(data))]

		cells := make([]string, len(row))
		for i := range row {
			cells[i] = hex.EncodeToString(row[i : i+1])
		}
		hexCol := strings.Join(cells, " ")
		hexCol += strings.Repeat(" ", perRow*3-1-len(hexCol))

		ascii := make([]byte, len(row))
		for i, c := range row {
			if c >= 0x20 && c < 0x7f {
				ascii[i] = c
			} else {
				ascii[i] = '.'
			}
		}

		offset := fmt.Sprintf("%08x", off)
		if styled {
			offset = offsetStyle.Render(offset)
			hexCol = byteStyle.Render(hexCol)
			ascii = []byte(asciiStyle.Render(string(ascii)))
		}
		fmt.Fprintf(&b, "%s  %s  |%s|\n", offset, hexCol, ascii)
	}
	return b.String()
}
