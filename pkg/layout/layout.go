package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/annotick/annotick/pkg/axis"
)

// Layout is the complete result of laying out one axis: the placements,
// any leader geometry, and enough metadata to re-render or cache it.
type Layout struct {
	Side       axis.Side     `json:"side"`
	Range      axis.Range    `json:"range"`
	Mode       string        `json:"mode"`
	Placements []Placement   `json:"placements"`
	Leaders    []Leader      `json:"leaders,omitempty"`
	Residual   float64       `json:"residual,omitempty"`
	Styles     axis.StyleMap `json:"styles,omitempty"`
}

// MarshalLayout converts a Layout to indented JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeLayoutTo(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalLayout decodes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	return readLayoutFrom(bytes.NewReader(data))
}

// WriteLayoutFile writes a Layout to a JSON file.
// The file is created with 0644 permissions.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeLayoutTo(l, f)
}

// ReadLayoutFile reads a JSON file and returns the decoded Layout.
func ReadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readLayoutFrom(f)
}

func writeLayoutTo(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readLayoutFrom(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decode: %w", err)
	}
	return l, nil
}
