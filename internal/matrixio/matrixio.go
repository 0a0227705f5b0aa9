// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/linmath/matrix"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
	Text Format = "text" // output only
)

var (
	// ErrUnknownFormat is returned for encodings other than YAML/TOML/Text.
	ErrUnknownFormat = errors.New("matrixio: unknown format")

	// ErrMalformed is returned when a document's shape and data disagree.
	ErrMalformed = errors.New("matrixio: malformed document")
)

// Document is the serialised form of a matrix.
type Document struct {
	Rows   int         `yaml:"rows,omitempty" toml:"rows,omitempty"`
	Cols   int         `yaml:"cols,omitempty" toml:"cols,omitempty"`
	Data   []float64   `yaml:"data,omitempty" toml:"data,omitempty"`
	Values [][]float64 `yaml:"values,omitempty" toml:"values,omitempty"`
}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case YAML, TOML, Text:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatForPath picks the decoder from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("extension of %q: %w", path, ErrUnknownFormat)
	}
}

// ReadFile decodes the document at path, choosing the format by extension.
func ReadFile(path string) (*matrix.Matrix[float64], error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Decode reads one document from r.
func Decode(r io.Reader, format Format) (*matrix.Matrix[float64], error) {
	var doc Document
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrMalformed)
		}
	default:
		return nil, fmt.Errorf("decode %q: %w", format, ErrUnknownFormat)
	}

	return doc.Matrix()
}

// Matrix validates the document and builds the matrix it describes.
func (d Document) Matrix() (*matrix.Matrix[float64], error) {
	if len(d.Values) > 0 {
		if d.Data != nil {
			return nil, fmt.Errorf("both data and values set: %w", ErrMalformed)
		}
		return d.fromNested()
	}
	if d.Rows < 0 || d.Cols < 0 {
		return nil, fmt.Errorf("shape %dx%d: %w", d.Rows, d.Cols, ErrMalformed)
	}
	if len(d.Data) != d.Rows*d.Cols {
		return nil, fmt.Errorf("shape %dx%d with %d elements: %w", d.Rows, d.Cols, len(d.Data), ErrMalformed)
	}

	return matrix.FromSlice(d.Rows, d.Cols, d.Data)
}

func (d Document) fromNested() (*matrix.Matrix[float64], error) {
	rows, cols := len(d.Values), len(d.Values[0])
	if (d.Rows != 0 && d.Rows != rows) || (d.Cols != 0 && d.Cols != cols) {
		return nil, fmt.Errorf("declared %dx%d, got %dx%d: %w", d.Rows, d.Cols, rows, cols, ErrMalformed)
	}
	flat := make([]float64, 0, rows*cols)
	for i, row := range d.Values {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrMalformed)
		}
		flat = append(flat, row...)
	}

	return matrix.FromSlice(rows, cols, flat)
}

// NewDocument returns the flat row-major document for m.
func NewDocument(m *matrix.Matrix[float64]) Document {
	rows, cols := m.Shape()
	data := make([]float64, rows*cols)
	copy(data, m.Storage().Data())

	return Document{Rows: rows, Cols: cols, Data: data}
}

// Encode writes m to w. precision applies to Text only; -1 means shortest.
func Encode(w io.Writer, m *matrix.Matrix[float64], format Format, precision int) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(m)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(NewDocument(m)); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	case Text:
		_, err := io.WriteString(w, FormatText(m, precision))
		return err
	default:
		return fmt.Errorf("encode %q: %w", format, ErrUnknownFormat)
	}
}

// FormatText renders one bracketed row per line with fixed precision.
func FormatText(m *matrix.Matrix[float64], precision int) string {
	var buf bytes.Buffer
	for _, rv := range m.RowViews() {
		buf.WriteByte('[')
		for j, v := range rv.All() {
			if j > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(FormatScalar(v, precision))
		}
		buf.WriteString("]\n")
	}

	return buf.String()
}

// FormatScalar formats a single value with the Text precision rules.
func FormatScalar(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}
