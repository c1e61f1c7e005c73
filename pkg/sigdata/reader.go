package sigdata

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Option adjusts reading behavior.
type Option func(*readOptions)

type readOptions struct {
	delimiter rune
}

// WithDelimiter forces the field delimiter instead of sniffing it from
// the header line.
func WithDelimiter(d rune) Option {
	return func(o *readOptions) { o.delimiter = d }
}

// ReadFile loads a matrix from a TSV or CSV file.
func ReadFile(path string, opts ...Option) (*Matrix, error) {
	f, err := os.Open(path) //nolint:gosec // path is the user-requested input file
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix file: %w", err)
	}
	defer func() { _ = f.Close() }()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix %s: %w", path, err)
	}
	return m, nil
}

// Read parses a wide signature matrix. The first header field names
// the mutation-type column; every further field names a sample
// column. The delimiter is sniffed from the header line (tab when one
// is present, comma otherwise) unless forced with WithDelimiter.
func Read(r io.Reader, opts ...Option) (*Matrix, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	br := bufio.NewReader(r)
	if o.delimiter == 0 {
		o.delimiter = sniffDelimiter(br)
	}

	cr := csv.NewReader(br)
	cr.Comma = o.delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header has %d columns, need a mutation-type column and at least one sample", len(header))
	}

	m := &Matrix{Samples: make([]Sample, len(header)-1)}
	for i, name := range header[1:] {
		if name == "" {
			return nil, fmt.Errorf("sample column %d has an empty name", i+2)
		}
		m.Samples[i].Name = name
	}

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if record[0] == "" {
			return nil, fmt.Errorf("line %d: empty mutation type", line)
		}
		m.Keys = append(m.Keys, record[0])
		for i, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: invalid value %q", line, m.Samples[i].Name, field)
			}
			m.Samples[i].Values = append(m.Samples[i].Values, v)
		}
	}

	if len(m.Keys) == 0 {
		return nil, errors.New("matrix has no data rows")
	}
	return m, nil
}

// sniffDelimiter inspects the buffered header line without consuming
// it. Tab wins when present; otherwise comma.
func sniffDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096)
	for _, b := range peek {
		switch b {
		case '\t':
			return '\t'
		case '\n':
			return ','
		}
	}
	return ','
}
