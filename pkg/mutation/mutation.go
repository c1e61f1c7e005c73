// Package mutation defines the vocabulary of single base substitution
// (SBS) mutation keys used by signature matrices.
//
// A mutation key encodes a substitution and its sequence context, e.g.
// A[C>A]A (trinucleotide) or AA[C>A]AA (pentanucleotide). This package
// contains:
//   - Key parsing and validation (Parse, Type)
//   - The six canonical substitution classes (Class, Classes)
//   - The canonical 96-type trinucleotide catalog (Catalog96)
//   - Flanking-position helpers (FlankIndexes, PositionLabels)
//   - Natural ordering for signature names (NaturalLess)
//
// The Golden Rule: pkg/mutation imports ONLY stdlib.
// All other packages depend on it, not the reverse.
package mutation

import (
	"fmt"
	"strings"
)

// Class is one of the six canonical single base substitution classes.
// By the pyrimidine convention the reference base is always C or T.
type Class string

// Canonical substitution classes.
const (
	ClassCA Class = "C>A"
	ClassCG Class = "C>G"
	ClassCT Class = "C>T"
	ClassTA Class = "T>A"
	ClassTC Class = "T>C"
	ClassTG Class = "T>G"
)

// Classes returns the six substitution classes in canonical order.
// This order controls panel block sequencing in rendered charts and
// must never change.
func Classes() []Class {
	return []Class{ClassCA, ClassCG, ClassCT, ClassTA, ClassTC, ClassTG}
}

// Type is a validated SBS mutation key such as "A[C>A]A" or
// "AA[C>A]AA". The zero value is not valid; obtain one via Parse.
type Type string

// ParseError describes a mutation key that fails validation.
type ParseError struct {
	// Key is the offending input string.
	Key string
	// Reason is a short human-readable description of the failure.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed mutation type %q: %s", e.Key, e.Reason)
}

// Parse validates a mutation key. Keys must have the shape
// F..F[R>A]F..F with the same number of flanking bases on each side,
// every base in {A,C,G,T}, and a reference base of C or T.
func Parse(s string) (Type, error) {
	open := strings.IndexByte(s, '[')
	if open < 1 {
		return "", &ParseError{Key: s, Reason: "missing bracketed substitution"}
	}
	if len(s) != 2*open+5 {
		return "", &ParseError{Key: s, Reason: "flanking context is not symmetric"}
	}
	if s[open+2] != '>' || s[open+4] != ']' {
		return "", &ParseError{Key: s, Reason: "substitution must have the form [X>Y]"}
	}
	ref, alt := s[open+1], s[open+3]
	if ref != 'C' && ref != 'T' {
		return "", &ParseError{Key: s, Reason: "reference base must be C or T"}
	}
	if !isBase(alt) {
		return "", &ParseError{Key: s, Reason: "alternate base must be one of A, C, G, T"}
	}
	if alt == ref {
		return "", &ParseError{Key: s, Reason: "substitution must change the base"}
	}
	for i := 0; i < open; i++ {
		if !isBase(s[i]) {
			return "", &ParseError{Key: s, Reason: fmt.Sprintf("invalid flanking base %q", s[i])}
		}
	}
	for i := open + 5; i < len(s); i++ {
		if !isBase(s[i]) {
			return "", &ParseError{Key: s, Reason: fmt.Sprintf("invalid flanking base %q", s[i])}
		}
	}
	return Type(s), nil
}

// String returns the raw key.
func (t Type) String() string { return string(t) }

// Width is the number of context positions including the mutated base:
// 3 for A[C>A]A, 5 for AA[C>A]AA. Always odd for a parsed Type.
func (t Type) Width() int { return len(t) - 4 }

// Class returns the substitution class embedded in the key.
func (t Type) Class() Class {
	open := (len(t) - 5) / 2
	return Class(t[open+1 : open+4])
}

// Core returns the trinucleotide core of the key: the bracketed
// substitution plus the immediately adjacent flanking base on each
// side. For a trinucleotide key the core is the key itself.
func (t Type) Core() string {
	open := (len(t) - 5) / 2
	return string(t[open-1 : open+6])
}

// BaseAt returns the byte at a flanking string index. Negative indexes
// count from the end of the key, mirroring the index scheme returned
// by FlankIndexes.
func (t Type) BaseAt(i int) byte {
	if i < 0 {
		i += len(t)
	}
	return t[i]
}

// CompactLabel shortens a trinucleotide core to its three bases:
// "A[C>A]A" becomes "ACA". The input must be a core as returned by
// Type.Core.
func CompactLabel(core string) string {
	return string([]byte{core[0], core[2], core[len(core)-1]})
}

func isBase(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T'
}
