// Package report writes extracted superkmers out as a table, JSON or raw
// binary records.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jjtimmons/superkmers/internal/superkmer"
)

// Format is an output format.
type Format string

const (
	// TSV is a tab-aligned table with one row per superkmer.
	TSV Format = "tsv"

	// JSON is one JSON document per sequence.
	JSON Format = "json"

	// Binary is the fixed-width superkmer records, back to back.
	Binary Format = "binary"
)

// ParseFormat returns the format with the name passed.
func ParseFormat(name string) (Format, error) {
	for _, f := range []Format{TSV, JSON, Binary} {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (use tsv, json or binary)", name)
}

// Record is a superkmer as written in JSON output.
type Record struct {
	Start int    `json:"start"`
	Size  int    `json:"size"`
	MPos  int    `json:"mpos"`
	RC    bool   `json:"rc"`
	Mint  uint32 `json:"mint"`

	// the canonical sequence and minimizer, only with verbose output
	Sequence  string `json:"sequence,omitempty"`
	Minimizer string `json:"minimizer,omitempty"`
}

// Output is the JSON document for one sequence.
type Output struct {
	// ID of the sequence. In >chr1 FASTA it's "chr1"
	ID string `json:"id"`

	// K and L the superkmers were extracted with
	K int `json:"k"`
	L int `json:"l"`

	// Superkmers of the sequence, in order
	Superkmers []Record `json:"superkmers"`
}

// Writer writes the superkmers of one sequence after another.
type Writer struct {
	out     io.Writer
	format  Format
	verbose bool
	k, l    int

	tw        *tabwriter.Writer
	wroteHead bool
}

// NewWriter returns a Writer of superkmers extracted with k and l. With verbose
// set, the materialized sequence and minimizer are written too (not in binary).
func NewWriter(out io.Writer, format Format, k, l int, verbose bool) *Writer {
	w := &Writer{out: out, format: format, verbose: verbose, k: k, l: l}
	if format == TSV {
		w.tw = tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	}
	return w
}

// Write writes the superkmers sks of the sequence seq named id.
func (w *Writer) Write(id string, seq []byte, sks []superkmer.Superkmer) error {
	switch w.format {
	case TSV:
		return w.writeTSV(id, seq, sks)
	case JSON:
		return w.writeJSON(id, seq, sks)
	case Binary:
		return w.writeBinary(sks)
	}
	return fmt.Errorf("unknown output format %q", w.format)
}

// Flush writes out anything buffered.
func (w *Writer) Flush() error {
	if w.tw != nil {
		return w.tw.Flush()
	}
	return nil
}

func (w *Writer) writeTSV(id string, seq []byte, sks []superkmer.Superkmer) error {
	if !w.wroteHead {
		head := "id\tstart\tsize\tmpos\trc\tmint\t"
		if w.verbose {
			head += "sequence\tminimizer\t"
		}
		if _, err := fmt.Fprintln(w.tw, head); err != nil {
			return err
		}
		w.wroteHead = true
	}

	for _, sk := range sks {
		if _, err := fmt.Fprintf(w.tw, "%s\t%d\t%d\t%d\t%t\t%d\t", id, sk.Start, sk.Size, sk.MPos, sk.RC, sk.Mint); err != nil {
			return err
		}
		if w.verbose {
			v, err := superkmer.Materialize(sk, seq, w.l)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w.tw, "%s\t%s\t", v.Sequence, v.Minimizer); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w.tw); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeJSON(id string, seq []byte, sks []superkmer.Superkmer) error {
	out := Output{ID: id, K: w.k, L: w.l, Superkmers: make([]Record, 0, len(sks))}
	for _, sk := range sks {
		r := Record{Start: sk.Start, Size: int(sk.Size), MPos: int(sk.MPos), RC: sk.RC, Mint: sk.Mint}
		if w.verbose {
			v, err := superkmer.Materialize(sk, seq, w.l)
			if err != nil {
				return err
			}
			r.Sequence, r.Minimizer = v.Sequence, v.Minimizer
		}
		out.Superkmers = append(out.Superkmers, r)
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize superkmers of %s: %w", id, err)
	}
	_, err = fmt.Fprintln(w.out, string(b))
	return err
}

func (w *Writer) writeBinary(sks []superkmer.Superkmer) error {
	buf := make([]byte, 0, len(sks)*superkmer.RecordSize)
	for _, sk := range sks {
		var err error
		if buf, err = sk.AppendBinary(buf); err != nil {
			return err
		}
	}
	_, err := w.out.Write(buf)
	return err
}
