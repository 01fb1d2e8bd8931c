// Package seqio reads the sequences superkmers are extracted from.
package seqio

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/bio/encoding/fasta"
)

// Record is one named sequence of a FASTA file.
type Record struct {
	ID  string
	Seq []byte
}

// ReadFile reads every record of a FASTA file. A path of "-" reads stdin and a
// ".gz" suffix is decompressed.
func ReadFile(path string) ([]Record, error) {
	rc, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer rc.Close()

	records, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return records, nil
}

// Read parses FASTA from r. Sequences are upper-cased; the ID is the header up
// to its first whitespace.
func Read(r io.Reader) ([]Record, error) {
	fa, err := fasta.New(r)
	if err != nil {
		return nil, err
	}

	var records []Record
	for _, name := range fa.SeqNames() {
		n, err := fa.Len(name)
		if err != nil {
			return nil, err
		}
		seq, err := fa.Get(name, 0, n)
		if err != nil {
			return nil, err
		}

		id := name
		if fields := strings.Fields(name); len(fields) > 0 {
			id = fields[0]
		}
		records = append(records, Record{
			ID:  id,
			Seq: bytes.ToUpper([]byte(seq)),
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no FASTA records found")
	}
	return records, nil
}

// FromString wraps a raw sequence passed on the command line as a record.
func FromString(id, seq string) Record {
	return Record{ID: id, Seq: bytes.ToUpper([]byte(strings.TrimSpace(seq)))}
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return fh, nil
	}

	gr, err := gzip.NewReader(fh)
	if err != nil {
		fh.Close()
		return nil, err
	}
	return struct {
		io.Reader
		io.Closer
	}{Reader: gr, Closer: fh}, nil
}
