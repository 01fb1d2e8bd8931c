package seqio

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFile(t *testing.T) {
	records, err := ReadFile(filepath.Join("testdata", "short.fa"))
	if err != nil {
		t.Fatal(err)
	}

	want := []Record{
		{ID: "first", Seq: []byte("CCAGTGTTTACGGGGAACAAGG")},
		{ID: "second", Seq: []byte("AAGAGCTCTT")},
	}
	if len(records) != len(want) {
		t.Fatalf("ReadFile() returned %d records, want %d", len(records), len(want))
	}
	for i, r := range records {
		if r.ID != want[i].ID || string(r.Seq) != string(want[i].Seq) {
			t.Errorf("record %d = {%s %s}, want {%s %s}", i, r.ID, r.Seq, want[i].ID, want[i].Seq)
		}
	}
}

func TestReadFile_gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(fh)
	if _, err := gz.Write([]byte(">gz\nacgtacgt\n")); err != nil {
		t.Fatal(err)
	}
	gz.Close()
	fh.Close()

	records, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || string(records[0].Seq) != "ACGTACGT" {
		t.Errorf("ReadFile() = %v", records)
	}
}

func TestReadFile_missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join("testdata", "missing.fa")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestRead_empty(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Error("expected an error for an empty input")
	}
}

func TestFromString(t *testing.T) {
	r := FromString("arg", " acgtn\n")
	if r.ID != "arg" || string(r.Seq) != "ACGTN" {
		t.Errorf("FromString() = {%s %s}", r.ID, r.Seq)
	}
}
