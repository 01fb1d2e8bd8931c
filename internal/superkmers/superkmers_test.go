package superkmers

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jjtimmons/superkmers/config"
	"github.com/jjtimmons/superkmers/internal/seqio"
	"github.com/jjtimmons/superkmers/internal/superkmer"
)

func testConfig() *config.Config {
	return &config.Config{
		K:         5,
		L:         2,
		Scheme:    "lex",
		Canonical: false,
		Format:    "tsv",
		Syncmer: config.SyncmerConfig{
			K:       5,
			S:       2,
			Targets: []int{2},
		},
	}
}

func randomSeq(r *rand.Rand, n int) []byte {
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = "ACGT"[r.Intn(4)]
	}
	return seq
}

func TestExtract(t *testing.T) {
	records := []seqio.Record{
		{ID: "seq1", Seq: []byte("GGAACAAGG")},
		{ID: "short", Seq: []byte("ACG")},
	}

	var buf bytes.Buffer
	if err := Extract(records, testConfig(), &buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want a header and 3 rows:\n%s", len(lines), buf.String())
	}

	wantStarts := []string{"0", "2", "3"}
	for i, line := range lines[1:] {
		fields := strings.Fields(line)
		if fields[0] != "seq1" || fields[1] != wantStarts[i] {
			t.Errorf("row %d = %q, want seq1 starting at %s", i, line, wantStarts[i])
		}
	}
}

func TestExtract_invalid(t *testing.T) {
	c := testConfig()
	c.L = 6

	var buf bytes.Buffer
	if err := Extract([]seqio.Record{{ID: "seq1", Seq: []byte("GGAACAAGG")}}, c, &buf); err == nil {
		t.Error("expected an error for l > k")
	}
}

func TestCompare(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	records := []seqio.Record{
		{ID: "a", Seq: randomSeq(r, 300)},
		{ID: "b", Seq: randomSeq(r, 120)},
		{ID: "short", Seq: []byte("ACGT")},
	}

	for _, scheme := range []string{"lex", "hash"} {
		t.Run(scheme, func(t *testing.T) {
			c := testConfig()
			c.K, c.L, c.Scheme, c.Canonical = 21, 7, scheme, true

			comparisons, err := Compare(records, c)
			if err != nil {
				t.Fatal(err)
			}
			if len(comparisons) != 2 {
				t.Fatalf("Compare() = %d comparisons, want 2", len(comparisons))
			}
			for _, cmp := range comparisons {
				if !cmp.Equal() || cmp.Streaming != cmp.Reference {
					t.Errorf("Compare() of %s: streaming=%d reference=%d missing=%v extra=%v",
						cmp.ID, cmp.Streaming, cmp.Reference, cmp.Missing, cmp.Extra)
				}
			}
		})
	}
}

func Test_subtract(t *testing.T) {
	a := []superkmer.Superkmer{{Start: 0, Size: 6}, {Start: 0, Size: 6}, {Start: 3, Size: 6}}
	b := []superkmer.Superkmer{{Start: 0, Size: 6}, {Start: 4, Size: 6}}

	want := []superkmer.Superkmer{{Start: 0, Size: 6}, {Start: 3, Size: 6}}
	if got := subtract(a, b); !reflect.DeepEqual(got, want) {
		t.Errorf("subtract() = %v, want %v", got, want)
	}
	if got := subtract(b, b); len(got) != 0 {
		t.Errorf("subtract() = %v, want nothing", got)
	}
}

func TestSyncmers(t *testing.T) {
	var buf bytes.Buffer
	records := []seqio.Record{{ID: "fig1b", Seq: []byte("CCAGTGTTTACGG")}}
	if err := Syncmers(records, testConfig(), &buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := [][]string{
		{"fig1b", "0", "CCAGT"},
		{"fig1b", "7", "TTACG"},
	}
	if len(lines) != len(want)+1 {
		t.Fatalf("got %d lines, want a header and %d rows:\n%s", len(lines), len(want), buf.String())
	}
	for i, line := range lines[1:] {
		if got := strings.Fields(line); !reflect.DeepEqual(got, want[i]) {
			t.Errorf("row %d = %v, want %v", i, got, want[i])
		}
	}
}

func Test_parseCmdFlags(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	settings := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(settings, []byte("k: 15\nl: 4\nscheme: lex\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{Use: "extract"}
	cmd.Flags().String("settings", "", "")
	cmd.Flags().String("seq", "", "")
	cmd.Flags().String("out", "", "")
	cmd.Flags().Int("k", 31, "")
	cmd.Flags().Int("l", 8, "")
	cmd.Flags().Set("settings", settings)
	cmd.Flags().Set("seq", "acgtacgtacgtacgtac")
	cmd.Flags().Set("l", "6")

	fs, c, err := parseCmdFlags(cmd, nil)
	if err != nil {
		t.Fatal(err)
	}

	// the flag beats the settings file which beats the defaults
	if c.K != 15 || c.L != 6 || c.Scheme != "lex" {
		t.Errorf("parseCmdFlags() config k=%d l=%d scheme=%s, want k=15 l=6 scheme=lex", c.K, c.L, c.Scheme)
	}

	records, err := fs.records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || string(records[0].Seq) != "ACGTACGTACGTACGTAC" {
		t.Errorf("records() = %v", records)
	}

	if _, _, err := parseCmdFlags(cmd, []string{"in.fa"}); err == nil {
		t.Error("expected an error with both a sequence and FASTA files")
	}
}

func TestFlags_records(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(path, []byte(">one desc\nACGTACGT\n>two\nTTTT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := NewFlags([]string{path}, "", "").records()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].ID != "one" || records[1].ID != "two" {
		t.Errorf("records() = %v", records)
	}

	if _, err := NewFlags([]string{filepath.Join(t.TempDir(), "missing.fa")}, "", "").records(); err == nil {
		t.Error("expected an error for a missing file")
	}
}
