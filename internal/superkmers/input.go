// Package superkmers runs the superkmers commands: it parses their flags,
// reads their input sequences and writes out the results.
package superkmers

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jjtimmons/superkmers/config"
	"github.com/jjtimmons/superkmers/internal/seqio"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// settingKeys maps command line flags to their settings key, for each flag
// that can also come from a settings file or the environment.
var settingKeys = map[string]map[string]string{
	"extract": {
		"k":         "k",
		"l":         "l",
		"scheme":    "scheme",
		"canonical": "canonical",
		"format":    "format",
		"verbose":   "verbose",
	},
	"compare": {
		"k":         "k",
		"l":         "l",
		"scheme":    "scheme",
		"canonical": "canonical",
		"verbose":   "verbose",
	},
	"syncmers": {
		"k":          "syncmer.k",
		"s":          "syncmer.s",
		"targets":    "syncmer.targets",
		"downsample": "syncmer.downsample",
		"verbose":    "verbose",
	},
}

// Flags contains parsed cobra Flags like "in", "out" and "seq" that are used by multiple commands.
type Flags struct {
	// the FASTA files to read sequences from. "-" is stdin
	in []string

	// a sequence passed on the command line instead of FASTA files
	seq string

	// the name of the file to write the output to, stdout if empty
	out string
}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in []string, seq, out string) *Flags {
	return &Flags{in: in, seq: seq, out: out}
}

// parseCmdFlags gathers the input paths, output path, etc from a cobra cmd object.
// returns Flags and the Config struct the command is run with.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config, error) {
	fs := &Flags{in: args}

	if seq, err := cmd.Flags().GetString("seq"); err == nil {
		fs.seq = seq
	}
	if out, err := cmd.Flags().GetString("out"); err == nil {
		fs.out = out
	}
	if fs.seq != "" && len(fs.in) > 0 {
		return nil, nil, fmt.Errorf("pass either a sequence (--seq) or FASTA files, not both")
	}
	if fs.seq == "" && len(fs.in) == 0 {
		fs.in = []string{"-"}
	}

	if settings, err := cmd.Flags().GetString("settings"); err == nil && settings != "" {
		if err := config.ReadFile(settings); err != nil {
			return nil, nil, err
		}
	}

	if err := bindFlags(cmd.Flags(), settingKeys[cmd.Name()]); err != nil {
		return nil, nil, err
	}

	c, err := config.New()
	if err != nil {
		return nil, nil, err
	}
	return fs, c, nil
}

// bindFlags binds the flags that were set to their settings keys. Unset flags
// leave the settings file, environment and defaults in charge.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// records reads the sequences named by the flags.
func (fs *Flags) records() ([]seqio.Record, error) {
	if fs.seq != "" {
		return []seqio.Record{seqio.FromString("sequence", fs.seq)}, nil
	}

	var records []seqio.Record
	for _, path := range fs.in {
		rs, err := seqio.ReadFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, rs...)
	}
	return records, nil
}

// output opens the output file, or returns stdout if there isn't one.
func (fs *Flags) output() (io.WriteCloser, error) {
	if fs.out == "" || fs.out == "-" {
		return nopCloser{os.Stdout}, nil
	}
	fh, err := os.Create(fs.out)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", fs.out, err)
	}
	return fh, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// run reads the input of the command, calls fn with it and closes the output.
func run(cmd *cobra.Command, args []string, fn func([]seqio.Record, *config.Config, io.Writer) error) {
	fs, c, err := parseCmdFlags(cmd, args)
	if err != nil {
		cmd.Help()
		stderr.Fatal(err)
	}

	records, err := fs.records()
	if err != nil {
		stderr.Fatal(err)
	}

	out, err := fs.output()
	if err != nil {
		stderr.Fatal(err)
	}

	if err := fn(records, c, out); err != nil {
		out.Close()
		stderr.Fatal(err)
	}
	if err := out.Close(); err != nil {
		stderr.Fatal(err)
	}
}
