package main

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const stdinName = "<stdin>"

// input is one named source read fully into memory.
type input struct {
	name string
	data []byte
}

// readStdin reads all of stdin, refusing to wait on an interactive terminal.
func readStdin(cc *cliContext) (input, error) {
	if f, ok := cc.stdin.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return input{}, errors.New("no input file given and stdin is a terminal")
		}
	}
	data, err := io.ReadAll(cc.stdin)
	if err != nil {
		return input{}, errors.Wrap(err, "read stdin")
	}
	return input{name: stdinName, data: data}, nil
}

// readFile reads path, decompressing it when it ends in .gz.
func readFile(path string) (input, error) {
	f, err := os.Open(path)
	if err != nil {
		return input{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return input{}, errors.Wrapf(err, "gunzip %s", path)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return input{}, errors.Wrapf(err, "read %s", path)
	}
	return input{name: path, data: data}, nil
}

// convertAll runs conv over stdin or every file and writes the results in
// argument order. Files are converted concurrently, at most jobs at a time.
func convertAll(cc *cliContext, o *options, gz bool, files []string, conv func(in input) (string, error)) error {
	var results []string

	if len(files) == 0 {
		in, err := readStdin(cc)
		if err != nil {
			return err
		}
		out, err := conv(in)
		if err != nil {
			return err
		}
		results = []string{out}
	} else {
		results = make([]string, len(files))
		var g errgroup.Group
		g.SetLimit(o.jobs)
		for i, path := range files {
			i, path := i, path
			g.Go(func() error {
				in, err := readFile(path)
				if err != nil {
					return err
				}
				out, err := conv(in)
				if err != nil {
					return errors.Wrap(err, path)
				}
				results[i] = out
				cc.log.WithField("file", path).Debug("converted")
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	return writeOutput(cc.stdout, gz, results)
}

// writeOutput writes each result followed by a newline, gzip-compressed
// when gz is set.
func writeOutput(w io.Writer, gz bool, results []string) error {
	var zw *gzip.Writer
	if gz {
		zw = gzip.NewWriter(w)
		w = zw
	}

	for _, out := range results {
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	if zw != nil {
		if err := zw.Close(); err != nil {
			return errors.Wrap(err, "gzip output")
		}
	}
	return nil
}
