package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	flag "github.com/juju/gnuflag"
	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/uareke/jsontoon/internal/config"
	"github.com/uareke/jsontoon/toon"
)

// setup parses flags and loads configuration for a conversion command.
func setup(cc *cliContext, name string, args []string, register ...func(*flag.FlagSet, *options)) (*options, *config.Config, []string, error) {
	fs, o := newFlagSet(cc, name)
	for _, r := range register {
		r(fs, o)
	}
	if err := o.parse(cc, fs, args); err != nil {
		return nil, nil, nil, err
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	return o, cfg, fs.Args(), nil
}

// cmdEncode: JSON array -> TOON document
func cmdEncode(cc *cliContext, args []string) error {
	o, cfg, files, err := setup(cc, "encode", args, registerEncodeFlags)
	if err != nil {
		return err
	}

	return convertAll(cc, o, cfg.Gzip, files, func(in input) (string, error) {
		recs, err := toon.RecordsFromJSON(in.data)
		if err != nil {
			return "", err
		}
		return toon.EncodeDocumentWithOptions(recs, cfg.RootName, cfg.EncodeOptions(cc.log.WithField("file", in.name)))
	})
}

// cmdDecode: TOON document -> JSON
func cmdDecode(cc *cliContext, args []string) error {
	o, cfg, files, err := setup(cc, "decode", args, registerDecodeFlags)
	if err != nil {
		return err
	}

	return convertAll(cc, o, cfg.Gzip, files, func(in input) (string, error) {
		recs, err := toon.DecodeDocumentWithOptions(string(in.data), cfg.DecodeOptions(cc.log.WithField("file", in.name)))
		if err != nil {
			return "", err
		}
		out, err := toon.RecordsToJSONIndent(recs, cfg.IndentString())
		return string(out), err
	})
}

// cmdTable: JSON array -> single TOON table
func cmdTable(cc *cliContext, args []string) error {
	o, cfg, files, err := setup(cc, "table", args, registerEncodeFlags)
	if err != nil {
		return err
	}

	return convertAll(cc, o, cfg.Gzip, files, func(in input) (string, error) {
		recs, err := toon.RecordsFromJSON(in.data)
		if err != nil {
			return "", err
		}
		return toon.EncodeTable(recs, cfg.RootName)
	})
}

// cmdUntable: single TOON table -> JSON
func cmdUntable(cc *cliContext, args []string) error {
	o, cfg, files, err := setup(cc, "untable", args, registerDecodeFlags)
	if err != nil {
		return err
	}

	return convertAll(cc, o, cfg.Gzip, files, func(in input) (string, error) {
		name, recs, err := toon.DecodeTable(string(in.data))
		if err != nil {
			return "", err
		}
		cc.log.WithField("file", in.name).Debugf("table %q: %d records", name, len(recs))
		out, err := toon.RecordsToJSONIndent(recs, cfg.IndentString())
		return string(out), err
	})
}

// cmdCheck encodes JSON, decodes it and encodes again. The two documents
// must be identical; otherwise a diff is reported.
func cmdCheck(cc *cliContext, args []string) error {
	o, cfg, files, err := setup(cc, "check", args, registerEncodeFlags)
	if err != nil {
		return err
	}

	return convertAll(cc, o, cfg.Gzip, files, func(in input) (string, error) {
		recs, err := toon.RecordsFromJSON(in.data)
		if err != nil {
			return "", err
		}
		encOpts := cfg.EncodeOptions(cc.log.WithField("file", in.name))
		first, err := toon.EncodeDocumentWithOptions(recs, cfg.RootName, encOpts)
		if err != nil {
			return "", err
		}
		decoded, err := toon.DecodeDocumentWithOptions(first, toon.DecodeOptions{Policy: toon.Strict, Logger: cc.log})
		if err != nil {
			return "", errors.Wrap(err, "decode")
		}
		second, err := toon.EncodeDocumentWithOptions(decoded, cfg.RootName, encOpts)
		if err != nil {
			return "", errors.Wrap(err, "re-encode")
		}

		if first != second {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(first, second, false)
			return "", fmt.Errorf("document changed after round trip:\n%s", dmp.DiffPrettyText(diffs))
		}
		return fmt.Sprintf("ok %s (%d records)", in.name, len(recs)), nil
	})
}

// cmdStats compares minified JSON and TOON document sizes.
func cmdStats(cc *cliContext, args []string) error {
	o, cfg, files, err := setup(cc, "stats", args, registerEncodeFlags)
	if err != nil {
		return err
	}

	return convertAll(cc, o, cfg.Gzip, files, func(in input) (string, error) {
		recs, err := toon.RecordsFromJSON(in.data)
		if err != nil {
			return "", err
		}
		minified, err := toon.ToJSON(toon.List(recs...))
		if err != nil {
			return "", err
		}
		doc, err := toon.EncodeDocumentWithOptions(recs, cfg.RootName, cfg.EncodeOptions(nil))
		if err != nil {
			return "", err
		}
		return formatStats(in.name, len(minified), len(doc), strings.Count(doc, "\n\n")+1), nil
	})
}

func formatStats(name string, jsonBytes, toonBytes, blocks int) string {
	saved := 0.0
	if jsonBytes > 0 {
		saved = float64(jsonBytes-toonBytes) / float64(jsonBytes) * 100
	}
	return fmt.Sprintf("%s: json=%s toon=%s blocks=%d saved=%.1f%%",
		name,
		humanize.Bytes(uint64(jsonBytes)),
		humanize.Bytes(uint64(toonBytes)),
		blocks,
		saved)
}
