package main

import (
	"fmt"

	flag "github.com/juju/gnuflag"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/uareke/jsontoon/internal/config"
)

// errUsage signals that flag parsing failed and usage was printed.
var errUsage = errors.New("usage")

// options holds the flags shared by all conversion commands plus the
// command-specific ones a command chooses to register.
type options struct {
	command    string
	configPath string
	verbose    bool
	gzip       bool
	jobs       int

	name       string
	foreignKey string
	strict     bool
	indent     string

	set map[string]bool
}

func newFlagSet(cc *cliContext, name string) (*flag.FlagSet, *options) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cc.stderr)

	o := &options{command: name}
	fs.StringVar(&o.configPath, "config", "", "load settings from a .yaml, .yml or .toml file")
	fs.BoolVar(&o.verbose, "verbose", false, "show more")
	fs.BoolVar(&o.verbose, "v", false, "")
	fs.BoolVar(&o.gzip, "gzip", false, "gzip-compress the output")
	fs.IntVar(&o.jobs, "jobs", 4, "number of files converted concurrently")
	return fs, o
}

func registerEncodeFlags(fs *flag.FlagSet, o *options) {
	fs.StringVar(&o.name, "name", config.DefaultRootName, "root block name")
	fs.StringVar(&o.foreignKey, "fk", "", "foreign key name for child blocks (default: singular root name + _id)")
}

func registerDecodeFlags(fs *flag.FlagSet, o *options) {
	fs.BoolVar(&o.strict, "strict", false, "fail on child blocks with no matching parent")
	fs.StringVar(&o.indent, "indent", config.DefaultIndent, "JSON indentation")
}

// parse parses args, records which flags were given and applies -v.
func (o *options) parse(cc *cliContext, fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(true, args); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(cc.stderr, "%s: %v\n", o.command, err)
		}
		return errUsage
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		o.set[f.Name] = true
	})

	if o.verbose {
		cc.log.SetLevel(logrus.DebugLevel)
	}
	if o.jobs < 1 {
		o.jobs = 1
	}
	return nil
}

// loadConfig reads the config file if one was given and lets explicit
// flags override its values.
func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}
	}

	if o.set["name"] {
		cfg.RootName = o.name
	}
	if o.set["fk"] {
		cfg.ForeignKey = o.foreignKey
	}
	if o.set["strict"] {
		cfg.Strict = o.strict
	}
	if o.set["indent"] {
		indent := o.indent
		cfg.Indent = &indent
	}
	if o.set["gzip"] {
		cfg.Gzip = o.gzip
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
