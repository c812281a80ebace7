// jsontoon - TOON document codec CLI tool
//
// Usage:
//
//	jsontoon encode [options] [file...]    Convert a JSON array to a TOON document
//	jsontoon decode [options] [file...]    Convert a TOON document to JSON
//	jsontoon table [options] [file...]     Convert a JSON array to a single TOON table
//	jsontoon untable [options] [file...]   Convert a single TOON table to JSON
//	jsontoon check [options] [file...]     Verify that JSON survives encode/decode/encode
//	jsontoon stats [options] [file...]     Compare JSON and TOON sizes
//	jsontoon version                       Print version info
//
// If no file is given, reads from stdin. Files ending in .gz are
// decompressed.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const version = "0.4.0"

// cliContext carries the process streams so commands can be tested.
type cliContext struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *logrus.Logger
}

type command struct {
	name    string
	summary string
	run     func(cc *cliContext, args []string) error
}

var commands = []command{
	{"encode", "Convert a JSON array to a TOON document", cmdEncode},
	{"decode", "Convert a TOON document to JSON", cmdDecode},
	{"table", "Convert a JSON array to a single TOON table", cmdTable},
	{"untable", "Convert a single TOON table to JSON", cmdUntable},
	{"check", "Verify that JSON survives encode/decode/encode", cmdCheck},
	{"stats", "Compare JSON and TOON sizes", cmdStats},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, color.Output, color.Error))
}

// run executes one CLI invocation and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cc := &cliContext{stdin: stdin, stdout: stdout, stderr: stderr, log: log}

	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	name := args[0]
	switch name {
	case "version", "-v", "--version":
		fmt.Fprintf(stdout, "jsontoon %s\n", version)
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	}

	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(cc, args[1:]); err != nil {
			if err == errUsage {
				return 2
			}
			fatal(stderr, "%s: %v", name, err)
			return 1
		}
		return 0
	}

	fatal(stderr, "unknown command: %s", name)
	printUsage(stderr)
	return 1
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `jsontoon - TOON document codec CLI tool

Usage:
  jsontoon <command> [options] [file...]

Commands:
`)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprint(w, `  version    Print version info

Common options:
  --config=FILE       Load settings from a .yaml, .yml or .toml file
  -v, --verbose       Log dropped blocks and other details
  --gzip              Gzip-compress the output

If no file is given, reads from stdin. Files ending in .gz are decompressed.

Examples:
  echo '[{"id":1,"name":"Alice","orders":[{"id":10,"item":"Book"}]}]' | jsontoon encode --name=clientes
  # Output:
  # clientes[1]{id,name}:
  # 1,Alice.
  #
  # orders(cliente_id:1)[1]{id,item}:
  # 10,Book.

  jsontoon decode --strict data.toon > data.json
`)
}

func fatal(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, color.RedString("jsontoon: "+format, args...))
}
