package main

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/quasilang/quasiparse"
)

var cli struct {
	Grammar string `arg:"" help:"BNF grammar file."`
	Input   string `arg:"" optional:"" help:"Input file to parse. Defaults to stdin."`
	JSON    bool   `help:"Dump the parse tree as JSON instead of Go syntax."`
	Trace   bool   `help:"Trace rule execution to stderr."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Compile a BNF grammar and parse input with it.

Grammars read from a file carry no semantic actions, so an alternative
yields the value of its single atom, or the raw sequence of values when it
has several.`),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	source, err := ioutil.ReadFile(cli.Grammar)
	if err != nil {
		return err
	}
	grammar, err := quasiparse.Compile(quasiparse.Text(string(source)))
	if err != nil {
		return err
	}
	input, err := readInput()
	if err != nil {
		return err
	}
	var options []quasiparse.ParseOption
	if cli.Trace {
		options = append(options, quasiparse.Trace(os.Stderr))
	}
	tree, err := grammar.ParseString(input, options...)
	if err != nil {
		return err
	}
	if cli.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	}
	repr.Println(tree)
	return nil
}

func readInput() (string, error) {
	if cli.Input == "" {
		b, err := ioutil.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := ioutil.ReadFile(cli.Input)
	return string(b), err
}
