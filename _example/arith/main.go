package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/quasilang/quasiparse"
)

var exprArg = kingpin.Arg("expr", "Expression to parse.").Default("1 + 2 * 3").String()

// foldBinary left-folds [first, [[op, operand], ...]] into nested
// [op, left, right] triples.
func foldBinary(values ...interface{}) interface{} {
	acc := values[0]
	for _, pair := range values[1].([]interface{}) {
		p := pair.([]interface{})
		acc = []interface{}{p[0], acc, p[1]}
	}
	return acc
}

var arith = quasiparse.MustCompile(quasiparse.NewTemplate(
	[]string{`
		expr   ::= term (("+" / "-") term)* `, ` ;
		term   ::= factor (("*" / "/") factor)* `, ` ;
		factor ::= NUMBER / "(" expr ")" `, ` ;
	`},
	quasiparse.Action(foldBinary),
	quasiparse.Action(foldBinary),
	quasiparse.Action(func(values ...interface{}) interface{} {
		return values[1] // strip the parentheses
	}),
), quasiparse.Named("arith"))

func main() {
	kingpin.Parse()
	tree, err := arith.ParseString(*exprArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	repr.Println(tree)
}
