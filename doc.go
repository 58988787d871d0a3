// Package quasiparse executes BNF-like grammars over quasi-literal templates.
//
// A grammar is written as a template whose string segments hold the
// productions and whose holes carry the semantic actions:
//
//	g := quasiparse.MustCompile(quasiparse.NewTemplate(
//		[]string{`start ::= "[" IDENT "]" `, ` ;`},
//		quasiparse.Action(func(values ...interface{}) interface{} {
//			return values[1]
//		}),
//	))
//
// The compiled grammar is itself usable as a template tag: parsing a mixed
// source/value template matches each interpolated hole as an atomic terminal:
//
//	v, err := g.Parse(quasiparse.Text(`[foo]`))
//	// v == "foo"
//
// Execution is packrat style: each (position, rule) pair is evaluated at most
// once per parse, choice is ordered, and left recursion is detected and
// reported rather than looping. On failure the engine reports the furthest
// position any rule reached together with the terminals expected there.
package quasiparse
