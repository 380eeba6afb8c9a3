// Command stlc type-checks and evaluates programs of the simply typed lambda
// calculus with booleans and natural numbers.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/95th/arith/diag"
	"github.com/95th/arith/parser"
	"github.com/95th/arith/stlc"
	"github.com/samber/lo"
)

func usage(w io.Writer) {
	fmt.Fprint(w, "usage: stlc ( -small-step | -big-step ) [ -trace ] [ -debruijn ] [ -full ] file\n\n")
	fmt.Fprint(w, "stlc is an implementation of the simply typed lambda calculus with booleans and numbers (TAPL chapters 8-10).\n")
}

func errExit(w io.Writer, src string, err error) int {
	diag.FromError(src, err).Report(w)
	return 1
}

func readSource(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(name)
	return string(b), err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("stlc", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { usage(stderr) }
	var (
		smallStep = flags.Bool("small-step", false, "run small-step evaluator")
		bigStep   = flags.Bool("big-step", false, "run big-step evaluator")
		trace     = flags.Bool("trace", false, "print every small-step reduction")
		debruijn  = flags.Bool("debruijn", false, "print the nameless form of each term")
		full      = flags.Bool("full", false, "also reduce under abstractions")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *smallStep == *bigStep || flags.NArg() != 1 {
		usage(stderr)
		return 2
	}
	src, err := readSource(flags.Arg(0), stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		usage(stderr)
		return 2
	}

	exprs := parser.NewTyped(src)
	for {
		t, ok, err := exprs.Next()
		if err != nil {
			return errExit(stderr, src, err)
		}
		if !ok {
			return 0
		}
		ty, err := stlc.TypeOf(nil, t)
		if err != nil {
			return errExit(stderr, src, err)
		}
		fmt.Fprintf(stdout, "%s : %v\n", stlc.String(nil, t), ty)
		if *debruijn {
			fmt.Fprintln(stdout, "    "+stlc.DeBruijnString(t))
		}
		if *trace {
			steps := lo.Map(stlc.Trace(t)[1:], func(s stlc.Term, _ int) string {
				return "-> " + stlc.String(nil, s) + "\n"
			})
			fmt.Fprint(stdout, strings.Join(steps, ""))
		}
		var v stlc.Term
		switch {
		case *full:
			v = stlc.EvalUnder(t)
		case *smallStep:
			v = stlc.Eval(t)
		default:
			v = stlc.EvalBigStep(t)
		}
		fmt.Fprintln(stdout, "==> "+stlc.String(nil, v))
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
