// Command untyped evaluates programs of the pure untyped lambda calculus.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/95th/arith/diag"
	"github.com/95th/arith/parser"
	"github.com/95th/arith/untyped"
	"github.com/samber/lo"
)

func usage(w io.Writer) {
	fmt.Fprint(w, "usage: untyped ( -small-step | -big-step ) [ -trace ] [ -debruijn ] file\n\n")
	fmt.Fprint(w, "untyped is an implementation of the untyped lambda calculus (TAPL chapters 5-7).\n")
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
	flags := flag.NewFlagSet("untyped", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { usage(stderr) }
	var (
		smallStep = flags.Bool("small-step", false, "run small-step evaluator")
		bigStep   = flags.Bool("big-step", false, "run big-step evaluator")
		trace     = flags.Bool("trace", false, "print every small-step reduction")
		debruijn  = flags.Bool("debruijn", false, "print the nameless form of each term")
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

	exprs := parser.NewUntyped(src)
	for {
		t, ok, err := exprs.Next()
		if err != nil {
			return errExit(stderr, src, err)
		}
		if !ok {
			return 0
		}
		fmt.Fprintln(stdout, untyped.String(nil, t))
		if *debruijn {
			fmt.Fprintln(stdout, "    "+untyped.DeBruijnString(t))
		}
		if *trace {
			steps := lo.Map(untyped.Trace(t)[1:], func(s untyped.Term, _ int) string {
				return "-> " + untyped.String(nil, s)
			})
			for _, s := range steps {
				fmt.Fprintln(stdout, s)
			}
		}
		if *smallStep {
			t = untyped.Eval(t)
		} else {
			t = untyped.EvalBigStep(t)
		}
		fmt.Fprintln(stdout, "==> "+untyped.String(nil, t))
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
