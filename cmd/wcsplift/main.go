// Command wcsplift loads a WCSP instance, reduces it to a Constraint
// Composite Graph, optionally kernelizes it, solves the resulting
// Minimum Weighted Vertex Cover problem, and reports the decoded
// finite-domain assignment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nandofioretto/wcsplift/ccg"
	"github.com/nandofioretto/wcsplift/clock"
	"github.com/nandofioretto/wcsplift/decode"
	"github.com/nandofioretto/wcsplift/kernel"
	"github.com/nandofioretto/wcsplift/lp/golpa"
	"github.com/nandofioretto/wcsplift/mwvc"
	"github.com/nandofioretto/wcsplift/poly"
	"github.com/nandofioretto/wcsplift/wcsp"
)

const (
	exitOK         = 0
	exitUsageError = 1
	exitInputError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("wcsplift", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fileFormat := fs.String("f", "d", "input file format: d (DIMACS) or u (UAI)")
	mwvcSolver := fs.String("m", "l", "MWVC solver: l (linear program) or m (message passing)")
	noKernelization := fs.Bool("no-kernelization", false, "skip kernelization entirely")
	kernelizationOnly := fs.Bool("kernelization-only", false, "skip the MWVC solve and report what kernelization resolved")
	ccgOnly := fs.Bool("ccg-only", false, "print the CCG only, without solving MWVC")
	linearProgramming := fs.Bool("linear-programming", false, "solve the WCSP directly as an LP/ILP, bypassing the CCG")
	timeLimit := fs.Float64("time-limit", 0, "time limit in seconds (unset means unlimited; an explicit 0 times out immediately)")
	ccgOut := fs.String("ccg", "", "file to write the CCG dump into (default stdout)")

	if err := fs.Parse(args); err != nil {
		return exitUsageError
	}

	// flag's own default can't distinguish "--time-limit wasn't passed"
	// from "--time-limit 0" was, and those two cases mean different
	// things (no limit vs. an immediate, explicit timeout) -- fs.Visit
	// only reports flags actually set on the command line.
	timeLimitSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "time-limit" {
			timeLimitSet = true
		}
	})
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: wcsplift [flags] <input-file>")
		return exitUsageError
	}
	inputPath := fs.Arg(0)

	if *fileFormat != "d" && *fileFormat != "u" {
		fmt.Fprintf(stderr, "invalid -f value %q: must be d or u\n", *fileFormat)
		return exitUsageError
	}
	if *mwvcSolver != "l" && *mwvcSolver != "m" {
		fmt.Fprintf(stderr, "invalid -m value %q: must be l or m\n", *mwvcSolver)
		return exitUsageError
	}

	f, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(stderr, "cannot read %s: %v\n", inputPath, err)
		return exitInputError
	}
	defer f.Close()

	var inst *wcsp.Instance
	if *fileFormat == "d" {
		inst, err = wcsp.LoadDimacs(f)
	} else {
		inst, err = wcsp.LoadUAI(f)
	}
	if err != nil {
		fmt.Fprintf(stderr, "parsing %s: %v\n", inputPath, err)
		return exitInputError
	}

	if err := inst.WriteMapping(stdout); err != nil {
		fmt.Fprintf(stderr, "writing variable mapping: %v\n", err)
		return exitInputError
	}

	deadline := clock.Unlimited()
	if timeLimitSet {
		deadline = clock.New(time.Duration(*timeLimit * float64(time.Second)))
	}
	ctx := context.Background()

	if *linearProgramming {
		assignment, err := wcsp.SolveDirect(inst, golpa.New(), deadline)
		if err != nil {
			fmt.Fprintf(stderr, "direct LP solve: %v\n", err)
			return exitUsageError
		}
		printResults(stdout, inst, assignment, deadline)
		return exitOK
	}

	p := poly.New()
	for _, c := range inst.Constraints {
		if err := poly.AccumulateConstraint(p, c.BoolVars, c.BoolWeight); err != nil {
			fmt.Fprintf(stderr, "building polynomial: %v\n", err)
			return exitUsageError
		}
	}

	g := ccg.NewGraph()
	residual := g.AddPolynomial(p)
	g.AddCliques(inst.Blocks())

	bits := make(map[int]bool)
	g.Simplify(bits)

	var numVar, numAux1, numAux2 int
	for _, h := range g.Vertices() {
		switch kind, _, _, _ := g.VertexInfo(h); kind {
		case ccg.Variable:
			numVar++
		case ccg.AuxType1:
			numAux1++
		case ccg.AuxType2:
			numAux2++
		}
	}
	fmt.Fprintln(stdout, "==========================")
	fmt.Fprintf(stdout, "Variables simplified out: %d\n", len(bits))
	fmt.Fprintln(stdout, "==========================")
	fmt.Fprintln(stdout, "==========================")
	fmt.Fprintf(stdout, "Number of variables: %d\n", numVar)
	fmt.Fprintf(stdout, "Number of type 1 auxiliary variables: %d\n", numAux1)
	fmt.Fprintf(stdout, "Number of type 2 auxiliary variables: %d\n", numAux2)
	fmt.Fprintln(stdout, "==========================")

	dumpTarget := stdout
	if *ccgOut != "" {
		out, err := os.Create(*ccgOut)
		if err != nil {
			fmt.Fprintf(stderr, "creating %s: %v\n", *ccgOut, err)
			return exitInputError
		}
		defer out.Close()
		dumpTarget = out
	}
	if err := g.WriteDimacs(dumpTarget, true); err != nil {
		fmt.Fprintf(stderr, "writing CCG dump: %v\n", err)
		return exitInputError
	}

	if *ccgOnly {
		return exitOK
	}

	kernelized := make(map[int]bool)
	if *noKernelization {
		fmt.Fprintln(stdout, "================================")
		fmt.Fprintln(stdout, "|| No kernelization performed ||")
		fmt.Fprintln(stdout, "================================")
	} else {
		k := kernel.NewLPKernelizer(golpa.New())
		for round := 1; ; round++ {
			before := len(kernelized)
			if err := kernel.Run(ctx, g, k, kernelized, deadline); err != nil {
				fmt.Fprintf(stderr, "kernelization: %v\n", err)
				return exitUsageError
			}
			fmt.Fprintln(stdout, "==========================")
			fmt.Fprintf(stdout, "After the %dth kernelization, number of variables resolved: %d\n", round, len(kernelized))
			fmt.Fprintf(stdout, "After the %dth kernelization, number of vertices left: %d\n", round, g.NumVertices())
			fmt.Fprintln(stdout, "==========================")
			if len(kernelized) == before || g.NumVertices() == 0 {
				break
			}
		}
	}

	fmt.Fprintf(stdout, "Residual constant: %g\n", residual)

	var solved map[int]bool
	if *kernelizationOnly {
		solved = map[int]bool{}
	} else {
		var strategy mwvc.Strategy
		if *mwvcSolver == "l" {
			strategy = mwvc.NewLPSolver(golpa.New())
		} else {
			scorer := func(round map[int]bool) float64 {
				full := decode.Decode(g, bits, kernelized, round, inst.Blocks())
				return inst.ComputeTotalWeight(full)
			}
			strategy = mwvc.NewMessagePassing(1e-6, 0, mwvc.WithScorer(scorer))
		}
		res, err := strategy.Solve(ctx, g, deadline)
		if err != nil {
			fmt.Fprintf(stderr, "solving MWVC: %v\n", err)
			return exitUsageError
		}
		solved = res.Assignment
		if res.TimedOut {
			fmt.Fprintln(stdout, "Timeout solution")
		}
	}

	assignment := decode.Decode(g, bits, kernelized, solved, inst.Blocks())
	printResults(stdout, inst, assignment, deadline)
	return exitOK
}

func printResults(w *os.File, inst *wcsp.Instance, assignment map[int]int, deadline clock.Deadline) {
	if deadline.Reached() {
		fmt.Fprintln(w, "Timeout solution")
	}
	fmt.Fprintln(w, "=================================================")
	fmt.Fprintln(w, "Best assignments:")
	fmt.Fprintln(w, "ID\tassignment")
	for id := 0; id < len(inst.Blocks()); id++ {
		v, ok := assignment[id]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%d\t%d\n", id, v)
	}
	fmt.Fprintf(w, "Optimal value: %g\n", inst.ComputeTotalWeight(assignment))
}
