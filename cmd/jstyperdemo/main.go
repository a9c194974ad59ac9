package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jsfuzz/typer/internal/config"
	"github.com/jsfuzz/typer/internal/environment"
	"github.com/jsfuzz/typer/internal/ir"
	"github.com/jsfuzz/typer/internal/typer"
)

func main() {
	envPath := flag.String("env", "", "path to a YAML environment document")
	scriptPath := flag.String("script", "", "path to a YAML operation script")
	testMode := flag.Bool("test", false, "suppress colorized output, as under go test")
	flag.Parse()

	config.IsTestMode = *testMode

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "usage: jstyperdemo --script script.yaml [--env env.yaml]")
		os.Exit(2)
	}

	env := environment.NewStubEnvironment()
	if *envPath != "" {
		loaded, err := environment.LoadYAMLFile(*envPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "jstyperdemo:", err)
			os.Exit(1)
		}
		env = loaded
	}

	s, err := loadScript(*scriptPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "jstyperdemo:", err)
		os.Exit(1)
	}

	eng := typer.New(env)
	if err := run(eng, s); err != nil {
		fmt.Fprintln(os.Stderr, "jstyperdemo:", err)
		os.Exit(1)
	}

	colorize := !config.IsTestMode && isatty.IsTerminal(os.Stdout.Fd())
	for _, v := range s.Queries {
		t := eng.TypeOf(ir.Variable(v))
		if colorize {
			fmt.Printf("\x1b[36m%s\x1b[0m = \x1b[33m%s\x1b[0m\n", v, t)
		} else {
			fmt.Printf("%s = %s\n", v, t)
		}
	}
}

func run(eng *typer.Typer, s *script) error {
	for i, op := range s.Operations {
		switch op.Op {
		case "enterBlock":
			kind, ok := blockKindByName(op.Kind)
			if !ok {
				return fmt.Errorf("operation %d: unrecognized block kind %q", i, op.Kind)
			}
			meta := typer.BlockMeta{
				HasAlternative: op.HasAlternative,
				IsDefault:      op.IsDefault,
				IsFirstCase:    op.IsFirstCase,
				IsLastCase:     op.IsLastCase,
				LoopVarName:    op.LoopVar,
				LoopVarType:    loopVarType(op.LoopVarType),
			}
			if op.Branch == "alternative" {
				meta.Branch = typer.BranchIfAlternative
			} else {
				meta.Branch = typer.BranchIfConsequent
			}
			if err := eng.EnterBlock(kind, meta); err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
		case "leaveBlock":
			if err := eng.LeaveBlock(); err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
		default:
			built, ok := buildOperation(op)
			if !ok {
				return fmt.Errorf("operation %d: unrecognized op %q", i, op.Op)
			}
			if err := eng.Analyze(built); err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
		}
	}
	return nil
}
