package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/davecgh/go-spew/spew"
	decnum "github.com/shabbyrobe/go-decnum"
)

// A small calculator for checking decnum results by hand, e.g.
//
//	go run ./misc mul 999999999999 999999999999
//
// Set DECNUM_DUMP=1 to see the digit slices behind the operands and result.

const usage = `decnum calculator

Usage: <op> <a> [<b>]

Ops:
  add, sub, mul    binary
  neg, abs         unary
  cmp, cmpabs      prints -1, 0 or 1
  hash             prints the hash of <a>

Environment:
  DECNUM_DUMP=1     spew.Dump the operands and the result
  DECNUM_VERBOSE=1  print the whole expression, not just the result`

type config struct {
	Dump    bool `env:"DECNUM_DUMP"`
	Verbose bool `env:"DECNUM_VERBOSE"`
}

var ops = map[string]int{
	"add":    2,
	"sub":    2,
	"mul":    2,
	"cmp":    2,
	"cmpabs": 2,
	"neg":    1,
	"abs":    1,
	"hash":   1,
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return err
	}

	if len(args) < 2 {
		fmt.Fprintln(out, usage)
		return fmt.Errorf("missing args")
	}

	op := args[0]
	arity, ok := ops[op]
	if !ok {
		return fmt.Errorf("unknown op %q", op)
	}
	if len(args)-1 != arity {
		return fmt.Errorf("op %q takes %d operand(s), found %d", op, arity, len(args)-1)
	}

	operands := make([]decnum.BigInt, 0, arity)
	for _, s := range args[1:] {
		v, err := decnum.BigIntFromString(s)
		if err != nil {
			return err
		}
		operands = append(operands, v)
	}

	result, expr := eval(op, operands)
	if cfg.Verbose {
		fmt.Fprintf(out, "%s = %s\n", expr, result)
	} else {
		fmt.Fprintln(out, result)
	}

	if cfg.Dump {
		cs := spew.ConfigState{Indent: "  ", DisableMethods: true}
		cs.Fdump(out, operands)
		cs.Fdump(out, result)
	}
	return nil
}

// eval applies op to operands, which must already match the op's arity.
// It returns the result as text and a readable form of the expression.
func eval(op string, operands []decnum.BigInt) (result string, expr string) {
	a := operands[0]
	var b decnum.BigInt
	if len(operands) > 1 {
		b = operands[1]
	}

	switch op {
	case "add":
		return a.Add(b).String(), fmt.Sprintf("%s + %s", a, b)
	case "sub":
		return a.Sub(b).String(), fmt.Sprintf("%s - %s", a, b)
	case "mul":
		return a.Mul(b).String(), fmt.Sprintf("%s * %s", a, b)
	case "cmp":
		return strconv.Itoa(a.Cmp(b)), fmt.Sprintf("%s <=> %s", a, b)
	case "cmpabs":
		return strconv.Itoa(a.CmpAbs(b)), fmt.Sprintf("|%s| <=> |%s|", a, b)
	case "neg":
		return a.Neg().String(), fmt.Sprintf("-(%s)", a)
	case "abs":
		return a.Abs().String(), fmt.Sprintf("|%s|", a)
	case "hash":
		return fmt.Sprintf("%016x", a.Hash()), fmt.Sprintf("hash(%s)", a)
	default:
		panic(fmt.Errorf("unsupported op %q", op))
	}
}
