package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/clamped-go/clamped"
)

var (
	GitCommit = ""
	GitDate   = ""
	Version   = "v0.1.0"
)

func main() {
	app := cli.NewApp()
	app.Version = Version
	app.Name = "clamped"
	app.Usage = "saturating bounded-integer calculator"
	app.Description = "Applies a sequence of operations to a bounded value and prints each step.\n" +
		"Operations: add:N sub:N mul:N div:N mod:N neg\n\n" +
		"Example: clamped --value 5 --min 0 --max 10 add:10 div:0 neg"
	app.Flags = []cli.Flag{
		&cli.Int64Flag{
			Name:  "value",
			Usage: "starting value",
			Value: 0,
		},
		&cli.Int64Flag{
			Name:  "min",
			Usage: "inclusive lower bound (stretched down to the starting value if above it)",
			Value: math.MinInt64,
		},
		&cli.Int64Flag{
			Name:  "max",
			Usage: "inclusive upper bound (stretched up to the starting value if below it)",
			Value: math.MaxInt64,
		},
	}
	app.Action = run
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Application failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	num := clamped.NewInteger(
		cliCtx.Int64("value"),
		cliCtx.Int64("min"),
		cliCtx.Int64("max"),
	)

	table := tablewriter.NewWriter(cliCtx.App.Writer)
	table.SetHeader([]string{"step", "op", "value", "min", "max"})
	table.Append(row(0, "init", num))

	for i, arg := range cliCtx.Args().Slice() {
		op, operand, err := parseOp(arg)
		if err != nil {
			return err
		}
		switch op {
		case "add":
			num.Add(operand)
		case "sub":
			num.Sub(operand)
		case "mul":
			num.Mul(operand)
		case "div":
			num.Div(operand)
		case "mod":
			num.Mod(operand)
		case "neg":
			num = num.Neg()
		}
		table.Append(row(i+1, arg, num))
	}

	table.Render()
	return nil
}

func row(step int, op string, num clamped.Int64) []string {
	return []string{
		strconv.Itoa(step),
		op,
		strconv.FormatInt(num.Value(), 10),
		strconv.FormatInt(num.MinValue(), 10),
		strconv.FormatInt(num.MaxValue(), 10),
	}
}

// parseOp splits an "op:operand" argument. The neg operation takes no
// operand.
func parseOp(s string) (op string, operand int64, err error) {
	if s == "neg" {
		return "neg", 0, nil
	}
	op, rest, ok := strings.Cut(s, ":")
	if !ok {
		return "", 0, fmt.Errorf("invalid operation %q, want op:operand", s)
	}
	switch op {
	case "add", "sub", "mul", "div", "mod":
	default:
		return "", 0, fmt.Errorf("unknown operation %q", op)
	}
	operand, err = strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid operand in %q: %w", s, err)
	}
	return op, operand, nil
}
