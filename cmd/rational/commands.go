package main

import (
	"fmt"

	"github.com/govalues/rational"
	"github.com/govalues/rational/internal/logger"
	"github.com/urfave/cli/v2"
)

type foldFunc func(x rational.Rational, ys ...rational.Rational) (rational.Rational, error)

func add(x rational.Rational, ys ...rational.Rational) (rational.Rational, error) {
	return rational.Add(append([]rational.Rational{x}, ys...)...), nil
}

func sub(x rational.Rational, ys ...rational.Rational) (rational.Rational, error) {
	return rational.Sub(x, ys...), nil
}

func mul(x rational.Rational, ys ...rational.Rational) (rational.Rational, error) {
	return rational.Mul(append([]rational.Rational{x}, ys...)...), nil
}

func quo(x rational.Rational, ys ...rational.Rational) (rational.Rational, error) {
	z := x
	for _, y := range ys {
		var err error
		z, err = z.Quo(y)
		if err != nil {
			return rational.Rational{}, err
		}
	}
	return z, nil
}

func foldCommand(name, usage string, fn foldFunc) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "p/q...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "expand",
				Aliases: []string{"e"},
				Usage:   "also print the decimal expansion of the result",
			},
			&cli.StringFlag{
				Name:    "prec",
				Aliases: []string{"n"},
				Usage:   "the number of significant digits of the expansion",
			},
		},
		Action: func(c *cli.Context) error {
			xs, err := parseArgs(c, 1)
			if err != nil {
				return err
			}
			z, err := fn(xs[0], xs[1:]...)
			if err != nil {
				return err
			}
			logger.Verbosef("%s %v = %v", name, xs, z)
			if !c.Bool("expand") {
				fmt.Fprintln(c.App.Writer, z)
				return nil
			}
			prec, err := precision(c)
			if err != nil {
				return err
			}
			s, err := z.Expand(prec)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%v %s\n", z, s)
			return nil
		},
	}
}

func expandCmd(c *cli.Context) error {
	xs, err := parseArgs(c, 1)
	if err != nil {
		return err
	}
	if len(xs) != 1 {
		return fmt.Errorf("expand takes exactly one operand, got %d", len(xs))
	}
	prec, err := precision(c)
	if err != nil {
		return err
	}
	s, err := xs[0].Expand(prec)
	if err != nil {
		return err
	}
	logger.Verbosef("expanding %v to %d significant digit(s)", xs[0], prec)
	fmt.Fprintln(c.App.Writer, s)
	return nil
}

func decimalCmd(c *cli.Context) error {
	xs, err := parseArgs(c, 1)
	if err != nil {
		return err
	}
	if len(xs) != 1 {
		return fmt.Errorf("decimal takes exactly one operand, got %d", len(xs))
	}
	prec, err := precision(c)
	if err != nil {
		return err
	}
	d, err := xs[0].Decimal(prec)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, d.String())
	return nil
}

func cmpCmd(c *cli.Context) error {
	xs, err := parseArgs(c, 2)
	if err != nil {
		return err
	}
	if len(xs) != 2 {
		return fmt.Errorf("cmp takes exactly two operands, got %d", len(xs))
	}
	fmt.Fprintln(c.App.Writer, xs[0].Cmp(xs[1]))
	return nil
}

// precision returns the --prec flag, or the configured precision if the flag
// is not set.
func precision(c *cli.Context) (int, error) {
	if !c.IsSet("prec") {
		return customFrom(c).Expand.Precision, nil
	}
	return rational.ParsePrecision(c.String("prec"))
}

func parseArgs(c *cli.Context, min int) ([]rational.Rational, error) {
	args := c.Args().Slice()
	if len(args) < min {
		return nil, fmt.Errorf("%s needs at least %d operand(s), got %d", c.Command.Name, min, len(args))
	}
	xs := make([]rational.Rational, len(args))
	for i, a := range args {
		x, err := rational.Parse(a)
		if err != nil {
			return nil, err
		}
		logger.Debugf("operand %d: %s = %v", i, a, x)
		xs[i] = x
	}
	return xs, nil
}
