package main

import (
	"fmt"
	"os"

	"github.com/govalues/rational/internal/config"
	"github.com/govalues/rational/internal/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rational"
	app.Usage = "Exact rational arithmetic with truncated decimal expansions."
	app.UsageText = "rational [global options] command [options] p/q... (use -- before a negative first operand)"
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.Before = setup
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:      "expand",
			Aliases:   []string{"e"},
			Usage:     "Print the decimal expansion truncated to a number of significant digits",
			ArgsUsage: "p/q",
			Action:    expandCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "prec",
					Aliases: []string{"n"},
					Usage:   "the number of significant digits, defaults to expand.precision of the configuration",
				},
			},
		},
		{
			Name:      "decimal",
			Usage:     "Print the truncated expansion as a normalized decimal",
			ArgsUsage: "p/q",
			Action:    decimalCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "prec",
					Aliases: []string{"n"},
					Usage:   "the number of significant digits, defaults to expand.precision of the configuration",
				},
			},
		},
		foldCommand("add", "Add the operands", add),
		foldCommand("sub", "Subtract the remaining operands from the first one", sub),
		foldCommand("mul", "Multiply the operands", mul),
		foldCommand("quo", "Divide the first operand by the remaining ones", quo),
		{
			Name:      "cmp",
			Usage:     "Compare two operands and print -1, 0 or 1",
			ArgsUsage: "p/q p/q",
			Action:    cmpCmd,
		},
	}
	return app
}

// setup loads the configuration and applies the logging settings.
// Flags given on the command line take precedence over the file.
func setup(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		var err error
		custom, err = config.Initialize(file)
		if err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err := logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return err
	}
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata["config"] = custom
	logger.Debugf("configuration %+v", *custom)
	return nil
}

func customFrom(c *cli.Context) *config.Custom {
	custom, ok := c.App.Metadata["config"].(*config.Custom)
	if !ok {
		return config.Default()
	}
	return custom
}
