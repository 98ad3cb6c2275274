// Command rex runs pattern queries over a file or standard input.
//
//	rex [global options] <command> <pattern> [arguments]
//
// Examples:
//
//	rex -f i all 'lorem' < text.txt
//	rex --json nth 'ip\w+' 2 --file text.txt
//	rex inverse ',\s*' <<< 'a, b,c'
package main

import (
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "rex",
		Usage:     "iterate and query pattern matches",
		UsageText: "rex [global options] command <pattern> [arguments...]",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "flags",
				Aliases: []string{"f"},
				Usage:   "pattern `FLAGS` from the set gimsU",
				EnvVars: []string{"REX_FLAGS"},
			},
			&cli.StringFlag{
				Name:    "file",
				Usage:   "read input from `PATH` instead of stdin",
				EnvVars: []string{"REX_FILE"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print one JSON object per result",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "enable debug logging",
				EnvVars: []string{"REX_VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			initLogger(c.App.ErrWriter, c.Bool("verbose"))
			return nil
		},
		Commands: newCommands(),
	}
}

func main() {
	err := newApp(os.Stdin, os.Stdout, os.Stderr).Run(os.Args)
	switch {
	case err == nil:
	case errors.Is(err, errNoMatch):
		os.Exit(1)
	default:
		logger.Error().Err(err).Msg("rex failed")
		os.Exit(2)
	}
}
