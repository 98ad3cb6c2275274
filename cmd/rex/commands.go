package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/coregx/rex"
)

// errNoMatch makes the process exit with status 1, as grep does.
var errNoMatch = errors.New("no match")

func startFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "start",
		Usage: "only consider input from byte `OFFSET` on",
	}
}

// newCommands returns fresh command definitions; cli mutates them while
// running.
func newCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "test",
			Usage:     "report whether the input contains a match",
			ArgsUsage: "<pattern>",
			Action:    testCmd,
		},
		{
			Name:      "match",
			Usage:     "print the first match and its groups, or every match with -f g",
			ArgsUsage: "<pattern>",
			Action:    matchCmd,
		},
		{
			Name:      "all",
			Usage:     "print every match",
			ArgsUsage: "<pattern>",
			Action:    allCmd,
		},
		{
			Name:      "each",
			Usage:     "print matches until the limit is reached",
			ArgsUsage: "<pattern>",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "limit", Usage: "stop after `N` matches, 0 for no limit"},
			},
			Action: eachCmd,
		},
		{
			Name:      "reverse",
			Usage:     "print every match, last first",
			ArgsUsage: "<pattern>",
			Action:    reverseCmd,
		},
		{
			Name:      "inverse",
			Usage:     "print the text between matches",
			ArgsUsage: "<pattern>",
			Action:    inverseCmd,
		},
		{
			Name:      "count",
			Usage:     "print the number of matches",
			ArgsUsage: "<pattern>",
			Action:    countCmd,
		},
		{
			Name:      "first",
			Usage:     "print the first match",
			ArgsUsage: "<pattern>",
			Flags:     []cli.Flag{startFlag()},
			Action:    firstCmd,
		},
		{
			Name:      "last",
			Usage:     "print the last match",
			ArgsUsage: "<pattern>",
			Action:    lastCmd,
		},
		{
			Name:      "nth",
			Usage:     "print the match at position N, counting from 0",
			ArgsUsage: "<pattern> <N>",
			Flags:     []cli.Flag{startFlag()},
			Action:    nthCmd,
		},
		{
			Name:      "indices",
			Usage:     "print the byte offset of every match",
			ArgsUsage: "<pattern>",
			Flags:     []cli.Flag{startFlag()},
			Action:    indicesCmd,
		},
		{
			Name:      "escape",
			Usage:     "print text escaped for literal use in a pattern",
			ArgsUsage: "<text>",
			Action:    escapeCmd,
		},
	}
}

// load compiles the pattern argument and reads the input.
func load(c *cli.Context) (*rex.RE, string, error) {
	if c.NArg() < 1 {
		return nil, "", fmt.Errorf("%s: missing pattern", c.Command.Name)
	}
	re, err := rex.New(c.Args().First(), c.String("flags"))
	if err != nil {
		return nil, "", err
	}
	logger.Debug().Str("pattern", re.String()).Msg("compiled")

	var data []byte
	if path := c.String("file"); path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(c.App.Reader)
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading input: %w", err)
	}
	logger.Debug().Int("bytes", len(data)).Msg("read input")
	return re, string(data), nil
}

func testCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	ok := re.Test(input)
	fmt.Fprintln(c.App.Writer, ok)
	if !ok {
		return errNoMatch
	}
	return nil
}

func matchCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	texts := re.Match(input)
	if texts == nil {
		return errNoMatch
	}
	p := newPrinter(c)
	for _, s := range texts {
		if err := p.text(s); err != nil {
			return err
		}
	}
	return nil
}

func allCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	return printAll(newPrinter(c), re.All(input))
}

func eachCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	limit := c.Int("limit")
	p := newPrinter(c)
	var perr error
	n := 0
	re.Each(input, func(m *rex.Match, i int, _ *rex.Pattern) rex.Control {
		if perr = p.match(m); perr != nil {
			return rex.Stop
		}
		n++
		if limit > 0 && i+1 >= limit {
			logger.Debug().Int("limit", limit).Msg("stopped early")
			return rex.Stop
		}
		return rex.Continue
	})
	if perr != nil {
		return perr
	}
	if n == 0 {
		return errNoMatch
	}
	return nil
}

func reverseCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	p := newPrinter(c)
	var perr error
	n := 0
	re.EachRight(input, func(m *rex.Match, _ int, _ *rex.Pattern) rex.Control {
		if perr = p.match(m); perr != nil {
			return rex.Stop
		}
		n++
		return rex.Continue
	})
	if perr != nil {
		return perr
	}
	if n == 0 {
		return errNoMatch
	}
	return nil
}

func inverseCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	p := newPrinter(c)
	var perr error
	re.EachInverse(input, func(m *rex.Match, _ int, _ *rex.Pattern) rex.Control {
		if perr = p.match(m); perr != nil {
			return rex.Stop
		}
		return rex.Continue
	})
	return perr
}

func countCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	return newPrinter(c).number(re.Count(input))
}

func firstCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	return printOne(newPrinter(c), re.FirstAt(input, c.Int("start")))
}

func lastCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	return printOne(newPrinter(c), re.Last(input))
}

func nthCmd(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("nth: missing position")
	}
	n, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("nth: bad position: %w", err)
	}
	re, input, err := load(c)
	if err != nil {
		return err
	}
	return printOne(newPrinter(c), re.NthAt(input, n, c.Int("start")))
}

func indicesCmd(c *cli.Context) error {
	re, input, err := load(c)
	if err != nil {
		return err
	}
	offsets := re.IndicesAt(input, c.Int("start"))
	if len(offsets) == 0 {
		return errNoMatch
	}
	p := newPrinter(c)
	for _, i := range offsets {
		if err := p.number(i); err != nil {
			return err
		}
	}
	return nil
}

func escapeCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("escape: missing text")
	}
	return newPrinter(c).text(rex.Escape(c.Args().First()))
}

func printAll(p *printer, matches []*rex.Match) error {
	if len(matches) == 0 {
		return errNoMatch
	}
	for _, m := range matches {
		if err := p.match(m); err != nil {
			return err
		}
	}
	return nil
}

func printOne(p *printer, m *rex.Match) error {
	if m == nil {
		return errNoMatch
	}
	return p.match(m)
}
