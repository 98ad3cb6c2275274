package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/coregx/rex"
)

// printer writes results as tab separated text or as JSON lines.
type printer struct {
	w    io.Writer
	json bool
	enc  *json.Encoder
}

type matchRecord struct {
	Index  int      `json:"index"`
	End    int      `json:"end"`
	Groups []string `json:"groups"`
}

func newPrinter(c *cli.Context) *printer {
	p := &printer{w: c.App.Writer, json: c.Bool("json")}
	if p.json {
		p.enc = json.NewEncoder(p.w)
	}
	return p
}

// match prints the offset followed by every group.
func (p *printer) match(m *rex.Match) error {
	if p.json {
		return p.enc.Encode(matchRecord{Index: m.Index, End: m.End(), Groups: m.Groups})
	}
	_, err := fmt.Fprintf(p.w, "%d\t%s\n", m.Index, strings.Join(m.Groups, "\t"))
	return err
}

func (p *printer) text(s string) error {
	if p.json {
		return p.enc.Encode(s)
	}
	_, err := fmt.Fprintln(p.w, s)
	return err
}

func (p *printer) number(n int) error {
	if p.json {
		return p.enc.Encode(n)
	}
	_, err := fmt.Fprintln(p.w, n)
	return err
}
