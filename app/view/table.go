package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
	Empty   string     `json:"-"`
}

func (t Table) Render(w io.Writer) error {
	if len(t.Rows) == 0 {
		empty := t.Empty
		if empty == "" {
			empty = "No records found."
		}
		_, err := fmt.Fprintln(w, empty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
