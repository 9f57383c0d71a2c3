package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"langdeck/internal/records"
)

func renderSummary(recs []records.Record, colorize bool) string {
	units := records.Summarize(recs)

	tw := table.NewWriter()
	if colorize {
		tw.SetStyle(table.StyleColoredBright)
	} else {
		tw.SetStyle(table.StyleRounded)
	}
	tw.AppendHeader(table.Row{"Unit", "Records", "IDs"})
	for _, u := range units {
		tw.AppendRow(table.Row{u.Unit, u.Count, strconv.Itoa(u.FirstID) + "-" + strconv.Itoa(u.LastID)})
	}
	tw.AppendFooter(table.Row{"Total", len(recs), ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
