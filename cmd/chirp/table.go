package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable renders the two-column name/value tables the status and
// parameter listings use. numericValues right-aligns the value column.
func renderTable(nameHeader, valueHeader string, rows [][2]string, numericValues bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{nameHeader, valueHeader})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}

	valueAlign := text.AlignLeft
	if numericValues {
		valueAlign = text.AlignRight
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: valueAlign, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
