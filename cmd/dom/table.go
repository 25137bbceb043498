package main

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// renderTable draws a boxed table for terminals and CSV for everything else
func renderTable(headers []string, rows [][]string, aligns []columnAlignment, pretty bool) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	if !pretty {
		return renderCSV(headers, rows)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderCSV writes RFC 4180 records, go-pretty escapes commas with a backslash
func renderCSV(headers []string, rows [][]string) string {
	var sb strings.Builder

	w := csv.NewWriter(&sb)
	_ = w.Write(headers)
	for _, row := range rows {
		record := make([]string, len(headers))
		copy(record, row)
		_ = w.Write(record)
	}
	w.Flush()

	return strings.TrimSuffix(sb.String(), "\n")
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// sortRows orders rows by their first column, storage walks are unordered
func sortRows(rows [][]string) [][]string {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i][0] < rows[j][0]
	})
	return rows
}
