// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logkit

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// previewRows bounds how many data rows a preview emits.
const previewRows = 5

// Table is a minimal in-memory tabular dataset for diagnostic previews.
type Table struct {
	Header table.Row
	Rows   []table.Row
}

// LogTablePreview emits the first rows of tbl at DEBUG severity. An empty
// label falls back to "Table".
func LogTablePreview(log *Handle, tbl Table, label string) {
	if label == "" {
		label = "Table"
	}

	log.Debug(label + " head:\n" + renderPreview(tbl))
}

// LogTablePreviews emits a preview for each table, labelled by position.
func LogTablePreviews(log *Handle, tables ...Table) {
	for i, tbl := range tables {
		LogTablePreview(log, tbl, fmt.Sprintf("Table %d", i+1))
	}
}

func renderPreview(tbl Table) string {
	writer := table.NewWriter()
	if len(tbl.Header) > 0 {
		writer.AppendHeader(tbl.Header)
	}

	rows := tbl.Rows
	if len(rows) > previewRows {
		rows = rows[:previewRows]
	}
	writer.AppendRows(rows)

	return writer.Render()
}
