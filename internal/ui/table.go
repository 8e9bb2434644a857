package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column
type Column struct {
	Header string
	Width  int
	Style  lipgloss.Style
}

// Cell is a table cell. A cell without its own style uses the column style.
type Cell struct {
	Text   string
	Style  lipgloss.Style
	styled bool
}

// Text returns a cell rendered with the column style
func Text(s string) Cell {
	return Cell{Text: s}
}

// Styled returns a cell rendered with style
func Styled(s string, style lipgloss.Style) Cell {
	return Cell{Text: s, Style: style, styled: true}
}

// Table is a box-drawn table
type Table struct {
	Columns []Column
	rows    [][]Cell
}

// NewTable returns a table with the given columns
func NewTable(columns ...Column) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row. Missing cells render empty.
func (t *Table) AddRow(cells ...Cell) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to w
func (t *Table) Render(w io.Writer) error {
	var sb strings.Builder

	// Top border
	t.border(&sb, TopLeft, TopT, TopRight)

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for _, c := range t.Columns {
		cell := " " + padRight(c.Header, c.Width) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	t.border(&sb, LeftT, Cross, RightT)

	// Data rows
	for _, row := range t.rows {
		sb.WriteString(BorderStyle.Render(Vertical))
		for i, c := range t.Columns {
			var cell Cell
			if i < len(row) {
				cell = row[i]
			}
			style := c.Style
			if cell.styled {
				style = cell.Style
			}
			sb.WriteString(style.Render(" " + padRight(cell.Text, c.Width) + " "))
			sb.WriteString(BorderStyle.Render(Vertical))
		}
		sb.WriteString("\n")
	}

	// Bottom border
	t.border(&sb, BottomLeft, BottomT, BottomRight)

	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *Table) border(sb *strings.Builder, left, mid, right string) {
	sb.WriteString(BorderStyle.Render(left))
	for i, c := range t.Columns {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, c.Width+2)))
		if i < len(t.Columns)-1 {
			sb.WriteString(BorderStyle.Render(mid))
		}
	}
	sb.WriteString(BorderStyle.Render(right))
	sb.WriteString("\n")
}
