package format

import (
	"fmt"
	"strconv"
	"strings"

	"FcnLang/internal/lexer"
)

var tokenColumns = []string{"#", "Class", "Text", "Span"}

// FormatTokens renders tokens as a bordered table, one row per token.
func FormatTokens(tokens []lexer.Token) string {
	if len(tokens) == 0 {
		return "No tokens\n"
	}

	rows := make([][]string, len(tokens))
	for i, tok := range tokens {
		rows[i] = []string{
			strconv.Itoa(i),
			tok.Class.String(),
			strconv.Quote(tok.Text),
			tok.Span.String(),
		}
	}

	var sb strings.Builder
	colWidths := calculateColumnWidths(tokenColumns, rows)

	writeBorder(&sb, colWidths)
	writeRow(&sb, tokenColumns, colWidths)
	writeBorder(&sb, colWidths)

	for _, row := range rows {
		writeRow(&sb, row, colWidths)
	}

	writeBorder(&sb, colWidths)
	fmt.Fprintf(&sb, "%d token(s)\n", len(tokens))

	return sb.String()
}

func calculateColumnWidths(columns []string, rows [][]string) []int {
	colWidths := make([]int, len(columns))
	for i, col := range columns {
		colWidths[i] = len(col)
		for _, row := range rows {
			if i < len(row) && len(row[i]) > colWidths[i] {
				colWidths[i] = len(row[i])
			}
		}
	}
	return colWidths
}

func writeBorder(sb *strings.Builder, colWidths []int) {
	sb.WriteString("+")
	for _, width := range colWidths {
		sb.WriteString(strings.Repeat("-", width+2))
		sb.WriteString("+")
	}
	sb.WriteString("\n")
}

func writeRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")
	for i, val := range row {
		if i < len(colWidths) {
			fmt.Fprintf(sb, " %-*s |", colWidths[i], val)
		}
	}
	sb.WriteString("\n")
}
