package rankings

import (
	"fmt"
	"strconv"
	"strings"
)

var columns = []string{"Rank", "Player", "DPS", "Class", "Spec", "Guild", "Server", "Report"}

var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// Title is the heading text, e.g. "Top 10 DPS Rankings for Gallywix (Mythic)".
func Title(count int, metric string, encounterName string, difficulty string) string {
	return fmt.Sprintf("Top %d %s Rankings for %s (%s)", count, strings.ToUpper(metric), encounterName, difficulty)
}

// Render writes rows as a Markdown table under an H2 title. Rows are written
// as given: nothing is sorted, dropped or merged here.
func Render(title string, rows []Row) string {
	var sb strings.Builder

	sb.WriteString("## ")
	sb.WriteString(strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(title))
	sb.WriteString("\n\n")

	writeLine(&sb, columns)

	sep := make([]string, len(columns))
	for i := range sep {
		sep[i] = "---"
	}
	writeLine(&sb, sep)

	cells := make([]string, len(columns))
	for _, row := range rows {
		guild := row.GuildName
		if guild == "" {
			guild = NoGuild
		}

		cells[0] = strconv.Itoa(row.Rank)
		cells[1] = escapeCell(row.PlayerName)
		cells[2] = FormatDPS(row.DPS)
		cells[3] = escapeCell(row.ClassName)
		cells[4] = escapeCell(row.SpecName)
		cells[5] = escapeCell(guild)
		cells[6] = escapeCell(row.ServerName)
		cells[7] = escapeCell(row.ReportCode)
		writeLine(&sb, cells)
	}

	return sb.String()
}

// FormatDPS is fixed point with two decimals, no grouping.
func FormatDPS(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

func writeLine(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(cells, " | "))
	sb.WriteString(" |\n")
}
