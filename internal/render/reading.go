package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phrazzld/destiny-matrix/internal/domain"
	"github.com/phrazzld/destiny-matrix/internal/domain/numerology"
	"github.com/phrazzld/destiny-matrix/internal/service"
)

const cellWidth = 20

// Reading renders a complete reading: grid, diagonals, key numbers,
// frequencies, energies and insights.
func Reading(r *service.Reading, styles Styles) string {
	var sb strings.Builder

	title := "Матрица судьбы"
	if r.BirthDate != nil {
		title += " · " + r.BirthDate.String()
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n\n")

	sb.WriteString(Grid(r.Grid, styles))
	sb.WriteString("\n")
	sb.WriteString(diagonals(r.Matrix, styles))
	sb.WriteString("\n\n")

	if r.Interpretation == nil {
		return sb.String()
	}
	in := r.Interpretation

	sb.WriteString(styles.Section.Render("Ключевые числа"))
	sb.WriteString("\n")
	for _, kn := range in.KeyNumbers {
		sb.WriteString(styles.Bullet.Render("• "))
		sb.WriteString(styles.Body.Render(kn.Text))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(Frequencies(in.Frequencies, styles))
	sb.WriteString("\n")

	sb.WriteString(styles.Section.Render("Энергии"))
	sb.WriteString("\n")
	sb.WriteString(styles.Body.Render(in.Energies.Strong))
	sb.WriteString("\n")
	sb.WriteString(styles.Body.Render(in.Energies.Missing))
	sb.WriteString("\n")
	if in.Energies.KarmicPatterns != nil {
		sb.WriteString(styles.Body.Render(*in.Energies.KarmicPatterns))
		sb.WriteString("\n")
	}

	if len(in.Insights) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Section.Render("Особые сочетания"))
		sb.WriteString("\n")
		for _, insight := range in.Insights {
			sb.WriteString(styles.Bullet.Render("• "))
			sb.WriteString(styles.Body.Render(insight.Text))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Grid renders the 3x3 display grid as bordered cells. The centre cell uses
// the CenterCell style.
func Grid(grid [][]service.GridCell, styles Styles) string {
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			style := styles.Cell
			if cell.Key == domain.CenterNumber {
				style = styles.CenterCell
			}
			cells = append(cells, style.Render(cell.Name+"\n"+styles.CellValue.Render(digitText(cell.Value))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// Frequencies renders the digit occurrence table.
func Frequencies(freq numerology.FrequencyTable, styles Styles) string {
	table := NewTable("Частоты", "Число", "Повторений")
	for d := domain.MinDigit; d <= domain.MaxDigit; d++ {
		table.AddRow(strconv.Itoa(d.Int()), strconv.Itoa(freq.Count(d)))
	}
	return table.View(styles)
}

// Positions renders the static position catalog.
func Positions(infos []numerology.PositionInfo, styles Styles) string {
	table := NewTable("Позиции матрицы", "Ключ", "Название", "Стихия", "Планета", "Клетка")
	for _, info := range infos {
		cell := info.Cell
		if cell == "" {
			cell = "-"
		}
		table.AddRow(string(info.Key), info.Name, string(info.Element), string(info.Planet), cell)
	}
	return table.View(styles)
}

func diagonals(matrix domain.Matrix, styles Styles) string {
	parts := make([]string, 0, 2)
	for _, key := range []domain.PositionKey{domain.FirstDiagonal, domain.SecondDiagonal} {
		value, _ := matrix.Value(key)
		parts = append(parts, fmt.Sprintf("%s %s", numerology.Describe(key).Name, styles.CellValue.Render(digitText(value))))
	}
	return styles.Muted.Render("Диагонали: ") + strings.Join(parts, styles.Muted.Render(" · "))
}

func digitText(d domain.Digit) string {
	if !d.Valid() {
		return "-"
	}
	return strconv.Itoa(d.Int())
}
