// Package view renders a generated month grid for the terminal. It is
// read-only over the generator's output and holds no state of its own.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/username/monthgrid/internal/grid"
)

// Renderer turns a generated grid into the displayed month view:
// header line, weekday row, six day rows, footer line.
type Renderer struct {
	formatter Formatter
	styles    Styles
	logger    *zap.Logger
}

// NewRenderer creates a renderer with the given formatter and styles
func NewRenderer(formatter Formatter, styles Styles, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		formatter: formatter,
		styles:    styles,
		logger:    logger,
	}
}

// CellStyle returns the style for a day cell. Fixed decision table on
// {InMonth, Highlighted}, four combinations.
func (r *Renderer) CellStyle(cell grid.DayCell) lipgloss.Style {
	switch {
	case cell.InMonth && cell.Highlighted:
		return r.styles.DayHighlighted
	case cell.InMonth:
		return r.styles.DayInMonth
	default:
		return r.styles.DayOutOfMonth
	}
}

// Render produces the full month view for the reference date
func (r *Renderer) Render(ref time.Time) (string, error) {
	cells, err := grid.Generate(ref)
	if err != nil {
		return "", fmt.Errorf("failed to generate month grid: %w", err)
	}

	r.logger.Debug("rendering month view",
		zap.Time("reference_date", ref),
		zap.Int("cells", len(cells)))

	var sb strings.Builder

	gridWidth := grid.Columns * CellWidth
	title := lipgloss.PlaceHorizontal(gridWidth, lipgloss.Center, r.styles.Title.Render(r.formatter.MonthTitle(ref)))
	sb.WriteString(title)
	sb.WriteString("\n")

	for _, abbrev := range r.formatter.WeekdayAbbrevs() {
		sb.WriteString(r.styles.Weekday.Render(abbrev))
	}
	sb.WriteString("\n")

	for _, row := range grid.Rows(cells) {
		for _, cell := range row {
			sb.WriteString(r.CellStyle(cell).Render(fmt.Sprintf("%d", cell.Day)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(r.styles.Footer.Render(r.formatter.FullDate(ref)))
	sb.WriteString("\n")

	return sb.String(), nil
}
