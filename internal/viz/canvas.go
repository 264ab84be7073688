package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cells dimmer than this are cleared by Fade.
const fadeFloor = 0.05

type cell struct {
	r     rune
	level float64
}

// Grid is a terminal character canvas measured in cells of Cell pixels.
// It satisfies rain.Surface: Draw takes pixel coordinates, with y as the
// text baseline, and Fade dims every cell a little.
type Grid struct {
	Cols, Rows, Cell int
	cells            [][]cell
}

func NewGrid(cols, rows, cellSize int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &Grid{Cols: cols, Rows: rows, Cell: cellSize, cells: make([][]cell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
	}
	return g
}

// Size is the surface size in pixels.
func (g *Grid) Size() (w, h int) {
	return g.Cols * g.Cell, g.Rows * g.Cell
}

// Fade paints a translucent overlay of the given opacity.
func (g *Grid) Fade(alpha float64) {
	for _, row := range g.cells {
		for j := range row {
			c := &row[j]
			if c.r == 0 {
				continue
			}
			c.level *= 1 - alpha
			if c.level < fadeFloor {
				*c = cell{}
			}
		}
	}
}

// Draw places r at full brightness in the cell whose baseline is y.
func (g *Grid) Draw(x, y int, r rune) {
	if x < 0 || y <= 0 {
		return
	}
	col, row := x/g.Cell, (y-1)/g.Cell
	if col >= g.Cols || row >= g.Rows {
		return
	}
	g.cells[row][col] = cell{r: r, level: 1}
}

// Clear blanks the canvas
func (g *Grid) Clear() {
	for _, row := range g.cells {
		for j := range row {
			row[j] = cell{}
		}
	}
}

// Rune returns the symbol at a cell, or ' ' when empty.
func (g *Grid) Rune(col, row int) rune {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows || g.cells[row][col].r == 0 {
		return ' '
	}
	return g.cells[row][col].r
}

// Level returns the brightness of a cell in [0, 1].
func (g *Grid) Level(col, row int) float64 {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return 0
	}
	return g.cells[row][col].level
}

// bucket groups brightness into the few shades the renderer uses; -1 is blank.
func bucket(c cell) int {
	switch {
	case c.r == 0:
		return -1
	case c.level >= 0.95:
		return 3
	case c.level >= 0.5:
		return 2
	case c.level >= 0.2:
		return 1
	}
	return 0
}

func shades(th Theme) [4]lipgloss.Style {
	return [4]lipgloss.Style{
		lipgloss.NewStyle().Foreground(th.Muted),
		lipgloss.NewStyle().Foreground(th.Accent).Faint(true),
		lipgloss.NewStyle().Foreground(th.Accent),
		lipgloss.NewStyle().Foreground(th.Head).Bold(true),
	}
}

// RenderRow renders columns [from, to) of one row, batching runs of the
// same shade into a single styled span.
func (g *Grid) RenderRow(row, from, to int, th Theme) string {
	if row < 0 || row >= g.Rows {
		return strings.Repeat(" ", max(to-from, 0))
	}
	from = max(from, 0)
	to = min(to, g.Cols)
	st := shades(th)

	var b, run strings.Builder
	cur := -2
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if cur < 0 {
			b.WriteString(run.String())
		} else {
			b.WriteString(st[cur].Render(run.String()))
		}
		run.Reset()
	}
	for col := from; col < to; col++ {
		c := g.cells[row][col]
		k := bucket(c)
		if k != cur {
			flush()
			cur = k
		}
		if c.r == 0 {
			run.WriteByte(' ')
		} else {
			run.WriteRune(c.r)
		}
	}
	flush()
	return b.String()
}

// Render draws the whole grid.
func (g *Grid) Render(th Theme) string {
	rows := make([]string, g.Rows)
	for i := range rows {
		rows[i] = g.RenderRow(i, 0, g.Cols, th)
	}
	return strings.Join(rows, "\n")
}

// Overlay renders the grid with panel centred on top of it. A panel that
// does not fit is returned on its own.
func (g *Grid) Overlay(panel string, th Theme) string {
	lines := strings.Split(panel, "\n")
	pw := lipgloss.Width(panel)
	ph := len(lines)
	if pw > g.Cols || ph > g.Rows {
		return panel
	}
	x0, y0 := (g.Cols-pw)/2, (g.Rows-ph)/2

	out := make([]string, g.Rows)
	for row := range out {
		if row < y0 || row >= y0+ph {
			out[row] = g.RenderRow(row, 0, g.Cols, th)
			continue
		}
		line := lines[row-y0]
		pad := pw - lipgloss.Width(line)
		out[row] = g.RenderRow(row, 0, x0, th) + line + strings.Repeat(" ", pad) + g.RenderRow(row, x0+pw, g.Cols, th)
	}
	return strings.Join(out, "\n")
}
