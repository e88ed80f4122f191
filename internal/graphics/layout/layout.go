package layout

// Rect is a screen-space rectangle in pixels, top-left origin.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive so neighbouring cells never both claim a point.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Metrics are the fixed pixel sizes of the slot grid.
type Metrics struct {
	CellW, CellH float32
	IconSize     float32
	Gap          float32
	Padding      float32
	Border       float32
}

// DefaultMetrics fits an 80px icon and a one-line label per cell.
var DefaultMetrics = Metrics{
	CellW:    150,
	CellH:    116,
	IconSize: 80,
	Gap:      10,
	Padding:  16,
	Border:   2,
}

// Grid positions Count cells in rows of Columns, centred in a viewport.
type Grid struct {
	Metrics
	Count   int
	Columns int
	Rows    int
	Panel   Rect
}

// NewGrid lays out count cells, columns per row, centred in a viewW x viewH
// viewport.
func NewGrid(count, columns int, m Metrics, viewW, viewH float32) Grid {
	columns = max(1, min(columns, max(count, 1)))
	rows := 0
	if count > 0 {
		rows = (count + columns - 1) / columns
	}

	w := float32(columns)*m.CellW + float32(columns-1)*m.Gap + 2*m.Padding
	h := float32(rows)*m.CellH + float32(max(rows-1, 0))*m.Gap + 2*m.Padding

	return Grid{
		Metrics: m,
		Count:   count,
		Columns: columns,
		Rows:    rows,
		Panel:   Rect{X: (viewW - w) / 2, Y: (viewH - h) / 2, W: w, H: h},
	}
}

// Cell returns the rectangle of cell i.
func (g Grid) Cell(i int) Rect {
	col := i % g.Columns
	row := i / g.Columns
	return Rect{
		X: g.Panel.X + g.Padding + float32(col)*(g.CellW+g.Gap),
		Y: g.Panel.Y + g.Padding + float32(row)*(g.CellH+g.Gap),
		W: g.CellW,
		H: g.CellH,
	}
}

// Icon returns where the icon of cell i is drawn: centred horizontally,
// near the top of the cell.
func (g Grid) Icon(i int) Rect {
	c := g.Cell(i)
	return Rect{X: c.X + (c.W-g.IconSize)/2, Y: c.Y + g.Border + 4, W: g.IconSize, H: g.IconSize}
}

// LabelBaseline returns the left-centre anchor and baseline for the label of
// cell i, given the rendered text width.
func (g Grid) LabelBaseline(i int, textW float32) (float32, float32) {
	c := g.Cell(i)
	return c.X + (c.W-textW)/2, c.Y + c.H - g.Border - 8
}

// CellAt returns the cell under the point, or -1 for gaps and outside.
func (g Grid) CellAt(x, y float32) int {
	if !g.Panel.Contains(x, y) {
		return -1
	}
	col := int((x - g.Panel.X - g.Padding) / (g.CellW + g.Gap))
	row := int((y - g.Panel.Y - g.Padding) / (g.CellH + g.Gap))
	if col < 0 || row < 0 || col >= g.Columns {
		return -1
	}
	i := row*g.Columns + col
	if i >= g.Count || !g.Cell(i).Contains(x, y) {
		return -1
	}
	return i
}
