package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the rendered board. Each field cell takes two columns. The two
// spawn rows are drawn between the walls above the visible field.
const (
	cellW      = 2
	boardW     = Width*cellW + 2 // cells plus walls
	boardH     = Height + 1      // rows plus floor
	panelW     = 20
	panelGap   = 2
	MinScreenW = boardW + panelGap + panelW
	MinScreenH = boardH
)

var shapeColors = [...]core.Color{
	ShapeI: core.ColorCyan,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
	ShapeO: core.ColorYellow,
	ShapeS: core.ColorGreen,
	ShapeT: core.ColorMagenta,
	ShapeZ: core.ColorRed,
}

// Color returns the display color conventionally used for the shape.
func (s Shape) Color() core.Color {
	if !s.Valid() {
		return core.ColorDefault
	}
	return shapeColors[s]
}

// Board is one frame of play as the renderer sees it.
type Board struct {
	Field    *Field
	Current  *Piece // nil before the first piece spawns
	Lines    int
	Level    int
	Ghost    bool // draw where a hard drop would land
	Paused   bool
	GameOver bool
	Title    string
	Hints    []string
}

// Render draws the board and a side panel onto dst.
func (b Board) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	ox := (dst.Width() - MinScreenW) / 2
	oy := (dst.Height() - MinScreenH) / 2

	b.renderWalls(dst, ox, oy)
	if b.Field != nil {
		b.renderField(dst, ox, oy)
	}
	if b.Current != nil {
		if b.Ghost && !b.GameOver {
			for _, c := range b.Current.GhostBlocks() {
				drawCell(dst, ox, oy, c, '░', core.ColorGray)
			}
		}
		color := b.Current.Shape().Color()
		for _, c := range b.Current.Blocks() {
			drawCell(dst, ox, oy, c, '█', color)
		}
	}
	b.renderPanel(dst, ox+boardW+panelGap, oy)

	switch {
	case b.GameOver:
		renderOverlay(dst, ox, oy, "GAME OVER", "r: restart")
	case b.Paused:
		renderOverlay(dst, ox, oy, "PAUSED", "p: resume")
	}
}

func (b Board) renderWalls(dst *core.Screen, ox, oy int) {
	for row := 0; row < Height; row++ {
		dst.SetColored(ox, oy+row, '│', core.ColorGray)
		dst.SetColored(ox+boardW-1, oy+row, '│', core.ColorGray)
	}
	dst.SetColored(ox, oy+Height, '└', core.ColorGray)
	dst.SetColored(ox+boardW-1, oy+Height, '┘', core.ColorGray)
	for x := 1; x < boardW-1; x++ {
		dst.SetColored(ox+x, oy+Height, '─', core.ColorGray)
	}
}

func (b Board) renderField(dst *core.Screen, ox, oy int) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			c := core.C(x, y)
			switch filled, _ := b.Field.GetCoord(c); {
			case filled:
				drawCell(dst, ox, oy, c, '▓', core.ColorWhite)
			case y < VisibleHeight:
				sx, sy := cellOrigin(ox, oy, c)
				dst.SetColored(sx+1, sy, '.', core.ColorGray)
			}
		}
	}
}

func (b Board) renderPanel(dst *core.Screen, px, py int) {
	title := b.Title
	if title == "" {
		title = "TETRIS"
	}
	dst.DrawText(px, py, title)
	dst.DrawText(px, py+2, fmt.Sprintf("Lines: %d", b.Lines))
	dst.DrawText(px, py+3, fmt.Sprintf("Level: %d", b.Level))

	if b.Current != nil {
		cur := b.Current.Shape()
		dst.DrawText(px, py+5, "Piece: ")
		dst.DrawTextColored(px+7, py+5, cur.String(), cur.Color())
	}

	for i, h := range b.Hints {
		if len(h) > panelW {
			h = h[:panelW]
		}
		dst.DrawTextColored(px, py+7+i, h, core.ColorGray)
	}
}

// cellOrigin maps a field coordinate to the left column and row of its
// on-screen cell. Field row 0 is the bottom.
func cellOrigin(ox, oy int, c core.Coord) (int, int) {
	return ox + 1 + c.X*cellW, oy + (Height - 1 - c.Y)
}

func drawCell(dst *core.Screen, ox, oy int, c core.Coord, r rune, color core.Color) {
	if !inBounds(c.X, c.Y) {
		return
	}
	sx, sy := cellOrigin(ox, oy, c)
	for i := 0; i < cellW; i++ {
		dst.SetColored(sx+i, sy, r, color)
	}
}

// renderOverlay draws a framed two-line message over the middle of the
// field.
func renderOverlay(dst *core.Screen, ox, oy int, title, hint string) {
	boxW := max(len(title), len(hint)) + 4
	box := core.NewRect(ox+(boardW-boxW)/2, oy+Height/2-2, boxW, 4)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range []string{title, hint} {
		dst.DrawTextColored(box.X+(boxW-len(line))/2, box.Y+1+i, line, core.ColorWhite)
	}
}

func renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
	y := dst.Height() / 2
	dst.DrawText((dst.Width()-len(msg))/2, y, msg)
	dst.DrawText((dst.Width()-len(hint))/2, y+1, hint)
}
