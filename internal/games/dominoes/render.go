package dominoes

import (
	"fmt"
	"math"

	"github.com/vovakirdan/domino-path/internal/core"
	"github.com/vovakirdan/domino-path/internal/dominoes"
	"github.com/vovakirdan/domino-path/internal/physics"
)

// Glyphs used on the board.
const (
	glyphFloor    = '·'
	glyphCurve    = '•'
	glyphWall     = '█'
	glyphGoal     = '░'
	glyphMarker   = '▮'
	glyphStanding = '▮'
	glyphFalling  = '▞'
	glyphFallen   = '▬'
	glyphPusher   = '●'
	glyphAnchor   = 'S'
	glyphPoint    = '◆'
	glyphCursor   = '+'
)

// Render draws the HUD, the floor and everything on it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderHUD(dst)
		msg := "Not started"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, "Cannot start", msg)
		return
	}

	g.renderHUD(dst)
	g.renderFloor(dst)

	if goal, ok := g.session.Goal(); ok {
		g.fillFootprint(dst, goal.Footprint(), glyphGoal, core.ColorCyan)
	}
	for _, w := range g.session.Walls() {
		g.fillFootprint(dst, w.Footprint(), glyphWall, core.ColorGray)
	}
	for p := range g.session.CurveSamples() {
		g.plot(dst, p, glyphCurve, core.ColorDarkGray)
	}
	for _, m := range g.session.Markers() {
		c := core.ColorGreen
		if !m.Valid {
			c = core.ColorRed
		}
		g.plot(dst, m.Position, glyphMarker, c)
	}
	for _, d := range g.session.Dominoes() {
		g.renderDomino(dst, d)
	}

	g.plot(dst, g.session.PusherPosition(), glyphPusher, core.ColorMagenta)
	pts := g.session.Points()
	for _, p := range pts[1:] {
		g.plot(dst, p, glyphPoint, core.ColorBrightYellow)
	}
	g.plot(dst, pts[0], glyphAnchor, core.ColorBrightCyan)
	if g.session.State() == dominoes.StateDraw {
		g.plot(dst, g.cursor, glyphCursor, core.ColorWhite)
	}

	g.renderFooter(dst)

	if g.session.Won() {
		lvl := g.session.CurrentLevel()
		g.renderOverlay(dst, fmt.Sprintf("Level %d complete!", g.session.Level()+1), lvl.Name+" | N: next level")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := " " + g.Title()
	if g.session != nil {
		s := g.session
		lvl := s.CurrentLevel()
		hud = fmt.Sprintf(" %s | Level %d: %s | %s", g.Title(), s.Level()+1, lvl.Name, stateLabel(s.State()))
		switch s.State() {
		case dominoes.StateDraw:
			hud += fmt.Sprintf(" | Markers: %d", len(s.Markers()))
			if n := s.InvalidCount(); n > 0 {
				hud += fmt.Sprintf(" (%d blocked)", n)
			}
			hud += fmt.Sprintf(" | Length: %.1f", s.Curve().Length(32))
		case dominoes.StatePhysics:
			snap := s.Snapshot()
			hud += fmt.Sprintf(" | Fallen: %d/%d", snap.Fallen, snap.Dominoes)
		}
	}
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func stateLabel(s dominoes.State) string {
	if s == dominoes.StatePhysics {
		return "RUNNING"
	}
	return "DRAWING"
}

func (g *Game) renderFooter(dst *core.Screen) {
	var help string
	switch {
	case g.session.Won():
		help = " N next level  X redraw  Q quit"
	case g.session.State() == dominoes.StatePhysics:
		help = " X back to drawing  Z undo  C clear  Q quit"
	case !g.session.Valid():
		help = " Some dominoes are blocked: Z undo  C clear  Q quit"
	default:
		help = " Arrows/click move  Enter place  Z undo  C clear  Space start  ? help"
	}
	dst.DrawTextColored(0, dst.Height()-1, help, core.ColorGray)
}

func (g *Game) renderFloor(dst *core.Screen) {
	r := g.view.rect
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, glyphFloor, core.ColorDarkGray)
		}
	}
}

func (g *Game) renderDomino(dst *core.Screen, d physics.Body) {
	switch d.Phase {
	case physics.Fallen:
		g.fillFootprint(dst, d.Footprint(), glyphFallen, core.ColorOrange)
	case physics.Falling:
		g.fillFootprint(dst, d.Footprint(), glyphFalling, core.ColorYellow)
	default:
		g.plot(dst, d.Position, glyphStanding, core.ColorBrightYellow)
	}
}

// plot draws r at the cell containing p if that cell is on the floor.
func (g *Game) plot(dst *core.Screen, p core.Vec3, r rune, c core.Color) {
	x, y := g.view.toScreen(p)
	if g.view.rect.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// fillFootprint paints every floor cell whose center lies inside fp. Shapes
// smaller than a cell still mark the cell under their center.
func (g *Game) fillFootprint(dst *core.Screen, fp physics.Footprint, r rune, c core.Color) {
	minP, maxP := fp.Center, fp.Center
	if fp.Circle {
		d := core.V3(fp.Radius, 0, fp.Radius)
		minP, maxP = fp.Center.Sub(d), fp.Center.Add(d)
	} else {
		for _, corner := range fp.Corners() {
			minP.X, minP.Z = math.Min(minP.X, corner.X), math.Min(minP.Z, corner.Z)
			maxP.X, maxP.Z = math.Max(maxP.X, corner.X), math.Max(maxP.Z, corner.Z)
		}
	}

	x0, y0 := g.view.toScreen(minP)
	x1, y1 := g.view.toScreen(maxP)
	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p, ok := g.view.toFloor(x, y)
			if ok && fp.Contains(p) {
				dst.SetColored(x, y, r, c)
				drawn = true
			}
		}
	}
	if !drawn {
		g.plot(dst, fp.Center, r, c)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightGreen)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
