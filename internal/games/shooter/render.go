package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// Minimum terminal size for a playable view.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Glyphs
const (
	StarChar        = '.'
	BulletBoxChar   = '|'
	BulletRoundChar = '*'
	HitChar         = 'x'
)

// Player sprites by variant, drawn centered on the player.
var playerSprites = map[Variant]string{
	VariantFighter: "/A\\",
	VariantTargets: "=#=",
	VariantSpace:   "<^>",
}

// Hostile fill glyphs by depth tier (targets) or as the default.
var depthGlyphs = []rune{'@', '#', '%', '+', ':'}

// projection maps world coordinates onto the play area below the HUD.
type projection struct {
	plane  string
	field  config.Bounds
	area   core.Rect // Play area in screen cells
	sx, sy float64
}

func newProjection(f Frame, dst *core.Screen) projection {
	p := projection{
		plane: f.Plane,
		field: f.Field,
		area:  core.NewRect(0, 1, dst.Width(), dst.Height()-1),
	}
	depth := f.Field.Height()
	if f.Plane == config.PlaneXZ {
		depth = f.Field.Depth()
	}
	if f.Field.Width() > 0 {
		p.sx = float64(p.area.W-1) / f.Field.Width()
	}
	if depth > 0 {
		p.sy = float64(p.area.H-1) / depth
	}
	return p
}

// cell returns the screen cell for a world position.
func (p projection) cell(v core.Vec3) (int, int) {
	x := (v.X - p.field.MinX) * p.sx
	var y float64
	if p.plane == config.PlaneXZ {
		y = (p.field.MaxZ - v.Z) * p.sy
	} else {
		y = (v.Y - p.field.MinY) * p.sy
	}
	return int(math.Round(x)), p.area.Y + int(math.Round(y))
}

// span returns the cell extent of a body, at least one cell each way.
func (p projection) span(b Body) (int, int) {
	w, h := b.W, b.H
	if b.Shape == ShapeSphere {
		w, h = 2*b.R, 2*b.R
	}
	return max(1, int(math.Round(w*p.sx))), max(1, int(math.Round(h*p.sy)))
}

// visible reports whether a position lies on the projected part of the field.
func (p projection) visible(v core.Vec3) bool {
	if v.X < p.field.MinX || v.X > p.field.MaxX {
		return false
	}
	if p.plane == config.PlaneXZ {
		return v.Z >= p.field.MinZ && v.Z <= p.field.MaxZ
	}
	return v.Y >= p.field.MinY && v.Y <= p.field.MaxY
}

// put draws a rune inside the play area only.
func (p projection) put(dst *core.Screen, x, y int, r rune, c core.Color) {
	if p.area.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// fill draws a block of runes centered on a world position.
func (p projection) fill(dst *core.Screen, b Body, r rune, c core.Color) {
	cx, cy := p.cell(b.Pos)
	w, h := p.span(b)
	block := core.NewRect(cx-w/2, cy-h/2, w, h)
	if !p.area.Intersects(block) {
		return
	}
	for y := block.Y; y < block.Bottom(); y++ {
		for x := block.X; x < block.Right(); x++ {
			p.put(dst, x, y, r, c)
		}
	}
}

// RenderFrame draws a frame into the screen buffer.
func RenderFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	p := newProjection(f, dst)
	renderStars(dst, p, f)
	renderHostiles(dst, p, f)
	renderBullets(dst, p, f)
	renderParticles(dst, p, f)
	if f.Phase != PhaseIntro {
		renderPlayer(dst, p, f)
	}
	renderHUD(dst, f)
	renderOverlay(dst, f)
}

func renderStars(dst *core.Screen, p projection, f Frame) {
	for _, s := range f.Stars {
		if !p.visible(s.Pos) {
			continue
		}
		x, y := p.cell(s.Pos)
		p.put(dst, x, y, StarChar, s.Color)
	}
}

func renderHostiles(dst *core.Screen, p projection, f Frame) {
	for _, h := range f.Hostiles {
		if h.Hit {
			x, y := p.cell(h.Pos)
			ring := 1 + h.HitTimer/5
			for _, d := range [][2]int{{-ring, 0}, {ring, 0}, {0, -1}, {0, 1}} {
				p.put(dst, x+d[0], y+d[1], HitChar, core.ColorBrightYellow)
			}
			continue
		}
		glyph := depthGlyphs[0]
		if h.Depth > 0 {
			glyph = depthGlyphs[min(len(depthGlyphs), h.Depth)-1]
		}
		if f.Variant == VariantFighter {
			glyph = 'V'
		}
		p.fill(dst, h.Body, glyph, h.Color)
	}
}

func renderBullets(dst *core.Screen, p projection, f Frame) {
	for _, b := range f.Bullets {
		x, y := p.cell(b.Pos)
		r := BulletRoundChar
		if b.Shape == ShapeBox {
			r = BulletBoxChar
		}
		p.put(dst, x, y, r, b.Color)
	}
}

func renderParticles(dst *core.Screen, p projection, f Frame) {
	for _, pt := range f.Particles {
		x, y := p.cell(pt.Pos)
		r := '.'
		switch a := pt.Alpha(); {
		case a > 0.66:
			r = '*'
		case a > 0.33:
			r = '+'
		}
		p.put(dst, x, y, r, pt.Color)
	}
}

func renderPlayer(dst *core.Screen, p projection, f Frame) {
	sprite, ok := playerSprites[f.Variant]
	if !ok {
		sprite = "^"
	}
	color := f.Player.Color
	if f.Player.Blink {
		color = core.ColorGray
	}
	x, y := p.cell(f.Player.Pos)
	x -= len(sprite) / 2
	for i, r := range []rune(sprite) {
		p.put(dst, x+i, y, r, color)
	}
}

// renderHUD draws score, lives, health and level on the top row.
func renderHUD(dst *core.Screen, f Frame) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", f.Score))

	status := fmt.Sprintf("Lives: %d", f.Lives)
	if f.MaxHealth > 0 {
		status += fmt.Sprintf("  HP: %d/%d", f.Health, f.MaxHealth)
	}
	dst.DrawTextColored((dst.Width()-len(status))/2, 0, status, healthColor(f))

	label := "Level"
	if f.Waves {
		label = "Wave"
	}
	levelText := fmt.Sprintf("%s: %d", label, f.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// healthColor shades the lives/HP readout as the player weakens.
func healthColor(f Frame) core.Color {
	switch {
	case f.MaxHealth > 0 && f.Health*4 <= f.MaxHealth, f.Lives <= 1 && f.MaxHealth == 0:
		return core.ColorBrightRed
	case f.MaxHealth > 0 && f.Health*2 <= f.MaxHealth:
		return core.ColorYellow
	}
	return core.ColorDefault
}

func renderOverlay(dst *core.Screen, f Frame) {
	switch {
	case f.Phase == PhaseIntro:
		drawCenteredBox(dst, f.Title, "Press ENTER to start  |  Q to quit")
	case f.Phase == PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Final Score: %d  |  Press R to restart", f.Score))
	case f.Phase == PhaseGameWon:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", f.Score))
	case f.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case f.Banner > 0:
		msg := fmt.Sprintf("WAVE %d COMPLETE!", f.Level-1)
		dst.DrawTextColored((dst.Width()-len(msg))/2, dst.Height()/2, msg, core.ColorBrightYellow)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(w, max(len(title), len(subtitle))+4)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+max(0, (boxW-len(subtitle))/2), boxY+3, subtitle)
}
