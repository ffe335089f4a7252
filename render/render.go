// Package render draws a maze.Grid and a solved maze.Path as images or text.
//
// All drawing state lives in a Context owned by the caller. The renderer
// only reads the grid and path it is given; it never calls into the solver.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"strings"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/mazedfs/maze"
)

// ErrNoFrames is returned by WriteGIF when there is nothing to encode.
var ErrNoFrames = errors.New("render: no frames to encode")

// Default palette, matching the classic turtle rendering.
var (
	ColorWall  = color.RGBA{0, 0, 0, 255}
	ColorStart = color.RGBA{220, 30, 30, 255}
	ColorGoal  = color.RGBA{30, 170, 60, 255}
	ColorOpen  = color.RGBA{255, 255, 255, 255}
	ColorPath  = color.RGBA{0, 200, 220, 255}
	ColorArrow = color.RGBA{20, 40, 120, 255}
)

// Context carries every drawing parameter. Build one with NewContext.
type Context struct {
	// CellPixels is the side of one square cell, in pixels.
	CellPixels int
	// Arrows overlays a direction arrow on each cell painted by Path.
	Arrows bool
	// FrameDelay is the GIF delay between frames, in 100ths of a second.
	FrameDelay int

	Wall, Start, Goal, Open, Arrow color.Color
	// PathFill paints the cells along a route.
	PathFill color.Color
}

// Option configures a Context.
type Option func(*Context)

// WithCellPixels sets the cell size. Values below 4 are raised to 4.
func WithCellPixels(n int) Option {
	return func(c *Context) {
		if n < 4 {
			n = 4
		}
		c.CellPixels = n
	}
}

// WithArrows toggles direction arrows on path cells.
func WithArrows(on bool) Option {
	return func(c *Context) {
		c.Arrows = on
	}
}

// WithFrameDelay sets the GIF frame delay in 100ths of a second.
func WithFrameDelay(d int) Option {
	return func(c *Context) {
		if d >= 0 {
			c.FrameDelay = d
		}
	}
}

// WithPathColor overrides the path cell color.
func WithPathColor(col color.Color) Option {
	return func(c *Context) {
		if col != nil {
			c.PathFill = col
		}
	}
}

// NewContext returns a Context with 20-pixel cells, arrows on, a 5/100 s
// frame delay, and the default palette, then applies opts.
func NewContext(opts ...Option) *Context {
	c := &Context{
		CellPixels: 20,
		Arrows:     true,
		FrameDelay: 5,
		Wall:       ColorWall,
		Start:      ColorStart,
		Goal:       ColorGoal,
		Open:       ColorOpen,
		PathFill:   ColorPath,
		Arrow:      ColorArrow,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bounds returns the image rectangle covering g.
func (c *Context) Bounds(g *maze.Grid) image.Rectangle {
	return image.Rect(0, 0, g.Cols()*c.CellPixels, g.Rows()*c.CellPixels)
}

// cellRect returns the pixel rectangle of cell p.
func (c *Context) cellRect(p maze.Position) image.Rectangle {
	x, y := p.Col*c.CellPixels, p.Row*c.CellPixels
	return image.Rect(x, y, x+c.CellPixels, y+c.CellPixels)
}

// kindColor maps a cell kind to its fill color.
func (c *Context) kindColor(k maze.Kind) color.Color {
	switch k {
	case maze.KindWall:
		return c.Wall
	case maze.KindStart:
		return c.Start
	case maze.KindGoal:
		return c.Goal
	}
	return c.Open
}

func (c *Context) fill(img draw.Image, p maze.Position, col color.Color) {
	draw.Draw(img, c.cellRect(p), image.NewUniform(col), image.Point{}, draw.Src)
}

// Maze draws every cell of g: walls black, start red, goals green, open white.
func (c *Context) Maze(g *maze.Grid) *image.RGBA {
	img := image.NewRGBA(c.Bounds(g))
	for r := 0; r < g.Rows(); r++ {
		for col := 0; col < g.Cols(); col++ {
			p := maze.Position{Row: r, Col: col}
			c.fill(img, p, c.kindColor(g.Kind(p)))
		}
	}
	return img
}

// pathCells returns the cells painted for path: every position reached by
// a move except the last one, which is the goal and keeps its own color.
func pathCells(start maze.Position, path maze.Path) []maze.Position {
	if len(path) < 2 {
		return nil
	}
	trace := path.Trace(start)
	return trace[1:len(path)]
}

// Path draws g and paints the cells along path. With Arrows set, each
// painted cell also carries an arrow for the move that leaves it.
func (c *Context) Path(g *maze.Grid, start maze.Position, path maze.Path) (*image.RGBA, error) {
	img := c.Maze(g)
	cells := pathCells(start, path)
	for _, p := range cells {
		if g.InBounds(p) {
			c.fill(img, p, c.PathFill)
		}
	}
	if !c.Arrows || len(cells) == 0 {
		return img, nil
	}

	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(img, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: base image: %w", err)
	}
	inset := c.CellPixels / 5
	size := c.CellPixels - 2*inset
	for i, p := range cells {
		if !g.InBounds(p) {
			continue
		}
		// cells[i] is left by path[i+1].
		arrow := image_utils.ResizeImage(c.arrowFor(path[i+1]), size, size)
		at := c.cellRect(p).Min.Add(image.Pt(inset, inset))
		if err := composite.AddImage(arrow, at); err != nil {
			return nil, fmt.Errorf("render: arrow at %v: %w", p, err)
		}
	}
	return image_utils.ToRGBA(composite), nil
}

func (c *Context) arrowFor(m maze.Move) image.Image {
	switch m {
	case maze.Up:
		return image_utils.UpArrow(c.Arrow)
	case maze.Down:
		return image_utils.DownArrow(c.Arrow)
	case maze.Left:
		return image_utils.LeftArrow(c.Arrow)
	}
	return image_utils.RightArrow(c.Arrow)
}

// Frames returns an animated trace: frame 0 is the bare maze and each later
// frame paints one more path cell.
func (c *Context) Frames(g *maze.Grid, start maze.Position, path maze.Path) []*image.RGBA {
	base := c.Maze(g)
	frames := []*image.RGBA{base}
	prev := base
	for _, p := range pathCells(start, path) {
		next := image.NewRGBA(prev.Bounds())
		copy(next.Pix, prev.Pix)
		if g.InBounds(p) {
			c.fill(next, p, c.PathFill)
		}
		frames = append(frames, next)
		prev = next
	}
	return frames
}

// palette lists every color Frames can produce.
func (c *Context) palette() color.Palette {
	return color.Palette{c.Open, c.Wall, c.Start, c.Goal, c.PathFill}
}

// WriteGIF encodes the animated trace of path to w.
func (c *Context) WriteGIF(w io.Writer, g *maze.Grid, start maze.Position, path maze.Path) error {
	frames := c.Frames(g, start, path)
	if len(frames) == 0 {
		return ErrNoFrames
	}
	anim := &gif.GIF{}
	pal := c.palette()
	for _, f := range frames {
		pf := image.NewPaletted(f.Bounds(), pal)
		draw.Draw(pf, pf.Bounds(), f, f.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, pf)
		anim.Delay = append(anim.Delay, c.FrameDelay)
	}
	// Hold the finished trace a little longer.
	anim.Delay[len(anim.Delay)-1] = c.FrameDelay * 20
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// PathMark is the rune Text writes on path cells.
const PathMark = '*'

// Text returns the rows of g, one per line, with the cells along path
// replaced by PathMark. Start and goal cells keep their symbols.
func Text(g *maze.Grid, start maze.Position, path maze.Path) string {
	rows := make([][]rune, g.Rows())
	for r := range rows {
		rows[r] = []rune(g.Row(r))
	}
	for _, p := range pathCells(start, path) {
		if g.InBounds(p) && g.Kind(p) == maze.KindOpen {
			rows[p.Row][p.Col] = PathMark
		}
	}
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n") + "\n"
}
