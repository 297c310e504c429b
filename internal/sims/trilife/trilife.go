package trilife

import (
	"trilife/internal/core"
)

// neighborOffsets lists the Moore neighbourhood in row-major order
// starting at the top-left, center excluded. Combine is not commutative,
// so the fold in Step depends on this exact order: permuting the table
// changes the automaton whenever three or more neighbours are alive.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is a toroidal cellular automaton whose cells carry dihedral group
// elements. It owns two equally sized buffers; reads go through the
// current one while Step writes the next generation into the other, then
// swaps their roles.
type Grid struct {
	cfg Config
	cur *core.ByteGrid
	nxt *core.ByteGrid
	gen int
}

// New returns a zero-initialized automaton with the provided dimensions.
func New(w, h int) *Grid {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a zero-initialized automaton from a full config.
func NewWithConfig(cfg Config) *Grid {
	return &Grid{
		cfg: cfg,
		cur: core.NewByteGrid(cfg.Width, cfg.Height),
		nxt: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "trilife" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.cur.W, H: g.cur.H} }

// Cells exposes the current generation's values.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// Generation returns the number of completed steps since the last reset.
func (g *Grid) Generation() int { return g.gen }

// Get returns the state at (x, y). Coordinates wrap toroidally, so any
// integer pair is valid.
func (g *Grid) Get(x, y int) uint8 {
	return g.cur.At(x, y)
}

// Set stores v reduced into [0,5] at the wrapped (x, y). Negative values
// reduce the same way, so Set(-1) stores 5.
func (g *Grid) Set(x, y, v int) {
	g.cur.SetAt(x, y, uint8(floorMod(v, NumStates)))
}

// Clear kills every cell in the current generation. The inactive buffer
// is left alone since the next Step overwrites it wholesale.
func (g *Grid) Clear() {
	g.cur.Clear()
	g.gen = 0
}

// Randomize fills the grid from a seeded source: each cell independently
// becomes a uniform live state in [1,5] with the given probability, else
// dead. Equal (density, seed) pairs reproduce the same grid.
func (g *Grid) Randomize(density float64, seed int64) {
	rng := core.NewRNG(seed)
	cells := g.cur.Cells()
	for i := range cells {
		if rng.Float64() < density {
			cells[i] = rng.Uint8In(1, NumStates-1)
		} else {
			cells[i] = StateDead
		}
	}
	g.gen = 0
}

// Reset randomizes the board with the configured density.
func (g *Grid) Reset(seed int64) {
	g.Randomize(g.cfg.Density, seed)
}

// Step advances the automaton by one generation. Every next-state value
// is a pure function of the pre-step buffer: neighbour influence is
// folded left-to-right over neighborOffsets into an accumulator starting
// at the identity, and a live cell with 2..4 live neighbours becomes
// Combine(cur, acc), a dead cell with exactly 3 live neighbours is born
// as birthState, and everything else dies.
func (g *Grid) Step() {
	w, h := g.cur.W, g.cur.H
	cur := g.cur.Cells()
	next := g.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := StateDead
			alive := 0
			for _, off := range neighborOffsets {
				nv := g.cur.At(x+off[0], y+off[1])
				acc = Combine(acc, nv)
				if nv != StateDead {
					alive++
				}
			}
			idx := g.cur.Index(x, y)
			c := cur[idx]
			switch {
			case c != StateDead && alive >= 2 && alive <= 4:
				next[idx] = Combine(c, acc)
			case c == StateDead && alive == 3:
				next[idx] = birthState
			default:
				next[idx] = StateDead
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// ParameterControls exposes the fill density as a UI-adjustable control.
func (g *Grid) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:   "density",
		Label: "fill density",
		Type:  core.ParamTypeFloat,
		Step:  0.05,
		Min:   0,
		Max:   1,
	}}
}

// FloatParameter reads the current value of a float parameter.
func (g *Grid) FloatParameter(key string) (float64, bool) {
	if key == "density" {
		return g.cfg.Density, true
	}
	return 0, false
}

// SetFloatParameter clamps and stores a float parameter. The new density
// takes effect on the next Reset.
func (g *Grid) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	g.cfg.Density = value
	return true
}

func init() {
	core.Register("trilife", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
