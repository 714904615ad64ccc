package mako

import "testing"

const (
	background = uint32(0xFF000010)
	green      = uint32(0xFF00FF00)
	faint      = uint32(0x80FF0000)
)

// argb returns a colour as the word stored in memory.
func argb(c uint32) int32 {
	return int32(c)
}

// setTile fills a tile with one colour.
func setTile(m *Mako, id int32, c uint32) {
	m.mem.FillRange(tileBase+id*TileSize*TileSize, TileSize*TileSize, argb(c))
}

// frame runs a single frame of a machine which only syncs.
func frame(t *testing.T, setup func(m *Mako)) *Mako {
	t.Helper()

	m := newMachine(t, []int32{OpSync, OpJump, progBase})
	m.mem.Set(CL, argb(background))
	setTile(m, 1, green)
	setTile(m, 2, faint)
	setup(m)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	return m
}

func TestGrid(t *testing.T) {
	m := frame(t, func(m *Mako) {
		m.mem.Set(gridBase, 1)
		m.mem.Set(gridBase+1, 2)
		m.mem.Set(gridBase+2, -1)
		m.mem.Set(gridBase+3, 1|GridZMask)
	})

	type TestCase struct {
		x, y int
		c    uint32
	}
	tests := []TestCase{
		{0, 0, green},
		{7, 7, green},
		{0, 8, background},
		{8, 0, background},     // translucent tile
		{16, 0, background},    // negative cell
		{24, 0, green},         // z-bit set
		{31, 7, green},         // z-bit set
		{32, 0, background},    // tile zero is empty
		{319, 239, background}, // tile zero is empty
	}
	for _, test := range tests {
		if got := m.Pixel(test.x, test.y); got != test.c {
			t.Fatalf("pixel %d,%d is %08X, expected %08X", test.x, test.y, got, test.c)
		}
	}
}

func TestScroll(t *testing.T) {
	m := frame(t, func(m *Mako) {
		m.mem.Set(gridBase, 1)
		m.mem.Set(SX, 1)
	})
	if m.Pixel(6, 0) != green || m.Pixel(7, 0) != background {
		t.Fatalf("horizontal scroll failed")
	}

	m = frame(t, func(m *Mako) {
		m.mem.Set(gridBase+GridWidth, 1)
		m.mem.Set(SY, 8)
	})
	if m.Pixel(0, 0) != green || m.Pixel(0, 8) != background {
		t.Fatalf("vertical scroll failed")
	}

	// Scrolling off the bottom of the grid leaves the background
	m = frame(t, func(m *Mako) {
		m.mem.Set(gridBase+GridWidth*(GridHeight-1), 1)
		m.mem.Set(SY, (GridHeight-1)*TileSize)
	})
	if m.Pixel(0, 0) != green || m.Pixel(0, 8) != background || m.Pixel(0, 239) != background {
		t.Fatalf("bottom of grid drawn wrongly")
	}

	// The grid is also clipped above the first row
	m = frame(t, func(m *Mako) {
		m.mem.Set(gridBase, 1)
		m.mem.Set(SY, -4)
	})
	if m.Pixel(0, 3) != background || m.Pixel(0, 4) != green || m.Pixel(0, 11) != green {
		t.Fatalf("top of grid drawn wrongly")
	}
}

func TestGridSkip(t *testing.T) {
	m := frame(t, func(m *Mako) {
		m.mem.Set(GS, 3)
		m.mem.Set(gridBase+GridWidth+3, 1)
	})
	if m.Pixel(0, 8) != green || m.Pixel(0, 0) != background {
		t.Fatalf("grid skip ignored")
	}
}

func TestRasterVector(t *testing.T) {
	code := prog(
		// main
		[]int32{OpSync, OpJump, progBase},
		make([]int32, 7),

		// our raster routine, at progBase+10, moves SX each line
		[]int32{OpConst, Height - 1, OpStr},
		[]int32{OpSync},
		[]int32{OpConst, SX, OpLoad, OpConst, 1, OpAdd, OpConst, SX, OpStor},
		[]int32{OpNext, progBase + 13},
		[]int32{OpRts, OpDrop, OpReturn},
	)

	m := newMachine(t, code)
	m.mem.Set(RV, progBase+10)
	m.mem.Set(CL, argb(background))
	setTile(m, 1, green)
	m.mem.Set(gridBase, 1)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}

	for y := 0; y < TileSize; y++ {
		if m.Pixel(7-y, y) != green || m.Pixel(8-y, y) != background {
			t.Fatalf("row %d not scrolled by %d", y, y)
		}
	}
	if m.mem.Get(SX) != Height-1 {
		t.Fatalf("raster routine ran %d lines", m.mem.Get(SX))
	}

	// The second frame returns from the routine, to main, which
	// syncs again and so re-enters it.
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if m.mem.Get(RP) != returnBase+2 || m.mem.Get(returnBase) != progBase+1 || m.mem.Get(returnBase+1) != 0 {
		t.Fatalf("unexpected return stack %v", m.mem.GetRange(returnBase, 2))
	}
	if m.Frames() != 2 {
		t.Fatalf("wrong frame count")
	}
}

func TestRasterVectorHalt(t *testing.T) {
	code := prog(
		[]int32{OpSync, OpJump, progBase},
		halt,
	)

	m := newMachine(t, code)
	m.mem.Set(RV, progBase+3)
	m.mem.Set(CL, argb(background))

	// The frame is completed even though the routine halted.
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if m.Frames() != 1 || m.Pixel(0, Height-1) != background {
		t.Fatalf("frame not completed")
	}

	if err := m.Run(); err != ErrHalt {
		t.Fatalf("expected halt, got %v", err)
	}
}
