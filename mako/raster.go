package mako

// drawPixel sets a pixel of the frame buffer, providing it is
// visible and the colour is fully opaque.  There is no blending.
func (m *Mako) drawPixel(x, y int, c int32) {
	if uint32(c)&0xFF000000 != 0xFF000000 {
		return
	}
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	m.pixels[x+y*Width] = uint32(c)
}

// drawTile draws one line of a tile, on the given scanline.
func (m *Mako) drawTile(scanline, xOffset int, tile, line int32) {
	i := m.reg(GT) + tile*TileSize*TileSize + line*TileSize
	for x := 0; x < TileSize; x++ {
		m.drawPixel(xOffset+x, scanline, m.mem.Get(i+int32(x)))
	}
}

// drawGrid draws the cells of the grid which fall on the given
// scanline, either those above the sprites (hiz) or those below.
func (m *Mako) drawGrid(hiz bool, y int) {
	gridY := int32(y) + m.reg(SY)
	if gridY < 0 || gridY >= GridHeight*TileSize {
		return
	}

	tileY := gridY % TileSize
	ptr := m.reg(GP) + (gridY/TileSize)*(GridWidth+m.reg(GS))
	sx := m.reg(SX)

	for x := int32(0); x < GridWidth; x++ {
		tile := m.mem.Get(ptr + x)
		if tile < 0 {
			continue
		}
		if hiz == (tile&GridZMask != 0) {
			m.drawTile(y, int(x*TileSize-sx), tile&^GridZMask, tileY)
		}
	}
}

// drawSprites would draw the sprites on the given scanline.
//
// The sprite layer is disabled; the table at SP belongs to the guest
// but nothing is drawn from it.
func (m *Mako) drawSprites(y int) {
}

// drawRow renders a single scanline from the current state of memory.
func (m *Mako) drawRow(y int) {
	cl := uint32(m.reg(CL))
	row := m.pixels[y*Width : (y+1)*Width]
	for x := range row {
		row[x] = cl
	}

	m.drawGrid(false, y)
	m.drawSprites(y)
	m.drawGrid(true, y)
}

// sync produces a frame, and flushes the audio written during it.
//
// Without a raster vector the frame is drawn from memory as it
// stands.  With one, the routine it names is called and each SYNC it
// reaches releases one scanline, so the guest may change the
// registers between lines.
func (m *Mako) sync() {
	rv := m.reg(RV)

	if rv == 0 {
		for y := 0; y < Height; y++ {
			m.drawRow(y)
		}
	} else {
		m.rpush(m.reg(PC))
		m.mem.Set(PC, rv)
		for y := 0; y < Height; y++ {
			if m.step() {
				m.mem.Set(PC, m.reg(PC)+1)
			}
			m.drawRow(y)
		}
	}

	m.frames++
	m.flushAudio()
}
