package overlay

import "sync"

// drawListPool provides reuse of DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList(fontTexture uint32) *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	dl.FontTexture = fontTexture
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates vertex batches for a frame. It implements Canvas,
// so widgets can render straight into it; a backend such as
// backend/opengl then uploads the buffers.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	// FontTexture is the glyph atlas bound for text commands.
	FontTexture uint32

	metrics      MonoMetrics
	currentClip  [4]float32 // Current clip rectangle
	textureID    uint32     // Current texture for batching
	cmdOffset    uint32     // Vertex offset for current command
	idxCmdOffset uint32     // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	dl.SetTexture(0)
	dl.addQuad(x, y, x+w, y+h, 0, 0, 0, 0, color)
}

// AddText draws text from the glyph atlas with cells of cw x ch pixels.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, cw, ch float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	dl.SetTexture(dl.FontTexture)

	i := 0
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}
		idx := int(r - 32)
		col := float32(idx % GlyphCols)
		row := float32(idx / GlyphCols)

		u0 := col / GlyphCols
		v0 := row / GlyphRows
		u1 := (col + 1) / GlyphCols
		v1 := (row + 1) / GlyphRows

		px := x + float32(i)*cw
		dl.addQuad(px, y, px+cw, y+ch, u0, v0, u1, v1, color)
		i++
	}
}

// FillRect implements Canvas.
func (dl *DrawList) FillRect(r Rect, color uint32) {
	dl.AddRect(r.X, r.Y, r.W, r.H, color)
}

// MeasureText implements Canvas.
func (dl *DrawList) MeasureText(s string, size int, bold bool) Vec2 {
	return dl.metrics.MeasureText(s, size, bold)
}

// DrawText implements Canvas. Bold text is drawn twice, one pixel apart.
func (dl *DrawList) DrawText(s string, size int, bold bool, color uint32, at Vec2, align Align) Rect {
	r := Rect{}.Resized(dl.MeasureText(s, size, bold)).Aligned(align, at)
	cw, ch := monoCell(size)
	dl.AddText(r.X, r.Y, s, color, cw, ch)
	if bold {
		dl.AddText(r.X+1, r.Y, s, color, cw, ch)
	}
	return r
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
