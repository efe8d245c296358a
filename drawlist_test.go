package overlay

import "testing"

func TestDrawListBatchesByTexture(t *testing.T) {
	dl := AcquireDrawList(7)
	defer ReleaseDrawList(dl)

	dl.FillRect(Rect{X: 0, Y: 0, W: 10, H: 10}, 0xff0000ff)
	dl.FillRect(Rect{X: 10, Y: 0, W: 10, H: 10}, 0xff00ff00)
	r := dl.DrawText("ab", 13, false, 0xffffffff, Vec2{X: 5, Y: 5}, AlignTopLeft)
	dl.FillRect(Rect{W: 1, H: 1}, 0x00ffffff) // transparent, skipped
	dl.Finalize()

	if r != (Rect{X: 5, Y: 5, W: 14, H: 13}) {
		t.Errorf("unexpected text rect %v", r)
	}
	if len(dl.VtxBuffer) != 4*4 {
		t.Errorf("expected 16 vertices, got %d", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 4*6 {
		t.Errorf("expected 24 indices, got %d", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected a solid and a text command, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 || dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("unexpected textures %d, %d", dl.CmdBuffer[0].TextureID, dl.CmdBuffer[1].TextureID)
	}
	if dl.CmdBuffer[0].ElemCount != 12 || dl.CmdBuffer[1].ElemCount != 12 {
		t.Errorf("unexpected element counts %d, %d", dl.CmdBuffer[0].ElemCount, dl.CmdBuffer[1].ElemCount)
	}
}

func TestDrawListBoldDrawsTwice(t *testing.T) {
	dl := AcquireDrawList(1)
	defer ReleaseDrawList(dl)

	r := dl.DrawText("x", 13, true, 0xffffffff, Vec2{X: 20, Y: 20}, AlignCenter)
	if len(dl.VtxBuffer) != 8 {
		t.Errorf("expected two glyph quads, got %d vertices", len(dl.VtxBuffer))
	}
	if c := r.Point(AlignCenter); c != (Vec2{X: 20, Y: 20}) {
		t.Errorf("expected centered text, got %v", c)
	}
}

func TestDrawListClearOnAcquire(t *testing.T) {
	dl := AcquireDrawList(1)
	dl.FillRect(Rect{W: 5, H: 5}, 0xffffffff)
	ReleaseDrawList(dl)

	again := AcquireDrawList(2)
	defer ReleaseDrawList(again)
	if len(again.VtxBuffer) != 0 || len(again.CmdBuffer) != 0 || again.FontTexture != 2 {
		t.Error("expected a cleared draw list")
	}
}

func TestGUIRendersIntoDrawList(t *testing.T) {
	r := newRig(t)
	g := r.ui.NewGroup(0)
	NewLabel(g, Vec2{}, 0xffffffff, "hello", WithBold(false))
	r.ui.Activate(g)

	dl := AcquireDrawList(3)
	defer ReleaseDrawList(dl)
	r.ui.Render(dl)
	if len(dl.VtxBuffer) != 5*4 {
		t.Errorf("expected one quad per glyph, got %d vertices", len(dl.VtxBuffer))
	}
}
