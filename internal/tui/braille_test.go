package tui

import "testing"

func TestBraille_LineAndBounds(t *testing.T) {
	b := newBrailleBuf(3, 1)
	b.drawLineMicro(0, 0, 3, 0)
	b.setPixel(-1, 0)
	b.setPixel(6, 0)
	got := b.toLines()
	if len(got) != 1 {
		t.Fatalf("want 1 line, got %d", len(got))
	}
	if want := "⠉⠉ "; got[0] != want {
		t.Fatalf("want %q, got %q", want, got[0])
	}
}

func TestBraille_VerticalCell(t *testing.T) {
	b := newBrailleBuf(1, 1)
	b.drawLineMicro(1, 0, 1, 3)
	if got, want := b.toLines()[0], string(rune(0x2800+0x08+0x10+0x20+0x80)); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
