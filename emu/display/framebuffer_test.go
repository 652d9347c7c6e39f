package display

import (
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func litPixels(f Frame) int {
	n := 0
	for _, p := range f {
		if p {
			n++
		}
	}
	return n
}

func TestDrawSpriteCollision(t *testing.T) {
	fb := New()

	collision := fb.DrawSprite(10, 5, []uint8{0xFF})
	assert.False(t, collision)
	for x := 10; x < 18; x++ {
		assert.True(t, fb.Pixel(x, 5))
	}
	assert.Equal(t, 8, litPixels(fb.Snapshot()))

	collision = fb.DrawSprite(10, 5, []uint8{0xFF})
	assert.True(t, collision)
	assert.Equal(t, 0, litPixels(fb.Snapshot()))
}

func TestDrawSpritePartialOverlap(t *testing.T) {
	fb := New()

	assert.False(t, fb.DrawSprite(0, 0, []uint8{0xF0}))
	assert.True(t, fb.DrawSprite(0, 0, []uint8{0x18}))

	frame := fb.Snapshot()
	assert.True(t, frame.Pixel(0, 0))
	assert.True(t, frame.Pixel(2, 0))
	assert.False(t, frame.Pixel(3, 0))
	assert.True(t, frame.Pixel(4, 0))
}

func TestDrawSpriteOriginWraps(t *testing.T) {
	fb := New()

	fb.DrawSprite(Width+2, Height+3, []uint8{0x80})
	assert.True(t, fb.Pixel(2, 3))
	assert.Equal(t, 1, litPixels(fb.Snapshot()))
}

func TestDrawSpriteClipsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		rows []uint8
		want int
	}{
		{"right edge", Width - 4, 0, []uint8{0xFF}, 4},
		{"bottom edge", 0, Height - 2, []uint8{0x80, 0x80, 0x80, 0x80}, 2},
		{"bottom right corner", Width - 1, Height - 1, []uint8{0xFF, 0xFF}, 1},
		{"fully inside", 8, 8, []uint8{0xFF, 0xFF}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := New()
			fb.DrawSprite(tt.x, tt.y, tt.rows)

			assert.Equal(t, tt.want, litPixels(fb.Snapshot()))
		})
	}
}

func TestDrawSpriteDoesNotWrapMidSprite(t *testing.T) {
	fb := New()

	fb.DrawSprite(Width-2, Height-1, []uint8{0xFF, 0xFF})
	assert.True(t, fb.Pixel(Width-1, Height-1))
	assert.False(t, fb.Pixel(0, Height-1))
	assert.False(t, fb.Pixel(0, 0))
	assert.False(t, fb.Pixel(Width-1, 0))
}

func TestClearAndPoll(t *testing.T) {
	fb := New()

	_, changed := fb.Poll()
	assert.False(t, changed)

	fb.DrawSprite(0, 0, []uint8{0xAA})
	frame, changed := fb.Poll()
	assert.True(t, changed)
	assert.Equal(t, 4, litPixels(frame))

	_, changed = fb.Poll()
	assert.False(t, changed)

	fb.Clear()
	frame, changed = fb.Poll()
	assert.True(t, changed)
	assert.Equal(t, 0, litPixels(frame))

	fb.DrawSprite(0, 0, []uint8{0xAA})
	fb.Reset()
	frame, changed = fb.Poll()
	assert.False(t, changed)
	assert.Equal(t, 0, litPixels(frame))
}

func TestConcurrentSnapshot(t *testing.T) {
	fb := New()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			fb.DrawSprite(i, i, []uint8{0xFF, 0x81, 0xFF})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = fb.Snapshot()
		}
	}()
	wg.Wait()
}

func TestFramePixelWraps(t *testing.T) {
	var frame Frame
	frame[0] = true
	frame[Width*Height-1] = true

	assert.True(t, frame.Pixel(0, 0))
	assert.True(t, frame.Pixel(Width, Height))
	assert.True(t, frame.Pixel(-1, -1))
	assert.True(t, frame.Pixel(Width-1, 2*Height-1))
	assert.False(t, frame.Pixel(1, 0))
}
