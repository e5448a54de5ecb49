package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasDotsBecomeBraille(t *testing.T) {
	cv := newCanvas(2, 1)
	cv.setDot(0, 0) // top-left micro pixel, bit 0x01
	out := cv.render(canvasStyles, wireStyle)
	assert.Contains(t, out, string(rune(0x2801)))
}

func TestCanvasGlyphWinsOverDots(t *testing.T) {
	cv := newCanvas(2, 1)
	cv.setDot(0, 0)
	cv.setCell(0, 0, '●', styNodeNear)
	out := cv.render(canvasStyles, wireStyle)
	assert.Contains(t, out, "●")
	assert.NotContains(t, out, string(rune(0x2801)))
}

func TestCanvasLaterGlyphPaintsOver(t *testing.T) {
	cv := newCanvas(1, 1)
	cv.setCell(0, 0, '·', styNodeFar)
	cv.setCell(0, 0, '●', styNodeNear)
	out := cv.render(canvasStyles, wireStyle)
	assert.Contains(t, out, "●")
	assert.NotContains(t, out, "·")
}

func TestCanvasTextClipsAtEdge(t *testing.T) {
	cv := newCanvas(4, 1)
	cv.text(2, 0, "long label", styLabel)
	out := cv.render(canvasStyles, wireStyle)
	assert.Contains(t, out, "lo")
	assert.NotContains(t, out, "lon")
}

func TestCanvasOutOfBoundsIgnored(t *testing.T) {
	cv := newCanvas(2, 2)
	cv.setDot(-1, -1)
	cv.setDot(100, 100)
	cv.setCell(-1, 0, 'x', styLabel)
	cv.setCell(0, 5, 'x', styLabel)
	cv.line(-10, -10, 100, 100) // clips, must not panic
	out := cv.render(canvasStyles, wireStyle)
	require.Len(t, strings.Split(out, "\n"), 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly", truncate("exactly", 7))
	assert.Equal(t, "long t…", truncate("long text here", 7))
	assert.Equal(t, "", truncate("anything", 1))
}
