package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"
)

func frame(w, h int, states ...wildfire.State) wildfire.Frame {
	return wildfire.Frame{Size: core.Size{W: w, H: h}, States: states}
}

func TestGridFormat(t *testing.T) {
	f := frame(3, 2,
		wildfire.Clear, wildfire.Living, wildfire.Ignited,
		wildfire.Burning, wildfire.Burned, wildfire.Living)
	assert.Equal(t, "| T#|\n|%XT|\n", Grid(f))
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewText(&buf)
	f := frame(2, 1, wildfire.Living, wildfire.Burned)

	require.NoError(t, sink.Show(f))
	assert.Equal(t, "|TX|\n", buf.String(), "buffers are not terminals, so no clear sequence")

	buf.Reset()
	sink = NewText(&buf, WithClear(true))
	require.NoError(t, sink.Show(f))
	require.NoError(t, sink.Show(f))
	assert.Equal(t, 2, strings.Count(buf.String(), ClearScreen))
	assert.True(t, strings.HasPrefix(buf.String(), ClearScreen+"|TX|\n"))
}

func TestTextSinkColor(t *testing.T) {
	var buf bytes.Buffer
	sink := NewText(&buf, WithColor())
	require.NoError(t, sink.Show(frame(1, 1, wildfire.Burning)))
	assert.Contains(t, buf.String(), "%")
	assert.True(t, strings.HasPrefix(buf.String(), "|"))
	assert.True(t, strings.HasSuffix(buf.String(), "|\n"))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, wildfire.Result{BurnRate: 0.75}))
	assert.Equal(t, "\n% forest burned: 0.75\n", buf.String())
}

func TestFillPaletteRGBA(t *testing.T) {
	cells := []uint8{uint8(wildfire.Living), uint8(wildfire.Burning), 200}
	buf := make([]byte, 4*len(cells))
	FillPaletteRGBA(buf, cells, wildfire.Palette())

	assert.Equal(t, wildfire.Living.Color(), color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: buf[3]})
	assert.Equal(t, wildfire.Burning.Color(), color.RGBA{R: buf[4], G: buf[5], B: buf[6], A: buf[7]})
	assert.Equal(t, wildfire.Burned.Color(), color.RGBA{R: buf[8], G: buf[9], B: buf[10], A: buf[11]})

	FillPaletteRGBA(buf, cells, nil)
	assert.Equal(t, make([]byte, len(buf)), buf)
}
