package postfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	calls []string
}

type fakePass struct {
	name     string
	out      uint32
	rec      *recorder
	inputs   []uint32
	sizes    [][2]int32
	destroys int
}

func (p *fakePass) Name() string { return p.name }

func (p *fakePass) Render(input uint32) uint32 {
	p.inputs = append(p.inputs, input)
	p.rec.calls = append(p.rec.calls, p.name)
	return p.out
}

func (p *fakePass) Resize(w, h int32) { p.sizes = append(p.sizes, [2]int32{w, h}) }

func (p *fakePass) Destroy() {
	p.destroys++
	p.rec.calls = append(p.rec.calls, "destroy "+p.name)
}

func newChain() (*Composer, *recorder, []*fakePass) {
	rec := &recorder{}
	passes := []*fakePass{
		{name: "render", out: 11, rec: rec},
		{name: "bloom", out: 12, rec: rec},
		{name: "afterimage", out: 13, rec: rec},
		{name: "output", out: 0, rec: rec},
	}
	c := NewComposer(800, 600)
	for _, p := range passes {
		c.Add(p)
	}
	return c, rec, passes
}

func TestComposerRenderOrder(t *testing.T) {
	c, rec, passes := newChain()

	assert.Equal(t, uint32(0), c.Render())
	assert.Equal(t, []string{"render", "bloom", "afterimage", "output"}, rec.calls)
	assert.Equal(t, []string{"render", "bloom", "afterimage", "output"}, c.Names())

	// Each pass receives the previous pass's texture.
	assert.Equal(t, []uint32{0}, passes[0].inputs)
	assert.Equal(t, []uint32{11}, passes[1].inputs)
	assert.Equal(t, []uint32{12}, passes[2].inputs)
	assert.Equal(t, []uint32{13}, passes[3].inputs)
}

func TestComposerAddAppliesSize(t *testing.T) {
	_, _, passes := newChain()
	for _, p := range passes {
		assert.Equal(t, [][2]int32{{800, 600}}, p.sizes)
	}
}

func TestComposerResizePropagatesAndClamps(t *testing.T) {
	c, _, passes := newChain()

	c.Resize(1024, 768)
	c.Resize(0, -3)

	for _, p := range passes {
		assert.Equal(t, [2]int32{1024, 768}, p.sizes[1], p.name)
		assert.Equal(t, [2]int32{1, 1}, p.sizes[2], p.name)
	}
	w, h := c.Size()
	assert.Equal(t, int32(1), w)
	assert.Equal(t, int32(1), h)
}

func TestComposerDisposeOnce(t *testing.T) {
	c, rec, passes := newChain()

	assert.True(t, c.Dispose())
	assert.False(t, c.Dispose())

	for _, p := range passes {
		assert.Equal(t, 1, p.destroys, p.name)
	}
	// Destroyed in reverse creation order.
	assert.Equal(t, []string{"destroy output", "destroy afterimage", "destroy bloom", "destroy render"}, rec.calls)

	// A disposed composer neither renders nor resizes.
	rec.calls = nil
	c.Render()
	c.Resize(10, 10)
	assert.Empty(t, rec.calls)
	assert.Len(t, passes[0].sizes, 1)
}

func TestClampDamp(t *testing.T) {
	assert.Equal(t, float32(0), ClampDamp(-0.5))
	assert.Equal(t, float32(0.9), ClampDamp(0.9))
	assert.Equal(t, float32(MaxDamp), ClampDamp(1))
}
