package hero

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/lattice-hero/internal/animation"
	"github.com/Faultbox/lattice-hero/internal/engine/surface"
	"github.com/Faultbox/lattice-hero/internal/lattice"
)

type fakeRenderer struct {
	width, height int
	lattice       *lattice.Lattice
	applied       []animation.State
	renders       int
	resizes       [][2]int
	disposed      int
}

func (f *fakeRenderer) Apply(s animation.State) { f.applied = append(f.applied, s) }
func (f *fakeRenderer) Render()                 { f.renders++ }
func (f *fakeRenderer) Dispose()                { f.disposed++ }

func (f *fakeRenderer) Resize(w, h int) {
	f.resizes = append(f.resizes, [2]int{w, h})
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func mount(t *testing.T, host *surface.Host) (*Handle, *fakeRenderer, *testClock) {
	t.Helper()

	clock := &testClock{now: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)}
	fr := &fakeRenderer{}
	factory := func(cfg Config, l *lattice.Lattice, w, h int) (Renderer, error) {
		fr.width, fr.height, fr.lattice = w, h, l
		return fr, nil
	}

	hd, err := Mount(host, WithClock(clock.Now), WithRendererFactory(factory))
	require.NoError(t, err)
	return hd, fr, clock
}

func TestMountBuildsLatticeAtSurfaceSize(t *testing.T) {
	host := surface.NewHost(800, 600)
	_, fr, _ := mount(t, host)

	assert.Equal(t, 800, fr.width)
	assert.Equal(t, 600, fr.height)
	require.NotNil(t, fr.lattice)
	assert.Len(t, fr.lattice.Vertices(), lattice.VertexCount)
	assert.Equal(t, 1, host.Observers())
	assert.Equal(t, 1, host.FrameCallbacks())
}

func TestEndToEndWarp(t *testing.T) {
	host := surface.NewHost(800, 600)
	hd, fr, clock := mount(t, host)

	host.RunFrame(clock.Advance(16 * time.Millisecond))
	assert.InDelta(t, 0.004, hd.State().Rotation, 1e-9)
	assert.Equal(t, 1, fr.renders)

	done := hd.WarpOut()
	host.RunFrame(clock.Advance(500 * time.Millisecond))
	select {
	case <-done:
		t.Fatal("warp resolved early")
	default:
	}

	host.RunFrame(clock.Advance(500 * time.Millisecond))
	select {
	case <-done:
	default:
		t.Fatal("warp did not resolve after its duration")
	}

	p := hd.State().Params
	assert.Equal(t, 110.0, p.FOV)
	assert.Equal(t, 1.9, p.Exposure)
	assert.Equal(t, 0.3, p.Scale)
	assert.Equal(t, 0.2, p.Opacity)
	assert.Equal(t, 1.0, hd.State().Overlay)

	last := fr.applied[len(fr.applied)-1]
	assert.Equal(t, p, last.Params, "renderer saw the final look")
}

func TestWarpDurationIndependentOfFrameRate(t *testing.T) {
	host := surface.NewHost(800, 600)
	hd, _, clock := mount(t, host)

	done := hd.WarpOut()
	// One long frame covers the whole warp.
	host.RunFrame(clock.Advance(2 * time.Second))
	select {
	case <-done:
	default:
		t.Fatal("warp did not resolve")
	}
}

func TestResizeDuringWarp(t *testing.T) {
	host := surface.NewHost(800, 600)
	hd, fr, clock := mount(t, host)

	done := hd.WarpOut()
	host.RunFrame(clock.Advance(300 * time.Millisecond))
	host.DispatchResize(1024, 768)
	host.RunFrame(clock.Advance(300 * time.Millisecond))
	host.DispatchResize(0, 0)
	host.RunFrame(clock.Advance(400 * time.Millisecond))

	assert.Equal(t, [][2]int{{1024, 768}, {0, 0}}, fr.resizes)
	assert.Equal(t, 2, fr.renders, "zero-area frame is not drawn")
	select {
	case <-done:
	default:
		t.Fatal("resize affected warp timing")
	}
}

func TestCleanup(t *testing.T) {
	host := surface.NewHost(800, 600)
	hd, fr, clock := mount(t, host)

	host.RunFrame(clock.Advance(16 * time.Millisecond))
	hd.Cleanup()

	assert.Equal(t, 1, fr.disposed)
	assert.Equal(t, 0, host.Observers())
	assert.Equal(t, 0, host.FrameCallbacks())
	assert.True(t, hd.Closed())

	host.DispatchResize(320, 240)
	host.RunFrame(clock.Advance(16 * time.Millisecond))
	assert.Empty(t, fr.resizes)
	assert.Equal(t, 1, fr.renders)

	hd.Cleanup()
	assert.Equal(t, 1, fr.disposed)
}

func TestCleanupMidWarpLeavesChannelOpen(t *testing.T) {
	host := surface.NewHost(800, 600)
	hd, _, clock := mount(t, host)

	done := hd.WarpOut()
	host.RunFrame(clock.Advance(200 * time.Millisecond))
	hd.Cleanup()
	host.RunFrame(clock.Advance(2 * time.Second))

	select {
	case <-done:
		t.Fatal("cancelled warp resolved")
	default:
	}
}

func TestRemountStartsFresh(t *testing.T) {
	host := surface.NewHost(800, 600)
	first, _, clock := mount(t, host)
	first.WarpOut()
	host.RunFrame(clock.Advance(time.Second))
	first.Cleanup()

	second, _, _ := mount(t, host)
	assert.Equal(t, animation.Idle, second.State().Phase)
	assert.Equal(t, DefaultConfig().Animation.Start, second.State().Params)
	assert.Equal(t, 1, host.FrameCallbacks())
}

func TestMountNilSurface(t *testing.T) {
	hd, err := Mount(nil)
	assert.Nil(t, hd)
	assert.ErrorIs(t, err, ErrNoSurface)
}

func TestMountFactoryError(t *testing.T) {
	host := surface.NewHost(800, 600)
	glErr := errors.New("no GL context")

	_, err := Mount(host, WithRendererFactory(func(Config, *lattice.Lattice, int, int) (Renderer, error) {
		return nil, glErr
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, glErr)
	assert.Equal(t, 0, host.Observers())
	assert.Equal(t, 0, host.FrameCallbacks())
}

func TestMountInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radius = 0

	_, err := Mount(surface.NewHost(1, 1), WithConfig(cfg))
	assert.ErrorIs(t, err, lattice.ErrInvalidRadius)
}

func TestDefaultConfigMatchesConstants(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, RotSpeed, cfg.Animation.RotSpeed)
	assert.Equal(t, WarpDuration, cfg.Animation.WarpDuration)
	assert.Equal(t, float32(StageOffsetY), cfg.Scene.StageOffsetY)
	assert.Equal(t, float32(LookAtOffsetY), cfg.Scene.LookAtOffsetY)
	assert.Equal(t, Radius, cfg.Radius)
	assert.Equal(t, float32(NodeRadius), cfg.Style.NodeRadius)
	assert.Equal(t, float32(CameraLift), cfg.Scene.CameraLift)
	assert.Equal(t, float32(45), cfg.Scene.FOV)
	assert.InDelta(t, 0.65, float64(cfg.Effects.BloomStrength), 1e-6)
	assert.InDelta(t, 0.96, float64(cfg.Effects.Damp), 1e-6)
	assert.InDelta(t, 1.15, float64(cfg.Effects.Exposure), 1e-6)
}

func TestMountAndWarpShareFrameTimestamp(t *testing.T) {
	host := surface.NewHost(800, 600)
	frame := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	fr := &fakeRenderer{}
	factory := func(Config, *lattice.Lattice, int, int) (Renderer, error) { return fr, nil }

	// Input handling mounts and warps before the frame callbacks run.
	host.BeginFrame(frame)
	hd, err := Mount(host, WithClock(host.Now), WithRendererFactory(factory))
	require.NoError(t, err)
	hd.WarpOut()
	host.RunFrame(frame)

	first := fr.applied[0]
	assert.Equal(t, 0.0, first.Rotation, "no negative first delta")
	assert.Equal(t, DefaultConfig().Animation.Start, first.Params, "warp starts at t=0")
	assert.Equal(t, 0.0, first.Overlay)

	host.BeginFrame(frame.Add(time.Second))
	host.RunFrame(frame.Add(time.Second))
	assert.Equal(t, animation.Held, hd.State().Phase)
}

func TestFirstFrameAfterMountAdvancesIdle(t *testing.T) {
	host := surface.NewHost(800, 600)
	frame := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	factory := func(Config, *lattice.Lattice, int, int) (Renderer, error) { return &fakeRenderer{}, nil }

	host.BeginFrame(frame)
	hd, err := Mount(host, WithClock(host.Now), WithRendererFactory(factory))
	require.NoError(t, err)

	host.RunFrame(frame)
	assert.Equal(t, 0.0, hd.State().Rotation)
	host.RunFrame(frame.Add(16 * time.Millisecond))
	assert.InDelta(t, 0.004, hd.State().Rotation, 1e-12)
}
