package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/tiergen/internal/assets"
	"github.com/rook-computer/tiergen/internal/config"
	"github.com/rook-computer/tiergen/internal/render"
	"github.com/rook-computer/tiergen/internal/state"
)

// fakeRenderer records requests and writes a placeholder file for each,
// failing for any title listed in fail.
type fakeRenderer struct {
	requests []render.Request
	fail     map[string]error
}

func (f *fakeRenderer) Render(req render.Request) error {
	f.requests = append(f.requests, req)
	if err, ok := f.fail[req.Title]; ok {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(req.OutputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(req.OutputPath, []byte("png"), 0o644)
}

func testConfig(root string) *config.Config {
	return &config.Config{
		Root:         root,
		InputFolder:  filepath.Join(root, "input"),
		OutputFolder: filepath.Join(root, "output"),
		AssetFolder:  filepath.Join(root, "asset"),
		Sinners: []config.Sinner{
			{Name: "Yi Sang", Path: "yisang", Identities: []config.Identity{
				{Name: "LCB Sinner", Rarity: 1, Image: "lcb.png"},
				{Name: "W Corp.", Rarity: 3, Image: "seven.png"},
			}},
			{Name: "Faust", Path: "faust", Identities: []config.Identity{
				{Name: "LCB Sinner", Rarity: 1, Image: "lcb.png"},
			}},
		},
	}
}

func TestRunRendersEveryIdentity(t *testing.T) {
	root := t.TempDir()
	fake := &fakeRenderer{}
	var out bytes.Buffer
	a := New(testConfig(root), fake)
	a.Out = &out

	n, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.Len(t, fake.requests, 3)

	req := fake.requests[1]
	assert.Equal(t, filepath.Join(root, "input", "yisang", "id", "seven.png"), req.InputPath)
	assert.Equal(t, filepath.Join(root, "output", "id", "01_yisang_02_seven.png"), req.OutputPath)
	assert.Equal(t, filepath.Join(root, "asset"), req.AssetDir)
	assert.Equal(t, 3, req.Rarity)
	assert.Equal(t, "W Corp.", req.Title)
	assert.Equal(t, "Yi Sang", req.Name)

	assert.Equal(t, filepath.Join(root, "output", "id", "02_faust_01_lcb.png"), fake.requests[2].OutputPath)
	assert.Contains(t, out.String(), "Creating (01) Yi Sang id #02: W Corp.\n")
	assert.Equal(t, state.DONE, a.Store.Snapshot().Phase)
}

func TestRunSkipsExistingOutputs(t *testing.T) {
	root := t.TempDir()
	fake := &fakeRenderer{}
	a := New(testConfig(root), fake)

	n, err := a.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, n)

	second := &fakeRenderer{}
	var out bytes.Buffer
	again := New(testConfig(root), second)
	again.Out = &out
	n, err = again.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, second.requests)
	assert.Equal(t, 3, again.Store.Snapshot().Skipped)

	assert.Equal(t, "Skipping (01) Yi Sang id #01: LCB Sinner (exists)\n"+
		"Skipping (01) Yi Sang id #02: W Corp. (exists)\n"+
		"Skipping (02) Faust id #01: LCB Sinner (exists)\n", out.String())

	var summary bytes.Buffer
	WriteSummary(&summary, again.Store.Snapshot())
	assert.Equal(t, "Generated 0 image(s)!\nSkipped 3 existing image(s).\n", summary.String())
}

func TestRunHaltsOnFirstError(t *testing.T) {
	root := t.TempDir()
	boom := errors.New("boom")
	fake := &fakeRenderer{fail: map[string]error{"LCB Sinner": boom}}
	a := New(testConfig(root), fake)

	n, err := a.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	assert.Len(t, fake.requests, 1)
	assert.Contains(t, err.Error(), `sinner "Yi Sang"`)
	assert.Contains(t, err.Error(), `identity "LCB Sinner"`)
	assert.Equal(t, state.ERROR, a.Store.Snapshot().Phase)
}

func TestRunKeepGoingCollectsErrors(t *testing.T) {
	root := t.TempDir()
	boom := errors.New("boom")
	fake := &fakeRenderer{fail: map[string]error{"LCB Sinner": boom}}
	a := New(testConfig(root), fake)
	a.KeepGoing = true

	n, err := a.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, n)
	assert.Len(t, fake.requests, 3)

	snap := a.Store.Snapshot()
	require.Len(t, snap.Failures, 2)
	assert.Equal(t, "Faust", snap.Failures[1].Sinner)

	var summary bytes.Buffer
	WriteSummary(&summary, snap)
	assert.Equal(t, "Batch error: generated 1, skipped 0, failed 2\n"+
		"  Yi Sang / LCB Sinner: boom\n"+
		"  Faust / LCB Sinner: boom\n", summary.String())
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fake := &fakeRenderer{}
	a := New(testConfig(t.TempDir()), fake)

	n, err := a.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Empty(t, fake.requests)
	assert.Equal(t, state.CANCELLED, a.Store.Snapshot().Phase)
}

func TestRunRequiresCollaborators(t *testing.T) {
	_, err := (&App{}).Run(context.Background())
	require.Error(t, err)
	_, err = (&App{Config: testConfig(t.TempDir())}).Run(context.Background())
	require.Error(t, err)
}

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// End to end through the config loader and the real compositor.
func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(root, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[[sinner]]
name = "Yi Sang"
path = "yisang"

  [[sinner.id]]
  name = "W Corp."
  rarity = 3
  image = "seven.png"

  [[sinner.id]]
  name = "Broken"
  rarity = 5
  image = "broken.png"

  [[sinner.id]]
  name = "Missing"
  rarity = 1
  image = "missing.png"

[[sinner]]
name = "Faust"
path = "faust"

  [[sinner.id]]
  name = "LCB Sinner"
  rarity = 1
  image = "lcb.png"
`), 0o644))

	writePNG(t, filepath.Join(root, "input", "yisang", "id", "seven.png"), color.NRGBA{B: 0xFF, A: 0xFF})
	writePNG(t, filepath.Join(root, "input", "yisang", "id", "broken.png"), color.NRGBA{B: 0xFF, A: 0xFF})
	writePNG(t, filepath.Join(root, "input", "faust", "id", "lcb.png"), color.NRGBA{R: 0xFF, A: 0xFF})
	for _, name := range []string{"gradient_small.png", "gradient_large.png", "0.png", "00.png", "000.png"} {
		writePNG(t, filepath.Join(root, "asset", name), color.NRGBA{})
	}

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	compositor, err := render.NewCompositor(assets.FontTTF, render.DefaultLayout)
	require.NoError(t, err)

	a := New(cfg, compositor)
	a.KeepGoing = true
	n, err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrBadRarityLevel)
	assert.ErrorIs(t, err, render.ErrIdentityNotFound)
	assert.True(t, strings.Contains(err.Error(), filepath.Join(root, "input", "yisang", "id", "missing.png")))
	assert.Equal(t, 2, n)

	outDir := filepath.Join(root, "output", "id")
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"01_yisang_01_seven.png", "02_faust_01_lcb.png"}, names)

	f, err := os.Open(filepath.Join(outDir, "01_yisang_01_seven.png"))
	require.NoError(t, err)
	defer f.Close()
	cfgImg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 600, cfgImg.Width)
	assert.Equal(t, 600, cfgImg.Height)

	// A second run redoes nothing for the images that exist.
	again := New(cfg, compositor)
	again.KeepGoing = true
	n, _ = again.Run(context.Background())
	assert.Zero(t, n)
	assert.Equal(t, 2, again.Store.Snapshot().Skipped)
}
