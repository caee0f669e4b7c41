package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"glb-viewer/internal/gltfasset"
	"glb-viewer/internal/logger"
	"glb-viewer/internal/scene"
)

func newTestFlow(t *testing.T, b NodeBuilder) (*Flow, *scene.Graph, *scene.Node, *logger.Logger) {
	t.Helper()
	log := logger.New(logger.WithConsole(nil))
	g := scene.NewGraph()
	cube := scene.NewNode(scene.KindPlaceholder, "placeholder")
	g.Add(cube)
	return NewFlow(g, cube, b, log.Logger, [3]float32{2, 2, 2}), g, cube, log
}

func decoded(t *testing.T, name string) *gltfasset.Asset {
	t.Helper()
	a, err := gltfasset.Decode(name, duckBytes)
	require.NoError(t, err)
	return a
}

func TestFlow_CompleteReplacesPlaceholder(t *testing.T) {
	b := &mockBuilder{}
	built := scene.NewNode(scene.KindPlaceholder, "")
	b.On("Build", mock.Anything).Return(built, nil).Once()
	f, g, cube, log := newTestFlow(t, b)

	asset := decoded(t, "duck.glb")
	require.NoError(t, f.Complete(LoadResult{Source: Source{Kind: SourceBytes, Ref: "duck.glb"}, Asset: asset}))

	b.AssertExpectations(t)
	assert.Equal(t, StateModelLoaded, f.State())
	assert.Same(t, built, f.Model())
	assert.Equal(t, scene.KindModel, built.Kind)
	assert.Equal(t, "duck.glb", built.Name)
	assert.Equal(t, [3]float32{2, 2, 2}, built.Transform.Scale)
	assert.False(t, g.Contains(cube))
	assert.True(t, g.Contains(built))

	lines := log.Lines()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "INFO model loaded")
	assert.Contains(t, lines[len(lines)-1], "meshes=1")
}

func TestFlow_CompleteKeepsBuilderName(t *testing.T) {
	b := &mockBuilder{}
	b.On("Build", mock.Anything).Return(scene.NewNode(scene.KindModel, "Duck"), nil)
	f, _, _, _ := newTestFlow(t, b)

	require.NoError(t, f.Complete(LoadResult{Asset: decoded(t, "duck.glb")}))
	assert.Equal(t, "Duck", f.Model().Name)
}

func TestFlow_BuildErrorChangesNothing(t *testing.T) {
	b := &mockBuilder{}
	boom := errors.New("no GL context")
	b.On("Build", mock.Anything).Return(nil, boom)
	f, g, cube, log := newTestFlow(t, b)
	before := g.Nodes()

	err := f.Complete(LoadResult{Source: Source{Kind: SourceFile, Ref: "/tmp/duck.glb"}, Asset: decoded(t, "duck.glb")})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StatePlaceholderOnly, f.State())
	assert.Nil(t, f.Model())
	assert.Equal(t, before, g.Nodes())
	assert.True(t, g.Contains(cube))
	assert.Contains(t, log.Lines()[0], "source=file:/tmp/duck.glb")
	assert.Contains(t, log.Lines()[0], "state=placeholder-only")
}

func TestFlow_LoadErrorSkipsBuilder(t *testing.T) {
	b := &mockBuilder{}
	f, _, _, _ := newTestFlow(t, b)
	boom := errors.New("decode failed")

	assert.ErrorIs(t, f.Complete(LoadResult{Err: boom}), boom)
	b.AssertNotCalled(t, "Build", mock.Anything)
	assert.Equal(t, StatePlaceholderOnly, f.State())
}

func TestFlow_EmptyResult(t *testing.T) {
	b := &mockBuilder{}
	f, _, _, _ := newTestFlow(t, b)

	assert.ErrorIs(t, f.Complete(LoadResult{Source: Source{Kind: SourceBytes, Ref: "x"}}), errNoAsset)
	b.AssertNotCalled(t, "Build", mock.Anything)
}

func TestFlow_ReplacingUnloadsPrevious(t *testing.T) {
	first := scene.NewNode(scene.KindModel, "")
	firstDraw := &fakeDrawable{}
	first.Drawable = firstDraw
	second := scene.NewNode(scene.KindModel, "")

	b := &mockBuilder{}
	b.On("Build", mock.Anything).Return(first, nil).Once()
	b.On("Build", mock.Anything).Return(second, nil).Once()
	f, g, _, _ := newTestFlow(t, b)

	require.NoError(t, f.Complete(LoadResult{Asset: decoded(t, "a.glb")}))
	require.NoError(t, f.Complete(LoadResult{Asset: decoded(t, "b.glb")}))

	assert.Equal(t, 1, firstDraw.unloaded)
	assert.False(t, g.Contains(first))
	assert.True(t, g.Contains(second))
	assert.Equal(t, 1, g.Count(scene.KindModel))
	assert.Equal(t, 1, g.Len())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "placeholder-only", StatePlaceholderOnly.String())
	assert.Equal(t, "model-loaded", StateModelLoaded.String())
}
