package viewer

import (
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/mock"

	"glb-viewer/internal/config"
	"glb-viewer/internal/gltfasset"
	"glb-viewer/internal/logger"
	"glb-viewer/internal/scene"
)

const oneMeshJSON = `{
  "asset": {"version": "2.0"},
  "nodes": [{"mesh": 0}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [{"componentType": 5126, "count": 3, "type": "VEC3", "min": [-1, 0, -1], "max": [1, 2, 1]}]
}`

// packGLB wraps a JSON document in a binary glTF container with no BIN chunk.
func packGLB(doc string) []byte {
	j := []byte(doc)
	for len(j)%4 != 0 {
		j = append(j, ' ')
	}
	out := make([]byte, 0, 20+len(j))
	out = append(out, "glTF"...)
	out = binary.LittleEndian.AppendUint32(out, 2)
	out = binary.LittleEndian.AppendUint32(out, uint32(20+len(j)))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(j)))
	out = binary.LittleEndian.AppendUint32(out, 0x4E4F534A)
	return append(out, j...)
}

var (
	duckBytes    = packGLB(oneMeshJSON)
	corruptBytes = []byte("this is not a glb file")
	noMeshBytes  = packGLB(`{"asset": {"version": "2.0"}}`)
)

// fakeDrawable records Unload calls.
type fakeDrawable struct {
	unloaded int
}

func (d *fakeDrawable) Draw(*scene.Node) {}
func (d *fakeDrawable) Unload()          { d.unloaded++ }

// stubBuilder behaves like the raylib builder: an asset without meshes is an error.
type stubBuilder struct {
	built []*scene.Node
}

func (b *stubBuilder) Build(a *gltfasset.Asset) (*scene.Node, error) {
	if a.Meshes() == 0 {
		return nil, errors.New("model has no meshes")
	}
	n := scene.NewNode(scene.KindModel, "")
	n.Color = config.MustColor("#777777")
	n.Drawable = &fakeDrawable{}
	b.built = append(b.built, n)
	return n, nil
}

type mockBuilder struct {
	mock.Mock
}

func (m *mockBuilder) Build(a *gltfasset.Asset) (*scene.Node, error) {
	args := m.Called(a)
	n, _ := args.Get(0).(*scene.Node)
	return n, args.Error(1)
}

type mockWatcher struct {
	mock.Mock
}

func (m *mockWatcher) Watch(path string) error {
	return m.Called(path).Error(0)
}

type testApp struct {
	*App
	log     *logger.Logger
	builder *stubBuilder
}

func newTestApp(t *testing.T, mutate ...func(*Deps)) *testApp {
	t.Helper()
	log := logger.New(logger.WithConsole(nil))
	b := &stubBuilder{}
	d := Deps{
		Builder:     b,
		Placeholder: &fakeDrawable{},
		Log:         log.Logger,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	}
	for _, m := range mutate {
		m(&d)
	}
	return &testApp{App: New(config.Default(), d), log: log, builder: b}
}

// load runs one load to completion and applies it.
func (a *testApp) load(t *testing.T, name string, buf []byte) {
	t.Helper()
	a.OpenBytes(t.Context(), name, buf)
	a.Wait()
	if n := a.Pump(); n != 1 {
		t.Fatalf("expected one load result, got %d", n)
	}
}
