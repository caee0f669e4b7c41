package viewer

import (
	"errors"
	"fmt"
	"log/slog"

	"glb-viewer/internal/gltfasset"
	"glb-viewer/internal/scene"
)

// errNoAsset guards against a LoadResult carrying neither an asset nor an error.
var errNoAsset = errors.New("viewer: load produced no asset")

// NodeBuilder turns a decoded asset into a scene node, allocating whatever GPU
// resources the node needs. It runs on the render thread.
type NodeBuilder interface {
	Build(asset *gltfasset.Asset) (*scene.Node, error)
}

// Flow swaps the placeholder for user models. It holds the only reference to
// the current model and guarantees at most one model node is in the scene.
//
// A load result is applied in full or not at all: the new node is built before
// the scene is touched, so a failure anywhere leaves state and scene as they were.
type Flow struct {
	graph       *scene.Graph
	placeholder *scene.Node
	builder     NodeBuilder
	log         *slog.Logger
	modelScale  [3]float32

	state   State
	current *scene.Node
}

// NewFlow starts in StatePlaceholderOnly. modelScale is applied to every loaded model.
func NewFlow(graph *scene.Graph, placeholder *scene.Node, builder NodeBuilder, log *slog.Logger, modelScale [3]float32) *Flow {
	return &Flow{
		graph:       graph,
		placeholder: placeholder,
		builder:     builder,
		log:         log,
		modelScale:  modelScale,
		state:       StatePlaceholderOnly,
	}
}

// State returns the current flow state.
func (f *Flow) State() State {
	return f.state
}

// Model returns the current model node, or nil before the first successful load.
func (f *Flow) Model() *scene.Node {
	return f.current
}

// Complete applies one finished load. Failures are logged and returned; the
// caller has nothing to undo.
func (f *Flow) Complete(res LoadResult) error {
	if res.Err == nil && res.Asset == nil {
		res.Err = fmt.Errorf("load %s: %w", res.Source, errNoAsset)
	}
	if res.Err != nil {
		f.log.Error("model load failed", "source", res.Source.String(), "state", f.state.String(), "error", res.Err)
		return res.Err
	}

	node, err := f.builder.Build(res.Asset)
	if err != nil {
		err = fmt.Errorf("build %s: %w", res.Asset.Name, err)
		f.log.Error("model load failed", "source", res.Source.String(), "state", f.state.String(), "error", err)
		return err
	}
	node.Kind = scene.KindModel
	if node.Name == "" {
		node.Name = res.Asset.Name
	}
	node.Transform = scene.Transform{Scale: f.modelScale}

	f.replace(node)

	attrs := []any{"source", res.Source.String(), "meshes", res.Asset.Meshes()}
	if b := res.Asset.Bounds; b.Valid {
		attrs = append(attrs, "size", b.Size())
	}
	f.log.Info("model loaded", attrs...)
	return nil
}

func (f *Flow) replace(node *scene.Node) {
	if prev := f.current; prev != nil {
		f.graph.Remove(prev)
		if prev.Drawable != nil {
			prev.Drawable.Unload()
		}
	}
	f.graph.Remove(f.placeholder)
	f.graph.Add(node)
	f.current = node
	f.state = StateModelLoaded
}
