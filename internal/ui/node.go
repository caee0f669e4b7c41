package ui

import "glb-viewer/internal/ui/css"

// Node is a single overlay element matched by class or id.
// Bounds are recomputed by Engine.Layout every frame.
type Node struct {
	Class  string
	ID     string
	Text   string
	Bounds css.Rect
	Hover  bool
	// After anchors the node to the right edge of another node; left/top
	// then offset from that node's top-right corner.
	After *Node
}

// NewNode creates a node with optional class, id and text.
func NewNode(class, id, text string) *Node {
	return &Node{Class: class, ID: id, Text: text}
}
