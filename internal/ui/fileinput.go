package ui

// NoFile is shown until a model has been chosen.
const NoFile = "No file chosen"

// FileInput is the overlay's file chooser: a button and the chosen file's name.
type FileInput struct {
	button *Node
	name   *Node
}

// NewFileInput creates the control, styled by .file-input and .file-name.
func NewFileInput() *FileInput {
	button := NewNode("file-input", "open", "Choose .glb")
	name := NewNode("file-name", "", NoFile)
	name.After = button
	return &FileInput{button: button, name: name}
}

// Nodes returns the control's nodes in draw order.
func (f *FileInput) Nodes() []*Node {
	return []*Node{f.button, f.name}
}

// SetFile shows name as the chosen file. An empty name restores NoFile.
func (f *FileInput) SetFile(name string) {
	if name == "" {
		name = NoFile
	}
	f.name.Text = name
}

// File returns the displayed file name.
func (f *FileInput) File() string {
	return f.name.Text
}

// Hit reports whether (x, y) falls on the control. Layout must have run.
func (f *FileInput) Hit(x, y float32) bool {
	return f.button.Bounds.Contains(x, y) || f.name.Bounds.Contains(x, y)
}
