package controller

import "github.com/lumina/tui/internal/tree"

// Row is one visible tree entry.
type Row struct {
	ID       tree.NodeID
	Path     string
	Name     string
	Kind     tree.Kind
	Expanded bool
	Depth    int
}

// Frame is everything the view needs to draw one frame.
type Frame struct {
	RootPath string
	Rows     []Row

	FileOpen bool
	OpenPath string
	Buffer   string
	Modified bool
}

// Snapshot captures the current tree and session for rendering.
func (c *Controller) Snapshot() Frame {
	t := c.state.Tree
	s := c.state.Session

	f := Frame{
		RootPath: t.RootPath(),
		FileOpen: s.IsOpen(),
		OpenPath: s.Path(),
		Buffer:   s.Buffer(),
		Modified: s.Modified(),
	}
	for v := range t.Walk() {
		f.Rows = append(f.Rows, Row{
			ID:       v.ID,
			Path:     v.Node.Path,
			Name:     t.Name(v.ID),
			Kind:     v.Node.Kind,
			Expanded: v.Node.Expanded,
			Depth:    v.Depth,
		})
	}
	return f
}
