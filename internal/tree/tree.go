// Package tree holds the in-memory mirror of an opened directory.
//
// Nodes live in an arena owned by Tree and are addressed by NodeID. The view
// keeps ids between frames and never holds node pointers, so reading the tree
// for rendering and toggling a node in the same pass cannot alias.
package tree

import (
	"iter"
	"path/filepath"

	"github.com/lumina/tui/internal/fsio"
)

// Kind distinguishes files from directories.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	if k == Directory {
		return "directory"
	}
	return "file"
}

// NodeID addresses a node inside its Tree. IDs are stable for the lifetime
// of the tree and meaningless across trees.
type NodeID int

// NoNode is returned by lookups that find nothing.
const NoNode NodeID = -1

// Node is one filesystem entry.
type Node struct {
	Path     string
	Kind     Kind
	Expanded bool
	Children []NodeID
}

// IsDir reports whether n is a directory.
func (n Node) IsDir() bool {
	return n.Kind == Directory
}

// Visit is one step of a traversal.
type Visit struct {
	ID    NodeID
	Node  Node
	Depth int
}

// Tree is a strict tree of nodes rooted at the opened directory.
type Tree struct {
	nodes  []Node
	byPath map[string]NodeID
}

// New returns the empty tree shown before any folder has been opened.
func New() *Tree {
	return &Tree{byPath: make(map[string]NodeID)}
}

// Empty reports whether no folder is loaded.
func (t *Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Len returns the number of nodes including the root.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the id of the opened directory, or NoNode for an empty tree.
func (t *Tree) Root() NodeID {
	if t.Empty() {
		return NoNode
	}
	return 0
}

// RootPath returns the path the tree was built from.
func (t *Tree) RootPath() string {
	if t.Empty() {
		return ""
	}
	return t.nodes[0].Path
}

// Node returns a copy of the node with the given id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if !t.valid(id) {
		return Node{}, false
	}
	return t.nodes[id], true
}

// Children returns the ids of id's children in construction order.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) {
		return nil
	}
	return t.nodes[id].Children
}

// Name returns the display name of a node: the last element of its path.
func (t *Tree) Name(id NodeID) string {
	if !t.valid(id) {
		return ""
	}
	return filepath.Base(t.nodes[id].Path)
}

// Lookup finds the node built for path.
func (t *Tree) Lookup(path string) NodeID {
	if id, ok := t.byPath[filepath.Clean(path)]; ok {
		return id
	}
	return NoNode
}

// Parent returns the directory containing id, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.valid(id) || id == t.Root() {
		return NoNode
	}
	return t.Lookup(filepath.Dir(t.nodes[id].Path))
}

// Toggle flips the expanded flag of a directory. Files and unknown ids are
// left alone.
func (t *Tree) Toggle(id NodeID) {
	if !t.valid(id) || t.nodes[id].Kind != Directory {
		return
	}
	t.nodes[id].Expanded = !t.nodes[id].Expanded
}

// SetExpanded sets the expanded flag of a directory.
func (t *Tree) SetExpanded(id NodeID, expanded bool) {
	if !t.valid(id) || t.nodes[id].Kind != Directory {
		return
	}
	t.nodes[id].Expanded = expanded
}

// CollapseAll collapses every directory below the root.
func (t *Tree) CollapseAll() {
	for i := 1; i < len(t.nodes); i++ {
		t.nodes[i].Expanded = false
	}
}

// Walk yields the visible nodes depth-first in pre-order: the root's children
// at depth 0, and the children of a directory only while it is expanded.
// Each call starts a fresh traversal over the current state.
func (t *Tree) Walk() iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		if t.Empty() {
			return
		}
		t.walk(t.nodes[0].Children, 0, yield)
	}
}

func (t *Tree) walk(ids []NodeID, depth int, yield func(Visit) bool) bool {
	for _, id := range ids {
		n := t.nodes[id]
		if !yield(Visit{ID: id, Node: n, Depth: depth}) {
			return false
		}
		if n.Kind == Directory && n.Expanded {
			if !t.walk(n.Children, depth+1, yield) {
				return false
			}
		}
	}
	return true
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Build lists rootPath recursively and returns the complete tree. The build
// is all-or-nothing: the first listing failure anywhere in the hierarchy is
// returned and no tree is produced.
func Build(fsys fsio.FileSystem, rootPath string) (*Tree, error) {
	t := New()
	root := t.add(Node{Path: filepath.Clean(rootPath), Kind: Directory, Expanded: true})

	children, err := t.buildChildren(fsys, t.nodes[root].Path)
	if err != nil {
		return nil, err
	}
	t.nodes[root].Children = children
	return t, nil
}

func (t *Tree) buildChildren(fsys fsio.FileSystem, dir string) ([]NodeID, error) {
	entries, err := fsys.ListDirectory(dir)
	if err != nil {
		return nil, err
	}

	ids := make([]NodeID, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir {
			ids = append(ids, t.add(Node{Path: entry.Path, Kind: File}))
			continue
		}

		id := t.add(Node{Path: entry.Path, Kind: Directory})
		children, err := t.buildChildren(fsys, entry.Path)
		if err != nil {
			return nil, err
		}
		t.nodes[id].Children = children
		ids = append(ids, id)
	}
	return ids, nil
}

func (t *Tree) add(n Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.byPath[filepath.Clean(n.Path)] = id
	return id
}
