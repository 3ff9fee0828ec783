package htmldoc

// NodeKind classifies a node in the generic DOM tree.
type NodeKind uint8

// Node kinds. Processing instructions, if the tokenizer surfaces them at
// all, are reported as comments.
const (
	KindDocument NodeKind = iota
	KindElement
	KindText
	KindComment
	KindDoctype
)

// TreeAttr is a single name/value attribute pair. Insertion order is
// irrelevant; on duplicate names the first match wins.
type TreeAttr struct {
	Name  string
	Value string
}

// TreeNode is one node in the arena. Tag is set for elements, Text for
// text/comment nodes. Children are arena indices in document order.
type TreeNode struct {
	Kind     NodeKind
	Tag      string
	Text     string
	Attrs    []TreeAttr
	Children []NodeID
}

// Attr returns the first attribute with the given name.
func (n *TreeNode) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// NodeID references a node within a Tree.
type NodeID int32

// Tree is a generic DOM tree produced by a Tokenizer, stored as an arena
// of nodes referenced by index. It is read-only input to the parser; no
// back-references are needed since the walk is strictly top-down.
type Tree struct {
	nodes []TreeNode
}

// NewTree returns a tree containing a single document node as its root.
func NewTree() *Tree {
	return &Tree{nodes: []TreeNode{{Kind: KindDocument}}}
}

// Root returns the document root node ID.
func (t *Tree) Root() NodeID {
	return 0
}

// Add appends a node to the arena as the last child of parent and returns
// its ID.
func (t *Tree) Add(parent NodeID, n TreeNode) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	t.nodes[parent].Children = append(t.nodes[parent].Children, id)
	return id
}

// Node returns the node for the given ID. The pointer is valid until the
// next Add call.
func (t *Tree) Node(id NodeID) *TreeNode {
	return &t.nodes[id]
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}
