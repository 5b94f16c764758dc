package layout

import (
	"github.com/google/uuid"
)

// Role is an accessibility role exposed by a layout region.
type Role string

const (
	RoleTabList       Role = "tablist"
	RoleTab           Role = "tab"
	RoleTabPanel      Role = "tabpanel"
	RoleComplementary Role = "complementary"
	RoleNavigation    Role = "navigation"
	RoleMain          Role = "main"
	RoleRegion        Role = "region"
	RoleButton        Role = "button"
	RolePresentation  Role = "presentation"
)

// Node is one entry in the accessibility tree a layout exposes. IDs are
// stable for the lifetime of the layout instance.
type Node struct {
	ID         string
	Role       Role
	Label      string
	Selected   bool
	Disabled   bool
	Focusable  bool
	Controls   string
	LabelledBy string
	Children   []Node
}

// Find returns the first node with id, searching depth-first.
func (n Node) Find(id string) (Node, bool) {
	if n.ID == id {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.Find(id); ok {
			return found, true
		}
	}
	return Node{}, false
}

// FindRole returns every node with role in depth-first order.
func (n Node) FindRole(role Role) []Node {
	var out []Node
	n.walk(func(node Node) {
		if node.Role == role {
			out = append(out, node)
		}
	})
	return out
}

func (n Node) walk(fn func(Node)) {
	fn(n)
	for _, child := range n.Children {
		child.walk(fn)
	}
}

// newInstanceID returns a short identifier unique to one layout instance so
// that two mounted layouts never share accessibility ids.
func newInstanceID(kind string) string {
	return kind + "-" + uuid.NewString()[:8]
}
