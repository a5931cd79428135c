package palette

import "strings"

// menuNode is a node of the menu bar. Submenus have children, items
// point to a command.
type menuNode struct {
	label    string
	command  Index
	children []*menuNode
}

func newMenuRoot() *menuNode {
	return &menuNode{command: -1}
}

func (n *menuNode) isItem() bool {
	return n.command >= 0
}

// insert adds an item for the command at path. Each segment but the
// last names a submenu, which is shared with earlier commands.
func (n *menuNode) insert(path string, idx Index) {
	var segments []string
	for segment := range strings.SplitSeq(path, "/") {
		if segment = strings.TrimSpace(segment); segment != "" {
			segments = append(segments, segment)
		}
	}

	if len(segments) == 0 {
		return
	}

	node := n
	for _, segment := range segments[:len(segments)-1] {
		node = node.submenu(segment)
	}

	node.children = append(node.children, &menuNode{
		label:   segments[len(segments)-1],
		command: idx,
	})
}

func (n *menuNode) submenu(label string) *menuNode {
	for _, child := range n.children {
		if !child.isItem() && child.label == label {
			return child
		}
	}

	child := &menuNode{label: label, command: -1}
	n.children = append(n.children, child)
	return child
}

// walk visits the tree depth first without recursion. enter is called for
// each submenu and decides whether its children are visited, leave is
// called once all children of an entered submenu were visited.
func (n *menuNode) walk(enter func(label string) bool, item func(node *menuNode), leave func()) {
	type frame struct {
		node *menuNode
		next int
	}

	stack := []frame{{node: n}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next == len(top.node.children) {
			stack = stack[:len(stack)-1]

			// the root is not a menu of its own
			if len(stack) > 0 {
				leave()
			}

			continue
		}

		child := top.node.children[top.next]
		top.next++

		if child.isItem() {
			item(child)
			continue
		}

		if enter(child.label) {
			stack = append(stack, frame{node: child})
		}
	}
}
