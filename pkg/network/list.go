package network

import "fmt"

// List is the baseline adapter: plain node and edge lists.
type List struct {
	NodeIDs    []NodeID
	EdgeList   []Edge
	IsDirected bool
}

// NewList builds a List from node names and (u, v) pairs.
// Edge ids are derived with [EdgeIDs.Next].
func NewList(nodes []string, pairs [][2]string, directed bool) *List {
	l := &List{IsDirected: directed}
	for _, n := range nodes {
		l.NodeIDs = append(l.NodeIDs, NodeID(n))
	}
	var ids EdgeIDs
	for _, p := range pairs {
		u, v := NodeID(p[0]), NodeID(p[1])
		l.EdgeList = append(l.EdgeList, Edge{ID: ids.Next("", u, v), U: u, V: v})
	}
	return l
}

// Nodes implements Network.
func (l *List) Nodes() []NodeID { return l.NodeIDs }

// Edges implements Network.
func (l *List) Edges() []Edge { return l.EdgeList }

// Directed implements Network.
func (l *List) Directed() bool { return l.IsDirected }

// EdgeIDs allocates edge ids for sources that do not name their edges.
// The zero value is ready to use.
type EdgeIDs struct {
	seen map[EdgeID]int
}

// Next returns explicit when it is non-empty, else "u-v". A repeated id gets
// a "#k" suffix so parallel edges stay distinct.
func (a *EdgeIDs) Next(explicit string, u, v NodeID) EdgeID {
	if a.seen == nil {
		a.seen = make(map[EdgeID]int)
	}
	id := EdgeID(explicit)
	if id == "" {
		id = EdgeID(fmt.Sprintf("%s-%s", u, v))
	}
	n := a.seen[id]
	a.seen[id] = n + 1
	if n == 0 {
		return id
	}
	next := EdgeID(fmt.Sprintf("%s#%d", id, n))
	for a.seen[next] > 0 {
		n++
		next = EdgeID(fmt.Sprintf("%s#%d", id, n))
	}
	a.seen[next] = 1
	return next
}
