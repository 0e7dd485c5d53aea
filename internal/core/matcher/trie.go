package matcher

// A byte trie over folded phrases. Only anchored lookups are needed (the scan
// picks candidate starts itself), so there are no failure links. Nodes keep
// sparse edge lists; almost every node below depth two has a single child

type edge struct {
	b    byte
	next int32
}

type trieNode struct {
	edges    []edge
	terminal bool
}

type trie struct {
	nodes []trieNode
}

func newTrie() *trie {
	return &trie{nodes: make([]trieNode, 1, 64)}
}

func (t *trie) child(state int32, b byte) int32 {
	for _, e := range t.nodes[state].edges {
		if e.b == b {
			return e.next
		}
	}
	return -1
}

// Add inserts a phrase. Empty phrases are ignored
func (t *trie) Add(p string) {
	if p == "" {
		return
	}
	var state int32
	for i := 0; i < len(p); i++ {
		nxt := t.child(state, p[i])
		if nxt == -1 {
			nxt = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{})
			t.nodes[state].edges = append(t.nodes[state].edges, edge{b: p[i], next: nxt})
		}
		state = nxt
	}
	t.nodes[state].terminal = true
}

// Ends appends to buf the end offsets of every phrase that starts at s[at:],
// shortest first
func (t *trie) Ends(s string, at int, buf []int) []int {
	var state int32
	for i := at; i < len(s); i++ {
		state = t.child(state, s[i])
		if state == -1 {
			break
		}
		if t.nodes[state].terminal {
			buf = append(buf, i+1)
		}
	}
	return buf
}
