package searcher

import (
	"math"
	"sync"

	"checkers/game"
)

// node is a position in the search tree. Its statistics are kept from the perspective of
// mover, the side that played the move leading to it.
type node struct {
	sync.Mutex
	parent   *node
	mover    game.Colour
	moves    []game.Move
	children []*node
	rewards  float64
	visits   int
}

func newNode(parent *node, pos *position) *node {
	moves := pos.legalMoves()
	return &node{
		parent:   parent,
		mover:    pos.turn.Opposite(),
		moves:    moves,
		children: make([]*node, 0, len(moves)),
	}
}

// selectOrExpand walks one step down from n, playing the move on pos. It reports whether
// the step was a selection of an existing child; expansion and terminal nodes end the
// descent.
func (n *node) selectOrExpand(pos *position) (*node, bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 { // Terminal node
		return n, false
	}

	if len(n.moves) > len(n.children) { // Expandable node
		move := n.moves[len(n.children)]
		pos.play(move)
		child := newNode(n, pos)
		n.children = append(n.children, child)
		child.applyLoss()
		return child, false
	}

	// Fully expanded node
	ith := n.pickChild()
	child := n.children[ith]
	pos.play(n.moves[ith])
	child.applyLoss()
	return child, true
}

func (n *node) pickChild() int {
	// A searcher only picks from a node it has charged, so visits is at least one
	normalizer := CSquared * math.Log(math.Max(1, float64(n.visits)))

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := child.score(normalizer)
		if score == math.Inf(1) {
			return i
		}
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

// applyLoss counts a pending visit as a loss so concurrent searchers spread out. Every
// node on a search path, the root included, is charged once and reversed in backup.
func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) score(normalizer float64) float64 {
	n.Lock()
	defer n.Unlock()

	return ucb1(n.rewards, n.visits, normalizer)
}

func (n *node) backup(o outcome) *node {
	n.Lock()
	defer n.Unlock()

	n.reverseLoss()
	n.rewards += o.rewardFor(n.mover)
	n.visits++

	return n.parent
}

func (n *node) reverseLoss() {
	n.rewards -= Loss
	n.visits--
}

func (n *node) stats() (rewards float64, visits int) {
	n.Lock()
	defer n.Unlock()

	return n.rewards, n.visits
}
