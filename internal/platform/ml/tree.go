package ml

import "sort"

// TreeNode is one node of a regression tree, stored in a flat slice so the
// tree serializes to JSON without recursion. Leaf nodes have Left == -1.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a binary regression tree fit by greedy least-squares splitting.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Predict descends from the root to a leaf and returns its value.
func (t *Tree) Predict(x []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Left < 0 {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// treeBuilder grows one tree over a row subset and a feature subset.
type treeBuilder struct {
	x        [][]float64
	y        []float64
	features []int
	maxDepth int
	minLeaf  int
	nodes    []TreeNode
}

func buildTree(x [][]float64, y []float64, rows, features []int, maxDepth, minLeaf int) *Tree {
	b := &treeBuilder{x: x, y: y, features: features, maxDepth: maxDepth, minLeaf: minLeaf}
	b.grow(rows, 0)
	return &Tree{Nodes: b.nodes}
}

// grow appends a node for rows and returns its index.
func (b *treeBuilder) grow(rows []int, depth int) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, TreeNode{Left: -1, Right: -1, Value: mean(b.y, rows)})

	if depth >= b.maxDepth || len(rows) < 2*b.minLeaf {
		return idx
	}

	feature, threshold, ok := b.bestSplit(rows)
	if !ok {
		return idx
	}

	left := make([]int, 0, len(rows))
	right := make([]int, 0, len(rows))
	for _, r := range rows {
		if b.x[r][feature] <= threshold {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	if len(left) < b.minLeaf || len(right) < b.minLeaf {
		return idx
	}

	b.nodes[idx].Feature = feature
	b.nodes[idx].Threshold = threshold
	b.nodes[idx].Left = b.grow(left, depth+1)
	b.nodes[idx].Right = b.grow(right, depth+1)
	return idx
}

// bestSplit scans every candidate feature for the threshold that minimizes
// the summed squared error of the two children.
func (b *treeBuilder) bestSplit(rows []int) (feature int, threshold float64, ok bool) {
	var (
		total, totalSq float64
		n              = float64(len(rows))
	)
	for _, r := range rows {
		total += b.y[r]
		totalSq += b.y[r] * b.y[r]
	}
	bestGain := 1e-12

	order := make([]int, len(rows))
	for _, f := range b.features {
		copy(order, rows)
		sort.Slice(order, func(i, j int) bool { return b.x[order[i]][f] < b.x[order[j]][f] })

		var leftSum float64
		for i := 0; i < len(order)-1; i++ {
			r := order[i]
			leftSum += b.y[r]

			// Only split between distinct feature values.
			if b.x[r][f] == b.x[order[i+1]][f] {
				continue
			}
			nl := float64(i + 1)
			nr := n - nl
			if int(nl) < b.minLeaf || int(nr) < b.minLeaf {
				continue
			}
			rightSum := total - leftSum
			// Variance reduction, up to constants: sum_l^2/n_l + sum_r^2/n_r - sum^2/n
			gain := leftSum*leftSum/nl + rightSum*rightSum/nr - total*total/n
			if gain > bestGain {
				bestGain = gain
				feature = f
				threshold = (b.x[r][f] + b.x[order[i+1]][f]) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func mean(y []float64, rows []int) float64 {
	if len(rows) == 0 {
		return 0
	}
	var s float64
	for _, r := range rows {
		s += y[r]
	}
	return s / float64(len(rows))
}
