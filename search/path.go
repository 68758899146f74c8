package search

// Step is one edge of a reconstructed Path: taking Action from the
// previous state (or Path.Start, for the first Step) arrives at
// State.
type Step[S comparable, A Action] struct {
	Action A
	State  S
}

// Path is the result of a successful Search.Run: the start state, the
// ordered actions/states taken to reach a goal, and the total cost,
// which equals the goal node's final g.
type Path[S comparable, A Action, C Cost] struct {
	Start S
	Steps []Step[S, A]
	Cost  C
}

// reconstructPath walks parent links from goal back to a start node
// (Parent == NilRef), collecting (action, state) pairs, then reverses
// them into forward order.
func reconstructPath[S comparable, A Action, C Cost](arena *NodeArena[S, A, C], goal NodeRef) *Path[S, A, C] {
	goalNode := arena.Get(goal)
	var steps []Step[S, A]

	cur := goal
	for {
		node := arena.Get(cur)
		if node.Parent.IsNil() {
			return &Path[S, A, C]{
				Start: node.State,
				Steps: reverseSteps(steps),
				Cost:  goalNode.G,
			}
		}
		steps = append(steps, Step[S, A]{Action: node.ParentAction, State: node.State})
		cur = node.Parent
	}
}

func reverseSteps[S comparable, A Action](steps []Step[S, A]) []Step[S, A] {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
