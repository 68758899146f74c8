package maze2d

import (
	"iter"

	"github.com/katalvlaran/heurograph/search"
)

// Direction is the reference Action type: one of eight compass
// directions. All eight are always defined regardless of which
// Connectivity a Problem was built with — a Conn4 problem simply never
// generates the four diagonal ones.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var offsets = [8]Coord{
	North:     {X: 0, Y: -1},
	NorthEast: {X: 1, Y: -1},
	East:      {X: 1, Y: 0},
	SouthEast: {X: 1, Y: 1},
	South:     {X: 0, Y: 1},
	SouthWest: {X: -1, Y: 1},
	West:      {X: -1, Y: 0},
	NorthWest: {X: -1, Y: -1},
}

var conn4Dirs = [4]Direction{North, East, South, West}
var conn8Dirs = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// State is the reference State type: a cell position plus a goal
// discriminator. GoalID is unused by this package's single-instance
// Parse (every 'G' cell is interchangeably a goal) but is carried to
// honor the eight-byte State layout a multi-goal variant would need.
type State struct {
	Pos    Coord
	GoalID uint32
}

// Problem adapts a parsed Maze into search.Problem, search.Space, and
// search.Heuristic. It is immutable and safe to reuse across multiple
// Search instances.
type Problem struct {
	maze         *Maze
	connectivity Connectivity
}

// NewProblem builds a Problem over maze with the given connectivity.
func NewProblem(maze *Maze, connectivity Connectivity) *Problem {
	return &Problem{maze: maze, connectivity: connectivity}
}

// Start implements search.Problem.
func (p *Problem) Start() State {
	return State{Pos: p.maze.Start()}
}

// IsGoal implements search.Problem.
func (p *Problem) IsGoal(s State) bool {
	return p.maze.IsGoal(s.Pos)
}

// Successors implements search.Space. Every move costs 1, orthogonal
// or diagonal alike — a documented reference simplification that
// keeps ChebyshevHeuristic admissible under Conn8.
func (p *Problem) Successors(s State) iter.Seq[search.Successor[State, Direction, uint32]] {
	return func(yield func(search.Successor[State, Direction, uint32]) bool) {
		dirs := conn4Dirs[:]
		if p.connectivity == Conn8 {
			dirs = conn8Dirs[:]
		}
		for _, d := range dirs {
			off := offsets[d]
			next := Coord{X: s.Pos.X + off.X, Y: s.Pos.Y + off.Y}
			if !p.maze.Passable(next) {
				continue
			}
			succ := search.Successor[State, Direction, uint32]{
				Action: d,
				State:  State{Pos: next, GoalID: s.GoalID},
				Cost:   1,
			}
			if !yield(succ) {
				return
			}
		}
	}
}

// ManhattanHeuristic estimates remaining cost as the minimum taxicab
// distance to any goal cell. Admissible and consistent under Conn4,
// where it is a lower bound on the number of unit-cost moves required.
type ManhattanHeuristic struct {
	maze *Maze
}

// NewManhattanHeuristic builds a ManhattanHeuristic over maze.
func NewManhattanHeuristic(maze *Maze) ManhattanHeuristic {
	return ManhattanHeuristic{maze: maze}
}

// Estimate implements search.Heuristic.
func (h ManhattanHeuristic) Estimate(s State) uint32 {
	return uint32(h.maze.nearestGoalManhattan(s.Pos))
}

// ChebyshevHeuristic estimates remaining cost as the minimum
// Chebyshev (diagonal) distance to any goal cell. Admissible and
// consistent under Conn8, since a diagonal move covers one unit of
// Chebyshev distance for the same unit cost as an orthogonal move.
type ChebyshevHeuristic struct {
	maze *Maze
}

// NewChebyshevHeuristic builds a ChebyshevHeuristic over maze.
func NewChebyshevHeuristic(maze *Maze) ChebyshevHeuristic {
	return ChebyshevHeuristic{maze: maze}
}

// Estimate implements search.Heuristic.
func (h ChebyshevHeuristic) Estimate(s State) uint32 {
	return uint32(h.maze.nearestGoalChebyshev(s.Pos))
}
