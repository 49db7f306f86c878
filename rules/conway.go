package rules

// CellState is the outcome of classifying one cell for the next generation.
type CellState int

const (
	Dead CellState = iota
	Alive
	Underpopulation
	Overpopulation
	Reproduction
)

var cellStateNames = [...]string{
	Dead:            "dead",
	Alive:           "alive",
	Underpopulation: "underpopulation",
	Overpopulation:  "overpopulation",
	Reproduction:    "reproduction",
}

func (s CellState) String() string {
	if s < 0 || int(s) >= len(cellStateNames) {
		return "unknown"
	}
	return cellStateNames[s]
}

// AliveNext reports whether a cell in this state is alive in the next generation.
func (s CellState) AliveNext() bool {
	return s == Alive || s == Reproduction
}

/*
Classify applies the B3/S23 rule to a cell given its current state and the
number of alive cells among its (up to eight) neighbors.

	alive, neighbors < 2   -> Underpopulation
	alive, neighbors 2..3  -> Alive
	alive, neighbors > 3   -> Overpopulation
	dead,  neighbors == 3  -> Reproduction
	otherwise              -> Dead
*/
func Classify(alive bool, neighbors int) CellState {
	switch {
	case alive && neighbors < 2:
		return Underpopulation
	case alive && neighbors <= 3:
		return Alive
	case alive:
		return Overpopulation
	case neighbors == 3:
		return Reproduction
	default:
		return Dead
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return Classify(alive, neighbors).AliveNext()
}
