package rules

/*
NextState applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with two or three live neighbors and dies otherwise.
A dead cell becomes alive with exactly three live neighbors.
*/
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
