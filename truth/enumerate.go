package truth

// Assignment returns the row-th assignment of n atoms.
// Atom i is true iff bit n-1-i of row is 0, so that row 0 is all true,
// the last row is all false, and the first atom varies slowest.
func Assignment(n, row int) []bool {
	values := make([]bool, n)
	for i := range values {
		values[i] = (row>>(n-1-i))&1 == 0
	}
	return values
}

// Enumerate calls fn with each of the 2^n assignments of n atoms, in row order.
func Enumerate(n int, fn func(row int, values []bool)) {
	for row := 0; row < 1<<n; row++ {
		fn(row, Assignment(n, row))
	}
}
