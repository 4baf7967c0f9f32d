package boyermoore

import "fmt"

// unset is the zero value of a shift slot that no pass has assigned yet.
// Every real shift is at least 1.
const unset = 0

func buildOccurrence(pattern []byte) [alphabetSize]int {
	var occ [alphabetSize]int
	for c := range occ {
		occ[c] = absent
	}

	// later positions overwrite earlier ones, leaving the rightmost index
	for j, c := range pattern {
		occ[c] = j
	}

	return occ
}

// buildBorders computes, right to left, the start of the widest border of
// every pattern suffix. Whenever a border cannot be extended to the left,
// the shift for that border position is recorded if no narrower suffix has
// claimed it already. The returned shift table is only partially filled.
func buildBorders(pattern []byte) (shift, borders []int) {
	m := len(pattern)
	shift = make([]int, m+1)
	borders = make([]int, m+1)

	i, j := m, m+1
	borders[i] = j

	for i > 0 {
		for j <= m && pattern[i-1] != pattern[j-1] {
			if shift[j] == unset {
				shift[j] = j - i
			}
			j = borders[j]
		}
		i--
		j--
		borders[i] = j
	}

	return shift, borders
}

// finalizeShifts fills every slot buildBorders left unset with the widest
// border of the whole pattern that still fits, narrowing to the next border
// once the position passes it.
func finalizeShifts(shift, borders []int) []int {
	j := borders[0]
	for i := range shift {
		if shift[i] == unset {
			shift[i] = j
		}
		if i == j {
			j = borders[j]
		}
	}

	return shift
}

func checkTables(p *Pattern, borders []int) {
	m := len(p.pattern)

	for c, idx := range p.occurrence {
		if idx < absent || idx >= m {
			panic(fmt.Sprintf("boyermoore: occurrence[%d] = %d out of range for pattern length %d", c, idx, m))
		}
	}

	for i, b := range borders {
		if b < 1 || b > m+1 {
			panic(fmt.Sprintf("boyermoore: border[%d] = %d out of range [1, %d]", i, b, m+1))
		}
	}

	if len(p.shift) != m+1 {
		panic(fmt.Sprintf("boyermoore: shift table has %d slots, want %d", len(p.shift), m+1))
	}

	for j, s := range p.shift {
		if s < 1 {
			panic(fmt.Sprintf("boyermoore: shift[%d] left unset", j))
		}
	}
}
