package matcher

// Distance is the Levenshtein edit distance between a and b: unit-cost
// insertions, deletions and substitutions over a full DP matrix.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			best := d[i-1][j] + 1
			if ins := d[i][j-1] + 1; ins < best {
				best = ins
			}
			if sub := d[i-1][j-1] + cost; sub < best {
				best = sub
			}
			d[i][j] = best
		}
	}
	return d[len(ra)][len(rb)]
}

// Similarity normalizes Distance into [0,1]: 1 - distance/max(len(a), len(b)).
// Two empty strings have similarity 1.
func Similarity(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 && lb == 0 {
		return 1
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	return 1 - float64(Distance(a, b))/float64(longest)
}
