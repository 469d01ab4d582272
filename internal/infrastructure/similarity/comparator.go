// Package similarity scores how alike two document texts are. The score is
// the classic Ratcliff-Obershelp ratio over characters, scaled to 0..100.
package similarity

import "math"

type Comparator struct{}

func New() *Comparator { return &Comparator{} }

// Compare returns a percentage in [0,100] rounded to two decimals. An empty
// input always scores 0: there is nothing to match against. The score is
// symmetric: inputs are put in a canonical order before matching, so
// Compare(a, b) == Compare(b, a) and Compare(x, x) == 100 for non-empty x.
func (c *Comparator) Compare(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	if len(rb) < len(ra) || (len(rb) == len(ra) && b < a) {
		ra, rb = rb, ra
	}

	matched := totalMatched(ra, rb)
	ratio := 2 * float64(matched) / float64(len(ra)+len(rb))
	return math.Round(ratio*10000) / 100
}

// totalMatched sums the lengths of all matching blocks between a and b,
// recursing into the unmatched regions on either side of the longest match.
func totalMatched(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	i, j, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size + totalMatched(a[:i], b[:j]) + totalMatched(a[i+size:], b[j+size:])
}

// longestMatch finds the longest common substring of a and b, preferring
// the earliest occurrence in a, then in b, on ties.
func longestMatch(a, b []rune) (bestI, bestJ, bestSize int) {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	// j2len[j] holds the length of the match ending at a[i-1], b[j-1].
	j2len := make(map[int]int)
	for i := range a {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestSize {
				bestI, bestJ, bestSize = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}
	return bestI, bestJ, bestSize
}
