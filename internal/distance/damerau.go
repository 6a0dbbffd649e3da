// Package distance implements Damerau-Levenshtein edit distance over four
// unit-cost operations (insertion, deletion, substitution, transposition),
// including non-adjacent transpositions, and recovers one minimal operation
// sequence for attribution.
package distance

// Operation labels as reported by DistanceWithOps.
const (
	Insertion     = "INSERTION"
	Deletion      = "DELETION"
	Substitution  = "SUBSTITUTION"
	Transposition = "TRANSPOSITION"
)

// cellVia records which transition produced a DP cell's minimum.
type cellVia uint8

const (
	viaMatch cellVia = iota
	viaSub
	viaDel
	viaIns
	viaTrans
)

// choice is the recorded transition for one DP cell. For transpositions pi
// and pj hold the predecessor cell of the (possibly non-adjacent) jump.
type choice struct {
	via    cellVia
	pi, pj int
}

// Distance returns the Damerau-Levenshtein distance between a and b.
// Equal strings have distance 0; against the empty string the distance is
// the length of the other string, in runes.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	d, _ := compute([]rune(a), []rune(b))
	return d
}

// DistanceWithOps returns the distance between a and b together with one
// minimal sequence of operations transforming a into b. When several minimal
// paths exist the traversal prefers a transposition on an exact adjacent
// swap, then substitution, deletion, insertion; callers should rely on the
// operation counts summing to the distance, not on the exact sequence.
func DistanceWithOps(a, b string) (int, []string) {
	if a == b {
		return 0, nil
	}
	ra, rb := []rune(a), []rune(b)
	d, ch := computeWithChoices(ra, rb)
	return d, backtrace(ch, len(ra), len(rb))
}

// CountOps returns how many times each operation appears in ops. All four
// labels are always present.
func CountOps(ops []string) map[string]int {
	counts := map[string]int{
		Insertion:     0,
		Deletion:      0,
		Substitution:  0,
		Transposition: 0,
	}
	for _, op := range ops {
		counts[op]++
	}
	return counts
}

// compute fills the extended DP matrix and returns the final distance.
// Cell d[i+1][j+1] holds the distance between the first i runes of a and the
// first j runes of b; the extra leading row and column carry the sentinel
// needed for the transposition transition.
func compute(ra, rb []rune) (int, [][]int) {
	m, n := len(ra), len(rb)
	maxDist := m + n

	d := make([][]int, m+2)
	for i := range d {
		d[i] = make([]int, n+2)
	}
	d[0][0] = maxDist
	for i := 0; i <= m; i++ {
		d[i+1][0] = maxDist
		d[i+1][1] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j+1] = maxDist
		d[1][j+1] = j
	}

	// lastRow tracks, per rune, the last row of a where it occurred;
	// lastCol tracks the last column of b matching the current row's rune.
	lastRow := make(map[rune]int, m)
	for i := 1; i <= m; i++ {
		lastCol := 0
		for j := 1; j <= n; j++ {
			k := lastRow[rb[j-1]]
			l := lastCol
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
				lastCol = j
			}
			d[i+1][j+1] = min4(
				d[i][j]+cost,
				d[i][j+1]+1,
				d[i+1][j]+1,
				d[k][l]+(i-k-1)+1+(j-l-1),
			)
		}
		lastRow[ra[i-1]] = i
	}
	return d[m+1][n+1], d
}

// computeWithChoices is compute plus a per-cell record of the transition
// taken, so a backward traversal can recover the operation sequence.
func computeWithChoices(ra, rb []rune) (int, [][]choice) {
	m, n := len(ra), len(rb)
	maxDist := m + n

	d := make([][]int, m+2)
	ch := make([][]choice, m+2)
	for i := range d {
		d[i] = make([]int, n+2)
		ch[i] = make([]choice, n+2)
	}
	d[0][0] = maxDist
	for i := 0; i <= m; i++ {
		d[i+1][0] = maxDist
		d[i+1][1] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j+1] = maxDist
		d[1][j+1] = j
	}

	lastRow := make(map[rune]int, m)
	for i := 1; i <= m; i++ {
		lastCol := 0
		for j := 1; j <= n; j++ {
			k := lastRow[rb[j-1]]
			l := lastCol
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
				lastCol = j
			}
			sub := d[i][j] + cost
			del := d[i][j+1] + 1
			ins := d[i+1][j] + 1
			trans := d[k][l] + (i - k - 1) + 1 + (j - l - 1)

			best := min4(sub, del, ins, trans)
			adjacentSwap := i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1]

			var c choice
			switch {
			case cost == 0 && sub == best:
				c = choice{via: viaMatch}
			case adjacentSwap && trans == best:
				c = choice{via: viaTrans, pi: k, pj: l}
			case sub == best:
				c = choice{via: viaSub}
			case del == best:
				c = choice{via: viaDel}
			case ins == best:
				c = choice{via: viaIns}
			default:
				// non-adjacent transposition jump, strictly cheaper
				c = choice{via: viaTrans, pi: k, pj: l}
			}
			d[i+1][j+1] = best
			ch[i+1][j+1] = c
		}
		lastRow[ra[i-1]] = i
	}
	return d[m+1][n+1], ch
}

// backtrace walks the recorded choices from the bottom-right cell back to the
// origin and returns the operations in forward order. A non-adjacent
// transposition jump expands to its implied deletions and insertions, so the
// total count always equals the computed distance.
func backtrace(ch [][]choice, m, n int) []string {
	var rev []string
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i == 0:
			rev = append(rev, Insertion)
			j--
		case j == 0:
			rev = append(rev, Deletion)
			i--
		default:
			switch c := ch[i+1][j+1]; c.via {
			case viaMatch:
				i--
				j--
			case viaSub:
				rev = append(rev, Substitution)
				i--
				j--
			case viaDel:
				rev = append(rev, Deletion)
				i--
			case viaIns:
				rev = append(rev, Insertion)
				j--
			case viaTrans:
				for x := 0; x < j-c.pj-1; x++ {
					rev = append(rev, Insertion)
				}
				rev = append(rev, Transposition)
				for x := 0; x < i-c.pi-1; x++ {
					rev = append(rev, Deletion)
				}
				i, j = c.pi-1, c.pj-1
			}
		}
	}
	// reverse in place
	for a, b := 0, len(rev)-1; a < b; a, b = a+1, b-1 {
		rev[a], rev[b] = rev[b], rev[a]
	}
	return rev
}

func min4(a, b, c, d int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	if d < a {
		a = d
	}
	return a
}
