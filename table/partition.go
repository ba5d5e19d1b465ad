package table

import "math"

// Column partitions are reconciled in fixed point so that drift in float
// sums cannot create or hide boundaries. One percentage point is
// unitsPerPercent units; boundaries closer than widthTolerance are the same
// boundary.
const (
	unitsPerPercent = 1_000_000
	fullWidth       = 100 * unitsPerPercent
	widthTolerance  = unitsPerPercent / 10_000 // 0.0001 percent
)

// boundaries returns the cumulative right edges of widths in fixed point,
// one per column. Negative widths count as zero, so the result never decreases.
func boundaries(widths []float64) []int64 {
	out := make([]int64, len(widths))
	var sum float64
	for i, w := range widths {
		if w > 0 {
			sum += w
		}
		out[i] = int64(math.Round(sum * unitsPerPercent))
	}
	return out
}

// partition is a strictly increasing list of column right edges in fixed
// point. The left edge, zero, is implicit.
type partition []int64

// newPartition builds a partition from widths, dropping columns narrower
// than the tolerance.
func newPartition(widths []float64) partition {
	var p partition
	for _, b := range boundaries(widths) {
		p = p.push(b)
	}
	return p
}

func (p partition) push(b int64) partition {
	prev := int64(0)
	if len(p) > 0 {
		prev = p[len(p)-1]
	}
	if b-prev < widthTolerance {
		return p
	}
	return append(p, b)
}

// total returns the right edge of the last column.
func (p partition) total() int64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// parts returns the column widths in fixed point.
func (p partition) parts() []int64 {
	out := make([]int64, len(p))
	prev := int64(0)
	for i, b := range p {
		out[i] = b - prev
		prev = b
	}
	return out
}

// refine returns the common refinement of p and q: every boundary of
// either, walking both left to right, with boundaries inside the tolerance
// of the previous one merged into it. Nothing is dropped when the totals
// differ; the longer partition contributes its tail.
func (p partition) refine(q partition) partition {
	out := make(partition, 0, len(p)+len(q))
	i, j := 0, 0
	for i < len(p) || j < len(q) {
		var next int64
		if j >= len(q) || (i < len(p) && p[i] <= q[j]) {
			next = p[i]
			i++
		} else {
			next = q[j]
			j++
		}
		out = out.push(next)
	}
	return out
}

// count returns how many columns of p end at or before b, within tolerance.
func (p partition) count(b int64) int {
	n := 0
	for _, e := range p {
		if e-b >= widthTolerance {
			break
		}
		n++
	}
	return n
}

// columnMap maps each column edge of a nested table onto p, which must be a
// refinement of it. Entry k is the number of refined columns left of the
// nested table's column k; entry len(widths) is the right edge.
func (p partition) columnMap(widths []float64) []int {
	m := make([]int, len(widths)+1)
	for k, b := range boundaries(widths) {
		m[k+1] = p.count(b)
	}
	return m
}
