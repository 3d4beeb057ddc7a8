package adaptive

import (
	"sort"

	"github.com/kestrelvane/adaptive-image-stego/internal/pixelcodec"
)

// meanOfMedians computes Me over a block: the median of each column's
// samples, averaged across the block's B columns. Matches numpy's
// median convention (average the two middle elements for an even count).
func meanOfMedians(work *pixelcodec.GrayPlane, row, col, size int) float64 {
	var sum float64
	column := make([]uint8, size)
	for j := 0; j < size; j++ {
		for i := 0; i < size; i++ {
			column[i] = work.At(col+j, row+i)
		}
		sum += median(column)
	}
	return sum / float64(size)
}

func median(vals []uint8) float64 {
	sorted := make([]uint8, len(vals))
	copy(sorted, vals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}
