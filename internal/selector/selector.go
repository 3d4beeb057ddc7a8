// Package selector computes the deterministic block ordering that both
// the adaptive embedder and extractor walk in lockstep.
package selector

import (
	"sort"

	"github.com/kestrelvane/adaptive-image-stego/internal/gradient"
)

// Block is a candidate B*B tile with its precomputed edge score.
type Block struct {
	Row, Col  int
	TileIndex int
	EdgeScore float64
}

// Order tiles the image into non-overlapping BxB blocks in row-major
// order, skips the block at (0,0) reserved for the header, scores every
// remaining block by its mean gradient magnitude, and returns them
// sorted by (-EdgeScore, TileIndex) for a total, reproducible order.
func Order(m *gradient.Map, width, height, blockSize int) []Block {
	tilesPerRow := width / blockSize
	tilesPerCol := height / blockSize

	blocks := make([]Block, 0, tilesPerRow*tilesPerCol)
	for tr := 0; tr < tilesPerCol; tr++ {
		for tc := 0; tc < tilesPerRow; tc++ {
			tileIndex := tr*tilesPerRow + tc
			if tileIndex == 0 {
				continue
			}
			row, col := tr*blockSize, tc*blockSize
			blocks = append(blocks, Block{
				Row:       row,
				Col:       col,
				TileIndex: tileIndex,
				EdgeScore: gradient.BlockMean(m, row, col, blockSize),
			})
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].EdgeScore != blocks[j].EdgeScore {
			return blocks[i].EdgeScore > blocks[j].EdgeScore
		}
		return blocks[i].TileIndex < blocks[j].TileIndex
	})
	return blocks
}

// Eligible reports whether a block's edge score clears the threshold T.
func Eligible(b Block, threshold float64) bool {
	return b.EdgeScore >= threshold
}
