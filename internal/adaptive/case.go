package adaptive

// A target names a single bit position written or read during an
// embedding case: which of the pair's two pixels, and which bit of it.
type target struct {
	pixel int // 1 or 2
	pos   uint
}

// caseTable enumerates, for each of the four MSB cases, the ordered list
// of target bit positions a payload bit stream is written into (or read
// from). Order matters: a partial write/read always consumes a prefix
// of this list.
var caseTable = [4][]target{
	0: {{1, 1}, {2, 1}},
	1: {{1, 2}, {1, 3}, {2, 1}},
	2: {{1, 1}, {2, 2}, {2, 3}},
	3: {{1, 2}, {1, 3}, {2, 2}, {2, 3}},
}

// classifyCase maps a pixel pair's MSBs to its case: (0,0)->0, (1,0)->1,
// (0,1)->2, (1,1)->3.
func classifyCase(p1, p2 uint8) int {
	msb1 := (p1 >> 7) & 1
	msb2 := (p2 >> 7) & 1
	switch {
	case msb1 == 0 && msb2 == 0:
		return 0
	case msb1 == 1 && msb2 == 0:
		return 1
	case msb1 == 0 && msb2 == 1:
		return 2
	default:
		return 3
	}
}

// caseBits returns the bit budget for a case: {2, 3, 3, 4}.
func caseBits(c int) int {
	return len(caseTable[c])
}

// embedCase writes up to len(bits) payload bits into (p1, p2) according
// to case c's target list. Target positions beyond len(bits) are left
// untouched. MSBs (bit 7) are never part of any case's target list, so
// the case itself can never change mid-write.
func embedCase(c int, p1, p2 uint8, bits []int) (uint8, uint8) {
	for i, bit := range bits {
		tgt := caseTable[c][i]
		mask := uint8(1) << tgt.pos
		if tgt.pixel == 1 {
			p1 = (p1 &^ mask) | (uint8(bit) << tgt.pos)
		} else {
			p2 = (p2 &^ mask) | (uint8(bit) << tgt.pos)
		}
	}
	return p1, p2
}

// extractCase reads n bits (n <= caseBits(c)) from (p1, p2) following
// the same ordered target list embedCase uses.
func extractCase(c int, p1, p2 uint8, n int) []int {
	bits := make([]int, n)
	for i := 0; i < n; i++ {
		tgt := caseTable[c][i]
		var v uint8
		if tgt.pixel == 1 {
			v = (p1 >> tgt.pos) & 1
		} else {
			v = (p2 >> tgt.pos) & 1
		}
		bits[i] = int(v)
	}
	return bits
}
