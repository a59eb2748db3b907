//
// Zobrist - a bitboard chess engine in GO
//
// MIT License
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
package types

// Magic bitboards give sliding piece attacks in one multiply, one
// shift and one table lookup: the relevant blockers are hashed
// perfectly into a per square table of precomputed attack sets.
// https://www.chessprogramming.org/Magic_Bitboards
//
// The magic factors are found once at startup by a deterministic
// random search (fixed seed, so every run uses the identical
// tables) and the finished tables are verified against a plain ray
// walk for every single blocker subset before they are used.

type magicEntry struct {
	mask    Bitboard   // relevant blocker squares
	factor  uint64     // magic multiplier
	shift   uint8      // 64 - popcount(mask)
	attacks []Bitboard // attack set per hashed blocker subset
}

var (
	rookMagics   [SqLength]magicEntry
	bishopMagics [SqLength]magicEntry
)

// RookAttacksBb returns the squares a rook on sq attacks with the
// given occupancy.
func RookAttacksBb(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[((occupied&m.mask)*Bitboard(m.factor))>>m.shift]
}

// BishopAttacksBb returns the squares a bishop on sq attacks with
// the given occupancy.
func BishopAttacksBb(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[((occupied&m.mask)*Bitboard(m.factor))>>m.shift]
}

// QueenAttacksBb returns the squares a queen on sq attacks with the
// given occupancy.
func QueenAttacksBb(sq Square, occupied Bitboard) Bitboard {
	return RookAttacksBb(sq, occupied) | BishopAttacksBb(sq, occupied)
}

// rook directions are Directions[0:4], bishop directions
// Directions[4:8]

// slidingAttacks walks the rays from sq until a blocker or the edge
// is hit. This is the slow reference the magic tables compress.
func slidingAttacks(sq Square, occupied Bitboard, dirFrom, dirTo int) Bitboard {
	attacks := Bitboard(0)
	for i := dirFrom; i < dirTo; i++ {
		step := Directions[i]
		s := sq
		for n := uint8(0); n < squaresToEdge[sq][i]; n++ {
			s = Square(int8(s) + int8(step))
			attacks |= sqBb[s]
			if occupied.Has(s) {
				break
			}
		}
	}
	return attacks
}

// relevantMask is the blocker mask of a slider: all ray squares
// except the last one before the edge, whose occupancy never
// changes the attack set.
func relevantMask(sq Square, dirFrom, dirTo int) Bitboard {
	mask := Bitboard(0)
	for i := dirFrom; i < dirTo; i++ {
		step := Directions[i]
		s := sq
		for n := uint8(1); n < squaresToEdge[sq][i]; n++ {
			s = Square(int8(s) + int8(step))
			mask |= sqBb[s]
		}
	}
	return mask
}

// magicRand is a splitmix64 generator. A fixed seed makes the magic
// search reproducible.
type magicRand uint64

func (r *magicRand) next() uint64 {
	*r += 0x9E3779B97F4A7C15
	z := uint64(*r)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// sparse returns a random number with few bits set, the shape magic
// factors tend to have.
func (r *magicRand) sparse() uint64 {
	return r.next() & r.next() & r.next()
}

func initMagics() {
	rnd := magicRand(0x1C3B5A697E2F4D81)
	for sq := SqA1; sq < SqNone; sq++ {
		findMagic(&rookMagics[sq], sq, 0, 4, &rnd)
		findMagic(&bishopMagics[sq], sq, 4, 8, &rnd)
	}
	validateMagics()
}

// findMagic searches a perfect magic factor for one square and
// fills its attack table.
func findMagic(entry *magicEntry, sq Square, dirFrom, dirTo int, rnd *magicRand) {
	mask := relevantMask(sq, dirFrom, dirTo)
	bits := mask.PopCount()
	size := 1 << bits

	// enumerate every blocker subset of the mask and its reference
	// attack set (Carry-Rippler subset walk)
	subsets := make([]Bitboard, 0, size)
	reference := make([]Bitboard, 0, size)
	for subset := Bitboard(0); ; {
		subsets = append(subsets, subset)
		reference = append(reference, slidingAttacks(sq, subset, dirFrom, dirTo))
		subset = (subset - mask) & mask
		if subset == 0 {
			break
		}
	}

	table := make([]Bitboard, size)
	epoch := make([]int, size)
	shift := uint8(64 - bits)

	for try := 0; ; try++ {
		factor := rnd.sparse()
		// a usable factor must spread the mask bits into the upper
		// index bits; weed out hopeless candidates early
		if Bitboard((uint64(mask)*factor)>>56).PopCount() < 6 {
			continue
		}
		good := true
		for i := range subsets {
			idx := (uint64(subsets[i]) * factor) >> shift
			if epoch[idx] != try+1 {
				epoch[idx] = try + 1
				table[idx] = reference[i]
			} else if table[idx] != reference[i] {
				// a destructive collision, try the next factor
				good = false
				break
			}
		}
		if good {
			entry.mask = mask
			entry.factor = factor
			entry.shift = shift
			entry.attacks = table
			return
		}
	}
}

// validateMagics replays every blocker subset of every square
// through the finished tables and compares against the ray walk.
// A mismatch means a broken table and is a startup failure.
func validateMagics() {
	check := func(sq Square, entry *magicEntry, dirFrom, dirTo int) {
		for subset := Bitboard(0); ; {
			idx := (uint64(subset) * entry.factor) >> entry.shift
			if entry.attacks[idx] != slidingAttacks(sq, subset, dirFrom, dirTo) {
				panic("magic attack table corrupt for square " + sq.String())
			}
			subset = (subset - entry.mask) & entry.mask
			if subset == 0 {
				break
			}
		}
	}
	for sq := SqA1; sq < SqNone; sq++ {
		check(sq, &rookMagics[sq], 0, 4)
		check(sq, &bishopMagics[sq], 4, 8)
	}
}
