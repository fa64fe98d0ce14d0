package board

import (
	"fmt"
	"strings"
)

// CompoundPosition is a disjoint union of SimplePositions. It represents
// strings-and-coins positions that no single rectangle holds, such as a long
// chain alongside several short ones, without wasting empty board space.
// The compound owns its parts; moves address parts by index.
type CompoundPosition struct {
	parts []*SimplePosition
}

// NewCompound creates a compound position over the given parts. Each part is
// re-salted with its index so identical shapes hash apart and the XOR of part
// hashes cannot cancel.
func NewCompound(parts []*SimplePosition) *CompoundPosition {
	for i, part := range parts {
		part.reseed(i)
	}
	return &CompoundPosition{parts: parts}
}

// Clone returns an independent copy of the compound and all its parts.
func (c *CompoundPosition) Clone() *CompoundPosition {
	parts := make([]*SimplePosition, len(c.parts))
	for i, part := range c.parts {
		parts[i] = part.Clone()
	}
	return &CompoundPosition{parts: parts}
}

// Parts returns the parts in order. The slice is owned by the compound.
func (c *CompoundPosition) Parts() []*SimplePosition {
	return c.parts
}

// Part returns the part with the given index, if it exists.
func (c *CompoundPosition) Part(i int) (*SimplePosition, bool) {
	if i < 0 || i >= len(c.parts) {
		return nil, false
	}
	return c.parts[i], true
}

func (c *CompoundPosition) IsLegalMove(m PartMove) bool {
	part, ok := c.Part(m.Part)
	return ok && part.IsLegalMove(m.Move)
}

func (c *CompoundPosition) WouldCapture(m PartMove) int {
	return c.parts[m.Part].WouldCapture(m.Move)
}

func (c *CompoundPosition) MakeMove(m PartMove) MoveOutcome {
	return c.parts[m.Part].MakeMove(m.Move)
}

func (c *CompoundPosition) UndoMove(m PartMove) {
	c.parts[m.Part].UndoMove(m.Move)
}

func (c *CompoundPosition) IsEndOfGame() bool {
	for _, part := range c.parts {
		if !part.IsEndOfGame() {
			return false
		}
	}
	return true
}

func (c *CompoundPosition) LegalMoves() []PartMove {
	var ret []PartMove
	for i, part := range c.parts {
		for _, m := range part.LegalMoves() {
			ret = append(ret, PartMove{Part: i, Move: m})
		}
	}
	return ret
}

// ZHash returns the XOR of the part hashes.
func (c *CompoundPosition) ZHash() ZobristHash {
	var ret ZobristHash
	for _, part := range c.parts {
		ret ^= part.ZHash()
	}
	return ret
}

// MovesEquivalent returns true iff both moves address the same part and name
// the same edge there.
func (c *CompoundPosition) MovesEquivalent(m1, m2 PartMove) bool {
	return m1.Part == m2.Part && c.parts[m1.Part].MovesEquivalent(m1.Move, m2.Move)
}

// Equal returns true iff the compounds have the same parts in the same order.
func (c *CompoundPosition) Equal(o *CompoundPosition) bool {
	if len(c.parts) != len(o.parts) {
		return false
	}
	for i, part := range c.parts {
		if !part.Equal(o.parts[i]) {
			return false
		}
	}
	return true
}

func (c *CompoundPosition) String() string {
	var sb strings.Builder
	for i, part := range c.parts {
		fmt.Fprintf(&sb, "Component %v:\n", i)
		sb.WriteString(part.String())
	}
	return sb.String()
}
