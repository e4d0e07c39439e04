package form

// Type is a prefix pattern. Prefix holds the pattern's bits in stream order
// starting from bit 0 (the first bit read) and Bits is the pattern length.
type Type struct {
	Prefix byte
	Bits   uint
	Abbr   string
}

// Mask returns the bits of a lookahead byte covered by the pattern.
func (t Type) Mask() byte {
	return byte(uint(1)<<t.Bits - 1)
}

// Match returns true if this pattern matches the low bits of the given
// lookahead byte.
func (t Type) Match(b byte) bool {
	return b&t.Mask() == t.Prefix
}

// Extends returns true if o begins with the pattern t.
func (t Type) Extends(o Type) bool {
	return t.Bits <= o.Bits && o.Prefix&t.Mask() == t.Prefix
}

type types []Type

// Match returns the first pattern in ts that matches b using at most got bits
// of lookahead.
func (ts types) Match(b byte, got uint) (t Type, ok bool) {
	for _, t := range ts {
		if t.Bits <= got && t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Prefixes of the default table. Shown here MSB to LSB, so the first bit read
// is on the right.
var (
	Unknown = Type{}
	Form1   = Type{0b_0000_0000, 1, "f1"}
	Form2   = Type{0b_0000_0001, 2, "f2"}
	Form3   = Type{0b_0000_0011, 3, "f3"}
	Form4   = Type{0b_0001_1111, 8, "f4"}
	Form5   = Type{0b_0000_0111, 4, "f5"}
	Form6   = Type{0b_0011_1111, 8, "f6"}
	Form7   = Type{0b_0000_1111, 5, "f7"}
	Control = Type{0b_0001_1111, 5, "raw"}
)
