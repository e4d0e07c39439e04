package form

import (
	"math"
	"math/bits"

	"github.com/calebcase/smallint"
)

// Spec defines a regularized form: a prefix pattern followed by DataBits of
// payload.
type Spec struct {
	Type     Type
	DataBits uint
}

// Descriptor describes a regularized form within a table. The form covers
// the values Shift through Top inclusive.
type Descriptor struct {
	Index    int
	Type     Type
	DataBits uint
	Capacity uint64
	Shift    uint64
	Top      uint64
}

// Width returns the number of bits a value in this form occupies.
func (d Descriptor) Width() uint {
	return d.Type.Bits + d.DataBits
}

// Raw describes the overflow form for values above the last regularized form.
// It is introduced by a full control byte: the Control pattern in the low
// bits and the payload byte count minus one in the remaining high bits.
type Raw struct {
	Index    int
	Control  Type
	MinBytes uint
	MaxBytes uint

	// Offset is subtracted from a value before its payload is written.
	Offset uint64
}

// ControlByte returns the control byte announcing n payload bytes.
func (r Raw) ControlByte(n uint) byte {
	return r.Control.Prefix | byte(n-1)<<r.Control.Bits
}

// PayloadBytes returns the payload size announced by control byte b.
func (r Raw) PayloadBytes(b byte) uint {
	return uint(b>>r.Control.Bits) + 1
}

// Code is one value split into a prefix and a payload. Both are written least
// significant bit first, the prefix first.
type Code struct {
	Form        int
	Prefix      uint64
	PrefixBits  uint
	Payload     uint64
	PayloadBits uint
}

// Width returns the total number of bits of the code.
func (c Code) Width() uint {
	return c.PrefixBits + c.PayloadBits
}

// Table is an immutable set of forms partitioning the 64-bit domain. It is
// safe for concurrent use.
type Table struct {
	forms []Descriptor
	raw   Raw

	// order is the decode classification order: fixed forms by prefix
	// length, then the control family.
	order  types
	byType map[Type]int
}

// NewTable builds a table from the raw form's control pattern and payload
// byte bounds and the regularized forms in increasing value order.
func NewTable(control Type, minBytes, maxBytes uint, specs ...Spec) (t *Table, err error) {
	if len(specs) == 0 {
		return nil, Error.New("no forms")
	}

	err = checkType(control)
	if err != nil {
		return nil, err
	}

	if control.Bits >= 8 {
		return nil, Error.New("control %q leaves no room for a byte count", control.Abbr)
	}

	if minBytes == 0 || minBytes > maxBytes || maxBytes > 8 {
		return nil, Error.New("invalid raw payload bounds: %d..%d", minBytes, maxBytes)
	}

	if maxBytes-1 >= 1<<(8-control.Bits) {
		return nil, Error.New("control %q cannot count %d bytes", control.Abbr, maxBytes)
	}

	t = &Table{
		forms:  make([]Descriptor, 0, len(specs)),
		byType: make(map[Type]int, len(specs)),
	}

	var shift uint64

	for i, s := range specs {
		err = checkType(s.Type)
		if err != nil {
			return nil, err
		}

		if s.DataBits >= 64 || s.Type.Bits+s.DataBits > 64 {
			return nil, Error.New("form %q too wide: %d+%d bits", s.Type.Abbr, s.Type.Bits, s.DataBits)
		}

		for _, o := range specs[:i] {
			if o.Type.Extends(s.Type) || s.Type.Extends(o.Type) {
				return nil, Error.New("prefix %q conflicts with %q", s.Type.Abbr, o.Type.Abbr)
			}
		}

		switch {
		case control.Extends(s.Type):
			if s.Type.Bits != 8 {
				return nil, Error.New("control sub-form %q must use the whole byte", s.Type.Abbr)
			}

			if uint(s.Type.Prefix>>control.Bits) >= minBytes-1 {
				return nil, Error.New("control sub-form %q collides with raw byte counts", s.Type.Abbr)
			}
		case s.Type.Extends(control):
			return nil, Error.New("prefix %q conflicts with control %q", s.Type.Abbr, control.Abbr)
		}

		capacity := uint64(1) << s.DataBits

		top, carry := bits.Add64(shift, capacity-1, 0)
		if carry != 0 || top == math.MaxUint64 {
			return nil, Error.New("form %q overflows the 64-bit domain", s.Type.Abbr)
		}

		t.forms = append(t.forms, Descriptor{
			Index:    i + 1,
			Type:     s.Type,
			DataBits: s.DataBits,
			Capacity: capacity,
			Shift:    shift,
			Top:      top,
		})
		t.byType[s.Type] = i

		shift = top + 1
	}

	t.raw = Raw{
		Index:    len(specs) + 1,
		Control:  control,
		MinBytes: minBytes,
		MaxBytes: maxBytes,
		Offset:   shift,
	}

	for prefixBits := uint(1); prefixBits <= 8; prefixBits++ {
		for _, d := range t.forms {
			if d.Type.Bits == prefixBits {
				t.order = append(t.order, d.Type)
			}
		}
	}
	t.order = append(t.order, control)

	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(control Type, minBytes, maxBytes uint, specs ...Spec) *Table {
	t, err := NewTable(control, minBytes, maxBytes, specs...)
	if err != nil {
		panic(err)
	}

	return t
}

func checkType(t Type) (err error) {
	if t.Bits == 0 || t.Bits > 8 {
		return Error.New("prefix %q has %d bits", t.Abbr, t.Bits)
	}

	if t.Prefix&^t.Mask() != 0 {
		return Error.New("prefix %q has bits outside its length: %08b", t.Abbr, t.Prefix)
	}

	return nil
}

// DefaultTable is the standard set of forms.
var DefaultTable = MustNewTable(Control, 3, 8,
	Spec{Form1, 1},
	Spec{Form2, 2},
	Spec{Form3, 5},
	Spec{Form4, 8},
	Spec{Form5, 12},
	Spec{Form6, 16},
	Spec{Form7, 19},
)

// Forms returns the regularized forms in value order.
func (t *Table) Forms() []Descriptor {
	return append([]Descriptor(nil), t.forms...)
}

// Raw returns the overflow form.
func (t *Table) Raw() Raw {
	return t.raw
}

// MaxRegular returns the largest value covered by a regularized form.
func (t *Table) MaxRegular() uint64 {
	return t.raw.Offset - 1
}

// Select returns the code for v using the first form whose range holds it.
func (t *Table) Select(v uint64) (c Code, err error) {
	for _, d := range t.forms {
		if v <= d.Top {
			return Code{
				Form:        d.Index,
				Prefix:      uint64(d.Type.Prefix),
				PrefixBits:  d.Type.Bits,
				Payload:     v - d.Shift,
				PayloadBits: d.DataBits,
			}, nil
		}
	}

	adj := v - t.raw.Offset

	n := (uint(bits.Len64(adj)) + 7) / 8
	if n < t.raw.MinBytes {
		n = t.raw.MinBytes
	}

	if n > t.raw.MaxBytes {
		return c, smallint.RangeError.New("%d needs %d raw bytes, limit %d", v, n, t.raw.MaxBytes)
	}

	return Code{
		Form:        t.raw.Index,
		Prefix:      uint64(t.raw.ControlByte(n)),
		PrefixBits:  8,
		Payload:     adj,
		PayloadBits: 8 * n,
	}, nil
}

// Classify returns the code layout (without payload) announced by the
// lookahead byte b with got valid bits.
func (t *Table) Classify(b byte, got uint) (c Code, err error) {
	ty, ok := t.order.Match(b, got)
	if !ok {
		if got < 8 {
			return c, smallint.TruncatedError.New("%d bits cannot hold a prefix: %0*b", got, int(got), b)
		}

		return c, smallint.MalformedError.New("no form matches %08b", b)
	}

	if ty == t.raw.Control {
		if got < 8 {
			return c, smallint.TruncatedError.New("control byte cut after %d bits", got)
		}

		n := t.raw.PayloadBytes(b)
		if n < t.raw.MinBytes || n > t.raw.MaxBytes {
			return c, smallint.MalformedError.New("control byte %08b announces %d bytes", b, n)
		}

		return Code{
			Form:        t.raw.Index,
			Prefix:      uint64(b),
			PrefixBits:  8,
			PayloadBits: 8 * n,
		}, nil
	}

	d := t.forms[t.byType[ty]]

	return Code{
		Form:        d.Index,
		Prefix:      uint64(ty.Prefix),
		PrefixBits:  ty.Bits,
		PayloadBits: d.DataBits,
	}, nil
}

// Value reconstructs the value of a code read from the stream.
func (t *Table) Value(c Code) (v uint64, err error) {
	if c.Form == t.raw.Index {
		if c.Payload > math.MaxUint64-t.raw.Offset {
			return 0, smallint.RangeError.New("raw payload %d exceeds 64 bits", c.Payload)
		}

		return t.raw.Offset + c.Payload, nil
	}

	if c.Form < 1 || c.Form > len(t.forms) {
		return 0, Error.New("unknown form %d", c.Form)
	}

	return t.forms[c.Form-1].Shift + c.Payload, nil
}
