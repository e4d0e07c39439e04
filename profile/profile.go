// Package profile names every codec in the module so that callers and
// benchmarks can pick one at runtime.
package profile

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/smallint"
	"github.com/calebcase/smallint/elias"
	"github.com/calebcase/smallint/form"
	"github.com/calebcase/smallint/nibble"
	"github.com/calebcase/smallint/ordered"
	"github.com/calebcase/smallint/varint"
)

// Error is the class of lookup failures.
var Error = errs.Class("profile")

// Profile is a named codec.
type Profile struct {
	Name  string
	Codec smallint.Codec
}

// Profiles lists the available codecs, primary codec first.
var Profiles = []Profile{
	{Name: "2bit", Codec: form.Default},
	{Name: "4bit", Codec: nibble.Default},
	{Name: "8bit", Codec: varint.Biased{}},
	{Name: "8proto", Codec: varint.Standard{}},
	{Name: "8wt", Codec: ordered.Default},
	{Name: "gamma", Codec: elias.Gamma{}},
	{Name: "delta", Codec: elias.Delta{}},
	{Name: "delta1", Codec: elias.DirectDelta{InitialBits: 1}},
	{Name: "omega", Codec: elias.Omega{}},
}

// Names returns the profile names in order.
func Names() (names []string) {
	names = make([]string, len(Profiles))
	for i, p := range Profiles {
		names[i] = p.Name
	}

	return names
}

// Lookup returns the profile called name.
func Lookup(name string) (p Profile, err error) {
	for _, p := range Profiles {
		if p.Name == name {
			return p, nil
		}
	}

	return Profile{}, Error.New("unknown profile %q", name)
}
