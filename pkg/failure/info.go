package failure

import "digital.vasic.assertions/pkg/representation"

// Info is the assertion context handed to every verb. The verbs
// never read it; they only pass it on to the Reporter.
type Info struct {
	// Description is an optional caller label, shown in front
	// of the failure message.
	Description string

	// Representation renders operands. Nil means the default.
	Representation representation.Representation
}

// SomeInfo returns an Info with the default representation.
func SomeInfo() Info {
	return Info{Representation: representation.Default()}
}

// DescribedAs returns a copy of the Info with a description.
func (i Info) DescribedAs(description string) Info {
	i.Description = description
	return i
}

// Repr returns the representation to render with.
func (i Info) Repr() representation.Representation {
	if i.Representation == nil {
		return representation.Default()
	}
	return i.Representation
}
