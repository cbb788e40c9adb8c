package traitconv

// ToMetadata converts a Collectible into its Metadata form. The result always
// carries exactly one attribute per schema trait, in schema order.
func ToMetadata(c Collectible) Metadata {
	values := c.TraitValues()
	attrs := make([]Attribute, len(traits))
	for i, name := range traits {
		attrs[i] = Attribute{TraitType: name, Value: values[i]}
	}
	return Metadata{
		Name:        c.Name,
		Description: c.Description,
		Edition:     c.Edition,
		Attributes:  attrs,
	}
}

// ToCollectible converts a Metadata into its Collectible form. Each trait
// takes the value of the first attribute whose trait_type matches the
// canonical name exactly. Unknown traits are dropped and absent ones are
// left empty.
func ToCollectible(m Metadata) Collectible {
	c := Collectible{
		Name:        m.Name,
		Description: m.Description,
		Edition:     m.Edition,
	}
	slots := c.slots()
	for i, name := range traits {
		if v, ok := lookup(m.Attributes, name); ok {
			*slots[i] = v
		}
	}
	return c
}

func lookup(attrs []Attribute, traitType string) (string, bool) {
	for _, a := range attrs {
		if a.TraitType == traitType {
			return a.Value, true
		}
	}
	return "", false
}
