package traitconv

// rawAttribute and rawMetadata mirror the wire shape with pointer fields so
// that absent and null fields can be told apart from empty ones.
type rawAttribute struct {
	TraitType *string `json:"trait_type" yaml:"trait_type"`
	Value     *string `json:"value" yaml:"value"`
}

type rawMetadata struct {
	Name        *string         `json:"name" yaml:"name"`
	Description *string         `json:"description" yaml:"description"`
	Edition     *uint32         `json:"edition" yaml:"edition"`
	Attributes  *[]rawAttribute `json:"attributes" yaml:"attributes"`
}

// metadata returns the decoded record, or the name of the first missing field.
func (r rawMetadata) metadata() (Metadata, string) {
	switch {
	case r.Name == nil:
		return Metadata{}, "name"
	case r.Description == nil:
		return Metadata{}, "description"
	case r.Edition == nil:
		return Metadata{}, "edition"
	case r.Attributes == nil:
		return Metadata{}, "attributes"
	}
	m := Metadata{
		Name:        *r.Name,
		Description: *r.Description,
		Edition:     *r.Edition,
		Attributes:  make([]Attribute, len(*r.Attributes)),
	}
	for i, a := range *r.Attributes {
		switch {
		case a.TraitType == nil:
			return Metadata{}, "attributes.trait_type"
		case a.Value == nil:
			return Metadata{}, "attributes.value"
		}
		m.Attributes[i] = Attribute{TraitType: *a.TraitType, Value: *a.Value}
	}
	return m, ""
}

// record converts the n-th decoded record.
func (r rawMetadata) record(f Format, n int) (Metadata, error) {
	m, missing := r.metadata()
	if missing != "" {
		return Metadata{}, &DecodeError{Format: f, Record: n, Field: missing, Err: ErrMissingField}
	}
	return m, nil
}

func fromRaw(f Format, raw []rawMetadata) ([]Metadata, error) {
	out := make([]Metadata, len(raw))
	for i, r := range raw {
		m, err := r.record(f, i+1)
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// UnmarshalJSON matches keys exactly and rejects repeated ones.
func (r *rawMetadata) UnmarshalJSON(data []byte) error {
	*r = rawMetadata{}
	return decodeObject(data, map[string]any{
		"name":        &r.Name,
		"description": &r.Description,
		"edition":     &r.Edition,
		"attributes":  &r.Attributes,
	})
}

// UnmarshalJSON matches keys exactly and rejects repeated ones.
func (a *rawAttribute) UnmarshalJSON(data []byte) error {
	*a = rawAttribute{}
	return decodeObject(data, map[string]any{
		"trait_type": &a.TraitType,
		"value":      &a.Value,
	})
}
