package traitconv

import "strconv"

// Attribute is a single trait_type/value pair of a Metadata document.
type Attribute struct {
	TraitType string `json:"trait_type" yaml:"trait_type"`
	Value     string `json:"value" yaml:"value"`
}

// Metadata is the nested form of a collectible: a named object carrying a
// flat list of attributes.
type Metadata struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Edition     uint32      `json:"edition" yaml:"edition"`
	Attributes  []Attribute `json:"attributes" yaml:"attributes"`
}

// Collectible is the flat tabular form with one column per trait.
type Collectible struct {
	Name        string
	Description string
	Edition     uint32
	Eye         string
	Decoration  string
	Arms        string
	Legs        string
	Body        string
	Chip        string
}

// Column names of the tabular form, in emission order.
const (
	ColumnName        = "name"
	ColumnDescription = "description"
	ColumnEdition     = "edition"
	ColumnEye         = "eye"
	ColumnDecoration  = "decoration"
	ColumnArms        = "arms"
	ColumnLegs        = "legs"
	ColumnBody        = "body"
	ColumnChip        = "chip"
)

var columns = []string{
	ColumnName, ColumnDescription, ColumnEdition,
	ColumnEye, ColumnDecoration, ColumnArms, ColumnLegs, ColumnBody, ColumnChip,
}

// Columns returns the tabular column names in emission order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// slots returns pointers to the trait fields in schema order.
func (c *Collectible) slots() []*string {
	return []*string{&c.Eye, &c.Decoration, &c.Arms, &c.Legs, &c.Body, &c.Chip}
}

// TraitValues returns the trait values in schema order.
func (c Collectible) TraitValues() []string {
	slots := c.slots()
	out := make([]string, len(slots))
	for i, p := range slots {
		out[i] = *p
	}
	return out
}

// Header implements [Headed].
func (Collectible) Header() []string { return Columns() }

// Row implements [Rower].
func (c Collectible) Row() []string {
	row := make([]string, 0, len(columns))
	row = append(row, c.Name, c.Description, strconv.FormatUint(uint64(c.Edition), 10))
	return append(row, c.TraitValues()...)
}

// edition is the sort key shared by both record shapes.
func (c Collectible) edition() uint32 { return c.Edition }

func (m Metadata) edition() uint32 { return m.Edition }
