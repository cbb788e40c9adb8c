package traitconv

// Canonical trait names. The spelling is both the emitted trait_type and the
// case-sensitive lookup key on input.
const (
	TraitEye        = "01 _ Eye"
	TraitDecoration = "02 _ Decoration"
	TraitArms       = "03 _ Arms"
	TraitLegs       = "04 _ Legs"
	TraitBody       = "05 _ Body"
	TraitChip       = "06 _ Chip"
)

// traits is the ordered schema. Index i names the i-th trait column of a
// Collectible and the i-th attribute of a produced Metadata.
var traits = []string{TraitEye, TraitDecoration, TraitArms, TraitLegs, TraitBody, TraitChip}

// Traits returns the recognized trait names in schema order.
func Traits() []string {
	out := make([]string, len(traits))
	copy(out, traits)
	return out
}
