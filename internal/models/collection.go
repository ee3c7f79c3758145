package models

// Color is the accent color of a collection.
type Color string

const (
	ColorOrange Color = "orange"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
	ColorGray   Color = "gray"
)

// PresetColors lists the colors offered by the UI, in display order.
var PresetColors = []Color{ColorOrange, ColorBlue, ColorGreen, ColorPurple, ColorPink, ColorGray}

// Valid reports whether c is one of the preset colors.
func (c Color) Valid() bool {
	for _, p := range PresetColors {
		if c == p {
			return true
		}
	}
	return false
}

// Collection is a named, colored grouping of items owned by one user.
// Ownership is carried by the partition key (the owner's email) in the
// store, not by a field.
//
// ItemCount is a denormalized count of items referencing this collection.
// It is maintained incrementally on every item create/delete and must stay
// equal to the number of items whose CollectionID matches ID.
type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       Color  `json:"color"`
	ItemCount   int    `json:"item_count"`
	UpdatedAt   string `json:"updated_at"`
}
