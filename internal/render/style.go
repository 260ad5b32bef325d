// Package render produces the paginated PDF documents for statements.
// Five house styles share one statement input contract; each style
// encapsulates only its own layout constants.
package render

import "fmt"

// Style identifies one of the five house styles. The value is used in
// output filenames and ground-truth metadata.
type Style string

const (
	// StyleSheldonCreek is a clean professional format with the aging
	// strip at the bottom and a simple transaction list.
	StyleSheldonCreek Style = "SheldonCreek"

	// StyleCulturesGenV is a corporate format with a document-type
	// legend, green table headers, and credit limit lines.
	StyleCulturesGenV Style = "CulturesGenV"

	// StyleComeauSeaFoods is a bold blue-branded format with separate
	// debit/credit columns and an in-table running balance.
	StyleComeauSeaFoods Style = "ComeauSeaFoods"

	// StyleCinnabarValley is a minimalist format with PO and terms
	// columns and a credit limit line.
	StyleCinnabarValley Style = "CinnabarValley"

	// StyleBriggsEquipment is a dark-red banner format with the aging
	// table at the top and a days-past-due column.
	StyleBriggsEquipment Style = "BriggsEquipment"
)

var allStyles = []Style{
	StyleSheldonCreek,
	StyleCulturesGenV,
	StyleComeauSeaFoods,
	StyleCinnabarValley,
	StyleBriggsEquipment,
}

// AllStyles returns the styles in their round-robin order.
func AllStyles() []Style {
	styles := make([]Style, len(allStyles))
	copy(styles, allStyles)
	return styles
}

// StyleForIndex returns the style for a zero-based statement index,
// cycling round-robin through all styles.
func StyleForIndex(i int) Style {
	return allStyles[i%len(allStyles)]
}

// ParseStyle resolves a style label to its Style value.
func ParseStyle(label string) (Style, error) {
	for _, s := range allStyles {
		if string(s) == label {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, label)
}

// String implements fmt.Stringer.
func (s Style) String() string {
	return string(s)
}
