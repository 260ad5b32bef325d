package render

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"synstatement/pkg/models"
)

// ErrUnknownStyle is returned when a style label does not name one of
// the five house styles.
var ErrUnknownStyle = errors.New("unknown statement style")

// Func matches Render. The batch runner accepts one so tests can inject
// rendering failures.
type Func func(stmt *models.Statement, style Style, rng *rand.Rand) ([]byte, error)

// Render produces the PDF document for a statement in the given style.
// The random source only feeds cosmetic layout values (credit limits);
// it never changes the statement data.
func Render(stmt *models.Statement, style Style, rng *rand.Rand) ([]byte, error) {
	switch style {
	case StyleSheldonCreek:
		return renderSheldonCreek(stmt)
	case StyleCulturesGenV:
		return renderCulturesGenV(stmt, rng)
	case StyleComeauSeaFoods:
		return renderComeauSeaFoods(stmt)
	case StyleCinnabarValley:
		return renderCinnabarValley(stmt, rng)
	case StyleBriggsEquipment:
		return renderBriggsEquipment(stmt)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
}

// newLetterDoc creates a portrait Letter document with half-inch margins
// and the first page added.
func newLetterDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(12.7, 12.7, 12.7)
	pdf.SetAutoPageBreak(true, 12.7)
	pdf.AddPage()
	return pdf
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addressLines(address string) []string {
	return strings.Split(address, "\n")
}

// money formats a decimal with thousands separators and two decimal
// places, e.g. 12345.5 -> "12,345.50".
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(frac)
	return b.String()
}

func moneyFloat(f float64) string {
	return money(decimal.NewFromFloat(f).Round(2))
}
