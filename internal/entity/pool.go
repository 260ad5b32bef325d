package entity

import (
	"context"
	"math/rand"

	"synstatement/pkg/models"
)

var companies = []models.Company{
	{Name: "Northern Foods Supply Co.", Address: "1234 Industrial Blvd\nToronto ON M5V 2T6", Phone: "(416) 555-0123", Email: "ar@northernfoods.ca"},
	{Name: "Pacific Seafood Distributors", Address: "890 Harbor Drive\nVancouver BC V6B 4N9", Phone: "(604) 555-0456", Email: "accounts@pacificseafood.ca"},
	{Name: "Prairie Grain Merchants Ltd.", Address: "456 Wheat Avenue\nWinnipeg MB R3C 0V8", Phone: "(204) 555-0789", Email: "billing@prairiegrain.ca"},
	{Name: "Atlantic Dairy Products Inc.", Address: "321 Coastal Road\nHalifax NS B3J 1P3", Phone: "(902) 555-0321", Email: "finance@atlanticdairy.ca"},
	{Name: "Mountain Fresh Produce Ltd.", Address: "567 Valley Road\nCalgary AB T2P 1J9", Phone: "(403) 555-0654", Email: "receivables@mountainfresh.ca"},
	{Name: "Great Lakes Equipment Co.", Address: "789 Lakeshore Blvd\nHamilton ON L8P 4X1", Phone: "(905) 555-0987", Email: "ar@greatlakesequip.ca"},
	{Name: "Quebec Artisan Foods", Address: "234 Rue Saint-Laurent\nMontreal QC H2Y 2Y3", Phone: "(514) 555-0234", Email: "comptes@quebecartisan.ca"},
	{Name: "Western Machinery Parts", Address: "678 Industrial Park Way\nEdmonton AB T5J 3N8", Phone: "(780) 555-0567", Email: "billing@westernmachinery.ca"},
	{Name: "Maritime Packaging Solutions", Address: "123 Shipyard Lane\nSaint John NB E2L 4L5", Phone: "(506) 555-0890", Email: "accounts@maritimepack.ca"},
	{Name: "Central Canada Chemicals", Address: "345 Research Drive\nOttawa ON K1N 6N5", Phone: "(613) 555-0432", Email: "finance@centralchem.ca"},
}

var customers = []models.Customer{
	{Name: "SOBEYS INC.", Address: "115 King Street\nStellarton NS B0K 1S0", AccountCode: "SOB001"},
	{Name: "METRO INC.", Address: "11011 Maurice-Duplessis Blvd\nMontreal QC H1C 1V6", AccountCode: "MET002"},
	{Name: "LOBLAWS COMPANIES", Address: "1 President's Choice Circle\nBrampton ON L6Y 5S5", AccountCode: "LOB003"},
	{Name: "COSTCO WHOLESALE", Address: "415 West Hunt Club Road\nOttawa ON K2E 1C5", AccountCode: "COS004"},
	{Name: "WALMART CANADA", Address: "1940 Argentia Road\nMississauga ON L5N 1P9", AccountCode: "WAL005"},
}

// StaticPool serves entities from fixed record sets. It never fails.
type StaticPool struct {
	rng *rand.Rand
}

// NewStaticPool creates a pool drawing picks from the given random source.
func NewStaticPool(rng *rand.Rand) *StaticPool {
	return &StaticPool{rng: rng}
}

// FetchCompany returns a random company record from the pool.
func (p *StaticPool) FetchCompany(_ context.Context) (models.Company, error) {
	return companies[p.rng.Intn(len(companies))], nil
}

// Customer returns a random customer record from the pool.
func (p *StaticPool) Customer() models.Customer {
	return customers[p.rng.Intn(len(customers))]
}
