// Package entity provides the biller and payer entity pools consumed by
// statement generation.
//
// Two company sources exist: a fixed static pool and an OpenAI-backed
// generative source. Both satisfy CompanySource; the caller picks one at
// construction time and never branches on availability afterwards. The
// generative source is best-effort and silently falls back to the static
// pool on any failure. Customers always come from the static pool.
package entity

import (
	"context"

	"synstatement/pkg/models"
)

// CompanySource supplies a biller entity for one statement.
type CompanySource interface {
	FetchCompany(ctx context.Context) (models.Company, error)
}

// NewCompanySource selects a company source. With an empty API key the
// static pool is returned; otherwise the generative source, which uses
// pool as its fallback.
func NewCompanySource(apiKey, model string, pool *StaticPool) CompanySource {
	if apiKey == "" {
		return pool
	}
	return NewGenerativeSource(apiKey, model, pool)
}
