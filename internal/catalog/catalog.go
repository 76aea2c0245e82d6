// Package catalog loads and validates the static reference data consumed by
// the screening engine: sectors, countries, the question bank, clause
// templates and document requirements.
package catalog

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/alterra-fm/screening-cli/internal/model"
)

// GeneralClauseKey is the mandatory fallback entry of the clause table.
const GeneralClauseKey = "General"

// Catalog is the full read-only reference data set.
type Catalog struct {
	Funds       []model.Fund                `yaml:"funds"`
	Sectors     []model.Sector              `yaml:"sectors"`
	Countries   []model.Country             `yaml:"countries"`
	Questions   []model.Question            `yaml:"questions"`
	Clauses     map[string]string           `yaml:"clauses"`
	Documents   []model.DocumentRequirement `yaml:"documents"`
	SocialGoals []string                    `yaml:"social_challenges"`
}

// Load reads a catalog from a YAML file, falling back to the built-in
// reference set when path is empty. The result is validated either way.
func Load(path string) (*Catalog, error) {
	if path == "" {
		c := Default()
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, eris.Wrapf(err, "catalog: parse %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks structural invariants of the reference data.
func (c *Catalog) Validate() error {
	if len(c.Sectors) == 0 {
		return eris.New("catalog: no sectors defined")
	}
	if len(c.Countries) == 0 {
		return eris.New("catalog: no countries defined")
	}
	if _, ok := c.Clauses[GeneralClauseKey]; !ok {
		return eris.Errorf("catalog: clause table is missing the %q fallback entry", GeneralClauseKey)
	}

	seenSector := make(map[string]struct{}, len(c.Sectors))
	for _, s := range c.Sectors {
		if s.ID == "" {
			return eris.New("catalog: sector with empty id")
		}
		if _, dup := seenSector[s.ID]; dup {
			return eris.Errorf("catalog: duplicate sector id %q", s.ID)
		}
		seenSector[s.ID] = struct{}{}
		if s.InherentRisk < 1 || s.InherentRisk > 5 {
			return eris.Errorf("catalog: sector %s inherent risk %d out of range 1-5", s.ID, s.InherentRisk)
		}
		if pc := s.PolicyConfig; pc != nil {
			if pc.RevenueThreshold < 0 || pc.RevenueThreshold > 100 {
				return eris.Errorf("catalog: sector %s revenue threshold %.1f out of range 0-100", s.ID, pc.RevenueThreshold)
			}
		}
	}

	seenCountry := make(map[string]struct{}, len(c.Countries))
	for _, co := range c.Countries {
		if co.Code == "" {
			return eris.New("catalog: country with empty code")
		}
		if _, dup := seenCountry[co.Code]; dup {
			return eris.Errorf("catalog: duplicate country code %q", co.Code)
		}
		seenCountry[co.Code] = struct{}{}
		if co.RiskScore < 1 || co.RiskScore > 5 {
			return eris.Errorf("catalog: country %s risk score %d out of range 1-5", co.Code, co.RiskScore)
		}
	}

	seenQuestion := make(map[string]struct{}, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID == "" {
			return eris.New("catalog: question with empty id")
		}
		if _, dup := seenQuestion[q.ID]; dup {
			return eris.Errorf("catalog: duplicate question id %q", q.ID)
		}
		seenQuestion[q.ID] = struct{}{}
		if q.RiskFactor == "" {
			return eris.Errorf("catalog: question %s has no risk factor", q.ID)
		}
		if len(q.RequiredForFund) == 0 {
			return eris.Errorf("catalog: question %s applies to no fund", q.ID)
		}
		for _, id := range q.RelevantSectors {
			if id == model.SectorAll {
				continue
			}
			if _, ok := seenSector[id]; !ok {
				return eris.Errorf("catalog: question %s references unknown sector %q", q.ID, id)
			}
		}
	}

	return nil
}

// Sector returns the sector with the given id, or nil.
func (c *Catalog) Sector(id string) *model.Sector {
	for i := range c.Sectors {
		if c.Sectors[i].ID == id {
			return &c.Sectors[i]
		}
	}
	return nil
}

// Country returns the country with the given code, or nil.
func (c *Catalog) Country(code string) *model.Country {
	for i := range c.Countries {
		if c.Countries[i].Code == code {
			return &c.Countries[i]
		}
	}
	return nil
}

// Fund returns the fund with the given id, or nil.
func (c *Catalog) Fund(id model.FundType) *model.Fund {
	for i := range c.Funds {
		if c.Funds[i].ID == id {
			return &c.Funds[i]
		}
	}
	return nil
}

// Clause returns the clause template for a risk factor, falling back to the
// General entry when no exact match exists.
func (c *Catalog) Clause(riskFactor string) string {
	if text, ok := c.Clauses[riskFactor]; ok {
		return text
	}
	return c.Clauses[GeneralClauseKey]
}
