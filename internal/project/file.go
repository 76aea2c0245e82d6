package project

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/alterra-fm/screening-cli/internal/catalog"
	"github.com/alterra-fm/screening-cli/internal/model"
)

// File is the on-disk YAML shape of a screening input. Sector and countries
// are referenced by id/code and resolved against the catalog on load.
type File struct {
	Fund            model.FundType  `yaml:"fund" json:"fund"`
	Sector          string          `yaml:"sector" json:"sector"`
	Locations       []FileLocation  `yaml:"locations" json:"locations"`
	Activities      []FileActivity  `yaml:"activities" json:"activities"`
	Answers         map[string]bool `yaml:"answers" json:"answers"`
	SocialChallenge string          `yaml:"social_challenge" json:"social_challenge"`
}

// FileLocation references a catalog country by code.
type FileLocation struct {
	Country           string  `yaml:"country" json:"country"`
	RevenuePercentage float64 `yaml:"revenue_percentage" json:"revenue_percentage"`
}

// FileActivity names a sub-activity of the selected sector.
type FileActivity struct {
	Name              string  `yaml:"name" json:"name"`
	RevenuePercentage float64 `yaml:"revenue_percentage" json:"revenue_percentage"`
}

// LoadFile reads a project file and resolves it into a ProjectState through
// the update funcs, so the cached primaries end up consistent with the
// arrays.
func LoadFile(path string, cat *catalog.Catalog) (model.ProjectState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ProjectState{}, eris.Wrapf(err, "project: read %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return model.ProjectState{}, eris.Wrapf(err, "project: parse %s", path)
	}

	return Resolve(f, cat)
}

// Resolve builds a ProjectState from a parsed file against the catalog.
func Resolve(f File, cat *catalog.Catalog) (model.ProjectState, error) {
	s := New()

	if f.Fund != "" {
		if cat.Fund(f.Fund) == nil {
			return s, eris.Errorf("project: unknown fund %q", f.Fund)
		}
		s = SetFund(s, f.Fund)
	}

	if f.Sector != "" {
		sector := cat.Sector(f.Sector)
		if sector == nil {
			return s, eris.Errorf("project: unknown sector %q", f.Sector)
		}
		s = SetSector(s, sector)
	}

	for _, loc := range f.Locations {
		country := cat.Country(loc.Country)
		if country == nil {
			return s, eris.Errorf("project: unknown country %q", loc.Country)
		}
		s = AddLocation(s, *country)
		s = SetLocationRevenue(s, country.Code, loc.RevenuePercentage)
	}

	for _, act := range f.Activities {
		s = AddActivity(s, act.Name)
		s = SetActivityRevenue(s, act.Name, act.RevenuePercentage)
	}

	for id, answer := range f.Answers {
		s = SetAnswer(s, id, answer)
	}

	s.SocialChallenge = f.SocialChallenge
	return s, nil
}
