// Package project owns the mutable per-session application state. Every
// update function takes a state by value and returns the updated copy, so
// callers never observe a half-applied edit; the cached primary country and
// activity are recomputed on every location or activity change.
package project

import (
	"github.com/alterra-fm/screening-cli/internal/model"
	"github.com/alterra-fm/screening-cli/internal/screening"
)

// New returns an empty draft state.
func New() model.ProjectState {
	return model.ProjectState{
		Answers:   map[string]bool{},
		Documents: map[string]model.UploadedDoc{},
	}
}

// SetFund selects the financing lane.
func SetFund(s model.ProjectState, fund model.FundType) model.ProjectState {
	s.Fund = fund
	return s
}

// SetSector selects the sector and clears the activity mix, which belongs to
// the previous sector's sub-activity list.
func SetSector(s model.ProjectState, sector *model.Sector) model.ProjectState {
	s.Sector = sector
	s.Activity = ""
	s.Activities = nil
	s.RevenuePercentage = 0
	return s
}

// AddLocation appends a country to the revenue decomposition. The first
// entry starts at 100%, later ones at 0% for the user to edit. Duplicate
// country codes are ignored.
func AddLocation(s model.ProjectState, country model.Country) model.ProjectState {
	for _, loc := range s.Locations {
		if loc.Country.Code == country.Code {
			return s
		}
	}
	pct := 0.0
	if len(s.Locations) == 0 {
		pct = 100
	}
	locations := append(cloneLocations(s.Locations), model.ProjectLocation{Country: country, RevenuePercentage: pct})
	return syncLocations(s, locations)
}

// SetLocationRevenue updates a country's revenue share, clamped to 0-100.
func SetLocationRevenue(s model.ProjectState, code string, pct float64) model.ProjectState {
	locations := cloneLocations(s.Locations)
	for i := range locations {
		if locations[i].Country.Code == code {
			locations[i].RevenuePercentage = clampPercent(pct)
		}
	}
	return syncLocations(s, locations)
}

// RemoveLocation drops a country from the decomposition.
func RemoveLocation(s model.ProjectState, code string) model.ProjectState {
	var locations []model.ProjectLocation
	for _, loc := range s.Locations {
		if loc.Country.Code != code {
			locations = append(locations, loc)
		}
	}
	return syncLocations(s, locations)
}

// AddActivity appends a sub-activity to the revenue mix, first entry at
// 100%, later ones at 0%. Duplicates are ignored.
func AddActivity(s model.ProjectState, name string) model.ProjectState {
	for _, act := range s.Activities {
		if act.Name == name {
			return s
		}
	}
	pct := 0.0
	if len(s.Activities) == 0 {
		pct = 100
	}
	activities := append(cloneActivities(s.Activities), model.ProjectActivity{Name: name, RevenuePercentage: pct})
	return syncActivities(s, activities)
}

// SetActivityRevenue updates an activity's revenue share, clamped to 0-100.
func SetActivityRevenue(s model.ProjectState, name string, pct float64) model.ProjectState {
	activities := cloneActivities(s.Activities)
	for i := range activities {
		if activities[i].Name == name {
			activities[i].RevenuePercentage = clampPercent(pct)
		}
	}
	return syncActivities(s, activities)
}

// RemoveActivity drops a sub-activity from the mix.
func RemoveActivity(s model.ProjectState, name string) model.ProjectState {
	var activities []model.ProjectActivity
	for _, act := range s.Activities {
		if act.Name != name {
			activities = append(activities, act)
		}
	}
	return syncActivities(s, activities)
}

// SetAnswer records a questionnaire answer.
func SetAnswer(s model.ProjectState, questionID string, answer bool) model.ProjectState {
	answers := make(map[string]bool, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	answers[questionID] = answer
	s.Answers = answers
	return s
}

// AttachDocument records an uploaded document for a requirement.
func AttachDocument(s model.ProjectState, doc model.UploadedDoc) model.ProjectState {
	docs := make(map[string]model.UploadedDoc, len(s.Documents)+1)
	for k, v := range s.Documents {
		docs[k] = v
	}
	docs[doc.ReqID] = doc
	s.Documents = docs
	return s
}

// syncLocations stores the list and refreshes the primary country cache.
func syncLocations(s model.ProjectState, locations []model.ProjectLocation) model.ProjectState {
	s.Locations = locations
	if primary, ok := screening.WeightedPrimary(screening.Locations(locations)); ok {
		c := primary.Country
		s.Country = &c
		s.RevenuePercentage = primary.RevenuePercentage
	} else {
		s.Country = nil
		s.RevenuePercentage = 0
	}
	return s
}

// syncActivities stores the list and refreshes the primary activity cache.
func syncActivities(s model.ProjectState, activities []model.ProjectActivity) model.ProjectState {
	s.Activities = activities
	if primary, ok := screening.WeightedPrimary(screening.Activities(activities)); ok {
		s.Activity = primary.Name
	} else {
		s.Activity = ""
	}
	return s
}

func clampPercent(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func cloneLocations(locs []model.ProjectLocation) []model.ProjectLocation {
	out := make([]model.ProjectLocation, len(locs))
	copy(out, locs)
	return out
}

func cloneActivities(acts []model.ProjectActivity) []model.ProjectActivity {
	out := make([]model.ProjectActivity, len(acts))
	copy(out, acts)
	return out
}
