package model

// sectorMatches reports whether a relevance list covers the given sector.
// The single sentinel "ALL" matches everything.
func sectorMatches(relevant []string, sector *Sector) bool {
	for _, id := range relevant {
		if id == SectorAll {
			return true
		}
		if sector != nil && id == sector.ID {
			return true
		}
	}
	return false
}

// FilterQuestions returns the questions that apply to the given fund and
// sector. A question must match both: its fund list must contain the fund,
// and its sector list must contain the sector id or "ALL". An empty fund
// filters everything out, mirroring the triage-first flow.
func FilterQuestions(questions []Question, fund FundType, sector *Sector) []Question {
	var out []Question
	for _, q := range questions {
		if fund == "" || !fundApplies(q.RequiredForFund, fund) {
			continue
		}
		if !sectorMatches(q.RelevantSectors, sector) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func fundApplies(funds []FundType, fund FundType) bool {
	for _, f := range funds {
		if f == fund {
			return true
		}
	}
	return false
}

// AnsweredCount returns how many of the given questions have a recorded
// answer in the project state.
func AnsweredCount(questions []Question, answers map[string]bool) int {
	n := 0
	for _, q := range questions {
		if _, ok := answers[q.ID]; ok {
			n++
		}
	}
	return n
}

// FilterDocuments returns the document requirements that apply to the given
// fund and sector. Fund lists use the string sentinel "ALL".
func FilterDocuments(reqs []DocumentRequirement, fund FundType, sector *Sector) []DocumentRequirement {
	var out []DocumentRequirement
	for _, d := range reqs {
		if !docFundApplies(d.RequiredForFund, fund) {
			continue
		}
		if !sectorMatches(d.RelevantSectors, sector) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func docFundApplies(funds []string, fund FundType) bool {
	for _, f := range funds {
		if f == "ALL" {
			return true
		}
		if fund != "" && f == string(fund) {
			return true
		}
	}
	return false
}

// DocChecklist summarizes document completion for a filtered requirement set.
type DocChecklist struct {
	Mandatory         int
	MandatorySupplied int
	Recommended       int
	Optional          int
}

// Checklist counts mandatory requirements as satisfied when the matching
// document is UPLOADED or VERIFIED.
func Checklist(reqs []DocumentRequirement, docs map[string]UploadedDoc) DocChecklist {
	var c DocChecklist
	for _, r := range reqs {
		switch r.Level {
		case DocMandatory:
			c.Mandatory++
			if d, ok := docs[r.ID]; ok && (d.Status == DocUploaded || d.Status == DocVerified) {
				c.MandatorySupplied++
			}
		case DocRecommended:
			c.Recommended++
		case DocOptional:
			c.Optional++
		}
	}
	return c
}
