package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testSoftware = &Sector{ID: "SOFTWARE", Name: "Software", InherentRisk: 2}
	testFarming  = &Sector{ID: "AGRICULTURE", Name: "Agricultura", InherentRisk: 4}
)

func testQuestionBank() []Question {
	return []Question{
		{ID: "q_all", RelevantSectors: []string{SectorAll}, RequiredForFund: []FundType{FundFOCO, FundFIS}, RiskFactor: "A"},
		{ID: "q_agri", RelevantSectors: []string{"AGRICULTURE"}, RequiredForFund: []FundType{FundFOCO}, RiskFactor: "B"},
		{ID: "q_fis", RelevantSectors: []string{SectorAll}, RequiredForFund: []FundType{FundFIS}, RiskFactor: "C"},
	}
}

func TestFilterQuestions(t *testing.T) {
	bank := testQuestionBank()

	tests := []struct {
		name   string
		fund   FundType
		sector *Sector
		want   []string
	}{
		{"foco software gets only universal", FundFOCO, testSoftware, []string{"q_all"}},
		{"foco agriculture adds sector question", FundFOCO, testFarming, []string{"q_all", "q_agri"}},
		{"fis software", FundFIS, testSoftware, []string{"q_all", "q_fis"}},
		{"empty fund filters everything", "", testSoftware, nil},
		{"nil sector keeps universal only", FundFOCO, nil, []string{"q_all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterQuestions(bank, tt.fund, tt.sector)
			var ids []string
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAnsweredCount(t *testing.T) {
	questions := testQuestionBank()

	assert.Equal(t, 0, AnsweredCount(questions, nil))
	// Answers to questions outside the filtered set do not count.
	assert.Equal(t, 1, AnsweredCount(questions, map[string]bool{"q_all": false, "other": true}))
	assert.Equal(t, 2, AnsweredCount(questions, map[string]bool{"q_all": true, "q_fis": false}))
}

func TestFilterDocuments(t *testing.T) {
	reqs := []DocumentRequirement{
		{ID: "d_all", Level: DocMandatory, RelevantSectors: []string{SectorAll}, RequiredForFund: []string{"ALL"}},
		{ID: "d_agri", Level: DocRecommended, RelevantSectors: []string{"AGRICULTURE"}, RequiredForFund: []string{"ALL"}},
		{ID: "d_fis", Level: DocMandatory, RelevantSectors: []string{SectorAll}, RequiredForFund: []string{"FIS"}},
	}

	got := FilterDocuments(reqs, FundFOCO, testSoftware)
	require.Len(t, got, 1)
	assert.Equal(t, "d_all", got[0].ID)

	got = FilterDocuments(reqs, FundFIS, testFarming)
	require.Len(t, got, 3)

	// The universal fund sentinel applies even before a fund is selected.
	got = FilterDocuments(reqs, "", testSoftware)
	require.Len(t, got, 1)
	assert.Equal(t, "d_all", got[0].ID)
}

func TestChecklist(t *testing.T) {
	reqs := []DocumentRequirement{
		{ID: "m1", Level: DocMandatory},
		{ID: "m2", Level: DocMandatory},
		{ID: "r1", Level: DocRecommended},
		{ID: "o1", Level: DocOptional},
	}

	tests := []struct {
		name string
		docs map[string]UploadedDoc
		want DocChecklist
	}{
		{"nothing supplied", nil, DocChecklist{Mandatory: 2, Recommended: 1, Optional: 1}},
		{
			"uploaded and verified count",
			map[string]UploadedDoc{
				"m1": {ReqID: "m1", Status: DocUploaded},
				"m2": {ReqID: "m2", Status: DocVerified},
			},
			DocChecklist{Mandatory: 2, MandatorySupplied: 2, Recommended: 1, Optional: 1},
		},
		{
			"pending does not count",
			map[string]UploadedDoc{"m1": {ReqID: "m1", Status: DocPending}},
			DocChecklist{Mandatory: 2, Recommended: 1, Optional: 1},
		},
		{
			"non mandatory uploads do not move the counter",
			map[string]UploadedDoc{"r1": {ReqID: "r1", Status: DocUploaded}},
			DocChecklist{Mandatory: 2, Recommended: 1, Optional: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checklist(reqs, tt.docs))
		})
	}
}
