// Package model defines the domain types shared by the screening engine,
// the reference catalog and the CLI surface.
package model

// RiskLevel is the final categorical rating on the 1-5 scale.
type RiskLevel string

const (
	RiskBajo    RiskLevel = "Bajo"
	RiskMedio   RiskLevel = "Medio"
	RiskAlto    RiskLevel = "Alto"
	RiskCritico RiskLevel = "Crítico"
)

// FundType identifies one of the three financing lanes.
type FundType string

const (
	FundFIEXFonpyme FundType = "FIEX_FONPYME"
	FundFOCO        FundType = "FOCO"
	FundFIS         FundType = "FIS"
)

// Fund describes a financing lane and the regulatory framework behind it.
type Fund struct {
	ID          FundType `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Regulations []string `yaml:"regulations" json:"regulations"`
}

// TaxonomyStatus classifies a sector under the EU Taxonomy.
type TaxonomyStatus string

const (
	TaxonomyGreen        TaxonomyStatus = "GREEN"
	TaxonomyTransitional TaxonomyStatus = "TRANSITIONAL"
	TaxonomyEnabling     TaxonomyStatus = "ENABLING"
	TaxonomyBrown        TaxonomyStatus = "BROWN"
)

// SectorPolicyConfig holds the per-sector exposure policy.
type SectorPolicyConfig struct {
	// RevenueThreshold is the maximum revenue percentage (0-100) tolerated
	// in any single restricted sub-activity. 0 means zero tolerance.
	RevenueThreshold float64 `yaml:"revenue_threshold" json:"revenue_threshold"`
	// RequiresTransitionPlan turns a threshold breach into a remediable
	// warning instead of a hard block.
	RequiresTransitionPlan bool           `yaml:"requires_transition_plan" json:"requires_transition_plan"`
	TaxonomyStatus         TaxonomyStatus `yaml:"taxonomy_status" json:"taxonomy_status"`
	ExclusionReason        string         `yaml:"exclusion_reason" json:"exclusion_reason"`
	RestrictedActivities   []string       `yaml:"restricted_activities" json:"restricted_activities"`
}

// Sector is static reference data, never mutated at runtime.
type Sector struct {
	ID           string              `yaml:"id" json:"id"`
	Name         string              `yaml:"name" json:"name"`
	CNAE         string              `yaml:"cnae" json:"cnae"`
	InherentRisk int                 `yaml:"inherent_risk" json:"inherent_risk"` // 1-5, higher is riskier
	IsExcluded   bool                `yaml:"is_excluded" json:"is_excluded"`
	IsRestricted bool                `yaml:"is_restricted,omitempty" json:"is_restricted,omitempty"`
	Methodology  string              `yaml:"methodology,omitempty" json:"methodology,omitempty"`
	PolicyConfig *SectorPolicyConfig `yaml:"policy_config,omitempty" json:"policy_config,omitempty"`
	SubActivity  []string            `yaml:"sub_activities" json:"sub_activities"`
}

// Country is static reference data.
type Country struct {
	Code      string `yaml:"code" json:"code"`
	Name      string `yaml:"name" json:"name"`
	RiskScore int    `yaml:"risk_score" json:"risk_score"` // 1-5, higher is riskier
}

// Question is a questionnaire item from the question bank.
type Question struct {
	ID            string     `yaml:"id" json:"id"`
	Text          string     `yaml:"text" json:"text"`
	Category      string     `yaml:"category" json:"category"`
	CategoryLabel string     `yaml:"category_label" json:"category_label"`
	// RelevantSectors lists sector ids, or the single sentinel "ALL".
	RelevantSectors []string   `yaml:"relevant_sectors" json:"relevant_sectors"`
	RequiredForFund []FundType `yaml:"required_for_fund" json:"required_for_fund"`
	// RiskFactor keys the clause-template lookup; it carries no numeric weight.
	RiskFactor string `yaml:"risk_factor" json:"risk_factor"`
}

// SectorAll is the sentinel matching every sector in relevance lists.
const SectorAll = "ALL"

// DocRequirementLevel is the shall/should/may level of a document requirement.
type DocRequirementLevel string

const (
	DocMandatory   DocRequirementLevel = "MANDATORY"
	DocRecommended DocRequirementLevel = "RECOMMENDED"
	DocOptional    DocRequirementLevel = "OPTIONAL"
)

// DocStatus tracks an uploaded document through review.
type DocStatus string

const (
	DocPending  DocStatus = "PENDING"
	DocUploaded DocStatus = "UPLOADED"
	DocVerified DocStatus = "VERIFIED"
	DocRejected DocStatus = "REJECTED"
)

// DocumentRequirement is an entry of the document-requirement catalog.
type DocumentRequirement struct {
	ID              string              `yaml:"id" json:"id"`
	Title           string              `yaml:"title" json:"title"`
	Description     string              `yaml:"description" json:"description"`
	Level           DocRequirementLevel `yaml:"level" json:"level"`
	Category        string              `yaml:"category" json:"category"`
	RelevantSectors []string            `yaml:"relevant_sectors" json:"relevant_sectors"`
	// RequiredForFund lists fund ids, or the single sentinel "ALL".
	RequiredForFund []string `yaml:"required_for_fund" json:"required_for_fund"`
}

// UploadedDoc records the review state of a document supplied for a requirement.
type UploadedDoc struct {
	ReqID      string    `yaml:"req_id" json:"req_id"`
	FileName   string    `yaml:"file_name" json:"file_name"`
	UploadDate string    `yaml:"upload_date" json:"upload_date"`
	Status     DocStatus `yaml:"status" json:"status"`
}

// ProjectLocation decomposes project revenue by country.
type ProjectLocation struct {
	Country           Country `yaml:"country" json:"country"`
	RevenuePercentage float64 `yaml:"revenue_percentage" json:"revenue_percentage"`
}

// ProjectActivity decomposes project revenue by sub-activity.
type ProjectActivity struct {
	Name              string  `yaml:"name" json:"name"`
	RevenuePercentage float64 `yaml:"revenue_percentage" json:"revenue_percentage"`
}

// ProjectState is the mutable per-session application state. It is created
// empty, updated through internal/project and discarded at session end.
type ProjectState struct {
	Fund   FundType `yaml:"fund,omitempty" json:"fund,omitempty"`
	Sector *Sector  `yaml:"sector,omitempty" json:"sector,omitempty"`

	// Primary country/activity are cached projections of the
	// highest-percentage entries below, never independent inputs.
	Activity          string   `yaml:"activity,omitempty" json:"activity,omitempty"`
	Country           *Country `yaml:"country,omitempty" json:"country,omitempty"`
	RevenuePercentage float64  `yaml:"revenue_percentage,omitempty" json:"revenue_percentage,omitempty"`

	Locations  []ProjectLocation `yaml:"locations,omitempty" json:"locations,omitempty"`
	Activities []ProjectActivity `yaml:"activities,omitempty" json:"activities,omitempty"`

	SocialChallenge string                 `yaml:"social_challenge,omitempty" json:"social_challenge,omitempty"`
	Answers         map[string]bool        `yaml:"answers,omitempty" json:"answers,omitempty"`
	Documents       map[string]UploadedDoc `yaml:"documents,omitempty" json:"documents,omitempty"`
}

// AssessmentResult is derived on demand and never persisted.
type AssessmentResult struct {
	ID                string    `json:"id"`
	InherentRisk      float64   `json:"inherent_risk"`      // 1-5
	ManagementQuality float64   `json:"management_quality"` // 1-5, inverse of compliance
	FinalScore        float64   `json:"final_score"`
	FinalRiskRating   RiskLevel `json:"final_risk_rating"`
	RequiredActions   []string  `json:"required_actions"`
	SuggestedClauses  []string  `json:"suggested_clauses"`
}
