package model

// License is the getLicense payload
type License struct {
	Valid          bool   `json:"valid"`
	Email          string `json:"email,omitempty"`
	LicenseExpires string `json:"licenseExpires,omitempty"`
	TrialExpires   string `json:"trialExpires,omitempty"`
}
