package models

import "database/sql/driver"

// SectionFlag names a toggle in the editor's section visibility panel.
type SectionFlag string

const (
	FlagProfileDetails       SectionFlag = "profileDetails"
	FlagBrandExperience      SectionFlag = "brandExperience"
	FlagServicesSkills       SectionFlag = "servicesSkills"
	FlagSocialMedia          SectionFlag = "socialMedia"
	FlagContactDetails       SectionFlag = "contactDetails"
	FlagProfilePicture       SectionFlag = "profilePicture"
	FlagTiktokVideos         SectionFlag = "tiktokVideos"
	FlagAudienceStats        SectionFlag = "audienceStats"
	FlagPerformance          SectionFlag = "performance"
	FlagAudienceDemographics SectionFlag = "audienceDemographics"
)

// AllSectionFlags returns every known flag in editor order.
func AllSectionFlags() []SectionFlag {
	return []SectionFlag{
		FlagProfileDetails,
		FlagBrandExperience,
		FlagServicesSkills,
		FlagSocialMedia,
		FlagContactDetails,
		FlagProfilePicture,
		FlagTiktokVideos,
		FlagAudienceStats,
		FlagPerformance,
		FlagAudienceDemographics,
	}
}

// SectionVisibilityState maps flags to their toggle state. Unset flags are visible.
type SectionVisibilityState map[SectionFlag]bool

// AllVisible returns a state with every flag explicitly on.
func AllVisible() SectionVisibilityState {
	state := make(SectionVisibilityState, 10)
	for _, flag := range AllSectionFlags() {
		state[flag] = true
	}
	return state
}

// Visible reports whether the flag is on. A nil state shows everything.
func (s SectionVisibilityState) Visible(flag SectionFlag) bool {
	if s == nil {
		return true
	}
	value, ok := s[flag]
	if !ok {
		return true
	}
	return value
}

// Clone returns an independent copy; nil stays nil.
func (s SectionVisibilityState) Clone() SectionVisibilityState {
	if s == nil {
		return nil
	}
	clone := make(SectionVisibilityState, len(s))
	for key, value := range s {
		clone[key] = value
	}
	return clone
}

// With returns a copy of the state with one flag changed.
func (s SectionVisibilityState) With(flag SectionFlag, visible bool) SectionVisibilityState {
	clone := make(SectionVisibilityState, len(s)+1)
	for key, value := range s {
		clone[key] = value
	}
	clone[flag] = visible
	return clone
}

func (s SectionVisibilityState) Value() (driver.Value, error) {
	return marshalJSONColumn(s, len(s) == 0)
}

func (s *SectionVisibilityState) Scan(value interface{}) error {
	decoded := SectionVisibilityState{}
	if err := scanJSONColumn(value, &decoded); err != nil {
		return err
	}
	*s = decoded
	return nil
}
