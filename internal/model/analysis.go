package model

import "encoding/json"

// Analysis stores one completed submission: the resolved questionnaire
// payload plus the five generated reports.
// swagger:model Analysis
type Analysis struct {
	UUIDBase
	UserID           string          `gorm:"index;type:varchar(36);not null" json:"userId"`
	User             *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProfileData      json.RawMessage `gorm:"column:profile_data;type:json" json:"profileData"`
	Career           string          `gorm:"column:career_analysis;type:mediumtext" json:"career"`
	ROI              string          `gorm:"column:roi_analysis;type:mediumtext" json:"roi"`
	Fire             string          `gorm:"column:fire_analysis;type:mediumtext" json:"fire"`
	SideHustle       string          `gorm:"column:side_hustle_analysis;type:mediumtext" json:"side_hustle"`
	InterestsRoadmap string          `gorm:"column:interests_roadmap;type:mediumtext" json:"interests_roadmap"`
}

func (Analysis) TableName() string {
	return "analyses"
}
