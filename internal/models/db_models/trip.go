package db_models

import "github.com/lib/pq"

// Trip is the server-confirmed entity created from a submitted draft.
// Dates are stored in their wire form (YYYY-MM-DD); duration_days is the
// inclusive day count derived from them.
type Trip struct {
	BaseModel
	FromLocation string `gorm:"size:255;not null"`
	ToLocation   string `gorm:"size:255;not null;index"`

	StartDate    string `gorm:"size:10;not null"`
	EndDate      string `gorm:"size:10"`
	DurationDays int    `gorm:"not null;default:1"`

	TravelType  string `gorm:"size:16"`
	PeopleCount int    `gorm:"not null;default:1"`

	HasElderly    bool
	HasChildren   bool
	HasPets       bool
	ChildrenCount int
	ElderCount    int
	PetsCount     int

	WeatherPreference string         `gorm:"size:8"`
	ModeOfTransport   string         `gorm:"size:16"`
	ExperienceType    string         `gorm:"size:16"`
	TravelPreferences pq.StringArray `gorm:"type:text[]"`
	Budget            int
}
