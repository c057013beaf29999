package organization

import "time"

type Organization struct {
	ID             string
	Name           string
	Mail           string
	AdminName      string
	LogoURL        string
	Price          int
	DurationMonths int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Department struct {
	ID             string
	OrganizationID string
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
