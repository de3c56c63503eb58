package domain

// ApplicationFilter contains filtering/pagination parameters for application searches.
type ApplicationFilter struct {
	// Search matches company and position, case-insensitive substring.
	Search    *string
	Status    *ApplicationStatus
	Source    *string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
