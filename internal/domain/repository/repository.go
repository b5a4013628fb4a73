package repository

// SortDirection orders owner-scoped listings by their natural date column.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)
