package constants

const (
	// Interest workers for ApplyInterestToAll
	InterestWorkers = 4

	// Date Layout
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
