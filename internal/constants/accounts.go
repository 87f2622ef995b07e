package constants

const (
	MaxNameLen = 100
)

// Account policy defaults, used when the config file leaves them empty.
const (
	DefaultSavingsInterestRate    = "0.02"
	DefaultSavingsMinimumBalance  = "50.00"
	DefaultCheckingOverdraftLimit = "100.00"
)

const (
	DefaultCurrency = "USD"
	DefaultDBName   = "teller.db"
	AppDirName      = "teller"
)

// ReasonAccountNotFound is reported in failed results when the target
// account does not exist.
const ReasonAccountNotFound = "account not found"
