package errors

var (
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient ECO balance",
	}
	ErrInsufficientFiat = &DomainError{
		Code:    "INSUFFICIENT_FIAT",
		Message: "insufficient VND balance",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid amount",
	}
	ErrInvestmentNotFound = &DomainError{
		Code:    "INVESTMENT_NOT_FOUND",
		Message: "investment not found",
	}
	ErrInvestmentLocked = &DomainError{
		Code:    "INVESTMENT_LOCKED",
		Message: "investment is still locked",
	}
	ErrBelowMinimum = &DomainError{
		Code:    "BELOW_MINIMUM",
		Message: "amount is below the package minimum",
	}
	ErrPackageNotFound = &DomainError{
		Code:    "PACKAGE_NOT_FOUND",
		Message: "staking package not found",
	}
	ErrNothingToProcess = &DomainError{
		Code:    "NOTHING_TO_PROCESS",
		Message: "no collected recycling entries to process",
	}
)
