package errors

var (
	ErrProductNotFound = &DomainError{
		Code:    "PRODUCT_NOT_FOUND",
		Message: "product not found",
	}
	ErrAlreadyVerified = &DomainError{
		Code:    "ALREADY_VERIFIED",
		Message: "product verification is already final",
	}
	ErrNotPendingVerification = &DomainError{
		Code:    "NOT_PENDING_VERIFICATION",
		Message: "product is not pending verification",
	}
	ErrSponsorFundsExhausted = &DomainError{
		Code:    "SPONSOR_FUNDS_EXHAUSTED",
		Message: "no sponsor has sufficient remaining balance",
	}
	ErrSponsorNotFound = &DomainError{
		Code:    "SPONSOR_NOT_FOUND",
		Message: "sponsor not found",
	}
)
