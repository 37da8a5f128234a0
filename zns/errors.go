package zns

import (
	"errors"
	"fmt"

	"github.com/tranvictor/zilname/zaddress"
)

// Error kinds surfaced by resolution operations. Callers match them with
// errors.Is against a returned *ResolutionError.
var (
	ErrUnregisteredDomain  = errors.New("unregistered domain")
	ErrUnspecifiedResolver = errors.New("unspecified resolver")
	ErrUnspecifiedCurrency = errors.New("unspecified currency")
	ErrRecordNotFound      = errors.New("record not found")
	ErrUnsupportedDomain   = errors.New("unsupported domain")
	ErrNamingServiceDown   = errors.New("naming service is down")

	// ErrMalformedAddress is raised by the address codec and propagated
	// unmodified through the resolution pipeline.
	ErrMalformedAddress = zaddress.ErrMalformedAddress
)

// ResolutionError carries the offending domain (and field or ticker where
// relevant) together with one of the kind sentinels above.
type ResolutionError struct {
	Kind   error
	Domain string
	Field  string
	Err    error
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Domain, e.Kind)
	if e.Field != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Field)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *ResolutionError) Is(target error) bool {
	return target == e.Kind
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func newResolutionError(kind error, domain string) *ResolutionError {
	return &ResolutionError{Kind: kind, Domain: domain}
}

func newFieldError(kind error, domain, field string) *ResolutionError {
	return &ResolutionError{Kind: kind, Domain: domain, Field: field}
}
