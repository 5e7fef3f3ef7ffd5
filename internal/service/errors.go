package service

import (
	"errors"
	"net/url"
)

// Failure kinds. Their messages are the only text adapters without
// error detail ever show.
var (
	ErrFetch  = errors.New("failed to get")
	ErrDecode = errors.New("failed to convert to text")
)

// FetchError is the opaque error returned by FetchService. Error() reports
// only the kind; the cause stays reachable through Unwrap and Detail.
type FetchError struct {
	Kind error
	Err  error
}

func (e *FetchError) Error() string { return e.Kind.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports whether target is the failure kind, so errors.Is(err, ErrFetch) works.
func (e *FetchError) Is(target error) bool { return target == e.Kind }

// Detail renders the display text of the underlying failure. Transport
// errors are reduced to their innermost cause, so a refused dial reads
// "connection refused" rather than the full request line.
func Detail(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Err != nil {
		err = fe.Err
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		err = ue.Err
	}
	return err.Error()
}
