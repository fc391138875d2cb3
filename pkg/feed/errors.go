package feed

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/headlines/pkg/domain"
)

// Kind is a class of per-source failure
type Kind int

// failure kinds, everything except KindUnexpected is routine for a large third-party catalog
const (
	KindUnexpected Kind = iota
	KindNotFound
	KindForbidden
	KindRateLimited
	KindNameResolution
	KindConnReset
	KindMalformed
)

var kindNames = map[Kind]string{
	KindUnexpected:     "unexpected",
	KindNotFound:       "not_found",
	KindForbidden:      "forbidden",
	KindRateLimited:    "rate_limited",
	KindNameResolution: "name_resolution",
	KindConnReset:      "connection_reset",
	KindMalformed:      "malformed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Expected reports whether failures of this kind are suppressed from error reporting
func (k Kind) Expected() bool {
	return k != KindUnexpected
}

// SourceError is a fetch or parse failure of a single source
type SourceError struct {
	Source domain.Source
	Kind   Kind
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source.Identifier(), e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Classify maps an error to one of the failure kinds
func Classify(err error) Kind {
	if err == nil {
		return KindUnexpected
	}

	code := 0
	var se *StatusError
	var ghe gofeed.HTTPError
	switch {
	case errors.As(err, &se):
		code = se.Code
	case errors.As(err, &ghe):
		code = ghe.StatusCode
	}
	if code != 0 {
		switch code {
		case http.StatusNotFound:
			return KindNotFound
		case http.StatusForbidden:
			return KindForbidden
		case http.StatusTooManyRequests:
			return KindRateLimited
		}
		return KindUnexpected
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindNameResolution
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return KindConnReset
	}

	var xmlErr *xml.SyntaxError
	var jsonErr *json.SyntaxError
	if errors.Is(err, ErrMalformed) || errors.Is(err, gofeed.ErrFeedTypeNotDetected) ||
		errors.As(err, &xmlErr) || errors.As(err, &jsonErr) {
		return KindMalformed
	}

	return KindUnexpected
}
