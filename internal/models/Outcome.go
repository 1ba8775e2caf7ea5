package models

import "strconv"

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeNotConfigured
	OutcomeUpstreamHTTPError
	OutcomeUpstreamTransportError
	OutcomeMalformedResponse
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeNotConfigured:
		return "not_configured"
	case OutcomeUpstreamHTTPError:
		return "upstream_http_error"
	case OutcomeUpstreamTransportError:
		return "upstream_transport_error"
	case OutcomeMalformedResponse:
		return "malformed_upstream_response"
	default:
		return "unknown"
	}
}

// LookupOutcome is the result of a single weather lookup. Weather is set only for OutcomeSuccess,
// StatusCode only for OutcomeUpstreamHTTPError.
type LookupOutcome struct {
	Kind       OutcomeKind
	Weather    *NormalizedWeather
	StatusCode int
	Err        error
}

func (o LookupOutcome) Success() bool {
	return o.Kind == OutcomeSuccess && o.Weather != nil
}

// Label is the status label recorded in weather_api_calls_total.
func (o LookupOutcome) Label() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "success"
	case OutcomeNotConfigured:
		return "error_no_key"
	case OutcomeUpstreamHTTPError:
		return "error_" + strconv.Itoa(o.StatusCode)
	case OutcomeMalformedResponse:
		return "error_deserialization"
	default:
		return "error_exception"
	}
}
