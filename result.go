package rail12306

import (
	"errors"

	"github.com/railtools/rail12306/railapi"
	"github.com/railtools/rail12306/record"
	"github.com/railtools/rail12306/station"
)

// ErrorKind discriminates failure categories. Display code branches on
// Success plus ErrorKind only; messages are human language for display and
// carry no contract.
type ErrorKind string

const (
	// ErrValidation is missing or malformed caller input.
	ErrValidation ErrorKind = "validation"
	// ErrResolution is a station token that maps to no telecode.
	ErrResolution ErrorKind = "resolution"
	// ErrTransport is a connection/timeout failure after the retry budget.
	ErrTransport ErrorKind = "transport"
	// ErrUpstream is a non-200, blocked or undecodable upstream answer.
	ErrUpstream ErrorKind = "upstream"
	// ErrEmpty is a well-formed answer with zero matching records.
	ErrEmpty ErrorKind = "empty"
)

// SideSuggestions carries fuzzy matches for one unresolved station token.
type SideSuggestions struct {
	Side    string            `json:"station_type"`
	Input   string            `json:"input"`
	Matches []station.Station `json:"matches"`
}

// Status is the uniform result header embedded in every query result.
type Status struct {
	Success     bool              `json:"success"`
	ErrorKind   ErrorKind         `json:"error_kind,omitempty"`
	Error       string            `json:"error,omitempty"`
	Suggestions []SideSuggestions `json:"suggestions,omitempty"`
}

func okStatus() Status { return Status{Success: true} }

func failStatus(kind ErrorKind, msg string) Status {
	return Status{ErrorKind: kind, Error: msg}
}

// statusFromError converts a fetch error into a result status at the
// pipeline boundary.
func statusFromError(err error) Status {
	var ue *railapi.Error
	if errors.As(err, &ue) && ue.Kind != railapi.KindTransport {
		return failStatus(ErrUpstream, ue.Error())
	}
	return failStatus(ErrTransport, err.Error())
}

// TicketOffer is one train on one date and route. FromStation/ToStation name
// the record's own segment endpoints, which may differ from the queried
// stations. Seats maps seat-class key to the upstream's availability string
// ("有", "无" or a digit count); classes not offered are absent.
type TicketOffer struct {
	TrainNo         string            `json:"train_no"`
	FromStation     string            `json:"from_station"`
	FromStationCode string            `json:"from_station_code"`
	ToStation       string            `json:"to_station"`
	ToStationCode   string            `json:"to_station_code"`
	StartTime       string            `json:"start_time"`
	ArriveTime      string            `json:"arrive_time"`
	Duration        string            `json:"duration"`
	Seats           map[string]string `json:"seats"`
}

// TicketResult is the outcome of QueryTickets.
type TicketResult struct {
	Status
	From   string        `json:"from_station"`
	To     string        `json:"to_station"`
	Date   string        `json:"train_date"`
	Count  int           `json:"count"`
	Trains []TicketOffer `json:"trains"`
}

// TransferResult is the outcome of QueryTransfers.
type TransferResult struct {
	Status
	From      string                     `json:"from_station"`
	To        string                     `json:"to_station"`
	Date      string                     `json:"train_date"`
	Count     int                        `json:"count"`
	Transfers []record.TransferItinerary `json:"transfers"`
}

// PriceResult is the outcome of QueryTicketPrice.
type PriceResult struct {
	Status
	From   string              `json:"from_station"`
	To     string              `json:"to_station"`
	Date   string              `json:"train_date"`
	Count  int                 `json:"count"`
	Quotes []record.PriceQuote `json:"data"`
}

// TrainNumberResult is the outcome of LookupTrainNumberByCode. On a miss,
// ObservedTrains lists every train code seen on the route that day.
type TrainNumberResult struct {
	Status
	TrainCode      string   `json:"train_code"`
	TrainNo        string   `json:"train_no,omitempty"`
	From           string   `json:"from_station"`
	To             string   `json:"to_station"`
	Date           string   `json:"train_date"`
	ObservedTrains []string `json:"available_trains,omitempty"`
}

// RouteResult is the outcome of QueryRouteStops.
type RouteResult struct {
	Status
	TrainNo string            `json:"train_no"`
	Date    string            `json:"train_date"`
	Count   int               `json:"count"`
	Stops   []record.RouteStop `json:"stations"`
}

// StationSearchResult is the outcome of SearchStations. Hints suggest query
// forms when nothing matched.
type StationSearchResult struct {
	Status
	Query    string            `json:"query"`
	Count    int               `json:"count"`
	Stations []station.Station `json:"stations"`
	Hints    []string          `json:"hints,omitempty"`
}
