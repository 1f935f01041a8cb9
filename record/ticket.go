package record

import "strings"

// The ticket-listing endpoint returns one pipe-delimited record per train.
// The layout is positional and not self-describing; these indices were
// observed on the live endpoint.
const minTicketFields = 35

const (
	idxTrainNo    = 3
	idxFromCode   = 6
	idxToCode     = 7
	idxStartTime  = 8
	idxArriveTime = 9
	idxDuration   = 10
)

// bookableMarker is the literal field value marking a bookable record; the
// two fields after it are the internal train number and the train code.
const bookableMarker = "预订"

var ticketSeatFields = []struct {
	key string
	idx int
}{
	{"business", 32},
	{"first_class", 31},
	{"second_class", 30},
	{"advanced_soft_sleeper", 21},
	{"soft_sleeper", 23},
	{"dongwo", 33},
	{"hard_sleeper", 28},
	{"soft_seat", 24},
	{"hard_seat", 29},
	{"no_seat", 26},
}

// TicketRecord is one decoded train record. FromCode/ToCode are the record's
// own segment endpoints, which may differ from the queried ones. Seats holds
// only the classes the record actually offers (non-empty counts).
type TicketRecord struct {
	TrainNo    string
	FromCode   string
	ToCode     string
	StartTime  string
	ArriveTime string
	Duration   string
	Seats      map[string]string
}

// DecodeTicketRecord decodes one pipe-delimited train record. Records with
// fewer than 35 fields decode to no match rather than an error.
func DecodeTicketRecord(raw string) (TicketRecord, bool) {
	parts := strings.Split(raw, "|")
	if len(parts) < minTicketFields {
		return TicketRecord{}, false
	}
	rec := TicketRecord{
		TrainNo:    parts[idxTrainNo],
		FromCode:   parts[idxFromCode],
		ToCode:     parts[idxToCode],
		StartTime:  parts[idxStartTime],
		ArriveTime: parts[idxArriveTime],
		Duration:   parts[idxDuration],
		Seats:      map[string]string{},
	}
	for _, f := range ticketSeatFields {
		if v := parts[f.idx]; v != "" {
			rec.Seats[f.key] = v
		}
	}
	return rec, true
}

// FindTrainNumber scans raw ticket records for the one whose train code
// matches trainCode (case-insensitive) and returns its internal train number.
// When no record matches, observed carries every train code seen, as a
// diagnostic for the caller.
func FindTrainNumber(records []string, trainCode string) (trainNo string, observed []string, ok bool) {
	want := strings.ToUpper(strings.TrimSpace(trainCode))
	for _, raw := range records {
		parts := strings.Split(raw, "|")
		marker := -1
		for i, p := range parts {
			if p == bookableMarker {
				marker = i
				break
			}
		}
		if marker < 0 || marker+2 >= len(parts) {
			continue
		}
		no := strings.TrimSpace(parts[marker+1])
		code := strings.TrimSpace(parts[marker+2])
		observed = append(observed, code)
		if strings.ToUpper(code) == want {
			return no, observed, true
		}
	}
	return "", observed, false
}
