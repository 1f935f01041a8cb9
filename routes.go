package rail12306

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/railtools/rail12306/railapi"
	"github.com/railtools/rail12306/record"
)

// TrainNumberRequest asks for the internal train number behind a public
// train code, scoped to a route and date (the same code can denote different
// physical trains on different days).
type TrainNumberRequest struct {
	TrainCode string `json:"train_code"`
	From      string `json:"from_station"`
	To        string `json:"to_station"`
	Date      string `json:"train_date"`
}

// LookupTrainNumberByCode finds the internal train number for a train code
// by scanning the ticket listing of the route. The date must be today or
// later; a past date fails before any network call.
func (p *Pipeline) LookupTrainNumberByCode(req TrainNumberRequest) TrainNumberResult {
	trainCode := strings.ToUpper(strings.TrimSpace(req.TrainCode))
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	date := strings.TrimSpace(req.Date)
	res := TrainNumberResult{TrainCode: trainCode, From: from, To: to, Date: date}

	if trainCode == "" {
		res.Status = failStatus(ErrValidation, "train code must not be empty")
		return res
	}
	if !validDate(date) {
		res.Status = failStatus(ErrValidation, "travel date must be YYYY-MM-DD")
		return res
	}
	if pastDate(date) {
		res.Status = failStatus(ErrValidation, "travel date must not be earlier than today")
		return res
	}
	fromCode, toCode, sugg := p.resolveEndpoints(from, to)
	if sugg != nil {
		res.Status = failStatus(ErrResolution, "unrecognized station name")
		res.Suggestions = sugg
		return res
	}
	res.From, res.To = fromCode, toCode

	var payload railapi.TicketPayload
	if err := p.fetcher.FetchJSON(p.cfg.Upstream.TicketPath, listingParams(date, fromCode, toCode, "ADULT"), &payload); err != nil {
		res.Status = statusFromError(err)
		return res
	}
	if len(payload.Data.Result) == 0 {
		res.Status = failStatus(ErrEmpty, "no ticket records for this route and date")
		return res
	}
	no, observed, ok := record.FindTrainNumber(payload.Data.Result, trainCode)
	if !ok {
		res.ObservedTrains = observed
		res.Status = failStatus(ErrEmpty, "train code not found on this route and date")
		return res
	}
	res.TrainNo = no
	res.Status = okStatus()
	return res
}

// RouteRequest asks for the stop list of one train. TrainNo accepts either
// the internal train number or a public train code (letters then digits);
// a code is converted through LookupTrainNumberByCode first.
type RouteRequest struct {
	TrainNo string `json:"train_no"`
	From    string `json:"from_station"`
	To      string `json:"to_station"`
	Date    string `json:"train_date"`
}

// QueryRouteStops lists every stop along a train's route with scheduled
// times and stopover durations.
func (p *Pipeline) QueryRouteStops(req RouteRequest) RouteResult {
	trainNo := strings.TrimSpace(req.TrainNo)
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	date := strings.TrimSpace(req.Date)
	res := RouteResult{TrainNo: trainNo, Date: date}

	var problems []string
	if trainNo == "" {
		problems = append(problems, "train number must not be empty")
	}
	if from == "" {
		problems = append(problems, "departure station must not be empty")
	}
	if to == "" {
		problems = append(problems, "arrival station must not be empty")
	}
	if date == "" {
		problems = append(problems, "travel date must not be empty")
	}
	if len(problems) > 0 {
		res.Status = failStatus(ErrValidation, strings.Join(problems, "; "))
		return res
	}
	if !validDate(date) {
		res.Status = failStatus(ErrValidation, "travel date must be YYYY-MM-DD")
		return res
	}
	if pastDate(date) {
		res.Status = failStatus(ErrValidation, "travel date must not be earlier than today")
		return res
	}
	fromCode, toCode, sugg := p.resolveEndpoints(from, to)
	if sugg != nil {
		res.Status = failStatus(ErrResolution, "unrecognized station name")
		res.Suggestions = sugg
		return res
	}

	actualNo := trainNo
	if isTrainCode(trainNo) {
		conv := p.LookupTrainNumberByCode(TrainNumberRequest{TrainCode: trainNo, From: fromCode, To: toCode, Date: date})
		if !conv.Success {
			res.Status = conv.Status
			return res
		}
		actualNo = conv.TrainNo
	}

	log.Infof("[route] train %s (%s) %s -> %s on %s", trainNo, actualNo, fromCode, toCode, date)
	params := map[string]string{
		"train_no":              actualNo,
		"from_station_telecode": fromCode,
		"to_station_telecode":   toCode,
		"depart_date":           date,
	}
	var payload railapi.RoutePayload
	if err := p.fetcher.FetchJSON(p.cfg.Upstream.RoutePath, params, &payload); err != nil {
		res.Status = statusFromError(err)
		return res
	}
	stops, ok := record.DecodeRouteStops(payload.Data)
	if !ok {
		res.Status = failStatus(ErrEmpty, "no route stops found")
		return res
	}
	res.Stops = stops
	res.Count = len(stops)
	res.Status = okStatus()
	return res
}
