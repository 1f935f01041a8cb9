package rail12306

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/railtools/rail12306/railapi"
	"github.com/railtools/rail12306/record"
)

// PriceRequest asks for fares between two stations on one date. TrainCode
// optionally narrows the answer to one train. PurposeCodes defaults to
// "ADULT".
type PriceRequest struct {
	From         string `json:"from_station"`
	To           string `json:"to_station"`
	Date         string `json:"train_date"`
	TrainCode    string `json:"train_code,omitempty"`
	PurposeCodes string `json:"purpose_codes,omitempty"`
}

// QueryTicketPrice lists per-class fares for a route and date. Zero matching
// trains is a success with an empty set, not a failure.
func (p *Pipeline) QueryTicketPrice(req PriceRequest) PriceResult {
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	date := strings.TrimSpace(req.Date)
	res := PriceResult{From: from, To: to, Date: date}

	if from == "" || to == "" || date == "" {
		res.Status = failStatus(ErrValidation, "departure station, arrival station and travel date are required")
		return res
	}
	if !validDate(date) {
		res.Status = failStatus(ErrValidation, "travel date must be YYYY-MM-DD")
		return res
	}

	fromCode, toCode, sugg := p.resolveEndpoints(from, to)
	if sugg != nil {
		res.Status = failStatus(ErrResolution, "unrecognized station name")
		res.Suggestions = sugg
		return res
	}
	purpose := strings.TrimSpace(req.PurposeCodes)
	if purpose == "" {
		purpose = "ADULT"
	}
	trainCode := strings.ToUpper(strings.TrimSpace(req.TrainCode))

	log.Infof("[prices] %s(%s) -> %s(%s) on %s train=%q", from, fromCode, to, toCode, date, trainCode)
	var payload railapi.PricePayload
	if err := p.fetcher.FetchJSON(p.cfg.Upstream.PricePath, listingParams(date, fromCode, toCode, purpose), &payload); err != nil {
		res.Status = statusFromError(err)
		return res
	}

	for _, item := range payload.Data {
		if q, ok := record.DecodePriceItem(item, trainCode); ok {
			res.Quotes = append(res.Quotes, q)
		}
	}
	res.Count = len(res.Quotes)
	res.Status = okStatus()
	return res
}
