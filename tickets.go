package rail12306

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/railtools/rail12306/railapi"
	"github.com/railtools/rail12306/record"
)

// TicketRequest asks for available trains between two stations on one date.
// From and To accept a station name, pinyin form or telecode.
type TicketRequest struct {
	From string `json:"from_station"`
	To   string `json:"to_station"`
	Date string `json:"train_date"`
}

// QueryTickets lists trains with remaining tickets for a route and date.
func (p *Pipeline) QueryTickets(req TicketRequest) TicketResult {
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	date := strings.TrimSpace(req.Date)
	res := TicketResult{From: from, To: to, Date: date}

	var problems []string
	if from == "" {
		problems = append(problems, "departure station must not be empty")
	}
	if to == "" {
		problems = append(problems, "arrival station must not be empty")
	}
	if date == "" {
		problems = append(problems, "travel date must not be empty")
	} else if !validDate(date) {
		problems = append(problems, "travel date must be YYYY-MM-DD")
	}
	if len(problems) > 0 {
		res.Status = failStatus(ErrValidation, strings.Join(problems, "; "))
		return res
	}

	fromCode, toCode, sugg := p.resolveEndpoints(from, to)
	if sugg != nil {
		res.Status = failStatus(ErrResolution, "unrecognized station name")
		res.Suggestions = sugg
		return res
	}

	log.Infof("[tickets] %s(%s) -> %s(%s) on %s", from, fromCode, to, toCode, date)
	var payload railapi.TicketPayload
	if err := p.fetcher.FetchJSON(p.cfg.Upstream.TicketPath, listingParams(date, fromCode, toCode, "ADULT"), &payload); err != nil {
		res.Status = statusFromError(err)
		return res
	}

	for _, raw := range payload.Data.Result {
		rec, ok := record.DecodeTicketRecord(raw)
		if !ok {
			continue
		}
		res.Trains = append(res.Trains, TicketOffer{
			TrainNo:         rec.TrainNo,
			FromStation:     p.displayName(rec.FromCode),
			FromStationCode: rec.FromCode,
			ToStation:       p.displayName(rec.ToCode),
			ToStationCode:   rec.ToCode,
			StartTime:       rec.StartTime,
			ArriveTime:      rec.ArriveTime,
			Duration:        rec.Duration,
			Seats:           rec.Seats,
		})
	}
	if len(res.Trains) == 0 {
		res.Status = failStatus(ErrEmpty, "no remaining tickets found for this route and date")
		return res
	}
	res.Count = len(res.Trains)
	res.Status = okStatus()
	return res
}
