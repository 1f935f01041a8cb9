package rail12306

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/railtools/rail12306/railapi"
	"github.com/railtools/rail12306/record"
)

// TransferRequest asks for multi-leg itineraries between two stations.
// Middle optionally pins the transfer station; an unresolvable hint is
// passed through as free text, since the upstream may still accept it.
// ShowNoSeat ("Y"/"N") and PurposeCodes default to "N" and "00".
type TransferRequest struct {
	From         string `json:"from_station"`
	To           string `json:"to_station"`
	Date         string `json:"train_date"`
	Middle       string `json:"middle_station,omitempty"`
	ShowNoSeat   string `json:"isShowWZ,omitempty"`
	PurposeCodes string `json:"purpose_codes,omitempty"`
}

// QueryTransfers discovers transfer itineraries by paging through the
// transfer-search endpoint with an increasing result offset until a page
// comes back short.
//
// A blocked signal on the first page is a hard failure; on a later page the
// pages already gathered are kept and returned (partial data beats no data).
// A transport failure anywhere restarts the whole sequence with the
// accumulator reset, up to the retry budget.
func (p *Pipeline) QueryTransfers(req TransferRequest) TransferResult {
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	date := strings.TrimSpace(req.Date)
	res := TransferResult{From: from, To: to, Date: date}

	if from == "" || to == "" || date == "" {
		res.Status = failStatus(ErrValidation, "departure station, arrival station and travel date are required")
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
	middle := strings.TrimSpace(req.Middle)
	if middle != "" {
		if code, ok := p.stations.Resolve(middle); ok {
			middle = code
		}
	}
	showNoSeat := strings.ToUpper(strings.TrimSpace(req.ShowNoSeat))
	if showNoSeat == "" {
		showNoSeat = "N"
	}
	purpose := strings.ToUpper(strings.TrimSpace(req.PurposeCodes))
	if purpose == "" {
		purpose = "00"
	}

	pageSize := p.cfg.Transfer.PageSize
	attempts := p.cfg.Upstream.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	wait := time.Duration(p.cfg.Upstream.RetryWaitMS) * time.Millisecond

	log.Infof("[transfers] %s(%s) -> %s(%s) on %s via %q", from, fromCode, to, toCode, date, middle)

	var items []json.RawMessage
	complete := false
	var lastTransport error
sequence:
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			time.Sleep(wait)
		}
		items = items[:0]
		p.fetcher.WarmUp()
		for offset := 0; ; offset += pageSize {
			params := map[string]string{
				"train_date":            date,
				"from_station_telecode": fromCode,
				"to_station_telecode":   toCode,
				"middle_station":        middle,
				"result_index":          strconv.Itoa(offset),
				"can_query":             "Y",
				"isShowWZ":              showNoSeat,
				"purpose_codes":         purpose,
				"channel":               "E",
			}
			var payload railapi.TransferPayload
			err := p.fetcher.FetchJSONOnce(p.cfg.Upstream.TransferPath, params, &payload)
			if err != nil {
				if railapi.IsTransport(err) {
					lastTransport = err
					log.Warnf("[transfers] attempt %d/%d failed: %v", attempt, attempts, err)
					continue sequence
				}
				if offset == 0 {
					// nothing usable was obtained
					res.Status = statusFromError(err)
					return res
				}
				// keep the pages already gathered
				log.Warnf("[transfers] upstream ended pagination at offset %d: %v", offset, err)
				complete = true
				break sequence
			}
			page := payload.Data.MiddleList
			if len(page) == 0 {
				complete = true
				break sequence
			}
			items = append(items, page...)
			if len(page) < pageSize {
				complete = true
				break sequence
			}
		}
	}
	if !complete {
		res.Status = failStatus(ErrTransport, fmt.Sprintf("request failed after %d attempts: %v", attempts, lastTransport))
		return res
	}

	for _, item := range items {
		if it, ok := record.DecodeTransferItinerary(item); ok {
			res.Transfers = append(res.Transfers, it)
		}
	}
	if len(res.Transfers) == 0 {
		res.Status = failStatus(ErrEmpty, "no transfer itineraries found")
		return res
	}
	res.Count = len(res.Transfers)
	res.Status = okStatus()
	return res
}
