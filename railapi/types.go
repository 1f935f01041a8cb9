package railapi

import "encoding/json"

// TicketPayload is the envelope of the ticket-listing endpoint. Each entry of
// Result is one pipe-delimited train record.
type TicketPayload struct {
	Data struct {
		Result []string `json:"result"`
	} `json:"data"`
}

// PricePayload is the envelope of the price endpoint. Items are kept raw;
// the record package owns their layout.
type PricePayload struct {
	Data []json.RawMessage `json:"data"`
}

// TransferPayload is one page of the transfer-search endpoint.
type TransferPayload struct {
	Data struct {
		MiddleList []json.RawMessage `json:"middleList"`
	} `json:"data"`
}

// RoutePayload is the envelope of the route-stops endpoint. The shape under
// data varies across upstream versions, so it is kept raw for the record
// package to probe.
type RoutePayload struct {
	Data json.RawMessage `json:"data"`
}
