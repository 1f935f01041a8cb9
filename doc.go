// Package rail12306 queries the 12306 railway ticketing backend for
// available trains, fares, transfer itineraries and route stops, resolving
// human-entered station names along the way and returning normalized result
// values.
//
// The Pipeline is the entry point:
//
//	cfg := config.Default()
//	p := rail12306.NewFromConfig(cfg)
//	res := p.QueryTickets(rail12306.TicketRequest{From: "北京", To: "上海", Date: "2026-10-01"})
//	if !res.Success {
//	    // branch on res.ErrorKind; res.Error is display text
//	}
//
// Operations never return Go errors or panic: every outcome, including
// upstream blocks and network failures, arrives as a result value with a
// Status header. Callers branch on Success and ErrorKind only.
package rail12306
