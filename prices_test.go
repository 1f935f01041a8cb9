package rail12306

import (
	"fmt"
	"strings"
	"testing"

	"github.com/railtools/rail12306/config"
)

func priceItemBody(trainNo, trainCode string, fares map[string]string) string {
	parts := []string{
		fmt.Sprintf(`"train_no":%q`, trainNo),
		fmt.Sprintf(`"station_train_code":%q`, trainCode),
		`"from_station_name":"北京"`,
		`"to_station_name":"上海"`,
		`"start_time":"09:00"`,
		`"arrive_time":"14:28"`,
		`"lishi":"05:28"`,
	}
	for k, v := range fares {
		parts = append(parts, fmt.Sprintf("%q:%q", k, v))
	}
	return fmt.Sprintf(`{"queryLeftNewDTO":{%s}}`, strings.Join(parts, ","))
}

func priceListingBody(items ...string) string {
	return fmt.Sprintf(`{"data":[%s]}`, strings.Join(items, ","))
}

func TestQueryTicketPrice(t *testing.T) {
	body := priceListingBody(
		priceItemBody("24000000G101", "G1", map[string]string{"ze_price": "5530", "zy_price": "9330", "swz_price": "--"}),
		priceItemBody("24000000G501", "G5", map[string]string{"ze_price": "5"}),
	)
	p, f := testPipeline(t, func(path string, params map[string]string) (string, error) {
		if path != config.Default().Upstream.PricePath {
			t.Errorf("unexpected path %q", path)
		}
		if params["purpose_codes"] != "ADULT" {
			t.Errorf("purpose default missing: %v", params)
		}
		return body, nil
	})

	t.Run("all trains", func(t *testing.T) {
		res := p.QueryTicketPrice(PriceRequest{From: "北京", To: "上海", Date: futureDate})
		if !res.Success || res.Count != 2 {
			t.Fatalf("expected two quotes, got %+v", res.Status)
		}
		q := res.Quotes[0]
		if q.Prices["二等座"] != "553.0" || q.Prices["一等座"] != "933.0" {
			t.Errorf("fares not formatted: %v", q.Prices)
		}
		if _, ok := q.Prices["商务座"]; ok {
			t.Error("placeholder fare must be omitted")
		}
		if res.Quotes[1].Prices["二等座"] != "0.5" {
			t.Errorf("single-digit fare mishandled: %v", res.Quotes[1].Prices)
		}
	})

	t.Run("train code filter", func(t *testing.T) {
		res := p.QueryTicketPrice(PriceRequest{From: "北京", To: "上海", Date: futureDate, TrainCode: "g5"})
		if !res.Success || res.Count != 1 {
			t.Fatalf("expected one quote, got %d", res.Count)
		}
		if res.Quotes[0].TrainCode != "G5" {
			t.Errorf("wrong train matched: %q", res.Quotes[0].TrainCode)
		}
	})

	t.Run("filter with no match is still a success", func(t *testing.T) {
		res := p.QueryTicketPrice(PriceRequest{From: "北京", To: "上海", Date: futureDate, TrainCode: "K9999"})
		if !res.Success {
			t.Fatalf("zero matches must not fail, got %+v", res.Status)
		}
		if res.Count != 0 || len(res.Quotes) != 0 {
			t.Errorf("expected an empty set, got %d", res.Count)
		}
	})

	if len(f.calls) != 3 {
		t.Errorf("expected one fetch per query, got %d", len(f.calls))
	}
}

func TestQueryTicketPriceValidation(t *testing.T) {
	p, f := testPipeline(t, nil)
	tests := []struct {
		name string
		req  PriceRequest
		kind ErrorKind
	}{
		{"missing fields", PriceRequest{From: "北京"}, ErrValidation},
		{"bad date", PriceRequest{From: "北京", To: "上海", Date: "06/01/2026"}, ErrValidation},
		{"unknown station", PriceRequest{From: "Atlantis", To: "上海", Date: futureDate}, ErrResolution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.QueryTicketPrice(tt.req)
			if res.Success || res.ErrorKind != tt.kind {
				t.Errorf("expected %v failure, got %+v", tt.kind, res.Status)
			}
		})
	}
	if len(f.calls) != 0 {
		t.Errorf("no network calls expected, got %d", len(f.calls))
	}
}
