package record

import (
	"encoding/json"
	"strings"
)

// placeholder is the upstream's "not offered" marker for seat and fare
// fields.
const placeholder = "--"

// PriceQuote is one train's decoded fares, keyed by displayed seat-class
// label.
type PriceQuote struct {
	TrainNo        string            `json:"train_no"`
	TrainCode      string            `json:"train_code"`
	FromStation    string            `json:"from_station"`
	ToStation      string            `json:"to_station"`
	StartTime      string            `json:"start_time"`
	ArriveTime     string            `json:"arrive_time"`
	Duration       string            `json:"duration"`
	TrainClassName string            `json:"train_class_name,omitempty"`
	Prices         map[string]string `json:"prices"`
}

type priceDTO struct {
	TrainNo          string `json:"train_no"`
	StationTrainCode string `json:"station_train_code"`
	FromStationName  string `json:"from_station_name"`
	ToStationName    string `json:"to_station_name"`
	StartTime        string `json:"start_time"`
	ArriveTime       string `json:"arrive_time"`
	Lishi            string `json:"lishi"`
	TrainClassName   string `json:"train_class_name"`
	WzPrice          string `json:"wz_price"`
	YzPrice          string `json:"yz_price"`
	YwPrice          string `json:"yw_price"`
	RwPrice          string `json:"rw_price"`
	GrPrice          string `json:"gr_price"`
	ZePrice          string `json:"ze_price"`
	ZyPrice          string `json:"zy_price"`
	SwzPrice         string `json:"swz_price"`
	TdzPrice         string `json:"tdz_price"`
	DwPrice          string `json:"dw_price"`
}

type priceItem struct {
	QueryLeftNewDTO priceDTO `json:"queryLeftNewDTO"`
}

// DecodePriceItem decodes one price endpoint item. A non-empty
// trainCodeFilter skips items for other trains. Classes whose fare is empty
// or the "--" placeholder are omitted.
func DecodePriceItem(item []byte, trainCodeFilter string) (PriceQuote, bool) {
	var wrapped priceItem
	if err := json.Unmarshal(item, &wrapped); err != nil {
		return PriceQuote{}, false
	}
	dto := wrapped.QueryLeftNewDTO
	if trainCodeFilter != "" && dto.StationTrainCode != trainCodeFilter {
		return PriceQuote{}, false
	}
	q := PriceQuote{
		TrainNo:        dto.TrainNo,
		TrainCode:      dto.StationTrainCode,
		FromStation:    dto.FromStationName,
		ToStation:      dto.ToStationName,
		StartTime:      dto.StartTime,
		ArriveTime:     dto.ArriveTime,
		Duration:       dto.Lishi,
		TrainClassName: dto.TrainClassName,
		Prices:         map[string]string{},
	}
	for _, f := range []struct{ label, value string }{
		{"无座", dto.WzPrice},
		{"硬座", dto.YzPrice},
		{"硬卧", dto.YwPrice},
		{"软卧", dto.RwPrice},
		{"高级软卧", dto.GrPrice},
		{"二等座", dto.ZePrice},
		{"一等座", dto.ZyPrice},
		{"商务座", dto.SwzPrice},
		{"特等座", dto.TdzPrice},
		{"动卧", dto.DwPrice},
	} {
		if f.value == "" || f.value == placeholder {
			continue
		}
		q.Prices[f.label] = FormatFare(f.value)
	}
	return q, true
}

// FormatFare converts the upstream's bare integer fare strings, which carry
// an implied decimal point one digit from the right, into decimal form:
// "1500" becomes "150.0" and "5" becomes "0.5". Values containing anything
// but digits pass through unchanged.
func FormatFare(v string) string {
	if v == "" {
		return v
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return v
		}
	}
	n := strings.TrimLeft(v, "0")
	if n == "" {
		n = "0"
	}
	if len(n) == 1 {
		return "0." + n
	}
	return n[:len(n)-1] + "." + n[len(n)-1:]
}
