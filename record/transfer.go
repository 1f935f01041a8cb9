package record

import "encoding/json"

// TransferSegment is one single-train leg of a transfer itinerary. Seats is
// keyed by displayed seat-class label and holds only offered classes.
type TransferSegment struct {
	TrainCode   string            `json:"train_code"`
	FromStation string            `json:"from_station"`
	ToStation   string            `json:"to_station"`
	StartTime   string            `json:"start_time"`
	ArriveTime  string            `json:"arrive_time"`
	Duration    string            `json:"duration"`
	Seats       map[string]string `json:"seats"`
}

// TransferItinerary is one multi-leg journey through a middle station.
type TransferItinerary struct {
	MiddleStation string            `json:"middle_station"`
	WaitTime      string            `json:"wait_time"`
	TotalDuration string            `json:"total_duration"`
	Segments      []TransferSegment `json:"segments"`
}

type transferLeg struct {
	StationTrainCode string `json:"station_train_code"`
	FromStationName  string `json:"from_station_name"`
	ToStationName    string `json:"to_station_name"`
	StartTime        string `json:"start_time"`
	ArriveTime       string `json:"arrive_time"`
	Lishi            string `json:"lishi"`
	SwzNum           string `json:"swz_num"`
	TzNum            string `json:"tz_num"`
	ZyNum            string `json:"zy_num"`
	ZeNum            string `json:"ze_num"`
	GrNum            string `json:"gr_num"`
	RwNum            string `json:"rw_num"`
	RzNum            string `json:"rz_num"`
	YwNum            string `json:"yw_num"`
	YzNum            string `json:"yz_num"`
	WzNum            string `json:"wz_num"`
}

// legs live under fullList or trainList depending on the upstream variant
type transferItem struct {
	FullList          []transferLeg `json:"fullList"`
	TrainList         []transferLeg `json:"trainList"`
	MiddleStationName string        `json:"middle_station_name"`
	WaitTime          string        `json:"wait_time"`
	AllLishi          string        `json:"all_lishi"`
}

// DecodeTransferItinerary decodes one itinerary item from the transfer
// search. Itineraries with fewer than two legs, or that fail field
// extraction, decode to no match so a bad item never aborts the batch.
func DecodeTransferItinerary(item []byte) (TransferItinerary, bool) {
	var ti transferItem
	if err := json.Unmarshal(item, &ti); err != nil {
		return TransferItinerary{}, false
	}
	legs := ti.FullList
	if len(legs) == 0 {
		legs = ti.TrainList
	}
	if len(legs) < 2 {
		return TransferItinerary{}, false
	}
	out := TransferItinerary{
		MiddleStation: ti.MiddleStationName,
		WaitTime:      ti.WaitTime,
		TotalDuration: ti.AllLishi,
	}
	if out.MiddleStation == "" {
		out.MiddleStation = legs[0].ToStationName
	}
	for _, leg := range legs {
		seg := TransferSegment{
			TrainCode:   leg.StationTrainCode,
			FromStation: leg.FromStationName,
			ToStation:   leg.ToStationName,
			StartTime:   leg.StartTime,
			ArriveTime:  leg.ArriveTime,
			Duration:    leg.Lishi,
			Seats:       map[string]string{},
		}
		for _, f := range []struct{ label, value string }{
			{"商务座", leg.SwzNum},
			{"特等座", leg.TzNum},
			{"一等座", leg.ZyNum},
			{"二等座", leg.ZeNum},
			{"高级软卧", leg.GrNum},
			{"软卧", leg.RwNum},
			{"一等卧", leg.RzNum},
			{"硬卧", leg.YwNum},
			{"硬座", leg.YzNum},
			{"无座", leg.WzNum},
		} {
			if f.value != "" && f.value != placeholder {
				seg.Seats[f.label] = f.value
			}
		}
		out.Segments = append(out.Segments, seg)
	}
	return out, true
}
