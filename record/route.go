package record

import "encoding/json"

// missingTime is rendered when a stop has no scheduled time (terminal stops).
const missingTime = "----"

// RouteStop is one stop along a train's physical route.
type RouteStop struct {
	StationNo    string `json:"station_no"`
	StationName  string `json:"station_name"`
	ArriveTime   string `json:"arrive_time"`
	StartTime    string `json:"start_time"`
	StopoverTime string `json:"stopover_time"`
}

type routeStopRec struct {
	StationNo       string `json:"station_no"`
	FromStationNo   string `json:"from_station_no"`
	StationName     string `json:"station_name"`
	FromStationName string `json:"from_station_name"`
	ArriveTime      string `json:"arrive_time"`
	StartTime       string `json:"start_time"`
	StopoverTime    string `json:"stopover_time"`
}

// The stop list has moved around across upstream versions: a flat list under
// data, nested under middleList[].fullList, a bare fullList, or a route
// list. Shapes are probed in that order and the first non-empty one wins.
type routeData struct {
	Data       []routeStopRec `json:"data"`
	MiddleList []struct {
		FullList []routeStopRec `json:"fullList"`
	} `json:"middleList"`
	FullList []routeStopRec `json:"fullList"`
	Route    []routeStopRec `json:"route"`
}

// DecodeRouteStops decodes the route-stops payload (the object under the
// response's data key) into an ordered stop list.
func DecodeRouteStops(data []byte) ([]RouteStop, bool) {
	var rd routeData
	if err := json.Unmarshal(data, &rd); err != nil {
		return nil, false
	}
	recs := rd.Data
	if len(recs) == 0 {
		for _, m := range rd.MiddleList {
			recs = append(recs, m.FullList...)
		}
	}
	if len(recs) == 0 {
		recs = rd.FullList
	}
	if len(recs) == 0 {
		recs = rd.Route
	}
	if len(recs) == 0 {
		return nil, false
	}
	stops := make([]RouteStop, 0, len(recs))
	for _, r := range recs {
		stops = append(stops, RouteStop{
			StationNo:    firstNonEmpty(r.StationNo, r.FromStationNo),
			StationName:  firstNonEmpty(r.StationName, r.FromStationName),
			ArriveTime:   orMissing(r.ArriveTime),
			StartTime:    orMissing(r.StartTime),
			StopoverTime: orMissing(r.StopoverTime),
		})
	}
	return stops, true
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func orMissing(v string) string {
	if v == "" {
		return missingTime
	}
	return v
}
