package rail12306

import "strings"

// searchHints is shown when a station search comes back empty.
var searchHints = []string{
	"try the full city name (e.g. 北京)",
	"try pinyin (e.g. beijing)",
	"try short pinyin (e.g. bj)",
	"check the spelling",
}

// SearchStations fuzzy-searches the station directory. limit outside 1..50
// falls back to 10.
func (p *Pipeline) SearchStations(query string, limit int) StationSearchResult {
	query = strings.TrimSpace(query)
	res := StationSearchResult{Query: query}
	if query == "" {
		res.Status = failStatus(ErrValidation, "search query must not be empty")
		return res
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	matches := p.stations.Search(query, limit)
	if len(matches) == 0 {
		res.Status = failStatus(ErrEmpty, "no matching stations")
		res.Hints = searchHints
		return res
	}
	res.Stations = matches
	res.Count = len(matches)
	res.Status = okStatus()
	return res
}
