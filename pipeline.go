package rail12306

import (
	"github.com/railtools/rail12306/config"
	"github.com/railtools/rail12306/railapi"
	"github.com/railtools/rail12306/station"
)

// maxSuggestions caps the fuzzy matches attached per unresolved station
// token.
const maxSuggestions = 3

// Fetcher is the transport the pipeline queries through. *railapi.Client is
// the production implementation.
type Fetcher interface {
	// WarmUp seeds the upstream session, best-effort.
	WarmUp()
	// FetchJSON performs warm-up plus query with the full retry policy.
	FetchJSON(queryPath string, params map[string]string, out interface{}) error
	// FetchJSONOnce performs a single query attempt with no warm-up and no
	// retry; callers driving their own sequences (pagination) use it.
	FetchJSONOnce(queryPath string, params map[string]string, out interface{}) error
}

// Pipeline orchestrates the query operations: resolve stations, build the
// request, fetch with retry, decode records, assemble the normalized result.
// Every operation returns a result value whose embedded Status reports the
// outcome; no operation returns an error or panics.
//
// A Pipeline is reentrant: concurrent calls are safe, sharing only the
// load-once station directory.
type Pipeline struct {
	cfg      config.AppConfig
	stations *station.Directory
	fetcher  Fetcher
}

// New assembles a pipeline from its collaborators.
func New(cfg config.AppConfig, dir *station.Directory, fetcher Fetcher) *Pipeline {
	return &Pipeline{cfg: cfg, stations: dir, fetcher: fetcher}
}

// NewFromConfig assembles a production pipeline: directory and HTTP client
// built from cfg.
func NewFromConfig(cfg config.AppConfig) *Pipeline {
	return New(cfg, station.New(cfg.Station, cfg.Upstream), railapi.NewClient(cfg.Upstream))
}

// resolveEndpoints resolves both station tokens to telecodes. When either
// side fails, it returns fuzzy-search suggestions for each failed side
// instead of codes.
func (p *Pipeline) resolveEndpoints(from, to string) (fromCode, toCode string, sugg []SideSuggestions) {
	fromCode, okFrom := p.stations.Resolve(from)
	toCode, okTo := p.stations.Resolve(to)
	if okFrom && okTo {
		return fromCode, toCode, nil
	}
	if !okFrom {
		sugg = append(sugg, SideSuggestions{Side: "from", Input: from, Matches: p.stations.Search(from, maxSuggestions)})
	}
	if !okTo {
		sugg = append(sugg, SideSuggestions{Side: "to", Input: to, Matches: p.stations.Search(to, maxSuggestions)})
	}
	return "", "", sugg
}

// displayName maps a telecode back to a station name for display, falling
// back to the code itself for stations missing from the directory.
func (p *Pipeline) displayName(code string) string {
	if s, ok := p.stations.ByCode(code); ok {
		return s.Name
	}
	return code
}

func listingParams(date, fromCode, toCode, purpose string) map[string]string {
	return map[string]string{
		"leftTicketDTO.train_date":   date,
		"leftTicketDTO.from_station": fromCode,
		"leftTicketDTO.to_station":   toCode,
		"purpose_codes":              purpose,
	}
}
