package station

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	resty "gopkg.in/resty.v1"

	"github.com/railtools/rail12306/config"
)

// Station is one entry of the upstream station catalog.
type Station struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Pinyin      string `json:"pinyin"`
	PinyinShort string `json:"py_short"`
	Num         string `json:"num,omitempty"`
}

// Directory is the load-once station catalog. The first caller to need it
// wins the race to load (snapshot file first, network fallback); after that
// all reads are lock-free. A failed load leaves the directory empty, which
// callers see as ordinary resolution misses.
type Directory struct {
	cfg      config.StationConfig
	upstream config.UpstreamConfig

	once     sync.Once
	stations []Station
	nameIdx  map[string]string
	codeIdx  map[string]Station
}

// New creates an unloaded directory. Loading happens on first use.
func New(cfg config.StationConfig, upstream config.UpstreamConfig) *Directory {
	return &Directory{
		cfg:      cfg,
		upstream: upstream,
		nameIdx:  map[string]string{},
		codeIdx:  map[string]Station{},
	}
}

// IsTelecode reports whether token is already a 3-letter uppercase station
// code.
func IsTelecode(token string) bool {
	if len(token) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if token[i] < 'A' || token[i] > 'Z' {
			return false
		}
	}
	return true
}

// Resolve maps a free-text token (name or telecode) to a telecode. A token
// that already is a telecode is returned unchanged without consulting the
// catalog; anything else is an exact name lookup.
func (d *Directory) Resolve(token string) (string, bool) {
	if IsTelecode(token) {
		return token, true
	}
	d.ensureLoaded()
	code, ok := d.nameIdx[token]
	return code, ok
}

// ByCode returns the station for a telecode.
func (d *Directory) ByCode(code string) (Station, bool) {
	d.ensureLoaded()
	s, ok := d.codeIdx[code]
	return s, ok
}

// Search returns up to limit stations whose name, pinyin or short pinyin
// contains the query (case-insensitive), or whose telecode equals it.
// Results come in catalog insertion order with an early cutoff at limit;
// matches are not ranked by quality.
func (d *Directory) Search(query string, limit int) []Station {
	d.ensureLoaded()
	q := strings.ToLower(query)
	var matches []Station
	for _, s := range d.stations {
		if strings.Contains(s.Name, q) ||
			strings.Contains(strings.ToLower(s.Pinyin), q) ||
			strings.Contains(strings.ToLower(s.PinyinShort), q) ||
			strings.EqualFold(query, s.Code) {
			matches = append(matches, s)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// Len returns the number of loaded stations.
func (d *Directory) Len() int {
	d.ensureLoaded()
	return len(d.stations)
}

func (d *Directory) ensureLoaded() { d.once.Do(d.load) }

func (d *Directory) load() {
	if stations, err := readSnapshot(d.cfg.SnapshotPath); err == nil && len(stations) > 0 {
		d.index(stations)
		log.Infof("[station] loaded %d stations from snapshot %s", len(stations), d.cfg.SnapshotPath)
		return
	}
	stations, err := d.fetchCatalog()
	if err != nil {
		log.Errorf("[station] catalog fetch failed, directory stays empty: %v", err)
		return
	}
	d.index(stations)
	log.Infof("[station] loaded %d stations from upstream", len(stations))
	if err := writeSnapshot(d.cfg.SnapshotPath, stations); err != nil {
		log.Errorf("[station] snapshot write failed: %v", err)
	}
}

func (d *Directory) index(stations []Station) {
	d.stations = stations
	for _, s := range stations {
		// first-loaded wins on duplicate names and codes
		if _, ok := d.nameIdx[s.Name]; !ok {
			d.nameIdx[s.Name] = s.Code
		}
		if _, ok := d.codeIdx[s.Code]; !ok {
			d.codeIdx[s.Code] = s
		}
	}
}

func (d *Directory) fetchCatalog() ([]Station, error) {
	rc := resty.New()
	rc.SetTimeout(time.Duration(d.upstream.TimeoutSeconds) * time.Second)
	resp, err := rc.R().Get(d.upstream.BaseURL + d.upstream.StationAssetPath)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d fetching station catalog", resp.StatusCode())
	}
	return parseAsset(resp.String())
}
