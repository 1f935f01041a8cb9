package station

import (
	"errors"
	"os"
	"strings"
)

// Catalog records use the upstream's own positional layout, so a single field
// parser serves both the network asset and the local snapshot:
//
//	pyShort|name|code|pinyin|pyShort|num
//
// The asset separates records with '@' inside a quoted js string; the
// snapshot stores one record per line.

const minRecordFields = 5

func parseFields(rec string) (Station, bool) {
	fields := strings.Split(rec, "|")
	if len(fields) < minRecordFields {
		return Station{}, false
	}
	s := Station{
		Name:        fields[1],
		Code:        fields[2],
		Pinyin:      fields[3],
		PinyinShort: fields[4],
	}
	if len(fields) > 5 {
		s.Num = fields[5]
	}
	return s, true
}

func encodeRecord(s Station) string {
	return strings.Join([]string{s.PinyinShort, s.Name, s.Code, s.Pinyin, s.PinyinShort, s.Num}, "|")
}

// parseAsset extracts stations from the station_name.js body, which looks
// like: var station_names ='@bjb|北京北|VAP|beijingbei|bjb|0@...';
func parseAsset(body string) ([]Station, error) {
	start := strings.Index(body, "'")
	end := strings.LastIndex(body, "'")
	if start < 0 || end <= start {
		return nil, errors.New("unrecognized station asset format")
	}
	var stations []Station
	for _, rec := range strings.Split(body[start+1:end], "@") {
		if rec == "" {
			continue
		}
		if s, ok := parseFields(rec); ok {
			stations = append(stations, s)
		}
	}
	return stations, nil
}

func readSnapshot(path string) ([]Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var stations []Station
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if s, ok := parseFields(line); ok {
			stations = append(stations, s)
		}
	}
	return stations, nil
}

func writeSnapshot(path string, stations []Station) error {
	var b strings.Builder
	for _, s := range stations {
		b.WriteString(encodeRecord(s))
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
