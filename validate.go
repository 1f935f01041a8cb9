package rail12306

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	dateRe      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	trainCodeRe = regexp.MustCompile(`^[A-Z]+\d+$`)
)

// validDate reports whether s is a well-formed calendar date (YYYY-MM-DD).
func validDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// pastDate reports whether a well-formed date lies before today.
func pastDate(s string) bool {
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return false
	}
	y, m, day := time.Now().Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.Local)
	return d.Before(today)
}

// isTrainCode distinguishes a public train code (letters then digits, e.g.
// G1) from an internal train number.
func isTrainCode(s string) bool { return trainCodeRe.MatchString(s) }
