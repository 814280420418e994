// Package hijri holds the Hijri calendar helpers used when building a daily
// schedule: a coarse Gregorian conversion for when the upstream provider is
// unreachable, month-name normalization, and day adjustment with rollover.
package hijri

import (
	"math"
	"strings"
	"time"
)

const (
	yearLength  = 354.367
	monthLength = 29.53

	// rollover treats every month as this long
	rolloverMonthDays = 30
)

// epoch is 16 July 622 in the proleptic Gregorian calendar.
var epoch = time.Date(622, time.July, 16, 0, 0, 0, 0, time.UTC)

// Months are the canonical month names, indexed 0 (Muharram) to 11.
var Months = [12]string{
	"Muharram",
	"Safar",
	"Rabi al-awwal",
	"Rabi al-thani",
	"Jumada al-awwal",
	"Jumada al-thani",
	"Rajab",
	"Sha'ban",
	"Ramadan",
	"Shawwal",
	"Dhu al-Qi'dah",
	"Dhu al-Hijjah",
}

// upstreamMonths maps Aladhan's transliterated month names to Months.
var upstreamMonths = map[string]string{
	"Muḥarram":          "Muharram",
	"Ṣafar":             "Safar",
	"Rabīʿ al-awwal":    "Rabi al-awwal",
	"Rabīʿ al-thānī":    "Rabi al-thani",
	"Jumādá al-ūlá":     "Jumada al-awwal",
	"Jumādá al-ākhirah": "Jumada al-thani",
	"Rajab":             "Rajab",
	"Shaʿbān":           "Sha'ban",
	"Ramaḍān":           "Ramadan",
	"Shawwāl":           "Shawwal",
	"Dhū al-Qaʿdah":     "Dhu al-Qi'dah",
	"Dhū al-Ḥijjah":     "Dhu al-Hijjah",
}

// Date is a Hijri date as reported upstream or approximated locally.
type Date struct {
	Day   int
	Month string
	Year  int
}

// Approximate converts a Gregorian date to a rough Hijri date using mean
// year and month lengths. It is only a stand-in for the upstream value and
// can be a day or two off.
func Approximate(t time.Time) Date {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := float64((t.Unix() - epoch.Unix()) / 86400)

	year := int(days/yearLength) + 1
	rem := floorMod(days, yearLength)
	month := min(int(rem/monthLength)+1, 12)
	day := int(floorMod(rem, monthLength)) + 1

	return Date{Day: day, Month: Months[month-1], Year: year}
}

// floorMod is a modulo whose result takes the sign of b, so dates before the
// epoch still land on a valid month and day.
func floorMod(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}

// NormalizeMonthName maps an upstream month name to its canonical spelling.
// Names it does not know are returned unchanged.
func NormalizeMonthName(raw string) string {
	if name, ok := upstreamMonths[raw]; ok {
		return name
	}
	return raw
}

// MonthIndex resolves a month name to its 0-based index. An exact match wins;
// otherwise the first month whose name contains, or is contained in, name
// (ignoring case) is used. Unknown names resolve to 0.
func MonthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i
		}
	}
	lower := strings.ToLower(name)
	for i, m := range Months {
		ml := strings.ToLower(m)
		if strings.Contains(lower, ml) || strings.Contains(ml, lower) {
			return i
		}
	}
	return 0
}

// ApplyDayAdjustment shifts day by adjustment, carrying into the previous or
// next month (and year) whenever the result leaves [1, 30].
func ApplyDayAdjustment(day, monthIndex, year, adjustment int) (int, int, int) {
	offset := day - 1 + adjustment
	carry := floorDiv(offset, rolloverMonthDays)
	day = offset - carry*rolloverMonthDays + 1

	months := monthIndex + carry
	years := floorDiv(months, 12)
	return day, months - years*12, year + years
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
