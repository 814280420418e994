package aladhan

// Response is the subset of the Al Adhan /timings response we read.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Data   `json:"data"`
}

type Data struct {
	Timings Timings  `json:"timings"`
	Date    DateInfo `json:"date"`
}

// Timings holds start times as "HH:MM", sometimes with a zone suffix
// like "05:12 (IST)".
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type DateInfo struct {
	Readable string    `json:"readable"`
	Hijri    HijriDate `json:"hijri"`
}

type HijriDate struct {
	Date  string     `json:"date"` // "03-03-1447"
	Day   string     `json:"day"`
	Month HijriMonth `json:"month"`
	Year  string     `json:"year"`
}

type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"` // "Rabīʿ al-awwal"
	Ar     string `json:"ar"`
}
