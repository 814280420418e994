package prayer

// Name identifies one of the five daily prayers.
type Name string

const (
	Fajr    Name = "Fajr"
	Dhuhr   Name = "Dhuhr"
	Asr     Name = "Asr"
	Maghrib Name = "Maghrib"
	Isha    Name = "Isha"
)

// Names lists the prayers in the order they occur. A prayer ends when the
// next one in this list starts.
var Names = []Name{Fajr, Dhuhr, Asr, Maghrib, Isha}

// LastEndTime closes the window of the final prayer of the day.
const LastEndTime = "23:59"

// Timings maps each prayer to a 24-hour "HH:MM" start time.
type Timings map[Name]string

// FallbackTimings returns the built-in table used when no upstream
// timings are available.
func FallbackTimings() Timings {
	return Timings{
		Fajr:    "05:30",
		Dhuhr:   "12:30",
		Asr:     "16:00",
		Maghrib: "18:30",
		Isha:    "20:00",
	}
}

// DeriveEndTimes returns each prayer's end time: the start of the next
// prayer, or LastEndTime for Isha.
func DeriveEndTimes(start Timings) Timings {
	end := make(Timings, len(Names))
	for i, name := range Names {
		if i < len(Names)-1 {
			end[name] = start[Names[i+1]]
		} else {
			end[name] = LastEndTime
		}
	}
	return end
}

// Validate checks that every prayer has a parseable start time.
func (t Timings) Validate() error {
	for _, name := range Names {
		if _, err := ToMinutes(t[name]); err != nil {
			return err
		}
	}
	return nil
}
