package wallclock

import (
	"strconv"
	"time"
)

// TimeSample is the hour, minute and second of one clock reading
type TimeSample struct {
	Hours   int
	Minutes int
	Seconds int
}

// SampleOf extracts the time-of-day fields of t in t's location
func SampleOf(t time.Time) TimeSample {
	return TimeSample{
		Hours:   t.Hour(),
		Minutes: t.Minute(),
		Seconds: t.Second(),
	}
}

// String formats the sample as HH:MM:SS
func (s TimeSample) String() string {
	return padZero(s.Hours) + ":" + padZero(s.Minutes) + ":" + padZero(s.Seconds)
}

// Format returns the HH:MM:SS readout for t
func Format(t time.Time) string {
	return SampleOf(t).String()
}

func padZero(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
