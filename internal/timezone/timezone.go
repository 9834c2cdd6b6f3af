package timezone

import "time"

// Toda a operação roda no fuso da central; os timestamps de parede são
// gravados como recebidos, sem normalização entre eventos pareados.
const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// ParseDate interpreta "2006-01-02" no fuso da central.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location(""))
}

// ParseDateTime interpreta "2006-01-02T15:04:05" (local, sem Z).
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02T15:04:05", s, Location(""))
}
