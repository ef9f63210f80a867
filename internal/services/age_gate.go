package services

import "time"

// MinimumAge is the minimum age in whole years required to register.
const MinimumAge = 21

// AgeInYears computes age in whole years as of asOf: the year difference,
// minus one if the birthday has not yet occurred in asOf's year.
func AgeInYears(dateOfBirth, asOf time.Time) int {
	age := asOf.Year() - dateOfBirth.Year()
	if asOf.Month() < dateOfBirth.Month() ||
		(asOf.Month() == dateOfBirth.Month() && asOf.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

// IsOfLegalAge reports whether someone born on dateOfBirth is at least
// MinimumAge years old as of asOf.
func IsOfLegalAge(dateOfBirth, asOf time.Time) bool {
	return AgeInYears(dateOfBirth, asOf) >= MinimumAge
}
