// Package services contains stateless domain services for the wardrobe
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"time"

	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

// SeasonFor maps a latitude and calendar month to a wearing season.
//
// Latitude ≥ 0 is treated as the northern hemisphere (the equator counts as
// northern): Dec–Feb winter, Mar–May spring, Jun–Aug summer, Sep–Nov fall.
// The southern hemisphere gets the opposite label for the same months.
func SeasonFor(latitude float64, month time.Month) models.Season {
	northern := latitude >= 0

	switch month {
	case time.December, time.January, time.February:
		if northern {
			return models.SeasonWinter
		}
		return models.SeasonSummer
	case time.March, time.April, time.May:
		if northern {
			return models.SeasonSpring
		}
		return models.SeasonFall
	case time.June, time.July, time.August:
		if northern {
			return models.SeasonSummer
		}
		return models.SeasonWinter
	default: // September, October, November
		if northern {
			return models.SeasonFall
		}
		return models.SeasonSpring
	}
}
