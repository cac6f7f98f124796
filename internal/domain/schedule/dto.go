package schedule

import (
	"fmt"

	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
)

// Validate checks a schedule after Normalize: weekdays exactly 1..7, times in
// HH:MM:SS and minute fields within range.
func (s WeeklySchedule) Validate() error {
	var errs validator.ValidationErrors

	seen := make(map[int]bool, 7)
	for i, d := range s.Days {
		field := fmt.Sprintf("dias[%d]", i)
		if d.Weekday < 1 || d.Weekday > 7 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".dia_semana",
				Message: "dia_semana must be between 1 and 7",
			})
		} else if seen[d.Weekday] {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".dia_semana",
				Message: "dia_semana is duplicated",
			})
		}
		seen[d.Weekday] = true

		if !validator.IsValidClock(d.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".hora_inicio",
				Message: "hora_inicio must have format HH:MM:SS",
			})
		}
		if !validator.IsValidClock(d.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".hora_fin",
				Message: "hora_fin must have format HH:MM:SS",
			})
		}
		if d.TargetMinutes < 0 || d.TargetMinutes > MaxTargetMinutes {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".minutos_objetivo",
				Message: fmt.Sprintf("minutos_objetivo must be between 0 and %d", MaxTargetMinutes),
			})
		}
		if d.ToleranceMinutes != nil && (*d.ToleranceMinutes < 0 || *d.ToleranceMinutes > MaxToleranceMinutes) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".tolerancia_minutos",
				Message: fmt.Sprintf("tolerancia_minutos must be between 0 and %d", MaxToleranceMinutes),
			})
		}
	}

	if len(s.Days) != 7 || len(seen) != 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "dias",
			Message: "dias must contain each weekday 1..7 exactly once",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
