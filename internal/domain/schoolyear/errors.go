package schoolyear

import "errors"

var (
	ErrSchoolYearNotFound = errors.New("school year not found")
	ErrNoActiveSchoolYear = errors.New("no active school year")
)
