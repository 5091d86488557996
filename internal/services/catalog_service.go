package services

import (
	"slices"
	"strings"

	"portfolio/internal/domain"
)

// SearchProducts keeps products whose name contains q, ignoring case.
// An empty query returns the full list.
func SearchProducts(products []domain.Product, q string) []domain.Product {
	if q == "" {
		return products
	}
	needle := strings.ToLower(q)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// EnrollmentSet holds enrolled course ids in enrollment order, without duplicates.
type EnrollmentSet []int

func (s EnrollmentSet) Has(id int) bool { return slices.Contains(s, id) }

// Enroll adds a known course id. Enrolling twice, or enrolling an id outside
// the catalog, returns the set unchanged.
func Enroll(s EnrollmentSet, courseID int, courses []domain.Course) EnrollmentSet {
	if s.Has(courseID) {
		return s
	}
	known := slices.ContainsFunc(courses, func(c domain.Course) bool { return c.ID == courseID })
	if !known {
		return s
	}
	next := make(EnrollmentSet, len(s), len(s)+1)
	copy(next, s)
	return append(next, courseID)
}

// Partition splits the catalog into enrolled ("My Courses") and the rest
// ("Browse"), preserving catalog order. Every course lands in exactly one.
func Partition(courses []domain.Course, s EnrollmentSet) (mine, browse []domain.Course) {
	for _, c := range courses {
		if s.Has(c.ID) {
			mine = append(mine, c)
		} else {
			browse = append(browse, c)
		}
	}
	return mine, browse
}

const (
	TabMyCourses = "my-courses"
	TabBrowse    = "browse"
)

// SelectTab switches the course tab; unknown tabs are ignored.
func SelectTab(current, tab string) string {
	if tab == TabMyCourses || tab == TabBrowse {
		return tab
	}
	return current
}
