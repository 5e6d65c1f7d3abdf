package models

// Catalog holds every offered section, fully loaded before the first
// scheduling call and read-only afterwards, which makes unsynchronized
// concurrent reads safe. Both the flat section list and the per-course
// candidate lists preserve source order: the engine's first-fit policy
// depends on stable iteration.
type Catalog struct {
	sections []Section
	byCourse map[string][]Section
	courses  []string
}

// NewCatalog indexes the provided sections by course, preserving order.
func NewCatalog(sections []Section) *Catalog {
	catalog := &Catalog{
		sections: sections,
		byCourse: make(map[string][]Section),
	}
	for _, section := range sections {
		if _, seen := catalog.byCourse[section.Course]; !seen {
			catalog.courses = append(catalog.courses, section.Course)
		}
		catalog.byCourse[section.Course] = append(catalog.byCourse[section.Course], section)
	}
	return catalog
}

// SectionsFor returns the candidate sections for a course in catalog order.
// The returned slice must not be mutated.
func (c *Catalog) SectionsFor(course string) []Section {
	return c.byCourse[course]
}

// Courses lists the distinct course identifiers in first-appearance order.
func (c *Catalog) Courses() []string {
	return c.courses
}

// Len returns the total number of sections.
func (c *Catalog) Len() int {
	return len(c.sections)
}
