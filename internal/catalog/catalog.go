// Package catalog holds the static course records the launcher displays.
// Read-only: there is no write path to the catalog.
package catalog

type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       string `json:"level"` // beginner|intermediate|advanced
	ModelID     string `json:"model_id,omitempty"`
}

var courses = []Course{
	{
		ID:          "neuroanatomy",
		Title:       "Neuroanatomy",
		Description: "Structure of the brain, spinal cord and cranial nerves.",
		Level:       "intermediate",
		ModelID:     "brain-v2",
	},
	{
		ID:          "musculoskeletal",
		Title:       "Musculoskeletal System",
		Description: "Bones, joints and skeletal muscle groups.",
		Level:       "beginner",
		ModelID:     "skeleton-v1",
	},
	{
		ID:          "cardiovascular",
		Title:       "Cardiovascular System",
		Description: "Heart chambers, valves and the great vessels.",
		Level:       "intermediate",
		ModelID:     "heart-v1",
	},
	{
		ID:          "histology",
		Title:       "Histology",
		Description: "Tissue types and microscopic anatomy.",
		Level:       "advanced",
	},
}

// List returns all courses in display order.
func List() []Course {
	out := make([]Course, len(courses))
	copy(out, courses)
	return out
}

// Get looks a course up by ID.
func Get(id string) (Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}
