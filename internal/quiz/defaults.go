package quiz

// Seed content for first-time visitors. Defaults are returned transiently by
// the series store and never written back: a course only gets a persisted
// series list once the user saves one.

const DefaultSeriesID = "default"

func defaultSeriesFor(courseID string) ([]Series, bool) {
	switch courseID {
	case "neuroanatomy":
		return []Series{neuroanatomyDefault()}, true
	case "musculoskeletal":
		return []Series{musculoskeletalDefault()}, true
	case "cardiovascular":
		return []Series{cardiovascularDefault()}, true
	default:
		return nil, false
	}
}

func neuroanatomyDefault() Series {
	return Series{
		ID:       DefaultSeriesID,
		Name:     "Brain basics",
		CourseID: "neuroanatomy",
		ImageQuestions: []ImageQuestion{
			{
				ID:       1,
				Question: "Which image shows the cerebellum?",
				Options: []ImageOption{
					{Image: "/img/neuro/cerebellum.png", Alt: "cerebellum", IsCorrect: true},
					{Image: "/img/neuro/pons.png", Alt: "pons"},
					{Image: "/img/neuro/medulla.png", Alt: "medulla oblongata"},
					{Image: "/img/neuro/thalamus.png", Alt: "thalamus"},
				},
			},
			{
				ID:       2,
				Question: "Which image shows the corpus callosum?",
				Options: []ImageOption{
					{Image: "/img/neuro/fornix.png", Alt: "fornix"},
					{Image: "/img/neuro/corpus-callosum.png", Alt: "corpus callosum", IsCorrect: true},
					{Image: "/img/neuro/hippocampus.png", Alt: "hippocampus"},
					{Image: "/img/neuro/amygdala.png", Alt: "amygdala"},
				},
			},
		},
		TextQuestions: []TextQuestion{
			{
				ID:       1,
				Question: "Which lobe of the cerebrum processes visual input?",
				Options: []TextOption{
					{Text: "Frontal lobe"},
					{Text: "Parietal lobe"},
					{Text: "Occipital lobe", IsCorrect: true},
					{Text: "Temporal lobe"},
				},
			},
			{
				ID:       2,
				Question: "How many pairs of cranial nerves are there?",
				Options: []TextOption{
					{Text: "10"},
					{Text: "12", IsCorrect: true},
					{Text: "24"},
					{Text: "31"},
				},
			},
		},
	}
}

func musculoskeletalDefault() Series {
	return Series{
		ID:       DefaultSeriesID,
		Name:     "Bones and joints",
		CourseID: "musculoskeletal",
		ImageQuestions: []ImageQuestion{
			{
				ID:       1,
				Question: "Which image shows the femur?",
				Options: []ImageOption{
					{Image: "/img/msk/femur.png", Alt: "femur", IsCorrect: true},
					{Image: "/img/msk/tibia.png", Alt: "tibia"},
					{Image: "/img/msk/fibula.png", Alt: "fibula"},
					{Image: "/img/msk/humerus.png", Alt: "humerus"},
				},
			},
		},
		TextQuestions: []TextQuestion{
			{
				ID:       1,
				Question: "Which joint type allows rotation around a single axis?",
				Options: []TextOption{
					{Text: "Ball and socket"},
					{Text: "Pivot", IsCorrect: true},
					{Text: "Saddle"},
					{Text: "Plane"},
				},
			},
			{
				ID:       2,
				Question: "The patella is an example of which bone class?",
				Options: []TextOption{
					{Text: "Long bone"},
					{Text: "Flat bone"},
					{Text: "Sesamoid bone", IsCorrect: true},
					{Text: "Irregular bone"},
				},
			},
		},
	}
}

func cardiovascularDefault() Series {
	return Series{
		ID:       DefaultSeriesID,
		Name:     "Heart anatomy",
		CourseID: "cardiovascular",
		ImageQuestions: []ImageQuestion{
			{
				ID:       1,
				Question: "Which image shows the left ventricle?",
				Options: []ImageOption{
					{Image: "/img/cardio/right-atrium.png", Alt: "right atrium"},
					{Image: "/img/cardio/left-ventricle.png", Alt: "left ventricle", IsCorrect: true},
					{Image: "/img/cardio/aortic-arch.png", Alt: "aortic arch"},
					{Image: "/img/cardio/right-ventricle.png", Alt: "right ventricle"},
				},
			},
		},
		TextQuestions: []TextQuestion{
			{
				ID:       1,
				Question: "Which valve sits between the left atrium and left ventricle?",
				Options: []TextOption{
					{Text: "Tricuspid valve"},
					{Text: "Pulmonary valve"},
					{Text: "Mitral valve", IsCorrect: true},
					{Text: "Aortic valve"},
				},
			},
		},
	}
}
