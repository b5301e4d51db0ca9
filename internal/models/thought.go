package models

// Emotion is a named feeling with a 0-100 intensity. The store does not
// clamp intensities; range checks live in the validation package.
type Emotion struct {
	Name      string `json:"name"`
	Intensity int    `json:"intensity"`
}

// ThoughtRecord is a single CBT thought record: the situation, the
// automatic thoughts and the emotions they produced, the distortions
// identified in them, and the rational response with its outcome.
type ThoughtRecord struct {
	ID                string    `json:"id"`
	CreatedAt         string    `json:"createdAt"` // RFC3339
	Date              string    `json:"date"`      // YYYY-MM-DD, user-assigned
	Situation         string    `json:"situation"`
	Emotions          []Emotion `json:"emotions"`
	AutomaticThoughts string    `json:"automaticThoughts"`
	Distortions       []int     `json:"distortions"` // distortion ids, 1-10
	RationalResponse  string    `json:"rationalResponse"`
	OutcomeEmotions   []Emotion `json:"outcomeEmotions"`
}

// CognitiveDistortion is one entry of the fixed distortion catalog.
type CognitiveDistortion struct {
	ID          int
	Name        string
	ShortName   string
	Description string
}

// CognitiveDistortions is the fixed catalog of the ten classic cognitive
// distortions. Thought records reference entries by ID.
var CognitiveDistortions = []CognitiveDistortion{
	{
		ID:          1,
		Name:        "All-or-nothing thinking",
		ShortName:   "All-or-nothing",
		Description: "You see things in black-and-white categories. If your performance falls short of perfect, you see yourself as a total failure.",
	},
	{
		ID:          2,
		Name:        "Overgeneralization",
		ShortName:   "Overgeneralization",
		Description: "You see a single negative event as a never-ending pattern of defeat.",
	},
	{
		ID:          3,
		Name:        "Mental filter",
		ShortName:   "Mental filter",
		Description: "You pick out a single negative detail and dwell on it exclusively so that your vision of all reality becomes darkened.",
	},
	{
		ID:          4,
		Name:        "Disqualifying the positive",
		ShortName:   "Disqualifying positive",
		Description: "You reject positive experiences by insisting they 'don't count' for some reason or other.",
	},
	{
		ID:          5,
		Name:        "Jumping to conclusions",
		ShortName:   "Jumping to conclusions",
		Description: "You make a negative interpretation even though there are no definite facts that convincingly support your conclusion.",
	},
	{
		ID:          6,
		Name:        "Magnification or minimization",
		ShortName:   "Magnification/minimization",
		Description: "You exaggerate the importance of things or inappropriately shrink things until they appear tiny.",
	},
	{
		ID:          7,
		Name:        "Emotional reasoning",
		ShortName:   "Emotional reasoning",
		Description: "You assume that your negative emotions necessarily reflect the way things really are: 'I feel it, therefore it must be true.'",
	},
	{
		ID:          8,
		Name:        "Should statements",
		ShortName:   "Should statements",
		Description: "You try to motivate yourself with shoulds and shouldn'ts, as if you had to be whipped and punished before you could be expected to do anything.",
	},
	{
		ID:          9,
		Name:        "Labeling and mislabeling",
		ShortName:   "Labeling",
		Description: "Instead of describing your error, you attach a negative label to yourself: 'I'm a loser.'",
	},
	{
		ID:          10,
		Name:        "Personalization",
		ShortName:   "Personalization",
		Description: "You see yourself as the cause of some negative external event which in fact you were not primarily responsible for.",
	},
}

// DistortionByID returns the catalog entry for the given id, or false if the
// id is not part of the catalog.
func DistortionByID(id int) (CognitiveDistortion, bool) {
	for _, d := range CognitiveDistortions {
		if d.ID == id {
			return d, true
		}
	}
	return CognitiveDistortion{}, false
}
