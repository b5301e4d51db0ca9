package models

// DepressionScores holds the 25 named sub-scores of the weekly symptom
// checklist, each 0-4.
type DepressionScores struct {
	FeelingSad           int `json:"feelingSad"`
	FeelingUnhappy       int `json:"feelingUnhappy"`
	CryingSpells         int `json:"cryingSpells"`
	FeelingDiscouraged   int `json:"feelingDiscouraged"`
	FeelingHopeless      int `json:"feelingHopeless"`
	LowSelfEsteem        int `json:"lowSelfEsteem"`
	FeelingWorthless     int `json:"feelingWorthless"`
	GuiltOrShame         int `json:"guiltOrShame"`
	SelfCriticism        int `json:"selfCriticism"`
	DifficultyDecisions  int `json:"difficultyDecisions"`
	LossOfInterestPeople int `json:"lossOfInterestPeople"`
	Loneliness           int `json:"loneliness"`
	LessTimeSocial       int `json:"lessTimeSocial"`
	LossOfMotivation     int `json:"lossOfMotivation"`
	LossOfInterestWork   int `json:"lossOfInterestWork"`
	AvoidingWork         int `json:"avoidingWork"`
	LossOfPleasure       int `json:"lossOfPleasure"`
	LossOfSexDrive       int `json:"lossOfSexDrive"`
	PoorAppetite         int `json:"poorAppetite"`
	Overeating           int `json:"overeating"`
	SleepProblems        int `json:"sleepProblems"`
	Fatigue              int `json:"fatigue"`
	ConcernsHealth       int `json:"concernsHealth"`
	SuicidalThoughts     int `json:"suicidalThoughts"`
	WishingDead          int `json:"wishingDead"`
}

// Total sums the 25 sub-scores (0-100 inclusive).
func (s DepressionScores) Total() int {
	return s.FeelingSad + s.FeelingUnhappy + s.CryingSpells + s.FeelingDiscouraged +
		s.FeelingHopeless + s.LowSelfEsteem + s.FeelingWorthless + s.GuiltOrShame +
		s.SelfCriticism + s.DifficultyDecisions + s.LossOfInterestPeople + s.Loneliness +
		s.LessTimeSocial + s.LossOfMotivation + s.LossOfInterestWork + s.AvoidingWork +
		s.LossOfPleasure + s.LossOfSexDrive + s.PoorAppetite + s.Overeating +
		s.SleepProblems + s.Fatigue + s.ConcernsHealth + s.SuicidalThoughts + s.WishingDead
}

// Items returns the sub-scores keyed by their JSON field names.
func (s DepressionScores) Items() map[string]int {
	return map[string]int{
		"feelingSad":           s.FeelingSad,
		"feelingUnhappy":       s.FeelingUnhappy,
		"cryingSpells":         s.CryingSpells,
		"feelingDiscouraged":   s.FeelingDiscouraged,
		"feelingHopeless":      s.FeelingHopeless,
		"lowSelfEsteem":        s.LowSelfEsteem,
		"feelingWorthless":     s.FeelingWorthless,
		"guiltOrShame":         s.GuiltOrShame,
		"selfCriticism":        s.SelfCriticism,
		"difficultyDecisions":  s.DifficultyDecisions,
		"lossOfInterestPeople": s.LossOfInterestPeople,
		"loneliness":           s.Loneliness,
		"lessTimeSocial":       s.LessTimeSocial,
		"lossOfMotivation":     s.LossOfMotivation,
		"lossOfInterestWork":   s.LossOfInterestWork,
		"avoidingWork":         s.AvoidingWork,
		"lossOfPleasure":       s.LossOfPleasure,
		"lossOfSexDrive":       s.LossOfSexDrive,
		"poorAppetite":         s.PoorAppetite,
		"overeating":           s.Overeating,
		"sleepProblems":        s.SleepProblems,
		"fatigue":              s.Fatigue,
		"concernsHealth":       s.ConcernsHealth,
		"suicidalThoughts":     s.SuicidalThoughts,
		"wishingDead":          s.WishingDead,
	}
}

// SetItem assigns the sub-score named by its JSON field name. Returns
// false for an unknown key.
func (s *DepressionScores) SetItem(key string, value int) bool {
	switch key {
	case "feelingSad":
		s.FeelingSad = value
	case "feelingUnhappy":
		s.FeelingUnhappy = value
	case "cryingSpells":
		s.CryingSpells = value
	case "feelingDiscouraged":
		s.FeelingDiscouraged = value
	case "feelingHopeless":
		s.FeelingHopeless = value
	case "lowSelfEsteem":
		s.LowSelfEsteem = value
	case "feelingWorthless":
		s.FeelingWorthless = value
	case "guiltOrShame":
		s.GuiltOrShame = value
	case "selfCriticism":
		s.SelfCriticism = value
	case "difficultyDecisions":
		s.DifficultyDecisions = value
	case "lossOfInterestPeople":
		s.LossOfInterestPeople = value
	case "loneliness":
		s.Loneliness = value
	case "lessTimeSocial":
		s.LessTimeSocial = value
	case "lossOfMotivation":
		s.LossOfMotivation = value
	case "lossOfInterestWork":
		s.LossOfInterestWork = value
	case "avoidingWork":
		s.AvoidingWork = value
	case "lossOfPleasure":
		s.LossOfPleasure = value
	case "lossOfSexDrive":
		s.LossOfSexDrive = value
	case "poorAppetite":
		s.PoorAppetite = value
	case "overeating":
		s.Overeating = value
	case "sleepProblems":
		s.SleepProblems = value
	case "fatigue":
		s.Fatigue = value
	case "concernsHealth":
		s.ConcernsHealth = value
	case "suicidalThoughts":
		s.SuicidalThoughts = value
	case "wishingDead":
		s.WishingDead = value
	default:
		return false
	}
	return true
}

// DepressionChecklistEntry is one completed checklist. Total must equal
// Scores.Total(); the store does not re-validate this, writers keep it
// consistent.
type DepressionChecklistEntry struct {
	ID     string           `json:"id"`
	Date   string           `json:"date"` // YYYY-MM-DD, user-assigned
	Scores DepressionScores `json:"scores"`
	Total  int              `json:"total"`
}

// ChecklistItem describes one prompt of the checklist form.
type ChecklistItem struct {
	Key      string
	Label    string
	Category string
}

// ChecklistItems lists the 25 checklist prompts in presentation order.
// Keys match the DepressionScores JSON field names.
var ChecklistItems = []ChecklistItem{
	{Key: "feelingSad", Label: "Feeling sad or down in the dumps", Category: "Thoughts and Feelings"},
	{Key: "feelingUnhappy", Label: "Feeling unhappy or blue", Category: "Thoughts and Feelings"},
	{Key: "cryingSpells", Label: "Crying spells or tearfulness", Category: "Thoughts and Feelings"},
	{Key: "feelingDiscouraged", Label: "Feeling discouraged", Category: "Thoughts and Feelings"},
	{Key: "feelingHopeless", Label: "Feeling hopeless", Category: "Thoughts and Feelings"},
	{Key: "lowSelfEsteem", Label: "Low self-esteem", Category: "Thoughts and Feelings"},
	{Key: "feelingWorthless", Label: "Feeling worthless or inadequate", Category: "Thoughts and Feelings"},
	{Key: "guiltOrShame", Label: "Guilt or shame", Category: "Thoughts and Feelings"},
	{Key: "selfCriticism", Label: "Criticizing yourself or blaming yourself", Category: "Thoughts and Feelings"},
	{Key: "difficultyDecisions", Label: "Difficulty making decisions", Category: "Thoughts and Feelings"},
	{Key: "lossOfInterestPeople", Label: "Loss of interest in family, friends or colleagues", Category: "Activities and Personal Relationships"},
	{Key: "loneliness", Label: "Loneliness", Category: "Activities and Personal Relationships"},
	{Key: "lessTimeSocial", Label: "Spending less time with family or friends", Category: "Activities and Personal Relationships"},
	{Key: "lossOfMotivation", Label: "Loss of motivation", Category: "Activities and Personal Relationships"},
	{Key: "lossOfInterestWork", Label: "Loss of interest in work or other activities", Category: "Activities and Personal Relationships"},
	{Key: "avoidingWork", Label: "Avoiding work or other activities", Category: "Activities and Personal Relationships"},
	{Key: "lossOfPleasure", Label: "Loss of pleasure or satisfaction in life", Category: "Activities and Personal Relationships"},
	{Key: "lossOfSexDrive", Label: "Decreased or loss of sex drive", Category: "Physical Symptoms"},
	{Key: "poorAppetite", Label: "Poor appetite or decreased eating", Category: "Physical Symptoms"},
	{Key: "overeating", Label: "Increased appetite or overeating", Category: "Physical Symptoms"},
	{Key: "sleepProblems", Label: "Sleep problems (too much or too little)", Category: "Physical Symptoms"},
	{Key: "fatigue", Label: "Feeling tired or fatigued", Category: "Physical Symptoms"},
	{Key: "concernsHealth", Label: "Concerns about health", Category: "Physical Symptoms"},
	{Key: "suicidalThoughts", Label: "Suicidal thoughts or urges", Category: "Suicidal Urges"},
	{Key: "wishingDead", Label: "Wishing you were dead", Category: "Suicidal Urges"},
}

// DepressionLevel maps a total score to its severity description.
func DepressionLevel(total int) string {
	switch {
	case total <= 5:
		return "No depression"
	case total <= 10:
		return "Normal but unhappy"
	case total <= 15:
		return "Mild depression"
	case total <= 20:
		return "Borderline depression"
	case total <= 25:
		return "Mild depression"
	case total <= 50:
		return "Moderate depression"
	case total <= 75:
		return "Severe depression"
	default:
		return "Extreme depression"
	}
}
