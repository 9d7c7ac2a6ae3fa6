package generate

// PersonalInfo carries the identity fields of the builder form.
// ProfileImage may hold a large base64 payload; it must never reach the model.
type PersonalInfo struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	GitHub       string `json:"github"`
	LinkedIn     string `json:"linkedIn"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Professional carries the free-text professional fields of the builder form.
type Professional struct {
	Skills          string `json:"skills"`
	ExperienceYears string `json:"experienceYears"`
	Summary         string `json:"summary"`
	Domain          string `json:"domain"`
}

// Projects holds up to two free-text project descriptions.
type Projects struct {
	Project1 string `json:"project1"`
	Project2 string `json:"project2"`
}

// Experience holds up to two free-text experience descriptions.
type Experience struct {
	Exp1 string `json:"exp1"`
	Exp2 string `json:"exp2"`
}

// InputProfile is the raw form record sent by the builder UI. It is never
// persisted; absent fields decode to empty strings.
type InputProfile struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Professional Professional `json:"professional"`
	Projects     Projects     `json:"projects"`
	Experience   Experience   `json:"experience"`
}

// ExperienceEntry is one structured experience item produced by the model.
type ExperienceEntry struct {
	Company  string   `json:"company"`
	Role     string   `json:"role"`
	Duration string   `json:"duration"`
	Points   []string `json:"points"`
}

// ProjectEntry is one structured project item produced by the model.
type ProjectEntry struct {
	Name        string   `json:"name"`
	Tech        []string `json:"tech"`
	Description string   `json:"description"`
}

// GeneratedPortfolio is the structured content produced per generation request.
// Regeneration replaces it wholesale; missing keys are tolerated and render as
// empty collections downstream.
type GeneratedPortfolio struct {
	Summary    string            `json:"summary"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
}
