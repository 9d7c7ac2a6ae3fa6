package generate

import (
	_ "embed"
	"encoding/json"
	"strings"
)

//go:embed prompts/portfolio_v1.txt
var portfolioPromptV1 string

// SystemInstruction is sent as the system message on every generation call.
const SystemInstruction = "Return strict JSON only. No markdown."

// promptInput mirrors InputProfile minus the profile image. The image is a
// base64 payload that is both oversized and private, so it never reaches the
// model.
type promptInput struct {
	PersonalInfo struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Location string `json:"location"`
		GitHub   string `json:"github"`
		LinkedIn string `json:"linkedIn"`
	} `json:"personalInfo"`
	Professional Professional `json:"professional"`
	Projects     Projects     `json:"projects"`
	Experience   Experience   `json:"experience"`
}

// BuildPrompt renders the generation prompt: the embedded instruction template
// with the domain guidance and a sanitized JSON echo of the input filled in.
// Pure; absent fields echo as empty strings.
func BuildPrompt(input InputProfile) string {
	guidance, _ := GuidanceFor(strings.TrimSpace(input.Professional.Domain))

	var clean promptInput
	clean.PersonalInfo.Name = input.PersonalInfo.Name
	clean.PersonalInfo.Email = input.PersonalInfo.Email
	clean.PersonalInfo.Phone = input.PersonalInfo.Phone
	clean.PersonalInfo.Location = input.PersonalInfo.Location
	clean.PersonalInfo.GitHub = input.PersonalInfo.GitHub
	clean.PersonalInfo.LinkedIn = input.PersonalInfo.LinkedIn
	clean.Professional = input.Professional
	clean.Projects = input.Projects
	clean.Experience = input.Experience

	echo, err := json.MarshalIndent(clean, "", "  ")
	if err != nil {
		// promptInput contains only strings; marshal cannot fail in practice.
		echo = []byte("{}")
	}

	replacer := strings.NewReplacer(
		"{{DOMAIN_GUIDANCE}}", guidance,
		"{{USER_INPUT}}", string(echo),
	)
	return replacer.Replace(portfolioPromptV1)
}
