package generate

// DomainOther is the fallback guidance key for unrecognized domain tags.
const DomainOther = "other"

// domainGuidance maps the closed set of domain tags to the guidance text
// injected into the generation prompt. Extend by adding entries; unknown tags
// always resolve to DomainOther.
var domainGuidance = map[string]string{
	"software_developer": `DOMAIN: Software Development / Engineering
- Focus on technical skills, programming languages, frameworks, and tools
- Highlight code quality, system design, and problem-solving abilities
- Use technical action verbs: Architected, Implemented, Debugged, Refactored, Deployed, Optimized`,

	"data_science": `DOMAIN: Data Science / Machine Learning
- Focus on ML/AI frameworks, statistical analysis, and data processing skills
- Highlight model accuracy, data pipeline efficiency, and insights generated
- Use action verbs: Analyzed, Modeled, Predicted, Trained, Validated, Visualized`,

	"medical": `DOMAIN: Medical / Healthcare Professional
- Focus on clinical skills, patient care, certifications, and specializations
- Highlight patient outcomes, care quality metrics, and procedural expertise
- Use action verbs: Diagnosed, Treated, Administered, Coordinated, Assessed, Monitored`,

	"marketing": `DOMAIN: Marketing / Digital Marketing
- Focus on campaign management, analytics tools, and creative skills
- Highlight ROI, conversion rates, engagement metrics, and brand growth
- Use action verbs: Launched, Increased, Targeted, Optimized, Branded, Converted`,

	"finance": `DOMAIN: Finance / Accounting
- Focus on financial analysis, reporting, compliance, and software proficiency
- Highlight cost savings, revenue impact, audit success, and accuracy metrics
- Use action verbs: Analyzed, Forecasted, Audited, Reconciled, Budgeted, Reported`,

	"design": `DOMAIN: UI/UX Design / Graphic Design
- Focus on design tools, user research, prototyping, and visual skills
- Highlight user satisfaction scores, conversion improvements, and design systems
- Use action verbs: Designed, Prototyped, Researched, Iterated, Created, Collaborated`,

	"education": `DOMAIN: Education / Teaching
- Focus on curriculum development, teaching methodologies, and subject expertise
- Highlight student outcomes, engagement rates, and program improvements
- Use action verbs: Taught, Mentored, Developed, Assessed, Facilitated, Inspired`,

	"legal": `DOMAIN: Legal / Law
- Focus on legal research, case management, and specialization areas
- Highlight case outcomes, client satisfaction, and regulatory compliance
- Use action verbs: Represented, Negotiated, Drafted, Litigated, Advised, Researched`,

	"sales": `DOMAIN: Sales / Business Development
- Focus on sales techniques, CRM tools, and relationship management
- Highlight revenue generated, deals closed, and quota achievement
- Use action verbs: Closed, Generated, Exceeded, Prospected, Negotiated, Retained`,

	"hr": `DOMAIN: Human Resources
- Focus on recruitment, employee relations, HRIS systems, and policy development
- Highlight hiring metrics, retention rates, and program implementations
- Use action verbs: Recruited, Onboarded, Implemented, Mediated, Developed, Streamlined`,

	"engineering": `DOMAIN: Engineering (Non-Software)
- Focus on technical specifications, project management, and industry standards
- Highlight project completions, efficiency improvements, and safety records
- Use action verbs: Engineered, Designed, Tested, Fabricated, Improved, Supervised`,

	"content": `DOMAIN: Content Writing / Journalism
- Focus on writing skills, content strategy, and editorial experience
- Highlight readership growth, engagement metrics, and publication achievements
- Use action verbs: Wrote, Published, Edited, Researched, Interviewed, Increased`,

	"consulting": `DOMAIN: Consulting / Management
- Focus on strategic planning, problem-solving, and client management
- Highlight client outcomes, project deliveries, and business impact
- Use action verbs: Advised, Strategized, Delivered, Transformed, Recommended, Analyzed`,

	"research": `DOMAIN: Research / Academia
- Focus on research methodologies, publications, and academic achievements
- Highlight citations, grants received, and research impact
- Use action verbs: Researched, Published, Presented, Collaborated, Discovered, Analyzed`,

	DomainOther: `DOMAIN: General Professional
- Focus on transferable skills, achievements, and professional growth
- Highlight measurable outcomes and key contributions
- Use relevant action verbs based on the specific field`,
}

// GuidanceFor returns the guidance text for a domain tag and whether the tag
// was recognized. Unrecognized tags fall back to the general entry.
func GuidanceFor(domain string) (string, bool) {
	if text, ok := domainGuidance[domain]; ok {
		return text, true
	}
	return domainGuidance[DomainOther], false
}
