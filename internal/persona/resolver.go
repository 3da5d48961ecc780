package persona

// Keyword match weights. Job keywords signal the task directly, so
// they weigh more than persona background keywords.
const (
	JobKeywordWeight     = 1.5
	PersonaKeywordWeight = 1.0
	RawTermWeight        = 1.0
)

// Profile is an immutable weighted keyword set built once per request.
type Profile struct {
	PersonaCategory string
	JobCategory     string
	PersonaKeywords map[string]struct{}
	JobKeywords     map[string]struct{}
	RawJobTerms     map[string]struct{}
}

// Weight returns the scoring weight of a token under this profile:
// job keywords outrank persona keywords and raw job terms, unmatched
// tokens score zero.
func (p *Profile) Weight(token string) float64 {
	if _, ok := p.JobKeywords[token]; ok {
		return JobKeywordWeight
	}
	if _, ok := p.PersonaKeywords[token]; ok {
		return PersonaKeywordWeight
	}
	if _, ok := p.RawJobTerms[token]; ok {
		return RawTermWeight
	}
	return 0
}

// Resolver maps free-text persona and job descriptions onto catalog
// categories. Resolution never fails: unmatched text falls back to the
// catalog's configured fallback categories.
type Resolver struct {
	catalog *Catalog
}

func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve builds the profile for a persona/job pair.
func (r *Resolver) Resolve(personaText, jobText string) *Profile {
	personaCat := matchCategory(r.catalog.Personas, personaText)
	if personaCat == nil {
		personaCat = findCategory(r.catalog.Personas, r.catalog.Fallback.Persona)
	}
	jobCat := matchCategory(r.catalog.Jobs, jobText)
	if jobCat == nil {
		jobCat = findCategory(r.catalog.Jobs, r.catalog.Fallback.Job)
	}

	return &Profile{
		PersonaCategory: personaCat.Name,
		JobCategory:     jobCat.Name,
		PersonaKeywords: keywordSet(personaCat.Keywords),
		JobKeywords:     keywordSet(jobCat.Keywords),
		RawJobTerms:     rawTerms(jobText),
	}
}

func keywordSet(keywords []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		for _, t := range Tokenize(k) {
			set[t] = struct{}{}
		}
	}
	return set
}
