package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/internal/skills"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
)

// Weights holds the fixed weighting of the sub-scores in the total ATS score
type Weights struct {
	KeywordMatch     float64
	SkillMatch       float64
	FormatQuality    float64
	ContentStructure float64
	DomainRelevance  float64
}

// DefaultWeights is the documented scoring weight set
var DefaultWeights = Weights{
	KeywordMatch:     0.35,
	SkillMatch:       0.25,
	FormatQuality:    0.15,
	ContentStructure: 0.15,
	DomainRelevance:  0.10,
}

// domainKeywords identifies the target domain of a job description and how
// relevant a resume is to it.
var domainKeywords = map[string][]string{
	"data_science": {
		"data science", "machine learning", "artificial intelligence", "deep learning",
		"data analysis", "statistical analysis", "predictive modeling", "data mining",
		"big data", "analytics", "visualization", "python", "sql", "tableau",
		"power bi", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
	},
	"software_engineering": {
		"software development", "programming", "coding", "algorithms", "data structures",
		"object-oriented programming", "agile", "scrum", "version control", "git",
		"testing", "debugging", "api", "database", "framework", "libraries",
	},
	"general_it": {
		"information technology", "technical skills", "problem solving",
		"troubleshooting", "system administration", "network", "security",
		"cloud computing", "aws", "azure", "devops", "automation",
	},
}

// Analyzer computes ATS compatibility scores for a resume against a job
type Analyzer struct {
	weights     Weights
	matcher     *skills.Matcher
	goodFormats []*regexp.Regexp
	badFormats  []*regexp.Regexp
}

// New creates an analyzer with the default weights
func New() *Analyzer {
	return NewWithWeights(DefaultWeights)
}

// NewWithWeights creates an analyzer with custom scoring weights
func NewWithWeights(weights Weights) *Analyzer {
	return &Analyzer{
		weights: weights,
		matcher: skills.NewMatcher(),
		goodFormats: []*regexp.Regexp{
			regexp.MustCompile(`\b[A-Z][a-z]+\s[A-Z][a-z]+\b`), // proper names
			regexp.MustCompile(`\d{4}-\d{4}`),                  // date ranges
			regexp.MustCompile(`\b\d{1,2}/\d{4}\b`),            // month/year
			regexp.MustCompile(`\b[A-Z]{2,}\b`),                // acronyms
		},
		badFormats: []*regexp.Regexp{
			regexp.MustCompile(`[^\w\s-]`), // special characters (hyphens excluded)
			regexp.MustCompile("\t"),
			regexp.MustCompile(`[^\S\n]{3,}`), // runs of spaces
		},
	}
}

// Analyze runs the full scoring pipeline and assembles the report
func (a *Analyzer) Analyze(data *models.ResumeData, jobText string) *models.AnalysisReport {
	jobSkills := a.matcher.ExtractJobSkills(jobText)
	match := a.matcher.Match(data.Skills, jobSkills)

	keywordScore := a.KeywordScore(data.RawText, jobText)
	skillScore := a.SkillScore(match)
	formatScore := a.FormatScore(data.RawText)
	structureScore := a.StructureScore(data)
	domainScore := a.DomainRelevance(data.RawText, jobText)

	total := keywordScore*a.weights.KeywordMatch +
		skillScore*a.weights.SkillMatch +
		formatScore*a.weights.FormatQuality +
		structureScore*a.weights.ContentStructure +
		domainScore*a.weights.DomainRelevance

	atsScore := int(math.Round(total))

	return &models.AnalysisReport{
		ATSScore:        atsScore,
		KeywordScore:    keywordScore,
		SkillMatchScore: skillScore,
		FormatScore:     formatScore,
		StructureScore:  structureScore,
		DomainScore:     domainScore,
		MatchedSkills:   match.MatchedSkills,
		MissingSkills:   match.MissingSkills,
		MatchPercentage: match.MatchPercentage,
		SkillLevels:     match.SkillLevels,
		Recommendations: a.Recommendations(atsScore, match, keywordScore),
		KeywordDensity:  a.KeywordDensity(data.RawText, jobText),
		AnalyzedAt:      time.Now(),
	}
}

// KeywordScore measures TF-IDF cosine similarity between resume and job text
func (a *Analyzer) KeywordScore(resumeText, jobText string) float64 {
	similarity := tfidfCosine(strings.ToLower(resumeText), strings.ToLower(jobText))
	return clamp(similarity * 100)
}

// SkillScore converts the skill match outcome into a score. A job that
// mentions no known skill scores a moderate 75.
func (a *Analyzer) SkillScore(match skills.MatchResult) float64 {
	if match.TotalJobSkills == 0 {
		return 75
	}
	return clamp(match.MatchPercentage)
}

// FormatScore rates how ATS-friendly the raw resume text is
func (a *Analyzer) FormatScore(resumeText string) float64 {
	score := 100.0

	for _, pattern := range a.badFormats {
		matches := len(pattern.FindAllString(resumeText, -1))
		score -= math.Min(20, float64(matches)*2)
	}

	goodPatternsFound := 0
	for _, pattern := range a.goodFormats {
		if pattern.MatchString(resumeText) {
			goodPatternsFound++
		}
	}
	if goodPatternsFound >= 2 {
		score += 10
	}

	return clamp(score)
}

// StructureScore rates resume completeness: presence of contact details,
// skills, experience and education sections.
func (a *Analyzer) StructureScore(data *models.ResumeData) float64 {
	score := 0.0

	if data.Name != "" {
		score += 15
	}
	if strings.Contains(data.Email, "@") {
		score += 15
	}
	if data.Phone != "" {
		score += 10
	}
	if len(data.Skills) > 0 {
		score += 25
	}
	if len(data.Experience) > 0 {
		score += 20
	}
	if len(data.Education) > 0 {
		score += 15
	}

	return clamp(score)
}

// DomainRelevance measures how much of the job's domain vocabulary the
// resume covers. With no domain keywords identified the score defaults to 75.
func (a *Analyzer) DomainRelevance(resumeText, jobText string) float64 {
	resumeText = strings.ToLower(resumeText)

	domain := identifyJobDomain(strings.ToLower(jobText))
	keywords := domainKeywords[domain]
	if len(keywords) == 0 {
		return 75
	}

	found := 0
	for _, keyword := range keywords {
		if strings.Contains(resumeText, keyword) {
			found++
		}
	}

	return clamp(float64(found) / float64(len(keywords)) * 100)
}

// identifyJobDomain picks the domain with the most keyword hits in the job
// text, defaulting to general_it.
func identifyJobDomain(jobText string) string {
	best := "general_it"
	bestScore := 0

	domains := make([]string, 0, len(domainKeywords))
	for domain := range domainKeywords {
		domains = append(domains, domain)
	}
	sort.Strings(domains)

	for _, domain := range domains {
		score := 0
		for _, keyword := range domainKeywords[domain] {
			if strings.Contains(jobText, keyword) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = domain
		}
	}

	return best
}

// Recommendations produces up to eight improvement suggestions based on the
// score breakdown. A score of 85 or above replaces them with a short
// confirmation set.
func (a *Analyzer) Recommendations(atsScore int, match skills.MatchResult, keywordScore float64) []string {
	if atsScore >= 85 {
		return []string{
			"Excellent ATS compatibility! Your resume is well-optimized.",
			"Continue to tailor keywords for each specific job application",
			"Keep your skills section updated with latest technologies",
		}
	}

	var recs []string

	if atsScore < 70 {
		recs = append(recs, "Overall ATS score needs improvement. Focus on keyword optimization and formatting.")
	}

	if keywordScore < 60 {
		recs = append(recs,
			"Include more relevant keywords from the job description in your resume.",
			"Mirror the language used in the job posting while staying truthful.")
	}

	if match.MatchPercentage < 70 {
		recs = append(recs,
			"Highlight transferable skills that relate to job requirements.",
			"Consider learning missing critical skills mentioned in the job description.")
	}

	if len(match.MissingSkills) > 0 {
		top := match.MissingSkills
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, "Priority skills to learn: "+strings.Join(top, ", "))
	}

	if atsScore < 80 {
		recs = append(recs,
			"Use standard section headings (Experience, Education, Skills, etc.)",
			"Use standard fonts and avoid special characters or graphics",
			"Ensure consistent formatting and proper spacing",
			"Use bullet points for achievements and responsibilities")
	}

	recs = append(recs,
		"Include quantifiable achievements (e.g. improved model accuracy by 15%)",
		"Mention specific tools, libraries, and technologies you've used",
		"Highlight projects with measurable business impact",
		"Tailor your resume for each specific job application")

	if len(recs) > 8 {
		recs = recs[:8]
	}
	return recs
}

// KeywordDensity analyzes how often the top job description terms appear in
// the resume. Considers the twenty most frequent meaningful terms.
func (a *Analyzer) KeywordDensity(resumeText, jobText string) map[string]models.KeywordStats {
	jobCounts := termCounts(tokenize(jobText))
	resumeCounts := termCounts(tokenize(resumeText))

	type wordCount struct {
		word  string
		count int
	}
	ranked := make([]wordCount, 0, len(jobCounts))
	for word, count := range jobCounts {
		if len(word) > 3 {
			ranked = append(ranked, wordCount{word, count})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	if len(ranked) > 20 {
		ranked = ranked[:20]
	}

	analysis := make(map[string]models.KeywordStats, len(ranked))
	for _, wc := range ranked {
		resumeFreq := resumeCounts[wc.word]
		analysis[wc.word] = models.KeywordStats{
			JobFrequency:    wc.count,
			ResumeFrequency: resumeFreq,
			DensityScore:    math.Min(100, float64(resumeFreq)/math.Max(1, float64(wc.count))*100),
		}
	}

	return analysis
}

// clamp limits a score to the [0,100] range
func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}
