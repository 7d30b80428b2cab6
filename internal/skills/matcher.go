package skills

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// MatchResult is the outcome of comparing resume skills against a job's skills
type MatchResult struct {
	MatchedSkills     []string            `json:"matched_skills"`
	MissingSkills     []string            `json:"missing_skills"`
	MatchPercentage   float64             `json:"match_percentage"`
	TotalJobSkills    int                 `json:"total_job_skills"`
	TotalResumeSkills int                 `json:"total_resume_skills"`
	SkillLevels       map[string][]string `json:"skill_levels"`
	Recommendations   []string            `json:"recommendations"`
}

// Matcher compares skill sets using the static dictionary and synonym map
type Matcher struct {
	cleanPattern *regexp.Regexp
	techPatterns []*regexp.Regexp
}

// NewMatcher creates a new skill matcher
func NewMatcher() *Matcher {
	return &Matcher{
		cleanPattern: regexp.MustCompile(`[^a-z0-9\s+#-]`),
		techPatterns: []*regexp.Regexp{
			regexp.MustCompile(`\b(?:python|java|sql|r|javascript|html|css)\b`),
			regexp.MustCompile(`\b(?:tensorflow|pytorch|scikit-learn|pandas|numpy)\b`),
			regexp.MustCompile(`\b(?:aws|azure|gcp|docker|kubernetes)\b`),
			regexp.MustCompile(`\b(?:tableau|power\s*bi|excel|mysql|postgresql)\b`),
		},
	}
}

// normalizeToken lowercases and strips punctuation from a single skill name
func normalizeToken(skill string) string {
	return strings.TrimSpace(strings.ToLower(skill))
}

// Normalize cleans skill names, folds synonyms onto their canonical form and
// removes duplicates and single-character tokens.
func (m *Matcher) Normalize(list []string) []string {
	seen := make(map[string]struct{})
	var normalized []string

	for _, skill := range list {
		clean := m.cleanPattern.ReplaceAllString(normalizeToken(skill), "")
		clean = strings.TrimSpace(clean)

		clean = canonical(clean)

		if len(clean) <= 1 {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		normalized = append(normalized, clean)
	}

	sort.Strings(normalized)
	return normalized
}

// ContainsSkill reports whether text mentions skill as a whole word. Plain
// substring matching would let one-letter skills like "r" match anywhere.
func ContainsSkill(text, skill string) bool {
	if skill == "" {
		return false
	}
	offset := 0
	for {
		i := strings.Index(text[offset:], skill)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(skill)
		beforeOK := start == 0 || !isWordChar(text[start-1])
		afterOK := end == len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return true
		}
		offset = start + 1
	}
}

func isWordChar(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}

// canonical maps a skill through the synonym table to its canonical name
func canonical(skill string) string {
	for main, variants := range synonyms {
		if skill == main {
			return main
		}
		for _, syn := range variants {
			if skill == syn {
				return main
			}
		}
	}
	return skill
}

// ExtractJobSkills finds known skills mentioned in a job description. Skills
// are folded onto their canonical names so the output compares cleanly against
// normalized resume skills.
func (m *Matcher) ExtractJobSkills(jobText string) []string {
	jobText = strings.ToLower(jobText)
	seen := make(map[string]struct{})

	scan := func(skill string) {
		lower := strings.ToLower(skill)
		if ContainsSkill(jobText, lower) {
			seen[canonical(lower)] = struct{}{}
			return
		}
		for _, syn := range synonyms[canonical(lower)] {
			if ContainsSkill(jobText, syn) {
				seen[canonical(lower)] = struct{}{}
				return
			}
		}
	}

	for _, list := range Dictionary {
		for _, skill := range list {
			scan(skill)
		}
	}
	for name := range synonyms {
		scan(name)
	}
	for _, levels := range database {
		for _, list := range levels {
			for _, skill := range list {
				scan(skill)
			}
		}
	}

	for _, pattern := range m.techPatterns {
		for _, match := range pattern.FindAllString(jobText, -1) {
			seen[canonical(match)] = struct{}{}
		}
	}

	found := make([]string, 0, len(seen))
	for skill := range seen {
		found = append(found, skill)
	}
	sort.Strings(found)
	return found
}

// Match compares normalized resume skills against job skills and produces the
// matched/missing breakdown with gap recommendations.
func (m *Matcher) Match(resumeSkills, jobSkills []string) MatchResult {
	resumeSkills = m.Normalize(resumeSkills)

	var matched, missing []string
	for _, jobSkill := range jobSkills {
		if m.hasSkill(resumeSkills, jobSkill) {
			matched = append(matched, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}

	total := len(jobSkills)
	percentage := 0.0
	if total > 0 {
		percentage = math.Round(float64(len(matched))/float64(total)*1000) / 10
	}

	levels := m.ClassifyLevels(resumeSkills)

	result := MatchResult{
		MatchedSkills:     matched,
		MissingSkills:     missing,
		MatchPercentage:   percentage,
		TotalJobSkills:    total,
		TotalResumeSkills: len(resumeSkills),
		SkillLevels:       levels,
	}
	result.Recommendations = m.recommendations(result)
	return result
}

// hasSkill reports whether any resume skill matches the given job skill
func (m *Matcher) hasSkill(resumeSkills []string, jobSkill string) bool {
	for _, resumeSkill := range resumeSkills {
		if jobSkill == resumeSkill ||
			strings.Contains(resumeSkill, jobSkill) ||
			strings.Contains(jobSkill, resumeSkill) ||
			areSimilar(jobSkill, resumeSkill) {
			return true
		}
	}
	return false
}

// areSimilar checks whether two skill names are close enough to count as the
// same skill: substring containment for names longer than three characters,
// or a character-set overlap above 0.7.
func areSimilar(a, b string) bool {
	longer, shorter := a, b
	if len(b) > len(a) {
		longer, shorter = b, a
	}
	if len(shorter) > 3 && strings.Contains(longer, shorter) {
		return true
	}

	setA := runeSet(a)
	setB := runeSet(b)

	overlap := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			overlap++
		}
	}

	union := len(setB)
	for r := range setA {
		if _, ok := setB[r]; !ok {
			union++
		}
	}
	if union == 0 {
		return false
	}

	return float64(overlap)/float64(union) > 0.7
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

// ClassifyLevels buckets resume skills by the experience level the skill
// database assigns them; unrecognized skills land in "unknown".
func (m *Matcher) ClassifyLevels(resumeSkills []string) map[string][]string {
	levels := make(map[string][]string)

	for _, skill := range resumeSkills {
		found := ""
		for _, levelMap := range database {
			for level, list := range levelMap {
				for _, dbSkill := range list {
					lower := strings.ToLower(dbSkill)
					if strings.Contains(lower, skill) || strings.Contains(skill, lower) {
						found = level
						break
					}
				}
				if found != "" {
					break
				}
			}
			if found != "" {
				break
			}
		}

		if found == "" {
			found = "unknown"
		}
		levels[found] = append(levels[found], skill)
	}

	for _, list := range levels {
		sort.Strings(list)
	}
	return levels
}

// isBeginnerSkill reports whether the skill appears in any beginner bucket
func isBeginnerSkill(skill string) bool {
	for _, levelMap := range database {
		for _, dbSkill := range levelMap["beginner"] {
			if strings.ToLower(dbSkill) == skill {
				return true
			}
		}
	}
	return false
}

// recommendations builds skill development advice from the match outcome
func (m *Matcher) recommendations(result MatchResult) []string {
	var recs []string

	if len(result.MissingSkills) > 0 {
		var highPriority, mediumPriority []string

		top := result.MissingSkills
		if len(top) > 5 {
			top = top[:5]
		}
		for _, skill := range top {
			if isBeginnerSkill(skill) {
				highPriority = append(highPriority, skill)
			} else {
				mediumPriority = append(mediumPriority, skill)
			}
		}

		if len(highPriority) > 0 {
			if len(highPriority) > 3 {
				highPriority = highPriority[:3]
			}
			recs = append(recs, "High priority: learn "+strings.Join(highPriority, ", "))
		}
		if len(mediumPriority) > 0 {
			if len(mediumPriority) > 3 {
				mediumPriority = mediumPriority[:3]
			}
			recs = append(recs, "Medium priority: develop "+strings.Join(mediumPriority, ", "))
		}
	}

	beginnerCount := len(result.SkillLevels["beginner"])
	intermediateCount := len(result.SkillLevels["intermediate"])
	advancedCount := len(result.SkillLevels["advanced"])

	if beginnerCount > intermediateCount*2 {
		recs = append(recs, "Focus on advancing from beginner to intermediate level skills")
	}
	if intermediateCount > 5 && advancedCount < 2 {
		recs = append(recs, "Ready to tackle advanced skills and specialized tools")
	}

	recs = append(recs, m.careerPathRecommendations(result.MatchedSkills)...)

	return recs
}

// careerPathRecommendations ranks role fit by core-skill coverage
func (m *Matcher) careerPathRecommendations(matchedSkills []string) []string {
	type roleFit struct {
		role string
		fit  float64
	}

	matchedSet := make(map[string]struct{}, len(matchedSkills))
	for _, skill := range matchedSkills {
		matchedSet[strings.ToLower(skill)] = struct{}{}
	}

	var fits []roleFit
	for role, req := range roleRequirements {
		coreMatches := 0
		for _, core := range req.CoreSkills {
			if _, ok := matchedSet[strings.ToLower(core)]; ok {
				coreMatches++
			}
		}
		fits = append(fits, roleFit{
			role: role,
			fit:  float64(coreMatches) / float64(len(req.CoreSkills)) * 100,
		})
	}

	sort.Slice(fits, func(i, j int) bool {
		if fits[i].fit != fits[j].fit {
			return fits[i].fit > fits[j].fit
		}
		return fits[i].role < fits[j].role
	})

	var recs []string
	for i, rf := range fits {
		if i >= 3 {
			break
		}
		switch {
		case rf.fit > 60:
			recs = append(recs, fmt.Sprintf("Strong fit for %s (%.0f%% skill match)", rf.role, rf.fit))
		case rf.fit > 40:
			recs = append(recs, fmt.Sprintf("Potential fit for %s - develop missing core skills", rf.role))
		}
	}

	return recs
}
