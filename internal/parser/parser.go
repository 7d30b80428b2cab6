package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ysaikumar21/ResumeIntelligence/internal/skills"
	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
)

// educationKeywords flag lines that describe degrees and qualifications
var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "university", "college",
	"b.tech", "m.tech", "b.sc", "m.sc", "mba", "diploma", "certification",
}

// experienceKeywords flag lines that describe work done
var experienceKeywords = []string{
	"experience", "worked", "internship", "project", "developed",
	"analyzed", "implemented", "designed", "built", "created",
}

// Parser extracts structured fields from resume text
type Parser struct {
	emailPattern  *regexp.Regexp
	namePattern   *regexp.Regexp
	phonePatterns []*regexp.Regexp
}

// New creates a resume parser
func New() *Parser {
	return &Parser{
		emailPattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		namePattern:  regexp.MustCompile(`^[A-Za-z\s\.]+$`),
		phonePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(\+\d{1,3}\s?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
			regexp.MustCompile(`(\+\d{1,3}\s?)?\d{10}`),
			regexp.MustCompile(`(\+\d{1,3}\s?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		},
	}
}

// Parse extracts all structured fields from resume text
func (p *Parser) Parse(text string) *models.ResumeData {
	lines := strings.Split(text, "\n")
	textLower := strings.ToLower(text)

	return &models.ResumeData{
		RawText:        text,
		Name:           p.extractName(lines),
		Email:          p.extractEmail(text),
		Phone:          p.extractPhone(text),
		Skills:         p.extractSkills(textLower),
		Education:      extractSection(lines, []string{"education", "qualification", "academic"}, []string{"experience", "skill", "project", "certification"}, educationLine),
		Experience:     extractSection(lines, []string{"experience", "employment", "work history", "career"}, []string{"education", "skill", "project", "certification"}, experienceLine),
		Certifications: extractSection(lines, []string{"certification", "certificate", "license"}, []string{"education", "experience", "skill", "project"}, anyLine),
		Projects:       extractSection(lines, []string{"project", "portfolio"}, []string{"education", "experience", "skill", "certification"}, projectLine),
	}
}

// extractName looks for a name in the first few lines: two to four words of
// letters only, no email address, no digits.
func (p *Parser) extractName(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if !p.namePattern.MatchString(line) || strings.Contains(line, "@") {
			continue
		}
		return titleCase(line)
	}
	return ""
}

func (p *Parser) extractEmail(text string) string {
	return p.emailPattern.FindString(text)
}

func (p *Parser) extractPhone(text string) string {
	for _, pattern := range p.phonePatterns {
		if phone := pattern.FindString(text); phone != "" {
			return strings.TrimSpace(phone)
		}
	}
	return ""
}

// extractSkills scans the lowercased resume text for known technical skills
func (p *Parser) extractSkills(textLower string) []string {
	seen := make(map[string]struct{})
	var found []string

	for _, list := range skills.Dictionary {
		for _, skill := range list {
			if !skills.ContainsSkill(textLower, skill) {
				continue
			}
			name := titleCase(skill)
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			found = append(found, name)
		}
	}

	sort.Strings(found)
	return found
}

// extractSection collects lines between a section heading and the next
// section, keeping only lines the filter accepts.
func extractSection(lines []string, startKeywords, stopKeywords []string, keep func(line, lower string) bool) []string {
	var entries []string
	inSection := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if !inSection {
			if containsAny(lower, startKeywords) {
				inSection = true
			}
			continue
		}

		if containsAny(lower, stopKeywords) {
			break
		}

		if trimmed != "" && keep(trimmed, lower) {
			entries = append(entries, trimmed)
		}
	}

	return entries
}

func educationLine(_, lower string) bool {
	return containsAny(lower, educationKeywords)
}

func experienceLine(line, lower string) bool {
	return containsAny(lower, experienceKeywords) || len(line) > 20
}

func projectLine(line, _ string) bool {
	return len(line) > 10
}

func anyLine(_, _ string) bool {
	return true
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// titleCase uppercases the first letter of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
