package skills

import (
	"fmt"
	"strings"
)

// LearningPath lays out the skills to acquire for a target role
type LearningPath struct {
	Role             string            `json:"role"`
	CurrentMatch     []string          `json:"current_match"`
	MissingCore      []string          `json:"missing_core"`
	MissingPreferred []string          `json:"missing_preferred"`
	Timeline         map[string]string `json:"learning_timeline"`
}

// BuildLearningPath plans a learning timeline toward the target role: four
// weeks per missing core skill, then two weeks each for up to three preferred
// skills. Returns nil for unknown roles.
func (m *Matcher) BuildLearningPath(targetRole string, currentSkills []string) *LearningPath {
	req, ok := roleRequirements[targetRole]
	if !ok {
		return nil
	}

	current := make(map[string]struct{}, len(currentSkills))
	for _, skill := range currentSkills {
		current[strings.ToLower(skill)] = struct{}{}
	}

	path := &LearningPath{
		Role:     targetRole,
		Timeline: make(map[string]string),
	}

	for _, skill := range req.CoreSkills {
		if _, ok := current[strings.ToLower(skill)]; ok {
			path.CurrentMatch = append(path.CurrentMatch, skill)
		} else {
			path.MissingCore = append(path.MissingCore, skill)
		}
	}

	for _, skill := range req.PreferredSkills {
		if _, ok := current[strings.ToLower(skill)]; !ok {
			path.MissingPreferred = append(path.MissingPreferred, skill)
		}
	}

	week := 0
	for _, skill := range path.MissingCore {
		path.Timeline[skill] = fmt.Sprintf("Weeks %d-%d", week+1, week+4)
		week += 4
	}

	preferred := path.MissingPreferred
	if len(preferred) > 3 {
		preferred = preferred[:3]
	}
	for _, skill := range preferred {
		path.Timeline[skill] = fmt.Sprintf("Weeks %d-%d", week+1, week+2)
		week += 2
	}

	return path
}
