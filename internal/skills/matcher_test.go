package skills

import (
	"reflect"
	"testing"
)

func TestContainsSkill(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		skill string
		want  bool
	}{
		{"whole word", "python and r developer", "r", true},
		{"letter inside word", "bar none", "r", false},
		{"inside longer word", "designing algorithms", "go", false},
		{"multi word", "strong machine learning background", "machine learning", true},
		{"symbol suffix", "knows c++ well", "c++", true},
		{"at start", "sql expert", "sql", true},
		{"at end", "expert in sql", "sql", true},
		{"absent", "java developer", "python", false},
		{"empty skill", "anything", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ContainsSkill(tc.text, tc.skill); got != tc.want {
				t.Errorf("ContainsSkill(%q, %q) = %v, want %v", tc.text, tc.skill, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	m := NewMatcher()

	got := m.Normalize([]string{"ML", "ml", "Python!!", "x", "  SQL  "})
	want := []string{"machine learning", "python", "sql"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalizeSynonyms(t *testing.T) {
	m := NewMatcher()

	testCases := []struct {
		input string
		want  string
	}{
		{"ML", "machine learning"},
		{"AI", "machine learning"},
		{"AWS", "amazon web services"},
		{"tf", "tensorflow"},
		{"GCP", "google cloud platform"},
		{"NLP", "natural language processing"},
		{"Docker", "docker"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := m.Normalize([]string{tc.input})
			if len(got) != 1 || got[0] != tc.want {
				t.Errorf("Normalize([%q]) = %v, want [%q]", tc.input, got, tc.want)
			}
		})
	}
}

func TestExtractJobSkills(t *testing.T) {
	m := NewMatcher()

	jobText := "Looking for Python and SQL experience with Tableau dashboards"
	got := m.ExtractJobSkills(jobText)
	want := []string{"python", "sql", "tableau"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractJobSkills() = %v, want %v", got, want)
	}
}

func TestExtractJobSkillsSynonyms(t *testing.T) {
	m := NewMatcher()

	got := m.ExtractJobSkills("We need strong ML fundamentals")
	found := false
	for _, skill := range got {
		if skill == "machine learning" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected ML to resolve to machine learning, got %v", got)
	}
}

func TestExtractJobSkillsCanonicalNames(t *testing.T) {
	m := NewMatcher()

	jobText := "Seeking machine learning expertise with an artificial intelligence background"
	got := m.ExtractJobSkills(jobText)
	want := []string{"machine learning"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractJobSkills() = %v, want %v", got, want)
	}
}

func TestExtractJobSkillsFoldsToCanonical(t *testing.T) {
	m := NewMatcher()

	got := m.ExtractJobSkills("Deep learning and NLP experience required")
	want := []string{"deep learning", "natural language processing"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractJobSkills() = %v, want %v", got, want)
	}
}

func TestMatch(t *testing.T) {
	m := NewMatcher()

	resumeSkills := []string{"Python", "ML", "SQL"}
	jobSkills := []string{"machine learning", "python", "sql", "tableau"}

	result := m.Match(resumeSkills, jobSkills)

	wantMatched := []string{"machine learning", "python", "sql"}
	if !reflect.DeepEqual(result.MatchedSkills, wantMatched) {
		t.Errorf("MatchedSkills = %v, want %v", result.MatchedSkills, wantMatched)
	}

	wantMissing := []string{"tableau"}
	if !reflect.DeepEqual(result.MissingSkills, wantMissing) {
		t.Errorf("MissingSkills = %v, want %v", result.MissingSkills, wantMissing)
	}

	if result.MatchPercentage != 75.0 {
		t.Errorf("MatchPercentage = %v, want 75.0", result.MatchPercentage)
	}

	if result.TotalJobSkills != 4 {
		t.Errorf("TotalJobSkills = %d, want 4", result.TotalJobSkills)
	}

	if len(result.Recommendations) == 0 {
		t.Error("Expected gap recommendations for a partial match")
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	m := NewMatcher()

	result := m.Match([]string{"PYTHON"}, []string{"python"})
	if len(result.MatchedSkills) != 1 {
		t.Errorf("Expected case-insensitive match, got matched=%v missing=%v",
			result.MatchedSkills, result.MissingSkills)
	}
	if result.MatchPercentage != 100.0 {
		t.Errorf("MatchPercentage = %v, want 100.0", result.MatchPercentage)
	}
}

func TestMatchSimilarSkills(t *testing.T) {
	m := NewMatcher()

	// job skill contained in a longer resume skill
	result := m.Match([]string{"postgresql"}, []string{"postgres"})
	if len(result.MatchedSkills) != 1 {
		t.Errorf("Expected postgres to match postgresql, missing=%v", result.MissingSkills)
	}
}

func TestMatchPercentageRounding(t *testing.T) {
	m := NewMatcher()

	// 1 of 3 matched: 33.333... rounds to one decimal
	result := m.Match([]string{"python"}, []string{"python", "tableau", "hadoop"})
	if result.MatchPercentage != 33.3 {
		t.Errorf("MatchPercentage = %v, want 33.3", result.MatchPercentage)
	}
}

func TestMatchNoJobSkills(t *testing.T) {
	m := NewMatcher()

	result := m.Match([]string{"python"}, nil)
	if result.MatchPercentage != 0.0 {
		t.Errorf("MatchPercentage = %v, want 0.0", result.MatchPercentage)
	}
	if result.TotalJobSkills != 0 {
		t.Errorf("TotalJobSkills = %d, want 0", result.TotalJobSkills)
	}
}

func TestBuildLearningPath(t *testing.T) {
	m := NewMatcher()

	path := m.BuildLearningPath("Data Analyst", []string{"SQL", "Excel"})
	if path == nil {
		t.Fatal("Expected a learning path for a known role")
	}

	if !reflect.DeepEqual(path.CurrentMatch, []string{"SQL", "Excel"}) {
		t.Errorf("CurrentMatch = %v, want [SQL Excel]", path.CurrentMatch)
	}

	wantCore := []string{"Python", "Data Visualization", "Statistics"}
	if !reflect.DeepEqual(path.MissingCore, wantCore) {
		t.Errorf("MissingCore = %v, want %v", path.MissingCore, wantCore)
	}

	// core skills get four weeks each, in order
	if got := path.Timeline["Python"]; got != "Weeks 1-4" {
		t.Errorf("Timeline[Python] = %q, want \"Weeks 1-4\"", got)
	}
	if got := path.Timeline["Statistics"]; got != "Weeks 9-12" {
		t.Errorf("Timeline[Statistics] = %q, want \"Weeks 9-12\"", got)
	}

	// preferred skills get two weeks each after the core block, top three only
	if got := path.Timeline["Tableau"]; got != "Weeks 13-14" {
		t.Errorf("Timeline[Tableau] = %q, want \"Weeks 13-14\"", got)
	}
	if _, ok := path.Timeline["Google Analytics"]; ok {
		t.Error("Expected only the top three preferred skills in the timeline")
	}
}

func TestBuildLearningPathUnknownRole(t *testing.T) {
	m := NewMatcher()

	if path := m.BuildLearningPath("Astronaut", nil); path != nil {
		t.Errorf("Expected nil path for unknown role, got %+v", path)
	}
}

func TestRoles(t *testing.T) {
	roles := Roles()
	if len(roles) != 6 {
		t.Fatalf("Expected 6 roles, got %d", len(roles))
	}
	for i := 1; i < len(roles); i++ {
		if roles[i-1] > roles[i] {
			t.Errorf("Roles() not sorted: %v", roles)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	testCases := []struct {
		skill string
		want  string
	}{
		{"Python", "programming_languages"},
		{"pandas", "data_science_tools"},
		{"Machine Learning", "machine_learning"},
		{"underwater basket weaving", "other"},
	}

	for _, tc := range testCases {
		t.Run(tc.skill, func(t *testing.T) {
			if got := CategoryOf(tc.skill); got != tc.want {
				t.Errorf("CategoryOf(%q) = %q, want %q", tc.skill, got, tc.want)
			}
		})
	}
}
