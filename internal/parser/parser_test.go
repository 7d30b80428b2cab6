package parser

import (
	"reflect"
	"testing"
)

const sampleResume = `John Smith
john.smith@example.com
+1 555-123-4567

Education
Bachelor of Technology in Computer Science from Example University
Master of Science degree

Experience
Developed data pipelines using Python and SQL for reporting teams
Implemented dashboards in Tableau for business stakeholders

Skills
Python, SQL, Tableau, Machine Learning`

func TestParse(t *testing.T) {
	p := New()

	data := p.Parse(sampleResume)

	if data.Name != "John Smith" {
		t.Errorf("Name = %q, want \"John Smith\"", data.Name)
	}
	if data.Email != "john.smith@example.com" {
		t.Errorf("Email = %q, want \"john.smith@example.com\"", data.Email)
	}
	if data.Phone != "+1 555-123-4567" {
		t.Errorf("Phone = %q, want \"+1 555-123-4567\"", data.Phone)
	}

	wantSkills := []string{"Machine Learning", "Python", "Sql", "Tableau"}
	if !reflect.DeepEqual(data.Skills, wantSkills) {
		t.Errorf("Skills = %v, want %v", data.Skills, wantSkills)
	}

	wantEducation := []string{
		"Bachelor of Technology in Computer Science from Example University",
		"Master of Science degree",
	}
	if !reflect.DeepEqual(data.Education, wantEducation) {
		t.Errorf("Education = %v, want %v", data.Education, wantEducation)
	}

	wantExperience := []string{
		"Developed data pipelines using Python and SQL for reporting teams",
		"Implemented dashboards in Tableau for business stakeholders",
	}
	if !reflect.DeepEqual(data.Experience, wantExperience) {
		t.Errorf("Experience = %v, want %v", data.Experience, wantExperience)
	}

	if len(data.Certifications) != 0 {
		t.Errorf("Certifications = %v, want none", data.Certifications)
	}
	if data.RawText != sampleResume {
		t.Error("RawText should carry the full input text")
	}
}

func TestExtractNameSkipsNonNames(t *testing.T) {
	p := New()

	testCases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "email line skipped",
			text: "jane.doe@example.com\nJane Doe\nSkills",
			want: "Jane Doe",
		},
		{
			name: "single word skipped",
			text: "Resume\nMary Jane Watson\n",
			want: "Mary Jane Watson",
		},
		{
			name: "lowercase input title cased",
			text: "jane doe\n",
			want: "Jane Doe",
		},
		{
			name: "no candidate in first lines",
			text: "1234\n@@@@\nx\ny\nz\nJane Doe",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := p.Parse(tc.text)
			if data.Name != tc.want {
				t.Errorf("Name = %q, want %q", data.Name, tc.want)
			}
		})
	}
}

func TestExtractPhoneFormats(t *testing.T) {
	p := New()

	testCases := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "call me at 555-123-4567 today", "555-123-4567"},
		{"dotted", "reach 555.123.4567 anytime", "555.123.4567"},
		{"with country code", "mobile +91 9876543210", "+91 9876543210"},
		{"parenthesized", "office (555)123-4567", "(555)123-4567"},
		{"none", "no contact details here", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := p.Parse(tc.text)
			if data.Phone != tc.want {
				t.Errorf("Phone = %q, want %q", data.Phone, tc.want)
			}
		})
	}
}

func TestExtractSkillsWholeWords(t *testing.T) {
	p := New()

	// "barrister" must not surface "r", "golang prose" must not surface "go"
	data := p.Parse("A barrister writing golang prose about nothing technical")
	if len(data.Skills) != 0 {
		t.Errorf("Skills = %v, want none", data.Skills)
	}

	data = p.Parse("Proficient in R and Go for statistics work")
	found := map[string]bool{}
	for _, skill := range data.Skills {
		found[skill] = true
	}
	if !found["R"] || !found["Go"] {
		t.Errorf("Skills = %v, want R and Go detected as whole words", data.Skills)
	}
}
