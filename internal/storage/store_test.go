package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ysaikumar21/ResumeIntelligence/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *Store, email string) *models.User {
	t.Helper()

	user := &models.User{Name: "Test User", Email: email}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	return user
}

func TestCreateUserAndLookup(t *testing.T) {
	store := newTestStore(t)

	user := createTestUser(t, store, "jane@example.com")
	if user.ID == 0 {
		t.Fatal("Expected a generated user ID")
	}

	loaded, err := store.GetUserByEmail("jane@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if loaded.ID != user.ID || loaded.Name != "Test User" {
		t.Errorf("Loaded user = %+v, want id=%d name=Test User", loaded, user.ID)
	}
}

func TestCreateUserDuplicateEmailReturnsExisting(t *testing.T) {
	store := newTestStore(t)

	first := createTestUser(t, store, "jane@example.com")

	second := &models.User{Name: "Someone Else", Email: "jane@example.com"}
	if err := store.CreateUser(second); err != nil {
		t.Fatalf("CreateUser(duplicate) error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("Duplicate registration returned ID %d, want existing ID %d", second.ID, first.ID)
	}
	if second.Name != "Test User" {
		t.Errorf("Duplicate registration returned name %q, want the existing record", second.Name)
	}
}

func TestGetUserByEmailNotFound(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.GetUserByEmail("nobody@example.com"); err == nil {
		t.Error("Expected an error for an unknown email")
	}
}

func TestResumeRoundTrip(t *testing.T) {
	store := newTestStore(t)
	user := createTestUser(t, store, "jane@example.com")

	extracted, _ := json.Marshal(&models.ResumeData{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: []string{"Python", "Sql"},
	})

	resume := &models.Resume{
		UserID:        user.ID,
		Filename:      "jane_resume.pdf",
		FileType:      "pdf",
		RawText:       "Jane Doe\njane@example.com",
		ExtractedData: extracted,
	}
	if err := store.SaveResume(resume); err != nil {
		t.Fatalf("SaveResume() error = %v", err)
	}

	loaded, err := store.GetResume(resume.ID)
	if err != nil {
		t.Fatalf("GetResume() error = %v", err)
	}
	if loaded.Filename != "jane_resume.pdf" || loaded.FileType != "pdf" {
		t.Errorf("Loaded resume = %+v, want original filename and type", loaded)
	}
	if loaded.RawText != resume.RawText {
		t.Errorf("RawText = %q, want %q", loaded.RawText, resume.RawText)
	}

	var data models.ResumeData
	if err := json.Unmarshal(loaded.ExtractedData, &data); err != nil {
		t.Fatalf("Unmarshal extracted data: %v", err)
	}
	if data.Name != "Jane Doe" || len(data.Skills) != 2 {
		t.Errorf("Extracted data = %+v, want the stored structure back", data)
	}
}

func TestGetUserResumesOrdering(t *testing.T) {
	store := newTestStore(t)
	user := createTestUser(t, store, "jane@example.com")

	older := &models.Resume{
		UserID:     user.ID,
		Filename:   "older.pdf",
		FileType:   "pdf",
		UploadedAt: time.Now().Add(-2 * time.Hour),
	}
	newer := &models.Resume{
		UserID:     user.ID,
		Filename:   "newer.pdf",
		FileType:   "pdf",
		UploadedAt: time.Now().Add(-1 * time.Hour),
	}
	for _, r := range []*models.Resume{older, newer} {
		if err := store.SaveResume(r); err != nil {
			t.Fatalf("SaveResume() error = %v", err)
		}
	}

	resumes, err := store.GetUserResumes(user.ID)
	if err != nil {
		t.Fatalf("GetUserResumes() error = %v", err)
	}
	if len(resumes) != 2 {
		t.Fatalf("Expected 2 resumes, got %d", len(resumes))
	}
	if resumes[0].Filename != "newer.pdf" {
		t.Errorf("First resume = %q, want the most recent upload", resumes[0].Filename)
	}
}

func TestJobDescriptionRoundTrip(t *testing.T) {
	store := newTestStore(t)

	requiredSkills, _ := json.Marshal([]string{"python", "sql"})
	job := &models.JobDescription{
		Title:           "Data Analyst",
		Company:         "Initech",
		Description:     "Analyze data with python and sql",
		RequiredSkills:  requiredSkills,
		ExperienceLevel: "mid",
		Location:        "Remote",
	}
	if err := store.SaveJobDescription(job); err != nil {
		t.Fatalf("SaveJobDescription() error = %v", err)
	}

	loaded, err := store.GetJobDescription(job.ID)
	if err != nil {
		t.Fatalf("GetJobDescription() error = %v", err)
	}
	if loaded.Title != "Data Analyst" || loaded.Company != "Initech" {
		t.Errorf("Loaded job = %+v, want the original fields", loaded)
	}

	var skills []string
	if err := json.Unmarshal(loaded.RequiredSkills, &skills); err != nil {
		t.Fatalf("Unmarshal required skills: %v", err)
	}
	if len(skills) != 2 {
		t.Errorf("RequiredSkills = %v, want 2 entries", skills)
	}
}

func seedAnalysis(t *testing.T, store *Store, userID uint, score int, analyzedAt time.Time) {
	t.Helper()

	resume := &models.Resume{UserID: userID, Filename: "resume.pdf", FileType: "pdf"}
	if err := store.SaveResume(resume); err != nil {
		t.Fatalf("SaveResume() error = %v", err)
	}

	job := &models.JobDescription{Title: "Data Analyst", Description: "sql work"}
	if err := store.SaveJobDescription(job); err != nil {
		t.Fatalf("SaveJobDescription() error = %v", err)
	}

	matched, _ := json.Marshal([]string{"sql"})
	result := &models.AnalysisResult{
		ResumeID:          resume.ID,
		JobDescriptionID:  job.ID,
		ATSScore:          score,
		SkillMatchScore:   float64(score),
		KeywordMatchScore: float64(score),
		MatchedSkills:     matched,
		MissingSkills:     matched,
		Recommendations:   matched,
		AnalyzedAt:        analyzedAt,
	}
	if err := store.SaveAnalysisResult(result); err != nil {
		t.Fatalf("SaveAnalysisResult() error = %v", err)
	}
}

func TestGetAnalysisHistory(t *testing.T) {
	store := newTestStore(t)
	user := createTestUser(t, store, "jane@example.com")

	seedAnalysis(t, store, user.ID, 60, time.Now().Add(-2*time.Hour))
	seedAnalysis(t, store, user.ID, 80, time.Now().Add(-1*time.Hour))

	history, err := store.GetAnalysisHistory(user.ID, 10)
	if err != nil {
		t.Fatalf("GetAnalysisHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(history))
	}
	if history[0].ATSScore != 80 {
		t.Errorf("First entry score = %d, want the most recent analysis first", history[0].ATSScore)
	}
	if history[0].ResumeFilename != "resume.pdf" || history[0].JobTitle != "Data Analyst" {
		t.Errorf("History entry = %+v, want joined resume and job fields", history[0])
	}
}

func TestGetAnalysisHistoryLimit(t *testing.T) {
	store := newTestStore(t)
	user := createTestUser(t, store, "jane@example.com")

	for i := 0; i < 3; i++ {
		seedAnalysis(t, store, user.ID, 50+i, time.Now().Add(time.Duration(-i)*time.Hour))
	}

	history, err := store.GetAnalysisHistory(user.ID, 2)
	if err != nil {
		t.Fatalf("GetAnalysisHistory() error = %v", err)
	}
	if len(history) != 2 {
		t.Errorf("Expected limit of 2 entries, got %d", len(history))
	}
}

func TestUpsertSkillUpdatesInPlace(t *testing.T) {
	store := newTestStore(t)
	user := createTestUser(t, store, "jane@example.com")

	first := &models.SkillTracking{
		UserID:           user.ID,
		SkillName:        "Python",
		SkillCategory:    "programming_languages",
		ProficiencyLevel: 2,
	}
	if err := store.UpsertSkill(first); err != nil {
		t.Fatalf("UpsertSkill() error = %v", err)
	}

	second := &models.SkillTracking{
		UserID:           user.ID,
		SkillName:        "Python",
		SkillCategory:    "programming_languages",
		ProficiencyLevel: 4,
	}
	if err := store.UpsertSkill(second); err != nil {
		t.Fatalf("UpsertSkill(again) error = %v", err)
	}

	tracked, err := store.GetUserSkills(user.ID)
	if err != nil {
		t.Fatalf("GetUserSkills() error = %v", err)
	}
	if len(tracked) != 1 {
		t.Fatalf("Expected a single record after repeated upserts, got %d", len(tracked))
	}
	if tracked[0].ProficiencyLevel != 4 {
		t.Errorf("ProficiencyLevel = %d, want updated value 4", tracked[0].ProficiencyLevel)
	}
}

func TestGetUserSkillsOrdering(t *testing.T) {
	store := newTestStore(t)
	user := createTestUser(t, store, "jane@example.com")

	entries := []*models.SkillTracking{
		{UserID: user.ID, SkillName: "Tableau", SkillCategory: "data_science_tools", ProficiencyLevel: 3},
		{UserID: user.ID, SkillName: "Python", SkillCategory: "programming_languages", ProficiencyLevel: 4},
		{UserID: user.ID, SkillName: "Pandas", SkillCategory: "data_science_tools", ProficiencyLevel: 2},
	}
	for _, e := range entries {
		if err := store.UpsertSkill(e); err != nil {
			t.Fatalf("UpsertSkill() error = %v", err)
		}
	}

	tracked, err := store.GetUserSkills(user.ID)
	if err != nil {
		t.Fatalf("GetUserSkills() error = %v", err)
	}
	if len(tracked) != 3 {
		t.Fatalf("Expected 3 tracked skills, got %d", len(tracked))
	}
	if tracked[0].SkillName != "Pandas" || tracked[2].SkillName != "Python" {
		t.Errorf("Ordering = [%s %s %s], want category then name",
			tracked[0].SkillName, tracked[1].SkillName, tracked[2].SkillName)
	}
}

func TestGetAnalyticsData(t *testing.T) {
	store := newTestStore(t)
	user := createTestUser(t, store, "jane@example.com")

	seedAnalysis(t, store, user.ID, 60, time.Now().Add(-2*time.Hour))
	seedAnalysis(t, store, user.ID, 80, time.Now().Add(-1*time.Hour))

	for _, s := range []*models.SkillTracking{
		{UserID: user.ID, SkillName: "Python", SkillCategory: "programming_languages", ProficiencyLevel: 4},
		{UserID: user.ID, SkillName: "Sql", SkillCategory: "programming_languages", ProficiencyLevel: 2},
	} {
		if err := store.UpsertSkill(s); err != nil {
			t.Fatalf("UpsertSkill() error = %v", err)
		}
	}

	analytics, err := store.GetAnalyticsData(user.ID)
	if err != nil {
		t.Fatalf("GetAnalyticsData() error = %v", err)
	}

	if len(analytics.Trends) != 2 {
		t.Errorf("Trends = %d points, want 2", len(analytics.Trends))
	}
	if len(analytics.Trends) == 2 && analytics.Trends[0].ATSScore != 60 {
		t.Errorf("First trend point score = %d, want oldest first", analytics.Trends[0].ATSScore)
	}

	if len(analytics.Skills) != 1 {
		t.Fatalf("Skill stats = %d categories, want 1", len(analytics.Skills))
	}
	stat := analytics.Skills[0]
	if stat.SkillCategory != "programming_languages" || stat.Count != 2 {
		t.Errorf("Skill stat = %+v, want programming_languages with count 2", stat)
	}
	if stat.AvgProficiency != 3.0 {
		t.Errorf("AvgProficiency = %v, want 3.0", stat.AvgProficiency)
	}

	if len(analytics.Recent) != 2 {
		t.Errorf("Recent = %d entries, want 2", len(analytics.Recent))
	}
}

func TestBackup(t *testing.T) {
	store := newTestStore(t)
	createTestUser(t, store, "jane@example.com")

	dir := filepath.Join(t.TempDir(), "backups")
	backupPath, err := store.Backup(dir)
	if err != nil {
		t.Fatalf("Backup() error = %v", err)
	}

	info, err := os.Stat(backupPath)
	if err != nil {
		t.Fatalf("Expected backup file at %s: %v", backupPath, err)
	}
	if info.Size() == 0 {
		t.Error("Backup file is empty")
	}
}
