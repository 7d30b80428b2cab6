package skills

import "sort"

// Dictionary holds the flat technical skill keywords scanned for in resume
// text, grouped by category. Matching against it is always case-insensitive.
var Dictionary = map[string][]string{
	"programming_languages": {
		"python", "r", "java", "scala", "sql", "javascript", "c++", "c#",
		"matlab", "sas", "spss", "julia", "go", "rust", "kotlin",
	},
	"data_science_tools": {
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
		"matplotlib", "seaborn", "plotly", "bokeh", "jupyter", "anaconda",
		"spyder", "rstudio", "tableau", "power bi", "qlik",
	},
	"machine_learning": {
		"machine learning", "deep learning", "neural networks", "nlp",
		"computer vision", "reinforcement learning", "supervised learning",
		"unsupervised learning", "regression", "classification", "clustering",
		"random forest", "svm", "decision trees", "gradient boosting",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "cassandra", "redis", "elasticsearch",
		"oracle", "sql server", "sqlite", "hive", "spark sql",
	},
	"cloud_platforms": {
		"aws", "azure", "google cloud", "gcp", "docker", "kubernetes",
		"apache spark", "hadoop", "kafka", "airflow", "jenkins",
	},
	"analytics_tools": {
		"excel", "google analytics", "mixpanel", "segment", "looker",
		"databricks", "snowflake", "redshift", "bigquery",
	},
}

// database grades known skills by the experience level they usually indicate.
// Used for skill level classification and gap prioritization.
var database = map[string]map[string][]string{
	"programming_languages": {
		"beginner":     {"Python", "SQL", "R", "JavaScript", "HTML", "CSS"},
		"intermediate": {"Java", "C++", "Scala", "Go", "Ruby", "PHP"},
		"advanced":     {"Rust", "Julia", "Kotlin", "Swift", "C#", "MATLAB"},
	},
	"data_science_libraries": {
		"beginner":     {"Pandas", "NumPy", "Matplotlib", "Seaborn", "Plotly"},
		"intermediate": {"Scikit-learn", "TensorFlow", "Keras", "PyTorch", "OpenCV"},
		"advanced":     {"JAX", "Hugging Face", "MLflow", "Kubeflow", "Apache Spark"},
	},
	"machine_learning": {
		"beginner":     {"Linear Regression", "Logistic Regression", "Decision Trees", "K-Means"},
		"intermediate": {"Random Forest", "SVM", "Neural Networks", "NLP", "Computer Vision"},
		"advanced":     {"Deep Learning", "Reinforcement Learning", "GANs", "Transformer Models", "MLOps"},
	},
	"databases": {
		"beginner":     {"MySQL", "SQLite", "PostgreSQL", "Excel"},
		"intermediate": {"MongoDB", "Redis", "Cassandra", "Neo4j"},
		"advanced":     {"Elasticsearch", "Apache Kafka", "ClickHouse", "Snowflake"},
	},
	"cloud_platforms": {
		"beginner":     {"AWS S3", "Google Drive", "Dropbox"},
		"intermediate": {"AWS EC2", "Azure", "Google Cloud Platform", "Docker"},
		"advanced":     {"Kubernetes", "Apache Airflow", "Terraform", "Jenkins"},
	},
	"data_visualization": {
		"beginner":     {"Excel Charts", "Google Sheets", "Matplotlib", "Seaborn"},
		"intermediate": {"Tableau", "Power BI", "Plotly", "D3.js"},
		"advanced":     {"Looker", "Qlik Sense", "Custom Dashboards", "Real-time Viz"},
	},
	"analytics_tools": {
		"beginner":     {"Google Analytics", "Excel Pivot Tables"},
		"intermediate": {"Jupyter Notebooks", "RStudio", "Databricks"},
		"advanced":     {"Apache Zeppelin", "MLflow", "Weights & Biases"},
	},
	"soft_skills": {
		"beginner":     {"Communication", "Teamwork", "Problem Solving"},
		"intermediate": {"Project Management", "Leadership", "Presentation Skills"},
		"advanced":     {"Strategic Thinking", "Mentoring", "Cross-functional Collaboration"},
	},
}

// synonyms maps a canonical skill name to its accepted variations
var synonyms = map[string][]string{
	"machine learning":            {"ml", "artificial intelligence", "ai"},
	"python":                      {"python programming", "python development"},
	"sql":                         {"structured query language", "database queries"},
	"tensorflow":                  {"tf", "tensor flow"},
	"pytorch":                     {"torch"},
	"data visualization":          {"data viz", "visualization", "charting"},
	"amazon web services":         {"aws"},
	"google cloud platform":       {"gcp", "google cloud"},
	"microsoft azure":             {"azure"},
	"natural language processing": {"nlp"},
	"computer vision":             {"cv", "image processing"},
}

// RoleRequirement describes the skill profile expected for a job role
type RoleRequirement struct {
	CoreSkills      []string
	PreferredSkills []string
	ExperienceLevel string
}

var roleRequirements = map[string]RoleRequirement{
	"Data Scientist": {
		CoreSkills:      []string{"Python", "SQL", "Machine Learning", "Statistics", "Data Visualization"},
		PreferredSkills: []string{"R", "TensorFlow", "PyTorch", "Tableau", "AWS"},
		ExperienceLevel: "intermediate",
	},
	"Data Analyst": {
		CoreSkills:      []string{"SQL", "Excel", "Python", "Data Visualization", "Statistics"},
		PreferredSkills: []string{"Tableau", "Power BI", "R", "Google Analytics"},
		ExperienceLevel: "beginner",
	},
	"Machine Learning Engineer": {
		CoreSkills:      []string{"Python", "Machine Learning", "TensorFlow", "PyTorch", "MLOps"},
		PreferredSkills: []string{"Docker", "Kubernetes", "AWS", "Apache Spark"},
		ExperienceLevel: "advanced",
	},
	"Data Engineer": {
		CoreSkills:      []string{"Python", "SQL", "Apache Spark", "ETL", "Cloud Platforms"},
		PreferredSkills: []string{"Kafka", "Airflow", "Docker", "Kubernetes"},
		ExperienceLevel: "intermediate",
	},
	"Business Intelligence Analyst": {
		CoreSkills:      []string{"SQL", "Tableau", "Power BI", "Excel", "Data Modeling"},
		PreferredSkills: []string{"Python", "R", "DAX", "ETL Tools"},
		ExperienceLevel: "beginner",
	},
	"Research Scientist": {
		CoreSkills:      []string{"Python", "R", "Statistics", "Machine Learning", "Research Methods"},
		PreferredSkills: []string{"Deep Learning", "Publications", "Mathematics", "Domain Expertise"},
		ExperienceLevel: "advanced",
	},
}

// Roles lists the role names with a known requirement profile
func Roles() []string {
	names := make([]string, 0, len(roleRequirements))
	for name := range roleRequirements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryOf returns the dictionary category a skill belongs to, or "other"
func CategoryOf(skill string) string {
	lower := normalizeToken(skill)
	for category, list := range Dictionary {
		for _, s := range list {
			if s == lower {
				return category
			}
		}
	}
	return "other"
}
