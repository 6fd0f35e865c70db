package taxonomy

// Default returns the built-in skill vocabulary. Deployments extend it
// through configuration rather than editing this table.
func Default() *Taxonomy {
	categories := map[string][]string{
		"programming": {
			"python", "java", "javascript", "typescript", "c++", "c#", "go",
			"ruby", "php", "swift", "kotlin", "rust", "scala", "sql", "r",
		},
		"databases": {
			"mysql", "postgresql", "mongodb", "redis", "oracle", "sqlite",
			"dynamodb", "cassandra", "firebase",
		},
		"cloud": {
			"aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
			"terraform", "ansible", "vagrant",
		},
		"web frameworks": {
			"django", "flask", "fastapi", "react", "angular", "vue",
			"node.js", "express.js", "spring", "laravel", "ruby on rails",
			"asp.net",
		},
		"methodologies": {
			"agile", "scrum", "kanban", "devops", "ci/cd", "tdd", "bdd",
			"waterfall", "microservices", "rest api", "machine learning",
			"deep learning",
		},
		"tools": {
			"git", "github", "gitlab", "jira", "confluence", "postman",
			"figma", "trello",
		},
		"data science": {
			"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn",
			"spark", "hadoop", "tableau", "power bi", "matplotlib",
		},
		"mobile": {
			"android", "ios", "react native", "flutter", "xamarin",
		},
		"soft skills": {
			"leadership", "communication", "teamwork", "problem-solving",
			"critical thinking", "time management",
		},
	}

	aliases := map[string]string{
		"golang":                "go",
		"js":                    "javascript",
		"ecmascript":            "javascript",
		"react.js":              "react",
		"angularjs":             "angular",
		"vue.js":                "vue",
		"node":                  "node.js",
		"nodejs":                "node.js",
		"express":               "express.js",
		"postgres":              "postgresql",
		"amazon web services":   "aws",
		"microsoft azure":       "azure",
		"google cloud":          "gcp",
		"google cloud platform": "gcp",
		"k8s":                   "kubernetes",
		"kubernetes cluster":    "kubernetes",
		"cicd":                  "ci/cd",
		"continuous integration": "ci/cd",
		"restful api":           "rest api",
		"restful":               "rest api",
		"ml":                    "machine learning",
		"sklearn":               "scikit-learn",
	}

	return New(categories, aliases)
}
