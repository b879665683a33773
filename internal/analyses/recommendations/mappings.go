package recommendations

// curated holds hand-picked learning bundles keyed by canonical skill name.
var curated = map[string]Bundle{
	"Python": {
		Courses:  []Course{{Name: "Complete Python Pro Bootcamp", Link: "https://www.udemy.com/course/100-days-of-code/", Platform: "Udemy"}},
		Roadmap:  []string{"Learn basic syntax", "Object-oriented programming", "NumPy/Pandas"},
		Projects: []string{"Web scraper", "CLI app", "Flask/Django app"},
	},
	"React": {
		Courses:  []Course{{Name: "React - The Complete Guide", Link: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Platform: "Udemy"}},
		Roadmap:  []string{"Components, props, state", "Hooks", "Redux/Context API"},
		Projects: []string{"To-do app", "Portfolio website", "Weather app"},
	},
	"Git": {
		Courses:  []Course{{Name: "Git & GitHub Crash Course", Link: "https://www.udemy.com/course/git-and-github-crash-course/", Platform: "Udemy"}},
		Roadmap:  []string{"Learn git commands", "Understand branching and merging", "Use GitHub for version control"},
		Projects: []string{"Collaborative coding project using Git", "Host code on GitHub"},
	},
	"Docker": {
		Courses:  []Course{{Name: "Docker Mastery", Link: "https://www.udemy.com/course/docker-mastery/", Platform: "Udemy"}},
		Roadmap:  []string{"Learn containers", "Docker CLI basics", "Docker Compose"},
		Projects: []string{"Dockerize a Python/Node.js app", "Deploy multi-container app"},
	},
	"RESTful APIs": {
		Courses:  []Course{{Name: "REST API Design with Flask and Python", Link: "https://www.udemy.com/course/rest-api-flask-and-python/", Platform: "Udemy"}},
		Roadmap:  []string{"Understand REST principles", "Learn Flask/Django API basics", "Test APIs with Postman"},
		Projects: []string{"Build a simple REST API", "Connect API to frontend app"},
	},
	"SQL": {
		Courses:  []Course{{Name: "The Complete SQL Bootcamp", Link: "https://www.udemy.com/course/the-complete-sql-bootcamp/", Platform: "Udemy"}},
		Roadmap:  []string{"SELECT, FROM, WHERE", "JOINs & subqueries", "Window functions"},
		Projects: []string{"Analyze sales data", "Design a database schema", "Solve LeetCode SQL challenges"},
	},
	"Machine Learning": {
		Courses:  []Course{{Name: "Machine Learning by Andrew Ng", Link: "https://www.coursera.org/learn/machine-learning", Platform: "Coursera"}},
		Roadmap:  []string{"Linear algebra basics", "Supervised/unsupervised learning", "Evaluate models"},
		Projects: []string{"Spam classifier", "Movie recommender", "Predict housing prices"},
	},
	"Data Visualization": {
		Courses:  []Course{{Name: "Data Visualization with Python", Link: "https://www.coursera.org/learn/python-for-data-visualization", Platform: "Coursera"}},
		Roadmap:  []string{"Learn Matplotlib/Seaborn", "Understand data storytelling", "Build dashboards"},
		Projects: []string{"Visualize sales trends", "Interactive dashboard", "Plot public dataset"},
	},
	"Cloud Computing": {
		Courses:  []Course{{Name: "AWS Certified Cloud Practitioner", Link: "https://aws.amazon.com/certification/certified-cloud-practitioner/", Platform: "AWS"}},
		Roadmap:  []string{"Learn IaaS/PaaS/SaaS", "Key services: compute/storage/databases", "Practice in AWS free tier"},
		Projects: []string{"Deploy static website on S3", "Host Node.js app on EC2", "Serverless function (Lambda)"},
	},
}
