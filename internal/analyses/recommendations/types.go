package recommendations

// Course is one learning resource for a skill.
type Course struct {
	Name     string `json:"name"`
	Link     string `json:"link"`
	Platform string `json:"platform"`
}

// Bundle is the learning material for a single skill.
type Bundle struct {
	Courses  []Course `json:"courses"`
	Roadmap  []string `json:"roadmap"`
	Projects []string `json:"projects"`
}

// Empty reports whether the bundle lacks a course, a roadmap step or a project.
func (b Bundle) Empty() bool {
	return len(b.Courses) == 0 || len(b.Roadmap) == 0 || len(b.Projects) == 0
}

func (b Bundle) clone() Bundle {
	return Bundle{
		Courses:  append([]Course(nil), b.Courses...),
		Roadmap:  append([]string(nil), b.Roadmap...),
		Projects: append([]string(nil), b.Projects...),
	}
}
