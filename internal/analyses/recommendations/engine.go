package recommendations

import "sort"

const (
	placeholderLink     = "#"
	placeholderPlatform = "Various"
)

// Resolve returns the learning bundle for skill. Skills without a curated entry
// get a generic bundle built from the skill name, so the result is never empty.
func Resolve(skill string) Bundle {
	if b, ok := curated[skill]; ok {
		return b.clone()
	}
	return synthesize(skill)
}

// CuratedSkills lists the skills with hand-picked bundles, sorted.
func CuratedSkills() []string {
	out := make([]string, 0, len(curated))
	for k := range curated {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func synthesize(skill string) Bundle {
	return Bundle{
		Courses: []Course{{
			Name:     "Learn " + skill,
			Link:     placeholderLink,
			Platform: placeholderPlatform,
		}},
		Roadmap: []string{
			"Understand basics of " + skill,
			"Practice " + skill,
			"Apply " + skill + " in a project",
		},
		Projects: []string{"Build a small project using " + skill},
	}
}
