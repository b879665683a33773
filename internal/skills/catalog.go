package skills

import "strings"

// Role is a named job profile with its required skills in display order.
type Role struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Catalog is the closed, read-only set of roles offered to users.
type Catalog struct {
	roles  []Role
	byName map[string]int
}

// NewCatalog builds a catalog; later duplicates of a role name are ignored.
func NewCatalog(roles ...Role) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(roles))}
	for _, r := range roles {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		if _, ok := c.byName[name]; ok {
			continue
		}
		c.byName[name] = len(c.roles)
		c.roles = append(c.roles, Role{Name: name, Skills: append([]string(nil), r.Skills...)})
	}
	return c
}

// DefaultCatalog returns the built-in role catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Role{
			Name: "Software Engineer",
			Skills: []string{
				"JavaScript", "React", "Node.js", "Python", "Git", "MySQL",
				"Data Structures & Algorithms", "Cloud Computing", "Docker", "REST APIs",
			},
		},
		Role{
			Name: "Data Scientist",
			Skills: []string{
				"Python", "R", "SQL", "Machine Learning", "Statistics", "Data Visualization",
				"Pandas", "NumPy", "Scikit-learn", "TensorFlow/PyTorch", "Big Data",
			},
		},
		Role{
			Name: "UX/UI Designer",
			Skills: []string{
				"Figma", "Sketch", "Adobe XD", "Wireframing", "Prototyping", "Visual Design", "HTML/CSS",
			},
		},
	)
}

// Role looks a role up by exact name. The returned role is a copy.
func (c *Catalog) Role(name string) (Role, bool) {
	if c == nil {
		return Role{}, false
	}
	idx, ok := c.byName[strings.TrimSpace(name)]
	if !ok {
		return Role{}, false
	}
	r := c.roles[idx]
	return Role{Name: r.Name, Skills: append([]string(nil), r.Skills...)}, true
}

// Roles returns every role in catalog order.
func (c *Catalog) Roles() []Role {
	if c == nil {
		return nil
	}
	out := make([]Role, 0, len(c.roles))
	for _, r := range c.roles {
		out = append(out, Role{Name: r.Name, Skills: append([]string(nil), r.Skills...)})
	}
	return out
}

// Names returns role names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.roles))
	for _, r := range c.roles {
		out = append(out, r.Name)
	}
	return out
}

// RequiredSkills returns the union of every role's skills, first occurrence order.
func (c *Catalog) RequiredSkills() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, r := range c.roles {
		for _, s := range r.Skills {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
