package skills

import (
	"reflect"
	"testing"
)

func testVocabulary() Vocabulary {
	return NewVocabulary(DefaultCatalog().RequiredSkills(), []string{"RESTful APIs"})
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "python", want: "Python"},
		{in: "PYTHON", want: "Python"},
		{in: "javascript", want: "Javascript"},
		{in: "MySQL", want: "Mysql"},
		{in: "scikit-learn", want: "Scikit-Learn"},
		{in: "3d", want: "3D"},
		{in: "r", want: "R"},
		{in: "", want: ""},
		{in: "éclair", want: "Éclair"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Fatalf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractExample(t *testing.T) {
	ex := NewExtractor(testVocabulary())
	got := ex.Extract("I know Python, Git and Docker.")
	want := []string{"Docker", "Git", "Python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %v, want %v", got, want)
	}
}

func TestExtractDeduplicatesAndNormalizesCase(t *testing.T) {
	ex := NewExtractor(testVocabulary())
	got := ex.Extract("python;PYTHON\nPython.  docker,figma")
	want := []string{"Docker", "Figma", "Python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %v, want %v", got, want)
	}
}

func TestExtractEmptyText(t *testing.T) {
	ex := NewExtractor(testVocabulary())
	got := ex.Extract("")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestExtractNeverMatchesSplitOrMixedCaseSkills(t *testing.T) {
	ex := NewExtractor(testVocabulary())
	got := ex.Extract("Machine Learning, JavaScript, MySQL, Node.js, REST APIs, Scikit-learn")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestExtractOnlyVocabularyNoDuplicates(t *testing.T) {
	vocab := testVocabulary()
	ex := NewExtractor(vocab)
	inputs := []string{
		"R, r; R. Sql sql SQL statistics Statistics pandas",
		"Figma sketch Prototyping wireframing\tgit",
		"random words only",
		",,,;;;...\n\n",
	}
	for _, in := range inputs {
		got := ex.Extract(in)
		seen := map[string]bool{}
		for _, s := range got {
			if seen[s] {
				t.Fatalf("duplicate %q in %v", s, got)
			}
			seen[s] = true
			if !vocab.Contains(s) {
				t.Fatalf("%q not in vocabulary", s)
			}
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	c := DefaultCatalog()
	role, ok := c.Role("Software Engineer")
	if !ok {
		t.Fatalf("expected Software Engineer role")
	}
	if len(role.Skills) != 10 {
		t.Fatalf("expected 10 skills, got %d", len(role.Skills))
	}
	role.Skills[0] = "mutated"
	again, _ := c.Role("Software Engineer")
	if again.Skills[0] != "JavaScript" {
		t.Fatalf("catalog was mutated through a returned role")
	}
	if _, ok := c.Role("Astronaut"); ok {
		t.Fatalf("unexpected role")
	}
	if got := c.Names(); !reflect.DeepEqual(got, []string{"Software Engineer", "Data Scientist", "UX/UI Designer"}) {
		t.Fatalf("unexpected names %v", got)
	}
}

func TestRequiredSkillsUnion(t *testing.T) {
	all := DefaultCatalog().RequiredSkills()
	count := 0
	for _, s := range all {
		if s == "Python" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected Python once in union, got %d", count)
	}
	if len(all) != 27 {
		t.Fatalf("expected 27 distinct skills, got %d", len(all))
	}
}
