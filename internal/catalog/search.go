package catalog

import "strings"

// Query filters exercises across packs. Empty fields match everything.
type Query struct {
	Text       string
	Difficulty Difficulty
	Tag        string
}

// Match is an exercise found by Search together with its pack.
type Match struct {
	Pack     string
	Exercise *Exercise
}

// Search returns the exercises matching q, in pack then catalog order.
// Every whitespace-separated term of q.Text must occur (ignoring case) in the
// exercise ID, title, category, prompt or tags.
func Search(packs []*Pack, q Query) []Match {
	terms := strings.Fields(strings.ToLower(q.Text))

	var matches []Match
	for _, p := range packs {
		for i := range p.Exercises {
			ex := &p.Exercises[i]
			if q.Difficulty != "" && ex.Difficulty != q.Difficulty {
				continue
			}
			if q.Tag != "" && !hasTag(ex.Tags, q.Tag) {
				continue
			}
			if !containsAll(haystack(ex), terms) {
				continue
			}
			matches = append(matches, Match{Pack: p.Name, Exercise: ex})
		}
	}
	return matches
}

func haystack(ex *Exercise) string {
	parts := []string{ex.ID, ex.Title, ex.Category, ex.Prompt}
	parts = append(parts, ex.Tags...)
	return strings.ToLower(strings.Join(parts, "\n"))
}

func containsAll(s string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(s, t) {
			return false
		}
	}
	return true
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
