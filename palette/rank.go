package palette

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

// Ranked is the score of one command for the current filter.
type Ranked struct {
	Index Index
	Score int
}

// Rank scores all commands against filter and returns them ordered by
// descending score. Ties go to the shorter detail text and then to the
// command registered first, so the order only depends on the filter and
// the registered commands. The result is appended to dst[:0].
func (r *Registry) Rank(scorer *Scorer, filter string, dst []Ranked) []Ranked {
	q := scorer.compile(filter)

	ranking := dst[:0]
	lengths := make([]int, len(r.commands))

	for idx := range r.commands {
		detail := r.commands[idx].Detail
		lengths[idx] = utf8.RuneCountInString(detail)

		ranking = append(ranking, Ranked{
			Index: Index(idx),
			Score: q.score(scorer, detail),
		})
	}

	slices.SortFunc(ranking, func(a, b Ranked) int {
		return cmp.Or(
			cmp.Compare(b.Score, a.Score),
			cmp.Compare(lengths[a.Index], lengths[b.Index]),
			cmp.Compare(a.Index, b.Index),
		)
	})

	return ranking
}
