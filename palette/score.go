package palette

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
)

// added for every filter token contained in the text
const containsBonus = 100

const defaultPatternCacheSize = 256

// Scorer computes fuzzy scores of texts against a filter. Each whitespace
// separated token of the filter adds containsBonus if the text contains it,
// ignoring case, plus the number of case insensitive matches of the token
// used as a regular expression. Tokens that are not valid expressions only
// contribute the containment bonus.
//
// A Scorer is not safe for concurrent use.
type Scorer struct {
	// compiled tokens, nil for tokens that do not compile
	patterns *lru.Cache[string, *regexp.Regexp]

	folder cases.Caser
}

func NewScorer(cacheSize int) *Scorer {
	if cacheSize <= 0 {
		cacheSize = defaultPatternCacheSize
	}

	patterns, err := lru.New[string, *regexp.Regexp](cacheSize)
	if err != nil {
		// only fails for non-positive sizes
		panic(err)
	}

	return &Scorer{
		patterns: patterns,
		folder:   cases.Fold(),
	}
}

// Score returns the score of text for the given filter. An empty filter scores 0.
func (s *Scorer) Score(filter, text string) int {
	return s.compile(filter).score(s, text)
}

type token struct {
	folded  string
	pattern *regexp.Regexp
}

type query []token

func (s *Scorer) compile(filter string) query {
	fields := strings.Fields(filter)

	q := make(query, 0, len(fields))
	for _, field := range fields {
		q = append(q, token{
			folded:  s.fold(field),
			pattern: s.pattern(field),
		})
	}

	return q
}

func (q query) score(s *Scorer, text string) int {
	if len(q) == 0 {
		return 0
	}

	folded := s.fold(text)

	var score int
	for _, tok := range q {
		if strings.Contains(folded, tok.folded) {
			score += containsBonus
		}

		if tok.pattern != nil {
			score += len(tok.pattern.FindAllStringIndex(text, -1))
		}
	}

	return score
}

func (s *Scorer) fold(value string) string {
	return s.folder.String(value)
}

// pattern returns the compiled expression for field, or nil if it is invalid.
func (s *Scorer) pattern(field string) *regexp.Regexp {
	if pattern, ok := s.patterns.Get(field); ok {
		return pattern
	}

	// the error is dropped: partially typed filters are often no valid expression
	pattern, err := regexp.Compile("(?i)" + field)
	if err != nil {
		pattern = nil
	}

	s.patterns.Add(field, pattern)
	return pattern
}
