package suggest

import (
	"regexp"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Suggestion is one matched source entry. Text is always the plain entry;
// MatchStart and MatchEnd are byte offsets of the first matched span.
type Suggestion struct {
	Text       string
	MatchStart int
	MatchEnd   int
}

// Segments splits the suggestion around its highlighted span.
func (s Suggestion) Segments() (before, match, after string) {
	start, end := s.MatchStart, s.MatchEnd
	if start < 0 || end > len(s.Text) || start > end {
		return s.Text, "", ""
	}
	return s.Text[:start], s.Text[start:end], s.Text[end:]
}

// compilePattern builds the case-insensitive word-boundary pattern for text.
// The typed text is quoted so metacharacters are matched literally.
func compilePattern(text string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b(` + regexp.QuoteMeta(text) + `)`)
}

// Match returns the entries of source that contain text at a word boundary,
// in source order.
//
// Texts shorter than minLength (in runes) yield nothing. The cap is checked
// before each entry is tested, so up to maxResults+1 entries are returned.
func Match(source []string, text string, minLength, maxResults int) []Suggestion {
	return matchWithLogger(source, text, minLength, maxResults, zap.NewNop())
}

func matchWithLogger(source []string, text string, minLength, maxResults int, logger *zap.Logger) []Suggestion {
	if utf8.RuneCountInString(text) < minLength {
		return nil
	}

	re, err := compilePattern(text)
	if err != nil {
		// Unreachable with quoted input; degrade to no suggestions regardless.
		logger.Warn("failed to compile suggestion pattern", zap.String("text", text), zap.Error(err))
		return nil
	}

	var result []Suggestion
	for _, entry := range source {
		if len(result) > maxResults {
			break
		}
		loc := re.FindStringSubmatchIndex(entry)
		if loc == nil {
			continue
		}
		result = append(result, Suggestion{
			Text:       entry,
			MatchStart: loc[2],
			MatchEnd:   loc[3],
		})
	}

	return result
}
