package generation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTweetLength is the per-tweet character budget, counted in runes.
const MaxTweetLength = 280

// Segment is a single tweet carved out of a raw completion.
type Segment struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// ErrEmptyInput means no usable tweet candidates survived segmentation.
var ErrEmptyInput = errors.New("no tweet candidates in completion")

// CountMismatchError reports a thread that split into the wrong number of tweets.
type CountMismatchError struct {
	Actual   int
	Expected int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("thread split into %d tweets, expected %d", e.Actual, e.Expected)
}

// SplitThread splits a raw completion into tweets on blank lines. Candidates
// longer than MaxTweetLength runes are discarded, never truncated. When want
// is positive the surviving count must match it exactly.
func SplitThread(raw string, want int) ([]Segment, error) {
	segs := collect(splitParagraphs(raw))
	if want > 0 && len(segs) != want {
		return nil, &CountMismatchError{Actual: len(segs), Expected: want}
	}
	if len(segs) == 0 {
		return nil, ErrEmptyInput
	}
	return segs, nil
}

// SplitLenient splits a raw completion on blank lines without enforcing a
// count or a length limit. If that yields nothing it retries on single
// newlines, and as a last resort returns the whole trimmed text as one
// segment.
func SplitLenient(raw string) ([]Segment, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}
	cands := splitParagraphs(raw)
	if len(cands) == 0 {
		cands = splitLines(raw)
	}
	if len(cands) == 0 {
		cands = []string{strings.TrimSpace(raw)}
	}
	segs := make([]Segment, len(cands))
	for i, c := range cands {
		segs[i] = Segment{Index: i, Text: c}
	}
	return segs, nil
}

// collect applies the length limit and assigns indexes in input order.
func collect(cands []string) []Segment {
	segs := make([]Segment, 0, len(cands))
	for _, c := range cands {
		if utf8.RuneCountInString(c) > MaxTweetLength {
			continue
		}
		segs = append(segs, Segment{Index: len(segs), Text: c})
	}
	return segs
}

// splitParagraphs groups consecutive non-blank lines into trimmed paragraphs.
// A line containing only whitespace counts as a separator.
func splitParagraphs(raw string) []string {
	var out []string
	var buf []string
	flush := func() {
		if len(buf) == 0 {
			return
		}
		if p := strings.TrimSpace(strings.Join(buf, "\n")); p != "" {
			out = append(out, p)
		}
		buf = buf[:0]
	}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return out
}

func splitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}
