package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Surabhi222005/MentorMe/pkg/model"
)

var (
	ErrNoJSON      = errors.New("no json object in response")
	ErrNoQuestions = errors.New("response has no questions array")
)

// Payload is a normalized quiz. Only Questions is part of the wire format;
// the other fields describe how the questions were obtained.
type Payload struct {
	Questions []model.QuizQuestion `json:"questions"`

	// UsedFallback is set when the raw text could not be parsed at all.
	UsedFallback bool `json:"-"`
	// ParseErr is the reason the fallback set was used.
	ParseErr error `json:"-"`
	// Dropped counts parsed entries rejected as malformed.
	Dropped int `json:"-"`
	// Padded counts questions appended from the fallback set.
	Padded int `json:"-"`
}

// Normalize never fails: unparseable input yields the fallback set.
func Normalize(raw string) Payload {
	var p Payload

	parsed, dropped, err := parse(raw)
	if err != nil {
		p.UsedFallback = true
		p.ParseErr = err
		parsed = Fallback()
	}
	p.Dropped = dropped

	if len(parsed) < Size {
		p.Padded = Size - len(parsed)
	}
	p.Questions = Fit(parsed)
	return p
}

// ExtractSpan returns the text between the first '{' and the last '}'.
// Nothing in between is checked, so several objects produce one bad span.
func ExtractSpan(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(raw, "}")
	if end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// Parse extracts the questions array from raw and keeps the well-formed
// entries in their original order.
func Parse(raw string) ([]model.QuizQuestion, error) {
	qs, _, err := parse(raw)
	return qs, err
}

func parse(raw string) ([]model.QuizQuestion, int, error) {
	span, ok := ExtractSpan(raw)
	if !ok {
		return nil, 0, ErrNoJSON
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &doc); err != nil {
		return nil, 0, fmt.Errorf("decode quiz json: %w", err)
	}

	var entries []json.RawMessage
	if json.Unmarshal(doc["questions"], &entries) != nil || entries == nil {
		return nil, 0, ErrNoQuestions
	}

	out := make([]model.QuizQuestion, 0, len(entries))
	dropped := 0
	for _, e := range entries {
		q, ok := decodeQuestion(e)
		if !ok {
			dropped++
			continue
		}
		out = append(out, q)
	}
	return out, dropped, nil
}

// decodeQuestion reads one entry by its exact key names. correctAnswer may
// be any whole JSON number, so 1.0 is index 1.
func decodeQuestion(raw json.RawMessage) (model.QuizQuestion, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return model.QuizQuestion{}, false
	}

	var (
		q      model.QuizQuestion
		answer *float64
	)
	if json.Unmarshal(fields["question"], &q.Question) != nil ||
		json.Unmarshal(fields["options"], &q.Options) != nil ||
		json.Unmarshal(fields["correctAnswer"], &answer) != nil {
		return model.QuizQuestion{}, false
	}
	if answer == nil || *answer != math.Trunc(*answer) || *answer < 0 || *answer >= OptionCount {
		return model.QuizQuestion{}, false
	}
	q.CorrectAnswer = int(*answer)
	return q, Valid(q)
}

// Fit pads qs from the fallback set, picking fallback[len % Size] for each
// missing slot, or truncates it to the first Size entries.
func Fit(qs []model.QuizQuestion) []model.QuizQuestion {
	out := make([]model.QuizQuestion, 0, Size)
	for _, q := range qs {
		if len(out) == Size {
			break
		}
		q.Options = append([]string(nil), q.Options...)
		out = append(out, q)
	}
	for len(out) < Size {
		out = append(out, fallbackAt(len(out)%len(fallbackQuestions)))
	}
	return out
}
