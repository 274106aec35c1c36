package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidMarks is returned when a marks object cannot be decoded: it is
// not a JSON object, or one of its values is not a number.
var ErrInvalidMarks = errors.New("marks must be an object of subject to numeric score")

// Marks is an ordered association list of subject scores.
//
// On the wire it is a JSON object ({"maths": 85, "science": 92}). Decoding
// keeps the key order of the document; a repeated subject keeps its first
// position and takes the last value.
type Marks []Mark

// Set records score for subject, replacing an existing entry in place.
func (m *Marks) Set(subject string, score float64) {
	for i := range *m {
		if (*m)[i].Subject == subject {
			(*m)[i].Score = score
			return
		}
	}
	*m = append(*m, Mark{Subject: subject, Score: score})
}

// UnmarshalJSON decodes a JSON object, preserving key order.
// A JSON null leaves the list nil so that validation reports it missing.
func (m *Marks) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMarks, err)
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrInvalidMarks
	}

	// index maps a subject to its position so a repeated key is updated in
	// place without rescanning the list.
	marks := Marks{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMarks, err)
		}
		subject := tok.(string) // object keys are always strings

		// UseNumber makes every JSON number arrive as json.Number, so any
		// other dynamic type (string, bool, null, object) is not a score.
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMarks, err)
		}
		score, ok := value.(json.Number)
		if !ok {
			return fmt.Errorf("%w: subject %q has non-numeric score %v",
				ErrInvalidMarks, subject, value)
		}
		parsed, err := score.Float64()
		if err != nil {
			return fmt.Errorf("%w: subject %q: %w", ErrInvalidMarks, subject, err)
		}

		if i, seen := index[subject]; seen {
			marks[i].Score = parsed
			continue
		}
		index[subject] = len(marks)
		marks = append(marks, Mark{Subject: subject, Score: parsed})
	}

	*m = marks
	return nil
}

// MarshalJSON encodes the list as a JSON object in list order.
func (m Marks) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mark := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mark.Subject)
		if err != nil {
			return nil, err
		}
		score, err := json.Marshal(mark.Score)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(score)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
