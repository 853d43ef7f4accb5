package quiz

import (
	"fmt"
)

// ParseDocument builds a validated Quiz from a decoded quiz document.
// The document is either a sequence of question records, or a mapping with
// an optional "instructions" string and a "questions" sequence.
//
// Parsing runs in two passes: each record is parsed and structurally
// validated on its own, then the whole set is cross-validated (unique ids,
// resolvable depends references). Any failure aborts the load.
func ParseDocument(doc any) (*Quiz, error) {
	qz := &Quiz{}

	records, ok := doc.([]any)
	if !ok {
		m, isMap := doc.(map[string]any)
		if !isMap {
			return nil, &ParseError{
				Code:     ErrTypeMismatch,
				Question: "document",
				Detail:   fmt.Sprintf("expected a question list or a quiz mapping, got %T", doc),
			}
		}
		if v, present := m["instructions"]; present {
			s, isStr := v.(string)
			if !isStr {
				return nil, &ParseError{
					Code:     ErrTypeMismatch,
					Question: "document",
					Field:    "instructions",
					Detail:   fmt.Sprintf("expected string, got %T", v),
				}
			}
			qz.Instructions = s
		}
		v, present := m["questions"]
		if !present {
			return nil, &ParseError{
				Code:     ErrMissingField,
				Question: "document",
				Field:    "questions",
			}
		}
		records, ok = v.([]any)
		if !ok {
			return nil, &ParseError{
				Code:     ErrTypeMismatch,
				Question: "document",
				Field:    "questions",
				Detail:   fmt.Sprintf("expected sequence, got %T", v),
			}
		}
	}

	qz.Questions = make([]Question, 0, len(records))
	for i, rec := range records {
		raw, isMap := rec.(map[string]any)
		if !isMap {
			return nil, &ParseError{
				Code:     ErrTypeMismatch,
				Question: questionRef(i, ""),
				Detail:   fmt.Sprintf("expected mapping, got %T", rec),
			}
		}
		q, err := parseQuestion(i, raw)
		if err != nil {
			return nil, err
		}
		qz.Questions = append(qz.Questions, q)
	}

	if err := validateSet(qz.Questions); err != nil {
		return nil, err
	}
	return qz, nil
}

// parseQuestion parses a single raw record into a Question.
func parseQuestion(index int, raw map[string]any) (Question, error) {
	var q Question

	// id first, so later errors can name the question.
	id, err := optionalString(index, "", raw, "id")
	if err != nil {
		return q, err
	}
	q.ID = id
	ref := questionRef(index, id)

	kindStr, err := optionalString(index, id, raw, "kind")
	if err != nil {
		return q, err
	}
	kind, ok := ParseKind(kindStr)
	if !ok {
		return q, &ParseError{
			Code:     ErrUnknownKind,
			Question: ref,
			Field:    "kind",
			Detail:   fmt.Sprintf("%q", kindStr),
		}
	}
	q.Kind = kind

	text, err := requiredStringList(ref, raw, "text")
	if err != nil {
		return q, err
	}
	q.Text = Text(text)

	q.Depends, err = optionalString(index, id, raw, "depends")
	if err != nil {
		return q, err
	}

	q.Tags, err = optionalStringList(ref, raw, "tags")
	if err != nil {
		return q, err
	}

	q.Explanations, err = parseExplanations(ref, raw)
	if err != nil {
		return q, err
	}

	switch q.Kind {
	case KindShortAnswer:
		q.Answer, err = requiredVariantSet(ref, raw, "answer")
		if err != nil {
			return q, err
		}

	case KindMultipleChoice:
		q.Answer, err = requiredVariantSet(ref, raw, "answer")
		if err != nil {
			return q, err
		}
		q.Candidates, err = optionalStringList(ref, raw, "candidates")
		if err != nil {
			return q, err
		}
		if len(q.Candidates) == 0 {
			return q, &ParseError{Code: ErrMissingField, Question: ref, Field: "candidates"}
		}

	case KindListAnswer, KindOrderedListAnswer:
		q.AnswerItems, err = requiredVariantSetList(ref, raw, "answer_list")
		if err != nil {
			return q, err
		}

	case KindUngraded:
		// The sample answer shares the "answer" field; when variants are
		// given the canonical (first) form is shown.
		vs, verr := requiredVariantSet(ref, raw, "answer")
		if verr != nil {
			return q, verr
		}
		q.SampleAnswer = vs.Canonical()
	}

	return q, nil
}

// validateSet cross-validates the whole parsed set: non-empty ids must be
// unique and every depends value must resolve to an existing id.
func validateSet(questions []Question) error {
	byID := make(map[string]bool, len(questions))
	for i := range questions {
		id := questions[i].ID
		if id == "" {
			continue
		}
		if byID[id] {
			return &ParseError{
				Code:     ErrDuplicateID,
				Question: questionRef(i, id),
				Field:    "id",
			}
		}
		byID[id] = true
	}

	for i := range questions {
		dep := questions[i].Depends
		if dep == "" {
			continue
		}
		if !byID[dep] {
			return &ParseError{
				Code:     ErrDanglingDependency,
				Question: questionRef(i, questions[i].ID),
				Field:    "depends",
				Detail:   fmt.Sprintf("no question with id %q", dep),
			}
		}
	}
	return nil
}

func parseExplanations(ref string, raw map[string]any) (map[string]string, error) {
	v, present := raw["explanations"]
	if !present {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &ParseError{
			Code:     ErrTypeMismatch,
			Question: ref,
			Field:    "explanations",
			Detail:   fmt.Sprintf("expected mapping, got %T", v),
		}
	}
	out := make(map[string]string, len(m))
	for key, val := range m {
		s, isStr := val.(string)
		if !isStr {
			return nil, &ParseError{
				Code:     ErrTypeMismatch,
				Question: ref,
				Field:    "explanations",
				Detail:   fmt.Sprintf("value for %q: expected string, got %T", key, val),
			}
		}
		// Keys are stored lowercase so grading can look up normalized
		// responses directly.
		out[Normalize(key)] = s
	}
	return out, nil
}

// optionalString reads a plain string field. A non-string value, notably a
// sequence, is a TypeMismatch rather than a silent first-element pick.
func optionalString(index int, id string, raw map[string]any, field string) (string, error) {
	v, present := raw[field]
	if !present {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &ParseError{
			Code:     ErrTypeMismatch,
			Question: questionRef(index, id),
			Field:    field,
			Detail:   fmt.Sprintf("expected string, got %T", v),
		}
	}
	return s, nil
}

// stringOrList normalizes a field that accepts either a single string or a
// sequence of strings.
func stringOrList(ref, field string, v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, &ParseError{
					Code:     ErrTypeMismatch,
					Question: ref,
					Field:    field,
					Detail:   fmt.Sprintf("expected string element, got %T", item),
				}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &ParseError{
			Code:     ErrTypeMismatch,
			Question: ref,
			Field:    field,
			Detail:   fmt.Sprintf("expected string or sequence, got %T", v),
		}
	}
}

func requiredStringList(ref string, raw map[string]any, field string) ([]string, error) {
	v, present := raw[field]
	if !present {
		return nil, &ParseError{Code: ErrMissingField, Question: ref, Field: field}
	}
	list, err := stringOrList(ref, field, v)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &ParseError{Code: ErrMissingField, Question: ref, Field: field, Detail: "empty"}
	}
	return list, nil
}

func optionalStringList(ref string, raw map[string]any, field string) ([]string, error) {
	v, present := raw[field]
	if !present {
		return nil, nil
	}
	return stringOrList(ref, field, v)
}

func requiredVariantSet(ref string, raw map[string]any, field string) (VariantSet, error) {
	list, err := requiredStringList(ref, raw, field)
	if err != nil {
		return nil, err
	}
	return VariantSet(list), nil
}

// requiredVariantSetList parses answer_list: a sequence whose elements are
// each a string or a sequence of interchangeable variants.
func requiredVariantSetList(ref string, raw map[string]any, field string) ([]VariantSet, error) {
	v, present := raw[field]
	if !present {
		return nil, &ParseError{Code: ErrMissingField, Question: ref, Field: field}
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, &ParseError{
			Code:     ErrTypeMismatch,
			Question: ref,
			Field:    field,
			Detail:   fmt.Sprintf("expected sequence, got %T", v),
		}
	}
	if len(seq) == 0 {
		return nil, &ParseError{Code: ErrMissingField, Question: ref, Field: field, Detail: "empty"}
	}
	out := make([]VariantSet, 0, len(seq))
	for _, item := range seq {
		variants, err := stringOrList(ref, field, item)
		if err != nil {
			return nil, err
		}
		if len(variants) == 0 {
			return nil, &ParseError{Code: ErrMissingField, Question: ref, Field: field, Detail: "empty answer item"}
		}
		out = append(out, VariantSet(variants))
	}
	return out, nil
}
