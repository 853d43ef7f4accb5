package quiz

// Record converts a Question back into the raw document form understood by
// ParseDocument. Single-element lists collapse to plain strings, matching
// the authoring style of hand-written quiz files. Parsing the result yields
// a question semantically equal to q.
func (q *Question) Record() map[string]any {
	rec := map[string]any{
		"text": collapse(q.Text),
	}
	if q.Kind != KindShortAnswer {
		rec["kind"] = q.Kind.String()
	}

	switch q.Kind {
	case KindShortAnswer:
		rec["answer"] = collapse(q.Answer)
	case KindMultipleChoice:
		rec["answer"] = collapse(q.Answer)
		rec["candidates"] = expand(q.Candidates)
	case KindListAnswer, KindOrderedListAnswer:
		items := make([]any, 0, len(q.AnswerItems))
		for _, vs := range q.AnswerItems {
			items = append(items, collapse(vs))
		}
		rec["answer_list"] = items
	case KindUngraded:
		rec["answer"] = q.SampleAnswer
	}

	if q.ID != "" {
		rec["id"] = q.ID
	}
	if q.Depends != "" {
		rec["depends"] = q.Depends
	}
	if len(q.Tags) > 0 {
		rec["tags"] = expand(q.Tags)
	}
	if len(q.Explanations) > 0 {
		expl := make(map[string]any, len(q.Explanations))
		for k, v := range q.Explanations {
			expl[k] = v
		}
		rec["explanations"] = expl
	}
	return rec
}

// Records converts a whole quiz back into document form.
func (qz *Quiz) Records() any {
	records := make([]any, 0, len(qz.Questions))
	for i := range qz.Questions {
		records = append(records, qz.Questions[i].Record())
	}
	if qz.Instructions == "" {
		return records
	}
	return map[string]any{
		"instructions": qz.Instructions,
		"questions":    records,
	}
}

func collapse(list []string) any {
	if len(list) == 1 {
		return list[0]
	}
	return expand(list)
}

func expand(list []string) []any {
	out := make([]any, 0, len(list))
	for _, s := range list {
		out = append(out, s)
	}
	return out
}
