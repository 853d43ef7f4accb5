package store

import (
	"context"
	"fmt"

	"github.com/quizdrill/quizdrill/ent"
	"github.com/quizdrill/quizdrill/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuiz(data.Quiz).
		SetQuestionText(data.QuestionText).
		SetKind(data.Kind).
		SetVerdict(data.Verdict)

	if data.QuestionID != "" {
		builder = builder.SetQuestionID(data.QuestionID)
	}
	if data.Response != "" {
		builder = builder.SetResponse(data.Response)
	}
	if data.Explanation != "" {
		builder = builder.SetExplanation(data.Explanation)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuestionHistory(ctx context.Context, quiz string) ([]QuestionStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Quiz(quiz)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	byID := make(map[string]*QuestionStats)
	var order []string
	for _, e := range events {
		if e.QuestionID == "" {
			continue
		}
		st, ok := byID[e.QuestionID]
		if !ok {
			st = &QuestionStats{QuestionID: e.QuestionID}
			byID[e.QuestionID] = st
			order = append(order, e.QuestionID)
		}
		switch e.Verdict {
		case "correct":
			st.Correct++
		case "incorrect":
			st.Incorrect++
		default:
			st.Ungraded++
		}
	}

	stats := make([]QuestionStats, 0, len(order))
	for _, id := range order {
		stats = append(stats, *byID[id])
	}
	return stats, nil
}
