package store

import (
	"context"
	"fmt"

	"github.com/quizdrill/quizdrill/ent"
	"github.com/quizdrill/quizdrill/ent/takeevent"
)

func (r *eventRepo) AppendTake(ctx context.Context, data TakeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TakeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuiz(data.Quiz).
		SetTotal(data.Total).
		SetCorrect(data.Correct).
		SetIncorrect(data.Incorrect).
		SetUngraded(data.Ungraded).
		SetPercent(data.Percent).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save take event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentTakes(ctx context.Context, quiz string, limit int) ([]TakeRecord, error) {
	q := r.client.TakeEvent.Query()
	if quiz != "" {
		q = q.Where(takeevent.Quiz(quiz))
	}
	q = q.Order(ent.Desc(takeevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query takes: %w", err)
	}

	records := make([]TakeRecord, 0, len(events))
	for _, e := range events {
		records = append(records, TakeRecord{
			Timestamp:    e.Timestamp,
			Quiz:         e.Quiz,
			Total:        e.Total,
			Correct:      e.Correct,
			Incorrect:    e.Incorrect,
			Ungraded:     e.Ungraded,
			Percent:      e.Percent,
			DurationSecs: e.DurationSecs,
		})
	}
	return records, nil
}
