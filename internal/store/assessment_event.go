package store

import (
	"context"
	"fmt"

	"github.com/rghosh/devnotes/ent"
	"github.com/rghosh/devnotes/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetSkillArea(data.SkillArea).
		SetScore(data.Score).
		SetCompletionRate(data.CompletionRate).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetQuestionsGenerated(data.QuestionsGenerated).
		SetTokensUsed(data.TokensUsed).
		SetModel(data.Model).
		SetDurationSecs(data.DurationSecs).
		SetDegraded(data.Degraded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentEventRecord, error) {
	q := r.client.AssessmentEvent.Query().
		Order(ent.Asc(assessmentevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(assessmentevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(assessmentevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(assessmentevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(assessmentevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessment events: %w", err)
	}

	out := make([]AssessmentEventRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, AssessmentEventRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AssessmentEventData: AssessmentEventData{
				AssessmentID:       row.AssessmentID,
				SkillArea:          row.SkillArea,
				Score:              row.Score,
				CompletionRate:     row.CompletionRate,
				QuestionsAnswered:  row.QuestionsAnswered,
				QuestionsGenerated: row.QuestionsGenerated,
				TokensUsed:         row.TokensUsed,
				Model:              row.Model,
				DurationSecs:       row.DurationSecs,
				Degraded:           row.Degraded,
			},
		})
	}
	return out, nil
}
