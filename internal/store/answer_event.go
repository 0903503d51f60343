package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAssessmentID(data.AssessmentID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetUserAnswer(data.UserAnswer).
		SetScore(data.Score).
		SetScored(data.Scored).
		SetTimeSecs(data.TimeSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}

	return nil
}
