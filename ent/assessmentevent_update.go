// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rghosh/devnotes/ent/assessmentevent"
	"github.com/rghosh/devnotes/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdate) SetAssessmentID(v string) *AssessmentEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAssessmentID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSkillArea sets the "skill_area" field.
func (_u *AssessmentEventUpdate) SetSkillArea(v string) *AssessmentEventUpdate {
	_u.mutation.SetSkillArea(v)
	return _u
}

// SetNillableSkillArea sets the "skill_area" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSkillArea(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSkillArea(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdate) SetScore(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScore(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdate) AddScore(v float64) *AssessmentEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *AssessmentEventUpdate) SetCompletionRate(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableCompletionRate(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *AssessmentEventUpdate) AddCompletionRate(v float64) *AssessmentEventUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *AssessmentEventUpdate) SetQuestionsAnswered(v int) *AssessmentEventUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableQuestionsAnswered(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *AssessmentEventUpdate) AddQuestionsAnswered(v int) *AssessmentEventUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetQuestionsGenerated sets the "questions_generated" field.
func (_u *AssessmentEventUpdate) SetQuestionsGenerated(v int) *AssessmentEventUpdate {
	_u.mutation.ResetQuestionsGenerated()
	_u.mutation.SetQuestionsGenerated(v)
	return _u
}

// SetNillableQuestionsGenerated sets the "questions_generated" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableQuestionsGenerated(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetQuestionsGenerated(*v)
	}
	return _u
}

// AddQuestionsGenerated adds value to the "questions_generated" field.
func (_u *AssessmentEventUpdate) AddQuestionsGenerated(v int) *AssessmentEventUpdate {
	_u.mutation.AddQuestionsGenerated(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AssessmentEventUpdate) SetTokensUsed(v int) *AssessmentEventUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableTokensUsed(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AssessmentEventUpdate) AddTokensUsed(v int) *AssessmentEventUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *AssessmentEventUpdate) SetModel(v string) *AssessmentEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableModel(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdate) SetDurationSecs(v int) *AssessmentEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableDurationSecs(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdate) AddDurationSecs(v int) *AssessmentEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *AssessmentEventUpdate) SetDegraded(v bool) *AssessmentEventUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableDegraded(v *bool) *AssessmentEventUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillArea(); ok {
		if err := assessmentevent.SkillAreaValidator(v); err != nil {
			return &ValidationError{Name: "skill_area", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.skill_area": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillArea(); ok {
		_spec.SetField(assessmentevent.FieldSkillArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(assessmentevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(assessmentevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(assessmentevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(assessmentevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsGenerated(); ok {
		_spec.SetField(assessmentevent.FieldQuestionsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsGenerated(); ok {
		_spec.AddField(assessmentevent.FieldQuestionsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(assessmentevent.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(assessmentevent.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(assessmentevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(assessmentevent.FieldDegraded, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdateOne) SetAssessmentID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAssessmentID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSkillArea sets the "skill_area" field.
func (_u *AssessmentEventUpdateOne) SetSkillArea(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSkillArea(v)
	return _u
}

// SetNillableSkillArea sets the "skill_area" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSkillArea(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSkillArea(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AssessmentEventUpdateOne) SetScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScore(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AssessmentEventUpdateOne) AddScore(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *AssessmentEventUpdateOne) SetCompletionRate(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableCompletionRate(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *AssessmentEventUpdateOne) AddCompletionRate(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *AssessmentEventUpdateOne) SetQuestionsAnswered(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableQuestionsAnswered(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *AssessmentEventUpdateOne) AddQuestionsAnswered(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetQuestionsGenerated sets the "questions_generated" field.
func (_u *AssessmentEventUpdateOne) SetQuestionsGenerated(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetQuestionsGenerated()
	_u.mutation.SetQuestionsGenerated(v)
	return _u
}

// SetNillableQuestionsGenerated sets the "questions_generated" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableQuestionsGenerated(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetQuestionsGenerated(*v)
	}
	return _u
}

// AddQuestionsGenerated adds value to the "questions_generated" field.
func (_u *AssessmentEventUpdateOne) AddQuestionsGenerated(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddQuestionsGenerated(v)
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AssessmentEventUpdateOne) SetTokensUsed(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableTokensUsed(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AssessmentEventUpdateOne) AddTokensUsed(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *AssessmentEventUpdateOne) SetModel(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableModel(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) SetDurationSecs(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableDurationSecs(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) AddDurationSecs(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *AssessmentEventUpdateOne) SetDegraded(v bool) *AssessmentEventUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableDegraded(v *bool) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SkillArea(); ok {
		if err := assessmentevent.SkillAreaValidator(v); err != nil {
			return &ValidationError{Name: "skill_area", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.skill_area": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkillArea(); ok {
		_spec.SetField(assessmentevent.FieldSkillArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(assessmentevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(assessmentevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(assessmentevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(assessmentevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(assessmentevent.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsGenerated(); ok {
		_spec.SetField(assessmentevent.FieldQuestionsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsGenerated(); ok {
		_spec.AddField(assessmentevent.FieldQuestionsGenerated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(assessmentevent.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(assessmentevent.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(assessmentevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(assessmentevent.FieldDegraded, field.TypeBool, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
