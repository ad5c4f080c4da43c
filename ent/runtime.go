// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/subjunto/subjunto/ent/attempt"
	"github.com/subjunto/subjunto/ent/exercise"
	"github.com/subjunto/subjunto/ent/llmrequestevent"
	"github.com/subjunto/subjunto/ent/masteryrecord"
	"github.com/subjunto/subjunto/ent/schema"
	"github.com/subjunto/subjunto/ent/verb"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescExerciseID is the schema descriptor for exercise_id field.
	attemptDescExerciseID := attemptFields[0].Descriptor()
	// attempt.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	attempt.ExerciseIDValidator = attemptDescExerciseID.Validators[0].(func(string) error)
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[1].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescErrorKind is the schema descriptor for error_kind field.
	attemptDescErrorKind := attemptFields[4].Descriptor()
	// attempt.DefaultErrorKind holds the default value on creation for the error_kind field.
	attempt.DefaultErrorKind = attemptDescErrorKind.Default.(string)
	// attemptDescFeedbackText is the schema descriptor for feedback_text field.
	attemptDescFeedbackText := attemptFields[5].Descriptor()
	// attempt.DefaultFeedbackText holds the default value on creation for the feedback_text field.
	attempt.DefaultFeedbackText = attemptDescFeedbackText.Default.(string)
	// attemptDescElapsedMs is the schema descriptor for elapsed_ms field.
	attemptDescElapsedMs := attemptFields[6].Descriptor()
	// attempt.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	attempt.DefaultElapsedMs = attemptDescElapsedMs.Default.(int64)
	// attemptDescSubmittedAt is the schema descriptor for submitted_at field.
	attemptDescSubmittedAt := attemptFields[7].Descriptor()
	// attempt.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	attempt.DefaultSubmittedAt = attemptDescSubmittedAt.Default.(func() time.Time)
	exerciseFields := schema.Exercise{}.Fields()
	_ = exerciseFields
	// exerciseDescVerb is the schema descriptor for verb field.
	exerciseDescVerb := exerciseFields[1].Descriptor()
	// exercise.VerbValidator is a validator for the "verb" field. It is called by the builders before save.
	exercise.VerbValidator = exerciseDescVerb.Validators[0].(func(string) error)
	// exerciseDescRuleNote is the schema descriptor for rule_note field.
	exerciseDescRuleNote := exerciseFields[8].Descriptor()
	// exercise.DefaultRuleNote holds the default value on creation for the rule_note field.
	exercise.DefaultRuleNote = exerciseDescRuleNote.Default.(string)
	// exerciseDescCreatedAt is the schema descriptor for created_at field.
	exerciseDescCreatedAt := exerciseFields[11].Descriptor()
	// exercise.DefaultCreatedAt holds the default value on creation for the created_at field.
	exercise.DefaultCreatedAt = exerciseDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescEstimatedCost is the schema descriptor for estimated_cost field.
	llmrequesteventDescEstimatedCost := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultEstimatedCost holds the default value on creation for the estimated_cost field.
	llmrequestevent.DefaultEstimatedCost = llmrequesteventDescEstimatedCost.Default.(float64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescUserID is the schema descriptor for user_id field.
	masteryrecordDescUserID := masteryrecordFields[0].Descriptor()
	// masteryrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryrecord.UserIDValidator = masteryrecordDescUserID.Validators[0].(func(string) error)
	// masteryrecordDescVerb is the schema descriptor for verb field.
	masteryrecordDescVerb := masteryrecordFields[1].Descriptor()
	// masteryrecord.VerbValidator is a validator for the "verb" field. It is called by the builders before save.
	masteryrecord.VerbValidator = masteryrecordDescVerb.Validators[0].(func(string) error)
	// masteryrecordDescConsecutiveCorrect is the schema descriptor for consecutive_correct field.
	masteryrecordDescConsecutiveCorrect := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultConsecutiveCorrect holds the default value on creation for the consecutive_correct field.
	masteryrecord.DefaultConsecutiveCorrect = masteryrecordDescConsecutiveCorrect.Default.(int)
	// masteryrecordDescTotalAttempts is the schema descriptor for total_attempts field.
	masteryrecordDescTotalAttempts := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	masteryrecord.DefaultTotalAttempts = masteryrecordDescTotalAttempts.Default.(int)
	// masteryrecordDescCorrectCount is the schema descriptor for correct_count field.
	masteryrecordDescCorrectCount := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultCorrectCount holds the default value on creation for the correct_count field.
	masteryrecord.DefaultCorrectCount = masteryrecordDescCorrectCount.Default.(int)
	// masteryrecordDescIntervalNs is the schema descriptor for interval_ns field.
	masteryrecordDescIntervalNs := masteryrecordFields[5].Descriptor()
	// masteryrecord.DefaultIntervalNs holds the default value on creation for the interval_ns field.
	masteryrecord.DefaultIntervalNs = masteryrecordDescIntervalNs.Default.(int64)
	// masteryrecordDescLastOutcome is the schema descriptor for last_outcome field.
	masteryrecordDescLastOutcome := masteryrecordFields[7].Descriptor()
	// masteryrecord.DefaultLastOutcome holds the default value on creation for the last_outcome field.
	masteryrecord.DefaultLastOutcome = masteryrecordDescLastOutcome.Default.(string)
	verbFields := schema.Verb{}.Fields()
	_ = verbFields
	// verbDescInfinitive is the schema descriptor for infinitive field.
	verbDescInfinitive := verbFields[0].Descriptor()
	// verb.InfinitiveValidator is a validator for the "infinitive" field. It is called by the builders before save.
	verb.InfinitiveValidator = verbDescInfinitive.Validators[0].(func(string) error)
	// verbDescEnglish is the schema descriptor for english field.
	verbDescEnglish := verbFields[1].Descriptor()
	// verb.DefaultEnglish holds the default value on creation for the english field.
	verb.DefaultEnglish = verbDescEnglish.Default.(string)
	// verbDescStemChange is the schema descriptor for stem_change field.
	verbDescStemChange := verbFields[3].Descriptor()
	// verb.DefaultStemChange holds the default value on creation for the stem_change field.
	verb.DefaultStemChange = verbDescStemChange.Default.(string)
}
