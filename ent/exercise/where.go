// Code generated by ent, DO NOT EDIT.

package exercise

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/subjunto/subjunto/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldID, id))
}

// Verb applies equality check predicate on the "verb" field. It's identical to VerbEQ.
func Verb(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldVerb, v))
}

// Tense applies equality check predicate on the "tense" field. It's identical to TenseEQ.
func Tense(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldTense, v))
}

// Person applies equality check predicate on the "person" field. It's identical to PersonEQ.
func Person(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldPerson, v))
}

// TriggerPhrase applies equality check predicate on the "trigger_phrase" field. It's identical to TriggerPhraseEQ.
func TriggerPhrase(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldTriggerPhrase, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldPrompt, v))
}

// Answer applies equality check predicate on the "answer" field. It's identical to AnswerEQ.
func Answer(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldAnswer, v))
}

// RuleNote applies equality check predicate on the "rule_note" field. It's identical to RuleNoteEQ.
func RuleNote(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldRuleNote, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldDifficulty, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldCreatedAt, v))
}

// VerbEQ applies the EQ predicate on the "verb" field.
func VerbEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldVerb, v))
}

// VerbNEQ applies the NEQ predicate on the "verb" field.
func VerbNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldVerb, v))
}

// VerbIn applies the In predicate on the "verb" field.
func VerbIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldVerb, vs...))
}

// VerbNotIn applies the NotIn predicate on the "verb" field.
func VerbNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldVerb, vs...))
}

// VerbGT applies the GT predicate on the "verb" field.
func VerbGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldVerb, v))
}

// VerbGTE applies the GTE predicate on the "verb" field.
func VerbGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldVerb, v))
}

// VerbLT applies the LT predicate on the "verb" field.
func VerbLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldVerb, v))
}

// VerbLTE applies the LTE predicate on the "verb" field.
func VerbLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldVerb, v))
}

// VerbContains applies the Contains predicate on the "verb" field.
func VerbContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldVerb, v))
}

// VerbHasPrefix applies the HasPrefix predicate on the "verb" field.
func VerbHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldVerb, v))
}

// VerbHasSuffix applies the HasSuffix predicate on the "verb" field.
func VerbHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldVerb, v))
}

// VerbEqualFold applies the EqualFold predicate on the "verb" field.
func VerbEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldVerb, v))
}

// VerbContainsFold applies the ContainsFold predicate on the "verb" field.
func VerbContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldVerb, v))
}

// TenseEQ applies the EQ predicate on the "tense" field.
func TenseEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldTense, v))
}

// TenseNEQ applies the NEQ predicate on the "tense" field.
func TenseNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldTense, v))
}

// TenseIn applies the In predicate on the "tense" field.
func TenseIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldTense, vs...))
}

// TenseNotIn applies the NotIn predicate on the "tense" field.
func TenseNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldTense, vs...))
}

// TenseGT applies the GT predicate on the "tense" field.
func TenseGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldTense, v))
}

// TenseGTE applies the GTE predicate on the "tense" field.
func TenseGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldTense, v))
}

// TenseLT applies the LT predicate on the "tense" field.
func TenseLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldTense, v))
}

// TenseLTE applies the LTE predicate on the "tense" field.
func TenseLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldTense, v))
}

// TenseContains applies the Contains predicate on the "tense" field.
func TenseContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldTense, v))
}

// TenseHasPrefix applies the HasPrefix predicate on the "tense" field.
func TenseHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldTense, v))
}

// TenseHasSuffix applies the HasSuffix predicate on the "tense" field.
func TenseHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldTense, v))
}

// TenseEqualFold applies the EqualFold predicate on the "tense" field.
func TenseEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldTense, v))
}

// TenseContainsFold applies the ContainsFold predicate on the "tense" field.
func TenseContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldTense, v))
}

// PersonEQ applies the EQ predicate on the "person" field.
func PersonEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldPerson, v))
}

// PersonNEQ applies the NEQ predicate on the "person" field.
func PersonNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldPerson, v))
}

// PersonIn applies the In predicate on the "person" field.
func PersonIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldPerson, vs...))
}

// PersonNotIn applies the NotIn predicate on the "person" field.
func PersonNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldPerson, vs...))
}

// PersonGT applies the GT predicate on the "person" field.
func PersonGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldPerson, v))
}

// PersonGTE applies the GTE predicate on the "person" field.
func PersonGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldPerson, v))
}

// PersonLT applies the LT predicate on the "person" field.
func PersonLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldPerson, v))
}

// PersonLTE applies the LTE predicate on the "person" field.
func PersonLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldPerson, v))
}

// PersonContains applies the Contains predicate on the "person" field.
func PersonContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldPerson, v))
}

// PersonHasPrefix applies the HasPrefix predicate on the "person" field.
func PersonHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldPerson, v))
}

// PersonHasSuffix applies the HasSuffix predicate on the "person" field.
func PersonHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldPerson, v))
}

// PersonEqualFold applies the EqualFold predicate on the "person" field.
func PersonEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldPerson, v))
}

// PersonContainsFold applies the ContainsFold predicate on the "person" field.
func PersonContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldPerson, v))
}

// TriggerPhraseEQ applies the EQ predicate on the "trigger_phrase" field.
func TriggerPhraseEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldTriggerPhrase, v))
}

// TriggerPhraseNEQ applies the NEQ predicate on the "trigger_phrase" field.
func TriggerPhraseNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldTriggerPhrase, v))
}

// TriggerPhraseIn applies the In predicate on the "trigger_phrase" field.
func TriggerPhraseIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldTriggerPhrase, vs...))
}

// TriggerPhraseNotIn applies the NotIn predicate on the "trigger_phrase" field.
func TriggerPhraseNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldTriggerPhrase, vs...))
}

// TriggerPhraseGT applies the GT predicate on the "trigger_phrase" field.
func TriggerPhraseGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldTriggerPhrase, v))
}

// TriggerPhraseGTE applies the GTE predicate on the "trigger_phrase" field.
func TriggerPhraseGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldTriggerPhrase, v))
}

// TriggerPhraseLT applies the LT predicate on the "trigger_phrase" field.
func TriggerPhraseLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldTriggerPhrase, v))
}

// TriggerPhraseLTE applies the LTE predicate on the "trigger_phrase" field.
func TriggerPhraseLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldTriggerPhrase, v))
}

// TriggerPhraseContains applies the Contains predicate on the "trigger_phrase" field.
func TriggerPhraseContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldTriggerPhrase, v))
}

// TriggerPhraseHasPrefix applies the HasPrefix predicate on the "trigger_phrase" field.
func TriggerPhraseHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldTriggerPhrase, v))
}

// TriggerPhraseHasSuffix applies the HasSuffix predicate on the "trigger_phrase" field.
func TriggerPhraseHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldTriggerPhrase, v))
}

// TriggerPhraseEqualFold applies the EqualFold predicate on the "trigger_phrase" field.
func TriggerPhraseEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldTriggerPhrase, v))
}

// TriggerPhraseContainsFold applies the ContainsFold predicate on the "trigger_phrase" field.
func TriggerPhraseContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldTriggerPhrase, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldPrompt, v))
}

// AnswerEQ applies the EQ predicate on the "answer" field.
func AnswerEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldAnswer, v))
}

// AnswerNEQ applies the NEQ predicate on the "answer" field.
func AnswerNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldAnswer, v))
}

// AnswerIn applies the In predicate on the "answer" field.
func AnswerIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldAnswer, vs...))
}

// AnswerNotIn applies the NotIn predicate on the "answer" field.
func AnswerNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldAnswer, vs...))
}

// AnswerGT applies the GT predicate on the "answer" field.
func AnswerGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldAnswer, v))
}

// AnswerGTE applies the GTE predicate on the "answer" field.
func AnswerGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldAnswer, v))
}

// AnswerLT applies the LT predicate on the "answer" field.
func AnswerLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldAnswer, v))
}

// AnswerLTE applies the LTE predicate on the "answer" field.
func AnswerLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldAnswer, v))
}

// AnswerContains applies the Contains predicate on the "answer" field.
func AnswerContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldAnswer, v))
}

// AnswerHasPrefix applies the HasPrefix predicate on the "answer" field.
func AnswerHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldAnswer, v))
}

// AnswerHasSuffix applies the HasSuffix predicate on the "answer" field.
func AnswerHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldAnswer, v))
}

// AnswerEqualFold applies the EqualFold predicate on the "answer" field.
func AnswerEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldAnswer, v))
}

// AnswerContainsFold applies the ContainsFold predicate on the "answer" field.
func AnswerContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldAnswer, v))
}

// AlternatesIsNil applies the IsNil predicate on the "alternates" field.
func AlternatesIsNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldIsNull(FieldAlternates))
}

// AlternatesNotNil applies the NotNil predicate on the "alternates" field.
func AlternatesNotNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldNotNull(FieldAlternates))
}

// RuleNoteEQ applies the EQ predicate on the "rule_note" field.
func RuleNoteEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldRuleNote, v))
}

// RuleNoteNEQ applies the NEQ predicate on the "rule_note" field.
func RuleNoteNEQ(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldRuleNote, v))
}

// RuleNoteIn applies the In predicate on the "rule_note" field.
func RuleNoteIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldRuleNote, vs...))
}

// RuleNoteNotIn applies the NotIn predicate on the "rule_note" field.
func RuleNoteNotIn(vs ...string) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldRuleNote, vs...))
}

// RuleNoteGT applies the GT predicate on the "rule_note" field.
func RuleNoteGT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldRuleNote, v))
}

// RuleNoteGTE applies the GTE predicate on the "rule_note" field.
func RuleNoteGTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldRuleNote, v))
}

// RuleNoteLT applies the LT predicate on the "rule_note" field.
func RuleNoteLT(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldRuleNote, v))
}

// RuleNoteLTE applies the LTE predicate on the "rule_note" field.
func RuleNoteLTE(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldRuleNote, v))
}

// RuleNoteContains applies the Contains predicate on the "rule_note" field.
func RuleNoteContains(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContains(FieldRuleNote, v))
}

// RuleNoteHasPrefix applies the HasPrefix predicate on the "rule_note" field.
func RuleNoteHasPrefix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasPrefix(FieldRuleNote, v))
}

// RuleNoteHasSuffix applies the HasSuffix predicate on the "rule_note" field.
func RuleNoteHasSuffix(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldHasSuffix(FieldRuleNote, v))
}

// RuleNoteEqualFold applies the EqualFold predicate on the "rule_note" field.
func RuleNoteEqualFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldEqualFold(FieldRuleNote, v))
}

// RuleNoteContainsFold applies the ContainsFold predicate on the "rule_note" field.
func RuleNoteContainsFold(v string) predicate.Exercise {
	return predicate.Exercise(sql.FieldContainsFold(FieldRuleNote, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldDifficulty, v))
}

// HintsIsNil applies the IsNil predicate on the "hints" field.
func HintsIsNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldIsNull(FieldHints))
}

// HintsNotNil applies the NotNil predicate on the "hints" field.
func HintsNotNil() predicate.Exercise {
	return predicate.Exercise(sql.FieldNotNull(FieldHints))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Exercise {
	return predicate.Exercise(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Exercise) predicate.Exercise {
	return predicate.Exercise(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Exercise) predicate.Exercise {
	return predicate.Exercise(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Exercise) predicate.Exercise {
	return predicate.Exercise(sql.NotPredicates(p))
}
