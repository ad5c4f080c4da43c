// Code generated by ent, DO NOT EDIT.

package verb

import (
	"entgo.io/ent/dialect/sql"
	"github.com/subjunto/subjunto/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldID, id))
}

// Infinitive applies equality check predicate on the "infinitive" field. It's identical to InfinitiveEQ.
func Infinitive(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldInfinitive, v))
}

// English applies equality check predicate on the "english" field. It's identical to EnglishEQ.
func English(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldEnglish, v))
}

// Class applies equality check predicate on the "class" field. It's identical to ClassEQ.
func Class(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldClass, v))
}

// StemChange applies equality check predicate on the "stem_change" field. It's identical to StemChangeEQ.
func StemChange(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldStemChange, v))
}

// InfinitiveEQ applies the EQ predicate on the "infinitive" field.
func InfinitiveEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldInfinitive, v))
}

// InfinitiveNEQ applies the NEQ predicate on the "infinitive" field.
func InfinitiveNEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldInfinitive, v))
}

// InfinitiveIn applies the In predicate on the "infinitive" field.
func InfinitiveIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldInfinitive, vs...))
}

// InfinitiveNotIn applies the NotIn predicate on the "infinitive" field.
func InfinitiveNotIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldInfinitive, vs...))
}

// InfinitiveGT applies the GT predicate on the "infinitive" field.
func InfinitiveGT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldInfinitive, v))
}

// InfinitiveGTE applies the GTE predicate on the "infinitive" field.
func InfinitiveGTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldInfinitive, v))
}

// InfinitiveLT applies the LT predicate on the "infinitive" field.
func InfinitiveLT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldInfinitive, v))
}

// InfinitiveLTE applies the LTE predicate on the "infinitive" field.
func InfinitiveLTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldInfinitive, v))
}

// InfinitiveContains applies the Contains predicate on the "infinitive" field.
func InfinitiveContains(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContains(FieldInfinitive, v))
}

// InfinitiveHasPrefix applies the HasPrefix predicate on the "infinitive" field.
func InfinitiveHasPrefix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasPrefix(FieldInfinitive, v))
}

// InfinitiveHasSuffix applies the HasSuffix predicate on the "infinitive" field.
func InfinitiveHasSuffix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasSuffix(FieldInfinitive, v))
}

// InfinitiveEqualFold applies the EqualFold predicate on the "infinitive" field.
func InfinitiveEqualFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEqualFold(FieldInfinitive, v))
}

// InfinitiveContainsFold applies the ContainsFold predicate on the "infinitive" field.
func InfinitiveContainsFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContainsFold(FieldInfinitive, v))
}

// EnglishEQ applies the EQ predicate on the "english" field.
func EnglishEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldEnglish, v))
}

// EnglishNEQ applies the NEQ predicate on the "english" field.
func EnglishNEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldEnglish, v))
}

// EnglishIn applies the In predicate on the "english" field.
func EnglishIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldEnglish, vs...))
}

// EnglishNotIn applies the NotIn predicate on the "english" field.
func EnglishNotIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldEnglish, vs...))
}

// EnglishGT applies the GT predicate on the "english" field.
func EnglishGT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldEnglish, v))
}

// EnglishGTE applies the GTE predicate on the "english" field.
func EnglishGTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldEnglish, v))
}

// EnglishLT applies the LT predicate on the "english" field.
func EnglishLT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldEnglish, v))
}

// EnglishLTE applies the LTE predicate on the "english" field.
func EnglishLTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldEnglish, v))
}

// EnglishContains applies the Contains predicate on the "english" field.
func EnglishContains(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContains(FieldEnglish, v))
}

// EnglishHasPrefix applies the HasPrefix predicate on the "english" field.
func EnglishHasPrefix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasPrefix(FieldEnglish, v))
}

// EnglishHasSuffix applies the HasSuffix predicate on the "english" field.
func EnglishHasSuffix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasSuffix(FieldEnglish, v))
}

// EnglishEqualFold applies the EqualFold predicate on the "english" field.
func EnglishEqualFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEqualFold(FieldEnglish, v))
}

// EnglishContainsFold applies the ContainsFold predicate on the "english" field.
func EnglishContainsFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContainsFold(FieldEnglish, v))
}

// ClassEQ applies the EQ predicate on the "class" field.
func ClassEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldClass, v))
}

// ClassNEQ applies the NEQ predicate on the "class" field.
func ClassNEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldClass, v))
}

// ClassIn applies the In predicate on the "class" field.
func ClassIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldClass, vs...))
}

// ClassNotIn applies the NotIn predicate on the "class" field.
func ClassNotIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldClass, vs...))
}

// ClassGT applies the GT predicate on the "class" field.
func ClassGT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldClass, v))
}

// ClassGTE applies the GTE predicate on the "class" field.
func ClassGTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldClass, v))
}

// ClassLT applies the LT predicate on the "class" field.
func ClassLT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldClass, v))
}

// ClassLTE applies the LTE predicate on the "class" field.
func ClassLTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldClass, v))
}

// ClassContains applies the Contains predicate on the "class" field.
func ClassContains(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContains(FieldClass, v))
}

// ClassHasPrefix applies the HasPrefix predicate on the "class" field.
func ClassHasPrefix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasPrefix(FieldClass, v))
}

// ClassHasSuffix applies the HasSuffix predicate on the "class" field.
func ClassHasSuffix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasSuffix(FieldClass, v))
}

// ClassEqualFold applies the EqualFold predicate on the "class" field.
func ClassEqualFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEqualFold(FieldClass, v))
}

// ClassContainsFold applies the ContainsFold predicate on the "class" field.
func ClassContainsFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContainsFold(FieldClass, v))
}

// StemChangeEQ applies the EQ predicate on the "stem_change" field.
func StemChangeEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEQ(FieldStemChange, v))
}

// StemChangeNEQ applies the NEQ predicate on the "stem_change" field.
func StemChangeNEQ(v string) predicate.Verb {
	return predicate.Verb(sql.FieldNEQ(FieldStemChange, v))
}

// StemChangeIn applies the In predicate on the "stem_change" field.
func StemChangeIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldIn(FieldStemChange, vs...))
}

// StemChangeNotIn applies the NotIn predicate on the "stem_change" field.
func StemChangeNotIn(vs ...string) predicate.Verb {
	return predicate.Verb(sql.FieldNotIn(FieldStemChange, vs...))
}

// StemChangeGT applies the GT predicate on the "stem_change" field.
func StemChangeGT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGT(FieldStemChange, v))
}

// StemChangeGTE applies the GTE predicate on the "stem_change" field.
func StemChangeGTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldGTE(FieldStemChange, v))
}

// StemChangeLT applies the LT predicate on the "stem_change" field.
func StemChangeLT(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLT(FieldStemChange, v))
}

// StemChangeLTE applies the LTE predicate on the "stem_change" field.
func StemChangeLTE(v string) predicate.Verb {
	return predicate.Verb(sql.FieldLTE(FieldStemChange, v))
}

// StemChangeContains applies the Contains predicate on the "stem_change" field.
func StemChangeContains(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContains(FieldStemChange, v))
}

// StemChangeHasPrefix applies the HasPrefix predicate on the "stem_change" field.
func StemChangeHasPrefix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasPrefix(FieldStemChange, v))
}

// StemChangeHasSuffix applies the HasSuffix predicate on the "stem_change" field.
func StemChangeHasSuffix(v string) predicate.Verb {
	return predicate.Verb(sql.FieldHasSuffix(FieldStemChange, v))
}

// StemChangeEqualFold applies the EqualFold predicate on the "stem_change" field.
func StemChangeEqualFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldEqualFold(FieldStemChange, v))
}

// StemChangeContainsFold applies the ContainsFold predicate on the "stem_change" field.
func StemChangeContainsFold(v string) predicate.Verb {
	return predicate.Verb(sql.FieldContainsFold(FieldStemChange, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Verb) predicate.Verb {
	return predicate.Verb(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Verb) predicate.Verb {
	return predicate.Verb(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Verb) predicate.Verb {
	return predicate.Verb(sql.NotPredicates(p))
}
