// Code generated by ent, DO NOT EDIT.

package profile

import (
	"entgo.io/ent/dialect/sql"
	"github.com/prepdeck/prepdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// DetailLevel applies equality check predicate on the "detail_level" field. It's identical to DetailLevelEQ.
func DetailLevel(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDetailLevel, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldName, v))
}

// DetailLevelEQ applies the EQ predicate on the "detail_level" field.
func DetailLevelEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDetailLevel, v))
}

// DetailLevelNEQ applies the NEQ predicate on the "detail_level" field.
func DetailLevelNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDetailLevel, v))
}

// DetailLevelIn applies the In predicate on the "detail_level" field.
func DetailLevelIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDetailLevel, vs...))
}

// DetailLevelNotIn applies the NotIn predicate on the "detail_level" field.
func DetailLevelNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDetailLevel, vs...))
}

// DetailLevelGT applies the GT predicate on the "detail_level" field.
func DetailLevelGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDetailLevel, v))
}

// DetailLevelGTE applies the GTE predicate on the "detail_level" field.
func DetailLevelGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDetailLevel, v))
}

// DetailLevelLT applies the LT predicate on the "detail_level" field.
func DetailLevelLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDetailLevel, v))
}

// DetailLevelLTE applies the LTE predicate on the "detail_level" field.
func DetailLevelLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDetailLevel, v))
}

// DetailLevelContains applies the Contains predicate on the "detail_level" field.
func DetailLevelContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldDetailLevel, v))
}

// DetailLevelHasPrefix applies the HasPrefix predicate on the "detail_level" field.
func DetailLevelHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldDetailLevel, v))
}

// DetailLevelHasSuffix applies the HasSuffix predicate on the "detail_level" field.
func DetailLevelHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldDetailLevel, v))
}

// DetailLevelEqualFold applies the EqualFold predicate on the "detail_level" field.
func DetailLevelEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldDetailLevel, v))
}

// DetailLevelContainsFold applies the ContainsFold predicate on the "detail_level" field.
func DetailLevelContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldDetailLevel, v))
}

// BadgeIdsIsNil applies the IsNil predicate on the "badge_ids" field.
func BadgeIdsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldBadgeIds))
}

// BadgeIdsNotNil applies the NotNil predicate on the "badge_ids" field.
func BadgeIdsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldBadgeIds))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
