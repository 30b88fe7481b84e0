// Code generated by ent, DO NOT EDIT.

package notificationendpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vivwell/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLTE(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldURL, v))
}

// Secret applies equality check predicate on the "secret" field. It's identical to SecretEQ.
func Secret(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldSecret, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldDescription, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldActive, v))
}

// SuccessCount applies equality check predicate on the "success_count" field. It's identical to SuccessCountEQ.
func SuccessCount(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldSuccessCount, v))
}

// FailureCount applies equality check predicate on the "failure_count" field. It's identical to FailureCountEQ.
func FailureCount(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldFailureCount, v))
}

// LastTriggeredAt applies equality check predicate on the "last_triggered_at" field. It's identical to LastTriggeredAtEQ.
func LastTriggeredAt(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldLastTriggeredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldContainsFold(FieldURL, v))
}

// SecretEQ applies the EQ predicate on the "secret" field.
func SecretEQ(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldSecret, v))
}

// SecretNEQ applies the NEQ predicate on the "secret" field.
func SecretNEQ(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldSecret, v))
}

// SecretIn applies the In predicate on the "secret" field.
func SecretIn(vs ...string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIn(FieldSecret, vs...))
}

// SecretNotIn applies the NotIn predicate on the "secret" field.
func SecretNotIn(vs ...string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotIn(FieldSecret, vs...))
}

// SecretGT applies the GT predicate on the "secret" field.
func SecretGT(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGT(FieldSecret, v))
}

// SecretGTE applies the GTE predicate on the "secret" field.
func SecretGTE(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGTE(FieldSecret, v))
}

// SecretLT applies the LT predicate on the "secret" field.
func SecretLT(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLT(FieldSecret, v))
}

// SecretLTE applies the LTE predicate on the "secret" field.
func SecretLTE(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLTE(FieldSecret, v))
}

// SecretContains applies the Contains predicate on the "secret" field.
func SecretContains(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldContains(FieldSecret, v))
}

// SecretHasPrefix applies the HasPrefix predicate on the "secret" field.
func SecretHasPrefix(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldHasPrefix(FieldSecret, v))
}

// SecretHasSuffix applies the HasSuffix predicate on the "secret" field.
func SecretHasSuffix(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldHasSuffix(FieldSecret, v))
}

// SecretEqualFold applies the EqualFold predicate on the "secret" field.
func SecretEqualFold(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEqualFold(FieldSecret, v))
}

// SecretContainsFold applies the ContainsFold predicate on the "secret" field.
func SecretContainsFold(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldContainsFold(FieldSecret, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldContainsFold(FieldDescription, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldActive, v))
}

// SuccessCountEQ applies the EQ predicate on the "success_count" field.
func SuccessCountEQ(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldSuccessCount, v))
}

// SuccessCountNEQ applies the NEQ predicate on the "success_count" field.
func SuccessCountNEQ(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldSuccessCount, v))
}

// SuccessCountIn applies the In predicate on the "success_count" field.
func SuccessCountIn(vs ...int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIn(FieldSuccessCount, vs...))
}

// SuccessCountNotIn applies the NotIn predicate on the "success_count" field.
func SuccessCountNotIn(vs ...int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotIn(FieldSuccessCount, vs...))
}

// SuccessCountGT applies the GT predicate on the "success_count" field.
func SuccessCountGT(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGT(FieldSuccessCount, v))
}

// SuccessCountGTE applies the GTE predicate on the "success_count" field.
func SuccessCountGTE(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGTE(FieldSuccessCount, v))
}

// SuccessCountLT applies the LT predicate on the "success_count" field.
func SuccessCountLT(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLT(FieldSuccessCount, v))
}

// SuccessCountLTE applies the LTE predicate on the "success_count" field.
func SuccessCountLTE(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLTE(FieldSuccessCount, v))
}

// FailureCountEQ applies the EQ predicate on the "failure_count" field.
func FailureCountEQ(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldFailureCount, v))
}

// FailureCountNEQ applies the NEQ predicate on the "failure_count" field.
func FailureCountNEQ(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldFailureCount, v))
}

// FailureCountIn applies the In predicate on the "failure_count" field.
func FailureCountIn(vs ...int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIn(FieldFailureCount, vs...))
}

// FailureCountNotIn applies the NotIn predicate on the "failure_count" field.
func FailureCountNotIn(vs ...int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotIn(FieldFailureCount, vs...))
}

// FailureCountGT applies the GT predicate on the "failure_count" field.
func FailureCountGT(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGT(FieldFailureCount, v))
}

// FailureCountGTE applies the GTE predicate on the "failure_count" field.
func FailureCountGTE(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGTE(FieldFailureCount, v))
}

// FailureCountLT applies the LT predicate on the "failure_count" field.
func FailureCountLT(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLT(FieldFailureCount, v))
}

// FailureCountLTE applies the LTE predicate on the "failure_count" field.
func FailureCountLTE(v int) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLTE(FieldFailureCount, v))
}

// LastTriggeredAtEQ applies the EQ predicate on the "last_triggered_at" field.
func LastTriggeredAtEQ(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldLastTriggeredAt, v))
}

// LastTriggeredAtNEQ applies the NEQ predicate on the "last_triggered_at" field.
func LastTriggeredAtNEQ(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldLastTriggeredAt, v))
}

// LastTriggeredAtIn applies the In predicate on the "last_triggered_at" field.
func LastTriggeredAtIn(vs ...time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIn(FieldLastTriggeredAt, vs...))
}

// LastTriggeredAtNotIn applies the NotIn predicate on the "last_triggered_at" field.
func LastTriggeredAtNotIn(vs ...time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotIn(FieldLastTriggeredAt, vs...))
}

// LastTriggeredAtGT applies the GT predicate on the "last_triggered_at" field.
func LastTriggeredAtGT(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGT(FieldLastTriggeredAt, v))
}

// LastTriggeredAtGTE applies the GTE predicate on the "last_triggered_at" field.
func LastTriggeredAtGTE(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGTE(FieldLastTriggeredAt, v))
}

// LastTriggeredAtLT applies the LT predicate on the "last_triggered_at" field.
func LastTriggeredAtLT(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLT(FieldLastTriggeredAt, v))
}

// LastTriggeredAtLTE applies the LTE predicate on the "last_triggered_at" field.
func LastTriggeredAtLTE(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLTE(FieldLastTriggeredAt, v))
}

// LastTriggeredAtIsNil applies the IsNil predicate on the "last_triggered_at" field.
func LastTriggeredAtIsNil() predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIsNull(FieldLastTriggeredAt))
}

// LastTriggeredAtNotNil applies the NotNil predicate on the "last_triggered_at" field.
func LastTriggeredAtNotNil() predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotNull(FieldLastTriggeredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NotificationEndpoint) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NotificationEndpoint) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NotificationEndpoint) predicate.NotificationEndpoint {
	return predicate.NotificationEndpoint(sql.NotPredicates(p))
}
