// Code generated by ent, DO NOT EDIT.

package approvalrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"formgate.io/formgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// SubmissionID applies equality check predicate on the "submission_id" field. It's identical to SubmissionIDEQ.
func SubmissionID(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldSubmissionID, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldActorID, v))
}

// ActorName applies equality check predicate on the "actor_name" field. It's identical to ActorNameEQ.
func ActorName(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldActorName, v))
}

// ActorPosition applies equality check predicate on the "actor_position" field. It's identical to ActorPositionEQ.
func ActorPosition(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldActorPosition, v))
}

// ActorDepartment applies equality check predicate on the "actor_department" field. It's identical to ActorDepartmentEQ.
func ActorDepartment(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldActorDepartment, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v []byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldSignature, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// SubmissionIDEQ applies the EQ predicate on the "submission_id" field.
func SubmissionIDEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldSubmissionID, v))
}

// SubmissionIDNEQ applies the NEQ predicate on the "submission_id" field.
func SubmissionIDNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldSubmissionID, v))
}

// SubmissionIDIn applies the In predicate on the "submission_id" field.
func SubmissionIDIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldSubmissionID, vs...))
}

// SubmissionIDNotIn applies the NotIn predicate on the "submission_id" field.
func SubmissionIDNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldSubmissionID, vs...))
}

// SubmissionIDGT applies the GT predicate on the "submission_id" field.
func SubmissionIDGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldSubmissionID, v))
}

// SubmissionIDGTE applies the GTE predicate on the "submission_id" field.
func SubmissionIDGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldSubmissionID, v))
}

// SubmissionIDLT applies the LT predicate on the "submission_id" field.
func SubmissionIDLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldSubmissionID, v))
}

// SubmissionIDLTE applies the LTE predicate on the "submission_id" field.
func SubmissionIDLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldSubmissionID, v))
}

// SubmissionIDContains applies the Contains predicate on the "submission_id" field.
func SubmissionIDContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldSubmissionID, v))
}

// SubmissionIDHasPrefix applies the HasPrefix predicate on the "submission_id" field.
func SubmissionIDHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldSubmissionID, v))
}

// SubmissionIDHasSuffix applies the HasSuffix predicate on the "submission_id" field.
func SubmissionIDHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldSubmissionID, v))
}

// SubmissionIDEqualFold applies the EqualFold predicate on the "submission_id" field.
func SubmissionIDEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldSubmissionID, v))
}

// SubmissionIDContainsFold applies the ContainsFold predicate on the "submission_id" field.
func SubmissionIDContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldSubmissionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldAction, vs...))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldActorID, v))
}

// ActorIDContains applies the Contains predicate on the "actor_id" field.
func ActorIDContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldActorID, v))
}

// ActorIDHasPrefix applies the HasPrefix predicate on the "actor_id" field.
func ActorIDHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldActorID, v))
}

// ActorIDHasSuffix applies the HasSuffix predicate on the "actor_id" field.
func ActorIDHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldActorID, v))
}

// ActorIDEqualFold applies the EqualFold predicate on the "actor_id" field.
func ActorIDEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldActorID, v))
}

// ActorIDContainsFold applies the ContainsFold predicate on the "actor_id" field.
func ActorIDContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldActorID, v))
}

// ActorNameEQ applies the EQ predicate on the "actor_name" field.
func ActorNameEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldActorName, v))
}

// ActorNameNEQ applies the NEQ predicate on the "actor_name" field.
func ActorNameNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldActorName, v))
}

// ActorNameIn applies the In predicate on the "actor_name" field.
func ActorNameIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldActorName, vs...))
}

// ActorNameNotIn applies the NotIn predicate on the "actor_name" field.
func ActorNameNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldActorName, vs...))
}

// ActorNameGT applies the GT predicate on the "actor_name" field.
func ActorNameGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldActorName, v))
}

// ActorNameGTE applies the GTE predicate on the "actor_name" field.
func ActorNameGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldActorName, v))
}

// ActorNameLT applies the LT predicate on the "actor_name" field.
func ActorNameLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldActorName, v))
}

// ActorNameLTE applies the LTE predicate on the "actor_name" field.
func ActorNameLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldActorName, v))
}

// ActorNameContains applies the Contains predicate on the "actor_name" field.
func ActorNameContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldActorName, v))
}

// ActorNameHasPrefix applies the HasPrefix predicate on the "actor_name" field.
func ActorNameHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldActorName, v))
}

// ActorNameHasSuffix applies the HasSuffix predicate on the "actor_name" field.
func ActorNameHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldActorName, v))
}

// ActorNameEqualFold applies the EqualFold predicate on the "actor_name" field.
func ActorNameEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldActorName, v))
}

// ActorNameContainsFold applies the ContainsFold predicate on the "actor_name" field.
func ActorNameContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldActorName, v))
}

// ActorPositionEQ applies the EQ predicate on the "actor_position" field.
func ActorPositionEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldActorPosition, v))
}

// ActorPositionNEQ applies the NEQ predicate on the "actor_position" field.
func ActorPositionNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldActorPosition, v))
}

// ActorPositionIn applies the In predicate on the "actor_position" field.
func ActorPositionIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldActorPosition, vs...))
}

// ActorPositionNotIn applies the NotIn predicate on the "actor_position" field.
func ActorPositionNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldActorPosition, vs...))
}

// ActorPositionGT applies the GT predicate on the "actor_position" field.
func ActorPositionGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldActorPosition, v))
}

// ActorPositionGTE applies the GTE predicate on the "actor_position" field.
func ActorPositionGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldActorPosition, v))
}

// ActorPositionLT applies the LT predicate on the "actor_position" field.
func ActorPositionLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldActorPosition, v))
}

// ActorPositionLTE applies the LTE predicate on the "actor_position" field.
func ActorPositionLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldActorPosition, v))
}

// ActorPositionContains applies the Contains predicate on the "actor_position" field.
func ActorPositionContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldActorPosition, v))
}

// ActorPositionHasPrefix applies the HasPrefix predicate on the "actor_position" field.
func ActorPositionHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldActorPosition, v))
}

// ActorPositionHasSuffix applies the HasSuffix predicate on the "actor_position" field.
func ActorPositionHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldActorPosition, v))
}

// ActorPositionIsNil applies the IsNil predicate on the "actor_position" field.
func ActorPositionIsNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIsNull(FieldActorPosition))
}

// ActorPositionNotNil applies the NotNil predicate on the "actor_position" field.
func ActorPositionNotNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotNull(FieldActorPosition))
}

// ActorPositionEqualFold applies the EqualFold predicate on the "actor_position" field.
func ActorPositionEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldActorPosition, v))
}

// ActorPositionContainsFold applies the ContainsFold predicate on the "actor_position" field.
func ActorPositionContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldActorPosition, v))
}

// ActorDepartmentEQ applies the EQ predicate on the "actor_department" field.
func ActorDepartmentEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldActorDepartment, v))
}

// ActorDepartmentNEQ applies the NEQ predicate on the "actor_department" field.
func ActorDepartmentNEQ(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldActorDepartment, v))
}

// ActorDepartmentIn applies the In predicate on the "actor_department" field.
func ActorDepartmentIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldActorDepartment, vs...))
}

// ActorDepartmentNotIn applies the NotIn predicate on the "actor_department" field.
func ActorDepartmentNotIn(vs ...string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldActorDepartment, vs...))
}

// ActorDepartmentGT applies the GT predicate on the "actor_department" field.
func ActorDepartmentGT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldActorDepartment, v))
}

// ActorDepartmentGTE applies the GTE predicate on the "actor_department" field.
func ActorDepartmentGTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldActorDepartment, v))
}

// ActorDepartmentLT applies the LT predicate on the "actor_department" field.
func ActorDepartmentLT(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldActorDepartment, v))
}

// ActorDepartmentLTE applies the LTE predicate on the "actor_department" field.
func ActorDepartmentLTE(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldActorDepartment, v))
}

// ActorDepartmentContains applies the Contains predicate on the "actor_department" field.
func ActorDepartmentContains(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContains(FieldActorDepartment, v))
}

// ActorDepartmentHasPrefix applies the HasPrefix predicate on the "actor_department" field.
func ActorDepartmentHasPrefix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasPrefix(FieldActorDepartment, v))
}

// ActorDepartmentHasSuffix applies the HasSuffix predicate on the "actor_department" field.
func ActorDepartmentHasSuffix(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldHasSuffix(FieldActorDepartment, v))
}

// ActorDepartmentIsNil applies the IsNil predicate on the "actor_department" field.
func ActorDepartmentIsNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIsNull(FieldActorDepartment))
}

// ActorDepartmentNotNil applies the NotNil predicate on the "actor_department" field.
func ActorDepartmentNotNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotNull(FieldActorDepartment))
}

// ActorDepartmentEqualFold applies the EqualFold predicate on the "actor_department" field.
func ActorDepartmentEqualFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEqualFold(FieldActorDepartment, v))
}

// ActorDepartmentContainsFold applies the ContainsFold predicate on the "actor_department" field.
func ActorDepartmentContainsFold(v string) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldContainsFold(FieldActorDepartment, v))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v []byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v []byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...[]byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...[]byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v []byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v []byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v []byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v []byte) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldLTE(FieldSignature, v))
}

// SignatureIsNil applies the IsNil predicate on the "signature" field.
func SignatureIsNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldIsNull(FieldSignature))
}

// SignatureNotNil applies the NotNil predicate on the "signature" field.
func SignatureNotNil() predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.FieldNotNull(FieldSignature))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalRecord) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalRecord) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalRecord) predicate.ApprovalRecord {
	return predicate.ApprovalRecord(sql.NotPredicates(p))
}
