// Code generated by ent, DO NOT EDIT.

package submission

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"formgate.io/formgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// FormTemplateID applies equality check predicate on the "form_template_id" field. It's identical to FormTemplateIDEQ.
func FormTemplateID(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFormTemplateID, v))
}

// FormName applies equality check predicate on the "form_name" field. It's identical to FormNameEQ.
func FormName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFormName, v))
}

// FormCategory applies equality check predicate on the "form_category" field. It's identical to FormCategoryEQ.
func FormCategory(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFormCategory, v))
}

// SubmittedBy applies equality check predicate on the "submitted_by" field. It's identical to SubmittedByEQ.
func SubmittedBy(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmitterName applies equality check predicate on the "submitter_name" field. It's identical to SubmitterNameEQ.
func SubmitterName(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterName, v))
}

// SubmitterPosition applies equality check predicate on the "submitter_position" field. It's identical to SubmitterPositionEQ.
func SubmitterPosition(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterPosition, v))
}

// SubmitterDepartment applies equality check predicate on the "submitter_department" field. It's identical to SubmitterDepartmentEQ.
func SubmitterDepartment(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterDepartment, v))
}

// SubmitterEmail applies equality check predicate on the "submitter_email" field. It's identical to SubmitterEmailEQ.
func SubmitterEmail(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterEmail, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v []byte) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSignature, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedAt, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldApprovedAt, v))
}

// RejectedAt applies equality check predicate on the "rejected_at" field. It's identical to RejectedAtEQ.
func RejectedAt(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldRejectedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldUpdatedAt, v))
}

// FormTemplateIDEQ applies the EQ predicate on the "form_template_id" field.
func FormTemplateIDEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFormTemplateID, v))
}

// FormTemplateIDNEQ applies the NEQ predicate on the "form_template_id" field.
func FormTemplateIDNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldFormTemplateID, v))
}

// FormTemplateIDIn applies the In predicate on the "form_template_id" field.
func FormTemplateIDIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldFormTemplateID, vs...))
}

// FormTemplateIDNotIn applies the NotIn predicate on the "form_template_id" field.
func FormTemplateIDNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldFormTemplateID, vs...))
}

// FormTemplateIDGT applies the GT predicate on the "form_template_id" field.
func FormTemplateIDGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldFormTemplateID, v))
}

// FormTemplateIDGTE applies the GTE predicate on the "form_template_id" field.
func FormTemplateIDGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldFormTemplateID, v))
}

// FormTemplateIDLT applies the LT predicate on the "form_template_id" field.
func FormTemplateIDLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldFormTemplateID, v))
}

// FormTemplateIDLTE applies the LTE predicate on the "form_template_id" field.
func FormTemplateIDLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldFormTemplateID, v))
}

// FormTemplateIDContains applies the Contains predicate on the "form_template_id" field.
func FormTemplateIDContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldFormTemplateID, v))
}

// FormTemplateIDHasPrefix applies the HasPrefix predicate on the "form_template_id" field.
func FormTemplateIDHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldFormTemplateID, v))
}

// FormTemplateIDHasSuffix applies the HasSuffix predicate on the "form_template_id" field.
func FormTemplateIDHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldFormTemplateID, v))
}

// FormTemplateIDEqualFold applies the EqualFold predicate on the "form_template_id" field.
func FormTemplateIDEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldFormTemplateID, v))
}

// FormTemplateIDContainsFold applies the ContainsFold predicate on the "form_template_id" field.
func FormTemplateIDContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldFormTemplateID, v))
}

// FormNameEQ applies the EQ predicate on the "form_name" field.
func FormNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFormName, v))
}

// FormNameNEQ applies the NEQ predicate on the "form_name" field.
func FormNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldFormName, v))
}

// FormNameIn applies the In predicate on the "form_name" field.
func FormNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldFormName, vs...))
}

// FormNameNotIn applies the NotIn predicate on the "form_name" field.
func FormNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldFormName, vs...))
}

// FormNameGT applies the GT predicate on the "form_name" field.
func FormNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldFormName, v))
}

// FormNameGTE applies the GTE predicate on the "form_name" field.
func FormNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldFormName, v))
}

// FormNameLT applies the LT predicate on the "form_name" field.
func FormNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldFormName, v))
}

// FormNameLTE applies the LTE predicate on the "form_name" field.
func FormNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldFormName, v))
}

// FormNameContains applies the Contains predicate on the "form_name" field.
func FormNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldFormName, v))
}

// FormNameHasPrefix applies the HasPrefix predicate on the "form_name" field.
func FormNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldFormName, v))
}

// FormNameHasSuffix applies the HasSuffix predicate on the "form_name" field.
func FormNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldFormName, v))
}

// FormNameEqualFold applies the EqualFold predicate on the "form_name" field.
func FormNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldFormName, v))
}

// FormNameContainsFold applies the ContainsFold predicate on the "form_name" field.
func FormNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldFormName, v))
}

// FormCategoryEQ applies the EQ predicate on the "form_category" field.
func FormCategoryEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldFormCategory, v))
}

// FormCategoryNEQ applies the NEQ predicate on the "form_category" field.
func FormCategoryNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldFormCategory, v))
}

// FormCategoryIn applies the In predicate on the "form_category" field.
func FormCategoryIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldFormCategory, vs...))
}

// FormCategoryNotIn applies the NotIn predicate on the "form_category" field.
func FormCategoryNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldFormCategory, vs...))
}

// FormCategoryGT applies the GT predicate on the "form_category" field.
func FormCategoryGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldFormCategory, v))
}

// FormCategoryGTE applies the GTE predicate on the "form_category" field.
func FormCategoryGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldFormCategory, v))
}

// FormCategoryLT applies the LT predicate on the "form_category" field.
func FormCategoryLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldFormCategory, v))
}

// FormCategoryLTE applies the LTE predicate on the "form_category" field.
func FormCategoryLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldFormCategory, v))
}

// FormCategoryContains applies the Contains predicate on the "form_category" field.
func FormCategoryContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldFormCategory, v))
}

// FormCategoryHasPrefix applies the HasPrefix predicate on the "form_category" field.
func FormCategoryHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldFormCategory, v))
}

// FormCategoryHasSuffix applies the HasSuffix predicate on the "form_category" field.
func FormCategoryHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldFormCategory, v))
}

// FormCategoryIsNil applies the IsNil predicate on the "form_category" field.
func FormCategoryIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldFormCategory))
}

// FormCategoryNotNil applies the NotNil predicate on the "form_category" field.
func FormCategoryNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldFormCategory))
}

// FormCategoryEqualFold applies the EqualFold predicate on the "form_category" field.
func FormCategoryEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldFormCategory, v))
}

// FormCategoryContainsFold applies the ContainsFold predicate on the "form_category" field.
func FormCategoryContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldFormCategory, v))
}

// SubmittedByEQ applies the EQ predicate on the "submitted_by" field.
func SubmittedByEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmittedByNEQ applies the NEQ predicate on the "submitted_by" field.
func SubmittedByNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmittedBy, v))
}

// SubmittedByIn applies the In predicate on the "submitted_by" field.
func SubmittedByIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmittedBy, vs...))
}

// SubmittedByNotIn applies the NotIn predicate on the "submitted_by" field.
func SubmittedByNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmittedBy, vs...))
}

// SubmittedByGT applies the GT predicate on the "submitted_by" field.
func SubmittedByGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmittedBy, v))
}

// SubmittedByGTE applies the GTE predicate on the "submitted_by" field.
func SubmittedByGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmittedBy, v))
}

// SubmittedByLT applies the LT predicate on the "submitted_by" field.
func SubmittedByLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmittedBy, v))
}

// SubmittedByLTE applies the LTE predicate on the "submitted_by" field.
func SubmittedByLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmittedBy, v))
}

// SubmittedByContains applies the Contains predicate on the "submitted_by" field.
func SubmittedByContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmittedBy, v))
}

// SubmittedByHasPrefix applies the HasPrefix predicate on the "submitted_by" field.
func SubmittedByHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmittedBy, v))
}

// SubmittedByHasSuffix applies the HasSuffix predicate on the "submitted_by" field.
func SubmittedByHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmittedBy, v))
}

// SubmittedByEqualFold applies the EqualFold predicate on the "submitted_by" field.
func SubmittedByEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmittedBy, v))
}

// SubmittedByContainsFold applies the ContainsFold predicate on the "submitted_by" field.
func SubmittedByContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmittedBy, v))
}

// SubmitterNameEQ applies the EQ predicate on the "submitter_name" field.
func SubmitterNameEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterName, v))
}

// SubmitterNameNEQ applies the NEQ predicate on the "submitter_name" field.
func SubmitterNameNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmitterName, v))
}

// SubmitterNameIn applies the In predicate on the "submitter_name" field.
func SubmitterNameIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmitterName, vs...))
}

// SubmitterNameNotIn applies the NotIn predicate on the "submitter_name" field.
func SubmitterNameNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmitterName, vs...))
}

// SubmitterNameGT applies the GT predicate on the "submitter_name" field.
func SubmitterNameGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmitterName, v))
}

// SubmitterNameGTE applies the GTE predicate on the "submitter_name" field.
func SubmitterNameGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmitterName, v))
}

// SubmitterNameLT applies the LT predicate on the "submitter_name" field.
func SubmitterNameLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmitterName, v))
}

// SubmitterNameLTE applies the LTE predicate on the "submitter_name" field.
func SubmitterNameLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmitterName, v))
}

// SubmitterNameContains applies the Contains predicate on the "submitter_name" field.
func SubmitterNameContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmitterName, v))
}

// SubmitterNameHasPrefix applies the HasPrefix predicate on the "submitter_name" field.
func SubmitterNameHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmitterName, v))
}

// SubmitterNameHasSuffix applies the HasSuffix predicate on the "submitter_name" field.
func SubmitterNameHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmitterName, v))
}

// SubmitterNameEqualFold applies the EqualFold predicate on the "submitter_name" field.
func SubmitterNameEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmitterName, v))
}

// SubmitterNameContainsFold applies the ContainsFold predicate on the "submitter_name" field.
func SubmitterNameContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmitterName, v))
}

// SubmitterPositionEQ applies the EQ predicate on the "submitter_position" field.
func SubmitterPositionEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterPosition, v))
}

// SubmitterPositionNEQ applies the NEQ predicate on the "submitter_position" field.
func SubmitterPositionNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmitterPosition, v))
}

// SubmitterPositionIn applies the In predicate on the "submitter_position" field.
func SubmitterPositionIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmitterPosition, vs...))
}

// SubmitterPositionNotIn applies the NotIn predicate on the "submitter_position" field.
func SubmitterPositionNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmitterPosition, vs...))
}

// SubmitterPositionGT applies the GT predicate on the "submitter_position" field.
func SubmitterPositionGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmitterPosition, v))
}

// SubmitterPositionGTE applies the GTE predicate on the "submitter_position" field.
func SubmitterPositionGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmitterPosition, v))
}

// SubmitterPositionLT applies the LT predicate on the "submitter_position" field.
func SubmitterPositionLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmitterPosition, v))
}

// SubmitterPositionLTE applies the LTE predicate on the "submitter_position" field.
func SubmitterPositionLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmitterPosition, v))
}

// SubmitterPositionContains applies the Contains predicate on the "submitter_position" field.
func SubmitterPositionContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmitterPosition, v))
}

// SubmitterPositionHasPrefix applies the HasPrefix predicate on the "submitter_position" field.
func SubmitterPositionHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmitterPosition, v))
}

// SubmitterPositionHasSuffix applies the HasSuffix predicate on the "submitter_position" field.
func SubmitterPositionHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmitterPosition, v))
}

// SubmitterPositionIsNil applies the IsNil predicate on the "submitter_position" field.
func SubmitterPositionIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldSubmitterPosition))
}

// SubmitterPositionNotNil applies the NotNil predicate on the "submitter_position" field.
func SubmitterPositionNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldSubmitterPosition))
}

// SubmitterPositionEqualFold applies the EqualFold predicate on the "submitter_position" field.
func SubmitterPositionEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmitterPosition, v))
}

// SubmitterPositionContainsFold applies the ContainsFold predicate on the "submitter_position" field.
func SubmitterPositionContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmitterPosition, v))
}

// SubmitterDepartmentEQ applies the EQ predicate on the "submitter_department" field.
func SubmitterDepartmentEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentNEQ applies the NEQ predicate on the "submitter_department" field.
func SubmitterDepartmentNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentIn applies the In predicate on the "submitter_department" field.
func SubmitterDepartmentIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmitterDepartment, vs...))
}

// SubmitterDepartmentNotIn applies the NotIn predicate on the "submitter_department" field.
func SubmitterDepartmentNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmitterDepartment, vs...))
}

// SubmitterDepartmentGT applies the GT predicate on the "submitter_department" field.
func SubmitterDepartmentGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentGTE applies the GTE predicate on the "submitter_department" field.
func SubmitterDepartmentGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentLT applies the LT predicate on the "submitter_department" field.
func SubmitterDepartmentLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentLTE applies the LTE predicate on the "submitter_department" field.
func SubmitterDepartmentLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentContains applies the Contains predicate on the "submitter_department" field.
func SubmitterDepartmentContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentHasPrefix applies the HasPrefix predicate on the "submitter_department" field.
func SubmitterDepartmentHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentHasSuffix applies the HasSuffix predicate on the "submitter_department" field.
func SubmitterDepartmentHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentIsNil applies the IsNil predicate on the "submitter_department" field.
func SubmitterDepartmentIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldSubmitterDepartment))
}

// SubmitterDepartmentNotNil applies the NotNil predicate on the "submitter_department" field.
func SubmitterDepartmentNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldSubmitterDepartment))
}

// SubmitterDepartmentEqualFold applies the EqualFold predicate on the "submitter_department" field.
func SubmitterDepartmentEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmitterDepartment, v))
}

// SubmitterDepartmentContainsFold applies the ContainsFold predicate on the "submitter_department" field.
func SubmitterDepartmentContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmitterDepartment, v))
}

// SubmitterEmailEQ applies the EQ predicate on the "submitter_email" field.
func SubmitterEmailEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmitterEmail, v))
}

// SubmitterEmailNEQ applies the NEQ predicate on the "submitter_email" field.
func SubmitterEmailNEQ(v string) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmitterEmail, v))
}

// SubmitterEmailIn applies the In predicate on the "submitter_email" field.
func SubmitterEmailIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmitterEmail, vs...))
}

// SubmitterEmailNotIn applies the NotIn predicate on the "submitter_email" field.
func SubmitterEmailNotIn(vs ...string) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmitterEmail, vs...))
}

// SubmitterEmailGT applies the GT predicate on the "submitter_email" field.
func SubmitterEmailGT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmitterEmail, v))
}

// SubmitterEmailGTE applies the GTE predicate on the "submitter_email" field.
func SubmitterEmailGTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmitterEmail, v))
}

// SubmitterEmailLT applies the LT predicate on the "submitter_email" field.
func SubmitterEmailLT(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmitterEmail, v))
}

// SubmitterEmailLTE applies the LTE predicate on the "submitter_email" field.
func SubmitterEmailLTE(v string) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmitterEmail, v))
}

// SubmitterEmailContains applies the Contains predicate on the "submitter_email" field.
func SubmitterEmailContains(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContains(FieldSubmitterEmail, v))
}

// SubmitterEmailHasPrefix applies the HasPrefix predicate on the "submitter_email" field.
func SubmitterEmailHasPrefix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasPrefix(FieldSubmitterEmail, v))
}

// SubmitterEmailHasSuffix applies the HasSuffix predicate on the "submitter_email" field.
func SubmitterEmailHasSuffix(v string) predicate.Submission {
	return predicate.Submission(sql.FieldHasSuffix(FieldSubmitterEmail, v))
}

// SubmitterEmailIsNil applies the IsNil predicate on the "submitter_email" field.
func SubmitterEmailIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldSubmitterEmail))
}

// SubmitterEmailNotNil applies the NotNil predicate on the "submitter_email" field.
func SubmitterEmailNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldSubmitterEmail))
}

// SubmitterEmailEqualFold applies the EqualFold predicate on the "submitter_email" field.
func SubmitterEmailEqualFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldEqualFold(FieldSubmitterEmail, v))
}

// SubmitterEmailContainsFold applies the ContainsFold predicate on the "submitter_email" field.
func SubmitterEmailContainsFold(v string) predicate.Submission {
	return predicate.Submission(sql.FieldContainsFold(FieldSubmitterEmail, v))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v []byte) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v []byte) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...[]byte) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...[]byte) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v []byte) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v []byte) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v []byte) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v []byte) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSignature, v))
}

// SignatureIsNil applies the IsNil predicate on the "signature" field.
func SignatureIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldSignature))
}

// SignatureNotNil applies the NotNil predicate on the "signature" field.
func SignatureNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldSignature))
}

// AttachmentsIsNil applies the IsNil predicate on the "attachments" field.
func AttachmentsIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldAttachments))
}

// AttachmentsNotNil applies the NotNil predicate on the "attachments" field.
func AttachmentsNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldAttachments))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldStatus, vs...))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldSubmittedAt, v))
}

// SubmittedAtIsNil applies the IsNil predicate on the "submitted_at" field.
func SubmittedAtIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldSubmittedAt))
}

// SubmittedAtNotNil applies the NotNil predicate on the "submitted_at" field.
func SubmittedAtNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldSubmittedAt))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldApprovedAt))
}

// RejectedAtEQ applies the EQ predicate on the "rejected_at" field.
func RejectedAtEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldEQ(FieldRejectedAt, v))
}

// RejectedAtNEQ applies the NEQ predicate on the "rejected_at" field.
func RejectedAtNEQ(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNEQ(FieldRejectedAt, v))
}

// RejectedAtIn applies the In predicate on the "rejected_at" field.
func RejectedAtIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldIn(FieldRejectedAt, vs...))
}

// RejectedAtNotIn applies the NotIn predicate on the "rejected_at" field.
func RejectedAtNotIn(vs ...time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldNotIn(FieldRejectedAt, vs...))
}

// RejectedAtGT applies the GT predicate on the "rejected_at" field.
func RejectedAtGT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGT(FieldRejectedAt, v))
}

// RejectedAtGTE applies the GTE predicate on the "rejected_at" field.
func RejectedAtGTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldGTE(FieldRejectedAt, v))
}

// RejectedAtLT applies the LT predicate on the "rejected_at" field.
func RejectedAtLT(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLT(FieldRejectedAt, v))
}

// RejectedAtLTE applies the LTE predicate on the "rejected_at" field.
func RejectedAtLTE(v time.Time) predicate.Submission {
	return predicate.Submission(sql.FieldLTE(FieldRejectedAt, v))
}

// RejectedAtIsNil applies the IsNil predicate on the "rejected_at" field.
func RejectedAtIsNil() predicate.Submission {
	return predicate.Submission(sql.FieldIsNull(FieldRejectedAt))
}

// RejectedAtNotNil applies the NotNil predicate on the "rejected_at" field.
func RejectedAtNotNil() predicate.Submission {
	return predicate.Submission(sql.FieldNotNull(FieldRejectedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Submission) predicate.Submission {
	return predicate.Submission(sql.NotPredicates(p))
}
