// Code generated by ent, DO NOT EDIT.

package formtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"formgate.io/formgate/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldDescription, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldCategory, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldNotes, v))
}

// RevisionNumber applies equality check predicate on the "revision_number" field. It's identical to RevisionNumberEQ.
func RevisionNumber(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldRevisionNumber, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldCreatedBy, v))
}

// ReferenceDoc applies equality check predicate on the "reference_doc" field. It's identical to ReferenceDocEQ.
func ReferenceDoc(v []byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldReferenceDoc, v))
}

// ReferenceDocName applies equality check predicate on the "reference_doc_name" field. It's identical to ReferenceDocNameEQ.
func ReferenceDocName(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldReferenceDocName, v))
}

// ReferenceDocType applies equality check predicate on the "reference_doc_type" field. It's identical to ReferenceDocTypeEQ.
func ReferenceDocType(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldReferenceDocType, v))
}

// ReferenceDocSize applies equality check predicate on the "reference_doc_size" field. It's identical to ReferenceDocSizeEQ.
func ReferenceDocSize(v int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldReferenceDocSize, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldCategory, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldNotes, v))
}

// RevisionNumberEQ applies the EQ predicate on the "revision_number" field.
func RevisionNumberEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldRevisionNumber, v))
}

// RevisionNumberNEQ applies the NEQ predicate on the "revision_number" field.
func RevisionNumberNEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldRevisionNumber, v))
}

// RevisionNumberIn applies the In predicate on the "revision_number" field.
func RevisionNumberIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldRevisionNumber, vs...))
}

// RevisionNumberNotIn applies the NotIn predicate on the "revision_number" field.
func RevisionNumberNotIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldRevisionNumber, vs...))
}

// RevisionNumberGT applies the GT predicate on the "revision_number" field.
func RevisionNumberGT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldRevisionNumber, v))
}

// RevisionNumberGTE applies the GTE predicate on the "revision_number" field.
func RevisionNumberGTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldRevisionNumber, v))
}

// RevisionNumberLT applies the LT predicate on the "revision_number" field.
func RevisionNumberLT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldRevisionNumber, v))
}

// RevisionNumberLTE applies the LTE predicate on the "revision_number" field.
func RevisionNumberLTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldRevisionNumber, v))
}

// RevisionNumberContains applies the Contains predicate on the "revision_number" field.
func RevisionNumberContains(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContains(FieldRevisionNumber, v))
}

// RevisionNumberHasPrefix applies the HasPrefix predicate on the "revision_number" field.
func RevisionNumberHasPrefix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasPrefix(FieldRevisionNumber, v))
}

// RevisionNumberHasSuffix applies the HasSuffix predicate on the "revision_number" field.
func RevisionNumberHasSuffix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasSuffix(FieldRevisionNumber, v))
}

// RevisionNumberEqualFold applies the EqualFold predicate on the "revision_number" field.
func RevisionNumberEqualFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldRevisionNumber, v))
}

// RevisionNumberContainsFold applies the ContainsFold predicate on the "revision_number" field.
func RevisionNumberContainsFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldRevisionNumber, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldCreatedBy, v))
}

// ReferenceDocEQ applies the EQ predicate on the "reference_doc" field.
func ReferenceDocEQ(v []byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldReferenceDoc, v))
}

// ReferenceDocNEQ applies the NEQ predicate on the "reference_doc" field.
func ReferenceDocNEQ(v []byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldReferenceDoc, v))
}

// ReferenceDocIn applies the In predicate on the "reference_doc" field.
func ReferenceDocIn(vs ...[]byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldReferenceDoc, vs...))
}

// ReferenceDocNotIn applies the NotIn predicate on the "reference_doc" field.
func ReferenceDocNotIn(vs ...[]byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldReferenceDoc, vs...))
}

// ReferenceDocGT applies the GT predicate on the "reference_doc" field.
func ReferenceDocGT(v []byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldReferenceDoc, v))
}

// ReferenceDocGTE applies the GTE predicate on the "reference_doc" field.
func ReferenceDocGTE(v []byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldReferenceDoc, v))
}

// ReferenceDocLT applies the LT predicate on the "reference_doc" field.
func ReferenceDocLT(v []byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldReferenceDoc, v))
}

// ReferenceDocLTE applies the LTE predicate on the "reference_doc" field.
func ReferenceDocLTE(v []byte) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldReferenceDoc, v))
}

// ReferenceDocIsNil applies the IsNil predicate on the "reference_doc" field.
func ReferenceDocIsNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIsNull(FieldReferenceDoc))
}

// ReferenceDocNotNil applies the NotNil predicate on the "reference_doc" field.
func ReferenceDocNotNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotNull(FieldReferenceDoc))
}

// ReferenceDocNameEQ applies the EQ predicate on the "reference_doc_name" field.
func ReferenceDocNameEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldReferenceDocName, v))
}

// ReferenceDocNameNEQ applies the NEQ predicate on the "reference_doc_name" field.
func ReferenceDocNameNEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldReferenceDocName, v))
}

// ReferenceDocNameIn applies the In predicate on the "reference_doc_name" field.
func ReferenceDocNameIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldReferenceDocName, vs...))
}

// ReferenceDocNameNotIn applies the NotIn predicate on the "reference_doc_name" field.
func ReferenceDocNameNotIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldReferenceDocName, vs...))
}

// ReferenceDocNameGT applies the GT predicate on the "reference_doc_name" field.
func ReferenceDocNameGT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldReferenceDocName, v))
}

// ReferenceDocNameGTE applies the GTE predicate on the "reference_doc_name" field.
func ReferenceDocNameGTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldReferenceDocName, v))
}

// ReferenceDocNameLT applies the LT predicate on the "reference_doc_name" field.
func ReferenceDocNameLT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldReferenceDocName, v))
}

// ReferenceDocNameLTE applies the LTE predicate on the "reference_doc_name" field.
func ReferenceDocNameLTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldReferenceDocName, v))
}

// ReferenceDocNameContains applies the Contains predicate on the "reference_doc_name" field.
func ReferenceDocNameContains(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContains(FieldReferenceDocName, v))
}

// ReferenceDocNameHasPrefix applies the HasPrefix predicate on the "reference_doc_name" field.
func ReferenceDocNameHasPrefix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasPrefix(FieldReferenceDocName, v))
}

// ReferenceDocNameHasSuffix applies the HasSuffix predicate on the "reference_doc_name" field.
func ReferenceDocNameHasSuffix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasSuffix(FieldReferenceDocName, v))
}

// ReferenceDocNameIsNil applies the IsNil predicate on the "reference_doc_name" field.
func ReferenceDocNameIsNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIsNull(FieldReferenceDocName))
}

// ReferenceDocNameNotNil applies the NotNil predicate on the "reference_doc_name" field.
func ReferenceDocNameNotNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotNull(FieldReferenceDocName))
}

// ReferenceDocNameEqualFold applies the EqualFold predicate on the "reference_doc_name" field.
func ReferenceDocNameEqualFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldReferenceDocName, v))
}

// ReferenceDocNameContainsFold applies the ContainsFold predicate on the "reference_doc_name" field.
func ReferenceDocNameContainsFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldReferenceDocName, v))
}

// ReferenceDocTypeEQ applies the EQ predicate on the "reference_doc_type" field.
func ReferenceDocTypeEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldReferenceDocType, v))
}

// ReferenceDocTypeNEQ applies the NEQ predicate on the "reference_doc_type" field.
func ReferenceDocTypeNEQ(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldReferenceDocType, v))
}

// ReferenceDocTypeIn applies the In predicate on the "reference_doc_type" field.
func ReferenceDocTypeIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldReferenceDocType, vs...))
}

// ReferenceDocTypeNotIn applies the NotIn predicate on the "reference_doc_type" field.
func ReferenceDocTypeNotIn(vs ...string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldReferenceDocType, vs...))
}

// ReferenceDocTypeGT applies the GT predicate on the "reference_doc_type" field.
func ReferenceDocTypeGT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldReferenceDocType, v))
}

// ReferenceDocTypeGTE applies the GTE predicate on the "reference_doc_type" field.
func ReferenceDocTypeGTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldReferenceDocType, v))
}

// ReferenceDocTypeLT applies the LT predicate on the "reference_doc_type" field.
func ReferenceDocTypeLT(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldReferenceDocType, v))
}

// ReferenceDocTypeLTE applies the LTE predicate on the "reference_doc_type" field.
func ReferenceDocTypeLTE(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldReferenceDocType, v))
}

// ReferenceDocTypeContains applies the Contains predicate on the "reference_doc_type" field.
func ReferenceDocTypeContains(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContains(FieldReferenceDocType, v))
}

// ReferenceDocTypeHasPrefix applies the HasPrefix predicate on the "reference_doc_type" field.
func ReferenceDocTypeHasPrefix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasPrefix(FieldReferenceDocType, v))
}

// ReferenceDocTypeHasSuffix applies the HasSuffix predicate on the "reference_doc_type" field.
func ReferenceDocTypeHasSuffix(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldHasSuffix(FieldReferenceDocType, v))
}

// ReferenceDocTypeIsNil applies the IsNil predicate on the "reference_doc_type" field.
func ReferenceDocTypeIsNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIsNull(FieldReferenceDocType))
}

// ReferenceDocTypeNotNil applies the NotNil predicate on the "reference_doc_type" field.
func ReferenceDocTypeNotNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotNull(FieldReferenceDocType))
}

// ReferenceDocTypeEqualFold applies the EqualFold predicate on the "reference_doc_type" field.
func ReferenceDocTypeEqualFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEqualFold(FieldReferenceDocType, v))
}

// ReferenceDocTypeContainsFold applies the ContainsFold predicate on the "reference_doc_type" field.
func ReferenceDocTypeContainsFold(v string) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldContainsFold(FieldReferenceDocType, v))
}

// ReferenceDocSizeEQ applies the EQ predicate on the "reference_doc_size" field.
func ReferenceDocSizeEQ(v int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldEQ(FieldReferenceDocSize, v))
}

// ReferenceDocSizeNEQ applies the NEQ predicate on the "reference_doc_size" field.
func ReferenceDocSizeNEQ(v int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNEQ(FieldReferenceDocSize, v))
}

// ReferenceDocSizeIn applies the In predicate on the "reference_doc_size" field.
func ReferenceDocSizeIn(vs ...int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIn(FieldReferenceDocSize, vs...))
}

// ReferenceDocSizeNotIn applies the NotIn predicate on the "reference_doc_size" field.
func ReferenceDocSizeNotIn(vs ...int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotIn(FieldReferenceDocSize, vs...))
}

// ReferenceDocSizeGT applies the GT predicate on the "reference_doc_size" field.
func ReferenceDocSizeGT(v int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGT(FieldReferenceDocSize, v))
}

// ReferenceDocSizeGTE applies the GTE predicate on the "reference_doc_size" field.
func ReferenceDocSizeGTE(v int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldGTE(FieldReferenceDocSize, v))
}

// ReferenceDocSizeLT applies the LT predicate on the "reference_doc_size" field.
func ReferenceDocSizeLT(v int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLT(FieldReferenceDocSize, v))
}

// ReferenceDocSizeLTE applies the LTE predicate on the "reference_doc_size" field.
func ReferenceDocSizeLTE(v int64) predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldLTE(FieldReferenceDocSize, v))
}

// ReferenceDocSizeIsNil applies the IsNil predicate on the "reference_doc_size" field.
func ReferenceDocSizeIsNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldIsNull(FieldReferenceDocSize))
}

// ReferenceDocSizeNotNil applies the NotNil predicate on the "reference_doc_size" field.
func ReferenceDocSizeNotNil() predicate.FormTemplate {
	return predicate.FormTemplate(sql.FieldNotNull(FieldReferenceDocSize))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FormTemplate) predicate.FormTemplate {
	return predicate.FormTemplate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FormTemplate) predicate.FormTemplate {
	return predicate.FormTemplate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FormTemplate) predicate.FormTemplate {
	return predicate.FormTemplate(sql.NotPredicates(p))
}
