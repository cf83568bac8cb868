package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"formgate.io/formgate/internal/domain"
)

// FormTemplate holds the schema definition for the FormTemplate entity.
// Templates are authored by admins and are immutable from the approval
// engine's perspective: submissions copy whatever they need at submit time.
type FormTemplate struct {
	ent.Schema
}

// Mixin of the FormTemplate.
func (FormTemplate) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the FormTemplate.
func (FormTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional(),
		field.String("category").
			Optional(),
		field.JSON("fields", []domain.FormField{}).
			Comment("Ordered field list; order defines rendering order"),
		field.JSON("approvers", []domain.Approver{}).
			Comment("Required approver identities; order reflects seniority"),
		field.String("notes").
			Optional().
			Comment("Free text rendered above the signature grid"),
		field.String("revision_number").
			NotEmpty().
			Immutable().
			Comment("Opaque revision tag generated at creation time"),
		field.String("created_by").
			NotEmpty().
			Immutable(),
		// Optional reference document (opaque blob).
		field.Bytes("reference_doc").
			Optional().
			Sensitive(),
		field.String("reference_doc_name").
			Optional(),
		field.String("reference_doc_type").
			Optional(),
		field.Int64("reference_doc_size").
			Optional(),
	}
}

// Indexes of the FormTemplate.
func (FormTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("name"),
	}
}
