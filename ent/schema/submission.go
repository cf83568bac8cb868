package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"formgate.io/formgate/internal/domain"
)

// Submission holds the schema definition for the Submission entity.
//
// A submission is the single shared mutable resource of the approval engine.
// Status transitions and approval-record appends go through the atomic pgx
// writer (internal/usecase), never through plain Ent updates; Ent is the
// read side and the migration source for this table.
type Submission struct {
	ent.Schema
}

// Mixin of the Submission.
func (Submission) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Submission.
func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("form_template_id").
			NotEmpty().
			Immutable(),
		// Denormalized from the template at creation time; the template may
		// change or disappear while this submission is in flight.
		field.String("form_name").
			NotEmpty().
			Immutable(),
		field.String("form_category").
			Optional().
			Immutable(),
		field.String("submitted_by").
			NotEmpty().
			Immutable(),
		// Submitter profile denormalized at submission time: the rendered
		// document must reflect values as of the moment of submission.
		field.String("submitter_name").
			NotEmpty(),
		field.String("submitter_position").
			Optional(),
		field.String("submitter_department").
			Optional(),
		field.String("submitter_email").
			Optional(),
		field.Bytes("signature").
			Optional().
			Sensitive(),
		field.JSON("form_data", domain.FormData{}).
			Comment("FormField.id → value; bool for checkbox, string otherwise"),
		field.JSON("attachments", []domain.Attachment{}).
			Optional(),
		field.JSON("assigned_approvers", []domain.Approver{}).
			Comment("Snapshot of the template approver set at submit time; immutable afterwards"),
		field.Enum("status").
			Values("DRAFT", "PENDING_APPROVAL", "APPROVED", "REJECTED").
			Default("DRAFT"),
		field.Time("submitted_at").
			Optional().
			Nillable(),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Time("rejected_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Submission.
func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("submitted_by"),
		index.Fields("form_template_id"),
	}
}
