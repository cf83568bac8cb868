package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalRecord holds the schema definition for the ApprovalRecord entity.
//
// The approval timeline: append-only audit rows, one per Submitted/Approved/
// Rejected action on a submission. Rows are inserted only by the atomic pgx
// writer, in the same transaction as the submission status recomputation.
// No update or delete path exists.
type ApprovalRecord struct {
	ent.Schema
}

// Mixin of the ApprovalRecord.
func (ApprovalRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only (timeline is append-only)
	}
}

// Fields of the ApprovalRecord.
func (ApprovalRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("submission_id").
			NotEmpty().
			Immutable(),
		field.Enum("action").
			Values("SUBMITTED", "APPROVED", "REJECTED").
			Immutable(),
		field.String("actor_id").
			NotEmpty().
			Immutable(),
		// Actor profile denormalized at the moment of action.
		field.String("actor_name").
			NotEmpty().
			Immutable(),
		field.String("actor_position").
			Optional().
			Immutable(),
		field.String("actor_department").
			Optional().
			Immutable(),
		field.Bytes("signature").
			Optional().
			Immutable().
			Sensitive(),
	}
}

// Indexes of the ApprovalRecord.
func (ApprovalRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("submission_id"),
		index.Fields("submission_id", "action"),
		// Idempotency guard: one APPROVED row per approver per submission.
		index.Fields("submission_id", "actor_id", "action").Unique(),
	}
}
