package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Portal accounts: employees, approvers and admins alike. The profile fields
// (name, position, department) are denormalized into submissions and approval
// records at action time, so later profile edits never rewrite history.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			MaxLen(255),
		field.String("email").
			Optional().
			MaxLen(255),
		field.String("name").
			NotEmpty(),
		field.String("position").
			Optional(),
		field.String("department").
			Optional(),
		field.String("password_hash").
			Optional().
			Sensitive(), // For local auth
		field.Bool("force_password_change").
			Default(false),
		field.JSON("roles", []string{}).
			Optional(), // e.g. "admin", "approver"
		field.Bool("enabled").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("notifications", Notification.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
		index.Fields("email").Unique(),
	}
}
