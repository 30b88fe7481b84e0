package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadStatusHistory holds the schema definition for the LeadStatusHistory entity.
type LeadStatusHistory struct {
	ent.Schema
}

// Fields of the LeadStatusHistory.
func (LeadStatusHistory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Positive().
			Comment("ID of the lead whose status changed"),

		field.String("changed_by").
			Comment("Email of the dashboard user who changed the status"),

		field.Enum("old_status").
			Values("new", "contacted", "followed_up", "closed").
			Optional().
			Nillable().
			Comment("Previous status (null for initial status)"),

		field.Enum("new_status").
			Values("new", "contacted", "followed_up", "closed").
			Comment("New status after the change"),

		field.Text("reason").
			Optional().
			MaxLen(1000).
			Comment("Optional reason for the status change"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the status change occurred"),
	}
}

// Edges of the LeadStatusHistory.
func (LeadStatusHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("status_history").
			Field("lead_id").
			Unique().
			Required(),
	}
}

// Indexes of the LeadStatusHistory.
func (LeadStatusHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id", "created_at").
			StorageKey("idx_lead_status_history_lead_time"),

		index.Fields("new_status", "created_at").
			StorageKey("idx_lead_status_history_status_time"),
	}
}
