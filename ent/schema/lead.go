package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty().
			Comment("Contact first name"),
		field.String("last_name").
			NotEmpty().
			Comment("Contact last name"),
		field.String("email").
			NotEmpty().
			Comment("Contact email"),
		field.String("phone").
			Optional().
			Comment("Contact phone, E.164 when it could be normalized"),
		field.String("company").
			Optional().
			Comment("Company name"),
		field.String("location").
			Optional().
			Comment("Office location / city"),
		field.String("service_type").
			Optional().
			Comment("Requested service (chair massage, wellness day, ...)"),
		field.Time("event_date").
			Optional().
			Nillable().
			Comment("Requested event date, when the form supplied one"),
		field.Int("appointment_count").
			Optional().
			Positive().
			Comment("Requested number of appointments"),
		field.Text("message").
			Optional().
			Comment("Free-form message from the contact form"),
		field.Enum("platform").
			Values("website", "linkedin", "meta").
			Default("website").
			Comment("Channel the submission arrived through"),
		field.String("campaign_id").
			Optional().
			Comment("Ad campaign ID for lead-ad submissions"),
		field.String("ad_set_id").
			Optional().
			Comment("Ad set ID for lead-ad submissions"),
		field.String("ad_id").
			Optional().
			Comment("Ad ID for lead-ad submissions"),
		field.Enum("status").
			Values("new", "contacted", "followed_up", "closed").
			Default("new").
			Comment("Owner-managed follow-up status"),
		field.Time("status_changed_at").
			Default(time.Now).
			Comment("When the status last changed"),
		field.String("utm_source").
			Optional(),
		field.String("utm_medium").
			Optional(),
		field.String("utm_campaign").
			Optional(),
		field.String("utm_term").
			Optional(),
		field.String("utm_content").
			Optional(),
		field.String("referrer").
			Optional().
			Comment("Raw referrer URL at submission time"),
		field.String("user_agent").
			Optional(),
		field.Int("lead_score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Quality score computed once at submission time"),
		field.Float("conversion_value").
			Default(0).
			Min(0).
			Comment("Estimated value in USD, computed once at submission time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("status_history", LeadStatusHistory.Type),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email", "created_at").
			StorageKey("idx_leads_email_time"),
		index.Fields("status").
			StorageKey("idx_leads_status"),
		index.Fields("utm_source").
			StorageKey("idx_leads_utm_source"),
	}
}
