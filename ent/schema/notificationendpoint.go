package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationEndpoint holds the schema definition for outbound webhook endpoints.
type NotificationEndpoint struct {
	ent.Schema
}

// Fields of the NotificationEndpoint.
func (NotificationEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("url").
			NotEmpty().
			Comment("Destination URL for POSTed notifications"),
		field.JSON("kinds", []string{}).
			Comment("Notification kinds this endpoint subscribes to"),
		field.String("secret").
			Sensitive().
			Comment("HMAC-SHA256 secret for payload signatures"),
		field.String("description").
			Optional(),
		field.Bool("active").
			Default(true),
		field.Int("success_count").
			Default(0),
		field.Int("failure_count").
			Default(0),
		field.Time("last_triggered_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the NotificationEndpoint.
func (NotificationEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active").
			StorageKey("idx_notification_endpoints_active"),
	}
}
