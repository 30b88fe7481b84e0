package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Proposal holds the schema definition for the Proposal entity.
type Proposal struct {
	ent.Schema
}

// Fields of the Proposal.
func (Proposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("company_name").
			NotEmpty().
			Comment("Client company the proposal is addressed to"),
		field.String("contact_name").
			Optional().
			Comment("Client contact person"),
		field.String("contact_email").
			NotEmpty().
			Comment("Where the proposal link is sent"),
		field.String("service_type").
			NotEmpty().
			Comment("Service being quoted (chair massage, wellness day, ...)"),
		field.Int("appointment_count").
			Positive().
			Comment("Number of appointments quoted"),
		field.Float("rate_per_appointment").
			Min(0).
			Comment("Per-appointment rate in USD"),
		field.Float("discount_pct").
			Default(0).
			Min(0).
			Max(100).
			Comment("Percentage discount applied to the subtotal"),
		field.Float("total").
			Min(0).
			Comment("Recalculated total in USD"),
		field.Enum("status").
			Values("draft", "sent", "viewed", "approved", "signed", "paid").
			Default("draft"),
		field.String("view_token").
			Unique().
			Comment("Opaque token for the public proposal view link"),
		field.String("stripe_invoice_id").
			Optional().
			Comment("Stripe invoice linked to this proposal, if invoiced"),
		field.String("docuseal_submission_id").
			Optional().
			Comment("DocuSeal submission linked to this proposal, if sent for signature"),
		field.Time("viewed_at").
			Optional().
			Nillable().
			Comment("First time the client opened the proposal"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Proposal.
func (Proposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status").
			StorageKey("idx_proposals_status"),
		index.Fields("contact_email").
			StorageKey("idx_proposals_contact_email"),
	}
}
