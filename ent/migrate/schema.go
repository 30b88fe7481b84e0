// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "first_name", Type: field.TypeString},
		{Name: "last_name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "service_type", Type: field.TypeString, Nullable: true},
		{Name: "event_date", Type: field.TypeTime, Nullable: true},
		{Name: "appointment_count", Type: field.TypeInt, Nullable: true},
		{Name: "message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"website", "linkedin", "meta"}, Default: "website"},
		{Name: "campaign_id", Type: field.TypeString, Nullable: true},
		{Name: "ad_set_id", Type: field.TypeString, Nullable: true},
		{Name: "ad_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "followed_up", "closed"}, Default: "new"},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "utm_source", Type: field.TypeString, Nullable: true},
		{Name: "utm_medium", Type: field.TypeString, Nullable: true},
		{Name: "utm_campaign", Type: field.TypeString, Nullable: true},
		{Name: "utm_term", Type: field.TypeString, Nullable: true},
		{Name: "utm_content", Type: field.TypeString, Nullable: true},
		{Name: "referrer", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "lead_score", Type: field.TypeInt, Default: 0},
		{Name: "conversion_value", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_leads_email_time",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[3], LeadsColumns[26]},
			},
			{
				Name:    "idx_leads_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[15]},
			},
			{
				Name:    "idx_leads_utm_source",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[17]},
			},
		},
	}
	// LeadStatusHistoriesColumns holds the columns for the "lead_status_histories" table.
	LeadStatusHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "changed_by", Type: field.TypeString},
		{Name: "old_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"new", "contacted", "followed_up", "closed"}},
		{Name: "new_status", Type: field.TypeEnum, Enums: []string{"new", "contacted", "followed_up", "closed"}},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
	}
	// LeadStatusHistoriesTable holds the schema information for the "lead_status_histories" table.
	LeadStatusHistoriesTable = &schema.Table{
		Name:       "lead_status_histories",
		Columns:    LeadStatusHistoriesColumns,
		PrimaryKey: []*schema.Column{LeadStatusHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_status_histories_leads_status_history",
				Columns:    []*schema.Column{LeadStatusHistoriesColumns[6]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_lead_status_history_lead_time",
				Unique:  false,
				Columns: []*schema.Column{LeadStatusHistoriesColumns[6], LeadStatusHistoriesColumns[5]},
			},
			{
				Name:    "idx_lead_status_history_status_time",
				Unique:  false,
				Columns: []*schema.Column{LeadStatusHistoriesColumns[3], LeadStatusHistoriesColumns[5]},
			},
		},
	}
	// NotificationEndpointsColumns holds the columns for the "notification_endpoints" table.
	NotificationEndpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "url", Type: field.TypeString},
		{Name: "kinds", Type: field.TypeJSON},
		{Name: "secret", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "success_count", Type: field.TypeInt, Default: 0},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "last_triggered_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationEndpointsTable holds the schema information for the "notification_endpoints" table.
	NotificationEndpointsTable = &schema.Table{
		Name:       "notification_endpoints",
		Columns:    NotificationEndpointsColumns,
		PrimaryKey: []*schema.Column{NotificationEndpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_notification_endpoints_active",
				Unique:  false,
				Columns: []*schema.Column{NotificationEndpointsColumns[5]},
			},
		},
	}
	// ProposalsColumns holds the columns for the "proposals" table.
	ProposalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "company_name", Type: field.TypeString},
		{Name: "contact_name", Type: field.TypeString, Nullable: true},
		{Name: "contact_email", Type: field.TypeString},
		{Name: "service_type", Type: field.TypeString},
		{Name: "appointment_count", Type: field.TypeInt},
		{Name: "rate_per_appointment", Type: field.TypeFloat64},
		{Name: "discount_pct", Type: field.TypeFloat64, Default: 0},
		{Name: "total", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "sent", "viewed", "approved", "signed", "paid"}, Default: "draft"},
		{Name: "view_token", Type: field.TypeString, Unique: true},
		{Name: "stripe_invoice_id", Type: field.TypeString, Nullable: true},
		{Name: "docuseal_submission_id", Type: field.TypeString, Nullable: true},
		{Name: "viewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProposalsTable holds the schema information for the "proposals" table.
	ProposalsTable = &schema.Table{
		Name:       "proposals",
		Columns:    ProposalsColumns,
		PrimaryKey: []*schema.Column{ProposalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "idx_proposals_status",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[9]},
			},
			{
				Name:    "idx_proposals_contact_email",
				Unique:  false,
				Columns: []*schema.Column{ProposalsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LeadsTable,
		LeadStatusHistoriesTable,
		NotificationEndpointsTable,
		ProposalsTable,
	}
)

func init() {
	LeadStatusHistoriesTable.ForeignKeys[0].RefTable = LeadsTable
}
