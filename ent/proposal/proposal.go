// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the proposal type in the database.
	Label = "proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldContactName holds the string denoting the contact_name field in the database.
	FieldContactName = "contact_name"
	// FieldContactEmail holds the string denoting the contact_email field in the database.
	FieldContactEmail = "contact_email"
	// FieldServiceType holds the string denoting the service_type field in the database.
	FieldServiceType = "service_type"
	// FieldAppointmentCount holds the string denoting the appointment_count field in the database.
	FieldAppointmentCount = "appointment_count"
	// FieldRatePerAppointment holds the string denoting the rate_per_appointment field in the database.
	FieldRatePerAppointment = "rate_per_appointment"
	// FieldDiscountPct holds the string denoting the discount_pct field in the database.
	FieldDiscountPct = "discount_pct"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldViewToken holds the string denoting the view_token field in the database.
	FieldViewToken = "view_token"
	// FieldStripeInvoiceID holds the string denoting the stripe_invoice_id field in the database.
	FieldStripeInvoiceID = "stripe_invoice_id"
	// FieldDocusealSubmissionID holds the string denoting the docuseal_submission_id field in the database.
	FieldDocusealSubmissionID = "docuseal_submission_id"
	// FieldViewedAt holds the string denoting the viewed_at field in the database.
	FieldViewedAt = "viewed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the proposal in the database.
	Table = "proposals"
)

// Columns holds all SQL columns for proposal fields.
var Columns = []string{
	FieldID,
	FieldCompanyName,
	FieldContactName,
	FieldContactEmail,
	FieldServiceType,
	FieldAppointmentCount,
	FieldRatePerAppointment,
	FieldDiscountPct,
	FieldTotal,
	FieldStatus,
	FieldViewToken,
	FieldStripeInvoiceID,
	FieldDocusealSubmissionID,
	FieldViewedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	CompanyNameValidator func(string) error
	// ContactEmailValidator is a validator for the "contact_email" field. It is called by the builders before save.
	ContactEmailValidator func(string) error
	// ServiceTypeValidator is a validator for the "service_type" field. It is called by the builders before save.
	ServiceTypeValidator func(string) error
	// AppointmentCountValidator is a validator for the "appointment_count" field. It is called by the builders before save.
	AppointmentCountValidator func(int) error
	// RatePerAppointmentValidator is a validator for the "rate_per_appointment" field. It is called by the builders before save.
	RatePerAppointmentValidator func(float64) error
	// DefaultDiscountPct holds the default value on creation for the "discount_pct" field.
	DefaultDiscountPct float64
	// DiscountPctValidator is a validator for the "discount_pct" field. It is called by the builders before save.
	DiscountPctValidator func(float64) error
	// TotalValidator is a validator for the "total" field. It is called by the builders before save.
	TotalValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusApproved Status = "approved"
	StatusSigned   Status = "signed"
	StatusPaid     Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusSent, StatusViewed, StatusApproved, StatusSigned, StatusPaid:
		return nil
	default:
		return fmt.Errorf("proposal: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Proposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByContactName orders the results by the contact_name field.
func ByContactName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactName, opts...).ToFunc()
}

// ByContactEmail orders the results by the contact_email field.
func ByContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactEmail, opts...).ToFunc()
}

// ByServiceType orders the results by the service_type field.
func ByServiceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceType, opts...).ToFunc()
}

// ByAppointmentCount orders the results by the appointment_count field.
func ByAppointmentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentCount, opts...).ToFunc()
}

// ByRatePerAppointment orders the results by the rate_per_appointment field.
func ByRatePerAppointment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRatePerAppointment, opts...).ToFunc()
}

// ByDiscountPct orders the results by the discount_pct field.
func ByDiscountPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscountPct, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByViewToken orders the results by the view_token field.
func ByViewToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewToken, opts...).ToFunc()
}

// ByStripeInvoiceID orders the results by the stripe_invoice_id field.
func ByStripeInvoiceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeInvoiceID, opts...).ToFunc()
}

// ByDocusealSubmissionID orders the results by the docuseal_submission_id field.
func ByDocusealSubmissionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocusealSubmissionID, opts...).ToFunc()
}

// ByViewedAt orders the results by the viewed_at field.
func ByViewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
