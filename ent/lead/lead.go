// Code generated by ent, DO NOT EDIT.

package lead

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldServiceType holds the string denoting the service_type field in the database.
	FieldServiceType = "service_type"
	// FieldEventDate holds the string denoting the event_date field in the database.
	FieldEventDate = "event_date"
	// FieldAppointmentCount holds the string denoting the appointment_count field in the database.
	FieldAppointmentCount = "appointment_count"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldAdSetID holds the string denoting the ad_set_id field in the database.
	FieldAdSetID = "ad_set_id"
	// FieldAdID holds the string denoting the ad_id field in the database.
	FieldAdID = "ad_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStatusChangedAt holds the string denoting the status_changed_at field in the database.
	FieldStatusChangedAt = "status_changed_at"
	// FieldUtmSource holds the string denoting the utm_source field in the database.
	FieldUtmSource = "utm_source"
	// FieldUtmMedium holds the string denoting the utm_medium field in the database.
	FieldUtmMedium = "utm_medium"
	// FieldUtmCampaign holds the string denoting the utm_campaign field in the database.
	FieldUtmCampaign = "utm_campaign"
	// FieldUtmTerm holds the string denoting the utm_term field in the database.
	FieldUtmTerm = "utm_term"
	// FieldUtmContent holds the string denoting the utm_content field in the database.
	FieldUtmContent = "utm_content"
	// FieldReferrer holds the string denoting the referrer field in the database.
	FieldReferrer = "referrer"
	// FieldUserAgent holds the string denoting the user_agent field in the database.
	FieldUserAgent = "user_agent"
	// FieldLeadScore holds the string denoting the lead_score field in the database.
	FieldLeadScore = "lead_score"
	// FieldConversionValue holds the string denoting the conversion_value field in the database.
	FieldConversionValue = "conversion_value"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeStatusHistory holds the string denoting the status_history edge name in mutations.
	EdgeStatusHistory = "status_history"
	// Table holds the table name of the lead in the database.
	Table = "leads"
	// StatusHistoryTable is the table that holds the status_history relation/edge.
	StatusHistoryTable = "lead_status_histories"
	// StatusHistoryInverseTable is the table name for the LeadStatusHistory entity.
	// It exists in this package in order to avoid circular dependency with the "leadstatushistory" package.
	StatusHistoryInverseTable = "lead_status_histories"
	// StatusHistoryColumn is the table column denoting the status_history relation/edge.
	StatusHistoryColumn = "lead_id"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldCompany,
	FieldLocation,
	FieldServiceType,
	FieldEventDate,
	FieldAppointmentCount,
	FieldMessage,
	FieldPlatform,
	FieldCampaignID,
	FieldAdSetID,
	FieldAdID,
	FieldStatus,
	FieldStatusChangedAt,
	FieldUtmSource,
	FieldUtmMedium,
	FieldUtmCampaign,
	FieldUtmTerm,
	FieldUtmContent,
	FieldReferrer,
	FieldUserAgent,
	FieldLeadScore,
	FieldConversionValue,
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
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	LastNameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// AppointmentCountValidator is a validator for the "appointment_count" field. It is called by the builders before save.
	AppointmentCountValidator func(int) error
	// DefaultStatusChangedAt holds the default value on creation for the "status_changed_at" field.
	DefaultStatusChangedAt func() time.Time
	// DefaultLeadScore holds the default value on creation for the "lead_score" field.
	DefaultLeadScore int
	// LeadScoreValidator is a validator for the "lead_score" field. It is called by the builders before save.
	LeadScoreValidator func(int) error
	// DefaultConversionValue holds the default value on creation for the "conversion_value" field.
	DefaultConversionValue float64
	// ConversionValueValidator is a validator for the "conversion_value" field. It is called by the builders before save.
	ConversionValueValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Platform defines the type for the "platform" enum field.
type Platform string

// PlatformWebsite is the default value of the Platform enum.
const DefaultPlatform = PlatformWebsite

// Platform values.
const (
	PlatformWebsite  Platform = "website"
	PlatformLinkedin Platform = "linkedin"
	PlatformMeta     Platform = "meta"
)

func (pl Platform) String() string {
	return string(pl)
}

// PlatformValidator is a validator for the "platform" field enum values. It is called by the builders before save.
func PlatformValidator(pl Platform) error {
	switch pl {
	case PlatformWebsite, PlatformLinkedin, PlatformMeta:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for platform field: %q", pl)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew        Status = "new"
	StatusContacted  Status = "contacted"
	StatusFollowedUp Status = "followed_up"
	StatusClosed     Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusContacted, StatusFollowedUp, StatusClosed:
		return nil
	default:
		return fmt.Errorf("lead: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Lead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// ByServiceType orders the results by the service_type field.
func ByServiceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldServiceType, opts...).ToFunc()
}

// ByEventDate orders the results by the event_date field.
func ByEventDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventDate, opts...).ToFunc()
}

// ByAppointmentCount orders the results by the appointment_count field.
func ByAppointmentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppointmentCount, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByAdSetID orders the results by the ad_set_id field.
func ByAdSetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdSetID, opts...).ToFunc()
}

// ByAdID orders the results by the ad_id field.
func ByAdID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStatusChangedAt orders the results by the status_changed_at field.
func ByStatusChangedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusChangedAt, opts...).ToFunc()
}

// ByUtmSource orders the results by the utm_source field.
func ByUtmSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtmSource, opts...).ToFunc()
}

// ByUtmMedium orders the results by the utm_medium field.
func ByUtmMedium(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtmMedium, opts...).ToFunc()
}

// ByUtmCampaign orders the results by the utm_campaign field.
func ByUtmCampaign(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtmCampaign, opts...).ToFunc()
}

// ByUtmTerm orders the results by the utm_term field.
func ByUtmTerm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtmTerm, opts...).ToFunc()
}

// ByUtmContent orders the results by the utm_content field.
func ByUtmContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUtmContent, opts...).ToFunc()
}

// ByReferrer orders the results by the referrer field.
func ByReferrer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReferrer, opts...).ToFunc()
}

// ByUserAgent orders the results by the user_agent field.
func ByUserAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAgent, opts...).ToFunc()
}

// ByLeadScore orders the results by the lead_score field.
func ByLeadScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadScore, opts...).ToFunc()
}

// ByConversionValue orders the results by the conversion_value field.
func ByConversionValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversionValue, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByStatusHistoryCount orders the results by status_history count.
func ByStatusHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusHistoryStep(), opts...)
	}
}

// ByStatusHistory orders the results by status_history terms.
func ByStatusHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStatusHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusHistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusHistoryTable, StatusHistoryColumn),
	)
}
