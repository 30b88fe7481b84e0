// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/vivwell/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldID, id))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompany, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLocation, v))
}

// ServiceType applies equality check predicate on the "service_type" field. It's identical to ServiceTypeEQ.
func ServiceType(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldServiceType, v))
}

// EventDate applies equality check predicate on the "event_date" field. It's identical to EventDateEQ.
func EventDate(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEventDate, v))
}

// AppointmentCount applies equality check predicate on the "appointment_count" field. It's identical to AppointmentCountEQ.
func AppointmentCount(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAppointmentCount, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldMessage, v))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCampaignID, v))
}

// AdSetID applies equality check predicate on the "ad_set_id" field. It's identical to AdSetIDEQ.
func AdSetID(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAdSetID, v))
}

// AdID applies equality check predicate on the "ad_id" field. It's identical to AdIDEQ.
func AdID(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAdID, v))
}

// StatusChangedAt applies equality check predicate on the "status_changed_at" field. It's identical to StatusChangedAtEQ.
func StatusChangedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldStatusChangedAt, v))
}

// UtmSource applies equality check predicate on the "utm_source" field. It's identical to UtmSourceEQ.
func UtmSource(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmSource, v))
}

// UtmMedium applies equality check predicate on the "utm_medium" field. It's identical to UtmMediumEQ.
func UtmMedium(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmMedium, v))
}

// UtmCampaign applies equality check predicate on the "utm_campaign" field. It's identical to UtmCampaignEQ.
func UtmCampaign(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmCampaign, v))
}

// UtmTerm applies equality check predicate on the "utm_term" field. It's identical to UtmTermEQ.
func UtmTerm(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmTerm, v))
}

// UtmContent applies equality check predicate on the "utm_content" field. It's identical to UtmContentEQ.
func UtmContent(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmContent, v))
}

// Referrer applies equality check predicate on the "referrer" field. It's identical to ReferrerEQ.
func Referrer(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldReferrer, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUserAgent, v))
}

// LeadScore applies equality check predicate on the "lead_score" field. It's identical to LeadScoreEQ.
func LeadScore(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLeadScore, v))
}

// ConversionValue applies equality check predicate on the "conversion_value" field. It's identical to ConversionValueEQ.
func ConversionValue(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldConversionValue, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldLastName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldPhone, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCompany, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldLocation, v))
}

// ServiceTypeEQ applies the EQ predicate on the "service_type" field.
func ServiceTypeEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldServiceType, v))
}

// ServiceTypeNEQ applies the NEQ predicate on the "service_type" field.
func ServiceTypeNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldServiceType, v))
}

// ServiceTypeIn applies the In predicate on the "service_type" field.
func ServiceTypeIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldServiceType, vs...))
}

// ServiceTypeNotIn applies the NotIn predicate on the "service_type" field.
func ServiceTypeNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldServiceType, vs...))
}

// ServiceTypeGT applies the GT predicate on the "service_type" field.
func ServiceTypeGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldServiceType, v))
}

// ServiceTypeGTE applies the GTE predicate on the "service_type" field.
func ServiceTypeGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldServiceType, v))
}

// ServiceTypeLT applies the LT predicate on the "service_type" field.
func ServiceTypeLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldServiceType, v))
}

// ServiceTypeLTE applies the LTE predicate on the "service_type" field.
func ServiceTypeLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldServiceType, v))
}

// ServiceTypeContains applies the Contains predicate on the "service_type" field.
func ServiceTypeContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldServiceType, v))
}

// ServiceTypeHasPrefix applies the HasPrefix predicate on the "service_type" field.
func ServiceTypeHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldServiceType, v))
}

// ServiceTypeHasSuffix applies the HasSuffix predicate on the "service_type" field.
func ServiceTypeHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldServiceType, v))
}

// ServiceTypeIsNil applies the IsNil predicate on the "service_type" field.
func ServiceTypeIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldServiceType))
}

// ServiceTypeNotNil applies the NotNil predicate on the "service_type" field.
func ServiceTypeNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldServiceType))
}

// ServiceTypeEqualFold applies the EqualFold predicate on the "service_type" field.
func ServiceTypeEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldServiceType, v))
}

// ServiceTypeContainsFold applies the ContainsFold predicate on the "service_type" field.
func ServiceTypeContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldServiceType, v))
}

// EventDateEQ applies the EQ predicate on the "event_date" field.
func EventDateEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEventDate, v))
}

// EventDateNEQ applies the NEQ predicate on the "event_date" field.
func EventDateNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEventDate, v))
}

// EventDateIn applies the In predicate on the "event_date" field.
func EventDateIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEventDate, vs...))
}

// EventDateNotIn applies the NotIn predicate on the "event_date" field.
func EventDateNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEventDate, vs...))
}

// EventDateGT applies the GT predicate on the "event_date" field.
func EventDateGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEventDate, v))
}

// EventDateGTE applies the GTE predicate on the "event_date" field.
func EventDateGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEventDate, v))
}

// EventDateLT applies the LT predicate on the "event_date" field.
func EventDateLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEventDate, v))
}

// EventDateLTE applies the LTE predicate on the "event_date" field.
func EventDateLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEventDate, v))
}

// EventDateIsNil applies the IsNil predicate on the "event_date" field.
func EventDateIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldEventDate))
}

// EventDateNotNil applies the NotNil predicate on the "event_date" field.
func EventDateNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldEventDate))
}

// AppointmentCountEQ applies the EQ predicate on the "appointment_count" field.
func AppointmentCountEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAppointmentCount, v))
}

// AppointmentCountNEQ applies the NEQ predicate on the "appointment_count" field.
func AppointmentCountNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAppointmentCount, v))
}

// AppointmentCountIn applies the In predicate on the "appointment_count" field.
func AppointmentCountIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAppointmentCount, vs...))
}

// AppointmentCountNotIn applies the NotIn predicate on the "appointment_count" field.
func AppointmentCountNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAppointmentCount, vs...))
}

// AppointmentCountGT applies the GT predicate on the "appointment_count" field.
func AppointmentCountGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAppointmentCount, v))
}

// AppointmentCountGTE applies the GTE predicate on the "appointment_count" field.
func AppointmentCountGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAppointmentCount, v))
}

// AppointmentCountLT applies the LT predicate on the "appointment_count" field.
func AppointmentCountLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAppointmentCount, v))
}

// AppointmentCountLTE applies the LTE predicate on the "appointment_count" field.
func AppointmentCountLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAppointmentCount, v))
}

// AppointmentCountIsNil applies the IsNil predicate on the "appointment_count" field.
func AppointmentCountIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAppointmentCount))
}

// AppointmentCountNotNil applies the NotNil predicate on the "appointment_count" field.
func AppointmentCountNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAppointmentCount))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldMessage, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v Platform) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v Platform) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...Platform) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...Platform) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldPlatform, vs...))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDIsNil applies the IsNil predicate on the "campaign_id" field.
func CampaignIDIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCampaignID))
}

// CampaignIDNotNil applies the NotNil predicate on the "campaign_id" field.
func CampaignIDNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCampaignID))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCampaignID, v))
}

// AdSetIDEQ applies the EQ predicate on the "ad_set_id" field.
func AdSetIDEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAdSetID, v))
}

// AdSetIDNEQ applies the NEQ predicate on the "ad_set_id" field.
func AdSetIDNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAdSetID, v))
}

// AdSetIDIn applies the In predicate on the "ad_set_id" field.
func AdSetIDIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAdSetID, vs...))
}

// AdSetIDNotIn applies the NotIn predicate on the "ad_set_id" field.
func AdSetIDNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAdSetID, vs...))
}

// AdSetIDGT applies the GT predicate on the "ad_set_id" field.
func AdSetIDGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAdSetID, v))
}

// AdSetIDGTE applies the GTE predicate on the "ad_set_id" field.
func AdSetIDGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAdSetID, v))
}

// AdSetIDLT applies the LT predicate on the "ad_set_id" field.
func AdSetIDLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAdSetID, v))
}

// AdSetIDLTE applies the LTE predicate on the "ad_set_id" field.
func AdSetIDLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAdSetID, v))
}

// AdSetIDContains applies the Contains predicate on the "ad_set_id" field.
func AdSetIDContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldAdSetID, v))
}

// AdSetIDHasPrefix applies the HasPrefix predicate on the "ad_set_id" field.
func AdSetIDHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldAdSetID, v))
}

// AdSetIDHasSuffix applies the HasSuffix predicate on the "ad_set_id" field.
func AdSetIDHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldAdSetID, v))
}

// AdSetIDIsNil applies the IsNil predicate on the "ad_set_id" field.
func AdSetIDIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAdSetID))
}

// AdSetIDNotNil applies the NotNil predicate on the "ad_set_id" field.
func AdSetIDNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAdSetID))
}

// AdSetIDEqualFold applies the EqualFold predicate on the "ad_set_id" field.
func AdSetIDEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldAdSetID, v))
}

// AdSetIDContainsFold applies the ContainsFold predicate on the "ad_set_id" field.
func AdSetIDContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldAdSetID, v))
}

// AdIDEQ applies the EQ predicate on the "ad_id" field.
func AdIDEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAdID, v))
}

// AdIDNEQ applies the NEQ predicate on the "ad_id" field.
func AdIDNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAdID, v))
}

// AdIDIn applies the In predicate on the "ad_id" field.
func AdIDIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAdID, vs...))
}

// AdIDNotIn applies the NotIn predicate on the "ad_id" field.
func AdIDNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAdID, vs...))
}

// AdIDGT applies the GT predicate on the "ad_id" field.
func AdIDGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAdID, v))
}

// AdIDGTE applies the GTE predicate on the "ad_id" field.
func AdIDGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAdID, v))
}

// AdIDLT applies the LT predicate on the "ad_id" field.
func AdIDLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAdID, v))
}

// AdIDLTE applies the LTE predicate on the "ad_id" field.
func AdIDLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAdID, v))
}

// AdIDContains applies the Contains predicate on the "ad_id" field.
func AdIDContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldAdID, v))
}

// AdIDHasPrefix applies the HasPrefix predicate on the "ad_id" field.
func AdIDHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldAdID, v))
}

// AdIDHasSuffix applies the HasSuffix predicate on the "ad_id" field.
func AdIDHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldAdID, v))
}

// AdIDIsNil applies the IsNil predicate on the "ad_id" field.
func AdIDIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAdID))
}

// AdIDNotNil applies the NotNil predicate on the "ad_id" field.
func AdIDNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAdID))
}

// AdIDEqualFold applies the EqualFold predicate on the "ad_id" field.
func AdIDEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldAdID, v))
}

// AdIDContainsFold applies the ContainsFold predicate on the "ad_id" field.
func AdIDContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldAdID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusChangedAtEQ applies the EQ predicate on the "status_changed_at" field.
func StatusChangedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldStatusChangedAt, v))
}

// StatusChangedAtNEQ applies the NEQ predicate on the "status_changed_at" field.
func StatusChangedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldStatusChangedAt, v))
}

// StatusChangedAtIn applies the In predicate on the "status_changed_at" field.
func StatusChangedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldStatusChangedAt, vs...))
}

// StatusChangedAtNotIn applies the NotIn predicate on the "status_changed_at" field.
func StatusChangedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldStatusChangedAt, vs...))
}

// StatusChangedAtGT applies the GT predicate on the "status_changed_at" field.
func StatusChangedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldStatusChangedAt, v))
}

// StatusChangedAtGTE applies the GTE predicate on the "status_changed_at" field.
func StatusChangedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldStatusChangedAt, v))
}

// StatusChangedAtLT applies the LT predicate on the "status_changed_at" field.
func StatusChangedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldStatusChangedAt, v))
}

// StatusChangedAtLTE applies the LTE predicate on the "status_changed_at" field.
func StatusChangedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldStatusChangedAt, v))
}

// UtmSourceEQ applies the EQ predicate on the "utm_source" field.
func UtmSourceEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmSource, v))
}

// UtmSourceNEQ applies the NEQ predicate on the "utm_source" field.
func UtmSourceNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUtmSource, v))
}

// UtmSourceIn applies the In predicate on the "utm_source" field.
func UtmSourceIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUtmSource, vs...))
}

// UtmSourceNotIn applies the NotIn predicate on the "utm_source" field.
func UtmSourceNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUtmSource, vs...))
}

// UtmSourceGT applies the GT predicate on the "utm_source" field.
func UtmSourceGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUtmSource, v))
}

// UtmSourceGTE applies the GTE predicate on the "utm_source" field.
func UtmSourceGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUtmSource, v))
}

// UtmSourceLT applies the LT predicate on the "utm_source" field.
func UtmSourceLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUtmSource, v))
}

// UtmSourceLTE applies the LTE predicate on the "utm_source" field.
func UtmSourceLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUtmSource, v))
}

// UtmSourceContains applies the Contains predicate on the "utm_source" field.
func UtmSourceContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldUtmSource, v))
}

// UtmSourceHasPrefix applies the HasPrefix predicate on the "utm_source" field.
func UtmSourceHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldUtmSource, v))
}

// UtmSourceHasSuffix applies the HasSuffix predicate on the "utm_source" field.
func UtmSourceHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldUtmSource, v))
}

// UtmSourceIsNil applies the IsNil predicate on the "utm_source" field.
func UtmSourceIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldUtmSource))
}

// UtmSourceNotNil applies the NotNil predicate on the "utm_source" field.
func UtmSourceNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldUtmSource))
}

// UtmSourceEqualFold applies the EqualFold predicate on the "utm_source" field.
func UtmSourceEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldUtmSource, v))
}

// UtmSourceContainsFold applies the ContainsFold predicate on the "utm_source" field.
func UtmSourceContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldUtmSource, v))
}

// UtmMediumEQ applies the EQ predicate on the "utm_medium" field.
func UtmMediumEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmMedium, v))
}

// UtmMediumNEQ applies the NEQ predicate on the "utm_medium" field.
func UtmMediumNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUtmMedium, v))
}

// UtmMediumIn applies the In predicate on the "utm_medium" field.
func UtmMediumIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUtmMedium, vs...))
}

// UtmMediumNotIn applies the NotIn predicate on the "utm_medium" field.
func UtmMediumNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUtmMedium, vs...))
}

// UtmMediumGT applies the GT predicate on the "utm_medium" field.
func UtmMediumGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUtmMedium, v))
}

// UtmMediumGTE applies the GTE predicate on the "utm_medium" field.
func UtmMediumGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUtmMedium, v))
}

// UtmMediumLT applies the LT predicate on the "utm_medium" field.
func UtmMediumLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUtmMedium, v))
}

// UtmMediumLTE applies the LTE predicate on the "utm_medium" field.
func UtmMediumLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUtmMedium, v))
}

// UtmMediumContains applies the Contains predicate on the "utm_medium" field.
func UtmMediumContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldUtmMedium, v))
}

// UtmMediumHasPrefix applies the HasPrefix predicate on the "utm_medium" field.
func UtmMediumHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldUtmMedium, v))
}

// UtmMediumHasSuffix applies the HasSuffix predicate on the "utm_medium" field.
func UtmMediumHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldUtmMedium, v))
}

// UtmMediumIsNil applies the IsNil predicate on the "utm_medium" field.
func UtmMediumIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldUtmMedium))
}

// UtmMediumNotNil applies the NotNil predicate on the "utm_medium" field.
func UtmMediumNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldUtmMedium))
}

// UtmMediumEqualFold applies the EqualFold predicate on the "utm_medium" field.
func UtmMediumEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldUtmMedium, v))
}

// UtmMediumContainsFold applies the ContainsFold predicate on the "utm_medium" field.
func UtmMediumContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldUtmMedium, v))
}

// UtmCampaignEQ applies the EQ predicate on the "utm_campaign" field.
func UtmCampaignEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmCampaign, v))
}

// UtmCampaignNEQ applies the NEQ predicate on the "utm_campaign" field.
func UtmCampaignNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUtmCampaign, v))
}

// UtmCampaignIn applies the In predicate on the "utm_campaign" field.
func UtmCampaignIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUtmCampaign, vs...))
}

// UtmCampaignNotIn applies the NotIn predicate on the "utm_campaign" field.
func UtmCampaignNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUtmCampaign, vs...))
}

// UtmCampaignGT applies the GT predicate on the "utm_campaign" field.
func UtmCampaignGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUtmCampaign, v))
}

// UtmCampaignGTE applies the GTE predicate on the "utm_campaign" field.
func UtmCampaignGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUtmCampaign, v))
}

// UtmCampaignLT applies the LT predicate on the "utm_campaign" field.
func UtmCampaignLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUtmCampaign, v))
}

// UtmCampaignLTE applies the LTE predicate on the "utm_campaign" field.
func UtmCampaignLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUtmCampaign, v))
}

// UtmCampaignContains applies the Contains predicate on the "utm_campaign" field.
func UtmCampaignContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldUtmCampaign, v))
}

// UtmCampaignHasPrefix applies the HasPrefix predicate on the "utm_campaign" field.
func UtmCampaignHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldUtmCampaign, v))
}

// UtmCampaignHasSuffix applies the HasSuffix predicate on the "utm_campaign" field.
func UtmCampaignHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldUtmCampaign, v))
}

// UtmCampaignIsNil applies the IsNil predicate on the "utm_campaign" field.
func UtmCampaignIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldUtmCampaign))
}

// UtmCampaignNotNil applies the NotNil predicate on the "utm_campaign" field.
func UtmCampaignNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldUtmCampaign))
}

// UtmCampaignEqualFold applies the EqualFold predicate on the "utm_campaign" field.
func UtmCampaignEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldUtmCampaign, v))
}

// UtmCampaignContainsFold applies the ContainsFold predicate on the "utm_campaign" field.
func UtmCampaignContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldUtmCampaign, v))
}

// UtmTermEQ applies the EQ predicate on the "utm_term" field.
func UtmTermEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmTerm, v))
}

// UtmTermNEQ applies the NEQ predicate on the "utm_term" field.
func UtmTermNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUtmTerm, v))
}

// UtmTermIn applies the In predicate on the "utm_term" field.
func UtmTermIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUtmTerm, vs...))
}

// UtmTermNotIn applies the NotIn predicate on the "utm_term" field.
func UtmTermNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUtmTerm, vs...))
}

// UtmTermGT applies the GT predicate on the "utm_term" field.
func UtmTermGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUtmTerm, v))
}

// UtmTermGTE applies the GTE predicate on the "utm_term" field.
func UtmTermGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUtmTerm, v))
}

// UtmTermLT applies the LT predicate on the "utm_term" field.
func UtmTermLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUtmTerm, v))
}

// UtmTermLTE applies the LTE predicate on the "utm_term" field.
func UtmTermLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUtmTerm, v))
}

// UtmTermContains applies the Contains predicate on the "utm_term" field.
func UtmTermContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldUtmTerm, v))
}

// UtmTermHasPrefix applies the HasPrefix predicate on the "utm_term" field.
func UtmTermHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldUtmTerm, v))
}

// UtmTermHasSuffix applies the HasSuffix predicate on the "utm_term" field.
func UtmTermHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldUtmTerm, v))
}

// UtmTermIsNil applies the IsNil predicate on the "utm_term" field.
func UtmTermIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldUtmTerm))
}

// UtmTermNotNil applies the NotNil predicate on the "utm_term" field.
func UtmTermNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldUtmTerm))
}

// UtmTermEqualFold applies the EqualFold predicate on the "utm_term" field.
func UtmTermEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldUtmTerm, v))
}

// UtmTermContainsFold applies the ContainsFold predicate on the "utm_term" field.
func UtmTermContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldUtmTerm, v))
}

// UtmContentEQ applies the EQ predicate on the "utm_content" field.
func UtmContentEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUtmContent, v))
}

// UtmContentNEQ applies the NEQ predicate on the "utm_content" field.
func UtmContentNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUtmContent, v))
}

// UtmContentIn applies the In predicate on the "utm_content" field.
func UtmContentIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUtmContent, vs...))
}

// UtmContentNotIn applies the NotIn predicate on the "utm_content" field.
func UtmContentNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUtmContent, vs...))
}

// UtmContentGT applies the GT predicate on the "utm_content" field.
func UtmContentGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUtmContent, v))
}

// UtmContentGTE applies the GTE predicate on the "utm_content" field.
func UtmContentGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUtmContent, v))
}

// UtmContentLT applies the LT predicate on the "utm_content" field.
func UtmContentLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUtmContent, v))
}

// UtmContentLTE applies the LTE predicate on the "utm_content" field.
func UtmContentLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUtmContent, v))
}

// UtmContentContains applies the Contains predicate on the "utm_content" field.
func UtmContentContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldUtmContent, v))
}

// UtmContentHasPrefix applies the HasPrefix predicate on the "utm_content" field.
func UtmContentHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldUtmContent, v))
}

// UtmContentHasSuffix applies the HasSuffix predicate on the "utm_content" field.
func UtmContentHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldUtmContent, v))
}

// UtmContentIsNil applies the IsNil predicate on the "utm_content" field.
func UtmContentIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldUtmContent))
}

// UtmContentNotNil applies the NotNil predicate on the "utm_content" field.
func UtmContentNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldUtmContent))
}

// UtmContentEqualFold applies the EqualFold predicate on the "utm_content" field.
func UtmContentEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldUtmContent, v))
}

// UtmContentContainsFold applies the ContainsFold predicate on the "utm_content" field.
func UtmContentContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldUtmContent, v))
}

// ReferrerEQ applies the EQ predicate on the "referrer" field.
func ReferrerEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldReferrer, v))
}

// ReferrerNEQ applies the NEQ predicate on the "referrer" field.
func ReferrerNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldReferrer, v))
}

// ReferrerIn applies the In predicate on the "referrer" field.
func ReferrerIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldReferrer, vs...))
}

// ReferrerNotIn applies the NotIn predicate on the "referrer" field.
func ReferrerNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldReferrer, vs...))
}

// ReferrerGT applies the GT predicate on the "referrer" field.
func ReferrerGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldReferrer, v))
}

// ReferrerGTE applies the GTE predicate on the "referrer" field.
func ReferrerGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldReferrer, v))
}

// ReferrerLT applies the LT predicate on the "referrer" field.
func ReferrerLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldReferrer, v))
}

// ReferrerLTE applies the LTE predicate on the "referrer" field.
func ReferrerLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldReferrer, v))
}

// ReferrerContains applies the Contains predicate on the "referrer" field.
func ReferrerContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldReferrer, v))
}

// ReferrerHasPrefix applies the HasPrefix predicate on the "referrer" field.
func ReferrerHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldReferrer, v))
}

// ReferrerHasSuffix applies the HasSuffix predicate on the "referrer" field.
func ReferrerHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldReferrer, v))
}

// ReferrerIsNil applies the IsNil predicate on the "referrer" field.
func ReferrerIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldReferrer))
}

// ReferrerNotNil applies the NotNil predicate on the "referrer" field.
func ReferrerNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldReferrer))
}

// ReferrerEqualFold applies the EqualFold predicate on the "referrer" field.
func ReferrerEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldReferrer, v))
}

// ReferrerContainsFold applies the ContainsFold predicate on the "referrer" field.
func ReferrerContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldReferrer, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldUserAgent, v))
}

// LeadScoreEQ applies the EQ predicate on the "lead_score" field.
func LeadScoreEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLeadScore, v))
}

// LeadScoreNEQ applies the NEQ predicate on the "lead_score" field.
func LeadScoreNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLeadScore, v))
}

// LeadScoreIn applies the In predicate on the "lead_score" field.
func LeadScoreIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLeadScore, vs...))
}

// LeadScoreNotIn applies the NotIn predicate on the "lead_score" field.
func LeadScoreNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLeadScore, vs...))
}

// LeadScoreGT applies the GT predicate on the "lead_score" field.
func LeadScoreGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLeadScore, v))
}

// LeadScoreGTE applies the GTE predicate on the "lead_score" field.
func LeadScoreGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLeadScore, v))
}

// LeadScoreLT applies the LT predicate on the "lead_score" field.
func LeadScoreLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLeadScore, v))
}

// LeadScoreLTE applies the LTE predicate on the "lead_score" field.
func LeadScoreLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLeadScore, v))
}

// ConversionValueEQ applies the EQ predicate on the "conversion_value" field.
func ConversionValueEQ(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldConversionValue, v))
}

// ConversionValueNEQ applies the NEQ predicate on the "conversion_value" field.
func ConversionValueNEQ(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldConversionValue, v))
}

// ConversionValueIn applies the In predicate on the "conversion_value" field.
func ConversionValueIn(vs ...float64) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldConversionValue, vs...))
}

// ConversionValueNotIn applies the NotIn predicate on the "conversion_value" field.
func ConversionValueNotIn(vs ...float64) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldConversionValue, vs...))
}

// ConversionValueGT applies the GT predicate on the "conversion_value" field.
func ConversionValueGT(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldConversionValue, v))
}

// ConversionValueGTE applies the GTE predicate on the "conversion_value" field.
func ConversionValueGTE(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldConversionValue, v))
}

// ConversionValueLT applies the LT predicate on the "conversion_value" field.
func ConversionValueLT(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldConversionValue, v))
}

// ConversionValueLTE applies the LTE predicate on the "conversion_value" field.
func ConversionValueLTE(v float64) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldConversionValue, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStatusHistory applies the HasEdge predicate on the "status_history" edge.
func HasStatusHistory() predicate.Lead {
	return predicate.Lead(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusHistoryTable, StatusHistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusHistoryWith applies the HasEdge predicate on the "status_history" edge with a given conditions (other predicates).
func HasStatusHistoryWith(preds ...predicate.LeadStatusHistory) predicate.Lead {
	return predicate.Lead(func(s *sql.Selector) {
		step := newStatusHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.NotPredicates(p))
}
