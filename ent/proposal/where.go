// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/vivwell/api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldID, id))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCompanyName, v))
}

// ContactName applies equality check predicate on the "contact_name" field. It's identical to ContactNameEQ.
func ContactName(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldContactName, v))
}

// ContactEmail applies equality check predicate on the "contact_email" field. It's identical to ContactEmailEQ.
func ContactEmail(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldContactEmail, v))
}

// ServiceType applies equality check predicate on the "service_type" field. It's identical to ServiceTypeEQ.
func ServiceType(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldServiceType, v))
}

// AppointmentCount applies equality check predicate on the "appointment_count" field. It's identical to AppointmentCountEQ.
func AppointmentCount(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldAppointmentCount, v))
}

// RatePerAppointment applies equality check predicate on the "rate_per_appointment" field. It's identical to RatePerAppointmentEQ.
func RatePerAppointment(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRatePerAppointment, v))
}

// DiscountPct applies equality check predicate on the "discount_pct" field. It's identical to DiscountPctEQ.
func DiscountPct(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDiscountPct, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTotal, v))
}

// ViewToken applies equality check predicate on the "view_token" field. It's identical to ViewTokenEQ.
func ViewToken(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldViewToken, v))
}

// StripeInvoiceID applies equality check predicate on the "stripe_invoice_id" field. It's identical to StripeInvoiceIDEQ.
func StripeInvoiceID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStripeInvoiceID, v))
}

// DocusealSubmissionID applies equality check predicate on the "docuseal_submission_id" field. It's identical to DocusealSubmissionIDEQ.
func DocusealSubmissionID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDocusealSubmissionID, v))
}

// ViewedAt applies equality check predicate on the "viewed_at" field. It's identical to ViewedAtEQ.
func ViewedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldViewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldCompanyName, v))
}

// ContactNameEQ applies the EQ predicate on the "contact_name" field.
func ContactNameEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldContactName, v))
}

// ContactNameNEQ applies the NEQ predicate on the "contact_name" field.
func ContactNameNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldContactName, v))
}

// ContactNameIn applies the In predicate on the "contact_name" field.
func ContactNameIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldContactName, vs...))
}

// ContactNameNotIn applies the NotIn predicate on the "contact_name" field.
func ContactNameNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldContactName, vs...))
}

// ContactNameGT applies the GT predicate on the "contact_name" field.
func ContactNameGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldContactName, v))
}

// ContactNameGTE applies the GTE predicate on the "contact_name" field.
func ContactNameGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldContactName, v))
}

// ContactNameLT applies the LT predicate on the "contact_name" field.
func ContactNameLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldContactName, v))
}

// ContactNameLTE applies the LTE predicate on the "contact_name" field.
func ContactNameLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldContactName, v))
}

// ContactNameContains applies the Contains predicate on the "contact_name" field.
func ContactNameContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldContactName, v))
}

// ContactNameHasPrefix applies the HasPrefix predicate on the "contact_name" field.
func ContactNameHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldContactName, v))
}

// ContactNameHasSuffix applies the HasSuffix predicate on the "contact_name" field.
func ContactNameHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldContactName, v))
}

// ContactNameIsNil applies the IsNil predicate on the "contact_name" field.
func ContactNameIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldContactName))
}

// ContactNameNotNil applies the NotNil predicate on the "contact_name" field.
func ContactNameNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldContactName))
}

// ContactNameEqualFold applies the EqualFold predicate on the "contact_name" field.
func ContactNameEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldContactName, v))
}

// ContactNameContainsFold applies the ContainsFold predicate on the "contact_name" field.
func ContactNameContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldContactName, v))
}

// ContactEmailEQ applies the EQ predicate on the "contact_email" field.
func ContactEmailEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldContactEmail, v))
}

// ContactEmailNEQ applies the NEQ predicate on the "contact_email" field.
func ContactEmailNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldContactEmail, v))
}

// ContactEmailIn applies the In predicate on the "contact_email" field.
func ContactEmailIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldContactEmail, vs...))
}

// ContactEmailNotIn applies the NotIn predicate on the "contact_email" field.
func ContactEmailNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldContactEmail, vs...))
}

// ContactEmailGT applies the GT predicate on the "contact_email" field.
func ContactEmailGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldContactEmail, v))
}

// ContactEmailGTE applies the GTE predicate on the "contact_email" field.
func ContactEmailGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldContactEmail, v))
}

// ContactEmailLT applies the LT predicate on the "contact_email" field.
func ContactEmailLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldContactEmail, v))
}

// ContactEmailLTE applies the LTE predicate on the "contact_email" field.
func ContactEmailLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldContactEmail, v))
}

// ContactEmailContains applies the Contains predicate on the "contact_email" field.
func ContactEmailContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldContactEmail, v))
}

// ContactEmailHasPrefix applies the HasPrefix predicate on the "contact_email" field.
func ContactEmailHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldContactEmail, v))
}

// ContactEmailHasSuffix applies the HasSuffix predicate on the "contact_email" field.
func ContactEmailHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldContactEmail, v))
}

// ContactEmailEqualFold applies the EqualFold predicate on the "contact_email" field.
func ContactEmailEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldContactEmail, v))
}

// ContactEmailContainsFold applies the ContainsFold predicate on the "contact_email" field.
func ContactEmailContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldContactEmail, v))
}

// ServiceTypeEQ applies the EQ predicate on the "service_type" field.
func ServiceTypeEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldServiceType, v))
}

// ServiceTypeNEQ applies the NEQ predicate on the "service_type" field.
func ServiceTypeNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldServiceType, v))
}

// ServiceTypeIn applies the In predicate on the "service_type" field.
func ServiceTypeIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldServiceType, vs...))
}

// ServiceTypeNotIn applies the NotIn predicate on the "service_type" field.
func ServiceTypeNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldServiceType, vs...))
}

// ServiceTypeGT applies the GT predicate on the "service_type" field.
func ServiceTypeGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldServiceType, v))
}

// ServiceTypeGTE applies the GTE predicate on the "service_type" field.
func ServiceTypeGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldServiceType, v))
}

// ServiceTypeLT applies the LT predicate on the "service_type" field.
func ServiceTypeLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldServiceType, v))
}

// ServiceTypeLTE applies the LTE predicate on the "service_type" field.
func ServiceTypeLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldServiceType, v))
}

// ServiceTypeContains applies the Contains predicate on the "service_type" field.
func ServiceTypeContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldServiceType, v))
}

// ServiceTypeHasPrefix applies the HasPrefix predicate on the "service_type" field.
func ServiceTypeHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldServiceType, v))
}

// ServiceTypeHasSuffix applies the HasSuffix predicate on the "service_type" field.
func ServiceTypeHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldServiceType, v))
}

// ServiceTypeEqualFold applies the EqualFold predicate on the "service_type" field.
func ServiceTypeEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldServiceType, v))
}

// ServiceTypeContainsFold applies the ContainsFold predicate on the "service_type" field.
func ServiceTypeContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldServiceType, v))
}

// AppointmentCountEQ applies the EQ predicate on the "appointment_count" field.
func AppointmentCountEQ(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldAppointmentCount, v))
}

// AppointmentCountNEQ applies the NEQ predicate on the "appointment_count" field.
func AppointmentCountNEQ(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldAppointmentCount, v))
}

// AppointmentCountIn applies the In predicate on the "appointment_count" field.
func AppointmentCountIn(vs ...int) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldAppointmentCount, vs...))
}

// AppointmentCountNotIn applies the NotIn predicate on the "appointment_count" field.
func AppointmentCountNotIn(vs ...int) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldAppointmentCount, vs...))
}

// AppointmentCountGT applies the GT predicate on the "appointment_count" field.
func AppointmentCountGT(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldAppointmentCount, v))
}

// AppointmentCountGTE applies the GTE predicate on the "appointment_count" field.
func AppointmentCountGTE(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldAppointmentCount, v))
}

// AppointmentCountLT applies the LT predicate on the "appointment_count" field.
func AppointmentCountLT(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldAppointmentCount, v))
}

// AppointmentCountLTE applies the LTE predicate on the "appointment_count" field.
func AppointmentCountLTE(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldAppointmentCount, v))
}

// RatePerAppointmentEQ applies the EQ predicate on the "rate_per_appointment" field.
func RatePerAppointmentEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldRatePerAppointment, v))
}

// RatePerAppointmentNEQ applies the NEQ predicate on the "rate_per_appointment" field.
func RatePerAppointmentNEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldRatePerAppointment, v))
}

// RatePerAppointmentIn applies the In predicate on the "rate_per_appointment" field.
func RatePerAppointmentIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldRatePerAppointment, vs...))
}

// RatePerAppointmentNotIn applies the NotIn predicate on the "rate_per_appointment" field.
func RatePerAppointmentNotIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldRatePerAppointment, vs...))
}

// RatePerAppointmentGT applies the GT predicate on the "rate_per_appointment" field.
func RatePerAppointmentGT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldRatePerAppointment, v))
}

// RatePerAppointmentGTE applies the GTE predicate on the "rate_per_appointment" field.
func RatePerAppointmentGTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldRatePerAppointment, v))
}

// RatePerAppointmentLT applies the LT predicate on the "rate_per_appointment" field.
func RatePerAppointmentLT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldRatePerAppointment, v))
}

// RatePerAppointmentLTE applies the LTE predicate on the "rate_per_appointment" field.
func RatePerAppointmentLTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldRatePerAppointment, v))
}

// DiscountPctEQ applies the EQ predicate on the "discount_pct" field.
func DiscountPctEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDiscountPct, v))
}

// DiscountPctNEQ applies the NEQ predicate on the "discount_pct" field.
func DiscountPctNEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldDiscountPct, v))
}

// DiscountPctIn applies the In predicate on the "discount_pct" field.
func DiscountPctIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldDiscountPct, vs...))
}

// DiscountPctNotIn applies the NotIn predicate on the "discount_pct" field.
func DiscountPctNotIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldDiscountPct, vs...))
}

// DiscountPctGT applies the GT predicate on the "discount_pct" field.
func DiscountPctGT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldDiscountPct, v))
}

// DiscountPctGTE applies the GTE predicate on the "discount_pct" field.
func DiscountPctGTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldDiscountPct, v))
}

// DiscountPctLT applies the LT predicate on the "discount_pct" field.
func DiscountPctLT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldDiscountPct, v))
}

// DiscountPctLTE applies the LTE predicate on the "discount_pct" field.
func DiscountPctLTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldDiscountPct, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldTotal, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldStatus, vs...))
}

// ViewTokenEQ applies the EQ predicate on the "view_token" field.
func ViewTokenEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldViewToken, v))
}

// ViewTokenNEQ applies the NEQ predicate on the "view_token" field.
func ViewTokenNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldViewToken, v))
}

// ViewTokenIn applies the In predicate on the "view_token" field.
func ViewTokenIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldViewToken, vs...))
}

// ViewTokenNotIn applies the NotIn predicate on the "view_token" field.
func ViewTokenNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldViewToken, vs...))
}

// ViewTokenGT applies the GT predicate on the "view_token" field.
func ViewTokenGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldViewToken, v))
}

// ViewTokenGTE applies the GTE predicate on the "view_token" field.
func ViewTokenGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldViewToken, v))
}

// ViewTokenLT applies the LT predicate on the "view_token" field.
func ViewTokenLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldViewToken, v))
}

// ViewTokenLTE applies the LTE predicate on the "view_token" field.
func ViewTokenLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldViewToken, v))
}

// ViewTokenContains applies the Contains predicate on the "view_token" field.
func ViewTokenContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldViewToken, v))
}

// ViewTokenHasPrefix applies the HasPrefix predicate on the "view_token" field.
func ViewTokenHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldViewToken, v))
}

// ViewTokenHasSuffix applies the HasSuffix predicate on the "view_token" field.
func ViewTokenHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldViewToken, v))
}

// ViewTokenEqualFold applies the EqualFold predicate on the "view_token" field.
func ViewTokenEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldViewToken, v))
}

// ViewTokenContainsFold applies the ContainsFold predicate on the "view_token" field.
func ViewTokenContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldViewToken, v))
}

// StripeInvoiceIDEQ applies the EQ predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDNEQ applies the NEQ predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDIn applies the In predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldStripeInvoiceID, vs...))
}

// StripeInvoiceIDNotIn applies the NotIn predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldStripeInvoiceID, vs...))
}

// StripeInvoiceIDGT applies the GT predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDGTE applies the GTE predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDLT applies the LT predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDLTE applies the LTE predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDContains applies the Contains predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDHasPrefix applies the HasPrefix predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDHasSuffix applies the HasSuffix predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDIsNil applies the IsNil predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldStripeInvoiceID))
}

// StripeInvoiceIDNotNil applies the NotNil predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldStripeInvoiceID))
}

// StripeInvoiceIDEqualFold applies the EqualFold predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldStripeInvoiceID, v))
}

// StripeInvoiceIDContainsFold applies the ContainsFold predicate on the "stripe_invoice_id" field.
func StripeInvoiceIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldStripeInvoiceID, v))
}

// DocusealSubmissionIDEQ applies the EQ predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDNEQ applies the NEQ predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDIn applies the In predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldDocusealSubmissionID, vs...))
}

// DocusealSubmissionIDNotIn applies the NotIn predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldDocusealSubmissionID, vs...))
}

// DocusealSubmissionIDGT applies the GT predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDGTE applies the GTE predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDLT applies the LT predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDLTE applies the LTE predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDContains applies the Contains predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDHasPrefix applies the HasPrefix predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDHasSuffix applies the HasSuffix predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDIsNil applies the IsNil predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldDocusealSubmissionID))
}

// DocusealSubmissionIDNotNil applies the NotNil predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldDocusealSubmissionID))
}

// DocusealSubmissionIDEqualFold applies the EqualFold predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldDocusealSubmissionID, v))
}

// DocusealSubmissionIDContainsFold applies the ContainsFold predicate on the "docuseal_submission_id" field.
func DocusealSubmissionIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldDocusealSubmissionID, v))
}

// ViewedAtEQ applies the EQ predicate on the "viewed_at" field.
func ViewedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldViewedAt, v))
}

// ViewedAtNEQ applies the NEQ predicate on the "viewed_at" field.
func ViewedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldViewedAt, v))
}

// ViewedAtIn applies the In predicate on the "viewed_at" field.
func ViewedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldViewedAt, vs...))
}

// ViewedAtNotIn applies the NotIn predicate on the "viewed_at" field.
func ViewedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldViewedAt, vs...))
}

// ViewedAtGT applies the GT predicate on the "viewed_at" field.
func ViewedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldViewedAt, v))
}

// ViewedAtGTE applies the GTE predicate on the "viewed_at" field.
func ViewedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldViewedAt, v))
}

// ViewedAtLT applies the LT predicate on the "viewed_at" field.
func ViewedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldViewedAt, v))
}

// ViewedAtLTE applies the LTE predicate on the "viewed_at" field.
func ViewedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldViewedAt, v))
}

// ViewedAtIsNil applies the IsNil predicate on the "viewed_at" field.
func ViewedAtIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldViewedAt))
}

// ViewedAtNotNil applies the NotNil predicate on the "viewed_at" field.
func ViewedAtNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldViewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.NotPredicates(p))
}
