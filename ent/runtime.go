// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/ent/leadstatushistory"
	"github.com/vivwell/api/ent/notificationendpoint"
	"github.com/vivwell/api/ent/proposal"
	"github.com/vivwell/api/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescFirstName is the schema descriptor for first_name field.
	leadDescFirstName := leadFields[0].Descriptor()
	// lead.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	lead.FirstNameValidator = leadDescFirstName.Validators[0].(func(string) error)
	// leadDescLastName is the schema descriptor for last_name field.
	leadDescLastName := leadFields[1].Descriptor()
	// lead.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	lead.LastNameValidator = leadDescLastName.Validators[0].(func(string) error)
	// leadDescEmail is the schema descriptor for email field.
	leadDescEmail := leadFields[2].Descriptor()
	// lead.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	lead.EmailValidator = leadDescEmail.Validators[0].(func(string) error)
	// leadDescAppointmentCount is the schema descriptor for appointment_count field.
	leadDescAppointmentCount := leadFields[8].Descriptor()
	// lead.AppointmentCountValidator is a validator for the "appointment_count" field. It is called by the builders before save.
	lead.AppointmentCountValidator = leadDescAppointmentCount.Validators[0].(func(int) error)
	// leadDescStatusChangedAt is the schema descriptor for status_changed_at field.
	leadDescStatusChangedAt := leadFields[15].Descriptor()
	// lead.DefaultStatusChangedAt holds the default value on creation for the status_changed_at field.
	lead.DefaultStatusChangedAt = leadDescStatusChangedAt.Default.(func() time.Time)
	// leadDescLeadScore is the schema descriptor for lead_score field.
	leadDescLeadScore := leadFields[23].Descriptor()
	// lead.DefaultLeadScore holds the default value on creation for the lead_score field.
	lead.DefaultLeadScore = leadDescLeadScore.Default.(int)
	// lead.LeadScoreValidator is a validator for the "lead_score" field. It is called by the builders before save.
	lead.LeadScoreValidator = func() func(int) error {
		validators := leadDescLeadScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(lead_score int) error {
			for _, fn := range fns {
				if err := fn(lead_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// leadDescConversionValue is the schema descriptor for conversion_value field.
	leadDescConversionValue := leadFields[24].Descriptor()
	// lead.DefaultConversionValue holds the default value on creation for the conversion_value field.
	lead.DefaultConversionValue = leadDescConversionValue.Default.(float64)
	// lead.ConversionValueValidator is a validator for the "conversion_value" field. It is called by the builders before save.
	lead.ConversionValueValidator = leadDescConversionValue.Validators[0].(func(float64) error)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[25].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[26].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	leadstatushistoryFields := schema.LeadStatusHistory{}.Fields()
	_ = leadstatushistoryFields
	// leadstatushistoryDescLeadID is the schema descriptor for lead_id field.
	leadstatushistoryDescLeadID := leadstatushistoryFields[0].Descriptor()
	// leadstatushistory.LeadIDValidator is a validator for the "lead_id" field. It is called by the builders before save.
	leadstatushistory.LeadIDValidator = leadstatushistoryDescLeadID.Validators[0].(func(int) error)
	// leadstatushistoryDescReason is the schema descriptor for reason field.
	leadstatushistoryDescReason := leadstatushistoryFields[4].Descriptor()
	// leadstatushistory.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	leadstatushistory.ReasonValidator = leadstatushistoryDescReason.Validators[0].(func(string) error)
	// leadstatushistoryDescCreatedAt is the schema descriptor for created_at field.
	leadstatushistoryDescCreatedAt := leadstatushistoryFields[5].Descriptor()
	// leadstatushistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	leadstatushistory.DefaultCreatedAt = leadstatushistoryDescCreatedAt.Default.(func() time.Time)
	notificationendpointFields := schema.NotificationEndpoint{}.Fields()
	_ = notificationendpointFields
	// notificationendpointDescURL is the schema descriptor for url field.
	notificationendpointDescURL := notificationendpointFields[0].Descriptor()
	// notificationendpoint.URLValidator is a validator for the "url" field. It is called by the builders before save.
	notificationendpoint.URLValidator = notificationendpointDescURL.Validators[0].(func(string) error)
	// notificationendpointDescActive is the schema descriptor for active field.
	notificationendpointDescActive := notificationendpointFields[4].Descriptor()
	// notificationendpoint.DefaultActive holds the default value on creation for the active field.
	notificationendpoint.DefaultActive = notificationendpointDescActive.Default.(bool)
	// notificationendpointDescSuccessCount is the schema descriptor for success_count field.
	notificationendpointDescSuccessCount := notificationendpointFields[5].Descriptor()
	// notificationendpoint.DefaultSuccessCount holds the default value on creation for the success_count field.
	notificationendpoint.DefaultSuccessCount = notificationendpointDescSuccessCount.Default.(int)
	// notificationendpointDescFailureCount is the schema descriptor for failure_count field.
	notificationendpointDescFailureCount := notificationendpointFields[6].Descriptor()
	// notificationendpoint.DefaultFailureCount holds the default value on creation for the failure_count field.
	notificationendpoint.DefaultFailureCount = notificationendpointDescFailureCount.Default.(int)
	// notificationendpointDescCreatedAt is the schema descriptor for created_at field.
	notificationendpointDescCreatedAt := notificationendpointFields[8].Descriptor()
	// notificationendpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationendpoint.DefaultCreatedAt = notificationendpointDescCreatedAt.Default.(func() time.Time)
	proposalFields := schema.Proposal{}.Fields()
	_ = proposalFields
	// proposalDescCompanyName is the schema descriptor for company_name field.
	proposalDescCompanyName := proposalFields[0].Descriptor()
	// proposal.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	proposal.CompanyNameValidator = proposalDescCompanyName.Validators[0].(func(string) error)
	// proposalDescContactEmail is the schema descriptor for contact_email field.
	proposalDescContactEmail := proposalFields[2].Descriptor()
	// proposal.ContactEmailValidator is a validator for the "contact_email" field. It is called by the builders before save.
	proposal.ContactEmailValidator = proposalDescContactEmail.Validators[0].(func(string) error)
	// proposalDescServiceType is the schema descriptor for service_type field.
	proposalDescServiceType := proposalFields[3].Descriptor()
	// proposal.ServiceTypeValidator is a validator for the "service_type" field. It is called by the builders before save.
	proposal.ServiceTypeValidator = proposalDescServiceType.Validators[0].(func(string) error)
	// proposalDescAppointmentCount is the schema descriptor for appointment_count field.
	proposalDescAppointmentCount := proposalFields[4].Descriptor()
	// proposal.AppointmentCountValidator is a validator for the "appointment_count" field. It is called by the builders before save.
	proposal.AppointmentCountValidator = proposalDescAppointmentCount.Validators[0].(func(int) error)
	// proposalDescRatePerAppointment is the schema descriptor for rate_per_appointment field.
	proposalDescRatePerAppointment := proposalFields[5].Descriptor()
	// proposal.RatePerAppointmentValidator is a validator for the "rate_per_appointment" field. It is called by the builders before save.
	proposal.RatePerAppointmentValidator = proposalDescRatePerAppointment.Validators[0].(func(float64) error)
	// proposalDescDiscountPct is the schema descriptor for discount_pct field.
	proposalDescDiscountPct := proposalFields[6].Descriptor()
	// proposal.DefaultDiscountPct holds the default value on creation for the discount_pct field.
	proposal.DefaultDiscountPct = proposalDescDiscountPct.Default.(float64)
	// proposal.DiscountPctValidator is a validator for the "discount_pct" field. It is called by the builders before save.
	proposal.DiscountPctValidator = func() func(float64) error {
		validators := proposalDescDiscountPct.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(discount_pct float64) error {
			for _, fn := range fns {
				if err := fn(discount_pct); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// proposalDescTotal is the schema descriptor for total field.
	proposalDescTotal := proposalFields[7].Descriptor()
	// proposal.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	proposal.TotalValidator = proposalDescTotal.Validators[0].(func(float64) error)
	// proposalDescCreatedAt is the schema descriptor for created_at field.
	proposalDescCreatedAt := proposalFields[13].Descriptor()
	// proposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	proposal.DefaultCreatedAt = proposalDescCreatedAt.Default.(func() time.Time)
	// proposalDescUpdatedAt is the schema descriptor for updated_at field.
	proposalDescUpdatedAt := proposalFields[14].Descriptor()
	// proposal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	proposal.DefaultUpdatedAt = proposalDescUpdatedAt.Default.(func() time.Time)
	// proposal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	proposal.UpdateDefaultUpdatedAt = proposalDescUpdatedAt.UpdateDefault.(func() time.Time)
}
