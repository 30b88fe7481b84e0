// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vivwell/api/ent/proposal"
)

// Proposal is the model entity for the Proposal schema.
type Proposal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Client company the proposal is addressed to
	CompanyName string `json:"company_name,omitempty"`
	// Client contact person
	ContactName string `json:"contact_name,omitempty"`
	// Where the proposal link is sent
	ContactEmail string `json:"contact_email,omitempty"`
	// Service being quoted (chair massage, wellness day, ...)
	ServiceType string `json:"service_type,omitempty"`
	// Number of appointments quoted
	AppointmentCount int `json:"appointment_count,omitempty"`
	// Per-appointment rate in USD
	RatePerAppointment float64 `json:"rate_per_appointment,omitempty"`
	// Percentage discount applied to the subtotal
	DiscountPct float64 `json:"discount_pct,omitempty"`
	// Recalculated total in USD
	Total float64 `json:"total,omitempty"`
	// Status holds the value of the "status" field.
	Status proposal.Status `json:"status,omitempty"`
	// Opaque token for the public proposal view link
	ViewToken string `json:"view_token,omitempty"`
	// Stripe invoice linked to this proposal, if invoiced
	StripeInvoiceID string `json:"stripe_invoice_id,omitempty"`
	// DocuSeal submission linked to this proposal, if sent for signature
	DocusealSubmissionID string `json:"docuseal_submission_id,omitempty"`
	// First time the client opened the proposal
	ViewedAt *time.Time `json:"viewed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Proposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proposal.FieldRatePerAppointment, proposal.FieldDiscountPct, proposal.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case proposal.FieldID, proposal.FieldAppointmentCount:
			values[i] = new(sql.NullInt64)
		case proposal.FieldCompanyName, proposal.FieldContactName, proposal.FieldContactEmail, proposal.FieldServiceType, proposal.FieldStatus, proposal.FieldViewToken, proposal.FieldStripeInvoiceID, proposal.FieldDocusealSubmissionID:
			values[i] = new(sql.NullString)
		case proposal.FieldViewedAt, proposal.FieldCreatedAt, proposal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Proposal fields.
func (_m *Proposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proposal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case proposal.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case proposal.FieldContactName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_name", values[i])
			} else if value.Valid {
				_m.ContactName = value.String
			}
		case proposal.FieldContactEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_email", values[i])
			} else if value.Valid {
				_m.ContactEmail = value.String
			}
		case proposal.FieldServiceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_type", values[i])
			} else if value.Valid {
				_m.ServiceType = value.String
			}
		case proposal.FieldAppointmentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_count", values[i])
			} else if value.Valid {
				_m.AppointmentCount = int(value.Int64)
			}
		case proposal.FieldRatePerAppointment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_per_appointment", values[i])
			} else if value.Valid {
				_m.RatePerAppointment = value.Float64
			}
		case proposal.FieldDiscountPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discount_pct", values[i])
			} else if value.Valid {
				_m.DiscountPct = value.Float64
			}
		case proposal.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		case proposal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = proposal.Status(value.String)
			}
		case proposal.FieldViewToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field view_token", values[i])
			} else if value.Valid {
				_m.ViewToken = value.String
			}
		case proposal.FieldStripeInvoiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_invoice_id", values[i])
			} else if value.Valid {
				_m.StripeInvoiceID = value.String
			}
		case proposal.FieldDocusealSubmissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field docuseal_submission_id", values[i])
			} else if value.Valid {
				_m.DocusealSubmissionID = value.String
			}
		case proposal.FieldViewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field viewed_at", values[i])
			} else if value.Valid {
				_m.ViewedAt = new(time.Time)
				*_m.ViewedAt = value.Time
			}
		case proposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case proposal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Proposal.
// This includes values selected through modifiers, order, etc.
func (_m *Proposal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Proposal.
// Note that you need to call Proposal.Unwrap() before calling this method if this Proposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Proposal) Update() *ProposalUpdateOne {
	return NewProposalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Proposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Proposal) Unwrap() *Proposal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Proposal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Proposal) String() string {
	var builder strings.Builder
	builder.WriteString("Proposal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("contact_name=")
	builder.WriteString(_m.ContactName)
	builder.WriteString(", ")
	builder.WriteString("contact_email=")
	builder.WriteString(_m.ContactEmail)
	builder.WriteString(", ")
	builder.WriteString("service_type=")
	builder.WriteString(_m.ServiceType)
	builder.WriteString(", ")
	builder.WriteString("appointment_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentCount))
	builder.WriteString(", ")
	builder.WriteString("rate_per_appointment=")
	builder.WriteString(fmt.Sprintf("%v", _m.RatePerAppointment))
	builder.WriteString(", ")
	builder.WriteString("discount_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscountPct))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("view_token=")
	builder.WriteString(_m.ViewToken)
	builder.WriteString(", ")
	builder.WriteString("stripe_invoice_id=")
	builder.WriteString(_m.StripeInvoiceID)
	builder.WriteString(", ")
	builder.WriteString("docuseal_submission_id=")
	builder.WriteString(_m.DocusealSubmissionID)
	builder.WriteString(", ")
	if v := _m.ViewedAt; v != nil {
		builder.WriteString("viewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Proposals is a parsable slice of Proposal.
type Proposals []*Proposal
