// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vivwell/api/ent/lead"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Contact first name
	FirstName string `json:"first_name,omitempty"`
	// Contact last name
	LastName string `json:"last_name,omitempty"`
	// Contact email
	Email string `json:"email,omitempty"`
	// Contact phone, E.164 when it could be normalized
	Phone string `json:"phone,omitempty"`
	// Company name
	Company string `json:"company,omitempty"`
	// Office location / city
	Location string `json:"location,omitempty"`
	// Requested service (chair massage, wellness day, ...)
	ServiceType string `json:"service_type,omitempty"`
	// Requested event date, when the form supplied one
	EventDate *time.Time `json:"event_date,omitempty"`
	// Requested number of appointments
	AppointmentCount int `json:"appointment_count,omitempty"`
	// Free-form message from the contact form
	Message string `json:"message,omitempty"`
	// Channel the submission arrived through
	Platform lead.Platform `json:"platform,omitempty"`
	// Ad campaign ID for lead-ad submissions
	CampaignID string `json:"campaign_id,omitempty"`
	// Ad set ID for lead-ad submissions
	AdSetID string `json:"ad_set_id,omitempty"`
	// Ad ID for lead-ad submissions
	AdID string `json:"ad_id,omitempty"`
	// Owner-managed follow-up status
	Status lead.Status `json:"status,omitempty"`
	// When the status last changed
	StatusChangedAt time.Time `json:"status_changed_at,omitempty"`
	// UtmSource holds the value of the "utm_source" field.
	UtmSource string `json:"utm_source,omitempty"`
	// UtmMedium holds the value of the "utm_medium" field.
	UtmMedium string `json:"utm_medium,omitempty"`
	// UtmCampaign holds the value of the "utm_campaign" field.
	UtmCampaign string `json:"utm_campaign,omitempty"`
	// UtmTerm holds the value of the "utm_term" field.
	UtmTerm string `json:"utm_term,omitempty"`
	// UtmContent holds the value of the "utm_content" field.
	UtmContent string `json:"utm_content,omitempty"`
	// Raw referrer URL at submission time
	Referrer string `json:"referrer,omitempty"`
	// UserAgent holds the value of the "user_agent" field.
	UserAgent string `json:"user_agent,omitempty"`
	// Quality score computed once at submission time
	LeadScore int `json:"lead_score,omitempty"`
	// Estimated value in USD, computed once at submission time
	ConversionValue float64 `json:"conversion_value,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadQuery when eager-loading is set.
	Edges        LeadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadEdges holds the relations/edges for other nodes in the graph.
type LeadEdges struct {
	// StatusHistory holds the value of the status_history edge.
	StatusHistory []*LeadStatusHistory `json:"status_history,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StatusHistoryOrErr returns the StatusHistory value or an error if the edge
// was not loaded in eager-loading.
func (e LeadEdges) StatusHistoryOrErr() ([]*LeadStatusHistory, error) {
	if e.loadedTypes[0] {
		return e.StatusHistory, nil
	}
	return nil, &NotLoadedError{edge: "status_history"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldConversionValue:
			values[i] = new(sql.NullFloat64)
		case lead.FieldID, lead.FieldAppointmentCount, lead.FieldLeadScore:
			values[i] = new(sql.NullInt64)
		case lead.FieldFirstName, lead.FieldLastName, lead.FieldEmail, lead.FieldPhone, lead.FieldCompany, lead.FieldLocation, lead.FieldServiceType, lead.FieldMessage, lead.FieldPlatform, lead.FieldCampaignID, lead.FieldAdSetID, lead.FieldAdID, lead.FieldStatus, lead.FieldUtmSource, lead.FieldUtmMedium, lead.FieldUtmCampaign, lead.FieldUtmTerm, lead.FieldUtmContent, lead.FieldReferrer, lead.FieldUserAgent:
			values[i] = new(sql.NullString)
		case lead.FieldEventDate, lead.FieldStatusChangedAt, lead.FieldCreatedAt, lead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = value.String
			}
		case lead.FieldLastName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_name", values[i])
			} else if value.Valid {
				_m.LastName = value.String
			}
		case lead.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case lead.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case lead.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case lead.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case lead.FieldServiceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_type", values[i])
			} else if value.Valid {
				_m.ServiceType = value.String
			}
		case lead.FieldEventDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field event_date", values[i])
			} else if value.Valid {
				_m.EventDate = new(time.Time)
				*_m.EventDate = value.Time
			}
		case lead.FieldAppointmentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field appointment_count", values[i])
			} else if value.Valid {
				_m.AppointmentCount = int(value.Int64)
			}
		case lead.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case lead.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = lead.Platform(value.String)
			}
		case lead.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case lead.FieldAdSetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ad_set_id", values[i])
			} else if value.Valid {
				_m.AdSetID = value.String
			}
		case lead.FieldAdID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ad_id", values[i])
			} else if value.Valid {
				_m.AdID = value.String
			}
		case lead.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = lead.Status(value.String)
			}
		case lead.FieldStatusChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field status_changed_at", values[i])
			} else if value.Valid {
				_m.StatusChangedAt = value.Time
			}
		case lead.FieldUtmSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utm_source", values[i])
			} else if value.Valid {
				_m.UtmSource = value.String
			}
		case lead.FieldUtmMedium:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utm_medium", values[i])
			} else if value.Valid {
				_m.UtmMedium = value.String
			}
		case lead.FieldUtmCampaign:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utm_campaign", values[i])
			} else if value.Valid {
				_m.UtmCampaign = value.String
			}
		case lead.FieldUtmTerm:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utm_term", values[i])
			} else if value.Valid {
				_m.UtmTerm = value.String
			}
		case lead.FieldUtmContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field utm_content", values[i])
			} else if value.Valid {
				_m.UtmContent = value.String
			}
		case lead.FieldReferrer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field referrer", values[i])
			} else if value.Valid {
				_m.Referrer = value.String
			}
		case lead.FieldUserAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_agent", values[i])
			} else if value.Valid {
				_m.UserAgent = value.String
			}
		case lead.FieldLeadScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_score", values[i])
			} else if value.Valid {
				_m.LeadScore = int(value.Int64)
			}
		case lead.FieldConversionValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field conversion_value", values[i])
			} else if value.Valid {
				_m.ConversionValue = value.Float64
			}
		case lead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lead.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStatusHistory queries the "status_history" edge of the Lead entity.
func (_m *Lead) QueryStatusHistory() *LeadStatusHistoryQuery {
	return NewLeadClient(_m.config).QueryStatusHistory(_m)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("first_name=")
	builder.WriteString(_m.FirstName)
	builder.WriteString(", ")
	builder.WriteString("last_name=")
	builder.WriteString(_m.LastName)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("service_type=")
	builder.WriteString(_m.ServiceType)
	builder.WriteString(", ")
	if v := _m.EventDate; v != nil {
		builder.WriteString("event_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("appointment_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AppointmentCount))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(fmt.Sprintf("%v", _m.Platform))
	builder.WriteString(", ")
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("ad_set_id=")
	builder.WriteString(_m.AdSetID)
	builder.WriteString(", ")
	builder.WriteString("ad_id=")
	builder.WriteString(_m.AdID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("status_changed_at=")
	builder.WriteString(_m.StatusChangedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("utm_source=")
	builder.WriteString(_m.UtmSource)
	builder.WriteString(", ")
	builder.WriteString("utm_medium=")
	builder.WriteString(_m.UtmMedium)
	builder.WriteString(", ")
	builder.WriteString("utm_campaign=")
	builder.WriteString(_m.UtmCampaign)
	builder.WriteString(", ")
	builder.WriteString("utm_term=")
	builder.WriteString(_m.UtmTerm)
	builder.WriteString(", ")
	builder.WriteString("utm_content=")
	builder.WriteString(_m.UtmContent)
	builder.WriteString(", ")
	builder.WriteString("referrer=")
	builder.WriteString(_m.Referrer)
	builder.WriteString(", ")
	builder.WriteString("user_agent=")
	builder.WriteString(_m.UserAgent)
	builder.WriteString(", ")
	builder.WriteString("lead_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadScore))
	builder.WriteString(", ")
	builder.WriteString("conversion_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversionValue))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leads is a parsable slice of Lead.
type Leads []*Lead
