// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vivwell/api/ent/notificationendpoint"
)

// NotificationEndpoint is the model entity for the NotificationEndpoint schema.
type NotificationEndpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Destination URL for POSTed notifications
	URL string `json:"url,omitempty"`
	// Notification kinds this endpoint subscribes to
	Kinds []string `json:"kinds,omitempty"`
	// HMAC-SHA256 secret for payload signatures
	Secret string `json:"-"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// SuccessCount holds the value of the "success_count" field.
	SuccessCount int `json:"success_count,omitempty"`
	// FailureCount holds the value of the "failure_count" field.
	FailureCount int `json:"failure_count,omitempty"`
	// LastTriggeredAt holds the value of the "last_triggered_at" field.
	LastTriggeredAt *time.Time `json:"last_triggered_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationEndpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationendpoint.FieldKinds:
			values[i] = new([]byte)
		case notificationendpoint.FieldActive:
			values[i] = new(sql.NullBool)
		case notificationendpoint.FieldID, notificationendpoint.FieldSuccessCount, notificationendpoint.FieldFailureCount:
			values[i] = new(sql.NullInt64)
		case notificationendpoint.FieldURL, notificationendpoint.FieldSecret, notificationendpoint.FieldDescription:
			values[i] = new(sql.NullString)
		case notificationendpoint.FieldLastTriggeredAt, notificationendpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationEndpoint fields.
func (_m *NotificationEndpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationendpoint.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case notificationendpoint.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case notificationendpoint.FieldKinds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field kinds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Kinds); err != nil {
					return fmt.Errorf("unmarshal field kinds: %w", err)
				}
			}
		case notificationendpoint.FieldSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field secret", values[i])
			} else if value.Valid {
				_m.Secret = value.String
			}
		case notificationendpoint.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case notificationendpoint.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case notificationendpoint.FieldSuccessCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field success_count", values[i])
			} else if value.Valid {
				_m.SuccessCount = int(value.Int64)
			}
		case notificationendpoint.FieldFailureCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failure_count", values[i])
			} else if value.Valid {
				_m.FailureCount = int(value.Int64)
			}
		case notificationendpoint.FieldLastTriggeredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_triggered_at", values[i])
			} else if value.Valid {
				_m.LastTriggeredAt = new(time.Time)
				*_m.LastTriggeredAt = value.Time
			}
		case notificationendpoint.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationEndpoint.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationEndpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationEndpoint.
// Note that you need to call NotificationEndpoint.Unwrap() before calling this method if this NotificationEndpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationEndpoint) Update() *NotificationEndpointUpdateOne {
	return NewNotificationEndpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationEndpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationEndpoint) Unwrap() *NotificationEndpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationEndpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationEndpoint) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationEndpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("kinds=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kinds))
	builder.WriteString(", ")
	builder.WriteString("secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("success_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessCount))
	builder.WriteString(", ")
	builder.WriteString("failure_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureCount))
	builder.WriteString(", ")
	if v := _m.LastTriggeredAt; v != nil {
		builder.WriteString("last_triggered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationEndpoints is a parsable slice of NotificationEndpoint.
type NotificationEndpoints []*NotificationEndpoint
