// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vivwell/api/ent/lead"
	"github.com/vivwell/api/ent/leadstatushistory"
	"github.com/vivwell/api/ent/notificationendpoint"
	"github.com/vivwell/api/ent/predicate"
	"github.com/vivwell/api/ent/proposal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLead                 = "Lead"
	TypeLeadStatusHistory    = "LeadStatusHistory"
	TypeNotificationEndpoint = "NotificationEndpoint"
	TypeProposal             = "Proposal"
)

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	first_name            *string
	last_name             *string
	email                 *string
	phone                 *string
	company               *string
	location              *string
	service_type          *string
	event_date            *time.Time
	appointment_count     *int
	addappointment_count  *int
	message               *string
	platform              *lead.Platform
	campaign_id           *string
	ad_set_id             *string
	ad_id                 *string
	status                *lead.Status
	status_changed_at     *time.Time
	utm_source            *string
	utm_medium            *string
	utm_campaign          *string
	utm_term              *string
	utm_content           *string
	referrer              *string
	user_agent            *string
	lead_score            *int
	addlead_score         *int
	conversion_value      *float64
	addconversion_value   *float64
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	status_history        map[int]struct{}
	removedstatus_history map[int]struct{}
	clearedstatus_history bool
	done                  bool
	oldValue              func(context.Context) (*Lead, error)
	predicates            []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id int) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFirstName sets the "first_name" field.
func (m *LeadMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *LeadMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *LeadMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *LeadMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *LeadMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *LeadMutation) ResetLastName() {
	m.last_name = nil
}

// SetEmail sets the "email" field.
func (m *LeadMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *LeadMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *LeadMutation) ResetEmail() {
	m.email = nil
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *LeadMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[lead.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *LeadMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[lead.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, lead.FieldPhone)
}

// SetCompany sets the "company" field.
func (m *LeadMutation) SetCompany(s string) {
	m.company = &s
}

// Company returns the value of the "company" field in the mutation.
func (m *LeadMutation) Company() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompany returns the old "company" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCompany(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompany is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompany requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompany: %w", err)
	}
	return oldValue.Company, nil
}

// ClearCompany clears the value of the "company" field.
func (m *LeadMutation) ClearCompany() {
	m.company = nil
	m.clearedFields[lead.FieldCompany] = struct{}{}
}

// CompanyCleared returns if the "company" field was cleared in this mutation.
func (m *LeadMutation) CompanyCleared() bool {
	_, ok := m.clearedFields[lead.FieldCompany]
	return ok
}

// ResetCompany resets all changes to the "company" field.
func (m *LeadMutation) ResetCompany() {
	m.company = nil
	delete(m.clearedFields, lead.FieldCompany)
}

// SetLocation sets the "location" field.
func (m *LeadMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *LeadMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *LeadMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[lead.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *LeadMutation) LocationCleared() bool {
	_, ok := m.clearedFields[lead.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *LeadMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, lead.FieldLocation)
}

// SetServiceType sets the "service_type" field.
func (m *LeadMutation) SetServiceType(s string) {
	m.service_type = &s
}

// ServiceType returns the value of the "service_type" field in the mutation.
func (m *LeadMutation) ServiceType() (r string, exists bool) {
	v := m.service_type
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceType returns the old "service_type" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldServiceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceType: %w", err)
	}
	return oldValue.ServiceType, nil
}

// ClearServiceType clears the value of the "service_type" field.
func (m *LeadMutation) ClearServiceType() {
	m.service_type = nil
	m.clearedFields[lead.FieldServiceType] = struct{}{}
}

// ServiceTypeCleared returns if the "service_type" field was cleared in this mutation.
func (m *LeadMutation) ServiceTypeCleared() bool {
	_, ok := m.clearedFields[lead.FieldServiceType]
	return ok
}

// ResetServiceType resets all changes to the "service_type" field.
func (m *LeadMutation) ResetServiceType() {
	m.service_type = nil
	delete(m.clearedFields, lead.FieldServiceType)
}

// SetEventDate sets the "event_date" field.
func (m *LeadMutation) SetEventDate(t time.Time) {
	m.event_date = &t
}

// EventDate returns the value of the "event_date" field in the mutation.
func (m *LeadMutation) EventDate() (r time.Time, exists bool) {
	v := m.event_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEventDate returns the old "event_date" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldEventDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventDate: %w", err)
	}
	return oldValue.EventDate, nil
}

// ClearEventDate clears the value of the "event_date" field.
func (m *LeadMutation) ClearEventDate() {
	m.event_date = nil
	m.clearedFields[lead.FieldEventDate] = struct{}{}
}

// EventDateCleared returns if the "event_date" field was cleared in this mutation.
func (m *LeadMutation) EventDateCleared() bool {
	_, ok := m.clearedFields[lead.FieldEventDate]
	return ok
}

// ResetEventDate resets all changes to the "event_date" field.
func (m *LeadMutation) ResetEventDate() {
	m.event_date = nil
	delete(m.clearedFields, lead.FieldEventDate)
}

// SetAppointmentCount sets the "appointment_count" field.
func (m *LeadMutation) SetAppointmentCount(i int) {
	m.appointment_count = &i
	m.addappointment_count = nil
}

// AppointmentCount returns the value of the "appointment_count" field in the mutation.
func (m *LeadMutation) AppointmentCount() (r int, exists bool) {
	v := m.appointment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentCount returns the old "appointment_count" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAppointmentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentCount: %w", err)
	}
	return oldValue.AppointmentCount, nil
}

// AddAppointmentCount adds i to the "appointment_count" field.
func (m *LeadMutation) AddAppointmentCount(i int) {
	if m.addappointment_count != nil {
		*m.addappointment_count += i
	} else {
		m.addappointment_count = &i
	}
}

// AddedAppointmentCount returns the value that was added to the "appointment_count" field in this mutation.
func (m *LeadMutation) AddedAppointmentCount() (r int, exists bool) {
	v := m.addappointment_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearAppointmentCount clears the value of the "appointment_count" field.
func (m *LeadMutation) ClearAppointmentCount() {
	m.appointment_count = nil
	m.addappointment_count = nil
	m.clearedFields[lead.FieldAppointmentCount] = struct{}{}
}

// AppointmentCountCleared returns if the "appointment_count" field was cleared in this mutation.
func (m *LeadMutation) AppointmentCountCleared() bool {
	_, ok := m.clearedFields[lead.FieldAppointmentCount]
	return ok
}

// ResetAppointmentCount resets all changes to the "appointment_count" field.
func (m *LeadMutation) ResetAppointmentCount() {
	m.appointment_count = nil
	m.addappointment_count = nil
	delete(m.clearedFields, lead.FieldAppointmentCount)
}

// SetMessage sets the "message" field.
func (m *LeadMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *LeadMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *LeadMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[lead.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *LeadMutation) MessageCleared() bool {
	_, ok := m.clearedFields[lead.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *LeadMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, lead.FieldMessage)
}

// SetPlatform sets the "platform" field.
func (m *LeadMutation) SetPlatform(l lead.Platform) {
	m.platform = &l
}

// Platform returns the value of the "platform" field in the mutation.
func (m *LeadMutation) Platform() (r lead.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPlatform(ctx context.Context) (v lead.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *LeadMutation) ResetPlatform() {
	m.platform = nil
}

// SetCampaignID sets the "campaign_id" field.
func (m *LeadMutation) SetCampaignID(s string) {
	m.campaign_id = &s
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *LeadMutation) CampaignID() (r string, exists bool) {
	v := m.campaign_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCampaignID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (m *LeadMutation) ClearCampaignID() {
	m.campaign_id = nil
	m.clearedFields[lead.FieldCampaignID] = struct{}{}
}

// CampaignIDCleared returns if the "campaign_id" field was cleared in this mutation.
func (m *LeadMutation) CampaignIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldCampaignID]
	return ok
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *LeadMutation) ResetCampaignID() {
	m.campaign_id = nil
	delete(m.clearedFields, lead.FieldCampaignID)
}

// SetAdSetID sets the "ad_set_id" field.
func (m *LeadMutation) SetAdSetID(s string) {
	m.ad_set_id = &s
}

// AdSetID returns the value of the "ad_set_id" field in the mutation.
func (m *LeadMutation) AdSetID() (r string, exists bool) {
	v := m.ad_set_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdSetID returns the old "ad_set_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAdSetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdSetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdSetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdSetID: %w", err)
	}
	return oldValue.AdSetID, nil
}

// ClearAdSetID clears the value of the "ad_set_id" field.
func (m *LeadMutation) ClearAdSetID() {
	m.ad_set_id = nil
	m.clearedFields[lead.FieldAdSetID] = struct{}{}
}

// AdSetIDCleared returns if the "ad_set_id" field was cleared in this mutation.
func (m *LeadMutation) AdSetIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldAdSetID]
	return ok
}

// ResetAdSetID resets all changes to the "ad_set_id" field.
func (m *LeadMutation) ResetAdSetID() {
	m.ad_set_id = nil
	delete(m.clearedFields, lead.FieldAdSetID)
}

// SetAdID sets the "ad_id" field.
func (m *LeadMutation) SetAdID(s string) {
	m.ad_id = &s
}

// AdID returns the value of the "ad_id" field in the mutation.
func (m *LeadMutation) AdID() (r string, exists bool) {
	v := m.ad_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAdID returns the old "ad_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldAdID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdID: %w", err)
	}
	return oldValue.AdID, nil
}

// ClearAdID clears the value of the "ad_id" field.
func (m *LeadMutation) ClearAdID() {
	m.ad_id = nil
	m.clearedFields[lead.FieldAdID] = struct{}{}
}

// AdIDCleared returns if the "ad_id" field was cleared in this mutation.
func (m *LeadMutation) AdIDCleared() bool {
	_, ok := m.clearedFields[lead.FieldAdID]
	return ok
}

// ResetAdID resets all changes to the "ad_id" field.
func (m *LeadMutation) ResetAdID() {
	m.ad_id = nil
	delete(m.clearedFields, lead.FieldAdID)
}

// SetStatus sets the "status" field.
func (m *LeadMutation) SetStatus(l lead.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LeadMutation) Status() (r lead.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatus(ctx context.Context) (v lead.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LeadMutation) ResetStatus() {
	m.status = nil
}

// SetStatusChangedAt sets the "status_changed_at" field.
func (m *LeadMutation) SetStatusChangedAt(t time.Time) {
	m.status_changed_at = &t
}

// StatusChangedAt returns the value of the "status_changed_at" field in the mutation.
func (m *LeadMutation) StatusChangedAt() (r time.Time, exists bool) {
	v := m.status_changed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusChangedAt returns the old "status_changed_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldStatusChangedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusChangedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusChangedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusChangedAt: %w", err)
	}
	return oldValue.StatusChangedAt, nil
}

// ResetStatusChangedAt resets all changes to the "status_changed_at" field.
func (m *LeadMutation) ResetStatusChangedAt() {
	m.status_changed_at = nil
}

// SetUtmSource sets the "utm_source" field.
func (m *LeadMutation) SetUtmSource(s string) {
	m.utm_source = &s
}

// UtmSource returns the value of the "utm_source" field in the mutation.
func (m *LeadMutation) UtmSource() (r string, exists bool) {
	v := m.utm_source
	if v == nil {
		return
	}
	return *v, true
}

// OldUtmSource returns the old "utm_source" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUtmSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtmSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtmSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtmSource: %w", err)
	}
	return oldValue.UtmSource, nil
}

// ClearUtmSource clears the value of the "utm_source" field.
func (m *LeadMutation) ClearUtmSource() {
	m.utm_source = nil
	m.clearedFields[lead.FieldUtmSource] = struct{}{}
}

// UtmSourceCleared returns if the "utm_source" field was cleared in this mutation.
func (m *LeadMutation) UtmSourceCleared() bool {
	_, ok := m.clearedFields[lead.FieldUtmSource]
	return ok
}

// ResetUtmSource resets all changes to the "utm_source" field.
func (m *LeadMutation) ResetUtmSource() {
	m.utm_source = nil
	delete(m.clearedFields, lead.FieldUtmSource)
}

// SetUtmMedium sets the "utm_medium" field.
func (m *LeadMutation) SetUtmMedium(s string) {
	m.utm_medium = &s
}

// UtmMedium returns the value of the "utm_medium" field in the mutation.
func (m *LeadMutation) UtmMedium() (r string, exists bool) {
	v := m.utm_medium
	if v == nil {
		return
	}
	return *v, true
}

// OldUtmMedium returns the old "utm_medium" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUtmMedium(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtmMedium is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtmMedium requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtmMedium: %w", err)
	}
	return oldValue.UtmMedium, nil
}

// ClearUtmMedium clears the value of the "utm_medium" field.
func (m *LeadMutation) ClearUtmMedium() {
	m.utm_medium = nil
	m.clearedFields[lead.FieldUtmMedium] = struct{}{}
}

// UtmMediumCleared returns if the "utm_medium" field was cleared in this mutation.
func (m *LeadMutation) UtmMediumCleared() bool {
	_, ok := m.clearedFields[lead.FieldUtmMedium]
	return ok
}

// ResetUtmMedium resets all changes to the "utm_medium" field.
func (m *LeadMutation) ResetUtmMedium() {
	m.utm_medium = nil
	delete(m.clearedFields, lead.FieldUtmMedium)
}

// SetUtmCampaign sets the "utm_campaign" field.
func (m *LeadMutation) SetUtmCampaign(s string) {
	m.utm_campaign = &s
}

// UtmCampaign returns the value of the "utm_campaign" field in the mutation.
func (m *LeadMutation) UtmCampaign() (r string, exists bool) {
	v := m.utm_campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldUtmCampaign returns the old "utm_campaign" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUtmCampaign(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtmCampaign is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtmCampaign requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtmCampaign: %w", err)
	}
	return oldValue.UtmCampaign, nil
}

// ClearUtmCampaign clears the value of the "utm_campaign" field.
func (m *LeadMutation) ClearUtmCampaign() {
	m.utm_campaign = nil
	m.clearedFields[lead.FieldUtmCampaign] = struct{}{}
}

// UtmCampaignCleared returns if the "utm_campaign" field was cleared in this mutation.
func (m *LeadMutation) UtmCampaignCleared() bool {
	_, ok := m.clearedFields[lead.FieldUtmCampaign]
	return ok
}

// ResetUtmCampaign resets all changes to the "utm_campaign" field.
func (m *LeadMutation) ResetUtmCampaign() {
	m.utm_campaign = nil
	delete(m.clearedFields, lead.FieldUtmCampaign)
}

// SetUtmTerm sets the "utm_term" field.
func (m *LeadMutation) SetUtmTerm(s string) {
	m.utm_term = &s
}

// UtmTerm returns the value of the "utm_term" field in the mutation.
func (m *LeadMutation) UtmTerm() (r string, exists bool) {
	v := m.utm_term
	if v == nil {
		return
	}
	return *v, true
}

// OldUtmTerm returns the old "utm_term" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUtmTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtmTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtmTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtmTerm: %w", err)
	}
	return oldValue.UtmTerm, nil
}

// ClearUtmTerm clears the value of the "utm_term" field.
func (m *LeadMutation) ClearUtmTerm() {
	m.utm_term = nil
	m.clearedFields[lead.FieldUtmTerm] = struct{}{}
}

// UtmTermCleared returns if the "utm_term" field was cleared in this mutation.
func (m *LeadMutation) UtmTermCleared() bool {
	_, ok := m.clearedFields[lead.FieldUtmTerm]
	return ok
}

// ResetUtmTerm resets all changes to the "utm_term" field.
func (m *LeadMutation) ResetUtmTerm() {
	m.utm_term = nil
	delete(m.clearedFields, lead.FieldUtmTerm)
}

// SetUtmContent sets the "utm_content" field.
func (m *LeadMutation) SetUtmContent(s string) {
	m.utm_content = &s
}

// UtmContent returns the value of the "utm_content" field in the mutation.
func (m *LeadMutation) UtmContent() (r string, exists bool) {
	v := m.utm_content
	if v == nil {
		return
	}
	return *v, true
}

// OldUtmContent returns the old "utm_content" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUtmContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUtmContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUtmContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUtmContent: %w", err)
	}
	return oldValue.UtmContent, nil
}

// ClearUtmContent clears the value of the "utm_content" field.
func (m *LeadMutation) ClearUtmContent() {
	m.utm_content = nil
	m.clearedFields[lead.FieldUtmContent] = struct{}{}
}

// UtmContentCleared returns if the "utm_content" field was cleared in this mutation.
func (m *LeadMutation) UtmContentCleared() bool {
	_, ok := m.clearedFields[lead.FieldUtmContent]
	return ok
}

// ResetUtmContent resets all changes to the "utm_content" field.
func (m *LeadMutation) ResetUtmContent() {
	m.utm_content = nil
	delete(m.clearedFields, lead.FieldUtmContent)
}

// SetReferrer sets the "referrer" field.
func (m *LeadMutation) SetReferrer(s string) {
	m.referrer = &s
}

// Referrer returns the value of the "referrer" field in the mutation.
func (m *LeadMutation) Referrer() (r string, exists bool) {
	v := m.referrer
	if v == nil {
		return
	}
	return *v, true
}

// OldReferrer returns the old "referrer" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldReferrer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReferrer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReferrer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReferrer: %w", err)
	}
	return oldValue.Referrer, nil
}

// ClearReferrer clears the value of the "referrer" field.
func (m *LeadMutation) ClearReferrer() {
	m.referrer = nil
	m.clearedFields[lead.FieldReferrer] = struct{}{}
}

// ReferrerCleared returns if the "referrer" field was cleared in this mutation.
func (m *LeadMutation) ReferrerCleared() bool {
	_, ok := m.clearedFields[lead.FieldReferrer]
	return ok
}

// ResetReferrer resets all changes to the "referrer" field.
func (m *LeadMutation) ResetReferrer() {
	m.referrer = nil
	delete(m.clearedFields, lead.FieldReferrer)
}

// SetUserAgent sets the "user_agent" field.
func (m *LeadMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *LeadMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *LeadMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[lead.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *LeadMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[lead.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *LeadMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, lead.FieldUserAgent)
}

// SetLeadScore sets the "lead_score" field.
func (m *LeadMutation) SetLeadScore(i int) {
	m.lead_score = &i
	m.addlead_score = nil
}

// LeadScore returns the value of the "lead_score" field in the mutation.
func (m *LeadMutation) LeadScore() (r int, exists bool) {
	v := m.lead_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadScore returns the old "lead_score" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldLeadScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadScore: %w", err)
	}
	return oldValue.LeadScore, nil
}

// AddLeadScore adds i to the "lead_score" field.
func (m *LeadMutation) AddLeadScore(i int) {
	if m.addlead_score != nil {
		*m.addlead_score += i
	} else {
		m.addlead_score = &i
	}
}

// AddedLeadScore returns the value that was added to the "lead_score" field in this mutation.
func (m *LeadMutation) AddedLeadScore() (r int, exists bool) {
	v := m.addlead_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetLeadScore resets all changes to the "lead_score" field.
func (m *LeadMutation) ResetLeadScore() {
	m.lead_score = nil
	m.addlead_score = nil
}

// SetConversionValue sets the "conversion_value" field.
func (m *LeadMutation) SetConversionValue(f float64) {
	m.conversion_value = &f
	m.addconversion_value = nil
}

// ConversionValue returns the value of the "conversion_value" field in the mutation.
func (m *LeadMutation) ConversionValue() (r float64, exists bool) {
	v := m.conversion_value
	if v == nil {
		return
	}
	return *v, true
}

// OldConversionValue returns the old "conversion_value" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldConversionValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversionValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversionValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversionValue: %w", err)
	}
	return oldValue.ConversionValue, nil
}

// AddConversionValue adds f to the "conversion_value" field.
func (m *LeadMutation) AddConversionValue(f float64) {
	if m.addconversion_value != nil {
		*m.addconversion_value += f
	} else {
		m.addconversion_value = &f
	}
}

// AddedConversionValue returns the value that was added to the "conversion_value" field in this mutation.
func (m *LeadMutation) AddedConversionValue() (r float64, exists bool) {
	v := m.addconversion_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetConversionValue resets all changes to the "conversion_value" field.
func (m *LeadMutation) ResetConversionValue() {
	m.conversion_value = nil
	m.addconversion_value = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LeadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LeadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LeadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddStatusHistoryIDs adds the "status_history" edge to the LeadStatusHistory entity by ids.
func (m *LeadMutation) AddStatusHistoryIDs(ids ...int) {
	if m.status_history == nil {
		m.status_history = make(map[int]struct{})
	}
	for i := range ids {
		m.status_history[ids[i]] = struct{}{}
	}
}

// ClearStatusHistory clears the "status_history" edge to the LeadStatusHistory entity.
func (m *LeadMutation) ClearStatusHistory() {
	m.clearedstatus_history = true
}

// StatusHistoryCleared reports if the "status_history" edge to the LeadStatusHistory entity was cleared.
func (m *LeadMutation) StatusHistoryCleared() bool {
	return m.clearedstatus_history
}

// RemoveStatusHistoryIDs removes the "status_history" edge to the LeadStatusHistory entity by IDs.
func (m *LeadMutation) RemoveStatusHistoryIDs(ids ...int) {
	if m.removedstatus_history == nil {
		m.removedstatus_history = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.status_history, ids[i])
		m.removedstatus_history[ids[i]] = struct{}{}
	}
}

// RemovedStatusHistory returns the removed IDs of the "status_history" edge to the LeadStatusHistory entity.
func (m *LeadMutation) RemovedStatusHistoryIDs() (ids []int) {
	for id := range m.removedstatus_history {
		ids = append(ids, id)
	}
	return
}

// StatusHistoryIDs returns the "status_history" edge IDs in the mutation.
func (m *LeadMutation) StatusHistoryIDs() (ids []int) {
	for id := range m.status_history {
		ids = append(ids, id)
	}
	return
}

// ResetStatusHistory resets all changes to the "status_history" edge.
func (m *LeadMutation) ResetStatusHistory() {
	m.status_history = nil
	m.clearedstatus_history = false
	m.removedstatus_history = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.first_name != nil {
		fields = append(fields, lead.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, lead.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, lead.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.company != nil {
		fields = append(fields, lead.FieldCompany)
	}
	if m.location != nil {
		fields = append(fields, lead.FieldLocation)
	}
	if m.service_type != nil {
		fields = append(fields, lead.FieldServiceType)
	}
	if m.event_date != nil {
		fields = append(fields, lead.FieldEventDate)
	}
	if m.appointment_count != nil {
		fields = append(fields, lead.FieldAppointmentCount)
	}
	if m.message != nil {
		fields = append(fields, lead.FieldMessage)
	}
	if m.platform != nil {
		fields = append(fields, lead.FieldPlatform)
	}
	if m.campaign_id != nil {
		fields = append(fields, lead.FieldCampaignID)
	}
	if m.ad_set_id != nil {
		fields = append(fields, lead.FieldAdSetID)
	}
	if m.ad_id != nil {
		fields = append(fields, lead.FieldAdID)
	}
	if m.status != nil {
		fields = append(fields, lead.FieldStatus)
	}
	if m.status_changed_at != nil {
		fields = append(fields, lead.FieldStatusChangedAt)
	}
	if m.utm_source != nil {
		fields = append(fields, lead.FieldUtmSource)
	}
	if m.utm_medium != nil {
		fields = append(fields, lead.FieldUtmMedium)
	}
	if m.utm_campaign != nil {
		fields = append(fields, lead.FieldUtmCampaign)
	}
	if m.utm_term != nil {
		fields = append(fields, lead.FieldUtmTerm)
	}
	if m.utm_content != nil {
		fields = append(fields, lead.FieldUtmContent)
	}
	if m.referrer != nil {
		fields = append(fields, lead.FieldReferrer)
	}
	if m.user_agent != nil {
		fields = append(fields, lead.FieldUserAgent)
	}
	if m.lead_score != nil {
		fields = append(fields, lead.FieldLeadScore)
	}
	if m.conversion_value != nil {
		fields = append(fields, lead.FieldConversionValue)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lead.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldFirstName:
		return m.FirstName()
	case lead.FieldLastName:
		return m.LastName()
	case lead.FieldEmail:
		return m.Email()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldCompany:
		return m.Company()
	case lead.FieldLocation:
		return m.Location()
	case lead.FieldServiceType:
		return m.ServiceType()
	case lead.FieldEventDate:
		return m.EventDate()
	case lead.FieldAppointmentCount:
		return m.AppointmentCount()
	case lead.FieldMessage:
		return m.Message()
	case lead.FieldPlatform:
		return m.Platform()
	case lead.FieldCampaignID:
		return m.CampaignID()
	case lead.FieldAdSetID:
		return m.AdSetID()
	case lead.FieldAdID:
		return m.AdID()
	case lead.FieldStatus:
		return m.Status()
	case lead.FieldStatusChangedAt:
		return m.StatusChangedAt()
	case lead.FieldUtmSource:
		return m.UtmSource()
	case lead.FieldUtmMedium:
		return m.UtmMedium()
	case lead.FieldUtmCampaign:
		return m.UtmCampaign()
	case lead.FieldUtmTerm:
		return m.UtmTerm()
	case lead.FieldUtmContent:
		return m.UtmContent()
	case lead.FieldReferrer:
		return m.Referrer()
	case lead.FieldUserAgent:
		return m.UserAgent()
	case lead.FieldLeadScore:
		return m.LeadScore()
	case lead.FieldConversionValue:
		return m.ConversionValue()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	case lead.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldFirstName:
		return m.OldFirstName(ctx)
	case lead.FieldLastName:
		return m.OldLastName(ctx)
	case lead.FieldEmail:
		return m.OldEmail(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldCompany:
		return m.OldCompany(ctx)
	case lead.FieldLocation:
		return m.OldLocation(ctx)
	case lead.FieldServiceType:
		return m.OldServiceType(ctx)
	case lead.FieldEventDate:
		return m.OldEventDate(ctx)
	case lead.FieldAppointmentCount:
		return m.OldAppointmentCount(ctx)
	case lead.FieldMessage:
		return m.OldMessage(ctx)
	case lead.FieldPlatform:
		return m.OldPlatform(ctx)
	case lead.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case lead.FieldAdSetID:
		return m.OldAdSetID(ctx)
	case lead.FieldAdID:
		return m.OldAdID(ctx)
	case lead.FieldStatus:
		return m.OldStatus(ctx)
	case lead.FieldStatusChangedAt:
		return m.OldStatusChangedAt(ctx)
	case lead.FieldUtmSource:
		return m.OldUtmSource(ctx)
	case lead.FieldUtmMedium:
		return m.OldUtmMedium(ctx)
	case lead.FieldUtmCampaign:
		return m.OldUtmCampaign(ctx)
	case lead.FieldUtmTerm:
		return m.OldUtmTerm(ctx)
	case lead.FieldUtmContent:
		return m.OldUtmContent(ctx)
	case lead.FieldReferrer:
		return m.OldReferrer(ctx)
	case lead.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case lead.FieldLeadScore:
		return m.OldLeadScore(ctx)
	case lead.FieldConversionValue:
		return m.OldConversionValue(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lead.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case lead.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case lead.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldCompany:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompany(v)
		return nil
	case lead.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case lead.FieldServiceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceType(v)
		return nil
	case lead.FieldEventDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventDate(v)
		return nil
	case lead.FieldAppointmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentCount(v)
		return nil
	case lead.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case lead.FieldPlatform:
		v, ok := value.(lead.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case lead.FieldCampaignID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case lead.FieldAdSetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdSetID(v)
		return nil
	case lead.FieldAdID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdID(v)
		return nil
	case lead.FieldStatus:
		v, ok := value.(lead.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case lead.FieldStatusChangedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusChangedAt(v)
		return nil
	case lead.FieldUtmSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtmSource(v)
		return nil
	case lead.FieldUtmMedium:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtmMedium(v)
		return nil
	case lead.FieldUtmCampaign:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtmCampaign(v)
		return nil
	case lead.FieldUtmTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtmTerm(v)
		return nil
	case lead.FieldUtmContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUtmContent(v)
		return nil
	case lead.FieldReferrer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReferrer(v)
		return nil
	case lead.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case lead.FieldLeadScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadScore(v)
		return nil
	case lead.FieldConversionValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversionValue(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lead.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	var fields []string
	if m.addappointment_count != nil {
		fields = append(fields, lead.FieldAppointmentCount)
	}
	if m.addlead_score != nil {
		fields = append(fields, lead.FieldLeadScore)
	}
	if m.addconversion_value != nil {
		fields = append(fields, lead.FieldConversionValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldAppointmentCount:
		return m.AddedAppointmentCount()
	case lead.FieldLeadScore:
		return m.AddedLeadScore()
	case lead.FieldConversionValue:
		return m.AddedConversionValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lead.FieldAppointmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAppointmentCount(v)
		return nil
	case lead.FieldLeadScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLeadScore(v)
		return nil
	case lead.FieldConversionValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConversionValue(v)
		return nil
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldPhone) {
		fields = append(fields, lead.FieldPhone)
	}
	if m.FieldCleared(lead.FieldCompany) {
		fields = append(fields, lead.FieldCompany)
	}
	if m.FieldCleared(lead.FieldLocation) {
		fields = append(fields, lead.FieldLocation)
	}
	if m.FieldCleared(lead.FieldServiceType) {
		fields = append(fields, lead.FieldServiceType)
	}
	if m.FieldCleared(lead.FieldEventDate) {
		fields = append(fields, lead.FieldEventDate)
	}
	if m.FieldCleared(lead.FieldAppointmentCount) {
		fields = append(fields, lead.FieldAppointmentCount)
	}
	if m.FieldCleared(lead.FieldMessage) {
		fields = append(fields, lead.FieldMessage)
	}
	if m.FieldCleared(lead.FieldCampaignID) {
		fields = append(fields, lead.FieldCampaignID)
	}
	if m.FieldCleared(lead.FieldAdSetID) {
		fields = append(fields, lead.FieldAdSetID)
	}
	if m.FieldCleared(lead.FieldAdID) {
		fields = append(fields, lead.FieldAdID)
	}
	if m.FieldCleared(lead.FieldUtmSource) {
		fields = append(fields, lead.FieldUtmSource)
	}
	if m.FieldCleared(lead.FieldUtmMedium) {
		fields = append(fields, lead.FieldUtmMedium)
	}
	if m.FieldCleared(lead.FieldUtmCampaign) {
		fields = append(fields, lead.FieldUtmCampaign)
	}
	if m.FieldCleared(lead.FieldUtmTerm) {
		fields = append(fields, lead.FieldUtmTerm)
	}
	if m.FieldCleared(lead.FieldUtmContent) {
		fields = append(fields, lead.FieldUtmContent)
	}
	if m.FieldCleared(lead.FieldReferrer) {
		fields = append(fields, lead.FieldReferrer)
	}
	if m.FieldCleared(lead.FieldUserAgent) {
		fields = append(fields, lead.FieldUserAgent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldPhone:
		m.ClearPhone()
		return nil
	case lead.FieldCompany:
		m.ClearCompany()
		return nil
	case lead.FieldLocation:
		m.ClearLocation()
		return nil
	case lead.FieldServiceType:
		m.ClearServiceType()
		return nil
	case lead.FieldEventDate:
		m.ClearEventDate()
		return nil
	case lead.FieldAppointmentCount:
		m.ClearAppointmentCount()
		return nil
	case lead.FieldMessage:
		m.ClearMessage()
		return nil
	case lead.FieldCampaignID:
		m.ClearCampaignID()
		return nil
	case lead.FieldAdSetID:
		m.ClearAdSetID()
		return nil
	case lead.FieldAdID:
		m.ClearAdID()
		return nil
	case lead.FieldUtmSource:
		m.ClearUtmSource()
		return nil
	case lead.FieldUtmMedium:
		m.ClearUtmMedium()
		return nil
	case lead.FieldUtmCampaign:
		m.ClearUtmCampaign()
		return nil
	case lead.FieldUtmTerm:
		m.ClearUtmTerm()
		return nil
	case lead.FieldUtmContent:
		m.ClearUtmContent()
		return nil
	case lead.FieldReferrer:
		m.ClearReferrer()
		return nil
	case lead.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldFirstName:
		m.ResetFirstName()
		return nil
	case lead.FieldLastName:
		m.ResetLastName()
		return nil
	case lead.FieldEmail:
		m.ResetEmail()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldCompany:
		m.ResetCompany()
		return nil
	case lead.FieldLocation:
		m.ResetLocation()
		return nil
	case lead.FieldServiceType:
		m.ResetServiceType()
		return nil
	case lead.FieldEventDate:
		m.ResetEventDate()
		return nil
	case lead.FieldAppointmentCount:
		m.ResetAppointmentCount()
		return nil
	case lead.FieldMessage:
		m.ResetMessage()
		return nil
	case lead.FieldPlatform:
		m.ResetPlatform()
		return nil
	case lead.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case lead.FieldAdSetID:
		m.ResetAdSetID()
		return nil
	case lead.FieldAdID:
		m.ResetAdID()
		return nil
	case lead.FieldStatus:
		m.ResetStatus()
		return nil
	case lead.FieldStatusChangedAt:
		m.ResetStatusChangedAt()
		return nil
	case lead.FieldUtmSource:
		m.ResetUtmSource()
		return nil
	case lead.FieldUtmMedium:
		m.ResetUtmMedium()
		return nil
	case lead.FieldUtmCampaign:
		m.ResetUtmCampaign()
		return nil
	case lead.FieldUtmTerm:
		m.ResetUtmTerm()
		return nil
	case lead.FieldUtmContent:
		m.ResetUtmContent()
		return nil
	case lead.FieldReferrer:
		m.ResetReferrer()
		return nil
	case lead.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case lead.FieldLeadScore:
		m.ResetLeadScore()
		return nil
	case lead.FieldConversionValue:
		m.ResetConversionValue()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lead.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.status_history != nil {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeStatusHistory:
		ids := make([]ent.Value, 0, len(m.status_history))
		for id := range m.status_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstatus_history != nil {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeStatusHistory:
		ids := make([]ent.Value, 0, len(m.removedstatus_history))
		for id := range m.removedstatus_history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstatus_history {
		edges = append(edges, lead.EdgeStatusHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeStatusHistory:
		return m.clearedstatus_history
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeStatusHistory:
		m.ResetStatusHistory()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// LeadStatusHistoryMutation represents an operation that mutates the LeadStatusHistory nodes in the graph.
type LeadStatusHistoryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	changed_by    *string
	old_status    *leadstatushistory.OldStatus
	new_status    *leadstatushistory.NewStatus
	reason        *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	lead          *int
	clearedlead   bool
	done          bool
	oldValue      func(context.Context) (*LeadStatusHistory, error)
	predicates    []predicate.LeadStatusHistory
}

var _ ent.Mutation = (*LeadStatusHistoryMutation)(nil)

// leadstatushistoryOption allows management of the mutation configuration using functional options.
type leadstatushistoryOption func(*LeadStatusHistoryMutation)

// newLeadStatusHistoryMutation creates new mutation for the LeadStatusHistory entity.
func newLeadStatusHistoryMutation(c config, op Op, opts ...leadstatushistoryOption) *LeadStatusHistoryMutation {
	m := &LeadStatusHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeLeadStatusHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadStatusHistoryID sets the ID field of the mutation.
func withLeadStatusHistoryID(id int) leadstatushistoryOption {
	return func(m *LeadStatusHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *LeadStatusHistory
		)
		m.oldValue = func(ctx context.Context) (*LeadStatusHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LeadStatusHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLeadStatusHistory sets the old LeadStatusHistory of the mutation.
func withLeadStatusHistory(node *LeadStatusHistory) leadstatushistoryOption {
	return func(m *LeadStatusHistoryMutation) {
		m.oldValue = func(context.Context) (*LeadStatusHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadStatusHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadStatusHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadStatusHistoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadStatusHistoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LeadStatusHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLeadID sets the "lead_id" field.
func (m *LeadStatusHistoryMutation) SetLeadID(i int) {
	m.lead = &i
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *LeadStatusHistoryMutation) LeadID() (r int, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldLeadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *LeadStatusHistoryMutation) ResetLeadID() {
	m.lead = nil
}

// SetChangedBy sets the "changed_by" field.
func (m *LeadStatusHistoryMutation) SetChangedBy(s string) {
	m.changed_by = &s
}

// ChangedBy returns the value of the "changed_by" field in the mutation.
func (m *LeadStatusHistoryMutation) ChangedBy() (r string, exists bool) {
	v := m.changed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldChangedBy returns the old "changed_by" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldChangedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChangedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChangedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChangedBy: %w", err)
	}
	return oldValue.ChangedBy, nil
}

// ResetChangedBy resets all changes to the "changed_by" field.
func (m *LeadStatusHistoryMutation) ResetChangedBy() {
	m.changed_by = nil
}

// SetOldStatus sets the "old_status" field.
func (m *LeadStatusHistoryMutation) SetOldStatus(ls leadstatushistory.OldStatus) {
	m.old_status = &ls
}

// OldStatus returns the value of the "old_status" field in the mutation.
func (m *LeadStatusHistoryMutation) OldStatus() (r leadstatushistory.OldStatus, exists bool) {
	v := m.old_status
	if v == nil {
		return
	}
	return *v, true
}

// OldOldStatus returns the old "old_status" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldOldStatus(ctx context.Context) (v *leadstatushistory.OldStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldStatus: %w", err)
	}
	return oldValue.OldStatus, nil
}

// ClearOldStatus clears the value of the "old_status" field.
func (m *LeadStatusHistoryMutation) ClearOldStatus() {
	m.old_status = nil
	m.clearedFields[leadstatushistory.FieldOldStatus] = struct{}{}
}

// OldStatusCleared returns if the "old_status" field was cleared in this mutation.
func (m *LeadStatusHistoryMutation) OldStatusCleared() bool {
	_, ok := m.clearedFields[leadstatushistory.FieldOldStatus]
	return ok
}

// ResetOldStatus resets all changes to the "old_status" field.
func (m *LeadStatusHistoryMutation) ResetOldStatus() {
	m.old_status = nil
	delete(m.clearedFields, leadstatushistory.FieldOldStatus)
}

// SetNewStatus sets the "new_status" field.
func (m *LeadStatusHistoryMutation) SetNewStatus(ls leadstatushistory.NewStatus) {
	m.new_status = &ls
}

// NewStatus returns the value of the "new_status" field in the mutation.
func (m *LeadStatusHistoryMutation) NewStatus() (r leadstatushistory.NewStatus, exists bool) {
	v := m.new_status
	if v == nil {
		return
	}
	return *v, true
}

// OldNewStatus returns the old "new_status" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldNewStatus(ctx context.Context) (v leadstatushistory.NewStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewStatus: %w", err)
	}
	return oldValue.NewStatus, nil
}

// ResetNewStatus resets all changes to the "new_status" field.
func (m *LeadStatusHistoryMutation) ResetNewStatus() {
	m.new_status = nil
}

// SetReason sets the "reason" field.
func (m *LeadStatusHistoryMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *LeadStatusHistoryMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *LeadStatusHistoryMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[leadstatushistory.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *LeadStatusHistoryMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[leadstatushistory.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *LeadStatusHistoryMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, leadstatushistory.FieldReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadStatusHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadStatusHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LeadStatusHistory entity.
// If the LeadStatusHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadStatusHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadStatusHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *LeadStatusHistoryMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[leadstatushistory.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *LeadStatusHistoryMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *LeadStatusHistoryMutation) LeadIDs() (ids []int) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *LeadStatusHistoryMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// Where appends a list predicates to the LeadStatusHistoryMutation builder.
func (m *LeadStatusHistoryMutation) Where(ps ...predicate.LeadStatusHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadStatusHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadStatusHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LeadStatusHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadStatusHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadStatusHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LeadStatusHistory).
func (m *LeadStatusHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadStatusHistoryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.lead != nil {
		fields = append(fields, leadstatushistory.FieldLeadID)
	}
	if m.changed_by != nil {
		fields = append(fields, leadstatushistory.FieldChangedBy)
	}
	if m.old_status != nil {
		fields = append(fields, leadstatushistory.FieldOldStatus)
	}
	if m.new_status != nil {
		fields = append(fields, leadstatushistory.FieldNewStatus)
	}
	if m.reason != nil {
		fields = append(fields, leadstatushistory.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, leadstatushistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadStatusHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case leadstatushistory.FieldLeadID:
		return m.LeadID()
	case leadstatushistory.FieldChangedBy:
		return m.ChangedBy()
	case leadstatushistory.FieldOldStatus:
		return m.OldStatus()
	case leadstatushistory.FieldNewStatus:
		return m.NewStatus()
	case leadstatushistory.FieldReason:
		return m.Reason()
	case leadstatushistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadStatusHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case leadstatushistory.FieldLeadID:
		return m.OldLeadID(ctx)
	case leadstatushistory.FieldChangedBy:
		return m.OldChangedBy(ctx)
	case leadstatushistory.FieldOldStatus:
		return m.OldOldStatus(ctx)
	case leadstatushistory.FieldNewStatus:
		return m.OldNewStatus(ctx)
	case leadstatushistory.FieldReason:
		return m.OldReason(ctx)
	case leadstatushistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStatusHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case leadstatushistory.FieldLeadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case leadstatushistory.FieldChangedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChangedBy(v)
		return nil
	case leadstatushistory.FieldOldStatus:
		v, ok := value.(leadstatushistory.OldStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldStatus(v)
		return nil
	case leadstatushistory.FieldNewStatus:
		v, ok := value.(leadstatushistory.NewStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewStatus(v)
		return nil
	case leadstatushistory.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case leadstatushistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadStatusHistoryMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadStatusHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadStatusHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LeadStatusHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadStatusHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(leadstatushistory.FieldOldStatus) {
		fields = append(fields, leadstatushistory.FieldOldStatus)
	}
	if m.FieldCleared(leadstatushistory.FieldReason) {
		fields = append(fields, leadstatushistory.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadStatusHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadStatusHistoryMutation) ClearField(name string) error {
	switch name {
	case leadstatushistory.FieldOldStatus:
		m.ClearOldStatus()
		return nil
	case leadstatushistory.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadStatusHistoryMutation) ResetField(name string) error {
	switch name {
	case leadstatushistory.FieldLeadID:
		m.ResetLeadID()
		return nil
	case leadstatushistory.FieldChangedBy:
		m.ResetChangedBy()
		return nil
	case leadstatushistory.FieldOldStatus:
		m.ResetOldStatus()
		return nil
	case leadstatushistory.FieldNewStatus:
		m.ResetNewStatus()
		return nil
	case leadstatushistory.FieldReason:
		m.ResetReason()
		return nil
	case leadstatushistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadStatusHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.lead != nil {
		edges = append(edges, leadstatushistory.EdgeLead)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadStatusHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case leadstatushistory.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadStatusHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadStatusHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadStatusHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlead {
		edges = append(edges, leadstatushistory.EdgeLead)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadStatusHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case leadstatushistory.EdgeLead:
		return m.clearedlead
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadStatusHistoryMutation) ClearEdge(name string) error {
	switch name {
	case leadstatushistory.EdgeLead:
		m.ClearLead()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadStatusHistoryMutation) ResetEdge(name string) error {
	switch name {
	case leadstatushistory.EdgeLead:
		m.ResetLead()
		return nil
	}
	return fmt.Errorf("unknown LeadStatusHistory edge %s", name)
}

// NotificationEndpointMutation represents an operation that mutates the NotificationEndpoint nodes in the graph.
type NotificationEndpointMutation struct {
	config
	op                Op
	typ               string
	id                *int
	url               *string
	kinds             *[]string
	appendkinds       []string
	secret            *string
	description       *string
	active            *bool
	success_count     *int
	addsuccess_count  *int
	failure_count     *int
	addfailure_count  *int
	last_triggered_at *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*NotificationEndpoint, error)
	predicates        []predicate.NotificationEndpoint
}

var _ ent.Mutation = (*NotificationEndpointMutation)(nil)

// notificationendpointOption allows management of the mutation configuration using functional options.
type notificationendpointOption func(*NotificationEndpointMutation)

// newNotificationEndpointMutation creates new mutation for the NotificationEndpoint entity.
func newNotificationEndpointMutation(c config, op Op, opts ...notificationendpointOption) *NotificationEndpointMutation {
	m := &NotificationEndpointMutation{
		config:        c,
		op:            op,
		typ:           TypeNotificationEndpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationEndpointID sets the ID field of the mutation.
func withNotificationEndpointID(id int) notificationendpointOption {
	return func(m *NotificationEndpointMutation) {
		var (
			err   error
			once  sync.Once
			value *NotificationEndpoint
		)
		m.oldValue = func(ctx context.Context) (*NotificationEndpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NotificationEndpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotificationEndpoint sets the old NotificationEndpoint of the mutation.
func withNotificationEndpoint(node *NotificationEndpoint) notificationendpointOption {
	return func(m *NotificationEndpointMutation) {
		m.oldValue = func(context.Context) (*NotificationEndpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationEndpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationEndpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationEndpointMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationEndpointMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NotificationEndpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *NotificationEndpointMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *NotificationEndpointMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *NotificationEndpointMutation) ResetURL() {
	m.url = nil
}

// SetKinds sets the "kinds" field.
func (m *NotificationEndpointMutation) SetKinds(s []string) {
	m.kinds = &s
	m.appendkinds = nil
}

// Kinds returns the value of the "kinds" field in the mutation.
func (m *NotificationEndpointMutation) Kinds() (r []string, exists bool) {
	v := m.kinds
	if v == nil {
		return
	}
	return *v, true
}

// OldKinds returns the old "kinds" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldKinds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKinds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKinds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKinds: %w", err)
	}
	return oldValue.Kinds, nil
}

// AppendKinds adds s to the "kinds" field.
func (m *NotificationEndpointMutation) AppendKinds(s []string) {
	m.appendkinds = append(m.appendkinds, s...)
}

// AppendedKinds returns the list of values that were appended to the "kinds" field in this mutation.
func (m *NotificationEndpointMutation) AppendedKinds() ([]string, bool) {
	if len(m.appendkinds) == 0 {
		return nil, false
	}
	return m.appendkinds, true
}

// ResetKinds resets all changes to the "kinds" field.
func (m *NotificationEndpointMutation) ResetKinds() {
	m.kinds = nil
	m.appendkinds = nil
}

// SetSecret sets the "secret" field.
func (m *NotificationEndpointMutation) SetSecret(s string) {
	m.secret = &s
}

// Secret returns the value of the "secret" field in the mutation.
func (m *NotificationEndpointMutation) Secret() (r string, exists bool) {
	v := m.secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSecret returns the old "secret" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecret: %w", err)
	}
	return oldValue.Secret, nil
}

// ResetSecret resets all changes to the "secret" field.
func (m *NotificationEndpointMutation) ResetSecret() {
	m.secret = nil
}

// SetDescription sets the "description" field.
func (m *NotificationEndpointMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *NotificationEndpointMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *NotificationEndpointMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[notificationendpoint.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *NotificationEndpointMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[notificationendpoint.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *NotificationEndpointMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, notificationendpoint.FieldDescription)
}

// SetActive sets the "active" field.
func (m *NotificationEndpointMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *NotificationEndpointMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *NotificationEndpointMutation) ResetActive() {
	m.active = nil
}

// SetSuccessCount sets the "success_count" field.
func (m *NotificationEndpointMutation) SetSuccessCount(i int) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *NotificationEndpointMutation) SuccessCount() (r int, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldSuccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *NotificationEndpointMutation) AddSuccessCount(i int) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *NotificationEndpointMutation) AddedSuccessCount() (r int, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *NotificationEndpointMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetFailureCount sets the "failure_count" field.
func (m *NotificationEndpointMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *NotificationEndpointMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *NotificationEndpointMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *NotificationEndpointMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *NotificationEndpointMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// SetLastTriggeredAt sets the "last_triggered_at" field.
func (m *NotificationEndpointMutation) SetLastTriggeredAt(t time.Time) {
	m.last_triggered_at = &t
}

// LastTriggeredAt returns the value of the "last_triggered_at" field in the mutation.
func (m *NotificationEndpointMutation) LastTriggeredAt() (r time.Time, exists bool) {
	v := m.last_triggered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTriggeredAt returns the old "last_triggered_at" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldLastTriggeredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTriggeredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTriggeredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTriggeredAt: %w", err)
	}
	return oldValue.LastTriggeredAt, nil
}

// ClearLastTriggeredAt clears the value of the "last_triggered_at" field.
func (m *NotificationEndpointMutation) ClearLastTriggeredAt() {
	m.last_triggered_at = nil
	m.clearedFields[notificationendpoint.FieldLastTriggeredAt] = struct{}{}
}

// LastTriggeredAtCleared returns if the "last_triggered_at" field was cleared in this mutation.
func (m *NotificationEndpointMutation) LastTriggeredAtCleared() bool {
	_, ok := m.clearedFields[notificationendpoint.FieldLastTriggeredAt]
	return ok
}

// ResetLastTriggeredAt resets all changes to the "last_triggered_at" field.
func (m *NotificationEndpointMutation) ResetLastTriggeredAt() {
	m.last_triggered_at = nil
	delete(m.clearedFields, notificationendpoint.FieldLastTriggeredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationEndpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationEndpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NotificationEndpoint entity.
// If the NotificationEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationEndpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationEndpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationEndpointMutation builder.
func (m *NotificationEndpointMutation) Where(ps ...predicate.NotificationEndpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationEndpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationEndpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NotificationEndpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationEndpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationEndpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NotificationEndpoint).
func (m *NotificationEndpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationEndpointMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.url != nil {
		fields = append(fields, notificationendpoint.FieldURL)
	}
	if m.kinds != nil {
		fields = append(fields, notificationendpoint.FieldKinds)
	}
	if m.secret != nil {
		fields = append(fields, notificationendpoint.FieldSecret)
	}
	if m.description != nil {
		fields = append(fields, notificationendpoint.FieldDescription)
	}
	if m.active != nil {
		fields = append(fields, notificationendpoint.FieldActive)
	}
	if m.success_count != nil {
		fields = append(fields, notificationendpoint.FieldSuccessCount)
	}
	if m.failure_count != nil {
		fields = append(fields, notificationendpoint.FieldFailureCount)
	}
	if m.last_triggered_at != nil {
		fields = append(fields, notificationendpoint.FieldLastTriggeredAt)
	}
	if m.created_at != nil {
		fields = append(fields, notificationendpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationEndpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notificationendpoint.FieldURL:
		return m.URL()
	case notificationendpoint.FieldKinds:
		return m.Kinds()
	case notificationendpoint.FieldSecret:
		return m.Secret()
	case notificationendpoint.FieldDescription:
		return m.Description()
	case notificationendpoint.FieldActive:
		return m.Active()
	case notificationendpoint.FieldSuccessCount:
		return m.SuccessCount()
	case notificationendpoint.FieldFailureCount:
		return m.FailureCount()
	case notificationendpoint.FieldLastTriggeredAt:
		return m.LastTriggeredAt()
	case notificationendpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationEndpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notificationendpoint.FieldURL:
		return m.OldURL(ctx)
	case notificationendpoint.FieldKinds:
		return m.OldKinds(ctx)
	case notificationendpoint.FieldSecret:
		return m.OldSecret(ctx)
	case notificationendpoint.FieldDescription:
		return m.OldDescription(ctx)
	case notificationendpoint.FieldActive:
		return m.OldActive(ctx)
	case notificationendpoint.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case notificationendpoint.FieldFailureCount:
		return m.OldFailureCount(ctx)
	case notificationendpoint.FieldLastTriggeredAt:
		return m.OldLastTriggeredAt(ctx)
	case notificationendpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown NotificationEndpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationEndpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notificationendpoint.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case notificationendpoint.FieldKinds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKinds(v)
		return nil
	case notificationendpoint.FieldSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecret(v)
		return nil
	case notificationendpoint.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case notificationendpoint.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case notificationendpoint.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case notificationendpoint.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	case notificationendpoint.FieldLastTriggeredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTriggeredAt(v)
		return nil
	case notificationendpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationEndpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationEndpointMutation) AddedFields() []string {
	var fields []string
	if m.addsuccess_count != nil {
		fields = append(fields, notificationendpoint.FieldSuccessCount)
	}
	if m.addfailure_count != nil {
		fields = append(fields, notificationendpoint.FieldFailureCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationEndpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case notificationendpoint.FieldSuccessCount:
		return m.AddedSuccessCount()
	case notificationendpoint.FieldFailureCount:
		return m.AddedFailureCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationEndpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case notificationendpoint.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	case notificationendpoint.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	}
	return fmt.Errorf("unknown NotificationEndpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationEndpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notificationendpoint.FieldDescription) {
		fields = append(fields, notificationendpoint.FieldDescription)
	}
	if m.FieldCleared(notificationendpoint.FieldLastTriggeredAt) {
		fields = append(fields, notificationendpoint.FieldLastTriggeredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationEndpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationEndpointMutation) ClearField(name string) error {
	switch name {
	case notificationendpoint.FieldDescription:
		m.ClearDescription()
		return nil
	case notificationendpoint.FieldLastTriggeredAt:
		m.ClearLastTriggeredAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationEndpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationEndpointMutation) ResetField(name string) error {
	switch name {
	case notificationendpoint.FieldURL:
		m.ResetURL()
		return nil
	case notificationendpoint.FieldKinds:
		m.ResetKinds()
		return nil
	case notificationendpoint.FieldSecret:
		m.ResetSecret()
		return nil
	case notificationendpoint.FieldDescription:
		m.ResetDescription()
		return nil
	case notificationendpoint.FieldActive:
		m.ResetActive()
		return nil
	case notificationendpoint.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case notificationendpoint.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	case notificationendpoint.FieldLastTriggeredAt:
		m.ResetLastTriggeredAt()
		return nil
	case notificationendpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown NotificationEndpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationEndpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationEndpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationEndpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationEndpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationEndpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationEndpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationEndpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown NotificationEndpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationEndpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown NotificationEndpoint edge %s", name)
}

// ProposalMutation represents an operation that mutates the Proposal nodes in the graph.
type ProposalMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	company_name            *string
	contact_name            *string
	contact_email           *string
	service_type            *string
	appointment_count       *int
	addappointment_count    *int
	rate_per_appointment    *float64
	addrate_per_appointment *float64
	discount_pct            *float64
	adddiscount_pct         *float64
	total                   *float64
	addtotal                *float64
	status                  *proposal.Status
	view_token              *string
	stripe_invoice_id       *string
	docuseal_submission_id  *string
	viewed_at               *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*Proposal, error)
	predicates              []predicate.Proposal
}

var _ ent.Mutation = (*ProposalMutation)(nil)

// proposalOption allows management of the mutation configuration using functional options.
type proposalOption func(*ProposalMutation)

// newProposalMutation creates new mutation for the Proposal entity.
func newProposalMutation(c config, op Op, opts ...proposalOption) *ProposalMutation {
	m := &ProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalID sets the ID field of the mutation.
func withProposalID(id int) proposalOption {
	return func(m *ProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *Proposal
		)
		m.oldValue = func(ctx context.Context) (*Proposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Proposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposal sets the old Proposal of the mutation.
func withProposal(node *Proposal) proposalOption {
	return func(m *ProposalMutation) {
		m.oldValue = func(context.Context) (*Proposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Proposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyName sets the "company_name" field.
func (m *ProposalMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *ProposalMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *ProposalMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetContactName sets the "contact_name" field.
func (m *ProposalMutation) SetContactName(s string) {
	m.contact_name = &s
}

// ContactName returns the value of the "contact_name" field in the mutation.
func (m *ProposalMutation) ContactName() (r string, exists bool) {
	v := m.contact_name
	if v == nil {
		return
	}
	return *v, true
}

// OldContactName returns the old "contact_name" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldContactName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactName: %w", err)
	}
	return oldValue.ContactName, nil
}

// ClearContactName clears the value of the "contact_name" field.
func (m *ProposalMutation) ClearContactName() {
	m.contact_name = nil
	m.clearedFields[proposal.FieldContactName] = struct{}{}
}

// ContactNameCleared returns if the "contact_name" field was cleared in this mutation.
func (m *ProposalMutation) ContactNameCleared() bool {
	_, ok := m.clearedFields[proposal.FieldContactName]
	return ok
}

// ResetContactName resets all changes to the "contact_name" field.
func (m *ProposalMutation) ResetContactName() {
	m.contact_name = nil
	delete(m.clearedFields, proposal.FieldContactName)
}

// SetContactEmail sets the "contact_email" field.
func (m *ProposalMutation) SetContactEmail(s string) {
	m.contact_email = &s
}

// ContactEmail returns the value of the "contact_email" field in the mutation.
func (m *ProposalMutation) ContactEmail() (r string, exists bool) {
	v := m.contact_email
	if v == nil {
		return
	}
	return *v, true
}

// OldContactEmail returns the old "contact_email" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldContactEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactEmail: %w", err)
	}
	return oldValue.ContactEmail, nil
}

// ResetContactEmail resets all changes to the "contact_email" field.
func (m *ProposalMutation) ResetContactEmail() {
	m.contact_email = nil
}

// SetServiceType sets the "service_type" field.
func (m *ProposalMutation) SetServiceType(s string) {
	m.service_type = &s
}

// ServiceType returns the value of the "service_type" field in the mutation.
func (m *ProposalMutation) ServiceType() (r string, exists bool) {
	v := m.service_type
	if v == nil {
		return
	}
	return *v, true
}

// OldServiceType returns the old "service_type" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldServiceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldServiceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldServiceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldServiceType: %w", err)
	}
	return oldValue.ServiceType, nil
}

// ResetServiceType resets all changes to the "service_type" field.
func (m *ProposalMutation) ResetServiceType() {
	m.service_type = nil
}

// SetAppointmentCount sets the "appointment_count" field.
func (m *ProposalMutation) SetAppointmentCount(i int) {
	m.appointment_count = &i
	m.addappointment_count = nil
}

// AppointmentCount returns the value of the "appointment_count" field in the mutation.
func (m *ProposalMutation) AppointmentCount() (r int, exists bool) {
	v := m.appointment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentCount returns the old "appointment_count" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldAppointmentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentCount: %w", err)
	}
	return oldValue.AppointmentCount, nil
}

// AddAppointmentCount adds i to the "appointment_count" field.
func (m *ProposalMutation) AddAppointmentCount(i int) {
	if m.addappointment_count != nil {
		*m.addappointment_count += i
	} else {
		m.addappointment_count = &i
	}
}

// AddedAppointmentCount returns the value that was added to the "appointment_count" field in this mutation.
func (m *ProposalMutation) AddedAppointmentCount() (r int, exists bool) {
	v := m.addappointment_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAppointmentCount resets all changes to the "appointment_count" field.
func (m *ProposalMutation) ResetAppointmentCount() {
	m.appointment_count = nil
	m.addappointment_count = nil
}

// SetRatePerAppointment sets the "rate_per_appointment" field.
func (m *ProposalMutation) SetRatePerAppointment(f float64) {
	m.rate_per_appointment = &f
	m.addrate_per_appointment = nil
}

// RatePerAppointment returns the value of the "rate_per_appointment" field in the mutation.
func (m *ProposalMutation) RatePerAppointment() (r float64, exists bool) {
	v := m.rate_per_appointment
	if v == nil {
		return
	}
	return *v, true
}

// OldRatePerAppointment returns the old "rate_per_appointment" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldRatePerAppointment(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatePerAppointment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatePerAppointment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatePerAppointment: %w", err)
	}
	return oldValue.RatePerAppointment, nil
}

// AddRatePerAppointment adds f to the "rate_per_appointment" field.
func (m *ProposalMutation) AddRatePerAppointment(f float64) {
	if m.addrate_per_appointment != nil {
		*m.addrate_per_appointment += f
	} else {
		m.addrate_per_appointment = &f
	}
}

// AddedRatePerAppointment returns the value that was added to the "rate_per_appointment" field in this mutation.
func (m *ProposalMutation) AddedRatePerAppointment() (r float64, exists bool) {
	v := m.addrate_per_appointment
	if v == nil {
		return
	}
	return *v, true
}

// ResetRatePerAppointment resets all changes to the "rate_per_appointment" field.
func (m *ProposalMutation) ResetRatePerAppointment() {
	m.rate_per_appointment = nil
	m.addrate_per_appointment = nil
}

// SetDiscountPct sets the "discount_pct" field.
func (m *ProposalMutation) SetDiscountPct(f float64) {
	m.discount_pct = &f
	m.adddiscount_pct = nil
}

// DiscountPct returns the value of the "discount_pct" field in the mutation.
func (m *ProposalMutation) DiscountPct() (r float64, exists bool) {
	v := m.discount_pct
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscountPct returns the old "discount_pct" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldDiscountPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscountPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscountPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscountPct: %w", err)
	}
	return oldValue.DiscountPct, nil
}

// AddDiscountPct adds f to the "discount_pct" field.
func (m *ProposalMutation) AddDiscountPct(f float64) {
	if m.adddiscount_pct != nil {
		*m.adddiscount_pct += f
	} else {
		m.adddiscount_pct = &f
	}
}

// AddedDiscountPct returns the value that was added to the "discount_pct" field in this mutation.
func (m *ProposalMutation) AddedDiscountPct() (r float64, exists bool) {
	v := m.adddiscount_pct
	if v == nil {
		return
	}
	return *v, true
}

// ResetDiscountPct resets all changes to the "discount_pct" field.
func (m *ProposalMutation) ResetDiscountPct() {
	m.discount_pct = nil
	m.adddiscount_pct = nil
}

// SetTotal sets the "total" field.
func (m *ProposalMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ProposalMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *ProposalMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ProposalMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ProposalMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetStatus sets the "status" field.
func (m *ProposalMutation) SetStatus(pr proposal.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProposalMutation) Status() (r proposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStatus(ctx context.Context) (v proposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProposalMutation) ResetStatus() {
	m.status = nil
}

// SetViewToken sets the "view_token" field.
func (m *ProposalMutation) SetViewToken(s string) {
	m.view_token = &s
}

// ViewToken returns the value of the "view_token" field in the mutation.
func (m *ProposalMutation) ViewToken() (r string, exists bool) {
	v := m.view_token
	if v == nil {
		return
	}
	return *v, true
}

// OldViewToken returns the old "view_token" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldViewToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewToken: %w", err)
	}
	return oldValue.ViewToken, nil
}

// ResetViewToken resets all changes to the "view_token" field.
func (m *ProposalMutation) ResetViewToken() {
	m.view_token = nil
}

// SetStripeInvoiceID sets the "stripe_invoice_id" field.
func (m *ProposalMutation) SetStripeInvoiceID(s string) {
	m.stripe_invoice_id = &s
}

// StripeInvoiceID returns the value of the "stripe_invoice_id" field in the mutation.
func (m *ProposalMutation) StripeInvoiceID() (r string, exists bool) {
	v := m.stripe_invoice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripeInvoiceID returns the old "stripe_invoice_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStripeInvoiceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripeInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripeInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripeInvoiceID: %w", err)
	}
	return oldValue.StripeInvoiceID, nil
}

// ClearStripeInvoiceID clears the value of the "stripe_invoice_id" field.
func (m *ProposalMutation) ClearStripeInvoiceID() {
	m.stripe_invoice_id = nil
	m.clearedFields[proposal.FieldStripeInvoiceID] = struct{}{}
}

// StripeInvoiceIDCleared returns if the "stripe_invoice_id" field was cleared in this mutation.
func (m *ProposalMutation) StripeInvoiceIDCleared() bool {
	_, ok := m.clearedFields[proposal.FieldStripeInvoiceID]
	return ok
}

// ResetStripeInvoiceID resets all changes to the "stripe_invoice_id" field.
func (m *ProposalMutation) ResetStripeInvoiceID() {
	m.stripe_invoice_id = nil
	delete(m.clearedFields, proposal.FieldStripeInvoiceID)
}

// SetDocusealSubmissionID sets the "docuseal_submission_id" field.
func (m *ProposalMutation) SetDocusealSubmissionID(s string) {
	m.docuseal_submission_id = &s
}

// DocusealSubmissionID returns the value of the "docuseal_submission_id" field in the mutation.
func (m *ProposalMutation) DocusealSubmissionID() (r string, exists bool) {
	v := m.docuseal_submission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocusealSubmissionID returns the old "docuseal_submission_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldDocusealSubmissionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocusealSubmissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocusealSubmissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocusealSubmissionID: %w", err)
	}
	return oldValue.DocusealSubmissionID, nil
}

// ClearDocusealSubmissionID clears the value of the "docuseal_submission_id" field.
func (m *ProposalMutation) ClearDocusealSubmissionID() {
	m.docuseal_submission_id = nil
	m.clearedFields[proposal.FieldDocusealSubmissionID] = struct{}{}
}

// DocusealSubmissionIDCleared returns if the "docuseal_submission_id" field was cleared in this mutation.
func (m *ProposalMutation) DocusealSubmissionIDCleared() bool {
	_, ok := m.clearedFields[proposal.FieldDocusealSubmissionID]
	return ok
}

// ResetDocusealSubmissionID resets all changes to the "docuseal_submission_id" field.
func (m *ProposalMutation) ResetDocusealSubmissionID() {
	m.docuseal_submission_id = nil
	delete(m.clearedFields, proposal.FieldDocusealSubmissionID)
}

// SetViewedAt sets the "viewed_at" field.
func (m *ProposalMutation) SetViewedAt(t time.Time) {
	m.viewed_at = &t
}

// ViewedAt returns the value of the "viewed_at" field in the mutation.
func (m *ProposalMutation) ViewedAt() (r time.Time, exists bool) {
	v := m.viewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldViewedAt returns the old "viewed_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldViewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewedAt: %w", err)
	}
	return oldValue.ViewedAt, nil
}

// ClearViewedAt clears the value of the "viewed_at" field.
func (m *ProposalMutation) ClearViewedAt() {
	m.viewed_at = nil
	m.clearedFields[proposal.FieldViewedAt] = struct{}{}
}

// ViewedAtCleared returns if the "viewed_at" field was cleared in this mutation.
func (m *ProposalMutation) ViewedAtCleared() bool {
	_, ok := m.clearedFields[proposal.FieldViewedAt]
	return ok
}

// ResetViewedAt resets all changes to the "viewed_at" field.
func (m *ProposalMutation) ResetViewedAt() {
	m.viewed_at = nil
	delete(m.clearedFields, proposal.FieldViewedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProposalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProposalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProposalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProposalMutation builder.
func (m *ProposalMutation) Where(ps ...predicate.Proposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Proposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Proposal).
func (m *ProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.company_name != nil {
		fields = append(fields, proposal.FieldCompanyName)
	}
	if m.contact_name != nil {
		fields = append(fields, proposal.FieldContactName)
	}
	if m.contact_email != nil {
		fields = append(fields, proposal.FieldContactEmail)
	}
	if m.service_type != nil {
		fields = append(fields, proposal.FieldServiceType)
	}
	if m.appointment_count != nil {
		fields = append(fields, proposal.FieldAppointmentCount)
	}
	if m.rate_per_appointment != nil {
		fields = append(fields, proposal.FieldRatePerAppointment)
	}
	if m.discount_pct != nil {
		fields = append(fields, proposal.FieldDiscountPct)
	}
	if m.total != nil {
		fields = append(fields, proposal.FieldTotal)
	}
	if m.status != nil {
		fields = append(fields, proposal.FieldStatus)
	}
	if m.view_token != nil {
		fields = append(fields, proposal.FieldViewToken)
	}
	if m.stripe_invoice_id != nil {
		fields = append(fields, proposal.FieldStripeInvoiceID)
	}
	if m.docuseal_submission_id != nil {
		fields = append(fields, proposal.FieldDocusealSubmissionID)
	}
	if m.viewed_at != nil {
		fields = append(fields, proposal.FieldViewedAt)
	}
	if m.created_at != nil {
		fields = append(fields, proposal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, proposal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldCompanyName:
		return m.CompanyName()
	case proposal.FieldContactName:
		return m.ContactName()
	case proposal.FieldContactEmail:
		return m.ContactEmail()
	case proposal.FieldServiceType:
		return m.ServiceType()
	case proposal.FieldAppointmentCount:
		return m.AppointmentCount()
	case proposal.FieldRatePerAppointment:
		return m.RatePerAppointment()
	case proposal.FieldDiscountPct:
		return m.DiscountPct()
	case proposal.FieldTotal:
		return m.Total()
	case proposal.FieldStatus:
		return m.Status()
	case proposal.FieldViewToken:
		return m.ViewToken()
	case proposal.FieldStripeInvoiceID:
		return m.StripeInvoiceID()
	case proposal.FieldDocusealSubmissionID:
		return m.DocusealSubmissionID()
	case proposal.FieldViewedAt:
		return m.ViewedAt()
	case proposal.FieldCreatedAt:
		return m.CreatedAt()
	case proposal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposal.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case proposal.FieldContactName:
		return m.OldContactName(ctx)
	case proposal.FieldContactEmail:
		return m.OldContactEmail(ctx)
	case proposal.FieldServiceType:
		return m.OldServiceType(ctx)
	case proposal.FieldAppointmentCount:
		return m.OldAppointmentCount(ctx)
	case proposal.FieldRatePerAppointment:
		return m.OldRatePerAppointment(ctx)
	case proposal.FieldDiscountPct:
		return m.OldDiscountPct(ctx)
	case proposal.FieldTotal:
		return m.OldTotal(ctx)
	case proposal.FieldStatus:
		return m.OldStatus(ctx)
	case proposal.FieldViewToken:
		return m.OldViewToken(ctx)
	case proposal.FieldStripeInvoiceID:
		return m.OldStripeInvoiceID(ctx)
	case proposal.FieldDocusealSubmissionID:
		return m.OldDocusealSubmissionID(ctx)
	case proposal.FieldViewedAt:
		return m.OldViewedAt(ctx)
	case proposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case proposal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Proposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case proposal.FieldContactName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactName(v)
		return nil
	case proposal.FieldContactEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactEmail(v)
		return nil
	case proposal.FieldServiceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetServiceType(v)
		return nil
	case proposal.FieldAppointmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentCount(v)
		return nil
	case proposal.FieldRatePerAppointment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatePerAppointment(v)
		return nil
	case proposal.FieldDiscountPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscountPct(v)
		return nil
	case proposal.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case proposal.FieldStatus:
		v, ok := value.(proposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case proposal.FieldViewToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewToken(v)
		return nil
	case proposal.FieldStripeInvoiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripeInvoiceID(v)
		return nil
	case proposal.FieldDocusealSubmissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocusealSubmissionID(v)
		return nil
	case proposal.FieldViewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewedAt(v)
		return nil
	case proposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case proposal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalMutation) AddedFields() []string {
	var fields []string
	if m.addappointment_count != nil {
		fields = append(fields, proposal.FieldAppointmentCount)
	}
	if m.addrate_per_appointment != nil {
		fields = append(fields, proposal.FieldRatePerAppointment)
	}
	if m.adddiscount_pct != nil {
		fields = append(fields, proposal.FieldDiscountPct)
	}
	if m.addtotal != nil {
		fields = append(fields, proposal.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldAppointmentCount:
		return m.AddedAppointmentCount()
	case proposal.FieldRatePerAppointment:
		return m.AddedRatePerAppointment()
	case proposal.FieldDiscountPct:
		return m.AddedDiscountPct()
	case proposal.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldAppointmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAppointmentCount(v)
		return nil
	case proposal.FieldRatePerAppointment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRatePerAppointment(v)
		return nil
	case proposal.FieldDiscountPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscountPct(v)
		return nil
	case proposal.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proposal.FieldContactName) {
		fields = append(fields, proposal.FieldContactName)
	}
	if m.FieldCleared(proposal.FieldStripeInvoiceID) {
		fields = append(fields, proposal.FieldStripeInvoiceID)
	}
	if m.FieldCleared(proposal.FieldDocusealSubmissionID) {
		fields = append(fields, proposal.FieldDocusealSubmissionID)
	}
	if m.FieldCleared(proposal.FieldViewedAt) {
		fields = append(fields, proposal.FieldViewedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalMutation) ClearField(name string) error {
	switch name {
	case proposal.FieldContactName:
		m.ClearContactName()
		return nil
	case proposal.FieldStripeInvoiceID:
		m.ClearStripeInvoiceID()
		return nil
	case proposal.FieldDocusealSubmissionID:
		m.ClearDocusealSubmissionID()
		return nil
	case proposal.FieldViewedAt:
		m.ClearViewedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalMutation) ResetField(name string) error {
	switch name {
	case proposal.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case proposal.FieldContactName:
		m.ResetContactName()
		return nil
	case proposal.FieldContactEmail:
		m.ResetContactEmail()
		return nil
	case proposal.FieldServiceType:
		m.ResetServiceType()
		return nil
	case proposal.FieldAppointmentCount:
		m.ResetAppointmentCount()
		return nil
	case proposal.FieldRatePerAppointment:
		m.ResetRatePerAppointment()
		return nil
	case proposal.FieldDiscountPct:
		m.ResetDiscountPct()
		return nil
	case proposal.FieldTotal:
		m.ResetTotal()
		return nil
	case proposal.FieldStatus:
		m.ResetStatus()
		return nil
	case proposal.FieldViewToken:
		m.ResetViewToken()
		return nil
	case proposal.FieldStripeInvoiceID:
		m.ResetStripeInvoiceID()
		return nil
	case proposal.FieldDocusealSubmissionID:
		m.ResetDocusealSubmissionID()
		return nil
	case proposal.FieldViewedAt:
		m.ResetViewedAt()
		return nil
	case proposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case proposal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Proposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Proposal edge %s", name)
}
