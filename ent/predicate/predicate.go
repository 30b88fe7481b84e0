// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// LeadStatusHistory is the predicate function for leadstatushistory builders.
type LeadStatusHistory func(*sql.Selector)

// NotificationEndpoint is the predicate function for notificationendpoint builders.
type NotificationEndpoint func(*sql.Selector)

// Proposal is the predicate function for proposal builders.
type Proposal func(*sql.Selector)
