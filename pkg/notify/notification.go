package notify

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies what a notification is about. Each kind has exactly one
// variant struct; the formatter switches on it.
type Kind string

const (
	KindLead            Kind = "lead.created"
	KindAgreementSigned Kind = "agreement.signed"
	KindInvoicePaid     Kind = "invoice.paid"
	KindProposalEvent   Kind = "proposal.event"
)

// LeadEvent carries the fields of a freshly persisted lead submission.
type LeadEvent struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Company         string  `json:"company,omitempty"`
	ServiceType     string  `json:"service_type,omitempty"`
	Source          string  `json:"source,omitempty"`
	Campaign        string  `json:"campaign,omitempty"`
	LeadScore       int     `json:"lead_score"`
	ConversionValue float64 `json:"conversion_value"`
}

// AgreementEvent carries the fields of a completed e-signature.
type AgreementEvent struct {
	ProposalID   int    `json:"proposal_id"`
	CompanyName  string `json:"company_name"`
	SubmissionID string `json:"submission_id"`
	SignerEmail  string `json:"signer_email,omitempty"`
}

// InvoiceEvent carries the fields of a paid invoice.
type InvoiceEvent struct {
	ProposalID  int     `json:"proposal_id"`
	CompanyName string  `json:"company_name"`
	InvoiceID   string  `json:"invoice_id"`
	AmountPaid  float64 `json:"amount_paid"`
}

// ProposalEvent carries proposal lifecycle changes (sent, viewed, approved).
type ProposalEvent struct {
	ProposalID  int    `json:"proposal_id"`
	CompanyName string `json:"company_name"`
	Status      string `json:"status"`
}

// Notification is a tagged union: Kind selects which variant is set.
type Notification struct {
	Kind      Kind
	Lead      *LeadEvent
	Agreement *AgreementEvent
	Invoice   *InvoiceEvent
	Proposal  *ProposalEvent
}

// NewLead builds a lead.created notification.
func NewLead(ev LeadEvent) Notification {
	return Notification{Kind: KindLead, Lead: &ev}
}

// NewAgreementSigned builds an agreement.signed notification.
func NewAgreementSigned(ev AgreementEvent) Notification {
	return Notification{Kind: KindAgreementSigned, Agreement: &ev}
}

// NewInvoicePaid builds an invoice.paid notification.
func NewInvoicePaid(ev InvoiceEvent) Notification {
	return Notification{Kind: KindInvoicePaid, Invoice: &ev}
}

// NewProposalEvent builds a proposal.event notification.
func NewProposalEvent(ev ProposalEvent) Notification {
	return Notification{Kind: KindProposalEvent, Proposal: &ev}
}

// Format renders the human-readable chat summary for a notification. The
// exact shape is owned by the receiving chat service, so this only aims to
// be readable, not stable byte-for-byte.
func Format(n Notification) string {
	switch n.Kind {
	case KindLead:
		ev := n.Lead
		var b strings.Builder
		fmt.Fprintf(&b, "🎯 *New Lead* (score %d, est. $%.0f)\n", ev.LeadScore, ev.ConversionValue)
		fmt.Fprintf(&b, "• Name: %s\n", ev.Name)
		fmt.Fprintf(&b, "• Email: %s", ev.Email)
		if ev.Company != "" {
			fmt.Fprintf(&b, "\n• Company: %s", ev.Company)
		}
		if ev.ServiceType != "" {
			fmt.Fprintf(&b, "\n• Service: %s", ev.ServiceType)
		}
		if ev.Source != "" {
			fmt.Fprintf(&b, "\n• Source: %s", ev.Source)
		}
		if ev.Campaign != "" {
			fmt.Fprintf(&b, "\n• Campaign: %s", ev.Campaign)
		}
		return b.String()

	case KindAgreementSigned:
		ev := n.Agreement
		text := fmt.Sprintf("✍️ *Agreement Signed*\n"+
			"• Company: %s\n"+
			"• Proposal: #%d",
			ev.CompanyName, ev.ProposalID)
		if ev.SignerEmail != "" {
			text += fmt.Sprintf("\n• Signed by: %s", ev.SignerEmail)
		}
		return text

	case KindInvoicePaid:
		ev := n.Invoice
		return fmt.Sprintf("💰 *Invoice Paid*\n"+
			"• Company: %s\n"+
			"• Proposal: #%d\n"+
			"• Amount: $%.2f",
			ev.CompanyName, ev.ProposalID, ev.AmountPaid)

	case KindProposalEvent:
		ev := n.Proposal
		return fmt.Sprintf("📄 *Proposal %s*\n"+
			"• Company: %s\n"+
			"• Proposal: #%d",
			ev.Status, ev.CompanyName, ev.ProposalID)
	}

	return ""
}

// payload is the JSON body POSTed to configured generic endpoints.
type payload struct {
	Event     Kind        `json:"event"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

func (n Notification) data() interface{} {
	switch n.Kind {
	case KindLead:
		return n.Lead
	case KindAgreementSigned:
		return n.Agreement
	case KindInvoicePaid:
		return n.Invoice
	case KindProposalEvent:
		return n.Proposal
	}
	return nil
}

func (n Notification) payload(now time.Time) payload {
	return payload{
		Event:     n.Kind,
		Data:      n.data(),
		Timestamp: now.Unix(),
	}
}
