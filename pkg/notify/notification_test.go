package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Lead(t *testing.T) {
	n := NewLead(LeadEvent{
		ID:              7,
		Name:            "Dana Rivera",
		Email:           "dana@acme.com",
		Company:         "Acme Corp",
		ServiceType:     "chair-massage",
		Source:          "linkedin",
		Campaign:        "holiday-2025",
		LeadScore:       80,
		ConversionValue: 175,
	})

	text := Format(n)

	assert.Contains(t, text, "New Lead")
	assert.Contains(t, text, "score 80")
	assert.Contains(t, text, "$175")
	assert.Contains(t, text, "Dana Rivera")
	assert.Contains(t, text, "Acme Corp")
	assert.Contains(t, text, "linkedin")
	assert.Contains(t, text, "holiday-2025")
}

func TestFormat_LeadOmitsEmptyFields(t *testing.T) {
	n := NewLead(LeadEvent{
		ID:        1,
		Name:      "Sam Ortiz",
		Email:     "sam@example.com",
		LeadScore: 20,
	})

	text := Format(n)

	assert.Contains(t, text, "Sam Ortiz")
	assert.NotContains(t, text, "Company")
	assert.NotContains(t, text, "Source")
	assert.NotContains(t, text, "Campaign")
}

func TestFormat_AgreementSigned(t *testing.T) {
	n := NewAgreementSigned(AgreementEvent{
		ProposalID:   12,
		CompanyName:  "Globex",
		SubmissionID: "sub_42",
		SignerEmail:  "cfo@globex.com",
	})

	text := Format(n)

	assert.Contains(t, text, "Agreement Signed")
	assert.Contains(t, text, "Globex")
	assert.Contains(t, text, "#12")
	assert.Contains(t, text, "cfo@globex.com")
}

func TestFormat_InvoicePaid(t *testing.T) {
	n := NewInvoicePaid(InvoiceEvent{
		ProposalID:  12,
		CompanyName: "Globex",
		InvoiceID:   "in_123",
		AmountPaid:  4250.50,
	})

	text := Format(n)

	assert.Contains(t, text, "Invoice Paid")
	assert.Contains(t, text, "Globex")
	assert.Contains(t, text, "$4250.50")
}

func TestFormat_ProposalEvent(t *testing.T) {
	n := NewProposalEvent(ProposalEvent{
		ProposalID:  9,
		CompanyName: "Initech",
		Status:      "viewed",
	})

	text := Format(n)

	assert.Contains(t, text, "Proposal viewed")
	assert.Contains(t, text, "Initech")
	assert.Contains(t, text, "#9")
}

func TestNotification_KindSelectsVariant(t *testing.T) {
	lead := NewLead(LeadEvent{ID: 1})
	assert.Equal(t, KindLead, lead.Kind)
	assert.NotNil(t, lead.Lead)
	assert.Nil(t, lead.Agreement)

	inv := NewInvoicePaid(InvoiceEvent{ProposalID: 1})
	assert.Equal(t, KindInvoicePaid, inv.Kind)
	assert.NotNil(t, inv.Invoice)
	assert.Nil(t, inv.Lead)
}
