package models

// SubmitLeadRequest represents an incoming contact-form or lead-ad submission.
// PageURL and Referrer come from the page the form was submitted on; the
// visitor ID is the browser-generated key for the attribution slot.
type SubmitLeadRequest struct {
	FirstName        string `json:"first_name" validate:"required,min=1,max=100"`
	LastName         string `json:"last_name" validate:"required,min=1,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"omitempty,max=30"`
	Company          string `json:"company" validate:"omitempty,max=200"`
	Location         string `json:"location" validate:"omitempty,max=200"`
	ServiceType      string `json:"service_type" validate:"omitempty,max=100"`
	EventDate        string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	AppointmentCount int    `json:"appointment_count" validate:"omitempty,min=1,max=10000"`
	Message          string `json:"message" validate:"omitempty,max=5000"`
	Platform         string `json:"platform" validate:"omitempty,oneof=website linkedin meta"`
	CampaignID       string `json:"campaign_id" validate:"omitempty,max=100"`
	AdSetID          string `json:"ad_set_id" validate:"omitempty,max=100"`
	AdID             string `json:"ad_id" validate:"omitempty,max=100"`
	PageURL          string `json:"page_url" validate:"omitempty,max=2000"`
	Referrer         string `json:"referrer" validate:"omitempty,max=2000"`
	VisitorID        string `json:"visitor_id" validate:"omitempty,max=100"`
}

// LeadResponse represents a single lead in API responses
type LeadResponse struct {
	ID               int     `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone,omitempty"`
	Company          string  `json:"company,omitempty"`
	Location         string  `json:"location,omitempty"`
	ServiceType      string  `json:"service_type,omitempty"`
	EventDate        string  `json:"event_date,omitempty"`
	AppointmentCount int     `json:"appointment_count,omitempty"`
	Message          string  `json:"message,omitempty"`
	Platform         string  `json:"platform"`
	CampaignID       string  `json:"campaign_id,omitempty"`
	AdSetID          string  `json:"ad_set_id,omitempty"`
	AdID             string  `json:"ad_id,omitempty"`
	Status           string  `json:"status"`
	UTMSource        string  `json:"utm_source,omitempty"`
	UTMMedium        string  `json:"utm_medium,omitempty"`
	UTMCampaign      string  `json:"utm_campaign,omitempty"`
	UTMTerm          string  `json:"utm_term,omitempty"`
	UTMContent       string  `json:"utm_content,omitempty"`
	Referrer         string  `json:"referrer,omitempty"`
	UserAgent        string  `json:"user_agent,omitempty"`
	LeadScore        int     `json:"lead_score"`
	ConversionValue  float64 `json:"conversion_value"`
	CreatedAt        string  `json:"created_at"`
}

// LeadListRequest represents list filters for the sales dashboard
type LeadListRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=new contacted followed_up closed"`
	Source   string `query:"source"`
	MinScore int    `query:"min_score" validate:"omitempty,min=0,max=100"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// LeadListResponse represents a paginated list of leads
type LeadListResponse struct {
	Data       []LeadResponse `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
}
