package dto

// ResendRequest is the request body for a webhook resend.
type ResendRequest struct {
	Product    string   `json:"product" binding:"required"`
	ServiceIDs []string `json:"serviceIds" binding:"required,min=1,max=100,dive,safe_id"`
	Kind       string   `json:"kind" binding:"required"`
	Type       string   `json:"type" binding:"required"`
}

// ListProtocolsQuery is the query string for the protocol listing.
// startDate and endDate use the YYYY-MM-DD calendar form.
type ListProtocolsQuery struct {
	StartDate  string   `form:"startDate" binding:"required"`
	EndDate    string   `form:"endDate" binding:"required"`
	Product    string   `form:"product"`
	Kind       string   `form:"kind"`
	Type       string   `form:"type"`
	ServiceIDs []string `form:"serviceIds"`
	Page       int      `form:"page"`
	Limit      int      `form:"limit"`
}
