package dto

// PrintRequest represents the request to render and dispatch a design
type PrintRequest struct {
	DesignUUID  string  `json:"design_uuid" validate:"required,uuid"`
	PrinterAddr *string `json:"printer_addr,omitempty" validate:"omitempty,hostname_port" example:"192.168.1.50:9100"`
	Copies      int     `json:"copies" validate:"gte=1,lte=100" example:"1"`
}

// PrintPreviewRequest represents the request to render a design without
// dispatching it to a printer
type PrintPreviewRequest struct {
	DesignUUID string `json:"design_uuid" validate:"required,uuid"`
	Copies     int    `json:"copies" validate:"gte=1,lte=100" example:"1"`
}

// PrintPreviewResponse carries the rendered command stream
type PrintPreviewResponse struct {
	DesignUUID string `json:"design_uuid"`
	Payload    string `json:"payload"`
	Cached     bool   `json:"cached" example:"false"`
}

// PrintJobDTO represents a print job in API responses
type PrintJobDTO struct {
	UUID        string  `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	DesignUUID  string  `json:"design_uuid"`
	DesignName  string  `json:"design_name" example:"Standard shipping"`
	PrinterAddr string  `json:"printer_addr" example:"192.168.1.50:9100"`
	Copies      int     `json:"copies" example:"1"`
	Status      string  `json:"status" example:"sent"`
	Error       *string `json:"error,omitempty"`
	CreatedAt   string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
	SentAt      *string `json:"sent_at,omitempty"`
}

// PrintResponse represents the outcome of a dispatch
type PrintResponse struct {
	Job PrintJobDTO `json:"job"`
}

// ListPrintJobsResponse represents the print history payload
type ListPrintJobsResponse struct {
	Jobs  []PrintJobDTO `json:"jobs"`
	Total int64         `json:"total" example:"42"`
}
