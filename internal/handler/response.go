package handler

const (
	MsgInserted = "Data inserted successfully"
	MsgUpdated  = "Data updated successfully"
	MsgDeleted  = "Data deleted successfully"
)

type SuccessResponse struct {
	Message string `json:"message" example:"Data inserted successfully"`
}

type ErrorResponse struct {
	Error  string   `json:"error" example:"Missing required fields"`
	Fields []string `json:"fields,omitempty" example:"email,projectTitle"`
}

// /health 응답
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}
