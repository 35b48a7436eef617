package dto

// ErrorResponse is the only error body the API emits.
//
// Example:
//
//	{"error": "yahoo chart ZZZZINVALID: No data found, symbol may be delisted"}
type ErrorResponse struct {
	Message string `json:"error" example:"upstream request failed"`
}

// Error implements the error interface so the payload can travel as an error.
func (e ErrorResponse) Error() string {
	return e.Message
}

// NewErrorResponse builds the payload from err's text.
func NewErrorResponse(err error) ErrorResponse {
	if err == nil {
		return ErrorResponse{Message: "unknown error"}
	}
	return ErrorResponse{Message: err.Error()}
}
