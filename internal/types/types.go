package types

// SimpleFormData carries the four free-text fields collected from the user.
// The first three are required; custom instructions may be empty.
type SimpleFormData struct {
	UserInfo           string `json:"userInfo"`
	RepresentativeInfo string `json:"representativeInfo"`
	IssueDetails       string `json:"issueDetails"`
	CustomInstructions string `json:"customInstructions"`
}

// LetterRequest is the body accepted by POST /api/generate-letter.
type LetterRequest struct {
	FormData *SimpleFormData `json:"formData"`
}

// LetterResponse holds a generated letter. Citations is never nil on the
// wire; upstream responses without citations produce an empty list.
type LetterResponse struct {
	Content   string   `json:"content"`
	Citations []string `json:"citations"`
}

// APIError is the JSON error envelope returned on failure responses.
// Validation failures carry only the message; upstream failures also carry
// the HTTP status code.
type APIError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func (e *APIError) Error() string { return e.Message }
