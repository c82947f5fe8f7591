package response

import "time"

// SuccessResponse is the generic success envelope.
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse is the API error envelope.
type ErrorResponse struct {
	// Machine-readable error code
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Human-readable error message
	// example: Please provide title, startTime, endTime, and location.
	Message string `json:"message"`

	// Optional extra detail about the error
	// example: endTime must be after startTime
	Details string `json:"details,omitempty"`
}

// ConflictInfo identifies the stored class a rejected write overlaps with.
type ConflictInfo struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Location  string    `json:"location"`
	Day       string    `json:"day"`
}

// OverlapResponse is returned when a class write collides with an existing class.
type OverlapResponse struct {
	Code    string       `json:"code" example:"CLASS_OVERLAP"`
	Message string       `json:"message" example:"Class time overlaps with an existing class: \"Science - Grade 10\""`
	Overlap ConflictInfo `json:"overlap"`
}

// TokenResponse carries the auth token pair.
type TokenResponse struct {
	// JWT access token
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// JWT refresh token
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}

// DeleteResponse confirms a deletion.
type DeleteResponse struct {
	Message string `json:"message" example:"Class deleted"`
	ID      uint   `json:"id"`
}
