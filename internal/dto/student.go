package dto

// RequestCodeRequest is the body of POST /student/request-code.
type RequestCodeRequest struct {
	Email string `json:"email" validate:"required"`
	IP    string `json:"-"`
}

// VerifyCodeRequest is the body of POST /student/verify-code.
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required,len=6,number"`
}
