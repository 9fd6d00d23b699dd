package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Interview Booking API",
        "description": "Interview slot booking between interviewers and verified students",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Interviewer invites, registration and login"},
        {"name": "Student", "description": "Student email verification"},
        {"name": "Slots", "description": "Interviewer availability"},
        {"name": "Health", "description": "Liveness and readiness"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Database health check",
                "responses": {
                    "200": {"description": "Database reachable", "schema": {"$ref": "#/definitions/Health"}},
                    "500": {"description": "Database unreachable", "schema": {"$ref": "#/definitions/Health"}}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A backing store is unavailable"}
                }
            }
        },
        "/auth/invite": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Invite an interviewer",
                "description": "Not authenticated. Every successful call is audited.",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/EmailRequest"}}
                ],
                "responses": {
                    "201": {"description": "Invite created", "schema": {"$ref": "#/definitions/InviteResponse"}},
                    "400": {"description": "Invalid email, already registered or already invited", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register with an invite token",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Registered", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "400": {"description": "Invalid payload, invite or specialty", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Interviewer login",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Logged in", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current interviewer profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Profile with specialties", "schema": {"$ref": "#/definitions/InterviewerProfile"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/Error"}},
                    "403": {"description": "Not an interviewer token", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Interviewer not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/student/request-code": {
            "post": {
                "tags": ["Student"],
                "summary": "Email a verification code",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/EmailRequest"}}
                ],
                "responses": {
                    "200": {"description": "Code sent", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Missing or out-of-domain email", "schema": {"$ref": "#/definitions/Error"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/student/verify-code": {
            "post": {
                "tags": ["Student"],
                "summary": "Exchange a code for a student token",
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/VerifyCodeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Verified", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "400": {"description": "Invalid or expired code", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/student/me": {
            "get": {
                "tags": ["Student"],
                "summary": "Current student and active booking",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Student profile", "schema": {"$ref": "#/definitions/StudentProfile"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/Error"}},
                    "403": {"description": "Not a student token", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/slots/types": {
            "get": {
                "tags": ["Slots"],
                "summary": "List interview types",
                "responses": {
                    "200": {"description": "Catalog", "schema": {"type": "object", "properties": {"types": {"type": "array", "items": {"$ref": "#/definitions/InterviewType"}}}}}
                }
            }
        },
        "/slots/available": {
            "get": {
                "tags": ["Slots"],
                "summary": "Open future slots of a type",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "query", "name": "type", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Slots", "schema": {"type": "object", "properties": {"slots": {"type": "array", "items": {"$ref": "#/definitions/AvailableSlot"}}}}},
                    "400": {"description": "Type missing", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/slots": {
            "get": {
                "tags": ["Slots"],
                "summary": "The caller's slots with bookings",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Slots", "schema": {"type": "object", "properties": {"slots": {"type": "array", "items": {"$ref": "#/definitions/InterviewerSlot"}}}}}
                }
            },
            "post": {
                "tags": ["Slots"],
                "summary": "Create an availability slot",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "payload", "required": true, "schema": {"$ref": "#/definitions/CreateSlotRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "properties": {"message": {"type": "string"}, "slot": {"$ref": "#/definitions/Slot"}}}},
                    "400": {"description": "Invalid window, missing specialty or overlap", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/slots/{id}": {
            "delete": {
                "tags": ["Slots"],
                "summary": "Delete an unbooked slot",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Message"}},
                    "400": {"description": "Slot is booked", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Slot not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/slots/export": {
            "get": {
                "tags": ["Slots"],
                "summary": "Download the caller's slots",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"in": "query", "name": "format", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Attachment", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "Message": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "Health": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "database": {"type": "string"},
                "serverTime": {"type": "string", "format": "date-time"}
            }
        },
        "EmailRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "VerifyCodeRequest": {
            "type": "object",
            "required": ["email", "code"],
            "properties": {"email": {"type": "string"}, "code": {"type": "string", "pattern": "^[0-9]{6}$"}}
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "RegisterRequest": {
            "type": "object",
            "required": ["token", "name", "password", "specialties"],
            "properties": {
                "token": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string", "minLength": 8},
                "specialties": {"type": "array", "items": {"type": "string"}}
            }
        },
        "InviteResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "inviteLink": {"type": "string"},
                "expiresAt": {"type": "string", "format": "date-time"}
            }
        },
        "TokenResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "token": {"type": "string"}}
        },
        "Specialty": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "InterviewerProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "specialties": {"type": "array", "items": {"$ref": "#/definitions/Specialty"}}
            }
        },
        "ActiveBooking": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "student_name": {"type": "string"},
                "teams_meeting_url": {"type": "string"},
                "booked_at": {"type": "string", "format": "date-time"},
                "start_time": {"type": "string", "format": "date-time"},
                "end_time": {"type": "string", "format": "date-time"},
                "interviewer_name": {"type": "string"}
            }
        },
        "StudentProfile": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "activeBooking": {"$ref": "#/definitions/ActiveBooking"},
                "canBook": {"type": "boolean"}
            }
        },
        "InterviewType": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"}}
        },
        "CreateSlotRequest": {
            "type": "object",
            "required": ["start_time", "end_time", "interview_type"],
            "properties": {
                "start_time": {"type": "string", "format": "date-time"},
                "end_time": {"type": "string", "format": "date-time"},
                "interview_type": {"type": "string"}
            }
        },
        "Slot": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "start_time": {"type": "string", "format": "date-time"},
                "end_time": {"type": "string", "format": "date-time"},
                "is_booked": {"type": "boolean"},
                "created_at": {"type": "string", "format": "date-time"},
                "interview_type": {"type": "string"}
            }
        },
        "SlotBooking": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "student_name": {"type": "string"}, "student_email": {"type": "string"}}
        },
        "InterviewerSlot": {
            "allOf": [
                {"$ref": "#/definitions/Slot"},
                {"type": "object", "properties": {"booking": {"$ref": "#/definitions/SlotBooking"}}}
            ]
        },
        "AvailableSlot": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "start_time": {"type": "string", "format": "date-time"},
                "end_time": {"type": "string", "format": "date-time"},
                "interview_type": {"type": "string"},
                "interviewer_name": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
