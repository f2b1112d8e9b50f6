// Package docs holds the OpenAPI description served at /swagger/*.
// It is kept by hand in swag's layout; router tests fail when a registered
// /api route is missing from it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration payload", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in and obtain a bearer token",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/user/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get the caller's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProfileResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Partially update the caller's profile",
                "parameters": [
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ProfileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/health/symptoms": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["symptoms"],
                "summary": "List the caller's symptoms",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SymptomListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["symptoms"],
                "summary": "Record a symptom",
                "parameters": [
                    {"description": "Symptom", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateSymptomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SymptomResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/health/metrics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Summary metrics over the caller's records",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.HealthMetrics"}}}
            }
        },
        "/health/score": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Health score from recent symptoms",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.HealthScore"}}}
            }
        },
        "/health/ai-recommendations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "General wellness recommendations",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RecommendationsResponse"}}}
            }
        },
        "/health/ai-diagnosis": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Advisory response for a list of symptoms",
                "parameters": [
                    {"description": "Symptoms", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.DiagnosisRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Diagnosis"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/health/appointments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Upcoming diagnostic tests",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AppointmentsResponse"}}}
            }
        },
        "/diagnostic-tests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["diagnostic-tests"],
                "summary": "List the caller's diagnostic tests",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiagnosticTestListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diagnostic-tests"],
                "summary": "Create a diagnostic test",
                "parameters": [
                    {"description": "Test", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateDiagnosticTestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.DiagnosticTestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/diagnostic-tests/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["diagnostic-tests"],
                "summary": "Get one diagnostic test",
                "parameters": [{"type": "integer", "description": "Test ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiagnosticTestResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diagnostic-tests"],
                "summary": "Update a diagnostic test",
                "parameters": [
                    {"type": "integer", "description": "Test ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateDiagnosticTestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiagnosticTestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["diagnostic-tests"],
                "summary": "Delete a diagnostic test",
                "parameters": [{"type": "integer", "description": "Test ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DeleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/alerts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["alerts"],
                "summary": "List the caller's alerts",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AlertListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["alerts"],
                "summary": "Create an alert",
                "parameters": [
                    {"description": "Alert", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateAlertRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AlertResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/alerts/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["alerts"],
                "summary": "Change an alert's status",
                "parameters": [
                    {"type": "integer", "description": "Alert ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpdateAlertStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AlertResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {"cache": {"type": "string"}, "database": {"type": "string"}, "status": {"type": "string"}}
        },
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "first_name": {"type": "string"}, "last_name": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.RegisterResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/model.User"}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.LoginResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/model.UserSummary"}}
        },
        "handler.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "current_password": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "new_password": {"type": "string"},
                "notification_email_enabled": {"type": "boolean"},
                "theme_preference": {"type": "string", "enum": ["light", "dark", "system"]}
            }
        },
        "handler.ProfileResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/model.User"}}
        },
        "handler.CreateSymptomRequest": {
            "type": "object",
            "required": ["description"],
            "properties": {
                "date": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "string"},
                "severity": {"type": "string", "enum": ["mild", "moderate", "severe"]}
            }
        },
        "handler.SymptomResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "symptom": {"$ref": "#/definitions/model.Symptom"}}
        },
        "handler.SymptomListResponse": {
            "type": "object",
            "properties": {"symptoms": {"type": "array", "items": {"$ref": "#/definitions/model.Symptom"}}}
        },
        "handler.CreateDiagnosticTestRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "result": {"type": "string"}, "test_date": {"type": "string"}}
        },
        "handler.UpdateDiagnosticTestRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "result": {"type": "string"}, "test_date": {"type": "string"}}
        },
        "handler.DiagnosticTestResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "test": {"$ref": "#/definitions/model.DiagnosticTest"}}
        },
        "handler.DiagnosticTestListResponse": {
            "type": "object",
            "properties": {"tests": {"type": "array", "items": {"$ref": "#/definitions/model.DiagnosticTest"}}}
        },
        "handler.DeleteResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "message": {"type": "string"}}
        },
        "handler.CreateAlertRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {"status": {"type": "string"}, "title": {"type": "string"}}
        },
        "handler.UpdateAlertStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string"}}
        },
        "handler.AlertResponse": {
            "type": "object",
            "properties": {"alert": {"$ref": "#/definitions/model.Alert"}, "message": {"type": "string"}}
        },
        "handler.AlertListResponse": {
            "type": "object",
            "properties": {"alerts": {"type": "array", "items": {"$ref": "#/definitions/model.Alert"}}}
        },
        "handler.DiagnosisRequest": {
            "type": "object",
            "required": ["symptoms"],
            "properties": {"symptoms": {"type": "array", "items": {"type": "string"}}}
        },
        "handler.RecommendationsResponse": {
            "type": "object",
            "properties": {"recommendations": {"type": "array", "items": {"type": "string"}}}
        },
        "handler.AppointmentsResponse": {
            "type": "object",
            "properties": {"appointments": {"type": "array", "items": {"$ref": "#/definitions/model.DiagnosticTest"}}}
        },
        "service.HealthMetrics": {
            "type": "object",
            "properties": {
                "average_severity": {"type": "string"},
                "by_severity": {"type": "object", "additionalProperties": {"type": "integer"}},
                "diagnostic_tests": {"type": "integer"},
                "open_alerts": {"type": "integer"},
                "recent_symptoms": {"type": "integer"},
                "total_symptoms": {"type": "integer"}
            }
        },
        "service.HealthScore": {
            "type": "object",
            "properties": {"score": {"type": "integer"}, "status": {"type": "string"}}
        },
        "service.Diagnosis": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "urgency": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "integer"},
                "last_name": {"type": "string"},
                "notification_email_enabled": {"type": "boolean"},
                "theme_preference": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.UserSummary": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "first_name": {"type": "string"}, "id": {"type": "integer"}, "last_name": {"type": "string"}}
        },
        "model.Symptom": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "duration": {"type": "string"},
                "id": {"type": "integer"},
                "severity": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "model.DiagnosticTest": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "result": {"type": "string"},
                "test_date": {"type": "string"},
                "updated_at": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "model.Alert": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "title": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "HealthTrack API",
	Description:      "Personal health tracking API: profile, symptoms, diagnostic tests, alerts and derived insights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
