// Package docs registers the OpenAPI document served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [{"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.LoginResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Revoke the current token",
                "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current identity",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.Identity"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}
            }
        },
        "/employees": {
            "get": {"produces": ["application/json"], "tags": ["employees"], "summary": "List employees", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Employee"}}}}},
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employees"],
                "summary": "Add employee",
                "parameters": [{"description": "Employee", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateEmployeeRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Employee"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}
            }
        },
        "/employees/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["employees"], "summary": "Remove employee", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/config/roles": {
            "get": {"produces": ["application/json"], "tags": ["config"], "summary": "List roles", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Role"}}}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "tags": ["config"], "summary": "Add role", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateRoleRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Role"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/config/roles/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["config"], "summary": "Delete role", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/config/times": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["config"], "summary": "List time slots", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TimeSlot"}}}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "tags": ["config"], "summary": "Add time slot", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTimeSlotRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.TimeSlot"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/config/times/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["config"], "summary": "Delete time slot", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/assignments": {
            "get": {"produces": ["application/json"], "tags": ["assignments"], "summary": "List assignments", "parameters": [{"type": "string", "name": "from", "in": "query"}, {"type": "string", "name": "to", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.AssignmentView"}}}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["assignments"], "summary": "Create or update an assignment", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.UpsertAssignmentRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AssignmentView"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/assignments/{employeeId}/{date}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["assignments"], "summary": "Remove an assignment", "parameters": [{"type": "integer", "name": "employeeId", "in": "path", "required": true}, {"type": "string", "name": "date", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/schedule/week": {
            "get": {"produces": ["application/json"], "tags": ["schedule"], "summary": "Weekly schedule grid", "parameters": [{"type": "string", "name": "start", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.WeekView"}}}}
        },
        "/schedule/week/export": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "tags": ["schedule"], "summary": "Weekly schedule as a spreadsheet", "parameters": [{"type": "string", "name": "start", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/audit-logs": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["audit"], "summary": "List audit log entries, newest first", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.AuditLog"}}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["audit"], "summary": "Clear the audit log (admin)", "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["users"], "summary": "List users (admin)", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.UserView"}}}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "tags": ["users"], "summary": "Create user (admin)", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateUserRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/service.UserView"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        },
        "/users/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete user (admin)", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}}}
        }
    },
    "definitions": {
        "errors.ErrorResponse": {"type": "object", "properties": {"code": {"type": "string"}, "error": {"type": "string"}}},
        "auth.Identity": {"type": "object", "properties": {"id": {"type": "string"}, "role": {"type": "string"}, "username": {"type": "string"}}},
        "handler.LoginRequest": {"type": "object", "required": ["password", "username"], "properties": {"password": {"type": "string"}, "username": {"type": "string"}}},
        "handler.CreateEmployeeRequest": {"type": "object", "required": ["name", "type"], "properties": {"contact": {"type": "string"}, "name": {"type": "string"}, "responsibility": {"type": "string"}, "type": {"type": "string", "enum": ["FT", "PT"]}}},
        "handler.CreateRoleRequest": {"type": "object", "required": ["color", "name"], "properties": {"color": {"type": "string"}, "name": {"type": "string"}}},
        "handler.CreateTimeSlotRequest": {"type": "object", "required": ["label", "time_range"], "properties": {"label": {"type": "string"}, "time_range": {"type": "string"}}},
        "handler.UpsertAssignmentRequest": {"type": "object", "required": ["assignment_date", "employee_id", "role_id"], "properties": {"assignment_date": {"type": "string"}, "employee_id": {"type": "integer"}, "role_id": {"type": "integer"}, "time_slot_id": {"type": "integer"}}},
        "handler.CreateUserRequest": {"type": "object", "required": ["password", "role", "username"], "properties": {"password": {"type": "string"}, "role": {"type": "string", "enum": ["admin", "editor"]}, "username": {"type": "string"}}},
        "service.LoginResult": {"type": "object", "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/auth.Identity"}}},
        "service.AssignmentView": {"type": "object", "properties": {"id": {"type": "integer"}, "employee_id": {"type": "integer"}, "employee_name": {"type": "string"}, "assignment_date": {"type": "string"}, "role_id": {"type": "integer"}, "role_name": {"type": "string"}, "role_color": {"type": "string"}, "time_slot_id": {"type": "integer"}, "time_slot_label": {"type": "string"}, "time_range": {"type": "string"}}},
        "service.WeekView": {"type": "object", "properties": {"start": {"type": "string"}, "end": {"type": "string"}, "dates": {"type": "array", "items": {"type": "string"}}, "rows": {"type": "array", "items": {"type": "object"}}}},
        "service.UserView": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "role": {"type": "string"}, "isBuiltIn": {"type": "boolean"}}},
        "model.Employee": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "responsibility": {"type": "string"}, "contact": {"type": "string"}, "type": {"type": "string"}}},
        "model.Role": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "color": {"type": "string"}}},
        "model.TimeSlot": {"type": "object", "properties": {"id": {"type": "integer"}, "label": {"type": "string"}, "time_range": {"type": "string"}}},
        "model.AuditLog": {"type": "object", "properties": {"id": {"type": "string"}, "timestamp": {"type": "string"}, "actor_username": {"type": "string"}, "action_type": {"type": "string"}, "details": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "ShiftMaster API",
	Description:      "Weekly shift scheduling with JWT authentication, audit logging and XLSX export.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
