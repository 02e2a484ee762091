// Package docs registers the OpenAPI document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {"post": {"tags": ["auth"], "summary": "Login", "parameters": [
            {"type": "string", "name": "username", "in": "formData"},
            {"type": "string", "name": "password", "in": "formData"}],
            "responses": {"302": {"description": "Redirect"}, "401": {"description": "Invalid credentials"}}}},
        "/profile/{id}": {"get": {"tags": ["content"], "summary": "Get profile", "parameters": [
            {"type": "string", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "Profile", "schema": {"$ref": "#/definitions/models.User"}}, "404": {"description": "Not found"}}}},
        "/search": {"get": {"tags": ["content"], "summary": "Search products", "parameters": [
            {"type": "string", "name": "q", "in": "query"}],
            "responses": {"200": {"description": "HTML listing"}}}},
        "/comment": {"post": {"tags": ["content"], "summary": "Post comment", "parameters": [
            {"type": "string", "name": "username", "in": "formData"},
            {"type": "string", "name": "message", "in": "formData"}],
            "responses": {"302": {"description": "Redirect to /comments.html"}}}},
        "/comments": {"get": {"tags": ["content"], "summary": "List comments",
            "responses": {"200": {"description": "HTML listing"}}}},
        "/transfer": {"post": {"tags": ["ledger"], "summary": "Transfer funds", "parameters": [
            {"type": "string", "name": "from", "in": "formData", "required": true},
            {"type": "string", "name": "to", "in": "formData", "required": true},
            {"type": "string", "name": "amount", "in": "formData", "required": true},
            {"type": "string", "name": "note", "in": "formData"}],
            "responses": {"200": {"description": "Transfer complete"}, "400": {"description": "Invalid account"}}}},
        "/api/transactions": {"get": {"tags": ["ledger"], "summary": "List transactions", "parameters": [
            {"type": "string", "name": "user_id", "in": "query"}],
            "responses": {"200": {"description": "Transactions", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}}, "500": {"description": "DB error"}}}},
        "/api/account_summary": {"get": {"tags": ["ledger"], "summary": "Account summary", "parameters": [
            {"type": "string", "name": "user_id", "in": "query"}],
            "responses": {"200": {"description": "Balance", "schema": {"$ref": "#/definitions/services.AccountSummary"}}, "404": {"description": "No account", "schema": {"$ref": "#/definitions/services.ErrorResponse"}}}}},
        "/api/audit": {"get": {"tags": ["audit"], "summary": "Training hint feed",
            "responses": {"200": {"description": "Hints", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.AuditEvent"}}}}}},
        "/audit": {"get": {"tags": ["audit"], "summary": "Audit feed",
            "responses": {"200": {"description": "HTML listing"}}}},
        "/download": {"get": {"tags": ["files"], "summary": "Download file", "parameters": [
            {"type": "string", "name": "name", "in": "query", "required": true}],
            "responses": {"200": {"description": "File"}, "403": {"description": "Access denied"}, "404": {"description": "File not found"}}}},
        "/upload": {"post": {"tags": ["files"], "summary": "Upload file", "consumes": ["application/json"], "parameters": [
            {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.UploadRequest"}}],
            "responses": {"200": {"description": "Upload complete"}, "400": {"description": "Missing fields"}}}},
        "/files": {"get": {"tags": ["files"], "summary": "List uploads", "parameters": [
            {"type": "string", "name": "k", "in": "query", "required": true}],
            "responses": {"200": {"description": "HTML listing"}, "403": {"description": "Listing requires key"}}}},
        "/include": {"get": {"tags": ["files"], "summary": "Include file", "parameters": [
            {"type": "string", "name": "file", "in": "query", "required": true}],
            "responses": {"200": {"description": "File"}, "404": {"description": "File not found"}}}},
        "/fetch": {"get": {"tags": ["remote"], "summary": "Fetch URL", "parameters": [
            {"type": "string", "name": "url", "in": "query", "required": true}],
            "responses": {"200": {"description": "Output"}, "400": {"description": "Missing url param"}}}},
        "/ping": {"get": {"tags": ["remote"], "summary": "Ping host", "parameters": [
            {"type": "string", "name": "host", "in": "query"}],
            "responses": {"200": {"description": "Output"}}}},
        "/forgot": {"post": {"tags": ["misc"], "summary": "Forgot password", "parameters": [
            {"type": "string", "name": "email", "in": "formData"}],
            "responses": {"200": {"description": "Reset link message"}}}},
        "/reset": {"get": {"tags": ["misc"], "summary": "Reset password", "parameters": [
            {"type": "string", "name": "token", "in": "query", "required": true}],
            "responses": {"200": {"description": "Token owner"}, "404": {"description": "Invalid token"}}}},
        "/redirect": {"get": {"tags": ["misc"], "summary": "Redirect", "parameters": [
            {"type": "string", "name": "to", "in": "query"}],
            "responses": {"302": {"description": "Redirect"}}}},
        "/debug": {"get": {"tags": ["misc"], "summary": "Debug info",
            "responses": {"200": {"description": "Environment", "schema": {"$ref": "#/definitions/services.DebugInfo"}}}}},
        "/admin": {"get": {"tags": ["content"], "summary": "Admin user listing",
            "responses": {"200": {"description": "HTML table"}, "403": {"description": "Access denied"}}}},
        "/run": {"post": {"tags": ["misc"], "summary": "Run code", "parameters": [
            {"type": "string", "name": "code", "in": "formData", "required": true}],
            "responses": {"200": {"description": "Result or error"}, "400": {"description": "Missing code"}}}}
    },
    "definitions": {
        "models.User": {"type": "object", "properties": {
            "id": {"type": "integer"},
            "username": {"type": "string"},
            "email": {"type": "string"},
            "full_name": {"type": "string"},
            "major": {"type": "string"},
            "year": {"type": "integer"}}},
        "models.Account": {"type": "object", "properties": {
            "id": {"type": "integer"},
            "user_id": {"type": "integer"},
            "balance": {"type": "number"}}},
        "models.Transaction": {"type": "object", "properties": {
            "id": {"type": "integer"},
            "from_account": {"type": "integer"},
            "to_account": {"type": "integer"},
            "amount": {"type": "number"},
            "timestamp": {"type": "string", "example": "2024-03-01T12:00:00.000Z"},
            "note": {"type": "string"}}},
        "models.Comment": {"type": "object", "properties": {
            "id": {"type": "integer"},
            "username": {"type": "string"},
            "message": {"type": "string"}}},
        "models.Product": {"type": "object", "properties": {
            "id": {"type": "integer"},
            "name": {"type": "string"},
            "description": {"type": "string"}}},
        "services.AccountSummary": {"type": "object", "properties": {
            "id": {"type": "integer"},
            "balance": {"type": "number"}}},
        "services.AuditEvent": {"type": "object", "properties": {
            "event": {"type": "string"},
            "detail": {"type": "string"}}},
        "services.DebugInfo": {"type": "object", "properties": {
            "env": {"type": "object", "additionalProperties": {"type": "string"}},
            "note": {"type": "string"}}},
        "services.ErrorResponse": {"type": "object", "properties": {
            "error": {"type": "string"},
            "details": {"type": "object", "additionalProperties": {"type": "string"}}}},
        "services.UploadRequest": {"type": "object", "required": ["filename", "content"], "properties": {
            "filename": {"type": "string"},
            "content": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Campus Bank Lab API",
	Description:      "Intentionally vulnerable training service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
