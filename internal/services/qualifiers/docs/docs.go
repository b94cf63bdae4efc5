// Package docs registers the lookup API swagger document with swag
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
        "/examinees/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Qualifiers"],
                "summary": "Examinee by application id",
                "parameters": [
                    {"type": "string", "description": "7 digit application id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.Examinee"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/http.Envelope"}},
                    "422": {"description": "malformed id", "schema": {"$ref": "#/definitions/http.Envelope"}}
                }
            }
        },
        "/test-centers/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Qualifiers"],
                "summary": "Test center with examinee count",
                "parameters": [
                    {"type": "string", "description": "4 digit test center code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.TestCenter"}},
                    "404": {"description": "not found", "schema": {"$ref": "#/definitions/http.Envelope"}}
                }
            }
        },
        "/test-centers/{code}/examinees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Qualifiers"],
                "summary": "Examinees of a test center ordered by room and seat",
                "parameters": [
                    {"type": "string", "description": "4 digit test center code", "name": "code", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "description": "1 based page", "name": "page", "in": "query"},
                    {"type": "integer", "default": 50, "description": "page size, at most 200", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Examinee"}}},
                    "400": {"description": "bad paging", "schema": {"$ref": "#/definitions/http.Envelope"}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Qualifiers"],
                "summary": "Stored examinee and test center totals",
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.Counts"}}
                }
            }
        },
        "/meta/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/http.HealthResponse"}}}
            }
        },
        "/meta/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Readiness probe with dependency checks",
                "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/http.ReadyResponse"}}}
            }
        },
        "/meta/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/version.BuildInfo"}}}
            }
        },
        "/meta/service": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/http.ServiceResponse"}}}
            }
        }
    },
    "definitions": {
        "domain.Counts": {
            "type": "object",
            "properties": {
                "examinees": {"type": "integer", "example": 1200},
                "test_centers": {"type": "integer", "example": 12}
            }
        },
        "domain.TestCenter": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 1234},
                "name": {"type": "string", "example": "MANILA HIGH SCHOOL"},
                "address": {"type": "string", "example": "TAFT AVENUE, MANILA"},
                "examinees": {"type": "integer", "example": 42}
            }
        },
        "domain.Examinee": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1234567},
                "surname": {"type": "string", "example": "Dela Cruz"},
                "first_name": {"type": "string", "example": "Juan"},
                "middle_name": {"type": "string", "example": "Santos"},
                "seat_number": {"type": "integer", "example": 123},
                "time": {"type": "string", "example": "7:30 AM"},
                "room_assignment": {"type": "integer", "example": 12},
                "test_center": {"$ref": "#/definitions/domain.TestCenter"}
            }
        },
        "http.Page": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "page_size": {"type": "integer"}
            }
        },
        "http.Envelope": {
            "type": "object",
            "properties": {
                "status_code": {"type": "integer", "example": 404},
                "status": {"type": "string", "example": "Not Found"},
                "code": {"type": "integer"},
                "error": {"type": "string", "example": "examinee 1234567 not found"},
                "field": {"type": "string"},
                "request_id": {"type": "string"},
                "data": {},
                "page": {"$ref": "#/definitions/http.Page"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "service": {"type": "string"},
                "started": {"type": "string"},
                "now": {"type": "string"}
            }
        },
        "http.ReadyCheck": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "status": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "http.ReadyResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "checks": {"type": "array", "items": {"$ref": "#/definitions/http.ReadyCheck"}},
                "now": {"type": "string"}
            }
        },
        "http.ServiceResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "started": {"type": "string"},
                "uptime": {"type": "integer"}
            }
        },
        "version.BuildInfo": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "version": {"type": "string"},
                "commit": {"type": "string"},
                "date": {"type": "string"},
                "go": {"type": "string"}
            }
        }
    }
}`

// InstanceName is the swag registry key of this document
const InstanceName = "qualifiers"

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "NCE qualifiers lookup API",
	Description:      "Read-only lookups over imported examination qualifiers.",
	InfoInstanceName: InstanceName,
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
