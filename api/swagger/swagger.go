package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Scheduler API",
        "description": "Deterministic course timetable generation with natural-language constraints",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Schedule", "description": "Timetable generation and export"},
        {"name": "LLM", "description": "Schedule explanations"},
        {"name": "Catalog", "description": "Read-only section catalog"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/schedule/generate": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Generate a conflict-free timetable",
                "description": "Places locked courses first, then fills the remaining selection first-fit against the extracted constraints. Scheduling failures return 200 with success=false.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GenerateScheduleResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/export": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Export a timetable as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/llm/explain": {
            "post": {
                "tags": ["LLM"],
                "summary": "Explain a schedule or scheduling failure",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExplainRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ExplainResponse"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Upstream completion API failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/courses": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List distinct course identifiers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/sections": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List sections for one course",
                "parameters": [
                    {"name": "course", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown course", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"type": "object"},
                "meta": {"type": "object"}
            }
        },
        "GenerateScheduleRequest": {
            "type": "object",
            "required": ["selectedCourses"],
            "properties": {
                "selectedCourses": {"type": "array", "items": {"type": "string"}},
                "lockedCourses": {"type": "array", "items": {"type": "string"}},
                "constraintText": {"type": "string"}
            }
        },
        "GenerateScheduleResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "fail_reason": {"type": "string"},
                "fail_cause": {"type": "string", "enum": ["UNKNOWN_COURSE", "LOCKED_CONFLICT", "CONSTRAINT_EXHAUSTED", "SCHEDULE_CONFLICT"]},
                "constraints": {"$ref": "#/definitions/ConstraintSet"}
            }
        },
        "Section": {
            "type": "object",
            "properties": {
                "course": {"type": "string"},
                "day": {"type": "string"},
                "start_time": {"type": "string", "example": "09:00"},
                "end_time": {"type": "string", "example": "10:30"},
                "location": {"type": "string"}
            }
        },
        "ConstraintSet": {
            "type": "object",
            "properties": {
                "avoid_mornings": {"type": "boolean"},
                "avoid_evenings": {"type": "boolean"},
                "avoid_fridays": {"type": "boolean"},
                "preferred_days": {"type": "array", "items": {"type": "string"}},
                "time_window": {
                    "type": "object",
                    "properties": {
                        "earliest": {"type": "string"},
                        "latest": {"type": "string"}
                    }
                }
            }
        },
        "ExportScheduleRequest": {
            "type": "object",
            "required": ["schedule"],
            "properties": {
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "title": {"type": "string"}
            }
        },
        "ExplainRequest": {
            "type": "object",
            "required": ["userMessage"],
            "properties": {
                "userMessage": {"type": "string"},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "fail_reason": {"type": "string"}
            }
        },
        "ExplainResponse": {
            "type": "object",
            "properties": {
                "explanation": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Course Scheduler API",
	Description:      "Deterministic course timetable generation with natural-language constraints",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
