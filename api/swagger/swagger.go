package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SMA Dashboard API",
        "description": "Filtered, paginated list views with status workflows for the school HR dashboard.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Resources", "description": "List views, record detail and status transitions"},
        {"name": "Exports", "description": "Asynchronous CSV and PDF exports of list views"},
        {"name": "Observability", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Observability"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Observability"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Observability"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/metrics/summary": {
            "get": {
                "tags": ["Observability"],
                "summary": "Instrumentation snapshot",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/resources": {
            "get": {
                "tags": ["Resources"],
                "summary": "List resource descriptors",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {"type": "array", "items": {"$ref": "#/definitions/ResourceDescriptor"}}
                            }
                        }
                    }
                }
            }
        },
        "/api/v1/resources/{resource}": {
            "get": {
                "tags": ["Resources"],
                "summary": "List a resource page",
                "description": "Search matches any searchable field case-insensitively. filter[field]=value narrows on an exact value; an empty value or \"all\" leaves the field unconstrained.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "filter[status]", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer", "default": 1}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListEnvelope"}},
                    "400": {"description": "Unknown filter field", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown resource", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/resources/{resource}/{id}": {
            "get": {
                "tags": ["Resources"],
                "summary": "Get a record with its available actions",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/resources/{resource}/{id}/status": {
            "patch": {
                "tags": ["Resources"],
                "summary": "Transition a record to a new status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TransitionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload or unknown status", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Transition not allowed or record changed concurrently", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/resources/{resource}/{id}/history": {
            "get": {
                "tags": ["Resources"],
                "summary": "Status history of a record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "resource", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {"type": "array", "items": {"$ref": "#/definitions/AuditLog"}}
                            }
                        }
                    },
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/exports": {
            "get": {
                "tags": ["Exports"],
                "summary": "List the caller's export jobs",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Exports"],
                "summary": "Queue an export of a filtered list",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown resource", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/exports/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export job status",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/exports/{id}/download": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a finished export",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Missing token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Token invalid or expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ResourceDescriptor": {
            "type": "object",
            "properties": {
                "slug": {"type": "string"},
                "title": {"type": "string"},
                "page_size": {"type": "integer"},
                "searchable": {"type": "array", "items": {"type": "string"}},
                "fields": {"type": "array", "items": {"type": "string"}},
                "statuses": {"type": "array", "items": {"type": "string"}},
                "transitions": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"type": "string"}}
                }
            }
        },
        "ListItem": {
            "type": "object",
            "properties": {
                "record": {"type": "object"},
                "actions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "TransitionRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "note": {"type": "string", "maxLength": 500}
            },
            "required": ["status"]
        },
        "AuditLog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "action": {"type": "string"},
                "resource": {"type": "string"},
                "resource_id": {"type": "string"},
                "from_status": {"type": "string"},
                "to_status": {"type": "string"},
                "note": {"type": "string"},
                "actor_id": {"type": "string"},
                "actor_role": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "ExportRequest": {
            "type": "object",
            "properties": {
                "resource": {"type": "string"},
                "format": {"type": "string", "enum": ["csv", "pdf"]},
                "search": {"type": "string"},
                "filters": {"type": "object", "additionalProperties": {"type": "string"}}
            },
            "required": ["resource", "format"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/ListItem"}},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
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
