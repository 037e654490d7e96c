// Package docs registers the Swagger document served at /swagger/*any.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
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
        "/api/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/event.Event"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/event.CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/event.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            }
        },
        "/api/events/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Get an event with its participants",
                "parameters": [{"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/event.Detail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            },
            "put": {
                "description": "Partial update; only the supplied fields change.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Update an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/event.UpdateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/event.Event"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Events"],
                "summary": "Delete an event and its participants",
                "parameters": [{"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            }
        },
        "/api/events/{id}/participants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Participants"],
                "summary": "List the participants of an event",
                "parameters": [{"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/participant.Participant"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            }
        },
        "/api/events/{id}/participants/export": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["Participants"],
                "summary": "Download the participant roster of an event",
                "parameters": [
                    {"type": "integer", "description": "Event ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "csv (default), xlsx or pdf", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            }
        },
        "/api/participants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Participants"],
                "summary": "List participants",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/participant.Participant"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            },
            "post": {
                "description": "Registers a participant for an event if the event has a free seat",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Participants"],
                "summary": "Register a participant",
                "parameters": [
                    {"description": "Participant", "name": "participant", "in": "body", "required": true, "schema": {"$ref": "#/definitions/participant.CreateParticipantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/participant.Participant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            }
        },
        "/api/participants/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Participants"],
                "summary": "Get a participant",
                "parameters": [{"type": "integer", "description": "Participant ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/participant.Participant"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            },
            "put": {
                "description": "Partial update. Moving to another event re-checks that event's capacity.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Participants"],
                "summary": "Update a participant",
                "parameters": [
                    {"type": "integer", "description": "Participant ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "participant", "in": "body", "required": true, "schema": {"$ref": "#/definitions/participant.UpdateParticipantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/participant.Participant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Participants"],
                "summary": "Delete a participant",
                "parameters": [{"type": "integer", "description": "Participant ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.Response"}}
                }
            }
        }
    },
    "definitions": {
        "apperror.Response": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "event.CreateEventRequest": {
            "type": "object",
            "required": ["title", "start_date", "end_date"],
            "properties": {
                "title": {"type": "string", "maxLength": 100},
                "description": {"type": "string"},
                "start_date": {"type": "string", "example": "2025-03-01T09:00:00"},
                "end_date": {"type": "string", "example": "2025-03-01T17:00:00"},
                "location": {"type": "string", "maxLength": 200},
                "max_participants": {"type": "integer", "minimum": 1}
            }
        },
        "event.UpdateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 100},
                "description": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "location": {"type": "string", "maxLength": 200},
                "max_participants": {"type": "integer", "minimum": 1}
            }
        },
        "event.Event": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "location": {"type": "string"},
                "max_participants": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "event.Detail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "location": {"type": "string"},
                "max_participants": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/participant.Participant"}}
            }
        },
        "participant.CreateParticipantRequest": {
            "type": "object",
            "required": ["name", "email", "event_id"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "email": {"type": "string", "maxLength": 100},
                "phone": {"type": "string", "maxLength": 20},
                "event_id": {"type": "integer"}
            }
        },
        "participant.UpdateParticipantRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "email": {"type": "string", "maxLength": 100},
                "phone": {"type": "string", "maxLength": 20},
                "event_id": {"type": "integer"}
            }
        },
        "participant.Participant": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "registration_date": {"type": "string"},
                "event_id": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Registration API",
	Description:      "Events and participants with capacity-checked registration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
