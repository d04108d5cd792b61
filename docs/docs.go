// Package docs registers the OpenAPI description served under /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/auth/token": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange the owner passphrase for a bearer token",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"passphrase": {"type": "string"}}}}],
                "responses": {"200": {"description": "token"}, "401": {"description": "wrong passphrase"}, "403": {"description": "login not configured"}}
            }
        },
        "/weeks/current": {
            "get": {"tags": ["weeks"], "summary": "Open the current ISO week", "responses": {"200": {"description": "week view"}}}
        },
        "/weeks/{week}": {
            "get": {
                "tags": ["weeks"],
                "summary": "Open a week, refreshing the derived ratings of its past days",
                "parameters": [{"in": "path", "name": "week", "type": "string", "required": true}],
                "responses": {"200": {"description": "week view"}, "400": {"description": "invalid week"}}
            },
            "delete": {
                "tags": ["weeks"],
                "summary": "Delete the slots, checkmarks and ratings of a week",
                "parameters": [{"in": "path", "name": "week", "type": "string", "required": true}],
                "responses": {"204": {"description": "cleared"}}
            }
        },
        "/weeks/{week}/navigate": {
            "get": {
                "tags": ["weeks"],
                "summary": "Resolve the week offset weeks away",
                "parameters": [
                    {"in": "path", "name": "week", "type": "string", "required": true},
                    {"in": "query", "name": "offset", "type": "integer"}
                ],
                "responses": {"200": {"description": "target week"}}
            }
        },
        "/weeks/{week}/summary": {
            "get": {
                "tags": ["weeks"],
                "summary": "Weekly statistics",
                "parameters": [{"in": "path", "name": "week", "type": "string", "required": true}],
                "responses": {"200": {"description": "summary"}}
            }
        },
        "/weeks/{week}/recalculate": {
            "post": {
                "tags": ["weeks"],
                "summary": "Rescore every past day of the week",
                "parameters": [{"in": "path", "name": "week", "type": "string", "required": true}],
                "responses": {"200": {"description": "daily scores"}}
            }
        },
        "/weeks/{week}/slots/{day}/{block}": {
            "get": {
                "tags": ["slots"],
                "summary": "Read one slot",
                "parameters": [
                    {"in": "path", "name": "week", "type": "string", "required": true},
                    {"in": "path", "name": "day", "type": "string", "required": true},
                    {"in": "path", "name": "block", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "slot"}}
            },
            "put": {
                "tags": ["slots"],
                "summary": "Store the text of one slot",
                "parameters": [
                    {"in": "path", "name": "week", "type": "string", "required": true},
                    {"in": "path", "name": "day", "type": "string", "required": true},
                    {"in": "path", "name": "block", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"content": {"type": "string"}}}}
                ],
                "responses": {"200": {"description": "slot"}, "400": {"description": "invalid slot"}}
            }
        },
        "/weeks/{week}/slots/{day}/{block}/toggle": {
            "post": {
                "tags": ["slots"],
                "summary": "Flip the completion mark of a slot and rescore its day",
                "parameters": [
                    {"in": "path", "name": "week", "type": "string", "required": true},
                    {"in": "path", "name": "day", "type": "string", "required": true},
                    {"in": "path", "name": "block", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "toggle result"}}
            }
        },
        "/habits": {
            "get": {"tags": ["habits"], "summary": "List habits", "responses": {"200": {"description": "habits"}}},
            "post": {
                "tags": ["habits"],
                "summary": "Add a habit",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"name": {"type": "string"}, "score": {"type": "integer"}}}}],
                "responses": {"201": {"description": "habit"}, "400": {"description": "invalid name"}}
            }
        },
        "/habits/{id}": {
            "get": {"tags": ["habits"], "summary": "Read a habit", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "habit"}, "404": {"description": "not found"}}},
            "put": {
                "tags": ["habits"],
                "summary": "Change name, score or position",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"name": {"type": "string"}, "score": {"type": "integer"}, "sort_order": {"type": "integer"}}}}
                ],
                "responses": {"200": {"description": "habit"}, "404": {"description": "not found"}}
            },
            "delete": {"tags": ["habits"], "summary": "Delete a habit and its checkmarks", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"204": {"description": "deleted"}}}
        },
        "/weeks/{week}/habits/{id}/checks/{day}/toggle": {
            "post": {
                "tags": ["habits"],
                "summary": "Flip a habit checkmark and rescore the day",
                "parameters": [
                    {"in": "path", "name": "week", "type": "string", "required": true},
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "path", "name": "day", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "check result"}, "404": {"description": "unknown habit"}}
            }
        },
        "/weeks/{week}/ratings/{day}": {
            "get": {
                "tags": ["ratings"],
                "summary": "Read a day's rating",
                "parameters": [
                    {"in": "path", "name": "week", "type": "string", "required": true},
                    {"in": "path", "name": "day", "type": "string", "required": true}
                ],
                "responses": {"200": {"description": "rating"}}
            },
            "put": {
                "tags": ["ratings"],
                "summary": "Store a manual rating; an empty value clears it",
                "parameters": [
                    {"in": "path", "name": "week", "type": "string", "required": true},
                    {"in": "path", "name": "day", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"value": {"type": "string"}}}}
                ],
                "responses": {"200": {"description": "rating"}, "422": {"description": "rejected value"}}
            },
            "delete": {
                "tags": ["ratings"],
                "summary": "Remove a day's rating",
                "parameters": [
                    {"in": "path", "name": "week", "type": "string", "required": true},
                    {"in": "path", "name": "day", "type": "string", "required": true}
                ],
                "responses": {"204": {"description": "removed"}}
            }
        },
        "/palette": {
            "get": {
                "tags": ["palette"],
                "summary": "Colour assigned to a slot text",
                "parameters": [{"in": "query", "name": "text", "type": "string"}],
                "responses": {"200": {"description": "colour"}}
            }
        },
        "/planner": {
            "delete": {"tags": ["planner"], "summary": "Delete every slot, checkmark, rating and habit", "responses": {"204": {"description": "cleared"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Kanso Planner API",
	Description:      "Weekly planner with time slots, weighted habits and derived daily ratings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
