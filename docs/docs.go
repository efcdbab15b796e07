// Package docs holds the OpenAPI document served under /swagger.
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
    "paths": {
        "/auth/token": {
            "post": {
                "summary": "Exchange the organizer password for a bearer token",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/TokenInput"}}],
                "responses": {"200": {"description": "token issued"}, "401": {"description": "invalid password"}, "403": {"description": "token issuance disabled"}}
            }
        },
        "/players/count": {
            "get": {
                "summary": "Number of registered players",
                "responses": {"200": {"description": "count"}}
            }
        },
        "/players": {
            "post": {
                "summary": "Register a player",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterPlayerInput"}}],
                "responses": {"201": {"description": "player registered", "schema": {"$ref": "#/definitions/Player"}}}
            },
            "delete": {
                "summary": "Delete every player; matches must be deleted first",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "deleted"}, "409": {"description": "matches still reference players"}}
            }
        },
        "/matches": {
            "post": {
                "summary": "Report a match result",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/ReportMatchInput"}}],
                "responses": {"201": {"description": "recorded"}, "422": {"description": "unknown player"}}
            },
            "delete": {
                "summary": "Delete every match",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "deleted"}}
            }
        },
        "/standings": {
            "get": {
                "summary": "Standings, most wins first",
                "responses": {"200": {"description": "standings", "schema": {"type": "array", "items": {"$ref": "#/definitions/Standing"}}}}
            }
        },
        "/pairings": {
            "get": {
                "summary": "Next-round Swiss pairings",
                "responses": {"200": {"description": "pairings", "schema": {"type": "array", "items": {"$ref": "#/definitions/Pairing"}}}}
            }
        },
        "/summary": {
            "get": {
                "summary": "Player count, standings and pairings",
                "responses": {"200": {"description": "summary"}}
            }
        },
        "/standings/snapshot": {
            "post": {
                "summary": "Publish a standings snapshot to object storage",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "published"}, "503": {"description": "snapshots not configured"}}
            }
        }
    },
    "definitions": {
        "TokenInput": {"type": "object", "properties": {"password": {"type": "string"}}},
        "RegisterPlayerInput": {"type": "object", "properties": {"name": {"type": "string"}}},
        "ReportMatchInput": {"type": "object", "properties": {"winner_id": {"type": "integer"}, "loser_id": {"type": "integer"}}},
        "Player": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}},
        "Standing": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "wins": {"type": "integer"}, "matches": {"type": "integer"}}},
        "Pairing": {"type": "object", "properties": {"id1": {"type": "integer"}, "name1": {"type": "string"}, "id2": {"type": "integer"}, "name2": {"type": "string"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Swiss Tournament API",
	Description:      "Player registration, match reporting, standings and Swiss pairings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
