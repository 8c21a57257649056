// Package docs holds the swagger description of the HTTP API, served under
// /swagger by gin-swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Backend Team"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Config"],
                "summary": "Server configuration",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ConfigResponse"}}}
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Config"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HealthResponse"}}}
            }
        },
        "/games": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "List games",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.GamesResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Create a game",
                "parameters": [
                    {"description": "Mode and difficulty", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/http.CreateGameRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.GameResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/games/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Get a game",
                "parameters": [{"type": "string", "description": "Game code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.GameResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Game"],
                "summary": "Delete a game",
                "parameters": [{"type": "string", "description": "Game code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/games/{code}/legal-moves": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Legal moves",
                "parameters": [
                    {"type": "string", "description": "Game code", "name": "code", "in": "path", "required": true},
                    {"type": "string", "description": "black or white", "name": "side", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.LegalMovesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/games/{code}/move": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Play a move",
                "parameters": [
                    {"type": "string", "description": "Game code", "name": "code", "in": "path", "required": true},
                    {"description": "Move", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.MoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/games/{code}/bot-move": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Let the computer move",
                "parameters": [{"type": "string", "description": "Game code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/games/{code}/hint": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Hint",
                "parameters": [
                    {"type": "string", "description": "Game code", "name": "code", "in": "path", "required": true},
                    {"type": "string", "description": "black or white", "name": "side", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/games/{code}/reset": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Reset a game",
                "parameters": [
                    {"type": "string", "description": "Game code", "name": "code", "in": "path", "required": true},
                    {"description": "Mode and difficulty", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/http.CreateGameRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.GameResponse"}}}
            }
        },
        "/games/{code}/score": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Score",
                "parameters": [{"type": "string", "description": "Game code", "name": "code", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ws": {
            "get": {
                "tags": ["Realtime"],
                "summary": "Room event stream",
                "parameters": [{"type": "string", "description": "Room code", "name": "room_code", "in": "query", "required": true}],
                "responses": {}
            }
        }
    },
    "definitions": {
        "http.CreateGameRequest": {
            "type": "object",
            "properties": {
                "mode": {"type": "string", "enum": ["cpu", "player", "pvp", "two-player"], "example": "cpu"},
                "difficulty": {"type": "string", "enum": ["easy", "medium", "hard"], "example": "medium"}
            }
        },
        "http.MoveRequest": {
            "type": "object",
            "required": ["side", "row", "col"],
            "properties": {
                "side": {"type": "string", "enum": ["black", "white"], "example": "black"},
                "row": {"type": "integer", "maximum": 7, "minimum": 0, "example": 2},
                "col": {"type": "integer", "maximum": 7, "minimum": 0, "example": 3}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "http.GameResponse": {
            "type": "object",
            "properties": {"game": {"type": "object"}}
        },
        "http.GamesResponse": {
            "type": "object",
            "properties": {"games": {"type": "array", "items": {"type": "object"}}}
        },
        "http.LegalMovesResponse": {
            "type": "object",
            "properties": {
                "side": {"type": "string"},
                "moves": {"type": "array", "items": {"type": "object"}}
            }
        },
        "http.ConfigResponse": {
            "type": "object",
            "properties": {
                "config": {"type": "object"},
                "depths": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "games": {"type": "integer"},
                "searches": {"type": "integer"},
                "nodes": {"type": "integer"}
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
	Title:            "Othello API",
	Description:      "Othello rules engine and minimax opponent over HTTP and websocket (Go + Gin)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
