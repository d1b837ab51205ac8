// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/todo-list/main.go
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
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/todos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Get every todo",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ToDos"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/controller.Error"}}
                }
            }
        },
        "/todos/{id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Update a todo",
                "parameters": [
                    {"type": "string", "description": "Todo id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to merge", "name": "todo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UpdateToDoDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.ToDo"}},
                    "400": {"description": "Invalid todo", "schema": {"$ref": "#/definitions/controller.Error"}},
                    "404": {"description": "Todo not found", "schema": {"$ref": "#/definitions/controller.Error"}}
                }
            },
            "delete": {
                "tags": ["todos"],
                "summary": "Delete a todo",
                "parameters": [
                    {"type": "string", "description": "Todo id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Todo not found", "schema": {"$ref": "#/definitions/controller.Error"}}
                }
            }
        },
        "/users/{userId}/todos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Get the todos of a user",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ToDos"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/controller.Error"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Create a todo",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "userId", "in": "path", "required": true},
                    {"description": "Todo data", "name": "todo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateToDoDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/entity.ToDo"}},
                    "400": {"description": "Invalid todo", "schema": {"$ref": "#/definitions/controller.Error"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/controller.Error"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todos"],
                "summary": "Merge a batch of partial todos into a user's collection",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "userId", "in": "path", "required": true},
                    {"description": "Partial todos keyed by id", "name": "updates", "in": "body", "required": true, "schema": {"type": "object", "additionalProperties": {"$ref": "#/definitions/model.UpdateToDoDTO"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ToDos"}},
                    "400": {"description": "Invalid todo", "schema": {"$ref": "#/definitions/controller.Error"}},
                    "404": {"description": "User or todo not found", "schema": {"$ref": "#/definitions/controller.Error"}}
                }
            }
        },
        "/users/{userId}/todo-list": {
            "get": {
                "produces": ["text/html"],
                "tags": ["todo-list"],
                "summary": "Todo list form",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML form", "schema": {"type": "string"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/controller.Error"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["todo-list"],
                "summary": "Submit the todo list form",
                "parameters": [
                    {"type": "string", "description": "User id", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML form", "schema": {"type": "string"}},
                    "400": {"description": "Invalid form", "schema": {"$ref": "#/definitions/controller.Error"}},
                    "404": {"description": "User or todo not found", "schema": {"$ref": "#/definitions/controller.Error"}}
                }
            }
        },
        "/players": {
            "get": {
                "produces": ["text/html"],
                "tags": ["todo-list"],
                "summary": "Player list",
                "parameters": [
                    {"type": "string", "description": "Viewing user id", "name": "X-User-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "HTML list", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "controller.Error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "entity.ToDo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"},
                "isDone": {"type": "boolean"},
                "userId": {"type": "string"}
            }
        },
        "model.ToDos": {
            "type": "object",
            "additionalProperties": {"$ref": "#/definitions/entity.ToDo"}
        },
        "model.CreateToDoDTO": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "isDone": {"type": "boolean"}
            }
        },
        "model.UpdateToDoDTO": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "isDone": {"type": "boolean"}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "flagStore": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "users": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "events": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/todo-list",
	Schemes:          []string{},
	Title:            "todo-list API",
	Description:      "Per-user to-do lists kept in a namespaced flag store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
