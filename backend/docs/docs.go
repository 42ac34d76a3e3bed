// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with `swag init -g backend/main.go -o backend/docs` after
// changing handler annotations.
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
        "/auth/register": {
            "post": {
                "description": "Creates a new user account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration data", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.RegisterInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Authenticate by username or email and return JWT token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/habits": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns the caller's habits ordered by id, each with its stats",
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "List habits",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Create habit",
                "parameters": [
                    {"description": "Habit data", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.HabitInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/habits/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns a habit with fresh stats and its interactive window",
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Get habit",
                "parameters": [
                    {"type": "integer", "description": "Habit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Update habit",
                "parameters": [
                    {"type": "integer", "description": "Habit ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.HabitInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "Delete habit",
                "parameters": [
                    {"type": "integer", "description": "Habit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/habits/{id}/calendar": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns every day of the month with its state and whether it accepts clicks",
                "produces": ["application/json"],
                "tags": ["calendar"],
                "summary": "Habit calendar month",
                "parameters": [
                    {"type": "integer", "description": "Habit ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Year, defaults to current", "name": "year", "in": "query"},
                    {"type": "integer", "description": "Month 1-12, defaults to current", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Sets a day to done, not_done or none and returns the recomputed stats",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calendar"],
                "summary": "Update one calendar day",
                "parameters": [
                    {"type": "integer", "description": "Habit ID", "name": "id", "in": "path", "required": true},
                    {"description": "Day update", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/calendar.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/calendar.UpdateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/calendar.UpdateResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/calendar.UpdateResponse"}}
                }
            }
        },
        "/progress/overview": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Returns streaks and scores of every habit plus totals",
                "produces": ["application/json"],
                "tags": ["progress"],
                "summary": "Get progress overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProgressOverview"}}
                }
            }
        }
    },
    "definitions": {
        "calendar.UpdateRequest": {
            "type": "object",
            "required": ["action", "day", "month", "year"],
            "properties": {
                "action": {"type": "string", "enum": ["done", "not_done", "none"]},
                "day": {"type": "integer", "maximum": 31, "minimum": 1},
                "month": {"type": "integer", "maximum": 12, "minimum": 1},
                "year": {"type": "integer", "minimum": 1}
            }
        },
        "calendar.UpdateResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "new_state": {"type": "string"},
                "message": {"type": "string"},
                "stats": {"$ref": "#/definitions/progress.Stats"}
            }
        },
        "controllers.HabitInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "color": {"type": "string"},
                "frequency": {"type": "integer", "enum": [1, 7, 30]},
                "duration_days": {"type": "integer", "minimum": 0},
                "is_unlimited": {"type": "boolean"},
                "start_date": {"type": "string"}
            }
        },
        "controllers.LoginInput": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "controllers.RegisterInput": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8}
            }
        },
        "models.HabitProgress": {
            "type": "object",
            "properties": {
                "habit_id": {"type": "integer"},
                "name": {"type": "string"},
                "color": {"type": "string"},
                "current_streak": {"type": "integer"},
                "best_streak": {"type": "integer"},
                "score": {"type": "integer"}
            }
        },
        "models.ProgressOverview": {
            "type": "object",
            "properties": {
                "total_habits": {"type": "integer"},
                "top_current_streak": {"type": "integer"},
                "top_best_streak": {"type": "integer"},
                "average_score": {"type": "number"},
                "habits": {"type": "array", "items": {"$ref": "#/definitions/models.HabitProgress"}}
            }
        },
        "progress.Stats": {
            "type": "object",
            "properties": {
                "current_streak": {"type": "integer"},
                "best_streak": {"type": "integer"},
                "score": {"type": "integer"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "details": {}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "meta": {}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Habit Tracker API",
	Description:      "Habits, daily completion calendar and progress statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
