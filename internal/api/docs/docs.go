// Package docs holds the Swagger specification of the HTTP API, in the layout swag init generates.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "It works!",
                        "schema": {"type": "string"}
                    }
                }
            }
        },
        "/list-producer-winners": {
            "get": {
                "description": "Producers with the smallest and the largest gap between two consecutive wins",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Producer award intervals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/schema.IntervalReport"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    }
                }
            }
        },
        "/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List movies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/schema.Movie"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    }
                }
            }
        },
        "/populate": {
            "post": {
                "description": "Semicolon-delimited file with the columns year;title;studios;producers;winner",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Upload movie list",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Movie list (.csv)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/schema.PopulateResult"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Bad Request"},
                "message": {"type": "string", "example": "File is required"},
                "statusCode": {"type": "integer", "example": 400}
            }
        },
        "schema.IntervalReport": {
            "type": "object",
            "properties": {
                "max": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/schema.ProducerInterval"}
                },
                "min": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/schema.ProducerInterval"}
                }
            }
        },
        "schema.Movie": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "producers": {"type": "string"},
                "studios": {"type": "string"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"},
                "winner": {"type": "boolean"},
                "year": {"type": "integer"}
            }
        },
        "schema.PopulateResult": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "schema.ProducerInterval": {
            "type": "object",
            "properties": {
                "followingWin": {"type": "integer"},
                "interval": {"type": "integer"},
                "previousWin": {"type": "integer"},
                "producer": {"type": "string"}
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
	Title:            "Awardgap API",
	Description:      "Ingest award movie lists and report producer win intervals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
