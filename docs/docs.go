// Package docs holds the OpenAPI definition served at /swagger.
// Generated by swag; edit the handler annotations and re-run
// `swag init -g cmd/server/main.go` instead of editing this file.
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
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.loginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [
                    {
                        "description": "New user",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.registerRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "List users",
                "parameters": [
                    {"type": "integer", "description": "Items to skip", "name": "skip", "in": "query"},
                    {"type": "integer", "description": "Max items (capped at 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/auth/users/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Deactivate a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Fields to change",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.updateUserRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/clientes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["clientes"],
                "summary": "List clientes",
                "parameters": [
                    {"type": "boolean", "description": "Filter by active flag", "name": "ativo", "in": "query"},
                    {"type": "integer", "description": "Items to skip", "name": "skip", "in": "query"},
                    {"type": "integer", "description": "Max items (capped at 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Cliente"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clientes"],
                "summary": "Create a cliente",
                "parameters": [
                    {
                        "description": "Cliente details",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.createClienteRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Cliente"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "domain.Cliente": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "tipo_pessoa": {"type": "string"},
                "cpf_cnpj": {"type": "string"},
                "telefone": {"type": "string"},
                "email": {"type": "string"},
                "endereco": {"type": "string"},
                "cidade": {"type": "string"},
                "estado": {"type": "string"},
                "cep": {"type": "string"},
                "ativo": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "ativo": {"type": "boolean"},
                "is_admin": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.createClienteRequest": {
            "type": "object",
            "required": ["nome", "tipo_pessoa", "cpf_cnpj"],
            "properties": {
                "nome": {"type": "string"},
                "tipo_pessoa": {"type": "string", "enum": ["F", "J"]},
                "cpf_cnpj": {"type": "string"},
                "telefone": {"type": "string"},
                "email": {"type": "string"},
                "endereco": {"type": "string"},
                "cidade": {"type": "string"},
                "estado": {"type": "string"},
                "cep": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "senha"],
            "properties": {
                "email": {"type": "string"},
                "senha": {"type": "string"}
            }
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["nome", "email", "senha"],
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "senha": {"type": "string", "minLength": 6},
                "is_admin": {"type": "boolean"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "email": {"type": "string"},
                "senha": {"type": "string", "minLength": 6},
                "ativo": {"type": "boolean"},
                "is_admin": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "FleetLedger API",
	Description:      "Fleet, registry and accounting back office API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
