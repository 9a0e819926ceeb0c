// Package docs contém a especificação OpenAPI gerada por swag.
// Regenerar com: swag init -g cmd/api/main.go -o docs
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
        "/aventuras": {
            "get": {
                "produces": ["application/json"],
                "tags": ["aventuras"],
                "summary": "Feed unificado de aventuras",
                "parameters": [
                    {
                        "enum": ["eventos", "trilhas", "caronas", "viagens"],
                        "type": "string",
                        "description": "Restringir a um tipo",
                        "name": "tipo",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/dto.AventuraResponse"}
                        }
                    }
                }
            }
        },
        "/aventuras/busca": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["aventuras"],
                "summary": "Busca paginada de aventuras",
                "parameters": [
                    {
                        "enum": ["cidade", "estado", "todas"],
                        "type": "string",
                        "description": "Filtro de localização",
                        "name": "filtro",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Página (a partir de 1)",
                        "name": "pagina",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.BuscaResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/caronas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["caronas"],
                "summary": "Listar caronas",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filtrar por ID de usuário",
                        "name": "usuario",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/dto.CaronaResponse"}
                        }
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["caronas"],
                "summary": "Oferecer carona",
                "parameters": [
                    {
                        "description": "Dados da carona",
                        "name": "carona",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CriarCaronaRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/dto.CaronaResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/caronas/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["caronas"],
                "summary": "Buscar carona",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID da carona",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.CaronaResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/eventos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Listar eventos",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filtrar por ID de usuário",
                        "name": "usuario",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/dto.EventoResponse"}
                        }
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Publicar evento",
                "parameters": [
                    {
                        "description": "Dados do evento",
                        "name": "evento",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CriarEventoRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/dto.EventoResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/eventos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["eventos"],
                "summary": "Buscar evento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID do evento",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.EventoResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/perfil": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["perfil"],
                "summary": "Buscar perfil",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.PerfilResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["perfil"],
                "summary": "Atualizar perfil",
                "parameters": [
                    {
                        "description": "Dados do perfil",
                        "name": "perfil",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.AtualizarPerfilRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.PerfilResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/trilhas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["trilhas"],
                "summary": "Listar trilhas",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filtrar por ID de usuário",
                        "name": "usuario",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/dto.TrilhaResponse"}
                        }
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["trilhas"],
                "summary": "Publicar trilha",
                "parameters": [
                    {
                        "description": "Dados da trilha",
                        "name": "trilha",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CriarTrilhaRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/dto.TrilhaResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/trilhas/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["trilhas"],
                "summary": "Buscar trilha",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID da trilha",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.TrilhaResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/viagens": {
            "get": {
                "produces": ["application/json"],
                "tags": ["viagens"],
                "summary": "Listar viagens",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filtrar por ID de usuário",
                        "name": "usuario",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/dto.ViagemResponse"}
                        }
                    }
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["viagens"],
                "summary": "Buscar parceiros de viagem",
                "parameters": [
                    {
                        "description": "Dados da viagem",
                        "name": "viagem",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CriarViagemRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/dto.ViagemResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/viagens/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["viagens"],
                "summary": "Buscar viagem",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID da viagem",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.ViagemResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Vou Junto API",
	Description:      "API de aventuras compartilhadas: eventos, trilhas, caronas e parceiros de viagem",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
