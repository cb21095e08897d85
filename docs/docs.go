// Package docs registers the OpenAPI description served at /swagger.
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
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/credentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/credentials"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/calculations/defaults": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Default inputs",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Inputs"}}}
            }
        },
        "/api/v1/calculations": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Partial inputs are merged over the defaults. The run is recorded unless record=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calculations"],
                "summary": "Run one calculation",
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/handlers.CalculationRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/api/v1/sweeps": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Evaluates the calculation once per heater power.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sweeps"],
                "summary": "Run a power sweep",
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/handlers.SweepRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/api/v1/sweeps/chart.pdf": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "tags": ["sweeps"],
                "summary": "Sweep chart (PDF)",
                "parameters": [
                    {"type": "number", "name": "start", "in": "query"},
                    {"type": "number", "name": "stop", "in": "query"},
                    {"type": "number", "name": "step", "in": "query"},
                    {"enum": ["stop", "skip"], "type": "string", "name": "policy", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/sweeps/table.xlsx": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["sweeps"],
                "summary": "Sweep workbook (XLSX)",
                "parameters": [
                    {"type": "number", "name": "start", "in": "query"},
                    {"type": "number", "name": "stop", "in": "query"},
                    {"type": "number", "name": "step", "in": "query"},
                    {"enum": ["stop", "skip"], "type": "string", "name": "policy", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/runs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "List runs",
                "parameters": [
                    {"type": "string", "name": "from", "in": "query"},
                    {"type": "string", "name": "to", "in": "query"},
                    {"enum": ["CALCULATION", "SWEEP"], "type": "string", "name": "kind", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/runs/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "Get run",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "credentials": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "models.PipeSpec": {
            "type": "object",
            "properties": {"diameter": {"type": "number"}, "length": {"type": "number"}, "roughness": {"type": "number"}}
        },
        "models.FluidState": {
            "type": "object",
            "properties": {
                "density": {"type": "number"},
                "viscosity": {"type": "number"},
                "thermal_expansion": {"type": "number"},
                "heat_capacity": {"type": "number"},
                "temperature": {"type": "number"},
                "speed": {"type": "number"}
            }
        },
        "models.HeaterSpec": {
            "type": "object",
            "properties": {"power": {"type": "number"}, "efficiency": {"type": "number"}}
        },
        "models.Inputs": {
            "type": "object",
            "properties": {
                "pipe": {"$ref": "#/definitions/models.PipeSpec"},
                "fluid": {"$ref": "#/definitions/models.FluidState"},
                "heater": {"$ref": "#/definitions/models.HeaterSpec"},
                "delta_pressure": {"type": "number"}
            }
        },
        "models.PowerRange": {
            "type": "object",
            "properties": {"start": {"type": "number"}, "stop": {"type": "number"}, "step": {"type": "number"}}
        },
        "handlers.CalculationRequest": {
            "type": "object",
            "properties": {
                "inputs": {"$ref": "#/definitions/models.Inputs"},
                "description": {"type": "string", "example": "baseline"},
                "record": {"type": "boolean"}
            }
        },
        "handlers.SweepRequest": {
            "type": "object",
            "properties": {
                "inputs": {"$ref": "#/definitions/models.Inputs"},
                "range": {"$ref": "#/definitions/models.PowerRange"},
                "powers": {"type": "array", "items": {"type": "number"}},
                "policy": {"type": "string", "example": "skip"},
                "keep_results": {"type": "boolean"},
                "record": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Oil heating API",
	Description:      "Thermo-hydraulic calculations for oil heated in a pipe, heater power sweeps and chart export.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
