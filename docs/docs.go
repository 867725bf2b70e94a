// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/amount-in-words": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Convert an amount to Indian-system words",
                "parameters": [
                    {"type": "string", "description": "Amount in rupees", "name": "amount", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Amount in words", "schema": {"$ref": "#/definitions/handler.AmountInWordsResponse"}},
                    "400": {"description": "Invalid amount", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/invoices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "List invoices",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "profile_id", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Invoices", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Create an invoice",
                "parameters": [
                    {"description": "Invoice", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateInvoiceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created invoice", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "409": {"description": "Duplicate invoice number", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/invoices/compute": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Compute invoice totals without saving",
                "parameters": [
                    {"description": "Line items and adjustments", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ComputeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Totals", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Unresolvable place of supply", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/invoices/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Get an invoice",
                "parameters": [
                    {"type": "string", "description": "Invoice ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Invoice", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Invoice not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/invoices/{id}/status": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Change invoice status",
                "parameters": [
                    {"type": "string", "description": "Invoice ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Requested status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TransitionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated invoice", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "409": {"description": "Version conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "422": {"description": "Transition not allowed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/recurring-profiles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["recurring-profiles"],
                "summary": "List recurring profiles",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Profiles", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["recurring-profiles"],
                "summary": "Create a recurring profile",
                "parameters": [
                    {"description": "Profile", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateProfileRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created profile", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/recurring-profiles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["recurring-profiles"],
                "summary": "Get a recurring profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Profile", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Profile not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/recurring-profiles/{id}/generations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["recurring-profiles"],
                "summary": "List generated invoices of a profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Generation log", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Profile not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/recurring-profiles/{id}/pause": {
            "post": {
                "produces": ["application/json"],
                "tags": ["recurring-profiles"],
                "summary": "Pause a recurring profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Profile", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "422": {"description": "Transition not allowed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/recurring-profiles/{id}/resume": {
            "post": {
                "produces": ["application/json"],
                "tags": ["recurring-profiles"],
                "summary": "Resume a paused recurring profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Profile", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "422": {"description": "Transition not allowed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/recurring-profiles/{id}/stop": {
            "post": {
                "produces": ["application/json"],
                "tags": ["recurring-profiles"],
                "summary": "Stop a recurring profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Profile", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "422": {"description": "Transition not allowed", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/recurring-profiles/{id}/tick": {
            "post": {
                "produces": ["application/json"],
                "tags": ["recurring-profiles"],
                "summary": "Run the scheduler once for a profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Evaluation date (YYYY-MM-DD)", "name": "as_of", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Tick outcome", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}},
                    "404": {"description": "Profile not found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        }
    },
    "definitions": {
        "handler.AmountInWordsResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "101000.50"},
                "words": {"type": "string", "example": "One Lakh One Thousand Rupees and Fifty Paise only"}
            }
        },
        "handler.LineItemRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "quantity": {"type": "string", "example": "2"},
                "unit_rate": {"type": "string", "example": "500.00"},
                "tax_rate_percent": {"type": "string", "example": "18"}
            }
        },
        "handler.DiscountRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string", "example": "10"},
                "mode": {"type": "string", "enum": ["percentage", "fixed"]}
            }
        },
        "handler.AdditionalTaxRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["tds", "tcs"]},
                "rate_percent": {"type": "string", "example": "2"},
                "amount": {"type": "string"}
            }
        },
        "handler.ComputeRequest": {
            "type": "object",
            "properties": {
                "line_items": {"type": "array", "items": {"$ref": "#/definitions/handler.LineItemRequest"}},
                "discount": {"$ref": "#/definitions/handler.DiscountRequest"},
                "additional_tax": {"$ref": "#/definitions/handler.AdditionalTaxRequest"},
                "adjustment": {"type": "string"},
                "place_of_supply": {"type": "string", "example": "09"},
                "billing_address": {"type": "string"},
                "shipping_address": {"type": "string"}
            }
        },
        "handler.CreateInvoiceRequest": {
            "type": "object",
            "required": ["customer_name"],
            "properties": {
                "number": {"type": "string"},
                "customer_name": {"type": "string"},
                "issue_date": {"type": "string", "example": "2024-01-31"},
                "due_date": {"type": "string"},
                "payment_terms_days": {"type": "integer"},
                "send_immediately": {"type": "boolean"},
                "line_items": {"type": "array", "items": {"$ref": "#/definitions/handler.LineItemRequest"}},
                "discount": {"$ref": "#/definitions/handler.DiscountRequest"},
                "additional_tax": {"$ref": "#/definitions/handler.AdditionalTaxRequest"},
                "adjustment": {"type": "string"},
                "place_of_supply": {"type": "string"},
                "billing_address": {"type": "string"},
                "shipping_address": {"type": "string"}
            }
        },
        "handler.TransitionRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "example": "sent"},
                "expected_version": {"type": "integer"}
            }
        },
        "handler.CreateProfileRequest": {
            "type": "object",
            "required": ["name", "customer_name", "line_items", "frequency", "start_date"],
            "properties": {
                "name": {"type": "string"},
                "customer_name": {"type": "string"},
                "line_items": {"type": "array", "items": {"$ref": "#/definitions/handler.LineItemRequest"}},
                "frequency": {"type": "string", "enum": ["daily", "weekly", "monthly", "yearly"]},
                "start_date": {"type": "string", "example": "2024-01-31"},
                "end_date": {"type": "string"},
                "never_expires": {"type": "boolean"},
                "auto_send": {"type": "boolean"},
                "payment_terms_days": {"type": "integer"},
                "invoice_prefix": {"type": "string"},
                "place_of_supply": {"type": "string"},
                "billing_address": {"type": "string"},
                "shipping_address": {"type": "string"}
            }
        },
        "handler.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "meta": {"type": "object"}
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "billkit API",
	Description:      "Invoice totals, amount in words, invoice lifecycle and recurring billing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
