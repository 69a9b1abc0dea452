// Package api holds the Swagger document served at /docs.
//
// The document follows the swag annotations on the handlers and has to be
// updated together with them.
package api

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
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "description": "Returns the application health and, if not healthy, an error",
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/version.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "description": "Returns the metrics of the backend in the Prometheus text format",
                "tags": [
                    "General"
                ],
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.RootResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Permanently deletes all transactions, budget overrides and settings. Settings fall back to the configured defaults.",
                "tags": [
                    "v1"
                ],
                "summary": "Delete everything",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'",
                        "name": "confirm",
                        "in": "query"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns a list of transactions, newest first",
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Transactions in this month, YYYY-MM format",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by amount",
                        "name": "amount",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Description contains this string",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "The offset of the first Transaction returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of Transactions to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "description": "Creates transactions from the list of submitted transaction data. The category is derived from the description. Either all transactions are created or none. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error and nothing has been stored.",
                "tags": [
                    "Transactions"
                ],
                "summary": "Create transactions",
                "parameters": [
                    {
                        "description": "Transactions",
                        "name": "transactions",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.TransactionEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "description": "Returns a specific transaction",
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a transaction",
                "tags": [
                    "Transactions"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/import": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "description": "Imports transactions from a CSV file with the columns Date, Description and Amount. Transactions are categorized by their description. If any row is malformed, nothing is imported.",
                "tags": [
                    "Import"
                ],
                "summary": "Import CSV",
                "parameters": [
                    {
                        "type": "file",
                        "description": "File to import",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ImportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ImportResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ImportResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Import"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/categories": {
            "get": {
                "description": "Returns all categories and the keywords that assign them. Descriptions matching no keyword are categorized as Other.",
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budget": {
            "get": {
                "description": "Returns the budget configuration and the effective limit for every category",
                "tags": [
                    "Budget"
                ],
                "summary": "Get budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Compute the limits for this month, YYYY-MM format",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates the monthly budget and the limit overrides. Only values to be updated need to be specified. Setting an override to null removes it.",
                "tags": [
                    "Budget"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Compute the limits for this month, YYYY-MM format",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budget"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/settings": {
            "get": {
                "description": "Returns income, monthly budget and debt score",
                "tags": [
                    "Settings"
                ],
                "summary": "Get settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SettingsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SettingsResponse"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates the settings. Only values to be updated need to be specified.",
                "tags": [
                    "Settings"
                ],
                "summary": "Update settings",
                "parameters": [
                    {
                        "description": "Settings",
                        "name": "settings",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SettingsEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SettingsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SettingsResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/v1.SettingsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SettingsResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Settings"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/dashboard": {
            "get": {
                "description": "Returns the spending summary, budget evaluation, financial health score and recommendations",
                "tags": [
                    "Dashboard"
                ],
                "summary": "Get dashboard",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Analyze this month, YYYY-MM format. Defaults to all transactions",
                        "name": "month",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Dashboard"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/simulations": {
            "post": {
                "description": "Projects total spend and savings after reducing the spend in one category. Nothing is stored.",
                "tags": [
                    "Simulations"
                ],
                "summary": "Simulate a spending reduction",
                "parameters": [
                    {
                        "description": "Simulation",
                        "name": "simulation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SimulationEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SimulationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SimulationResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/v1.SimulationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SimulationResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Simulations"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/goal-plans": {
            "post": {
                "description": "Computes the monthly saving needed to reach a goal and whether current savings are sufficient. Nothing is stored.",
                "tags": [
                    "Goal Plans"
                ],
                "summary": "Plan a savings goal",
                "parameters": [
                    {
                        "description": "Goal",
                        "name": "goal",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.GoalPlanEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalPlanResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalPlanResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalPlanResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.GoalPlanResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Goal Plans"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "healthz.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the database is not reachable"
                }
            }
        },
        "root.Links": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "description": "Healthz endpoint",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "type": "string",
                    "description": "Endpoint returning Prometheus metrics",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "type": "string",
                    "description": "List endpoint for all v1 endpoints",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "type": "string",
                    "description": "Endpoint returning the version of the backend",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/root.Links"
                }
            }
        },
        "version.Object": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "the running version of the Finance Coach backend",
                    "example": "1.1.0"
                }
            }
        },
        "version.Response": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/version.Object"
                        }
                    ]
                }
            }
        },
        "finance.Recommendation": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "reduce-entertainment"
                },
                "message": {
                    "type": "string",
                    "example": "Reduce entertainment expenses to improve savings."
                }
            }
        },
        "finance.Rule": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "Food"
                },
                "keywords": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "grocery",
                        "restaurant"
                    ]
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "description": "The amount of records returned in this response",
                    "example": 25
                },
                "limit": {
                    "type": "integer",
                    "description": "The maximum amount of resources to return for this request",
                    "example": 25
                },
                "offset": {
                    "type": "integer",
                    "description": "The offset for the first record returned",
                    "example": 50
                },
                "total": {
                    "type": "integer",
                    "description": "The total number of resources matching the query",
                    "example": 827
                }
            }
        },
        "v1.RootLinks": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "string",
                    "description": "URL of the budget configuration",
                    "example": "https://example.com/api/v1/budget"
                },
                "categories": {
                    "type": "string",
                    "description": "URL of category list endpoint",
                    "example": "https://example.com/api/v1/categories"
                },
                "dashboard": {
                    "type": "string",
                    "description": "URL of the dashboard report",
                    "example": "https://example.com/api/v1/dashboard"
                },
                "goalPlans": {
                    "type": "string",
                    "description": "URL of the goal planning endpoint",
                    "example": "https://example.com/api/v1/goal-plans"
                },
                "import": {
                    "type": "string",
                    "description": "URL of the CSV import endpoint",
                    "example": "https://example.com/api/v1/import"
                },
                "settings": {
                    "type": "string",
                    "description": "URL of the settings",
                    "example": "https://example.com/api/v1/settings"
                },
                "simulations": {
                    "type": "string",
                    "description": "URL of the what-if simulation endpoint",
                    "example": "https://example.com/api/v1/simulations"
                },
                "transactions": {
                    "type": "string",
                    "description": "URL of transaction list endpoint",
                    "example": "https://example.com/api/v1/transactions"
                }
            }
        },
        "v1.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.RootLinks"
                        }
                    ]
                }
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "The amount spent",
                    "example": 14.03,
                    "maximum": 1000000000000.0,
                    "minimum": 0,
                    "multipleOf": 1e-08
                },
                "date": {
                    "type": "string",
                    "description": "Date of the transaction. Defaults to the time of creation. Time is only used for sorting",
                    "example": "2024-02-03T12:00:00Z"
                },
                "description": {
                    "type": "string",
                    "description": "Free text description. The category is derived from it",
                    "example": "Grocery store"
                }
            }
        },
        "v1.TransactionLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The transaction itself",
                    "example": "https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"
                }
            }
        },
        "v1.Transaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "The amount spent",
                    "example": 14.03,
                    "maximum": 1000000000000.0,
                    "minimum": 0,
                    "multipleOf": 1e-08
                },
                "category": {
                    "type": "string",
                    "description": "Category assigned from the description on creation",
                    "example": "Food"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2024-01-05T19:28:44.491514Z"
                },
                "date": {
                    "type": "string",
                    "description": "Date of the transaction. Defaults to the time of creation. Time is only used for sorting",
                    "example": "2024-02-03T12:00:00Z"
                },
                "description": {
                    "type": "string",
                    "description": "Free text description. The category is derived from it",
                    "example": "Grocery store"
                },
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2024-01-07T20:14:01.048145Z"
                }
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The Transaction data, if creation was successful",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this transaction",
                    "example": "the amount of a transaction must not be negative"
                }
            }
        },
        "v1.TransactionCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "description": "List of created Transactions",
                    "items": {
                        "$ref": "#/definitions/v1.TransactionResponse"
                    }
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the request body must not be empty"
                }
            }
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "description": "List of transactions",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    }
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.ImportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "description": "The imported transactions",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    }
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "malformed input: error in line 2 of the CSV: the amount must not be negative, got -20"
                }
            }
        },
        "v1.CategoryListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "description": "Categories with the keywords assigning them, in the order they are matched",
                    "items": {
                        "$ref": "#/definitions/finance.Rule"
                    }
                }
            }
        },
        "v1.BudgetEditable": {
            "type": "object",
            "properties": {
                "monthlyBudget": {
                    "type": "number",
                    "description": "Monthly budget split evenly between the categories with spend. 0 uses the default limits",
                    "example": 5000
                },
                "overrides": {
                    "type": "object",
                    "description": "Fixed limits per category. null removes the override",
                    "additionalProperties": {
                        "type": "number"
                    },
                    "example": {
                        "Food": 2500,
                        "Entertainment": null
                    }
                }
            }
        },
        "v1.Budget": {
            "type": "object",
            "properties": {
                "limits": {
                    "type": "object",
                    "description": "The effective limit of every category",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "month": {
                    "type": "string",
                    "description": "The month the limits were computed for. null for all transactions",
                    "example": "2024-02"
                },
                "monthlyBudget": {
                    "type": "number",
                    "description": "The configured monthly budget",
                    "example": 5000
                },
                "overrides": {
                    "type": "object",
                    "description": "Limits set explicitly per category",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "total": {
                    "type": "number",
                    "description": "Sum of all effective limits",
                    "example": 5000
                }
            }
        },
        "v1.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Budget"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "invalid input: the budget for Food must not be negative"
                }
            }
        },
        "v1.SettingsEditable": {
            "type": "object",
            "properties": {
                "debtScore": {
                    "type": "number",
                    "description": "Debt component of the health score",
                    "example": 0.5,
                    "maximum": 1,
                    "minimum": 0
                },
                "income": {
                    "type": "number",
                    "description": "Monthly income. Must be positive",
                    "example": 25000,
                    "minimum": 1e-08
                },
                "monthlyBudget": {
                    "type": "number",
                    "description": "Monthly budget. 0 uses the default limits",
                    "example": 0,
                    "minimum": 0
                }
            }
        },
        "v1.Settings": {
            "type": "object",
            "properties": {
                "debtScore": {
                    "type": "number",
                    "description": "Debt component of the health score",
                    "example": 0.5,
                    "maximum": 1,
                    "minimum": 0
                },
                "income": {
                    "type": "number",
                    "description": "Monthly income. Must be positive",
                    "example": 25000,
                    "minimum": 1e-08
                },
                "monthlyBudget": {
                    "type": "number",
                    "description": "Monthly budget. 0 uses the default limits",
                    "example": 0,
                    "minimum": 0
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the settings were updated",
                    "example": "2024-01-07T20:14:01.048145Z"
                }
            }
        },
        "v1.SettingsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the settings",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Settings"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "invalid configuration: income must be positive, got 0"
                }
            }
        },
        "v1.CategorySpend": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 1450.75
                },
                "category": {
                    "type": "string",
                    "example": "Food"
                },
                "share": {
                    "type": "number",
                    "description": "Fraction of the total spend",
                    "example": 0.42
                }
            }
        },
        "v1.CategoryEvaluation": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "number",
                    "example": 1500
                },
                "category": {
                    "type": "string",
                    "example": "Entertainment"
                },
                "overBy": {
                    "type": "number",
                    "description": "Amount above the budget, 0 when within",
                    "example": 300
                },
                "spent": {
                    "type": "number",
                    "example": 1800
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "within",
                        "over"
                    ],
                    "example": "over"
                }
            }
        },
        "v1.HealthScore": {
            "type": "object",
            "properties": {
                "budgetScore": {
                    "type": "number",
                    "example": 0.8
                },
                "debtScore": {
                    "type": "number",
                    "example": 0.5
                },
                "emergencyScore": {
                    "type": "number",
                    "example": 1
                },
                "savingsScore": {
                    "type": "number",
                    "example": 1
                },
                "score": {
                    "type": "number",
                    "description": "Overall score from 0 to 100",
                    "example": 72.5
                },
                "tier": {
                    "type": "string",
                    "enum": [
                        "Excellent",
                        "Fair",
                        "Poor",
                        "Critical"
                    ],
                    "example": "Fair"
                }
            }
        },
        "v1.Dashboard": {
            "type": "object",
            "properties": {
                "discipline": {
                    "type": "string",
                    "example": "Excellent – Strong savings discipline"
                },
                "evaluation": {
                    "type": "array",
                    "description": "Budget adherence per category with at least one transaction",
                    "items": {
                        "$ref": "#/definitions/v1.CategoryEvaluation"
                    }
                },
                "health": {
                    "$ref": "#/definitions/v1.HealthScore"
                },
                "income": {
                    "type": "number",
                    "example": 25000
                },
                "limits": {
                    "type": "object",
                    "description": "The effective limit of every category",
                    "additionalProperties": {
                        "type": "number"
                    }
                },
                "month": {
                    "type": "string",
                    "description": "The month analyzed. null for all transactions",
                    "example": "2024-02"
                },
                "overspent": {
                    "type": "number",
                    "description": "Amount the total spend exceeds the total budget",
                    "example": 0
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/finance.Recommendation"
                    }
                },
                "savings": {
                    "type": "number",
                    "example": 21549.25
                },
                "savingsRate": {
                    "type": "number",
                    "example": 0.86
                },
                "summary": {
                    "type": "array",
                    "description": "Spend per category with at least one transaction",
                    "items": {
                        "$ref": "#/definitions/v1.CategorySpend"
                    }
                },
                "totalBudget": {
                    "type": "number",
                    "example": 6000
                },
                "totalSpent": {
                    "type": "number",
                    "example": 3450.75
                }
            }
        },
        "v1.DashboardResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the dashboard",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Dashboard"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "invalid configuration: income must be positive, got 0"
                }
            }
        },
        "v1.SimulationEditable": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "description": "Category to reduce the spend in",
                    "example": "Entertainment"
                },
                "month": {
                    "type": "string",
                    "description": "Month to use as baseline. Defaults to all transactions",
                    "example": "2024-02"
                },
                "reduction": {
                    "type": "number",
                    "description": "Amount to cut",
                    "example": 500,
                    "minimum": 0
                }
            }
        },
        "v1.Simulation": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "Entertainment"
                },
                "categorySpend": {
                    "type": "number",
                    "description": "Spend in the category before the reduction",
                    "example": 1800
                },
                "currentSavingsRate": {
                    "type": "number",
                    "example": 0.86
                },
                "improves": {
                    "type": "boolean",
                    "description": "The new savings rate is at least the current one",
                    "example": true
                },
                "newCategorySpend": {
                    "type": "number",
                    "description": "Spend in the category after the reduction, never below 0",
                    "example": 1300
                },
                "newSavings": {
                    "type": "number",
                    "example": 22049.25
                },
                "newSavingsRate": {
                    "type": "number",
                    "example": 0.88
                },
                "newTotalSpent": {
                    "type": "number",
                    "example": 2950.75
                }
            }
        },
        "v1.SimulationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the simulation",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Simulation"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "invalid input: unknown category \"Travel\""
                }
            }
        },
        "v1.GoalPlanEditable": {
            "type": "object",
            "properties": {
                "goalAmount": {
                    "type": "number",
                    "description": "Amount to save",
                    "example": 50000,
                    "minimum": 0
                },
                "month": {
                    "type": "string",
                    "description": "Month whose savings are compared against the plan. Defaults to all transactions",
                    "example": "2024-02"
                },
                "months": {
                    "type": "integer",
                    "description": "Time horizon in months",
                    "example": 12,
                    "minimum": 1
                }
            }
        },
        "v1.GoalPlan": {
            "type": "object",
            "properties": {
                "currentSavings": {
                    "type": "number",
                    "description": "Income minus spend of the baseline",
                    "example": 21549.25
                },
                "goalAmount": {
                    "type": "number",
                    "example": 50000
                },
                "months": {
                    "type": "integer",
                    "example": 12
                },
                "onTrack": {
                    "type": "boolean",
                    "description": "Current savings cover the required monthly amount",
                    "example": true
                },
                "requiredMonthly": {
                    "type": "number",
                    "description": "Amount to save every month",
                    "example": 4166.67
                }
            }
        },
        "v1.GoalPlanResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the goal plan",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.GoalPlan"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "invalid input: the time horizon must be at least one month, got 0"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
