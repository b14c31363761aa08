// Package docs registers the OpenAPI document served under /swagger/.
// It is kept in step with the handler annotations by hand; running
// go generate on main.go replaces it with swag's output.
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
        "/api/builder": {
            "post": {
                "description": "Opens a wizard session in create mode, or in edit mode seeded from an existing pipeline",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Open builder",
                "parameters": [
                    {
                        "description": "Pipeline to edit",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handlers.OpenBuilderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid JSON",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Pipeline not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Get builder state",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "description": "Applies each supplied field. accepted is false when any of them was rejected.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Update builder fields",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to set",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.PatchBuilderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid JSON",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}/advance": {
            "post": {
                "description": "Moves to the next step when the current step is complete",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Advance builder",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}/retreat": {
            "post": {
                "description": "Moves to the previous step. On the first step this cancels the session.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Retreat builder",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}/cancel": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Cancel builder",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}/save": {
            "post": {
                "description": "Creates a pipeline, or updates the edited one, from the final step",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Save builder",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}/sources/other": {
            "post": {
                "description": "Adds the free-text source from the body, or from the pending input buffer when the body has none",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Add other source",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Source name",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handlers.OtherSourceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid JSON",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}/sources/{id}/toggle": {
            "post": {
                "description": "Selects an enabled catalog source, or deselects a selected one",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Toggle source",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Source ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}/analyses/{kind}": {
            "post": {
                "description": "Adds an analysis of the given kind. Text fields come from the body or the pending input buffers.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Add analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Analysis kind",
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "enum": [
                            "sentiment",
                            "query",
                            "auto-tagging"
                        ]
                    },
                    {
                        "description": "Query or tag text",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/handlers.InputsPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "400": {
                        "description": "Unknown kind or invalid JSON",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/builder/{sid}/analyses/{index}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "builder"
                ],
                "summary": "Remove analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID",
                        "name": "sid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Position in the analysis list",
                        "name": "index",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.BuilderResponse"
                        }
                    },
                    "400": {
                        "description": "Index is not a number",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Session not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/catalog/outputs": {
            "get": {
                "description": "Returns every output destination the builder offers",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "List output destinations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.OutputsResponse"
                        }
                    }
                }
            }
        },
        "/api/catalog/sources": {
            "get": {
                "description": "Returns every data source the builder offers, including disabled ones",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "List data sources",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.SourcesResponse"
                        }
                    }
                }
            }
        },
        "/api/pipelines": {
            "get": {
                "description": "Returns pipelines in insertion order, one page at a time",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipelines"
                ],
                "summary": "List pipelines",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.PipelinesResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Items per page",
                        "name": "per_page",
                        "in": "query"
                    }
                ]
            },
            "post": {
                "description": "Creates a draft pipeline. Unset fields take their defaults (name \"New Pipeline\", schedule \"Manual\", output \"None\").",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipelines"
                ],
                "summary": "Create pipeline",
                "parameters": [
                    {
                        "description": "Pipeline fields",
                        "name": "pipeline",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/models.PipelineFields"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handlers.PipelineMutationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid JSON or fields",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/pipelines/{id}": {
            "get": {
                "description": "Returns a pipeline by ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipelines"
                ],
                "summary": "Get pipeline",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pipeline ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.PipelineResponse"
                        }
                    },
                    "404": {
                        "description": "Pipeline not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Merges the supplied fields over the pipeline. An unknown ID is reported as not accepted.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipelines"
                ],
                "summary": "Update pipeline",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pipeline ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "pipeline",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.PipelineFields"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.PipelineMutationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid JSON or fields",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a pipeline. An unknown ID is reported as not accepted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipelines"
                ],
                "summary": "Delete pipeline",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pipeline ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.PipelineMutationResponse"
                        }
                    }
                }
            }
        },
        "/api/pipelines/{id}/toggle": {
            "post": {
                "description": "Flips active to paused and back. Drafts and unknown IDs are reported as not accepted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipelines"
                ],
                "summary": "Toggle pipeline status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Pipeline ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.PipelineMutationResponse"
                        }
                    }
                }
            }
        },
        "/api/queries": {
            "get": {
                "description": "Returns saved queries whose text or context contains q, ignoring case. No q returns all.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "queries"
                ],
                "summary": "Search saved queries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search term",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Items per page",
                        "name": "per_page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.QueriesResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Saves a query. Blank query text is reported as not accepted.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "queries"
                ],
                "summary": "Save query",
                "parameters": [
                    {
                        "description": "Query",
                        "name": "query",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handlers.SaveQueryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.QueryMutationResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid JSON",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/queries/{id}": {
            "delete": {
                "description": "Deletes a saved query. An unknown ID is reported as not accepted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "queries"
                ],
                "summary": "Delete saved query",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Query ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.QueryMutationResponse"
                        }
                    },
                    "400": {
                        "description": "ID is not a number",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns service status with store and session counters",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "builder.Inputs": {
            "type": "object",
            "properties": {
                "query": {
                    "type": "string"
                },
                "tag_name": {
                    "type": "string"
                },
                "tag_description": {
                    "type": "string"
                },
                "tag_example": {
                    "type": "string"
                },
                "other_source": {
                    "type": "string"
                }
            }
        },
        "handlers.BuilderResponse": {
            "type": "object",
            "properties": {
                "accepted": {
                    "type": "boolean"
                },
                "pipeline": {
                    "$ref": "#/definitions/handlers.PipelineResponse"
                },
                "state": {
                    "$ref": "#/definitions/handlers.BuilderState"
                }
            }
        },
        "handlers.BuilderState": {
            "type": "object",
            "properties": {
                "session_id": {
                    "type": "string",
                    "example": "3f1c2b9e-7a55-4c1e-9d7a-0b8f6c1e2d3a"
                },
                "mode": {
                    "type": "string",
                    "enum": [
                        "create",
                        "edit"
                    ]
                },
                "pipeline_id": {
                    "type": "string"
                },
                "step": {
                    "type": "integer",
                    "example": 0
                },
                "step_title": {
                    "type": "string",
                    "example": "Pipeline Name"
                },
                "step_count": {
                    "type": "integer",
                    "example": 5
                },
                "can_advance": {
                    "type": "boolean"
                },
                "outcome": {
                    "type": "string",
                    "enum": [
                        "open",
                        "saved",
                        "cancelled"
                    ]
                },
                "schedule": {
                    "$ref": "#/definitions/schedule.Choice"
                },
                "selected_sources": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.DataSourceRef"
                    }
                },
                "inputs": {
                    "$ref": "#/definitions/builder.Inputs"
                },
                "draft": {
                    "$ref": "#/definitions/models.PipelineDraft"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "uptime": {
                    "type": "string",
                    "example": "1h2m3s"
                },
                "pipelines": {
                    "type": "integer",
                    "example": 2
                },
                "open_builders": {
                    "type": "integer",
                    "example": 0
                },
                "catalog_sources": {
                    "type": "integer",
                    "example": 5
                }
            }
        },
        "handlers.InputsPatch": {
            "type": "object",
            "properties": {
                "query": {
                    "type": "string"
                },
                "tag_name": {
                    "type": "string"
                },
                "tag_description": {
                    "type": "string"
                },
                "tag_example": {
                    "type": "string"
                },
                "other_source": {
                    "type": "string"
                }
            }
        },
        "handlers.OpenBuilderRequest": {
            "type": "object",
            "properties": {
                "pipeline_id": {
                    "type": "string"
                }
            }
        },
        "handlers.OtherSourceRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                }
            }
        },
        "handlers.OutputsResponse": {
            "type": "object",
            "properties": {
                "outputs": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "handlers.PatchBuilderRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Weekly digest"
                },
                "schedule": {
                    "$ref": "#/definitions/schedule.Choice"
                },
                "output": {
                    "type": "string",
                    "example": "Slack"
                },
                "inputs": {
                    "$ref": "#/definitions/handlers.InputsPatch"
                }
            }
        },
        "handlers.PipelineMutationResponse": {
            "type": "object",
            "properties": {
                "accepted": {
                    "type": "boolean"
                },
                "pipeline": {
                    "$ref": "#/definitions/handlers.PipelineResponse"
                }
            }
        },
        "handlers.PipelineResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "01JD3XK5V8T9ZQ2M4N6P8R0S2T"
                },
                "name": {
                    "type": "string",
                    "example": "Reddit Sentiment Analysis"
                },
                "data_sources": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "schedule": {
                    "type": "string",
                    "example": "Daily at 9:00 AM"
                },
                "output": {
                    "type": "string",
                    "example": "Google Sheets"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "paused",
                        "draft"
                    ]
                },
                "last_run": {
                    "type": "string",
                    "example": "2 hours ago"
                },
                "analysis_type": {
                    "type": "string",
                    "enum": [
                        "Auto-tagging",
                        "Queries"
                    ]
                },
                "analyses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.AnalysisConfig"
                    }
                },
                "chart_data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ChartPoint"
                    }
                },
                "query_results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.QueryResult"
                    }
                },
                "next_run": {
                    "type": "string",
                    "example": "in 1.5h"
                }
            }
        },
        "handlers.PipelinesResponse": {
            "type": "object",
            "properties": {
                "pipelines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handlers.PipelineResponse"
                    }
                },
                "count": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer",
                    "example": 1
                },
                "per_page": {
                    "type": "integer",
                    "example": 20
                },
                "total_pages": {
                    "type": "integer",
                    "example": 1
                },
                "total_results": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "handlers.QueriesResponse": {
            "type": "object",
            "properties": {
                "queries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.SavedQuery"
                    }
                },
                "count": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer",
                    "example": 1
                },
                "per_page": {
                    "type": "integer",
                    "example": 20
                },
                "total_pages": {
                    "type": "integer",
                    "example": 1
                },
                "total_results": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "handlers.QueryMutationResponse": {
            "type": "object",
            "properties": {
                "accepted": {
                    "type": "boolean"
                },
                "query": {
                    "$ref": "#/definitions/models.SavedQuery"
                }
            }
        },
        "handlers.SaveQueryRequest": {
            "type": "object",
            "properties": {
                "query": {
                    "type": "string",
                    "example": "what do users say about pricing?"
                },
                "context": {
                    "type": "string",
                    "example": "Sales calls"
                }
            }
        },
        "handlers.SourcesResponse": {
            "type": "object",
            "properties": {
                "sources": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.DataSourceRef"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "models.AnalysisConfig": {
            "type": "object",
            "required": [
                "type"
            ],
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "sentiment",
                        "query",
                        "auto-tagging"
                    ]
                },
                "query": {
                    "type": "string",
                    "example": "What do users say about onboarding?"
                },
                "tag_name": {
                    "type": "string",
                    "example": "Onboarding Issue"
                },
                "tag_description": {
                    "type": "string"
                },
                "tag_example": {
                    "type": "string"
                }
            }
        },
        "models.ChartPoint": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Mon"
                },
                "value": {
                    "type": "integer",
                    "example": 45
                }
            }
        },
        "models.DataSourceRef": {
            "type": "object",
            "required": [
                "id",
                "name"
            ],
            "properties": {
                "id": {
                    "type": "string",
                    "example": "reddit"
                },
                "name": {
                    "type": "string",
                    "example": "Reddit"
                },
                "icon": {
                    "type": "string"
                },
                "enabled": {
                    "type": "boolean",
                    "example": true
                },
                "connected": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "models.PipelineDraft": {
            "type": "object",
            "required": [
                "analyses",
                "data_sources",
                "name",
                "output"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "data_sources": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "schedule": {
                    "type": "string"
                },
                "output": {
                    "type": "string"
                },
                "analyses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.AnalysisConfig"
                    }
                }
            }
        },
        "models.PipelineFields": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "maxLength": 200
                },
                "data_sources": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "schedule": {
                    "type": "string",
                    "maxLength": 200
                },
                "output": {
                    "type": "string",
                    "maxLength": 200
                },
                "analyses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.AnalysisConfig"
                    }
                }
            }
        },
        "models.QueryResult": {
            "type": "object",
            "properties": {
                "response": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "models.SavedQuery": {
            "type": "object",
            "required": [
                "query"
            ],
            "properties": {
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "query": {
                    "type": "string",
                    "example": "tell me about what was said about quality"
                },
                "context": {
                    "type": "string",
                    "example": "All Data Sources"
                },
                "date": {
                    "type": "string",
                    "example": "Nov 14, 2025"
                }
            }
        },
        "schedule.Choice": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "enum": [
                        "manual",
                        "hourly",
                        "6hours",
                        "daily",
                        "custom"
                    ]
                },
                "text": {
                    "type": "string",
                    "example": "Every Monday at noon"
                }
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
	Title:            "Pipeline Studio API",
	Description:      "Pipeline store, builder wizard sessions and saved queries for the analysis pipeline studio.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
