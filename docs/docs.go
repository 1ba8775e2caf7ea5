// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/weather-facade/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Weather Facade Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Operations"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.HealthResponse"}
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "description": "Current state of the metrics registry in the prometheus text exposition format 0.0.4.",
                "produces": ["text/plain"],
                "tags": ["Operations"],
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {
                        "description": "metrics",
                        "schema": {"type": "string"}
                    },
                    "500": {
                        "description": "metrics could not be serialized"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Reports the service version, source revision, build date and environment.",
                "produces": ["application/json"],
                "tags": ["Operations"],
                "summary": "Get build information",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/models.VersionInfo"}
                    }
                }
            }
        },
        "/weather/{city}": {
            "get": {
                "description": "Looks up current conditions for the city at the weather provider and returns them in a provider-independent shape.\nEvery lookup failure (unknown city, provider error, missing API key) is reported as 404.",
                "produces": ["application/json"],
                "tags": ["Weather"],
                "summary": "Get current weather for a city",
                "parameters": [
                    {
                        "type": "string",
                        "example": "Seattle",
                        "description": "City name",
                        "name": "city",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Successful response",
                        "schema": {"$ref": "#/definitions/models.NormalizedWeather"}
                    },
                    "400": {
                        "description": "City parameter is required",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "404": {
                        "description": "Weather data not found for city",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "City parameter is required"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "integer", "example": 1700000000},
                "version": {"type": "string", "example": "abc123"}
            }
        },
        "models.NormalizedWeather": {
            "type": "object",
            "properties": {
                "city": {"type": "string", "example": "Seattle"},
                "country": {"type": "string", "example": "USA"},
                "description": {"type": "string", "example": "Partly cloudy"},
                "feelsLikeCelsius": {"type": "number", "example": 14},
                "humidityPercent": {"type": "integer", "example": 75},
                "observedAtUnixSeconds": {"type": "integer", "example": 1700000000},
                "temperatureCelsius": {"type": "number", "example": 15.5},
                "windSpeedKph": {"type": "number", "example": 10.5}
            }
        },
        "models.VersionInfo": {
            "type": "object",
            "properties": {
                "buildDate": {"type": "string", "example": "2024-01-01"},
                "environment": {"type": "string", "example": "Production"},
                "gitSha": {"type": "string", "example": "abc123"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        }
    },
    "tags": [
        {"description": "Current weather lookups", "name": "Weather"},
        {"description": "Build, health and metrics endpoints", "name": "Operations"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Weather Facade",
	Description:      "A thin HTTP facade over the WeatherAPI.com current conditions endpoint.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
