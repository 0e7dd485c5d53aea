// Package docs holds the OpenAPI document served at /api/docs and registers
// it with swag so the UI can find it by instance name
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{.Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/filter/exists": {
      "post": {
        "tags": ["Filter"],
        "summary": "Does the text contain profanity",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TextInput"}}}},
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ExistsResult"}}}},
          "422": {"description": "Unknown language", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/filter/censor": {
      "post": {
        "tags": ["Filter"],
        "summary": "Censor profanity in the text",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CensorInput"}}}},
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CensorResult"}}}},
          "422": {"description": "Unknown language or censor type", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/filter/matches": {
      "post": {
        "tags": ["Filter"],
        "summary": "List matches with byte offsets",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TextInput"}}}},
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/MatchesResult"}}}}
        }
      }
    },
    "/filter/words": {
      "post": {
        "tags": ["Filter"],
        "summary": "Blacklist phrases",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/WordsInput"}}}},
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/WordsResult"}}}}}
      }
    },
    "/filter/words/remove": {
      "post": {
        "tags": ["Filter"],
        "summary": "Remove blacklisted or corpus phrases",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/WordsInput"}}}},
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/WordsResult"}}}}}
      }
    },
    "/filter/whitelist": {
      "post": {
        "tags": ["Filter"],
        "summary": "Whitelist phrases",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/WordsInput"}}}},
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/WordsResult"}}}}}
      }
    },
    "/filter/whitelist/remove": {
      "post": {
        "tags": ["Filter"],
        "summary": "Remove whitelisted phrases",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/WordsInput"}}}},
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/WordsResult"}}}}}
      }
    },
    "/filter/lists": {
      "get": {
        "tags": ["Filter"],
        "summary": "Current word lists and defaults",
        "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Lists"}}}}}
      }
    },
    "/meta/health": {
      "get": {"tags": ["Meta"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}
    },
    "/meta/ready": {
      "get": {"tags": ["Meta"], "summary": "Readiness with word list and dependency checks", "responses": {"200": {"description": "OK"}, "503": {"description": "A dependency failed"}}}
    },
    "/meta/version": {
      "get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"description": "OK"}}}
    },
    "/meta/service": {
      "get": {"tags": ["Meta"], "summary": "Service info, uptime and filter summary", "responses": {"200": {"description": "OK"}}}
    }
  },
  "components": {
    "schemas": {
      "TextInput": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"description": "Non-string values are never profane", "example": "what the tsk"},
          "languages": {"type": "array", "maxItems": 16, "items": {"type": "string"}, "example": ["en", "de"]}
        }
      },
      "CensorInput": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"example": "what the tsk"},
          "censor_type": {"type": "string", "enum": ["word", "first_char", "first_vowel", "all_vowels"], "default": "word"},
          "languages": {"type": "array", "maxItems": 16, "items": {"type": "string"}}
        }
      },
      "WordsInput": {
        "type": "object",
        "required": ["words"],
        "properties": {
          "words": {"type": "array", "minItems": 1, "maxItems": 1000, "items": {"type": "string", "maxLength": 256}, "example": ["tsk", "blimey"]}
        }
      },
      "ExistsResult": {"type": "object", "properties": {"exists": {"type": "boolean"}}},
      "CensorResult": {"type": "object", "properties": {"text": {"example": "what the @#$%&!"}}},
      "Match": {
        "type": "object",
        "properties": {
          "start": {"type": "integer"},
          "end": {"type": "integer"},
          "text": {"type": "string"}
        }
      },
      "MatchesResult": {"type": "object", "properties": {"matches": {"type": "array", "items": {"$ref": "#/components/schemas/Match"}}}},
      "WordsResult": {
        "type": "object",
        "properties": {
          "list": {"type": "string", "enum": ["blacklist", "whitelist", "removed"]},
          "accepted": {"type": "integer"},
          "size": {"type": "integer"}
        }
      },
      "Lists": {
        "type": "object",
        "properties": {
          "blacklist": {"type": "array", "items": {"type": "string"}},
          "whitelist": {"type": "array", "items": {"type": "string"}},
          "removed": {"type": "array", "items": {"type": "string"}},
          "languages": {"type": "array", "items": {"type": "string"}},
          "defaults": {"type": "array", "items": {"type": "string"}},
          "whole_word": {"type": "boolean"}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "Profanity API",
	Description:      "Detect and censor profanity in free text",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
