package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Class Schedule Proxy",
        "description": "Proxy between the parent-facing schedule page and the Notion workspace database",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Normalized course records"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List scheduled courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CoursesEnvelope"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CourseRecord": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "dateStart": {"type": "string", "x-nullable": true},
                "dateEnd": {"type": "string", "x-nullable": true},
                "teacher": {"type": "string"},
                "room": {"type": "string"},
                "clazz": {"type": "string"},
                "status": {"type": "string"},
                "durationMinutes": {"type": "integer", "x-nullable": true},
                "attendanceRate": {"type": "number", "x-nullable": true}
            }
        },
        "CoursesEnvelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "data": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/CourseRecord"}
                }
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "error": {"type": "string"},
                "detail": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
