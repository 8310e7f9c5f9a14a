package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Uni Dashboard API",
        "description": "Personal study dashboard: exams with risk assessment, todos, seminars, study plans, mood tracking and a session timer.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Login against the static user table"},
        {"name": "Dashboard", "description": "Composed day overview"},
        {"name": "Exams", "description": "Exam lifecycle and risk assessment"},
        {"name": "Todos", "description": "Task list"},
        {"name": "Seminars", "description": "Seminar attendance and credit points"},
        {"name": "StudyPlan", "description": "Weekly study plan"},
        {"name": "Mood", "description": "Mood tracker and stress advice"},
        {"name": "Schedule", "description": "Timetable HTML blob"},
        {"name": "Timer", "description": "Learning phase and break timer"},
        {"name": "Backup", "description": "Document export and restore"},
        {"name": "Notes", "description": "Study sheet extraction and PDF merging"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Day overview",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exams": {
            "get": {
                "tags": ["Exams"],
                "summary": "List exams",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "view", "in": "query", "type": "string", "enum": ["active", "archive"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Exams"],
                "summary": "Add exam",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExamRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exams/export": {
            "get": {
                "tags": ["Exams"],
                "summary": "Export exams as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/exams/{index}": {
            "put": {
                "tags": ["Exams"],
                "summary": "Update exam",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateExamRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Exam is archived"}
                }
            },
            "delete": {
                "tags": ["Exams"],
                "summary": "Delete archived exam",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "409": {"description": "Exam is not archived"}
                }
            }
        },
        "/exams/{index}/archive": {
            "post": {
                "tags": ["Exams"],
                "summary": "Archive exam",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exams/{index}/grade": {
            "put": {
                "tags": ["Exams"],
                "summary": "Grade archived exam",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GradeExamRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/todos": {
            "get": {
                "tags": ["Todos"],
                "summary": "List todos",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Todos"],
                "summary": "Add todo",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTodoRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/todos/{index}": {
            "put": {
                "tags": ["Todos"],
                "summary": "Update todo",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTodoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Todos"],
                "summary": "Delete todo",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/seminars": {
            "get": {
                "tags": ["Seminars"],
                "summary": "List seminars with credit point totals",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Seminars"],
                "summary": "Add seminar",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSeminarRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/seminars/{index}": {
            "put": {
                "tags": ["Seminars"],
                "summary": "Update seminar",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateSeminarRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Seminars"],
                "summary": "Delete seminar",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/studyplan": {
            "get": {
                "tags": ["StudyPlan"],
                "summary": "List study plan entries",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["StudyPlan"],
                "summary": "Add study plan entry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudyPlanRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/studyplan/week": {
            "get": {
                "tags": ["StudyPlan"],
                "summary": "Weekly hour distribution",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/studyplan/{index}": {
            "put": {
                "tags": ["StudyPlan"],
                "summary": "Update study plan entry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudyPlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["StudyPlan"],
                "summary": "Delete study plan entry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/mood": {
            "get": {
                "tags": ["Mood"],
                "summary": "List mood entries",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Mood"],
                "summary": "Add mood entry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMoodRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/mood/history": {
            "get": {
                "tags": ["Mood"],
                "summary": "Mood history and advice",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "days", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/mood/export": {
            "get": {
                "tags": ["Mood"],
                "summary": "Export mood log as CSV",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/mood/{index}": {
            "delete": {
                "tags": ["Mood"],
                "summary": "Delete mood entry",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Get timetable HTML",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Schedule"],
                "summary": "Replace timetable HTML",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timer": {
            "get": {
                "tags": ["Timer"],
                "summary": "Timer status",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timer/start": {
            "post": {
                "tags": ["Timer"],
                "summary": "Start a learning phase or break",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StartTimerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timer/reset": {
            "post": {
                "tags": ["Timer"],
                "summary": "Reset the timer",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/backup/export": {
            "get": {
                "tags": ["Backup"],
                "summary": "Download the full document as JSON",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/backup/restore": {
            "post": {
                "tags": ["Backup"],
                "summary": "Restore the document from an uploaded backup",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RestoreRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Confirmation missing"}
                }
            }
        },
        "/notes/extract": {
            "post": {
                "tags": ["Notes"],
                "summary": "Extract text from uploaded documents",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "files", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notes/sheet": {
            "post": {
                "tags": ["Notes"],
                "summary": "Render study sheet PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudySheetRequest"}}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/notes/merge": {
            "post": {
                "tags": ["Notes"],
                "summary": "Merge uploaded PDFs",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "files", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "CreateExamRequest": {
            "type": "object",
            "properties": {
                "fach": {"type": "string"},
                "datum": {"type": "string", "format": "date"},
                "lernordner": {"type": "string"},
                "tage_vorher": {"type": "integer"},
                "ziel_stunden": {"type": "number"}
            },
            "required": ["fach"]
        },
        "UpdateExamRequest": {
            "type": "object",
            "properties": {
                "fach": {"type": "string"},
                "datum": {"type": "string", "format": "date"},
                "lernordner": {"type": "string"},
                "tage_vorher": {"type": "integer"},
                "ziel_stunden": {"type": "number"},
                "gelernt_stunden": {"type": "number"}
            }
        },
        "GradeExamRequest": {
            "type": "object",
            "properties": {
                "note": {"type": "number"}
            },
            "required": ["note"]
        },
        "CreateTodoRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "fach": {"type": "string"},
                "wichtig": {"type": "boolean"},
                "faellig": {"type": "string", "format": "date"}
            },
            "required": ["text"]
        },
        "UpdateTodoRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "fach": {"type": "string"},
                "done": {"type": "boolean"},
                "wichtig": {"type": "boolean"},
                "faellig": {"type": "string", "format": "date"}
            }
        },
        "CreateSeminarRequest": {
            "type": "object",
            "properties": {
                "titel": {"type": "string"},
                "datum": {"type": "string", "format": "date"},
                "uhrzeit1": {"type": "string"},
                "datum2": {"type": "string", "format": "date"},
                "uhrzeit2": {"type": "string"},
                "notiz": {"type": "string"},
                "punkte": {"type": "number"}
            },
            "required": ["titel"]
        },
        "UpdateSeminarRequest": {
            "type": "object",
            "properties": {
                "titel": {"type": "string"},
                "datum": {"type": "string", "format": "date"},
                "uhrzeit1": {"type": "string"},
                "datum2": {"type": "string", "format": "date"},
                "uhrzeit2": {"type": "string"},
                "notiz": {"type": "string"},
                "punkte": {"type": "number"},
                "absolviert": {"type": "boolean"}
            }
        },
        "CreateStudyPlanRequest": {
            "type": "object",
            "properties": {
                "fach": {"type": "string"},
                "stunden_pro_woche": {"type": "number"},
                "priorität": {"type": "integer", "enum": [1, 2, 3]}
            },
            "required": ["fach"]
        },
        "UpdateStudyPlanRequest": {
            "type": "object",
            "properties": {
                "fach": {"type": "string"},
                "stunden_pro_woche": {"type": "number"},
                "priorität": {"type": "integer", "enum": [1, 2, 3]}
            }
        },
        "CreateMoodRequest": {
            "type": "object",
            "properties": {
                "datum": {"type": "string", "format": "date"},
                "stimmung": {"type": "integer"},
                "stress": {"type": "integer"},
                "schlaf": {"type": "number"},
                "notiz": {"type": "string"}
            },
            "required": ["stimmung", "stress"]
        },
        "ScheduleRequest": {
            "type": "object",
            "properties": {
                "html": {"type": "string"}
            }
        },
        "StartTimerRequest": {
            "type": "object",
            "properties": {
                "mode": {"type": "string", "enum": ["lernphase", "pause"]},
                "minutes": {"type": "integer"},
                "exam_index": {"type": "integer"}
            },
            "required": ["mode"]
        },
        "RestoreRequest": {
            "type": "object",
            "properties": {
                "document": {"type": "object"},
                "confirm": {"type": "boolean"}
            },
            "required": ["document"]
        },
        "StudySheetRequest": {
            "type": "object",
            "properties": {
                "titel": {"type": "string"},
                "text": {"type": "string"}
            },
            "required": ["text"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
