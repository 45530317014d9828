// Package docs содержит OpenAPI-описание HTTP API, которое отдаёт Swagger UI на /docs/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {"tags": ["Users"], "summary": "Список пользователей", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"tags": ["Users"], "summary": "Создать пользователя", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.CreateUser"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "422": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/users/{id}": {
            "get": {"tags": ["Users"], "summary": "Получить пользователя", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}},
            "patch": {"tags": ["Users"], "summary": "Изменить пользователя", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.ChangeUser"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}},
            "delete": {"tags": ["Users"], "summary": "Удалить пользователя вместе с профилем, постами и подписками на него", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}, "412": {"description": "Сбой шага каскада", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/users/{id}/subscribeTo": {
            "post": {"tags": ["Users"], "summary": "Подписаться на пользователя", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.SubscribeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Подписка на себя или повторная подписка", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}, "404": {"description": "Не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/users/{id}/unsubscribeFrom": {
            "post": {"tags": ["Users"], "summary": "Отписаться от пользователя", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.SubscribeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "Подписки нет", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}, "404": {"description": "Не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/users/{id}/followers": {
            "get": {"tags": ["Users"], "summary": "Подписчики пользователя", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/profiles": {
            "get": {"tags": ["Profiles"], "summary": "Список профилей", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"tags": ["Profiles"], "summary": "Создать профиль", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.CreateProfile"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "400": {"description": "У пользователя уже есть профиль", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}, "404": {"description": "Пользователь или тип участника не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/profiles/{id}": {
            "get": {"tags": ["Profiles"], "summary": "Получить профиль", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "patch": {"tags": ["Profiles"], "summary": "Изменить профиль", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.ChangeProfile"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"tags": ["Profiles"], "summary": "Удалить профиль", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/posts": {
            "get": {"tags": ["Posts"], "summary": "Список постов", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "post": {"tags": ["Posts"], "summary": "Создать пост", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.CreatePost"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}, "404": {"description": "Пользователь не найден", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}}}
        },
        "/posts/{id}": {
            "get": {"tags": ["Posts"], "summary": "Получить пост", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "patch": {"tags": ["Posts"], "summary": "Изменить пост", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.ChangePost"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "delete": {"tags": ["Posts"], "summary": "Удалить пост", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/member-types": {
            "get": {"tags": ["MemberTypes"], "summary": "Список типов участников", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        },
        "/member-types/{id}": {
            "get": {"tags": ["MemberTypes"], "summary": "Получить тип участника", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}},
            "patch": {"tags": ["MemberTypes"], "summary": "Изменить скидку и лимит постов", "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.ChangeMemberType"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}}
        }
    },
    "definitions": {
        "models.CreateUser": {"type": "object", "required": ["email", "firstName", "lastName"],
            "properties": {"email": {"type": "string"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}}},
        "models.ChangeUser": {"type": "object",
            "properties": {"email": {"type": "string"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}}},
        "models.SubscribeRequest": {"type": "object", "required": ["userId"], "properties": {"userId": {"type": "string"}}},
        "models.CreateProfile": {"type": "object", "required": ["avatar", "birthday", "city", "country", "memberTypeId", "sex", "street", "userId"],
            "properties": {"avatar": {"type": "string"}, "birthday": {"type": "integer"}, "city": {"type": "string"}, "country": {"type": "string"}, "memberTypeId": {"type": "string"}, "sex": {"type": "string"}, "street": {"type": "string"}, "userId": {"type": "string"}}},
        "models.ChangeProfile": {"type": "object",
            "properties": {"avatar": {"type": "string"}, "birthday": {"type": "integer"}, "city": {"type": "string"}, "country": {"type": "string"}, "memberTypeId": {"type": "string"}, "sex": {"type": "string"}, "street": {"type": "string"}}},
        "models.CreatePost": {"type": "object", "required": ["content", "title", "userId"],
            "properties": {"content": {"type": "string"}, "title": {"type": "string"}, "userId": {"type": "string"}}},
        "models.ChangePost": {"type": "object", "properties": {"content": {"type": "string"}, "title": {"type": "string"}}},
        "models.ChangeMemberType": {"type": "object", "properties": {"discount": {"type": "number"}, "monthPostsLimit": {"type": "integer"}}},
        "response.Response": {"type": "object", "properties": {"data": {}, "error": {"type": "string"}, "status": {"type": "string"}}},
        "response.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string", "example": "the user with id 42 not found"}, "status": {"type": "string", "example": "Error"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Member Hub API",
	Description:      "API пользователей, профилей, постов и типов участников с подписками между пользователями",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
