// Package docs SafeRoute Service API.
//
// Сервис рекомендации маршрутов с оценкой безопасности.
// Строит альтернативные маршруты через внешнего провайдера, оценивает каждый
// по отчетам сообщества и статическим факторам, классифицирует и ранжирует
// по предпочтению пользователя.
//
// Основные возможности:
// - Построение и оценка альтернативных маршрутов (safest / fastest / balanced)
// - Отчеты сообщества об инцидентах с гео-поиском в радиусе
// - История маршрутов пользователя с обратной связью
// - События о новых отчетах через Redis Streams
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
