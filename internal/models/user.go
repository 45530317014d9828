// Package models содержит доменные структуры сервиса: пользователей, профили, посты и типы участников,
// а также структуры для приёма данных из JSON-запросов.
package models

import "slices"

// User представляет пользователя. SubscribedToUserIDs — список id пользователей,
// на которых он подписан; связь хранится только на стороне подписчика.
type User struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"firstName" validate:"required"`
	LastName            string   `json:"lastName" validate:"required"`
	Email               string   `json:"email" validate:"required"`
	SubscribedToUserIDs []string `json:"subscribedToUserIds"`
}

// RecordID возвращает id записи.
func (u User) RecordID() string { return u.ID }

// WithID возвращает копию пользователя с новым id.
func (u User) WithID(id string) User {
	u.ID = id
	return u
}

// Clone возвращает копию, не разделяющую срез подписок с оригиналом.
func (u User) Clone() User {
	u.SubscribedToUserIDs = slices.Clone(u.SubscribedToUserIDs)
	if u.SubscribedToUserIDs == nil {
		u.SubscribedToUserIDs = []string{}
	}
	return u
}

// Field возвращает значение поля по его JSON-имени.
func (u User) Field(key string) (any, bool) {
	switch key {
	case "id":
		return u.ID, true
	case "firstName":
		return u.FirstName, true
	case "lastName":
		return u.LastName, true
	case "email":
		return u.Email, true
	case "subscribedToUserIds":
		return u.SubscribedToUserIDs, true
	}
	return nil, false
}

// IsSubscribedTo сообщает, есть ли userID в списке подписок.
func (u User) IsSubscribedTo(userID string) bool {
	return slices.Contains(u.SubscribedToUserIDs, userID)
}

// CreateUser используется для приёма данных нового пользователя из JSON-запроса.
type CreateUser struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

// ChangeUser — частичное обновление пользователя. Подписки меняются только через subscribe/unsubscribe.
type ChangeUser struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Email     *string `json:"email,omitempty" validate:"omitempty,min=1"`
}

// Apply переносит заданные поля в u.
func (c ChangeUser) Apply(u *User) {
	if c.FirstName != nil {
		u.FirstName = *c.FirstName
	}
	if c.LastName != nil {
		u.LastName = *c.LastName
	}
	if c.Email != nil {
		u.Email = *c.Email
	}
}

// SubscribeRequest — тело запросов subscribeTo/unsubscribeFrom.
type SubscribeRequest struct {
	UserID string `json:"userId" validate:"required"`
}
