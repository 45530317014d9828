package services

import (
	"time"

	"github.com/magabrotheeeer/member-hub/internal/models"
)

// Типы событий; они же используются как routing key.
const (
	EventUserCreated       = "user.created"
	EventUserUpdated       = "user.updated"
	EventUserDeleted       = "user.deleted"
	EventUserSubscribed    = "user.subscribed"
	EventUserUnsubscribed  = "user.unsubscribed"
	EventProfileCreated    = "profile.created"
	EventProfileUpdated    = "profile.updated"
	EventProfileDeleted    = "profile.deleted"
	EventPostCreated       = "post.created"
	EventPostUpdated       = "post.updated"
	EventPostDeleted       = "post.deleted"
	EventMemberTypeUpdated = "member_type.updated"
)

// Event — доменное событие об изменении хранилища.
type Event struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entityId"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// UserDeletedData — подробности каскада для события user.deleted.
type UserDeletedData struct {
	User             models.User `json:"user"`
	DeletedProfileID string      `json:"deletedProfileId,omitempty"`
	DeletedPostIDs   []string    `json:"deletedPostIds"`
	RepairedUserIDs  []string    `json:"repairedUserIds"`
}

// SubscriptionData — подробности событий подписки.
type SubscriptionData struct {
	FollowerID string `json:"followerId"`
	TargetID   string `json:"targetId"`
}
