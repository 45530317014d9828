// Package storage собирает in-memory коллекции всех сущностей сервиса в одно хранилище.
// Хранилище создается явно при старте приложения и передаётся сервисам; глобального состояния нет.
package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/member-hub/internal/models"
	"github.com/magabrotheeeer/member-hub/internal/storage/memory"
)

// Storage содержит по одной коллекции на тип сущности.
type Storage struct {
	Users       *memory.Collection[models.User]
	Profiles    *memory.Collection[models.Profile]
	Posts       *memory.Collection[models.Post]
	MemberTypes *memory.Collection[models.MemberType]
}

// New создаёт пустое хранилище и заполняет фиксированный набор типов участников.
func New(ctx context.Context, memberTypes ...models.MemberType) (*Storage, error) {
	const op = "storage.New"

	s := &Storage{
		Users:       memory.NewCollection[models.User]("user"),
		Profiles:    memory.NewCollection[models.Profile]("profile"),
		Posts:       memory.NewCollection[models.Post]("post"),
		MemberTypes: memory.NewCollection[models.MemberType]("member type"),
	}

	if len(memberTypes) == 0 {
		memberTypes = models.DefaultMemberTypes()
	}
	for _, mt := range memberTypes {
		if err := s.MemberTypes.Insert(ctx, mt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return s, nil
}

// Stats — количество записей в каждой коллекции.
type Stats struct {
	Users       int `json:"users"`
	Profiles    int `json:"profiles"`
	Posts       int `json:"posts"`
	MemberTypes int `json:"memberTypes"`
}

// Stats возвращает текущие размеры коллекций.
func (s *Storage) Stats() Stats {
	return Stats{
		Users:       s.Users.Len(),
		Profiles:    s.Profiles.Len(),
		Posts:       s.Posts.Len(),
		MemberTypes: s.MemberTypes.Len(),
	}
}
