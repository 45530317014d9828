package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/magabrotheeeer/member-hub/internal/lib/apperr"
	"github.com/magabrotheeeer/member-hub/internal/lib/sl"
	"github.com/magabrotheeeer/member-hub/internal/models"
	"github.com/magabrotheeeer/member-hub/internal/storage/memory"
)

const (
	entityUser       = "user"
	entityProfile    = "profile"
	entityPost       = "post"
	entityMemberType = "member_type"
)

// Шаги каскадного удаления пользователя; попадают в apperr.Error.Step.
const (
	StepProfile   = "profile"
	StepPosts     = "posts"
	StepFollowers = "followers"
	StepUser      = "user"
)

// UserService реализует операции над пользователями, включая каскадное удаление и подписки.
type UserService struct {
	s *Service
}

// List возвращает всех пользователей в порядке создания.
func (u *UserService) List(ctx context.Context) ([]models.User, error) {
	const op = "services.UserService.List"
	users, err := u.s.repos.Users.FindMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Get возвращает пользователя по id.
func (u *UserService) Get(ctx context.Context, id string) (models.User, error) {
	const op = "services.UserService.Get"
	user, found, err := cachedGet(ctx, u.s, entityUser, u.s.repos.Users, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return models.User{}, apperr.NotFound("the user with id %s not found", id)
	}
	return user, nil
}

// Create создает пользователя с пустым списком подписок.
func (u *UserService) Create(ctx context.Context, req models.CreateUser) (models.User, error) {
	const op = "services.UserService.Create"
	s := u.s
	s.mu.Lock()
	user, err := s.repos.Users.Create(ctx, models.User{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		SubscribedToUserIDs: []string{},
	})
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityUser, "create", err)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new user", slog.String("id", user.ID))
	s.publish(ctx, EventUserCreated, user.ID, user)
	return user, nil
}

// Update меняет имя и почту пользователя. Подписки через Update не меняются.
func (u *UserService) Update(ctx context.Context, id string, req models.ChangeUser) (models.User, error) {
	const op = "services.UserService.Update"
	s := u.s
	s.mu.Lock()
	user, err := s.repos.Users.Change(ctx, id, req.Apply)
	s.mu.Unlock()
	s.metrics.ObserveMutation(entityUser, "update", err)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx, cacheRef{entityUser, id})
	s.log.Info("updated user", slog.String("id", id))
	s.publish(ctx, EventUserUpdated, id, user)
	return user, nil
}

// Delete удаляет пользователя вместе с его профилем и постами и убирает его id из подписок
// остальных пользователей. Профиль, посты и подписчики обрабатываются параллельно; сам
// пользователь удаляется только после успеха всех трёх шагов. Ошибка шага возвращается как
// apperr.KindPrecondition с тегом шага; уже выполненные шаги не откатываются.
func (u *UserService) Delete(ctx context.Context, id string) (models.User, error) {
	const op = "services.UserService.Delete"
	s := u.s

	s.mu.Lock()
	res, err := u.delete(ctx, id)
	s.mu.Unlock()

	// сброс кеша относится к уже выполненным изменениям и не зависит от клиента
	ctx = context.WithoutCancel(ctx)
	s.invalidate(ctx, res.cacheRefs()...)

	if res.profileID != "" {
		s.metrics.ObserveCascade(StepProfile, 1)
	}
	s.metrics.ObserveCascade(StepPosts, len(res.postIDs))
	s.metrics.ObserveCascade(StepFollowers, len(res.followerIDs))
	s.metrics.ObserveMutation(entityUser, "delete", err)

	if err != nil {
		if apperr.StepOf(err) != "" {
			s.log.Error("user delete cascade failed", slog.String("id", id), sl.Typed(err))
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("deleted user",
		slog.String("id", id),
		slog.Bool("profile_deleted", res.profileID != ""),
		slog.Int("posts_deleted", len(res.postIDs)),
		slog.Int("followers_repaired", len(res.followerIDs)),
	)
	s.publish(ctx, EventUserDeleted, id, UserDeletedData{
		User:             res.user,
		DeletedProfileID: res.profileID,
		DeletedPostIDs:   res.postIDs,
		RepairedUserIDs:  res.followerIDs,
	})
	return res.user, nil
}

// userDeleteResult — что успел сделать каскад удаления пользователя.
type userDeleteResult struct {
	userID      string
	user        models.User
	profileID   string
	postIDs     []string
	followerIDs []string
}

func (r userDeleteResult) cacheRefs() []cacheRef {
	if r.userID == "" {
		return nil
	}
	refs := []cacheRef{{entityUser, r.userID}}
	if r.profileID != "" {
		refs = append(refs, cacheRef{entityProfile, r.profileID})
	}
	for _, postID := range r.postIDs {
		refs = append(refs, cacheRef{entityPost, postID})
	}
	for _, followerID := range r.followerIDs {
		refs = append(refs, cacheRef{entityUser, followerID})
	}
	return refs
}

// delete выполняет каскад. Вызывается под s.mu.
func (u *UserService) delete(ctx context.Context, id string) (userDeleteResult, error) {
	var res userDeleteResult

	_, found, err := u.s.repos.Users.Get(ctx, id)
	if err != nil {
		return res, err
	}
	if !found {
		return res, apperr.NotFound("the user with id %s not found", id)
	}
	res.userID = id

	// начатый каскад доводится до конца, даже если клиент уже отключился
	ctx = context.WithoutCancel(ctx)

	// errgroup без общего контекста: сбой одного шага не прерывает остальные.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		res.profileID, err = u.deleteProfileOf(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		res.postIDs, err = u.deletePostsOf(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		res.followerIDs, err = u.unsubscribeFollowersOf(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return res, err
	}

	res.user, err = u.s.repos.Users.Delete(ctx, id)
	if err != nil {
		return res, apperr.Precondition(StepUser, err, "user delete error")
	}
	return res, nil
}

// deleteProfileOf удаляет профиль пользователя userID, если он есть, и возвращает его id.
func (u *UserService) deleteProfileOf(ctx context.Context, userID string) (string, error) {
	repo := u.s.repos.Profiles
	profile, found, err := repo.FindOne(ctx, memory.Filter{Key: "userId", Equals: userID})
	if err != nil {
		return "", apperr.Precondition(StepProfile, err, "user delete error: profile delete error")
	}
	if !found {
		return "", nil
	}
	if _, err := repo.Delete(ctx, profile.ID); err != nil {
		return "", apperr.Precondition(StepProfile, err, "user delete error: profile delete error")
	}
	return profile.ID, nil
}

// deletePostsOf удаляет все посты пользователя userID. Удалить пытается каждый пост;
// id постов, которые удалить не удалось, перечисляются в ошибке.
func (u *UserService) deletePostsOf(ctx context.Context, userID string) ([]string, error) {
	repo := u.s.repos.Posts
	posts, err := repo.FindMany(ctx, memory.Filter{Key: "userId", Equals: userID})
	if err != nil {
		return nil, apperr.Precondition(StepPosts, err, "user delete error: posts delete error")
	}

	deleted := make([]string, 0, len(posts))
	var failed []string
	var errs []error
	for _, post := range posts {
		if _, err := repo.Delete(ctx, post.ID); err != nil {
			failed = append(failed, post.ID)
			errs = append(errs, err)
			continue
		}
		deleted = append(deleted, post.ID)
	}
	if len(errs) > 0 {
		return deleted, apperr.Precondition(StepPosts, errors.Join(errs...),
			"user delete error: posts delete error (failed posts: %s)", strings.Join(failed, ", "))
	}
	return deleted, nil
}

// unsubscribeFollowersOf убирает userID из подписок всех пользователей, которые на него подписаны.
func (u *UserService) unsubscribeFollowersOf(ctx context.Context, userID string) ([]string, error) {
	repo := u.s.repos.Users
	followers, err := repo.FindMany(ctx, memory.Filter{Key: "subscribedToUserIds", Equals: userID})
	if err != nil {
		return nil, apperr.Precondition(StepFollowers, err, "user delete error: followers delete error")
	}

	repaired := make([]string, 0, len(followers))
	var failed []string
	var errs []error
	for _, follower := range followers {
		_, err := repo.Change(ctx, follower.ID, func(rec *models.User) {
			rec.SubscribedToUserIDs = slices.DeleteFunc(rec.SubscribedToUserIDs, func(fid string) bool {
				return fid == userID
			})
		})
		if err != nil {
			failed = append(failed, follower.ID)
			errs = append(errs, err)
			continue
		}
		repaired = append(repaired, follower.ID)
	}
	if len(errs) > 0 {
		return repaired, apperr.Precondition(StepFollowers, errors.Join(errs...),
			"user delete error: followers delete error (failed users: %s)", strings.Join(failed, ", "))
	}
	return repaired, nil
}

// Followers возвращает пользователей, подписанных на userID.
func (u *UserService) Followers(ctx context.Context, userID string) ([]models.User, error) {
	const op = "services.UserService.Followers"
	if _, err := u.Get(ctx, userID); err != nil {
		return nil, err
	}
	followers, err := u.s.repos.Users.FindMany(ctx, memory.Filter{Key: "subscribedToUserIds", Equals: userID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return followers, nil
}
