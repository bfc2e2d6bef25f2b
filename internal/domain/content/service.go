package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"crewsite/internal/pkg/validator"
	"crewsite/internal/realtime"
	"crewsite/internal/store"
)

// Notifier is told about every successful mutation.
type Notifier interface {
	Broadcast(resourceType string) int
}

// Service implements list/create/update/delete for one resource collection.
type Service[T any, C Creator[T], U Patch] struct {
	items     *store.Collection[T]
	notifier  Notifier
	resource  string
	listLimit int
	now       func() time.Time
	newID     func() string
}

func NewService[T any, C Creator[T], U Patch](db *gorm.DB, notifier Notifier, resource string, listLimit int) *Service[T, C, U] {
	return &Service[T, C, U]{
		items:     store.NewCollection[T](db),
		notifier:  notifier,
		resource:  resource,
		listLimit: listLimit,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// List returns records newest first, capped at the configured limit.
func (s *Service[T, C, U]) List(ctx context.Context) ([]T, error) {
	return s.items.FindAllDesc(ctx, "created_at", s.listLimit)
}

func (s *Service[T, C, U]) Create(ctx context.Context, in C) (*T, error) {
	if errs := validator.Validate(in); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	rec := in.NewRecord(s.newID(), s.now())
	if err := s.items.InsertOne(ctx, &rec); err != nil {
		return nil, err
	}
	s.notify()
	return &rec, nil
}

// Update writes only the fields present in patch and returns the stored record.
func (s *Service[T, C, U]) Update(ctx context.Context, id string, patch U) (*T, error) {
	if errs := validator.Validate(patch); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	if changes := patch.Changes(); len(changes) > 0 {
		n, err := s.items.UpdateOne(ctx, changes, store.Eq("id", id))
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrNotFound
		}
	}

	rec, err := s.items.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.notify()
	return rec, nil
}

func (s *Service[T, C, U]) Delete(ctx context.Context, id string) error {
	n, err := s.items.DeleteOne(ctx, store.Eq("id", id))
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.notify()
	return nil
}

func (s *Service[T, C, U]) Count(ctx context.Context) (int64, error) {
	return s.items.Count(ctx)
}

// Seed inserts docs only when the collection is empty. It does not broadcast.
func (s *Service[T, C, U]) Seed(ctx context.Context, docs []T) (bool, error) {
	n, err := s.items.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.items.InsertMany(ctx, docs); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service[T, C, U]) notify() {
	if s.notifier == nil {
		return
	}
	n := s.notifier.Broadcast(s.resource)
	log.Debug().Str("type", s.resource).Int("delivered", n).Msg("change broadcast")
}

// SiteService manages the singleton SiteContent document.
type SiteService struct {
	docs     *store.Collection[SiteContent]
	notifier Notifier
}

func NewSiteService(db *gorm.DB, notifier Notifier) *SiteService {
	return &SiteService{docs: store.NewCollection[SiteContent](db), notifier: notifier}
}

func (s *SiteService) Get(ctx context.Context) (*SiteContent, error) {
	doc, err := s.docs.FindByID(ctx, SiteContentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *SiteService) Update(ctx context.Context, patch UpdateSiteContentRequest) (*SiteContent, error) {
	if errs := validator.Validate(patch); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	if changes := patch.Changes(); len(changes) > 0 {
		n, err := s.docs.UpdateOne(ctx, changes, store.Eq("id", SiteContentID))
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrNotFound
		}
	}

	doc, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.Broadcast(realtime.TypeContent)
	}
	return doc, nil
}

// Seed stores doc as the singleton if none exists yet.
func (s *SiteService) Seed(ctx context.Context, doc SiteContent) (bool, error) {
	if _, err := s.Get(ctx); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, err
	}
	doc.ID = SiteContentID
	if err := s.docs.InsertOne(ctx, &doc); err != nil {
		return false, err
	}
	return true, nil
}
