package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

// resolveBinding проверяет целостность привязки запроса и собирает
// models.ContentBinding.
//
// Для FACT без явного factId привязка разрешается на месте: случайный факт
// «сначала из непросмотренных», см. resolveFactID. Любая неоднозначная
// комбинация — ErrInvalidContentBinding.
func (s *Service) resolveBinding(ctx context.Context, userID uuid.UUID, contentType models.ContentType, newsID, quizID, factID *int64) (models.ContentBinding, error) {
	const op = "service/binding/resolveBinding"

	if contentType == models.ContentTypeFact && factID == nil {
		if newsID != nil || quizID != nil {
			return models.ContentBinding{}, fmt.Errorf("%s: %w", op, ErrInvalidContentBinding)
		}

		resolved, err := s.resolveFactID(ctx, userID)
		if err != nil {
			return models.ContentBinding{}, fmt.Errorf("%s: %w", op, err)
		}
		factID = &resolved
	}

	binding, err := models.NewContentBinding(contentType, newsID, quizID, factID)
	if err != nil {
		return models.ContentBinding{}, fmt.Errorf("%s: %w", op, ErrInvalidContentBinding)
	}

	return binding, nil
}

// resolveFactID выбирает факт для слота без явной привязки.
//
// Порядок:
//  1. равномерно случайный факт среди ещё не открытых пользователем;
//  2. если непросмотренных нет — равномерно случайный из всего каталога;
//  3. пустой каталог — ErrResourceNotFound.
//
// Равномерность обеспечивается случайным смещением в упорядоченной выборке,
// а не «первой строкой» — выбор не смещён к маленьким id.
func (s *Service) resolveFactID(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "service/binding/resolveFactID"

	unseen, err := s.storage.CountUnseenFacts(ctx, userID)
	if err != nil {
		return 0, coerceInternal(op, err)
	}

	if unseen > 0 {
		fact, err := s.storage.UnseenFactAt(ctx, userID, s.randInt64(unseen))
		if err == nil {
			return fact.ID, nil
		}
		// Гонка с конкурентной отметкой просмотра: множество могло
		// сократиться между count и выборкой — падаем в общий фоллбек.
		if !errors.Is(err, storage.ErrNotFound) {
			return 0, coerceInternal(op, err)
		}
	}

	total, err := s.storage.CountFacts(ctx)
	if err != nil {
		return 0, coerceInternal(op, err)
	}
	if total == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrResourceNotFound)
	}

	fact, err := s.storage.FactAt(ctx, s.randInt64(total))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, fmt.Errorf("%s: %w", op, ErrResourceNotFound)
		}

		return 0, coerceInternal(op, err)
	}

	return fact.ID, nil
}
