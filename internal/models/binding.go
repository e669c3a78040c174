package models

import "errors"

// ErrAmbiguousBinding — комбинация тип/идентификаторы не образует
// однозначную привязку (ровно один id, совпадающий с типом).
var ErrAmbiguousBinding = errors.New("ambiguous content binding")

// ContentBinding — привязка слота ровно к одной единице контента
// объявленного типа.
//
// Инвариант «ровно один из news/quiz/fact, совпадающий с типом» закреплён
// конструктором: значение ContentBinding нельзя собрать в противоречивом
// виде. До nullable-колонок привязка разворачивается только на границе
// хранилища (NewsID/QuizID/FactID).
type ContentBinding struct {
	contentType ContentType
	contentID   int64
}

// NewContentBinding собирает привязку из типа и трёх опциональных
// идентификаторов (форма запроса/строки БД).
//
// Принимается ровно одна комбинация на тип:
//   - NEWS: newsID != nil, quizID == nil, factID == nil;
//   - QUIZ: quizID != nil, newsID == nil, factID == nil;
//   - FACT: factID != nil, newsID == nil, quizID == nil.
//
// Любая иная комбинация — ErrAmbiguousBinding. Это ошибка валидации,
// а не повод для «тихого» исправления.
func NewContentBinding(contentType ContentType, newsID, quizID, factID *int64) (ContentBinding, error) {
	switch contentType {
	case ContentTypeNews:
		if newsID == nil || quizID != nil || factID != nil {
			return ContentBinding{}, ErrAmbiguousBinding
		}
		return ContentBinding{contentType: contentType, contentID: *newsID}, nil
	case ContentTypeQuiz:
		if quizID == nil || newsID != nil || factID != nil {
			return ContentBinding{}, ErrAmbiguousBinding
		}
		return ContentBinding{contentType: contentType, contentID: *quizID}, nil
	case ContentTypeFact:
		if factID == nil || newsID != nil || quizID != nil {
			return ContentBinding{}, ErrAmbiguousBinding
		}
		return ContentBinding{contentType: contentType, contentID: *factID}, nil
	default:
		return ContentBinding{}, ErrAmbiguousBinding
	}
}

// MustContentBinding — вариант NewContentBinding для тестов и литералов,
// где комбинация заведомо корректна.
func MustContentBinding(contentType ContentType, contentID int64) ContentBinding {
	return ContentBinding{contentType: contentType, contentID: contentID}
}

// ContentType — тип привязанного контента.
func (b ContentBinding) ContentType() ContentType {
	return b.contentType
}

// ContentID — идентификатор привязанного контента.
func (b ContentBinding) ContentID() int64 {
	return b.contentID
}

// NewsID — идентификатор новости для колонки news_id (nil для других типов).
func (b ContentBinding) NewsID() *int64 {
	if b.contentType != ContentTypeNews {
		return nil
	}
	id := b.contentID
	return &id
}

// QuizID — идентификатор квиза для колонки quiz_id (nil для других типов).
func (b ContentBinding) QuizID() *int64 {
	if b.contentType != ContentTypeQuiz {
		return nil
	}
	id := b.contentID
	return &id
}

// FactID — идентификатор факта для колонки fact_id (nil для других типов).
func (b ContentBinding) FactID() *int64 {
	if b.contentType != ContentTypeFact {
		return nil
	}
	id := b.contentID
	return &id
}
