// content — HTTP-клиент контент-сервиса: карточки новостей и квизов
// для собираемого попапа.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pribylovaa/recommendation-service/internal/config"
	"github.com/pribylovaa/recommendation-service/internal/service"
)

// Client реализует service.ContentLookup поверх REST API контент-сервиса.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ service.ContentLookup = (*Client)(nil)

// New создаёт клиент с таймаутом из конфигурации.
func New(cfg config.ContentConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// newsResponse — тело ответа GET /news/{id}.
type newsResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Summary      string    `json:"summary"`
	PublishedAt  time.Time `json:"published_at"`
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name"`
}

// quizResponse — тело ответа GET /quizzes/{id}.
type quizResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Question    string  `json:"question"`
	URL         string  `json:"url"`
	Rule        string  `json:"rule"`
	Answer      *bool   `json:"answer,omitempty"`
	Explanation *string `json:"explanation,omitempty"`
}

// NewsPayload возвращает карточку новости.
// Отсутствующая/удалённая новость — service.ErrContentNotFound.
func (c *Client) NewsPayload(ctx context.Context, newsID int64) (*service.NewsPayload, error) {
	const op = "clients/content/NewsPayload"

	var resp newsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/news/%d", c.baseURL, newsID), &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &service.NewsPayload{
		ID:           resp.ID,
		Title:        resp.Title,
		URL:          resp.URL,
		Summary:      resp.Summary,
		PublishedAt:  resp.PublishedAt,
		CategoryID:   resp.CategoryID,
		CategoryName: resp.CategoryName,
	}, nil
}

// QuizPayload возвращает карточку квиза. Ответ и объяснение запрашиваются
// только по явным флагам — при доставке они всегда false.
func (c *Client) QuizPayload(ctx context.Context, quizID int64, includeAnswer, includeExplanation bool) (*service.QuizPayload, error) {
	const op = "clients/content/QuizPayload"

	query := url.Values{}
	query.Set("include_answer", strconv.FormatBool(includeAnswer))
	query.Set("include_explanation", strconv.FormatBool(includeExplanation))

	var resp quizResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/quizzes/%d?%s", c.baseURL, quizID, query.Encode()), &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &service.QuizPayload{
		ID:          resp.ID,
		Title:       resp.Title,
		Question:    resp.Question,
		URL:         resp.URL,
		Rule:        resp.Rule,
		Answer:      resp.Answer,
		Explanation: resp.Explanation,
	}, nil
}

// getJSON выполняет GET и декодирует тело.
// 404 конвертируется в service.ErrContentNotFound, прочие не-200 — в ошибку
// с кодом статуса (без тела апстрима, чтобы не тащить чужие детали в логи).
func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return service.ErrContentNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
