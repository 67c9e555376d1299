package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/arlearn/admin-backend/internal/domain"
)

// APIClient implements Collaborator and Authenticator against the admin
// HTTP API. The stored session record rides along verbatim in the
// X-Session header, which is all the server checks.
type APIClient struct {
	baseURL string
	http    *http.Client
	store   SessionStore
}

// NewAPIClient creates an APIClient. A nil httpClient falls back to
// http.DefaultClient.
func NewAPIClient(baseURL string, httpClient *http.Client, store SessionStore) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{baseURL: baseURL, http: httpClient, store: store}
}

var _ Collaborator = (*APIClient)(nil)
var _ Authenticator = (*APIClient)(nil)

type wireModel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type wireQuiz struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
	OptionC  string `json:"option_c"`
	OptionD  string `json:"option_d"`
	Answer   string `json:"answer"`
}

func (w wireModel) toDomain() *domain.ARModel {
	return &domain.ARModel{ID: w.ID, Name: w.Name, Description: w.Description}
}

func (w wireQuiz) toDomain() *domain.QuizQuestion {
	return &domain.QuizQuestion{
		ID:       w.ID,
		Question: w.Question,
		OptionA:  w.OptionA,
		OptionB:  w.OptionB,
		OptionC:  w.OptionC,
		OptionD:  w.OptionD,
		Answer:   domain.AnswerKey(w.Answer),
	}
}

// Login exchanges credentials for a session record. The record is NOT
// stored here; the gate decides that.
func (c *APIClient) Login(ctx context.Context, name, password string) (domain.SessionRecord, error) {
	body := map[string]string{"name": name, "password": password}
	var rec domain.SessionRecord
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &rec); err != nil {
		return domain.SessionRecord{}, err
	}
	return rec, nil
}

func (c *APIClient) ListModels(ctx context.Context) ([]*domain.ARModel, error) {
	var wire []wireModel
	if err := c.do(ctx, http.MethodGet, "/api/catalog/models", nil, &wire); err != nil {
		return nil, err
	}
	models := make([]*domain.ARModel, 0, len(wire))
	for _, w := range wire {
		models = append(models, w.toDomain())
	}
	return models, nil
}

func (c *APIClient) CreateModel(ctx context.Context, fields ModelFields) (*domain.ARModel, error) {
	body := map[string]string{"name": fields.Name, "description": fields.Description}
	var wire wireModel
	if err := c.do(ctx, http.MethodPost, "/api/catalog/models", body, &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}

func (c *APIClient) UpdateModel(ctx context.Context, id int64, fields ModelFields) (*domain.ARModel, error) {
	body := map[string]string{"name": fields.Name, "description": fields.Description}
	var wire wireModel
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/catalog/models/%d", id), body, &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}

func (c *APIClient) DeleteModel(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/catalog/models/%d", id), nil, nil)
}

func (c *APIClient) ListQuestions(ctx context.Context) ([]*domain.QuizQuestion, error) {
	var wire []wireQuiz
	if err := c.do(ctx, http.MethodGet, "/api/catalog/quiz", nil, &wire); err != nil {
		return nil, err
	}
	questions := make([]*domain.QuizQuestion, 0, len(wire))
	for _, w := range wire {
		questions = append(questions, w.toDomain())
	}
	return questions, nil
}

func (c *APIClient) CreateQuestion(ctx context.Context, fields QuizFields) (*domain.QuizQuestion, error) {
	var wire wireQuiz
	if err := c.do(ctx, http.MethodPost, "/api/catalog/quiz", quizBody(fields), &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}

func (c *APIClient) UpdateQuestion(ctx context.Context, id int64, fields QuizFields) (*domain.QuizQuestion, error) {
	var wire wireQuiz
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/catalog/quiz/%d", id), quizBody(fields), &wire); err != nil {
		return nil, err
	}
	return wire.toDomain(), nil
}

func (c *APIClient) DeleteQuestion(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/catalog/quiz/%d", id), nil, nil)
}

func quizBody(fields QuizFields) map[string]string {
	return map[string]string{
		"question": fields.Question,
		"option_a": fields.OptionA,
		"option_b": fields.OptionB,
		"option_c": fields.OptionC,
		"option_d": fields.OptionD,
		"answer":   fields.Answer,
	}
}

// do runs one API round trip: encode body, attach session marker, map
// error statuses, decode response into out.
func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.store != nil {
		if rec, ok := c.store.Load(); ok {
			req.Header.Set("X-Session", string(rec.Encode()))
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// apiError turns an error response into the sentinel the caller switches
// on, keeping the server's message for the verbose save-error path.
func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	json.Unmarshal(raw, &payload) //nolint:errcheck
	msg := payload.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", msg, domain.ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", msg, domain.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: %w", msg, domain.ErrUnavailable)
	}
}
