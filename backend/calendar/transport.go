package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HTTPTransport talks to the calendar endpoints over HTTP. A request is
// bounded by Timeout or the context deadline, whichever comes first.
// Cancelling a context without a deadline is only observed before sending.
type HTTPTransport struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func NewHTTPTransport(baseURL, token string) *HTTPTransport {
	return &HTTPTransport{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Timeout: 10 * time.Second,
	}
}

func (t *HTTPTransport) calendarURL(habitID uint) string {
	return fmt.Sprintf("%s/api/habits/%d/calendar", t.BaseURL, habitID)
}

func (t *HTTPTransport) UpdateDay(ctx context.Context, habitID uint, req UpdateRequest) (*UpdateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Err: err}
	}
	a := fiber.Post(t.calendarURL(habitID)).JSON(req)

	var resp UpdateResponse
	if err := t.do(ctx, a, &resp); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Message == "" {
			statusErr.Message = resp.Message
		}
		return nil, err
	}
	return &resp, nil
}

func (t *HTTPTransport) MonthView(ctx context.Context, habitID uint, year, month int) (*MonthView, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Err: err}
	}
	a := fiber.Get(t.calendarURL(habitID)).
		QueryString(fmt.Sprintf("year=%d&month=%d", year, month))

	var envelope struct {
		Data MonthView `json:"data"`
	}
	if err := t.do(ctx, a, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// do sends the request and decodes the body into v. The agent is released
// by fiber once the response is read.
func (t *HTTPTransport) do(ctx context.Context, a *fiber.Agent, v interface{}) error {
	timeout := t.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		left := time.Until(deadline)
		if left <= 0 {
			fiber.ReleaseAgent(a)
			return &TransportError{Err: context.DeadlineExceeded}
		}
		if timeout <= 0 || left < timeout {
			timeout = left
		}
	}

	a.Set(fiber.HeaderAuthorization, "Bearer "+t.Token)
	if timeout > 0 {
		a.Timeout(timeout)
	}
	if err := a.Parse(); err != nil {
		return &TransportError{Err: err}
	}

	code, body, errs := a.Bytes()
	if code == 0 {
		return &TransportError{Err: errors.Join(append(errs, ctx.Err())...)}
	}
	decodeErr := json.Unmarshal(body, v)
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return &StatusError{Code: code}
	}
	if len(errs) > 0 {
		return &TransportError{Err: errors.Join(errs...)}
	}
	if decodeErr != nil {
		return &TransportError{Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	return nil
}
