package formnotifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client отправляет краткое описание бронирования в форму статического сайта
type Client struct {
	formURL    string
	formName   string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента; пустой formURL отключает отправку
func NewClient(formURL, formName string, timeout time.Duration) *Client {
	return &Client{
		formURL:  formURL,
		formName: formName,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Notification поля формы
type Notification struct {
	Name    string
	Email   string
	Phone   string
	Summary string
}

// Send отправляет форму (application/x-www-form-urlencoded)
func (c *Client) Send(ctx context.Context, n Notification) error {
	if c.formURL == "" {
		return ErrDisabled
	}

	form := url.Values{}
	form.Set("form-name", c.formName)
	form.Set("name", n.Name)
	form.Set("email", n.Email)
	form.Set("phone", n.Phone)
	form.Set("message", n.Summary)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.formURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	return nil
}
