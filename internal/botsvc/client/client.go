package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth"
)

// Client talks to the rewards service over its JSON API. Admin calls
// carry a short-lived capability token signed with the shared secret.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokenAuth  *jwtauth.JWTAuth
}

func New(baseURL, serviceSecret string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   baseURL,
		tokenAuth: jwtauth.New("HS256", []byte(serviceSecret), nil),
	}
}

// APIError is a non-2xx response from the rewards service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rewards api: %d %s", e.StatusCode, e.Message)
}

// IsUserFacing reports whether the error message is safe to relay to
// chat (validation and not-found responses carry user-safe text such as
// the bonus cooldown remaining).
func IsUserFacing(err error) (string, bool) {
	if apiErr, ok := err.(*APIError); ok {
		if apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusNotFound {
			return apiErr.Message, true
		}
	}
	return "", false
}

func (c *Client) adminToken() string {
	_, tokenString, _ := c.tokenAuth.Encode(map[string]interface{}{
		"service": "botsvc",
		"exp":     time.Now().Add(5 * time.Minute).Unix(),
	})
	return tokenString
}

func (c *Client) do(ctx context.Context, method, path string, body any, admin bool, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+c.adminToken())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		message := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			message = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) Register(ctx context.Context, userId int64, username string) error {
	return c.do(ctx, http.MethodPost, "/register", map[string]any{
		"user_id":  userId,
		"username": username,
	}, false, nil)
}

func (c *Client) GetUser(ctx context.Context, userId int64) (*User, error) {
	u := &User{}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%d", userId), nil, false, u)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (c *Client) UserStats(ctx context.Context, userId int64) (*GameStats, error) {
	s := &GameStats{}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/stats/%d", userId), nil, false, s)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c *Client) DailyBonus(ctx context.Context, userId int64) (*BonusResult, error) {
	r := &BonusResult{}
	err := c.do(ctx, http.MethodPost, "/daily-bonus", map[string]any{"user_id": userId}, false, r)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) SpinRoulette(ctx context.Context, userId int64) (*SpinResult, error) {
	r := &SpinResult{}
	err := c.do(ctx, http.MethodPost, "/spin-roulette", map[string]any{"user_id": userId}, false, r)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) Inventory(ctx context.Context, userId int64) ([]InventoryItem, error) {
	items := []InventoryItem{}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/inventory/%d", userId), nil, false, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Withdraw(ctx context.Context, userId int64, username, itemName string, itemValue int64) (*WithdrawResult, error) {
	r := &WithdrawResult{}
	err := c.do(ctx, http.MethodPost, "/withdraw", map[string]any{
		"user_id":    userId,
		"username":   username,
		"item_name":  itemName,
		"item_value": itemValue,
	}, false, r)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) AdminWithdrawals(ctx context.Context) ([]Withdrawal, error) {
	items := []Withdrawal{}
	err := c.do(ctx, http.MethodGet, "/admin/withdrawals", nil, true, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AdminAddStars(ctx context.Context, userId int64, amount int64) (*AddStarsResult, error) {
	r := &AddStarsResult{}
	err := c.do(ctx, http.MethodPost, "/admin/add-stars", map[string]any{
		"user_id": userId,
		"amount":  amount,
	}, true, r)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) AdminStats(ctx context.Context) (*AdminStats, error) {
	r := &AdminStats{}
	err := c.do(ctx, http.MethodGet, "/admin/stats", nil, true, r)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Client) AdminCompleteWithdrawal(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/complete-withdrawal/%d", id), nil, true, nil)
}
