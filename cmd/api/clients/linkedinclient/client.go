package linkedinclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"influence-os/cmd/api/httpclient"
)

// Client is a thin wrapper over the LinkedIn REST API for the two
// bearer-authenticated calls this service makes: member profile lookup and
// post publishing. The bearer token is supplied by the caller on every
// call; the client holds no credentials of its own.
//
// Base URL defaults to https://api.linkedin.com and can be overridden with
// LINKEDIN_API_BASE_URL (tests point it at a local server).
type Client struct {
	base *httpclient.BaseClient
}

const (
	defaultBaseURL = "https://api.linkedin.com"

	userInfoPath = "/v2/userinfo"
	postsPath    = "/rest/posts"

	// versioned Posts API headers
	restliProtocolVersion = "2.0.0"
	linkedInVersion       = "202401"
)

func New() *Client {
	base := os.Getenv("LINKEDIN_API_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return NewWithBaseURL(base)
}

func NewWithBaseURL(baseURL string) *Client {
	return &Client{base: httpclient.NewBaseClient(baseURL)}
}

// APIError is a non-success response from LinkedIn. Body carries the raw
// provider response so callers can surface it verbatim.
type APIError struct {
	Op     string
	Status int
	Body   []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("linkedin %s: unexpected status %d", e.Op, e.Status)
}

// Details returns the provider body decoded as JSON when possible,
// otherwise the body as a string.
func (e *APIError) Details() any {
	var v any
	if len(e.Body) > 0 && json.Unmarshal(e.Body, &v) == nil {
		return v
	}
	return string(e.Body)
}

// UserInfo performs GET /v2/userinfo with the bearer token and returns the
// profile JSON verbatim on 200. Any other status yields an *APIError.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (json.RawMessage, error) {
	req, err := c.base.NewRequest(ctx, http.MethodGet, userInfoPath, nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Op: "userinfo", Status: resp.StatusCode, Body: body}
	}
	return json.RawMessage(body), nil
}

// SubjectFromUserInfo extracts the sub claim from a userinfo response.
func SubjectFromUserInfo(raw json.RawMessage) (string, error) {
	var info struct {
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return "", fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Sub == "" {
		return "", fmt.Errorf("userinfo response has no sub claim")
	}
	return info.Sub, nil
}

// PersonURN builds the author URN for a userinfo subject id.
func PersonURN(sub string) string {
	return "urn:li:person:" + sub
}

type postDistribution struct {
	FeedDistribution               string `json:"feedDistribution"`
	TargetEntities                 []any  `json:"targetEntities"`
	ThirdPartyDistributionChannels []any  `json:"thirdPartyDistributionChannels"`
}

type postPayload struct {
	Author                    string           `json:"author"`
	Commentary                string           `json:"commentary"`
	Visibility                string           `json:"visibility"`
	Distribution              postDistribution `json:"distribution"`
	LifecycleState            string           `json:"lifecycleState"`
	IsReshareDisabledByAuthor bool             `json:"isReshareDisabledByAuthor"`
}

// CreatePost publishes text on behalf of the member identified by
// authorURN. The payload shape is dictated by the provider: public
// visibility, main-feed distribution with no targeting and no third-party
// channels, lifecycle state PUBLISHED, reshares left enabled. 201 is the
// only success status.
func (c *Client) CreatePost(ctx context.Context, accessToken, authorURN, text string) error {
	payload := postPayload{
		Author:     authorURN,
		Commentary: text,
		Visibility: "PUBLIC",
		Distribution: postDistribution{
			FeedDistribution:               "MAIN_FEED",
			TargetEntities:                 []any{},
			ThirdPartyDistributionChannels: []any{},
		},
		LifecycleState:            "PUBLISHED",
		IsReshareDisabledByAuthor: false,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, postsPath, nil, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", restliProtocolVersion)
	req.Header.Set("LinkedIn-Version", linkedInVersion)

	resp, err := c.base.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return &APIError{Op: "create post", Status: resp.StatusCode, Body: body}
	}
	return nil
}
