package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// Config holds the settings of [NewHTTPClient].
type Config struct {
	// BaseURL is the server address, e.g. "http://localhost:5000".
	// A missing scheme defaults to http.
	BaseURL string

	// Timeout bounds every request. Zero means no timeout.
	Timeout time.Duration
}

type httpClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPClient constructs the resty implementation of [Client] with its
// own cookie jar. Returns an error if cfg.BaseURL is empty or cannot be
// parsed as a URL.
func NewHTTPClient(cfg Config, logger *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetCookieJar(jar).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")

	return &httpClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// do sends a request with an optional JSON body and decodes the envelope.
func (h *httpClient) do(ctx context.Context, method, path string, body any) (models.Response, error) {
	var result models.Response

	req := h.client.R().
		SetContext(ctx).
		SetResult(&result)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return models.Response{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return result, nil
}

func (h *httpClient) Signup(ctx context.Context, req models.SignupRequest) (models.UserInfo, error) {
	resp, err := h.do(ctx, http.MethodPost, "/api/signup", req)
	if err != nil {
		return models.UserInfo{}, err
	}
	if resp.User == nil {
		return models.UserInfo{}, errors.New("signup response without user")
	}
	return *resp.User, nil
}

func (h *httpClient) Login(ctx context.Context, username, password string) (models.UserInfo, error) {
	resp, err := h.do(ctx, http.MethodPost, "/api/login", models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return models.UserInfo{}, err
	}
	if resp.User == nil {
		return models.UserInfo{}, errors.New("login response without user")
	}
	return *resp.User, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	_, err := h.do(ctx, http.MethodPost, "/api/logout", nil)
	return err
}

func (h *httpClient) Me(ctx context.Context) (models.UserInfo, bool, error) {
	resp, err := h.do(ctx, http.MethodGet, "/api/me", nil)
	if err != nil {
		return models.UserInfo{}, false, err
	}
	if !resp.Success || resp.User == nil {
		return models.UserInfo{}, false, nil
	}
	return *resp.User, true, nil
}

func (h *httpClient) Stats(ctx context.Context) (models.Stats, error) {
	resp, err := h.do(ctx, http.MethodGet, "/api/stats", nil)
	if err != nil {
		return models.Stats{}, err
	}
	if resp.Stats == nil {
		return models.Stats{}, errors.New("stats response without stats")
	}
	return *resp.Stats, nil
}

func (h *httpClient) ListDocuments(ctx context.Context) ([]models.DocumentView, error) {
	var result models.DocumentsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/documents")
	if err != nil {
		return nil, fmt.Errorf("list documents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Documents, nil
}

func (h *httpClient) AddLink(ctx context.Context, req models.AddLinkRequest) error {
	_, err := h.do(ctx, http.MethodPost, "/api/documents", req)
	return err
}

func (h *httpClient) Upload(ctx context.Context, req models.UploadRequest) error {
	if req.Content == nil {
		return fmt.Errorf("%w: no file content", ErrBadRequest)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", req.FileName, req.Content).
		SetFormData(map[string]string{
			"category":    req.Category,
			"tags":        req.Tags,
			"description": req.Description,
		}).
		Post("/api/upload")
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpClient) DeleteDocument(ctx context.Context, documentID int64) error {
	_, err := h.do(ctx, http.MethodDelete, "/api/documents/"+strconv.FormatInt(documentID, 10), nil)
	return err
}

// Download streams the response body into w without buffering the file.
func (h *httpClient) Download(ctx context.Context, documentID int64, w io.Writer) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get("/api/documents/" + strconv.FormatInt(documentID, 10) + "/download")
	if err != nil {
		return "", fmt.Errorf("download request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		data, _ := io.ReadAll(body)
		return "", mapStatus(resp.StatusCode(), data)
	}

	if _, err = io.Copy(w, body); err != nil {
		return "", fmt.Errorf("error reading download: %w", err)
	}

	name := ""
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		name = params["filename"]
	} else {
		h.logger.Debug().Err(err).Int64("document_id", documentID).Msg("download without file name")
	}
	return name, nil
}

func (h *httpClient) Version(ctx context.Context) (string, error) {
	resp, err := h.do(ctx, http.MethodGet, "/api/version", nil)
	if err != nil {
		return "", err
	}
	return resp.Version, nil
}

func (h *httpClient) Health(ctx context.Context) error {
	_, err := h.do(ctx, http.MethodGet, "/healthz", nil)
	return err
}
