package bring

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/basketsync/backend/internal/domain"
	"github.com/basketsync/backend/internal/logger"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// Config holds what the client needs to talk to Bring
type Config struct {
	BaseURL    string
	WebURL     string
	APIKey     string
	Country    string
	Username   string
	Password   string
	Timeout    time.Duration
	RateLimit  float64 // requests per second
	CatalogTTL time.Duration
}

// Client is an authenticated Bring session. It implements domain.BringSession.
type Client struct {
	http        *resty.Client
	webURL      string
	username    string
	password    string
	catalogTTL  time.Duration
	rateLimiter *rate.Limiter
	cache       domain.CacheRepository
	log         *logger.Logger

	mu          sync.RWMutex
	userUUID    string
	publicUUID  string
	token       string
	catalog     domain.ProductCatalog
	articleKeys map[string]map[string]string // locale -> display name -> article key
	listLocales map[string]string
	userLocale  string
}

// NewClient creates a new Bring API client. cache may be nil.
func NewClient(cfg Config, cache domain.CacheRepository, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeaders(map[string]string{
			"X-BRING-API-KEY":     cfg.APIKey,
			"X-BRING-CLIENT":      "webApp",
			"X-BRING-APPLICATION": "bring",
			"X-BRING-COUNTRY":     cfg.Country,
			"User-Agent":          "basketsync/1.0",
		})

	return &Client{
		http:        cli,
		webURL:      strings.TrimRight(cfg.WebURL, "/"),
		username:    cfg.Username,
		password:    cfg.Password,
		catalogTTL:  cfg.CatalogTTL,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		cache:       cache,
		log:         log.Component("bring"),
	}
}

// Login authenticates against Bring and then loads the product catalog.
// Catalog problems are logged and leave the catalog empty.
func (c *Client) Login(ctx context.Context) error {
	c.log.Info().Str("user", c.username).Msg("Attempting the login into Bring")

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":    c.username,
			"password": c.password,
		}).
		Post("/bringauth")
	if err != nil {
		return fmt.Errorf("%w: login request: %v", domain.ErrBringAPIFailure, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	var auth authResponse
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	if auth.AccessToken == "" || auth.UUID == "" {
		return fmt.Errorf("%w: login response without token", domain.ErrUnauthorized)
	}

	c.mu.Lock()
	c.userUUID = auth.UUID
	c.publicUUID = auth.PublicUUID
	c.token = auth.AccessToken
	c.mu.Unlock()

	c.log.Info().Str("user_uuid", auth.UUID).Msg("Login successful")

	if err := c.RefreshCatalog(ctx); err != nil {
		c.log.Warn().Err(err).Msg("Could not load product catalog, fuzzy matching will be skipped")
	}

	return nil
}

// LoadLists returns every list visible to the logged-in account
func (c *Client) LoadLists(ctx context.Context) ([]domain.BringList, error) {
	userUUID, err := c.sessionUser()
	if err != nil {
		return nil, err
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := c.send(req.SetPathParam("uuid", userUUID), http.MethodGet, "/bringusers/{uuid}/lists")
	if err != nil {
		return nil, err
	}

	var lists listsResponse
	if err := json.Unmarshal(resp.Body(), &lists); err != nil {
		return nil, fmt.Errorf("failed to decode lists response: %w", err)
	}

	c.log.Debug().Int("count", len(lists.Lists)).Msg("Loaded lists")
	return lists.Lists, nil
}

// BatchUpdateList applies op to every change in a single request. Item IDs
// given as display names in the list's language are sent as article keys.
func (c *Client) BatchUpdateList(ctx context.Context, list domain.ListHandle, changes []domain.ItemChange, op domain.ItemOperation) error {
	if !op.Valid() {
		return fmt.Errorf("%w: item operation %q", domain.ErrInvalidRequest, op)
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	req = req.
		SetPathParam("list", string(list)).
		SetHeader("Content-Type", "application/json").
		SetBody(newBatchRequest(toArticleKeys(changes, c.articleKeysFor(list)), op))

	if _, err := c.send(req, http.MethodPut, "/v2/bringlists/{list}/items"); err != nil {
		return err
	}

	c.log.Debug().Str("list", string(list)).Int("items", len(changes)).Str("operation", string(op)).Msg("Batch update sent")
	return nil
}

// Notify sends a push notification of the given type to all list members
func (c *Client) Notify(ctx context.Context, list domain.ListHandle, notification domain.NotificationType) error {
	if !notification.Valid() {
		return fmt.Errorf("%w: notification type %q", domain.ErrInvalidRequest, notification)
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return err
	}

	c.mu.RLock()
	sender := c.publicUUID
	c.mu.RUnlock()

	req = req.
		SetPathParam("list", string(list)).
		SetHeader("Content-Type", "application/json").
		SetBody(notificationRequest{
			Arguments:            []string{},
			ListNotificationType: notification,
			SenderPublicUserUUID: sender,
		})

	_, err = c.send(req, http.MethodPost, "/v2/bringnotifications/lists/{list}")
	return err
}

// TranslationCatalog returns the product names of the last catalog refresh
func (c *Client) TranslationCatalog() domain.ProductCatalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}

// RefreshCatalog reloads the account's article languages and the article
// table of each language. Both are read through the cache, so Bring is only
// asked again once the catalog TTL has passed. On error the previous catalog
// stays in place.
func (c *Client) RefreshCatalog(ctx context.Context) error {
	settings, err := c.loadSettings(ctx)
	if err != nil {
		return err
	}

	locales := settings.locales()
	catalog := make(domain.ProductCatalog, len(locales))
	articleKeys := make(map[string]map[string]string, len(locales))
	for _, locale := range locales {
		names, err := c.loadArticles(ctx, locale)
		if err != nil {
			return fmt.Errorf("articles for %s: %w", locale, err)
		}
		catalog[locale] = names
		articleKeys[locale] = articleKeysByName(names)
	}

	c.mu.Lock()
	c.catalog = catalog
	c.articleKeys = articleKeys
	c.listLocales = settings.listLocales()
	c.userLocale = settings.userLocale()
	c.mu.Unlock()

	c.log.Debug().Strs("locales", locales).Msg("Product catalog loaded")
	return nil
}

// articleKeysFor returns the name -> article key table for the list's language.
// German lists use the keys as names already.
func (c *Client) articleKeysFor(list domain.ListHandle) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	locale, ok := c.listLocales[string(list)]
	if !ok {
		locale = c.userLocale
	}
	if locale == defaultLocale {
		return nil
	}
	return c.articleKeys[locale]
}

func (c *Client) loadSettings(ctx context.Context) (userSettingsResponse, error) {
	userUUID, err := c.sessionUser()
	if err != nil {
		return userSettingsResponse{}, err
	}

	key := "settings:" + userUUID
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, key); err == nil {
			if settings, ok := cached.(userSettingsResponse); ok {
				return settings, nil
			}
		}
	}

	req, err := c.authedRequest(ctx)
	if err != nil {
		return userSettingsResponse{}, err
	}
	resp, err := c.send(req.SetPathParam("uuid", userUUID), http.MethodGet, "/bringusersettings/{uuid}")
	if err != nil {
		return userSettingsResponse{}, err
	}

	var settings userSettingsResponse
	if err := json.Unmarshal(resp.Body(), &settings); err != nil {
		return userSettingsResponse{}, fmt.Errorf("failed to decode user settings: %w", err)
	}

	c.store(ctx, key, settings)
	return settings, nil
}

func (c *Client) loadArticles(ctx context.Context, locale string) (map[string]string, error) {
	key := "catalog:" + locale
	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, key); err == nil {
			if names, ok := cached.(map[string]string); ok {
				return names, nil
			}
		}
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/locale/articles.%s.json", c.webURL, locale))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBringAPIFailure, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	names, err := decodeArticles(resp.Body())
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, names)
	return names, nil
}

func (c *Client) store(ctx context.Context, key string, value interface{}) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, value, c.catalogTTL); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Could not cache catalog data")
	}
}

func (c *Client) sessionUser() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.userUUID == "" {
		return "", domain.ErrNotLoggedIn
	}
	return c.userUUID, nil
}

// authedRequest waits for the rate limiter and returns a request carrying the session headers
func (c *Client) authedRequest(ctx context.Context) (*resty.Request, error) {
	c.mu.RLock()
	token, userUUID, publicUUID := c.token, c.userUUID, c.publicUUID
	c.mu.RUnlock()

	if token == "" {
		return nil, domain.ErrNotLoggedIn
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	return c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("X-BRING-USER-UUID", userUUID).
		SetHeader("X-BRING-PUBLIC-USER-UUID", publicUUID), nil
}

// send executes req once; there are no retries
func (c *Client) send(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("Bring request failed")
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrBringAPIFailure, method, path, err)
	}
	if err := mapHTTPError(resp); err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("Bring returned an error")
		return nil, err
	}
	return resp, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, body)
	default:
		return fmt.Errorf("%w: status %d: %s", domain.ErrBringAPIFailure, resp.StatusCode(), body)
	}
}

// sortedKeys returns the keys of set in lexical order
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
