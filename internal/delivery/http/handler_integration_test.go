package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/basketsync/backend/config"
	"github.com/basketsync/backend/internal/domain"
	"github.com/basketsync/backend/internal/logger"
	"github.com/basketsync/backend/internal/mock"
	"github.com/basketsync/backend/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	// Run tests
	exitCode := m.Run()

	// Exit with the test result code
	os.Exit(exitCode)
}

// fakeList records what the handler sends to the shopping list
type fakeList struct {
	mu        sync.Mutex
	added     [][]*domain.Ingredient
	notified  int
	addErr    error
	notifyErr error
	inFlight  int
	maxFlight int
	delay     time.Duration
}

func (f *fakeList) AddItems(ctx context.Context, ingredients []*domain.Ingredient) error {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxFlight {
		f.maxFlight = f.inFlight
	}
	f.mu.Unlock()

	time.Sleep(f.delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, ingredients)
	return nil
}

func (f *fakeList) NotifyUsersAboutChangesInList(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.notified++
	return nil
}

func (f *fakeList) ListUUID() domain.ListHandle {
	return "list-groceries"
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:        "8742",
			Environment: "test",
		},
	}
}

// setupTestRouter creates a test router around the given list
func setupTestRouter(list ShoppingList) *gin.Engine {
	parser := usecase.NewIngredientParser([]string{"water"}, false, logger.Nop())
	handler := NewHandler(list, parser, logger.Nop())
	return SetupRouter(testConfig(), handler, logger.Nop())
}

const pizzaPayload = `{
	"content": {
		"name": "Pizza",
		"slug": "pizza",
		"recipe_ingredient": [
			{"quantity": 500, "unit": {"name": "gram", "abbreviation": "g"}, "food": {"name": "Flour"}, "note": ""},
			{"quantity": 2, "unit": null, "food": {"name": "Tomatoe"}, "note": "ripe"},
			{"quantity": 300, "unit": {"name": "millilitre"}, "food": {"name": "Water"}, "note": ""}
		]
	}
}`

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// TestHealthCheckEndpoint tests the status endpoint
func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status with list uuid", func(t *testing.T) {
		router := setupTestRouter(&fakeList{})

		req, _ := http.NewRequest("GET", "/status", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		response := decode(t, w)
		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "basketsync" {
			t.Errorf("service = %v, want basketsync", response["service"])
		}
		if response["list"] != "list-groceries" {
			t.Errorf("list = %v, want list-groceries", response["list"])
		}
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter(&fakeList{})

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			req, _ := http.NewRequest(method, "/status", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

// TestAddRecipeEndpoint tests the webhook endpoints
func TestAddRecipeEndpoint(t *testing.T) {
	for _, path := range []string{"/", "/api/v1/recipes"} {
		t.Run("adds parsed ingredients via "+path, func(t *testing.T) {
			list := &fakeList{}
			router := setupTestRouter(list)

			w := postJSON(router, path, pizzaPayload)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			response := decode(t, w)
			assert.Equal(t, float64(2), response["added"])
			assert.Equal(t, "Pizza", response["recipe"])

			require.Len(t, list.added, 1)
			assert.Equal(t, []*domain.Ingredient{
				{Name: "Flour", Specification: "500 gram"},
				{Name: "Tomatoe", Specification: "2 ripe"},
			}, list.added[0])
			assert.Equal(t, 1, list.notified)
		})
	}

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		list := &fakeList{}
		router := setupTestRouter(list)

		w := postJSON(router, "/", `{invalid json}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NotNil(t, decode(t, w)["error"])
		assert.Empty(t, list.added)
	})

	t.Run("returns 400 when content is missing", func(t *testing.T) {
		list := &fakeList{}
		router := setupTestRouter(list)

		w := postJSON(router, "/", `{"recipe": {}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, list.notified)
	})

	t.Run("recipe without usable ingredients skips Bring", func(t *testing.T) {
		list := &fakeList{}
		router := setupTestRouter(list)

		w := postJSON(router, "/", `{"content": {"name": "Ice", "recipe_ingredient": [{"food": {"name": "Water"}}]}}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), decode(t, w)["added"])
		assert.Empty(t, list.added)
		assert.Zero(t, list.notified)
	})

	t.Run("returns 502 when adding fails", func(t *testing.T) {
		list := &fakeList{addErr: domain.ErrBringAPIFailure}
		router := setupTestRouter(list)

		w := postJSON(router, "/", pizzaPayload)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Bring API temporarily unavailable", decode(t, w)["error"])
		assert.Zero(t, list.notified)
	})

	t.Run("returns 502 when notify fails", func(t *testing.T) {
		list := &fakeList{notifyErr: domain.ErrUnauthorized}
		router := setupTestRouter(list)

		w := postJSON(router, "/", pizzaPayload)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "Bring rejected the credentials", decode(t, w)["error"])
	})

	t.Run("returns 503 without a configured list", func(t *testing.T) {
		router := SetupRouter(testConfig(), NewHandler(nil, nil, logger.Nop()), logger.Nop())

		w := postJSON(router, "/", pizzaPayload)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("serializes concurrent webhooks", func(t *testing.T) {
		list := &fakeList{delay: 20 * time.Millisecond}
		router := setupTestRouter(list)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				postJSON(router, "/", pizzaPayload)
			}()
		}
		wg.Wait()

		assert.Len(t, list.added, 4)
		assert.Equal(t, 1, list.maxFlight)
	})
}

// TestAddRecipeWithListSyncClient runs the webhook against a real ListSyncClient
func TestAddRecipeWithListSyncClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockBringSession(ctrl)

	session.EXPECT().Login(gomock.Any()).Return(nil)
	session.EXPECT().LoadLists(gomock.Any()).Return([]domain.BringList{{UUID: "list-groceries", Name: "Groceries"}}, nil)
	session.EXPECT().RefreshCatalog(gomock.Any()).Return(nil)
	session.EXPECT().TranslationCatalog().Return(domain.ProductCatalog{
		"de-DE": {"Tomaten": "Tomato", "Mehl": "Flour"},
	})

	var sent []domain.ItemChange
	session.EXPECT().
		BatchUpdateList(gomock.Any(), domain.ListHandle("list-groceries"), gomock.Any(), domain.OperationAdd).
		DoAndReturn(func(_ context.Context, _ domain.ListHandle, changes []domain.ItemChange, _ domain.ItemOperation) error {
			sent = changes
			return nil
		})
	session.EXPECT().Notify(gomock.Any(), domain.ListHandle("list-groceries"), domain.NotificationChangedList).Return(nil)

	client, err := usecase.NewListSyncClient(
		context.Background(),
		session,
		usecase.NewTranslator(nil, usecase.MatchConfig{}, logger.Nop()),
		usecase.ListSyncConfig{ListName: "groceries", FuzzyMatching: true},
		logger.Nop(),
	)
	require.NoError(t, err)

	router := setupTestRouter(client)
	w := postJSON(router, "/api/v1/recipes", pizzaPayload)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, sent, 2)
	assert.Equal(t, "Flour", sent[0].ItemID)
	assert.Equal(t, "500 gram", sent[0].Spec)
	assert.Equal(t, "Tomato", sent[1].ItemID)
	assert.Equal(t, "Tomatoe 2 ripe", sent[1].Spec)
}

// TestRecoveryMiddleware tests panic recovery
func TestRecoveryMiddleware(t *testing.T) {
	t.Run("recovers from panic without crashing server", func(t *testing.T) {
		router := setupTestRouter(&fakeList{})

		router.GET("/panic", func(c *gin.Context) {
			panic("test panic")
		})

		req, _ := http.NewRequest("GET", "/panic", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
		}
		if decode(t, w)["error"] != "Internal server error" {
			t.Errorf("error = %v, want 'Internal server error'", decode(t, w)["error"])
		}
	})
}

// TestNoCORSHeaders checks the router stays server-to-server only
func TestNoCORSHeaders(t *testing.T) {
	router := setupTestRouter(&fakeList{})

	for _, method := range []string{"GET", "OPTIONS"} {
		req, _ := http.NewRequest(method, "/status", nil)
		req.Header.Set("Origin", "http://localhost:9000")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("%s: Access-Control-Allow-Origin = %q, want empty", method, got)
		}
	}
}

// TestJSONResponses tests that all responses are valid JSON
func TestJSONResponses(t *testing.T) {
	endpoints := []struct {
		method string
		path   string
	}{
		{"GET", "/status"},
		{"POST", "/"},
		{"POST", "/api/v1/recipes"},
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint.method+" "+endpoint.path, func(t *testing.T) {
			router := setupTestRouter(&fakeList{})

			req, _ := http.NewRequest(endpoint.method, endpoint.path, nil)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			gotContentType := w.Header().Get("Content-Type")
			wantContentType := "application/json; charset=utf-8"
			if gotContentType != wantContentType {
				t.Errorf("Content-Type = %q, want %q", gotContentType, wantContentType)
			}

			var response map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Errorf("Response should be valid JSON, got error: %v", err)
			}
		})
	}
}
