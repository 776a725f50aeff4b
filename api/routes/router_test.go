package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartsvc "github.com/threadline/storefront-backend/internal/cart"
	"github.com/threadline/storefront-backend/internal/catalog"
	checkoutsvc "github.com/threadline/storefront-backend/internal/checkout"
	orderssvc "github.com/threadline/storefront-backend/internal/orders"
	pkgAuth "github.com/threadline/storefront-backend/pkg/auth"
	"github.com/threadline/storefront-backend/pkg/config"
	"github.com/threadline/storefront-backend/pkg/db"
	"github.com/threadline/storefront-backend/pkg/db/models"
	"github.com/threadline/storefront-backend/pkg/enums"
)

type memCartStore struct {
	carts map[string]cartsvc.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]cartsvc.Cart{}}
}

func (m *memCartStore) Get(ctx context.Context, sessionID string) (cartsvc.Cart, error) {
	c, ok := m.carts[sessionID]
	if !ok {
		return cartsvc.Cart{Items: []cartsvc.Line{}}, nil
	}
	return c, nil
}

func (m *memCartStore) Save(ctx context.Context, sessionID string, c cartsvc.Cart) error {
	m.carts[sessionID] = c
	return nil
}

func (m *memCartStore) Clear(ctx context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: config.AppEnvDev, Port: "8080"},
		Cart: config.CartConfig{
			TTL:          time.Hour,
			CookieName:   "threadline_session",
			CookieMaxAge: time.Hour,
		},
		AdminJWT: config.AdminJWTConfig{
			Secret:            "router-test-secret",
			Issuer:            "threadline",
			ExpirationMinutes: 10,
		},
	}
}

func buildTestRouter(t *testing.T) (http.Handler, *config.Config, *db.Client) {
	t.Helper()

	cfg := testConfig()
	dsn := "file:router_" + uuid.NewString() + "?mode=memory&cache=shared"
	client, err := db.New(context.Background(), config.DBConfig{DSN: dsn}, true, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.DB().AutoMigrate(
		&models.Product{},
		&models.ProductSize{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderSequence{},
	))

	catalogRepo := catalog.NewRepository(client.DB())
	catalogService, err := catalog.NewService(catalogRepo)
	require.NoError(t, err)

	store := newMemCartStore()
	cartService, err := cartsvc.NewService(store, catalogRepo)
	require.NoError(t, err)

	ordersRepo := orderssvc.NewRepository(client.DB())
	ordersService, err := orderssvc.NewService(client, ordersRepo, nil)
	require.NoError(t, err)

	checkoutService, err := checkoutsvc.NewService(
		client, store, catalogRepo, ordersRepo,
		orderssvc.NewSequencer(), checkoutsvc.NewReserver(), nil, nil,
	)
	require.NoError(t, err)

	handler := NewRouter(cfg, nil, stubPinger{}, stubPinger{}, nil,
		catalogService, cartService, checkoutService, ordersService)
	return handler, cfg, client
}

func seedRouterProduct(t *testing.T, client *db.Client, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:             uuid.New(),
		Name:           "Boxy Tee",
		PriceCents:     2500,
		Classification: enums.ClassificationTShirts,
	}
	require.NoError(t, client.DB().Create(product).Error)
	require.NoError(t, client.DB().Create(&models.ProductSize{
		ID:         uuid.New(),
		ProductID:  product.ID,
		Size:       enums.SizeM,
		StockCount: stock,
	}).Error)
	return product
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, cookies []*http.Cookie, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRouterHealthLive(t *testing.T) {
	handler, _, _ := buildTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/health/live", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, config.AppEnvDev, rec.Header().Get("X-Threadline-Env"))
}

func TestRouterHealthReady(t *testing.T) {
	handler, _, _ := buildTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/health/ready", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterListProducts(t *testing.T) {
	handler, _, client := buildTestRouter(t)
	seedRouterProduct(t, client, 5)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/products", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []catalog.ProductDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Boxy Tee", envelope.Data[0].Name)
}

func TestRouterSessionCookieIssued(t *testing.T) {
	handler, cfg, _ := buildTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/v1/cart", nil, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == cfg.Cart.CookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	_, err := uuid.Parse(session.Value)
	require.NoError(t, err)
	assert.True(t, session.HttpOnly)
}

func TestRouterCartAndCheckoutFlow(t *testing.T) {
	handler, cfg, client := buildTestRouter(t)
	product := seedRouterProduct(t, client, 5)

	session := &http.Cookie{Name: cfg.Cart.CookieName, Value: uuid.NewString()}
	cookies := []*http.Cookie{session}

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/cart/add", map[string]any{
		"product_id": product.ID,
		"size":       "M",
		"qty":        2,
	}, cookies, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cartEnvelope struct {
		Data struct {
			Items      []cartsvc.Line `json:"items"`
			TotalCents int            `json:"total_cents"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartEnvelope))
	require.Len(t, cartEnvelope.Data.Items, 1)
	assert.Equal(t, 5000, cartEnvelope.Data.TotalCents)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/checkout", map[string]any{
		"first_name":   "Lina",
		"phone":        "+201001234567",
		"address":      "12 Garden St",
		"area":         "Zamalek",
		"total_amount": 1,
	}, cookies, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var orderEnvelope struct {
		Data orderssvc.OrderDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orderEnvelope))
	assert.Equal(t, "1", orderEnvelope.Data.OrderNumber)
	assert.Equal(t, 5000, orderEnvelope.Data.TotalAmountCents)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/orders/1", nil, cookies, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/v1/cart", nil, cookies, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartEnvelope))
	assert.Empty(t, cartEnvelope.Data.Items)
}

func TestRouterCartAddBeyondStock(t *testing.T) {
	handler, cfg, client := buildTestRouter(t)
	product := seedRouterProduct(t, client, 1)

	cookies := []*http.Cookie{{Name: cfg.Cart.CookieName, Value: uuid.NewString()}}

	rec := doJSON(t, handler, http.MethodPost, "/api/v1/cart/add", map[string]any{
		"product_id": product.ID,
		"size":       "M",
		"qty":        2,
	}, cookies, nil)
	require.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "INSUFFICIENT_STOCK")
}

func TestRouterAdminStatusUpdateRequiresToken(t *testing.T) {
	handler, _, _ := buildTestRouter(t)

	rec := doJSON(t, handler, http.MethodPatch, "/api/admin/v1/orders/1/status",
		map[string]any{"status": "processing"}, nil, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterAdminStatusUpdate(t *testing.T) {
	handler, cfg, client := buildTestRouter(t)
	product := seedRouterProduct(t, client, 5)

	cookies := []*http.Cookie{{Name: cfg.Cart.CookieName, Value: uuid.NewString()}}
	rec := doJSON(t, handler, http.MethodPost, "/api/v1/cart/add", map[string]any{
		"product_id": product.ID,
		"size":       "M",
	}, cookies, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/v1/checkout", map[string]any{
		"first_name": "Lina",
		"phone":      "+201001234567",
		"address":    "12 Garden St",
		"area":       "Zamalek",
	}, cookies, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	token, err := pkgAuth.MintAdminToken(cfg.AdminJWT, time.Now(), "ops@threadline.example")
	require.NoError(t, err)
	headers := map[string]string{"Authorization": fmt.Sprintf("Bearer %s", token)}

	rec = doJSON(t, handler, http.MethodPatch, "/api/admin/v1/orders/1/status",
		map[string]any{"status": "processing"}, nil, headers)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data orderssvc.OrderDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "processing", envelope.Data.Status)

	rec = doJSON(t, handler, http.MethodPatch, "/api/admin/v1/orders/1/status",
		map[string]any{"status": "delivered"}, nil, headers)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
