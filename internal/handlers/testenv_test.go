package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Skotchmaster/retail_shop/internal/config"
	"github.com/Skotchmaster/retail_shop/internal/models"
	"github.com/Skotchmaster/retail_shop/internal/repo"
	"github.com/Skotchmaster/retail_shop/internal/service"
)

type testEnv struct {
	T         *testing.T
	E         *echo.Echo
	DB        *gorm.DB
	Cart      *CartHandler
	Product   *ProductHandler
	Search    *SearchHandler
	Orders    *OrderHandler
	JWTSecret []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	r := repo.NewGormRepo(db)
	secret := []byte("test-secret")

	cartSvc := &service.CartService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}
	searchSvc := &service.SearchService{Repo: r}
	catalogSvc := &service.CatalogService{Repo: r}

	return &testEnv{
		T:         t,
		E:         echo.New(),
		DB:        db,
		Cart:      &CartHandler{Cart: cartSvc, Orders: orderSvc, JWTSecret: secret},
		Product:   &ProductHandler{Catalog: catalogSvc, Search: searchSvc, JWTSecret: secret},
		Search:    &SearchHandler{Search: searchSvc, JWTSecret: secret},
		Orders:    &OrderHandler{Orders: orderSvc, JWTSecret: secret},
		JWTSecret: secret,
	}
}

func (env *testEnv) seedProducts() {
	products := []models.Product{
		{PID: 2001, Name: "wireless mouse", Category: "peripherals", Price: 25.50, StockCount: 10},
		{PID: 2003, Name: "usb hub", Category: "accessories", Price: 15.00, StockCount: 2, Descr: "4-port"},
	}
	for i := range products {
		require.NoError(env.T, env.DB.Create(&products[i]).Error)
	}
}

func (env *testEnv) accessToken(cid, sessionNo int, role string) *http.Cookie {
	claims := jwt.MapClaims{
		"sub":        cid,
		"role":       role,
		"session_no": sessionNo,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(env.JWTSecret)
	require.NoError(env.T, err)
	return &http.Cookie{Name: "accessToken", Value: signed, Path: "/"}
}

func (env *testEnv) doJSONRequest(method, target string, body interface{}, cookies ...*http.Cookie) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}
