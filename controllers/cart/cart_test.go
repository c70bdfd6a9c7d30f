package cartControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartControllers "storefront/controllers/cart"
	"storefront/middleware"
	"storefront/models"
	"storefront/store"
)

var _ store.CatalogStore = mockCatalog{}

type mockCatalog map[uint]models.Product

func (m mockCatalog) Search(string, uint) ([]models.Product, error) { return nil, nil }

func (m mockCatalog) FindProduct(id uint) (*models.Product, error) {
	if p, ok := m[id]; ok {
		return &p, nil
	}
	return nil, store.ErrNotFound
}

func (m mockCatalog) ProductsByIDs(ids []uint) ([]models.Product, error) {
	var products []models.Product
	for _, id := range ids {
		if p, ok := m[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m mockCatalog) Categories() ([]models.Category, error) { return nil, nil }

type cartView struct {
	Items []struct {
		Product struct {
			ID    uint    `json:"id"`
			Price float64 `json:"price"`
		} `json:"product"`
		Qty       int     `json:"qty"`
		LineTotal float64 `json:"line_total"`
	} `json:"items"`
	Total     float64 `json:"total"`
	CartCount int     `json:"cart_count"`
}

// client keeps the session cookie across requests, like a browser would.
type client struct {
	r       *gin.Engine
	cookies []*http.Cookie
}

func newClient(catalog store.CatalogStore) *client {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Sessions("test-secret"))
	r.POST("/add-to-cart/:id", cartControllers.AddToCart(catalog))
	r.GET("/cart", cartControllers.Show(catalog))
	r.POST("/cart", cartControllers.Mutate())
	return &client{r: r}
}

func (c *client) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func (c *client) view(t *testing.T) cartView {
	t.Helper()
	w := c.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var v cartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestAddToCart(t *testing.T) {
	catalog := mockCatalog{5: {ID: 5, Title: "Smart Watch", Price: 100.0}}

	t.Run("adds and prices across requests", func(t *testing.T) {
		c := newClient(catalog)

		w := c.do(t, http.MethodPost, "/add-to-cart/5", url.Values{"qty": {"2"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		v := c.view(t)
		require.Len(t, v.Items, 1)
		assert.Equal(t, 2, v.Items[0].Qty)
		assert.Equal(t, 200.0, v.Items[0].LineTotal)
		assert.Equal(t, 200.0, v.Total)
		assert.Equal(t, 2, v.CartCount)
	})

	t.Run("negative quantity clamps to one", func(t *testing.T) {
		c := newClient(catalog)

		w := c.do(t, http.MethodPost, "/add-to-cart/5", url.Values{"qty": {"-3"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		v := c.view(t)
		require.Len(t, v.Items, 1)
		assert.Equal(t, 1, v.Items[0].Qty)
	})

	t.Run("non-numeric quantity is rejected without adding", func(t *testing.T) {
		c := newClient(catalog)

		w := c.do(t, http.MethodPost, "/add-to-cart/5", url.Values{"qty": {"lots"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		v := c.view(t)
		assert.Empty(t, v.Items)
	})

	t.Run("unknown product is a 404", func(t *testing.T) {
		c := newClient(catalog)
		w := c.do(t, http.MethodPost, "/add-to-cart/999", url.Values{"qty": {"1"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMutate(t *testing.T) {
	catalog := mockCatalog{5: {ID: 5, Title: "Smart Watch", Price: 100.0}}

	t.Run("update sets the quantity", func(t *testing.T) {
		c := newClient(catalog)
		c.do(t, http.MethodPost, "/add-to-cart/5", url.Values{"qty": {"2"}})

		w := c.do(t, http.MethodPost, "/cart", url.Values{"action": {"update"}, "pid": {"5"}, "qty": {"7"}})
		assert.Equal(t, http.StatusSeeOther, w.Code)

		v := c.view(t)
		require.Len(t, v.Items, 1)
		assert.Equal(t, 7, v.Items[0].Qty)
	})

	t.Run("update to zero removes the line", func(t *testing.T) {
		c := newClient(catalog)
		c.do(t, http.MethodPost, "/add-to-cart/5", url.Values{"qty": {"2"}})

		c.do(t, http.MethodPost, "/cart", url.Values{"action": {"update"}, "pid": {"5"}, "qty": {"0"}})

		v := c.view(t)
		assert.Empty(t, v.Items)
		assert.Equal(t, 0, v.CartCount)
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		c := newClient(catalog)
		c.do(t, http.MethodPost, "/add-to-cart/5", url.Values{"qty": {"2"}})

		c.do(t, http.MethodPost, "/cart", url.Values{"action": {"clear"}})

		v := c.view(t)
		assert.Empty(t, v.Items)
		assert.Equal(t, 0.0, v.Total)
	})
}
