package roasterweb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"droscher.com/CoffeeLedger/configs"
	. "droscher.com/CoffeeLedger/pkg/integrations/roaster-web"
)

func newShop(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/find", func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Query().Get("q") != "house beans" {
			http.NotFound(writer, request)

			return
		}

		http.ServeFile(writer, request, "testdata/search.html")
	})
	mux.HandleFunc("/products/huila-decaf", func(writer http.ResponseWriter, request *http.Request) {
		http.ServeFile(writer, request, "testdata/huila-decaf.html")
	})
	mux.HandleFunc("/products/yirgacheffe", func(writer http.ResponseWriter, request *http.Request) {
		http.ServeFile(writer, request, "testdata/yirgacheffe.html")
	})

	shop := httptest.NewServer(mux)
	t.Cleanup(shop.Close)

	return shop
}

func TestFindBean(t *testing.T) {
	shop := newShop(t)

	roaster, err := NewRoasterWebIntegration(configs.RoasterWeb{BaseURL: shop.URL, SearchPath: "/find"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	results, err := roaster.FindBean(context.Background(), "house beans")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Huila Decaf", results[0].Name)
	assert.Equal(t, "Colombia", *results[0].Origin)
	assert.Equal(t, "Medium", *results[0].RoastLevel)
	assert.Equal(t, "Red cherry and cocoa", *results[0].Notes)

	assert.Equal(t, "Yirgacheffe", results[1].Name)
	assert.Equal(t, "Ethiopia", *results[1].Origin)
	assert.Equal(t, "Light", *results[1].RoastLevel)
	assert.Equal(t, "Jasmine, bergamot", *results[1].Notes)

	assert.Equal(t, "House Blend", results[2].Name)
	assert.Nil(t, results[2].Origin)
	assert.Equal(t, "Dark", *results[2].RoastLevel)
	assert.Nil(t, results[2].Notes)
}

func TestFindBean_SearchFails(t *testing.T) {
	shop := newShop(t)

	roaster, err := NewRoasterWebIntegration(configs.RoasterWeb{BaseURL: shop.URL, SearchPath: "/find"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	results, err := roaster.FindBean(context.Background(), "tea")
	require.Error(t, err)
	assert.Empty(t, results)
}

func TestFindBean_StopsWhenCancelled(t *testing.T) {
	var hits atomic.Int32

	shop := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits.Add(1)
		http.ServeFile(writer, request, "testdata/search.html")
	}))
	t.Cleanup(shop.Close)

	roaster, err := NewRoasterWebIntegration(configs.RoasterWeb{BaseURL: shop.URL, SearchPath: "/find"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := roaster.FindBean(ctx, "house beans")
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Zero(t, hits.Load())
}

func TestNewRoasterWebIntegration_RequiresBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "/relative/only"} {
		roaster, err := NewRoasterWebIntegration(configs.RoasterWeb{BaseURL: baseURL}, zaptest.NewLogger(t))

		require.ErrorIs(t, err, ErrMissingBaseURL)
		assert.Nil(t, roaster)
	}
}
