package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cuihairu/labcatalog/services/catalog/internal/config"
	"github.com/cuihairu/labcatalog/services/catalog/internal/svc"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

const testConfig = `
Name: catalog-test
Host: 127.0.0.1
Port: 18080
Log:
  Mode: console
  Level: severe
Database:
  Driver: memory
`

// newTestServer wires the full route table over a fresh in-memory database.
func newTestServer(t *testing.T) *rest.Server {
	t.Helper()
	var c config.Config
	if err := conf.LoadFromYamlBytes([]byte(testConfig), &c); err != nil {
		t.Fatalf("load config: %v", err)
	}
	server := rest.MustNewServer(c.RestConf)
	ctx := svc.NewServiceContext(c)
	t.Cleanup(func() {
		server.Stop()
		ctx.Close(context.Background())
	})
	RegisterHandlers(server, ctx)
	return server
}

func do(t *testing.T, server *rest.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected %d, got %d; body=%s", want, w.Code, w.Body.String())
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, category, field, message string) {
	t.Helper()
	expectStatus(t, w, status)
	body := decode(t, w)
	if body["error"] != category {
		t.Fatalf("error = %v, want %q", body["error"], category)
	}
	if field != "" && body["field"] != field {
		t.Fatalf("field = %v, want %q", body["field"], field)
	}
	if message != "" && body["message"] != message {
		t.Fatalf("message = %v, want %q", body["message"], message)
	}
	if ts, _ := body["timestamp"].(string); ts == "" {
		t.Fatalf("missing timestamp: %v", body)
	}
}

func createID(t *testing.T, server *rest.Server, path, body string) int {
	t.Helper()
	w := do(t, server, http.MethodPost, path, body)
	expectStatus(t, w, http.StatusCreated)
	id := int(decode(t, w)["id"].(float64))
	if loc := w.Header().Get("Location"); loc != fmt.Sprintf("%s/%d", path, id) {
		t.Fatalf("Location = %q", loc)
	}
	return id
}

type catalogRefs struct{ dev, pub, genre int }

func seedRefs(t *testing.T, server *rest.Server) catalogRefs {
	t.Helper()
	return catalogRefs{
		dev:   createID(t, server, "/lab2/developers", `{"name":"FromSoftware","country":"Japan","foundedYear":1986}`),
		pub:   createID(t, server, "/lab2/publishers", `{"name":"Bandai Namco"}`),
		genre: createID(t, server, "/lab2/genres", `{"name":"action rpg"}`),
	}
}

func (r catalogRefs) game(title string, year int, price string) string {
	return fmt.Sprintf(`{"title":%q,"releaseYear":%d,"price":%s,"developerId":%d,"publisherId":%d,"genreId":%d}`,
		title, year, price, r.dev, r.pub, r.genre)
}

func TestDeveloperRoutes(t *testing.T) {
	server := newTestServer(t)
	id := createID(t, server, "/lab2/developers", `{"name":"CD Projekt Red","country":"Poland","foundedYear":2002}`)

	w := do(t, server, http.MethodGet, fmt.Sprintf("/lab2/developers/%d", id), "")
	expectStatus(t, w, http.StatusOK)
	got := decode(t, w)
	if got["name"] != "CD Projekt Red" || got["gamesCount"] != float64(0) {
		t.Fatalf("unexpected developer: %v", got)
	}

	w = do(t, server, http.MethodPut, fmt.Sprintf("/lab2/developers/%d", id), `{"name":"CDPR","country":"Poland"}`)
	expectStatus(t, w, http.StatusOK)
	if got := decode(t, w); got["name"] != "CDPR" || got["foundedYear"] != nil {
		t.Fatalf("update not applied: %v", got)
	}

	w = do(t, server, http.MethodGet, "/lab2/developers", "")
	expectStatus(t, w, http.StatusOK)
	if got := decode(t, w); got["count"] != float64(1) {
		t.Fatalf("list count = %v", got["count"])
	}

	w = do(t, server, http.MethodDelete, fmt.Sprintf("/lab2/developers/%d", id), "")
	expectStatus(t, w, http.StatusNoContent)

	w = do(t, server, http.MethodGet, fmt.Sprintf("/lab2/developers/%d", id), "")
	expectError(t, w, http.StatusNotFound, "Not Found", "", fmt.Sprintf("Developer with id %d not found", id))
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	server := newTestServer(t)
	cases := []struct {
		name, path, body, field, message string
	}{
		{"missing name", "/lab2/developers", `{}`, "name", "Name cannot be blank"},
		{"blank name", "/lab2/publishers", `{"name":"   "}`, "name", "Name cannot be blank"},
		{"founded too early", "/lab2/developers", `{"name":"Old","foundedYear":1900}`, "foundedYear", "Founded year must be at least 1950"},
		{"negative price", "/lab2/videogames", `{"title":"x","releaseYear":2000,"price":-1,"developerId":1,"publisherId":1,"genreId":1}`, "price", "Price must be non-negative"},
		{"missing developer", "/lab2/videogames", `{"title":"x","releaseYear":2000,"price":1,"publisherId":1,"genreId":1}`, "developerId", "Developer ID is required"},
		{"price out of range", "/lab2/videogames", `{"title":"x","releaseYear":2000,"price":1e17,"developerId":1,"publisherId":1,"genreId":1}`, "price", "Price cannot exceed 999999999.99"},
		{"price just past int64 cents", "/lab2/videogames", `{"title":"x","releaseYear":2000,"price":92233720368547758,"developerId":1,"publisherId":1,"genreId":1}`, "price", "Price cannot exceed 999999999.99"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, server, http.MethodPost, tc.path, tc.body)
			expectError(t, w, http.StatusBadRequest, "Bad Request", tc.field, tc.message)
		})
	}

	w := do(t, server, http.MethodPost, "/lab2/genres", `{"name":`)
	expectError(t, w, http.StatusBadRequest, "Bad Request", "", "Malformed JSON request")
}

func TestCatalogMountedUnderLab2(t *testing.T) {
	server := newTestServer(t)
	for _, path := range []string{"/lab2/developers", "/lab2/publishers", "/lab2/genres", "/lab2/videogames"} {
		expectStatus(t, do(t, server, http.MethodGet, path, ""), http.StatusOK)
	}
	expectStatus(t, do(t, server, http.MethodGet, "/api/lab2/developers", ""), http.StatusNotFound)
}

func TestPatchRejectsHugePrice(t *testing.T) {
	server := newTestServer(t)
	refs := seedRefs(t, server)
	id := createID(t, server, "/lab2/videogames", refs.game("Sekiro", 2019, "59.99"))

	w := do(t, server, http.MethodPatch, fmt.Sprintf("/lab2/videogames/%d", id), `{"price":1e17}`)
	expectError(t, w, http.StatusBadRequest, "Bad Request", "price", "Price cannot exceed 999999999.99")

	w = do(t, server, http.MethodGet, "/lab2/videogames?maxPrice=1e30", "")
	expectError(t, w, http.StatusBadRequest, "Bad Request", "maxPrice", "")
}

func TestGenreConflictAfterNormalization(t *testing.T) {
	server := newTestServer(t)
	createID(t, server, "/lab2/genres", `{"name":"action"}`)
	w := do(t, server, http.MethodPost, "/lab2/genres", `{"name":"Action"}`)
	expectError(t, w, http.StatusConflict, "Conflict", "", "Genre with name 'Action' already exists")
}

func TestVideoGameRoutes(t *testing.T) {
	server := newTestServer(t)
	refs := seedRefs(t, server)
	id := createID(t, server, "/lab2/videogames", refs.game("Elden Ring", 2022, "59.99"))

	w := do(t, server, http.MethodGet, fmt.Sprintf("/lab2/videogames/%d", id), "")
	expectStatus(t, w, http.StatusOK)
	got := decode(t, w)
	if got["price"] != 59.99 {
		t.Fatalf("price = %v", got["price"])
	}
	if genre := got["genre"].(map[string]any); genre["name"] != "Action rpg" {
		t.Fatalf("genre = %v", genre)
	}

	w = do(t, server, http.MethodPatch, fmt.Sprintf("/lab2/videogames/%d", id), `{"price":39.99}`)
	expectStatus(t, w, http.StatusOK)
	got = decode(t, w)
	if got["price"] != 39.99 || got["title"] != "Elden Ring" || got["releaseYear"] != float64(2022) {
		t.Fatalf("patch changed more than price: %v", got)
	}

	w = do(t, server, http.MethodDelete, fmt.Sprintf("/lab2/developers/%d", refs.dev), "")
	expectError(t, w, http.StatusConflict, "Conflict", "", "Cannot delete developer: 1 games are associated with this developer")

	w = do(t, server, http.MethodDelete, fmt.Sprintf("/lab2/videogames/%d", id), "")
	expectStatus(t, w, http.StatusNoContent)
	w = do(t, server, http.MethodDelete, fmt.Sprintf("/lab2/developers/%d", refs.dev), "")
	expectStatus(t, w, http.StatusNoContent)
}

func TestVideoGameReferenceAndYearChecks(t *testing.T) {
	server := newTestServer(t)
	refs := seedRefs(t, server)

	body := fmt.Sprintf(`{"title":"Ghost","releaseYear":2020,"price":10,"developerId":999,"publisherId":%d,"genreId":%d}`, refs.pub, refs.genre)
	w := do(t, server, http.MethodPost, "/lab2/videogames", body)
	expectError(t, w, http.StatusNotFound, "Not Found", "", "Developer with id 999 not found")

	w = do(t, server, http.MethodGet, "/lab2/videogames", "")
	if got := decode(t, w); got["count"] != float64(0) {
		t.Fatalf("failed create persisted a game: %v", got)
	}

	future := time.Now().Year() + 3
	w = do(t, server, http.MethodPost, "/lab2/videogames", refs.game("Too Soon", future, "10"))
	if future <= 2100 {
		expectError(t, w, http.StatusBadRequest, "Bad Request", "releaseYear", "")
	}
}

func TestVideoGameFilters(t *testing.T) {
	server := newTestServer(t)
	refs := seedRefs(t, server)
	for _, g := range []struct {
		title string
		price string
	}{{"Cheap", "9.99"}, {"Low", "20"}, {"Mid", "35.5"}, {"High", "50"}, {"Premium", "69.99"}} {
		createID(t, server, "/lab2/videogames", refs.game(g.title, 2020, g.price))
	}

	w := do(t, server, http.MethodGet, "/lab2/videogames?minPrice=20&maxPrice=50", "")
	expectStatus(t, w, http.StatusOK)
	got := decode(t, w)
	if got["count"] != float64(3) {
		t.Fatalf("price range count = %v; body=%s", got["count"], w.Body.String())
	}

	w = do(t, server, http.MethodGet, fmt.Sprintf("/lab2/videogames?genreId=%d&title=PREM", refs.genre), "")
	got = decode(t, w)
	if got["count"] != float64(1) {
		t.Fatalf("title filter count = %v", got["count"])
	}

	w = do(t, server, http.MethodGet, "/lab2/videogames?minPrice=cheap", "")
	expectError(t, w, http.StatusBadRequest, "Bad Request", "minPrice", "")
}

func TestPrimitiveRoutes(t *testing.T) {
	server := newTestServer(t)

	w := do(t, server, http.MethodGet, "/api/primitives/number", "")
	expectStatus(t, w, http.StatusOK)
	if got := decode(t, w); got["value"] != nil {
		t.Fatalf("unset number = %v", got["value"])
	}

	w = do(t, server, http.MethodPost, "/api/primitives/number", `{"value":42}`)
	expectStatus(t, w, http.StatusOK)
	w = do(t, server, http.MethodGet, "/api/primitives/number", "")
	if got := decode(t, w); got["value"] != float64(42) {
		t.Fatalf("number = %v", got["value"])
	}

	w = do(t, server, http.MethodPost, "/api/primitives/boolean", `{"value":"yes"}`)
	expectError(t, w, http.StatusBadRequest, "Bad Request", "value", "Value must be a boolean")

	w = do(t, server, http.MethodDelete, "/api/primitives/number", "")
	expectStatus(t, w, http.StatusOK)
	w = do(t, server, http.MethodGet, "/api/primitives/number", "")
	if got := decode(t, w); got["value"] != nil {
		t.Fatalf("cleared number = %v", got["value"])
	}
}

func TestListRoutes(t *testing.T) {
	server := newTestServer(t)
	do(t, server, http.MethodPost, "/api/collections/strings", `{"value":"a"}`)
	do(t, server, http.MethodPost, "/api/collections/strings", `{"value":"c"}`)

	w := do(t, server, http.MethodPost, "/api/collections/strings/index", `{"index":1,"value":"b"}`)
	expectStatus(t, w, http.StatusOK)
	if got := decode(t, w); got["totalItems"] != float64(3) {
		t.Fatalf("totalItems = %v", got["totalItems"])
	}

	w = do(t, server, http.MethodGet, "/api/collections/strings/index/1", "")
	expectStatus(t, w, http.StatusOK)
	if got := decode(t, w); got["value"] != "b" {
		t.Fatalf("value at 1 = %v", got["value"])
	}

	w = do(t, server, http.MethodGet, "/api/collections/strings/index/3", "")
	expectError(t, w, http.StatusBadRequest, "Bad Request", "index", "")

	w = do(t, server, http.MethodPost, "/api/collections/numbers/index", `{"index":5,"value":"7"}`)
	expectError(t, w, http.StatusBadRequest, "Bad Request", "index", "")

	w = do(t, server, http.MethodPost, "/api/collections/numbers/index", `{"index":0,"value":"seven"}`)
	expectError(t, w, http.StatusBadRequest, "Bad Request", "value", "")

	w = do(t, server, http.MethodPost, "/api/collections/numbers/index", `{"index":0,"value":"7"}`)
	expectStatus(t, w, http.StatusOK)
	w = do(t, server, http.MethodGet, "/api/collections/numbers", "")
	got := decode(t, w)
	if items := got["items"].([]any); len(items) != 1 || items[0] != float64(7) {
		t.Fatalf("numbers = %v", got["items"])
	}
}

func TestSetAndMapRoutes(t *testing.T) {
	server := newTestServer(t)
	w := do(t, server, http.MethodPost, "/api/collections/string-set", `{"value":"x"}`)
	expectStatus(t, w, http.StatusOK)
	w = do(t, server, http.MethodPost, "/api/collections/string-set", `{"value":"x"}`)
	expectError(t, w, http.StatusConflict, "Conflict", "", "String 'x' already exists in the set")

	for _, v := range []string{"true", "true", "false"} {
		do(t, server, http.MethodPost, "/api/collections/boolean-map", `{"value":`+v+`}`)
	}
	w = do(t, server, http.MethodGet, "/api/collections/boolean-map", "")
	got := decode(t, w)
	m := got["booleanMap"].(map[string]any)
	if m["true"] != float64(2) || m["false"] != float64(1) || got["count"] != float64(3) {
		t.Fatalf("boolean map = %v", got)
	}

	w = do(t, server, http.MethodPost, "/api/collections/items", `{"item":"sword"}`)
	expectStatus(t, w, http.StatusOK)
	if got := decode(t, w); got["item"] != "sword" || got["totalItems"] != float64(1) {
		t.Fatalf("item add = %v", got)
	}
}
