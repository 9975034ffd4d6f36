package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/config"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/logging"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/model"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/narrative"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/ordering"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/store"
)

func monthly(company, year, sector string, perMonth int64) model.Breakdown {
	b := model.Breakdown{}
	for _, m := range model.Months {
		b.Set(model.Key{Company: company, Year: year, Sector: sector, Month: m}, decimal.NewFromInt(perMonth))
	}
	return b
}

type fakeProvider struct{ reply string }

func (p fakeProvider) Generate(context.Context, string, string) (string, error) {
	return p.reply, nil
}

func newTestServer(t *testing.T, analyst *narrative.Analyst) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, config.Save(filepath.Join(dir, config.FileName), config.Default("Rodobens")))

	ws, err := store.Open(dir)
	require.NoError(t, err)
	ws.AddItems([]*model.LineItem{
		{ID: "rev", Account: "3.1.01", Label: "VENDAS", Group3: "LUCRO BRUTO", Group2: "VENDAS LÍQUIDAS",
			Realized: monthly("Matriz", "2023", "401", 100)},
		{ID: "L1", Account: "4.1.01", Label: "Salários", Group3: "DESPESAS", Group2: "PESSOAL",
			Realized: monthly("Matriz", "2023", "401", 60)},
		{ID: "L2", Account: "4.1.02", Label: "Encargos", Group3: "DESPESAS", Group2: "PESSOAL",
			Realized: monthly("Matriz", "2023", "401", 20)},
	})
	require.NoError(t, ws.Save())

	cache, err := report.NewCache(report.NewBuilder(ordering.DefaultPresets(), ws.Legends()), 8)
	require.NoError(t, err)
	return New(ws, cache, analyst, logging.Discard()), dir
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestTree(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := do(t, s.Handler(), http.MethodGet, "/api/tree?company=Matriz&year=2023", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Months       []string                     `json:"months"`
		Forest       []map[string]any             `json:"forest"`
		VerticalBase map[string]string            `json:"verticalBase"`
		NetResult    map[string]map[string]string `json:"netResult"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Months, 12)
	assert.Len(t, resp.Forest, 2)
	assert.Equal(t, "100", resp.VerticalBase["janeiro"])
	assert.Equal(t, "180", resp.NetResult["realized"]["janeiro"])
}

func TestTreeRejectsBadEditFlag(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := do(t, s.Handler(), http.MethodGet, "/api/tree?edit=talvez", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDimensionsAndLegends(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	rec := do(t, h, http.MethodGet, "/api/dimensions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dims dimensionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dims))
	assert.Equal(t, []string{"Matriz"}, dims.Companies)
	assert.Equal(t, "2023", dims.DefaultYear)

	rec = do(t, h, http.MethodGet, "/api/legends", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var legends []legendResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &legends))
	require.NotEmpty(t, legends)
	assert.Equal(t, "C & O", legends[0].Label)
}

func TestSetCell(t *testing.T) {
	s, dir := newTestServer(t, nil)
	h := s.Handler()

	body := map[string]string{
		"company": "Matriz", "year": "2024", "legend": "Serviços",
		"itemId": "L1", "month": "Janeiro", "value": "1.500,00",
	}
	rec := do(t, h, http.MethodPut, "/api/budget/cells", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp setCellResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "janeiro", resp.Month)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(1500)))

	reopened, err := store.Open(dir)
	require.NoError(t, err)
	it, ok := reopened.Item("L1")
	require.True(t, ok)
	key := model.Key{Company: "Matriz", Year: "2024", Sector: "Serviços", Month: "janeiro"}
	assert.True(t, it.Planned.Get(key).Equal(decimal.NewFromInt(1500)))
}

func TestSetCellErrors(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{"consolidated view", map[string]string{"company": "Matriz", "year": "2024", "itemId": "L1", "month": "janeiro", "value": "1"}, http.StatusConflict},
		{"missing company", map[string]string{"year": "2024", "legend": "Serviços", "itemId": "L1", "month": "janeiro"}, http.StatusBadRequest},
		{"unknown item", map[string]string{"company": "Matriz", "year": "2024", "legend": "Serviços", "itemId": "nope", "month": "janeiro", "value": "1"}, http.StatusNotFound},
		{"unknown month", map[string]string{"company": "Matriz", "year": "2024", "legend": "Serviços", "itemId": "L1", "month": "smarch", "value": "1"}, http.StatusBadRequest},
		{"unknown field", map[string]string{"company": "Matriz", "year": "2024", "legend": "Serviços", "itemId": "L1", "month": "janeiro", "cor": "azul"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, nil)
			rec := do(t, s.Handler(), http.MethodPut, "/api/budget/cells", tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestDistribute(t *testing.T) {
	s, _ := newTestServer(t, nil)
	h := s.Handler()

	body := map[string]any{
		"company": "Matriz", "year": "2024", "legend": "Serviços", "sourceYear": "2023",
		"nodeId": "g2-DESPESAS-PESSOAL", "annual": "1000",
	}
	rec := do(t, h, http.MethodPost, "/api/budget/distribute", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp countResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Items)

	it, _ := s.ws.Item("L1")
	assert.Equal(t, "750.00", it.Planned.Get(model.Key{Company: "Matriz", Year: "2024", Sector: "Serviços", Month: "janeiro"}).Mul(decimal.NewFromInt(12)).StringFixed(2))

	body["nodeId"] = "g2-NADA"
	rec = do(t, h, http.MethodPost, "/api/budget/distribute", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body["nodeId"] = "g2-DESPESAS-PESSOAL"
	body["mode"] = "sazonal"
	rec = do(t, h, http.MethodPost, "/api/budget/distribute", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCopyRealized(t *testing.T) {
	s, _ := newTestServer(t, nil)
	body := map[string]string{"company": "Matriz", "year": "2024", "legend": "Serviços", "sourceYear": "2023"}
	rec := do(t, s.Handler(), http.MethodPost, "/api/budget/copy-realized", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp countResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Items)

	delete(body, "sourceYear")
	rec = do(t, s.Handler(), http.MethodPost, "/api/budget/copy-realized", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMoveOrder(t *testing.T) {
	s, _ := newTestServer(t, nil)
	body := map[string]any{"labels": []string{"ALFA", "BETA"}, "index": 1, "direction": "up"}
	rec := do(t, s.Handler(), http.MethodPost, "/api/order/move", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp moveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"BETA", "ALFA"}, resp.Labels)
	assert.Equal(t, 1, s.ws.GroupOrder()["BETA"])

	body["direction"] = "left"
	rec = do(t, s.Handler(), http.MethodPost, "/api/order/move", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalysis(t *testing.T) {
	s, _ := newTestServer(t, nil)
	rec := do(t, s.Handler(), http.MethodPost, "/api/analysis", map[string]string{})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	analyst := narrative.NewAnalyst(fakeProvider{reply: "**Queda** em março"}, "m", 5, logging.Discard())
	s, _ = newTestServer(t, analyst)
	rec = do(t, s.Handler(), http.MethodPost, "/api/analysis", map[string]string{"company": "Matriz"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp analysisResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "**Queda** em março", resp.Markdown)
	assert.Contains(t, resp.HTML, "<strong>Queda</strong>")
}
