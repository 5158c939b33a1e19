package httpadapter_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-dash/internal/adapter/dataset"
	httpadapter "campaign-dash/internal/adapter/http"
	"campaign-dash/internal/adapter/memory"
	"campaign-dash/internal/adapter/usecase"
	"campaign-dash/internal/core/domain"
	"campaign-dash/internal/core/widget"
)

type campaignsBody struct {
	Data       []domain.CampaignRecord `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		PageSize   int `json:"page_size"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
		From       int `json:"from"`
		To         int `json:"to"`
	} `json:"pagination"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := usecase.NewDashboardUseCase(
		dataset.NewStaticRepository(dataset.Reference()),
		memory.NewPreferenceStore(),
		widget.NewBoard(rand.New(rand.NewPCG(1, 2)), nil),
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(httpadapter.NewHandler(svc, logger, 5).Router())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestListCampaigns(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns?status=active", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body := decode[campaignsBody](t, resp)
	assert.Equal(t, 8, body.Pagination.Total)
	assert.Equal(t, 2, body.Pagination.TotalPages)
	assert.Equal(t, 1, body.Pagination.From)
	assert.Equal(t, 5, body.Pagination.To)
	require.Len(t, body.Data, 5)
	assert.Equal(t, "Cyber Monday", body.Data[0].Campaign)
	assert.Equal(t, "2029-04-11", body.Data[0].Date.String())
}

func TestListCampaignsSearchAndSort(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns?search=SALE&sort=campaign&dir=asc", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[campaignsBody](t, resp)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Flash Sale", body.Data[0].Campaign)
	assert.Equal(t, "Summer Sale 2024", body.Data[1].Campaign)
}

func TestListCampaignsDateRange(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns?from=2020-07-02&to=2022-09-04&sort=users&dir=asc", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[campaignsBody](t, resp)
	require.Len(t, body.Data, 3)
	assert.Equal(t, []string{"2", "4", "3"}, []string{body.Data[0].ID, body.Data[1].ID, body.Data[2].ID})
}

func TestListCampaignsClampsPage(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns?page=9", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[campaignsBody](t, resp)
	assert.Equal(t, 3, body.Pagination.Page)
	assert.Equal(t, 11, body.Pagination.From)
	assert.Equal(t, 15, body.Pagination.To)
	assert.Len(t, body.Data, 5)
}

func TestListCampaignsHugePage(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns?page=2305843009213693953", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[campaignsBody](t, resp)
	assert.Equal(t, 3, body.Pagination.Page)
	assert.Equal(t, 3, body.Pagination.TotalPages)
	assert.Len(t, body.Data, 5)
}

func TestListCampaignsEmpty(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns?search=nothing-here", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[campaignsBody](t, resp)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
	assert.Zero(t, body.Pagination.Total)
	assert.Zero(t, body.Pagination.TotalPages)
}

func TestListCampaignsBadRequest(t *testing.T) {
	srv := newServer(t)

	for _, q := range []string{
		"status=archived",
		"sort=ctr",
		"dir=up",
		"page=0",
		"page_size=abc",
		"page_size=101",
		"page=3&page_size=9223372036854775807",
		"from=2024-13-01",
	} {
		t.Run(q, func(t *testing.T) {
			resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns?"+q, "")
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestExportCSV(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns/export?status=paused&page=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="campaign-data.csv"`, resp.Header.Get("Content-Disposition"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(raw), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,campaign,revenue,users,conversions,ctr,status,date", lines[0])
	assert.Equal(t, "12,New Year Blast,16000,3000,140,3.9,paused,2030-05-12", lines[1])
}

func TestExportPDF(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns/export?format=pdf", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="campaign-data.pdf"`, resp.Header.Get("Content-Disposition"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF-"))
}

func TestExportErrors(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/campaigns/export?search=nothing-here", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/campaigns/export?format=xlsx", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboard(t *testing.T) {
	srv := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/dashboard", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	before := decode[widget.Snapshot](t, resp)
	require.Len(t, before.Metrics, 4)
	assert.Equal(t, "Total Revenue", before.Metrics[0].Title)
	assert.Equal(t, "#F64C67", before.Metrics[0].Color)
	assert.Len(t, before.Donut, len(widget.DefaultDonut()))

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/dashboard/refresh", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	after := decode[widget.Snapshot](t, resp)
	assert.Len(t, after.Line, len(before.Line))
	assert.Equal(t, before.Donut, after.Donut)
}

func TestPreferences(t *testing.T) {
	srv := newServer(t)
	base := srv.URL + "/api/v1/preferences/alice"

	resp := do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.DefaultPreferences(), decode[domain.Preferences](t, resp))

	resp = do(t, http.MethodPost, base+"/accent/next", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.AccentPalette[1], decode[domain.Preferences](t, resp).Accent)

	resp = do(t, http.MethodPut, base+"/theme", `{"theme":"dark"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, base, "")
	got := decode[domain.Preferences](t, resp)
	assert.Equal(t, domain.AccentPalette[1], got.Accent)
	assert.Equal(t, domain.ThemeDark, got.Theme)
}

func TestPreferencesBadRequest(t *testing.T) {
	srv := newServer(t)
	base := srv.URL + "/api/v1/preferences/bob"

	resp := do(t, http.MethodPut, base+"/theme", `{"theme":"neon"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPut, base+"/theme", `not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/preferences/%20", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t)

	do(t, http.MethodGet, srv.URL+"/api/v1/campaigns", "")

	resp := do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "campaigndash_http_requests_total")
}
