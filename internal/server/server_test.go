package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	accountdomain "github.com/tirtadata/tirtabill/internal/account/domain"
	billingdomain "github.com/tirtadata/tirtabill/internal/billing/domain"
	"github.com/tirtadata/tirtabill/internal/config"
	"github.com/tirtadata/tirtabill/internal/observability/metrics"
	satkerdomain "github.com/tirtadata/tirtabill/internal/satker/domain"
	"github.com/tirtadata/tirtabill/internal/server"
	"github.com/tirtadata/tirtabill/pkg/pagination"
	"github.com/tirtadata/tirtabill/pkg/tabular"
	"go.uber.org/zap"
)

// promauto registers on the default registry; one instance for the package.
var httpMetrics = metrics.NewHTTP()

type stubAccountSvc struct {
	list   func(req accountdomain.ListRequest) (pagination.Page[accountdomain.Row], error)
	create func(req accountdomain.UpsertRequest) (*accountdomain.MasterAccount, error)
}

func (s *stubAccountSvc) List(ctx context.Context, req accountdomain.ListRequest) (pagination.Page[accountdomain.Row], error) {
	return s.list(req)
}

func (s *stubAccountSvc) Get(ctx context.Context, nosamw string) (*accountdomain.MasterAccount, error) {
	return nil, accountdomain.ErrNotFound
}

func (s *stubAccountSvc) Create(ctx context.Context, req accountdomain.UpsertRequest) (*accountdomain.MasterAccount, error) {
	return s.create(req)
}

func (s *stubAccountSvc) Update(ctx context.Context, nosamw string, req accountdomain.UpsertRequest) (*accountdomain.MasterAccount, error) {
	return nil, accountdomain.ErrNotFound
}

func (s *stubAccountSvc) Delete(ctx context.Context, nosamw string) error {
	return accountdomain.ErrNotFound
}

func (s *stubAccountSvc) ExportRoster(ctx context.Context, req accountdomain.ExportRequest) (*tabular.Table, error) {
	return &tabular.Table{Name: "master_tni", Header: []string{"urut"}}, nil
}

func (s *stubAccountSvc) ExportSummary(ctx context.Context, req accountdomain.ExportRequest) (*tabular.Table, error) {
	return &tabular.Table{
		Name:   "master_tni",
		Header: []string{"No Sambungan", "Satker", "Golongan"},
		Rows:   [][]any{{"A001", "Yonif 400", "2A"}},
	}, nil
}

type stubBillingSvc struct {
	list func(req billingdomain.ListRequest) (pagination.Page[billingdomain.Response], error)
	sync func(periode string) (*billingdomain.SyncResult, error)
}

func (s *stubBillingSvc) List(ctx context.Context, req billingdomain.ListRequest) (pagination.Page[billingdomain.Response], error) {
	return s.list(req)
}

func (s *stubBillingSvc) Get(ctx context.Context, opaqueID string) (*billingdomain.Response, error) {
	return nil, billingdomain.ErrNotFound
}

func (s *stubBillingSvc) Update(ctx context.Context, opaqueID string, req billingdomain.UpdateRequest) (*billingdomain.Response, error) {
	return &billingdomain.Response{}, nil
}

func (s *stubBillingSvc) Sync(ctx context.Context, periode string) (*billingdomain.SyncResult, error) {
	return s.sync(periode)
}

func (s *stubBillingSvc) ListRaw(ctx context.Context, periode string) ([]billingdomain.RawReading, error) {
	return nil, nil
}

func (s *stubBillingSvc) RawDetail(ctx context.Context, nosamw, periode string) (*billingdomain.RawReading, error) {
	return nil, billingdomain.ErrNotFound
}

func (s *stubBillingSvc) ExportDetail(ctx context.Context, req billingdomain.ExportRequest) (*tabular.Table, error) {
	return &tabular.Table{
		Name:   "rekening_tni_Yonif 400_" + req.Periode,
		Header: []string{"PDAM"},
		Rows:   [][]any{{"PDAM Test"}},
	}, nil
}

type stubSatkerSvc struct{}

func (stubSatkerSvc) List(ctx context.Context) ([]satkerdomain.Response, error) {
	return []satkerdomain.Response{{ID: "opaque", Nama: "Yonif 400"}}, nil
}

func (stubSatkerSvc) Get(ctx context.Context, id int64) (*satkerdomain.Satker, error) {
	return nil, satkerdomain.ErrNotFound
}

func newTestServer(account *stubAccountSvc, billing *stubBillingSvc) *server.Server {
	engine := server.NewEngine(config.Config{Environment: "test"}, zap.NewNop(), httpMetrics)
	return server.NewServer(server.ServerParams{
		Gin:        engine,
		Cfg:        config.Config{},
		Log:        zap.NewNop(),
		AccountSvc: account,
		BillingSvc: billing,
		SatkerSvc:  stubSatkerSvc{},
	})
}

func doRequest(t *testing.T, srv *server.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func TestListBillsEnvelope(t *testing.T) {
	billing := &stubBillingSvc{
		list: func(req billingdomain.ListRequest) (pagination.Page[billingdomain.Response], error) {
			if req.Periode != "202401" || req.Page != 2 || req.Limit != 5 {
				t.Fatalf("query not bound: %+v", req)
			}
			return pagination.NewPage([]billingdomain.Response{{ID: "x"}}, 11, pagination.Params{Page: 2, Limit: 5}), nil
		},
	}
	srv := newTestServer(&stubAccountSvc{}, billing)

	rec := doRequest(t, srv, http.MethodGet, "/api/tni/202401?page=2&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != 200 || env.Message != "Data Found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	var page pagination.Page[billingdomain.Response]
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Total != 11 || page.TotalPages != 3 || len(page.Content) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestListBillsEmptySet(t *testing.T) {
	billing := &stubBillingSvc{
		list: func(req billingdomain.ListRequest) (pagination.Page[billingdomain.Response], error) {
			return pagination.NewPage[billingdomain.Response](nil, 0, pagination.Params{Page: 1, Limit: 10}), nil
		},
	}
	srv := newTestServer(&stubAccountSvc{}, billing)

	rec := doRequest(t, srv, http.MethodGet, "/api/tni/202401", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Not Found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestListBillsUnknownSortField(t *testing.T) {
	billing := &stubBillingSvc{
		list: func(req billingdomain.ListRequest) (pagination.Page[billingdomain.Response], error) {
			return pagination.Page[billingdomain.Response]{}, &pagination.UnknownSortFieldError{Field: "denda"}
		},
	}
	srv := newTestServer(&stubAccountSvc{}, billing)

	rec := doRequest(t, srv, http.MethodGet, "/api/tni/202401?sort=denda,desc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Bad Request" || len(env.Errors) != 1 {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestSyncAlreadySynced(t *testing.T) {
	billing := &stubBillingSvc{
		sync: func(periode string) (*billingdomain.SyncResult, error) {
			return nil, billingdomain.ErrAlreadySynced
		},
	}
	srv := newTestServer(&stubAccountSvc{}, billing)

	rec := doRequest(t, srv, http.MethodGet, "/api/tni/202401/sync", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Already Synced" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestSyncSuccess(t *testing.T) {
	billing := &stubBillingSvc{
		sync: func(periode string) (*billingdomain.SyncResult, error) {
			return &billingdomain.SyncResult{Periode: periode, Total: 42}, nil
		},
	}
	srv := newTestServer(&stubAccountSvc{}, billing)

	rec := doRequest(t, srv, http.MethodGet, "/api/tni/202401/sync", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Success Synced" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	var result billingdomain.SyncResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Total != 42 || result.Periode != "202401" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestCreateMasterAccountConflict(t *testing.T) {
	account := &stubAccountSvc{
		create: func(req accountdomain.UpsertRequest) (*accountdomain.MasterAccount, error) {
			return nil, accountdomain.ErrExists
		},
	}
	srv := newTestServer(account, &stubBillingSvc{})

	rec := doRequest(t, srv, http.MethodPost, "/api/master_tni", `{"nosamw":"A001"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Master Tni already exists" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestUpdateBillResponds201(t *testing.T) {
	srv := newTestServer(&stubAccountSvc{}, &stubBillingSvc{})

	rec := doRequest(t, srv, http.MethodPut, "/api/tni/sometoken", `{"nosamw":"A001","met_l":100,"met_k":125,"pakai":25,"rata2":20}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Tagihan updated" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestExportBillsCSVStream(t *testing.T) {
	srv := newTestServer(&stubAccountSvc{}, &stubBillingSvc{})

	rec := doRequest(t, srv, http.MethodGet, "/api/tni/202401/token/csv", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "rekening_tni_Yonif 400_202401.csv") {
		t.Fatalf("unexpected disposition: %q", got)
	}
	if body := rec.Body.String(); !strings.HasPrefix(body, "PDAM\n") {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestSatkerList(t *testing.T) {
	srv := newTestServer(&stubAccountSvc{}, &stubBillingSvc{})

	rec := doRequest(t, srv, http.MethodGet, "/api/satker", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Data Found" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	var rows []satkerdomain.Response
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if len(rows) != 1 || rows[0].Nama != "Yonif 400" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&stubAccountSvc{}, &stubBillingSvc{})

	rec := doRequest(t, srv, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}
