package calculator

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"

	"go-calculators/internal/batch"
	"go-calculators/internal/cache"
	"go-calculators/internal/catalog"
	"go-calculators/internal/observability"
	"go-calculators/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := InitMetrics(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newRouter(c cache.Cache) http.Handler {
	r := chi.NewRouter()
	NewHandler(catalog.Default(), c).RegisterRoutes(r)
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.ExecuteRequest(testutil.JSONRequest(http.MethodPost, path, body), h)
}

func TestListReturnsEveryCalculator(t *testing.T) {
	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/calculators", nil), newRouter(nil))
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ListResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Count != len(catalog.All()) {
		t.Fatalf("expected %d calculators, got %d", len(catalog.All()), resp.Count)
	}
	if resp.Calculators[0].Slug != "bac" {
		t.Fatalf("expected calculators sorted by slug, first is %q", resp.Calculators[0].Slug)
	}
}

func TestDescribe(t *testing.T) {
	h := newRouter(nil)

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/calculators/loan", nil), h)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var def struct {
		Slug   string `json:"slug"`
		Fields []struct {
			Name string `json:"name"`
		} `json:"fields"`
	}
	testutil.DecodeJSONBody(t, w.Body, &def)
	if def.Slug != "loan" || len(def.Fields) != 3 {
		t.Fatalf("unexpected definition: %+v", def)
	}

	w = testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/calculators/nope", nil), h)
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}

func TestComputeReturnsResultAndSummary(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/loan",
		`{"inputs":{"amount":"10000","rate":"5","years":"1"}}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ComputeResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Slug != "loan" {
		t.Fatalf("expected slug loan, got %q", resp.Slug)
	}
	if resp.Result.Primary.Display != "$856.07" {
		t.Fatalf("expected monthly payment $856.07, got %q", resp.Result.Primary.Display)
	}
	if !resp.Result.Valid {
		t.Fatal("expected a valid result")
	}
	if resp.Summary.Title != "Loan Calculator" || len(resp.Summary.Inputs) != 3 {
		t.Fatalf("unexpected summary: %+v", resp.Summary)
	}
	if resp.Cached {
		t.Fatal("did not expect a cached result without a cache")
	}
}

func TestComputeCoercesGarbageToZero(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/bmi",
		`{"inputs":{"weight":"abc","height_cm":""}}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ComputeResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	if resp.Result.Valid {
		t.Fatal("expected zero result to be flagged invalid")
	}
}

func TestComputeValidationFailure(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/tip",
		`{"inputs":{"bill":"100","tip":"15","people":"0"}}`)
	testutil.CheckResponseCode(t, http.StatusUnprocessableEntity, w.Code)

	var body observability.ErrorBody
	testutil.DecodeJSONBody(t, w.Body, &body)
	if body.Error != "Number of people must be at least 1" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
	if body.Field != "people" {
		t.Fatalf("expected field people, got %q", body.Field)
	}
}

func TestComputeRejectsBadJSON(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/tip", `{"inputs":`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}

func TestComputeUnknownCalculator(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/nope", `{"inputs":{}}`)
	testutil.CheckResponseCode(t, http.StatusNotFound, w.Code)
}

func TestComputeUsesCache(t *testing.T) {
	mem := cache.NewMemory(0)
	h := newRouter(mem)
	body := `{"inputs":{"bill":"100","tip":"20","people":"4"}}`

	first := post(t, h, "/calculators/tip", body)
	testutil.CheckResponseCode(t, http.StatusOK, first.Code)
	if mem.Len() != 1 {
		t.Fatalf("expected 1 cache entry, got %d", mem.Len())
	}

	second := post(t, h, "/calculators/tip", body)
	var resp ComputeResponse
	testutil.DecodeJSONBody(t, second.Body, &resp)
	if !resp.Cached {
		t.Fatal("expected the second response to come from cache")
	}
	if resp.Result.Primary.Display != "$30.00" {
		t.Fatalf("expected $30.00 per person, got %q", resp.Result.Primary.Display)
	}
}

func TestComputeIgnoresCorruptCacheEntries(t *testing.T) {
	mem := cache.NewMemory(0)
	inputs := map[string]string{"bill": "100", "tip": "20", "people": "4"}
	if err := mem.Set(context.Background(), cache.Key("tip", inputs), "{not json"); err != nil {
		t.Fatalf("seeding cache: %v", err)
	}

	w := post(t, newRouter(mem), "/calculators/tip", `{"inputs":{"bill":"100","tip":"20","people":"4"}}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ComputeResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	if resp.Cached {
		t.Fatal("expected a fresh computation")
	}
}

func TestShareFormats(t *testing.T) {
	h := newRouter(nil)
	body := `{"inputs":{"weight":"70","height_cm":"175"}}`

	tests := []struct {
		format      string
		contentType string
		filename    string
	}{
		{format: "", contentType: "text/plain; charset=utf-8", filename: "bmi-calculator.txt"},
		{format: "json", contentType: "application/json", filename: "bmi-calculator.json"},
		{format: "pdf", contentType: "application/pdf", filename: "bmi-calculator.pdf"},
		{format: "xlsx", contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename: "bmi-calculator.xlsx"},
	}

	for _, tc := range tests {
		t.Run("format="+tc.format, func(t *testing.T) {
			w := post(t, h, "/calculators/bmi/share?format="+tc.format, body)
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			if ct := w.Header().Get("Content-Type"); ct != tc.contentType {
				t.Fatalf("expected Content-Type %q, got %q", tc.contentType, ct)
			}
			want := `attachment; filename="` + tc.filename + `"`
			if cd := w.Header().Get("Content-Disposition"); cd != want {
				t.Fatalf("expected Content-Disposition %q, got %q", want, cd)
			}
			if w.Body.Len() == 0 {
				t.Fatal("expected a non-empty body")
			}
		})
	}
}

func TestShareTextBody(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/bmi/share?format=text", `{"inputs":{"weight":"70","height_cm":"175"}}`)
	if !strings.Contains(w.Body.String(), "BMI: 22.9 kg/m²") {
		t.Fatalf("expected result line in text share, got %q", w.Body.String())
	}
}

func TestShareRejectsUnknownFormat(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/bmi/share?format=docx", `{"inputs":{}}`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}

func TestShareValidationFailure(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/loan/share?format=pdf", `{"inputs":{"rate":"-1"}}`)
	testutil.CheckResponseCode(t, http.StatusUnprocessableEntity, w.Code)
}

func upload(t *testing.T, path string, rows ...[]any) *http.Request {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("writing row: %v", err)
		}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "batch.xlsx")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if err := f.Write(part); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestBatch(t *testing.T) {
	req := upload(t, "/calculators/roman/batch",
		[]any{"direction", "value"},
		[]any{"to-roman", "1994"},
		[]any{"to-arabic", "MCMXCIV"},
		[]any{"to-roman", "4000"},
	)
	w := testutil.ExecuteRequest(req, newRouter(nil))
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var report batch.Report
	testutil.DecodeJSONBody(t, w.Body, &report)

	if report.Count != 3 || report.Failed != 1 {
		t.Fatalf("expected 3 rows with 1 failure, got %+v", report)
	}
	if got := report.Rows[0].Result.Primary.Display; got != "MCMXCIV" {
		t.Fatalf("expected MCMXCIV, got %q", got)
	}
	if got := report.Rows[1].Result.Primary.Display; got != "1994" {
		t.Fatalf("expected 1994, got %q", got)
	}
	if report.Rows[2].Error == "" {
		t.Fatal("expected an error for 4000")
	}
}

func TestBatchRequiresUpload(t *testing.T) {
	w := post(t, newRouter(nil), "/calculators/tip/batch", `{}`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}

func TestBatchTemplate(t *testing.T) {
	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/calculators/tip/batch/template", nil), newRouter(nil))
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatalf("opening template: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("reading template: %v", err)
	}
	if strings.Join(rows[0], ",") != "bill,tip,people" {
		t.Fatalf("unexpected header %v", rows[0])
	}
}
