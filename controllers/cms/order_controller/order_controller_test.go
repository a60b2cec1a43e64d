package order_controller

import (
	"bytes"
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	goleak.VerifyTestMain(m)
}

const (
	orderA = "0190a1b2-0000-7000-8000-00000000000a"
	orderB = "0190a1b2-0000-7000-8000-00000000000b"
)

var orderColumns = []string{
	"id", "order_number", "financial_status", "fulfillment_status", "order_status",
	"proof_status", "tracking_number", "tracking_company", "tracking_url", "total_price",
	"customer_first_name", "customer_last_name", "customer_email",
	"order_created_at", "created_at", "updated_at",
}

var itemColumns = []string{"id", "order_id", "product_name", "quantity", "unit_price", "total_price"}

type envelope struct {
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Error   bool               `json:"error"`
	Meta    *models.Pagination `json:"meta"`
}

func useMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	prev := config.DB
	config.DB = gormDB
	t.Cleanup(func() {
		config.DB = prev
		_ = db.Close()
	})
	return mock
}

func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

func expectOrder(mock sqlmock.Sqlmock, row []driver.Value, items ...[]driver.Value) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(row...))

	itemRows := sqlmock.NewRows(itemColumns)
	for _, it := range items {
		itemRows.AddRow(it...)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).WillReturnRows(itemRows)
}

func awaitingRow(created time.Time) []driver.Value {
	return []driver.Value{
		orderA, "SS-1001", "paid", "unfulfilled", "", "awaiting_approval", nil, nil, nil, 42.5,
		"Ada", "Lovelace", "ada@example.com", created, created, created,
	}
}

func fulfilledRow(created time.Time) []driver.Value {
	return []driver.Value{
		orderB, "SS-1002", "paid", "fulfilled", "", "shipped", "1Z999AA10123456784", "UPS",
		"https://www.ups.com/track?tracknum=1Z999AA10123456784", 18.0,
		"Grace", "Hopper", "grace@example.com", created, created, created,
	}
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.GET("/admin/orders", GetOrders)
	r.GET("/admin/orders/stats", GetOrderStats)
	r.GET("/admin/orders/:id", GetOrderByID)
	r.PATCH("/admin/orders/:id/status", UpdateOrderStatus)
	r.POST("/admin/orders/:id/proofs", SendProofs)
	r.DELETE("/admin/orders/:id/proofs", ClearProofs)
	r.GET("/admin/orders/:id/packing-slip", DownloadPackingSlip)
	return r
}

func serve(r http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestGetOrdersFiltersByDerivedStatus(t *testing.T) {
	mock := useMockDB(t)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(awaitingRow(created)...).
			AddRow(fulfilledRow(created)...))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow("i-1", orderA, "Vinyl Stickers", 50, 0.5, 25.0).
			AddRow("i-2", orderA, "Vinyl Stickers", 25, 0.7, 17.5).
			AddRow("i-3", orderB, "Holographic Stickers", 10, 1.8, 18.0))

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?status=Delivered", nil)
	w, env := serve(newRouter(), req)

	require.Equal(t, http.StatusOK, w.Code)
	var views []models.OrderView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, orderB, views[0].ID)
	assert.Equal(t, models.StatusDelivered, views[0].DisplayStatus)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrdersGroupsItems(t *testing.T) {
	mock := useMockDB(t)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(awaitingRow(created)...))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow("i-1", orderA, "Vinyl Stickers", 50, 0.5, 25.0).
			AddRow("i-2", orderA, "Vinyl Stickers", 25, 0.7, 17.5))

	w, env := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/admin/orders", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var views []models.OrderView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, "SS-1001", views[0].DisplayNumber)
	assert.Equal(t, models.StatusAwaitingApproval, views[0].DisplayStatus)
	require.Len(t, views[0].GroupedItems, 1)
	assert.Equal(t, 75, views[0].GroupedItems[0].TotalQuantity)
	assert.Equal(t, 75, views[0].TotalUnits)
}

func TestGetOrdersRejectsUnknownStatus(t *testing.T) {
	useMockDB(t)

	w, env := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/admin/orders?status=Teleported", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, env.Error)
}

func TestGetOrdersBindsPagination(t *testing.T) {
	mock := useMockDB(t)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(awaitingRow(created)...).
			AddRow(fulfilledRow(created)...))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	w, env := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/admin/orders?page=2&limit=1&sort=total_asc", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 2, env.Meta.Page)
	assert.Equal(t, 1, env.Meta.Limit)
	assert.Equal(t, 2, env.Meta.Total)
	var views []models.OrderView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, orderA, views[0].ID)
}

func TestGetOrdersRejectsMalformedPage(t *testing.T) {
	useMockDB(t)

	w, env := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/admin/orders?page=two", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, env.Error)
}

func TestGetOrderByIDInvalidAndMissing(t *testing.T) {
	mock := useMockDB(t)
	r := newRouter()

	w, _ := serve(r, httptest.NewRequest(http.MethodGet, "/admin/orders/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns))
	w, env := serve(r, httptest.NewRequest(http.MethodGet, "/admin/orders/"+orderA, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", env.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderStatsCountsEveryLabel(t *testing.T) {
	mock := useMockDB(t)
	freezeNow(t, time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC))
	prevApp := config.App
	config.App.StoreTimezone = "UTC"
	t.Cleanup(func() { config.App = prevApp })

	june := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)
	may := time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(awaitingRow(june)...).
			AddRow(fulfilledRow(may)...))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	w, env := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/admin/orders/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var stats models.OrderStatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.CurrentMonthTotal)
	assert.Equal(t, 1, stats.LastMonthTotal)
	assert.Len(t, stats.Breakdown, len(services.AllDisplayStatuses()))
}

func TestBuildStatusUpdates(t *testing.T) {
	str := func(s string) *string { return &s }
	tracked := models.Order{TrackingNumber: str("1Z999AA10123456784"), TrackingCompany: str("UPS")}

	t.Run("status only leaves tracking alone", func(t *testing.T) {
		got := buildStatusUpdates(tracked, models.UpdateOrderStatusRequest{OrderStatus: str(" Printing ")})
		assert.Equal(t, map[string]any{"order_status": "Printing"}, got)
	})

	t.Run("empty tracking number clears tracking", func(t *testing.T) {
		got := buildStatusUpdates(tracked, models.UpdateOrderStatusRequest{TrackingNumber: str("")})
		assert.Equal(t, map[string]any{
			"tracking_number":  nil,
			"tracking_company": nil,
			"tracking_url":     nil,
		}, got)
	})

	t.Run("new number is resolved to a carrier url", func(t *testing.T) {
		got := buildStatusUpdates(models.Order{}, models.UpdateOrderStatusRequest{
			TrackingNumber: str("9400 1118 9922 3197 4284 90"),
		})
		assert.Equal(t, "9400111899223197428490", got["tracking_number"])
		assert.Equal(t, "USPS", got["tracking_company"])
		assert.Contains(t, got["tracking_url"], "9400111899223197428490")
	})

	t.Run("carrier change reuses stored number", func(t *testing.T) {
		got := buildStatusUpdates(tracked, models.UpdateOrderStatusRequest{TrackingCompany: str("FedEx")})
		assert.Equal(t, "1Z999AA10123456784", got["tracking_number"])
		assert.Equal(t, "FedEx", got["tracking_company"])
		assert.Contains(t, got["tracking_url"], "fedex.com")
	})
}

func TestUpdateOrderStatusPersistsAndReloads(t *testing.T) {
	mock := useMockDB(t)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	expectOrder(mock, awaitingRow(created))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .*"proof_status"=.*"tracking_url"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reloaded := awaitingRow(created)
	reloaded[5] = "approved"
	reloaded[6] = "1Z999AA10123456784"
	reloaded[7] = "UPS"
	reloaded[8] = "https://www.ups.com/track?tracknum=1Z999AA10123456784"
	expectOrder(mock, reloaded)

	body := `{"proof_status":"approved","tracking_number":"1Z999AA10123456784"}`
	req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+orderA+"/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w, env := serve(newRouter(), req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var view models.OrderView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, models.StatusLabelCreated, view.DisplayStatus)
	require.NotNil(t, view.Tracking)
	assert.Equal(t, "UPS", view.Tracking.Carrier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	useMockDB(t)
	r := newRouter()

	for name, body := range map[string]string{
		"empty payload":      `{}`,
		"unknown proof":      `{"proof_status":"lost_in_space"}`,
		"unknown fulfilment": `{"fulfillment_status":"teleported"}`,
		"malformed":          `{`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/admin/orders/"+orderA+"/status", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w, _ := serve(r, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

type fakeUploader struct {
	folders      []string
	deleted      []string
	deletedFiles []string
	failOn       int // 1-based upload that errors; 0 never fails
}

func (f *fakeUploader) UploadFile(_ context.Context, r io.Reader, opts services.UploadOptions) (services.UploadedFile, error) {
	_, _ = io.Copy(io.Discard, r)
	f.folders = append(f.folders, opts.Folder)
	n := len(f.folders)
	if n == f.failOn {
		return services.UploadedFile{}, assert.AnError
	}
	return services.UploadedFile{
		URL:      fmt.Sprintf("https://res.cloudinary.com/demo/proof-%d.png", n),
		PublicID: fmt.Sprintf("%s/proof-%d", opts.Folder, n),
	}, nil
}

func (f *fakeUploader) DeleteFile(_ context.Context, publicID string) error {
	f.deletedFiles = append(f.deletedFiles, publicID)
	return nil
}

func (f *fakeUploader) DeleteFolder(_ context.Context, folder string) error {
	f.deleted = append(f.deleted, folder)
	return nil
}

type fakeMailer struct {
	sent []services.ProofReadyEmailData
	err  error
}

func (f *fakeMailer) SendProofReadyEmail(_ context.Context, data services.ProofReadyEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}

func pngBytes() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)
}

func proofForm(t *testing.T, files map[string][]byte, notes string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := mw.CreateFormFile("files[]", name)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	if notes != "" {
		require.NoError(t, mw.WriteField("notes", notes))
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func installFakes(t *testing.T, mailerErr error) (*fakeUploader, *fakeMailer) {
	t.Helper()
	up := &fakeUploader{}
	mail := &fakeMailer{err: mailerErr}
	services.SetFileUploader(up)
	services.SetProofMailer(mail)
	t.Cleanup(func() {
		services.SetFileUploader(nil)
		services.SetProofMailer(nil)
	})
	return up, mail
}

func TestSendProofsUploadsAndEmails(t *testing.T) {
	mock := useMockDB(t)
	up, mail := installFakes(t, nil)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	row := awaitingRow(created)
	row[5] = "building_proof"
	expectOrder(mock, row)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .*"proof_notes"=.*"proof_status"=.*"proofs"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, contentType := proofForm(t, map[string][]byte{"proof.png": pngBytes()}, "Check the white border")
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+orderA+"/proofs", body)
	req.Header.Set("Content-Type", contentType)
	w, env := serve(newRouter(), req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp SendProofsResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 1, resp.Uploaded)
	assert.True(t, resp.EmailSent)
	assert.Equal(t, models.StatusAwaitingApproval, resp.Order.DisplayStatus)
	require.Len(t, resp.Order.Proofs, 1)
	assert.Equal(t, "proof.png", resp.Order.Proofs[0].Filename)

	assert.Equal(t, []string{"proofs/" + orderA}, up.folders)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "ada@example.com", mail.sent[0].CustomerEmail)
	assert.Equal(t, "SS-1001", mail.sent[0].OrderNumber)
	assert.Equal(t, "Check the white border", mail.sent[0].Notes)
	assert.Len(t, mail.sent[0].ProofURLs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendProofsEmailFailureIsNotFatal(t *testing.T) {
	mock := useMockDB(t)
	installFakes(t, assert.AnError)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	expectOrder(mock, awaitingRow(created))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, contentType := proofForm(t, map[string][]byte{"proof.png": pngBytes()}, "")
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+orderA+"/proofs", body)
	req.Header.Set("Content-Type", contentType)
	w, env := serve(newRouter(), req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SendProofsResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.False(t, resp.EmailSent)
}

func TestSendProofsRejectsBadFileBeforeUploading(t *testing.T) {
	mock := useMockDB(t)
	up, _ := installFakes(t, nil)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	expectOrder(mock, awaitingRow(created))

	body, contentType := proofForm(t, map[string][]byte{
		"proof.png": pngBytes(),
		"notes.exe": []byte("MZ\x90\x00"),
	}, "")
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+orderA+"/proofs", body)
	req.Header.Set("Content-Type", contentType)
	w, _ := serve(newRouter(), req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, up.folders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendProofsRemovesStoredFilesWhenAnUploadFails(t *testing.T) {
	mock := useMockDB(t)
	up, mail := installFakes(t, nil)
	up.failOn = 2
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	expectOrder(mock, awaitingRow(created))

	body, contentType := proofForm(t, map[string][]byte{
		"front.png": pngBytes(),
		"back.png":  pngBytes(),
	}, "")
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+orderA+"/proofs", body)
	req.Header.Set("Content-Type", contentType)
	w, _ := serve(newRouter(), req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, []string{"proofs/" + orderA + "/proof-1"}, up.deletedFiles)
	assert.Empty(t, mail.sent)
	// no UPDATE was expected, so the row is untouched
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendProofsRemovesStoredFilesWhenSaveFails(t *testing.T) {
	mock := useMockDB(t)
	up, mail := installFakes(t, nil)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	expectOrder(mock, awaitingRow(created))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	body, contentType := proofForm(t, map[string][]byte{
		"front.png": pngBytes(),
		"back.png":  pngBytes(),
	}, "")
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+orderA+"/proofs", body)
	req.Header.Set("Content-Type", contentType)
	w, _ := serve(newRouter(), req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.ElementsMatch(t, []string{
		"proofs/" + orderA + "/proof-1",
		"proofs/" + orderA + "/proof-2",
	}, up.deletedFiles)
	assert.Empty(t, mail.sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendProofsWithoutStorage(t *testing.T) {
	mock := useMockDB(t)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)
	expectOrder(mock, awaitingRow(created))

	body, contentType := proofForm(t, map[string][]byte{"proof.png": pngBytes()}, "")
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+orderA+"/proofs", body)
	req.Header.Set("Content-Type", contentType)
	w, _ := serve(newRouter(), req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDownloadPackingSlip(t *testing.T) {
	mock := useMockDB(t)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)
	expectOrder(mock, fulfilledRow(created),
		[]driver.Value{"i-1", orderB, "Holographic Stickers", 10, 1.8, 18.0})

	w, _ := serve(newRouter(), httptest.NewRequest(http.MethodGet, "/admin/orders/"+orderB+"/packing-slip", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "packing-slip-SS-1002.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestSelectionSummary(t *testing.T) {
	got := selectionSummary(map[string]any{
		"size":     map[string]any{"displayValue": `3" x 3"`},
		"cut":      "Custom Shape",
		"material": map[string]any{"value": "matte"},
		"rush":     nil,
	})
	assert.Equal(t, `cut: Custom Shape, material: matte, size: 3" x 3"`, got)
	assert.Empty(t, selectionSummary(nil))
}

func TestClearProofs(t *testing.T) {
	mock := useMockDB(t)
	up, _ := installFakes(t, nil)
	created := time.Date(2024, time.June, 5, 9, 0, 0, 0, time.UTC)

	expectOrder(mock, awaitingRow(created))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "orders" SET .*"proof_status"=`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, env := serve(newRouter(), httptest.NewRequest(http.MethodDelete, "/admin/orders/"+orderA+"/proofs", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var view models.OrderView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, models.StatusBuildingProof, view.DisplayStatus)
	assert.Equal(t, []string{"proofs/" + orderA}, up.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
