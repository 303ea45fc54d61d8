package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourbook/middleware"
	"tourbook/models"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) InitiateBooking(ctx context.Context, a models.Actor, req models.InitiateBookingRequest) (*models.InitiateBookingResult, error) {
	args := m.Called(ctx, a, req)
	r, _ := args.Get(0).(*models.InitiateBookingResult)
	return r, args.Error(1)
}

func (m *mockBookingService) ConfirmPayment(ctx context.Context, a models.Actor, req models.ConfirmPaymentRequest) (*models.Booking, error) {
	args := m.Called(ctx, a, req)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) PayRemaining(ctx context.Context, a models.Actor, id string) (*models.Booking, error) {
	args := m.Called(ctx, a, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) ListMyBookings(ctx context.Context, a models.Actor) ([]models.BookingView, error) {
	args := m.Called(ctx, a)
	v, _ := args.Get(0).([]models.BookingView)
	return v, args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, a models.Actor, id string) (*models.BookingView, error) {
	args := m.Called(ctx, a, id)
	v, _ := args.Get(0).(*models.BookingView)
	return v, args.Error(1)
}

func (m *mockBookingService) ListAllBookings(ctx context.Context, a models.Actor) ([]models.BookingView, error) {
	args := m.Called(ctx, a)
	v, _ := args.Get(0).([]models.BookingView)
	return v, args.Error(1)
}

func (m *mockBookingService) Receipt(ctx context.Context, a models.Actor, id string) ([]byte, error) {
	args := m.Called(ctx, a, id)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type mockCatalogService struct{ mock.Mock }

func (m *mockCatalogService) CreatePackage(ctx context.Context, a models.Actor, in models.PackageInput, images []models.Upload) (*models.Package, error) {
	args := m.Called(ctx, a, in, images)
	p, _ := args.Get(0).(*models.Package)
	return p, args.Error(1)
}

func (m *mockCatalogService) UpdatePackage(ctx context.Context, a models.Actor, id string, in models.PackageInput, images []models.Upload) (*models.Package, error) {
	args := m.Called(ctx, a, id, in, images)
	p, _ := args.Get(0).(*models.Package)
	return p, args.Error(1)
}

func (m *mockCatalogService) GetPackage(ctx context.Context, id string) (*models.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Package)
	return p, args.Error(1)
}

func (m *mockCatalogService) ListPackages(ctx context.Context) ([]models.Package, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]models.Package)
	return p, args.Error(1)
}

func (m *mockCatalogService) PackagesByGroup(ctx context.Context, a models.Actor, groupID string) ([]models.Package, error) {
	args := m.Called(ctx, a, groupID)
	p, _ := args.Get(0).([]models.Package)
	return p, args.Error(1)
}

func (m *mockCatalogService) DeletePackage(ctx context.Context, a models.Actor, id string) error {
	return m.Called(ctx, a, id).Error(0)
}

func (m *mockCatalogService) ListTags() []string {
	return m.Called().Get(0).([]string)
}

func (m *mockCatalogService) CreateGroup(ctx context.Context, a models.Actor, in models.GroupInput, photo *models.Upload) (*models.GroupView, error) {
	args := m.Called(ctx, a, in, photo)
	g, _ := args.Get(0).(*models.GroupView)
	return g, args.Error(1)
}

func (m *mockCatalogService) ListGroups(ctx context.Context) ([]models.GroupView, error) {
	args := m.Called(ctx)
	g, _ := args.Get(0).([]models.GroupView)
	return g, args.Error(1)
}

func (m *mockCatalogService) GetGroup(ctx context.Context, id string) (*models.GroupView, error) {
	args := m.Called(ctx, id)
	g, _ := args.Get(0).(*models.GroupView)
	return g, args.Error(1)
}

func (m *mockCatalogService) UpdateGroup(ctx context.Context, a models.Actor, id string, in models.GroupInput, photo *models.Upload) (*models.GroupView, error) {
	args := m.Called(ctx, a, id, in, photo)
	g, _ := args.Get(0).(*models.GroupView)
	return g, args.Error(1)
}

func (m *mockCatalogService) DeleteGroup(ctx context.Context, a models.Actor, id string) error {
	return m.Called(ctx, a, id).Error(0)
}

var testActor = models.Actor{UserID: "u1", Role: models.RoleUser}

// withActor stands in for the auth middleware.
func withActor(actor models.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ActorKey, actor)
		c.Next()
	}
}

func do(r http.Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestCreateOrderHandler(t *testing.T) {
	svc := new(mockBookingService)
	h := NewBookingHandler(svc)
	r := gin.New()
	r.POST("/create-order", withActor(testActor), h.CreateOrderHandler)

	req := models.InitiateBookingRequest{PackageID: "p1", Amount: 900, PaymentType: "full"}
	svc.On("InitiateBooking", mock.Anything, testActor, req).
		Return(&models.InitiateBookingResult{BookingID: "b1", OrderID: "pi_1", TotalAmount: 900}, nil)

	w := do(r, http.MethodPost, "/create-order", jsonBody(t, req), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	var out models.InitiateBookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "b1", out.BookingID)
	assert.Equal(t, "pi_1", out.OrderID)
}

func TestCreateOrderHandlerMapsErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{utils.InvalidInput("contactEmail", "contactEmail is required"), http.StatusBadRequest},
		{utils.NotFound("package not found"), http.StatusNotFound},
		{utils.Upstream("payment gateway unavailable", errors.New("timeout")), http.StatusBadGateway},
	}
	for _, tc := range cases {
		svc := new(mockBookingService)
		r := gin.New()
		r.POST("/create-order", withActor(testActor), NewBookingHandler(svc).CreateOrderHandler)
		svc.On("InitiateBooking", mock.Anything, testActor, mock.Anything).Return(nil, tc.err)

		w := do(r, http.MethodPost, "/create-order", jsonBody(t, map[string]string{"packageId": "p1"}), "application/json")
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
	}
}

func TestBookingHandlerRequiresActor(t *testing.T) {
	r := gin.New()
	r.GET("/mine", NewBookingHandler(new(mockBookingService)).MyBookingsHandler)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/mine", nil, "").Code)
}

func TestReceiptHandlerServesPDF(t *testing.T) {
	svc := new(mockBookingService)
	r := gin.New()
	r.GET("/bookings/:id/receipt", withActor(testActor), NewBookingHandler(svc).ReceiptHandler)
	svc.On("Receipt", mock.Anything, testActor, "b1").Return([]byte("%PDF-1.3 test"), nil)

	w := do(r, http.MethodGet, "/bookings/b1/receipt", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "receipt-b1.pdf")
	assert.Equal(t, "%PDF-1.3 test", w.Body.String())
}

func TestConfirmPaymentHandler(t *testing.T) {
	svc := new(mockBookingService)
	r := gin.New()
	r.POST("/confirm-payment", withActor(testActor), NewBookingHandler(svc).ConfirmPaymentHandler)

	req := models.ConfirmPaymentRequest{PaymentID: "pay_1", OrderID: "pi_1", BookingID: "b1", PaymentType: "half"}
	svc.On("ConfirmPayment", mock.Anything, testActor, req).
		Return(&models.Booking{ID: "b1", PaymentStatus: models.StatusPartial}, nil)

	w := do(r, http.MethodPost, "/confirm-payment", jsonBody(t, req), "application/json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"paymentStatus":"partial"`)
}

func TestCreatePackageHandlerMultipart(t *testing.T) {
	svc := new(mockCatalogService)
	admin := models.Actor{UserID: "a1", Role: models.RoleAdmin}
	r := gin.New()
	r.POST("/packages", withActor(admin), NewCatalogHandler(svc).CreatePackageHandler)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Spiti Valley"))
	require.NoError(t, mw.WriteField("price", "1000"))
	require.NoError(t, mw.WriteField("discount", "10"))
	require.NoError(t, mw.WriteField("duration", "6 days"))
	require.NoError(t, mw.WriteField("hot", "true"))
	require.NoError(t, mw.WriteField("itinerary", `[{"day":1,"title":"Arrival","description":"Kaza"}]`))
	require.NoError(t, mw.WriteField("tags", `["Adventure & Treks"]`))
	fw, err := mw.CreateFormFile("images", "cover.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	svc.On("CreatePackage", mock.Anything, admin, mock.MatchedBy(func(in models.PackageInput) bool {
		return in.Title != nil && *in.Title == "Spiti Valley" &&
			in.Price != nil && *in.Price == 1000 &&
			in.Discount != nil && *in.Discount == 10 &&
			in.Hot != nil && *in.Hot &&
			len(in.Itinerary) == 1 &&
			assert.ObjectsAreEqual([]string{"Adventure & Treks"}, in.Tags)
	}), mock.MatchedBy(func(images []models.Upload) bool {
		return len(images) == 1 && images[0].Filename == "cover.jpg" && images[0].Content != nil
	})).Return(&models.Package{ID: "p1", FinalPrice: 900}, nil)

	w := do(r, http.MethodPost, "/packages", &buf, mw.FormDataContentType())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"finalPrice":900`)
}

func TestCreatePackageHandlerRejectsBadPrice(t *testing.T) {
	svc := new(mockCatalogService)
	r := gin.New()
	r.POST("/packages", withActor(models.Actor{UserID: "a1", Role: models.RoleAdmin}), NewCatalogHandler(svc).CreatePackageHandler)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("price", "lots"))
	require.NoError(t, mw.Close())

	w := do(r, http.MethodPost, "/packages", &buf, mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"price"`)
	svc.AssertNotCalled(t, "CreatePackage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListTagsHandler(t *testing.T) {
	svc := new(mockCatalogService)
	svc.On("ListTags").Return([]string{"Seasonal Specials"})
	r := gin.New()
	r.GET("/tags", NewCatalogHandler(svc).ListTagsHandler)

	w := do(r, http.MethodGet, "/tags", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tags":["Seasonal Specials"]}`, w.Body.String())
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseTags([]string{`["a","b"]`}))
	assert.Equal(t, []string{"a", "b"}, parseTags([]string{" a ", "", "b"}))
}

func TestHealthHandler(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthHandler)
	w := do(r, http.MethodGet, "/health", nil, "")
	assert.Contains(t, []int{http.StatusOK, http.StatusServiceUnavailable}, w.Code)
	assert.Contains(t, w.Body.String(), `"status"`)
}
