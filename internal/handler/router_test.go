//go:build unit

package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"market-admin/internal/domain/booking"
	"market-admin/internal/domain/catalog"
	"market-admin/internal/domain/session"
	"market-admin/internal/handler"
	"market-admin/internal/handler/api"
	"market-admin/internal/handler/middleware"
	"market-admin/internal/infra/apiclient"
	"market-admin/internal/infra/export"
	"market-admin/internal/pkg/clock"
	"market-admin/internal/pkg/config"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/pkg/jwt"
	"market-admin/internal/usecase"
	"market-admin/internal/usecase/commands"
	"market-admin/internal/usecase/queries"
	"market-admin/internal/usecase/readmodel"
	"market-admin/internal/usecase/tableview"
	"market-admin/tests/common/authtest"
	"market-admin/tests/common/httptest"
	commandsmock "market-admin/tests/mock/commands"
	queriesmock "market-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	auth      *commandsmock.MockAuthCommands
	lifecycle *commandsmock.MockBookingLifecycle
	catalog   *commandsmock.MockCatalogCommands
	banners   *commandsmock.MockBannerCommands
	bookingQ  *queriesmock.MockBookingQueries
	catalogQ  *queriesmock.MockCatalogQueries
	dashQ     *queriesmock.MockDashboardQueries

	router *gin.Engine
	token  string
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())

	s.auth = commandsmock.NewMockAuthCommands(s.ctrl)
	s.lifecycle = commandsmock.NewMockBookingLifecycle(s.ctrl)
	s.catalog = commandsmock.NewMockCatalogCommands(s.ctrl)
	s.banners = commandsmock.NewMockBannerCommands(s.ctrl)
	s.bookingQ = queriesmock.NewMockBookingQueries(s.ctrl)
	s.catalogQ = queriesmock.NewMockCatalogQueries(s.ctrl)
	s.dashQ = queriesmock.NewMockDashboardQueries(s.ctrl)

	cfg := config.NewTestConfig()
	guard := middleware.NewGuardMiddleware(usecase.RoutePaths{
		PublicPrefix:       cfg.Guard.PublicPrefix,
		LoginPath:          cfg.Guard.LoginPath,
		ChangePasswordPath: cfg.Guard.ChangePasswordPath,
	}, jwt.NewInspector(), clock.NewRealClock())

	s.router = gin.New()
	handler.NewRouter(s.router, cfg, middleware.NewLogger(cfg.Log), guard, handler.Handlers{
		Auth:      api.NewAuthHandler(s.auth, guard, cfg),
		Booking:   api.NewBookingHandler(s.lifecycle, s.bookingQ),
		Catalog:   api.NewCatalogHandler(s.catalog, s.catalogQ),
		Banner:    api.NewBannerHandler(s.banners),
		Dashboard: api.NewDashboardHandler(s.dashQ),
	})
	s.token = authtest.ValidToken(s.T())
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) signedIn() httptest.RequestOption {
	profile := authtest.Profile(true)
	return httptest.WithCookies(authtest.SessionCookies(s.T(), s.token, &profile)...)
}

func (s *RouterTestSuite) TestHealth() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *RouterTestSuite) TestUnknownPathsAreGuarded() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/12", nil, httptest.AsBrowser())
	httptest.AssertRedirect(s.T(), w, "/auth/login")

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/12", nil, s.signedIn())
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Not found")
}

func (s *RouterTestSuite) TestAPIRequiresSession() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings", nil)
	httptest.AssertDenied(s.T(), w, http.StatusUnauthorized, "/auth/login")
}

func (s *RouterTestSuite) TestLogin() {
	profile := authtest.Profile(false)
	encoded, err := session.EncodeProfile(profile)
	s.Require().NoError(err)

	s.auth.EXPECT().
		Login(gomock.Any(), readmodel.Credentials{Email: "ada@example.com", Password: "secret"}).
		Return(&commands.LoginResult{
			Session:     session.Session{Token: s.token, User: &profile},
			EncodedUser: encoded,
		}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ada@example.com", "password": "secret"})

	var body struct {
		User     session.Profile `json:"user"`
		Redirect string          `json:"redirect"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal("/auth/change-password", body.Redirect)
	s.Equal(profile.Email, body.User.Email)
	httptest.AssertHeaders(s.T(), w, map[string]string{"Cache-Control": "no-store"})

	tokenCookie := httptest.ExtractCookie(w, "token")
	s.Require().NotNil(tokenCookie)
	s.Equal(s.token, tokenCookie.Value)
	s.True(tokenCookie.HttpOnly)
	s.True(tokenCookie.Secure)
	s.Equal(http.SameSiteStrictMode, tokenCookie.SameSite)
	s.Equal(86400, tokenCookie.MaxAge)

	user := authtest.DecodeUserCookie(s.T(), httptest.ExtractCookie(w, "user"))
	s.True(user.MustChangePassword())
}

func (s *RouterTestSuite) TestLoginErrors() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "not-an-email", "password": "x"})
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")

	s.auth.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, errs.Mark(errs.New("bad password"), commands.ErrInvalidCredentials))
	w = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": "ada@example.com", "password": "wrong"})
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	s.Nil(httptest.ExtractCookie(w, "token"))
}

func (s *RouterTestSuite) TestLogoutClearsCookies() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/logout", nil, s.signedIn())
	s.Equal(http.StatusNoContent, w.Code)
	for _, name := range []string{"token", "user"} {
		c := httptest.ExtractCookie(w, name)
		s.Require().NotNil(c, name)
		s.Negative(c.MaxAge)
	}
}

func (s *RouterTestSuite) TestChangePasswordWithoutSession() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/change-password",
		map[string]string{"current_password": "old-secret", "password": "new-secret", "password_confirmation": "new-secret"})
	httptest.AssertDenied(s.T(), w, http.StatusUnauthorized, "/auth/login")
}

func (s *RouterTestSuite) TestChangePasswordRefreshesUserCookie() {
	profile := authtest.Profile(false)
	cookies := authtest.SessionCookies(s.T(), s.token, &profile)

	s.auth.EXPECT().
		ChangePassword(gomock.Any(), readmodel.PasswordChange{
			CurrentPassword: "old-secret",
			NewPassword:     "new-secret",
			Confirmation:    "new-secret",
		}).
		DoAndReturn(func(ctx context.Context, _ readmodel.PasswordChange) (*readmodel.Envelope, error) {
			s.Equal(s.token, session.Token(ctx))
			return &readmodel.Envelope{Status: readmodel.StatusSuccess, Message: "Password changed"}, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/change-password",
		map[string]string{"current_password": "old-secret", "password": "new-secret", "password_confirmation": "new-secret"},
		httptest.WithCookies(cookies...))

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal("success", body.Status)

	user := authtest.DecodeUserCookie(s.T(), httptest.ExtractCookie(w, "user"))
	s.False(user.MustChangePassword())
	s.Equal(profile.ID, user.ID)
}

func (s *RouterTestSuite) TestRouteCheck() {
	var body struct {
		Allow    bool   `json:"allow"`
		Redirect string `json:"redirect"`
	}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/route-check?path=/bookings", nil)
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.False(body.Allow)
	s.Equal("/auth/login", body.Redirect)

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/route-check?path=/bookings", nil, s.signedIn())
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.True(body.Allow)
}

func (s *RouterTestSuite) TestBookingList() {
	want := queries.TableQuery{
		PageIndex: 2,
		PageSize:  25,
		Sort:      tableview.Sort{Key: "date", Desc: true},
		Search:    "ada",
		Status:    "ongoing",
	}
	s.bookingQ.EXPECT().BookingTable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q queries.TableQuery) (*tableview.Table, error) {
			if diff := cmp.Diff(want, q); diff != "" {
				s.T().Errorf("table query mismatch (-want +got):\n%s", diff)
			}
			return &tableview.Table{Pagination: tableview.Pagination{PageIndex: 2, PageSize: 25, TotalRows: 80}, PageCount: 4}, nil
		})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
		"/api/bookings?page=2&page_size=25&sort=date&desc=true&search=ada&status=ongoing", nil, s.signedIn())

	var table tableview.Table
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &table)
	s.Equal(4, table.PageCount)
}

func (s *RouterTestSuite) TestBookingListRejectsOversizedPage() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings?page_size=1000", nil, s.signedIn())
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid query")
}

func (s *RouterTestSuite) TestBookingExport() {
	s.bookingQ.EXPECT().BookingTable(gomock.Any(), gomock.Any()).Return(&tableview.Table{
		Columns: []tableview.Header{{Key: "id", Title: "Booking"}, {Key: "status", Title: "Status"}},
		Rows:    []tableview.Row{{Cells: []tableview.Cell{{Text: "#7"}, {Text: "ongoing"}}}},
	}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/export", nil, s.signedIn())
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	httptest.AssertHeaders(s.T(), w, map[string]string{
		"Content-Type":  export.XLSXContentType,
		"Cache-Control": "no-store",
	})
	s.Contains(w.Header().Get("Content-Disposition"), "attachment;")

	book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	s.Require().NoError(err)
	defer book.Close()
	rows, err := book.GetRows(book.GetSheetName(0))
	s.Require().NoError(err)
	s.Equal([][]string{{"Booking", "Status"}, {"#7", "ongoing"}}, rows)
}

func (s *RouterTestSuite) TestBookingDetailAndRelease() {
	s.lifecycle.EXPECT().Load(gomock.Any(), int64(7)).Return(&commands.BookingView{
		Booking:   readmodel.Booking{ID: 7, DeliveryStatus: "processing", PaymentStatus: "pending"},
		CanCancel: true,
	}, nil)

	var view commands.BookingView
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/7", nil, s.signedIn())
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
	s.True(view.CanCancel)

	s.lifecycle.EXPECT().Forget(gomock.Any(), int64(7))
	w = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/7/view", nil, s.signedIn())
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *RouterTestSuite) TestBookingInvalidID() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/abc", nil, s.signedIn())
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
}

func (s *RouterTestSuite) TestChangeStatusLoadsUnseenBooking() {
	view := &commands.BookingView{Booking: readmodel.Booking{ID: 7, DeliveryStatus: "ongoing", PaymentStatus: "pending"}}
	gomock.InOrder(
		s.lifecycle.EXPECT().Transition(gomock.Any(), int64(7), booking.AxisDelivery, "ongoing").
			Return(nil, errs.Wrap(errs.ErrBookingNotLoaded, "booking 7")),
		s.lifecycle.EXPECT().Load(gomock.Any(), int64(7)).Return(view, nil),
		s.lifecycle.EXPECT().Transition(gomock.Any(), int64(7), booking.AxisDelivery, "ongoing").
			Return(&commands.TransitionResult{View: view, Notice: commands.NoticeDeliveryUpdated}, nil),
	)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/bookings/7/status",
		map[string]string{"status": "ongoing"}, s.signedIn())

	var body struct {
		Notice  string                `json:"notice"`
		Booking *commands.BookingView `json:"booking"`
	}
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal(commands.NoticeDeliveryUpdated, body.Notice)
	s.Require().NotNil(body.Booking)
	s.Equal("ongoing", body.Booking.Booking.DeliveryStatus)
}

func (s *RouterTestSuite) TestPaymentStatusErrorMapping() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid transition", errs.Wrap(errs.ErrInvalidTransition, "completed -> pending"), http.StatusConflict},
		{"backend declined", errs.Mark(errs.New("declined"), errs.ErrTransitionRejected), http.StatusUnprocessableEntity},
		{"upstream not found", &apiclient.Error{Kind: apiclient.KindStatus, Status: http.StatusNotFound, Message: "No booking"}, http.StatusNotFound},
		{"upstream server error", &apiclient.Error{Kind: apiclient.KindStatus, Status: http.StatusInternalServerError}, http.StatusBadGateway},
		{"transport failure", &apiclient.Error{Kind: apiclient.KindTransport, Message: "connection refused"}, http.StatusBadGateway},
		{"decode failure", &apiclient.Error{Kind: apiclient.KindDecode, Status: http.StatusOK}, http.StatusBadGateway},
		{"unexpected", errs.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.lifecycle.EXPECT().Transition(gomock.Any(), int64(9), booking.AxisPayment, "refunded").Return(nil, tt.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/bookings/9/payment-status",
				map[string]string{"payment_status": "refunded"}, s.signedIn())
			httptest.AssertErrorResponse(s.T(), w, tt.status, "")
		})
	}
}

func (s *RouterTestSuite) TestUpstreamErrorDetail() {
	s.lifecycle.EXPECT().Transition(gomock.Any(), int64(9), booking.AxisDelivery, "delivered").
		Return(nil, &apiclient.Error{Kind: apiclient.KindStatus, Status: http.StatusUnprocessableEntity, Message: "Invalid status", Detail: "status is locked"})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/bookings/9/status",
		map[string]string{"status": "delivered"}, s.signedIn())
	body := httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Status update failed")

	var detail map[string]string
	s.Require().NoError(json.Unmarshal(body.Detail, &detail))
	s.Equal(map[string]string{"kind": "STATUS", "message": "Invalid status", "error_detail": "status is locked"}, detail)
}

func (s *RouterTestSuite) TestCancel() {
	s.lifecycle.EXPECT().Cancel(gomock.Any(), int64(3)).Return(nil, errs.Wrap(errs.ErrCancelNotAllowed, "booking 3"))

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/bookings/3/cancel", nil, s.signedIn())
	httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Cancellation failed")
}

func (s *RouterTestSuite) TestCreateSubscriptionMissingFields() {
	s.catalog.EXPECT().
		CreateSubscription(gomock.Any(), catalog.SubscriptionForm{Name: "Gold"}).
		Return(nil, &catalog.FieldError{Fields: []string{"monthly_price", "yearly_price", "features", "payment_link"}})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/subscriptions",
		map[string]any{"name": "Gold"}, s.signedIn())
	body := httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "All fields are required")

	var detail struct {
		Fields []string `json:"fields"`
	}
	s.Require().NoError(json.Unmarshal(body.Detail, &detail))
	s.Equal([]string{"monthly_price", "yearly_price", "features", "payment_link"}, detail.Fields)
}

func (s *RouterTestSuite) TestDeleteCountry() {
	s.catalog.EXPECT().DeleteCountry(gomock.Any(), int64(4)).
		Return(&readmodel.MutationResult{Envelope: readmodel.Envelope{Status: "success", Message: "Country deleted"}}, nil)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/countries/4", nil, s.signedIn())
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal("Country deleted", body.Message)
}

func (s *RouterTestSuite) TestPlaces() {
	s.catalogQ.EXPECT().Places(gomock.Any(), queries.PlaceStates, gomock.Any()).
		Return(&readmodel.PlacePage{Envelope: readmodel.Envelope{Status: "success"}, Total: 0}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/places/states", nil, s.signedIn())
	s.Equal(http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/places/planets", nil, s.signedIn())
	httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Unknown place kind")
}

func (s *RouterTestSuite) TestDashboardGraphNeverNull() {
	s.dashQ.EXPECT().OrderGraph(gomock.Any(), "2025-01-01").Return(nil, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/graph?start_date=2025-01-01", nil, s.signedIn())
	s.Equal(http.StatusOK, w.Code, w.Body.String())
	s.JSONEq(`[]`, w.Body.String())

	w = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/orders/graph?start_date=01/01/2025", nil, s.signedIn())
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid query")
}

func (s *RouterTestSuite) TestBannerByType() {
	s.dashQ.EXPECT().BannerByType(gomock.Any(), "hero").Return("https://cdn.example.com/hero.png", nil)

	var body struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	}
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/banners/by-type/hero", nil, s.signedIn())
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
	s.Equal("hero", body.Type)
	s.Equal("https://cdn.example.com/hero.png", body.URL)
}

func (s *RouterTestSuite) TestCreateBannerUpload() {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	s.Require().NoError(mw.WriteField("banner_type_id", "2"))
	s.Require().NoError(mw.WriteField("link", "https://shop.example.com"))
	part, err := mw.CreateFormFile("image", "hero.png")
	s.Require().NoError(err)
	_, err = part.Write([]byte("\x89PNG fake"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	s.banners.EXPECT().Create(gomock.Any(), readmodel.BannerUpload{
		BannerTypeID: 2,
		Link:         "https://shop.example.com",
		FileName:     "hero.png",
		Image:        []byte("\x89PNG fake"),
	}).Return(&readmodel.MutationResult{Envelope: readmodel.Envelope{Status: "success"}}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/banners", nil,
		s.signedIn(), httptest.WithRawBody(mw.FormDataContentType(), buf.Bytes()))
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (s *RouterTestSuite) TestUpdateBannerWithoutImage() {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	s.Require().NoError(mw.WriteField("banner_type_id", "5"))
	s.Require().NoError(mw.Close())

	s.banners.EXPECT().Update(gomock.Any(), int64(11), readmodel.BannerUpload{BannerTypeID: 5}).
		Return(&readmodel.MutationResult{Envelope: readmodel.Envelope{Status: "success"}}, nil)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/banners/11", nil,
		s.signedIn(), httptest.WithRawBody(mw.FormDataContentType(), buf.Bytes()))
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *RouterTestSuite) TestBannerTypeRequiresName() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/banner-types", map[string]string{}, s.signedIn())
	httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
}
