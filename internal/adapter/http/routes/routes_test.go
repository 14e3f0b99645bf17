package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nanny_booking/internal/adapter/http/handlers"
	"nanny_booking/internal/adapter/http/handlers/mocks"
	"nanny_booking/internal/adapter/http/middleware"
	"nanny_booking/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type routerFixture struct {
	router   *gin.Engine
	sessions *mocks.MockIPreferenceSessionUseCase
	pricing  *mocks.MockIPricingUseCase
	bookings *mocks.MockIBookingSubmissionUseCase
}

func newRouterFixture(t *testing.T, rateLimit int) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	f := routerFixture{
		sessions: mocks.NewMockIPreferenceSessionUseCase(ctrl),
		pricing:  mocks.NewMockIPricingUseCase(ctrl),
		bookings: mocks.NewMockIBookingSubmissionUseCase(ctrl),
	}
	f.router = NewRouter(Handlers{
		Preferences: handlers.NewPreferencesHandler(f.sessions),
		Pricing:     handlers.NewPricingHandler(f.pricing),
		Bookings:    handlers.NewBookingHandler(f.bookings),
	}, rateLimit, zap.NewNop())
	return f
}

func (f routerFixture) do(method, path, session string) int {
	req := httptest.NewRequest(method, path, nil)
	if session != "" {
		req.Header.Set(middleware.HeaderSessionID, session)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w.Code
}

func TestNewRouter(t *testing.T) {
	t.Run("ping needs no session", func(t *testing.T) {
		f := newRouterFixture(t, 120)
		if code := f.do(http.MethodGet, "/v1/ping", ""); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})

	t.Run("booking routes require a session", func(t *testing.T) {
		f := newRouterFixture(t, 120)
		for _, path := range []string{"/v1/preferences", "/v1/pricing/preview", "/v1/bookings/b-1"} {
			if code := f.do(http.MethodGet, path, ""); code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", path, code)
			}
		}
	})

	t.Run("preferences route reaches the session use case", func(t *testing.T) {
		f := newRouterFixture(t, 120)
		f.sessions.EXPECT().Open(gomock.Any(), entities.Identity{SessionID: "sess-1"}).
			Return(entities.SessionSnapshot{SessionID: "sess-1"}, nil)

		if code := f.do(http.MethodGet, "/v1/preferences", "sess-1"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})

	t.Run("pricing is rate limited per session", func(t *testing.T) {
		f := newRouterFixture(t, 10)
		f.pricing.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(entities.PricingBreakdown{Taxonomy: "long_term"}, nil).Times(2)

		if code := f.do(http.MethodGet, "/v1/pricing/preview", "sess-1"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
		if code := f.do(http.MethodGet, "/v1/pricing/preview", "sess-1"); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", code)
		}
		if code := f.do(http.MethodGet, "/v1/pricing/preview", "sess-2"); code != http.StatusOK {
			t.Fatalf("expected 200 for another session, got %d", code)
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		f := newRouterFixture(t, 120)
		if code := f.do(http.MethodGet, "/v1/unknown", "sess-1"); code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", code)
		}
	})
}
