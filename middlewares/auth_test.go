package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brainscript/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.String(http.StatusOK, id.Hex())
	})
	return r
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	utils.SetJWTSecret("mw-secret", time.Hour)
	r := newAuthRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
	}
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Fatal("expected a request id header")
	}
}

func TestAuthMiddlewareAcceptsBearerAndCookie(t *testing.T) {
	utils.SetJWTSecret("mw-secret", time.Hour)
	r := newAuthRouter()
	id := primitive.NewObjectID()
	token, err := utils.GenerateJWTToken(id.Hex())
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	cases := map[string]func(*http.Request){
		"bearer": func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+token) },
		"cookie": func(req *http.Request) { req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token}) },
	}
	for name, attach := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			attach(req)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusOK)
			}
			if rec.Body.String() != id.Hex() {
				t.Fatalf("unexpected user id: got=%q want=%q", rec.Body.String(), id.Hex())
			}
		})
	}
}

func TestAuthMiddlewareRejectsNonObjectIDSubject(t *testing.T) {
	utils.SetJWTSecret("mw-secret", time.Hour)
	r := newAuthRouter()
	token, err := utils.GenerateJWTToken("not-an-object-id")
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusUnauthorized)
	}
}
