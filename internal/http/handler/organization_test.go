package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"crewbase.app/org-server/internal/http/handler"
	"crewbase.app/org-server/internal/http/middleware"
	"crewbase.app/org-server/internal/model"
	"crewbase.app/org-server/internal/service"
)

type mockOrgService struct {
	createFn func(ctx context.Context, caller service.Identity, name, slug string) (*model.Organization, error)
	getFn    func(ctx context.Context, caller service.Identity, orgID int64) (*model.Organization, error)
}

func (m *mockOrgService) Create(ctx context.Context, caller service.Identity, name, slug string) (*model.Organization, error) {
	if m.createFn != nil {
		return m.createFn(ctx, caller, name, slug)
	}
	return nil, nil
}

func (m *mockOrgService) Get(ctx context.Context, caller service.Identity, orgID int64) (*model.Organization, error) {
	if m.getFn != nil {
		return m.getFn(ctx, caller, orgID)
	}
	return nil, nil
}

// asIdentity injects a caller identity the way RequireIdentity would.
func asIdentity(ident service.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, ident)
		c.Next()
	}
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	Expect(err).NotTo(HaveOccurred())
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var _ = Describe("OrganizationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockOrgService
		caller service.Identity
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockOrgService{}
		caller = service.Identity{UserID: 101, Email: "alice@acme.test"}

		h := handler.NewOrganizationHandler(svc)
		router.POST("/organizations", asIdentity(caller), h.Create)
		router.GET("/organizations/:orgID", asIdentity(caller), h.Get)
	})

	It("creates an organization", func() {
		svc.createFn = func(_ context.Context, ident service.Identity, name, slug string) (*model.Organization, error) {
			Expect(ident).To(Equal(caller))
			Expect(name).To(Equal("Acme"))
			Expect(slug).To(Equal("acme"))
			return &model.Organization{ID: 7, OwnerUserID: ident.UserID, Name: name, Slug: slug, Status: model.OrgStatusActive}, nil
		}

		w := postJSON(router, "/organizations", map[string]string{"name": "Acme", "slug": "acme"})

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("7"))
		Expect(resp["slug"]).To(Equal("acme"))
	})

	It("returns 400 when the name is missing", func() {
		w := postJSON(router, "/organizations", map[string]string{"slug": "acme"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 when the service rejects the input", func() {
		svc.createFn = func(context.Context, service.Identity, string, string) (*model.Organization, error) {
			return nil, fmt.Errorf("%w: slug is required", service.ErrInvalidArgument)
		}
		w := postJSON(router, "/organizations", map[string]string{"name": "Acme", "slug": "-"})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 409 when the slug is claimed concurrently", func() {
		svc.createFn = func(context.Context, service.Identity, string, string) (*model.Organization, error) {
			return nil, fmt.Errorf("%w: slug \"acme\" is already in use", service.ErrConflict)
		}
		w := postJSON(router, "/organizations", map[string]string{"name": "Acme", "slug": "acme"})
		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("returns the organization to a member", func() {
		svc.getFn = func(_ context.Context, ident service.Identity, orgID int64) (*model.Organization, error) {
			Expect(ident).To(Equal(caller))
			Expect(orgID).To(Equal(int64(7)))
			return &model.Organization{ID: 7, OwnerUserID: ident.UserID, Name: "Acme", Slug: "acme", Status: model.OrgStatusActive}, nil
		}

		w := getJSON(router, "/organizations/7")

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("7"))
		Expect(resp["name"]).To(Equal("Acme"))
	})

	It("returns 403 to a non-member fetching the organization", func() {
		svc.getFn = func(context.Context, service.Identity, int64) (*model.Organization, error) {
			return nil, service.ErrPermissionDenied
		}
		w := getJSON(router, "/organizations/7")
		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("returns 401 without an identity", func() {
		bare := gin.New()
		h := handler.NewOrganizationHandler(svc)
		bare.POST("/organizations", h.Create)

		w := postJSON(bare, "/organizations", map[string]string{"name": "Acme", "slug": "acme"})
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("hides internal errors behind a 500", func() {
		svc.createFn = func(context.Context, service.Identity, string, string) (*model.Organization, error) {
			return nil, fmt.Errorf("connection refused")
		}
		w := postJSON(router, "/organizations", map[string]string{"name": "Acme", "slug": "acme"})
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["error"]).To(Equal("internal error"))
	})
})
