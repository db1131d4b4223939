package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"crewbase.app/org-server/internal/model"
	"crewbase.app/org-server/internal/service"
	"crewbase.app/org-server/internal/store"
)

var _ = Describe("OrganizationService", func() {
	var (
		stores *memStores
		svc    service.OrganizationService
		owner  service.Identity
		ctx    context.Context
	)

	BeforeEach(func() {
		stores = newMemStores()
		svc = service.NewOrganizationService(stores, stores)
		owner = service.Identity{UserID: 101, Email: "alice@acme.test"}
		ctx = context.Background()
	})

	It("creates the organization and the owner membership together", func() {
		org, err := svc.Create(ctx, owner, "Acme", "acme")
		Expect(err).NotTo(HaveOccurred())
		Expect(org.ID).NotTo(BeZero())
		Expect(org.Slug).To(Equal("acme"))
		Expect(org.Status).To(Equal(model.OrgStatusActive))
		Expect(org.OwnerUserID).To(Equal(owner.UserID))

		m, err := stores.Memberships().GetByOrgAndUser(ctx, org.ID, owner.UserID)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Role).To(Equal(model.RoleOwner))
		Expect(m.Status).To(Equal(model.MemberStatusActive))
		Expect(m.Email).To(Equal(owner.Email))
	})

	It("rejects an empty name", func() {
		_, err := svc.Create(ctx, owner, "  ", "acme")
		Expect(err).To(MatchError(service.ErrInvalidArgument))
		Expect(stores.orgs).To(BeEmpty())
		Expect(stores.members).To(BeEmpty())
	})

	It("rejects an empty slug", func() {
		_, err := svc.Create(ctx, owner, "Acme", "")
		Expect(err).To(MatchError(service.ErrInvalidArgument))
	})

	It("normalizes the requested slug", func() {
		org, err := svc.Create(ctx, owner, "Acme", "Acme Rockets!")
		Expect(err).NotTo(HaveOccurred())
		Expect(org.Slug).To(Equal("acme-rockets"))
	})

	It("suffixes the slug when it is taken", func() {
		_, err := svc.Create(ctx, owner, "Acme", "acme")
		Expect(err).NotTo(HaveOccurred())

		other := service.Identity{UserID: 102, Email: "bob@other.test"}
		org, err := svc.Create(ctx, other, "Acme Clone", "acme")
		Expect(err).NotTo(HaveOccurred())
		Expect(org.Slug).To(Equal("acme-1"))
	})

	It("classifies losing a slug race as a conflict", func() {
		// The availability lookup is blind here, so a concurrently created
		// org with the same slug is only caught by the store's uniqueness
		// check, the way the unique index catches it under Postgres.
		stores.orgs[1] = model.Organization{ID: 1, OwnerUserID: 999, Name: "First", Slug: "acme", Status: model.OrgStatusActive}

		raced := &blindSlugStores{memStores: stores}
		racedSvc := service.NewOrganizationService(raced, raced)

		_, err := racedSvc.Create(ctx, owner, "Acme", "acme")
		Expect(err).To(MatchError(service.ErrConflict))
		Expect(stores.members).To(BeEmpty())
	})

	Describe("Get", func() {
		It("returns the organization to a member", func() {
			org, err := svc.Create(ctx, owner, "Acme", "acme")
			Expect(err).NotTo(HaveOccurred())

			got, err := svc.Get(ctx, owner, org.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(org.ID))
			Expect(got.Slug).To(Equal("acme"))
		})

		It("denies a non-member", func() {
			org, err := svc.Create(ctx, owner, "Acme", "acme")
			Expect(err).NotTo(HaveOccurred())

			outsider := service.Identity{UserID: 555, Email: "eve@other.test"}
			_, err = svc.Get(ctx, outsider, org.ID)
			Expect(err).To(MatchError(service.ErrPermissionDenied))
		})
	})

	It("rolls back the organization when a later write in the transaction fails", func() {
		err := stores.WithTx(ctx, func(provider store.StoreProvider) error {
			org := &model.Organization{ID: 1, OwnerUserID: owner.UserID, Name: "Acme", Slug: "acme", Status: model.OrgStatusActive}
			Expect(provider.Organizations().Create(ctx, org)).To(Succeed())
			return errors.New("membership write failed")
		})
		Expect(err).To(HaveOccurred())
		Expect(stores.orgs).To(BeEmpty())
	})
})

// blindSlugStores wraps memStores with an organization store whose slug
// lookup never finds anything, simulating a racing transaction that claims
// the slug between the availability check and the insert.
type blindSlugStores struct {
	*memStores
}

func (s *blindSlugStores) Organizations() store.OrganizationStore {
	return &blindSlugOrgStore{OrganizationStore: s.memStores.Organizations()}
}

func (s *blindSlugStores) WithTx(ctx context.Context, fn func(stores store.StoreProvider) error) error {
	return s.memStores.WithTx(ctx, func(store.StoreProvider) error {
		return fn(s)
	})
}

type blindSlugOrgStore struct {
	store.OrganizationStore
}

func (s *blindSlugOrgStore) GetBySlug(context.Context, string) (*model.Organization, error) {
	return nil, store.ErrNotFound
}
