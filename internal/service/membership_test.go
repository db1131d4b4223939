package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"crewbase.app/org-server/internal/model"
	"crewbase.app/org-server/internal/service"
)

var _ = Describe("MembershipService", func() {
	var (
		stores    *memStores
		orgSvc    service.OrganizationService
		inviteSvc service.InviteService
		svc       service.MembershipService
		owner     service.Identity
		ctx       context.Context
		orgID     int64
	)

	BeforeEach(func() {
		stores = newMemStores()
		orgSvc = service.NewOrganizationService(stores, stores)
		inviteSvc = service.NewInviteService(stores, stores)
		svc = service.NewMembershipService(stores)
		owner = service.Identity{UserID: 101, Email: "alice@acme.test"}
		ctx = context.Background()

		org, err := orgSvc.Create(ctx, owner, "Acme", "acme")
		Expect(err).NotTo(HaveOccurred())
		orgID = org.ID
	})

	join := func(caller service.Identity, role model.Role, requiresApproval bool) {
		inv, err := inviteSvc.Create(ctx, owner, service.CreateInviteParams{
			OrgID:            orgID,
			Email:            caller.Email,
			Role:             role,
			RequiresApproval: requiresApproval,
		})
		Expect(err).NotTo(HaveOccurred())
		_, err = inviteSvc.Accept(ctx, caller, inv.ID)
		Expect(err).NotTo(HaveOccurred())
	}

	Describe("SubmitOnboarding", func() {
		It("fills in the profile and activates the membership", func() {
			bob := service.Identity{UserID: 202, Email: "b@x.com"}
			join(bob, model.RoleStaff, false)

			m, err := svc.SubmitOnboarding(ctx, bob, orgID, "Bob", "555-1234")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Status).To(Equal(model.MemberStatusActive))
			Expect(m.FullName).To(HaveValue(Equal("Bob")))
			Expect(m.Phone).To(HaveValue(Equal("555-1234")))
			Expect(m.OnboardedAt).NotTo(BeNil())
		})

		It("parks approval-gated members in pending_approval", func() {
			bob := service.Identity{UserID: 202, Email: "b@x.com"}
			join(bob, model.RoleStaff, true)

			m, err := svc.SubmitOnboarding(ctx, bob, orgID, "Bob", "555-1234")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Status).To(Equal(model.MemberStatusPendingApproval))
		})

		It("denies a caller with no membership and writes nothing", func() {
			stranger := service.Identity{UserID: 999, Email: "m@x.com"}
			_, err := svc.SubmitOnboarding(ctx, stranger, orgID, "Mallory", "555-0000")
			Expect(err).To(MatchError(service.ErrPermissionDenied))
			Expect(stores.members).To(HaveLen(1)) // founding owner only
		})

		It("rejects an empty full name", func() {
			bob := service.Identity{UserID: 202, Email: "b@x.com"}
			join(bob, model.RoleStaff, false)

			_, err := svc.SubmitOnboarding(ctx, bob, orgID, "   ", "555-1234")
			Expect(err).To(MatchError(service.ErrInvalidArgument))
		})
	})

	Describe("Approve", func() {
		var bob service.Identity

		BeforeEach(func() {
			bob = service.Identity{UserID: 202, Email: "b@x.com"}
			join(bob, model.RoleStaff, true)
		})

		It("activates the member and records the approver", func() {
			m, err := svc.Approve(ctx, owner, orgID, bob.UserID)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Status).To(Equal(model.MemberStatusActive))
			Expect(m.ApprovedAt).NotTo(BeNil())
			Expect(m.ApprovedBy).To(HaveValue(Equal(owner.UserID)))
		})

		It("is idempotent on an already-active member", func() {
			_, err := svc.Approve(ctx, owner, orgID, bob.UserID)
			Expect(err).NotTo(HaveOccurred())

			m, err := svc.Approve(ctx, owner, orgID, bob.UserID)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Status).To(Equal(model.MemberStatusActive))
		})

		It("denies a staff caller", func() {
			carol := service.Identity{UserID: 203, Email: "c@x.com"}
			join(carol, model.RoleStaff, false)
			_, err := svc.SubmitOnboarding(ctx, carol, orgID, "Carol", "")
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Approve(ctx, carol, orgID, bob.UserID)
			Expect(err).To(MatchError(service.ErrPermissionDenied))
		})

		It("denies a non-member caller", func() {
			stranger := service.Identity{UserID: 999, Email: "m@x.com"}
			_, err := svc.Approve(ctx, stranger, orgID, bob.UserID)
			Expect(err).To(MatchError(service.ErrPermissionDenied))
		})

		It("fails with NotFound for a user with no membership", func() {
			_, err := svc.Approve(ctx, owner, orgID, 404404)
			Expect(err).To(MatchError(service.ErrNotFound))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			bob := service.Identity{UserID: 202, Email: "b@x.com"}
			join(bob, model.RoleStaff, false)
		})

		It("returns all memberships in the org to a member", func() {
			members, err := svc.List(ctx, owner, orgID)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(2))
		})

		It("denies a non-member", func() {
			stranger := service.Identity{UserID: 999, Email: "m@x.com"}
			_, err := svc.List(ctx, stranger, orgID)
			Expect(err).To(MatchError(service.ErrPermissionDenied))
		})
	})

	It("runs the full lifecycle: create org, invite, accept, onboard", func() {
		inv, err := inviteSvc.Create(ctx, owner, service.CreateInviteParams{
			OrgID: orgID,
			Email: "b@x.com",
			Role:  model.RoleStaff,
		})
		Expect(err).NotTo(HaveOccurred())

		bob := service.Identity{UserID: 202, Email: "b@x.com"}
		m, err := inviteSvc.Accept(ctx, bob, inv.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Role).To(Equal(model.RoleStaff))
		Expect(m.Status).To(Equal(model.MemberStatusPendingOnboarding))

		m, err = svc.SubmitOnboarding(ctx, bob, orgID, "Bob", "555-1234")
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Status).To(Equal(model.MemberStatusActive))
		Expect(m.FullName).To(HaveValue(Equal("Bob")))
	})
})
