// Package membership implements the member lifecycle: registration, edits,
// plan renewal, annual membership fee renewal and the public id lookup used by
// the member-status page.
package membership

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"fitclub-backend/internal/billing"
	"fitclub-backend/internal/database"
	"fitclub-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RenewPlanRequest struct {
	CurrentPlan   string  `json:"currentPlan"`   // optional, keeps the existing plan when empty
	PlanStartDate string  `json:"planStartDate"` // optional, defaults to today
	PlanFee       float64 `json:"planFee"`       // optional, defaults to the package price
}

type RenewMembershipRequest struct {
	FeeValidityDate string  `json:"feeValidityDate"` // payment date, defaults to today
	AnnualFeeAmount float64 `json:"annualFeeAmount"`
	AnnualFeePaid   bool    `json:"annualFeePaid"`
}

// ----------------------------------------
// MEMBER CRUD
// ----------------------------------------

func ListMembersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var members []models.Member
		if err := database.DB.Find(&members).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list members")
		}

		today := billing.Today()
		for i := range members {
			deriveRemainingDays(&members[i], today)
		}
		return c.JSON(members)
	}
}

func CreateMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Member
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.FullName = strings.TrimSpace(body.FullName)
		body.MobileNumber = strings.TrimSpace(body.MobileNumber)
		if body.FullName == "" || body.MobileNumber == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name and Mobile are required")
		}

		member := body
		member.RegistrationDate = billing.FormatDate(billing.Today())
		recomputePlanExpiry(&member)
		recomputeAnnualExpiry(&member)

		// The 4-digit suffix is random; retry a few times on a collision
		// before giving up.
		var lastErr error
		for attempt := 0; attempt < 5; attempt++ {
			member.ID = generateMemberID(member.BranchName)
			if lastErr = database.DB.Create(&member).Error; lastErr == nil {
				deriveRemainingDays(&member, billing.Today())
				return c.Status(fiber.StatusCreated).JSON(member)
			}
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Could not create member")
	}
}

// UpdateMemberHandler updates the member named by the id embedded in the
// body. Registration date is immutable; plan expiry is recomputed when the
// plan or its start date changed, annual fee expiry when the payment date
// changed.
func UpdateMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Member
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.ID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Member ID is required")
		}

		var existing models.Member
		if err := database.DB.First(&existing, "id = ?", body.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Member not found")
		}

		planChanged := body.CurrentPlan != existing.CurrentPlan || body.PlanStartDate != existing.PlanStartDate
		paymentChanged := body.FeeValidityDate != existing.FeeValidityDate

		member := body
		member.RegistrationDate = existing.RegistrationDate
		member.CreatedAt = existing.CreatedAt
		if planChanged {
			recomputePlanExpiry(&member)
		}
		if paymentChanged {
			recomputeAnnualExpiry(&member)
		}

		if err := database.DB.Save(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update member")
		}

		deriveRemainingDays(&member, billing.Today())
		return c.JSON(member)
	}
}

func DeleteMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Member ID is required")
		}

		var member models.Member
		if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Member not found")
		}

		if err := database.DB.Delete(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete member")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SearchMemberHandler is the public member-status lookup. The id comparison
// is case-insensitive because members type their card id by hand.
func SearchMemberHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")
		if id == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Member ID is required")
		}

		var member models.Member
		if err := database.DB.First(&member, "lower(id) = lower(?)", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Member not found")
		}

		deriveRemainingDays(&member, billing.Today())
		return c.JSON(member)
	}
}

// ----------------------------------------
// RENEWALS
// ----------------------------------------

// RenewPlanHandler starts a fresh plan cycle: start date resets to today (or
// the supplied date), the fee-paid flag resets, and the expiry is recomputed
// from the selected package's duration.
func RenewPlanHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var member models.Member
		if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Member not found")
		}

		var body RenewPlanRequest
		if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.CurrentPlan != "" {
			member.CurrentPlan = body.CurrentPlan
		}
		member.PlanStartDate = body.PlanStartDate
		if member.PlanStartDate == "" {
			member.PlanStartDate = billing.FormatDate(billing.Today())
		}
		member.PlanFeePaid = false

		pkg := packageByName(member.CurrentPlan)
		if pkg != nil {
			member.PlanExpiryDate = billing.ComputeExpiry(member.PlanStartDate, pkg.DurationDays)
			if body.PlanFee > 0 {
				member.PlanFee = body.PlanFee
			} else {
				member.PlanFee = pkg.Price
			}
		} else if body.PlanFee > 0 {
			member.PlanFee = body.PlanFee
		}

		if err := database.DB.Save(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not renew plan")
		}

		deriveRemainingDays(&member, billing.Today())
		return c.JSON(member)
	}
}

// RenewMembershipHandler records a new annual fee cycle: payment date
// defaults to today and the fee expiry moves one calendar year out.
func RenewMembershipHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var member models.Member
		if err := database.DB.First(&member, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Member not found")
		}

		var body RenewMembershipRequest
		if err := c.BodyParser(&body); err != nil && len(c.Body()) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		member.FeeValidityDate = body.FeeValidityDate
		if member.FeeValidityDate == "" {
			member.FeeValidityDate = billing.FormatDate(billing.Today())
		}
		member.AnnualFeeExpiryDate = billing.ComputeAnnualExpiry(member.FeeValidityDate)
		member.AnnualFeePaid = body.AnnualFeePaid
		member.AnnualFeeAmount = body.AnnualFeeAmount

		if err := database.DB.Save(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not renew membership")
		}

		deriveRemainingDays(&member, billing.Today())
		return c.JSON(member)
	}
}

// ----------------------------------------
// HELPERS
// ----------------------------------------

// generateMemberID builds GYM-<branch code>-<4 digit random>. The branch code
// is the first two letters of the branch name; "XX" when no branch is set.
func generateMemberID(branchName string) string {
	code := "XX"
	if trimmed := strings.TrimSpace(branchName); len(trimmed) >= 2 {
		code = strings.ToUpper(trimmed[:2])
	}
	return fmt.Sprintf("GYM-%s-%04d", code, 1000+rand.Intn(9000))
}

func packageByName(name string) *models.Package {
	if name == "" {
		return nil
	}
	var pkg models.Package
	if err := database.DB.First(&pkg, "name = ?", name).Error; err != nil {
		return nil
	}
	return &pkg
}

// recomputePlanExpiry derives the expiry from the selected package when it is
// known. An unknown plan name keeps whatever expiry the caller sent; the
// reference is soft and never rejected.
func recomputePlanExpiry(m *models.Member) {
	if pkg := packageByName(m.CurrentPlan); pkg != nil {
		if expiry := billing.ComputeExpiry(m.PlanStartDate, pkg.DurationDays); expiry != "" {
			m.PlanExpiryDate = expiry
		}
	}
}

func recomputeAnnualExpiry(m *models.Member) {
	if expiry := billing.ComputeAnnualExpiry(m.FeeValidityDate); expiry != "" {
		m.AnnualFeeExpiryDate = expiry
	}
}

func deriveRemainingDays(m *models.Member, today time.Time) {
	if days, ok := billing.RemainingDays(m.PlanExpiryDate, today); ok {
		m.RemainingDays = days
	} else {
		m.RemainingDays = 0
	}
}
