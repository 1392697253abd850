package sheetstore

import (
	"strconv"
	"strings"

	"fitclub-backend/internal/models"
)

// Fixed column layouts of the legacy workbook, one sheet per entity. Row 1 of
// every sheet is the header; data starts at row 2. The column order below is
// load-bearing: the legacy store has no schema, only positions.
const (
	SheetMembers  = "Members"
	SheetTrainers = "Trainers"
	SheetPlans    = "Plans" // packages live on the "Plans" sheet
	SheetGallery  = "Gallery"
	SheetBranches = "Branches"
	SheetContacts = "Contacts"
)

const (
	MemberCols  = 18
	TrainerCols = 9
	PackageCols = 5
	GalleryCols = 4
	BranchCols  = 5
	ContactCols = 7
)

// benefitsSeparator joins Package.Benefits into a single cell. A benefit
// string containing a comma cannot round-trip; callers strip commas on input.
const benefitsSeparator = ", "

// col reads a cell by position, padding short rows with the empty string.
func col(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func parseBool(s string) bool { return s == "Yes" }

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// parseFloat never fails: empty or malformed cells decode to 0, matching how
// the legacy frontend treated hand-edited sheets.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func splitBenefits(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	benefits := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			benefits = append(benefits, trimmed)
		}
	}
	return benefits
}

func DecodeMember(row []string) models.Member {
	return models.Member{
		ID:                  col(row, 0),
		FullName:            col(row, 1),
		MobileNumber:        col(row, 2),
		Email:               col(row, 3),
		DateOfBirth:         col(row, 4),
		BranchName:          col(row, 5),
		RegistrationDate:    col(row, 6),
		CurrentPlan:         col(row, 7),
		PlanStartDate:       col(row, 8),
		PlanExpiryDate:      col(row, 9),
		PlanFeePaid:         parseBool(col(row, 10)),
		PlanFee:             parseFloat(col(row, 11)),
		AnnualFeePaid:       parseBool(col(row, 12)),
		FeeValidityDate:     col(row, 13),
		AnnualFeeExpiryDate: col(row, 14),
		AnnualFeeAmount:     parseFloat(col(row, 15)),
		QRCodeURL:           col(row, 16),
		ProfilePhotoURL:     col(row, 17),
	}
}

func EncodeMember(m models.Member) []string {
	return []string{
		m.ID,
		m.FullName,
		m.MobileNumber,
		m.Email,
		m.DateOfBirth,
		m.BranchName,
		m.RegistrationDate,
		m.CurrentPlan,
		m.PlanStartDate,
		m.PlanExpiryDate,
		formatBool(m.PlanFeePaid),
		formatFloat(m.PlanFee),
		formatBool(m.AnnualFeePaid),
		m.FeeValidityDate,
		m.AnnualFeeExpiryDate,
		formatFloat(m.AnnualFeeAmount),
		m.QRCodeURL,
		m.ProfilePhotoURL,
	}
}

func DecodeTrainer(row []string) models.Trainer {
	return models.Trainer{
		ID:               col(row, 0),
		Name:             col(row, 1),
		Specialization:   col(row, 2),
		Experience:       col(row, 3),
		PhotoURL:         col(row, 4),
		Branch:           col(row, 5),
		Description:      col(row, 6),
		InstagramProfile: col(row, 7),
		ContactNumber:    col(row, 8),
	}
}

func EncodeTrainer(t models.Trainer) []string {
	return []string{
		t.ID, t.Name, t.Specialization, t.Experience, t.PhotoURL,
		t.Branch, t.Description, t.InstagramProfile, t.ContactNumber,
	}
}

func DecodePackage(row []string) models.Package {
	return models.Package{
		ID:           col(row, 0),
		Name:         col(row, 1),
		Price:        parseFloat(col(row, 2)),
		DurationDays: parseInt(col(row, 3)),
		Benefits:     splitBenefits(col(row, 4)),
	}
}

func EncodePackage(p models.Package) []string {
	return []string{
		p.ID,
		p.Name,
		formatFloat(p.Price),
		strconv.Itoa(p.DurationDays),
		strings.Join(p.Benefits, benefitsSeparator),
	}
}

func DecodeGalleryItem(row []string) models.GalleryItem {
	category := models.GalleryCategory(col(row, 1))
	if !models.ValidGalleryCategory(category) {
		category = models.CategoryOther
	}
	return models.GalleryItem{
		ID:       col(row, 0),
		Category: category,
		ImageURL: col(row, 2),
		Caption:  col(row, 3),
	}
}

func EncodeGalleryItem(g models.GalleryItem) []string {
	return []string{g.ID, string(g.Category), g.ImageURL, g.Caption}
}

func DecodeBranch(row []string) models.Branch {
	return models.Branch{
		ID:           col(row, 0),
		Name:         col(row, 1),
		Location:     col(row, 2),
		ContactPhone: col(row, 3),
		ContactEmail: col(row, 4),
	}
}

func EncodeBranch(b models.Branch) []string {
	return []string{b.ID, b.Name, b.Location, b.ContactPhone, b.ContactEmail}
}

func DecodeContact(row []string) models.ContactSubmission {
	return models.ContactSubmission{
		ID:      col(row, 0),
		Name:    col(row, 1),
		Email:   col(row, 2),
		Phone:   col(row, 3),
		Branch:  col(row, 4),
		Message: col(row, 5),
		Date:    col(row, 6),
	}
}

func EncodeContact(c models.ContactSubmission) []string {
	return []string{c.ID, c.Name, c.Email, c.Phone, c.Branch, c.Message, c.Date}
}
