package sheetstore

import (
	"fmt"

	"fitclub-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Range keys of the legacy workbook, matching the ranges the old frontend
// requested from the Sheets API.
const (
	RangeMembers  = SheetMembers + "!A2:R"
	RangeTrainers = SheetTrainers + "!A2:I"
	RangePlans    = SheetPlans + "!A2:E"
	RangeGallery  = SheetGallery + "!A2:D"
	RangeBranches = SheetBranches + "!A2:E"
	RangeContacts = SheetContacts + "!A2:G"
)

// Migrator moves data between the legacy workbook and the database. Import
// upserts by id; export rewrites each sheet wholesale from database state, so
// legacy tombstones are compacted away on the way out.
type Migrator struct {
	Store *Store
	DB    *gorm.DB
}

// Summary reports per-sheet counts for one migration run. Skipped counts
// tombstoned rows (empty id), which must never reach the database.
type Summary struct {
	Imported map[string]int `json:"imported,omitempty"`
	Exported map[string]int `json:"exported,omitempty"`
	Skipped  int            `json:"skipped"`
}

// ImportAll reads every sheet, decodes each row and upserts it by id.
// Tombstoned rows are filtered out explicitly here: the store cannot do it
// (it only sees raw rows), and letting an empty-id record through would
// resurface the legacy system's tombstone-leak defect.
func (m *Migrator) ImportAll() (Summary, error) {
	summary := Summary{Imported: make(map[string]int)}

	upsert := func(sheet string, records []interface{}) error {
		for _, rec := range records {
			if err := m.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error; err != nil {
				return fmt.Errorf("import %s: %w", sheet, err)
			}
			summary.Imported[sheet]++
		}
		return nil
	}

	members := []interface{}{}
	for _, row := range m.Store.ReadRange(RangeMembers) {
		rec := DecodeMember(row)
		if rec.ID == "" {
			summary.Skipped++
			continue
		}
		members = append(members, &rec)
	}
	if err := upsert(SheetMembers, members); err != nil {
		return summary, err
	}

	trainers := []interface{}{}
	for _, row := range m.Store.ReadRange(RangeTrainers) {
		rec := DecodeTrainer(row)
		if rec.ID == "" {
			summary.Skipped++
			continue
		}
		trainers = append(trainers, &rec)
	}
	if err := upsert(SheetTrainers, trainers); err != nil {
		return summary, err
	}

	packages := []interface{}{}
	for _, row := range m.Store.ReadRange(RangePlans) {
		rec := DecodePackage(row)
		if rec.ID == "" {
			summary.Skipped++
			continue
		}
		packages = append(packages, &rec)
	}
	if err := upsert(SheetPlans, packages); err != nil {
		return summary, err
	}

	gallery := []interface{}{}
	for _, row := range m.Store.ReadRange(RangeGallery) {
		rec := DecodeGalleryItem(row)
		if rec.ID == "" {
			summary.Skipped++
			continue
		}
		gallery = append(gallery, &rec)
	}
	if err := upsert(SheetGallery, gallery); err != nil {
		return summary, err
	}

	branches := []interface{}{}
	for _, row := range m.Store.ReadRange(RangeBranches) {
		rec := DecodeBranch(row)
		if rec.ID == "" {
			summary.Skipped++
			continue
		}
		branches = append(branches, &rec)
	}
	if err := upsert(SheetBranches, branches); err != nil {
		return summary, err
	}

	contacts := []interface{}{}
	for _, row := range m.Store.ReadRange(RangeContacts) {
		rec := DecodeContact(row)
		if rec.ID == "" {
			summary.Skipped++
			continue
		}
		contacts = append(contacts, &rec)
	}
	if err := upsert(SheetContacts, contacts); err != nil {
		return summary, err
	}

	return summary, nil
}

// ExportAll rewrites every sheet of the workbook from current database state.
func (m *Migrator) ExportAll() (Summary, error) {
	summary := Summary{Exported: make(map[string]int)}

	var members []models.Member
	if err := m.DB.Find(&members).Error; err != nil {
		return summary, err
	}
	rows := make([][]string, 0, len(members))
	for _, rec := range members {
		rows = append(rows, EncodeMember(rec))
	}
	if !m.Store.RewriteSheet(SheetMembers, memberHeader, rows) {
		return summary, fmt.Errorf("export %s: sheet rewrite failed", SheetMembers)
	}
	summary.Exported[SheetMembers] = len(rows)

	var trainers []models.Trainer
	if err := m.DB.Find(&trainers).Error; err != nil {
		return summary, err
	}
	rows = rows[:0]
	for _, rec := range trainers {
		rows = append(rows, EncodeTrainer(rec))
	}
	if !m.Store.RewriteSheet(SheetTrainers, trainerHeader, rows) {
		return summary, fmt.Errorf("export %s: sheet rewrite failed", SheetTrainers)
	}
	summary.Exported[SheetTrainers] = len(rows)

	var packages []models.Package
	if err := m.DB.Find(&packages).Error; err != nil {
		return summary, err
	}
	rows = rows[:0]
	for _, rec := range packages {
		rows = append(rows, EncodePackage(rec))
	}
	if !m.Store.RewriteSheet(SheetPlans, packageHeader, rows) {
		return summary, fmt.Errorf("export %s: sheet rewrite failed", SheetPlans)
	}
	summary.Exported[SheetPlans] = len(rows)

	var gallery []models.GalleryItem
	if err := m.DB.Find(&gallery).Error; err != nil {
		return summary, err
	}
	rows = rows[:0]
	for _, rec := range gallery {
		rows = append(rows, EncodeGalleryItem(rec))
	}
	if !m.Store.RewriteSheet(SheetGallery, galleryHeader, rows) {
		return summary, fmt.Errorf("export %s: sheet rewrite failed", SheetGallery)
	}
	summary.Exported[SheetGallery] = len(rows)

	var branches []models.Branch
	if err := m.DB.Find(&branches).Error; err != nil {
		return summary, err
	}
	rows = rows[:0]
	for _, rec := range branches {
		rows = append(rows, EncodeBranch(rec))
	}
	if !m.Store.RewriteSheet(SheetBranches, branchHeader, rows) {
		return summary, fmt.Errorf("export %s: sheet rewrite failed", SheetBranches)
	}
	summary.Exported[SheetBranches] = len(rows)

	var contacts []models.ContactSubmission
	if err := m.DB.Find(&contacts).Error; err != nil {
		return summary, err
	}
	rows = rows[:0]
	for _, rec := range contacts {
		rows = append(rows, EncodeContact(rec))
	}
	if !m.Store.RewriteSheet(SheetContacts, contactHeader, rows) {
		return summary, fmt.Errorf("export %s: sheet rewrite failed", SheetContacts)
	}
	summary.Exported[SheetContacts] = len(rows)

	return summary, nil
}

var (
	memberHeader = []string{
		"ID", "Full Name", "Mobile", "Email", "DOB", "Branch", "Reg Date",
		"Plan", "Start Date", "End Date", "Plan Fee Paid", "Plan Fee",
		"Annual Fee Paid", "Payment Date", "Expiry Date", "Amount",
		"QR URL", "Photo URL",
	}
	trainerHeader = []string{
		"ID", "Name", "Specialization", "Experience", "Photo URL", "Branch",
		"Description", "Instagram", "Contact",
	}
	packageHeader = []string{"ID", "Name", "Price", "Duration Days", "Benefits"}
	galleryHeader = []string{"ID", "Category", "Image URL", "Caption"}
	branchHeader  = []string{"ID", "Name", "Location", "Contact Phone", "Contact Email"}
	contactHeader = []string{"ID", "Name", "Email", "Phone", "Branch", "Message", "Date"}
)
