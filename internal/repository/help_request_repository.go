package repository

import (
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// GormHelpRequestRepository is a GORM implementation of HelpRequestRepository
type GormHelpRequestRepository struct {
	db *gorm.DB
}

// NewHelpRequestRepository creates a new HelpRequestRepository
func NewHelpRequestRepository(db *gorm.DB) HelpRequestRepository {
	return &GormHelpRequestRepository{db: db}
}

// Create creates a new help request
func (r *GormHelpRequestRepository) Create(helpRequest *models.HelpRequest) error {
	return r.db.Create(helpRequest).Error
}

// FindByID finds a help request by ID
func (r *GormHelpRequestRepository) FindByID(id uint64) (*models.HelpRequest, error) {
	var helpRequest models.HelpRequest
	if err := r.db.First(&helpRequest, id).Error; err != nil {
		return nil, err
	}
	return &helpRequest, nil
}

// List retrieves help requests matching the filter, newest first
func (r *GormHelpRequestRepository) List(filter HelpRequestFilter) ([]models.HelpRequest, error) {
	query := r.db.Model(&models.HelpRequest{}).
		Where("created_at >= ?", filter.CreatedAfter)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Urgency != nil {
		query = query.Where("urgency = ?", *filter.Urgency)
	}
	if filter.District != "" {
		// LOWER/LIKE instead of ILIKE so the sqlite test databases behave the
		// same as Postgres.
		query = query.Where("LOWER(approx_area) LIKE LOWER(?)", "%"+filter.District+"%")
	}

	var helpRequests []models.HelpRequest
	if err := query.Order("created_at DESC, id DESC").Find(&helpRequests).Error; err != nil {
		return nil, err
	}

	return helpRequests, nil
}

type groupCount[K ~string] struct {
	Key   K
	Count int64
}

// Summary aggregates all help requests created at or after the given time.
// The constituent queries are independent and run concurrently.
func (r *GormHelpRequestRepository) Summary(createdAfter time.Time) (*HelpRequestSummary, error) {
	var (
		total        int64
		urgencyRows  []groupCount[models.Urgency]
		statusRows   []groupCount[models.HelpRequestStatus]
		districtRows []groupCount[string]
		people       PeopleSummary
		rationRows   []models.HelpRequest
	)

	windowed := func() *gorm.DB {
		return r.db.Model(&models.HelpRequest{}).Where("created_at >= ?", createdAfter)
	}

	var g errgroup.Group

	g.Go(func() error {
		return windowed().Count(&total).Error
	})

	g.Go(func() error {
		return windowed().
			Select("urgency AS key, COUNT(*) AS count").
			Group("urgency").
			Scan(&urgencyRows).Error
	})

	g.Go(func() error {
		return windowed().
			Select("status AS key, COUNT(*) AS count").
			Group("status").
			Scan(&statusRows).Error
	})

	g.Go(func() error {
		return windowed().
			Select("approx_area AS key, COUNT(*) AS count").
			Where("approx_area IS NOT NULL").
			Group("approx_area").
			Scan(&districtRows).Error
	})

	g.Go(func() error {
		return windowed().
			Select(
				"COALESCE(SUM(total_people), 0) AS total_people, " +
					"COALESCE(SUM(elders), 0) AS elders, " +
					"COALESCE(SUM(children), 0) AS children, " +
					"COALESCE(SUM(pets), 0) AS pets").
			Scan(&people).Error
	})

	g.Go(func() error {
		// Ration item identifiers live in a JSON array column; the per-item
		// tally is folded in memory.
		return windowed().Select("ration_items").Find(&rationRows).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &HelpRequestSummary{
		Total: total,
		ByUrgency: map[models.Urgency]int64{
			models.UrgencyLow:    0,
			models.UrgencyMedium: 0,
			models.UrgencyHigh:   0,
		},
		ByStatus: map[models.HelpRequestStatus]int64{
			models.HelpRequestStatusOpen:    0,
			models.HelpRequestStatusClosed:  0,
			models.HelpRequestStatusExpired: 0,
		},
		ByDistrict:  make(map[string]int64),
		People:      people,
		RationItems: make(map[string]int64),
	}

	for _, row := range urgencyRows {
		if _, known := summary.ByUrgency[row.Key]; known {
			summary.ByUrgency[row.Key] = row.Count
		}
	}
	for _, row := range statusRows {
		if _, known := summary.ByStatus[row.Key]; known {
			summary.ByStatus[row.Key] = row.Count
		}
	}
	for _, row := range districtRows {
		if row.Key != "" {
			summary.ByDistrict[row.Key] = row.Count
		}
	}
	for _, hr := range rationRows {
		for _, item := range hr.RationItems {
			summary.RationItems[item]++
		}
	}

	return summary, nil
}
