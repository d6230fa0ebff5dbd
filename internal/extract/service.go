package extract

import (
	"context"
	"strings"
	"time"

	"dishly/internal/llm"
	"dishly/internal/storage"
	"dishly/internal/textnorm"

	"github.com/sirupsen/logrus"
)

// SignedURLTTL is how long the model may read the stored menu file.
const SignedURLTTL = time.Hour

type Signer interface {
	SignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error)
}

// Config is the server configuration the pipeline refuses to run without.
type Config struct {
	DatabaseURL       string
	ServiceCredential string
	LLMAPIKey         string
}

func (c Config) Validate() error {
	var missing []string

	if c.DatabaseURL == "" {
		missing = append(missing, "database endpoint")
	}
	if c.ServiceCredential == "" {
		missing = append(missing, "service credential")
	}
	if c.LLMAPIKey == "" {
		missing = append(missing, "llm api key")
	}

	if len(missing) > 0 {
		return &Error{Kind: ErrConfiguration, Details: "unset: " + strings.Join(missing, ", ")}
	}
	return nil
}

type Service struct {
	cfg       Config
	signer    Signer
	extractor llm.Extractor
	repo      Repository
	now       func() time.Time
}

func NewService(
	cfg Config,
	signer Signer,
	extractor llm.Extractor,
	repo Repository,
) *Service {
	return &Service{
		cfg:       cfg,
		signer:    signer,
		extractor: extractor,
		repo:      repo,
		now:       time.Now,
	}
}

// Extract runs the whole pipeline for one stored menu file. Steps run in
// order; the restaurant must resolve before any food item is written.
func (s *Service) Extract(ctx context.Context, req Request) (*Result, error) {
	if req.Bucket == "" || req.Path == "" || strings.TrimSpace(req.Restaurant) == "" {
		return nil, &Error{Kind: ErrMissingParameter}
	}

	// only menu uploads are ever signed
	if req.Bucket != storage.MenuBucket {
		return nil, &Error{Kind: ErrUnknownBucket, Details: req.Bucket}
	}

	if err := s.cfg.Validate(); err != nil {
		logrus.WithError(err).Error("extraction refused: server misconfigured")
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{
		"bucket":     req.Bucket,
		"path":       req.Path,
		"restaurant": req.Restaurant,
	})

	// 1. signed read url
	fileURL, err := s.signer.SignedURL(ctx, req.Bucket, req.Path, SignedURLTTL)
	if err != nil {
		s.recordFailure(ctx, req, err)
		return nil, wrap(ErrSigning, err)
	}

	// 2. one completion request
	text, err := s.extractor.ExtractMenu(ctx, fileURL)
	if err != nil {
		s.recordFailure(ctx, req, err)
		return nil, wrap(ErrExtractionService, err)
	}

	// 3 + 4. parse and normalize
	items := ParseItems(text)
	log.WithField("items", len(items)).Info("menu items extracted")

	// 5. restaurant
	rest, err := s.repo.FindOrCreateRestaurant(ctx, req.Restaurant)
	if err != nil {
		s.recordFailure(ctx, req, err)
		return nil, wrap(ErrRestaurantUpsert, err)
	}

	// 6. food items, best effort
	var counts Counts
	for _, it := range items {
		inserted, err := s.repo.UpsertFoodItem(ctx, FoodItemUpsert{
			Name:          it.Name,
			CanonicalName: textnorm.CanonicalName(it.Name),
			RestaurantID:  rest.ID,
			Description:   it.Description,
			Price:         it.Price,
			Tags:          it.Tags,
		})
		if err != nil {
			log.WithError(err).WithField("item", it.Name).Warn("food item upsert skipped")
			continue
		}

		if inserted {
			counts.Inserted++
		} else {
			counts.Updated++
		}
	}

	s.record(ctx, UploadRecord{
		UserID:         req.UploadedBy,
		RestaurantName: req.Restaurant,
		MenuImageURL:   req.Bucket + "/" + req.Path,
		Status:         UploadProcessed,
		ItemCount:      len(items),
		PointsAwarded:  counts.Inserted * PointsPerNewDish,
		ProcessedAt:    s.now(),
	})

	log.WithFields(logrus.Fields{
		"inserted": counts.Inserted,
		"updated":  counts.Updated,
	}).Info("menu processed")

	return &Result{
		OK:         true,
		FileURL:    fileURL,
		Restaurant: req.Restaurant,
		Counts:     counts,
		Total:      len(items),
	}, nil
}

func (s *Service) recordFailure(ctx context.Context, req Request, cause error) {
	logrus.WithError(cause).WithField("path", req.Path).Error("menu extraction failed")

	s.record(ctx, UploadRecord{
		UserID:         req.UploadedBy,
		RestaurantName: req.Restaurant,
		MenuImageURL:   req.Bucket + "/" + req.Path,
		Status:         UploadFailed,
		Reason:         cause.Error(),
		ProcessedAt:    s.now(),
	})
}

// record never fails the request; the audit row is informational.
func (s *Service) record(ctx context.Context, rec UploadRecord) {
	if err := s.repo.RecordUpload(ctx, rec); err != nil {
		logrus.WithError(err).Warn("menu upload audit not written")
	}
}
