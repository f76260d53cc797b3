package usecase

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	publisher "github.com/refpilot/affiliate-service/internal/infrastructure/kafka"
	"github.com/refpilot/affiliate-service/internal/infrastructure/metrics"
	affiliatedto "github.com/refpilot/affiliate-service/internal/usecase/dto/affiliate"
)

type AffiliateUsecase interface {
	CreateAffiliate(input *affiliatedto.CreateAffiliateInput) (*domain.Affiliate, error)
	ApproveAffiliate(affiliateID, referralSlug string) error
	RejectAffiliate(affiliateID string) error
	ArchiveAffiliate(affiliateID string) error
	SetParent(input *affiliatedto.SetParentInput) error
	GetAffiliateByID(affiliateID string) (*domain.Affiliate, error)
	GetAffiliates(statuses []domain.AffiliateStatus) ([]*domain.Affiliate, error)
	GetAffiliateSummary(affiliateID string, month engine.YearMonth) (*affiliatedto.AffiliateSummary, error)
}

type DefaultAffiliateUsecase struct {
	AffiliateRepo  domain.AffiliateRepository
	ConversionRepo domain.ConversionRepository
	TierUsecase    TierUsecase
	Publisher      domain.PublisherPort
	Metrics        *metrics.AffiliateMetrics
}

func NewDefaultAffiliateUsecase(
	affiliateRepo domain.AffiliateRepository,
	conversionRepo domain.ConversionRepository,
	tierUsecase TierUsecase,
	pub domain.PublisherPort,
	m *metrics.AffiliateMetrics) *DefaultAffiliateUsecase {

	return &DefaultAffiliateUsecase{
		AffiliateRepo:  affiliateRepo,
		ConversionRepo: conversionRepo,
		TierUsecase:    tierUsecase,
		Publisher:      pub,
		Metrics:        m,
	}
}

func (uc *DefaultAffiliateUsecase) CreateAffiliate(input *affiliatedto.CreateAffiliateInput) (*domain.Affiliate, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if existing, err := uc.AffiliateRepo.GetAffiliateByEmail(email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		generate, err := nanoid.Standard(10)
		if err != nil {
			return nil, err
		}
		slug = generate()
	} else if existing, err := uc.AffiliateRepo.GetAffiliateBySlug(slug); err == nil && existing != nil {
		return nil, domain.ErrSlugTaken
	}

	status := domain.AffiliateStatusPending
	if input.Active {
		status = domain.AffiliateStatusActive
	}

	affiliate := &domain.Affiliate{
		ID:     uuid.New().String(),
		Name:   strings.TrimSpace(input.Name),
		Email:  email,
		Slug:   slug,
		Status: status,
	}

	// a referral slug supplied at signup attaches the recruiter right
	// away for admin-added actives, or is re-resolved on approval
	if input.ReferralSlug != "" {
		if parent, err := uc.AffiliateRepo.GetAffiliateBySlug(input.ReferralSlug); err == nil && parent != nil {
			affiliate.ParentID = parent.ID
		}
	}

	if err := uc.AffiliateRepo.CreateAffiliate(affiliate); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.AffiliatesCreatedTotal.WithLabelValues(string(status)).Inc()
	}
	uc.publishAffiliateEvent("created", affiliate)

	return affiliate, nil
}

// ApproveAffiliate activates a pending application. A referral slug
// captured at signup attaches the recruiter at this point, subject to
// the same cycle check as any parent write.
func (uc *DefaultAffiliateUsecase) ApproveAffiliate(affiliateID, referralSlug string) error {
	affiliate, err := uc.AffiliateRepo.GetAffiliateByID(affiliateID)
	if err != nil {
		return domain.ErrAffiliateNotFound
	}
	if affiliate.Status != domain.AffiliateStatusPending {
		return domain.ErrInvalidStatusChange
	}

	if err := uc.AffiliateRepo.UpdateAffiliateStatus(affiliateID, domain.AffiliateStatusActive); err != nil {
		return err
	}

	if referralSlug != "" {
		parent, err := uc.AffiliateRepo.GetAffiliateBySlug(referralSlug)
		if err == nil && parent != nil {
			if err := uc.SetParent(&affiliatedto.SetParentInput{AffiliateID: affiliateID, ParentID: parent.ID}); err != nil {
				slog.Warn("referral parent not attached on approve",
					"affiliate_id", affiliateID,
					"referral_slug", referralSlug,
					"error", err.Error())
			}
		}
	}

	if uc.Metrics != nil {
		uc.Metrics.AffiliatesApprovedTotal.Inc()
	}
	affiliate.Status = domain.AffiliateStatusActive
	uc.publishAffiliateEvent("approved", affiliate)

	return nil
}

func (uc *DefaultAffiliateUsecase) RejectAffiliate(affiliateID string) error {
	affiliate, err := uc.AffiliateRepo.GetAffiliateByID(affiliateID)
	if err != nil {
		return domain.ErrAffiliateNotFound
	}
	if affiliate.Status != domain.AffiliateStatusPending {
		return domain.ErrInvalidStatusChange
	}

	if err := uc.AffiliateRepo.UpdateAffiliateStatus(affiliateID, domain.AffiliateStatusRejected); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.AffiliatesRejectedTotal.Inc()
	}
	affiliate.Status = domain.AffiliateStatusRejected
	uc.publishAffiliateEvent("rejected", affiliate)

	return nil
}

func (uc *DefaultAffiliateUsecase) ArchiveAffiliate(affiliateID string) error {
	affiliate, err := uc.AffiliateRepo.GetAffiliateByID(affiliateID)
	if err != nil {
		return domain.ErrAffiliateNotFound
	}

	if err := uc.AffiliateRepo.UpdateAffiliateStatus(affiliateID, domain.AffiliateStatusArchived); err != nil {
		return err
	}

	affiliate.Status = domain.AffiliateStatusArchived
	uc.publishAffiliateEvent("archived", affiliate)

	return nil
}

// SetParent assigns or clears an affiliate's recruiter. Assignments that
// would make the affiliate its own ancestor are rejected before the
// write, which is what keeps read-time traversal from ever looping on
// well-formed data.
func (uc *DefaultAffiliateUsecase) SetParent(input *affiliatedto.SetParentInput) error {
	affiliate, err := uc.AffiliateRepo.GetAffiliateByID(input.AffiliateID)
	if err != nil {
		return domain.ErrAffiliateNotFound
	}

	if input.ParentID != "" {
		if _, err := uc.AffiliateRepo.GetAffiliateByID(input.ParentID); err != nil {
			return domain.ErrParentNotFound
		}

		affiliates, err := uc.AffiliateRepo.GetAffiliates(nil)
		if err != nil {
			return err
		}
		graph := engine.NewGraph(affiliates)
		if graph.WouldCreateCycle(input.AffiliateID, input.ParentID) {
			return domain.ErrCycleDetected
		}
	}

	if err := uc.AffiliateRepo.UpdateAffiliateParent(input.AffiliateID, input.ParentID); err != nil {
		return err
	}

	affiliate.ParentID = input.ParentID
	uc.publishAffiliateEvent("parent_changed", affiliate)

	return nil
}

func (uc *DefaultAffiliateUsecase) GetAffiliateByID(affiliateID string) (*domain.Affiliate, error) {
	return uc.AffiliateRepo.GetAffiliateByID(affiliateID)
}

func (uc *DefaultAffiliateUsecase) GetAffiliates(statuses []domain.AffiliateStatus) ([]*domain.Affiliate, error) {
	return uc.AffiliateRepo.GetAffiliates(statuses)
}

// GetAffiliateSummary derives tier, revenue and progress for one
// affiliate at the given evaluation month. Nothing here is cached or
// stored, so tier-table edits are reflected on the very next call.
func (uc *DefaultAffiliateUsecase) GetAffiliateSummary(affiliateID string, month engine.YearMonth) (*affiliatedto.AffiliateSummary, error) {
	affiliate, err := uc.AffiliateRepo.GetAffiliateByID(affiliateID)
	if err != nil {
		return nil, domain.ErrAffiliateNotFound
	}

	tiers, err := uc.TierUsecase.GetTierTable()
	if err != nil {
		return nil, err
	}

	conversions, err := uc.ConversionRepo.GetConversionsByAffiliateID(affiliateID)
	if err != nil {
		return nil, err
	}

	monthlyRevenue := engine.MonthlyRevenue(conversions, month)
	resolution := engine.ResolveTier(monthlyRevenue, tiers)

	return &affiliatedto.AffiliateSummary{
		AffiliateID:    affiliate.ID,
		Name:           affiliate.Name,
		Status:         string(affiliate.Status),
		TierIndex:      resolution.TierIndex,
		TierName:       resolution.TierName,
		CommissionRate: resolution.Rate,
		MonthlyRevenue: monthlyRevenue,
		TotalRevenue:   engine.TotalRevenue(conversions),
		NextThreshold:  resolution.NextThreshold,
		Progress:       resolution.Progress,
		RemainingGap:   resolution.RemainingGap(monthlyRevenue),
	}, nil
}

func (uc *DefaultAffiliateUsecase) publishAffiliateEvent(event string, affiliate *domain.Affiliate) {
	go func(e publisher.AffiliateEvent) {
		if err := publishJSON(uc.Publisher, publisher.TopicAffiliateEvents, e.AffiliateID, e); err != nil {
			slog.Error("failed to publish AffiliateEvent", "event", e.Event, "error", err.Error())
		}
	}(publisher.AffiliateEvent{
		Event:       event,
		AffiliateID: affiliate.ID,
		Name:        affiliate.Name,
		Slug:        affiliate.Slug,
		Status:      string(affiliate.Status),
		ParentID:    affiliate.ParentID,
	})
}
