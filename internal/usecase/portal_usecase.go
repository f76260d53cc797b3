package usecase

import (
	"github.com/refpilot/affiliate-service/internal/domain"
	"github.com/refpilot/affiliate-service/internal/engine"
	portaldto "github.com/refpilot/affiliate-service/internal/usecase/dto/portal"
)

type PortalUsecase interface {
	GetDashboard(affiliateID string) (*portaldto.DashboardOutput, error)
}

// DefaultPortalUsecase serves the self-service affiliate portal: the
// same derived numbers as the admin screens, scoped to one affiliate and
// its downline.
type DefaultPortalUsecase struct {
	AffiliateRepo    domain.AffiliateRepository
	ConversionRepo   domain.ConversionRepository
	AffiliateUsecase AffiliateUsecase
	PayoutUsecase    PayoutUsecase
	TierUsecase      TierUsecase
}

func NewDefaultPortalUsecase(
	affiliateRepo domain.AffiliateRepository,
	conversionRepo domain.ConversionRepository,
	affiliateUsecase AffiliateUsecase,
	payoutUsecase PayoutUsecase,
	tierUsecase TierUsecase) *DefaultPortalUsecase {

	return &DefaultPortalUsecase{
		AffiliateRepo:    affiliateRepo,
		ConversionRepo:   conversionRepo,
		AffiliateUsecase: affiliateUsecase,
		PayoutUsecase:    payoutUsecase,
		TierUsecase:      tierUsecase,
	}
}

func (uc *DefaultPortalUsecase) GetDashboard(affiliateID string) (*portaldto.DashboardOutput, error) {
	month := engine.CurrentMonth()

	summary, err := uc.AffiliateUsecase.GetAffiliateSummary(affiliateID, month)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.PayoutUsecase.GetLedger(affiliateID)
	if err != nil {
		return nil, err
	}

	downline, err := uc.downlineRows(affiliateID, month, summary.MonthlyRevenue)
	if err != nil {
		return nil, err
	}

	return &portaldto.DashboardOutput{
		Summary:             *summary,
		PendingApprovalOwed: ledger.PendingApprovalOwed,
		ApprovedUnpaidOwed:  ledger.ApprovedUnpaidOwed,
		PaidToDate:          ledger.PaidToDate,
		Downline:            downline,
	}, nil
}

// downlineRows lists override-eligible recruits: direct recruits earn
// the viewer its level-2 rate, their recruits the level-3 rate. The rate
// shown comes from the viewer's own current tier.
func (uc *DefaultPortalUsecase) downlineRows(affiliateID string, month engine.YearMonth, viewerMonthlyRevenue float64) ([]portaldto.DownlineRow, error) {
	affiliates, err := uc.AffiliateRepo.GetAffiliates(nil)
	if err != nil {
		return nil, err
	}
	tiers, err := uc.TierUsecase.GetTierTable()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Affiliate, len(affiliates))
	for _, affiliate := range affiliates {
		byID[affiliate.ID] = affiliate
	}

	viewerTier := tiers[engine.ResolveTier(viewerMonthlyRevenue, tiers).TierIndex]

	graph := engine.NewGraph(affiliates)
	var rows []portaldto.DownlineRow
	for _, descendant := range graph.DescendantsDownTo(affiliateID, engine.MaxOverrideDepth-1) {
		recruit, ok := byID[descendant.AffiliateID]
		if !ok {
			continue
		}

		conversions, err := uc.ConversionRepo.GetConversionsByAffiliateID(recruit.ID)
		if err != nil {
			return nil, err
		}

		rate := viewerTier.Level2Rate
		if descendant.Level == 2 {
			rate = viewerTier.Level3Rate
		}

		rows = append(rows, portaldto.DownlineRow{
			AffiliateID:    recruit.ID,
			Name:           recruit.Name,
			Level:          descendant.Level,
			MonthlyRevenue: engine.MonthlyRevenue(conversions, month),
			OverrideRate:   rate,
		})
	}

	return rows, nil
}
