package affiliatedto

type CreateAffiliateInput struct {
	Name         string
	Email        string
	Slug         string
	ReferralSlug string // recruiter's slug, resolved to ParentID on create/approve
	Active       bool   // admin-added affiliates skip the PENDING state
}

type SetParentInput struct {
	AffiliateID string
	ParentID    string // empty detaches the affiliate from its recruiter
}
