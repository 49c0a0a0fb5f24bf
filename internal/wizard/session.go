package wizard

import (
	"strings"

	"github.com/copyforge/copyforge/internal/api"
)

// Step identifies one of the four wizard screens.
type Step int

const (
	StepBrand Step = iota
	StepCampaign
	StepMedia
	StepOutput
)

// CTA modes accepted by the generator.
const (
	CTAModeDM        = "dm"
	CTAModeLinkInBio = "link_in_bio"
	CTAModeFiera     = "fiera"
)

// Voice presets accepted by the generator.
const (
	VoiceMinimal      = "minimal"
	VoiceWarm         = "warm"
	VoiceProfessional = "professional"
)

// Availability policies accepted by the generator.
const (
	AvailabilityNone = "no_availability"
	AvailabilityShow = "show_availability"
)

// Post count bounds for one campaign week.
const (
	MinPosts = 1
	MaxPosts = 7
)

// Brand holds the identity fields entered in step 1. The JSON tags match
// the exported snapshot format.
type Brand struct {
	Name             string   `json:"brand_name"`
	Description      string   `json:"brand_description"`
	Tagline          string   `json:"brand_tagline"`
	History          string   `json:"brand_history"`
	RequiredHashtags []string `json:"required_hashtags"`
	BaseHashtags     []string `json:"base_hashtags"`
}

// Campaign holds the campaign parameters entered in step 2.
type Campaign struct {
	Goal             string `json:"goal"`
	Theme            string `json:"theme"`
	NPosts           int    `json:"n_posts"`
	CTAMode          string `json:"cta_mode"`
	Voice            string `json:"voice"`
	FeaturedCategory string `json:"featured_category"`
	Availability     string `json:"availability_policy"`
}

// IncludesCTA reports whether the week ends with the Sunday call-to-action
// post. Derived from the post count, never stored.
func (c Campaign) IncludesCTA() bool {
	return c.NPosts == MaxPosts
}

// Session is the whole wizard state. It has exactly one writer, the TUI
// update loop; everything else reads it.
type Session struct {
	Step     Step
	Brand    Brand
	Campaign Campaign
	Assets   []api.Asset

	// Server-derived calendar preview, replaced wholesale on each fetch.
	Schedule []api.ScheduleSlot

	Results *api.GenerationResult

	IsGenerating bool
	Progress     int // 0..100, cosmetic while a generation is in flight
	LastError    string
}

// NewSession returns a session at step 1 with the documented defaults.
func NewSession() *Session {
	s := &Session{}
	s.Reset()
	return s
}

// Reset restores the empty defaults for a new campaign. Calling it on an
// already-fresh session is a no-op.
func (s *Session) Reset() {
	s.Step = StepBrand
	s.Brand = Brand{}
	s.Campaign = Campaign{
		NPosts:       6,
		CTAMode:      CTAModeDM,
		Voice:        VoiceMinimal,
		Availability: AvailabilityNone,
	}
	s.Assets = nil
	s.Schedule = nil
	s.Results = nil
	s.IsGenerating = false
	s.Progress = 0
	s.LastError = ""
}

// AddAssets appends uploaded descriptors in upload order.
func (s *Session) AddAssets(uploaded []api.Asset) {
	s.Assets = append(s.Assets, uploaded...)
}

// RemoveAssetAt drops the asset at position i, shifting later indices down.
func (s *Session) RemoveAssetAt(i int) {
	if i < 0 || i >= len(s.Assets) {
		return
	}
	s.Assets = append(s.Assets[:i], s.Assets[i+1:]...)
}

// Ready reports whether enough images are uploaded for the requested week.
func (s *Session) Ready() bool {
	return len(s.Assets) >= s.Campaign.NPosts
}

// GenerateRequest snapshots the session into the payload for the
// generation call. The snapshot is taken at issue time; later edits do not
// affect an in-flight request.
func (s *Session) GenerateRequest() api.GenerateRequest {
	paths := make([]string, 0, len(s.Assets))
	for _, a := range s.Assets {
		paths = append(paths, a.Path)
	}
	return api.GenerateRequest{
		Goal:               s.Campaign.Goal,
		Theme:              s.Campaign.Theme,
		Images:             paths,
		NPosts:             s.Campaign.NPosts,
		CTAMode:            s.Campaign.CTAMode,
		Voice:              s.Campaign.Voice,
		FeaturedCategory:   s.Campaign.FeaturedCategory,
		AvailabilityPolicy: s.Campaign.Availability,
		BrandName:          s.Brand.Name,
		BrandDescription:   s.Brand.Description,
		BrandTagline:       s.Brand.Tagline,
		BrandHistory:       s.Brand.History,
		RequiredHashtags:   append([]string(nil), s.Brand.RequiredHashtags...),
		BaseHashtags:       append([]string(nil), s.Brand.BaseHashtags...),
	}
}

// ClampPosts keeps a post-count edit inside [MinPosts, MaxPosts].
func ClampPosts(n int) int {
	if n < MinPosts {
		return MinPosts
	}
	if n > MaxPosts {
		return MaxPosts
	}
	return n
}

func nonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
