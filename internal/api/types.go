package api

// Asset describes one uploaded image as reported by the upload endpoint.
type Asset struct {
	Filename         string `json:"filename"`
	Path             string `json:"path"`
	InferredTemplate string `json:"inferred_template"`
}

// ScheduleSlot is one day of the derived posting calendar.
type ScheduleSlot struct {
	Index      int    `json:"index"`
	DayCode    string `json:"day_code"`
	DayName    string `json:"day_name,omitempty"`
	TemplateID string `json:"template_id"`
	PostRole   string `json:"post_role"`
	CTAEnabled bool   `json:"cta_enabled"`
}

// GenerateRequest is the merged campaign + brand payload for /generate.
// Field names follow the generator's wire format.
type GenerateRequest struct {
	Goal               string   `json:"goal"`
	Theme              string   `json:"theme"`
	Images             []string `json:"images"`
	NPosts             int      `json:"n_posts"`
	CTAMode            string   `json:"cta_mode"`
	Voice              string   `json:"voice"`
	FeaturedCategory   string   `json:"featured_category"`
	AvailabilityPolicy string   `json:"availability_policy"`

	BrandName        string   `json:"brand_name"`
	BrandDescription string   `json:"brand_description"`
	BrandTagline     string   `json:"brand_tagline"`
	BrandHistory     string   `json:"brand_history"`
	RequiredHashtags []string `json:"required_hashtags"`
	BaseHashtags     []string `json:"base_hashtags"`
}

// CTA is the week-level call to action inside the brief.
type CTA struct {
	Text string `json:"text"`
}

// WeekBrief summarizes the generated week.
type WeekBrief struct {
	Theme    string   `json:"theme"`
	Goal     string   `json:"goal"`
	Keywords []string `json:"keywords"`
	CTA      CTA      `json:"cta"`
}

// PostContent carries the per-post hashtag list.
type PostContent struct {
	Hashtags []string `json:"hashtags"`
}

// Post is one finished, scheduled post.
type Post struct {
	DayName       string      `json:"day_name"`
	TemplateID    string      `json:"template_id"`
	PostRole      string      `json:"post_role"`
	Title         string      `json:"title"`
	Caption       string      `json:"caption"`
	IGCaptionFull string      `json:"ig_caption_full"`
	ImageURL      string      `json:"image_url"`
	Content       PostContent `json:"content"`
}

// GenerationResult is the server's response to one successful generation.
type GenerationResult struct {
	WeekBrief WeekBrief `json:"week_brief"`
	Posts     []Post    `json:"posts"`
}
