package wizard

import (
	"reflect"
	"testing"

	"github.com/copyforge/copyforge/internal/api"
)

func readySession() *Session {
	s := NewSession()
	s.Brand.Name = "Artisan Studio"
	s.Brand.Description = "Handcrafted jewelry"
	s.Brand.RequiredHashtags = []string{"#artisan"}
	s.Campaign.Goal = "More engagement"
	s.Campaign.Theme = "Spring collection"
	return s
}

func TestDefaults(t *testing.T) {
	s := NewSession()
	if s.Step != StepBrand {
		t.Fatalf("expected StepBrand, got %v", s.Step)
	}
	if s.Campaign.NPosts != 6 {
		t.Fatalf("default NPosts = %d, want 6", s.Campaign.NPosts)
	}
	if s.Campaign.CTAMode != CTAModeDM || s.Campaign.Voice != VoiceMinimal ||
		s.Campaign.Availability != AvailabilityNone {
		t.Fatalf("unexpected campaign defaults: %+v", s.Campaign)
	}
}

func TestCanAdvance_BrandStep(t *testing.T) {
	s := NewSession()
	if CanAdvance(s) {
		t.Fatal("empty brand must not advance")
	}
	s.Brand.Name = "  "
	s.Brand.Description = "desc"
	s.Brand.RequiredHashtags = []string{"#x"}
	if CanAdvance(s) {
		t.Fatal("whitespace name must not advance")
	}
	s.Brand.Name = "Studio"
	s.Brand.RequiredHashtags = nil
	if CanAdvance(s) {
		t.Fatal("missing required hashtag must not advance")
	}
	s.Brand.RequiredHashtags = []string{"#x"}
	if !CanAdvance(s) {
		t.Fatal("filled brand must advance")
	}
}

func TestCanAdvance_CampaignStep(t *testing.T) {
	s := readySession()
	s.Step = StepCampaign
	s.Campaign.Theme = ""
	if CanAdvance(s) {
		t.Fatal("missing theme must not advance")
	}
	s.Campaign.Theme = "Spring"
	if !CanAdvance(s) {
		t.Fatal("filled campaign must advance")
	}
}

func TestCanAdvance_MediaReadiness(t *testing.T) {
	for n := MinPosts; n <= MaxPosts; n++ {
		s := readySession()
		s.Step = StepMedia
		s.Campaign.NPosts = n
		for i := 0; i < n-1; i++ {
			s.AddAssets([]api.Asset{{Filename: "oggetto_x.jpg"}})
		}
		if CanAdvance(s) {
			t.Fatalf("n=%d: advance allowed with %d assets", n, n-1)
		}
		s.AddAssets([]api.Asset{{Filename: "oggetto_y.jpg"}})
		if !CanAdvance(s) {
			t.Fatalf("n=%d: advance blocked with %d assets", n, n)
		}
	}
}

func TestCanAdvance_InertWhileGenerating(t *testing.T) {
	s := readySession()
	s.Step = StepMedia
	s.Campaign.NPosts = 1
	s.AddAssets([]api.Asset{{Filename: "oggetto_x.jpg"}})
	s.IsGenerating = true
	if CanAdvance(s) {
		t.Fatal("gate must be inert while generating")
	}
}

func TestCanAdvance_OutputIsTerminal(t *testing.T) {
	s := readySession()
	s.Step = StepOutput
	if CanAdvance(s) {
		t.Fatal("no forward transition from the results step")
	}
}

func TestIncludesCTA_DerivedFromPostCount(t *testing.T) {
	for n := MinPosts; n <= MaxPosts; n++ {
		c := Campaign{NPosts: n}
		if got, want := c.IncludesCTA(), n == 7; got != want {
			t.Fatalf("n=%d: IncludesCTA = %v, want %v", n, got, want)
		}
	}
}

func TestJumpOnlyBackward(t *testing.T) {
	s := readySession()
	s.Step = StepMedia
	if !CanJumpTo(s, StepBrand) || !CanJumpTo(s, StepCampaign) {
		t.Fatal("backward jumps must be allowed")
	}
	if CanJumpTo(s, StepMedia) || CanJumpTo(s, StepOutput) {
		t.Fatal("jump to current or future step must be denied")
	}
}

func TestBackwardNeverAltersData(t *testing.T) {
	s := readySession()
	s.Step = StepMedia
	s.AddAssets([]api.Asset{{Filename: "oggetto_a.jpg", Path: "/uploads/oggetto_a.jpg"}})
	brand, campaign := s.Brand, s.Campaign
	assets := append([]api.Asset(nil), s.Assets...)

	for s.Step > StepBrand {
		if !CanGoBack(s) {
			t.Fatalf("backward blocked at step %v", s.Step)
		}
		s.Step--
	}
	if !reflect.DeepEqual(s.Brand, brand) || !reflect.DeepEqual(s.Campaign, campaign) ||
		!reflect.DeepEqual(s.Assets, assets) {
		t.Fatal("backward navigation altered session data")
	}
}

func TestRemoveAssetAt(t *testing.T) {
	s := NewSession()
	s.AddAssets([]api.Asset{{Filename: "a"}, {Filename: "b"}, {Filename: "c"}})
	s.RemoveAssetAt(1)
	if len(s.Assets) != 2 || s.Assets[0].Filename != "a" || s.Assets[1].Filename != "c" {
		t.Fatalf("unexpected assets after removal: %+v", s.Assets)
	}
	s.RemoveAssetAt(9)
	if len(s.Assets) != 2 {
		t.Fatal("out-of-range removal must be a no-op")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := readySession()
	s.Step = StepOutput
	s.Results = &api.GenerationResult{}
	s.LastError = "boom"
	s.Progress = 100

	s.Reset()
	first := *s
	s.Reset()
	if !reflect.DeepEqual(*s, first) {
		t.Fatal("second reset differs from first")
	}
	if s.Step != StepBrand || s.Results != nil || s.LastError != "" || s.Progress != 0 {
		t.Fatalf("reset left residue: %+v", s)
	}
}

func TestGenerateRequest_Snapshot(t *testing.T) {
	s := readySession()
	s.Brand.BaseHashtags = []string{"#base"}
	s.AddAssets([]api.Asset{
		{Filename: "oggetto_a.jpg", Path: "/uploads/oggetto_a.jpg"},
		{Filename: "dettaglio_b.jpg", Path: "/uploads/dettaglio_b.jpg"},
	})

	req := s.GenerateRequest()
	if req.BrandName != "Artisan Studio" || req.NPosts != 6 {
		t.Fatalf("unexpected payload: %+v", req)
	}
	want := []string{"/uploads/oggetto_a.jpg", "/uploads/dettaglio_b.jpg"}
	if !reflect.DeepEqual(req.Images, want) {
		t.Fatalf("images = %v, want %v", req.Images, want)
	}

	// Later edits must not leak into the captured payload.
	s.Brand.RequiredHashtags[0] = "#changed"
	s.Assets[0].Path = "/changed"
	if req.RequiredHashtags[0] != "#artisan" || req.Images[0] != "/uploads/oggetto_a.jpg" {
		t.Fatal("payload shares memory with the session")
	}
}

func TestClampPosts(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 4: 4, 7: 7, 8: 7}
	for in, want := range cases {
		if got := ClampPosts(in); got != want {
			t.Fatalf("ClampPosts(%d) = %d, want %d", in, got, want)
		}
	}
}
