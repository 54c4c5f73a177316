package seoaudit

import (
	"strings"
	"testing"
)

func metaWithLength(n int) MetaDescription {
	content := strings.Repeat("x", n)
	return MetaDescription{Exists: true, Content: &content, Length: n}
}

func h1WithCount(n int) H1Info {
	if n == 0 {
		return H1Info{AllH1s: []string{}}
	}
	texts := make([]string, n)
	for i := range texts {
		texts[i] = "Heading"
	}
	return H1Info{Exists: true, Count: n, Content: &texts[0], AllH1s: texts}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		meta MetaDescription
		h1   H1Info
		want int
	}{
		{"perfect page", metaWithLength(120), h1WithCount(1), 100},
		{"empty page", MetaDescription{}, h1WithCount(0), 0},
		{"meta below short band", metaWithLength(29), h1WithCount(0), 20},
		{"meta at short band floor", metaWithLength(30), h1WithCount(0), 30},
		{"meta just under optimal", metaWithLength(49), h1WithCount(0), 30},
		{"meta at optimal floor", metaWithLength(50), h1WithCount(0), 40},
		{"meta at optimal ceiling", metaWithLength(160), h1WithCount(0), 40},
		{"meta just over optimal", metaWithLength(161), h1WithCount(0), 30},
		{"meta at long band ceiling", metaWithLength(200), h1WithCount(0), 30},
		{"meta past long band", metaWithLength(201), h1WithCount(0), 20},
		{"single h1 only", MetaDescription{}, h1WithCount(1), 60},
		{"two h1s", MetaDescription{}, h1WithCount(2), 45},
		{"three h1s", MetaDescription{}, h1WithCount(3), 45},
		{"four h1s", MetaDescription{}, h1WithCount(4), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.meta, tt.h1); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecommendationsMissingEverything(t *testing.T) {
	recs := Recommendations(MetaDescription{}, h1WithCount(0))

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Issue != "Missing Meta Description" || recs[0].Priority != "HIGH" {
		t.Errorf("recs[0] = %+v, want missing meta description at HIGH", recs[0])
	}
	if recs[0].Action != "Add a compelling meta description between 50-160 characters" {
		t.Errorf("Action = %q", recs[0].Action)
	}
	if recs[0].Impact != "Critical for search result click-through rates" {
		t.Errorf("Impact = %q", recs[0].Impact)
	}
	if recs[1].Issue != "Missing H1 Tag" || recs[1].Priority != "HIGH" {
		t.Errorf("recs[1] = %+v, want missing H1 at HIGH", recs[1])
	}
	if recs[1].Action != "Add a clear, keyword-rich H1 tag to your page" {
		t.Errorf("Action = %q", recs[1].Action)
	}
	if recs[1].Impact != "Critical for SEO and page structure" {
		t.Errorf("Impact = %q", recs[1].Impact)
	}
}

func TestRecommendationsShortMeta(t *testing.T) {
	recs := Recommendations(metaWithLength(20), h1WithCount(1))

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Priority != "MEDIUM" || rec.Issue != "Meta Description Too Short" {
		t.Errorf("rec = %+v", rec)
	}
	if rec.Action != "Expand meta description from 20 to 50-160 characters" {
		t.Errorf("Action = %q", rec.Action)
	}
	if rec.Impact != "May appear truncated in search results" {
		t.Errorf("Impact = %q", rec.Impact)
	}
}

func TestRecommendationsLongMeta(t *testing.T) {
	recs := Recommendations(metaWithLength(250), h1WithCount(1))

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Priority != "MEDIUM" || rec.Issue != "Meta Description Too Long" {
		t.Errorf("rec = %+v", rec)
	}
	if rec.Action != "Shorten meta description from 250 to under 160 characters" {
		t.Errorf("Action = %q", rec.Action)
	}
	if rec.Impact != "Will be truncated in search results" {
		t.Errorf("Impact = %q", rec.Impact)
	}
}

func TestRecommendationsMultipleH1s(t *testing.T) {
	recs := Recommendations(metaWithLength(100), h1WithCount(3))

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	rec := recs[0]
	if rec.Priority != "MEDIUM" || rec.Issue != "Multiple H1 Tags (3)" {
		t.Errorf("rec = %+v", rec)
	}
	if rec.Action != "Use only one H1 tag per page, convert others to H2" {
		t.Errorf("Action = %q", rec.Action)
	}
	if rec.Impact != "Can confuse search engines about page topic" {
		t.Errorf("Impact = %q", rec.Impact)
	}
}

func TestRecommendationsEmptyContentMetaCountsAsShort(t *testing.T) {
	recs := Recommendations(metaWithLength(0), h1WithCount(1))

	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Action != "Expand meta description from 0 to 50-160 characters" {
		t.Errorf("Action = %q", recs[0].Action)
	}
}

func TestRecommendationsPerfectPage(t *testing.T) {
	recs := Recommendations(metaWithLength(120), h1WithCount(1))

	if recs == nil {
		t.Fatal("recs = nil, want empty non-nil slice")
	}
	if len(recs) != 0 {
		t.Errorf("got %d recommendations, want 0: %+v", len(recs), recs)
	}
}
