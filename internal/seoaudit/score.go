package seoaudit

import "fmt"

// Recommendation is one actionable SEO fix.
type Recommendation struct {
	Priority string `json:"priority"`
	Issue    string `json:"issue"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
}

// Score rates the page 0-100. The meta description is worth 40 points
// and the H1 structure 60.
func Score(meta MetaDescription, h1 H1Info) int {
	score := 0

	if meta.Exists {
		score += 20
		switch {
		case meta.Length >= 50 && meta.Length <= 160:
			score += 20
		case meta.Length >= 30 && meta.Length < 50,
			meta.Length > 160 && meta.Length <= 200:
			score += 10
		}
	}

	if h1.Exists {
		score += 30
		switch {
		case h1.Count == 1:
			score += 30
		case h1.Count <= 3:
			score += 15
		}
	}

	return score
}

// Recommendations lists the fixes the audit surfaced, meta description
// issues before H1 issues.
func Recommendations(meta MetaDescription, h1 H1Info) []Recommendation {
	recs := []Recommendation{}

	switch {
	case !meta.Exists:
		recs = append(recs, Recommendation{
			Priority: "HIGH",
			Issue:    "Missing Meta Description",
			Action:   "Add a compelling meta description between 50-160 characters",
			Impact:   "Critical for search result click-through rates",
		})
	case meta.Length < 50:
		recs = append(recs, Recommendation{
			Priority: "MEDIUM",
			Issue:    "Meta Description Too Short",
			Action:   fmt.Sprintf("Expand meta description from %d to 50-160 characters", meta.Length),
			Impact:   "May appear truncated in search results",
		})
	case meta.Length > 160:
		recs = append(recs, Recommendation{
			Priority: "MEDIUM",
			Issue:    "Meta Description Too Long",
			Action:   fmt.Sprintf("Shorten meta description from %d to under 160 characters", meta.Length),
			Impact:   "Will be truncated in search results",
		})
	}

	switch {
	case !h1.Exists:
		recs = append(recs, Recommendation{
			Priority: "HIGH",
			Issue:    "Missing H1 Tag",
			Action:   "Add a clear, keyword-rich H1 tag to your page",
			Impact:   "Critical for SEO and page structure",
		})
	case h1.Count > 1:
		recs = append(recs, Recommendation{
			Priority: "MEDIUM",
			Issue:    fmt.Sprintf("Multiple H1 Tags (%d)", h1.Count),
			Action:   "Use only one H1 tag per page, convert others to H2",
			Impact:   "Can confuse search engines about page topic",
		})
	}

	return recs
}
