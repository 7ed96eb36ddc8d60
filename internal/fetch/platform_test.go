package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/doordashusa/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://lever.co/jobs/123", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://workday.com/jobs", PlatformWorkday},
		{"https://www.linkedin.com/jobs/view/3912345678", PlatformLinkedIn},
		{"https://WWW.LINKEDIN.COM/jobs/view/1", PlatformLinkedIn},
		{"https://notlever.com/jobs", PlatformUnknown},
		{"https://example.com/careers", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestContentSelectors(t *testing.T) {
	assert.Equal(t, ".job__description.body", ContentSelectors(PlatformGreenhouse)[0])
	assert.Contains(t, ContentSelectors(PlatformLever), ".posting-description")
	assert.Contains(t, ContentSelectors(PlatformWorkday), "[data-automation-id='jobDescription']")
	assert.Contains(t, ContentSelectors(PlatformLinkedIn), ".show-more-less-html__markup")
	assert.Equal(t, JobPostingSelectors(), ContentSelectors(PlatformUnknown))
}

func TestNoiseSelectors(t *testing.T) {
	common := NoiseSelectors(PlatformUnknown)
	assert.Contains(t, common, "form")
	assert.Contains(t, common, ".eeo-statement")

	for _, p := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformLinkedIn} {
		selectors := NoiseSelectors(p)
		assert.Greater(t, len(selectors), len(common), p)
		assert.Subset(t, selectors, common, p)
	}
}
