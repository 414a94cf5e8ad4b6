package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://boards.greenhouse.io/stripe/jobs/5012345", PlatformGreenhouse},
		{"https://job-boards.greenhouse.io/datadog/jobs/7063751", PlatformGreenhouse},
		{"https://jobs.lever.co/plaid/4f2a9c1e", PlatformLever},
		{"https://lever.co/postings/backend-engineer", PlatformLever},
		{"https://acme.wd5.myworkdayjobs.com/en-US/careers/job/R-001234", PlatformWorkday},
		{"https://workday.com/jobs/platform-engineer", PlatformWorkday},
		{"https://example.com/careers/backend", PlatformUnknown},
		{"https://linkedin.com/jobs/view/123", PlatformUnknown},
		{"://bad-url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestExtractPostingText_GreenhousePosting(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="site-header">Careers at Acme</div>
			<div class="job__description body">
				<h2>Senior Backend Engineer</h2>
				<p>Own the billing pipeline end to end.</p>
			</div>
			<div class="voluntary-self-id">Voluntary self-identification survey</div>
			<div id="usa_self_id_section">Disability status form</div>
		</body>
	</html>`

	text, err := ExtractPostingText(html, PlatformGreenhouse)
	require.NoError(t, err)
	assert.Contains(t, text, "billing pipeline")
	assert.NotContains(t, text, "self-identification")
	assert.NotContains(t, text, "Disability status")
	// The board container is selected, so page chrome outside it is dropped.
	assert.NotContains(t, text, "Careers at Acme")
}

func TestExtractPostingText_LeverPosting(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="posting-page">
				<div class="posting-description">
					<p>Build the fraud detection service.</p>
				</div>
				<div class="posting-apply">Apply for this job</div>
			</div>
		</body>
	</html>`

	text, err := ExtractPostingText(html, PlatformLever)
	require.NoError(t, err)
	assert.Contains(t, text, "fraud detection")
	assert.NotContains(t, text, "Apply for this job")
}

func TestExtractPostingText_WorkdayPosting(t *testing.T) {
	html := `
	<html>
		<body>
			<div data-automation-id="jobDescription">
				<p>Operate the data warehouse and its ingestion jobs.</p>
			</div>
			<div data-automation-id="applyButton">Apply</div>
		</body>
	</html>`

	text, err := ExtractPostingText(html, PlatformWorkday)
	require.NoError(t, err)
	assert.Contains(t, text, "data warehouse")
	assert.NotContains(t, text, "Apply")
}

func TestPlatformContentSelectors_UnknownFallsBackToGeneric(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformUnknown)

	assert.Equal(t, JobPostingSelectors(), selectors)
}

func TestPlatformNoiseSelectors_CommonAcrossBoards(t *testing.T) {
	for _, platform := range []Platform{PlatformGreenhouse, PlatformLever, PlatformWorkday, PlatformUnknown} {
		selectors := PlatformNoiseSelectors(platform)
		assert.Contains(t, selectors, "form")
		assert.Contains(t, selectors, ".eeo-statement")
		assert.Contains(t, selectors, ".cookie-banner")
	}
}

func TestPlatform_Source(t *testing.T) {
	assert.Equal(t, "greenhouse", PlatformGreenhouse.Source())
	assert.Equal(t, "lever", PlatformLever.Source())
	assert.Equal(t, "unknown", PlatformUnknown.Source())
}
