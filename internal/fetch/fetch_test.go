package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingPage = `
<html>
	<head><title>Senior Go Engineer - Acme</title></head>
	<body>
		<nav>Home | Careers | About</nav>
		<div class="job-description">
			<h1>Senior Go Engineer</h1>
			<p>Acme builds payment infrastructure for marketplaces.</p>
			<h2>Requirements</h2>
			<ul>
				<li>5 years experience in Go</li>
				<li>PostgreSQL in production</li>
			</ul>
			<p>Salary range: $150,000 - $180,000</p>
		</div>
		<form id="application-form">First name: Last name:</form>
		<footer>Acme Inc. All rights reserved.</footer>
	</body>
</html>`

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingPage))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Senior Go Engineer</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, PlatformUnknown, result.Platform)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestPosting_ExtractsDescriptionText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingPage))
	}))
	defer server.Close()

	result, err := Posting(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "5 years experience in Go")
	assert.Contains(t, result.Text, "$150,000 - $180,000")
	assert.NotContains(t, result.Text, "Home | Careers")
	assert.NotContains(t, result.Text, "All rights reserved")
	assert.NotContains(t, result.Text, "First name")
	assert.False(t, result.UsedBrowser)
}

func TestPosting_FetchErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := Posting(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestExtractPostingText_FallbackToBody(t *testing.T) {
	html := `
	<html>
		<body>
			<div>We are hiring a platform engineer in Berlin.</div>
		</body>
	</html>`

	text, err := ExtractPostingText(html, PlatformUnknown)
	require.NoError(t, err)
	assert.Contains(t, text, "platform engineer in Berlin")
}

func TestExtractPostingText_StripsApplicationForm(t *testing.T) {
	html := `
	<html>
		<body>
			<div class="job-description">
				<p>Design distributed systems.</p>
			</div>
			<form id="application-form">First name: ...</form>
			<div class="eeo-statement">Equal opportunity employer text.</div>
		</body>
	</html>`

	text, err := ExtractPostingText(html, PlatformGreenhouse)
	require.NoError(t, err)
	assert.Contains(t, text, "distributed systems")
	assert.NotContains(t, text, "First name")
	assert.NotContains(t, text, "Equal opportunity")
}

func TestJobPostingSelectors(t *testing.T) {
	selectors := JobPostingSelectors()
	assert.Contains(t, selectors, ".job-description")
	assert.Contains(t, selectors, "#job-content")
}
