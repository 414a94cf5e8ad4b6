package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreferences_TitleBlocked(t *testing.T) {
	p := &Preferences{TitleBlocklist: []string{"sales", "Recruiter"}}

	term, blocked := p.TitleBlocked("Senior Sales Engineer")
	assert.True(t, blocked)
	assert.Equal(t, "sales", term)

	_, blocked = p.TitleBlocked("Backend Engineer")
	assert.False(t, blocked)
}

func TestPreferences_TitleAllowed(t *testing.T) {
	open := &Preferences{}
	_, ok := open.TitleAllowed("Anything At All")
	assert.True(t, ok)

	picky := &Preferences{TitleAllowlist: []string{"engineer", "developer"}}
	term, ok := picky.TitleAllowed("Software ENGINEER II")
	assert.True(t, ok)
	assert.Equal(t, "engineer", term)

	_, ok = picky.TitleAllowed("Account Manager")
	assert.False(t, ok)
}

func TestPreferences_LocationTerms(t *testing.T) {
	p := &Preferences{Cities: []string{"Seattle"}, States: []string{"WA"}, Countries: []string{"USA"}}

	assert.Equal(t, []string{"Seattle", "WA", "USA"}, p.LocationTerms())
}

func TestJob_AgeDays(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	fresh := &Job{CreatedAt: now.Add(-48 * time.Hour)}
	assert.InDelta(t, 2.0, fresh.AgeDays(now), 0.001)

	unknown := &Job{}
	assert.Equal(t, 0.0, unknown.AgeDays(now))
}

func TestJob_SearchText(t *testing.T) {
	j := &Job{Title: "Go Developer", Description: "Build APIs"}

	assert.Equal(t, "go developer\nbuild apis", j.SearchText())
}
