package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestTrail(t *testing.T) {
	crumbs := []string{"Courses", "", "Go Basics", "Variables"}
	assert.Equal(t, "Courses › Go Basics › Variables", Trail(crumbs, false))
	assert.Equal(t, "Variables", Trail(crumbs, true))
	assert.Empty(t, Trail(nil, false))
}

func TestHeader_ShowsTrailAndScore(t *testing.T) {
	out := Header{App: "devroad", Trail: []string{"Courses", "Go Basics"}, Score: 42}.Render(120)
	assert.Contains(t, out, "devroad")
	assert.Contains(t, out, "Courses › Go Basics")
	assert.Contains(t, out, "★ 42")
}

func TestHeader_CompactKeepsLastCrumb(t *testing.T) {
	out := Header{App: "devroad", Trail: []string{"Courses", "Go Basics"}}.Render(70)
	assert.Contains(t, out, "Go Basics")
	assert.NotContains(t, out, "Courses")
}

func TestFooter_CompactDropsDescriptions(t *testing.T) {
	hints := []KeyHint{{Key: "Enter", Description: "Submit"}, {Key: "Esc", Description: "Back"}}

	wide := Footer(hints, 120)
	assert.Contains(t, wide, "Submit")

	narrow := Footer(hints, 70)
	assert.Contains(t, narrow, "Enter")
	assert.NotContains(t, narrow, "Submit")
}

func TestFrame_FillsHeight(t *testing.T) {
	header := Header{App: "devroad"}.Render(80)
	footer := Footer(nil, 80)
	out := Frame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(out))
	assert.True(t, strings.Contains(out, "body"))
}

func TestSizeChecks(t *testing.T) {
	assert.True(t, IsTooSmall(59, 30))
	assert.True(t, IsTooSmall(80, 19))
	assert.False(t, IsTooSmall(60, 20))
	assert.True(t, IsCompactWidth(99))
	assert.False(t, IsCompactWidth(100))
	assert.Contains(t, TooSmall(40, 10), "Terminal too small")
}
