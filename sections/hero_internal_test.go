package sections

import (
	"testing"

	"github.com/rpupo63/portfolio-site/models"
	"github.com/stretchr/testify/assert"
)

func TestHero_AdvanceRoleWraps(t *testing.T) {
	h := &Hero{lifecycle: newLifecycle()}
	h.advanceRole()
	assert.Equal(t, 0, h.roleIndex)

	h.profile = &models.Profile{Roles: []string{"a", "b", "c"}}
	var seen []int
	for range 4 {
		h.advanceRole()
		seen = append(seen, h.roleIndex)
	}
	assert.Equal(t, []int{1, 2, 0, 1}, seen)
}
