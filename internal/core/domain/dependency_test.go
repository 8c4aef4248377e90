package domain_test

import (
	"testing"

	"github.com/cpavlidis/nx-monorepo/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestParseDependencyRequest(t *testing.T) {
	tests := []struct {
		raw        string
		name       string
		constraint string
	}{
		{"quasar", "quasar", ""},
		{"sass-embedded@^1.80.2", "sass-embedded", "^1.80.2"},
		{"@quasar/extras", "@quasar/extras", ""},
		{"@quasar/vite-plugin@~1.7", "@quasar/vite-plugin", "~1.7"},
		{"vue@latest", "vue", "latest"},
		{"  quasar  ", "quasar", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req, err := domain.ParseDependencyRequest(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.name, req.Name)
			assert.Equal(t, tt.constraint, req.Constraint)
		})
	}
}

func TestParseDependencyRequest_Invalid(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"", domain.ErrInvalidDependency},
		{"quasar@", domain.ErrInvalidDependency},
		{"@quasar", domain.ErrInvalidDependency},
		{"@/extras", domain.ErrInvalidDependency},
		{"sass-embedded@^^1.x.y", domain.ErrInvalidConstraint},
	}

	for _, tt := range tests {
		raw := tt.raw
		t.Run(raw, func(t *testing.T) {
			_, err := domain.ParseDependencyRequest(raw)
			require.ErrorIs(t, err, tt.want)

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			assert.Equal(t, raw, zErr.Metadata()["request"])
		})
	}
}

func TestDependencyRequest_String(t *testing.T) {
	assert.Equal(t, "quasar", domain.DependencyRequest{Name: "quasar"}.String())
	assert.Equal(t, "sass-embedded@^1.80.2", domain.DependencyRequest{Name: "sass-embedded", Constraint: "^1.80.2"}.String())
}

func TestParseDependencyRequests_StopsAtFirstError(t *testing.T) {
	reqs, err := domain.ParseDependencyRequests([]string{"quasar", "bad@"})
	require.Error(t, err)
	assert.Nil(t, reqs)
}
