package fieldtype

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsApplyDefaults(t *testing.T) {
	s := Settings{}.applyDefaults()
	assert.Equal(t, PurifierDefault, s.Purifier)
	assert.Equal(t, []string{Wildcard}, s.AvailableVolumes)
	assert.Equal(t, []string{Wildcard}, s.AvailableTransforms)

	s = Settings{AvailableVolumes: []string{}, Purifier: PurifierBasic}.applyDefaults()
	assert.Empty(t, s.AvailableVolumes)
	assert.NotNil(t, s.AvailableVolumes)
	assert.Equal(t, PurifierBasic, s.Purifier)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
	}{
		{name: "defaults", settings: Settings{}.applyDefaults()},
		{name: "volume uid", settings: Settings{AvailableVolumes: []string{"6f1c1f5e-7b1e-4b5f-9d2a-3f0e1c2b4a5d"}}},
		{name: "unknown purifier", settings: Settings{Purifier: "strict"}, wantErr: true},
		{name: "bad volume", settings: Settings{AvailableVolumes: []string{"uploads"}}, wantErr: true},
		{name: "blank transform", settings: Settings{AvailableTransforms: []string{""}}, wantErr: true},
		{name: "negative word limit", settings: Settings{WordLimit: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, goerrors.IsCategory(err, goerrors.CategoryValidation))
		})
	}
}

func TestSettingsCloneIsIndependent(t *testing.T) {
	orig := Settings{SourceEditingGroups: []string{"editors"}}
	c := orig.clone()
	c.SourceEditingGroups[0] = "admins"
	assert.Equal(t, "editors", orig.SourceEditingGroups[0])
}
