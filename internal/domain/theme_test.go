package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"", ThemeLight, false},
		{"light", ThemeLight, false},
		{"DARK", ThemeDark, false},
		{" dark ", ThemeDark, false},
		{"sepia", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if tt.wantErr {
				assert.True(t, HasCode(err, CodeInvalidInput))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.NotEqual(t, ThemeLight.Palette(), ThemeDark.Palette())
}

func TestBreed_Traits(t *testing.T) {
	b := Breed{Name: "Siamese", Temperament: "Vocal, Affectionate, Intelligent"}
	assert.Equal(t, []string{"Vocal", "Affectionate", "Intelligent"}, b.Traits())
	assert.Empty(t, Breed{}.Traits())
}
