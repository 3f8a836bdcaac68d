// pkg/profile/dates_test.go

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want DateComponents
	}{
		{
			name: "eight digit ddmmyyyy",
			raw:  "15061990",
			want: DateComponents{Day: "15", Month: "06", Year: "1990", YearShort: "90"},
		},
		{
			name: "slash separated day first",
			raw:  "15/06/1990",
			want: DateComponents{Day: "15", Month: "06", Year: "1990", YearShort: "90"},
		},
		{
			name: "dash separated day first",
			raw:  "07-09-2010",
			want: DateComponents{Day: "07", Month: "09", Year: "2010", YearShort: "10"},
		},
		{
			name: "six digit ddmmyy assumes 20xx",
			raw:  "150690",
			want: DateComponents{Day: "15", Month: "06", Year: "2090", YearShort: "90"},
		},
		{
			name: "four digit ddmm has no year",
			raw:  "1506",
			want: DateComponents{Day: "15", Month: "06"},
		},
		{
			name: "month first resolved by layout ladder",
			raw:  "06/15/1990",
			want: DateComponents{Day: "15", Month: "06", Year: "1990", YearShort: "90"},
		},
		{
			name: "iso layout",
			raw:  "1990-06-15",
			want: DateComponents{Day: "15", Month: "06", Year: "1990", YearShort: "90"},
		},
		{
			name: "yyyymmdd digits fall back to bare year",
			raw:  "19900615",
			want: DateComponents{Year: "1990", YearShort: "90"},
		},
		{
			name: "bare year inside text",
			raw:  "summer of 1999",
			want: DateComponents{Year: "1999", YearShort: "99"},
		},
		{
			name: "unparsable is empty not an error",
			raw:  "abcd",
			want: DateComponents{},
		},
		{
			name: "empty input",
			raw:  "",
			want: DateComponents{},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: DateComponents{},
		},
		{
			name: "impossible month rejected",
			raw:  "15131990",
			want: DateComponents{Year: "1990", YearShort: "90"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateComponentsIsZero(t *testing.T) {
	assert.True(t, DateComponents{}.IsZero())
	assert.False(t, DateComponents{Year: "1990"}.IsZero())
	assert.False(t, DateComponents{Day: "01", Month: "01"}.IsZero())
}
