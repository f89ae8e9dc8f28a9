package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochMillis_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    EpochMillis
		wantErr bool
	}{
		{in: `1700000000000`, want: 1700000000000},
		{in: `"1700000000000"`, want: 1700000000000},
		{in: `" 42 "`, want: 42},
		{in: `1.7e12`, want: 1700000000000},
		{in: `null`, want: 0},
		{in: `""`, want: 0},
		{in: `"tomorrow"`, wantErr: true},
		{in: `true`, wantErr: true},
		{in: `1e300`, wantErr: true},
		{in: `"1e300"`, wantErr: true},
		{in: `"-1e300"`, wantErr: true},
		{in: `"NaN"`, wantErr: true},
		{in: `"Inf"`, wantErr: true},
		{in: `9007199254740992.0`, want: 9007199254740992},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got struct {
				Date EpochMillis `json:"d"`
			}
			err := json.Unmarshal([]byte(`{"d":`+tt.in+`}`), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Date)
		})
	}
}
