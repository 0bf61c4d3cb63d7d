package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSummary(t *testing.T) {
	t.Parallel()

	data := SummaryData{T: 0.5, Forward: true}
	require.Equal(t, data, NewSummary(data).data)
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data SummaryData
		want string
	}{
		{name: "playing", data: SummaryData{T: 0.25, Forward: true}, want: "t=0.25 forward (playing)"},
		{name: "paused", data: SummaryData{T: 0.5, Paused: true, Finished: true}, want: "t=0.50 backward (paused)"},
		{name: "finished", data: SummaryData{T: 1, Forward: true, Finished: true}, want: "t=1.00 forward (done)"},
		{
			name: "reloads and errors",
			data: SummaryData{Forward: true, Reloads: 2, Err: "bad theme"},
			want: "t=0.00 forward (playing)\nTheme reloaded 2 time(s)\n✗ bad theme",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, NewSummary(tc.data).View())
		})
	}
}
